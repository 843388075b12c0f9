package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config represents the structure of the configuration file.
type Config struct {
	Version string          `mapstructure:"version"`
	Theme   string          `mapstructure:"theme"`
	Verbose bool            `mapstructure:"verbose"`
	AI      *AIClientConfig `mapstructure:"ai_client_config"`
}

// AIClientConfig holds the settings of the remote generation endpoint.
type AIClientConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	Model          string `mapstructure:"model"`
	ApiKey         string `mapstructure:"api_key"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// DefaultConfig values.
var DefaultConfig = Config{
	Version: "1.0.0",
	Theme:   "dracula",
	Verbose: false,
	AI: &AIClientConfig{
		BaseURL:        "https://api.deepseek.com/v1/chat/completions",
		Model:          "deepseek-chat",
		ApiKey:         "",
		TimeoutSeconds: 30,
	},
}

// apiKeyPlaceholder is the value shipped in the example config; keys left at
// this value are treated the same as missing ones.
const apiKeyPlaceholder = "your_api_key_here"

// ErrMissingAPIKey is returned when no usable API key is configured. The
// session must not start without one.
var ErrMissingAPIKey = errors.New("no API key configured: set DEEPSEEK_API_KEY or api_key in sheetflow-config.yaml")

// cfgFile holds the path to the configuration file (set via CLI).
var cfgFile string

// LoadConfigs initializes the configuration from file, flags, and environment
// variables, and returns the final config. The API key is validated here:
// a missing or placeholder key is a startup failure, not a per-turn one.
func LoadConfigs(rootCmd *cobra.Command, cwd string) (*Config, error) {
	var config *Config

	setDefaults()

	viper.AutomaticEnv()
	bindEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", cfgFile, err)
		}
	} else {
		viper.SetConfigName("sheetflow-config")
		viper.AddConfigPath(cwd)

		viper.SetConfigType("yaml")
		if err := viper.ReadInConfig(); err != nil {
			viper.SetConfigType("json")
			// Neither format present: continue with defaults, env and flags.
			_ = viper.ReadInConfig()
		}
	}

	bindFlags(rootCmd)

	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode configuration: %w", err)
	}

	if err := validate(config); err != nil {
		return nil, err
	}

	return config, nil
}

func validate(config *Config) error {
	if config.AI == nil {
		return ErrMissingAPIKey
	}
	key := strings.TrimSpace(config.AI.ApiKey)
	if key == "" || key == apiKeyPlaceholder {
		return ErrMissingAPIKey
	}
	if config.AI.TimeoutSeconds <= 0 {
		config.AI.TimeoutSeconds = DefaultConfig.AI.TimeoutSeconds
	}
	return nil
}

// setDefaults sets all default configuration values.
func setDefaults() {
	viper.SetDefault("version", DefaultConfig.Version)
	viper.SetDefault("theme", DefaultConfig.Theme)
	viper.SetDefault("verbose", DefaultConfig.Verbose)
	viper.SetDefault("ai_client_config.base_url", DefaultConfig.AI.BaseURL)
	viper.SetDefault("ai_client_config.model", DefaultConfig.AI.Model)
	viper.SetDefault("ai_client_config.api_key", DefaultConfig.AI.ApiKey)
	viper.SetDefault("ai_client_config.timeout_seconds", DefaultConfig.AI.TimeoutSeconds)
}

// bindEnv explicitly binds environment variables to configuration keys.
func bindEnv() {
	_ = viper.BindEnv("theme", "THEME")
	_ = viper.BindEnv("verbose", "VERBOSE")
	_ = viper.BindEnv("ai_client_config.base_url", "DEEPSEEK_API_URL")
	_ = viper.BindEnv("ai_client_config.model", "MODEL")
	_ = viper.BindEnv("ai_client_config.api_key", "DEEPSEEK_API_KEY")
	_ = viper.BindEnv("ai_client_config.timeout_seconds", "TIMEOUT")
}

// bindFlags binds the CLI flags to configuration values.
func bindFlags(rootCmd *cobra.Command) {
	_ = viper.BindPFlag("theme", rootCmd.PersistentFlags().Lookup("theme"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("ai_client_config.base_url", rootCmd.PersistentFlags().Lookup("base_url"))
	_ = viper.BindPFlag("ai_client_config.model", rootCmd.PersistentFlags().Lookup("model"))
	_ = viper.BindPFlag("ai_client_config.api_key", rootCmd.PersistentFlags().Lookup("api_key"))
	_ = viper.BindPFlag("ai_client_config.timeout_seconds", rootCmd.PersistentFlags().Lookup("timeout_seconds"))
}

// InitFlags initializes the flags for the root command.
func InitFlags(rootCmd *cobra.Command) {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Specifies the path to a configuration file (JSON or YAML) that contains all the settings for the application.")

	rootCmd.PersistentFlags().String("theme", DefaultConfig.Theme, "Syntax highlighting theme for generated scripts (e.g., 'dracula', 'monokai').")
	rootCmd.PersistentFlags().Bool("verbose", DefaultConfig.Verbose, "Enable debug-level log output.")

	rootCmd.Flags().BoolP("version", "v", false, "Specifies the version of the application.")

	rootCmd.PersistentFlags().String("base_url", DefaultConfig.AI.BaseURL, "The chat-completions endpoint URL of the generation provider.")
	rootCmd.PersistentFlags().String("model", DefaultConfig.AI.Model, "The name of the model used for script generation.")
	rootCmd.PersistentFlags().String("api_key", DefaultConfig.AI.ApiKey, "The API key used to authenticate with the generation provider.")
	rootCmd.PersistentFlags().Int("timeout_seconds", DefaultConfig.AI.TimeoutSeconds, "Request timeout for the generation call, in seconds.")
}
