package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"sheetflow/catalog"
	"sheetflow/config"
	"sheetflow/constants/lipgloss"
	"sheetflow/executor"
	"sheetflow/logging"
	"sheetflow/providers/contracts"
	"sheetflow/providers/deepseek"
	"sheetflow/workspace"
)

// RootDependencies holds the dependencies of the interactive session.
type RootDependencies struct {
	Config    *config.Config
	Logger    *zap.Logger
	Workspace *workspace.Workspace
	Catalog   *catalog.Catalog
	Provider  contracts.ChatProvider
	Executor  executor.ScriptExecutor
	Cwd       string
}

// rootCmd: sheetflow
var rootCmd = &cobra.Command{
	Use:   "sheetflow",
	Short: "Turn natural-language spreadsheet instructions into executed scripts.",
	Long: `sheetflow reads spreadsheet files from the uploads directory, asks a remote
model to generate a processing script for your instruction, screens the script
against a denylist of dangerous constructs, runs it, and writes results to the
results directory. One instruction is processed per turn.`,
	Run: func(cmd *cobra.Command, args []string) {
		rootDependencies := handleRootCommand(cmd)
		defer func() { _ = rootDependencies.Logger.Sync() }()
		handleSessionCommand(rootDependencies)
	},
}

// handleRootCommand builds every dependency of the session. Configuration
// problems are fatal here: the loop is never entered without a usable API key.
func handleRootCommand(cmd *cobra.Command) *RootDependencies {
	cwd, err := os.Getwd()
	if err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("Error getting current directory: %v", err)))
		os.Exit(1)
	}

	ws, err := workspace.Init(cwd)
	if err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("%v", err)))
		os.Exit(1)
	}

	cfg, err := config.LoadConfigs(cmd.Root(), cwd)
	if err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("%v", err)))
		os.Exit(1)
	}

	logger, err := logging.NewSessionLogger(ws.Logs, cfg.Verbose)
	if err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("%v", err)))
		os.Exit(1)
	}

	provider := deepseek.NewDeepSeekChatProvider(&deepseek.DeepSeekConfig{
		BaseURL: cfg.AI.BaseURL,
		Model:   cfg.AI.Model,
		ApiKey:  cfg.AI.ApiKey,
		Timeout: time.Duration(cfg.AI.TimeoutSeconds) * time.Second,
	})

	return &RootDependencies{
		Config:    cfg,
		Logger:    logger,
		Workspace: ws,
		Catalog:   catalog.New(ws.Uploads),
		Provider:  provider,
		Executor:  executor.NewYaegiExecutor(ws.Temp),
		Cwd:       cwd,
	}
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("%v", err)))
		os.Exit(1)
	}
}

func init() {
	config.InitFlags(rootCmd)
}
