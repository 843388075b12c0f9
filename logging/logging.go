// Package logging builds the session logger. Log records go to a dated file
// under the workspace logs directory; the interactive console is reserved for
// styled user output.
package logging

import (
	"fmt"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewSessionLogger returns a zap logger writing to logs/sheetflow_YYYYMMDD.log.
func NewSessionLogger(logsDir string, verbose bool) (*zap.Logger, error) {
	logFile := filepath.Join(logsDir, fmt.Sprintf("sheetflow_%s.log", time.Now().Format("20060102")))

	config := zap.NewProductionConfig()
	config.OutputPaths = []string{logFile}
	config.ErrorOutputPaths = []string{logFile}
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
