// Package main implements the reportkit CLI for updating Word-format
// report templates and converting them to PDF.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mwalraven/reportkit/report"
)

var (
	verbose bool
	logger  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "reportkit",
	Short: "Update DOCX report templates and convert them to PDF",
	Long: `reportkit copies a report template to a working file, rewrites its
revision table, fills its project-info fields, and converts the result
to PDF through a headless LibreOffice instance.

The template itself is never modified; every operation targets the
working copy.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		config.Encoding = "console"
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(copyCmd, revisionsCmd, fieldsCmd, pdfCmd, runCmd)
}

// logDiagnostics routes each diagnostic to the log level matching its
// severity.
func logDiagnostics(diags []report.Diagnostic) {
	for _, d := range diags {
		switch d.Severity {
		case report.SeverityError:
			logger.Error(d.Message)
		case report.SeverityWarning:
			logger.Warn(d.Message)
		default:
			logger.Info(d.Message)
		}
	}
}

// failed turns an unsuccessful operation into a CLI error exit.
func failed(what string) error {
	return fmt.Errorf("%s failed", what)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
