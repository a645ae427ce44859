package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mwalraven/reportkit/workcopy"
)

var (
	copyOutDir string
	copyName   string
	copyDryRun bool
)

var copyCmd = &cobra.Command{
	Use:   "copy TEMPLATE",
	Short: "Create a working copy of a template",
	Long: `Copies the template to a working file without ever overwriting the
template. Name collisions get a numeric suffix (_1, _2, ...). With
--dry-run the destination path is resolved but nothing is written.`,
	Args: cobra.ExactArgs(1),
	RunE: runCopy,
}

func init() {
	copyCmd.Flags().StringVar(&copyOutDir, "out-dir", "", "destination directory (default: template's directory)")
	copyCmd.Flags().StringVar(&copyName, "name", "", "working copy file name (default: template's name)")
	copyCmd.Flags().BoolVar(&copyDryRun, "dry-run", false, "resolve the destination path without copying")
}

func runCopy(cmd *cobra.Command, args []string) error {
	res, diags := workcopy.Provision(workcopy.Request{
		TemplatePath: args[0],
		OutputDir:    copyOutDir,
		FileName:     copyName,
		Create:       !copyDryRun,
	})
	logDiagnostics(diags)
	if !res.OK && !copyDryRun {
		return failed("copy")
	}
	logger.Info("working copy resolved",
		zap.String("template", res.TemplatePath),
		zap.String("working", res.WorkingPath),
		zap.Bool("created", res.OK))
	return nil
}
