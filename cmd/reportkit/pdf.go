package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mwalraven/reportkit/convert"
	"github.com/mwalraven/reportkit/report"
)

var pdfBinary string

var pdfCmd = &cobra.Command{
	Use:   "pdf DOC",
	Short: "Convert a working document to PDF via headless LibreOffice",
	Args:  cobra.ExactArgs(1),
	RunE:  runPDF,
}

func init() {
	pdfCmd.Flags().StringVar(&pdfBinary, "binary", "", "LibreOffice launcher (default: soffice or libreoffice on PATH)")
}

func runPDF(cmd *cobra.Command, args []string) error {
	conv := convert.NewLibreOffice()
	conv.Binary = pdfBinary

	res, diags := report.RenderPDF(report.RenderRequest{Path: args[0], Apply: true}, conv)
	logDiagnostics(diags)
	if !res.OK {
		return failed("pdf conversion")
	}
	logger.Info("pdf written", zap.String("path", res.Path))
	return nil
}
