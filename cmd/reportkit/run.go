package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mwalraven/reportkit"
	"github.com/mwalraven/reportkit/convert"
)

var runBinary string

var runCmd = &cobra.Command{
	Use:   "run JOB.yaml",
	Short: "Run a full pipeline described by a YAML job file",
	Long: `Provisions a working copy of the job's template, then applies the
configured stages in order: revision table rewrite, project-info fields,
and PDF conversion. Stops at the first failed stage.`,
	Args: cobra.ExactArgs(1),
	RunE: runJob,
}

func init() {
	runCmd.Flags().StringVar(&runBinary, "binary", "", "LibreOffice launcher (default: soffice or libreoffice on PATH)")
}

func runJob(cmd *cobra.Command, args []string) error {
	job, err := LoadJob(args[0])
	if err != nil {
		return err
	}

	pipeline := reportkit.Template(job.Template).
		OutputDir(job.OutputDir).
		FileName(job.FileName)
	if len(job.Revisions) > 0 {
		pipeline = pipeline.Revisions(job.records()...)
	}
	if job.Fields != nil {
		pipeline = pipeline.Fields(job.fieldValues())
	}
	if job.Convert {
		conv := convert.NewLibreOffice()
		conv.Binary = runBinary
		pipeline = pipeline.PDF(conv)
	}

	results, diags := pipeline.Run()
	logDiagnostics(diags)
	if !results.OK {
		return failed("pipeline")
	}

	fields := []zap.Field{
		zap.String("template", results.TemplatePath),
		zap.String("working", results.WorkingPath),
	}
	if results.PDFPath != "" {
		fields = append(fields, zap.String("pdf", results.PDFPath))
	}
	logger.Info("pipeline finished", fields...)
	return nil
}
