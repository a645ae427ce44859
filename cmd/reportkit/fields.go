package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mwalraven/reportkit/report"
)

var fieldFlags report.FieldRequest

var fieldsCmd = &cobra.Command{
	Use:   "fields DOC",
	Short: "Fill the project-info table of a working document",
	Long: `Rewrites the value cell of each project-info row whose label matches a
known field. Labels absent from the table are skipped; empty values
blank their cell.`,
	Args: cobra.ExactArgs(1),
	RunE: runFields,
}

func init() {
	fieldsCmd.Flags().StringVar(&fieldFlags.ProjectName, "project", "", "project name")
	fieldsCmd.Flags().StringVar(&fieldFlags.Client, "client", "", "client name")
	fieldsCmd.Flags().StringVar(&fieldFlags.Date, "date", "", "report date")
	fieldsCmd.Flags().StringVar(&fieldFlags.Version, "version", "", "report version")
	fieldsCmd.Flags().StringVar(&fieldFlags.Author, "author", "", "report author")
	fieldsCmd.Flags().StringVar(&fieldFlags.CheckedBy, "checked-by", "", "checker name")
}

func runFields(cmd *cobra.Command, args []string) error {
	req := fieldFlags
	req.Path = args[0]
	req.Apply = true

	res, diags := report.SetFields(req)
	logDiagnostics(diags)
	if !res.OK {
		return failed("field update")
	}
	logger.Info("project info updated", zap.String("path", res.Path))
	return nil
}
