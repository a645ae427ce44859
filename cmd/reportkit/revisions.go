package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mwalraven/reportkit/report"
)

var (
	revValues   []string
	revDates    []string
	revStatuses []string
	revComments []string
	revAuthors  []string
	revCheckers []string
)

var revisionsCmd = &cobra.Command{
	Use:   "revisions DOC",
	Short: "Replace the revision table rows of a working document",
	Long: `Clears every row after the header of the document's revision table and
appends one row per --rev flag. The other flags are matched to the
revisions positionally and default to empty past their own length.`,
	Args: cobra.ExactArgs(1),
	RunE: runRevisions,
}

func init() {
	revisionsCmd.Flags().StringArrayVar(&revValues, "rev", nil, "revision value (repeatable, at least one)")
	revisionsCmd.Flags().StringArrayVar(&revDates, "date", nil, "revision date (repeatable)")
	revisionsCmd.Flags().StringArrayVar(&revStatuses, "status", nil, "revision status (repeatable)")
	revisionsCmd.Flags().StringArrayVar(&revComments, "comment", nil, "revision comment (repeatable)")
	revisionsCmd.Flags().StringArrayVar(&revAuthors, "author", nil, "revision author (repeatable)")
	revisionsCmd.Flags().StringArrayVar(&revCheckers, "checker", nil, "revision checker (repeatable)")
	_ = revisionsCmd.MarkFlagRequired("rev")
}

func runRevisions(cmd *cobra.Command, args []string) error {
	records := report.BuildRecords(revValues, revDates, revStatuses, revComments, revAuthors, revCheckers)

	res, diags := report.UpdateRevisions(report.RevisionRequest{
		Path:    args[0],
		Records: records,
		Apply:   true,
	})
	logDiagnostics(diags)
	if !res.OK {
		return failed("revision update")
	}
	logger.Info("revision table updated", zap.String("path", res.Path), zap.Int("rows", len(records)))
	return nil
}
