package report

import (
	"os"
	"strings"
	"time"

	"github.com/mwalraven/reportkit/docx"
)

// FieldRequest describes one project-info table update. All values are
// optional; empty values still overwrite their cell with a blank.
type FieldRequest struct {
	Path        string
	ProjectName string
	Client      string
	Date        string
	Version     string
	Author      string
	CheckedBy   string
	// Apply gates the operation; false is a reported no-op.
	Apply bool
	// Now overrides the clock used for unparseable dates.
	Now func() time.Time
}

// fieldValues pairs the known key-column labels with their request
// values, in write order.
func (req FieldRequest) fieldValues(date string) []struct{ label, value string } {
	return []struct{ label, value string }{
		{"projectname", req.ProjectName},
		{"client", req.Client},
		{"date", date},
		{"version", req.Version},
		{"author", req.Author},
		{"checked by", req.CheckedBy},
	}
}

// SetFields rewrites the value cell of each project-info row whose key
// cell matches a known label. Rows with unrecognized labels are left
// untouched; known labels absent from the table are silently skipped.
func SetFields(req FieldRequest) (Result, []Diagnostic) {
	var diags []Diagnostic

	if strings.TrimSpace(req.Path) == "" {
		return Result{}, append(diags, Errorf("working document path is empty"))
	}
	if _, err := os.Stat(req.Path); err != nil {
		return Result{}, append(diags, Errorf("working document not found: %s", req.Path))
	}
	if !req.Apply {
		diags = append(diags, Remarkf("apply flag is false; %s left untouched", req.Path))
		return Result{Path: req.Path}, diags
	}

	doc, err := docx.Open(req.Path)
	if err != nil {
		return Result{}, append(diags, Errorf("opening %s: %v", req.Path, err))
	}

	table := findFieldTable(doc)
	if table == nil {
		return Result{}, append(diags, Errorf("no project info table found in %s", req.Path))
	}

	date := req.Date
	if date != "" {
		resolved, ok := ResolveDate(req.Date, req.Now)
		if !ok {
			diags = append(diags, Warningf("unparseable date %q, using current date", req.Date))
		}
		date = resolved
	}

	// Each row is written at most once so labels that substring-match the
	// same key cell cannot queue conflicting edits.
	claimed := make(map[int]bool)
	for _, fv := range req.fieldValues(date) {
		for _, row := range table.Rows() {
			if claimed[row.Index()] || !containsKeyword(row.CellText(0), fv.label) {
				continue
			}
			if row.CellCount() < 2 {
				break
			}
			if err := row.SetCellText(1, fv.value); err != nil {
				return Result{}, append(diags, Errorf("setting %s: %v", fv.label, err))
			}
			claimed[row.Index()] = true
			break
		}
	}

	if err := doc.Save(); err != nil {
		return Result{}, append(diags, Errorf("saving %s: %v", req.Path, err))
	}
	return Result{Path: req.Path, OK: true}, diags
}
