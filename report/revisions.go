package report

import (
	"os"
	"strings"
	"time"

	"github.com/mwalraven/reportkit/docx"
)

// RevisionRequest describes one revision-table update.
type RevisionRequest struct {
	// Path of the working document, mutated in place.
	Path string
	// Records to write, in order; at least one is required and each
	// needs a Revision value.
	Records []Record
	// Apply gates the operation; false is a reported no-op.
	Apply bool
	// Now overrides the clock used for unparseable dates. Nil means
	// time.Now.
	Now func() time.Time
}

// UpdateRevisions replaces the body rows of the document's revision table
// with one row per record. The header row is never touched. All failures
// are reported as diagnostics; nothing is raised to the caller.
func UpdateRevisions(req RevisionRequest) (Result, []Diagnostic) {
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
	if len(req.Records) == 0 {
		return Result{}, append(diags, Errorf("at least one revision is required"))
	}
	for i, rec := range req.Records {
		if strings.TrimSpace(rec.Revision) == "" {
			return Result{}, append(diags, Errorf("record %d has no revision value", i))
		}
	}

	doc, err := docx.Open(req.Path)
	if err != nil {
		return Result{}, append(diags, Errorf("opening %s: %v", req.Path, err))
	}

	table := findRevisionTable(doc)
	if table == nil {
		return Result{}, append(diags, Errorf("no revision table found in %s", req.Path))
	}

	rows := make([][]string, len(req.Records))
	for i, rec := range req.Records {
		date := rec.Date
		if date != "" {
			resolved, ok := ResolveDate(rec.Date, req.Now)
			if !ok {
				diags = append(diags, Warningf("record %d: unparseable date %q, using current date", i, rec.Date))
			}
			date = resolved
		}
		rows[i] = []string{rec.Revision, date, rec.Status, rec.Comment, rec.Author, rec.Checker}
	}

	if err := table.ReplaceBodyRows(rows); err != nil {
		return Result{}, append(diags, Errorf("rewriting revision table: %v", err))
	}
	if err := doc.Save(); err != nil {
		return Result{}, append(diags, Errorf("saving %s: %v", req.Path, err))
	}
	return Result{Path: req.Path, OK: true}, diags
}
