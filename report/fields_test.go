package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/mwalraven/reportkit/docx"
)

func TestSetFields(t *testing.T) {
	path := createDocx(t, fieldTableXML())

	res, diags := SetFields(FieldRequest{
		Path:        path,
		ProjectName: "Roof A",
		Client:      "Acme",
		Date:        "2025-03-01",
		Version:     "1.0",
		Author:      "JW",
		CheckedBy:   "MK",
		Apply:       true,
	})
	if !res.OK {
		t.Fatalf("SetFields() failed: %s", diagMessages(diags))
	}

	doc, err := docx.Open(path)
	if err != nil {
		t.Fatalf("reopening: %v", err)
	}
	rows := doc.Tables()[0].Rows()

	want := map[string]string{
		"ProjectName": "Roof A",
		"Client":      "Acme",
		"Date":        "2025-03-01",
		"Version":     "1.0",
		"Author":      "JW",
		"Checked by":  "MK",
		"Reference":   "keep me",
	}
	for _, row := range rows {
		key := row.CellText(0)
		if got := row.CellText(1); got != want[key] {
			t.Errorf("%s = %q, want %q", key, got, want[key])
		}
	}
}

func TestSetFields_EmptyValueBlanksCell(t *testing.T) {
	// Start from a table with stale values everywhere.
	body := tableXMLOf(
		[]string{"ProjectName", "stale project"},
		[]string{"Client", "stale client"},
		[]string{"Date", "stale date"},
	)
	path := createDocx(t, body)

	res, diags := SetFields(FieldRequest{
		Path:        path,
		ProjectName: "Acme",
		Apply:       true,
		Now:         func() time.Time { return time.Date(2026, 8, 29, 9, 0, 0, 0, time.Local) },
	})
	if !res.OK {
		t.Fatalf("SetFields() failed: %s", diagMessages(diags))
	}

	doc, err := docx.Open(path)
	if err != nil {
		t.Fatalf("reopening: %v", err)
	}
	rows := doc.Tables()[0].Rows()
	if got := rows[0].CellText(1); got != "Acme" {
		t.Errorf("project = %q, want %q", got, "Acme")
	}
	// The client row stays, its value blanked rather than deleted.
	if got := rows[1].CellText(0); got != "Client" {
		t.Errorf("client row deleted: key = %q", got)
	}
	if got := rows[1].CellText(1); got != "" {
		t.Errorf("client = %q, want blank", got)
	}
	// Empty date input blanks the date cell too.
	if got := rows[2].CellText(1); got != "" {
		t.Errorf("date = %q, want blank", got)
	}
}

func TestSetFields_BadDateWarnsAndUsesNow(t *testing.T) {
	path := createDocx(t, fieldTableXML())
	clock := func() time.Time { return time.Date(2026, 8, 29, 9, 0, 0, 0, time.Local) }

	res, diags := SetFields(FieldRequest{
		Path:  path,
		Date:  "2024-13-40",
		Apply: true,
		Now:   clock,
	})
	if !res.OK {
		t.Fatalf("SetFields() failed: %s", diagMessages(diags))
	}
	if !hasSeverity(diags, SeverityWarning) || !strings.Contains(diagMessages(diags), "2024-13-40") {
		t.Errorf("expected warning naming the raw value, got: %s", diagMessages(diags))
	}

	doc, err := docx.Open(path)
	if err != nil {
		t.Fatalf("reopening: %v", err)
	}
	for _, row := range doc.Tables()[0].Rows() {
		if row.CellText(0) == "Date" {
			if got := row.CellText(1); got != "2026-08-29" {
				t.Errorf("date = %q, want fallback %q", got, "2026-08-29")
			}
			return
		}
	}
	t.Fatal("date row not found")
}

func TestSetFields_MissingLabelSkipped(t *testing.T) {
	// No "version" row; the updater must not fail.
	body := tableXMLOf(
		[]string{"ProjectName", ""},
		[]string{"Client", ""},
		[]string{"Date", ""},
	)
	path := createDocx(t, body)

	res, diags := SetFields(FieldRequest{
		Path:    path,
		Version: "2.0",
		Client:  "Acme",
		Apply:   true,
	})
	if !res.OK {
		t.Fatalf("SetFields() failed: %s", diagMessages(diags))
	}

	doc, err := docx.Open(path)
	if err != nil {
		t.Fatalf("reopening: %v", err)
	}
	if got := doc.Tables()[0].Rows()[1].CellText(1); got != "Acme" {
		t.Errorf("client = %q, want %q", got, "Acme")
	}
}

func TestSetFields_GateFalse(t *testing.T) {
	path := createDocx(t, fieldTableXML())
	before := fileBytes(t, path)

	res, diags := SetFields(FieldRequest{Path: path, ProjectName: "Acme"})
	if res.OK {
		t.Fatal("expected OK=false for gate off")
	}
	if !hasSeverity(diags, SeverityRemark) || hasSeverity(diags, SeverityError) {
		t.Errorf("expected remark only, got: %s", diagMessages(diags))
	}
	if !bytes.Equal(before, fileBytes(t, path)) {
		t.Error("file changed despite gate off")
	}
}

func TestSetFields_NoMatchingTable(t *testing.T) {
	path := createDocx(t, tableXMLOf([]string{"alpha", "beta"}))
	before := fileBytes(t, path)

	res, diags := SetFields(FieldRequest{Path: path, ProjectName: "Acme", Apply: true})
	if res.OK {
		t.Fatal("expected failure without a matching table")
	}
	if !strings.Contains(diagMessages(diags), "no project info table") {
		t.Errorf("diagnostics = %s", diagMessages(diags))
	}
	if !bytes.Equal(before, fileBytes(t, path)) {
		t.Error("file changed despite lookup failure")
	}
}

func TestSetFields_EmptyPath(t *testing.T) {
	res, diags := SetFields(FieldRequest{Apply: true})
	if res.OK || !hasSeverity(diags, SeverityError) {
		t.Errorf("expected error for empty path, got OK=%v diags=%s", res.OK, diagMessages(diags))
	}
}
