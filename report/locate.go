package report

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/mwalraven/reportkit/docx"
)

// revisionKeywords are the header labels a revision table must carry, all
// in its first row. The templates are Dutch-language engineering reports.
var revisionKeywords = []string{"revisie", "datum", "status", "toelichting", "opsteller", "controleur"}

// fieldKeywords identify the two-column project-info table; at least
// minFieldKeywords of them must appear among the first-column texts.
var fieldKeywords = []string{"projectname", "client", "date"}

const minFieldKeywords = 3

// fold normalizes text for matching: trimmed and Unicode case-folded.
func fold(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// containsKeyword reports whether the folded text contains the keyword.
// Matching is deliberately substring containment, not equality, to
// tolerate header text variation in existing templates.
func containsKeyword(text, keyword string) bool {
	return strings.Contains(fold(text), fold(keyword))
}

// FindTable returns the first table in document order satisfying match,
// or nil when no table qualifies. A nil result is not an error by itself;
// callers turn it into a reported failure.
func FindTable(doc *docx.Document, match func(*docx.Table) bool) *docx.Table {
	for _, t := range doc.Tables() {
		if match(t) {
			return t
		}
	}
	return nil
}

// HeaderContainsAll matches tables whose first-row cells contain every
// keyword, each keyword matched by any header cell.
func HeaderContainsAll(keywords []string) func(*docx.Table) bool {
	return func(t *docx.Table) bool {
		rows := t.Rows()
		if len(rows) == 0 {
			return false
		}
		header := rows[0].CellTexts()
		for _, kw := range keywords {
			found := false
			for _, cell := range header {
				if containsKeyword(cell, kw) {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		}
		return true
	}
}

// KeyColumnContainsAny matches tables whose per-row first-cell texts
// contain at least min distinct keywords.
func KeyColumnContainsAny(keywords []string, min int) func(*docx.Table) bool {
	return func(t *docx.Table) bool {
		found := 0
		for _, kw := range keywords {
			for _, row := range t.Rows() {
				if containsKeyword(row.CellText(0), kw) {
					found++
					break
				}
			}
		}
		return found >= min
	}
}

// findRevisionTable locates the six-column revision table.
func findRevisionTable(doc *docx.Document) *docx.Table {
	return FindTable(doc, HeaderContainsAll(revisionKeywords))
}

// findFieldTable locates the two-column project-info table.
func findFieldTable(doc *docx.Document) *docx.Table {
	return FindTable(doc, KeyColumnContainsAny(fieldKeywords, minFieldKeywords))
}
