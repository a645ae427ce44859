package report

import (
	"archive/zip"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// revisionHeader is the header row of a matching revision table.
var revisionHeader = []string{"Revisie", "Datum", "Status", "Toelichting", "Opsteller", "Controleur"}

// createDocx creates a minimal DOCX whose body holds bodyXML and returns
// its path.
func createDocx(t *testing.T, bodyXML string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "working.docx")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}

	zw := zip.NewWriter(f)

	contentTypes := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Default Extension="xml" ContentType="application/xml"/>
  <Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`
	w, _ := zw.Create("[Content_Types].xml")
	w.Write([]byte(contentTypes))

	rels := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`
	w, _ = zw.Create("_rels/.rels")
	w.Write([]byte(rels))

	document := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>` + bodyXML + `</w:body>
</w:document>`
	w, _ = zw.Create("word/document.xml")
	w.Write([]byte(document))

	zw.Close()
	f.Close()

	return path
}

// tableXMLOf builds a table where each inner slice is one row of
// plain-text cells.
func tableXMLOf(rows ...[]string) string {
	var sb strings.Builder
	sb.WriteString("<w:tbl>")
	for _, cells := range rows {
		sb.WriteString("<w:tr>")
		for _, c := range cells {
			sb.WriteString(`<w:tc><w:tcPr><w:tcW w:w="0" w:type="auto"/></w:tcPr><w:p><w:r><w:t>`)
			sb.WriteString(c)
			sb.WriteString(`</w:t></w:r></w:p></w:tc>`)
		}
		sb.WriteString("</w:tr>")
	}
	sb.WriteString("</w:tbl>")
	return sb.String()
}

// fieldTableXML is a two-column project-info table with blank values.
func fieldTableXML() string {
	return tableXMLOf(
		[]string{"ProjectName", ""},
		[]string{"Client", ""},
		[]string{"Date", ""},
		[]string{"Version", ""},
		[]string{"Author", ""},
		[]string{"Checked by", ""},
		[]string{"Reference", "keep me"},
	)
}

// fileBytes reads the whole file for byte-identity assertions.
func fileBytes(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return data
}

// diagMessages joins all diagnostic messages for substring assertions.
func diagMessages(diags []Diagnostic) string {
	return FormatDiagnostics(diags)
}

// hasSeverity reports whether any diagnostic carries the severity.
func hasSeverity(diags []Diagnostic, s Severity) bool {
	for _, d := range diags {
		if d.Severity == s {
			return true
		}
	}
	return false
}
