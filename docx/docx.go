// Package docx reads and edits DOCX (Office Open XML) documents.
//
// The package is built for one open-mutate-save cycle: open a document,
// queue table edits through the Table and Row types, then call Save.
// Edits splice byte ranges of word/document.xml, so every part of the
// package other than the edited table regions round-trips byte-identically.
package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"sort"
)

const documentPart = "word/document.xml"

// part is a single file inside the DOCX archive, kept in original order.
type part struct {
	name string
	data []byte
}

// edit is a queued replacement of document.xml bytes [start, end).
type edit struct {
	start, end int64
	repl       []byte
}

// Document is an open DOCX document held fully in memory.
type Document struct {
	path   string
	parts  []part
	tables []*Table
	edits  []edit
}

// Open reads a DOCX file into memory and parses its tables.
func Open(path string) (*Document, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("opening ZIP archive: %w", err)
	}
	defer zr.Close()

	d := &Document{path: path}
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("opening part %s: %w", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("reading part %s: %w", f.Name, err)
		}
		d.parts = append(d.parts, part{name: f.Name, data: data})
	}

	for _, required := range []string{"[Content_Types].xml", documentPart} {
		if d.partIndex(required) < 0 {
			return nil, fmt.Errorf("missing required file: %s", required)
		}
	}

	if err := d.parseDocument(); err != nil {
		return nil, err
	}
	return d, nil
}

// Path returns the file the document was opened from.
func (d *Document) Path() string {
	return d.path
}

// Tables returns the top-level tables in document order.
func (d *Document) Tables() []*Table {
	return d.tables
}

// Save applies queued edits and rewrites the document in place.
func (d *Document) Save() error {
	return d.SaveAs(d.path)
}

// SaveAs applies queued edits and writes the document to path. The
// document is reparsed afterwards so the handle reflects the saved state.
func (d *Document) SaveAs(path string) error {
	idx := d.partIndex(documentPart)
	d.parts[idx].data = d.editedDocument()
	d.edits = nil

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, p := range d.parts {
		w, err := zw.Create(p.name)
		if err != nil {
			return fmt.Errorf("creating part %s: %w", p.name, err)
		}
		if _, err := w.Write(p.data); err != nil {
			return fmt.Errorf("writing part %s: %w", p.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("finalizing archive: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	d.path = path
	return d.parseDocument()
}

// partIndex returns the index of a part by name, or -1.
func (d *Document) partIndex(name string) int {
	for i, p := range d.parts {
		if p.name == name {
			return i
		}
	}
	return -1
}

// parseDocument unmarshals document.xml and pairs each body-level table
// with its byte span.
func (d *Document) parseDocument() error {
	data := d.parts[d.partIndex(documentPart)].data

	var doc documentXML
	if err := xml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("unmarshaling document.xml: %w", err)
	}
	if doc.Body == nil {
		return fmt.Errorf("document has no body")
	}

	spans, err := scanTables(data)
	if err != nil {
		return fmt.Errorf("scanning document.xml: %w", err)
	}
	if len(spans) != len(doc.Body.Tables) {
		return fmt.Errorf("table scan mismatch: %d spans for %d parsed tables", len(spans), len(doc.Body.Tables))
	}

	d.tables = d.tables[:0]
	d.edits = nil
	for i := range doc.Body.Tables {
		d.tables = append(d.tables, &Table{doc: d, xml: doc.Body.Tables[i], span: spans[i]})
	}
	return nil
}

// addEdit queues a byte-range replacement, rejecting overlaps.
func (d *Document) addEdit(start, end int64, repl []byte) error {
	size := int64(len(d.parts[d.partIndex(documentPart)].data))
	if start < 0 || end < start || end > size {
		return fmt.Errorf("edit range [%d, %d) out of bounds", start, end)
	}
	for _, e := range d.edits {
		if start < e.end && e.start < end {
			return fmt.Errorf("conflicting edits at byte range [%d, %d)", start, end)
		}
	}
	d.edits = append(d.edits, edit{start: start, end: end, repl: repl})
	return nil
}

// editedDocument returns document.xml with all queued edits applied.
func (d *Document) editedDocument() []byte {
	data := d.parts[d.partIndex(documentPart)].data
	if len(d.edits) == 0 {
		return data
	}

	edits := append([]edit(nil), d.edits...)
	sort.Slice(edits, func(i, j int) bool { return edits[i].start < edits[j].start })

	var buf bytes.Buffer
	var pos int64
	for _, e := range edits {
		buf.Write(data[pos:e.start])
		buf.Write(e.repl)
		pos = e.end
	}
	buf.Write(data[pos:])
	return buf.Bytes()
}
