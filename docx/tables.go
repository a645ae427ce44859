package docx

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
)

// Table is a top-level table in the document body. Row indexes are
// 0-based; by convention row 0 holds the header or key labels.
type Table struct {
	doc  *Document
	xml  tableXML
	span tableSpan
}

// RowCount returns the number of rows in the table.
func (t *Table) RowCount() int {
	return len(t.xml.Rows)
}

// Rows returns the table's rows in order.
func (t *Table) Rows() []*Row {
	rows := make([]*Row, len(t.xml.Rows))
	for i := range rows {
		rows[i] = &Row{table: t, idx: i}
	}
	return rows
}

// ReplaceBodyRows queues an edit that removes every row after the header
// row (row 0) and appends one new plain-text row per entry in rows. The
// header row's bytes are left untouched.
func (t *Table) ReplaceBodyRows(rows [][]string) error {
	if t.RowCount() == 0 {
		return fmt.Errorf("table has no header row")
	}

	header := t.span.rows[0]
	end := t.span.rows[len(t.span.rows)-1].end

	var buf bytes.Buffer
	for _, cells := range rows {
		writeRowXML(&buf, cells)
	}
	return t.doc.addEdit(header.end, end, buf.Bytes())
}

// Row is a single table row.
type Row struct {
	table *Table
	idx   int
}

// Index returns the row's 0-based position in the table.
func (r *Row) Index() int {
	return r.idx
}

// CellCount returns the number of cells in the row.
func (r *Row) CellCount() int {
	return len(r.table.xml.Rows[r.idx].Cells)
}

// CellTexts returns the plain text of each cell, with run text
// concatenated and paragraphs joined by newlines.
func (r *Row) CellTexts() []string {
	cells := r.table.xml.Rows[r.idx].Cells
	texts := make([]string, len(cells))
	for i, c := range cells {
		texts[i] = cellText(c)
	}
	return texts
}

// CellText returns the text of cell col, or "" if the row has no such cell.
func (r *Row) CellText(col int) string {
	cells := r.table.xml.Rows[r.idx].Cells
	if col < 0 || col >= len(cells) {
		return ""
	}
	return cellText(cells[col])
}

// SetCellText queues an edit replacing the entire content of cell col
// with a single preserved-whitespace paragraph. Cell properties (<w:tcPr>)
// are kept; the old paragraph content is discarded.
func (r *Row) SetCellText(col int, text string) error {
	row := r.table.span.rows[r.idx]
	if col < 0 || col >= len(row.cells) {
		return fmt.Errorf("row %d has no cell %d", r.idx, col)
	}

	c := row.cells[col]
	var buf bytes.Buffer
	writeParagraphXML(&buf, text)
	return r.table.doc.addEdit(c.contentStart, c.contentEnd, buf.Bytes())
}

// cellText concatenates all run text within a cell, ignoring formatting.
func cellText(c tableCellXML) string {
	parts := make([]string, 0, len(c.Paragraphs))
	for _, p := range c.Paragraphs {
		var sb strings.Builder
		for _, run := range p.Runs {
			for _, txt := range run.Text {
				sb.WriteString(txt.Value)
			}
		}
		for _, h := range p.Hyperlinks {
			for _, run := range h.Runs {
				for _, txt := range run.Text {
					sb.WriteString(txt.Value)
				}
			}
		}
		parts = append(parts, sb.String())
	}
	return strings.Join(parts, "\n")
}

// writeRowXML emits a <w:tr> with one plain-text cell per value.
func writeRowXML(buf *bytes.Buffer, cells []string) {
	buf.WriteString("<w:tr>")
	for _, text := range cells {
		buf.WriteString(`<w:tc><w:tcPr><w:tcW w:w="0" w:type="auto"/></w:tcPr>`)
		writeParagraphXML(buf, text)
		buf.WriteString(`</w:tc>`)
	}
	buf.WriteString("</w:tr>")
}

// writeParagraphXML emits a single-run paragraph with whitespace preserved.
func writeParagraphXML(buf *bytes.Buffer, text string) {
	buf.WriteString(`<w:p><w:r><w:t xml:space="preserve">`)
	// EscapeText cannot fail when writing to a bytes.Buffer.
	_ = xml.EscapeText(buf, []byte(text))
	buf.WriteString(`</w:t></w:r></w:p>`)
}
