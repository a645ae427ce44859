package docx

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
)

// span is a half-open byte range [start, end) in word/document.xml.
type span struct {
	start, end int64
}

// cellSpan records a cell's full extent plus the range of its content:
// everything after the opening tag (and after <w:tcPr>, when present) up
// to the closing </w:tc> tag.
type cellSpan struct {
	span
	contentStart int64
	contentEnd   int64
}

// rowSpan records a row's extent and its direct cells.
type rowSpan struct {
	span
	cells []cellSpan
}

// tableSpan records a table's extent and its direct rows.
type tableSpan struct {
	span
	rows []rowSpan
}

// scanTables records the byte spans of every table that is a direct child
// of the document body, along with each table's direct rows and cells.
// Tables nested inside cells are skipped so that span indexes line up
// with the tables collected by xml.Unmarshal.
func scanTables(data []byte) ([]tableSpan, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))

	var (
		tables   []tableSpan
		stack    []string
		tblDepth = -1 // stack length when the current table opened
		cur      *tableSpan
		curRow   *rowSpan
		curCell  *cellSpan
	)

	for {
		start := dec.InputOffset()
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			parent := ""
			if len(stack) > 0 {
				parent = stack[len(stack)-1]
			}
			switch t.Name.Local {
			case "tbl":
				if cur == nil && parent == "body" {
					tables = append(tables, tableSpan{span: span{start: start}})
					cur = &tables[len(tables)-1]
					tblDepth = len(stack)
				}
			case "tr":
				if cur != nil && parent == "tbl" && len(stack) == tblDepth+1 {
					cur.rows = append(cur.rows, rowSpan{span: span{start: start}})
					curRow = &cur.rows[len(cur.rows)-1]
				}
			case "tc":
				if curRow != nil && parent == "tr" && len(stack) == tblDepth+2 {
					curRow.cells = append(curRow.cells, cellSpan{span: span{start: start}})
					curCell = &curRow.cells[len(curRow.cells)-1]
				}
			}
			stack = append(stack, t.Name.Local)
			if curCell != nil && t.Name.Local == "tc" && len(stack) == tblDepth+3 {
				curCell.contentStart = dec.InputOffset()
			}
		case xml.EndElement:
			if len(stack) == 0 {
				return nil, fmt.Errorf("unbalanced end element </%s>", t.Name.Local)
			}
			stack = stack[:len(stack)-1]
			switch t.Name.Local {
			case "tcPr":
				// Cell content begins after the properties element.
				if curCell != nil && len(stack) == tblDepth+3 {
					curCell.contentStart = dec.InputOffset()
				}
			case "tc":
				if curCell != nil && len(stack) == tblDepth+2 {
					curCell.contentEnd = start
					curCell.end = dec.InputOffset()
					curCell = nil
				}
			case "tr":
				if curRow != nil && len(stack) == tblDepth+1 {
					curRow.end = dec.InputOffset()
					curRow = nil
				}
			case "tbl":
				if cur != nil && len(stack) == tblDepth {
					cur.end = dec.InputOffset()
					cur = nil
					tblDepth = -1
				}
			}
		}
	}

	if cur != nil || curRow != nil || curCell != nil {
		return nil, fmt.Errorf("document.xml ended inside a table element")
	}
	return tables, nil
}
