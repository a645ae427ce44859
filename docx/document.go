package docx

import "encoding/xml"

// documentXML mirrors the parts of word/document.xml this package reads.
// Only table structure and run text are modeled; everything else in the
// document is carried through edits as raw bytes.
type documentXML struct {
	XMLName xml.Name `xml:"document"`
	Body    *bodyXML `xml:"body"`
}

// bodyXML represents the document body. Only direct child tables are
// collected; their document order matches the span scanner's output.
type bodyXML struct {
	Tables []tableXML `xml:"tbl"`
}

// tableXML represents a table (<w:tbl>).
type tableXML struct {
	XMLName xml.Name      `xml:"tbl"`
	Rows    []tableRowXML `xml:"tr"`
}

// tableRowXML represents a table row (<w:tr>).
type tableRowXML struct {
	Cells []tableCellXML `xml:"tc"`
}

// tableCellXML represents a table cell (<w:tc>).
type tableCellXML struct {
	Paragraphs []paragraphXML `xml:"p"`
}

// paragraphXML represents a paragraph (<w:p>). Text inside hyperlinks is
// collected after the paragraph's direct runs, which is sufficient for
// label matching but does not preserve interleaving.
type paragraphXML struct {
	Runs       []runXML       `xml:"r"`
	Hyperlinks []hyperlinkXML `xml:"hyperlink"`
}

// hyperlinkXML represents a hyperlink wrapper around runs.
type hyperlinkXML struct {
	Runs []runXML `xml:"r"`
}

// runXML represents a text run (<w:r>).
type runXML struct {
	Text []textXML `xml:"t"`
}

// textXML represents text content (<w:t>).
type textXML struct {
	Space string `xml:"space,attr"`
	Value string `xml:",chardata"`
}
