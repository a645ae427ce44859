// Package convert renders DOCX documents to fixed-layout PDF through an
// external application. The Converter interface keeps the calling
// components testable without that application installed.
package convert

// Converter turns a document at inputPath into its fixed-layout
// counterpart and returns the output path.
type Converter interface {
	Convert(inputPath string) (string, error)
}
