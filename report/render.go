package report

import (
	"errors"
	"os"
	"strings"

	"github.com/mwalraven/reportkit/convert"
)

// RenderRequest describes one document-to-PDF conversion.
type RenderRequest struct {
	// Path of the working document to convert.
	Path string
	// Apply gates the conversion; false is a reported no-op.
	Apply bool
}

// RenderPDF converts the working document through conv. The converter
// owns the external application for the duration of the call; this
// wrapper only applies the gate and validation contract and reports the
// cause chain of any failure as a diagnostic.
func RenderPDF(req RenderRequest, conv convert.Converter) (Result, []Diagnostic) {
	var diags []Diagnostic

	if strings.TrimSpace(req.Path) == "" {
		return Result{}, append(diags, Errorf("working document path is empty"))
	}
	if _, err := os.Stat(req.Path); err != nil {
		return Result{}, append(diags, Errorf("working document not found: %s", req.Path))
	}
	if !req.Apply {
		diags = append(diags, Remarkf("apply flag is false; %s not converted", req.Path))
		return Result{Path: req.Path}, diags
	}

	outPath, err := conv.Convert(req.Path)
	if err != nil {
		msg := err.Error()
		if inner := errors.Unwrap(err); inner != nil {
			msg += " (cause: " + inner.Error() + ")"
		}
		return Result{}, append(diags, Errorf("converting %s: %s", req.Path, msg))
	}
	return Result{Path: outPath, OK: true}, diags
}
