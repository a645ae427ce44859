package report

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/mwalraven/reportkit/convert"
)

func TestRenderPDF(t *testing.T) {
	path := createDocx(t, fieldTableXML())
	fake := &convert.Fake{}

	res, diags := RenderPDF(RenderRequest{Path: path, Apply: true}, fake)
	if !res.OK {
		t.Fatalf("RenderPDF() failed: %s", diagMessages(diags))
	}
	if !strings.HasSuffix(res.Path, ".pdf") {
		t.Errorf("output path = %q, want .pdf", res.Path)
	}
	if len(fake.Calls) != 1 || fake.Calls[0] != path {
		t.Errorf("converter calls = %v, want [%s]", fake.Calls, path)
	}
}

func TestRenderPDF_GateFalse(t *testing.T) {
	path := createDocx(t, fieldTableXML())
	fake := &convert.Fake{}

	res, diags := RenderPDF(RenderRequest{Path: path}, fake)
	if res.OK {
		t.Fatal("expected OK=false for gate off")
	}
	if len(fake.Calls) != 0 {
		t.Errorf("converter invoked despite gate off: %v", fake.Calls)
	}
	if !hasSeverity(diags, SeverityRemark) {
		t.Errorf("expected remark, got: %s", diagMessages(diags))
	}
}

func TestRenderPDF_MissingFile(t *testing.T) {
	fake := &convert.Fake{}
	res, diags := RenderPDF(RenderRequest{Path: "nope.docx", Apply: true}, fake)
	if res.OK || !hasSeverity(diags, SeverityError) {
		t.Errorf("expected error, got OK=%v diags=%s", res.OK, diagMessages(diags))
	}
	if len(fake.Calls) != 0 {
		t.Error("converter invoked for missing input")
	}
}

func TestRenderPDF_ConverterFailureReportsCause(t *testing.T) {
	path := createDocx(t, fieldTableXML())
	inner := errors.New("soffice exited with status 1")
	fake := &convert.Fake{Err: fmt.Errorf("conversion: %w", inner)}

	res, diags := RenderPDF(RenderRequest{Path: path, Apply: true}, fake)
	if res.OK {
		t.Fatal("expected failure")
	}
	msg := diagMessages(diags)
	if !strings.Contains(msg, "conversion") || !strings.Contains(msg, "status 1") {
		t.Errorf("diagnostic should carry the cause chain: %s", msg)
	}
}
