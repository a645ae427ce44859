package convert

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeInput(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "report.docx")
	if err := os.WriteFile(path, []byte("docx-bytes"), 0o644); err != nil {
		t.Fatalf("writing input: %v", err)
	}
	return path
}

func TestLibreOffice_Convert(t *testing.T) {
	input := writeInput(t)
	pdfPath := strings.TrimSuffix(input, ".docx") + ".pdf"

	var gotName string
	var gotArgs []string
	lo := &LibreOffice{
		Binary: "soffice",
		Run: func(name string, args ...string) ([]byte, error) {
			gotName = name
			gotArgs = args
			// Fabricate the file LibreOffice would produce.
			return nil, os.WriteFile(pdfPath, []byte("%PDF-1.4\n"), 0o644)
		},
	}

	out, err := lo.Convert(input)
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if out != pdfPath {
		t.Errorf("output = %q, want %q", out, pdfPath)
	}
	if gotName != "soffice" {
		t.Errorf("binary = %q, want soffice", gotName)
	}

	joined := strings.Join(gotArgs, " ")
	for _, want := range []string{"--headless", "--convert-to pdf", "--outdir " + filepath.Dir(input), input} {
		if !strings.Contains(joined, want) {
			t.Errorf("args %q missing %q", joined, want)
		}
	}
}

func TestLibreOffice_MissingInput(t *testing.T) {
	lo := &LibreOffice{Binary: "soffice", Run: func(string, ...string) ([]byte, error) {
		t.Fatal("runner must not be invoked for missing input")
		return nil, nil
	}}
	if _, err := lo.Convert(filepath.Join(t.TempDir(), "gone.docx")); err == nil {
		t.Fatal("expected error for missing input")
	}
}

func TestLibreOffice_RunnerFailure(t *testing.T) {
	input := writeInput(t)
	lo := &LibreOffice{
		Binary: "soffice",
		Run: func(string, ...string) ([]byte, error) {
			return []byte("Fatal exception"), fmt.Errorf("exit status 77")
		},
	}
	_, err := lo.Convert(input)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "exit status 77") || !strings.Contains(err.Error(), "Fatal exception") {
		t.Errorf("error should carry cause and output: %v", err)
	}
}

func TestLibreOffice_NoOutputProduced(t *testing.T) {
	input := writeInput(t)
	lo := &LibreOffice{
		Binary: "soffice",
		Run: func(string, ...string) ([]byte, error) {
			return nil, nil // succeed without writing anything
		},
	}
	if _, err := lo.Convert(input); err == nil {
		t.Fatal("expected error when no output file appears")
	}
}

func TestLibreOffice_BinaryNotFound(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	input := writeInput(t)
	lo := NewLibreOffice()
	_, err := lo.Convert(input)
	if err == nil {
		t.Fatal("expected discovery error with empty PATH")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("error = %v", err)
	}
}

func TestFake_Convert(t *testing.T) {
	input := writeInput(t)

	f := &Fake{}
	out, err := f.Convert(input)
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if want := strings.TrimSuffix(input, ".docx") + ".pdf"; out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("placeholder output missing: %v", err)
	}
	if len(f.Calls) != 1 {
		t.Errorf("Calls = %v", f.Calls)
	}
}
