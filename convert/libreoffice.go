package convert

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/mwalraven/reportkit/format"
)

// binaries are the LibreOffice launcher names probed on PATH, in order.
var binaries = []string{"soffice", "libreoffice"}

// Runner executes an external command and returns its combined output.
// It exists so tests can fabricate conversions without LibreOffice.
type Runner func(name string, args ...string) ([]byte, error)

// LibreOffice converts documents by running a headless LibreOffice
// instance per call. Headless mode is non-interactive, leaves no
// recent-file traces, and exits when the conversion finishes. There is
// no timeout: a hung instance blocks the caller.
type LibreOffice struct {
	// Binary overrides PATH discovery when set.
	Binary string
	// Run overrides command execution; nil means exec.Command.
	Run Runner
}

// NewLibreOffice returns a converter that discovers the LibreOffice
// binary on PATH at conversion time.
func NewLibreOffice() *LibreOffice {
	return &LibreOffice{}
}

// Convert renders inputPath to PDF next to the input file and returns
// the output path.
func (lo *LibreOffice) Convert(inputPath string) (string, error) {
	if _, err := os.Stat(inputPath); err != nil {
		return "", fmt.Errorf("input document: %w", err)
	}

	bin, err := lo.binary()
	if err != nil {
		return "", err
	}

	run := lo.Run
	if run == nil {
		run = func(name string, args ...string) ([]byte, error) {
			return exec.Command(name, args...).CombinedOutput()
		}
	}

	outDir := filepath.Dir(inputPath)
	args := []string{"--headless", "--norestore", "--convert-to", "pdf", "--outdir", outDir, inputPath}
	out, err := run(bin, args...)
	if err != nil {
		return "", fmt.Errorf("running %s: %w: %s", bin, err, strings.TrimSpace(string(out)))
	}

	pdfPath := format.SwapExtension(inputPath, format.PDF)
	if _, err := os.Stat(pdfPath); err != nil {
		return "", fmt.Errorf("conversion produced no output at %s: %w", pdfPath, err)
	}
	return pdfPath, nil
}

// binary resolves the LibreOffice launcher to invoke.
func (lo *LibreOffice) binary() (string, error) {
	if lo.Binary != "" {
		return lo.Binary, nil
	}
	for _, name := range binaries {
		if path, err := exec.LookPath(name); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("libreoffice not found on PATH (tried %s)", strings.Join(binaries, ", "))
}
