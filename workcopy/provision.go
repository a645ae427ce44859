// Package workcopy provisions non-destructive working copies of report
// templates, resolving name collisions so the template itself is never
// overwritten.
package workcopy

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mwalraven/reportkit/format"
	"github.com/mwalraven/reportkit/report"
)

// Request describes one working-copy provisioning.
type Request struct {
	// TemplatePath must name an existing template file.
	TemplatePath string
	// OutputDir for the working copy; empty means the template's own
	// directory.
	OutputDir string
	// FileName of the working copy; empty means the template's file
	// name. A missing .docx extension is appended.
	FileName string
	// Create gates the copy; false only resolves the candidate path.
	Create bool
}

// Result reports the resolved working path and echoes the template path.
type Result struct {
	WorkingPath  string
	TemplatePath string
	OK           bool
}

// Provision resolves the working-copy destination and, when Create is
// set, copies the template there. An existing file at the candidate path
// gets a numeric suffix (_1, _2, ...) until a free name is found. All
// failures are reported as diagnostics rather than returned errors.
func Provision(req Request) (Result, []report.Diagnostic) {
	var diags []report.Diagnostic

	tpl := strings.TrimSpace(req.TemplatePath)
	if tpl == "" {
		return Result{}, append(diags, report.Errorf("template path is empty"))
	}
	if _, err := os.Stat(tpl); err != nil {
		return Result{}, append(diags, report.Errorf("template not found: %s", tpl))
	}

	dir := req.OutputDir
	if dir == "" {
		dir = filepath.Dir(tpl)
	}
	name := req.FileName
	if name == "" {
		name = filepath.Base(tpl)
	}
	if format.Detect(name) != format.DOCX {
		name += format.DOCX.Extension()
	}

	candidate := filepath.Join(dir, name)
	if filepath.Clean(candidate) == filepath.Clean(tpl) {
		candidate = withSuffix(candidate, "_copy")
	}

	if !req.Create {
		diags = append(diags, report.Remarkf("create flag is false; resolved %s without copying", candidate))
		return Result{WorkingPath: candidate, TemplatePath: tpl}, diags
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Result{}, append(diags, report.Errorf("creating output directory %s: %v", dir, err))
	}

	dest := candidate
	for n := 1; exists(dest); n++ {
		dest = withSuffix(candidate, fmt.Sprintf("_%d", n))
	}

	if err := copyFile(tpl, dest); err != nil {
		return Result{}, append(diags, report.Errorf("copying template: %v", err))
	}
	return Result{WorkingPath: dest, TemplatePath: tpl, OK: true}, diags
}

// withSuffix inserts suffix before the path's extension.
func withSuffix(path, suffix string) string {
	ext := filepath.Ext(path)
	return path[:len(path)-len(ext)] + suffix + ext
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	// O_EXCL guards the race between the collision probe and the copy.
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
