// Package report implements the report-template update operations:
// locating tables by label text, rewriting revision rows, filling
// key-value project fields, and gating PDF conversion.
//
// Operations never panic and never return raw errors to the caller.
// Every entry point returns a Result with an OK flag plus a slice of
// severity-tagged diagnostics, mirroring the host-style contract where
// failures are reported out of band rather than thrown.
package report

import (
	"fmt"
	"strings"
)

// Severity classifies a diagnostic message.
type Severity int

const (
	// SeverityRemark marks informational no-op notices.
	SeverityRemark Severity = iota
	// SeverityWarning marks recovered problems; the operation proceeded.
	SeverityWarning
	// SeverityError marks failures that aborted the operation.
	SeverityError
)

// String returns the lowercase name of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return "remark"
	}
}

// Diagnostic is a single side-channel message produced by an operation.
type Diagnostic struct {
	Severity Severity
	Message  string
}

// String returns the diagnostic as "severity: message".
func (d Diagnostic) String() string {
	return d.Severity.String() + ": " + d.Message
}

// Errorf builds an error-severity diagnostic.
func Errorf(format string, args ...any) Diagnostic {
	return Diagnostic{Severity: SeverityError, Message: fmt.Sprintf(format, args...)}
}

// Warningf builds a warning-severity diagnostic.
func Warningf(format string, args ...any) Diagnostic {
	return Diagnostic{Severity: SeverityWarning, Message: fmt.Sprintf(format, args...)}
}

// Remarkf builds a remark-severity diagnostic.
func Remarkf(format string, args ...any) Diagnostic {
	return Diagnostic{Severity: SeverityRemark, Message: fmt.Sprintf(format, args...)}
}

// FormatDiagnostics joins diagnostics into a readable multi-line string.
func FormatDiagnostics(diags []Diagnostic) string {
	lines := make([]string, len(diags))
	for i, d := range diags {
		lines[i] = d.String()
	}
	return strings.Join(lines, "\n")
}

// HasError reports whether any diagnostic is error severity.
func HasError(diags []Diagnostic) bool {
	for _, d := range diags {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Result is the two-part outcome every operation returns. Path holds the
// written (or would-be) document path; OK reports whether the operation
// performed its work.
type Result struct {
	Path string
	OK   bool
}
