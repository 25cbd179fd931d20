package diagnostic

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/RCoeurjoly/edea/internal/common"
)

// Diagnostics holds all findings of a run.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity
	// Code identifies the kind of finding.
	Code Code
	// Message is the human-readable description.
	Message string
	// File the finding belongs to.
	File string
	// Path of the record inside the document, if known.
	Path string
	// Line and Column are set for syntax errors, 1-based.
	Line   int
	Column int
	// Suggestions are potential fixes or alternatives.
	Suggestions []string
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticError
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// Add files d under its severity.
func (d *Diagnostics) Add(diag Diagnostic) {
	switch diag.Severity {
	case DiagnosticError:
		d.Errors = append(d.Errors, diag)
	case DiagnosticWarning:
		d.Warnings = append(d.Warnings, diag)
	default:
		d.Infos = append(d.Infos, diag)
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code Code, message, file, path string) {
	d.Add(Diagnostic{Severity: DiagnosticError, Code: code, Message: message, File: file, Path: path})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code Code, message, file, path string) {
	d.Add(Diagnostic{Severity: DiagnosticWarning, Code: code, Message: message, File: file, Path: path})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code Code, message, file, path string) {
	d.Add(Diagnostic{Severity: DiagnosticInfo, Code: code, Message: message, File: file, Path: path})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return !d.HasErrors()
}

// Sort orders every severity by file, keeping the order within a file.
// Files checked concurrently report in any order.
func (d *Diagnostics) Sort() {
	for _, list := range [][]Diagnostic{d.Errors, d.Warnings, d.Infos} {
		sort.SliceStable(list, func(i, j int) bool { return list[i].File < list[j].File })
	}
}

// All returns errors, then warnings, then infos.
func (d *Diagnostics) All() []Diagnostic {
	out := make([]Diagnostic, 0, len(d.Errors)+len(d.Warnings)+len(d.Infos))
	out = append(out, d.Errors...)
	out = append(out, d.Warnings...)

	return append(out, d.Infos...)
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// Summary is a one-line count, "2 errors, 1 warning".
func (d *Diagnostics) Summary() string {
	return plural(len(d.Errors), "error") + ", " + plural(len(d.Warnings), "warning")
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}

	return fmt.Sprintf("%d %ss", n, noun)
}

// String returns a formatted diagnostic string, file:line:col: severity
// [code] message.
func (d Diagnostic) String() string {
	var prefix []string
	if d.File != "" {
		loc := d.File
		if d.Line > 0 {
			loc = fmt.Sprintf("%s:%d:%d", loc, d.Line, d.Column)
		}

		prefix = append(prefix, loc+":")
	}

	prefix = append(prefix, d.Severity.String())

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if s, ok := common.First(d.Suggestions); ok && !strings.Contains(msg, s) {
		msg += fmt.Sprintf(" (did you mean %q?)", s)
	}

	return strings.Join(prefix, " ") + " " + msg
}
