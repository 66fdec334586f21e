// Package diag collects the non-fatal diagnostics of a run.
package diag

import (
	"errors"

	"github.com/hashicorp/hcl/v2"
)

// Summarizer is implemented by errors that provide a short diagnostic title,
// e.g. "Symbol not found".
type Summarizer interface {
	Summary() string
}

// Sink records diagnostics in the order they were reported.
type Sink struct {
	diags    hcl.Diagnostics
	errors   int
	warnings int
}

// NewSink creates an empty sink.
func NewSink() *Sink {
	return &Sink{}
}

// Error records err as an error diagnostic at rng.
func (s *Sink) Error(rng hcl.Range, err error) {
	s.Add(newDiagnostic(hcl.DiagError, rng, err))
}

// Warning records err as a warning at rng.
func (s *Sink) Warning(rng hcl.Range, err error) {
	s.Add(newDiagnostic(hcl.DiagWarning, rng, err))
}

// Add records a prepared diagnostic.
func (s *Sink) Add(d *hcl.Diagnostic) {
	switch d.Severity {
	case hcl.DiagError:
		s.errors++
	case hcl.DiagWarning:
		s.warnings++
	}
	s.diags = append(s.diags, d)
}

// Extend records all diagnostics, e.g. the ones returned by the parser.
func (s *Sink) Extend(diags hcl.Diagnostics) {
	for _, d := range diags {
		s.Add(d)
	}
}

func (s *Sink) Diagnostics() hcl.Diagnostics { return s.diags }

func (s *Sink) ErrorCount() int { return s.errors }

func (s *Sink) WarningCount() int { return s.warnings }

func (s *Sink) HasErrors() bool { return s.errors > 0 }

func newDiagnostic(sev hcl.DiagnosticSeverity, rng hcl.Range, err error) *hcl.Diagnostic {
	summary := "Error"
	if sev == hcl.DiagWarning {
		summary = "Warning"
	}
	var s Summarizer
	if errors.As(err, &s) {
		summary = s.Summary()
	}

	d := &hcl.Diagnostic{
		Severity: sev,
		Summary:  summary,
		Detail:   err.Error(),
	}
	if rng.Filename != "" {
		subject := rng
		d.Subject = &subject
	}
	return d
}
