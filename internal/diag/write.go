package diag

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/hashicorp/hcl/v2"
)

// WriteText renders all diagnostics with source snippets taken from files.
func (s *Sink) WriteText(w io.Writer, files map[string]*hcl.File, colored bool) error {
	return WriteDiagnostics(w, files, s.diags, colored)
}

// WriteDiagnostics renders diags with source snippets taken from files.
func WriteDiagnostics(w io.Writer, files map[string]*hcl.File, diags hcl.Diagnostics, colored bool) error {
	if len(diags) == 0 {
		return nil
	}
	writer := hcl.NewDiagnosticTextWriter(w, files, 100, colored)
	return writer.WriteDiagnostics(diags)
}

// WriteSummary prints a one-line count of errors and warnings.
func (s *Sink) WriteSummary(w io.Writer, colored bool) {
	errC := color.New(color.FgRed, color.Bold)
	warnC := color.New(color.FgYellow)
	okC := color.New(color.FgGreen)
	if !colored {
		errC.DisableColor()
		warnC.DisableColor()
		okC.DisableColor()
	}

	switch {
	case s.errors > 0:
		errC.Fprintf(w, "%d error(s)", s.errors)
		fmt.Fprintf(w, ", %d warning(s)\n", s.warnings)
	case s.warnings > 0:
		warnC.Fprintf(w, "%d warning(s)\n", s.warnings)
	default:
		okC.Fprintln(w, "no diagnostics")
	}
}
