package testutil

import (
	"strings"
	"testing"

	"github.com/hashicorp/hcl/v2"
	"github.com/stretchr/testify/require"
)

// Summaries returns the summaries of the recorded diagnostics of severity
// sev, in recording order.
func Summaries(result *HarnessResult, sev hcl.DiagnosticSeverity) []string {
	var out []string
	if result.App == nil {
		return out
	}
	for _, d := range result.App.Sink().Diagnostics() {
		if d.Severity == sev {
			out = append(out, d.Summary)
		}
	}
	return out
}

// RequireClean fails the test when the run recorded any error.
func RequireClean(t *testing.T, result *HarnessResult) {
	t.Helper()
	require.NoError(t, result.Err, "log output:\n%s", result.LogOutput)
	require.Empty(t, Summaries(result, hcl.DiagError), "log output:\n%s", result.LogOutput)
}

// AssertDiagnostic checks that an error diagnostic with the given summary
// was recorded and that its detail contains detail.
func AssertDiagnostic(t *testing.T, result *HarnessResult, summary, detail string) {
	t.Helper()
	require.NotNil(t, result.App)
	for _, d := range result.App.Sink().Diagnostics() {
		if d.Severity == hcl.DiagError && d.Summary == summary && strings.Contains(d.Detail, detail) {
			return
		}
	}
	require.Failf(t, "diagnostic not found", "no error %q containing %q in:\n%s", summary, detail, result.LogOutput)
}
