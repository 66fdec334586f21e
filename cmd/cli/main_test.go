package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/hclcad/internal/app"
	"github.com/specialistvlad/hclcad/internal/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRoot(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "main.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600), "failed to set up test file")
	return path
}

func TestRun_PrintsModels(t *testing.T) {
	t.Parallel()

	path := writeRoot(t, `
use "std.geo2d.circle" {}
expr { value = circle(mm(2)) }
`)
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	err := run(out, errOut, []string{"-no-color", path})

	require.NoError(t, err, errOut.String())
	assert.Equal(t, "primitive circle(radius = 2.0mm)\n", out.String())
	assert.Contains(t, errOut.String(), "no diagnostics")
}

func TestRun_ParseErrorFails(t *testing.T) {
	t.Parallel()

	// Missing closing brace
	path := writeRoot(t, `
part "p" {
  param "x" { type = Length }
`)
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	err := run(out, errOut, []string{"-no-color", path})

	require.ErrorIs(t, err, app.ErrEvaluationFailed)
	assert.Contains(t, errOut.String(), "error(s)")
}

func TestRun_EvaluationErrorFails(t *testing.T) {
	t.Parallel()

	path := writeRoot(t, `expr { value = assert(false, "broken") }`)
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	err := run(out, errOut, []string{"-no-color", path})

	require.ErrorIs(t, err, app.ErrEvaluationFailed)
	assert.Contains(t, errOut.String(), "Assertion failed")
	assert.Contains(t, errOut.String(), "broken")
}

func TestRun_PrintSymbols(t *testing.T) {
	t.Parallel()

	path := writeRoot(t, `pub { answer = 42 }`)
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	require.NoError(t, run(out, errOut, []string{"-symbols", "-no-color", path}))
	assert.Contains(t, out.String(), "public source main\n")
	assert.Contains(t, out.String(), "  public constant answer\n")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	out := &bytes.Buffer{}

	err := run(out, &bytes.Buffer{}, []string{"-h"})

	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	err := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{"--this-is-not-a-valid-flag"})

	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}
