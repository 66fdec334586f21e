package diag

import (
	"bytes"
	"errors"
	"testing"

	"github.com/hashicorp/hcl/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type titledError struct{}

func (titledError) Error() string   { return "symbol `x` not found" }
func (titledError) Summary() string { return "Symbol not found" }

func TestSink_Counts(t *testing.T) {
	s := NewSink()
	rng := hcl.Range{Filename: "main.hcl", Start: hcl.Pos{Line: 2, Column: 1}}

	s.Error(rng, titledError{})
	s.Warning(hcl.Range{}, errors.New("unknown attribute"))
	s.Warning(rng, errors.New("unused"))

	assert.Equal(t, 1, s.ErrorCount())
	assert.Equal(t, 2, s.WarningCount())
	assert.True(t, s.HasErrors())

	diags := s.Diagnostics()
	require.Len(t, diags, 3)
	assert.Equal(t, "Symbol not found", diags[0].Summary)
	require.NotNil(t, diags[0].Subject)
	assert.Equal(t, 2, diags[0].Subject.Start.Line)
	assert.Nil(t, diags[1].Subject, "ranges without a file are dropped")
	assert.Equal(t, "Warning", diags[2].Summary)
}

func TestSink_WrappedSummarizer(t *testing.T) {
	s := NewSink()
	s.Error(hcl.Range{}, errors.Join(errors.New("while calling f"), titledError{}))
	assert.Equal(t, "Symbol not found", s.Diagnostics()[0].Summary)
}

func TestSink_WriteSummary(t *testing.T) {
	var buf bytes.Buffer
	s := NewSink()
	s.WriteSummary(&buf, false)
	assert.Equal(t, "no diagnostics\n", buf.String())

	buf.Reset()
	s.Error(hcl.Range{}, errors.New("boom"))
	s.WriteSummary(&buf, false)
	assert.Equal(t, "1 error(s), 0 warning(s)\n", buf.String())
}

func TestSink_WriteText(t *testing.T) {
	var buf bytes.Buffer
	s := NewSink()
	s.Error(hcl.Range{}, errors.New("boom"))
	require.NoError(t, s.WriteText(&buf, nil, false))
	assert.Contains(t, buf.String(), "boom")
}
