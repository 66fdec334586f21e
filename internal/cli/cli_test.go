package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/hclcad/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name     string
		args     []string
		expected *app.Config
	}{
		{
			name: "positional root with defaults",
			args: []string{filepath.Join("src", "main.hcl")},
			expected: &app.Config{
				RootPath:    filepath.Join("src", "main.hcl"),
				SearchPaths: []string{"src"},
				LogFormat:   "text",
				LogLevel:    "warn",
			},
		},
		{
			name: "all flags",
			args: []string{"-f", "main.hcl", "-search-path", "lib, vendor", "-search-path", "more",
				"-log-format", "JSON", "-log-level", "debug", "-symbols", "-no-color"},
			expected: &app.Config{
				RootPath:     "main.hcl",
				SearchPaths:  []string{"lib", "vendor", "more"},
				LogFormat:    "json",
				LogLevel:     "debug",
				PrintSymbols: true,
				NoColor:      true,
			},
		},
		{
			name: "interactive without root",
			args: []string{"-i"},
			expected: &app.Config{
				SearchPaths: []string{"."},
				LogFormat:   "text",
				LogLevel:    "warn",
				Interactive: true,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, exit, err := Parse(tc.args, &bytes.Buffer{})
			require.NoError(t, err)
			assert.False(t, exit)
			if diff := cmp.Diff(tc.expected, cfg); diff != "" {
				t.Errorf("config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		args    []string
		message string
	}{
		{"bad log format", []string{"-log-format", "xml", "main.hcl"}, "invalid log-format"},
		{"bad log level", []string{"-log-level", "loud", "main.hcl"}, "invalid log-level"},
		{"wrong extension", []string{"main.txt"}, "must have the .hcl extension"},
		{"unknown flag", []string{"-nope"}, "flag provided but not defined"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := Parse(tc.args, &bytes.Buffer{})
			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, 2, exitErr.Code)
			assert.Contains(t, exitErr.Message, tc.message)
		})
	}
}

func TestParse_NoRootPrintsUsage(t *testing.T) {
	out := &bytes.Buffer{}
	cfg, exit, err := Parse(nil, out)
	require.NoError(t, err)
	assert.True(t, exit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage:")
}
