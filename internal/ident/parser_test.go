package ident

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name         string
		raw          string
		expectErr    bool
		expectedName QualifiedName
	}{
		{
			name:         "single identifier",
			raw:          "circle",
			expectedName: FromStrings("circle"),
		},
		{
			name:         "dotted path",
			raw:          "std.geo2d.circle",
			expectedName: FromStrings("std", "geo2d", "circle"),
		},
		{
			name:         "namespaced call syntax",
			raw:          "std::geo2d::circle",
			expectedName: FromStrings("std", "geo2d", "circle"),
		},
		{
			name:         "underscores and digits",
			raw:          "_private.geo3d",
			expectedName: FromStrings("_private", "geo3d"),
		},
		{
			name:      "error - empty string",
			raw:       "",
			expectErr: true,
		},
		{
			name:      "error - empty segment",
			raw:       "a..b",
			expectErr: true,
		},
		{
			name:      "error - leading digit",
			raw:       "a.2d",
			expectErr: true,
		},
		{
			name:      "error - wildcard is not an identifier",
			raw:       "a.*",
			expectErr: true,
		},
		{
			name:      "error - hyphen",
			raw:       "http-client",
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			name, err := Parse(tc.raw)

			if tc.expectErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.True(t, tc.expectedName.Equal(name), "parsed %q, expected %q", name, tc.expectedName)
		})
	}
}

func TestParse_RoundTrip(t *testing.T) {
	for _, raw := range []string{"a", "a.b.c", "std.geo2d.circle"} {
		t.Run(raw, func(t *testing.T) {
			name, err := Parse(raw)
			require.NoError(t, err)
			assert.Equal(t, raw, name.String())
		})
	}
}

func TestMustParse_Panics(t *testing.T) {
	assert.Panics(t, func() { MustParse("a..b") })
	assert.NotPanics(t, func() { MustParse("a.b") })
}
