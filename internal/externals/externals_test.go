package externals

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/hclcad/internal/ctxlog"
	"github.com/specialistvlad/hclcad/internal/ident"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, root, rel string) string {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x = 1\n"), 0o644))
	return path
}

func TestScanAndFetch(t *testing.T) {
	ctx := ctxlog.Discard(context.Background())
	first, second := t.TempDir(), t.TempDir()
	shapes := write(t, first, "geo/shapes.hcl")
	write(t, first, "geo/bad-name.hcl")
	write(t, second, "geo/shapes.hcl")
	util := write(t, second, "util.hcl")

	r, err := Scan(ctx, []string{first, second})
	require.NoError(t, err)
	assert.Equal(t, []string{"geo.shapes", "util"}, r.Names())

	testCases := []struct {
		name       string
		wantPrefix string
		wantPath   string
	}{
		{name: "geo.shapes", wantPrefix: "geo.shapes", wantPath: shapes},
		{name: "geo.shapes.circle", wantPrefix: "geo.shapes", wantPath: shapes},
		{name: "util.a.b", wantPrefix: "util", wantPath: util},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			prefix, path, err := r.FetchExternal(ident.MustParse(tc.name))
			require.NoError(t, err)
			assert.Equal(t, tc.wantPrefix, prefix.String())
			assert.Equal(t, tc.wantPath, path)
		})
	}

	_, _, err = r.FetchExternal(ident.MustParse("geo"))
	var nf *ExternalSymbolNotFoundError
	assert.ErrorAs(t, err, &nf)
}

func TestScan_MissingPath(t *testing.T) {
	_, err := Scan(ctxlog.Discard(context.Background()), []string{filepath.Join(t.TempDir(), "nope")})
	assert.Error(t, err)
}
