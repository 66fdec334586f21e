package sources

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/segmentio/fasthash/fnv1a"
	"github.com/specialistvlad/hclcad/internal/ctxlog"
	hclfront "github.com/specialistvlad/hclcad/internal/hcl"
	"github.com/specialistvlad/hclcad/internal/ident"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_LoadOnce(t *testing.T) {
	ctx := ctxlog.Discard(context.Background())
	dir := t.TempDir()
	path := filepath.Join(dir, "lib.hcl")
	content := []byte("a = 1\n")
	require.NoError(t, os.WriteFile(path, content, 0644))

	c := NewCache(hclfront.NewParser())
	first, diags := c.Load(ctx, path, ident.MustParse("lib"))
	require.False(t, diags.HasErrors())
	assert.Equal(t, fnv1a.HashBytes64(content), first.Hash)
	assert.Equal(t, "lib", first.Name.String())

	second, diags := c.Load(ctx, path, ident.MustParse("other"))
	require.False(t, diags.HasErrors())
	assert.Same(t, first, second)
	assert.Len(t, c.All(), 1)
	assert.Contains(t, c.Files(), path)
}

func TestCache_MissingFile(t *testing.T) {
	c := NewCache(hclfront.NewParser())
	_, diags := c.Load(ctxlog.Discard(context.Background()), filepath.Join(t.TempDir(), "nope.hcl"), nil)
	assert.True(t, diags.HasErrors())
}

func TestCache_ParseError(t *testing.T) {
	c := NewCache(hclfront.NewParser())
	_, diags := c.LoadSource(ctxlog.Discard(context.Background()), []byte("a = "), "broken.hcl", nil)
	assert.True(t, diags.HasErrors())
	_, ok := c.Get("broken.hcl")
	assert.False(t, ok)
}

func TestCache_SameContentSharesTree(t *testing.T) {
	ctx := ctxlog.Discard(context.Background())
	c := NewCache(hclfront.NewParser())

	first, diags := c.LoadSource(ctx, []byte("a = 1\n"), "one.hcl", ident.MustParse("one"))
	require.False(t, diags.HasErrors())
	second, diags := c.LoadSource(ctx, []byte("a = 1\n"), "two.hcl", ident.MustParse("two"))
	require.False(t, diags.HasErrors())
	other, diags := c.LoadSource(ctx, []byte("a = 2\n"), "three.hcl", nil)
	require.False(t, diags.HasErrors())

	assert.NotSame(t, first, second)
	assert.Same(t, first.File, second.File)
	assert.Equal(t, first.Hash, second.Hash)
	assert.Equal(t, "two", second.Name.String())
	assert.Equal(t, "two.hcl", second.Path)
	assert.NotSame(t, first.File, other.File)

	assert.Len(t, c.All(), 3)
	assert.Contains(t, c.Files(), "one.hcl")
	assert.NotContains(t, c.Files(), "two.hcl")
	got, ok := c.Get("two.hcl")
	require.True(t, ok)
	assert.Same(t, second, got)
}
