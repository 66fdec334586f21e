// Package sources keeps every source file loaded during a run, keyed by path
// and by content hash.
package sources

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/segmentio/fasthash/fnv1a"
	"github.com/specialistvlad/hclcad/internal/ctxlog"
	hclfront "github.com/specialistvlad/hclcad/internal/hcl"
	"github.com/specialistvlad/hclcad/internal/ident"
	"github.com/specialistvlad/hclcad/internal/syntax"
)

// Source is a loaded and translated source file.
type Source struct {
	// Name is the qualified name the file is mounted under. The root file
	// has an empty name.
	Name ident.QualifiedName
	Path string
	Hash uint64
	File *syntax.SourceFile

	content []byte
}

// Cache loads each path at most once. Content seen before under another
// path is not parsed again; the new source shares the parsed tree.
type Cache struct {
	parser *hclfront.Parser
	byPath map[string]*Source
	byHash map[uint64][]*Source
	order  []*Source
}

// NewCache creates an empty cache backed by parser.
func NewCache(parser *hclfront.Parser) *Cache {
	return &Cache{
		parser: parser,
		byPath: make(map[string]*Source),
		byHash: make(map[uint64][]*Source),
	}
}

// Load reads and parses the file at path, or returns the cached source.
func (c *Cache) Load(ctx context.Context, path string, name ident.QualifiedName) (*Source, hcl.Diagnostics) {
	if src, ok := c.byPath[path]; ok {
		return src, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Failed to read file",
			Detail:   fmt.Sprintf("The file %q could not be read: %s.", path, err),
		}}
	}
	return c.LoadSource(ctx, content, path, name)
}

// LoadSource parses in-memory content registered under filename.
func (c *Cache) LoadSource(ctx context.Context, content []byte, filename string, name ident.QualifiedName) (*Source, hcl.Diagnostics) {
	logger := ctxlog.FromContext(ctx)
	if src, ok := c.byPath[filename]; ok {
		return src, nil
	}

	hash := fnv1a.HashBytes64(content)
	if dup := c.sameContent(hash, content); dup != nil {
		src := &Source{Name: name, Path: filename, Hash: hash, File: dup.File, content: dup.content}
		c.add(src)
		logger.Debug("Source content already loaded, reusing parsed tree.", "path", filename, "other", dup.Path)
		return src, nil
	}

	file, diags := c.parser.ParseSource(ctx, content, filename)
	if diags.HasErrors() {
		return nil, diags
	}

	src := &Source{Name: name, Path: filename, Hash: hash, File: file, content: content}
	c.add(src)
	logger.Debug("Source loaded.", "path", filename, "name", name.String(), "hash", fmt.Sprintf("%016x", hash))
	return src, diags
}

// sameContent returns a loaded source with exactly this content.
func (c *Cache) sameContent(hash uint64, content []byte) *Source {
	for _, src := range c.byHash[hash] {
		if bytes.Equal(src.content, content) {
			return src
		}
	}
	return nil
}

func (c *Cache) add(src *Source) {
	c.byPath[src.Path] = src
	c.byHash[src.Hash] = append(c.byHash[src.Hash], src)
	c.order = append(c.order, src)
}

// Get returns the source loaded from path.
func (c *Cache) Get(path string) (*Source, bool) {
	src, ok := c.byPath[path]
	return src, ok
}

// All returns the loaded sources in load order.
func (c *Cache) All() []*Source {
	return c.order
}

// Files returns the parsed files for diagnostic printing.
func (c *Cache) Files() map[string]*hcl.File {
	return c.parser.Files()
}
