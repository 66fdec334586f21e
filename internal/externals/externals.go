// Package externals maps qualified names to source files found in the
// search paths. A file `geo/shapes.hcl` below a search path provides the
// namespace `geo.shapes`.
package externals

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/specialistvlad/hclcad/internal/ctxlog"
	"github.com/specialistvlad/hclcad/internal/fsutil"
	"github.com/specialistvlad/hclcad/internal/ident"
)

// Extension of source files.
const Extension = ".hcl"

// ExternalSymbolNotFoundError is returned when no scanned file provides a
// prefix of the requested name.
type ExternalSymbolNotFoundError struct {
	Name ident.QualifiedName
}

func (e *ExternalSymbolNotFoundError) Error() string {
	return fmt.Sprintf("no external source provides '%s'", e.Name)
}

func (e *ExternalSymbolNotFoundError) Summary() string { return "External symbol not found" }

// Registry is the result of scanning the search paths.
type Registry struct {
	paths map[string]string
}

// Scan walks every search path for source files. When several search paths
// provide the same name the first one wins.
func Scan(ctx context.Context, searchPaths []string) (*Registry, error) {
	logger := ctxlog.FromContext(ctx)
	r := &Registry{paths: make(map[string]string)}

	for _, root := range searchPaths {
		files, err := fsutil.FindFilesByExtension(root, Extension)
		if err != nil {
			return nil, fmt.Errorf("failed to scan search path '%s': %w", root, err)
		}
		for _, file := range files {
			name, err := nameOf(root, file)
			if err != nil {
				logger.Warn("Skipping source file with invalid name.", "path", file, "error", err)
				continue
			}
			key := name.String()
			if prev, exists := r.paths[key]; exists {
				logger.Debug("External shadowed by earlier search path.", "name", key, "path", file, "kept", prev)
				continue
			}
			r.paths[key] = file
		}
		logger.Debug("Scanned search path.", "path", root, "files", len(files))
	}
	return r, nil
}

func nameOf(root, file string) (ident.QualifiedName, error) {
	rel, err := filepath.Rel(root, file)
	if err != nil {
		return nil, err
	}
	rel = strings.TrimSuffix(filepath.ToSlash(rel), Extension)
	return ident.Parse(strings.ReplaceAll(rel, "/", "."))
}

// FetchExternal finds the file providing the longest prefix of name. It
// returns that prefix and the file path.
func (r *Registry) FetchExternal(name ident.QualifiedName) (ident.QualifiedName, string, error) {
	for i := len(name); i > 0; i-- {
		prefix := name[:i]
		if path, ok := r.paths[prefix.String()]; ok {
			return prefix, path, nil
		}
	}
	return nil, "", &ExternalSymbolNotFoundError{Name: name}
}

// Names returns all known names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.paths))
	for n := range r.paths {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
