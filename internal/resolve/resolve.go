// Package resolve turns parsed source files into a symbol table: it creates
// symbols for definitions, mounts the builtin library, loads external files
// on demand and resolves every `use`.
package resolve

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/hclcad/internal/ctxlog"
	"github.com/specialistvlad/hclcad/internal/diag"
	"github.com/specialistvlad/hclcad/internal/externals"
	"github.com/specialistvlad/hclcad/internal/ident"
	"github.com/specialistvlad/hclcad/internal/registry"
	"github.com/specialistvlad/hclcad/internal/sources"
	"github.com/specialistvlad/hclcad/internal/symbol"
	"github.com/specialistvlad/hclcad/internal/syntax"
	"github.com/specialistvlad/hclcad/internal/value"
)

// Resolver builds the symbol table of one run.
type Resolver struct {
	registry  *registry.Registry
	cache     *sources.Cache
	externals *externals.Registry
	sink      *diag.Sink

	table  *symbol.Table
	loaded map[string]bool
}

// New creates a resolver. ext may be nil when no search paths are used.
func New(reg *registry.Registry, cache *sources.Cache, ext *externals.Registry, sink *diag.Sink) *Resolver {
	return &Resolver{
		registry:  reg,
		cache:     cache,
		externals: ext,
		sink:      sink,
		table:     symbol.NewTable(),
		loaded:    make(map[string]bool),
	}
}

// Table returns the table being built.
func (r *Resolver) Table() *symbol.Table { return r.table }

// Resolve makes src the root of the table and resolves it completely.
// Problems are recorded in the sink; the table is usable regardless.
func (r *Resolver) Resolve(ctx context.Context, src *sources.Source) *symbol.Table {
	logger := ctxlog.FromContext(ctx)

	name := strings.TrimSuffix(filepath.Base(src.Path), filepath.Ext(src.Path))
	root := r.table.New(symbol.SourceFile(ident.New(name), src.File), symbol.Public)
	r.table.SetRoot(root)
	r.loaded[src.Path] = true

	r.mountBuiltins()
	r.Symbolize(root, src.File.Body)
	r.addPrelude(root)

	r.table.Resolve(ctx, r.sink, r)
	logger.Debug("Symbol table built.", "root", name, "symbols", r.table.Len())
	return r.table
}

// Extend adds the definitions of body to the root and resolves again. The
// interactive mode feeds every input through it.
func (r *Resolver) Extend(ctx context.Context, body *syntax.Body) {
	r.Symbolize(r.table.Root(), body)
	r.table.Resolve(ctx, r.sink, r)
}

// Symbolize creates symbols for the definitions, constants and imports of
// body below parent. Value assignments and other statements only exist at
// evaluation time.
func (r *Resolver) Symbolize(parent symbol.Symbol, body *syntax.Body) {
	if body == nil {
		return
	}
	for _, stmt := range body.Statements {
		def, vis := definitionOf(stmt)
		if def == nil {
			continue
		}
		sym := r.table.New(def, vis)
		if err := r.table.AddChild(parent, sym); err != nil {
			r.sink.Error(stmt.Range(), err)
			continue
		}

		switch s := stmt.(type) {
		case *syntax.ModuleDefinition:
			r.Symbolize(sym, s.Body)
		case *syntax.WorkbenchDefinition:
			r.symbolizeFunctions(sym, s.Body)
		}
	}
}

// symbolizeFunctions adds the functions nested in a workbench. They form
// the workbench namespace.
func (r *Resolver) symbolizeFunctions(parent symbol.Symbol, body *syntax.Body) {
	for _, stmt := range body.Statements {
		fn, ok := stmt.(*syntax.FunctionDefinition)
		if !ok {
			continue
		}
		sym := r.table.New(symbol.Function(fn), fn.Visibility)
		if err := r.table.AddChild(parent, sym); err != nil {
			r.sink.Error(fn.Rng, err)
		}
	}
}

func definitionOf(stmt syntax.Statement) (*symbol.Definition, symbol.Visibility) {
	switch s := stmt.(type) {
	case *syntax.ModuleDefinition:
		return symbol.Module(s), s.Visibility
	case *syntax.WorkbenchDefinition:
		return symbol.Workbench(s), s.Visibility
	case *syntax.FunctionDefinition:
		return symbol.Function(s), s.Visibility
	case *syntax.Assignment:
		switch s.Qualifier {
		case syntax.QualifierConst:
			return symbol.Constant(s.ID, value.None(), s.Rng), symbol.Private
		case syntax.QualifierPubConst:
			return symbol.Constant(s.ID, value.None(), s.Rng), symbol.Public
		}
	case *syntax.Use:
		if s.All {
			return symbol.UseAll(s.Path, s.Rng), s.Visibility
		}
		return symbol.Alias(s.LocalName(), s.Path, s.Rng), s.Visibility
	}
	return nil, symbol.Private
}

// ensureNamespace returns the module-like symbol at name below the root,
// creating namespaces on the way.
func (r *Resolver) ensureNamespace(name ident.QualifiedName) (symbol.Symbol, error) {
	cur := r.table.Root()
	for _, id := range name {
		child, ok := cur.Child(id)
		if ok && child.Kind().IsModuleLike() {
			cur = child
			continue
		}
		if ok {
			return symbol.Symbol{}, &symbol.DuplicateSymbolError{ID: id, Namespace: cur.FullName()}
		}
		ns := r.table.New(symbol.Namespace(id), symbol.Public)
		if err := r.table.AddChild(cur, ns); err != nil {
			return symbol.Symbol{}, err
		}
		cur = ns
	}
	return cur, nil
}

func (r *Resolver) mountBuiltins() {
	for _, e := range r.registry.Entries() {
		n := len(e.Path)
		ns, err := r.ensureNamespace(e.Path[:n-1])
		if err != nil {
			r.sink.Error(hcl.Range{}, err)
			continue
		}
		var def *symbol.Definition
		if e.Builtin != nil {
			def = symbol.Builtin(e.Path[n-1], e.Builtin)
		} else {
			def = symbol.Constant(e.Path[n-1], e.Constant, hcl.Range{})
		}
		if err := r.table.AddChild(ns, r.table.New(def, symbol.Public)); err != nil {
			r.sink.Error(hcl.Range{}, err)
		}
	}
}

// addPrelude imports the prelude namespaces privately into a source file.
func (r *Resolver) addPrelude(file symbol.Symbol) {
	for _, ns := range r.registry.Prelude() {
		use := r.table.New(symbol.UseAll(ns, hcl.Range{}), symbol.Private)
		if err := r.table.AddChild(file, use); err != nil {
			r.sink.Error(hcl.Range{}, err)
		}
	}
}

// Load implements symbol.Loader: it mounts the external file providing the
// longest prefix of name, once per file.
func (r *Resolver) Load(ctx context.Context, name ident.QualifiedName) (bool, error) {
	if r.externals == nil {
		return false, nil
	}
	logger := ctxlog.FromContext(ctx)

	prefix, path, err := r.externals.FetchExternal(name)
	if err != nil {
		var nf *externals.ExternalSymbolNotFoundError
		if errors.As(err, &nf) {
			return false, nil
		}
		return false, err
	}
	if r.loaded[path] {
		return false, nil
	}
	r.loaded[path] = true

	src, diags := r.cache.Load(ctx, path, prefix)
	r.sink.Extend(diags)
	if src == nil {
		return false, nil
	}

	n := len(prefix)
	ns, err := r.ensureNamespace(prefix[:n-1])
	if err != nil {
		return false, err
	}
	file := r.table.New(symbol.SourceFile(prefix[n-1], src.File), symbol.Public)
	if err := r.table.AddChild(ns, file); err != nil {
		return false, err
	}
	r.Symbolize(file, src.File.Body)
	r.addPrelude(file)

	logger.Debug("External source mounted.", "name", prefix.String(), "path", path)
	return true, nil
}
