package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/specialistvlad/hclcad/internal/ctxlog"
	"github.com/specialistvlad/hclcad/internal/syntax"
)

// Parser parses and translates source files. It keeps every parsed file so
// diagnostics can be printed with source snippets.
type Parser struct {
	p *hclparse.Parser
}

// NewParser creates a new parser.
func NewParser() *Parser {
	return &Parser{p: hclparse.NewParser()}
}

// Files returns all files parsed so far, keyed by filename.
func (p *Parser) Files() map[string]*hcl.File {
	return p.p.Files()
}

// ParseFile reads, parses and translates the file at path.
func (p *Parser) ParseFile(ctx context.Context, path string) (*syntax.SourceFile, hcl.Diagnostics) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Parsing source file.", "path", path)

	file, diags := p.p.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, diags
	}
	return p.translateFile(ctx, path, file, diags)
}

// ParseSource parses and translates in-memory source text. filename is used
// for ranges and must be unique per parser.
func (p *Parser) ParseSource(ctx context.Context, src []byte, filename string) (*syntax.SourceFile, hcl.Diagnostics) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Parsing source text.", "filename", filename, "bytes", len(src))

	file, diags := p.p.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, diags
	}
	return p.translateFile(ctx, filename, file, diags)
}

func (p *Parser) translateFile(ctx context.Context, filename string, file *hcl.File, diags hcl.Diagnostics) (*syntax.SourceFile, hcl.Diagnostics) {
	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return nil, append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Unsupported source format",
			Detail:   fmt.Sprintf("File %s is not in native HCL syntax.", filename),
		})
	}

	t := &translator{ctx: ctx, src: file.Bytes}
	sf := &syntax.SourceFile{
		Filename: filename,
		Body:     t.body(body, nil),
	}
	diags = append(diags, t.diags...)

	ctxlog.FromContext(ctx).Debug("Source file translated.", "filename", filename, "statements", len(sf.Body.Statements), "diagnostics", len(diags))
	return sf, diags
}
