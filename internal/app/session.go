package app

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/specialistvlad/hclcad/internal/ctxlog"
	"github.com/specialistvlad/hclcad/internal/resolve"
	"github.com/specialistvlad/hclcad/internal/value"
)

// Session evaluates inputs one after another on top of the root file. Every
// input sees the symbols and locals of the inputs before it.
type Session struct {
	app      *App
	ctx      context.Context
	result   *Result
	resolver *resolve.Resolver
	inputs   int
	// written is the number of diagnostics already printed.
	written int
}

// NewSession loads and evaluates the root file, if any, and returns a
// session continuing from it.
func (a *App) NewSession(ctx context.Context) (*Session, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	res, resolver, err := a.prepare(ctx)
	if err != nil {
		a.writeDiagnostics(0, false)
		return nil, err
	}
	res.Eval.EvalFile()

	s := &Session{app: a, ctx: ctx, result: res, resolver: resolver}
	s.flush()
	return s, nil
}

// Result returns the symbol table and evaluation context of the session.
func (s *Session) Result() *Result { return s.result }

// Eval evaluates one input. An input that does not parse as statements is
// retried as a single expression, so `1 + 2` works as well as
// `expr { value = 1 + 2 }`. The returned value is that of the last
// expression statement, or invalid.
func (s *Session) Eval(code string) (value.Value, error) {
	s.inputs++
	filename := fmt.Sprintf("<input %d>", s.inputs)

	src, diags := s.app.cache.LoadSource(s.ctx, []byte(code), filename, nil)
	if src == nil {
		wrapped := fmt.Sprintf("expr {\n  value = %s\n}\n", code)
		if alt, altDiags := s.app.cache.LoadSource(s.ctx, []byte(wrapped), filename+"*", nil); alt != nil {
			src, diags = alt, altDiags
		}
	}
	s.app.sink.Extend(diags)
	if src == nil {
		s.flush()
		return value.None(), ErrEvaluationFailed
	}

	errorsBefore := s.app.sink.ErrorCount()
	s.resolver.Extend(s.ctx, src.File.Body)
	v := s.result.Eval.EvalBody(src.File.Body)
	s.flush()
	if s.app.sink.ErrorCount() > errorsBefore {
		return v, ErrEvaluationFailed
	}
	return v, nil
}

func (s *Session) flush() {
	s.app.writeDiagnostics(s.written, false)
	s.written = len(s.app.sink.Diagnostics())
}

// complete tells whether code has no unclosed brackets, so that the prompt
// can ask for continuation lines.
func complete(code string) bool {
	tokens, _ := hclsyntax.LexConfig([]byte(code), "<input>", hcl.InitialPos)
	depth := 0
	for _, tok := range tokens {
		switch tok.Type {
		case hclsyntax.TokenOBrace, hclsyntax.TokenOBrack, hclsyntax.TokenOParen,
			hclsyntax.TokenTemplateInterp, hclsyntax.TokenTemplateControl:
			depth++
		case hclsyntax.TokenCBrace, hclsyntax.TokenCBrack, hclsyntax.TokenCParen,
			hclsyntax.TokenTemplateSeqEnd:
			depth--
		}
	}
	return depth <= 0
}
