package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/hclcad/internal/ctxlog"
	"github.com/specialistvlad/hclcad/internal/eval"
	"github.com/specialistvlad/hclcad/internal/resolve"
	"github.com/specialistvlad/hclcad/internal/symbol"
)

// ErrEvaluationFailed is returned when errors were recorded as diagnostics.
// The diagnostics themselves have been written already.
var ErrEvaluationFailed = errors.New("evaluation reported errors")

// Result is what a run produced.
type Result struct {
	Table *symbol.Table
	Eval  *eval.Context
}

// Run loads, resolves and evaluates the root file, then prints the model
// tree and the diagnostics.
func (a *App) Run(ctx context.Context) (*Result, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if a.config.Interactive {
		return nil, a.RunInteractive(ctx)
	}

	res, err := a.evaluate(ctx)
	if err != nil {
		a.writeDiagnostics(0, true)
		return res, err
	}

	for _, h := range res.Eval.Roots() {
		if err := res.Eval.Models().Print(a.outW, h); err != nil {
			return res, fmt.Errorf("failed to print models: %w", err)
		}
	}
	a.logger.Info("Evaluation finished.", "models", len(res.Eval.Roots()), "errors", a.sink.ErrorCount(), "warnings", a.sink.WarningCount())

	a.writeDiagnostics(0, true)
	if a.sink.HasErrors() {
		return res, ErrEvaluationFailed
	}
	a.logger.Debug("App.Run method finished.")
	return res, nil
}

// evaluate runs the pipeline up to the model tree.
func (a *App) evaluate(ctx context.Context) (*Result, error) {
	res, _, err := a.prepare(ctx)
	if err != nil {
		return nil, err
	}
	res.Eval.EvalFile()
	if unused := res.Eval.ReportUnused(); len(unused) > 0 {
		a.logger.Info("Unused symbols found.", "count", len(unused))
	}
	return res, nil
}

// prepare loads and resolves the root file and creates the evaluation
// context without running anything.
func (a *App) prepare(ctx context.Context) (*Result, *resolve.Resolver, error) {
	ext, err := a.LoadExternals(ctx)
	if err != nil {
		return nil, nil, err
	}
	src, err := a.LoadRoot(ctx)
	if err != nil {
		return nil, nil, err
	}

	resolver := resolve.New(a.registry, a.cache, ext, a.sink)
	table := resolver.Resolve(ctx, src)
	if a.config.PrintSymbols {
		if err := table.Root().Print(a.outW); err != nil {
			return nil, nil, fmt.Errorf("failed to print symbols: %w", err)
		}
	}

	return &Result{Table: table, Eval: eval.New(ctx, table, a.sink, a.outW)}, resolver, nil
}
