package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/hclcad/internal/ctxlog"
	"github.com/specialistvlad/hclcad/internal/externals"
	"github.com/specialistvlad/hclcad/internal/sources"
)

// emptyRoot names the root of an interactive session started without a
// root file.
const emptyRoot = "main.hcl"

// LoadExternals scans the search paths for external source files.
func (a *App) LoadExternals(ctx context.Context) (*externals.Registry, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading externals...", "search_paths", a.config.SearchPaths)

	ext, err := externals.Scan(ctx, a.config.SearchPaths)
	if err != nil {
		return nil, fmt.Errorf("failed to scan search paths: %w", err)
	}
	logger.Info("Externals loaded successfully.", "count", len(ext.Names()))
	return ext, nil
}

// LoadRoot loads the root source file. Parse problems are recorded in the
// sink and reported as ErrEvaluationFailed.
func (a *App) LoadRoot(ctx context.Context) (*sources.Source, error) {
	logger := ctxlog.FromContext(ctx)

	if a.config.RootPath == "" {
		logger.Debug("No root file, starting from an empty source.")
		src, diags := a.cache.LoadSource(ctx, nil, emptyRoot, nil)
		a.sink.Extend(diags)
		if src == nil {
			return nil, ErrEvaluationFailed
		}
		return src, nil
	}

	logger.Debug("Loading root file...", "path", a.config.RootPath)
	src, diags := a.cache.Load(ctx, a.config.RootPath, nil)
	a.sink.Extend(diags)
	if src == nil {
		return nil, ErrEvaluationFailed
	}
	logger.Info("Root file loaded successfully.", "path", src.Path, "statements", len(src.File.Body.Statements))
	return src, nil
}
