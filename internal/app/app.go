package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/fatih/color"
	"github.com/specialistvlad/hclcad/internal/ctxlog"
	"github.com/specialistvlad/hclcad/internal/diag"
	hclfront "github.com/specialistvlad/hclcad/internal/hcl"
	"github.com/specialistvlad/hclcad/internal/registry"
	"github.com/specialistvlad/hclcad/internal/sources"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer // program output: `print`, symbol and model trees
	errW     io.Writer // logs and diagnostics
	logger   *slog.Logger
	config   *Config
	registry *registry.Registry
	cache    *sources.Cache
	sink     *diag.Sink
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger and registry.
// Without modules, all core modules are registered.
func NewApp(outW, errW io.Writer, config *Config, modules ...registry.Module) *App {
	logger := newLogger(config.LogLevel, config.LogFormat, errW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All Go modules registered.", "count", len(modules))

	if err := reg.Validate(ctx); err != nil {
		// A broken builtin is a programmer error, so we panic.
		panic(err)
	}
	logger.Debug("Registry validation passed.")

	return &App{
		outW:     outW,
		errW:     errW,
		logger:   logger,
		config:   config,
		registry: reg,
		cache:    sources.NewCache(hclfront.NewParser()),
		sink:     diag.NewSink(),
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Sink returns the diagnostics recorded so far.
func (a *App) Sink() *diag.Sink {
	return a.sink
}

func (a *App) colored() bool {
	return !a.config.NoColor && !color.NoColor
}

// writeDiagnostics prints diagnostics from index from on, followed by the
// summary line when summary is set.
func (a *App) writeDiagnostics(from int, summary bool) {
	diags := a.sink.Diagnostics()
	if from < len(diags) {
		if err := diag.WriteDiagnostics(a.errW, a.cache.Files(), diags[from:], a.colored()); err != nil {
			a.logger.Error("Failed to write diagnostics.", "error", err)
		}
	}
	if summary {
		a.sink.WriteSummary(a.errW, a.colored())
	}
}
