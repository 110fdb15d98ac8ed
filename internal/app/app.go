package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/fanoutgo/internal/config"
	"github.com/specialistvlad/fanoutgo/internal/ctxlog"
	"github.com/specialistvlad/fanoutgo/internal/demo"
	"github.com/specialistvlad/fanoutgo/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
	template demo.RecordTemplate
	runs     int
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger and registry.
// Demo output goes to outW; logs go to errW so the two streams never mix.
// Startup problems (unreadable cast, unknown capability type) are programmer
// or operator errors and panic; the entrypoint recovers them into a clean
// exit.
func NewApp(outW, errW io.Writer, appConfig *Config, loader config.Loader, modules ...registry.Module) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, errW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	// Load the cast manifest into the format-agnostic model first, if one
	// was given.
	var model *config.Model
	var converter config.Converter
	if appConfig.CastPath != "" {
		if loader == nil {
			panic(fmt.Errorf("a cast path was given but no loader is configured"))
		}
		m, conv, err := loader.Load(ctx, appConfig.CastPath)
		if err != nil {
			panic(fmt.Errorf("failed to load cast manifest: %w", err))
		}
		model, converter = m, conv
		logger.Debug("Cast manifest loaded and translated into unified model.")
	}

	// Create and populate the registry with capability types.
	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All Go modules registered.", "count", len(modules))

	// Validate the manifest against the compiled-in types before building
	// anything.
	if err := reg.ValidateModel(ctx, model); err != nil {
		panic(err)
	}
	logger.Debug("Cast validation passed.")

	a := &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
		template: demo.DefaultRecordTemplate(),
		runs:     appConfig.Runs,
	}

	if err := a.buildCast(ctx, model, converter); err != nil {
		panic(err)
	}

	return a
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}
