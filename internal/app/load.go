package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/fanoutgo/internal/config"
	"github.com/specialistvlad/fanoutgo/internal/ctxlog"
	"github.com/specialistvlad/fanoutgo/internal/record"
	"github.com/specialistvlad/fanoutgo/internal/registry"
)

// buildCast instantiates capability instances from the model and registers
// them, in declaration order. With no model (or an empty one) the built-in
// cast is registered instead, mirroring the historical one-shot setup.
func (a *App) buildCast(ctx context.Context, model *config.Model, converter config.Converter) error {
	logger := ctxlog.FromContext(ctx)

	if model == nil || (len(model.Producers) == 0 && len(model.Displayers) == 0) {
		logger.Debug("No cast declared, registering built-ins.")
		return a.registerBuiltins(ctx)
	}

	deps := &registry.BuildDeps{Out: a.outW}

	for _, decl := range model.Producers {
		factory, ok := a.registry.ProducerType(decl.Type)
		if !ok {
			// Unreachable after validation, kept as a guard.
			return fmt.Errorf("producer '%s.%s': unknown type", decl.Type, decl.Name)
		}
		input := factory.NewInput()
		if err := converter.DecodeArguments(ctx, input, decl.Arguments); err != nil {
			return fmt.Errorf("producer '%s.%s': %w", decl.Type, decl.Name, err)
		}
		instance, err := factory.Build(ctx, deps, input)
		if err != nil {
			return fmt.Errorf("producer '%s.%s': %w", decl.Type, decl.Name, err)
		}
		if err := a.registry.AddProducer(instance); err != nil {
			return fmt.Errorf("producer '%s.%s': %w", decl.Type, decl.Name, err)
		}
		logger.Debug("Producer registered.", "type", decl.Type, "name", decl.Name)
	}

	for _, decl := range model.Displayers {
		factory, ok := a.registry.DisplayerType(decl.Type)
		if !ok {
			return fmt.Errorf("displayer '%s.%s': unknown type", decl.Type, decl.Name)
		}
		input := factory.NewInput()
		if err := converter.DecodeArguments(ctx, input, decl.Arguments); err != nil {
			return fmt.Errorf("displayer '%s.%s': %w", decl.Type, decl.Name, err)
		}
		instance, err := factory.Build(ctx, deps, input)
		if err != nil {
			return fmt.Errorf("displayer '%s.%s': %w", decl.Type, decl.Name, err)
		}
		if err := a.registry.AddDisplayer(instance); err != nil {
			return fmt.Errorf("displayer '%s.%s': %w", decl.Type, decl.Name, err)
		}
		logger.Debug("Displayer registered.", "type", decl.Type, "name", decl.Name)
	}

	if err := a.applyRecordSpec(model.Record); err != nil {
		return err
	}
	if model.Demo != nil && model.Demo.Runs > 0 {
		a.runs = model.Demo.Runs
	}

	return nil
}

// applyRecordSpec overrides the default record template field by field, so
// a cast may set just the label or just the values.
func (a *App) applyRecordSpec(spec *config.RecordSpec) error {
	if spec == nil {
		return nil
	}
	if spec.Tag != 0 {
		a.template.Tag = spec.Tag
	}
	if spec.Label != "" {
		a.template.Label = spec.Label
	}
	if spec.Values != nil {
		grid, err := record.NewGrid(spec.Rows, spec.Cols, spec.Values)
		if err != nil {
			return fmt.Errorf("record block: %w", err)
		}
		a.template.Grid = grid
	}
	return nil
}

// registerBuiltins constructs and registers the built-in clock producer and
// console displayer with default arguments.
func (a *App) registerBuiltins(ctx context.Context) error {
	deps := &registry.BuildDeps{Out: a.outW}

	producerFactory, ok := a.registry.ProducerType("clock")
	if !ok {
		return fmt.Errorf("built-in producer type 'clock' is not compiled into this binary")
	}
	producer, err := producerFactory.Build(ctx, deps, producerFactory.NewInput())
	if err != nil {
		return fmt.Errorf("failed to build built-in clock producer: %w", err)
	}
	if err := a.registry.AddProducer(producer); err != nil {
		return err
	}

	displayerFactory, ok := a.registry.DisplayerType("console")
	if !ok {
		return fmt.Errorf("built-in displayer type 'console' is not compiled into this binary")
	}
	displayer, err := displayerFactory.Build(ctx, deps, displayerFactory.NewInput())
	if err != nil {
		return fmt.Errorf("failed to build built-in console displayer: %w", err)
	}
	return a.registry.AddDisplayer(displayer)
}
