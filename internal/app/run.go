package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/fanoutgo/internal/ctxlog"
	"github.com/specialistvlad/fanoutgo/internal/demo"
)

// Run executes the configured number of fan-out passes.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	a.logger.Info("Cast registered.",
		"producers", len(a.registry.Producers()),
		"displayers", len(a.registry.Displayers()),
		"runs", a.runs,
	)

	runner := demo.New(a.registry, a.outW, a.template)
	for i := 1; i <= a.runs; i++ {
		a.logger.Debug("Starting fan-out pass.", "run", i)
		if err := runner.Run(ctx); err != nil {
			return fmt.Errorf("fan-out pass %d failed: %w", i, err)
		}
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
