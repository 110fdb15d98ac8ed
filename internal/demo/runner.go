// Package demo contains the fan-out driver: every registered producer's
// message is handed to every registered displayer, in registration order.
package demo

import (
	"context"
	"fmt"
	"io"

	"github.com/specialistvlad/fanoutgo/internal/ctxlog"
	"github.com/specialistvlad/fanoutgo/internal/record"
	"github.com/specialistvlad/fanoutgo/internal/registry"
)

// RecordTemplate describes the record built fresh for every ShowRecord call.
// Keeping only plain values here means each pass constructs a fully
// initialized record and discards it immediately after the call.
type RecordTemplate struct {
	Tag   int
	Label string
	Grid  record.Grid
}

// DefaultRecordTemplate returns the built-in demo record: tag 1 and a 1x1
// grid holding 101.
func DefaultRecordTemplate() RecordTemplate {
	return RecordTemplate{
		Tag:   1,
		Label: "demo record",
		Grid:  record.MustGrid(1, 1, []float64{101}),
	}
}

// Runner drives one full fan-out pass over the registry.
type Runner struct {
	reg      *registry.Registry
	out      io.Writer
	template RecordTemplate
}

// New creates a demo runner writing its block separators to out.
func New(reg *registry.Registry, out io.Writer, template RecordTemplate) *Runner {
	return &Runner{reg: reg, out: out, template: template}
}

// Run executes one pass: for every producer in registration order, obtain
// one message, then invoke every displayer in registration order with that
// message and a freshly built record. Any capability error aborts the rest
// of the pass; nothing is retried.
func (r *Runner) Run(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	producers := r.reg.Producers()
	displayers := r.reg.Displayers()
	logger.Debug("Starting fan-out pass.", "producers", len(producers), "displayers", len(displayers))

	for pi, producer := range producers {
		msg, err := producer.GetMessage(ctx)
		if err != nil {
			return fmt.Errorf("producer %d: get message: %w", pi, err)
		}

		for di, displayer := range displayers {
			if err := displayer.DisplayMessage(ctx, msg); err != nil {
				return fmt.Errorf("displayer %d: display message: %w", di, err)
			}

			rec, err := record.New(r.template.Tag, r.template.Label, r.template.Grid)
			if err != nil {
				return fmt.Errorf("displayer %d: build record: %w", di, err)
			}
			if err := displayer.ShowRecord(ctx, rec); err != nil {
				return fmt.Errorf("displayer %d: show record: %w", di, err)
			}

			if _, err := fmt.Fprintln(r.out); err != nil {
				return fmt.Errorf("output sink: %w", err)
			}
		}

		if _, err := fmt.Fprintln(r.out); err != nil {
			return fmt.Errorf("output sink: %w", err)
		}
	}

	logger.Debug("Fan-out pass finished.")
	return nil
}
