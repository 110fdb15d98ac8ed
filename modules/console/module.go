// Package console provides the built-in displayer that renders messages and
// records as prefixed lines on the application's output sink.
package console

import (
	"context"
	"fmt"
	"io"

	"github.com/specialistvlad/fanoutgo/internal/record"
	"github.com/specialistvlad/fanoutgo/internal/registry"
)

// Prefixes default to the historical wire format of the demo.
const (
	DefaultMessagePrefix = "Message: "
	DefaultRecordPrefix  = "From C++: "
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Input defines the arguments for the console displayer.
type Input struct {
	MessagePrefix string `hcl:"message_prefix,optional"`
	RecordPrefix  string `hcl:"record_prefix,optional"`
}

// Displayer writes prefixed lines to a sink.
type Displayer struct {
	out       io.Writer
	msgPrefix string
	recPrefix string
}

// New builds a console displayer writing to out, applying the default
// prefixes for any argument left empty.
func New(out io.Writer, input *Input) *Displayer {
	msgPrefix := input.MessagePrefix
	if msgPrefix == "" {
		msgPrefix = DefaultMessagePrefix
	}
	recPrefix := input.RecordPrefix
	if recPrefix == "" {
		recPrefix = DefaultRecordPrefix
	}
	return &Displayer{out: out, msgPrefix: msgPrefix, recPrefix: recPrefix}
}

// DisplayMessage writes the message as a single prefixed line.
func (d *Displayer) DisplayMessage(ctx context.Context, msg string) error {
	if _, err := fmt.Fprintf(d.out, "%s%s\n", d.msgPrefix, msg); err != nil {
		return fmt.Errorf("console sink: %w", err)
	}
	return nil
}

// ShowRecord writes the record's first grid value as a prefixed line.
func (d *Displayer) ShowRecord(ctx context.Context, rec *record.Record) error {
	if _, err := fmt.Fprintf(d.out, "%s%v\n", d.recPrefix, rec.Grid.At(0, 0)); err != nil {
		return fmt.Errorf("console sink: %w", err)
	}
	return nil
}

// Register registers the displayer type with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterDisplayerType("console", &registry.RegisteredDisplayer{
		NewInput: func() any { return new(Input) },
		Build: func(ctx context.Context, deps *registry.BuildDeps, input any) (registry.Displayer, error) {
			return New(deps.Out, input.(*Input)), nil
		},
	})
}
