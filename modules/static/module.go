// Package static provides a producer that yields a fixed message. Useful
// for deterministic casts and tests.
package static

import (
	"context"
	"fmt"

	"github.com/specialistvlad/fanoutgo/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Input defines the arguments for the static producer.
type Input struct {
	Text string `hcl:"text"`
}

// Producer yields the configured text on every call.
type Producer struct {
	text string
}

// New builds a static producer. The text argument is required.
func New(input *Input) (*Producer, error) {
	if input.Text == "" {
		return nil, fmt.Errorf("static producer requires a non-empty 'text' argument")
	}
	return &Producer{text: input.Text}, nil
}

// GetMessage returns the configured text.
func (p *Producer) GetMessage(ctx context.Context) (string, error) {
	return p.text, nil
}

// Register registers the producer type with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterProducerType("static", &registry.RegisteredProducer{
		NewInput: func() any { return new(Input) },
		Build: func(ctx context.Context, deps *registry.BuildDeps, input any) (registry.Producer, error) {
			return New(input.(*Input))
		},
	})
}
