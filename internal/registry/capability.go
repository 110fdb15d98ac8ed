package registry

import (
	"context"
	"io"

	"github.com/specialistvlad/fanoutgo/internal/record"
)

// Producer is the capability contract for anything that can yield a text
// message. Implementations may read ambient state (e.g. the wall clock) but
// must not retain the returned message.
type Producer interface {
	GetMessage(ctx context.Context) (string, error)
}

// Displayer is the capability contract for anything that can render a
// message and a plain-data record. Any returned error aborts the remainder
// of the demo run; nothing is retried.
type Displayer interface {
	DisplayMessage(ctx context.Context, msg string) error
	ShowRecord(ctx context.Context, rec *record.Record) error
}

// BuildDeps carries the process-level resources a factory may need when
// constructing an instance.
type BuildDeps struct {
	// Out is the application's output sink. Console-style displayers write
	// here; the demo driver writes its block separators to the same sink.
	Out io.Writer
}

// RegisteredProducer holds the compiled Go parts of a producer type.
type RegisteredProducer struct {
	// NewInput returns a fresh, decodable arguments struct for this type.
	NewInput func() any
	// Build constructs an instance from decoded arguments.
	Build func(ctx context.Context, deps *BuildDeps, input any) (Producer, error)
}

// RegisteredDisplayer holds the compiled Go parts of a displayer type.
type RegisteredDisplayer struct {
	NewInput func() any
	Build    func(ctx context.Context, deps *BuildDeps, input any) (Displayer, error)
}

// Module is the interface that all core modules must implement to be
// registered.
type Module interface {
	Register(r *Registry)
}
