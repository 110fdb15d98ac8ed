// Package clock provides the built-in time-reporting producer. Each call
// formats the current wall-clock time plus the raw epoch-seconds count into
// a single message.
package clock

import (
	"context"
	"fmt"
	"time"

	"github.com/specialistvlad/fanoutgo/internal/registry"
)

// asctimeLayout matches the classic asctime() rendering, day padded with a
// space.
const asctimeLayout = "Mon Jan _2 15:04:05 2006"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Input defines the arguments for the clock producer.
type Input struct {
	// UTC switches the human-readable part to UTC; the default is local time.
	UTC bool `hcl:"utc,optional"`
}

// Producer yields the current time as a message.
type Producer struct {
	utc bool
	now func() time.Time
}

// New builds a clock producer from decoded arguments.
func New(input *Input) *Producer {
	return &Producer{utc: input.UTC, now: time.Now}
}

// GetMessage formats the current time and epoch-seconds count. The epoch
// value is monotonically non-decreasing across calls within a run.
func (p *Producer) GetMessage(ctx context.Context) (string, error) {
	t := p.now()
	if p.utc {
		t = t.UTC()
	}
	return fmt.Sprintf("%s\n%d seconds since the Epoch", t.Format(asctimeLayout), t.Unix()), nil
}

// Register registers the producer type with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterProducerType("clock", &registry.RegisteredProducer{
		NewInput: func() any { return new(Input) },
		Build: func(ctx context.Context, deps *registry.BuildDeps, input any) (registry.Producer, error) {
			return New(input.(*Input)), nil
		},
	})
}
