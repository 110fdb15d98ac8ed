package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"

	"github.com/specialistvlad/fanoutgo/internal/ctxlog"
)

// Converter is the HCL-specific implementation of the config.Converter
// interface.
type Converter struct{}

// NewConverter creates a new HCL converter.
func NewConverter() *Converter {
	return &Converter{}
}

// DecodeArguments populates the target input struct from a raw arguments
// body. Attributes not declared by the struct are reported as errors, so a
// typo in a cast file fails loudly instead of being silently ignored.
func (c *Converter) DecodeArguments(ctx context.Context, target any, body hcl.Body) error {
	if body == nil {
		// No arguments block: the target keeps its zero value and the
		// capability's own defaults apply.
		return nil
	}
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Decoding arguments body.")

	if diags := gohcl.DecodeBody(body, nil, target); diags.HasErrors() {
		return fmt.Errorf("failed to decode arguments: %w", diags)
	}
	return nil
}
