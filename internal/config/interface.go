package config

import (
	"context"

	"github.com/hashicorp/hcl/v2"
)

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// Load reads cast manifests from the given paths (files or directories),
	// translates them into the format-agnostic model, and returns a matching
	// Converter.
	Load(ctx context.Context, paths ...string) (*Model, Converter, error)
}

// Converter is the interface for a format-specific data binding
// implementation. It bridges raw manifest bodies and the Go input structs
// declared by capability modules.
type Converter interface {
	// DecodeArguments decodes a raw `arguments` body into the target Go
	// struct. A nil body leaves the target at its zero value so module-level
	// defaults apply.
	DecodeArguments(ctx context.Context, target any, body hcl.Body) error
}
