// Package schema holds the HCL-tagged structs that mirror the on-disk shape
// of a cast manifest. It is the only package that couples block layout to
// struct tags; translation into the format-agnostic model lives in the hcl
// package.
package schema

import (
	"github.com/hashicorp/hcl/v2"
)

// Args represents the content of the 'arguments' block within a capability
// block. The body is kept raw and decoded later against the capability
// type's own input struct.
type Args struct {
	Body hcl.Body `hcl:",remain"`
}

// Producer represents a `producer` block from a user's cast file.
type Producer struct {
	Type      string `hcl:"capability_type,label"`
	Name      string `hcl:"instance_name,label"`
	Arguments *Args  `hcl:"arguments,block"`
}

// Displayer represents a `displayer` block from a user's cast file.
type Displayer struct {
	Type      string `hcl:"capability_type,label"`
	Name      string `hcl:"instance_name,label"`
	Arguments *Args  `hcl:"arguments,block"`
}

// Record represents the optional `record` block overriding the demo record.
// Values stays an expression so both flat lists and lists of rows can be
// accepted; the loader flattens it into a dense buffer.
type Record struct {
	Tag    int            `hcl:"tag,optional"`
	Label  string         `hcl:"label,optional"`
	Rows   int            `hcl:"rows,optional"`
	Cols   int            `hcl:"cols,optional"`
	Values hcl.Expression `hcl:"values,optional"`
}

// Demo represents the optional `demo` block with run options.
type Demo struct {
	Runs int `hcl:"runs,optional"`
}

// CastConfig represents the top-level structure of a user's cast file.
type CastConfig struct {
	Producers  []*Producer  `hcl:"producer,block"`
	Displayers []*Displayer `hcl:"displayer,block"`
	Record     *Record      `hcl:"record,block"`
	Demo       *Demo        `hcl:"demo,block"`
	Body       hcl.Body     `hcl:",remain"`
}
