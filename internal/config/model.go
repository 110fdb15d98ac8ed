package config

import (
	"github.com/hashicorp/hcl/v2"
)

// Model is the unified, format-agnostic representation of a cast manifest:
// which producers and displayers to build, the demo record override, and the
// run options.
type Model struct {
	Producers  []*Capability
	Displayers []*Capability
	Record     *RecordSpec
	Demo       *DemoSpec
}

// Capability is the format-agnostic representation of a `producer` or
// `displayer` block. Order within the model follows declaration order in the
// manifest, which defines registration order.
type Capability struct {
	// Type names a registered capability type, e.g. "clock" or "console".
	Type string
	// Name is the user-chosen instance name, unique per kind.
	Name string
	// Arguments is the raw body of the `arguments` block, or nil when the
	// block is absent. Decoding into the type's input struct is deferred to
	// the Converter so defaults apply uniformly.
	Arguments hcl.Body
	// SourceRange describes where the block was declared, for diagnostics.
	SourceRange string
}

// RecordSpec overrides the demo record handed to every displayer.
type RecordSpec struct {
	Tag    int
	Label  string
	Rows   int
	Cols   int
	Values []float64
}

// DemoSpec holds run options for the demo driver.
type DemoSpec struct {
	// Runs is how many full fan-out passes to execute. Zero means one.
	Runs int
}
