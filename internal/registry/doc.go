// Package registry provides the central "glue" for the capability system.
//
// Two kinds of state live here. Type registries map the string identifiers
// used in cast manifests (e.g. "clock", "console") to the Go factories that
// build concrete producers and displayers. Instance registries are the
// ordered, append-only lists of built capabilities that the demo driver
// iterates.
//
// Instance registration is mutex-guarded, so concurrent registrars are safe,
// but the usual lifecycle is single-phase: populate during startup, then
// read-only for the life of the run. There is no removal operation; Reset
// exists for tests that need a clean slate between runs.
package registry
