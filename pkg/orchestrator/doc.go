// Package orchestrator wires the loader → parser → model builder → renderer
// pipeline for DDM definitions, resolving themes and translations on the way
// so callers can render a structure with a single call.
package orchestrator
