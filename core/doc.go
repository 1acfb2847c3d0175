// Package core provides the foundational types shared by every numerical
// abstract domain in numdom: the row topology tag, relation symbols used
// by generalized affine operations, complexity hints for coercions, the
// process-wide rounding-direction and abandon-callback cells, the
// process-wide singleton constants, and the structured error taxonomy
// every other package returns.
//
// Nothing in core depends on any other numdom package; every other
// package in this module depends on core.
//
// # Concurrency model
//
// Single-threaded cooperative: no type here or downstream is safe to
// mutate from more than one goroutine at a time. Init and Teardown own
// process-wide state (the initialized flag and the recorded rounding
// direction) and must not be called concurrently with any domain
// operation.
//
// # Abandoning long-running operations
//
// Box constraint propagation and the MIP solver's simplex loop accept a
// context.Context and check it via CheckAbandoned at each loop head, the
// same
// convention an augmenting-path search uses for its phase loop. A
// canceled context unwinds the operation via AbandonedError, leaving the
// receiver in its pre-call state except where documented otherwise
// (widening token consumption). Polyhedron conversion and minimization
// and grid strong reduction take no context and cannot be abandoned.
package core
