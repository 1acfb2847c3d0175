// Package constraint provides the Constraint type (a row.Row interpreted
// as Σaᵢxᵢ+b {=, ≥, >} 0) and a Constraint system (a linsys.System of
// constraint rows), plus a builder DSL: Eq, Leq, Geq, Lt, Gt between a
// LinearExpression and a value, standing in for relational operators Go
// doesn't let us overload.
//
// Constraint wraps a raw row.Row the same way a typed view is built over
// raw entries elsewhere in this module family, with the same fail-fast
// validation discipline used throughout.
package constraint
