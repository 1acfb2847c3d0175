// Package bdshape implements the BD-shape (bounded difference shape)
// abstract domain: a conjunction of constraints of the form xᵢ - xⱼ ≤ c,
// xᵢ ≤ c, or xᵢ ≥ c, represented as a difference-bound matrix (DBM)
// closed under the shortest-path (min-plus) semiring.
//
// The DBM has dimension n+1: index 0 is the fixed zero variable used to
// encode unary bounds (xᵢ ≤ c becomes xᵢ - x0 ≤ c; xᵢ ≥ c becomes
// x0 - xᵢ ≤ -c), indices 1..n are the shape's own variables.
package bdshape
