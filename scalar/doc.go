// Package scalar provides the unbounded-precision numeric kernel the rest
// of numdom is built on: Coefficient (an unbounded signed integer with an
// exact gcd/lcm/exact-div interface), Rational (a canonicalized num/den
// pair), Bound (an interval endpoint in {-inf} ∪ Q ∪ {+inf} with an
// openness bit and a rounding-aware comparison contract), and the Result/
// Ternary enums that let callers distinguish an exact outcome from a
// rounded one.
//
// Coefficient and Rational wrap the standard library's math/big — see
// DESIGN.md for the full justification. Every other numdom package treats
// scalar as its leaf numeric dependency the way a matrix package treats
// float64: a bounds-checked value type with sentinel errors on failure.
// The one panic is Ternary.Bool called on Maybe.
package scalar
