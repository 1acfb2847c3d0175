// Package generator provides the Generator type (LINE, RAY, POINT,
// CLOSURE_POINT) and a Generator system, plus the builder DSL factories
// Line, Ray, Point, ClosurePoint.
//
// A POINT or CLOSURE_POINT carries a strictly positive divisor in slot 0
// so the geometric coordinate of variable i is coeff(i)/divisor. A LINE
// or RAY has no meaningful divisor (it denotes a direction, not an affine
// point) and leaves slot 0 at zero by convention.
package generator
