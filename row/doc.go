// Package row implements the Linear row: an ordered tuple of Coefficients
// tagged with a topology and a line/ray/point-or-inequality kind, plus
// strong normalization (gcd of non-zero coefficients reduced to 1, with a
// documented sign convention for equalities and lines).
//
// Row is the single representation shared by constraint, generator,
// congruence, and gridgen's typed views: each of those packages wraps a
// Row and fixes its interpretation, the way a shared low-level
// representation elsewhere is wrapped under typed accessors.
package row
