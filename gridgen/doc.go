// Package gridgen provides the Grid_Generator type (LINE, PARAMETER,
// POINT) and a Grid_Generator system, the V-representation half of the
// Grid domain.
//
// Unlike generator.Generator, a grid generator does not keep its divisor
// in a row slot: every Generator carries it in a separate divisor field
// beside its row (a parameter denotes a direction scaled by an integer
// lattice step rather than an affine point). All non-LINE rows in a
// system share one positive divisor, which System.Insert maintains by
// rescaling the system and the new row to the lcm of the two divisors.
package gridgen
