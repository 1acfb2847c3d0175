// Package grid implements the Grid domain: a regular, possibly
// unbounded lattice of points described either by a Congruence_System
// (a set of Σaᵢxᵢ+b ≡ 0 (mod m) relations) or dually by a
// Grid_Generator_System (one point, any number of lines giving
// unrestricted real directions, and any number of parameters giving
// lattice-step directions). Like polyhedron, a Grid lazily converts
// between the two representations and keeps whichever was last computed
// up to date.
package grid
