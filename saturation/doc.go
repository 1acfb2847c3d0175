// Package saturation implements the generator x constraint bit matrix
// relating a polyhedron's two representations: bit (g, c) is set when
// generator g saturates constraint c (their scalar product is zero).
// Polyhedron declares a field of this type but does not fill or read it.
//
// The matrix is stored row-major by generator (sat_c); its transpose
// (sat_g, row-major by constraint) is computed on demand and cached,
// mirroring the lazy up-to-date/stale discipline the rest of the module
// applies to ConSys/GenSys themselves.
package saturation
