// Package matrix provides the dense linear-algebra kernels shared by the
// heavier domains: a rational Dense matrix with Gaussian elimination (the
// Dense type holds the mip package's simplex tableau), and a
// Floyd-Warshall-style closure over difference-bound matrices (used by
// bdshape and octagon).
//
// Kept as its own package rather than folded into its consumers, so the
// same closure code backs both bdshape and octagon without duplication.
package matrix
