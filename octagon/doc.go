// Package octagon implements the Octagonal-shape abstract domain: a
// conjunction of constraints of the form ±xᵢ ± xⱼ ≤ c (and the unary
// specializations xᵢ ≤ c, xᵢ ≥ c), using Miné's potential-graph
// encoding over a 2n-node difference-bound matrix shared with bdshape:
// for each variable xᵢ two DBM nodes exist, pos(i) standing for xᵢ and
// neg(i) standing for -xᵢ, so every octagonal constraint becomes one or
// two plain difference-bound edges between these nodes.
package octagon
