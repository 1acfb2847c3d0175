// Package coerce bridges the five numerical domains (box, polyhedron,
// grid, bdshape, octagon) behind one interface. Each domain grew its own
// emptiness and join vocabulary independently — box/bdshape/octagon
// settled on a bool-returning IsEmpty and an UpperBoundAssign join,
// polyhedron and grid report errors from the lattice and name their
// join PolyHullAssign/GridHullAssign — and none of the five packages
// imports another, so the adapting has to live somewhere outside all of
// them. That somewhere is here, to keep box/polyhedron/grid/bdshape/
// octagon free of a dependency on each other or on powerset.
package coerce

import "github.com/latticeforge/numdom/box"

// Domain is the uniform surface powerset needs from any one of the five
// concrete abstract domains: emptiness, duplication, least upper bound,
// meet, and a fallback projection to intervals for the approximate
// containment test OmegaReduce relies on.
type Domain interface {
	Dim() int
	IsEmpty() (bool, error)
	Clone() (Domain, error)
	UpperBoundAssign(other Domain) error
	IntersectionAssign(other Domain) error
	ToBox() (*box.Box, error)
}
