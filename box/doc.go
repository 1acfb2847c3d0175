// Package box implements the Box abstract domain: a finite vector of
// interval.Interval values indexed by dimension, the rectangular
// (non-relational) numerical abstract domain every other domain in this
// module coerces to and from.
//
// A Box tracks its own emptiness lazily, exactly the way polyhedron and
// grid track theirs: a status enum of {Empty, KnownNonEmpty,
// UnknownEmpty} and a CheckEmpty method that resolves UnknownEmpty by
// scanning the intervals and latching the result.
package box
