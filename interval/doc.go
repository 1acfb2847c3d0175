// Package interval implements Interval, a pair of scalar.Bound endpoints
// specialized to the Rational scalar kind (the library's one built-in
// ITV instantiation; see DESIGN.md for why a fully generic scalar-kind
// parameter was not carried through).
//
// An Interval additionally tracks an empty flag implied whenever the
// lower bound exceeds the upper, or they are equal and either is open.
package interval
