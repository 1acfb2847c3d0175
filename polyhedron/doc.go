// Package polyhedron implements the convex Polyhedron abstract domain: a
// dual H-representation (Constraint_System) / V-representation
// (Generator_System) object kept consistent by a Chernikova-style double
// description conversion, with status bits tracking which side is
// up-to-date and which side is minimized.
package polyhedron
