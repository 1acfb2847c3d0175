// Package mip solves bounded linear programs over a constraint.System,
// used as a collaborator by domains (polyhedron, in particular) whose
// exact coercion to a bounding Box requires optimizing a linear form
// rather than reading it off a generator system directly. It is not a
// general mixed-integer solver: every variable is continuous, and the
// only operations exposed are Maximize and Minimize of a linear
// objective subject to a Constraint_System.
package mip
