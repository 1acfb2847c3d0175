// Package linsys implements the Linear system: an ordered sequence of
// row.Row sharing a space dimension and topology, a sorted flag, and a
// first-pending index partitioning rows into an up-to-date prefix and a
// pending suffix awaiting the next sort/minimize pass.
//
// Mutators follow a staged validate-prepare-execute structure: every
// mutator here validates dimension/topology compatibility before touching
// the row slice, and never leaves the system half-updated on error.
package linsys
