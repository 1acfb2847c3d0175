// Package congruence provides the Congruence type (Σaᵢxᵢ+b ≡ 0 (mod m),
// m >= 0; m = 0 denotes a plain equality) and Congruence_System, the
// H-representation half of the Grid domain.
//
// Congruences are always topologically closed: modular arithmetic has no
// notion of a strict inequality, so the epsilon machinery row.Row carries
// for constraints/generators is unused here.
package congruence
