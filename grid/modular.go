package grid

import "math/big"

import "github.com/latticeforge/numdom/scalar"

// coset is the solution set of a single-variable linear congruence,
// either a full arithmetic progression {x0 + step*t : t ∈ Z} (step != 0)
// or the single fixed value x0 (step == 0, meaning an equality).
type coset struct {
	x0   scalar.Rational
	step scalar.Rational
}

// solveLinearCongruence solves a*x + b ≡ 0 (mod m) for m > 0 and a != 0,
// over the rationals: writing y = a*x (which the congruence forces to be
// an integer), y ranges over the residue class -b mod m, so
// x = y/a ranges over the coset {r/a + (m/a)*t : t ∈ Z} where
// r = (-b) mod m.
func solveLinearCongruence(a, b, m scalar.Coefficient) coset {
	abig := a.BigInt()
	bbig := b.BigInt()
	mbig := m.BigInt()
	if abig.Sign() < 0 {
		abig = new(big.Int).Neg(abig)
		bbig = new(big.Int).Neg(bbig)
	}
	r := new(big.Int).Mod(new(big.Int).Neg(bbig), mbig)
	x0 := scalar.NewRationalFromBigRat(new(big.Rat).SetFrac(r, abig))
	step := scalar.NewRationalFromBigRat(new(big.Rat).SetFrac(mbig, abig))
	return coset{x0: x0, step: step}
}

// isInCoset reports whether x belongs to c's arithmetic progression.
func isInCoset(x scalar.Rational, c coset) bool {
	if c.step.IsZero() {
		return x.Cmp(c.x0) == 0
	}
	diff := x.Sub(c.x0)
	ratio, err := diff.Quo(c.step)
	if err != nil {
		return false
	}
	return ratio.IsInteger()
}

// scaleToInt returns r*l as an integer Coefficient, assuming l is a
// multiple of r's denominator (guaranteed by mergeCosets's choice of l
// as the lcm of every involved denominator).
func scaleToInt(r scalar.Rational, l scalar.Coefficient) scalar.Coefficient {
	scaled := r.Mul(scalar.NewRationalFromCoefficient(l))
	return scaled.Num()
}

// crtMerge finds x with x ≡ y1 (mod s1) and x ≡ y2 (mod s2) (s1, s2 > 0),
// returning the merged residue and modulus lcm(s1, s2), or ok=false if
// the two progressions never agree.
func crtMerge(y1, s1, y2, s2 *big.Int) (x, mod *big.Int, ok bool) {
	var g, p, q big.Int
	g.GCD(&p, &q, s1, s2)
	diff := new(big.Int).Sub(y2, y1)
	qd, rem := new(big.Int).QuoRem(diff, &g, new(big.Int))
	if rem.Sign() != 0 {
		return nil, nil, false
	}
	s2g := new(big.Int).Div(s2, &g)
	t := new(big.Int).Mul(qd, &p)
	if s2g.Sign() != 0 {
		t.Mod(t, s2g)
	}
	lcm := new(big.Int).Div(new(big.Int).Mul(s1, s2), &g)
	lcm.Abs(lcm)
	x = new(big.Int).Add(y1, new(big.Int).Mul(s1, t))
	if lcm.Sign() != 0 {
		x.Mod(x, lcm)
	}
	return x, lcm, true
}

// mergeCosets intersects two cosets on the same axis, returning ok=false
// when they describe disjoint progressions (the grid is then empty).
func mergeCosets(c1, c2 coset) (coset, bool) {
	if c1.step.IsZero() && c2.step.IsZero() {
		return c1, c1.x0.Cmp(c2.x0) == 0
	}
	if c1.step.IsZero() {
		return c1, isInCoset(c1.x0, c2)
	}
	if c2.step.IsZero() {
		return c2, isInCoset(c2.x0, c1)
	}
	l := scalar.NewCoefficient(1)
	for _, r := range []scalar.Rational{c1.x0, c1.step, c2.x0, c2.step} {
		l = l.Lcm(r.Den())
	}
	y1, s1 := scaleToInt(c1.x0, l), scaleToInt(c1.step, l)
	y2, s2 := scaleToInt(c2.x0, l), scaleToInt(c2.step, l)
	x, mod, ok := crtMerge(y1.BigInt(), s1.BigInt(), y2.BigInt(), s2.BigInt())
	if !ok {
		return coset{}, false
	}
	lRat := scalar.NewRationalFromCoefficient(l)
	x0, _ := scalar.NewRationalFromBigRat(new(big.Rat).SetInt(x)).Quo(lRat)
	step, _ := scalar.NewRationalFromBigRat(new(big.Rat).SetInt(mod)).Quo(lRat)
	return coset{x0: x0, step: step}, true
}
