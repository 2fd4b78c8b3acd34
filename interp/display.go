package interp

import (
	"math"
	"math/big"
	"strings"

	"lox/parser"
)

// displayScale is the number of fractional digits kept when printing reals.
const displayScale = 10

var displayFactor = new(big.Int).Exp(big.NewInt(10), big.NewInt(displayScale), nil)

// Display renders v for print and for top-level results. Reals are rounded
// half-up to ten fractional digits, trailing zeros dropped, never in
// exponent form. Other values use their own text form.
func Display(v parser.Value) string {
	r, ok := v.(parser.RealValue)
	if !ok {
		return v.Format()
	}
	f := float64(r)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return r.Format()
	}

	// The exact binary value is scaled and rounded so that ties are
	// decided on the true value, not on a decimal approximation.
	exact := new(big.Rat).SetFloat64(f)
	scaled := new(big.Int).Mul(exact.Num(), displayFactor)
	q, m := new(big.Int).QuoRem(scaled, exact.Denom(), new(big.Int))
	if m.Sign() != 0 {
		twice := new(big.Int).Mul(new(big.Int).Abs(m), big.NewInt(2))
		if twice.Cmp(exact.Denom()) >= 0 {
			q.Add(q, big.NewInt(int64(scaled.Sign())))
		}
	}

	neg := q.Sign() < 0
	digits := new(big.Int).Abs(q).String()
	if len(digits) <= displayScale {
		digits = strings.Repeat("0", displayScale-len(digits)+1) + digits
	}
	whole, frac := digits[:len(digits)-displayScale], strings.TrimRight(digits[len(digits)-displayScale:], "0")
	s := whole
	if frac != "" {
		s += "." + frac
	}
	if neg {
		s = "-" + s
	}
	return s
}
