package antichain

import (
	"github.com/calebcase/crat/rational"
)

// Antichain bounds.
const (
	MinDen = 128
	MaxDen = 255
	MaxNum = 255

	// Count is the number of antichain denominators.
	Count = MaxDen - MinDen + 1
)

// MaxError is the largest error of a Nearest approximation: rounding to the
// nearest 1/255 is never off by more than half a step.
const MaxError = 1.0 / (2 * MaxDen)

// Term is one fractional component Num/Den of a compact value.
type Term struct {
	Num uint8
	Den uint8
}

// Valid reports whether the denominator is in the antichain.
func (t Term) Valid() bool {
	return t.Den >= MinDen
}

// Proper reports whether 0 < Num < Den.
func (t Term) Proper() bool {
	return t.Num > 0 && t.Num < t.Den
}

// Offset returns the denominator's index in the antichain.
func (t Term) Offset() int {
	return int(t.Den) - MinDen
}

// Rational returns the term as a reduced fraction.
func (t Term) Rational() rational.R {
	return rational.New(int64(t.Num), int64(t.Den))
}

// Selection is the outcome of Select.
type Selection struct {
	// Terms holds one or two terms sorted ascending by denominator. It is
	// empty when the remainder rounded to zero or to one.
	Terms []Term

	// Exact is true when Terms represent the remainder without error.
	Exact bool

	// Carry is 1 when the nearest approximation rounded the remainder up
	// to a whole unit.
	Carry int

	// Underflow is true when the nearest approximation rounded the
	// remainder down to zero.
	Underflow bool
}

// Single returns the exact term p/q = n/d using the smallest antichain
// denominator d that is a multiple of q.
func Single(p, q int64) (t Term, ok bool) {
	if p <= 0 || q <= p || q > MaxDen {
		return t, false
	}

	for d := int64(MinDen); d <= MaxDen; d++ {
		if d%q != 0 {
			continue
		}

		n := p * (d / q)
		if n > MaxNum {
			return t, false
		}

		return Term{uint8(n), uint8(d)}, true
	}

	return t, false
}

// Pair returns two exact terms n1/d1 + n2/d2 = p/q with d1 < d2.
//
// Of all such pairs Pair returns the one with the smallest d1, then the
// largest n1, then the smallest d2. Since q must divide lcm(d1, d2), every d1
// fixes the step between candidate d2 and most d1 are ruled out without a
// search. For each remaining (d1, d2) the best n1 is solved for directly, so
// a call takes a few hundred steps at most.
func Pair(p, q int64) (ts [2]Term, ok bool) {
	if p <= 0 || q <= p {
		return ts, false
	}

	r := rational.New(p, q)
	p, q = r.Num, r.Den

	for d1 := int64(MinDen); d1 < MaxDen; d1++ {
		step := cover(q, d1)

		d2, ok := multiple(step, d1+1)
		if !ok {
			continue
		}

		var best, bestD2, bestN2 int64
		for ; d2 <= MaxDen; d2 += step {
			n1, n2, ok := complete(p, q, d1, d2)
			if ok && n1 > best {
				best, bestD2, bestN2 = n1, d2, n2
			}
		}

		if best > 0 {
			ts[0] = Term{uint8(best), uint8(d1)}
			ts[1] = Term{uint8(bestN2), uint8(bestD2)}

			return ts, true
		}
	}

	return ts, false
}

// cover returns the smallest x such that q divides lcm(d, x).
func cover(q, d int64) int64 {
	x := q / rational.GCD(q, d)
	for {
		g := rational.GCD(x, q/x)
		if g == 1 {
			return x
		}

		x *= g
	}
}

// complete returns the largest n1 with p/q = n1/d1 + n2/d2 and both
// numerators in [1, MaxNum]. q must divide d1*d2.
func complete(p, q, d1, d2 int64) (n1, n2 int64, ok bool) {
	// n1*d2 + n2*d1 = t
	t := p * d1 * d2 / q

	g := rational.GCD(d1, d2)
	if t%g != 0 {
		return 0, 0, false
	}

	// n1 = r (mod m)
	m := d1 / g
	inv, _ := rational.Inverse(d2/g, m)
	r := (t / g) % m * inv % m

	// n2 > 0 bounds n1 below t/d2.
	hi := min(MaxNum, (t-1)/d2)
	n1 = hi - ((hi-r)%m+m)%m
	if n1 < 1 {
		return 0, 0, false
	}

	n2 = (t - n1*d2) / d1
	if n2 > MaxNum {
		return 0, 0, false
	}

	return n1, n2, true
}

// multiple returns the smallest multiple of b in [from, MaxDen].
func multiple(b, from int64) (int64, bool) {
	if b > MaxDen {
		return 0, false
	}

	m := (from + b - 1) / b * b
	if m > MaxDen {
		return 0, false
	}

	return m, true
}

// Nearest returns the term n/d closest to p/q over all antichain
// denominators. Ties keep the smaller denominator. The numerator may be 0 (p/q
// is too small to represent) or equal to the denominator (p/q rounds up to
// one).
func Nearest(p, q int64) Term {
	best := Term{0, MinDen}
	var bestErr, bestDen int64 = -1, MinDen

	for d := int64(MinDen); d <= MaxDen; d++ {
		// round(p*d/q), halves rounding up.
		n := (2*p*d + q) / (2 * q)
		if n < 0 {
			n = 0
		}
		if n > MaxNum {
			n = MaxNum
		}

		// |n/d - p/q| = |n*q - p*d| / (d*q). The common factor q drops
		// out of the comparison.
		e := n*q - p*d
		if e < 0 {
			e = -e
		}

		if bestErr < 0 || rational.Cmp(rational.R{Num: e, Den: d}, rational.R{Num: bestErr, Den: bestDen}) < 0 {
			best = Term{uint8(n), uint8(d)}
			bestErr, bestDen = e, d
		}
	}

	return best
}

// Select picks the representation of the remainder p/q (0 < p < q, reduced,
// both fitting in 32 bits) using at most limit terms.
func Select(p, q int64, limit int) (s Selection) {
	if t, ok := Single(p, q); ok {
		s.Terms = []Term{t}
		s.Exact = true

		return s
	}

	if limit >= 2 {
		if ts, ok := Pair(p, q); ok {
			s.Terms = ts[:]
			s.Exact = true

			return s
		}
	}

	t := Nearest(p, q)

	switch {
	case t.Num == 0:
		s.Underflow = true
	case t.Num == t.Den:
		s.Carry = 1
	default:
		s.Terms = []Term{t}
	}

	return s
}
