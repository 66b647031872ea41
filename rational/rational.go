// Package rational provides the exact intermediate fractions used while
// encoding and decoding compact values.
package rational

import (
	"math"

	"github.com/zeebo/errs"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("rational")

// ErrOverflow is returned when an intermediate result doesn't fit in 64 bits.
var ErrOverflow = errs.Class("rational overflow")

// R is a fraction with a 64 bit numerator and denominator.
//
// R is only meaningful after Reduce: the denominator is positive and the
// numerator and denominator share no common factor. Zero is 0/1.
type R struct {
	Num int64
	Den int64
}

// New returns the reduced fraction num/den.
func New(num, den int64) R {
	return Reduce(R{num, den})
}

// Int returns v/1.
func Int(v int64) R {
	return R{v, 1}
}

// Reduce returns r in lowest terms with a positive denominator. A zero
// denominator is returned unchanged; callers validate it first.
func Reduce(r R) R {
	if r.Den == 0 {
		return r
	}

	g := GCD(r.Num, r.Den)
	r.Num /= g
	r.Den /= g

	if r.Den < 0 {
		r.Num = -r.Num
		r.Den = -r.Den
	}

	return r
}

// Add returns a+b reduced.
//
// The products are computed in 64 bits without overflow checks. That is safe
// for operands whose fields fit in 32 bits; use TryAdd otherwise.
func Add(a, b R) R {
	return Reduce(R{
		Num: a.Num*b.Den + b.Num*a.Den,
		Den: a.Den * b.Den,
	})
}

// TryAdd is like Add but reports ErrOverflow rather than wrapping.
func TryAdd(a, b R) (_ R, err error) {
	if a.Den == 0 || b.Den == 0 {
		return R{}, Error.New("zero denominator: %d/%d + %d/%d", a.Num, a.Den, b.Num, b.Den)
	}

	// Scale by lcm(a.Den, b.Den) instead of the full product to keep the
	// intermediates as small as possible.
	g := GCD(a.Den, b.Den)
	da, db := a.Den/g, b.Den/g

	x, ok := mul(a.Num, db)
	if !ok {
		return R{}, ErrOverflow.New("%d * %d", a.Num, db)
	}

	y, ok := mul(b.Num, da)
	if !ok {
		return R{}, ErrOverflow.New("%d * %d", b.Num, da)
	}

	num, ok := add(x, y)
	if !ok {
		return R{}, ErrOverflow.New("%d + %d", x, y)
	}

	den, ok := mul(a.Den, db)
	if !ok {
		return R{}, ErrOverflow.New("%d * %d", a.Den, db)
	}

	return Reduce(R{num, den}), nil
}

// Split divides r into its floor and a remainder in [0, 1).
//
// The remainder of a truncating division is negative for negative values, so
// the whole part is moved down by one to keep the remainder non-negative.
func Split(r R) (whole int64, rem R) {
	r = Reduce(r)

	whole = r.Num / r.Den
	num := r.Num % r.Den

	if num < 0 {
		num += r.Den
		whole--
	}

	return whole, Reduce(R{num, r.Den})
}

// Fits32 reports whether both fields of r fit in an int32.
func Fits32(r R) bool {
	return r.Num >= math.MinInt32 && r.Num <= math.MaxInt32 &&
		r.Den >= math.MinInt32 && r.Den <= math.MaxInt32
}

// Cmp compares a and b exactly, returning -1, 0 or +1. Denominators must be
// positive and the cross products must fit in 64 bits.
func Cmp(a, b R) int {
	x, y := a.Num*b.Den, b.Num*a.Den

	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}

	return 0
}

// IsZero reports whether r is zero.
func (r R) IsZero() bool {
	return r.Num == 0
}

// Float64 returns the nearest float64. A zero denominator yields NaN.
func (r R) Float64() float64 {
	if r.Den == 0 {
		return math.NaN()
	}

	return float64(r.Num) / float64(r.Den)
}

func mul(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}

	c := a * b
	if c/b != a || (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, false
	}

	return c, true
}

func add(a, b int64) (int64, bool) {
	c := a + b
	if (c > a) != (b > 0) {
		return 0, false
	}

	return c, true
}
