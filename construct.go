package crat

import (
	"github.com/calebcase/crat/antichain"
	"github.com/calebcase/crat/rational"
)

// FromInt returns the integer value v.
func (c Config) FromInt(v int) (Value, error) {
	return c.assemble(int64(v), nil)
}

// FromFraction returns num/den with at most one term.
//
// Remainders whose reduced denominator divides an antichain denominator are
// exact, the others are approximated by the nearest term (see
// antichain.MaxError).
func (c Config) FromFraction(num, den int32) (Value, error) {
	if den == 0 {
		return Value{}, ErrDivisionByZero.New("%d/0", num)
	}

	return c.encode(rational.New(int64(num), int64(den)), 1, false)
}

// Encode returns r with up to two terms, preferring one exact term, then two
// exact terms and finally the nearest single term.
func (c Config) Encode(r rational.R) (Value, error) {
	if r.Den == 0 {
		return Value{}, ErrDivisionByZero.New("%d/0", r.Num)
	}

	r = rational.Reduce(r)
	if !rational.Fits32(r) {
		return Value{}, ErrArithmeticOverflow.New("%d/%d exceeds 32 bits", r.Num, r.Den)
	}

	return c.encode(r, 2, false)
}

// encode represents r with at most limit terms. When exact is set, an
// approximated remainder is an ErrTooManyTerms failure under the policy.
func (c Config) encode(r rational.R, limit int, exact bool) (Value, error) {
	whole, rem := rational.Split(r)
	if rem.IsZero() {
		return c.assemble(whole, nil)
	}

	s := antichain.Select(rem.Num, rem.Den, limit)
	whole += int64(s.Carry)

	var dropped error
	switch {
	case exact && !s.Exact:
		dropped = c.lossy(ErrTooManyTerms.New(
			"remainder %d/%d needs more than %d terms",
			rem.Num,
			rem.Den,
			MaxTerms,
		))
		if !Lossy(dropped) {
			return Value{}, dropped
		}
	case s.Underflow:
		dropped = c.lossy(ErrNumeratorOverflow.New(
			"remainder %d/%d is below 1/%d",
			rem.Num,
			rem.Den,
			2*antichain.MaxDen,
		))
		if !Lossy(dropped) {
			return Value{}, dropped
		}
	}

	v, err := c.assemble(whole, s.Terms)
	if err != nil {
		return v, err
	}

	return v, dropped
}

// FromInt returns the integer value v using the Default configuration.
func FromInt(v int) (Value, error) {
	return Default.FromInt(v)
}

// FromFraction returns num/den using the Default configuration.
func FromFraction(num, den int32) (Value, error) {
	return Default.FromFraction(num, den)
}

// Encode returns r using the Default configuration.
func Encode(r rational.R) (Value, error) {
	return Default.Encode(r)
}
