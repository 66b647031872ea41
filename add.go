package crat

import (
	"github.com/calebcase/crat/rational"
)

// Add returns a+b.
//
// Integers and single term values, the only shapes construction produces, are
// added without leaving the encoding:
//
//  | a terms | b terms | Result                                            |
//  |---------|---------|---------------------------------------------------|
//  | 0       | 0       | whole parts summed                                |
//  | 0       | 1       | whole parts summed, b's term kept                 |
//  | 1       | 1       | same denominator: numerators summed and carried   |
//  | 1       | 1       | different denominators: both terms kept (exact)   |
//  | > 1     | any     | terms merged, else exact sum re-encoded           |
//  |---------|---------|---------------------------------------------------|
//
// When merging would need more than MaxTerms denominators the sum is computed
// exactly and re-encoded with up to two terms. A sum that can only be
// approximated fails with ErrTooManyTerms, or under Saturate returns the
// nearest term with an ErrLossy error.
func (c Config) Add(a, b Value) (Value, error) {
	whole := int64(a.whole) + int64(b.whole)

	switch {
	case a.n == 0 && b.n == 0:
		return c.assemble(whole, nil)
	case a.n == 0 && b.n == 1:
		return c.assemble(whole, b.terms[:1])
	case a.n == 1 && b.n == 0:
		return c.assemble(whole, a.terms[:1])
	case a.n == 1 && b.n == 1:
		ta, tb := a.terms[0], b.terms[0]

		if ta.Den == tb.Den {
			num := uint16(ta.Num) + uint16(tb.Num)
			whole += int64(num / uint16(ta.Den))
			num %= uint16(ta.Den)

			if num == 0 {
				return c.assemble(whole, nil)
			}

			return c.assemble(whole, []Term{{Num: uint8(num), Den: ta.Den}})
		}

		if tb.Den < ta.Den {
			ta, tb = tb, ta
		}

		return c.assemble(whole, []Term{ta, tb})
	}

	return c.addGeneral(whole, a, b)
}

func (c Config) addGeneral(whole int64, a, b Value) (Value, error) {
	terms := make([]Term, 0, a.n+b.n)
	terms = append(terms, a.terms[:a.n]...)
	terms = append(terms, b.terms[:b.n]...)

	v, err := c.canonical(whole, terms)
	if !ErrTooManyTerms.Has(err) {
		return v, err
	}

	sum, err := rational.TryAdd(a.Rational(), b.Rational())
	if err != nil {
		return Value{}, ErrArithmeticOverflow.Wrap(err)
	}

	if !rational.Fits32(sum) {
		return Value{}, ErrArithmeticOverflow.New("%d/%d exceeds 32 bits", sum.Num, sum.Den)
	}

	return c.encode(sum, 2, true)
}

// Add returns a+b using the Default configuration.
func Add(a, b Value) (Value, error) {
	return Default.Add(a, b)
}
