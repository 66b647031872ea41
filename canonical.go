package crat

import (
	"github.com/calebcase/crat/antichain"
)

// Canonicalize returns the canonical form of v: numerators of equal
// denominators are merged, whole units are carried into the whole part, zero
// terms are dropped and the remaining terms are sorted by denominator.
//
// Canonicalize is idempotent. Carries may push the whole part out of range,
// which is handled according to the policy.
func (c Config) Canonicalize(v Value) (Value, error) {
	return c.canonical(int64(v.whole), v.terms[:v.n])
}

func (c Config) canonical(whole int64, terms []Term) (Value, error) {
	var buckets [antichain.Count]uint32

	for _, t := range terms {
		buckets[t.Offset()] += uint32(t.Num)
	}

	var out [MaxTerms]Term
	var n int

	for i, num := range buckets {
		if num == 0 {
			continue
		}

		den := uint32(antichain.MinDen + i)
		whole += int64(num / den)
		num %= den

		if num == 0 {
			continue
		}

		if n == MaxTerms {
			return Value{}, ErrTooManyTerms.New("more than %d distinct denominators", MaxTerms)
		}

		out[n] = Term{Num: uint8(num), Den: uint8(den)}
		n++
	}

	return c.assemble(whole, out[:n])
}

// Canonicalize returns the canonical form of v using the Default
// configuration.
func Canonicalize(v Value) (Value, error) {
	return Default.Canonicalize(v)
}
