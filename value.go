package crat

import (
	"github.com/calebcase/crat/antichain"
	"github.com/calebcase/crat/rational"
)

// Whole part and term limits.
const (
	MaxWhole = 16383
	MinWhole = -16383
	MaxTerms = 5
)

// Term is one fraction of a compact rational.
type Term = antichain.Term

// Value is a compact rational.
//
// Values are immutable and can be copied and compared with == freely. The
// zero Value is 0.
type Value struct {
	whole int16
	n     uint8
	terms [MaxTerms]Term
}

// Build returns the value whole + terms, without canonicalizing it. It is
// meant for values assembled by hand; terms may repeat denominators, have
// zero numerators or numerators larger than their denominator.
func Build(whole int, terms ...Term) (v Value, err error) {
	if whole < MinWhole || whole > MaxWhole {
		return v, ErrOutOfRange.New("whole part %d outside [%d, %d]", whole, MinWhole, MaxWhole)
	}

	if len(terms) > MaxTerms {
		return v, ErrTooManyTerms.New("%d terms, at most %d", len(terms), MaxTerms)
	}

	for i, t := range terms {
		if !t.Valid() {
			return v, ErrInvalidTerm.New("term %d: denominator %d outside [%d, %d]", i, t.Den, antichain.MinDen, antichain.MaxDen)
		}
	}

	v.whole = int16(whole)
	v.n = uint8(copy(v.terms[:], terms))

	return v, nil
}

// assemble builds a value after applying the range policy to whole. The terms
// must be valid and at most MaxTerms.
func (c Config) assemble(whole int64, terms []Term) (v Value, err error) {
	if len(terms) > MaxTerms {
		return v, ErrTooManyTerms.New("%d terms, at most %d", len(terms), MaxTerms)
	}

	if whole < MinWhole || whole > MaxWhole {
		err = c.lossy(ErrOutOfRange.New("whole part %d outside [%d, %d]", whole, MinWhole, MaxWhole))
		if !Lossy(err) {
			return Value{}, err
		}

		whole = clamp[int64](whole, MinWhole, MaxWhole)
	}

	v.whole = int16(whole)
	v.n = uint8(copy(v.terms[:], terms))

	return v, err
}

// Whole returns the whole part.
func (v Value) Whole() int {
	return int(v.whole)
}

// Len returns the number of terms.
func (v Value) Len() int {
	return int(v.n)
}

// Terms returns a copy of the terms.
func (v Value) Terms() []Term {
	if v.n == 0 {
		return nil
	}

	ts := make([]Term, v.n)
	copy(ts, v.terms[:v.n])

	return ts
}

// Size returns the encoded size in bytes.
func (v Value) Size() int {
	return 2 + 2*int(v.n)
}

// IsCanonical reports whether v is in canonical form: every term is proper
// and the denominators are strictly ascending.
func (v Value) IsCanonical() bool {
	for i, t := range v.terms[:v.n] {
		if !t.Proper() {
			return false
		}

		if i > 0 && v.terms[i-1].Den >= t.Den {
			return false
		}
	}

	return true
}

// Rational returns the exact value of v.
func (v Value) Rational() rational.R {
	// The running denominator divides the product of at most five antichain
	// denominators (< 2^40), so the 64 bit sums can't overflow.
	r := rational.Int(int64(v.whole))
	for _, t := range v.terms[:v.n] {
		r = rational.Add(r, rational.R{Num: int64(t.Num), Den: int64(t.Den)})
	}

	return r
}

// Float64 returns the nearest float64 to v.
func (v Value) Float64() float64 {
	return v.Rational().Float64()
}
