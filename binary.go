package crat

import (
	"encoding/binary"

	"github.com/calebcase/crat/antichain"
)

// Wire layout masks.
const (
	termsFlag uint16 = 0b_1000_0000_0000_0000
	wholeMask uint16 = 0b_0111_1111_1111_1111
	wholeSign uint16 = 0b_0100_0000_0000_0000

	lastFlag byte = 0b_1000_0000
	denMask  byte = 0b_0111_1111
)

// AppendBinary appends the encoding of v to b.
func (v Value) AppendBinary(b []byte) ([]byte, error) {
	w := uint16(v.whole) & wholeMask
	if v.n > 0 {
		w |= termsFlag
	}

	b = binary.BigEndian.AppendUint16(b, w)

	for i, t := range v.terms[:v.n] {
		if !t.Valid() {
			return nil, ErrInvalidTerm.New("term %d: denominator %d", i, t.Den)
		}

		db := byte(t.Offset())
		if i == int(v.n)-1 {
			db |= lastFlag
		}

		b = append(b, t.Num, db)
	}

	return b, nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (v Value) MarshalBinary() (data []byte, err error) {
	return v.AppendBinary(make([]byte, 0, v.Size()))
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. The data must hold
// exactly one value.
func (v *Value) UnmarshalBinary(data []byte) (err error) {
	d, n, err := Decode(data)
	if err != nil {
		return err
	}

	if n != len(data) {
		return ErrMalformed.New("%d trailing bytes", len(data)-n)
	}

	*v = d

	return nil
}

// Decode reads one value from the front of data and returns it with the
// number of bytes it occupied. The value is not canonicalized.
func Decode(data []byte) (v Value, n int, err error) {
	if len(data) < 2 {
		return v, 0, ErrMalformed.New("short buffer: %d bytes", len(data))
	}

	w := binary.BigEndian.Uint16(data)

	whole := int(w & wholeMask)
	if w&wholeSign != 0 {
		whole -= 1 << 15
	}

	if whole < MinWhole {
		return Value{}, 0, ErrOutOfRange.New("whole part %d outside [%d, %d]", whole, MinWhole, MaxWhole)
	}

	v.whole = int16(whole)
	n = 2

	if w&termsFlag == 0 {
		return v, n, nil
	}

	for {
		if v.n == MaxTerms {
			return Value{}, 0, ErrTooManyTerms.New("no last term marker after %d terms", MaxTerms)
		}

		if len(data) < n+2 {
			return Value{}, 0, ErrMalformed.New("short buffer: term %d needs %d bytes, have %d", v.n, n+2, len(data))
		}

		num, db := data[n], data[n+1]
		n += 2

		v.terms[v.n] = Term{Num: num, Den: antichain.MinDen + db&denMask}
		v.n++

		if db&lastFlag != 0 {
			return v, n, nil
		}
	}
}
