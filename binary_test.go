package crat

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/calebcase/oops"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
)

func shortName(i int, data []byte) string {
	sb := &strings.Builder{}

	sb.WriteString(fmt.Sprintf("%02d/", i))

	for i, b := range data {
		if i > 0 && i%2 == 0 {
			sb.WriteString("_")
		}

		sb.WriteString(fmt.Sprintf("%02x", b))
	}

	sb.WriteString(fmt.Sprintf("(len=%d)", len(data)))

	return sb.String()
}

func TestMarshal(t *testing.T) {
	type TC struct {
		Input  Value
		Output []byte
		Mark   error
	}

	tcs := []TC{
		{
			Input:  integer(t, 0),
			Output: []byte{0b_0000_0000, 0b_0000_0000},
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  integer(t, 5),
			Output: []byte{0b_0000_0000, 0b_0000_0101},
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  integer(t, -1),
			Output: []byte{0b_0111_1111, 0b_1111_1111},
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  integer(t, MaxWhole),
			Output: []byte{0b_0011_1111, 0b_1111_1111},
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  integer(t, MinWhole),
			Output: []byte{0b_0100_0000, 0b_0000_0001},
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  fraction(t, 1, 2),
			Output: []byte{0b_1000_0000, 0b_0000_0000, 0b_0100_0000, 0b_1000_0000},
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  fraction(t, -1, 2),
			Output: []byte{0b_1111_1111, 0b_1111_1111, 0b_0100_0000, 0b_1000_0000},
			Mark:   oops.New("unexpected"),
		},
		{
			Input: build(t, 0, Term{Num: 64, Den: 128}, Term{Num: 43, Den: 129}),
			Output: []byte{
				0b_1000_0000, 0b_0000_0000,
				0b_0100_0000, 0b_0000_0000,
				0b_0010_1011, 0b_1000_0001,
			},
			Mark: oops.New("unexpected"),
		},
		{
			Input: build(t, -16383, Term{Num: 255, Den: 255}, Term{Num: 1, Den: 128}, Term{Num: 0, Den: 200}, Term{Num: 7, Den: 129}, Term{Num: 9, Den: 254}),
			Output: []byte{
				0b_1100_0000, 0b_0000_0001,
				0b_1111_1111, 0b_0111_1111,
				0b_0000_0001, 0b_0000_0000,
				0b_0000_0000, 0b_0100_1000,
				0b_0000_0111, 0b_0000_0001,
				0b_0000_1001, 0b_1111_1110,
			},
			Mark: oops.New("unexpected"),
		},
	}

	for i, tc := range tcs {
		t.Run(shortName(i, tc.Output), func(t *testing.T) {
			data, err := tc.Input.MarshalBinary()
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.Input.Size(), len(data), tc.Mark)
			require.Equal(t, tc.Output, data, tc.Mark)

			v := Value{}
			err = v.UnmarshalBinary(data)
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.Input, v, tc.Mark)
		})
	}
}

func TestUnmarshalErrors(t *testing.T) {
	type TC struct {
		Input []byte
		check func(error) bool
	}

	tcs := []TC{
		{nil, ErrMalformed.Has},
		{[]byte{0b_0000_0000}, ErrMalformed.Has},
		{[]byte{0b_1000_0000, 0b_0000_0000}, ErrMalformed.Has},
		{[]byte{0b_1000_0000, 0b_0000_0000, 0b_0100_0000}, ErrMalformed.Has},
		{[]byte{0b_1000_0000, 0b_0000_0000, 0b_0100_0000, 0b_0000_0000}, ErrMalformed.Has},
		{[]byte{0b_0000_0000, 0b_0000_0101, 0b_0000_0000}, ErrMalformed.Has},
		{[]byte{0b_0100_0000, 0b_0000_0000}, ErrOutOfRange.Has},
		{[]byte{0b_1100_0000, 0b_0000_0000, 0b_0000_0001, 0b_1000_0000}, ErrOutOfRange.Has},
		{
			[]byte{
				0b_1000_0000, 0b_0000_0000,
				0b_0000_0001, 0b_0000_0000,
				0b_0000_0001, 0b_0000_0001,
				0b_0000_0001, 0b_0000_0010,
				0b_0000_0001, 0b_0000_0011,
				0b_0000_0001, 0b_0000_0100,
				0b_0000_0001, 0b_1000_0101,
			},
			ErrTooManyTerms.Has,
		},
	}

	for i, tc := range tcs {
		t.Run(shortName(i, tc.Input), func(t *testing.T) {
			v := Value{}
			err := v.UnmarshalBinary(tc.Input)
			require.Error(t, err)
			require.True(t, tc.check(err), err)
			require.Equal(t, Value{}, v)
		})
	}
}

func TestDecodeStream(t *testing.T) {
	values := []Value{
		integer(t, 42),
		fraction(t, 1, 3),
		build(t, -7, Term{Num: 1, Den: 128}, Term{Num: 2, Den: 129}, Term{Num: 3, Den: 130}),
		integer(t, MinWhole),
	}

	var data []byte
	for _, v := range values {
		var err error

		data, err = v.AppendBinary(data)
		require.NoError(t, err)
	}

	for i, want := range values {
		v, n, err := Decode(data)
		require.NoError(t, err, "value %d", i)
		require.Equal(t, want.Size(), n, "value %d", i)
		require.Equal(t, want, v, "value %d", i)

		data = data[n:]
	}

	require.Empty(t, data)
}

func TestRoundtrip(t *testing.T) {
	t.Run("integers", func(t *testing.T) {
		for i := MinWhole; i <= MaxWhole; i++ {
			in := integer(t, i)

			data, err := in.MarshalBinary()
			require.NoError(t, err)

			out := Value{}
			require.NoError(t, out.UnmarshalBinary(data))
			require.Equal(t, in, out)
		}
	})

	t.Run("random", func(t *testing.T) {
		rng := rand.New(rand.NewSource(6))

		for i := 0; i < 5000; i++ {
			in := random(rng)

			data, err := in.MarshalBinary()
			require.NoError(t, err, spew.Sdump(in))

			out := Value{}
			require.NoError(t, out.UnmarshalBinary(data), spew.Sdump(in, data))
			require.Equal(t, in, out, spew.Sdump(in, data))
		}
	})
}
