package crat

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParsePolicy(t *testing.T) {
	type TC struct {
		Input  string
		Output Policy
		Valid  bool
	}

	tcs := []TC{
		{"strict", Strict, true},
		{"Strict", Strict, true},
		{"saturate", Saturate, true},
		{"SATURATE", Saturate, true},
		{"", Strict, false},
		{"clamp", Strict, false},
	}

	for _, tc := range tcs {
		t.Run(tc.Input, func(t *testing.T) {
			p, err := ParsePolicy(tc.Input)
			if !tc.Valid {
				require.Error(t, err)
				require.True(t, Error.Has(err))

				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.Output, p)

			q, err := ParsePolicy(p.String())
			require.NoError(t, err)
			require.Equal(t, p, q)
		})
	}

	require.Equal(t, "unknown", Policy(7).String())
}

func TestLossy(t *testing.T) {
	strict := Config{Policy: Strict}
	saturate := Config{Policy: Saturate}

	err := strict.lossy(ErrOutOfRange.New("x"))
	require.False(t, Lossy(err))
	require.True(t, ErrOutOfRange.Has(err))

	err = saturate.lossy(ErrOutOfRange.New("x"))
	require.True(t, Lossy(err))
	require.True(t, ErrOutOfRange.Has(err))

	require.False(t, Lossy(nil))
}

func TestClamp(t *testing.T) {
	require.Equal(t, 3, clamp(3, 0, 5))
	require.Equal(t, 0, clamp(-3, 0, 5))
	require.Equal(t, 5, clamp(8, 0, 5))
	require.Equal(t, int64(MinWhole), clamp[int64](-1<<40, MinWhole, MaxWhole))
}
