package main

import (
	"fmt"
	"math"

	"github.com/calebcase/oops"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/calebcase/crat"
)

type fraction struct {
	Num, Den int32
}

// eTerm returns the k-th partial quotient of e = [2; 1, 2, 1, 1, 4, 1, ...].
func eTerm(k int) int64 {
	switch {
	case k == 0:
		return 2
	case k%3 == 2:
		return 2 * int64(k+1) / 3
	default:
		return 1
	}
}

// eConvergents returns the convergents of e whose parts fit in 32 bits.
func eConvergents() (cs []fraction) {
	h1, h2 := int64(1), int64(0)
	k1, k2 := int64(0), int64(1)

	for k := 0; ; k++ {
		a := eTerm(k)

		h := a*h1 + h2
		d := a*k1 + k2

		if h > math.MaxInt32 || d > math.MaxInt32 {
			return cs
		}

		cs = append(cs, fraction{Num: int32(h), Den: int32(d)})

		h1, h2 = h, h1
		k1, k2 = d, k1
	}
}

func (a *app) convergentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convergents",
		Short: "Encode the continued fraction convergents of e.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cs := eConvergents()
			vs := make([]crat.Value, len(cs))

			g, ctx := errgroup.WithContext(cmd.Context())
			for i, c := range cs {
				i, c := i, c

				g.Go(func() error {
					v, err := a.config.FromFraction(c.Num, c.Den)
					if err = checked(ctx, "encode", err); err != nil {
						return err
					}

					vs[i] = v

					return nil
				})
			}

			if err := g.Wait(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, c := range cs {
				data, err := vs[i].MarshalBinary()
				if err != nil {
					return oops.Trace(err)
				}

				approx := float64(c.Num) / float64(c.Den)

				_, err = fmt.Fprintf(out, "%2d %d/%d\t%x\t%s\terror=%.3g\tsize=%d\n",
					i, c.Num, c.Den, data, terms(vs[i]), math.Abs(vs[i].Float64()-approx), vs[i].Size())
				if err != nil {
					return err
				}
			}

			return nil
		},
	}
}
