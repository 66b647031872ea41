package main

import (
	"github.com/spf13/cobra"

	"github.com/calebcase/crat"
)

func (a *app) encodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode NUM/DEN...",
		Short: "Encode fractions with at most one term each.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				num, den, err := parseFraction(arg)
				if err != nil {
					return err
				}

				v, err := a.config.FromFraction(num, den)
				if err = checked(cmd.Context(), "encode", err); err != nil {
					return err
				}

				if err = printValue(cmd.OutOrStdout(), v); err != nil {
					return err
				}
			}

			return nil
		},
	}
}

func (a *app) addCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add NUM/DEN...",
		Short: "Encode fractions and print their running sum.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var sum crat.Value

			for _, arg := range args {
				num, den, err := parseFraction(arg)
				if err != nil {
					return err
				}

				v, err := a.config.FromFraction(num, den)
				if err = checked(ctx, "encode", err); err != nil {
					return err
				}

				sum, err = a.config.Add(sum, v)
				if err = checked(ctx, "add", err); err != nil {
					return err
				}
			}

			return printValue(cmd.OutOrStdout(), sum)
		},
	}
}

func (a *app) canonCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "canon HEX...",
		Short: "Canonicalize wire encoded values.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				v, err := parseHex(arg)
				if err != nil {
					return err
				}

				v, err = a.config.Canonicalize(v)
				if err = checked(cmd.Context(), "canon", err); err != nil {
					return err
				}

				if err = printValue(cmd.OutOrStdout(), v); err != nil {
					return err
				}
			}

			return nil
		},
	}
}

func (a *app) decodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode HEX...",
		Short: "Decode wire encoded values without canonicalizing them.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				v, err := parseHex(arg)
				if err != nil {
					return err
				}

				if err = printValue(cmd.OutOrStdout(), v); err != nil {
					return err
				}
			}

			return nil
		},
	}
}
