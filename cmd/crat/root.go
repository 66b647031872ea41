package main

import (
	"io"
	"strings"

	"github.com/calebcase/oops"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/calebcase/crat"
)

const (
	// envPrefix is the prefix of the environment variables bound to flags,
	// e.g. CRAT_POLICY=saturate.
	envPrefix = "CRAT"

	flagPolicy   = "policy"
	flagLogLevel = "log-level"
)

// app carries the configuration shared by the subcommands. It is filled in
// by the root command's PersistentPreRunE.
type app struct {
	v      *viper.Viper
	config crat.Config
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "crat [subcommand] [flags]",
		Short: "Encode, add and inspect compact antichain rationals.",
		Long: `Encode, add and inspect compact antichain rationals.

Values are printed as their hex wire encoding, their terms and their
floating point approximation. Flags can also be set with environment
variables prefixed with CRAT_ (e.g. CRAT_POLICY=saturate).`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.PersistentFlags().String(flagPolicy, crat.Strict.String(), "Range policy: strict or saturate.")
	rootCmd.PersistentFlags().String(flagLogLevel, zerolog.InfoLevel.String(), "Log level.")

	rootCmd.AddCommand(
		a.encodeCmd(),
		a.addCmd(),
		a.canonCmd(),
		a.decodeCmd(),
		a.convergentsCmd(),
	)

	return rootCmd
}

// setup reads the viper config values from bound flags, then environment
// variables, then defaults.
func (a *app) setup(cmd *cobra.Command, args []string) (err error) {
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if err = a.v.BindPFlags(cmd.Flags()); err != nil {
		return oops.Trace(err)
	}

	level, err := zerolog.ParseLevel(a.v.GetString(flagLogLevel))
	if err != nil {
		return oops.Trace(err)
	}

	policy, err := crat.ParsePolicy(a.v.GetString(flagPolicy))
	if err != nil {
		return oops.Trace(err)
	}

	a.config = crat.Config{Policy: policy}

	logger := zerolog.Ctx(cmd.Context()).Level(level)
	cmd.SetContext(logger.WithContext(cmd.Context()))

	logger.Debug().Stringer("policy", policy).Msg("configured")

	return nil
}

func newLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{
		Out: w,
		// Remove the timestamp from the output
		FormatTimestamp: func(i interface{}) string {
			return ""
		},
	}).Level(level)
}
