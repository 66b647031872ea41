// Command crat encodes, adds and decodes compact antichain rationals.
package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
)

func main() {
	logger := newLogger(os.Stderr, zerolog.InfoLevel)

	ctx := logger.WithContext(context.Background())
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		logger.Error().Err(err).Msg("failed")
		os.Exit(1)
	}
}
