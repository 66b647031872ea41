package main

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/calebcase/oops"
	"github.com/rs/zerolog"

	"github.com/calebcase/crat"
)

// parseFraction parses "NUM/DEN" or "NUM" into 32 bit parts.
func parseFraction(s string) (num, den int32, err error) {
	ns, ds, ok := strings.Cut(s, "/")
	if !ok {
		ds = "1"
	}

	n, err := strconv.ParseInt(strings.TrimSpace(ns), 10, 32)
	if err != nil {
		return 0, 0, oops.Trace(err)
	}

	d, err := strconv.ParseInt(strings.TrimSpace(ds), 10, 32)
	if err != nil {
		return 0, 0, oops.Trace(err)
	}

	return int32(n), int32(d), nil
}

// parseHex decodes one wire value. Underscores and spaces are ignored.
func parseHex(s string) (v crat.Value, err error) {
	s = strings.NewReplacer("_", "", " ", "").Replace(s)

	data, err := hex.DecodeString(s)
	if err != nil {
		return v, oops.Trace(err)
	}

	err = v.UnmarshalBinary(data)
	if err != nil {
		return v, oops.Trace(err)
	}

	return v, nil
}

// checked logs lossy results as warnings and passes other errors through.
func checked(ctx context.Context, op string, err error) error {
	if err == nil {
		return nil
	}

	if crat.Lossy(err) {
		zerolog.Ctx(ctx).Warn().Err(err).Str("op", op).Msg("lossy result")

		return nil
	}

	return oops.Trace(err)
}

// terms formats v as its whole part followed by its terms.
func terms(v crat.Value) string {
	sb := &strings.Builder{}

	sb.WriteString(strconv.Itoa(v.Whole()))

	for _, t := range v.Terms() {
		fmt.Fprintf(sb, " + %d/%d", t.Num, t.Den)
	}

	return sb.String()
}

func printValue(w io.Writer, v crat.Value) error {
	data, err := v.MarshalBinary()
	if err != nil {
		return oops.Trace(err)
	}

	_, err = fmt.Fprintf(w, "%x\t%s\t%g\n", data, terms(v), v.Float64())

	return err
}
