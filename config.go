package crat

import (
	"strings"

	"golang.org/x/exp/constraints"
)

// Policy selects how results that don't fit the encoding are handled.
type Policy int

const (
	// Strict fails with the error kind and returns the zero value.
	Strict Policy = iota

	// Saturate clamps the whole part into range and drops a remainder
	// that rounds to zero, returning the value with an ErrLossy error.
	Saturate
)

var policyNames = map[Policy]string{
	Strict:   "strict",
	Saturate: "saturate",
}

func (p Policy) String() string {
	if name, ok := policyNames[p]; ok {
		return name
	}

	return "unknown"
}

// ParsePolicy returns the policy with the given name.
func ParsePolicy(s string) (Policy, error) {
	for p, name := range policyNames {
		if strings.EqualFold(s, name) {
			return p, nil
		}
	}

	return Strict, Error.New("unknown policy %q", s)
}

// Config holds the options of the codec operations.
type Config struct {
	Policy Policy
}

// Default is the configuration used by the package level functions. It fails
// closed.
var Default = Config{Policy: Strict}

// lossy applies the policy to err: Strict returns it unchanged, Saturate wraps
// it in ErrLossy.
func (c Config) lossy(err error) error {
	if c.Policy == Saturate {
		return ErrLossy.Wrap(err)
	}

	return err
}

func clamp[T constraints.Integer](v, lo, hi T) T {
	return min(max(v, lo), hi)
}
