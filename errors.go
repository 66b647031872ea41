package crat

import "github.com/zeebo/errs"

// Error is the class of generic errors returned by this package.
var Error = errs.Class("crat")

// Error kinds.
var (
	// ErrDivisionByZero is returned for fractions with a zero denominator.
	ErrDivisionByZero = errs.Class("division by zero")

	// ErrOutOfRange is returned when a whole part leaves [MinWhole, MaxWhole].
	ErrOutOfRange = errs.Class("out of range")

	// ErrNumeratorOverflow is returned when a fractional remainder can't be
	// scaled to a byte numerator over any antichain denominator.
	ErrNumeratorOverflow = errs.Class("numerator overflow")

	// ErrArithmeticOverflow is returned when an intermediate sum doesn't fit
	// in the 32 bit range accepted by construction.
	ErrArithmeticOverflow = errs.Class("arithmetic overflow")

	// ErrTooManyTerms is returned when a value would need more than MaxTerms
	// distinct denominators.
	ErrTooManyTerms = errs.Class("too many terms")

	// ErrInvalidTerm is returned for terms whose denominator isn't in the
	// antichain.
	ErrInvalidTerm = errs.Class("invalid term")

	// ErrMalformed is returned when decoding truncated or trailing bytes.
	ErrMalformed = errs.Class("malformed")

	// ErrLossy wraps one of the kinds above when the Saturate policy
	// returned a clamped or truncated value instead of failing.
	ErrLossy = errs.Class("lossy")
)

// Lossy reports whether err only flags a lossy result. The value returned
// alongside such an error is valid.
func Lossy(err error) bool {
	return ErrLossy.Has(err)
}
