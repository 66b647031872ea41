// Package crat provides compact rationals: small fixed-layout numbers made of
// a whole part and up to five fractions over antichain denominators.
//
// The value of a compact rational is:
//
//  value = whole + n1/d1 + n2/d2 + ... + nk/dk
//
// Where whole is in [-16383, +16383], every numerator n is a byte, every
// denominator d is in [128, 255] (see package antichain) and k <= 5. For
// example:
//
//  0.75    = 0 + 96/128
//  5/6     = 0 + 64/128 + 43/129
//  -0.5    = -1 + 64/128
//
// Encoding
//
// The whole part is a big-endian 16 bit word. The top bit signals that terms
// follow, the remaining 15 bits are the whole part in two's complement. The
// flag never overlaps the sign: a 15 bit whole part carries its sign in bit
// 14.
//
//  | 15 | 14 . 13 . 12 . ... . 2 . 1 . 0 |
//  |----|--------------------------------|
//  | T  | Whole (15 bit two's complement)| T = 1 when terms follow.
//  |----|--------------------------------|
//
// Each term is two bytes: the numerator and then the denominator offset from
// 128. The top bit of the offset byte marks the last term.
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//  |-------------------------------|
//  | Numerator (0-255)             |
//  |-------------------------------|
//  | E | Denominator - 128 (0-127) | E = 1 on the last term.
//  |---|---------------------------|
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//
// An encoded value is 2 + 2*k bytes.
//
// Examples
//
// 5 (2 bytes)
//
//  | 0 . 0 . 0 . 0 . 0 . 0 . 0 . 0 |
//  | 0 . 0 . 0 . 0 . 0 . 1 . 0 . 1 |
//
// 1/2 = 0 + 64/128 (4 bytes)
//
//  | 1 . 0 . 0 . 0 . 0 . 0 . 0 . 0 | Terms follow, whole of 0.
//  | 0 . 0 . 0 . 0 . 0 . 0 . 0 . 0 |
//  |-------------------------------|
//  | 0 . 1 . 0 . 0 . 0 . 0 . 0 . 0 | Numerator 64.
//  | 1 | 0 . 0 . 0 . 0 . 0 . 0 . 0 | Last term, denominator 128.
//
// -1/2 = -1 + 64/128 (4 bytes)
//
//  | 1 . 1 . 1 . 1 . 1 . 1 . 1 . 1 | Terms follow, whole of -1.
//  | 1 . 1 . 1 . 1 . 1 . 1 . 1 . 1 |
//  |-------------------------------|
//  | 0 . 1 . 0 . 0 . 0 . 0 . 0 . 0 | Numerator 64.
//  | 1 | 0 . 0 . 0 . 0 . 0 . 0 . 0 | Last term, denominator 128.
//
// Canonical Form
//
// Values built from integers and fractions are canonical. Hand built or
// decoded values may not be; Canonicalize merges duplicate denominators,
// carries whole units out of the terms, drops zero terms and sorts the terms
// by denominator.
//
// Errors
//
// Every fallible operation returns one of the error classes below. Nothing is
// dropped silently: under the Saturate policy a clamped or truncated result is
// still returned, but together with an ErrLossy error (see Lossy).
package crat
