// Package antichain selects denominators from the antichain [128, 255].
//
// No member of [128, 255] evenly divides another member (the smallest
// multiple of 128 is already 256), so two terms with distinct antichain
// denominators never encode the same fractional quantity twice.
//
// A fractional remainder p/q with 0 < p < q is represented with one of three
// strategies, in order of preference:
//
//  1. Single: one exact term n/d. Every q <= 255 has a multiple in the
//     antichain, so every such remainder is exact.
//  2. Pair: two exact terms n1/d1 + n2/d2 with d1 < d2.
//  3. Nearest: the single term closest to p/q. The error is at most
//     MaxError.
//
//  | q         | Strategy                      | Example               |
//  |-----------|-------------------------------|-----------------------|
//  | 2..255    | Single                        | 1/3   = 43/129        |
//  | lcm(d1,d2)| Pair                          | 257/16512 = 1/128 + 1/129 |
//  | otherwise | Nearest                       | 1/256 ~ 1/255         |
//  |-----------|-------------------------------|-----------------------|
//
// All searches are bounded by the 128 candidate denominators.
package antichain
