package rational

// GCD returns the greatest common divisor of the absolute values of a and b.
//
// GCD(0, 0) is 1 so the result can always be used as a divisor.
func GCD(a, b int64) int64 {
	a, b = abs(a), abs(b)
	for b != 0 {
		a, b = b, a%b
	}

	if a == 0 {
		return 1
	}

	return a
}

func abs(x int64) int64 {
	if x < 0 {
		return -x
	}

	return x
}

// ExtGCD returns x, y and d = gcd(a, b) such that a*x + b*y == d, for
// non-negative a and b.
func ExtGCD(a, b int64) (x, y, d int64) {
	x0, x1 := int64(1), int64(0)
	y0, y1 := int64(0), int64(1)

	for b != 0 {
		q := a / b
		a, b = b, a-q*b
		x0, x1 = x1, x0-q*x1
		y0, y1 = y1, y0-q*y1
	}

	return x0, y0, a
}

// Inverse returns x in [0, m) with a*x = 1 (mod m). It fails when a and m
// share a factor. m must be positive.
func Inverse(a, m int64) (int64, bool) {
	x, _, d := ExtGCD(mod(a, m), m)
	if d != 1 {
		return 0, false
	}

	return mod(x, m), true
}

// mod returns a modulo m in [0, m).
func mod(a, m int64) int64 {
	return (a%m + m) % m
}
