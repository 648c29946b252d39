package bezier

import "github.com/chewxy/math32"

// Binomial returns C(n,k). It multiplies then divides at every step so the
// intermediate value stays an exact integer and never grows past C(n,k)*k.
func Binomial(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	if k == 0 || k == n {
		return 1
	}
	res := 1
	for i := 1; i <= k; i++ {
		res *= n - i + 1
		res /= i
	}
	return res
}

// Bernstein evaluates the basis polynomial B(n,k,t) = C(n,k) t^k (1-t)^(n-k).
func Bernstein(n, k int, t float32) float32 {
	c := Binomial(n, k)
	if c == 0 {
		return 0
	}
	return float32(c) * math32.Pow(t, float32(k)) * math32.Pow(1-t, float32(n-k))
}
