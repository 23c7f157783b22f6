package generic

import "math"

func rsqrt(x float64) float64 { return 1 / math.Sqrt(x) }

func rec(x float64) float64 { return 1 / x }

func div(a, b float64) float64 { return a / b }

// sinPi returns sin(πx). Integers map to a zero carrying the sign of x and
// half-integers to exactly ±1.
func sinPi(x float64) float64 {
	switch {
	case math.IsNaN(x) || math.IsInf(x, 0):
		return math.NaN()
	case x == math.Trunc(x):
		return math.Copysign(0, x)
	}

	sign := 1.0
	if x < 0 {
		x, sign = -x, -1
	}
	y := math.Mod(x, 2)
	if y > 1 {
		y, sign = y-1, -sign
	}
	if y > 0.5 {
		y = 1 - y
	}
	return sign * math.Sin(math.Pi*y)
}

// cosPi returns cos(πx). Integers map to exactly ±1 and half-integers to +0.
func cosPi(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return math.NaN()
	}

	y := math.Mod(math.Abs(x), 2)
	if y > 1 {
		y = 2 - y
	}
	if y == 0.5 {
		return 0
	}
	sign := 1.0
	if y > 0.5 {
		y, sign = 1-y, -1
	}
	if y > 0.25 {
		return sign * math.Sin(math.Pi*(0.5-y))
	}
	return sign * math.Cos(math.Pi*y)
}

// tanPi returns tan(πx); half-integers give ±Inf.
func tanPi(x float64) float64 {
	return sinPi(x) / cosPi(x)
}
