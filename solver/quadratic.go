package solver

import "math"

const (
	sqrtEpsilon = 1e-5
	epsilon     = sqrtEpsilon * sqrtEpsilon
)

func isZero(v float64) bool {
	return math.Abs(v) < epsilon
}

//Quadratic returns the real solutions of a·x² + b·x + c = 0 in ascending order.
func Quadratic(a, b, c float64) []float64 {
	if isZero(a) {
		return Linear(b, c)
	}

	b, c = b/a, c/a

	disc := b*b - 4*c
	switch {
	case math.Abs(disc) < sqrtEpsilon:
		return []float64{-b / 2}
	case disc < 0:
		return nil
	}

	mid := -b / 2
	halfWidth := math.Sqrt(disc) / 2
	return []float64{mid - halfWidth, mid + halfWidth}
}

//Linear returns the solution of a·x + b = 0.
//0 = 0 yields the single solution 0.
func Linear(a, b float64) []float64 {
	if !isZero(a) {
		return []float64{-b / a}
	}
	if isZero(b) {
		return []float64{0}
	}
	return nil
}
