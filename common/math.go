package common

import "math"

const (
	BaseWidth  = 1280
	BaseHeight = 720
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// MoveToward steps v toward target by at most delta without overshooting.
func MoveToward(v, target, delta float64) float64 {
	if v < target {
		return math.Min(v+delta, target)
	}
	if v > target {
		return math.Max(v-delta, target)
	}
	return v
}
