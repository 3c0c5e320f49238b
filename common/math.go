package common

const (
	BaseWidth  = 1280
	BaseHeight = 720
)

// EaseOut is the quadratic ease-out curve t*(2-t).
func EaseOut(t float64) float64 {
	return t * (2 - t)
}

func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
