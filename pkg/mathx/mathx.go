package mathx

// Number covers the built-in numeric types usable with these helpers.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Clamp limits v to the range [lo, hi].
func Clamp[T Number](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 limits v to the range [0, 1].
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// Lerp linearly interpolates between a and b by t. t outside [0, 1]
// extrapolates.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// InverseLerp returns where v sits between a and b as a fraction. It
// returns 0 when a == b.
func InverseLerp(a, b, v float64) float64 {
	if a == b {
		return 0
	}
	return (v - a) / (b - a)
}

// Remap maps v from the range [inLo, inHi] to [outLo, outHi].
func Remap(v, inLo, inHi, outLo, outHi float64) float64 {
	return Lerp(outLo, outHi, InverseLerp(inLo, inHi, v))
}

// Sum returns the total of xs.
func Sum[T Number](xs []T) T {
	var total T
	for _, x := range xs {
		total += x
	}
	return total
}

// Mean returns the arithmetic mean of xs, or 0 for an empty slice.
func Mean[T Number](xs []T) float64 {
	if len(xs) == 0 {
		return 0
	}
	return float64(Sum(xs)) / float64(len(xs))
}

// Min returns the smallest value in xs. The second return is false on an
// empty slice.
func Min[T Number](xs []T) (T, bool) {
	lo, _, ok := MinMax(xs)
	return lo, ok
}

// Max returns the largest value in xs. The second return is false on an
// empty slice.
func Max[T Number](xs []T) (T, bool) {
	_, hi, ok := MinMax(xs)
	return hi, ok
}

// MinMax returns the smallest and largest values in xs in one pass. The
// third return is false on an empty slice.
func MinMax[T Number](xs []T) (lo, hi T, ok bool) {
	if len(xs) == 0 {
		return lo, hi, false
	}

	lo, hi = xs[0], xs[0]
	for _, x := range xs[1:] {
		if x < lo {
			lo = x
		}
		if x > hi {
			hi = x
		}
	}
	return lo, hi, true
}
