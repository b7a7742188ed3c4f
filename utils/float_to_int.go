// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Rounding thresholds past which a float S16 sample saturates.
const (
	maxRound = math.MaxInt16 - 0.5
	minRound = math.MinInt16 + 0.5
)

// FloatS16ToS16 converts a sample in the float S16 range [-32768.0, 32767.0]
// to int16. Values are rounded half away from zero; anything at or past the
// rounding thresholds saturates to the int16 limits. NaN maps to 0.
func FloatS16ToS16(v float32) int16 {
	if v != v {
		return 0
	}

	if v > 0 {
		if v >= maxRound {
			return math.MaxInt16
		}
		return int16(v + 0.5)
	}

	if v <= minRound {
		return math.MinInt16
	}
	return int16(v - 0.5)
}

// FloatS16ToS16Slice converts src into dst and returns the number of samples
// converted, which is the shorter of the two lengths.
func FloatS16ToS16Slice(dst []int16, src []float32) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = FloatS16ToS16(src[i])
	}

	return n
}

// S16ToFloatS16Slice widens int16 samples to float32 without scaling, so the
// result stays in [-32768.0, 32767.0].
func S16ToFloatS16Slice(dst []float32, src []int16) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = float32(src[i])
	}

	return n
}

// SaturateInt16 clamps an arbitrary int into the int16 range.
func SaturateInt16(v int) int16 {
	switch {
	case v > math.MaxInt16:
		return math.MaxInt16
	case v < math.MinInt16:
		return math.MinInt16
	default:
		return int16(v)
	}
}
