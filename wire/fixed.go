package wire

import (
	"math"
	"strconv"
)

// Fixed is a signed 24.8 fixed-point value.
type Fixed int32

// FixedFromFloat converts f to fixed point, rounding to the nearest step.
func FixedFromFloat(f float64) Fixed {
	return Fixed(math.Round(f * 256))
}

// FixedFromInt converts a whole number to fixed point.
func FixedFromInt(i int32) Fixed {
	return Fixed(i << 8)
}

// Float returns the value as a float64.
func (f Fixed) Float() float64 {
	return float64(f) / 256
}

// Int returns the whole part, truncated toward negative infinity.
func (f Fixed) Int() int32 {
	return int32(f) >> 8
}

func (f Fixed) String() string {
	return strconv.FormatFloat(f.Float(), 'g', -1, 64)
}
