package fract

import "golang.org/x/image/math/fixed"

// Minimum and maximum constants.
const (
	MaxUnit Unit = +0x7FFFFFFF
	MinUnit Unit = -0x7FFFFFFF - 1
	One Unit = 64 // fract.One.ToIntFloor() == 1
	MaxInt int = +33554431
	MinInt int = -33554432
)

// Fixed point type to represent fractional pixel values. 26 bits
// are used for the integer part and the remaining 6 bits for the
// fractional part, so 64 is one pixel and 96 is one pixel and a half.
//
// The internal representation is compatible with [fixed.Int26_6].
//
// [fixed.Int26_6]: golang.org/x/image/math/fixed.Int26_6
type Unit int32

// Fast conversion from int to [Unit]. If the int value is not
// representable with a [Unit], the result is undefined. If you
// want to account for overflows, check [MinInt] <= value <= [MaxInt].
func FromInt(value int) Unit { return Unit(value << 6) }

// Conversion from [fixed.Int26_6]. No precision is lost.
//
// [fixed.Int26_6]: golang.org/x/image/math/fixed.Int26_6
func FromFixed(value fixed.Int26_6) Unit { return Unit(value) }

// Conversion to [fixed.Int26_6]. No precision is lost.
//
// [fixed.Int26_6]: golang.org/x/image/math/fixed.Int26_6
func (self Unit) ToFixed() fixed.Int26_6 { return fixed.Int26_6(self) }

// Returns whether the Unit is a whole number.
func (self Unit) IsWhole() bool { return self & 0x3F == 0 }

func (self Unit) ToFloat64() float64 { return float64(self)/64.0 }

// Fastest conversion from Unit to int.
func (self Unit) ToIntFloor() int { return (int(self) +  0) >> 6 }

func (self Unit) ToIntCeil() int { return (int(self) + 63) >> 6 }

// Rounds to the closest int, going up in case of ties.
func (self Unit) ToIntHalfUp() int { return (int(self) + 32) >> 6 }

// Multiplies the unit by an integer factor. Used to scale whole
// pixel values for magnified bitmap fonts.
func (self Unit) Scale(factor int) Unit { return self*Unit(factor) }
