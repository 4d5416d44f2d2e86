package types

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNumber(t *testing.T) {
	v := ParseNumber("42")
	assert.False(t, v.IsFloat())
	assert.Equal(t, int64(42), v.Int())

	v = ParseNumber("-7")
	assert.False(t, v.IsFloat())
	assert.Equal(t, int64(-7), v.Int())

	v = ParseNumber("3.14")
	assert.True(t, v.IsFloat())
	assert.Equal(t, 3.14, v.Float())

	v = ParseNumber("-2.5")
	assert.True(t, v.IsFloat())
	assert.Equal(t, -2.5, v.Float())

	// Too wide for the integer lane: falls back to float.
	v = ParseNumber("99999999999999999999")
	assert.True(t, v.IsFloat())
}

func TestNarrowWrapsIntegers(t *testing.T) {
	// 260 mod 256 = 4 under the wrap policy.
	assert.Equal(t, int64(4), Narrow(U8, IntValue(260)).Int())

	// Signed wrap: 130 as i8 is -126.
	assert.Equal(t, int64(-126), Narrow(I8, IntValue(130)).Int())

	// Negative value stored into an unsigned type wraps to the high end.
	assert.Equal(t, int64(255), Narrow(U8, IntValue(-1)).Int())

	assert.Equal(t, int64(65535), Narrow(U16, IntValue(-1)).Int())
	assert.Equal(t, int64(-32768), Narrow(I16, IntValue(32768)).Int())
	assert.Equal(t, int64(0), Narrow(U32, IntValue(1<<32)).Int())
	assert.Equal(t, int64(1), Narrow(I64, IntValue(1)).Int())
}

func TestNarrowFloatToIntegerTruncates(t *testing.T) {
	assert.Equal(t, int64(3), Narrow(I32, FloatValue(3.9)).Int())
	assert.Equal(t, int64(-3), Narrow(I32, FloatValue(-3.9)).Int())
}

func TestNarrowFloatPrecision(t *testing.T) {
	v := Narrow(F32, FloatValue(math.Pi))
	assert.Equal(t, float64(float32(math.Pi)), v.Float())

	v = Narrow(F64, FloatValue(math.Pi))
	assert.Equal(t, math.Pi, v.Float())
}

func TestArithmeticLanes(t *testing.T) {
	// int op int stays on the integer lane.
	v := Add(IntValue(2), IntValue(3))
	assert.False(t, v.IsFloat())
	assert.Equal(t, int64(5), v.Int())

	// Mixed operands promote to the float lane.
	v = Mul(IntValue(2), FloatValue(1.5))
	assert.True(t, v.IsFloat())
	assert.Equal(t, 3.0, v.Float())

	v = Sub(FloatValue(1.5), FloatValue(0.5))
	assert.True(t, v.IsFloat())
	assert.Equal(t, 1.0, v.Float())
}

func TestDiv(t *testing.T) {
	v, err := Div(IntValue(7), IntValue(2))
	assert.NoError(t, err)
	assert.Equal(t, int64(3), v.Int())

	_, err = Div(IntValue(1), IntValue(0))
	assert.Equal(t, ErrDivisionByZero, err)

	// Float division by zero follows IEEE semantics.
	v, err = Div(FloatValue(1.0), FloatValue(0.0))
	assert.NoError(t, err)
	assert.True(t, math.IsInf(v.Float(), 1))

	v, err = Div(FloatValue(0.0), FloatValue(0.0))
	assert.NoError(t, err)
	assert.True(t, math.IsNaN(v.Float()))
}

func TestPow(t *testing.T) {
	v := Pow(IntValue(2), IntValue(9))
	assert.False(t, v.IsFloat())
	assert.Equal(t, int64(512), v.Int())

	v = Pow(FloatValue(2.0), IntValue(2))
	assert.True(t, v.IsFloat())
	assert.Equal(t, 4.0, v.Float())

	// Negative integer exponents truncate toward zero.
	v = Pow(IntValue(2), IntValue(-1))
	assert.Equal(t, int64(0), v.Int())
}

// Integer results beyond the int64 range saturate at the bounds instead of
// taking whatever an out-of-range float-to-int conversion would produce.
func TestPowSaturatesAtInt64Bounds(t *testing.T) {
	assert.Equal(t, int64(math.MaxInt64), Pow(IntValue(2), IntValue(63)).Int())
	assert.Equal(t, int64(math.MaxInt64), Pow(IntValue(2), IntValue(100)).Int())
	assert.Equal(t, int64(math.MinInt64), Pow(IntValue(-2), IntValue(63)).Int())
	assert.Equal(t, int64(math.MinInt64), Pow(IntValue(-2), IntValue(101)).Int())
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "4", Format(U8, Narrow(U8, IntValue(260))))
	assert.Equal(t, "18446744073709551615", Format(U64, Narrow(U64, IntValue(-1))))
	assert.Equal(t, "3.141592653589793", Format(F64, Narrow(F64, Pi)))
	assert.Equal(t, "3.1415927", Format(F32, Narrow(F32, Pi)))
	assert.Equal(t, "-126", Format(I8, Narrow(I8, IntValue(130))))
}

func TestUntypedString(t *testing.T) {
	assert.Equal(t, "10", IntValue(10).String())
	assert.Equal(t, "2.5", FloatValue(2.5).String())
	assert.Equal(t, "512", Pow(IntValue(2), Pow(IntValue(3), IntValue(2))).String())
}
