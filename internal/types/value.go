package types

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ErrDivisionByZero is returned by Div when the divisor is the integer zero.
// Float division follows IEEE semantics and never returns it.
var ErrDivisionByZero = errors.New("division by zero")

// Value is a number held at full width: integers on a signed 64-bit lane,
// floats on a float64 lane. Literals and constants start out untyped here;
// narrowing to a declared Numeric happens only at let/assignment sites.
//
// Unsigned 64-bit quantities are carried as their two's-complement bits on
// the integer lane; Format re-interprets them when rendering a u64 binding.
type Value struct {
	i     int64
	f     float64
	float bool
}

// IntValue puts v on the integer lane.
func IntValue(v int64) Value {
	return Value{i: v}
}

// FloatValue puts v on the float lane.
func FloatValue(v float64) Value {
	return Value{f: v, float: true}
}

// Mathematical constants at the highest available floating precision.
var (
	Pi = FloatValue(math.Pi)
	E  = FloatValue(math.E)
)

// IsFloat reports whether the value lives on the float lane.
func (v Value) IsFloat() bool { return v.float }

// Int returns the integer lane. For float-lane values it truncates toward
// zero, matching the narrowing rule for float-to-integer conversion.
func (v Value) Int() int64 {
	if v.float {
		return int64(v.f)
	}
	return v.i
}

// Float returns the value as a float64, promoting the integer lane.
func (v Value) Float() float64 {
	if v.float {
		return v.f
	}
	return float64(v.i)
}

// String renders an untyped value: plain decimal for the integer lane,
// shortest round-trip decimal for the float lane.
func (v Value) String() string {
	if v.float {
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	}
	return strconv.FormatInt(v.i, 10)
}

// ParseNumber converts a scanned literal (optional fused sign, digits,
// optional fraction) into a value. Literals with a fraction go to the float
// lane; anything the integer lane cannot hold falls back to float.
func ParseNumber(text string) Value {
	if strings.ContainsRune(text, '.') {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return FloatValue(0)
		}
		return FloatValue(f)
	}

	i, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		f, ferr := strconv.ParseFloat(text, 64)
		if ferr != nil {
			return IntValue(0)
		}
		return FloatValue(f)
	}
	return IntValue(i)
}

// narrowInt wraps a wide integer to the declared bit width using
// two's-complement truncation, then sign- or zero-extends it back onto the
// wide lane so later arithmetic sees the stored value.
func narrowInt(n Numeric, wide int64) int64 {
	switch n {
	case U8:
		return int64(uint8(wide))
	case I8:
		return int64(int8(wide))
	case U16:
		return int64(uint16(wide))
	case I16:
		return int64(int16(wide))
	case U32:
		return int64(uint32(wide))
	case I32:
		return int64(int32(wide))
	case U64, I64:
		return wide
	default:
		return wide
	}
}

// Narrow converts a wide arithmetic result to the given declared type.
// Integer types wrap (two's-complement truncation to the declared width);
// float types round to the nearest representable value at the declared
// precision. Float-lane values narrowed to an integer type truncate toward
// zero before wrapping.
func Narrow(n Numeric, v Value) Value {
	if n.IsFloat() {
		f := v.Float()
		if n == F32 {
			f = float64(float32(f))
		}
		return FloatValue(f)
	}
	return IntValue(narrowInt(n, v.Int()))
}

// Format renders a value that has been narrowed to the given type. The u64
// case re-interprets the integer lane's bits as unsigned; f32 prints at
// 32-bit round-trip precision.
func Format(n Numeric, v Value) string {
	switch {
	case n == U64:
		return strconv.FormatUint(uint64(v.Int()), 10)
	case n == F32:
		return strconv.FormatFloat(v.Float(), 'g', -1, 32)
	case n.IsFloat():
		return strconv.FormatFloat(v.Float(), 'g', -1, 64)
	default:
		return strconv.FormatInt(v.Int(), 10)
	}
}

// binary runs op on the lane both operands agree on. A mixed pair promotes
// the integer operand to the float lane first.
func binary(l, r Value, intOp func(a, b int64) int64, floatOp func(a, b float64) float64) Value {
	if !l.float && !r.float {
		return IntValue(intOp(l.i, r.i))
	}
	return FloatValue(floatOp(l.Float(), r.Float()))
}

// Add returns l + r.
func Add(l, r Value) Value {
	return binary(l, r,
		func(a, b int64) int64 { return a + b },
		func(a, b float64) float64 { return a + b })
}

// Sub returns l - r.
func Sub(l, r Value) Value {
	return binary(l, r,
		func(a, b int64) int64 { return a - b },
		func(a, b float64) float64 { return a - b })
}

// Mul returns l * r.
func Mul(l, r Value) Value {
	return binary(l, r,
		func(a, b int64) int64 { return a * b },
		func(a, b float64) float64 { return a * b })
}

// Div returns l / r. With both operands on the integer lane a zero divisor
// is an error; on the float lane the result follows IEEE semantics and may
// be infinite or NaN.
func Div(l, r Value) (Value, error) {
	if !l.float && !r.float {
		if r.i == 0 {
			return Value{}, ErrDivisionByZero
		}
		return IntValue(l.i / r.i), nil
	}
	return FloatValue(l.Float() / r.Float()), nil
}

// Pow returns l ^ r, computed through float64 exponentiation. A pair of
// integer-lane operands lands back on the integer lane, truncated toward
// zero and saturated at the int64 bounds when the result is out of range.
func Pow(l, r Value) Value {
	res := math.Pow(l.Float(), r.Float())
	if !l.float && !r.float {
		return IntValue(saturateInt64(res))
	}
	return FloatValue(res)
}

// saturateInt64 converts a float to int64, clamping out-of-range values to
// the nearest bound. float64(math.MaxInt64) is exactly 2^63, so >= catches
// every value the direct conversion could not represent.
func saturateInt64(f float64) int64 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt64:
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	}
	return int64(f)
}
