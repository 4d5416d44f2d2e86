package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumericProperties(t *testing.T) {
	cases := []struct {
		n       Numeric
		name    string
		bits    int
		signed  bool
		isFloat bool
	}{
		{U8, "u8", 8, false, false},
		{I8, "i8", 8, true, false},
		{U16, "u16", 16, false, false},
		{I16, "i16", 16, true, false},
		{U32, "u32", 32, false, false},
		{I32, "i32", 32, true, false},
		{U64, "u64", 64, false, false},
		{I64, "i64", 64, true, false},
		{F32, "f32", 32, true, true},
		{F64, "f64", 64, true, true},
	}

	for _, c := range cases {
		assert.Equal(t, c.name, c.n.String())
		assert.Equal(t, c.bits, c.n.Bits())
		assert.Equal(t, c.signed, c.n.Signed())
		assert.Equal(t, c.isFloat, c.n.IsFloat())
	}
}

func TestLookup(t *testing.T) {
	n, ok := Lookup("u16")
	assert.True(t, ok)
	assert.Equal(t, U16, n)

	_, ok = Lookup("u128")
	assert.False(t, ok)

	_, ok = Lookup("")
	assert.False(t, ok)
}
