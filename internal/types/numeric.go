package types

// Numeric identifies one of the ten fixed-width numeric types. The set is
// closed: it is never extended at runtime, so every switch over Numeric can
// be exhaustive.
type Numeric int

const (
	U8 Numeric = iota
	I8
	U16
	I16
	U32
	I32
	U64
	I64
	F32
	F64
)

var numericNames = [...]string{
	U8:  "u8",
	I8:  "i8",
	U16: "u16",
	I16: "i16",
	U32: "u32",
	I32: "i32",
	U64: "u64",
	I64: "i64",
	F32: "f32",
	F64: "f64",
}

// String returns the source-level keyword for the type.
func (n Numeric) String() string {
	if n < 0 || int(n) >= len(numericNames) {
		return "numeric(?)"
	}
	return numericNames[n]
}

// Bits returns the width of the type in bits.
func (n Numeric) Bits() int {
	switch n {
	case U8, I8:
		return 8
	case U16, I16:
		return 16
	case U32, I32, F32:
		return 32
	default:
		return 64
	}
}

// Signed reports whether the type is a signed integer or a float.
func (n Numeric) Signed() bool {
	switch n {
	case U8, U16, U32, U64:
		return false
	default:
		return true
	}
}

// IsFloat reports whether the type is a floating-point type.
func (n Numeric) IsFloat() bool {
	return n == F32 || n == F64
}

var numericByName = map[string]Numeric{
	"u8":  U8,
	"i8":  I8,
	"u16": U16,
	"i16": I16,
	"u32": U32,
	"i32": I32,
	"u64": U64,
	"i64": I64,
	"f32": F32,
	"f64": F64,
}

// Lookup resolves a type keyword to its Numeric variant.
func Lookup(name string) (Numeric, bool) {
	n, ok := numericByName[name]
	return n, ok
}
