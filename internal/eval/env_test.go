package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ts2g-lang/ts2g/internal/types"
)

func TestEnvDeclareAndLookup(t *testing.T) {
	env := NewEnv()

	stored, err := env.Declare("x", types.U8, types.IntValue(260))
	assert.NoError(t, err)
	assert.Equal(t, int64(4), stored.Int()) // narrowed on declare

	typ, val, err := env.Lookup("x")
	assert.NoError(t, err)
	assert.Equal(t, types.U8, typ)
	assert.Equal(t, int64(4), val.Int())
}

func TestEnvRedeclarationFails(t *testing.T) {
	env := NewEnv()

	_, err := env.Declare("x", types.U8, types.IntValue(1))
	assert.NoError(t, err)

	_, err = env.Declare("x", types.I32, types.IntValue(2))
	assert.Error(t, err)

	// The original binding is untouched.
	typ, val, err := env.Lookup("x")
	assert.NoError(t, err)
	assert.Equal(t, types.U8, typ)
	assert.Equal(t, int64(1), val.Int())
}

func TestEnvAssignNarrowsToDeclaredType(t *testing.T) {
	env := NewEnv()

	_, err := env.Declare("x", types.U8, types.IntValue(0))
	assert.NoError(t, err)

	stored, err := env.Assign("x", types.IntValue(300))
	assert.NoError(t, err)
	assert.Equal(t, int64(44), stored.Int()) // 300 mod 256

	// The declared type never changes, even when a float comes in.
	stored, err = env.Assign("x", types.FloatValue(2.9))
	assert.NoError(t, err)
	assert.Equal(t, int64(2), stored.Int())
}

func TestEnvAssignUnboundFails(t *testing.T) {
	env := NewEnv()

	_, err := env.Assign("ghost", types.IntValue(1))
	assert.Error(t, err)

	_, _, err = env.Lookup("ghost")
	assert.Error(t, err)
}

func TestEnvNamesInsertionOrder(t *testing.T) {
	env := NewEnv()

	for _, name := range []string{"c", "a", "b"} {
		_, err := env.Declare(name, types.I64, types.IntValue(0))
		assert.NoError(t, err)
	}

	assert.Equal(t, []string{"c", "a", "b"}, env.Names())
	assert.Equal(t, 3, env.Len())
}
