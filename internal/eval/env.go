package eval

import (
	"errors"

	"github.com/ts2g-lang/ts2g/internal/types"
)

// Sentinel errors for the environment contract. The evaluator wraps them
// into RuntimeError values carrying source spans.
var (
	errRedeclared = errors.New("already declared")
	errUnbound    = errors.New("not declared")
)

type binding struct {
	typ types.Numeric
	val types.Value
}

// Env maps identifier names to their declared numeric type and current
// value. A name's type is fixed by its let binding for the rest of the run;
// only the value is mutable, and every incoming value is narrowed to the
// declared type before being stored. Env is created empty for one evaluation
// run and never shared across runs.
type Env struct {
	vars  map[string]*binding
	order []string // insertion order, for deterministic iteration
}

// NewEnv creates an empty environment.
func NewEnv() *Env {
	return &Env{
		vars: make(map[string]*binding),
	}
}

// Declare binds a name to a type with the given initial value, narrowed to
// that type. It fails with errRedeclared if the name is already bound.
func (e *Env) Declare(name string, typ types.Numeric, val types.Value) (types.Value, error) {
	if _, ok := e.vars[name]; ok {
		return types.Value{}, errRedeclared
	}

	narrowed := types.Narrow(typ, val)
	e.vars[name] = &binding{typ: typ, val: narrowed}
	e.order = append(e.order, name)
	return narrowed, nil
}

// Assign stores a value into an existing binding, narrowed to the declared
// type, and returns the narrowed value. It fails with errUnbound if the name
// was never declared; assignment alone never creates a binding.
func (e *Env) Assign(name string, val types.Value) (types.Value, error) {
	b, ok := e.vars[name]
	if !ok {
		return types.Value{}, errUnbound
	}

	b.val = types.Narrow(b.typ, val)
	return b.val, nil
}

// Lookup returns a name's declared type and current value.
func (e *Env) Lookup(name string) (types.Numeric, types.Value, error) {
	b, ok := e.vars[name]
	if !ok {
		return 0, types.Value{}, errUnbound
	}
	return b.typ, b.val, nil
}

// Names returns all bound names in insertion order.
func (e *Env) Names() []string {
	out := make([]string, len(e.order))
	copy(out, e.order)
	return out
}

// Len returns the number of bindings.
func (e *Env) Len() int {
	return len(e.vars)
}
