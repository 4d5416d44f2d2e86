package eval_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ts2g-lang/ts2g/internal/ast"
	"github.com/ts2g-lang/ts2g/internal/eval"
	"github.com/ts2g-lang/ts2g/internal/parser"
)

// run parses and evaluates src, returning the print output and the first
// runtime error. Parse errors fail the test; these cases use valid syntax.
func run(t *testing.T, src string) (string, error) {
	t.Helper()

	p := parser.New(src)
	program := p.ParseProgram()
	require.Empty(t, p.Errors(), "unexpected parse errors")

	buf := &bytes.Buffer{}
	ev := eval.New(buf)
	err := ev.Run(program)

	return buf.String(), err
}

func runProgram(t *testing.T, src string) *ast.Program {
	t.Helper()

	p := parser.New(src)
	program := p.ParseProgram()
	require.Empty(t, p.Errors())
	return program
}

func TestPrintLiteralRoundTrip(t *testing.T) {
	out, err := run(t, `print(42);`)
	assert.NoError(t, err)
	assert.Equal(t, "42\n", out)

	out, err = run(t, `print(3.14);`)
	assert.NoError(t, err)
	assert.Equal(t, "3.14\n", out)

	out, err = run(t, `print(-5);`)
	assert.NoError(t, err)
	assert.Equal(t, "-5\n", out)
}

func TestArithmeticPrecedence(t *testing.T) {
	out, err := run(t, `print(2 + 3 * 4);`)
	assert.NoError(t, err)
	assert.Equal(t, "14\n", out)

	out, err = run(t, `print((2 + 3) * 4);`)
	assert.NoError(t, err)
	assert.Equal(t, "20\n", out)
}

func TestExponentRightAssociative(t *testing.T) {
	out, err := run(t, `print(2 ^ 3 ^ 2);`)
	assert.NoError(t, err)
	assert.Equal(t, "512\n", out)
}

func TestLetNarrowsWithWrap(t *testing.T) {
	out, err := run(t, `let x: u8 = 250 + 10; print(x);`)
	assert.NoError(t, err)
	assert.Equal(t, "4\n", out)
}

func TestLetFixesTypeForLifetime(t *testing.T) {
	out, err := run(t, `let x: u8 = 1; x = 300; print(x);`)
	assert.NoError(t, err)
	assert.Equal(t, "44\n", out)
}

func TestSignedNarrowing(t *testing.T) {
	out, err := run(t, `let x: i8 = 130; print(x);`)
	assert.NoError(t, err)
	assert.Equal(t, "-126\n", out)
}

func TestPiAtFloat64Precision(t *testing.T) {
	out, err := run(t, `let p: f64 = pi; print(p);`)
	assert.NoError(t, err)
	assert.Equal(t, "3.141592653589793\n", out)
}

func TestPiAtFloat32Precision(t *testing.T) {
	out, err := run(t, `let p: f32 = pi; print(p);`)
	assert.NoError(t, err)
	assert.Equal(t, "3.1415927\n", out)
}

func TestEulerConstant(t *testing.T) {
	out, err := run(t, `print(e);`)
	assert.NoError(t, err)
	assert.Equal(t, "2.718281828459045\n", out)
}

func TestIntegerDivisionByZero(t *testing.T) {
	out, err := run(t, `print(1);
let x: i32 = 1 / 0;`)
	require.Error(t, err)

	rerr, ok := err.(*eval.RuntimeError)
	require.True(t, ok, "expected *eval.RuntimeError, got %T", err)
	assert.Equal(t, eval.ErrDivisionByZero, rerr.Kind)

	// Output emitted before the failing statement stays visible.
	assert.Equal(t, "1\n", out)
}

func TestFloatDivisionByZeroIsNotAnError(t *testing.T) {
	out, err := run(t, `print(1.0 / 0.0);`)
	assert.NoError(t, err)
	assert.Equal(t, "+Inf\n", out)
}

func TestUnboundIdentifierRead(t *testing.T) {
	_, err := run(t, `print(x);`)
	require.Error(t, err)

	rerr, ok := err.(*eval.RuntimeError)
	require.True(t, ok)
	assert.Equal(t, eval.ErrUnboundIdentifier, rerr.Kind)
}

func TestAssignBeforeDeclareFails(t *testing.T) {
	_, err := run(t, `x = 5;`)
	require.Error(t, err)

	rerr, ok := err.(*eval.RuntimeError)
	require.True(t, ok)
	assert.Equal(t, eval.ErrUnboundIdentifier, rerr.Kind)
}

func TestRedeclarationFails(t *testing.T) {
	_, err := run(t, `let x: u8 = 1; let x: u8 = 2;`)
	require.Error(t, err)

	rerr, ok := err.(*eval.RuntimeError)
	require.True(t, ok)
	assert.Equal(t, eval.ErrRedeclaration, rerr.Kind)
}

func TestChainedAssignment(t *testing.T) {
	out, err := run(t, `let a: i32 = 0; let b: i32 = 0; a = b = 5; print(a); print(b);`)
	assert.NoError(t, err)
	assert.Equal(t, "5\n5\n", out)
}

func TestChainedAssignmentPropagatesNarrowedValue(t *testing.T) {
	// b narrows 300 to u8 (44); a receives the narrowed value.
	out, err := run(t, `let a: i32 = 0; let b: u8 = 0; a = b = 300; print(a);`)
	assert.NoError(t, err)
	assert.Equal(t, "44\n", out)
}

func TestPrintOrderIsProgramOrder(t *testing.T) {
	out, err := run(t, `print(1); print(2); print(3);`)
	assert.NoError(t, err)
	assert.Equal(t, "1\n2\n3\n", out)
}

func TestUnsignedSixtyFourBitFormatting(t *testing.T) {
	out, err := run(t, `let x: u64 = 0 - 1; print(x);`)
	assert.NoError(t, err)
	assert.Equal(t, "18446744073709551615\n", out)
}

func TestSubtractionOfFusedLiteral(t *testing.T) {
	out, err := run(t, `let a: i32 = 10; print(a - -5);`)
	assert.NoError(t, err)
	assert.Equal(t, "15\n", out)
}

func TestRuntimeErrorSpans(t *testing.T) {
	program := runProgram(t, `print(ghost);`)

	ev := eval.New(&bytes.Buffer{})
	err := ev.Run(program)
	require.Error(t, err)

	rerr, ok := err.(*eval.RuntimeError)
	require.True(t, ok)
	assert.Equal(t, 1, rerr.Span.Line)
	assert.Equal(t, 7, rerr.Span.Column)

	d := rerr.ToDiagnostic()
	assert.Equal(t, "runtime", string(d.Stage))
	assert.Equal(t, "RUNTIME_UNBOUND_IDENTIFIER", string(d.Code))
}

func TestFreshEnvironmentPerEvaluator(t *testing.T) {
	program := runProgram(t, `let x: u8 = 1;`)

	first := eval.New(&bytes.Buffer{})
	require.NoError(t, first.Run(program))
	assert.Equal(t, 1, first.Env().Len())

	// A second evaluator starts empty; nothing persists across runs.
	second := eval.New(&bytes.Buffer{})
	assert.Equal(t, 0, second.Env().Len())
	require.NoError(t, second.Run(program))
}

func TestBareExpressionStatementHasNoOutput(t *testing.T) {
	out, err := run(t, `1 + 2;`)
	assert.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestTypedIdentifierArithmeticFeedsAssignment(t *testing.T) {
	out, err := run(t, `let x: u8 = 200; let y: u8 = x + 100; print(y);`)
	assert.NoError(t, err)
	assert.Equal(t, "44\n", out)
}
