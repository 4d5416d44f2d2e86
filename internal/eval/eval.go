package eval

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/ts2g-lang/ts2g/internal/ast"
	"github.com/ts2g-lang/ts2g/internal/diag"
	"github.com/ts2g-lang/ts2g/internal/lexer"
	"github.com/ts2g-lang/ts2g/internal/types"
)

var (
	// package logger instance
	log = logrus.New()

	TAG = "eval"
)

// SetLogLevel changes the module log level.
func SetLogLevel(level string) error {
	ll, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}

	log.Level = ll
	return nil // OK
}

// package initialization
func init() {
	// be silent by default
	log.Level = logrus.WarnLevel
}

type RuntimeErrorKind int

const (
	ErrRedeclaration RuntimeErrorKind = iota
	ErrUnboundIdentifier
	ErrDivisionByZero
)

// RuntimeError is reported when a statement violates the environment or
// arithmetic contract. It is terminal for the run that produced it.
type RuntimeError struct {
	Kind    RuntimeErrorKind
	Message string
	Span    lexer.Span
}

func (e *RuntimeError) Error() string {
	return e.Message
}

func (k RuntimeErrorKind) diagnosticCode() diag.Code {
	switch k {
	case ErrRedeclaration:
		return diag.CodeRuntimeRedeclaration
	case ErrUnboundIdentifier:
		return diag.CodeRuntimeUnboundIdentifier
	case ErrDivisionByZero:
		return diag.CodeRuntimeDivisionByZero
	default:
		return diag.Code("RUNTIME_UNKNOWN_ERROR")
	}
}

// ToDiagnostic converts a runtime error into a shared diagnostic structure.
func (e *RuntimeError) ToDiagnostic() diag.Diagnostic {
	return diag.Diagnostic{
		Stage:    diag.StageRuntime,
		Severity: diag.SeverityError,
		Code:     e.Kind.diagnosticCode(),
		Message:  e.Message,
		Span: diag.Span{
			Filename: e.Span.Filename,
			Line:     e.Span.Line,
			Column:   e.Span.Column,
			Start:    e.Span.Start,
			End:      e.Span.End,
		},
	}
}

// result is a wide value plus the declared type it flows from, if any.
// Identifier reads and assignments are typed; literals, constants, and
// arithmetic results stay untyped until a typed context consumes them.
type result struct {
	val   types.Value
	typ   types.Numeric
	typed bool
}

// format renders the result for print output: typed values honor their
// declared width and signedness, untyped values print at full width.
func (r result) format() string {
	if r.typed {
		return types.Format(r.typ, r.val)
	}
	return r.val.String()
}

// Evaluator walks a parsed program, executing statements in order against
// one environment. It is single-use: evaluation owns its Env exclusively and
// a new run must construct a new Evaluator.
type Evaluator struct {
	env *Env
	out io.Writer
}

// New creates an evaluator with a fresh, empty environment. Print output is
// written to out, one line per print statement, in program order.
func New(out io.Writer) *Evaluator {
	return &Evaluator{
		env: NewEnv(),
		out: out,
	}
}

// Env exposes the evaluator's environment for inspection.
func (ev *Evaluator) Env() *Env {
	return ev.env
}

// Run executes the program. Execution is fail-fast: the first runtime error
// aborts the run, and statements after the failing one do not execute.
// Output already emitted by earlier print statements is not rolled back.
func (ev *Evaluator) Run(program *ast.Program) error {
	for _, stmt := range program.Stmts {
		if err := ev.evalStmt(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (ev *Evaluator) evalStmt(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.LetStmt:
		return ev.evalLetStmt(s)
	case *ast.PrintStmt:
		return ev.evalPrintStmt(s)
	case *ast.ExprStmt:
		_, err := ev.evalExpr(s.Expr)
		return err
	default:
		return fmt.Errorf("unsupported statement %T", stmt)
	}
}

func (ev *Evaluator) evalLetStmt(s *ast.LetStmt) error {
	typ, ok := types.Lookup(s.Type.Name)
	if !ok {
		// The lexer only emits TYPE tokens for the ten keywords, so this
		// is unreachable from parsed source.
		return fmt.Errorf("unknown type '%s'", s.Type.Name)
	}

	init, err := ev.evalExpr(s.Init)
	if err != nil {
		return err
	}

	stored, derr := ev.env.Declare(s.Name.Name, typ, init.val)
	if derr != nil {
		return &RuntimeError{
			Kind:    ErrRedeclaration,
			Message: fmt.Sprintf("identifier '%s' is already declared", s.Name.Name),
			Span:    s.Name.Span(),
		}
	}

	log.WithFields(logrus.Fields{
		"name":  s.Name.Name,
		"type":  typ.String(),
		"value": types.Format(typ, stored),
	}).Debugf("[%s]: let binding", TAG)

	return nil
}

func (ev *Evaluator) evalPrintStmt(s *ast.PrintStmt) error {
	res, err := ev.evalExpr(s.Expr)
	if err != nil {
		return err
	}

	line := res.format()
	log.WithField("value", line).Debugf("[%s]: print", TAG)

	if _, werr := fmt.Fprintln(ev.out, line); werr != nil {
		return werr
	}
	return nil
}

func (ev *Evaluator) evalExpr(expr ast.Expr) (result, error) {
	switch e := expr.(type) {
	case *ast.NumberLit:
		return result{val: types.ParseNumber(e.Text)}, nil

	case *ast.PiLit:
		return result{val: types.Pi}, nil

	case *ast.ELit:
		return result{val: types.E}, nil

	case *ast.Ident:
		typ, val, err := ev.env.Lookup(e.Name)
		if err != nil {
			return result{}, &RuntimeError{
				Kind:    ErrUnboundIdentifier,
				Message: fmt.Sprintf("identifier '%s' is not declared", e.Name),
				Span:    e.Span(),
			}
		}
		return result{val: val, typ: typ, typed: true}, nil

	case *ast.ParenExpr:
		return ev.evalExpr(e.Inner)

	case *ast.AssignExpr:
		return ev.evalAssignExpr(e)

	case *ast.InfixExpr:
		return ev.evalInfixExpr(e)

	default:
		return result{}, fmt.Errorf("unsupported expression %T", expr)
	}
}

// evalAssignExpr stores the right-hand side into an existing binding and
// evaluates to the narrowed value, which is what makes chained assignment
// propagate the stored value.
func (ev *Evaluator) evalAssignExpr(e *ast.AssignExpr) (result, error) {
	rhs, err := ev.evalExpr(e.Value)
	if err != nil {
		return result{}, err
	}

	stored, aerr := ev.env.Assign(e.Name.Name, rhs.val)
	if aerr != nil {
		return result{}, &RuntimeError{
			Kind:    ErrUnboundIdentifier,
			Message: fmt.Sprintf("identifier '%s' is not declared", e.Name.Name),
			Span:    e.Name.Span(),
		}
	}

	typ, _, _ := ev.env.Lookup(e.Name.Name)

	log.WithFields(logrus.Fields{
		"name":  e.Name.Name,
		"value": types.Format(typ, stored),
	}).Debugf("[%s]: assignment", TAG)

	return result{val: stored, typ: typ, typed: true}, nil
}

func (ev *Evaluator) evalInfixExpr(e *ast.InfixExpr) (result, error) {
	left, err := ev.evalExpr(e.Left)
	if err != nil {
		return result{}, err
	}

	right, err := ev.evalExpr(e.Right)
	if err != nil {
		return result{}, err
	}

	var val types.Value

	switch e.Op {
	case lexer.ADD:
		val = types.Add(left.val, right.val)
	case lexer.SUB:
		val = types.Sub(left.val, right.val)
	case lexer.MUL:
		val = types.Mul(left.val, right.val)
	case lexer.DIV:
		var derr error
		val, derr = types.Div(left.val, right.val)
		if derr != nil {
			return result{}, &RuntimeError{
				Kind:    ErrDivisionByZero,
				Message: "division by zero",
				Span:    e.Span(),
			}
		}
	case lexer.EXP:
		val = types.Pow(left.val, right.val)
	default:
		return result{}, fmt.Errorf("unsupported operator '%s'", e.Op)
	}

	// Arithmetic results stay untyped; narrowing happens at the let or
	// assignment that consumes them.
	return result{val: val}, nil
}
