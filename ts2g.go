// Package ts2g implements the front end for a minimal typed expression
// language: source text is tokenized, parsed into a statement sequence,
// and evaluated against a typed variable environment, with print output
// streamed to the caller.
//
// A run is a pure, finite transformation over its input: no suspension, no
// background work, and no I/O beyond the print side channel. Each Run uses
// a fresh environment; nothing persists across calls.
package ts2g

import (
	"io"

	"github.com/ts2g-lang/ts2g/internal/diag"
	"github.com/ts2g-lang/ts2g/internal/eval"
	"github.com/ts2g-lang/ts2g/internal/parser"
)

// Error is the single structured failure surfaced by a run. The pipeline is
// fail-fast: lexing, parsing, and evaluation halt at the first error, and
// print output emitted before the failing statement is not rolled back.
type Error struct {
	Stage   string // "lexer", "parser", or "runtime"
	Code    string // stable diagnostic code
	Message string
	Line    int // 1-based, 0 when unknown
	Column  int // 1-based, 0 when unknown
}

func (e *Error) Error() string {
	return diag.Diagnostic{
		Stage:    diag.Stage(e.Stage),
		Severity: diag.SeverityError,
		Code:     diag.Code(e.Code),
		Message:  e.Message,
		Span:     diag.Span{Line: e.Line, Column: e.Column},
	}.String()
}

func fromDiagnostic(d diag.Diagnostic) *Error {
	return &Error{
		Stage:   string(d.Stage),
		Code:    string(d.Code),
		Message: d.Message,
		Line:    d.Span.Line,
		Column:  d.Span.Column,
	}
}

type Option func(*options)

type options struct {
	filename string
}

// WithFilename attributes diagnostics to the provided source filename.
func WithFilename(name string) Option {
	return func(o *options) {
		o.filename = name
	}
}

// Run interprets one source unit, writing one line per executed print
// statement to out, in program order. On failure it returns a *ts2g.Error
// identifying the stage, diagnostic code, and source position; any other
// returned error comes from writing to out.
func Run(src string, out io.Writer, opts ...Option) error {
	cfg := options{}
	for _, opt := range opts {
		opt(&cfg)
	}

	var popts []parser.Option
	if cfg.filename != "" {
		popts = append(popts, parser.WithFilename(cfg.filename))
	}

	p := parser.New(src, popts...)
	program := p.ParseProgram()

	// Lexer errors take precedence: an illegal rune is reported as the
	// character that failed to scan, not as the parse error it caused.
	if lexErrs := p.LexErrors(); len(lexErrs) > 0 {
		return fromDiagnostic(lexErrs[0].ToDiagnostic())
	}
	if parseErrs := p.Errors(); len(parseErrs) > 0 {
		return fromDiagnostic(parseErrs[0].ToDiagnostic())
	}

	ev := eval.New(out)
	if err := ev.Run(program); err != nil {
		if rerr, ok := err.(*eval.RuntimeError); ok {
			return fromDiagnostic(rerr.ToDiagnostic())
		}
		return err
	}

	return nil
}
