package parser

import (
	"github.com/ts2g-lang/ts2g/internal/ast"
	"github.com/ts2g-lang/ts2g/internal/diag"
	"github.com/ts2g-lang/ts2g/internal/lexer"
)

type (
	prefixParseFn func() ast.Expr
	infixParseFn  func(ast.Expr) ast.Expr
)

type Option func(*options)

type options struct {
	filename string
}

// WithFilename configures the parser to attribute all emitted spans to the provided filename.
func WithFilename(name string) Option {
	return func(o *options) {
		o.filename = name
	}
}

// Precedence bands, loosest to tightest binding. Assignment sits below the
// arithmetic bands; its right-hand side re-enters from the top, so chained
// assignment and "a = 1 + 2" both parse. Exponentiation binds tightest of
// the infix operators and associates to the right.
const (
	precedenceLowest = iota
	precedenceAssign
	precedenceSum
	precedenceProduct
	precedencePower
)

var precedences = map[lexer.TokenType]int{
	lexer.EQ:  precedenceAssign,
	lexer.ADD: precedenceSum,
	lexer.SUB: precedenceSum,
	lexer.MUL: precedenceProduct,
	lexer.DIV: precedenceProduct,
	lexer.EXP: precedencePower,
}

// ParseError names the expected construct and the token actually found.
type ParseError struct {
	Message  string
	Span     lexer.Span
	Severity diag.Severity
}

// ToDiagnostic converts a parse error into a shared diagnostic structure.
func (e ParseError) ToDiagnostic() diag.Diagnostic {
	return diag.Diagnostic{
		Stage:    diag.StageParser,
		Severity: e.Severity,
		Code:     diag.CodeParseUnexpectedToken,
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

// Parser implements a Pratt-style recursive descent parser for the
// expression language. curTok always reflects the token currently under
// examination; peekTok mirrors the next token pulled from the lexer. The
// pair forms the parser's sole lookahead window and is only mutated via
// nextToken. There is no error recovery: parsing aborts at the first
// recorded error, and no statement after the failing one is produced.
type Parser struct {
	lx      *lexer.Lexer
	curTok  lexer.Token
	peekTok lexer.Token

	errors []ParseError

	filename string

	prefixFns map[lexer.TokenType]prefixParseFn
	infixFns  map[lexer.TokenType]infixParseFn
}

// New returns a parser initialised with the provided source input.
func New(input string, opts ...Option) *Parser {
	cfg := options{}
	for _, opt := range opts {
		opt(&cfg)
	}

	p := &Parser{
		lx:        lexer.New(input),
		prefixFns: make(map[lexer.TokenType]prefixParseFn),
		infixFns:  make(map[lexer.TokenType]infixParseFn),
		filename:  cfg.filename,
	}

	if cfg.filename != "" {
		p.lx.SetFilename(cfg.filename)
	}

	p.registerPrefix(lexer.INT, p.parseNumberLit)
	p.registerPrefix(lexer.ID, p.parseIdentifier)
	p.registerPrefix(lexer.PI, p.parsePiLit)
	p.registerPrefix(lexer.E, p.parseELit)
	p.registerPrefix(lexer.LPAR, p.parseGroupedExpr)

	p.registerInfix(lexer.EQ, p.parseAssignExpr)
	p.registerInfix(lexer.ADD, p.parseInfixExpr)
	p.registerInfix(lexer.SUB, p.parseInfixExpr)
	p.registerInfix(lexer.MUL, p.parseInfixExpr)
	p.registerInfix(lexer.DIV, p.parseInfixExpr)
	p.registerInfix(lexer.EXP, p.parseExponentExpr)

	// Seed curTok/peekTok.
	p.nextToken()
	p.nextToken()

	return p
}

// Errors returns all parse errors that were encountered. Parsing stops at
// the first one, so the slice holds at most the failure that aborted the run.
func (p *Parser) Errors() []ParseError {
	return p.errors
}

// LexErrors returns the errors recorded by the underlying lexer.
func (p *Parser) LexErrors() []lexer.LexError {
	return p.lx.Errors
}

// ParseProgram parses the full source unit and returns its AST. On failure
// the partial program parsed so far is returned alongside a populated
// Errors() slice; callers must treat any error as terminal for the run.
func (p *Parser) ParseProgram() *ast.Program {
	program := ast.NewProgram(p.curTok.Span)

	for p.curTok.Type != lexer.EOF {
		stmt := p.parseStmt()
		if stmt == nil {
			break
		}

		program.Stmts = append(program.Stmts, stmt)
		program.SetSpan(mergeSpan(program.Span(), stmt.Span()))
	}

	program.SetSpan(mergeSpan(program.Span(), p.curTok.Span))

	return program
}

// nextToken advances the parser's token window.
// Contract: after calling nextToken, curTok == old(peekTok). The lexer is
// only queried from this hop to keep lookahead bookkeeping centralized.
func (p *Parser) nextToken() {
	p.curTok = p.peekTok
	p.peekTok = p.lx.NextToken()
}

// expect asserts that the peek token matches the provided type.
// The caller is responsible for inspecting curTok before invoking expect,
// because expect never rewinds; on success it promotes peekTok into curTok.
func (p *Parser) expect(tt lexer.TokenType) bool {
	if p.peekTok.Type == tt {
		p.nextToken()
		return true
	}

	p.reportExpected(string(tt), p.peekTok)
	return false
}

// reportExpected records a "expected X, found Y" error at the offending token.
func (p *Parser) reportExpected(what string, found lexer.Token) {
	msg := "expected '" + what + "', found "
	if found.Type == lexer.EOF {
		msg += "end of input"
	} else {
		msg += "'" + found.Literal + "'"
	}
	p.reportError(msg, found.Span)
}

func (p *Parser) reportError(msg string, span lexer.Span) {
	span = p.spanWithFilename(span)
	p.errors = append(p.errors, ParseError{
		Message:  msg,
		Span:     span,
		Severity: diag.SeverityError,
	})
}

func (p *Parser) spanWithFilename(span lexer.Span) lexer.Span {
	if span.Filename == "" && p.filename != "" {
		span.Filename = p.filename
	}
	return span
}

// mergeSpan assumes start.End <= end.End and returns a span covering both.
// The parser relies on lexer spans being half-open; callers should pass the
// earliest start span first to preserve monotonic growth for AST nodes.
func mergeSpan(start, end lexer.Span) lexer.Span {
	span := start

	if span.Filename == "" {
		span.Filename = end.Filename
	}

	if span.Line == 0 && end.Line != 0 {
		span.Line = end.Line
		span.Column = end.Column
		span.Start = end.Start
	}

	if end.End > span.End {
		span.End = end.End
	}

	return span
}

func (p *Parser) registerPrefix(tokenType lexer.TokenType, fn prefixParseFn) {
	p.prefixFns[tokenType] = fn
}

func (p *Parser) registerInfix(tokenType lexer.TokenType, fn infixParseFn) {
	p.infixFns[tokenType] = fn
}
