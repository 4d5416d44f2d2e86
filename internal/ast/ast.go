package ast

import "github.com/ts2g-lang/ts2g/internal/lexer"

// Node represents any AST node with an associated source span.
type Node interface {
	Span() lexer.Span
}

// Expr represents an expression node.
type Expr interface {
	Node
	exprNode()
}

// Stmt represents a statement node.
type Stmt interface {
	Node
	stmtNode()
}

// Program represents one parsed source unit: an ordered statement sequence.
// Each node owns its children exclusively; the tree has no shared edges.
type Program struct {
	Stmts []Stmt
	span  lexer.Span
}

// Span returns the span covering the entire program.
func (p *Program) Span() lexer.Span { return p.span }

// NewProgram constructs a program node with the provided span.
func NewProgram(span lexer.Span) *Program {
	return &Program{span: span}
}

// SetSpan updates the program span.
func (p *Program) SetSpan(span lexer.Span) {
	p.span = span
}

// LetStmt represents a typed let binding: let ID ':' TYPE '=' expr ';'.
type LetStmt struct {
	Name *Ident
	Type *TypeName
	Init Expr
	span lexer.Span
}

// Span returns the statement span.
func (s *LetStmt) Span() lexer.Span { return s.span }

// NewLetStmt constructs a let statement node.
func NewLetStmt(name *Ident, typ *TypeName, init Expr, span lexer.Span) *LetStmt {
	return &LetStmt{
		Name: name,
		Type: typ,
		Init: init,
		span: span,
	}
}

// stmtNode marks LetStmt as a statement.
func (*LetStmt) stmtNode() {}

// PrintStmt represents print '(' expr ')' ';'.
type PrintStmt struct {
	Expr Expr
	span lexer.Span
}

// Span returns the statement span.
func (s *PrintStmt) Span() lexer.Span { return s.span }

// NewPrintStmt constructs a print statement node.
func NewPrintStmt(expr Expr, span lexer.Span) *PrintStmt {
	return &PrintStmt{
		Expr: expr,
		span: span,
	}
}

// stmtNode marks PrintStmt as a statement.
func (*PrintStmt) stmtNode() {}

// ExprStmt represents a bare expression statement.
type ExprStmt struct {
	Expr Expr
	span lexer.Span
}

// Span returns the statement span.
func (s *ExprStmt) Span() lexer.Span { return s.span }

// NewExprStmt constructs an expression statement node.
func NewExprStmt(expr Expr, span lexer.Span) *ExprStmt {
	return &ExprStmt{
		Expr: expr,
		span: span,
	}
}

// stmtNode marks ExprStmt as a statement.
func (*ExprStmt) stmtNode() {}

// TypeName represents one of the ten fixed numeric type keywords.
type TypeName struct {
	Name string
	span lexer.Span
}

// Span returns the type annotation span.
func (t *TypeName) Span() lexer.Span { return t.span }

// NewTypeName constructs a type annotation node.
func NewTypeName(name string, span lexer.Span) *TypeName {
	return &TypeName{
		Name: name,
		span: span,
	}
}

// Ident represents an identifier.
type Ident struct {
	Name string
	span lexer.Span
}

// Span returns the identifier span.
func (i *Ident) Span() lexer.Span { return i.span }

// NewIdent constructs an identifier node.
func NewIdent(name string, span lexer.Span) *Ident {
	return &Ident{
		Name: name,
		span: span,
	}
}

// exprNode marks Ident as an expression.
func (*Ident) exprNode() {}

// NumberLit represents a numeric literal. Text preserves the exact scanned
// literal, fused sign and fraction included; the evaluator decides whether
// the value lives on the integer or float lane.
type NumberLit struct {
	Text string
	span lexer.Span
}

// Span returns the literal span.
func (l *NumberLit) Span() lexer.Span { return l.span }

// NewNumberLit constructs a numeric literal node.
func NewNumberLit(text string, span lexer.Span) *NumberLit {
	return &NumberLit{
		Text: text,
		span: span,
	}
}

// exprNode marks NumberLit as an expression.
func (*NumberLit) exprNode() {}

// PiLit represents the constant pi.
type PiLit struct {
	span lexer.Span
}

// Span returns the constant span.
func (l *PiLit) Span() lexer.Span { return l.span }

// NewPiLit constructs a pi constant node.
func NewPiLit(span lexer.Span) *PiLit {
	return &PiLit{span: span}
}

// exprNode marks PiLit as an expression.
func (*PiLit) exprNode() {}

// ELit represents the constant e.
type ELit struct {
	span lexer.Span
}

// Span returns the constant span.
func (l *ELit) Span() lexer.Span { return l.span }

// NewELit constructs an e constant node.
func NewELit(span lexer.Span) *ELit {
	return &ELit{span: span}
}

// exprNode marks ELit as an expression.
func (*ELit) exprNode() {}

// ParenExpr represents a parenthesized sub-expression.
type ParenExpr struct {
	Inner Expr
	span  lexer.Span
}

// Span returns the expression span.
func (e *ParenExpr) Span() lexer.Span { return e.span }

// NewParenExpr constructs a parenthesis node.
func NewParenExpr(inner Expr, span lexer.Span) *ParenExpr {
	return &ParenExpr{
		Inner: inner,
		span:  span,
	}
}

// exprNode marks ParenExpr as an expression.
func (*ParenExpr) exprNode() {}

// InfixExpr represents a binary arithmetic expression. Op is one of
// lexer.EXP, lexer.MUL, lexer.DIV, lexer.ADD, lexer.SUB.
type InfixExpr struct {
	Op    lexer.TokenType
	Left  Expr
	Right Expr
	span  lexer.Span
}

// Span returns the expression span.
func (e *InfixExpr) Span() lexer.Span { return e.span }

// NewInfixExpr constructs a binary expression node.
func NewInfixExpr(op lexer.TokenType, left, right Expr, span lexer.Span) *InfixExpr {
	return &InfixExpr{
		Op:    op,
		Left:  left,
		Right: right,
		span:  span,
	}
}

// exprNode marks InfixExpr as an expression.
func (*InfixExpr) exprNode() {}

// AssignExpr represents an identifier assignment: ID '=' expr. The target is
// always a plain identifier; assignment never declares a new binding.
type AssignExpr struct {
	Name  *Ident
	Value Expr
	span  lexer.Span
}

// Span returns the expression span.
func (e *AssignExpr) Span() lexer.Span { return e.span }

// NewAssignExpr constructs an assignment expression node.
func NewAssignExpr(name *Ident, value Expr, span lexer.Span) *AssignExpr {
	return &AssignExpr{
		Name:  name,
		Value: value,
		span:  span,
	}
}

// exprNode marks AssignExpr as an expression.
func (*AssignExpr) exprNode() {}
