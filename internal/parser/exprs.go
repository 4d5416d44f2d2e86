package parser

import (
	"github.com/ts2g-lang/ts2g/internal/ast"
	"github.com/ts2g-lang/ts2g/internal/lexer"
)

func (p *Parser) parseExpr() ast.Expr {
	return p.parseExprPrecedence(precedenceLowest)
}

func (p *Parser) parseExprPrecedence(precedence int) ast.Expr {
	prefix := p.prefixFns[p.curTok.Type]
	if prefix == nil {
		p.reportUnexpectedExprToken(p.curTok)
		return nil
	}

	left := prefix()
	if left == nil {
		return nil
	}

	for p.peekTok.Type != lexer.SEMICOLON && precedence < p.peekPrecedence() {
		infix := p.infixFns[p.peekTok.Type]
		if infix == nil {
			break
		}

		p.nextToken()

		left = infix(left)
		if left == nil {
			return nil
		}
	}

	return left
}

func (p *Parser) reportUnexpectedExprToken(tok lexer.Token) {
	msg := "expected expression, found "
	if tok.Type == lexer.EOF {
		msg += "end of input"
	} else {
		msg += "'" + tok.Literal + "'"
	}
	p.reportError(msg, tok.Span)
}

func (p *Parser) parseNumberLit() ast.Expr {
	return ast.NewNumberLit(p.curTok.Literal, p.spanWithFilename(p.curTok.Span))
}

func (p *Parser) parseIdentifier() ast.Expr {
	return ast.NewIdent(p.curTok.Literal, p.spanWithFilename(p.curTok.Span))
}

func (p *Parser) parsePiLit() ast.Expr {
	return ast.NewPiLit(p.spanWithFilename(p.curTok.Span))
}

func (p *Parser) parseELit() ast.Expr {
	return ast.NewELit(p.spanWithFilename(p.curTok.Span))
}

// parseGroupedExpr parses "(expr)" into an explicit parenthesis node whose
// span covers both delimiters. A missing ')' fails the expression.
func (p *Parser) parseGroupedExpr() ast.Expr {
	start := p.curTok.Span

	p.nextToken()

	inner := p.parseExpr()
	if inner == nil {
		return nil
	}

	if !p.expect(lexer.RPAR) {
		return nil
	}

	span := mergeSpan(start, inner.Span())
	span = mergeSpan(span, p.curTok.Span)

	return ast.NewParenExpr(inner, p.spanWithFilename(span))
}

// parseInfixExpr handles the left-associative bands: add/subtract and
// multiply/divide. Recursing at the operator's own precedence makes a
// subsequent operator of the same band bind the result on the left.
func (p *Parser) parseInfixExpr(left ast.Expr) ast.Expr {
	operatorTok := p.curTok
	precedence := p.curPrecedence()

	p.nextToken()

	right := p.parseExprPrecedence(precedence)
	if right == nil {
		return nil
	}

	span := mergeSpan(left.Span(), operatorTok.Span)
	span = mergeSpan(span, right.Span())

	return ast.NewInfixExpr(operatorTok.Type, left, right, p.spanWithFilename(span))
}

// parseExponentExpr handles '^', which is right-associative: the right-hand
// side is parsed one precedence step looser so another '^' binds to it first.
func (p *Parser) parseExponentExpr(left ast.Expr) ast.Expr {
	operatorTok := p.curTok
	precedence := p.curPrecedence()

	p.nextToken()

	right := p.parseExprPrecedence(precedence - 1)
	if right == nil {
		return nil
	}

	span := mergeSpan(left.Span(), operatorTok.Span)
	span = mergeSpan(span, right.Span())

	return ast.NewInfixExpr(operatorTok.Type, left, right, p.spanWithFilename(span))
}

// parseAssignExpr handles ID '=' expr. Only a plain identifier is a valid
// target; the right-hand side re-enters the expression grammar just below
// the assignment band, which makes chained assignment right-associative.
func (p *Parser) parseAssignExpr(target ast.Expr) ast.Expr {
	assignTok := p.curTok

	name, ok := target.(*ast.Ident)
	if !ok {
		p.reportError("invalid assignment target", target.Span())
		return nil
	}

	p.nextToken()

	right := p.parseExprPrecedence(precedenceAssign - 1)
	if right == nil {
		return nil
	}

	span := mergeSpan(target.Span(), assignTok.Span)
	span = mergeSpan(span, right.Span())

	return ast.NewAssignExpr(name, right, p.spanWithFilename(span))
}

func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peekTok.Type]; ok {
		return prec
	}

	return precedenceLowest
}

func (p *Parser) curPrecedence() int {
	if prec, ok := precedences[p.curTok.Type]; ok {
		return prec
	}

	return precedenceLowest
}
