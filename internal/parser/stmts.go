package parser

import (
	"github.com/ts2g-lang/ts2g/internal/ast"
	"github.com/ts2g-lang/ts2g/internal/lexer"
)

// parseStmt dispatches on one token of lookahead: let, print, or a bare
// expression statement.
func (p *Parser) parseStmt() ast.Stmt {
	switch p.curTok.Type {
	case lexer.LET:
		return p.parseLetStmt()
	case lexer.PRINT:
		return p.parsePrintStmt()
	default:
		return p.parseExprStmt()
	}
}

// parseLetStmt parses: let ID ':' TYPE '=' expr ';'
// The type annotation is mandatory; a missing or malformed type keyword
// fails the statement.
func (p *Parser) parseLetStmt() ast.Stmt {
	start := p.curTok.Span

	if !p.expect(lexer.ID) {
		return nil
	}

	nameTok := p.curTok
	name := ast.NewIdent(nameTok.Literal, p.spanWithFilename(nameTok.Span))

	if !p.expect(lexer.COLON) {
		return nil
	}

	if p.peekTok.Type != lexer.TYPE {
		p.reportExpected("type annotation in let binding '"+nameTok.Literal+"'", p.peekTok)
		return nil
	}
	p.nextToken()

	typ := ast.NewTypeName(p.curTok.Literal, p.spanWithFilename(p.curTok.Span))

	if !p.expect(lexer.EQ) {
		return nil
	}

	p.nextToken()

	init := p.parseExpr()
	if init == nil {
		return nil
	}

	if !p.expect(lexer.SEMICOLON) {
		return nil
	}

	stmtSpan := mergeSpan(start, init.Span())
	stmtSpan = mergeSpan(stmtSpan, p.curTok.Span)
	stmt := ast.NewLetStmt(name, typ, init, p.spanWithFilename(stmtSpan))

	p.nextToken()

	return stmt
}

// parsePrintStmt parses: print '(' expr ')' ';'
func (p *Parser) parsePrintStmt() ast.Stmt {
	start := p.curTok.Span

	if !p.expect(lexer.LPAR) {
		return nil
	}

	p.nextToken()

	expr := p.parseExpr()
	if expr == nil {
		return nil
	}

	if !p.expect(lexer.RPAR) {
		return nil
	}

	if !p.expect(lexer.SEMICOLON) {
		return nil
	}

	stmtSpan := mergeSpan(start, p.curTok.Span)
	stmt := ast.NewPrintStmt(expr, p.spanWithFilename(stmtSpan))

	p.nextToken()

	return stmt
}

// parseExprStmt parses a bare expression terminated by ';'.
func (p *Parser) parseExprStmt() ast.Stmt {
	start := p.curTok.Span

	expr := p.parseExpr()
	if expr == nil {
		return nil
	}

	if !p.expect(lexer.SEMICOLON) {
		return nil
	}

	stmtSpan := mergeSpan(start, p.curTok.Span)
	stmt := ast.NewExprStmt(expr, p.spanWithFilename(stmtSpan))

	p.nextToken()

	return stmt
}
