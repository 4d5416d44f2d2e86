package lexer

import (
	"strconv"

	"github.com/ts2g-lang/ts2g/internal/diag"
)

type LexErrorKind int

const (
	ErrIllegalRune LexErrorKind = iota
)

// LexError is reported when no token rule matches the current input rune.
type LexError struct {
	Kind    LexErrorKind
	Message string
	Span    Span
}

func (k LexErrorKind) diagnosticCode() diag.Code {
	switch k {
	case ErrIllegalRune:
		return diag.CodeLexerIllegalRune
	default:
		return diag.Code("LEXER_UNKNOWN_ERROR")
	}
}

// ToDiagnostic converts a lexer error into a shared diagnostic structure.
func (e LexError) ToDiagnostic() diag.Diagnostic {
	return diag.Diagnostic{
		Stage:    diag.StageLexer,
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

// Lexer turns source text into a lazy token stream. A lexer is single-use:
// restart by constructing a new one over the same input.
type Lexer struct {
	input    []rune
	pos      int  // index of the current rune
	ch       rune // current rune (0 = EOF)
	line     int  // current line number (1-based)
	column   int  // current column number (1-based)
	filename string

	Errors []LexError
}

func (l *Lexer) addError(kind LexErrorKind, msg string, span Span) {
	l.Errors = append(l.Errors, LexError{
		Kind:    kind,
		Message: msg,
		Span:    span,
	})
}

// New creates a new lexer for the given input
func New(input string) *Lexer {
	l := &Lexer{
		input:  []rune(input),
		pos:    -1, // start before first rune
		ch:     0,
		line:   1,
		column: 0, // will be 1 after first read()
	}
	l.read() // move to first character
	return l
}

// SetFilename attributes all subsequently produced spans to the given file.
func (l *Lexer) SetFilename(name string) {
	l.filename = name
}

// read advances the lexer to the next character. Line/column always reflect
// the position of the character at pos.
func (l *Lexer) read() {
	l.pos++
	prevPos := l.pos - 1
	inputLen := len(l.input)

	if l.pos >= inputLen {
		// Moved past the last rune; normalize position to virtual EOF.
		if prevPos >= 0 && prevPos < inputLen {
			if l.input[prevPos] == '\n' {
				l.line++
				l.column = 1
			} else {
				l.column++
			}
		} else if prevPos < 0 {
			// Empty input: column should point to the first position
			l.column = 1
		}
		l.ch = 0 // EOF
		return
	}

	l.ch = l.input[l.pos]

	// If the previous character was a newline, we're now on a new line.
	if prevPos >= 0 && prevPos < inputLen && l.input[prevPos] == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
}

// peek returns the next character without advancing
func (l *Lexer) peek() rune {
	if l.pos+1 >= len(l.input) {
		return 0
	}
	return l.input[l.pos+1]
}

// currentSpanStart returns the current position for span tracking
func (l *Lexer) currentSpanStart() (line, column, pos int) {
	return l.line, l.column, l.pos
}

// makeToken creates a token with span information
func (l *Lexer) makeToken(tokType TokenType, startLine, startColumn, startPos, endPos int, literal string) Token {
	return Token{
		Type:    tokType,
		Literal: literal,
		Span: Span{
			Filename: l.filename,
			Line:     startLine,
			Column:   startColumn,
			Start:    startPos,
			End:      endPos,
		},
	}
}

// skipWhitespace discards runs of spaces and tabs (and line breaks, which
// only exist to keep line/column tracking meaningful). Whitespace is never
// emitted as a token.
func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.read()
	}
}

// readIdentifier reads an identifier or keyword. Identifiers are one or more
// ASCII letters; digits and underscores are not part of identifiers.
func (l *Lexer) readIdentifier() string {
	start := l.pos
	for isLetter(l.ch) {
		l.read()
	}
	return string(l.input[start:l.pos])
}

// readNumber reads a numeric literal: an optional leading minus (already
// consumed by the caller when fused), one or more digits, and an optional
// '.' followed by one or more digits. A '.' not followed by a digit is left
// for the next token.
func (l *Lexer) readNumber() string {
	start := l.pos

	if l.ch == '-' {
		l.read()
	}

	for isDigit(l.ch) {
		l.read()
	}

	if l.ch == '.' && isDigit(l.peek()) {
		l.read() // consume '.'
		for isDigit(l.ch) {
			l.read()
		}
	}

	return string(l.input[start:l.pos])
}

// NextToken returns the next token from the input
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	switch l.ch {
	case 0:
		startLine, startColumn, startPos := l.currentSpanStart()
		if startColumn == 0 {
			startColumn = 1
		}
		return l.makeToken(EOF, startLine, startColumn, startPos, startPos, "")

	case '=':
		return l.singleCharToken(EQ)

	case '^':
		return l.singleCharToken(EXP)

	case '*':
		return l.singleCharToken(MUL)

	case '/':
		return l.singleCharToken(DIV)

	case '+':
		return l.singleCharToken(ADD)

	case '-':
		// Maximal munch: a minus immediately followed by a digit fuses into
		// a signed numeric literal rather than a SUB operator.
		if isDigit(l.peek()) {
			startLine, startColumn, startPos := l.currentSpanStart()
			literal := l.readNumber()
			return l.makeToken(INT, startLine, startColumn, startPos, l.pos, literal)
		}
		return l.singleCharToken(SUB)

	case '(':
		return l.singleCharToken(LPAR)

	case ')':
		return l.singleCharToken(RPAR)

	case ':':
		return l.singleCharToken(COLON)

	case ';':
		return l.singleCharToken(SEMICOLON)

	case '.':
		return l.singleCharToken(DOT)

	default:
		if isLetter(l.ch) {
			startLine, startColumn, startPos := l.currentSpanStart()
			literal := l.readIdentifier()

			// Type keywords mix letters and digits (u8 .. f64), which a
			// plain letter run cannot capture. When the letter run plus
			// the digit run after it spells a type keyword, take the
			// digits too; otherwise they lex as a separate literal.
			if widened, ok := l.widenTypeKeyword(literal); ok {
				literal = widened
			}

			tokType := LookupIdent(literal)
			return l.makeToken(tokType, startLine, startColumn, startPos, l.pos, literal)
		} else if isDigit(l.ch) {
			startLine, startColumn, startPos := l.currentSpanStart()
			literal := l.readNumber()
			return l.makeToken(INT, startLine, startColumn, startPos, l.pos, literal)
		} else {
			startLine, startColumn, startPos := l.currentSpanStart()
			literal := string(l.ch)
			l.read()
			tok := l.makeToken(ILLEGAL, startLine, startColumn, startPos, l.pos, literal)
			l.addError(
				ErrIllegalRune,
				"illegal character "+strconv.Quote(literal),
				tok.Span,
			)
			return tok
		}
	}
}

// widenTypeKeyword extends a scanned letter run with the digit run that
// follows it when the combined text is one of the type keywords. It reports
// whether the extension happened; when it did not, the input is untouched
// and the digits remain for the next token.
func (l *Lexer) widenTypeKeyword(letters string) (string, bool) {
	if !isDigit(l.ch) {
		return letters, false
	}

	end := l.pos
	for end < len(l.input) && isDigit(l.input[end]) {
		end++
	}

	candidate := letters + string(l.input[l.pos:end])
	if LookupIdent(candidate) != TYPE {
		return letters, false
	}

	for l.pos < end {
		l.read()
	}
	return candidate, true
}

// singleCharToken emits a token for the current rune and advances past it.
func (l *Lexer) singleCharToken(tokType TokenType) Token {
	startLine, startColumn, startPos := l.currentSpanStart()
	literal := string(l.ch)
	l.read()
	return l.makeToken(tokType, startLine, startColumn, startPos, l.pos, literal)
}

// isLetter reports whether ch can appear in an identifier. Only ASCII
// letters qualify; the source grammar has no digits or underscores in names.
func isLetter(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}
