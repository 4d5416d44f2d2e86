package lexer

// TokenType represents the type of a token
type TokenType string

// Span represents the source location of a token
type Span struct {
	Filename string // optional source filename for diagnostics
	Line     int    // 1-based line number
	Column   int    // 1-based column number
	Start    int    // index in []rune of the original string
	End      int    // exclusive end index
}

// Token represents a lexical token. Tokens are immutable once produced.
type Token struct {
	Type    TokenType
	Literal string // exact runes the token was scanned from
	Span    Span   // source location information
}

// Token type constants
const (
	// Special tokens
	ILLEGAL TokenType = "ILLEGAL"
	EOF     TokenType = "EOF"

	// Identifiers and literals
	ID  TokenType = "ID"  // x, foo, counter, ...
	INT TokenType = "INT" // 42, -7, 3.14 (optional fused sign, optional fraction)

	// Constants
	PI TokenType = "PI"
	E  TokenType = "E"

	// Keywords
	LET   TokenType = "LET"
	PRINT TokenType = "PRINT"
	TYPE  TokenType = "TYPE" // u8, i8, u16, i16, u32, i32, u64, i64, f32, f64

	// Operators
	EQ  TokenType = "="
	EXP TokenType = "^"
	MUL TokenType = "*"
	DIV TokenType = "/"
	ADD TokenType = "+"
	SUB TokenType = "-"

	// Delimiters
	LPAR      TokenType = "("
	RPAR      TokenType = ")"
	COLON     TokenType = ":"
	SEMICOLON TokenType = ";"
	DOT       TokenType = "."
)

// keywords maps reserved words to their token types. Type names, constants
// and statement keywords all take priority over generic identifiers.
var keywords = map[string]TokenType{
	"let":   LET,
	"print": PRINT,
	"pi":    PI,
	"PI":    PI,
	"e":     E,
	"u8":    TYPE,
	"i8":    TYPE,
	"u16":   TYPE,
	"i16":   TYPE,
	"u32":   TYPE,
	"i32":   TYPE,
	"u64":   TYPE,
	"i64":   TYPE,
	"f32":   TYPE,
	"f64":   TYPE,
}

// LookupIdent checks if the identifier is a keyword
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return ID
}
