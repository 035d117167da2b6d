package calc

import "fmt"

// TokenType identifies the lexical class of a Token. Types are negative
// pseudo-runes, in the same style as text/scanner, so they can never collide
// with literal character values.
type TokenType rune

const (
	// EOF is produced once the input is exhausted. It is not an error.
	EOF TokenType = -(iota + 1)
	LeftBracket
	RightBracket
	Separator
	Symbol
	SymbolWithArgs
	Operator
	StringLiteral
	DecimalNumber
	HexNumber
	OctalNumber
	BinaryNumber
	RadixNumber
)

var tokenTypeNames = map[TokenType]string{
	EOF:            "EOF",
	LeftBracket:    "LeftBracket",
	RightBracket:   "RightBracket",
	Separator:      "Separator",
	Symbol:         "Symbol",
	SymbolWithArgs: "SymbolWithArgs",
	Operator:       "Operator",
	StringLiteral:  "StringLiteral",
	DecimalNumber:  "DecimalNumber",
	HexNumber:      "HexNumber",
	OctalNumber:    "OctalNumber",
	BinaryNumber:   "BinaryNumber",
	RadixNumber:    "RadixNumber",
}

func (t TokenType) String() string {
	if name, ok := tokenTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TokenType(%d)", t)
}

// Position of a token within the input.
type Position struct {
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

func (p Position) GoString() string {
	return fmt.Sprintf("Position{Offset: %d, Line: %d, Column: %d}", p.Offset, p.Line, p.Column)
}

// A Token returned by a Lexer.
//
// Value is the lexeme with lexical syntax removed: string literals are
// escape-decoded and stripped of their delimiters, and numeric literals
// carry only the digit body (the "0x"/"0b" prefix is consumed but not
// kept). Numeric conversion itself is the consumer's job.
type Token struct {
	Type  TokenType
	Value string
	Pos   Position
}

// EOFToken creates a new EOF token at the given position.
func EOFToken(pos Position) Token {
	return Token{Type: EOF, Pos: pos}
}

// EOF returns true if this Token marks the end of input.
func (t Token) EOF() bool {
	return t.Type == EOF
}

func (t Token) String() string {
	if t.EOF() {
		return "<EOF>"
	}
	return t.Value
}

func (t Token) GoString() string {
	return fmt.Sprintf("Token@%s{%s, %q}", t.Pos, t.Type, t.Value)
}
