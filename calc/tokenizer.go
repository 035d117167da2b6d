package calc

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	decNumberPattern   = regexp.MustCompile(`^([0-9]+(?:\.[0-9]+)?)`)
	hexNumberPattern   = regexp.MustCompile(`^0x([0-9A-Fa-f]+(?:\.[0-9A-Fa-f]+)?)`)
	octNumberPattern   = regexp.MustCompile(`^0([0-7]+(?:\.[0-7]+)?)`)
	binNumberPattern   = regexp.MustCompile(`^0b([01]+(?:\.[01]+)?)`)
	radixNumberPattern = regexp.MustCompile(`^([0-9]+#[0-9A-Za-z'"]+(?:\.[0-9A-Za-z'"]+)?)`)
	symbolPattern      = regexp.MustCompile(`^([_A-Za-z$][_0-9A-Za-z$]*)`)
	symbolArgsPattern  = regexp.MustCompile(`^(@[0-9]*,?[0-9]*)`)
)

// Numeric literals are attempted in this order; the first match wins. The
// octal pattern requires at least one digit after the leading "0", so a lone
// "0" falls through to decimal.
var numberPatterns = []struct {
	typ TokenType
	re  *regexp.Regexp
}{
	{RadixNumber, radixNumberPattern},
	{HexNumber, hexNumberPattern},
	{OctalNumber, octNumberPattern},
	{BinaryNumber, binNumberPattern},
	{DecimalNumber, decNumberPattern},
}

var brackets = map[string]string{
	"(": ")",
	"{": "}",
	"[": "]",
}

var closingBrackets = map[string]bool{
	")": true,
	"}": true,
	"]": true,
}

var stringDelimiters = map[byte]bool{
	'\'': true,
	'"':  true,
}

var hexEscapeWidths = map[byte]int{
	'x': 2,
	'u': 4,
	'U': 8,
}

var escapes = map[byte]rune{
	'\\': '\\',
	'\'': '\'',
	'"':  '"',
	'0':  0,
	'b':  '\b',
	't':  '\t',
	'n':  '\n',
	'f':  '\f',
	'r':  '\r',
}

// Tokenizer holds the operator vocabulary for an expression language. The
// zero vocabulary is valid; operators are added with AddOperator. A Tokenizer
// must not be mutated once lexing has started, but is safe for concurrent
// read-only use across any number of Lex calls.
type Tokenizer struct {
	operators []string
}

// New creates an empty Tokenizer.
func New() *Tokenizer {
	return &Tokenizer{}
}

// AddOperator registers a lexeme to be produced as an Operator token.
// Registration is idempotent. The vocabulary is kept ordered longest first,
// with ties broken lexicographically, which is exactly the order operator
// matching consults it in.
func (t *Tokenizer) AddOperator(op string) {
	for _, existing := range t.operators {
		if existing == op {
			return
		}
	}
	t.operators = append(t.operators, op)
	sort.Slice(t.operators, func(i, j int) bool {
		a, b := t.operators[i], t.operators[j]
		if len(a) != len(b) {
			return len(a) > len(b)
		}
		return a < b
	})
}

// Operators returns the registered vocabulary, longest first. The parser
// uses this to resolve precedence.
func (t *Tokenizer) Operators() []string {
	out := make([]string, len(t.operators))
	copy(out, t.operators)
	return out
}

// Brackets returns the opening-to-closing bracket bijection. The parser uses
// this to validate matching pairs.
func (t *Tokenizer) Brackets() map[string]string {
	out := make(map[string]string, len(brackets))
	for open, closing := range brackets {
		out[open] = closing
	}
	return out
}

// StringDelimiters returns the characters that introduce a string literal.
func (t *Tokenizer) StringDelimiters() []string {
	out := make([]string, 0, len(stringDelimiters))
	for d := range stringDelimiters {
		out = append(out, string(d))
	}
	sort.Strings(out)
	return out
}

// Symbols returns a map of symbolic names to token types, in the same style
// as text/scanner.
func (t *Tokenizer) Symbols() map[string]TokenType {
	out := make(map[string]TokenType, len(tokenTypeNames))
	for typ, name := range tokenTypeNames {
		out[name] = typ
	}
	return out
}

// A Lexer returns tokens from a single expression.
type Lexer interface {
	// Next consumes and returns the next token, or an EOF token once the
	// input is exhausted.
	Next() (Token, error)
}

// Lex returns a fresh Lexer over input. Each returned Lexer is independent;
// calling Lex again with the same input restarts from the beginning.
func (t *Tokenizer) Lex(input string) Lexer {
	return &exprLexer{
		tok:   t,
		input: input,
		pos:   Position{Line: 1, Column: 1},
	}
}

// Tokenize reads all tokens from input. The terminating EOF token is not
// included.
func (t *Tokenizer) Tokenize(input string) ([]Token, error) {
	lex := t.Lex(input)
	tokens := []Token{}
	for {
		token, err := lex.Next()
		if err != nil {
			return nil, err
		}
		if token.EOF() {
			return tokens, nil
		}
		tokens = append(tokens, token)
	}
}

// exprLexer is a cursor over the unconsumed suffix of one input string.
type exprLexer struct {
	tok   *Tokenizer
	input string
	pos   Position
	err   error
}

var _ Lexer = &exprLexer{}

func (l *exprLexer) Next() (Token, error) {
	if l.err != nil {
		return Token{}, l.err
	}
	l.skipWhitespace()
	if l.input == "" {
		return EOFToken(l.pos), nil
	}

	if stringDelimiters[l.input[0]] {
		return l.stringLiteral()
	}
	next := l.input[:1]
	if _, ok := brackets[next]; ok {
		return l.token(LeftBracket, next, 1), nil
	}
	if closingBrackets[next] {
		return l.token(RightBracket, next, 1), nil
	}
	if next == "," {
		return l.token(Separator, next, 1), nil
	}

	if symbol := symbolPattern.FindString(l.input); symbol != "" {
		// A registered operator at least as long as the symbol shadows it.
		if op := l.findOperator(); op != "" && len(op) >= len(symbol) {
			return l.token(Operator, op, len(op)), nil
		}
		token := l.token(Symbol, symbol, len(symbol))
		if args := symbolArgsPattern.FindString(l.input); args != "" {
			l.advance(len(args))
			token.Type = SymbolWithArgs
			token.Value = symbol + args
		}
		return token, nil
	}

	if op := l.findOperator(); op != "" {
		return l.token(Operator, op, len(op)), nil
	}

	for _, num := range numberPatterns {
		if m := num.re.FindStringSubmatch(l.input); m != nil {
			return l.token(num.typ, m[1], len(m[0])), nil
		}
	}

	return Token{}, l.fail(Errorf(ErrUnrecognizedToken, l.pos, l.input,
		"unrecognized token: %q", l.input))
}

// findOperator returns the longest registered operator that prefixes the
// remaining input, or "". The vocabulary is ordered, so the first hit wins.
func (l *exprLexer) findOperator() string {
	for _, op := range l.tok.operators {
		if strings.HasPrefix(l.input, op) {
			return op
		}
	}
	return ""
}

// stringLiteral consumes a delimited string, decoding escapes into the token
// value. The opening character is the terminator for this literal.
func (l *exprLexer) stringLiteral() (Token, error) {
	start := l.pos
	terminator := l.input[0]
	result := &strings.Builder{}

	pos := 1
	for {
		if pos >= len(l.input) {
			return Token{}, l.fail(Errorf(ErrUnterminatedString, start, l.input,
				"unterminated string: %q", result.String()))
		}
		ch := l.input[pos]
		pos++
		if ch == terminator {
			break
		}
		if ch != '\\' {
			result.WriteByte(ch)
			continue
		}
		if pos >= len(l.input) {
			return Token{}, l.fail(Errorf(ErrUnterminatedEscape, start, l.input,
				"unterminated escape sequence: %q", result.String()))
		}
		escaped := l.input[pos]
		pos++
		if width, ok := hexEscapeWidths[escaped]; ok {
			r, err := l.hexEscape(start, pos, width)
			if err != nil {
				return Token{}, err
			}
			result.WriteRune(r)
			pos += width
			continue
		}
		sub, ok := escapes[escaped]
		if !ok {
			return Token{}, l.fail(Errorf(ErrInvalidEscape, start, l.input,
				"invalid escape sequence: \\%c", escaped))
		}
		result.WriteRune(sub)
	}

	token := Token{Type: StringLiteral, Value: result.String(), Pos: start}
	l.advance(pos)
	return token, nil
}

// hexEscape decodes the fixed-width hex code point at l.input[pos:].
func (l *exprLexer) hexEscape(start Position, pos, digits int) (rune, error) {
	if pos+digits > len(l.input) {
		return 0, l.fail(Errorf(ErrInvalidHexEscape, start, l.input,
			"truncated hex escape: %q", l.input[pos:]))
	}
	code := l.input[pos : pos+digits]
	n, err := strconv.ParseUint(code, 16, 32)
	if err != nil {
		return 0, l.fail(Errorf(ErrInvalidHexEscape, start, l.input,
			"invalid hex escape: %q", code))
	}
	if n > utf8.MaxRune {
		return 0, l.fail(Errorf(ErrInvalidHexEscape, start, l.input,
			"code point %#x out of range", n))
	}
	return rune(n), nil
}

// token builds a token at the current position and consumes n bytes.
func (l *exprLexer) token(typ TokenType, value string, n int) Token {
	t := Token{Type: typ, Value: value, Pos: l.pos}
	l.advance(n)
	return t
}

func (l *exprLexer) skipWhitespace() {
	n := 0
	for n < len(l.input) {
		r, size := utf8.DecodeRuneInString(l.input[n:])
		if !unicode.IsSpace(r) {
			break
		}
		n += size
	}
	if n > 0 {
		l.advance(n)
	}
}

// advance consumes n bytes of input, tracking line and column.
func (l *exprLexer) advance(n int) {
	for _, r := range l.input[:n] {
		if r == '\n' {
			l.pos.Line++
			l.pos.Column = 1
		} else {
			l.pos.Column++
		}
	}
	l.pos.Offset += n
	l.input = l.input[n:]
}

func (l *exprLexer) fail(err *Error) error {
	l.err = err
	return err
}
