package calc

// PeekingLexer supports arbitrary lookahead over a token stream. It is the
// surface the expression parser consumes: the whole stream is read up front,
// so any lexical error surfaces at Upgrade time rather than mid-parse.
type PeekingLexer struct {
	cursor int
	eof    Token
	tokens []Token
}

// Upgrade a Lexer to a PeekingLexer with arbitrary lookahead.
func Upgrade(lex Lexer) (*PeekingLexer, error) {
	p := &PeekingLexer{}
	for {
		t, err := lex.Next()
		if err != nil {
			return nil, err
		}
		if t.EOF() {
			p.eof = t
			break
		}
		p.tokens = append(p.tokens, t)
	}
	return p, nil
}

// Cursor position in the token stream.
func (p *PeekingLexer) Cursor() int {
	return p.cursor
}

// Range returns the tokens between the two cursor points.
func (p *PeekingLexer) Range(start, end int) []Token {
	return p.tokens[start:end]
}

// Next consumes and returns the next token, or the EOF token once the stream
// is exhausted.
func (p *PeekingLexer) Next() Token {
	if p.cursor >= len(p.tokens) {
		return p.eof
	}
	t := p.tokens[p.cursor]
	p.cursor++
	return t
}

// Peek at the n+1th token without consuming anything. Peek(0) returns the
// token the next call to Next would produce.
func (p *PeekingLexer) Peek(n int) Token {
	if p.cursor+n >= len(p.tokens) {
		return p.eof
	}
	return p.tokens[p.cursor+n]
}

// Clone returns a copy of this lexer with its own cursor. The underlying
// tokens are shared.
func (p *PeekingLexer) Clone() *PeekingLexer {
	clone := *p
	return &clone
}
