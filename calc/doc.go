// Package calc implements the lexical front end of the expression
// calculator.
//
// A Tokenizer holds the operator vocabulary and the fixed bracket, string
// delimiter and escape tables. It is built once and reused: each call to
// Lex returns a fresh Lexer over one input string, pulling one Token per
// Next call until an EOF token is produced.
//
// Disambiguation is maximal munch throughout. Operators are matched longest
// first, and a registered operator that is at least as long as a symbol
// match at the same position shadows the symbol, so reserved words like
// "mod" can be claimed by the vocabulary. Numeric literals are recognised in
// a fixed priority order: explicit-radix ("16#FF"), hex ("0x1A"), octal
// ("017"), binary ("0b101"), then decimal.
package calc
