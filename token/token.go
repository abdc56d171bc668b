// Package token implements a zero-copy lexer for JSON text.
//
// The tokenizer slices tokens directly out of the input buffer instead of
// copying characters: Token.Text aliases the input, so no allocation happens
// for literal text. It exposes a one-token lookahead (Peek returns the
// current token, Consume advances), which is all the JSON grammar needs.
//
// String tokens keep their raw bytes verbatim, including backslash escapes;
// decoding escape sequences is the parser's job. Numbers are classified as
// Integer or Float by the presence of a decimal point; exponent notation is
// not part of the supported grammar and is a lexical error.
package token

import "fmt"

// Type identifies a lexical token kind.
type Type uint8

const (
	ObjectBegin Type = iota + 1 // '{'
	ObjectEnd                   // '}'
	ArrayBegin                  // '['
	ArrayEnd                    // ']'
	Colon                       // ':'
	Comma                       // ','
	String                      // "text" (Text holds the bytes between the quotes)
	Integer                     // 123
	Float                       // 12.72
	Bool                        // true or false
	Null                        // null
	End                         // end of input
)

// String returns a human-readable name for the token type.
func (t Type) String() string {
	switch t {
	case ObjectBegin:
		return "'{'"
	case ObjectEnd:
		return "'}'"
	case ArrayBegin:
		return "'['"
	case ArrayEnd:
		return "']'"
	case Colon:
		return "':'"
	case Comma:
		return "','"
	case String:
		return "string"
	case Integer:
		return "integer"
	case Float:
		return "float"
	case Bool:
		return "bool"
	case Null:
		return "null"
	case End:
		return "end of input"
	default:
		return "unknown"
	}
}

// Token is a single lexical unit.
//
// Text is a zero-copy view into the original input buffer and stays valid as
// long as that buffer does; callers must not modify it. For String tokens it
// holds the bytes between the quotes with escape sequences left verbatim.
// Line and Col locate the token's first byte, both 1-based.
type Token struct {
	Type Type
	Text []byte
	Line int
	Col  int
}

// ParseError reports a lexical or structural violation with the position
// where it was detected.
type ParseError struct {
	Line int
	Col  int
	Msg  string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d, column %d: %s", e.Line, e.Col, e.Msg)
}

// Errorf builds a ParseError at the given position.
func Errorf(line, col int, format string, args ...any) *ParseError {
	return &ParseError{Line: line, Col: col, Msg: fmt.Sprintf(format, args...)}
}
