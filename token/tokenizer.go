package token

import "bytes"

// Tokenizer turns raw JSON text into a stream of Tokens without copying
// literal text out of the input buffer.
//
// The lookahead discipline is a single token: Peek returns the current token
// without consuming it, Consume advances to the next one. After the End
// token is reached, further Consume calls keep yielding End.
//
// A Tokenizer is not safe for concurrent use.
type Tokenizer struct {
	data []byte
	pos  int
	line int
	col  int
	cur  Token
}

// New creates a tokenizer over data and primes the first token.
// Returns a ParseError if the input starts with an invalid token.
//
// The tokenizer aliases data for the lifetime of every token it produces;
// the caller must not modify the buffer while tokens are in use.
func New(data []byte) (*Tokenizer, error) {
	t := &Tokenizer{data: data, line: 1, col: 1}
	if err := t.Consume(); err != nil {
		return nil, err
	}

	return t, nil
}

// Peek returns the current token without consuming it.
func (t *Tokenizer) Peek() Token {
	return t.cur
}

// Consume advances to the next token. Returns a ParseError on a lexical
// violation; the current token is left unchanged in that case.
func (t *Tokenizer) Consume() error {
	tok, err := t.next()
	if err != nil {
		return err
	}
	t.cur = tok

	return nil
}

// advance moves past the current byte, tracking line and column.
func (t *Tokenizer) advance() {
	if t.data[t.pos] == '\n' {
		t.line++
		t.col = 1
	} else {
		t.col++
	}
	t.pos++
}

func (t *Tokenizer) eof() bool {
	return t.pos >= len(t.data)
}

func (t *Tokenizer) skipWhitespace() {
	for !t.eof() {
		switch t.data[t.pos] {
		case ' ', '\t', '\r', '\n':
			t.advance()
		default:
			return
		}
	}
}

func (t *Tokenizer) next() (Token, error) {
	t.skipWhitespace()
	if t.eof() {
		return Token{Type: End, Line: t.line, Col: t.col}, nil
	}

	line, col := t.line, t.col
	c := t.data[t.pos]
	switch c {
	case '{':
		return t.punct(ObjectBegin, line, col), nil
	case '}':
		return t.punct(ObjectEnd, line, col), nil
	case '[':
		return t.punct(ArrayBegin, line, col), nil
	case ']':
		return t.punct(ArrayEnd, line, col), nil
	case ':':
		return t.punct(Colon, line, col), nil
	case ',':
		return t.punct(Comma, line, col), nil
	case '"':
		return t.scanString(line, col)
	case 't':
		return t.scanLiteral("true", Bool, line, col)
	case 'f':
		return t.scanLiteral("false", Bool, line, col)
	case 'n':
		return t.scanLiteral("null", Null, line, col)
	default:
		if c == '-' || isDigit(c) {
			return t.scanNumber(line, col)
		}

		return Token{}, Errorf(line, col, "unexpected character %q", c)
	}
}

func (t *Tokenizer) punct(typ Type, line, col int) Token {
	text := t.data[t.pos : t.pos+1]
	t.advance()

	return Token{Type: typ, Text: text, Line: line, Col: col}
}

// scanString consumes a quoted string and returns its inner bytes verbatim.
// A backslash skips the following byte without interpreting it; decoding is
// deferred to the parser.
func (t *Tokenizer) scanString(line, col int) (Token, error) {
	t.advance() // opening quote
	start := t.pos

	for !t.eof() {
		switch t.data[t.pos] {
		case '"':
			text := t.data[start:t.pos]
			t.advance() // closing quote

			return Token{Type: String, Text: text, Line: line, Col: col}, nil
		case '\\':
			t.advance()
			if t.eof() {
				return Token{}, Errorf(line, col, "unterminated string")
			}
			t.advance()
		default:
			t.advance()
		}
	}

	return Token{}, Errorf(line, col, "unterminated string")
}

// scanLiteral matches an exact keyword (true, false, null).
func (t *Tokenizer) scanLiteral(lit string, typ Type, line, col int) (Token, error) {
	if !bytes.HasPrefix(t.data[t.pos:], []byte(lit)) {
		return Token{}, Errorf(line, col, "invalid literal, expected %q", lit)
	}

	text := t.data[t.pos : t.pos+len(lit)]
	for i := 0; i < len(lit); i++ {
		t.advance()
	}

	return Token{Type: typ, Text: text, Line: line, Col: col}, nil
}

// scanNumber consumes -?digits(.digits)? and classifies the token as Float
// when a decimal point is present, Integer otherwise. Exponent notation is
// rejected as a lexical error.
func (t *Tokenizer) scanNumber(line, col int) (Token, error) {
	start := t.pos
	if t.data[t.pos] == '-' {
		t.advance()
	}

	if t.eof() || !isDigit(t.data[t.pos]) {
		return Token{}, Errorf(t.line, t.col, "malformed number: expected digit")
	}
	for !t.eof() && isDigit(t.data[t.pos]) {
		t.advance()
	}

	typ := Integer
	if !t.eof() && t.data[t.pos] == '.' {
		typ = Float
		t.advance()
		if t.eof() || !isDigit(t.data[t.pos]) {
			return Token{}, Errorf(t.line, t.col, "malformed number: expected digit after '.'")
		}
		for !t.eof() && isDigit(t.data[t.pos]) {
			t.advance()
		}
	}

	if !t.eof() && (t.data[t.pos] == 'e' || t.data[t.pos] == 'E') {
		return Token{}, Errorf(t.line, t.col, "exponent notation is not supported")
	}

	return Token{Type: typ, Text: t.data[start:t.pos], Line: line, Col: col}, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
