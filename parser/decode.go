package parser

import (
	"unicode/utf16"
	"unicode/utf8"

	"github.com/arloliu/jdom/token"
)

// decodeString turns the raw bytes of a String token (escapes left verbatim
// by the zero-copy tokenizer) into the decoded Go string.
//
// Escape-free strings take the fast path: a single copy out of the input
// buffer. Strings containing a backslash are decoded eagerly here, so node
// payloads never carry escape sequences and the serializer can re-escape on
// output; an unknown escape or malformed \uXXXX is a parse error at the
// token's position.
func decodeString(tok token.Token) (string, error) {
	raw := tok.Text
	i := 0
	for i < len(raw) && raw[i] != '\\' {
		i++
	}
	if i == len(raw) {
		return string(raw), nil
	}

	out := make([]byte, 0, len(raw))
	out = append(out, raw[:i]...)
	for i < len(raw) {
		c := raw[i]
		if c != '\\' {
			out = append(out, c)
			i++

			continue
		}

		i++
		if i >= len(raw) {
			return "", token.Errorf(tok.Line, tok.Col, "truncated escape sequence")
		}

		switch raw[i] {
		case '"':
			out = append(out, '"')
		case '\\':
			out = append(out, '\\')
		case '/':
			out = append(out, '/')
		case 'b':
			out = append(out, '\b')
		case 'f':
			out = append(out, '\f')
		case 'n':
			out = append(out, '\n')
		case 'r':
			out = append(out, '\r')
		case 't':
			out = append(out, '\t')
		case 'u':
			r, next, err := decodeUnicodeEscape(raw, i-1, tok)
			if err != nil {
				return "", err
			}
			out = utf8.AppendRune(out, r)
			i = next

			continue
		default:
			return "", token.Errorf(tok.Line, tok.Col, "invalid escape character %q", raw[i])
		}
		i++
	}

	return string(out), nil
}

// decodeUnicodeEscape decodes \uXXXX starting at raw[start] (the backslash),
// combining UTF-16 surrogate pairs when present. It returns the rune and the
// index just past the consumed escape.
func decodeUnicodeEscape(raw []byte, start int, tok token.Token) (rune, int, error) {
	const escLen = 6 // \uXXXX

	hi, ok := hex4(raw, start+2)
	if !ok {
		return 0, 0, token.Errorf(tok.Line, tok.Col, "malformed \\u escape")
	}
	end := start + escLen

	if !utf16.IsSurrogate(rune(hi)) {
		return rune(hi), end, nil
	}

	// A high surrogate must be followed by an escaped low surrogate.
	if end+escLen <= len(raw) && raw[end] == '\\' && raw[end+1] == 'u' {
		if lo, ok := hex4(raw, end+2); ok {
			if r := utf16.DecodeRune(rune(hi), rune(lo)); r != utf8.RuneError {
				return r, end + escLen, nil
			}
		}
	}

	return utf8.RuneError, end, nil
}

// hex4 parses four hex digits at raw[i:i+4].
func hex4(raw []byte, i int) (uint16, bool) {
	if i+4 > len(raw) {
		return 0, false
	}

	var v uint16
	for _, c := range raw[i : i+4] {
		v <<= 4
		switch {
		case c >= '0' && c <= '9':
			v |= uint16(c - '0')
		case c >= 'a' && c <= 'f':
			v |= uint16(c-'a') + 10
		case c >= 'A' && c <= 'F':
			v |= uint16(c-'A') + 10
		default:
			return 0, false
		}
	}

	return v, true
}
