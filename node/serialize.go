package node

import (
	"bytes"
	"strconv"

	"github.com/arloliu/jdom/internal/pool"
)

// Serialize renders el as minimal JSON text with no inserted whitespace.
// Object key order in the output is unspecified. A nil Element renders as
// the empty string.
func Serialize(el Element) string {
	if el == nil {
		return ""
	}

	bb := pool.GetSerializeBuffer()
	bb.B = el.appendCompact(bb.B)
	out := bb.String()
	pool.PutSerializeBuffer(bb)

	return out
}

// PrettySerialize renders el as indented JSON text. Each nesting level adds
// one additional run of the indent byte before its entries; scalar values
// render identically to the compact form. Empty containers render compactly
// as [] and {}.
func PrettySerialize(el Element, indent byte) string {
	if el == nil {
		return ""
	}

	bb := pool.GetSerializeBuffer()
	bb.B = el.appendPretty(bb.B, 0, indent)
	out := bb.String()
	pool.PutSerializeBuffer(bb)

	return out
}

// AppendSerialize appends the compact form of el to dst and returns the
// extended slice, for callers that manage their own buffers.
func AppendSerialize(dst []byte, el Element) []byte {
	if el == nil {
		return dst
	}

	return el.appendCompact(dst)
}

func appendIndent(dst []byte, depth int, indent byte) []byte {
	for i := 0; i < depth; i++ {
		dst = append(dst, indent)
	}

	return dst
}

const hexDigits = "0123456789abcdef"

// appendQuoted appends s as a quoted JSON string, escaping the characters
// JSON requires so the output is always valid JSON text.
func appendQuoted(dst []byte, s string) []byte {
	dst = append(dst, '"')
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x20 && c != '"' && c != '\\' {
			continue
		}

		dst = append(dst, s[start:i]...)
		switch c {
		case '"':
			dst = append(dst, '\\', '"')
		case '\\':
			dst = append(dst, '\\', '\\')
		case '\n':
			dst = append(dst, '\\', 'n')
		case '\r':
			dst = append(dst, '\\', 'r')
		case '\t':
			dst = append(dst, '\\', 't')
		case '\b':
			dst = append(dst, '\\', 'b')
		case '\f':
			dst = append(dst, '\\', 'f')
		default:
			dst = append(dst, '\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0xf])
		}
		start = i + 1
	}
	dst = append(dst, s[start:]...)

	return append(dst, '"')
}

// appendFloat renders a float without exponent notation, always with a
// fractional part, so the output re-parses as a Float token rather than an
// Integer.
func appendFloat(dst []byte, f float32) []byte {
	mark := len(dst)
	dst = strconv.AppendFloat(dst, float64(f), 'f', -1, 32)
	if bytes.IndexByte(dst[mark:], '.') < 0 {
		dst = append(dst, '.', '0')
	}

	return dst
}
