// Package jdom provides a pooled, zero-copy JSON document model: a lexer
// that slices tokens out of the input without copying, a recursive-descent
// parser building an owned tree from arena-allocated nodes, and compact or
// indented serialization back to text.
//
// # Basic Usage
//
// Parsing and typed access:
//
//	import "github.com/arloliu/jdom"
//
//	root, err := jdom.Parse([]byte(`{"server":{"port":8080,"tls":true}}`))
//	if err != nil {
//	    return err
//	}
//	port, _ := root.Field("server").Field("port").Int()
//	tls, _ := root.Field("server").Field("tls").Bool()
//
// Programmatic construction through an arena:
//
//	arena, _ := node.NewArena()
//	obj := arena.NewObject()
//	obj.Insert("name", arena.NewString("jdom"))
//	obj.Insert("tags", arena.NewArray(arena.NewInt(1), arena.NewInt(2)))
//	text := node.Serialize(obj)
//
// Packing a document into a compressed blob:
//
//	blob, err := jdom.Pack(obj, compress.S2)
//	root, err = jdom.Unpack(blob)
//
// # Package Structure
//
// This package is a thin facade over the domain packages; use them directly
// for fine-grained control:
//
//   - node: document model, arenas, Ref access facade
//   - token: zero-copy tokenizer
//   - parser: recursive-descent parser and its options
//   - compress: blob codecs for Pack/Unpack
//   - conc: queue and ring buffer behind the optional pipelined parse
package jdom

import (
	"fmt"

	"github.com/arloliu/jdom/compress"
	"github.com/arloliu/jdom/node"
	"github.com/arloliu/jdom/parser"
)

// Parse parses JSON text into a document tree and returns a Ref over its
// root. See parser.Parse for available options.
func Parse(data []byte, opts ...parser.Option) (node.Ref, error) {
	return parser.Parse(data, opts...)
}

// ParseString parses a JSON string; see Parse.
func ParseString(text string, opts ...parser.Option) (node.Ref, error) {
	return parser.ParseString(text, opts...)
}

// Pack serializes el compactly and compresses it into a self-describing
// blob: a one-byte codec header followed by the compressed payload.
func Pack(el node.Element, codecType compress.Type) ([]byte, error) {
	if el == nil {
		return nil, fmt.Errorf("%w: cannot pack nil element", node.ErrNullRef)
	}

	codec, err := compress.GetCodec(codecType)
	if err != nil {
		return nil, err
	}

	payload, err := codec.Compress([]byte(node.Serialize(el)))
	if err != nil {
		return nil, fmt.Errorf("pack: %w", err)
	}

	blob := make([]byte, 0, len(payload)+1)
	blob = append(blob, byte(codecType))

	return append(blob, payload...), nil
}

// Unpack decompresses a blob produced by Pack and parses the document.
// Parser options apply to the parse of the decompressed text.
func Unpack(blob []byte, opts ...parser.Option) (node.Ref, error) {
	if len(blob) == 0 {
		return node.Ref{}, fmt.Errorf("unpack: empty blob")
	}

	codec, err := compress.GetCodec(compress.Type(blob[0]))
	if err != nil {
		return node.Ref{}, fmt.Errorf("unpack: %w", err)
	}

	payload, err := codec.Decompress(blob[1:])
	if err != nil {
		return node.Ref{}, fmt.Errorf("unpack: %w", err)
	}

	return parser.Parse(payload, opts...)
}
