// Package parser builds jdom document trees from JSON text by recursive
// descent over the zero-copy tokenizer.
//
// One Node is produced per grammar rule with no backtracking; the single
// token of lookahead the tokenizer provides is sufficient for the whole
// grammar. Any lexical or structural violation aborts the parse immediately
// with a token.ParseError carrying the offending position; no partial tree
// is returned and no recovery is attempted.
//
// By default a parse is single-threaded and synchronous. WithPipeline moves
// tokenizing onto a producer goroutine feeding the parser through a bounded
// blocking queue; queue handoff costs more than tokenizing itself for typical
// documents, so it stays opt-in.
package parser

import (
	"fmt"
	"math"
	"strconv"

	"github.com/arloliu/jdom/internal/options"
	"github.com/arloliu/jdom/node"
	"github.com/arloliu/jdom/token"
)

// tokenSource is the peek/consume discipline the parser runs on, satisfied
// by both the synchronous tokenizer and the pipelined source.
type tokenSource interface {
	Peek() token.Token
	Consume() error
}

type parser struct {
	src   tokenSource
	arena *node.Arena
	// depth is the container nesting level; 0 means the next completed
	// value is the document root.
	depth int
	// trailing holds a lexical error found past the completed root, kept
	// for strict mode instead of failing the default parse.
	trailing error
}

// Parse parses data into a document tree and returns a Ref over its root.
//
// Nodes are allocated from the arena given via WithArena, or from a fresh
// arena owned by the returned tree otherwise. Trailing input after the
// top-level value is accepted silently unless WithStrictEnd is set.
func Parse(data []byte, opts ...Option) (node.Ref, error) {
	cfg := &Config{}
	if err := options.Apply(cfg, opts...); err != nil {
		return node.Ref{}, fmt.Errorf("invalid parser option: %w", err)
	}

	arena := cfg.arena
	if arena == nil {
		arena, _ = node.NewArena()
	}

	var src tokenSource
	if cfg.pipelined {
		ps, err := newPipelineSource(data, cfg.queueCap)
		if err != nil {
			return node.Ref{}, err
		}
		defer ps.stop()
		src = ps
	} else {
		tz, err := token.New(data)
		if err != nil {
			return node.Ref{}, err
		}
		src = tz
	}

	p := &parser{src: src, arena: arena}
	root, err := p.parseValue()
	if err != nil {
		return node.Ref{}, err
	}

	if cfg.strictEnd {
		if p.trailing != nil {
			return node.Ref{}, p.trailing
		}
		if tok := p.src.Peek(); tok.Type != token.End {
			return node.Ref{}, token.Errorf(tok.Line, tok.Col, "unexpected %s after top-level value", tok.Type)
		}
	}

	return node.NewRef(root), nil
}

// ParseString parses a JSON string; see Parse.
func ParseString(text string, opts ...Option) (node.Ref, error) {
	return Parse([]byte(text), opts...)
}

// consumeEnd consumes the token that completes a value. Advancing past it
// lexes whatever follows; at the top level the document is already complete,
// so a lexical error in the trailing input is recorded rather than
// propagated, and strict mode surfaces it after the parse.
func (p *parser) consumeEnd() error {
	err := p.src.Consume()
	if err != nil && p.depth == 0 {
		p.trailing = err
		return nil
	}

	return err
}

// parseValue dispatches on the peeked token type.
func (p *parser) parseValue() (node.Element, error) {
	tok := p.src.Peek()
	switch tok.Type {
	case token.ObjectBegin:
		return p.parseObject()
	case token.ArrayBegin:
		return p.parseArray()
	case token.Integer:
		n, err := parseInt32(tok)
		if err != nil {
			return nil, err
		}
		if err := p.consumeEnd(); err != nil {
			return nil, err
		}

		return p.arena.NewInt(n), nil
	case token.Float:
		f, err := strconv.ParseFloat(string(tok.Text), 32)
		if err != nil {
			return nil, token.Errorf(tok.Line, tok.Col, "invalid float %q", tok.Text)
		}
		if err := p.consumeEnd(); err != nil {
			return nil, err
		}

		return p.arena.NewFloat(float32(f)), nil
	case token.Bool:
		b := tok.Text[0] == 't'
		if err := p.consumeEnd(); err != nil {
			return nil, err
		}

		return p.arena.NewBool(b), nil
	case token.String:
		s, err := decodeString(tok)
		if err != nil {
			return nil, err
		}
		if err := p.consumeEnd(); err != nil {
			return nil, err
		}

		return p.arena.NewString(s), nil
	case token.Null:
		if err := p.consumeEnd(); err != nil {
			return nil, err
		}

		return p.arena.NewNull(), nil
	case token.End:
		return nil, token.Errorf(tok.Line, tok.Col, "unexpected end of input")
	default:
		return nil, token.Errorf(tok.Line, tok.Col, "unexpected %s", tok.Type)
	}
}

func (p *parser) parseObject() (node.Element, error) {
	// Consume '{'.
	if err := p.src.Consume(); err != nil {
		return nil, err
	}
	p.depth++
	obj := p.arena.NewObject()

	if p.src.Peek().Type == token.ObjectEnd {
		p.depth--
		if err := p.consumeEnd(); err != nil {
			return nil, err
		}

		return obj, nil
	}

	for {
		keyTok := p.src.Peek()
		if keyTok.Type != token.String {
			return nil, token.Errorf(keyTok.Line, keyTok.Col, "expected string key, got %s", keyTok.Type)
		}
		key, err := decodeString(keyTok)
		if err != nil {
			return nil, err
		}
		if err := p.src.Consume(); err != nil {
			return nil, err
		}

		colon := p.src.Peek()
		if colon.Type != token.Colon {
			return nil, token.Errorf(colon.Line, colon.Col, "expected ':' after key, got %s", colon.Type)
		}
		if err := p.src.Consume(); err != nil {
			return nil, err
		}

		val, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		obj.Insert(key, val)

		sep := p.src.Peek()
		switch sep.Type {
		case token.Comma:
			if err := p.src.Consume(); err != nil {
				return nil, err
			}
		case token.ObjectEnd:
			p.depth--
			if err := p.consumeEnd(); err != nil {
				return nil, err
			}

			return obj, nil
		default:
			return nil, token.Errorf(sep.Line, sep.Col, "expected ',' or '}', got %s", sep.Type)
		}
	}
}

func (p *parser) parseArray() (node.Element, error) {
	// Consume '['.
	if err := p.src.Consume(); err != nil {
		return nil, err
	}
	p.depth++
	arr := p.arena.NewArray()

	if p.src.Peek().Type == token.ArrayEnd {
		p.depth--
		if err := p.consumeEnd(); err != nil {
			return nil, err
		}

		return arr, nil
	}

	for {
		el, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		arr.Append(el)

		sep := p.src.Peek()
		switch sep.Type {
		case token.Comma:
			if err := p.src.Consume(); err != nil {
				return nil, err
			}
		case token.ArrayEnd:
			p.depth--
			if err := p.consumeEnd(); err != nil {
				return nil, err
			}

			return arr, nil
		default:
			return nil, token.Errorf(sep.Line, sep.Col, "expected ',' or ']', got %s", sep.Type)
		}
	}
}

// parseInt32 converts an Integer token without allocating. Deterministic and
// locale-independent; values outside int32 range are a parse error.
func parseInt32(tok token.Token) (int32, error) {
	text := tok.Text
	i := 0
	neg := false
	if text[0] == '-' {
		neg = true
		i = 1
	}

	var n int64
	for ; i < len(text); i++ {
		n = n*10 + int64(text[i]-'0')
		if n > math.MaxInt32+1 {
			return 0, token.Errorf(tok.Line, tok.Col, "integer %q overflows 32 bits", text)
		}
	}
	if neg {
		n = -n
	}
	if n < math.MinInt32 || n > math.MaxInt32 {
		return 0, token.Errorf(tok.Line, tok.Col, "integer %q overflows 32 bits", text)
	}

	return int32(n), nil
}
