package parser

import (
	"github.com/arloliu/jdom/conc"
	"github.com/arloliu/jdom/token"
)

// tokenResult carries either a token or the lexical error that ended the
// producer.
type tokenResult struct {
	tok token.Token
	err error
}

// pipelineSource adapts a producer goroutine running the tokenizer into the
// parser's peek/consume discipline. Tokens flow through a bounded blocking
// queue; the terminal End token (or an error) is the last item pushed before
// the producer closes the queue.
type pipelineSource struct {
	queue *conc.Queue[tokenResult]
	cur   tokenResult
}

func newPipelineSource(data []byte, queueCapacity int) (*pipelineSource, error) {
	q := conc.NewQueue[tokenResult](queueCapacity)
	go produceTokens(data, q)

	s := &pipelineSource{queue: q}
	first, ok := q.Pop()
	if !ok {
		s.cur = tokenResult{tok: token.Token{Type: token.End, Line: 1, Col: 1}}
		return s, nil
	}
	if first.err != nil {
		s.stop()
		return nil, first.err
	}
	s.cur = first

	return s, nil
}

func produceTokens(data []byte, q *conc.Queue[tokenResult]) {
	defer q.Close()

	tz, err := token.New(data)
	if err != nil {
		q.Push(tokenResult{err: err})
		return
	}

	for {
		tok := tz.Peek()
		if !q.Push(tokenResult{tok: tok}) {
			// Consumer abandoned the parse.
			return
		}
		if tok.Type == token.End {
			return
		}
		if err := tz.Consume(); err != nil {
			q.Push(tokenResult{err: err})
			return
		}
	}
}

func (s *pipelineSource) Peek() token.Token {
	return s.cur.tok
}

func (s *pipelineSource) Consume() error {
	if s.cur.tok.Type == token.End {
		return nil
	}

	next, ok := s.queue.Pop()
	if !ok {
		// Producer finished; hold position at End.
		s.cur = tokenResult{tok: token.Token{Type: token.End, Line: s.cur.tok.Line, Col: s.cur.tok.Col}}
		return nil
	}
	if next.err != nil {
		return next.err
	}
	s.cur = next

	return nil
}

// stop unblocks the producer after an early exit; pushes into a closed
// queue are rejected, so the goroutine drains out on its own.
func (s *pipelineSource) stop() {
	s.queue.Close()
}
