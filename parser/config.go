package parser

import (
	"fmt"

	"github.com/arloliu/jdom/internal/options"
	"github.com/arloliu/jdom/node"
)

// Config holds parser settings assembled from functional options.
type Config struct {
	arena     *node.Arena
	strictEnd bool
	pipelined bool
	queueCap  int
}

// Option configures a parse call.
type Option = options.Option[*Config]

// WithArena supplies the arena nodes are allocated from, letting one arena
// serve many parses whose documents share a lifetime. Without it each parse
// creates its own arena.
//
// Arenas are not goroutine-safe: concurrent parses must not share one.
func WithArena(a *node.Arena) Option {
	return func(c *Config) error {
		if a == nil {
			return fmt.Errorf("arena must not be nil")
		}
		c.arena = a

		return nil
	}
}

// WithStrictEnd makes the parser require that nothing but whitespace follows
// the top-level value. By default trailing garbage after a complete value is
// accepted silently.
func WithStrictEnd() Option {
	return options.NoError(func(c *Config) {
		c.strictEnd = true
	})
}

// WithPipeline runs the tokenizer on a separate goroutine, feeding the
// parser through a bounded blocking queue of the given capacity (0 means
// unbounded).
//
// This mode exists for experimentation: single-threaded parsing measured
// faster, so pipelining is OFF by default.
func WithPipeline(queueCapacity int) Option {
	return func(c *Config) error {
		if queueCapacity < 0 {
			return fmt.Errorf("queue capacity must not be negative, got %d", queueCapacity)
		}
		c.pipelined = true
		c.queueCap = queueCapacity

		return nil
	}
}
