package parser

import (
	"github.com/zjrosen/csskit/internal/lexer"
	"github.com/zjrosen/csskit/internal/log"
)

// Checkpoint captures everything needed to restore a Parser to an earlier
// point. It is a plain value; taking one costs a copy of the lookahead ring.
type Checkpoint struct {
	ring   [MaxLookahead]lexer.Cursor
	head   int
	count  int
	offset lexer.SourceOffset

	errors  int
	trivia  int
	groups  int
	pending int

	skip  lexer.KindSet
	stop  lexer.KindSet
	state State
}

// Offset returns the offset of the next unconsumed cursor at the checkpoint.
func (c Checkpoint) Offset() lexer.SourceOffset {
	if c.count > 0 {
		return c.ring[c.head].Offset
	}
	return c.offset
}

// Checkpoint records the parser's current position.
func (p *Parser) Checkpoint() Checkpoint {
	return Checkpoint{
		ring:    p.ring,
		head:    p.head,
		count:   p.count,
		offset:  p.lex.Checkpoint(),
		errors:  len(p.errors),
		trivia:  len(p.trivia),
		groups:  len(p.groups),
		pending: p.pending,
		skip:    p.skip,
		stop:    p.stop,
		state:   p.state,
	}
}

// Rewind restores the parser to c. Diagnostics and trivia recorded after
// the checkpoint are discarded. Rewinding to a checkpoint taken from a
// different parser, or to one that was later rewound past, is undefined.
func (p *Parser) Rewind(c Checkpoint) {
	if log.Enabled(log.LevelDebug) {
		log.Debug(log.CatParser, "rewind",
			"from", p.Offset(), "to", c.Offset(),
			"dropped_errors", len(p.errors)-c.errors)
	}
	p.ring = c.ring
	p.head = c.head
	p.count = c.count
	p.lex.Rewind(c.offset)
	p.errors = p.errors[:c.errors]
	p.trivia = p.trivia[:c.trivia]
	p.groups = p.groups[:c.groups]
	p.pending = c.pending
	p.skip = c.skip
	p.stop = c.stop
	p.state = c.state
}
