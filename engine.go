package main

import (
	"context"
	"io"

	"github.com/weftlang/weft/internal/source"
)

// An Engine owns the whole interpreter state: the stack table, the lexer
// lookahead, the compiler's pending count and compile target, the executor's
// instruction pointer, and the diagnostics counters.  One Engine is one
// logical thread of control; nothing here is safe for concurrent use.
type Engine struct {
	logging
	symbols

	in   source.Input
	out  writeFlusher
	diag writeFlusher

	stacks     [maxStacks]stack
	stacksNext uint // next free handle; never recycled

	last     byte // lexer lookahead, 0 when empty
	scanning bool // a source line is being scanned

	code    uint         // current compile target, normally codeStack
	pending int          // pending (value, routine, priority) triples on the data stack
	frames  []frame      // open { } and [ ] groups
	ip      int          // code offset during an execution pass, else -1
	ctx     context.Context

	errCount  int
	errLimit  int
	cellLimit int
	ccodes    [256]charClass

	catalog  bool            // install the default word catalog
	specials string          // extra special characters (profile)
	prios    map[string]uint // per-word priority overrides (profile)

	closers []io.Closer
}

// Reserved stack handles.  Handle 0 is the nil reference and is never a
// valid push/pop target; the next four exist for the engine's own structures
// from init to process exit.
const (
	nilStack uint = iota
	dictStack
	dataStack
	codeStack
	tibStack

	firstFreeStack
)

func (en *Engine) init() {
	if en.stacksNext == 0 {
		en.stacksNext = firstFreeStack
	}
	if en.code == 0 {
		en.code = codeStack
	}
	en.ip = -1
	if en.errLimit == 0 {
		en.errLimit = defaultErrorLimit
	}
	en.initCharClasses()
	if en.catalog {
		en.installCatalog()
	}
}

func (en *Engine) Close() (err error) {
	for i := len(en.closers) - 1; i >= 0; i-- {
		if cerr := en.closers[i].Close(); err == nil {
			err = cerr
		}
	}
	return err
}
