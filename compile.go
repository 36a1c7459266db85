package main

import (
	"context"
	"strconv"
)

const (
	// prioImmediate words run at compile time; they are how the language
	// extends its own compiler.
	prioImmediate uint = 0
	// prioLiteral words compile straight onto the code stack with no
	// deferral; numeric literals use it, and so may any plain runtime word.
	prioLiteral uint = 255
)

// A frame records the compiler state saved by an open { or [ group: the
// outer compile target and the outer pending count.  Pending words of the
// enclosing scope must survive the group untouched, so each group flushes
// only its own deferrals.
type frame struct {
	target  uint
	pending int
	imm     bool // [ group: execute at close and discard
}

// compile routes one resolved word by priority: run it now, emit it, or
// defer it behind any pending words that must bind tighter.
func (en *Engine) compile(p uint, r routine, v cell) {
	switch p {
	case prioImmediate:
		r(en, v)
	case prioLiteral:
		en.push(en.code, refCell(r))
		en.push(en.code, v)
	default:
		en.compileWords(p)
		en.push(dataStack, v)
		en.push(dataStack, refCell(r))
		en.push(dataStack, indCell(p))
		en.pending++
	}
}

// compileWords flushes pending triples with priority >= n from the data
// stack onto the compile target, most recent first.  compileWords(0) ends a
// compile by flushing everything.  The explicit pending count keeps the
// flush from ever misreading program data left on the data stack by an
// immediate word.
func (en *Engine) compileWords(n uint) {
	for en.pending > 0 && en.asInd(en.top(dataStack)) >= n {
		en.pop(dataStack) // priority
		r := en.pop(dataStack)
		v := en.pop(dataStack)
		en.pending--
		en.push(en.code, r)
		en.push(en.code, v)
	}
}

// compileWord resolves one scanned word: dictionary first, then a numeric
// literal probe, else a counted "unknown word" diagnostic so the rest of
// the source still compiles.
func (en *Engine) compileWord(w string) {
	if i, ok := en.findWord(w); ok {
		p := en.asInd(en.at(dictStack, i+1))
		r := en.asRef(en.at(dictStack, i+2))
		v := en.at(dictStack, i+3)
		en.logf("compile %q prio %v", w, p)
		en.compile(p, r, v)
		return
	}
	if n, err := strconv.ParseFloat(w, 64); err == nil {
		en.logf("compile literal %v", n)
		en.compile(prioLiteral, opPush, numCell(n))
		return
	}
	en.errorf("unknown word %q", w)
}

// compileInput scans and compiles words until end of input, then flushes
// all pending words.  Groups left open at end of input are reported and
// unwound.
func (en *Engine) compileInput(ctx context.Context) {
	en.scanning = true
	defer func() { en.scanning = false }()

	for {
		en.haltif(ctx.Err())
		w := en.scanWord()
		if w == "" {
			break
		}
		en.compileWord(w)
	}

	for len(en.frames) > 0 {
		en.errorf("unterminated group at end of input")
		en.compileWords(0) // strand the group's own pendings in the abandoned group
		f := en.frames[len(en.frames)-1]
		en.frames = en.frames[:len(en.frames)-1]
		en.code = f.target
		en.pending = f.pending
	}
	en.compileWords(0)
}
