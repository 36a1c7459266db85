package main

import (
	"fmt"
	"reflect"
)

// nilCell is the bound value for words whose routine ignores its argument.
var nilCell = indCell(nilStack)

// The default catalog.  Immediate words exercise the compiler from inside
// the language; the arithmetic words carry real precedence through the
// deferral mechanism, so infix input linearizes correctly; plain runtime
// words compile unconditionally at 255.
var catalog = []struct {
	word string
	prio uint
	op   routine
}{
	{"\n", prioImmediate, opEndLine},
	{"\\", prioImmediate, opLineComment},
	{"(", prioImmediate, opGroupComment},
	{")", prioImmediate, opStray},
	{"{", prioImmediate, opQuote},
	{"}", prioImmediate, opQuoteEnd},
	{"[", prioImmediate, opInterp},
	{"]", prioImmediate, opInterpEnd},

	{"+", 5, opAdd},
	{"-", 5, opSub},
	{"*", 6, opMul},
	{"/", 6, opDiv},
	{".", 1, opPrint},

	{"dup", prioLiteral, opDup},
	{"drop", prioLiteral, opDrop},
	{"swap", prioLiteral, opSwap},
	{"over", prioLiteral, opOver},
	{"call", prioLiteral, opCall},
}

func (en *Engine) installCatalog() {
	for _, b := range catalog {
		en.define(b.word, b.prio, b.op, nilCell)
	}
}

// opEndLine makes lines statement-shaped: every deferred word still pending
// at a newline is flushed onto the code stack.
func opEndLine(en *Engine, _ cell) { en.compileWords(1) }

// opPush is the literal routine: its bound value goes onto the data stack.
func opPush(en *Engine, v cell) { en.push(dataStack, v) }

func opLineComment(en *Engine, _ cell) { en.scanRestOfLine() }

func opGroupComment(en *Engine, _ cell) {
	for depth := 1; depth > 0; {
		switch en.scanWord() {
		case "":
			en.errorf("unterminated comment at end of input")
			return
		case "(":
			depth++
		case ")":
			depth--
		}
	}
}

func opStray(en *Engine, _ cell) { en.errorf("unexpected %q", ")") }

// openFrame redirects compilation into a freshly allocated stack, saving
// the outer target and pending count.
func (en *Engine) openFrame(imm bool) {
	en.frames = append(en.frames, frame{target: en.code, pending: en.pending, imm: imm})
	en.code = en.newStack()
	en.pending = 0
}

// closeFrame flushes the group's own pending words into it and restores the
// outer compiler state, returning the group's stack handle.
func (en *Engine) closeFrame(imm bool, close string) (q uint, ok bool) {
	n := len(en.frames)
	if n == 0 {
		en.errorf("unexpected %q", close)
		return 0, false
	}
	f := en.frames[n-1]
	if f.imm != imm {
		en.errorf("mismatched %q", close)
		return 0, false
	}
	en.frames = en.frames[:n-1]
	en.compileWords(0)
	q = en.code
	en.code = f.target
	en.pending = f.pending
	return q, true
}

// { … } compiles its body into a new stack and compiles a push of that
// stack's handle; call runs it later.
func opQuote(en *Engine, _ cell) { en.openFrame(false) }

func opQuoteEnd(en *Engine, _ cell) {
	if q, ok := en.closeFrame(false, "}"); ok {
		en.compile(prioLiteral, opPush, indCell(q))
	}
}

// [ … ] compiles its body into a new stack and runs it immediately at
// compile time, discarding the code afterward.
func opInterp(en *Engine, _ cell) {
	// the group's result lands on the data stack, where it would sit on
	// top of any triples still deferred outside the group; report those
	// and flush them out of the way
	if en.pending > 0 {
		en.errorf("deferred words pending at %q", "[")
		en.compileWords(0)
	}
	en.openFrame(true)
}

func opInterpEnd(en *Engine, _ cell) {
	if q, ok := en.closeFrame(true, "]"); ok {
		en.runStack(q)
		en.trim(q, 0)
	}
}

func (en *Engine) popNum() float64 { return en.asNum(en.pop(dataStack)) }

func opAdd(en *Engine, _ cell) { b, a := en.popNum(), en.popNum(); en.push(dataStack, numCell(a + b)) }
func opSub(en *Engine, _ cell) { b, a := en.popNum(), en.popNum(); en.push(dataStack, numCell(a - b)) }
func opMul(en *Engine, _ cell) { b, a := en.popNum(), en.popNum(); en.push(dataStack, numCell(a * b)) }
func opDiv(en *Engine, _ cell) { b, a := en.popNum(), en.popNum(); en.push(dataStack, numCell(a / b)) }

func opPrint(en *Engine, _ cell) {
	if _, err := fmt.Fprintf(en.out, "%g\n", en.popNum()); err != nil {
		en.halt(err)
	}
}

func opDup(en *Engine, _ cell) {
	c := en.pop(dataStack)
	en.push(dataStack, c)
	en.push(dataStack, c)
}

func opDrop(en *Engine, _ cell) { en.pop(dataStack) }

func opSwap(en *Engine, _ cell) {
	b, a := en.pop(dataStack), en.pop(dataStack)
	en.push(dataStack, b)
	en.push(dataStack, a)
}

func opOver(en *Engine, _ cell) {
	b, a := en.pop(dataStack), en.pop(dataStack)
	en.push(dataStack, a)
	en.push(dataStack, b)
	en.push(dataStack, a)
}

func opCall(en *Engine, _ cell) {
	h := en.asInd(en.pop(dataStack))
	if h == nilStack || h >= maxStacks {
		en.fatalf("call to invalid stack %d", h)
	}
	en.runStack(h)
}

var opNames = make(map[uintptr]string)

func init() {
	for _, b := range catalog {
		opNames[reflect.ValueOf(b.op).Pointer()] = b.word
	}
	opNames[reflect.ValueOf(opPush).Pointer()] = "push"
}

func (en *Engine) opName(r routine) string {
	if name, ok := opNames[reflect.ValueOf(r).Pointer()]; ok {
		return name
	}
	return "<routine>"
}
