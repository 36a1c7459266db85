package main

import "fmt"

// A routine is the open dispatch point of the engine: an opaque callable
// invoked with one cell argument, free to mutate any stack.  Builtin words,
// literal pushes and embedder extensions all plug in here.
type routine func(en *Engine, arg cell)

type cellKind uint8

const (
	cellNum cellKind = iota // floating-point number
	cellInd                 // unsigned index (stack handle, symbol id, priority)
	cellRef                 // routine reference
)

func (k cellKind) String() string {
	switch k {
	case cellNum:
		return "number"
	case cellInd:
		return "index"
	case cellRef:
		return "routine"
	}
	return fmt.Sprintf("cellKind(%d)", uint8(k))
}

// A cell is the engine's single fixed-size value: a number, an index, or a
// routine reference, with an explicit tag.  The original design left the
// union untagged and trusted slot conventions; here misreading a cell is a
// checked runtime error, never reinterpretation.
type cell struct {
	kind cellKind
	num  float64
	ind  uint
	ref  routine
}

func numCell(n float64) cell { return cell{kind: cellNum, num: n} }
func indCell(i uint) cell    { return cell{kind: cellInd, ind: i} }
func refCell(r routine) cell { return cell{kind: cellRef, ref: r} }

func (c cell) String() string {
	switch c.kind {
	case cellNum:
		return fmt.Sprintf("%v", c.num)
	case cellInd:
		return fmt.Sprintf("#%d", c.ind)
	case cellRef:
		return "<routine>"
	}
	return "<invalid>"
}

type cellTagError struct {
	want, got cellKind
}

func (e cellTagError) Error() string {
	return fmt.Sprintf("cell holds a %v, not a %v", e.got, e.want)
}

// asNum, asInd and asRef unwrap a cell, halting the engine on a tag
// mismatch; such a mismatch is a defect in a word definition, not in the
// program being compiled, so it is fatal rather than counted.
func (en *Engine) asNum(c cell) float64 {
	if c.kind != cellNum {
		en.fatal(cellTagError{cellNum, c.kind})
	}
	return c.num
}

func (en *Engine) asInd(c cell) uint {
	if c.kind != cellInd {
		en.fatal(cellTagError{cellInd, c.kind})
	}
	return c.ind
}

func (en *Engine) asRef(c cell) routine {
	if c.kind != cellRef {
		en.fatal(cellTagError{cellRef, c.kind})
	}
	return c.ref
}
