package main

import "fmt"

// maxStacks bounds the stack table; handles are indices into it, stable for
// the engine's lifetime even as backing storage reallocates on growth.
const maxStacks = 1024

// stackChunk is the fixed growth increment for a stack's backing storage.
// Growth always appends capacity, never drops elements.
const stackChunk = 256

type stack struct {
	cells []cell
}

type badHandle uint

func (h badHandle) Error() string { return fmt.Sprintf("invalid stack handle %d", uint(h)) }

type badIndex struct {
	h uint
	i int
}

func (b badIndex) Error() string { return fmt.Sprintf("invalid index %d into stack %d", b.i, b.h) }

// stackFor resolves a handle.  A handle outside (0, maxStacks) is a defect
// in the caller, not a program error: it panics rather than reporting.
func (en *Engine) stackFor(h uint) *stack {
	if h == nilStack || h >= maxStacks {
		panic(badHandle(h))
	}
	return &en.stacks[h]
}

// newStack allocates a fresh empty stack and returns its handle.  Handles
// are never recycled within a run.
func (en *Engine) newStack() uint {
	if en.stacksNext >= maxStacks {
		en.fatalf("out of stacks")
	}
	h := en.stacksNext
	en.stacksNext++
	return h
}

func (en *Engine) push(h uint, c cell) {
	s := en.stackFor(h)
	if len(s.cells) == cap(s.cells) {
		if lim := en.cellLimit; lim != 0 && len(s.cells)+stackChunk > lim {
			en.fatalf("out of memory")
		}
		grown := make([]cell, len(s.cells), cap(s.cells)+stackChunk)
		copy(grown, s.cells)
		s.cells = grown
	}
	s.cells = append(s.cells, c)
}

func (en *Engine) pop(h uint) cell {
	s := en.stackFor(h)
	i := len(s.cells) - 1
	if i < 0 {
		en.fatalf("missing value (stack underflow)")
	}
	c := s.cells[i]
	s.cells = s.cells[:i]
	return c
}

func (en *Engine) top(h uint) cell {
	s := en.stackFor(h)
	i := len(s.cells) - 1
	if i < 0 {
		en.fatalf("missing value (stack underflow)")
	}
	return s.cells[i]
}

func (en *Engine) at(h uint, i int) cell {
	s := en.stackFor(h)
	if i < 0 || i >= len(s.cells) {
		panic(badIndex{h, i}) // index defects come from engine code, not programs
	}
	return s.cells[i]
}

func (en *Engine) depth(h uint) int {
	return len(en.stackFor(h).cells)
}

// trim truncates a stack to n cells, keeping storage.  Used to reset the
// code stack between interactive lines and to discard interpret-now groups.
func (en *Engine) trim(h uint, n int) {
	s := en.stackFor(h)
	if n < 0 || n > len(s.cells) {
		panic(badIndex{h, n})
	}
	s.cells = s.cells[:n]
}
