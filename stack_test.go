package main

import (
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weftlang/weft/internal/trap"
)

func newBareEngine(opts ...Option) *Engine {
	return New(append([]Option{
		WithoutCatalog(),
		WithDiagnostics(io.Discard),
	}, opts...)...)
}

// haltErr runs f and returns the engine's halting error, nil if f finished.
func haltErr(f func()) error {
	return finish(trap.Run("test", func() error { f(); return nil }))
}

func TestStack_lifo(t *testing.T) {
	for _, n := range []int{1, 10, 3000} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			en := newBareEngine()
			h := en.newStack()
			for i := 0; i < n; i++ {
				en.push(h, numCell(float64(i)))
			}
			require.Equal(t, n, en.depth(h))
			for i := n - 1; i >= 0; i-- {
				require.Equal(t, float64(i), en.asNum(en.pop(h)), "pop %d", i)
			}
			assert.Equal(t, 0, en.depth(h))
		})
	}
}

func TestStack_underflow(t *testing.T) {
	en := newBareEngine()
	err := haltErr(func() { en.pop(dataStack) })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stack underflow")
}

func TestStack_badHandles(t *testing.T) {
	en := newBareEngine()
	assert.Panics(t, func() { en.push(nilStack, numCell(1)) }, "push to the nil handle")
	assert.Panics(t, func() { en.pop(nilStack) }, "pop from the nil handle")
	assert.Panics(t, func() { en.push(maxStacks, numCell(1)) }, "push past the table")
	assert.Panics(t, func() { en.pop(maxStacks + 1) }, "pop past the table")
}

func TestStack_growthPreserves(t *testing.T) {
	en := newBareEngine()
	h := en.newStack()
	for i := 0; i < 3*stackChunk; i++ {
		en.push(h, numCell(float64(i)))
	}
	for i := 0; i < 3*stackChunk; i++ {
		require.Equal(t, float64(i), en.asNum(en.at(h, i)), "cell %d after growth", i)
	}
}

func TestStack_cellLimit(t *testing.T) {
	en := newBareEngine(WithCellLimit(stackChunk))
	h := en.newStack()
	for i := 0; i < stackChunk; i++ {
		en.push(h, numCell(0))
	}
	err := haltErr(func() { en.push(h, numCell(0)) })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of memory")
}

func TestStack_handleAllocation(t *testing.T) {
	en := newBareEngine()
	first := en.newStack()
	require.Equal(t, uint(firstFreeStack), first, "reserved handles stay reserved")
	require.Equal(t, first+1, en.newStack(), "handles allocate in order")

	for en.stacksNext < maxStacks {
		en.newStack()
	}
	err := haltErr(func() { en.newStack() })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of stacks")
}
