package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_execute_pairs(t *testing.T) {
	en := newBareEngine()
	en.push(codeStack, refCell(opPush))
	en.push(codeStack, numCell(1))
	en.push(codeStack, refCell(opPush))
	en.push(codeStack, numCell(2))
	en.push(codeStack, refCell(opAdd))
	en.push(codeStack, nilCell)

	en.execute()
	require.Equal(t, 1, en.depth(dataStack))
	assert.Equal(t, 3.0, en.asNum(en.at(dataStack, 0)))
	assert.Equal(t, -1, en.ip, "instruction pointer rests at -1")
}

func Test_execute_idempotent(t *testing.T) {
	var seen []float64
	record := func(en *Engine, v cell) { seen = append(seen, en.asNum(v)) }

	en := newBareEngine()
	en.push(codeStack, refCell(record))
	en.push(codeStack, numCell(1))
	en.push(codeStack, refCell(record))
	en.push(codeStack, numCell(2))

	en.execute()
	en.execute()
	assert.Equal(t, []float64{1, 2, 1, 2}, seen,
		"re-running unchanged code repeats the invocation sequence")
}

func Test_execute_empty(t *testing.T) {
	en := newBareEngine()
	en.execute()
	assert.Equal(t, 0, en.depth(dataStack))
	assert.Equal(t, -1, en.ip)
}

func Test_execute_nested(t *testing.T) {
	en := newBareEngine()

	q := en.newStack()
	en.push(q, refCell(opPush))
	en.push(q, numCell(7))

	var inner, outer []int
	en.push(codeStack, refCell(func(en *Engine, v cell) {
		outer = append(outer, en.ip)
		h := en.asInd(v)
		en.runStack(h)
		inner = append(inner, en.ip)
	}))
	en.push(codeStack, indCell(q))

	en.execute()
	require.Equal(t, 1, en.depth(dataStack))
	assert.Equal(t, 7.0, en.asNum(en.at(dataStack, 0)))
	assert.Equal(t, []int{2}, outer, "outer pass keeps its own pointer")
	assert.Equal(t, []int{2}, inner, "outer pointer survives the nested pass")
	assert.Equal(t, -1, en.ip)
}

func Test_execute_truncated(t *testing.T) {
	en := newBareEngine()
	en.push(codeStack, refCell(opPush))

	err := haltErr(func() { en.execute() })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "truncated code")
}

func Test_opCall_invalidHandle(t *testing.T) {
	en := newBareEngine()
	en.push(codeStack, refCell(opPush))
	en.push(codeStack, indCell(nilStack))
	en.push(codeStack, refCell(opCall))
	en.push(codeStack, nilCell)

	err := haltErr(func() { en.execute() })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid stack")
}

func Test_execute_tagMismatch(t *testing.T) {
	en := newBareEngine()
	en.push(codeStack, numCell(3)) // a number where a routine belongs
	en.push(codeStack, nilCell)

	err := haltErr(func() { en.execute() })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a routine")
}
