package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// codeNums reads back the argument cells of a compiled stack, assuming every
// pair was compiled from a numbered push.
func codeNums(en *Engine, h uint) (nums []float64) {
	for i := 0; i+1 < en.depth(h); i += 2 {
		nums = append(nums, en.asNum(en.at(h, i+1)))
	}
	return nums
}

func Test_compile_immediate(t *testing.T) {
	en := newBareEngine()
	var called []float64
	en.compile(prioImmediate, func(en *Engine, v cell) {
		called = append(called, en.asNum(v))
	}, numCell(42))

	assert.Equal(t, []float64{42}, called, "priority 0 runs at compile time")
	assert.Equal(t, 0, en.depth(codeStack))
	assert.Equal(t, 0, en.pending)
}

func Test_compile_literal(t *testing.T) {
	en := newBareEngine()
	en.compile(prioLiteral, opPush, numCell(9))

	require.Equal(t, 2, en.depth(codeStack))
	assert.Equal(t, cellRef, en.at(codeStack, 0).kind)
	assert.Equal(t, 9.0, en.asNum(en.at(codeStack, 1)))
	assert.Equal(t, 0, en.pending, "255 never defers")
}

func Test_compile_deferredOrdering(t *testing.T) {
	// priorities 2, 5, 3 then flush-all: 5 must outrun 2, and the final
	// order is most-binding-first among what each step forces out
	en := newBareEngine()
	en.compile(2, opPush, numCell(2))
	en.compile(5, opPush, numCell(5))
	en.compile(3, opPush, numCell(3))
	en.compileWords(0)

	assert.Equal(t, []float64{5, 3, 2}, codeNums(en, codeStack))
	assert.Equal(t, 0, en.pending)
}

func Test_compileWords_partialFlush(t *testing.T) {
	en := newBareEngine()
	en.compile(2, opPush, numCell(2))
	en.compile(5, opPush, numCell(5))

	en.compileWords(4)
	assert.Equal(t, []float64{5}, codeNums(en, codeStack), "only >= 4 flushes")
	assert.Equal(t, 1, en.pending)

	en.compileWords(0)
	assert.Equal(t, []float64{5, 2}, codeNums(en, codeStack))
	assert.Equal(t, 0, en.pending)
}

func Test_compileWord_literalProbe(t *testing.T) {
	en := newBareEngine()
	en.compileWord("12.5")
	en.compileWord("-3")

	assert.Equal(t, []float64{12.5, -3}, codeNums(en, codeStack))
}

func Test_compileWord_unknown(t *testing.T) {
	var diag bytes.Buffer
	en := New(WithoutCatalog(), WithDiagnostics(&diag))

	en.compileWord("bogus")
	assert.Equal(t, 1, en.errCount)
	assert.Contains(t, diag.String(), `unknown word "bogus"`)

	// compilation continues
	en.compileWord("2")
	assert.Equal(t, 1, en.errCount)
	assert.Equal(t, []float64{2}, codeNums(en, codeStack))
}

func Test_errorBudget(t *testing.T) {
	var diag bytes.Buffer
	en := New(WithoutCatalog(), WithDiagnostics(&diag), WithErrorLimit(3))

	err := haltErr(func() {
		for i := 0; i < 5; i++ {
			en.compileWord("bogus")
		}
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "giving up")
	assert.Equal(t, 3, en.errCount, "the budget halt stops the count")
}

func Test_compileInput_endToEnd(t *testing.T) {
	// smallest useful program: literals and + both compile at 255
	en := newBareEngine(WithNamedInput("test", strings.NewReader("1 2 +")))
	en.define("+", prioLiteral, opAdd, nilCell)

	require.NoError(t, en.Run(context.Background()))
	require.Equal(t, 1, en.depth(dataStack))
	assert.Equal(t, 3.0, en.asNum(en.at(dataStack, 0)))
}

func Test_compileInput_unknownWordContinues(t *testing.T) {
	var diag bytes.Buffer
	en := New(
		WithoutCatalog(),
		WithNamedInput("test", strings.NewReader("1 bogus 2")),
		WithDiagnostics(&diag),
	)

	err := en.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 compile error")
	assert.Contains(t, diag.String(), "test:1: ", "diagnostics carry the source location")
	assert.Equal(t, 2, en.depth(dataStack), "the words after the error still ran")
}
