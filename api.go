package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/weftlang/weft/internal/source"
	"github.com/weftlang/weft/internal/trap"
)

func New(opts ...Option) *Engine {
	var en Engine
	defaultOptions.apply(&en)
	options(opts).apply(&en)
	en.init()
	return &en
}

func WithInput(r io.Reader) Option                                 { return withInput(r) }
func WithNamedInput(name string, r io.Reader) Option               { return withInput(source.Named(name, r)) }
func WithOutput(w io.Writer) Option                                { return withOutput(w) }
func WithTee(w io.Writer) Option                                   { return withTee(w) }
func WithDiagnostics(w io.Writer) Option                           { return withDiag(w) }
func WithCellLimit(limit int) Option                               { return withCellLimit(limit) }
func WithErrorLimit(limit int) Option                              { return withErrorLimit(limit) }
func WithoutCatalog() Option                                       { return withCatalog(false) }
func WithLogf(logfn func(mess string, args ...interface{})) Option { return withLogfn(logfn) }

// Run compiles all queued input, then executes the resulting code stack.
// Recoverable compile errors are reported as they happen and summarized in
// the returned error; fatal conditions surface as the halting error.
func (en *Engine) Run(ctx context.Context) error {
	err := trap.Run("weft", func() error {
		en.ctx = ctx
		defer func() { en.ctx = nil }()
		en.compileInput(ctx)
		en.execute()
		return en.out.Flush()
	})
	if err = finish(err); err != nil {
		return err
	}
	if en.errCount > 0 {
		return compileErrors(en.errCount)
	}
	return nil
}

// Eval compiles and runs one chunk of source, for interactive use.  The
// code stack is trimmed first so the chunk executes exactly once; the
// dictionary and data stack persist across chunks.
func (en *Engine) Eval(ctx context.Context, name, src string) error {
	return finish(trap.Run("weft", func() error {
		en.ctx = ctx
		defer func() { en.ctx = nil }()
		en.trim(codeStack, 0)
		if !strings.HasSuffix(src, "\n") {
			src += "\n"
		}
		en.in.Push(source.Named(name, strings.NewReader(src)))
		en.compileInput(ctx)
		en.execute()
		return en.out.Flush()
	}))
}

func finish(err error) error {
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	var halt haltError
	if errors.As(err, &halt) {
		err = halt.error
	}
	return err
}

type compileErrors int

func (n compileErrors) Error() string {
	if n == 1 {
		return "1 compile error"
	}
	return fmt.Sprintf("%d compile errors", int(n))
}
