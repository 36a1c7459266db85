package main

import (
	"bytes"
	"io"
	"os"
)

type Option interface{ apply(en *Engine) }

type options []Option

func (opts options) apply(en *Engine) {
	for _, opt := range opts {
		if opt != nil {
			opt.apply(en)
		}
	}
}

var defaultOptions = options{
	withInput(bytes.NewReader(nil)),
	withOutput(io.Discard),
	withDiag(os.Stderr),
	withCatalog(true),
}

type withLogfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(en *Engine) {
	en.logfn = logfn
}

type inputOption struct{ io.Reader }
type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }
type diagOption struct{ io.Writer }
type cellLimitOption int
type errorLimitOption int
type catalogOption bool

func withInput(r io.Reader) inputOption         { return inputOption{r} }
func withOutput(w io.Writer) outputOption       { return outputOption{w} }
func withTee(w io.Writer) teeOption             { return teeOption{w} }
func withDiag(w io.Writer) diagOption           { return diagOption{w} }
func withCellLimit(limit int) cellLimitOption   { return cellLimitOption(limit) }
func withErrorLimit(limit int) errorLimitOption { return errorLimitOption(limit) }
func withCatalog(on bool) catalogOption         { return catalogOption(on) }

func (i inputOption) apply(en *Engine) {
	en.in.Push(i.Reader)
	if cl, ok := i.Reader.(io.Closer); ok {
		en.closers = append(en.closers, cl)
	}
}

func (o outputOption) apply(en *Engine) {
	if en.out != nil {
		en.out.Flush()
	}
	en.out = newWriteFlusher(o.Writer)
}

func (o teeOption) apply(en *Engine) {
	en.out = multiWriteFlusher(en.out, newWriteFlusher(o.Writer))
}

func (o diagOption) apply(en *Engine) {
	en.diag = newWriteFlusher(o.Writer)
}

func (lim cellLimitOption) apply(en *Engine) {
	en.cellLimit = int(lim)
}

func (lim errorLimitOption) apply(en *Engine) {
	en.errLimit = int(lim)
}

func (on catalogOption) apply(en *Engine) {
	en.catalog = bool(on)
}
