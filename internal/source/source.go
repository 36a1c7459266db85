// Package source provides sequential byte input through a queue of named
// streams, tracking the (name, line) location for diagnostics.
package source

import (
	"bufio"
	"fmt"
	"io"
)

// Location names a line in an input stream.
type Location struct {
	Name string
	Line int
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v", loc.Name, loc.Line) }

// Input reads one byte at a time, rolling over to the next queued stream at
// the end of each; streams that implement io.Closer are closed when spent.
type Input struct {
	br    *bufio.Reader
	cl    io.Closer
	queue []io.Reader
	loc   Location
	nl    bool // a newline was read; advance the line on the next byte
}

// Push appends a stream to the input queue.
func (in *Input) Push(r io.Reader) { in.queue = append(in.queue, r) }

// Loc returns the location of the byte about to be read; after end of input
// it keeps the last stream's final location.
func (in *Input) Loc() Location { return in.loc }

// ReadByte returns the next input byte, or io.EOF once the queue is
// exhausted.  A newline byte belongs to the line it ends, so the location
// advances on the byte after it; a caller reading one byte of lookahead past
// a word still sees the word's own line.
func (in *Input) ReadByte() (byte, error) {
	for {
		if in.br == nil && !in.next() {
			return 0, io.EOF
		}
		c, err := in.br.ReadByte()
		if err == io.EOF {
			in.close()
			continue
		} else if err != nil {
			return 0, err
		}
		if in.nl {
			in.loc.Line++
			in.nl = false
		}
		if c == '\n' {
			in.nl = true
		}
		return c, nil
	}
}

func (in *Input) next() bool {
	if len(in.queue) == 0 {
		return false
	}
	r := in.queue[0]
	in.queue = in.queue[1:]
	in.br = bufio.NewReader(r)
	if cl, ok := r.(io.Closer); ok {
		in.cl = cl
	}
	in.loc = Location{Name: nameOf(r), Line: 1}
	in.nl = false
	return true
}

func (in *Input) close() {
	if in.cl != nil {
		in.cl.Close()
		in.cl = nil
	}
	in.br = nil
}

func nameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}

// Named gives an anonymous reader a name for diagnostics.
func Named(name string, r io.Reader) io.Reader {
	return namedReader{name, r}
}

type namedReader struct {
	name string
	io.Reader
}

func (nr namedReader) Name() string { return nr.name }
