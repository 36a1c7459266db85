package main

import (
	"io"
	"strings"
)

// Character classes drive the lexer.  Every byte value is classified once:
// blanks separate words, word bytes accumulate, and each special byte is a
// complete one-byte word by itself.
type charClass int8

const (
	classBlank   charClass = 0
	classWord    charClass = 1
	classSpecial charClass = -1
)

func (en *Engine) initCharClasses() {
	for i := 33; i < 256; i++ {
		en.ccodes[i] = classWord
	}
	for _, c := range []byte("\n\\()[]{}") {
		en.ccodes[c] = classSpecial
	}
	for _, c := range []byte(en.specials) {
		en.ccodes[c] = classSpecial
	}
}

// scanChar yields the buffered lookahead byte if present, else the next
// source byte.  The second return is false at end of input.
func (en *Engine) scanChar() (byte, bool) {
	if en.last != 0 {
		c := en.last
		en.last = 0
		return c, true
	}
	c, err := en.in.ReadByte()
	if err == io.EOF {
		return 0, false
	} else if err != nil {
		en.halt(err)
	}
	return c, true
}

// scanWord skips blanks, then returns either a single special byte or a run
// of word bytes.  Word boundaries are only known one byte late, so the byte
// that ends a word is buffered for the next call.  Returns "" at end of
// input.
func (en *Engine) scanWord() string {
	for {
		c, ok := en.scanChar()
		if !ok {
			return ""
		}
		switch en.ccodes[c] {
		case classSpecial:
			return string([]byte{c})
		case classWord:
			var sb strings.Builder
			sb.WriteByte(c)
			for {
				c, ok = en.scanChar()
				if !ok {
					break
				}
				if en.ccodes[c] != classWord {
					en.last = c
					break
				}
				sb.WriteByte(c)
			}
			return sb.String()
		}
	}
}

// scanRestOfLine discards input through the next newline; the line comment
// word is built on it.
func (en *Engine) scanRestOfLine() {
	for {
		c, ok := en.scanChar()
		if !ok || c == '\n' {
			return
		}
	}
}
