package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"
)

// repl evaluates one line per prompt until end of input.  History lives for
// the session only.  A fatal engine condition ends the session with its
// error; counted compile errors have already been reported and do not.
func repl(ctx context.Context, en *Engine) error {
	cli := liner.NewLiner()
	defer cli.Close()
	cli.SetCtrlCAborts(true)

	for n := 1; ; n++ {
		line, err := cli.Prompt("weft> ")
		switch {
		case errors.Is(err, liner.ErrPromptAborted):
			continue
		case errors.Is(err, io.EOF):
			return nil
		case err != nil:
			return err
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		cli.AppendHistory(line)
		if err := en.Eval(ctx, fmt.Sprintf("<repl:%d>", n), line); err != nil {
			return err
		}
	}
}
