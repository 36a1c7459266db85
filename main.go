package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	docopt "github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

const usage = `weft - a minimal extensible threaded-code language.

Usage:
  weft [options] [<file>...]

Options:
  -e, --eval=<prog>     compile <prog> ahead of any files
  -p, --profile=<path>  load an engine profile (YAML)
  -t, --trace           log compile and execute steps to stderr
  --tee=<path>          copy program output to <path>
  --timeout=<dur>       limit total run time (e.g. 5s)
  --cell-limit=<n>      cap each stack's cell storage
  -h, --help            show this help`

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %+v\n", err)
		os.Exit(1)
	}
}

func run() error {
	parsed, err := docopt.ParseDoc(usage)
	if err != nil {
		return err
	}
	files, _ := parsed["<file>"].([]string)
	eval, _ := parsed["--eval"].(string)
	profile, _ := parsed["--profile"].(string)
	trace, _ := parsed["--trace"].(bool)
	teeArg, _ := parsed["--tee"].(string)
	timeoutArg, _ := parsed["--timeout"].(string)
	cellLimitArg, _ := parsed["--cell-limit"].(string)

	opts := []Option{
		WithOutput(os.Stdout),
		WithDiagnostics(os.Stderr),
	}
	if trace {
		opts = append(opts, WithLogf(log.Printf))
	}
	if teeArg != "" {
		f, err := os.Create(teeArg)
		if err != nil {
			return err
		}
		defer f.Close()
		opts = append(opts, WithTee(f))
	}
	if profile != "" {
		p, err := LoadProfile(profile)
		if err != nil {
			return err
		}
		opts = append(opts, WithProfile(p))
	}
	if cellLimitArg != "" {
		limit, err := strconv.Atoi(cellLimitArg)
		if err != nil {
			return fmt.Errorf("bad --cell-limit: %w", err)
		}
		opts = append(opts, WithCellLimit(limit))
	}
	if eval != "" {
		opts = append(opts, WithNamedInput("<eval>", strings.NewReader(eval+"\n")))
	}
	for _, name := range files {
		f, err := os.Open(name)
		if err != nil {
			return err
		}
		opts = append(opts, WithInput(f)) // *os.File carries its own Name
	}

	interactive := len(files) == 0 && eval == "" && isatty.IsTerminal(os.Stdin.Fd())
	if len(files) == 0 && eval == "" && !interactive {
		opts = append(opts, WithNamedInput("<stdin>", os.Stdin))
	}

	en := New(opts...)
	defer en.Close()
	if trace {
		defer en.dump()
	}

	ctx := context.Background()
	if timeoutArg != "" {
		timeout, err := time.ParseDuration(timeoutArg)
		if err != nil {
			return fmt.Errorf("bad --timeout: %w", err)
		}
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	if interactive {
		return repl(ctx, en)
	}
	return en.Run(ctx)
}
