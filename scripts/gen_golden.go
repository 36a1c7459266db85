package main

// Regenerates testdata/*.out golden files by running the interpreter over
// every testdata/*.wf program.  Invoked by `go generate` from engine_test.go.

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/net/context"
	"golang.org/x/sync/errgroup"
)

var dir = flag.String("dir", "testdata", "directory of .wf programs")

func main() {
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	names, err := filepath.Glob(filepath.Join(*dir, "*.wf"))
	if err != nil {
		log.Fatalln(err)
	}

	eg, ctx := errgroup.WithContext(ctx)
	for _, name := range names {
		name := name
		eg.Go(func() error {
			var out bytes.Buffer
			cmd := exec.CommandContext(ctx, "go", "run", ".", name)
			cmd.Stdout = &out
			cmd.Stderr = os.Stderr
			if err := cmd.Run(); err != nil {
				return fmt.Errorf("%v: %w", name, err)
			}
			golden := strings.TrimSuffix(name, ".wf") + ".out"
			return os.WriteFile(golden, out.Bytes(), 0o644)
		})
	}
	if err := eg.Wait(); err != nil {
		log.Fatalln(err)
	}
}
