package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/eugenesimakin/bendy"
	"github.com/eugenesimakin/bendy/digest"
)

func main() {
	var (
		inFile      = flag.String("in", "", "Input JSON file (default stdin)")
		outFile     = flag.String("out", "", "Output file (default stdout)")
		maxDepth    = flag.Int("max-depth", bendy.DefaultMaxDepth, "Nesting depth ceiling")
		digestOnly  = flag.Bool("digest", false, "Print the BLAKE3 digest of the encoding instead of the bytes")
		debug       = flag.Bool("debug", false, "Verbose logging")
		interactive = flag.Bool("i", false, "Interactive playground with TUI")
	)
	flag.Parse()

	if *debug {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		bendy.SetLogger(logger)
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode requires a terminal")
			os.Exit(1)
		}
		if err := runInteractive(*maxDepth); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*inFile, *outFile, *maxDepth, *digestOnly); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(inFile, outFile string, maxDepth int, digestOnly bool) error {
	var (
		data []byte
		err  error
	)
	if inFile == "" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(inFile)
	}
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	encoded, err := encodeJSON(data, maxDepth)
	if err != nil {
		return err
	}

	out := encoded
	if digestOnly {
		out = []byte(digest.Hex(digest.SumBytes(encoded)) + "\n")
	}

	if outFile == "" {
		_, err = os.Stdout.Write(out)
		return err
	}
	return os.WriteFile(outFile, out, 0o644)
}
