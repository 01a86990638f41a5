// Command imtgen generates interface-method-table (IMT) conflict benchmarks.
//
// Usage:
//
//	go run ./cmd/imtgen [flags] <IMT_SIZE>
//
// Flags:
//
//	-lang   Target language for the generated file: java or go (default java)
//
// Example:
//
//	# Regenerate the Android perf test for a 64-entry IMT
//	go run ./cmd/imtgen 64 > ImtConflictPerfTest.java
//
//	# Emit the equivalent Go benchmark file
//	go run ./cmd/imtgen -lang go 64 > imtconflict_test.go
//
// The generated file is written to standard output. IMT_SIZE sets the
// per-interface method count; the number of conflict-depth variants is
// fixed at imt.MaxConflictDepth. Output is deterministic, so regenerating
// with the same arguments is a no-op diff.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/sarchlab/imtgen/imt"
	"github.com/sarchlab/imtgen/render"
)

var lang = flag.String("lang", "java", "Target language for the generated file (java or go)")

const usage = "Usage: imtgen [-lang java|go] <IMT_SIZE>"

func main() {
	flag.Parse()
	os.Exit(run(*lang, flag.Args(), os.Stdout))
}

// run generates the benchmark file to stdout and returns the process exit
// code. A missing, non-integer, or non-positive IMT size prints the usage
// line and fails; nothing is emitted before the argument validates.
func run(language string, args []string, stdout io.Writer) int {
	imtSize, ok := parseIMTSize(args)
	if !ok {
		fmt.Fprintln(stdout, usage)
		return 1
	}

	suite, err := imt.Build(imtSize)
	if err != nil {
		fmt.Fprintln(stdout, usage)
		return 1
	}

	r, err := render.ForLanguage(language)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if err := r.Render(stdout, suite); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		return 1
	}

	return 0
}

// parseIMTSize extracts the single positional IMT_SIZE argument.
func parseIMTSize(args []string) (int, bool) {
	if len(args) != 1 {
		return 0, false
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, false
	}
	return n, true
}
