// Command mint is the CLI driver for mint-lang program documents.
//
// Usage:
//
//	mint run <file>    Evaluate a program document
//	mint ast <file>    Decode a program document and print the normalized AST
//
// A program document is the JSON AST produced by an external parser; mint
// builds the root scope and drives evaluation. The optional mint.toml in
// the working directory configures the driver.
package main

import (
	"fmt"
	"io"
	"os"

	"mint-lang/internal/ast"
	"mint-lang/internal/runtime"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cfg := loadConfig()
	setupLogging(cfg)

	switch command := os.Args[1]; command {
	case "run":
		cmdRun(fileArg(), cfg)
	case "ast":
		cmdAST(fileArg())
	default:
		fmt.Fprintf(os.Stderr, "error: unknown command '%s'\n", command)
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  mint run <file>    Evaluate a program document")
	fmt.Fprintln(os.Stderr, "  mint ast <file>    Print the normalized AST (JSON)")
}

func fileArg() string {
	if len(os.Args) < 3 {
		fmt.Fprintln(os.Stderr, "error: missing file argument")
		os.Exit(1)
	}
	return os.Args[2]
}

func decodeFile(filename string) *ast.Program {
	f, err := os.Open(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: cannot open %s: %v\n", filename, err)
		os.Exit(1)
	}
	defer f.Close()

	prog, err := ast.DecodeProgram(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s: %v\n", filename, err)
		os.Exit(1)
	}
	return prog
}

// ---- run command ----

func cmdRun(filename string, cfg Config) {
	prog := decodeFile(filename)

	in := chooseInput(cfg)
	if closer, ok := in.(io.Closer); ok {
		defer closer.Close()
	}

	interp := runtime.NewInterpreter(os.Stdout, in)
	if cfg.MaxCallDepth > 0 {
		interp.SetMaxCallDepth(cfg.MaxCallDepth)
	}

	if _, err := interp.Run(prog); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// ---- ast command ----

func cmdAST(filename string) {
	prog := decodeFile(filename)
	printJSON(map[string]any{"ast": ast.NodeToMap(prog)})
}
