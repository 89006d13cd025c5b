/*
File    : lumen/cmd/lumen/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package main is the Lumen CLI entry point: "lumen [script]" runs a file
// if one is given or drops into the REPL otherwise, matching spec.md §6's
// External Interfaces contract.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/akashmaji946/lumen/eval"
	"github.com/akashmaji946/lumen/internal/astprint"
	"github.com/akashmaji946/lumen/lexer"
	"github.com/akashmaji946/lumen/parser"
	"github.com/akashmaji946/lumen/repl"
	"github.com/akashmaji946/lumen/report"
	"github.com/akashmaji946/lumen/resolver"
)

const (
	version = "v1.0.0"
	author  = "akashmaji(@iisc.ac.in)"
	line    = "----------------------------------------------------------------"
	banner  = `
  ██╗     ██╗   ██╗███╗   ███╗███████╗███╗   ██╗
  ██║     ██║   ██║████╗ ████║██╔════╝████╗  ██║
  ██║     ██║   ██║██╔████╔██║█████╗  ██╔██╗ ██║
  ██║     ██║   ██║██║╚██╔╝██║██╔══╝  ██║╚██╗██║
  ███████╗╚██████╔╝██║ ╚═╝ ██║███████╗██║ ╚████║
  ╚══════╝ ╚═════╝ ╚═╝     ╚═╝╚══════╝╚═╝  ╚═══╝
`
)

var redColor = color.New(color.FgRed)

var showAST bool

func main() {
	root := &cobra.Command{
		Use:     "lumen [script]",
		Short:   "Lumen is a small tree-walking scripting language interpreter.",
		Version: version,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				repl.NewRepl(banner, version, author, line).Start(os.Stdout)
				return nil
			}
			return runFile(args[0])
		},
	}
	root.Flags().BoolVar(&showAST, "ast", false, "print the parsed syntax tree instead of running it")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// runFile reads path, then parses, resolves, and evaluates it. It exits
// non-zero on any syntax, resolution, or runtime error, per spec.md §6.
func runFile(path string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "Could not read file '%s': %v\n", path, err)
		os.Exit(1)
	}

	rep := report.New()

	lx := lexer.New(string(source), rep)
	tokens := lx.ScanTokens()

	p := parser.New(tokens, rep)
	statements := p.Parse()
	if rep.HadError {
		os.Exit(1)
	}

	if showAST {
		fmt.Print(astprint.Print(statements))
		return nil
	}

	interp := eval.New(rep)
	res := resolver.New(interp, rep)
	res.Resolve(statements)
	if rep.HadError {
		os.Exit(1)
	}

	interp.Interpret(statements)
	if rep.HadRuntimeError {
		os.Exit(1)
	}
	return nil
}
