// Command lox is the CLI entry point for the tree-walking Lox
// interpreter: run a script file or evaluate an inline expression. There
// is no interactive REPL.
package main

import (
	"os"

	"github.com/cwbudde/go-lox/cmd/lox/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
