// Command lolcode is the terminal-mode CLI: run/lex/parse/version
// subcommands over the core lexer/parser/interpreter pipeline.
package main

import (
	"fmt"
	"os"

	"github.com/lolcode-go/lolcode/cmd/lolcode/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
