package cmd

import (
	"fmt"
	"os"

	"github.com/lolcode-go/lolcode/internal/lexer"
	"github.com/spf13/cobra"
)

var showType bool

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a LOLCODE file or expression",
	Long: `Tokenize (lex) a LOLCODE program and print the resulting tokens.

Examples:
  lolcode lex hello.lol
  lolcode lex --show-type hello.lol`,
	Args: cobra.MaximumNArgs(1),
	RunE: lexScript,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "tokenize inline source instead of reading from file")
	lexCmd.Flags().BoolVar(&showType, "show-type", false, "show token type names")
}

func lexScript(_ *cobra.Command, args []string) error {
	var source string

	switch {
	case evalExpr != "":
		source = evalExpr
	case len(args) == 1:
		content, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		source = string(content)
	default:
		return fmt.Errorf("either provide a file path or use -e for inline source")
	}

	l := lexer.New(source)
	tokens, err := l.Tokens()
	for _, tok := range tokens {
		printToken(tok)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		return fmt.Errorf("lexing failed")
	}
	return nil
}

func printToken(tok lexer.Token) {
	var output string
	if showType {
		output = fmt.Sprintf("[%-12s]", tok.Type)
	}
	if tok.Type == lexer.EOF {
		output += " EOF"
	} else {
		output += fmt.Sprintf(" %q", tok.Literal)
	}
	output += fmt.Sprintf(" @%d", tok.Line)
	fmt.Println(output)
}
