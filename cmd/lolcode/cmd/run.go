package cmd

import (
	"fmt"
	"os"

	"github.com/lolcode-go/lolcode/pkg/lolcode"
	"github.com/spf13/cobra"
)

var evalExpr string

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a LOLCODE file or expression",
	Long: `Execute a LOLCODE program from a .lol file or inline source.

Examples:
  # Run a script file
  lolcode run hello.lol

  # Evaluate inline source
  lolcode run -e $'HAI\nVISIBLE "HAI WORLD"\nKTHXBYE'`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline source instead of reading from file")
}

func runScript(_ *cobra.Command, args []string) error {
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

	engine, err := lolcode.New(lolcode.WithOutput(os.Stdout))
	if err != nil {
		return err
	}

	if err := engine.Run(source); err != nil {
		fmt.Fprint(os.Stderr, err.Error())
		return fmt.Errorf("execution failed")
	}
	return nil
}
