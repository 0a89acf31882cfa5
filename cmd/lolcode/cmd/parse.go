package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/lolcode-go/lolcode/internal/ast"
	"github.com/lolcode-go/lolcode/internal/parser"
	"github.com/spf13/cobra"
)

var (
	parseExpression bool
	parseDumpAST    bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse LOLCODE source code and display the AST",
	Long: `Parse LOLCODE source code and display the Abstract Syntax Tree.

If no file is provided, reads from stdin.
Use -e to parse inline source from the command line.
Use --dump-ast to show the node tree instead of the reprinted source.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().BoolVarP(&parseExpression, "expression", "e", false, "parse inline source from the command line")
	parseCmd.Flags().BoolVar(&parseDumpAST, "dump-ast", false, "dump the node tree structure")
}

func runParse(_ *cobra.Command, args []string) error {
	var source string

	switch {
	case parseExpression:
		if len(args) == 0 {
			return fmt.Errorf("no source provided")
		}
		source = args[0]
	case len(args) > 0:
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("error reading file: %w", err)
		}
		source = string(data)
	default:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("error reading stdin: %w", err)
		}
		source = string(data)
	}

	program, err := parser.ParseProgram(source)
	if err != nil {
		fmt.Fprint(os.Stderr, err.Error())
		return fmt.Errorf("parsing failed")
	}

	if parseDumpAST {
		fmt.Println("Abstract Syntax Tree:")
		fmt.Println("=====================")
		dumpASTNode(program, 0)
	} else {
		fmt.Println(program.String())
	}

	return nil
}

func dumpASTNode(node any, indent int) {
	pad := ""
	for i := 0; i < indent; i++ {
		pad += "  "
	}

	switch n := node.(type) {
	case *ast.Program:
		fmt.Printf("%sProgram (%d var decls, %d statements)\n", pad, len(n.VarDecls), len(n.Statements.Statements))
		for _, d := range n.VarDecls {
			dumpASTNode(d, indent+1)
		}
		for _, stmt := range n.Statements.Statements {
			dumpASTNode(stmt, indent+1)
		}
	case *ast.VarDecl:
		fmt.Printf("%sVarDecl %s\n", pad, n.Name)
		if n.Init != nil {
			dumpASTNode(n.Init, indent+1)
		}
	case *ast.Assign:
		fmt.Printf("%sAssign %s\n", pad, n.Name)
		dumpASTNode(n.Value, indent+1)
	case *ast.ExpressionStatement:
		fmt.Printf("%sExpressionStatement\n", pad)
		dumpASTNode(n.Expr, indent+1)
	case *ast.Print:
		fmt.Printf("%sPrint (%d operands)\n", pad, len(n.Operands))
		for _, op := range n.Operands {
			dumpASTNode(op, indent+1)
		}
	case *ast.Input:
		fmt.Printf("%sInput %s\n", pad, n.Name)
	case *ast.Break:
		fmt.Printf("%sBreak\n", pad)
	case *ast.If:
		fmt.Printf("%sIf\n", pad)
		dumpASTNode(n.Then, indent+1)
		if n.Else != nil {
			dumpASTNode(n.Else, indent+1)
		}
	case *ast.Switch:
		fmt.Printf("%sSwitch (%d cases)\n", pad, len(n.Cases))
		for _, c := range n.Cases {
			dumpASTNode(c.Literal, indent+1)
			dumpASTNode(c.Body, indent+2)
		}
		if n.Default != nil {
			dumpASTNode(n.Default, indent+1)
		}
	case *ast.Loop:
		fmt.Printf("%sLoop %s\n", pad, n.Label)
		dumpASTNode(n.Body, indent+1)
	case *ast.FuncDef:
		fmt.Printf("%sFuncDef %s(%v)\n", pad, n.Name, n.Params)
		dumpASTNode(n.Body, indent+1)
		if n.ReturnExpr != nil {
			dumpASTNode(n.ReturnExpr, indent+1)
		}
	case *ast.FuncCall:
		fmt.Printf("%sFuncCall %s (%d args)\n", pad, n.Name, len(n.Args))
		for _, a := range n.Args {
			dumpASTNode(a, indent+1)
		}
	case *ast.StatementList:
		fmt.Printf("%sStatementList (%d statements)\n", pad, len(n.Statements))
		for _, stmt := range n.Statements {
			dumpASTNode(stmt, indent+1)
		}
	case *ast.ArithBin:
		fmt.Printf("%sArithBin %s\n", pad, n.Op)
		dumpASTNode(n.Left, indent+1)
		dumpASTNode(n.Right, indent+1)
	case *ast.BoolBin:
		fmt.Printf("%sBoolBin %s\n", pad, n.Op)
		dumpASTNode(n.Left, indent+1)
		dumpASTNode(n.Right, indent+1)
	case *ast.BoolUnary:
		fmt.Printf("%sBoolUnary\n", pad)
		dumpASTNode(n.Operand, indent+1)
	case *ast.BoolTernary:
		fmt.Printf("%sBoolTernary %s\n", pad, n.Op)
		for _, op := range n.Operands {
			dumpASTNode(op, indent+1)
		}
	case *ast.Compare:
		fmt.Printf("%sCompare %s\n", pad, n.Op)
		dumpASTNode(n.Left, indent+1)
		dumpASTNode(n.Right, indent+1)
	case *ast.Smoosh:
		fmt.Printf("%sSmoosh\n", pad)
		for _, op := range n.Operands {
			dumpASTNode(op, indent+1)
		}
	case *ast.Typecast:
		fmt.Printf("%sTypecast %s\n", pad, n.TargetType)
		dumpASTNode(n.Source, indent+1)
	case *ast.IntegerLiteral:
		fmt.Printf("%sIntegerLiteral: %d\n", pad, n.Value)
	case *ast.FloatLiteral:
		fmt.Printf("%sFloatLiteral: %g\n", pad, n.Value)
	case *ast.StringLiteral:
		fmt.Printf("%sStringLiteral: %q\n", pad, n.Value)
	case *ast.BoolLiteral:
		fmt.Printf("%sBoolLiteral: %v\n", pad, n.Value)
	case *ast.NoobLiteral:
		fmt.Printf("%sNoobLiteral\n", pad)
	case *ast.VarAccess:
		fmt.Printf("%sVarAccess: %s\n", pad, n.Name)
	default:
		fmt.Printf("%s%T: %v\n", pad, node, node)
	}
}
