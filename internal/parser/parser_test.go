package parser

import (
	"strings"
	"testing"

	"github.com/lolcode-go/lolcode/internal/ast"
	"github.com/lolcode-go/lolcode/internal/lexer"
)

func TestParseProgramMinimal(t *testing.T) {
	prog, err := ParseProgram("HAI\nKTHXBYE\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(prog.Statements.Statements) != 0 {
		t.Errorf("expected no statements, got %d", len(prog.Statements.Statements))
	}
}

func TestParseVarDeclsWithAndWithoutITZ(t *testing.T) {
	src := `HAI
WAZZUP
    I HAS A X
    I HAS A Y ITZ 10
BUHBYE
KTHXBYE
`
	prog, err := ParseProgram(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(prog.VarDecls) != 2 {
		t.Fatalf("expected 2 var decls, got %d", len(prog.VarDecls))
	}
	if prog.VarDecls[0].Name != "X" || prog.VarDecls[0].Init != nil {
		t.Errorf("decl[0] = %+v, want bare X", prog.VarDecls[0])
	}
	if prog.VarDecls[1].Name != "Y" || prog.VarDecls[1].Init == nil {
		t.Errorf("decl[1] = %+v, want Y ITZ 10", prog.VarDecls[1])
	}
}

func TestIdentLeadingStatementDispatch(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		check func(t *testing.T, stmt ast.Statement)
	}{
		{
			name: "assignment",
			src:  "HAI\nX R 5\nKTHXBYE\n",
			check: func(t *testing.T, stmt ast.Statement) {
				assign, ok := stmt.(*ast.Assign)
				if !ok {
					t.Fatalf("expected *ast.Assign, got %T", stmt)
				}
				if assign.Name != "X" {
					t.Errorf("assign.Name = %q, want X", assign.Name)
				}
			},
		},
		{
			name: "bare var access falls back to expression statement",
			src:  "HAI\nX\nKTHXBYE\n",
			check: func(t *testing.T, stmt ast.Statement) {
				exprStmt, ok := stmt.(*ast.ExpressionStatement)
				if !ok {
					t.Fatalf("expected *ast.ExpressionStatement, got %T", stmt)
				}
				if _, ok := exprStmt.Expr.(*ast.VarAccess); !ok {
					t.Fatalf("expected *ast.VarAccess, got %T", exprStmt.Expr)
				}
			},
		},
		{
			name: "IS NOW A desugars into an assignment over a typecast",
			src:  "HAI\nX IS NOW A NUMBR\nKTHXBYE\n",
			check: func(t *testing.T, stmt ast.Statement) {
				assign, ok := stmt.(*ast.Assign)
				if !ok {
					t.Fatalf("expected *ast.Assign, got %T", stmt)
				}
				cast, ok := assign.Value.(*ast.Typecast)
				if !ok {
					t.Fatalf("expected assign.Value to be *ast.Typecast, got %T", assign.Value)
				}
				if cast.TargetType != lexer.NUMBR {
					t.Errorf("cast target = %s, want NUMBR", cast.TargetType)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog, err := ParseProgram(tt.src)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(prog.Statements.Statements) != 1 {
				t.Fatalf("expected 1 statement, got %d", len(prog.Statements.Statements))
			}
			tt.check(t, prog.Statements.Statements[0])
		})
	}
}

func TestPrintMissingDelimiterIsSyntaxError(t *testing.T) {
	_, err := ParseProgram("HAI\nVISIBLE \"A\" \"B\"\nKTHXBYE\n")
	if err == nil {
		t.Fatal("expected a syntax error for two print operands with no + or AN between them")
	}
	if !strings.Contains(err.Error(), "expected delimiter") {
		t.Errorf("error = %q, want it to mention the missing delimiter", err.Error())
	}
}

func TestPrintAcceptsPlusAndANDelimiters(t *testing.T) {
	prog, err := ParseProgram(`HAI
VISIBLE "A" + "B" AN "C"
KTHXBYE
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	print := prog.Statements.Statements[0].(*ast.Print)
	if len(print.Operands) != 3 {
		t.Fatalf("expected 3 operands, got %d", len(print.Operands))
	}
}

func TestLoopLabelMismatchIsSyntaxError(t *testing.T) {
	src := `HAI
WAZZUP
I HAS A X ITZ 0
BUHBYE
IM IN YR LOOP UPPIN YR X WILE DIFFRINT X AN 3
IM OUTTA YR WRONGLABEL
KTHXBYE
`
	_, err := ParseProgram(src)
	if err == nil {
		t.Fatal("expected an error for a mismatched loop label")
	}
	if !strings.Contains(err.Error(), "loop label mismatch") {
		t.Errorf("error = %q, want it to mention the label mismatch", err.Error())
	}
}

func TestSwitchRequiresAtLeastOneCase(t *testing.T) {
	src := `HAI
WTF
OMGWTF
OIC
KTHXBYE
`
	_, err := ParseProgram(src)
	if err == nil {
		t.Fatal("expected an error for a switch with no OMG cases")
	}
}

func TestSwitchCaseLiteralRejectsIdentifier(t *testing.T) {
	src := `HAI
WAZZUP
I HAS A X ITZ 1
BUHBYE
WTF
OMG X
    VISIBLE "won't get here"
OIC
KTHXBYE
`
	_, err := ParseProgram(src)
	if err == nil {
		t.Fatal("expected an error for a switch case value that is an identifier rather than a literal")
	}
}

func TestFuncDefAndCallRoundTrip(t *testing.T) {
	src := `HAI
HOW IZ I ADD YR A AN YR B
    FOUND YR SUM OF A AN B
IF U SAY SO
I IZ ADD YR 2 AN YR 3 MKAY
KTHXBYE
`
	prog, err := ParseProgram(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(prog.Statements.Statements) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(prog.Statements.Statements))
	}
	def, ok := prog.Statements.Statements[0].(*ast.FuncDef)
	if !ok {
		t.Fatalf("expected *ast.FuncDef, got %T", prog.Statements.Statements[0])
	}
	if def.Name != "ADD" || len(def.Params) != 2 {
		t.Errorf("def = %+v, want ADD(A, B)", def)
	}
	call, ok := prog.Statements.Statements[1].(*ast.FuncCall)
	if !ok {
		t.Fatalf("expected *ast.FuncCall, got %T", prog.Statements.Statements[1])
	}
	if call.Name != "ADD" || len(call.Args) != 2 {
		t.Errorf("call = %+v, want ADD(2, 3)", call)
	}
}

func TestNestedFuncCallAsExpressionOperand(t *testing.T) {
	src := `HAI
HOW IZ I DOUBLE YR X
    FOUND YR PRODUKT OF X AN 2
IF U SAY SO
VISIBLE SUM OF 1 AN I IZ DOUBLE YR 2 MKAY
KTHXBYE
`
	prog, err := ParseProgram(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	print := prog.Statements.Statements[1].(*ast.Print)
	arith := print.Operands[0].(*ast.ArithBin)
	if _, ok := arith.Right.(*ast.FuncCall); !ok {
		t.Fatalf("expected the SUM's right operand to be a nested *ast.FuncCall, got %T", arith.Right)
	}
}
