package interp

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lolcode-go/lolcode/internal/ast"
	interperr "github.com/lolcode-go/lolcode/internal/errors"
	"github.com/lolcode-go/lolcode/internal/lexer"
)

// breakSignal is the sentinel the GTFO statement raises. It travels
// through the same (Value, error) channel as a genuine RuntimeError but
// is never wrapped into one: the loop/switch/function evaluators that
// catch it are the only code that ever sees it, so it can never be
// conflated with a legitimate evaluation result or surfaced to the
// embedding layer.
type breakSignal struct{}

func (breakSignal) Error() string { return "GTFO outside of a loop or switch" }

func isBreak(err error) bool {
	_, ok := err.(breakSignal)
	return ok
}

// InputProvider supplies the text for a GIMMEH statement: the default
// reads one line from standard input, but a GUI frontend may inject a
// modal-prompt callback instead.
type InputProvider func() (string, error)

// Interpreter walks a *ast.Program, evaluating it against a root
// Environment and an injected print sink / input provider.
type Interpreter struct {
	root   *Environment
	output io.Writer
	input  InputProvider
}

// New constructs an Interpreter. output has no default here and must be
// non-nil (the standard-output default lives in pkg/lolcode). A nil input
// falls back to reading one line from standard input.
func New(output io.Writer, input InputProvider) *Interpreter {
	root := NewEnvironment()
	root.Define("IT", NoobValue{})
	if input == nil {
		reader := bufio.NewReader(os.Stdin)
		input = func() (string, error) {
			line, err := reader.ReadString('\n')
			return strings.TrimRight(line, "\r\n"), err
		}
	}
	return &Interpreter{root: root, output: output, input: input}
}

// Environment exposes the root symbol table for frontend display.
func (in *Interpreter) Environment() *Environment { return in.root }

// Run executes a parsed program to completion.
func (in *Interpreter) Run(prog *ast.Program) error {
	for _, decl := range prog.VarDecls {
		var val Value = NoobValue{}
		if decl.Init != nil {
			v, err := in.evalExpression(decl.Init, in.root)
			if err != nil {
				return err
			}
			val = v
		}
		in.root.Define(decl.Name, val)
	}

	_, err := in.evalStatementList(prog.Statements, in.root)
	if err != nil {
		if isBreak(err) {
			return interperr.New(interperr.RuntimeError, lexer.Token{Literal: "GTFO", Line: prog.Line()},
				"GTFO used outside of a loop or switch")
		}
		return err
	}
	return nil
}

// wrapRuntime tags a plain error raised by a value-model helper with the
// node whose evaluation triggered it, unless it is already a CoreError or
// the Break sentinel.
func wrapRuntime(node ast.Node, err error) error {
	if err == nil {
		return nil
	}
	if isBreak(err) {
		return err
	}
	if _, ok := err.(*interperr.CoreError); ok {
		return err
	}
	tok := lexer.Token{Literal: node.TokenLiteral(), Line: node.Line()}
	return interperr.New(interperr.RuntimeError, tok, err.Error())
}

// evalStatementList runs each statement in order; after each one that
// produces a value, IT is rebound in env — the same context the
// statement ran in, not necessarily the root table (a function body
// rebinds its own child context's IT, leaving the caller's IT alone).
func (in *Interpreter) evalStatementList(list *ast.StatementList, env *Environment) (Value, error) {
	var last Value
	for _, stmt := range list.Statements {
		val, err := in.evalStatement(stmt, env)
		if err != nil {
			return nil, err
		}
		if val != nil {
			env.Set("IT", val)
			last = val
		}
	}
	return last, nil
}

func (in *Interpreter) evalStatement(stmt ast.Statement, env *Environment) (Value, error) {
	switch n := stmt.(type) {
	case *ast.ExpressionStatement:
		return in.evalExpression(n.Expr, env)

	case *ast.Assign:
		val, err := in.evalExpression(n.Value, env)
		if err != nil {
			return nil, err
		}
		env.Set(n.Name, val)
		return val, nil

	case *ast.Print:
		for _, operand := range n.Operands {
			val, err := in.evalExpression(operand, env)
			if err != nil {
				return nil, err
			}
			fmt.Fprint(in.output, printable(val))
		}
		fmt.Fprintln(in.output)
		return nil, nil

	case *ast.Input:
		if _, ok := env.Get(n.Name); !ok {
			return nil, wrapRuntime(n, fmt.Errorf("GIMMEH into undeclared variable %q", n.Name))
		}
		text, err := in.input()
		if err != nil && err != io.EOF {
			return nil, wrapRuntime(n, err)
		}
		env.Set(n.Name, StringValue{Val: " " + text + " "})
		return nil, nil

	case *ast.Break:
		return nil, breakSignal{}

	case *ast.If:
		return in.evalIf(n, env)

	case *ast.Switch:
		return in.evalSwitch(n, env)

	case *ast.Loop:
		return in.evalLoop(n, env)

	case *ast.FuncDef:
		fn := FunctionValue{
			Name:       n.Name,
			Params:     n.Params,
			Body:       n.Body,
			ReturnExpr: n.ReturnExpr,
			Closure:    env,
		}
		env.Define(n.Name, fn)
		return nil, nil

	case *ast.FuncCall:
		return in.evalFuncCall(n, env)

	default:
		return nil, wrapRuntime(stmt, fmt.Errorf("unhandled statement type %T", stmt))
	}
}

func (in *Interpreter) evalIf(n *ast.If, env *Environment) (Value, error) {
	itVal, ok := env.Get("IT")
	if !ok {
		itVal = NoobValue{}
	}
	cond, err := toBoolean(itVal)
	if err != nil {
		return nil, wrapRuntime(n, err)
	}
	if cond.Val {
		_, err := in.evalStatementList(n.Then, env)
		return nil, err
	}
	if n.Else != nil {
		_, err := in.evalStatementList(n.Else, env)
		return nil, err
	}
	return nil, nil
}

func (in *Interpreter) evalSwitch(n *ast.Switch, env *Environment) (Value, error) {
	selector, ok := env.Get("IT")
	if !ok {
		selector = NoobValue{}
	}
	for _, c := range n.Cases {
		caseVal, err := in.evalExpression(c.Literal, env)
		if err != nil {
			return nil, err
		}
		eq, err := isEqual(selector, caseVal)
		if err != nil {
			return nil, wrapRuntime(c, err)
		}
		if !eq {
			continue
		}
		_, err = in.evalStatementList(c.Body, env)
		if err != nil && !isBreak(err) {
			return nil, err
		}
		// Matched case terminates the switch whether or not it ran into
		// an explicit GTFO; there is no fallthrough into later cases.
		return nil, nil
	}
	if n.Default != nil {
		_, err := in.evalStatementList(n.Default, env)
		if err != nil && !isBreak(err) {
			return nil, err
		}
	}
	return nil, nil
}

func (in *Interpreter) evalLoop(n *ast.Loop, env *Environment) (Value, error) {
	for {
		if n.Cond != nil {
			condVal, err := in.evalExpression(n.Cond, env)
			if err != nil {
				return nil, err
			}
			b, err := toBoolean(condVal)
			if err != nil {
				return nil, wrapRuntime(n, err)
			}
			if n.CondOp == lexer.TIL && b.Val {
				break
			}
			if n.CondOp == lexer.WILE && !b.Val {
				break
			}
		}

		_, err := in.evalStatementList(n.Body, env)
		if err != nil {
			if isBreak(err) {
				break
			}
			return nil, err
		}

		cur, ok := env.Get(n.StepVar)
		if !ok {
			return nil, wrapRuntime(n, fmt.Errorf("undeclared loop variable %q", n.StepVar))
		}
		curNum, err := toNumber(cur)
		if err != nil {
			return nil, wrapRuntime(n, err)
		}
		var next Value
		switch n.StepOp {
		case lexer.UPPIN:
			next = NewInt(int64(curNum.Float()) + 1)
		case lexer.NERFIN:
			next = NewInt(int64(curNum.Float()) - 1)
		}
		env.Set(n.StepVar, next)
	}
	return nil, nil
}

func (in *Interpreter) evalFuncCall(n *ast.FuncCall, env *Environment) (Value, error) {
	callee, ok := env.Get(n.Name)
	if !ok {
		return nil, wrapRuntime(n, fmt.Errorf("undefined function %q", n.Name))
	}
	fn, ok := callee.(FunctionValue)
	if !ok {
		return nil, wrapRuntime(n, fmt.Errorf("%q is not callable", n.Name))
	}
	if len(n.Args) != len(fn.Params) {
		return nil, wrapRuntime(n, fmt.Errorf("%q expects %d argument(s), got %d", n.Name, len(fn.Params), len(n.Args)))
	}

	args := make([]Value, len(n.Args))
	for i, argExpr := range n.Args {
		val, err := in.evalExpression(argExpr, env)
		if err != nil {
			return nil, err
		}
		args[i] = val
	}

	callEnv := NewChildEnvironment(fn.Closure)
	for i, param := range fn.Params {
		callEnv.Define(param, args[i])
	}

	_, err := in.evalStatementList(fn.Body, callEnv)
	if err != nil {
		if isBreak(err) {
			return NoobValue{}, nil
		}
		return nil, err
	}

	if fn.ReturnExpr != nil {
		return in.evalExpression(fn.ReturnExpr, callEnv)
	}
	return NoobValue{}, nil
}
