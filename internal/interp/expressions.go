package interp

import (
	"fmt"

	"github.com/lolcode-go/lolcode/internal/ast"
	"github.com/lolcode-go/lolcode/internal/lexer"
)

func (in *Interpreter) evalExpression(expr ast.Expression, env *Environment) (Value, error) {
	switch n := expr.(type) {
	case *ast.IntegerLiteral:
		return NewInt(n.Value), nil
	case *ast.FloatLiteral:
		return NewFloat(n.Value), nil
	case *ast.StringLiteral:
		return StringValue{Val: n.Value}, nil
	case *ast.BoolLiteral:
		return BooleanValue{Val: n.Value}, nil
	case *ast.NoobLiteral:
		return NoobValue{}, nil

	case *ast.VarAccess:
		val, ok := env.Get(n.Name)
		if !ok {
			return nil, wrapRuntime(n, fmt.Errorf("undefined identifier %q", n.Name))
		}
		return val, nil

	case *ast.ArithBin:
		return in.evalArithBin(n, env)
	case *ast.BoolBin:
		return in.evalBoolBin(n, env)
	case *ast.BoolUnary:
		return in.evalBoolUnary(n, env)
	case *ast.BoolTernary:
		return in.evalBoolTernary(n, env)
	case *ast.Compare:
		return in.evalCompare(n, env)
	case *ast.Smoosh:
		return in.evalSmoosh(n, env)
	case *ast.Typecast:
		return in.evalTypecast(n, env)
	case *ast.FuncCall:
		return in.evalFuncCall(n, env)

	default:
		return nil, wrapRuntime(expr, fmt.Errorf("unhandled expression type %T", expr))
	}
}

var arithOpNames = map[lexer.TokenType]string{
	lexer.SUM_OF:      "SUM",
	lexer.DIFF_OF:     "DIFF",
	lexer.PRODUKT_OF:  "PRODUKT",
	lexer.QUOSHUNT_OF: "QUOSHUNT",
	lexer.MOD_OF:      "MOD",
	lexer.BIGGR_OF:    "BIGGR",
	lexer.SMALLR_OF:   "SMALLR",
}

func (in *Interpreter) evalArithBin(n *ast.ArithBin, env *Environment) (Value, error) {
	lhs, err := in.evalExpression(n.Left, env)
	if err != nil {
		return nil, err
	}
	rhs, err := in.evalExpression(n.Right, env)
	if err != nil {
		return nil, err
	}
	lNum, err := toNumber(lhs)
	if err != nil {
		return nil, wrapRuntime(n.Left, err)
	}
	rNum, err := toNumber(rhs)
	if err != nil {
		return nil, wrapRuntime(n.Right, err)
	}
	result, err := arithResult(arithOpNames[n.Op], lNum, rNum)
	if err != nil {
		return nil, wrapRuntime(n.Right, err)
	}
	return result, nil
}

var boolOpNames = map[lexer.TokenType]string{
	lexer.BOTH_OF:   "BOTH",
	lexer.EITHER_OF: "EITHER",
	lexer.WON_OF:    "WON",
}

func (in *Interpreter) evalBoolBin(n *ast.BoolBin, env *Environment) (Value, error) {
	lhs, err := in.evalExpression(n.Left, env)
	if err != nil {
		return nil, err
	}
	rhs, err := in.evalExpression(n.Right, env)
	if err != nil {
		return nil, err
	}
	lBool, err := toBoolean(lhs)
	if err != nil {
		return nil, wrapRuntime(n.Left, err)
	}
	rBool, err := toBoolean(rhs)
	if err != nil {
		return nil, wrapRuntime(n.Right, err)
	}
	return boolResult(boolOpNames[n.Op], lBool, rBool)
}

func (in *Interpreter) evalBoolUnary(n *ast.BoolUnary, env *Environment) (Value, error) {
	val, err := in.evalExpression(n.Operand, env)
	if err != nil {
		return nil, err
	}
	b, err := toBoolean(val)
	if err != nil {
		return nil, wrapRuntime(n.Operand, err)
	}
	return BooleanValue{Val: !b.Val}, nil
}

func (in *Interpreter) evalBoolTernary(n *ast.BoolTernary, env *Environment) (Value, error) {
	result := n.Op == lexer.ALL_OF // ALL OF starts true (AND-identity); ANY OF starts false (OR-identity)
	for _, operand := range n.Operands {
		val, err := in.evalExpression(operand, env)
		if err != nil {
			return nil, err
		}
		b, err := toBoolean(val)
		if err != nil {
			return nil, wrapRuntime(operand, err)
		}
		if n.Op == lexer.ALL_OF {
			result = result && b.Val
		} else {
			result = result || b.Val
		}
	}
	return BooleanValue{Val: result}, nil
}

func (in *Interpreter) evalCompare(n *ast.Compare, env *Environment) (Value, error) {
	lhs, err := in.evalExpression(n.Left, env)
	if err != nil {
		return nil, err
	}
	rhs, err := in.evalExpression(n.Right, env)
	if err != nil {
		return nil, err
	}
	eq, err := isEqual(lhs, rhs)
	if err != nil {
		return nil, wrapRuntime(n, err)
	}
	if n.Op == lexer.DIFFRINT {
		return BooleanValue{Val: !eq}, nil
	}
	return BooleanValue{Val: eq}, nil
}

func (in *Interpreter) evalSmoosh(n *ast.Smoosh, env *Environment) (Value, error) {
	var sb []byte
	for _, operand := range n.Operands {
		val, err := in.evalExpression(operand, env)
		if err != nil {
			return nil, err
		}
		sb = append(sb, printable(val)...)
	}
	return StringValue{Val: string(sb)}, nil
}

var typeTagByToken = map[lexer.TokenType]TypeTag{
	lexer.NUMBR:  TypeNumbr,
	lexer.NUMBAR: TypeNumbar,
	lexer.YARN:   TypeYarn,
	lexer.TROOF:  TypeTroof,
}

func (in *Interpreter) evalTypecast(n *ast.Typecast, env *Environment) (Value, error) {
	val, err := in.evalExpression(n.Source, env)
	if err != nil {
		return nil, err
	}
	target, ok := typeTagByToken[n.TargetType]
	if !ok {
		return nil, wrapRuntime(n, fmt.Errorf("invalid cast target %s", n.TargetType))
	}
	result, err := val.Cast(target, true)
	if err != nil {
		return nil, wrapRuntime(n, err)
	}
	return result, nil
}
