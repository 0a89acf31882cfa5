// Package interp implements the tree-walking evaluator: the dynamic
// value model with its typecast lattice, the chained environment, and the
// interpreter that drives execution.
package interp

import (
	"fmt"
	"math"
	"regexp"
	"strconv"

	"github.com/lolcode-go/lolcode/internal/ast"
)

// ValueKind tags the runtime variant a Value holds, used for implicit
// cast domain checks and for display.
type ValueKind int

const (
	KindNumber ValueKind = iota
	KindString
	KindBoolean
	KindNoob
	KindFunction
)

func (k ValueKind) String() string {
	switch k {
	case KindNumber:
		return "NUMBR/NUMBAR"
	case KindString:
		return "YARN"
	case KindBoolean:
		return "TROOF"
	case KindNoob:
		return "NOOB"
	case KindFunction:
		return "FUNCTION"
	default:
		return "UNKNOWN"
	}
}

// TypeTag names an explicit cast target, the four type keywords the
// grammar allows after MAEK A / IS NOW A.
type TypeTag int

const (
	TypeNumbr TypeTag = iota // integer
	TypeNumbar                // float
	TypeYarn                  // string
	TypeTroof                 // boolean
)

// Value is the interface every runtime value implements.
type Value interface {
	Kind() ValueKind
	// String is the value's printable form, used by VISIBLE and SMOOSH.
	String() string
	// Cast converts the value to the domain named by target. explicit
	// selects the MAEK A / IS NOW A conversion rules over the narrower
	// implicit rules operators use to align operand types.
	Cast(target TypeTag, explicit bool) (Value, error)
}

// NumberValue holds a signed integer or a double-precision float; IsFloat
// is the witness bit the typecast rules and SMOOSH/VISIBLE rendering key
// on.
type NumberValue struct {
	IsFloat  bool
	IntVal   int64
	FloatVal float64
}

// NewInt builds an integer-variant NumberValue.
func NewInt(v int64) NumberValue { return NumberValue{IntVal: v} }

// NewFloat builds a float-variant NumberValue.
func NewFloat(v float64) NumberValue { return NumberValue{IsFloat: true, FloatVal: v} }

func (n NumberValue) Kind() ValueKind { return KindNumber }

// Float returns the value widened to float64 regardless of variant.
func (n NumberValue) Float() float64 {
	if n.IsFloat {
		return n.FloatVal
	}
	return float64(n.IntVal)
}

// Truthy reports the Number's Boolean cast: x != 0.
func (n NumberValue) Truthy() bool {
	if n.IsFloat {
		return n.FloatVal != 0
	}
	return n.IntVal != 0
}

func (n NumberValue) String() string {
	if !n.IsFloat {
		return strconv.FormatInt(n.IntVal, 10)
	}
	// Truncate (not round) to two decimals: int(x*100)/100.
	truncated := math.Trunc(n.FloatVal*100) / 100
	return strconv.FormatFloat(truncated, 'f', 2, 64)
}

func (n NumberValue) Cast(target TypeTag, explicit bool) (Value, error) {
	switch target {
	case TypeNumbr:
		if n.IsFloat {
			if !explicit {
				return n, nil // same domain (Number); left as float for operators
			}
			return NewInt(int64(n.FloatVal)), nil
		}
		return n, nil
	case TypeNumbar:
		if !n.IsFloat {
			if !explicit {
				return n, nil
			}
			return NewFloat(float64(n.IntVal)), nil
		}
		return n, nil
	case TypeTroof:
		return BooleanValue{Val: n.Truthy()}, nil
	case TypeYarn:
		return StringValue{Val: n.String()}, nil
	default:
		return nil, fmt.Errorf("unknown cast target")
	}
}

// StringValue holds unquoted text.
type StringValue struct {
	Val string
}

func (s StringValue) Kind() ValueKind { return KindString }
func (s StringValue) String() string  { return s.Val }

var integerShape = regexp.MustCompile(`^-?\d+$`)
var floatShape = regexp.MustCompile(`^-?\d*\.\d*$`)

func (s StringValue) Cast(target TypeTag, explicit bool) (Value, error) {
	switch target {
	case TypeNumbr:
		if !integerShape.MatchString(s.Val) {
			return nil, fmt.Errorf("string %q is not integer-shaped", s.Val)
		}
		v, err := strconv.ParseInt(s.Val, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("string %q is not integer-shaped", s.Val)
		}
		return NewInt(v), nil
	case TypeNumbar:
		if !floatShape.MatchString(s.Val) {
			return nil, fmt.Errorf("string %q is not float-shaped", s.Val)
		}
		v, err := strconv.ParseFloat(s.Val, 64)
		if err != nil {
			return nil, fmt.Errorf("string %q is not float-shaped", s.Val)
		}
		return NewFloat(v), nil
	case TypeTroof:
		return BooleanValue{Val: s.Val != ""}, nil
	case TypeYarn:
		return s, nil
	default:
		return nil, fmt.Errorf("unknown cast target")
	}
}

// BooleanValue is WIN (true) / FAIL (false).
type BooleanValue struct {
	Val bool
}

func (b BooleanValue) Kind() ValueKind { return KindBoolean }
func (b BooleanValue) String() string {
	if b.Val {
		return "WIN"
	}
	return "FAIL"
}

func (b BooleanValue) Cast(target TypeTag, explicit bool) (Value, error) {
	switch target {
	case TypeNumbr:
		if b.Val {
			return NewInt(1), nil
		}
		return NewInt(0), nil
	case TypeNumbar:
		if b.Val {
			return NewFloat(1), nil
		}
		return NewFloat(0), nil
	case TypeTroof:
		return b, nil
	case TypeYarn:
		return StringValue{Val: b.String()}, nil
	default:
		return nil, fmt.Errorf("unknown cast target")
	}
}

// NoobValue is the unit value.
type NoobValue struct{}

func (NoobValue) Kind() ValueKind { return KindNoob }
func (NoobValue) String() string  { return "NOOB" }

func (NoobValue) Cast(target TypeTag, explicit bool) (Value, error) {
	switch target {
	case TypeNumbr:
		if !explicit {
			return nil, fmt.Errorf("cannot implicitly cast NOOB to NUMBR")
		}
		return NewInt(0), nil
	case TypeNumbar:
		if !explicit {
			return nil, fmt.Errorf("cannot implicitly cast NOOB to NUMBAR")
		}
		return NewFloat(0), nil
	case TypeTroof:
		return BooleanValue{Val: false}, nil
	case TypeYarn:
		if !explicit {
			return nil, fmt.Errorf("cannot implicitly cast NOOB to YARN")
		}
		return StringValue{Val: ""}, nil
	default:
		return nil, fmt.Errorf("unknown cast target")
	}
}

// FunctionValue holds a name, its parameter names, its body, an optional
// FOUND YR return expression, and the Environment it closed over.
type FunctionValue struct {
	Name       string
	Params     []string
	Body       *ast.StatementList
	ReturnExpr ast.Expression // nil when there is no FOUND YR clause
	Closure    *Environment
}

func (f FunctionValue) Kind() ValueKind { return KindFunction }
func (f FunctionValue) String() string  { return "<function " + f.Name + ">" }

// Cast treats Function as opaque: any cast target succeeds as identity,
// per the conversion table's "Function: treated as opaque" row.
func (f FunctionValue) Cast(target TypeTag, explicit bool) (Value, error) {
	return f, nil
}

// isEqual implements BOTH SAEM's comparison: rhs is cast to lhs's type,
// then compared by value.
func isEqual(lhs, rhs Value) (bool, error) {
	targetKind := lhs.Kind()
	var castRhs Value
	var err error
	switch targetKind {
	case KindNumber:
		lhsNum := lhs.(NumberValue)
		target := TypeNumbr
		if lhsNum.IsFloat {
			target = TypeNumbar
		}
		castRhs, err = rhs.Cast(target, false)
	case KindString:
		castRhs, err = rhs.Cast(TypeYarn, false)
	case KindBoolean:
		castRhs, err = rhs.Cast(TypeTroof, false)
	case KindNoob:
		_, isNoob := rhs.(NoobValue)
		return isNoob, nil
	case KindFunction:
		return lhs == rhs, nil
	default:
		return false, fmt.Errorf("cannot compare value of kind %s", targetKind)
	}
	if err != nil {
		return false, err
	}

	switch lv := lhs.(type) {
	case NumberValue:
		rv := castRhs.(NumberValue)
		return lv.Float() == rv.Float(), nil
	case StringValue:
		return lv.Val == castRhs.(StringValue).Val, nil
	case BooleanValue:
		return lv.Val == castRhs.(BooleanValue).Val, nil
	default:
		return false, fmt.Errorf("cannot compare value of kind %s", targetKind)
	}
}

// printable renders any value the way SMOOSH and multi-operand VISIBLE
// expect: Number, Boolean, Noob contribute their printable form with no
// cast, String contributes itself.
func printable(v Value) string {
	return v.String()
}
