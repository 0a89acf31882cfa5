package interp

import (
	"fmt"
	"math"
)

// toNumber implicitly casts v into the Number domain, the "domain Number"
// coercion every arithmetic operator applies to its operands.
func toNumber(v Value) (NumberValue, error) {
	if n, ok := v.(NumberValue); ok {
		return n, nil
	}
	if casted, err := v.Cast(TypeNumbr, false); err == nil {
		if n, ok := casted.(NumberValue); ok {
			return n, nil
		}
	}
	if casted, err := v.Cast(TypeNumbar, false); err == nil {
		if n, ok := casted.(NumberValue); ok {
			return n, nil
		}
	}
	return NumberValue{}, fmt.Errorf("cannot cast %s to a Number", v.Kind())
}

// toBoolean implicitly casts v into the Boolean domain, the coercion
// boolean operators, if/switch selectors, and loop conditions apply.
func toBoolean(v Value) (BooleanValue, error) {
	casted, err := v.Cast(TypeTroof, false)
	if err != nil {
		return BooleanValue{}, err
	}
	b, ok := casted.(BooleanValue)
	if !ok {
		return BooleanValue{}, fmt.Errorf("cannot cast %s to TROOF", v.Kind())
	}
	return b, nil
}

// arithResult computes op over two already-Number operands. SUM, DIFF,
// PRODUKT and MOD promote to float if either operand is float-variant;
// QUOSHUNT always returns a float; BIGGR and SMALLR return the chosen
// operand unchanged.
func arithResult(op string, lhs, rhs NumberValue) (Value, error) {
	floatOp := lhs.IsFloat || rhs.IsFloat
	l, r := lhs.Float(), rhs.Float()

	switch op {
	case "SUM":
		if floatOp {
			return NewFloat(l + r), nil
		}
		return NewInt(lhs.IntVal + rhs.IntVal), nil
	case "DIFF":
		if floatOp {
			return NewFloat(l - r), nil
		}
		return NewInt(lhs.IntVal - rhs.IntVal), nil
	case "PRODUKT":
		if floatOp {
			return NewFloat(l * r), nil
		}
		return NewInt(lhs.IntVal * rhs.IntVal), nil
	case "QUOSHUNT":
		if r == 0 {
			return nil, fmt.Errorf("Division by Zero")
		}
		return NewFloat(l / r), nil
	case "MOD":
		if r == 0 {
			return nil, fmt.Errorf("Division by Zero")
		}
		if floatOp {
			return NewFloat(fmodFloat(l, r)), nil
		}
		return NewInt(floorModInt(lhs.IntVal, rhs.IntVal)), nil
	case "BIGGR":
		if l >= r {
			return lhs, nil
		}
		return rhs, nil
	case "SMALLR":
		if l <= r {
			return lhs, nil
		}
		return rhs, nil
	default:
		return nil, fmt.Errorf("unknown arithmetic operator %s", op)
	}
}

// fmodFloat computes l % r with Python's floor/divisor-sign convention:
// the result always takes the sign of r.
func fmodFloat(l, r float64) float64 {
	m := math.Mod(l, r)
	if m != 0 && (m < 0) != (r < 0) {
		m += r
	}
	return m
}

// floorModInt computes l % r with Python's floor/divisor-sign convention:
// the result always takes the sign of r.
func floorModInt(l, r int64) int64 {
	m := l % r
	if m != 0 && (m < 0) != (r < 0) {
		m += r
	}
	return m
}

// boolResult computes op over two already-Boolean operands.
func boolResult(op string, lhs, rhs BooleanValue) (Value, error) {
	switch op {
	case "BOTH":
		return BooleanValue{Val: lhs.Val && rhs.Val}, nil
	case "EITHER":
		return BooleanValue{Val: lhs.Val || rhs.Val}, nil
	case "WON":
		return BooleanValue{Val: lhs.Val != rhs.Val}, nil
	default:
		return nil, fmt.Errorf("unknown boolean operator %s", op)
	}
}
