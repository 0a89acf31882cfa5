package ast

import (
	"strings"

	"github.com/lolcode-go/lolcode/internal/lexer"
)

// ArithBin is a prefix arithmetic operator: SUM OF / DIFF OF / PRODUKT OF /
// QUOSHUNT OF / MOD OF / BIGGR OF / SMALLR OF, each of shape `op left AN right`.
type ArithBin struct {
	baseNode
	Op    lexer.TokenType
	Left  Expression
	Right Expression
}

func (n *ArithBin) expressionNode() {}
func (n *ArithBin) String() string {
	return n.Op.String() + " " + n.Left.String() + " AN " + n.Right.String()
}

// BoolBin is BOTH OF / EITHER OF / WON OF, domain Boolean.
type BoolBin struct {
	baseNode
	Op    lexer.TokenType
	Left  Expression
	Right Expression
}

func (n *BoolBin) expressionNode() {}
func (n *BoolBin) String() string {
	return n.Op.String() + " " + n.Left.String() + " AN " + n.Right.String()
}

// BoolUnary is NOT expr.
type BoolUnary struct {
	baseNode
	Operand Expression
}

func (n *BoolUnary) expressionNode() {}
func (n *BoolUnary) String() string  { return "NOT " + n.Operand.String() }

// BoolTernary is ALL OF / ANY OF over one or more AN-separated operands,
// MKAY-terminated.
type BoolTernary struct {
	baseNode
	Op       lexer.TokenType
	Operands []Expression
}

func (n *BoolTernary) expressionNode() {}
func (n *BoolTernary) String() string {
	parts := make([]string, len(n.Operands))
	for i, op := range n.Operands {
		parts[i] = op.String()
	}
	return n.Op.String() + " " + strings.Join(parts, " AN ") + " MKAY"
}

// Compare is BOTH SAEM / DIFFRINT. Right may itself be an ArithBin, which
// is how the chained "BOTH SAEM x AN BIGGR OF x AN y" form composes.
type Compare struct {
	baseNode
	Op    lexer.TokenType
	Left  Expression
	Right Expression
}

func (n *Compare) expressionNode() {}
func (n *Compare) String() string {
	return n.Op.String() + " " + n.Left.String() + " AN " + n.Right.String()
}

// Smoosh concatenates the printable form of each operand.
type Smoosh struct {
	baseNode
	Operands []Expression
}

func (n *Smoosh) expressionNode() {}
func (n *Smoosh) String() string {
	parts := make([]string, len(n.Operands))
	for i, op := range n.Operands {
		parts[i] = op.String()
	}
	return "SMOOSH " + strings.Join(parts, " AN ")
}

// Typecast is MAEK A source type_keyword, and also backs IS NOW A (the
// parser desugars IS_NOW_A into an Assign whose Value is a Typecast over
// a VarAccess of the target variable).
type Typecast struct {
	baseNode
	Source     Expression
	TargetType lexer.TokenType
}

func (n *Typecast) expressionNode() {}
func (n *Typecast) String() string {
	return "MAEK A " + n.Source.String() + " " + n.TargetType.String()
}
