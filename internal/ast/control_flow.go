package ast

import "github.com/lolcode-go/lolcode/internal/lexer"

// If is `O RLY? YA RLY stmt* (NO WAI stmt*)? OIC`. It branches on the
// current IT, not on an explicit condition expression.
type If struct {
	baseNode
	Then *StatementList
	Else *StatementList // nil when there is no NO WAI clause
}

func (n *If) statementNode() {}
func (n *If) String() string {
	s := "O RLY?\nYA RLY\n" + n.Then.String()
	if n.Else != nil {
		s += "NO WAI\n" + n.Else.String()
	}
	return s + "OIC"
}

// SwitchCase is one `OMG literal stmt*` arm.
type SwitchCase struct {
	baseNode
	Literal Expression
	Body    *StatementList
}

func (n *SwitchCase) String() string {
	return "OMG " + n.Literal.String() + "\n" + n.Body.String()
}

// Switch is `WTF (OMG literal stmt*)+ OMGWTF stmt* OIC`, selecting on IT.
type Switch struct {
	baseNode
	Cases   []*SwitchCase
	Default *StatementList // nil when there is no OMGWTF block
}

func (n *Switch) statementNode() {}
func (n *Switch) String() string {
	s := "WTF?\n"
	for _, c := range n.Cases {
		s += c.String()
	}
	if n.Default != nil {
		s += "OMGWTF\n" + n.Default.String()
	}
	return s + "OIC"
}

// Loop is `IM IN YR label (UPPIN|NERFIN) YR var ((TIL|WILE) expr)? stmt*
// IM OUTTA YR label`.
type Loop struct {
	baseNode
	Label   string
	StepOp  lexer.TokenType // UPPIN or NERFIN
	StepVar string
	CondOp  lexer.TokenType // TIL, WILE, or ILLEGAL when absent
	Cond    Expression      // nil when CondOp is ILLEGAL
	Body    *StatementList
}

func (n *Loop) statementNode() {}
func (n *Loop) String() string {
	s := "IM IN YR " + n.Label + " " + n.StepOp.String() + " YR " + n.StepVar
	if n.Cond != nil {
		s += " " + n.CondOp.String() + " " + n.Cond.String()
	}
	return s + "\n" + n.Body.String() + "IM OUTTA YR " + n.Label
}
