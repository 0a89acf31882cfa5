package ast

import "strings"

// FuncDef is `HOW IZ I name (YR param (AN YR param)*)? stmt* (FOUND YR
// expr)? IF U SAY SO`.
type FuncDef struct {
	baseNode
	Name       string
	Params     []string
	Body       *StatementList
	ReturnExpr Expression // nil when there is no FOUND YR clause
}

func (n *FuncDef) statementNode() {}
func (n *FuncDef) String() string {
	s := "HOW IZ I " + n.Name
	if len(n.Params) > 0 {
		s += " YR " + strings.Join(n.Params, " AN YR ")
	}
	s += "\n" + n.Body.String()
	if n.ReturnExpr != nil {
		s += "FOUND YR " + n.ReturnExpr.String() + "\n"
	}
	return s + "IF U SAY SO"
}
