// Package ast defines the node types produced by the parser and walked by
// the interpreter: one struct per syntactic form, carrying only the
// children and originating tokens needed for line-accurate diagnostics.
package ast

import (
	"strings"

	"github.com/lolcode-go/lolcode/internal/lexer"
)

// Node is the root interface implemented by every AST node.
type Node interface {
	TokenLiteral() string
	String() string
	Line() int
}

// Expression is a Node that produces a value when evaluated.
type Expression interface {
	Node
	expressionNode()
}

// Statement is a Node executed for effect (it may also produce a value
// that rebinds IT; see the interpreter's statement-list semantics).
type Statement interface {
	Node
	statementNode()
}

type baseNode struct {
	Token lexer.Token
}

func (b baseNode) TokenLiteral() string { return b.Token.Literal }
func (b baseNode) Line() int            { return b.Token.Line }

// Program is the root node: HAI, an optional WAZZUP var-decl block, the
// statement list, and KTHXBYE.
type Program struct {
	baseNode
	VarDecls   []*VarDecl
	Statements *StatementList
}

func (p *Program) String() string {
	var sb strings.Builder
	sb.WriteString("HAI\n")
	if len(p.VarDecls) > 0 {
		sb.WriteString("WAZZUP\n")
		for _, vd := range p.VarDecls {
			sb.WriteString(vd.String())
			sb.WriteString("\n")
		}
		sb.WriteString("BUHBYE\n")
	}
	sb.WriteString(p.Statements.String())
	sb.WriteString("KTHXBYE\n")
	return sb.String()
}

// StatementList is a flat sequence of statements, used as the body of a
// program, if-branch, switch-case, loop, or function.
type StatementList struct {
	baseNode
	Statements []Statement
}

func (s *StatementList) statementNode() {}
func (s *StatementList) String() string {
	var sb strings.Builder
	for _, stmt := range s.Statements {
		sb.WriteString(stmt.String())
		sb.WriteString("\n")
	}
	return sb.String()
}

// VarDecl is one entry of a WAZZUP block: I HAS A name (ITZ expr)?.
type VarDecl struct {
	baseNode
	Name string
	Init Expression // nil when no ITZ clause
}

func (v *VarDecl) statementNode() {}
func (v *VarDecl) String() string {
	if v.Init == nil {
		return "I HAS A " + v.Name
	}
	return "I HAS A " + v.Name + " ITZ " + v.Init.String()
}

// IntegerLiteral is a NUMBR literal value.
type IntegerLiteral struct {
	baseNode
	Value int64
}

func (n *IntegerLiteral) expressionNode() {}
func (n *IntegerLiteral) String() string  { return n.Token.Literal }

// FloatLiteral is a NUMBAR literal value.
type FloatLiteral struct {
	baseNode
	Value float64
}

func (n *FloatLiteral) expressionNode() {}
func (n *FloatLiteral) String() string  { return n.Token.Literal }

// StringLiteral is a YARN literal value; Value has quotes stripped.
type StringLiteral struct {
	baseNode
	Value string
}

func (n *StringLiteral) expressionNode() {}
func (n *StringLiteral) String() string  { return n.Token.Literal }

// BoolLiteral is a WIN/FAIL literal.
type BoolLiteral struct {
	baseNode
	Value bool
}

func (n *BoolLiteral) expressionNode() {}
func (n *BoolLiteral) String() string  { return n.Token.Literal }

// NoobLiteral is the bare NOOB literal.
type NoobLiteral struct {
	baseNode
}

func (n *NoobLiteral) expressionNode() {}
func (n *NoobLiteral) String() string  { return "NOOB" }

// VarAccess is a bare identifier used as an expression; evaluating it
// rebinds IT the same way any other top-level expression statement does.
type VarAccess struct {
	baseNode
	Name string
}

func (n *VarAccess) expressionNode() {}
func (n *VarAccess) String() string  { return n.Name }
