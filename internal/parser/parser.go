// Package parser implements a recursive-descent parser producing an
// internal/ast.Program from a lexer.Lexer's token stream.
package parser

import (
	"strconv"

	"github.com/lolcode-go/lolcode/internal/ast"
	"github.com/lolcode-go/lolcode/internal/errors"
	"github.com/lolcode-go/lolcode/internal/lexer"
)

// Parser consumes a pre-scanned token slice with two-token lookahead and
// backtracking via saved position checkpoints.
type Parser struct {
	tokens []lexer.Token
	pos    int
}

// New tokenizes src completely before parsing begins, so the parser can
// freely checkpoint and rewind its position.
func New(src string) (*Parser, error) {
	lx := lexer.New(src)
	tokens, err := lx.Tokens()
	if err != nil {
		line := 0
		msg := err.Error()
		if lexErr, ok := err.(*lexer.LexError); ok {
			line = lexErr.Line
			msg = lexErr.Message
		}
		return nil, errors.New(errors.InvalidSyntax, lexer.Token{Line: line}, msg)
	}
	return &Parser{tokens: tokens}, nil
}

// NewFromTokens builds a parser over an already-scanned token slice; used
// by pkg/lolcode's Engine, which keeps the same token list for display.
func NewFromTokens(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

func (p *Parser) cur() lexer.Token {
	if p.pos >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1] // EOF
	}
	return p.tokens[p.pos]
}

func (p *Parser) peek() lexer.Token {
	return p.peekAt(1)
}

func (p *Parser) peekAt(n int) lexer.Token {
	idx := p.pos + n
	if idx >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[idx]
}

func (p *Parser) advance() lexer.Token {
	tok := p.cur()
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return tok
}

func (p *Parser) at(tt lexer.TokenType) bool {
	return p.cur().Type == tt
}

// expect advances past the current token if it has type tt, else returns
// a syntax error anchored on the offending token.
func (p *Parser) expect(tt lexer.TokenType) (lexer.Token, error) {
	if !p.at(tt) {
		return lexer.Token{}, errors.Newf(errors.InvalidSyntax, p.cur(),
			"expected %s, found %s", tt, p.cur().Type)
	}
	return p.advance(), nil
}

// mark/reset implement the backtracking checkpoints the statement
// dispatcher uses to try assignment before falling back to a bare
// expression statement.
func (p *Parser) mark() int       { return p.pos }
func (p *Parser) reset(mark int)  { p.pos = mark }

// ParseProgram parses `HAI (WAZZUP var_decls BUHBYE)? stmts KTHXBYE`.
func ParseProgram(src string) (*ast.Program, error) {
	p, err := New(src)
	if err != nil {
		return nil, err
	}
	return p.Parse()
}

// Parse runs the top-level program production over the parser's token
// stream.
func (p *Parser) Parse() (*ast.Program, error) {
	hai, err := p.expect(lexer.HAI)
	if err != nil {
		return nil, err
	}

	prog := &ast.Program{}
	prog.Token = hai

	var varDecls []*ast.VarDecl
	if p.at(lexer.WAZZUP) {
		p.advance()
		varDecls, err = p.parseVarDecls()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.BUHBYE); err != nil {
			return nil, err
		}
	}
	prog.VarDecls = varDecls

	stmts, err := p.parseStatements(lexer.KTHXBYE)
	if err != nil {
		return nil, err
	}
	prog.Statements = stmts

	if _, err := p.expect(lexer.KTHXBYE); err != nil {
		return nil, err
	}
	return prog, nil
}

func (p *Parser) parseVarDecls() ([]*ast.VarDecl, error) {
	var decls []*ast.VarDecl
	for p.at(lexer.I_HAS_A) {
		tok := p.advance()
		name, err := p.expect(lexer.IDENT)
		if err != nil {
			return nil, err
		}
		decl := &ast.VarDecl{Name: name.Literal}
		decl.Token = tok
		if p.at(lexer.ITZ) {
			p.advance()
			init, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			decl.Init = init
		}
		decls = append(decls, decl)
	}
	return decls, nil
}

// stopSet reports whether tt is one of the tokens that legitimately ends a
// statement list at the caller's nesting level.
func stopSet(tt lexer.TokenType, enders []lexer.TokenType) bool {
	for _, e := range enders {
		if tt == e {
			return true
		}
	}
	return false
}

// parseStatements parses stmt* until the current token is EOF or one of
// enders, without consuming the ending token.
func (p *Parser) parseStatements(enders ...lexer.TokenType) (*ast.StatementList, error) {
	list := &ast.StatementList{}
	list.Token = p.cur()
	for !p.at(lexer.EOF) && !stopSet(p.cur().Type, enders) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		list.Statements = append(list.Statements, stmt)
	}
	return list, nil
}

// parseStatement dispatches stmt := assign | expr | print | switch | if
// | loop | func_def | func_call | input | break.
func (p *Parser) parseStatement() (ast.Statement, error) {
	switch p.cur().Type {
	case lexer.VISIBLE:
		return p.parsePrint()
	case lexer.GIMMEH:
		return p.parseInput()
	case lexer.GTFO:
		tok := p.advance()
		brk := &ast.Break{}
		brk.Token = tok
		return brk, nil
	case lexer.O_RLY:
		return p.parseIf()
	case lexer.WTF:
		return p.parseSwitch()
	case lexer.IM_IN_YR:
		return p.parseLoop()
	case lexer.HOW_IZ_I:
		return p.parseFuncDef()
	case lexer.I_IZ:
		return p.parseFuncCall()
	case lexer.IDENT:
		return p.parseIdentLeadingStatement()
	default:
		startTok := p.cur()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		stmt := &ast.ExpressionStatement{Expr: expr}
		stmt.Token = startTok
		return stmt, nil
	}
}

// parseIdentLeadingStatement tries assignment first, since assignment
// begins with an identifier that also begins an expression (VarAccess);
// on failure it restores position and treats the identifier as a bare
// VarAccess expression statement.
func (p *Parser) parseIdentLeadingStatement() (ast.Statement, error) {
	start := p.mark()
	nameTok := p.advance() // IDENT

	switch p.cur().Type {
	case lexer.R:
		p.advance()
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		assign := &ast.Assign{Name: nameTok.Literal, Value: value}
		assign.Token = nameTok
		return assign, nil
	case lexer.IS_NOW_A:
		p.advance()
		targetTok, err := p.expectTypeKeyword()
		if err != nil {
			return nil, err
		}
		varRef := &ast.VarAccess{Name: nameTok.Literal}
		varRef.Token = nameTok
		cast := &ast.Typecast{Source: varRef, TargetType: targetTok.Type}
		cast.Token = targetTok
		assign := &ast.Assign{Name: nameTok.Literal, Value: cast}
		assign.Token = nameTok
		return assign, nil
	default:
		p.reset(start)
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		stmt := &ast.ExpressionStatement{Expr: expr}
		stmt.Token = nameTok
		return stmt, nil
	}
}

func (p *Parser) expectTypeKeyword() (lexer.Token, error) {
	switch p.cur().Type {
	case lexer.NUMBR, lexer.NUMBAR, lexer.YARN, lexer.TROOF:
		return p.advance(), nil
	default:
		return lexer.Token{}, errors.Newf(errors.InvalidSyntax, p.cur(),
			"expected a type keyword (NUMBR, NUMBAR, YARN, TROOF), found %s", p.cur().Type)
	}
}

func (p *Parser) parsePrint() (ast.Statement, error) {
	tok := p.advance() // VISIBLE
	operands := []ast.Expression{}
	first, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	operands = append(operands, first)
	lastLine := first.Line()

	for p.at(lexer.PLUS) || p.at(lexer.AN) {
		p.advance()
		operand, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		operands = append(operands, operand)
		lastLine = operand.Line()
	}

	// If the next token sits on the same source line as the operand we
	// just consumed and isn't a delimiter, that's a missing `+`/`AN`
	// between two statements crammed onto one line.
	if p.cur().Line == lastLine && !p.at(lexer.KTHXBYE) && !p.at(lexer.EOF) &&
		!stopSet(p.cur().Type, allBlockEnders) {
		return nil, errors.Newf(errors.InvalidSyntax, p.cur(), "expected delimiter")
	}

	stmt := &ast.Print{Operands: operands}
	stmt.Token = tok
	return stmt, nil
}

// allBlockEnders lists every token that may legitimately follow a print
// statement's last operand without being mistaken for a missing delimiter.
var allBlockEnders = []lexer.TokenType{
	lexer.KTHXBYE, lexer.BUHBYE, lexer.OIC, lexer.NO_WAI, lexer.YA_RLY,
	lexer.OMG, lexer.OMGWTF, lexer.IM_OUTTA_YR, lexer.IF_U_SAY_SO,
	lexer.FOUND_YR, lexer.GTFO,
}

func (p *Parser) parseInput() (ast.Statement, error) {
	tok := p.advance() // GIMMEH
	name, err := p.expect(lexer.IDENT)
	if err != nil {
		return nil, err
	}
	stmt := &ast.Input{Name: name.Literal}
	stmt.Token = tok
	return stmt, nil
}

// parseIntegerLiteral and friends convert an already-validated lexeme; the
// lexer guarantees the shape, so strconv errors here would be a lexer bug.
func parseIntegerLiteral(tok lexer.Token) *ast.IntegerLiteral {
	v, _ := strconv.ParseInt(tok.Literal, 10, 64)
	n := &ast.IntegerLiteral{Value: v}
	n.Token = tok
	return n
}

func parseFloatLiteral(tok lexer.Token) *ast.FloatLiteral {
	v, _ := strconv.ParseFloat(tok.Literal, 64)
	n := &ast.FloatLiteral{Value: v}
	n.Token = tok
	return n
}

func parseStringLiteral(tok lexer.Token) *ast.StringLiteral {
	// Strip the surrounding quotes the lexer retained in the lexeme.
	raw := tok.Literal
	if len(raw) >= 2 {
		raw = raw[1 : len(raw)-1]
	}
	n := &ast.StringLiteral{Value: raw}
	n.Token = tok
	return n
}

func parseBoolLiteral(tok lexer.Token) *ast.BoolLiteral {
	n := &ast.BoolLiteral{Value: tok.Literal == "WIN"}
	n.Token = tok
	return n
}
