package parser

import (
	"github.com/lolcode-go/lolcode/internal/ast"
	"github.com/lolcode-go/lolcode/internal/errors"
	"github.com/lolcode-go/lolcode/internal/lexer"
)

// parseExpression dispatches:
//
//	expr := literal | arith_bin | str_concat | bool_expr
//	       | bool_ternary | compare | typecast
//
// func_call is accepted here too (as a primary expression) so that nested
// calls can appear as operands, an enrichment over the bare grammar that
// the reference interpreter's evaluator also supports.
func (p *Parser) parseExpression() (ast.Expression, error) {
	switch p.cur().Type {
	case lexer.INTEGER:
		return parseIntegerLiteral(p.advance()), nil
	case lexer.FLOAT:
		return parseFloatLiteral(p.advance()), nil
	case lexer.STRING:
		return parseStringLiteral(p.advance()), nil
	case lexer.BOOL:
		return parseBoolLiteral(p.advance()), nil
	case lexer.NOOB:
		tok := p.advance()
		n := &ast.NoobLiteral{}
		n.Token = tok
		return n, nil
	case lexer.IDENT:
		tok := p.advance()
		n := &ast.VarAccess{Name: tok.Literal}
		n.Token = tok
		return n, nil

	case lexer.SUM_OF, lexer.DIFF_OF, lexer.PRODUKT_OF, lexer.QUOSHUNT_OF,
		lexer.MOD_OF, lexer.BIGGR_OF, lexer.SMALLR_OF:
		return p.parseArithBin()

	case lexer.BOTH_OF, lexer.EITHER_OF, lexer.WON_OF:
		return p.parseBoolBin()
	case lexer.NOT:
		return p.parseBoolUnary()
	case lexer.ALL_OF, lexer.ANY_OF:
		return p.parseBoolTernary()

	case lexer.BOTH_SAEM, lexer.DIFFRINT:
		return p.parseCompare()

	case lexer.SMOOSH:
		return p.parseSmoosh()

	case lexer.MAEK_A:
		return p.parseTypecast()

	case lexer.I_IZ:
		return p.parseFuncCallExpr()

	default:
		return nil, errors.Newf(errors.InvalidSyntax, p.cur(), "unexpected token %s in expression", p.cur().Type)
	}
}

func (p *Parser) parseArithBin() (ast.Expression, error) {
	tok := p.advance()
	left, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.AN); err != nil {
		return nil, err
	}
	right, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	n := &ast.ArithBin{Op: tok.Type, Left: left, Right: right}
	n.Token = tok
	return n, nil
}

func (p *Parser) parseBoolBin() (ast.Expression, error) {
	tok := p.advance()
	left, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.AN); err != nil {
		return nil, err
	}
	right, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	n := &ast.BoolBin{Op: tok.Type, Left: left, Right: right}
	n.Token = tok
	return n, nil
}

func (p *Parser) parseBoolUnary() (ast.Expression, error) {
	tok := p.advance()
	operand, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	n := &ast.BoolUnary{Operand: operand}
	n.Token = tok
	return n, nil
}

func (p *Parser) parseBoolTernary() (ast.Expression, error) {
	tok := p.advance()
	first, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	operands := []ast.Expression{first}
	for p.at(lexer.AN) {
		p.advance()
		operand, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		operands = append(operands, operand)
	}
	if _, err := p.expect(lexer.MKAY); err != nil {
		return nil, err
	}
	n := &ast.BoolTernary{Op: tok.Type, Operands: operands}
	n.Token = tok
	return n, nil
}

func (p *Parser) parseCompare() (ast.Expression, error) {
	tok := p.advance()
	left, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.AN); err != nil {
		return nil, err
	}
	right, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	n := &ast.Compare{Op: tok.Type, Left: left, Right: right}
	n.Token = tok
	return n, nil
}

func (p *Parser) parseSmoosh() (ast.Expression, error) {
	tok := p.advance()
	first, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	operands := []ast.Expression{first}
	for p.at(lexer.AN) {
		p.advance()
		operand, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		operands = append(operands, operand)
	}
	n := &ast.Smoosh{Operands: operands}
	n.Token = tok
	return n, nil
}

func (p *Parser) parseTypecast() (ast.Expression, error) {
	tok := p.advance() // MAEK_A
	source, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	targetTok, err := p.expectTypeKeyword()
	if err != nil {
		return nil, err
	}
	n := &ast.Typecast{Source: source, TargetType: targetTok.Type}
	n.Token = tok
	return n, nil
}
