package parser

import (
	"github.com/lolcode-go/lolcode/internal/ast"
	"github.com/lolcode-go/lolcode/internal/lexer"
)

// parseFuncDef parses `HOW IZ I name (YR param (AN YR param)*)? stmt*
// (FOUND YR expr)? IF U SAY SO`.
func (p *Parser) parseFuncDef() (ast.Statement, error) {
	tok := p.advance() // HOW IZ I
	name, err := p.expect(lexer.IDENT)
	if err != nil {
		return nil, err
	}

	var params []string
	if p.at(lexer.YR) {
		p.advance()
		first, err := p.expect(lexer.IDENT)
		if err != nil {
			return nil, err
		}
		params = append(params, first.Literal)
		for p.at(lexer.AN_YR) {
			p.advance()
			param, err := p.expect(lexer.IDENT)
			if err != nil {
				return nil, err
			}
			params = append(params, param.Literal)
		}
	}

	body, err := p.parseStatements(lexer.FOUND_YR, lexer.IF_U_SAY_SO)
	if err != nil {
		return nil, err
	}

	var ret ast.Expression
	if p.at(lexer.FOUND_YR) {
		p.advance()
		ret, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.expect(lexer.IF_U_SAY_SO); err != nil {
		return nil, err
	}

	n := &ast.FuncDef{Name: name.Literal, Params: params, Body: body, ReturnExpr: ret}
	n.Token = tok
	return n, nil
}

// parseFuncCall parses `I IZ name (YR expr (AN YR expr)*)? MKAY` in
// statement position.
func (p *Parser) parseFuncCall() (ast.Statement, error) {
	call, err := p.parseFuncCallCommon()
	if err != nil {
		return nil, err
	}
	return call, nil
}

// parseFuncCallExpr parses the same production for use in expression
// position (nested calls as operands).
func (p *Parser) parseFuncCallExpr() (ast.Expression, error) {
	call, err := p.parseFuncCallCommon()
	if err != nil {
		return nil, err
	}
	return call, nil
}

func (p *Parser) parseFuncCallCommon() (*ast.FuncCall, error) {
	tok := p.advance() // I IZ
	name, err := p.expect(lexer.IDENT)
	if err != nil {
		return nil, err
	}

	var args []ast.Expression
	if p.at(lexer.YR) {
		p.advance()
		first, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, first)
		for p.at(lexer.AN_YR) {
			p.advance()
			arg, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
		}
	}

	if _, err := p.expect(lexer.MKAY); err != nil {
		return nil, err
	}

	n := &ast.FuncCall{Name: name.Literal, Args: args}
	n.Token = tok
	return n, nil
}
