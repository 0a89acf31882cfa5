package parser

import (
	"github.com/lolcode-go/lolcode/internal/ast"
	"github.com/lolcode-go/lolcode/internal/errors"
	"github.com/lolcode-go/lolcode/internal/lexer"
)

// parseIf parses `O RLY? YA RLY stmt* (NO WAI stmt*)? OIC`.
func (p *Parser) parseIf() (ast.Statement, error) {
	tok := p.advance() // O RLY?
	if _, err := p.expect(lexer.YA_RLY); err != nil {
		return nil, err
	}
	thenBody, err := p.parseStatements(lexer.NO_WAI, lexer.OIC)
	if err != nil {
		return nil, err
	}

	var elseBody *ast.StatementList
	if p.at(lexer.NO_WAI) {
		p.advance()
		elseBody, err = p.parseStatements(lexer.OIC)
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.expect(lexer.OIC); err != nil {
		return nil, err
	}

	n := &ast.If{Then: thenBody, Else: elseBody}
	n.Token = tok
	return n, nil
}

// parseSwitch parses `WTF (OMG literal stmt*)+ OMGWTF stmt* OIC`.
func (p *Parser) parseSwitch() (ast.Statement, error) {
	tok := p.advance() // WTF
	var cases []*ast.SwitchCase
	for p.at(lexer.OMG) {
		caseTok := p.advance()
		lit, err := p.parseCaseLiteral()
		if err != nil {
			return nil, err
		}
		body, err := p.parseStatements(lexer.OMG, lexer.OMGWTF, lexer.OIC)
		if err != nil {
			return nil, err
		}
		sc := &ast.SwitchCase{Literal: lit, Body: body}
		sc.Token = caseTok
		cases = append(cases, sc)
	}
	if len(cases) == 0 {
		return nil, errors.Newf(errors.InvalidSyntax, p.cur(), "switch requires at least one OMG case")
	}

	var def *ast.StatementList
	if p.at(lexer.OMGWTF) {
		p.advance()
		body, err := p.parseStatements(lexer.OIC)
		if err != nil {
			return nil, err
		}
		def = body
	}

	if _, err := p.expect(lexer.OIC); err != nil {
		return nil, err
	}

	n := &ast.Switch{Cases: cases, Default: def}
	n.Token = tok
	return n, nil
}

// parseCaseLiteral parses a switch-case literal, which may be any literal
// form except identifier.
func (p *Parser) parseCaseLiteral() (ast.Expression, error) {
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
	default:
		return nil, errors.Newf(errors.InvalidSyntax, p.cur(), "expected a literal case value, found %s", p.cur().Type)
	}
}

// parseLoop parses `IM IN YR label (UPPIN|NERFIN) YR var ((TIL|WILE)
// expr)? stmt* IM OUTTA YR label`, checking that the closing label matches
// the opening one.
func (p *Parser) parseLoop() (ast.Statement, error) {
	tok := p.advance() // IM IN YR
	label, err := p.expect(lexer.IDENT)
	if err != nil {
		return nil, err
	}

	var stepOp lexer.TokenType
	switch p.cur().Type {
	case lexer.UPPIN, lexer.NERFIN:
		stepOp = p.advance().Type
	default:
		return nil, errors.Newf(errors.InvalidSyntax, p.cur(), "expected UPPIN or NERFIN, found %s", p.cur().Type)
	}
	if _, err := p.expect(lexer.YR); err != nil {
		return nil, err
	}
	stepVar, err := p.expect(lexer.IDENT)
	if err != nil {
		return nil, err
	}

	var condOp lexer.TokenType
	var cond ast.Expression
	if p.at(lexer.TIL) || p.at(lexer.WILE) {
		condOp = p.advance().Type
		cond, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}

	body, err := p.parseStatements(lexer.IM_OUTTA_YR)
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(lexer.IM_OUTTA_YR); err != nil {
		return nil, err
	}
	endLabel, err := p.expect(lexer.IDENT)
	if err != nil {
		return nil, err
	}
	if endLabel.Literal != label.Literal {
		return nil, errors.Newf(errors.InvalidSyntax, endLabel,
			"loop label mismatch: opened as %q, closed as %q", label.Literal, endLabel.Literal)
	}

	n := &ast.Loop{
		Label:   label.Literal,
		StepOp:  stepOp,
		StepVar: stepVar.Literal,
		CondOp:  condOp,
		Cond:    cond,
		Body:    body,
	}
	n.Token = tok
	return n, nil
}
