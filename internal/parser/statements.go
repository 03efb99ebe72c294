package parser

import (
	"github.com/colinhart/plc/internal/ast"
	"github.com/colinhart/plc/internal/diagnostics"
)

// parseStatement parses
// `"LET" decl ";" | "SWITCH" switch | "IF" if | "WHILE" while
//  | "RETURN" expr ";" | expr ("=" expr)? ";"`.
func (p *Parser) parseStatement() (ast.Statement, *diagnostics.Error) {
	switch {
	case p.isLiteral("LET"):
		return p.parseDeclaration()
	case p.isLiteral("SWITCH"):
		return p.parseSwitch()
	case p.isLiteral("IF"):
		return p.parseIf()
	case p.isLiteral("WHILE"):
		return p.parseWhile()
	case p.isLiteral("RETURN"):
		return p.parseReturn()
	default:
		return p.parseExpressionOrAssignment()
	}
}

// parseDeclaration parses `"LET" id (":" id)? ("=" expr)? ";"`.
func (p *Parser) parseDeclaration() (ast.Statement, *diagnostics.Error) {
	p.advance() // LET
	name, err := p.expectIdentifier()
	if err != nil {
		return nil, err
	}
	decl := &ast.Declaration{Name: name.Literal}
	if p.isLiteral(":") {
		p.advance()
		t, err := p.expectIdentifier()
		if err != nil {
			return nil, err
		}
		decl.TypeName = t.Literal
	}
	if p.isLiteral("=") {
		p.advance()
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		decl.Value = value
	}
	if _, err := p.expectLiteral(";"); err != nil {
		return nil, err
	}
	return decl, nil
}

// parseIf parses `"IF" expr "DO" block ("ELSE" block)? "END"`.
func (p *Parser) parseIf() (ast.Statement, *diagnostics.Error) {
	p.advance() // IF
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectLiteral("DO"); err != nil {
		return nil, err
	}
	then, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	if len(then) == 0 {
		return nil, malformed(p.cur().Index, "IF's then-branch must be non-empty")
	}
	stmt := &ast.If{Condition: cond, Then: then}
	if p.isLiteral("ELSE") {
		p.advance()
		elseBlock, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		stmt.Else = elseBlock
	}
	if _, err := p.expectLiteral("END"); err != nil {
		return nil, err
	}
	return stmt, nil
}

// parseWhile parses `"WHILE" expr "DO" block "END"`.
func (p *Parser) parseWhile() (ast.Statement, *diagnostics.Error) {
	p.advance() // WHILE
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectLiteral("DO"); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectLiteral("END"); err != nil {
		return nil, err
	}
	return &ast.While{Condition: cond, Statements: body}, nil
}

// parseSwitch parses
// `"SWITCH" expr ("CASE" expr ":" block | "DEFAULT" ":" block)* "END"`.
// The last case, and only the last, may be DEFAULT.
func (p *Parser) parseSwitch() (ast.Statement, *diagnostics.Error) {
	p.advance() // SWITCH
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	stmt := &ast.Switch{Condition: cond}
	sawDefault := false
	for p.isLiteral("CASE") || p.isLiteral("DEFAULT") {
		if sawDefault {
			return nil, malformed(p.cur().Index, "DEFAULT must be the last switch case")
		}
		c := &ast.Case{}
		if p.isLiteral("CASE") {
			p.advance()
			value, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			c.Value = value
		} else {
			p.advance() // DEFAULT
			sawDefault = true
		}
		if _, err := p.expectLiteral(":"); err != nil {
			return nil, err
		}
		body, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		c.Statements = body
		stmt.Cases = append(stmt.Cases, c)
	}
	if _, err := p.expectLiteral("END"); err != nil {
		return nil, err
	}
	return stmt, nil
}

// parseReturn parses `"RETURN" expr ";"`.
func (p *Parser) parseReturn() (ast.Statement, *diagnostics.Error) {
	p.advance() // RETURN
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectLiteral(";"); err != nil {
		return nil, err
	}
	return &ast.Return{Value: value}, nil
}

// parseExpressionOrAssignment parses `expr ("=" expr)? ";"`.
func (p *Parser) parseExpressionOrAssignment() (ast.Statement, *diagnostics.Error) {
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	var stmt ast.Statement
	if p.isLiteral("=") {
		p.advance()
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		stmt = &ast.Assignment{Receiver: expr, Value: value}
	} else {
		stmt = &ast.ExpressionStatement{Expr: expr}
	}
	if _, err := p.expectLiteral(";"); err != nil {
		return nil, err
	}
	return stmt, nil
}
