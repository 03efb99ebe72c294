package parser

import (
	"math/big"

	"github.com/colinhart/plc/internal/ast"
	"github.com/colinhart/plc/internal/decimal"
	"github.com/colinhart/plc/internal/diagnostics"
	"github.com/colinhart/plc/internal/token"
)

// parseExpression parses `expr := logical`.
func (p *Parser) parseExpression() (ast.Expression, *diagnostics.Error) {
	return p.parseLogical()
}

// parseLogical parses `logical := compare (("&&"|"||") compare)*`.
func (p *Parser) parseLogical() (ast.Expression, *diagnostics.Error) {
	return p.parseBinaryLevel(p.parseCompare, "&&", "||")
}

// parseCompare parses `compare := additive (("<"|">"|"=="|"!=") additive)*`.
func (p *Parser) parseCompare() (ast.Expression, *diagnostics.Error) {
	return p.parseBinaryLevel(p.parseAdditive, "<", ">", "==", "!=")
}

// parseAdditive parses `additive := multiplicative (("+"|"-") multiplicative)*`.
func (p *Parser) parseAdditive() (ast.Expression, *diagnostics.Error) {
	return p.parseBinaryLevel(p.parseMultiplicative, "+", "-")
}

// parseMultiplicative parses `multiplicative := primary (("*"|"/"|"^") primary)*`.
func (p *Parser) parseMultiplicative() (ast.Expression, *diagnostics.Error) {
	return p.parseBinaryLevel(p.parsePrimary, "*", "/", "^")
}

// parseBinaryLevel implements one left-associative precedence level: parse
// one operand via next, then repeatedly consume an operator in ops
// followed by another operand.
func (p *Parser) parseBinaryLevel(next func() (ast.Expression, *diagnostics.Error), ops ...string) (ast.Expression, *diagnostics.Error) {
	left, err := next()
	if err != nil {
		return nil, err
	}
	for p.matchesAny(ops) {
		op := p.advance()
		right, err := next()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Op: op.Literal, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) matchesAny(ops []string) bool {
	for _, op := range ops {
		if p.isLiteral(op) {
			return true
		}
	}
	return false
}

// parsePrimary parses
// `"NIL" | "TRUE" | "FALSE" | INT | DEC | CHAR | STR
//  | "(" expr ")" | id ( "(" args? ")" | "[" expr "]" )?`.
func (p *Parser) parsePrimary() (ast.Expression, *diagnostics.Error) {
	tok := p.cur()
	switch {
	case tok.Type == token.IDENTIFIER && tok.Literal == "NIL":
		p.advance()
		return &ast.Literal{Value: nil}, nil
	case tok.Type == token.IDENTIFIER && tok.Literal == "TRUE":
		p.advance()
		return &ast.Literal{Value: true}, nil
	case tok.Type == token.IDENTIFIER && tok.Literal == "FALSE":
		p.advance()
		return &ast.Literal{Value: false}, nil
	case tok.Type == token.INTEGER:
		p.advance()
		v, ok := new(big.Int).SetString(tok.Literal, 10)
		if !ok {
			return nil, malformed(tok.Index, "invalid integer literal %q", tok.Literal)
		}
		return &ast.Literal{Value: v}, nil
	case tok.Type == token.DECIMAL:
		p.advance()
		d, derr := decimal.Parse(tok.Literal)
		if derr != nil {
			return nil, malformed(tok.Index, "invalid decimal literal %q", tok.Literal)
		}
		return &ast.Literal{Value: d}, nil
	case tok.Type == token.CHARACTER:
		p.advance()
		return &ast.Literal{Value: []rune(tok.Literal)[0]}, nil
	case tok.Type == token.STRING:
		p.advance()
		return &ast.Literal{Value: tok.Literal}, nil
	case tok.Literal == "(":
		p.advance()
		inner, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expectLiteral(")"); err != nil {
			return nil, err
		}
		return &ast.Group{Inner: inner}, nil
	case tok.Type == token.IDENTIFIER:
		return p.parseIdentifierExpr()
	default:
		return nil, diagnostics.New(diagnostics.PhaseParser, diagnostics.ErrP001, tok.Index, "an expression", tok.Literal)
	}
}

// parseIdentifierExpr parses `id ( "(" args? ")" | "[" expr "]" )?`.
func (p *Parser) parseIdentifierExpr() (ast.Expression, *diagnostics.Error) {
	name := p.advance()
	switch {
	case p.isLiteral("("):
		p.advance()
		var args []ast.Expression
		if !p.isLiteral(")") {
			for {
				arg, err := p.parseExpression()
				if err != nil {
					return nil, err
				}
				args = append(args, arg)
				if p.isLiteral(",") {
					p.advance()
					continue
				}
				break
			}
		}
		if _, err := p.expectLiteral(")"); err != nil {
			return nil, err
		}
		return &ast.Call{Name: name.Literal, Args: args}, nil
	case p.isLiteral("["):
		p.advance()
		offset, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expectLiteral("]"); err != nil {
			return nil, err
		}
		return &ast.Access{Name: name.Literal, Offset: offset}, nil
	default:
		return &ast.Access{Name: name.Literal}, nil
	}
}

// parseListLiteral parses `"[" (expr ("," expr)*)? "]"`, used by LIST
// globals.
func (p *Parser) parseListLiteral() (ast.Expression, *diagnostics.Error) {
	if _, err := p.expectLiteral("["); err != nil {
		return nil, err
	}
	list := &ast.PlcList{}
	if !p.isLiteral("]") {
		for {
			elem, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			list.Elements = append(list.Elements, elem)
			if p.isLiteral(",") {
				p.advance()
				continue
			}
			break
		}
	}
	if _, err := p.expectLiteral("]"); err != nil {
		return nil, err
	}
	return list, nil
}
