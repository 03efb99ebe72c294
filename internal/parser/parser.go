// Package parser turns a token sequence into an AST via recursive-descent
// parsing with single-token lookahead (spec §4.2).
package parser

import (
	"fmt"

	"github.com/colinhart/plc/internal/ast"
	"github.com/colinhart/plc/internal/diagnostics"
	"github.com/colinhart/plc/internal/token"
)

// Parser walks a flat token slice with a single position cursor.
type Parser struct {
	tokens []token.Token
	pos    int
}

// New creates a Parser over an already-lexed token sequence.
func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse lexes nothing itself: it consumes tokens and returns a *ast.Source,
// or the first diagnostics.Error encountered.
func Parse(tokens []token.Token) (*ast.Source, *diagnostics.Error) {
	p := New(tokens)
	return p.parseSource()
}

func (p *Parser) cur() token.Token {
	return p.tokens[p.pos]
}

func (p *Parser) peekType(t token.Type) bool {
	return p.cur().Type == t
}

// isLiteral reports whether the current token's literal text equals s
// (used for keyword/operator lookahead, since keywords lex as IDENTIFIER).
func (p *Parser) isLiteral(s string) bool {
	return p.cur().Literal == s
}

func (p *Parser) advance() token.Token {
	t := p.cur()
	if t.Type != token.EOF {
		p.pos++
	}
	return t
}

// expectLiteral consumes the current token if its literal matches s, else
// returns a P001 diagnostic.
func (p *Parser) expectLiteral(s string) (token.Token, *diagnostics.Error) {
	if p.isLiteral(s) {
		return p.advance(), nil
	}
	return token.Token{}, diagnostics.New(diagnostics.PhaseParser, diagnostics.ErrP001, p.cur().Index, s, p.cur().Literal)
}

// expectType consumes the current token if its Type matches t, else
// returns a P001 diagnostic.
func (p *Parser) expectType(t token.Type) (token.Token, *diagnostics.Error) {
	if p.peekType(t) {
		return p.advance(), nil
	}
	return token.Token{}, diagnostics.New(diagnostics.PhaseParser, diagnostics.ErrP001, p.cur().Index, string(t), p.cur().Literal)
}

// expectIdentifier consumes an IDENTIFIER token that is not one of PLC's
// reserved keywords, reporting P002 otherwise. Reserved keywords lex as
// plain IDENTIFIER tokens (spec §6) and the parser only ever tells them
// apart from real names by literal text, so accepting a keyword spelling
// here would make it ambiguous later whether e.g. `IF` at statement
// position starts an if-statement or reads a variable named `IF`.
func (p *Parser) expectIdentifier() (token.Token, *diagnostics.Error) {
	if p.peekType(token.IDENTIFIER) && !token.IsReservedKeyword(p.cur().Literal) {
		return p.advance(), nil
	}
	return token.Token{}, diagnostics.New(diagnostics.PhaseParser, diagnostics.ErrP002, p.cur().Index, p.cur().Literal)
}

func malformed(index int, format string, args ...interface{}) *diagnostics.Error {
	return diagnostics.New(diagnostics.PhaseParser, diagnostics.ErrP003, index, fmt.Sprintf(format, args...))
}

// atBlockEnd reports whether the current token terminates a statement
// block: lookahead END|ELSE|CASE|DEFAULT (spec §4.2).
func (p *Parser) atBlockEnd() bool {
	if p.peekType(token.EOF) {
		return true
	}
	switch p.cur().Literal {
	case "END", "ELSE", "CASE", "DEFAULT":
		return true
	default:
		return false
	}
}

// parseSource parses `global* function*`.
func (p *Parser) parseSource() (*ast.Source, *diagnostics.Error) {
	src := &ast.Source{}
	for p.isLiteral("LIST") || p.isLiteral("VAR") || p.isLiteral("VAL") {
		g, err := p.parseGlobal()
		if err != nil {
			return nil, err
		}
		src.Globals = append(src.Globals, g)
	}
	for p.isLiteral("FUN") {
		f, err := p.parseFunction()
		if err != nil {
			return nil, err
		}
		src.Functions = append(src.Functions, f)
	}
	if !p.peekType(token.EOF) {
		return nil, diagnostics.New(diagnostics.PhaseParser, diagnostics.ErrP001, p.cur().Index, "LIST, VAR, VAL, FUN or end of input", p.cur().Literal)
	}
	return src, nil
}

// parseGlobal parses `("LIST" list | "VAR" mutable | "VAL" immutable) ";"`.
func (p *Parser) parseGlobal() (*ast.Global, *diagnostics.Error) {
	kw := p.advance()
	var g *ast.Global
	var err *diagnostics.Error
	switch kw.Literal {
	case "LIST":
		g, err = p.parseListGlobal()
	case "VAR":
		g, err = p.parseScalarGlobal(true, false)
	case "VAL":
		g, err = p.parseScalarGlobal(false, true)
	default:
		return nil, malformed(kw.Index, "expected LIST, VAR or VAL, got %q", kw.Literal)
	}
	if err != nil {
		return nil, err
	}
	if _, err := p.expectLiteral(";"); err != nil {
		return nil, err
	}
	return g, nil
}

// parseListGlobal parses `id "::" id "=" "[" (expr ("," expr)*)? "]"`.
// "::" is not one of the lexer's recognized two-character operators (spec
// §4.1's table), so it arrives as two adjacent ":" OPERATOR tokens.
func (p *Parser) parseListGlobal() (*ast.Global, *diagnostics.Error) {
	name, err := p.expectIdentifier()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectLiteral(":"); err != nil {
		return nil, err
	}
	if _, err := p.expectLiteral(":"); err != nil {
		return nil, err
	}
	typeName, err := p.expectIdentifier()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectLiteral("="); err != nil {
		return nil, err
	}
	value, err := p.parseListLiteral()
	if err != nil {
		return nil, err
	}
	return &ast.Global{Name: name.Literal, TypeName: typeName.Literal, Mutable: true, IsList: true, Value: value}, nil
}

// parseScalarGlobal parses `mutable := id ":" id ("=" expr)?` or
// `immutable := id ":" id "=" expr`, per requiresValue.
func (p *Parser) parseScalarGlobal(mutable, requiresValue bool) (*ast.Global, *diagnostics.Error) {
	name, err := p.expectIdentifier()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectLiteral(":"); err != nil {
		return nil, err
	}
	typeName, err := p.expectIdentifier()
	if err != nil {
		return nil, err
	}
	g := &ast.Global{Name: name.Literal, TypeName: typeName.Literal, Mutable: mutable}
	if p.isLiteral("=") {
		p.advance()
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		g.Value = value
	} else if requiresValue {
		return nil, malformed(p.cur().Index, "VAL declaration %q requires an initializer", name.Literal)
	}
	return g, nil
}

// parseFunction parses
// `"FUN" id "(" params? ")" (":" id)? "DO" stmt* "END"`.
func (p *Parser) parseFunction() (*ast.Function, *diagnostics.Error) {
	if _, err := p.expectLiteral("FUN"); err != nil {
		return nil, err
	}
	name, err := p.expectIdentifier()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectLiteral("("); err != nil {
		return nil, err
	}
	fn := &ast.Function{Name: name.Literal, ReturnTypeName: "Any"}
	if !p.isLiteral(")") {
		for {
			pname, err := p.expectIdentifier()
			if err != nil {
				return nil, err
			}
			if _, err := p.expectLiteral(":"); err != nil {
				return nil, err
			}
			ptype, err := p.expectIdentifier()
			if err != nil {
				return nil, err
			}
			fn.Parameters = append(fn.Parameters, pname.Literal)
			fn.ParameterTypeNames = append(fn.ParameterTypeNames, ptype.Literal)
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
	if p.isLiteral(":") {
		p.advance()
		rt, err := p.expectIdentifier()
		if err != nil {
			return nil, err
		}
		fn.ReturnTypeName = rt.Literal
	}
	if _, err := p.expectLiteral("DO"); err != nil {
		return nil, err
	}
	stmts, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	fn.Statements = stmts
	if _, err := p.expectLiteral("END"); err != nil {
		return nil, err
	}
	return fn, nil
}

// parseBlock parses statements until lookahead hits a block terminator.
func (p *Parser) parseBlock() ([]ast.Statement, *diagnostics.Error) {
	var stmts []ast.Statement
	for !p.atBlockEnd() {
		s, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
	}
	return stmts, nil
}
