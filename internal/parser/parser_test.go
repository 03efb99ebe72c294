package parser

import (
	"testing"

	"github.com/colinhart/plc/internal/ast"
	"github.com/colinhart/plc/internal/lexer"
)

func mustParse(t *testing.T, src string) *ast.Source {
	t.Helper()
	tokens, lexErr := lexer.Lex(src)
	if lexErr != nil {
		t.Fatalf("lex error: %s", lexErr)
	}
	source, parseErr := Parse(tokens)
	if parseErr != nil {
		t.Fatalf("parse error: %s", parseErr)
	}
	return source
}

// TestParseDeclarationScenario covers spec §8 scenario 3: `LET x: Integer
// = 1 + 2 * 3;` should produce Declaration(x, Integer, Binary(+, 1,
// Binary(*, 2, 3))).
func TestParseDeclarationScenario(t *testing.T) {
	source := mustParse(t, `FUN main(): Integer DO LET x: Integer = 1 + 2 * 3; RETURN x; END`)
	if len(source.Functions) != 1 {
		t.Fatalf("expected 1 function, got %d", len(source.Functions))
	}
	stmts := source.Functions[0].Statements
	if len(stmts) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(stmts))
	}
	decl, ok := stmts[0].(*ast.Declaration)
	if !ok {
		t.Fatalf("expected *ast.Declaration, got %T", stmts[0])
	}
	if decl.Name != "x" || decl.TypeName != "Integer" {
		t.Fatalf("unexpected declaration: %+v", decl)
	}
	plus, ok := decl.Value.(*ast.Binary)
	if !ok || plus.Op != "+" {
		t.Fatalf("expected top-level +, got %+v", decl.Value)
	}
	mul, ok := plus.Right.(*ast.Binary)
	if !ok || mul.Op != "*" {
		t.Fatalf("expected right-hand * , got %+v", plus.Right)
	}
}

func TestParseGlobals(t *testing.T) {
	source := mustParse(t, `
VAL greeting: String = "hi";
VAR counter: Integer = 0;
LIST nums :: Integer = [1, 2, 3];
FUN main(): Integer DO RETURN 0; END
`)
	if len(source.Globals) != 3 {
		t.Fatalf("expected 3 globals, got %d", len(source.Globals))
	}
	if source.Globals[0].Mutable {
		t.Error("VAL global should not be mutable")
	}
	if !source.Globals[1].Mutable {
		t.Error("VAR global should be mutable")
	}
	if !source.Globals[2].IsList || !source.Globals[2].Mutable {
		t.Error("LIST global should be a mutable list")
	}
}

func TestParseIfWhileSwitch(t *testing.T) {
	source := mustParse(t, `
FUN main(): Integer DO
  LET x: Integer = 0;
  WHILE x < 3 DO x = x + 1; END
  IF x == 3 DO print(x); ELSE print(0); END
  SWITCH x
    CASE 3: print("three");
    DEFAULT: print("other");
  END
  RETURN x;
END
`)
	fn := source.Functions[0]
	if len(fn.Statements) != 5 {
		t.Fatalf("expected 5 statements, got %d", len(fn.Statements))
	}
	if _, ok := fn.Statements[1].(*ast.While); !ok {
		t.Errorf("expected While, got %T", fn.Statements[1])
	}
	ifStmt, ok := fn.Statements[2].(*ast.If)
	if !ok {
		t.Fatalf("expected If, got %T", fn.Statements[2])
	}
	if ifStmt.Else == nil {
		t.Error("expected an ELSE branch")
	}
	switchStmt, ok := fn.Statements[3].(*ast.Switch)
	if !ok {
		t.Fatalf("expected Switch, got %T", fn.Statements[3])
	}
	if len(switchStmt.Cases) != 2 || switchStmt.Cases[1].Value != nil {
		t.Errorf("expected a trailing DEFAULT case, got %+v", switchStmt.Cases)
	}
}

func TestParseMissingTerminatorFails(t *testing.T) {
	tokens, lexErr := lexer.Lex(`FUN main(): Integer DO RETURN 0 END`)
	if lexErr != nil {
		t.Fatalf("lex error: %s", lexErr)
	}
	if _, err := Parse(tokens); err == nil {
		t.Fatal("expected a parse error for a missing semicolon")
	}
}

func TestParseDefaultMustBeLast(t *testing.T) {
	tokens, lexErr := lexer.Lex(`
FUN main(): Integer DO
  SWITCH 1
    DEFAULT: RETURN 0;
    CASE 1: RETURN 1;
  END
END
`)
	if lexErr != nil {
		t.Fatalf("lex error: %s", lexErr)
	}
	if _, err := Parse(tokens); err == nil {
		t.Fatal("expected an error: DEFAULT must be the last switch case")
	}
}
