package analyzer

import (
	"testing"

	"github.com/colinhart/plc/internal/lexer"
	"github.com/colinhart/plc/internal/parser"
)

func analyzeSource(t *testing.T, src string) error {
	t.Helper()
	tokens, lexErr := lexer.Lex(src)
	if lexErr != nil {
		t.Fatalf("lex error: %s", lexErr)
	}
	source, parseErr := parser.Parse(tokens)
	if parseErr != nil {
		t.Fatalf("parse error: %s", parseErr)
	}
	if err := Analyze(source); err != nil {
		return err
	}
	return nil
}

// TestMainContract covers spec §8 scenario 4.
func TestMainContract(t *testing.T) {
	cases := []struct {
		name    string
		src     string
		wantErr bool
	}{
		{"valid main", `FUN main(): Integer DO RETURN 0; END`, false},
		{"missing main", `FUN notMain(): Integer DO RETURN 0; END`, true},
		{"wrong return type", `FUN main(): Decimal DO RETURN 0.0; END`, true},
		{"wrong arity", `FUN main(x: Integer): Integer DO RETURN x; END`, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := analyzeSource(t, c.src)
			if (err != nil) != c.wantErr {
				t.Errorf("analyzeSource(%q) error = %v, wantErr %v", c.src, err, c.wantErr)
			}
		})
	}
}

func TestAssignabilityRules(t *testing.T) {
	cases := []struct {
		name    string
		src     string
		wantErr bool
	}{
		{"any accepts anything", `
VAR x: Any = 1;
FUN main(): Integer DO x = "hi"; RETURN 0; END
`, false},
		{"comparable accepts string", `
VAR x: Comparable = "hi";
FUN main(): Integer DO RETURN 0; END
`, false},
		{"comparable rejects boolean", `
VAR x: Comparable = TRUE;
FUN main(): Integer DO RETURN 0; END
`, true},
		{"type mismatch on declaration", `
FUN main(): Integer DO LET x: Integer = "oops"; RETURN 0; END
`, true},
		{"expression statement must be a call", `
FUN main(): Integer DO 1 + 2; RETURN 0; END
`, true},
		{"if condition must be boolean", `
FUN main(): Integer DO IF 1 DO RETURN 0; END RETURN 1; END
`, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := analyzeSource(t, c.src)
			if (err != nil) != c.wantErr {
				t.Errorf("analyzeSource(%q) error = %v, wantErr %v", c.src, err, c.wantErr)
			}
		})
	}
}

func TestBinaryOperatorTyping(t *testing.T) {
	cases := []struct {
		name    string
		src     string
		wantErr bool
	}{
		{"string concat with integer", `FUN main(): Integer DO LET x: String = "n=" + 1; RETURN 0; END`, false},
		{"integer plus decimal fails", `FUN main(): Integer DO LET x: Integer = 1 + 1.0; RETURN 0; END`, true},
		{"exponent requires integers", `FUN main(): Integer DO LET x: Integer = 2 ^ 3; RETURN 0; END`, false},
		{"exponent rejects decimal", `FUN main(): Integer DO LET x: Integer = 2.0 ^ 3; RETURN 0; END`, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := analyzeSource(t, c.src)
			if (err != nil) != c.wantErr {
				t.Errorf("analyzeSource(%q) error = %v, wantErr %v", c.src, err, c.wantErr)
			}
		})
	}
}
