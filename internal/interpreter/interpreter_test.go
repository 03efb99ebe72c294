package interpreter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/colinhart/plc/internal/analyzer"
	"github.com/colinhart/plc/internal/ast"
	"github.com/colinhart/plc/internal/lexer"
	"github.com/colinhart/plc/internal/parser"
)

func run(t *testing.T, src string) (string, *ast.Source) {
	t.Helper()
	tokens, lexErr := lexer.Lex(src)
	if lexErr != nil {
		t.Fatalf("lex error: %s", lexErr)
	}
	source, parseErr := parser.Parse(tokens)
	if parseErr != nil {
		t.Fatalf("parse error: %s", parseErr)
	}
	if err := analyzer.Analyze(source); err != nil {
		t.Fatalf("analyze error: %s", err)
	}
	var out bytes.Buffer
	result, runErr := Run(source, &out)
	if runErr != nil {
		t.Fatalf("runtime error: %s", runErr)
	}
	_ = result
	return out.String(), source
}

// TestWhileLoopScenario covers spec §8 scenario 5.
func TestWhileLoopScenario(t *testing.T) {
	src := `
FUN main(): Integer DO
  LET x: Integer = 0;
  WHILE x < 3 DO x = x + 1; END
  print(x);
  RETURN x;
END
`
	stdout, source := run(t, src)
	if stdout != "3\n" {
		t.Errorf("stdout = %q, want %q", stdout, "3\n")
	}

	var out bytes.Buffer
	result, err := Run(source, &out)
	if err != nil {
		t.Fatalf("runtime error: %s", err)
	}
	if got := result.AsInt().Int64(); got != 3 {
		t.Errorf("main() returned %d, want 3", got)
	}
}

// TestShortCircuit covers spec §8 scenario 6.
func TestShortCircuit(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"false && side effect", `
FUN sideEffect(): Boolean DO print("no"); RETURN TRUE; END
FUN main(): Integer DO
  IF FALSE && sideEffect() DO print("then"); END
  RETURN 0;
END
`},
		{"true || side effect", `
FUN sideEffect(): Boolean DO print("no"); RETURN FALSE; END
FUN main(): Integer DO
  IF TRUE || sideEffect() DO print("then"); END
  RETURN 0;
END
`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			stdout, _ := run(t, c.src)
			if strings.Contains(stdout, "no") {
				t.Errorf("stdout = %q, sideEffect() must never run", stdout)
			}
		})
	}
}

func TestListIndexingAndAliasing(t *testing.T) {
	src := `
LIST nums :: Integer = [1, 2, 3];
FUN main(): Integer DO
  LET alias = nums;
  alias[0] = 99;
  RETURN nums[0];
END
`
	_, source := run(t, src)
	var out bytes.Buffer
	result, err := Run(source, &out)
	if err != nil {
		t.Fatalf("runtime error: %s", err)
	}
	if got := result.AsInt().Int64(); got != 99 {
		t.Errorf("nums[0] = %d, want 99", got)
	}
}

func TestDecimalDivisionNonTerminating(t *testing.T) {
	src := `
FUN main(): Integer DO
  LET x: Decimal = 1.0 / 3.0;
  print(x);
  RETURN 0;
END
`
	stdout, _ := run(t, src)
	if len(stdout) == 0 {
		t.Fatal("expected decimal division output")
	}
}

func TestDivisionByZeroFails(t *testing.T) {
	tokens, lexErr := lexer.Lex(`
FUN main(): Integer DO
  LET x: Integer = 1 / 0;
  RETURN x;
END
`)
	if lexErr != nil {
		t.Fatalf("lex error: %s", lexErr)
	}
	source, parseErr := parser.Parse(tokens)
	if parseErr != nil {
		t.Fatalf("parse error: %s", parseErr)
	}
	if err := analyzer.Analyze(source); err != nil {
		t.Fatalf("analyze error: %s", err)
	}
	var out bytes.Buffer
	if _, err := Run(source, &out); err == nil {
		t.Fatal("expected a division-by-zero runtime error")
	}
}

func TestImmutableAssignmentFails(t *testing.T) {
	tokens, lexErr := lexer.Lex(`
VAL greeting: String = "hi";
FUN main(): Integer DO
  greeting = "bye";
  RETURN 0;
END
`)
	if lexErr != nil {
		t.Fatalf("lex error: %s", lexErr)
	}
	source, parseErr := parser.Parse(tokens)
	if parseErr != nil {
		t.Fatalf("parse error: %s", parseErr)
	}
	// The analyzer's Assignment rule only checks type equality, not
	// mutability (spec §4.4); immutability is enforced at runtime (§4.5).
	if err := analyzer.Analyze(source); err != nil {
		t.Fatalf("analyze error: %s", err)
	}
	var out bytes.Buffer
	if _, err := Run(source, &out); err == nil {
		t.Fatal("expected an assignment-to-immutable runtime error")
	}
}
