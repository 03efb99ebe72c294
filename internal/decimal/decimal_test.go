package decimal

import (
	"math/big"
	"testing"
)

func mustParse(t *testing.T, literal string) Decimal {
	t.Helper()
	d, err := Parse(literal)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %s", literal, err)
	}
	return d
}

func TestParseAndStringRoundTrip(t *testing.T) {
	cases := []string{"0.0", "123.456", "-123.456", "-0.5", "1.50"}
	for _, lit := range cases {
		d := mustParse(t, lit)
		if got := d.String(); got != lit {
			t.Errorf("Parse(%q).String() = %q, want %q", lit, got, lit)
		}
	}
}

func TestParseRejectsIntegerLiteral(t *testing.T) {
	if _, err := Parse("123"); err == nil {
		t.Fatal("Parse(\"123\") should fail: a decimal literal requires a fractional part")
	}
}

func TestAddSubMulAcrossScales(t *testing.T) {
	a := mustParse(t, "1.5")
	b := mustParse(t, "0.25")

	if got := Add(a, b).String(); got != "1.75" {
		t.Errorf("1.5 + 0.25 = %s, want 1.75", got)
	}
	if got := Sub(a, b).String(); got != "1.25" {
		t.Errorf("1.5 - 0.25 = %s, want 1.25", got)
	}
	if got := Mul(a, b).String(); got != "0.375" {
		t.Errorf("1.5 * 0.25 = %s, want 0.375", got)
	}
}

func TestDivByZeroFails(t *testing.T) {
	a := mustParse(t, "1.0")
	zero := mustParse(t, "0.0")
	if _, err := Div(a, zero); err == nil {
		t.Fatal("Div by zero should fail")
	}
}

// TestDivHalfEvenRounding exercises the tie-breaking-toward-even rule
// directly against roundHalfEven, independent of the working-scale
// trimming Div layers on top.
func TestDivHalfEvenRounding(t *testing.T) {
	cases := []struct {
		name              string
		quotient          int64
		remainder         int64
		divisor           int64
		wantQuotientDelta int64
	}{
		{"below half, no round", 10, 1, 10, 0},
		{"exact tie, even stays even", 10, 5, 10, 0},
		{"exact tie, odd rounds up", 11, 5, 10, 1},
		{"above half, rounds up", 10, 6, 10, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			q := big.NewInt(c.quotient)
			r := big.NewInt(c.remainder)
			d := big.NewInt(c.divisor)
			got := roundHalfEven(q, r, d)
			want := new(big.Int).Add(big.NewInt(c.quotient), big.NewInt(c.wantQuotientDelta))
			if got.Cmp(want) != 0 {
				t.Errorf("roundHalfEven(%d, %d, %d) = %s, want %s", c.quotient, c.remainder, c.divisor, got, want)
			}
		})
	}
}

func TestDivNonTerminating(t *testing.T) {
	one := mustParse(t, "1.0")
	three := mustParse(t, "3.0")
	got, err := Div(one, three)
	if err != nil {
		t.Fatalf("Div(1.0, 3.0) failed: %s", err)
	}
	want := "0." + repeat("3", DivisionScale)
	if got.String() != want {
		t.Errorf("1.0 / 3.0 = %s, want %s", got.String(), want)
	}
}

func TestDivExact(t *testing.T) {
	ten := mustParse(t, "10.0")
	two := mustParse(t, "2.0")
	got, err := Div(ten, two)
	if err != nil {
		t.Fatalf("Div(10.0, 2.0) failed: %s", err)
	}
	if got.String() != "5" {
		t.Errorf("10.0 / 2.0 = %s, want 5", got.String())
	}
}

func TestCmpAndEqualIgnoreScale(t *testing.T) {
	a := mustParse(t, "1.50")
	b := mustParse(t, "1.5")
	if !Equal(a, b) {
		t.Errorf("1.50 and 1.5 should compare equal")
	}
	if Cmp(a, b) != 0 {
		t.Errorf("Cmp(1.50, 1.5) = %d, want 0", Cmp(a, b))
	}
	c := mustParse(t, "1.6")
	if Cmp(a, c) >= 0 {
		t.Errorf("Cmp(1.5, 1.6) should be negative")
	}
}

func repeat(s string, n int32) string {
	out := make([]byte, 0, n)
	for i := int32(0); i < n; i++ {
		out = append(out, s[0])
	}
	return string(out)
}
