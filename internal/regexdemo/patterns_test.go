package regexdemo

import "testing"

func TestMatchEmail(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"thelegend27@gmail.com", true},
		{"toplvl@domain.io", false}, // TLD < 3
		{"t@gmail.com", false},      // user < 2
	}
	for _, c := range cases {
		t.Run(c.input, func(t *testing.T) {
			if got := MatchEmail(c.input); got != c.want {
				t.Errorf("MatchEmail(%q) = %v, want %v", c.input, got, c.want)
			}
		})
	}
}

func TestMatchOddLength(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", false},
		{"a", true},
		{"ab", false},
		{"abc", true},
		{"abcd", false},
	}
	for _, c := range cases {
		t.Run(c.input, func(t *testing.T) {
			if got := MatchOddLength(c.input); got != c.want {
				t.Errorf("MatchOddLength(%q) = %v, want %v", c.input, got, c.want)
			}
		})
	}
}

func TestMatchCharacterLiteral(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{`'a'`, true},
		{`'\n'`, true},
		{`'\q'`, false},
		{`''`, false},
		{`'ab'`, false},
	}
	for _, c := range cases {
		t.Run(c.input, func(t *testing.T) {
			if got := MatchCharacterLiteral(c.input); got != c.want {
				t.Errorf("MatchCharacterLiteral(%q) = %v, want %v", c.input, got, c.want)
			}
		})
	}
}

func TestMatchDecimal(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"-123.456", true},
		{"0.5", true},
		{"01.5", false},
		{"123", false},
	}
	for _, c := range cases {
		t.Run(c.input, func(t *testing.T) {
			if got := MatchDecimal(c.input); got != c.want {
				t.Errorf("MatchDecimal(%q) = %v, want %v", c.input, got, c.want)
			}
		})
	}
}

func TestMatchStringLiteral(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{`"hello"`, true},
		{`"hello\nworld"`, true},
		{`"unterminated`, false},
		{"\"has\nnewline\"", false},
	}
	for _, c := range cases {
		t.Run(c.input, func(t *testing.T) {
			if got := MatchStringLiteral(c.input); got != c.want {
				t.Errorf("MatchStringLiteral(%q) = %v, want %v", c.input, got, c.want)
			}
		})
	}
}
