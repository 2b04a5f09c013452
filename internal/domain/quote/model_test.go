package quote

import "testing"

func TestNormalizeSymbol(t *testing.T) {
	cases := map[string]string{
		"aapl":   "AAPL",
		" tsla ": "TSLA",
		"BRK.B":  "BRK.B",
		"brk.b":  "BRK.B",
	}
	for in, want := range cases {
		if got := NormalizeSymbol(in); got != want {
			t.Errorf("NormalizeSymbol(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestValidateSymbol(t *testing.T) {
	valid := []string{"A", "AAPL", "BRK.B", "BF-B", "ABCDEFGHIJ"}
	for _, s := range valid {
		if !ValidateSymbol(s) {
			t.Errorf("ValidateSymbol(%q) = false, want true", s)
		}
	}

	invalid := []string{"", "ABCDEFGHIJK", "BAD SYMBOL", "Q@", "a/b"}
	for _, s := range invalid {
		if ValidateSymbol(s) {
			t.Errorf("ValidateSymbol(%q) = true, want false", s)
		}
	}
}
