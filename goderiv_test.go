package goderiv_test

import (
	"errors"
	"math"
	"testing"

	"github.com/twinfer/goderiv"
)

// TestWholeStringMatching drives the package-level entry point over the
// documented a·b* behavior.
func TestWholeStringMatching(t *testing.T) {
	re := goderiv.Concat(goderiv.Char('a'), goderiv.Star(goderiv.Char('b')))

	cases := []struct {
		s    string
		want bool
	}{
		{"a", true},
		{"ab", true},
		{"abbb", true},
		{"", false},
		{"b", false},
		{"aba", false},
	}

	for i, c := range cases {
		if got := goderiv.Match(re, c.s); got != c.want {
			t.Errorf("Test %d: Match(%v, %q) = %v, want %v", i+1, re, c.s, got, c.want)
		}
	}
}

// TestComposedValidators builds the kind of composite checks the operators
// exist for: a price grid, an identifier filter, and a status line shape.
// Inputs on compound trees stay at five runes or fewer; residuals grow by
// more than an order of magnitude per rune.
func TestComposedValidators(t *testing.T) {
	quarters, err := goderiv.FractionalRemainder(0.25, 0)
	if err != nil {
		t.Fatalf("FractionalRemainder(0.25, 0) returned %v", err)
	}
	price := goderiv.Concat(goderiv.Or(goderiv.Literal("$"), goderiv.Epsilon()), quarters)

	keyword := goderiv.Or(goderiv.Literal("if"), goderiv.Literal("for"), goderiv.Literal("else"))
	ident := goderiv.And(goderiv.Repeat(goderiv.Range('a', 'z'), 1, -1), goderiv.Not(keyword))

	status := goderiv.Concat(
		goderiv.Or(goderiv.Literal("ok"), goderiv.Literal("no")),
		goderiv.Char(':'),
		goderiv.Not(goderiv.Epsilon()),
	)

	cases := []struct {
		name string
		re   goderiv.Regex
		s    string
		want bool
	}{
		{"price with currency", price, "$19.75", true},
		{"price bare", price, "19.75", true},
		{"price off grid", price, "19.80", false},
		{"price not a number", price, "$19.7x", false},
		{"ident plain word", ident, "count", true},
		{"ident keyword", ident, "for", false},
		{"ident mixed case", ident, "Count", false},
		{"status ok", status, "ok:1", true},
		{"status no", status, "no:go", true},
		{"status unknown", status, "up:1", false},
		{"status missing message", status, "ok:", false},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			if got := goderiv.Match(tt.re, tt.s); got != tt.want {
				t.Errorf("Match(%v, %q) = %v, want %v", tt.re, tt.s, got, tt.want)
			}
		})
	}
}

// TestSentinelErrors checks the exported sentinels survive wrapping.
func TestSentinelErrors(t *testing.T) {
	cases := []struct {
		divisor float32
		want    error
	}{
		{float32(math.NaN()), goderiv.ErrNoDecimalPart},
		{1e-10, goderiv.ErrTooManyDecimalPlaces},
		{1e10, goderiv.ErrDivisorOverflow},
	}

	for i, c := range cases {
		re, err := goderiv.FractionalRemainder(c.divisor, 0)
		if re != nil || !errors.Is(err, c.want) {
			t.Errorf("Test %d: FractionalRemainder(%v, 0) = (%v, %v), want %v", i+1, c.divisor, re, err, c.want)
		}
	}
}

// TestMatchRunesAgrees checks both entry points see the same language.
func TestMatchRunesAgrees(t *testing.T) {
	re := goderiv.LiteralFold("hé")

	for _, s := range []string{"hé", "HÉ", "he", ""} {
		if got, want := goderiv.MatchRunes(re, []rune(s)), goderiv.Match(re, s); got != want {
			t.Errorf("MatchRunes and Match disagree on %q: %v vs %v", s, got, want)
		}
	}
}
