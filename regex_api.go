// Package goderiv provides symbolic regular expression matching based on
// Brzozowski derivatives. Patterns are explicit trees built through the
// constructors of this package rather than parsed from a textual syntax,
// and they are matched against whole strings one character derivative at a
// time: deriving a tree by a character yields the tree of the residual
// language, and a string is accepted when the fully derived tree still
// accepts the empty string.
//
// Beyond the classic regular operators the trees support set-theoretic
// combination (And, Not) and a numeric Remainder predicate recognizing
// decimal numerals congruent to a target value modulo a possibly
// fractional divisor.
//
// # Supported operators:
//
//   - `Empty`, `Epsilon`, `Char`: the atomic languages (nothing, the empty
//     string, one character).
//   - `Concat`, `Or`, `Star`: concatenation, union and Kleene closure.
//   - `And`, `Not`: language intersection and complement over the full
//     alphabet.
//   - `Remainder`, `FractionalRemainder`: divisibility predicates over
//     decimal numerals.
//
// Trees are immutable values: matching allocates fresh trees per step and
// never touches its input, so independent Match calls are safe to run
// concurrently without coordination. There is deliberately no tree
// minimization or subterm caching; pathological combinations of Not/And/Or
// against long inputs can grow intermediate trees combinatorially, and
// bounding that is left to the caller.
package goderiv

import (
	"github.com/twinfer/goderiv/internal/regex"
)

// Regex is an immutable regular language tree. Values are created with the
// constructor functions of this package and consumed by Match; the variant
// set is sealed.
type Regex = regex.Regex

// Divisor scaling errors returned (wrapped) by FractionalRemainder; test
// with errors.Is.
var (
	ErrNoDecimalPart        = regex.ErrNoDecimalPart
	ErrTooManyDecimalPlaces = regex.ErrTooManyDecimalPlaces
	ErrDivisorOverflow      = regex.ErrDivisorOverflow
)

// Empty returns the tree that matches no string at all. It is the identity
// of Or and the absorbing element of Concat and And.
func Empty() Regex { return regex.Empty() }

// Epsilon returns the tree that matches only the empty string.
func Epsilon() Regex { return regex.Epsilon() }

// Char returns the tree that matches exactly the single character c.
func Char(c rune) Regex { return regex.Char(c) }

// Concat returns the tree matching the concatenations of rs in order.
// Concat of nothing behaves as Epsilon.
func Concat(rs ...Regex) Regex { return regex.Concat(rs...) }

// Or returns the tree matching the union of rs. Or of nothing behaves as
// Empty. Nesting is preserved as given: Or(Or(a, b), c) and Or(a, b, c)
// are distinct trees with identical matching behavior.
func Or(rs ...Regex) Regex { return regex.Or(rs...) }

// And returns the tree matching the intersection of rs: a string is
// accepted only when every part accepts it.
func And(rs ...Regex) Regex { return regex.And(rs...) }

// Not returns the complement of r over the full alphabet: it accepts every
// string r rejects, including the empty string when r is not nullable.
func Not(r Regex) Regex { return regex.Not(r) }

// Star returns the Kleene closure of r: zero or more repetitions.
func Star(r Regex) Regex { return regex.Star(r) }

// Literal returns the tree matching exactly the string s. Literal("")
// matches only the empty string.
func Literal(s string) Regex { return regex.Literal(s) }

// LiteralFold is Literal under simple Unicode case folding, so
// LiteralFold("go") also matches "Go", "gO" and "GO".
func LiteralFold(s string) Regex { return regex.LiteralFold(s) }

// Range returns the tree matching any single rune between lo and hi
// inclusive. The range unrolls into a union of single characters and is
// meant for small spans such as Range('a', 'z').
func Range(lo, hi rune) Regex { return regex.Range(lo, hi) }

// Set returns the tree matching any single rune of chars.
func Set(chars string) Regex { return regex.Set(chars) }

// Repeat returns the tree matching min to max concatenated repetitions of
// r. A negative max means no upper bound. Repetitions unroll into explicit
// copies (optional ones as Or(Epsilon, r)), so bounds are to be treated as
// small.
func Repeat(r Regex, min, max int) Regex { return regex.Repeat(r, min, max) }

// Remainder returns the tree accepting decimal numerals congruent to
// target modulo divisor: Remainder(3, 0) accepts "0", "3", "42", "999".
// The divisor must be at least 1. Any character other than an ASCII digit
// derives the tree to Empty.
func Remainder(divisor, target uint32) Regex { return regex.Remainder(divisor, target) }

// FractionalRemainder is Remainder for a possibly fractional divisor such
// as 2.5, scaled internally to an integer divisor plus a fractional digit
// budget: matched numerals may carry at most as many digits after their
// decimal point as the divisor had. The target is expressed in the scaled
// units (target 5 against divisor 2.5 selects values congruent to 0.5).
// Scaling fails with ErrNoDecimalPart, ErrTooManyDecimalPlaces or
// ErrDivisorOverflow.
func FractionalRemainder(divisor float32, target uint32) (Regex, error) {
	return regex.FractionalRemainder(divisor, target)
}

// Match reports whether r accepts exactly the whole string s, stepping the
// tree through one derivative per rune. Matching is total: it never fails,
// and unmatched characters simply drive the tree to Empty.
func Match(r Regex, s string) bool {
	return regex.Match(r, s)
}

// MatchRunes is Match for an already-decoded rune slice, avoiding a second
// UTF-8 decoding pass in callers that hold runes.
func MatchRunes(r Regex, rs []rune) bool {
	return regex.MatchRunes(r, rs)
}
