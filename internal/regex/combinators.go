package regex

import "unicode"

// The combinators below are sugar over the sealed variant set: each one
// builds a plain tree and adds no matching behavior of its own.

// Literal returns the tree matching exactly the string s, one Char per rune
// in order. Literal("") matches only the empty string.
func Literal(s string) Regex {
	parts := make([]Regex, 0, len(s))
	for _, c := range s {
		parts = append(parts, Char(c))
	}
	return Concat(parts...)
}

// LiteralFold is Literal under simple Unicode case folding: each position
// accepts any rune in the case orbit of the corresponding rune of s, so
// LiteralFold("ab") matches "ab", "aB", "Ab" and "AB".
func LiteralFold(s string) Regex {
	parts := make([]Regex, 0, len(s))
	for _, c := range s {
		parts = append(parts, foldChar(c))
	}
	return Concat(parts...)
}

// foldChar returns the union of c's simple case-fold orbit.
func foldChar(c rune) Regex {
	orbit := []Regex{Char(c)}
	for f := unicode.SimpleFold(c); f != c; f = unicode.SimpleFold(f) {
		orbit = append(orbit, Char(f))
	}
	return Or(orbit...)
}

// Range returns the tree matching any single rune between lo and hi
// inclusive. The range unrolls to one Char per rune, so it is meant for
// small spans such as Range('0', '9'); an inverted range matches nothing.
func Range(lo, hi rune) Regex {
	if hi < lo {
		return Or()
	}
	parts := make([]Regex, 0, hi-lo+1)
	for c := lo; c <= hi; c++ {
		parts = append(parts, Char(c))
	}
	return Or(parts...)
}

// Set returns the tree matching any single rune of chars. Set("") matches
// nothing.
func Set(chars string) Regex {
	parts := make([]Regex, 0, len(chars))
	for _, c := range chars {
		parts = append(parts, Char(c))
	}
	return Or(parts...)
}

// Repeat returns min to max concatenated repetitions of r. A negative max
// means no upper bound: min mandatory copies followed by a Star tail.
// Otherwise the max-min optional tail copies unroll to Or(Epsilon, r), so
// bounds are to be treated as small. A negative min counts as zero, and a
// max below min contributes no optional copies.
func Repeat(r Regex, min, max int) Regex {
	if min < 0 {
		min = 0
	}
	var parts []Regex
	for i := 0; i < min; i++ {
		parts = append(parts, r)
	}
	if max < 0 {
		parts = append(parts, Star(r))
		return Concat(parts...)
	}
	for i := min; i < max; i++ {
		parts = append(parts, Or(Epsilon(), r))
	}
	return Concat(parts...)
}
