package regex

import "fmt"

// The four structural functions below (nullable, null, isEmpty, derivative)
// form one contract over the sealed variant set: a new variant must be added
// to every switch or matching panics at runtime.

// nullable reports whether r accepts the empty string.
func nullable(r Regex) bool {
	switch n := r.(type) {
	case *empty:
		return false
	case *epsilon:
		return true
	case *literal:
		return false
	case *concat:
		for _, p := range n.parts {
			if !nullable(p) {
				return false
			}
		}
		return true
	case *or:
		for _, p := range n.parts {
			if nullable(p) {
				return true
			}
		}
		return false
	case *and:
		for _, p := range n.parts {
			if !nullable(p) {
				return false
			}
		}
		return true
	case *not:
		return !nullable(n.sub)
	case *star:
		return true
	case *remainder:
		return n.current == n.target
	default:
		panic(fmt.Sprintf("regex: unknown variant %T", r))
	}
}

// null projects r onto its empty-string component: Epsilon when r is
// nullable, Empty otherwise. It is the ν(r) term of the concatenation
// derivative and is not used anywhere else.
func null(r Regex) Regex {
	if nullable(r) {
		return Epsilon()
	}
	return Empty()
}

// isEmpty reports whether the language of r is provably empty, so that
// matching can stop early. It must never claim emptiness for a tree that
// still accepts some string: every true returned here is a proof, while
// false may simply mean "cannot tell cheaply". A nullable tree accepts at
// least the empty string and is never empty.
func isEmpty(r Regex) bool {
	if nullable(r) {
		return false
	}
	switch n := r.(type) {
	case *empty:
		return true
	case *epsilon:
		return false
	case *literal:
		return false
	case *concat:
		// A single empty part kills the whole concatenation, wherever it
		// sits in the list.
		for _, p := range n.parts {
			if isEmpty(p) {
				return true
			}
		}
		return false
	case *or:
		for _, p := range n.parts {
			if !isEmpty(p) {
				return false
			}
		}
		return true
	case *and:
		for _, p := range n.parts {
			if isEmpty(p) {
				return true
			}
		}
		return false
	case *not:
		// The complement is empty only when the subtree accepts every
		// string, and no oracle here decides universality. Reporting
		// non-empty keeps the early exit sound.
		return false
	case *star:
		return false
	case *remainder:
		return false
	default:
		panic(fmt.Sprintf("regex: unknown variant %T", r))
	}
}

// derivative returns the Brzozowski derivative of r with respect to c: the
// tree of exactly those strings w for which c·w is in the language of r.
// It is total over every variant/character combination and always builds a
// new tree, leaving r untouched.
func derivative(r Regex, c rune) Regex {
	switch n := r.(type) {
	case *empty, *epsilon:
		return Empty()
	case *literal:
		if n.ch == c {
			return Epsilon()
		}
		return Empty()
	case *concat:
		// ∂c(r·s) = ∂c(r)·s + ν(r)·∂c(s), folded left to right over the
		// n-ary list: deriv carries the derivative of the prefix so far,
		// nul the nullability projection of that prefix.
		deriv := Empty()
		nul := Epsilon()
		for _, p := range n.parts {
			deriv = Or(Concat(deriv, p), Concat(nul, derivative(p, c)))
			nul = Concat(nul, null(p))
		}
		return deriv
	case *or:
		parts := make([]Regex, len(n.parts))
		for i, p := range n.parts {
			parts[i] = derivative(p, c)
		}
		return Or(parts...)
	case *and:
		parts := make([]Regex, len(n.parts))
		for i, p := range n.parts {
			parts[i] = derivative(p, c)
		}
		return And(parts...)
	case *not:
		return Not(derivative(n.sub, c))
	case *star:
		// One unrolled repetition; the closure itself carries on unchanged.
		return Concat(derivative(n.sub, c), n)
	case *remainder:
		return n.step(c)
	default:
		panic(fmt.Sprintf("regex: unknown variant %T", r))
	}
}

// Match reports whether r accepts exactly the whole of s. It steps the tree
// through one derivative per character and accepts when the final tree is
// nullable. Matching never fails; unmatchable characters simply derive the
// tree towards Empty.
//
// Trees are rebuilt on every step without caching, hashing or minimization,
// so the intermediate tree size is not bounded: long inputs against deeply
// nested Or/And/Not combinations can grow combinatorially. Callers bound
// input length or tree complexity when that matters.
func Match(r Regex, s string) bool {
	current := r
	for _, c := range s {
		// Stop as soon as no continuation of the input can be accepted.
		if isEmpty(current) {
			return false
		}
		current = derivative(current, c)
	}
	return nullable(current)
}

// MatchRunes is Match for an already-decoded rune slice, avoiding a second
// UTF-8 pass when the caller holds runes.
func MatchRunes(r Regex, rs []rune) bool {
	current := r
	for _, c := range rs {
		if isEmpty(current) {
			return false
		}
		current = derivative(current, c)
	}
	return nullable(current)
}
