// Package regex contains the core implementation of the derivative-based
// matching engine. It is intended for internal use by the parent goderiv package.
package regex

import (
	"fmt"
	"strings"
)

// Regex is the abstract syntax tree of a regular language. The variant set is
// sealed: values are built through the constructor functions of this package
// and consumed by structural recursion. Trees are immutable; deriving a tree
// never modifies it, so subtrees may be shared freely between the trees of
// successive matching steps.
type Regex interface {
	// String renders the tree in constructor notation for debugging and
	// test failure output. The rendering is not a parseable pattern syntax.
	String() string

	isRegex()
}

// empty accepts no string at all.
type empty struct{}

// epsilon accepts exactly the empty string.
type epsilon struct{}

// literal accepts exactly one character.
type literal struct {
	ch rune
}

// concat accepts the concatenations of its parts, in order. A concat with no
// parts accepts only the empty string and is the canonical spelling of a
// zero-length literal.
type concat struct {
	parts []Regex
}

// or accepts the union of its parts. A union of nothing accepts nothing.
type or struct {
	parts []Regex
}

// and accepts the intersection of its parts.
type and struct {
	parts []Regex
}

// not accepts the complement of its subtree over the full alphabet.
type not struct {
	sub Regex
}

// star accepts zero or more concatenated repetitions of its subtree.
type star struct {
	sub Regex
}

func (*empty) isRegex()     {}
func (*epsilon) isRegex()   {}
func (*literal) isRegex()   {}
func (*concat) isRegex()    {}
func (*or) isRegex()        {}
func (*and) isRegex()       {}
func (*not) isRegex()       {}
func (*star) isRegex()      {}
func (*remainder) isRegex() {}

// Empty returns the tree that matches no string.
func Empty() Regex { return &empty{} }

// Epsilon returns the tree that matches only the empty string.
func Epsilon() Regex { return &epsilon{} }

// Char returns the tree that matches exactly the single character c.
func Char(c rune) Regex { return &literal{ch: c} }

// Concat returns the ordered concatenation of rs. Concat() with no arguments
// behaves as Epsilon.
func Concat(rs ...Regex) Regex { return &concat{parts: rs} }

// Or returns the union of rs. Or() with no arguments behaves as Empty.
func Or(rs ...Regex) Regex { return &or{parts: rs} }

// And returns the intersection of rs. A string matches only if every part
// matches it.
func And(rs ...Regex) Regex { return &and{parts: rs} }

// Not returns the complement of r: it matches every string r does not match.
func Not(r Regex) Regex { return &not{sub: r} }

// Star returns the Kleene closure of r: zero or more repetitions.
func Star(r Regex) Regex { return &star{sub: r} }

func (*empty) String() string   { return "Empty" }
func (*epsilon) String() string { return "Epsilon" }

func (n *literal) String() string { return fmt.Sprintf("Char(%q)", n.ch) }

func (n *concat) String() string { return renderParts("Concat", n.parts) }
func (n *or) String() string     { return renderParts("Or", n.parts) }
func (n *and) String() string    { return renderParts("And", n.parts) }

func (n *not) String() string  { return "Not(" + n.sub.String() + ")" }
func (n *star) String() string { return "Star(" + n.sub.String() + ")" }

func (n *remainder) String() string {
	return fmt.Sprintf("Remainder(mod %d, cur %d, want %d, scale %d, frac %v)",
		n.divisor, n.current, n.target, n.scale, n.fractional)
}

// renderParts joins the renderings of an n-ary node's children.
func renderParts(name string, parts []Regex) string {
	var sb strings.Builder
	sb.WriteString(name)
	sb.WriteByte('(')
	for i, p := range parts {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.String())
	}
	sb.WriteByte(')')
	return sb.String()
}
