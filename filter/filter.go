package filter

import (
	"fmt"
	"strings"
)

// Node is one node of an immutable boolean filter tree.
//
// Trees are built functionally by the query constructors and handed to an
// executor (see the searcher package) that resolves the leaves against a
// term dictionary and combines the resulting posting sets. A Node carries
// no state of its own and is safe to share between goroutines.
type Node interface {
	fmt.Stringer

	isNode()
}

// And matches documents matched by every child.
type And struct {
	Children []Node
}

// Or matches documents matched by at least one child.
type Or struct {
	Children []Node
}

// Term matches documents whose field contains the exact dictionary term.
type Term struct {
	Field string
	Term  string
}

// Range matches documents with at least one dictionary term inside the
// lexicographic byte range [Low, High], subject to the inclusivity flags,
// whose total term length falls inside [MinLen, MaxLen].
//
// An empty High means the range is unbounded above. The length window is
// what keeps terms of different encoded lengths from bleeding into each
// other: "b1" sorts before "b10" even though it denotes a shorter, logically
// different encoding. MaxLen 0 means no length restriction.
type Range struct {
	Field       string
	Low         string
	High        string
	IncludeLow  bool
	IncludeHigh bool
	MinLen      int
	MaxLen      int
}

// Prefix matches documents with at least one dictionary term starting with
// Prefix, whose total term length falls inside [MinLen, MaxLen].
type Prefix struct {
	Field  string
	Prefix string
	MinLen int
	MaxLen int
}

// Pattern matches documents with at least one dictionary term equal in
// length to Term and matching it byte for byte, where WildcardOne in Term
// matches any single byte.
type Pattern struct {
	Field       string
	Term        string
	WildcardOne byte
}

// None matches no documents.
type None struct{}

func (And) isNode()     {}
func (Or) isNode()      {}
func (Term) isNode()    {}
func (Range) isNode()   {}
func (Prefix) isNode()  {}
func (Pattern) isNode() {}
func (None) isNode()    {}

// NewAnd builds a conjunction. Zero children collapse to None, a single
// child is returned as-is.
func NewAnd(children ...Node) Node {
	switch len(children) {
	case 0:
		return None{}
	case 1:
		return children[0]
	}
	return And{Children: children}
}

// NewOr builds a disjunction. Zero children collapse to None, a single
// child is returned as-is.
func NewOr(children ...Node) Node {
	switch len(children) {
	case 0:
		return None{}
	case 1:
		return children[0]
	}
	return Or{Children: children}
}

// NewTerm builds an exact term leaf.
func NewTerm(field, term string) Node {
	return Term{Field: field, Term: term}
}

// NewRange builds a length-bounded term range leaf.
func NewRange(field, low, high string, includeLow, includeHigh bool, minLen, maxLen int) Node {
	return Range{
		Field:       field,
		Low:         low,
		High:        high,
		IncludeLow:  includeLow,
		IncludeHigh: includeHigh,
		MinLen:      minLen,
		MaxLen:      maxLen,
	}
}

// NewPrefix builds a length-bounded term prefix leaf.
func NewPrefix(field, prefix string, minLen, maxLen int) Node {
	return Prefix{Field: field, Prefix: prefix, MinLen: minLen, MaxLen: maxLen}
}

// NewPattern builds a single-chunk wildcard leaf.
func NewPattern(field, term string, wildcardOne byte) Node {
	return Pattern{Field: field, Term: term, WildcardOne: wildcardOne}
}

func (n And) String() string  { return joinChildren("AND", n.Children) }
func (n Or) String() string   { return joinChildren("OR", n.Children) }
func (n Term) String() string { return fmt.Sprintf("%s:%s", n.Field, n.Term) }

func (n Range) String() string {
	var b strings.Builder
	b.WriteString(n.Field)
	b.WriteByte(':')
	if n.IncludeLow {
		b.WriteByte('[')
	} else {
		b.WriteByte('{')
	}
	b.WriteString(n.Low)
	b.WriteString(" TO ")
	if n.High == "" {
		b.WriteByte('*')
	} else {
		b.WriteString(n.High)
	}
	if n.IncludeHigh {
		b.WriteByte(']')
	} else {
		b.WriteByte('}')
	}
	fmt.Fprintf(&b, " len:[%d,%d]", n.MinLen, n.MaxLen)
	return b.String()
}

func (n Prefix) String() string {
	return fmt.Sprintf("%s:%s* len:[%d,%d]", n.Field, n.Prefix, n.MinLen, n.MaxLen)
}

func (n Pattern) String() string { return fmt.Sprintf("%s:~%s", n.Field, n.Term) }

func (None) String() string { return "NONE" }

func joinChildren(op string, children []Node) string {
	var b strings.Builder
	b.WriteByte('(')
	for i, c := range children {
		if i > 0 {
			b.WriteByte(' ')
			b.WriteString(op)
			b.WriteByte(' ')
		}
		b.WriteString(c.String())
	}
	b.WriteByte(')')
	return b.String()
}
