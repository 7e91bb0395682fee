package hashsplit

import (
	"github.com/hupe1980/hashsplit/filter"
)

// ExactFilter builds a filter matching documents whose field equals value:
// the conjunction of an exact term lookup per chunk. An empty value yields
// filter.None.
//
// Under variable size mode a value that extends another by whole chunks
// shares all of the shorter value's terms, so the shorter value's exact
// filter also admits the longer one; fixed size mode has no such aliasing.
func (s *Splitter) ExactFilter(field, value string) filter.Node {
	var and []filter.Node
	for t := range s.Tokens(value) {
		and = append(and, filter.NewTerm(field, t.Term))
	}
	return filter.NewAnd(and...)
}

// PrefixFilter builds a filter matching documents whose field starts with
// value. Whole chunks become exact term lookups. A partial final chunk
// becomes a length-bounded prefix enumeration: any term extending the
// partial payload, with the length window pinned to the exact remaining
// size when it is known.
func (s *Splitter) PrefixFilter(field, value string) filter.Node {
	remaining := 0
	if s.sizeFixed {
		remaining = s.sizeValue
	}

	var and []filter.Node
	for t := range s.Tokens(value) {
		term := t.Term
		if len(term) < 1+s.chunkLength {
			var minLen, maxLen int
			switch {
			case remaining >= s.chunkLength:
				minLen, maxLen = 1+s.chunkLength, 1+s.chunkLength
			case remaining > 0:
				minLen, maxLen = 1+remaining, 1+remaining
			default:
				minLen, maxLen = len(term), 1+s.chunkLength
			}
			and = append(and, filter.NewPrefix(field, term, minLen, maxLen))
		} else {
			and = append(and, filter.NewTerm(field, term))
		}
		remaining -= len(term) - 1
	}
	return filter.NewAnd(and...)
}

// WildcardFilter builds a filter matching documents whose field matches
// pattern. The pattern is decomposed by SearchTokens; each surviving chunk
// token contributes one conjunct. A pattern that constrains nothing (empty,
// or wildcards only) yields filter.None.
func (s *Splitter) WildcardFilter(field, pattern string) filter.Node {
	var and []filter.Node
	for _, t := range s.SearchTokens(pattern) {
		switch t.Kind {
		case SearchPrefix:
			and = append(and, filter.NewPrefix(field, t.Term, len(t.Term), 1+s.chunkLength))
		case SearchWildcard:
			and = append(and, filter.NewPattern(field, t.Term, s.wildcardOne))
		default:
			and = append(and, filter.NewTerm(field, t.Term))
		}
	}
	return filter.NewAnd(and...)
}
