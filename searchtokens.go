package hashsplit

import "strings"

// SearchTokenKind classifies one chunk-level search token.
type SearchTokenKind uint8

const (
	// SearchExact is a chunk term without wildcard symbols, matched by an
	// exact dictionary lookup.
	SearchExact SearchTokenKind = iota
	// SearchPrefix is a partial final chunk, matched by a length-bounded
	// prefix enumeration.
	SearchPrefix
	// SearchWildcard is a chunk term containing wildcard-one symbols,
	// matched by a per-chunk pattern scan.
	SearchWildcard
)

func (k SearchTokenKind) String() string {
	switch k {
	case SearchExact:
		return "exact"
	case SearchPrefix:
		return "prefix"
	case SearchWildcard:
		return "wildcard"
	default:
		return "unknown"
	}
}

// SearchToken is one chunk-level token generated from a query pattern.
type SearchToken struct {
	Term string
	Kind SearchTokenKind
}

// SearchTokens turns a query pattern, possibly containing wildcard
// symbols, into its ordered chunk-level search tokens.
//
// The wildcard-any symbol is normalized first. A single trailing
// occurrence is dropped, leaving an open-ended prefix pattern. A single
// interior occurrence under fixed size is expanded to the exact number of
// wildcard-one fillers that anchors the suffix. Any other placement —
// multiple occurrences, or an interior occurrence under variable size —
// cannot be anchored; every occurrence is deleted and the remainder is
// matched as if the symbol had not been written. This leniency mirrors
// deployed behavior; see New for the validations that are enforced.
//
// The normalized pattern is then right-padded with wildcard-one up to a
// chunk boundary, split into prefixed chunks like Tokens, and chunks whose
// payload is entirely wildcard-one are dropped: a blank chunk constrains
// nothing and must not be emitted. Prefix symbols stay positional, so a
// dropped chunk does not shift the prefixes of later ones.
func (s *Splitter) SearchTokens(pattern string) []SearchToken {
	in := s.normalizeAny(pattern)

	// Pad the last chunk with wildcard-one symbols.
	if rem := len(in) % s.chunkLength; rem != 0 {
		in += strings.Repeat(string(s.wildcardOne), s.chunkLength-rem)
	}

	var tokens []SearchToken
	for i, pos := 0, 0; pos < len(in); i, pos = i+1, pos+s.chunkLength {
		payload := in[pos : pos+s.chunkLength]
		if strings.Count(payload, string(s.wildcardOne)) == len(payload) {
			// Blank chunk, skip it.
			continue
		}
		term := string(s.prefix(i)) + payload
		tokens = append(tokens, SearchToken{Term: term, Kind: s.classify(term)})
	}
	return tokens
}

func (s *Splitter) classify(term string) SearchTokenKind {
	if strings.IndexByte(term, s.wildcardOne) >= 0 {
		return SearchWildcard
	}
	if len(term) < 1+s.chunkLength {
		return SearchPrefix
	}
	return SearchExact
}

// normalizeAny resolves wildcard-any occurrences in pattern, returning a
// pattern containing at most wildcard-one symbols.
func (s *Splitter) normalizeAny(pattern string) string {
	first := strings.IndexByte(pattern, s.wildcardAny)
	if first < 0 {
		return pattern
	}
	last := len(pattern) - 1
	switch {
	case first < last && (!s.sizeFixed || strings.IndexByte(pattern[first+1:], s.wildcardAny) >= 0):
		// Either variable size with an interior occurrence, or multiple
		// occurrences: the symbol cannot be anchored. Drop every occurrence
		// and match the remainder literally.
		return strings.ReplaceAll(pattern, string(s.wildcardAny), "")
	case first == last:
		// Trailing occurrence: open-ended prefix.
		return pattern[:last]
	default:
		// Single interior occurrence under fixed size: expand to the exact
		// number of single-byte wildcards, anchoring the suffix.
		n := s.sizeValue - len(pattern) + 1
		if n < 0 {
			n = 0
		}
		return pattern[:first] + strings.Repeat(string(s.wildcardOne), n) + pattern[first+1:]
	}
}
