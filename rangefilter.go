package hashsplit

import (
	"strings"

	"github.com/hupe1980/hashsplit/filter"
)

// RangeFilter builds a filter equivalent to "lower ⪯ x ⪯ upper" on the
// encoded chunk terms, without enumerating candidate values. A nil (or
// empty) bound is absent: the range is open on that side.
//
// Degenerate inputs never fail. Inverted bounds, and equal bounds with an
// exclusive side, yield filter.None; equal inclusive bounds delegate to
// ExactFilter. Both bounds absent is only meaningful under fixed size mode
// ("any value of the expected length") and returns ErrUnboundedRange
// otherwise.
//
// The general decomposition factors the shared chunk prefix of the two
// bounds into exact term conjuncts, then joins three disjuncts at the point
// of divergence: a staircase chain along the lower bound path, a symmetric
// chain along the upper bound path, and one length-bounded range capturing
// every chunk strictly between the diverging chunks. Every clause carries a
// term length window so that terms of different encoded lengths cannot
// satisfy one another's range tests.
//
// Bounds whose byte length differs from the indexed values' are accepted
// but compared chunk-wise, which inherits lexicographic artifacts at the
// final partial chunk (a bound chunk "d00" is below the term "d0000" yet
// above "d0"). Use bounds of the indexed length for precise results.
func (s *Splitter) RangeFilter(field string, lower, upper *string, includeLower, includeUpper bool) (filter.Node, error) {
	var lo, hi string
	if lower != nil {
		lo = *lower
	}
	if upper != nil {
		hi = *upper
	}

	if lo == "" && hi == "" {
		if !s.sizeFixed {
			return nil, ErrUnboundedRange
		}
		return s.anySizedValue(field), nil
	}
	if lo != "" && hi != "" {
		switch cmp := strings.Compare(lo, hi); {
		case cmp > 0:
			return filter.None{}, nil
		case cmp == 0:
			if includeLower && includeUpper {
				return s.ExactFilter(field, lo), nil
			}
			return filter.None{}, nil
		}
	}

	lowerChunks := s.Terms(lo)
	upperChunks := s.Terms(hi)

	remLower, remUpper := 0, 0
	if s.sizeFixed {
		remLower, remUpper = s.sizeValue, s.sizeValue
	}

	// Common-prefix phase. The diverging chunk of either bound stays out of
	// the conjunction: it must remain open to admit values diverging inside
	// the shared prefix.
	var and []filter.Node
	li, ui := 0, 0
	for li < len(lowerChunks)-1 && ui < len(upperChunks)-1 && lowerChunks[li] == upperChunks[ui] {
		and = append(and, filter.NewTerm(field, lowerChunks[li]))
		remLower -= len(lowerChunks[li]) - 1
		remUpper -= len(upperChunks[ui]) - 1
		li++
		ui++
	}

	hasLower := len(lowerChunks) > 0
	hasUpper := len(upperChunks) > 0
	var lowDiv, highDiv string
	if hasLower {
		lowDiv = lowerChunks[li]
	}
	if hasUpper {
		highDiv = upperChunks[ui]
	}

	var or []filter.Node
	if hasLower {
		or = append(or, s.lowerChain(field, lowerChunks[li:], remLower, includeLower, highDiv, hasUpper))
	}

	// Middle filter: every chunk strictly between the two bound paths at
	// the point of divergence. Values in here are inside the range no
	// matter what their deeper chunks hold.
	midLow, midHigh := lowDiv, highDiv
	if !hasLower {
		midLow = symbolAlone(highDiv)
	}
	if !hasUpper {
		midHigh = nextSymbol(lowDiv)
	}
	midRem := remUpper
	if !hasUpper {
		midRem = remLower
	}
	minLen, maxLen := s.lengthWindow(midRem)
	or = append(or, filter.NewRange(field, midLow, midHigh, false, false, minLen, maxLen))

	if hasUpper {
		or = append(or, s.upperChain(field, upperChunks[ui:], remUpper, includeUpper, lowDiv, hasLower))
	}

	and = append(and, filter.NewOr(or...))
	return filter.NewAnd(and...), nil
}

// lowerChain builds the staircase along the lower bound path, starting at
// its diverging chunk. remaining is the value length still to come from
// chunks[0] onward (meaningful under fixed size only).
func (s *Splitter) lowerChain(field string, chunks []string, remaining int, includeLower bool, highDiv string, hasUpper bool) filter.Node {
	c := chunks[0]
	if len(chunks) > 1 {
		// Guarded by the exact diverging chunk: everything below is
		// strictly inside the range upwards, so the descent may scan to the
		// end of each position.
		return filter.NewAnd(
			filter.NewTerm(field, c),
			s.lowerDescend(field, chunks[1:], remaining-(len(c)-1), includeLower),
		)
	}

	minLen, maxLen := s.lengthWindow(remaining)
	if !hasUpper {
		return filter.NewRange(field, c, nextSymbol(c), includeLower, false, minLen, maxLen)
	}
	if c == highDiv {
		// The lower bound's whole encoding is a chunk-aligned prefix of the
		// upper bound's. Values extending this path belong to the upper
		// chain; what is left is the lower bound value itself, which can
		// only exist under variable size.
		if s.sizeFixed || !includeLower {
			return filter.None{}
		}
		return filter.NewRange(field, c, c, true, true, len(c), len(c))
	}
	// Unguarded terminal: cap the scan at the upper bound's diverging
	// chunk. Chunks equal to it are the upper chain's business.
	return filter.NewRange(field, c, highDiv, includeLower, false, minLen, maxLen)
}

func (s *Splitter) lowerDescend(field string, chunks []string, remaining int, includeLower bool) filter.Node {
	c := chunks[0]
	if len(chunks) == 1 {
		minLen, maxLen := s.lengthWindow(remaining)
		return filter.NewRange(field, c, nextSymbol(c), includeLower, false, minLen, maxLen)
	}
	full := 1 + s.chunkLength
	return filter.NewOr(
		// Strictly greater at this position: in range regardless of the
		// deeper chunks.
		filter.NewRange(field, c, nextSymbol(c), false, false, full, full),
		// Exactly on the bound path: recurse one position deeper.
		filter.NewAnd(
			filter.NewTerm(field, c),
			s.lowerDescend(field, chunks[1:], remaining-(len(c)-1), includeLower),
		),
	)
}

// upperChain mirrors lowerChain along the upper bound path.
func (s *Splitter) upperChain(field string, chunks []string, remaining int, includeUpper bool, lowDiv string, hasLower bool) filter.Node {
	c := chunks[0]
	if len(chunks) > 1 {
		return filter.NewAnd(
			filter.NewTerm(field, c),
			s.upperDescend(field, chunks[1:], remaining-(len(c)-1), includeUpper),
		)
	}

	minLen, maxLen := s.lengthWindow(remaining)
	low := symbolAlone(c)
	if hasLower && lowDiv != c {
		low = lowDiv
	}
	return filter.NewRange(field, low, c, false, includeUpper, minLen, maxLen)
}

func (s *Splitter) upperDescend(field string, chunks []string, remaining int, includeUpper bool) filter.Node {
	c := chunks[0]
	if len(chunks) == 1 {
		minLen, maxLen := s.lengthWindow(remaining)
		return filter.NewRange(field, symbolAlone(c), c, false, includeUpper, minLen, maxLen)
	}
	full := 1 + s.chunkLength
	return filter.NewOr(
		filter.NewRange(field, symbolAlone(c), c, false, false, full, full),
		filter.NewAnd(
			filter.NewTerm(field, c),
			s.upperDescend(field, chunks[1:], remaining-(len(c)-1), includeUpper),
		),
	)
}

// anySizedValue matches any value of the expected fixed length: one
// full-chunk wildcard pattern per position, the final chunk truncated when
// the size is not a chunk multiple.
func (s *Splitter) anySizedValue(field string) filter.Node {
	fullChunk := strings.Repeat(string(s.wildcardOne), s.chunkLength)
	n := s.sizeValue / s.chunkLength

	and := make([]filter.Node, 0, n+1)
	for i := 0; i < n; i++ {
		and = append(and, filter.NewPattern(field, string(s.prefix(i))+fullChunk, s.wildcardOne))
	}
	if rem := s.sizeValue % s.chunkLength; rem != 0 {
		and = append(and, filter.NewPattern(field, string(s.prefix(n))+fullChunk[:rem], s.wildcardOne))
	}
	return filter.NewAnd(and...)
}

// lengthWindow returns the term length window for a scan whose chunk has
// remaining value bytes left to cover. Without a fixed size the window
// stays open: the encoded length of the final chunk is unknowable.
func (s *Splitter) lengthWindow(remaining int) (minLen, maxLen int) {
	switch {
	case !s.sizeFixed || remaining < 0:
		return 0, 1 + s.chunkLength
	case remaining < s.chunkLength:
		return 1 + remaining, 1 + remaining
	default:
		return 1 + s.chunkLength, 1 + s.chunkLength
	}
}

// nextSymbol is the exclusive upper bound for scanning a single chunk
// position: the term's first character code + 1. Terms are ordered
// bytewise, so this is the next character, not the next prefix symbol in
// the alphabet.
func nextSymbol(term string) string { return string(term[0] + 1) }

// symbolAlone is the exclusive lower bound for scanning a single chunk
// position: the bare prefix symbol, which no real term equals.
func symbolAlone(term string) string { return term[:1] }
