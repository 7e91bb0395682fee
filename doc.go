// Package hashsplit lets an inverted-index search engine answer exact,
// prefix, wildcard, and lexicographic-range queries against opaque
// fixed- or variable-length tokens (content hashes, hex or base32
// identifiers) without enumerating the whole term dictionary.
//
// Values are indexed as a sequence of chunks. Each chunk is at most
// ChunkLength bytes of the value, prepended with a single symbol taken
// cyclically from a prefix alphabet that encodes the chunk position:
//
//	s, _ := hashsplit.New(
//	    hashsplit.WithChunkLength(4),
//	    hashsplit.WithPrefixes("abcd"),
//	    hashsplit.WithFixedSize(16),
//	)
//	s.Terms("0000111100000000") // ["a0000", "b1111", "c0000", "d0000"]
//
// At query time a value, pattern, or bound pair is decomposed into a
// boolean tree of term and length-bounded range lookups (see the filter
// package). The tree can be evaluated by the searcher package against any
// termdict.Dictionary, or translated into a host engine's native
// primitives.
//
// # Queries
//
// Four constructors cover the supported query shapes:
//
//	f := s.ExactFilter("hash", "0011223344556677")
//	f := s.PrefixFilter("hash", "00112233")
//	f := s.WildcardFilter("hash", "0011??33*")
//	f, err := s.RangeFilter("hash", &lower, &upper, true, true)
//
// Range decomposition is the interesting part: the shared chunk prefix of
// the two bounds is factored into exact term matches, the diverging
// remainders become two per-position staircases of term and range clauses,
// and a single length-bounded range captures everything strictly between
// the bound paths. The whole filter stays O(chunk count) in size no matter
// how many documents the range spans.
//
// # Size modes
//
// A field either holds values of one known, fixed length, or values of
// varying length. Fixed size enables suffix-anchored wildcards (an inner
// "*" expands to the exact number of "?" fillers) and tightens the length
// windows of range and prefix clauses. With variable size, distinct values
// can share their full chunk sequence (a value that is a chunk-aligned
// prefix of another emits a subset of its terms), so term-level filters
// cannot always tell them apart; fixed size is the precise regime.
//
// All Splitter operations are pure and allocate only call-local state, so
// a single Splitter may be shared freely across goroutines.
package hashsplit
