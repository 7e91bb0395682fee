package hashsplit

import "iter"

// Token is one positional chunk term of an encoded value, together with
// the byte offsets of its payload inside the original value. The offsets
// make the encoder usable as a tokenization stage in indexing pipelines
// that track term positions.
type Token struct {
	Term  string
	Start int
	End   int
}

// Tokens encodes value into its chunk terms, lazily. The returned sequence
// is restartable: ranging over it again re-encodes from the start.
//
// The value is split into consecutive payloads of ChunkLength bytes (the
// last may be shorter, never padded), each prepended with its positional
// prefix symbol. Encoding is total and deterministic; an empty value yields
// an empty sequence.
func (s *Splitter) Tokens(value string) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for i, pos := 0, 0; pos < len(value); i, pos = i+1, pos+s.chunkLength {
			end := pos + s.chunkLength
			if end > len(value) {
				end = len(value)
			}
			t := Token{
				Term:  string(s.prefix(i)) + value[pos:end],
				Start: pos,
				End:   end,
			}
			if !yield(t) {
				return
			}
		}
	}
}

// Terms encodes value and materializes the chunk terms.
func (s *Splitter) Terms(value string) []string {
	if value == "" {
		return nil
	}
	terms := make([]string, 0, (len(value)+s.chunkLength-1)/s.chunkLength)
	for t := range s.Tokens(value) {
		terms = append(terms, t.Term)
	}
	return terms
}
