package hashsplit

import "fmt"

const (
	// DefaultChunkLength is the chunk payload length used when no
	// WithChunkLength option is given.
	DefaultChunkLength = 1

	// DefaultPrefixes is the default positional prefix alphabet. With 64
	// symbols it covers values of up to 64 chunks before prefixes repeat.
	DefaultPrefixes = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789,."

	// DefaultWildcardOne is the default single-byte wildcard symbol.
	DefaultWildcardOne = "?"

	// DefaultWildcardAny is the default any-sequence wildcard symbol.
	DefaultWildcardAny = "*"
)

// Splitter holds the immutable encoding parameters of one field: chunk
// length, prefix alphabet, wildcard symbols, and size mode. It is built
// once by New, validated eagerly, and shared by every encoding and
// query-composition operation.
type Splitter struct {
	chunkLength int
	prefixes    string
	wildcardOne byte
	wildcardAny byte
	sizeFixed   bool
	sizeValue   int
}

// New builds a Splitter from the given options, applying defaults for
// anything not set. All configuration errors are reported here; the
// per-call operations never fail for any string input afterwards.
func New(optFns ...Option) (*Splitter, error) {
	o := options{
		chunkLength: DefaultChunkLength,
		prefixes:    DefaultPrefixes,
		wildcardOne: DefaultWildcardOne,
		wildcardAny: DefaultWildcardAny,
	}
	for _, fn := range optFns {
		fn(&o)
	}

	if o.chunkLength < 1 {
		return nil, &ErrInvalidChunkLength{Length: o.chunkLength}
	}
	if o.sizeFixed && o.sizeValue < 0 {
		return nil, &ErrInvalidSize{Size: o.sizeValue}
	}
	if len(o.wildcardOne) != 1 {
		return nil, &ErrInvalidWildcard{Name: "wildcard_one", Symbol: o.wildcardOne}
	}
	if len(o.wildcardAny) != 1 {
		return nil, &ErrInvalidWildcard{Name: "wildcard_any", Symbol: o.wildcardAny}
	}
	if len(o.prefixes) == 0 {
		return nil, ErrEmptyPrefixes
	}
	var seen [256]bool
	for i := 0; i < len(o.prefixes); i++ {
		c := o.prefixes[i]
		if seen[c] {
			return nil, &ErrDuplicatePrefix{Symbol: c}
		}
		seen[c] = true
	}
	if o.sizeFixed {
		// Reject configurations where prefixes would repeat within a single
		// value: a collision between distant chunk positions silently turns
		// positional terms ambiguous.
		need := (o.sizeValue + o.chunkLength - 1) / o.chunkLength
		if need > len(o.prefixes) {
			return nil, &ErrPrefixAlphabetTooShort{Need: need, Have: len(o.prefixes)}
		}
	}

	return &Splitter{
		chunkLength: o.chunkLength,
		prefixes:    o.prefixes,
		wildcardOne: o.wildcardOne[0],
		wildcardAny: o.wildcardAny[0],
		sizeFixed:   o.sizeFixed,
		sizeValue:   o.sizeValue,
	}, nil
}

// ChunkLength returns the configured chunk payload length.
func (s *Splitter) ChunkLength() int { return s.chunkLength }

// Prefixes returns the positional prefix alphabet.
func (s *Splitter) Prefixes() string { return s.prefixes }

// FixedSize returns the configured value length and true under fixed size
// mode, or 0 and false under variable size mode.
func (s *Splitter) FixedSize() (int, bool) { return s.sizeValue, s.sizeFixed }

func (s *Splitter) String() string {
	size := "variable"
	if s.sizeFixed {
		size = fmt.Sprintf("%d", s.sizeValue)
	}
	return fmt.Sprintf("Splitter(chunk_length:%d prefixes:%q size:%s wildcards:%c%c)",
		s.chunkLength, s.prefixes, size, s.wildcardOne, s.wildcardAny)
}

// prefix returns the positional prefix symbol for the chunk at index i.
func (s *Splitter) prefix(i int) byte {
	return s.prefixes[i%len(s.prefixes)]
}
