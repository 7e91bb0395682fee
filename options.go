package hashsplit

type options struct {
	chunkLength int
	prefixes    string
	wildcardOne string
	wildcardAny string
	sizeFixed   bool
	sizeValue   int
}

// Option configures a Splitter built by New.
type Option func(*options)

// WithChunkLength sets the chunk payload length. Values shorter than a
// whole number of chunks keep their short final chunk unpadded. Must be at
// least 1.
func WithChunkLength(n int) Option {
	return func(o *options) {
		o.chunkLength = n
	}
}

// WithPrefixes sets the positional prefix alphabet. The symbol at index
// i%len(prefixes) is prepended to chunk i; symbols must be distinct.
//
// Under variable size mode, values spanning more chunks than the alphabet
// has symbols reuse prefixes cyclically, which makes chunks at colliding
// positions indistinguishable to positional filters. Size the alphabet for
// the longest value you expect to index. Fixed size mode rejects such
// configurations outright.
func WithPrefixes(prefixes string) Option {
	return func(o *options) {
		o.prefixes = prefixes
	}
}

// WithFixedSize declares that every value of the field has exactly n
// bytes. This enables suffix-anchored wildcard patterns and exact length
// windows in prefix and range filters.
func WithFixedSize(n int) Option {
	return func(o *options) {
		o.sizeFixed = true
		o.sizeValue = n
	}
}

// WithWildcardOne sets the single-byte symbol matching exactly one byte in
// wildcard patterns. Must be one byte long.
func WithWildcardOne(symbol string) Option {
	return func(o *options) {
		o.wildcardOne = symbol
	}
}

// WithWildcardAny sets the single-byte symbol matching any byte sequence
// in wildcard patterns. Must be one byte long.
func WithWildcardAny(symbol string) Option {
	return func(o *options) {
		o.wildcardAny = symbol
	}
}
