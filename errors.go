package hashsplit

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyPrefixes is returned by New when the prefix alphabet is empty.
	ErrEmptyPrefixes = errors.New("prefix alphabet must not be empty")

	// ErrUnboundedRange is returned by RangeFilter when both bounds are
	// absent under variable size mode: without a known value length there
	// is no finite chunk sequence to constrain.
	ErrUnboundedRange = errors.New("unbounded range requires a fixed size")
)

// ErrInvalidChunkLength indicates a chunk length below 1.
type ErrInvalidChunkLength struct {
	Length int
}

func (e *ErrInvalidChunkLength) Error() string {
	return fmt.Sprintf("chunk length must be greater than zero, got %d", e.Length)
}

// ErrInvalidSize indicates a negative fixed size.
type ErrInvalidSize struct {
	Size int
}

func (e *ErrInvalidSize) Error() string {
	return fmt.Sprintf("fixed size must not be negative, got %d", e.Size)
}

// ErrInvalidWildcard indicates a wildcard symbol that is not exactly one
// byte long.
type ErrInvalidWildcard struct {
	Name   string // "wildcard_one" or "wildcard_any"
	Symbol string
}

func (e *ErrInvalidWildcard) Error() string {
	return fmt.Sprintf("%s must be a single byte, got %q", e.Name, e.Symbol)
}

// ErrDuplicatePrefix indicates a prefix alphabet with a repeated symbol.
type ErrDuplicatePrefix struct {
	Symbol byte
}

func (e *ErrDuplicatePrefix) Error() string {
	return fmt.Sprintf("prefix alphabet contains duplicate symbol %q", e.Symbol)
}

// ErrPrefixAlphabetTooShort indicates a fixed-size configuration whose
// values span more chunks than the prefix alphabet has symbols, which
// would silently reuse prefixes across distant chunk positions.
type ErrPrefixAlphabetTooShort struct {
	Need int
	Have int
}

func (e *ErrPrefixAlphabetTooShort) Error() string {
	return fmt.Sprintf("prefix alphabet has %d symbols but values span %d chunks", e.Have, e.Need)
}
