package termdict

import (
	"context"

	"github.com/RoaringBitmap/roaring/v2"
)

// Dictionary is the host-index surface the filter executor runs against:
// an exact term lookup plus a sorted term enumeration with inclusivity
// flags. Term byte lengths are visible during enumeration through the term
// itself, which is what length-bounded range filters rely on.
//
// Implementations must be safe for concurrent readers. Methods should honor
// context cancellation for long enumerations; the executor never retries a
// failed call.
type Dictionary interface {
	// Postings returns the posting set of an exact term, or nil when the
	// term is not in the dictionary. The returned bitmap must not be
	// modified by the caller.
	Postings(ctx context.Context, field, term string) (*roaring.Bitmap, error)

	// AscendRange enumerates terms of the field inside the byte range
	// [low, high] in sorted order, subject to the inclusivity flags, and
	// calls visit for each with its posting set. An empty high means the
	// enumeration is unbounded above.
	//
	// If visit returns an error the enumeration stops and that error is
	// returned. The bitmap passed to visit is only valid for the duration
	// of the call.
	AscendRange(ctx context.Context, field, low, high string, includeLow, includeHigh bool, visit func(term string, postings *roaring.Bitmap) error) error
}
