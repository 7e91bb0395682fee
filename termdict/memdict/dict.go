// Package memdict provides an in-memory term dictionary with roaring
// posting sets. It is the reference Dictionary implementation: small enough
// to read, complete enough to index real corpora, and snapshot-persistable
// through a blob store.
package memdict

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/hashsplit/termdict"
)

// Dict keeps one sorted term list per field, each term carrying a roaring
// posting set. Safe for concurrent use; writers block readers.
type Dict struct {
	mu     sync.RWMutex
	fields map[string]*fieldDict
}

type fieldDict struct {
	terms    []string // sorted ascending
	postings map[string]*roaring.Bitmap
}

var _ termdict.Dictionary = (*Dict)(nil)

// New creates an empty dictionary.
func New() *Dict {
	return &Dict{fields: make(map[string]*fieldDict)}
}

// Add records doc in the posting set of term. Adding the same pair twice is
// a no-op.
func (d *Dict) Add(field, term string, doc uint32) {
	d.mu.Lock()
	defer d.mu.Unlock()

	fd := d.fields[field]
	if fd == nil {
		fd = &fieldDict{postings: make(map[string]*roaring.Bitmap)}
		d.fields[field] = fd
	}

	bm := fd.postings[term]
	if bm == nil {
		bm = roaring.New()
		fd.postings[term] = bm
		i := sort.SearchStrings(fd.terms, term)
		fd.terms = append(fd.terms, "")
		copy(fd.terms[i+1:], fd.terms[i:])
		fd.terms[i] = term
	}
	bm.Add(doc)
}

// AddTerms records doc in the posting sets of all terms at once.
func (d *Dict) AddTerms(field string, doc uint32, terms ...string) {
	for _, t := range terms {
		d.Add(field, t, doc)
	}
}

// Fields returns the field names present in the dictionary, sorted.
func (d *Dict) Fields() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	names := make([]string, 0, len(d.fields))
	for name := range d.fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Terms returns a copy of the sorted term list of a field.
func (d *Dict) Terms(field string) []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	fd := d.fields[field]
	if fd == nil {
		return nil
	}
	terms := make([]string, len(fd.terms))
	copy(terms, fd.terms)
	return terms
}

// Postings returns a copy of the posting set of an exact term, or nil when
// the term is absent.
func (d *Dict) Postings(_ context.Context, field, term string) (*roaring.Bitmap, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	fd := d.fields[field]
	if fd == nil {
		return nil, nil
	}
	bm := fd.postings[term]
	if bm == nil {
		return nil, nil
	}
	return bm.Clone(), nil
}

// AscendRange enumerates terms in [low, high] in sorted order. The visitor
// runs under the dictionary's read lock and must not call write methods.
func (d *Dict) AscendRange(ctx context.Context, field, low, high string, includeLow, includeHigh bool, visit func(term string, postings *roaring.Bitmap) error) error {
	d.mu.RLock()
	defer d.mu.RUnlock()

	fd := d.fields[field]
	if fd == nil {
		return nil
	}

	i := sort.SearchStrings(fd.terms, low)
	if !includeLow && i < len(fd.terms) && fd.terms[i] == low {
		i++
	}
	for n := 0; i < len(fd.terms); i, n = i+1, n+1 {
		if n%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		term := fd.terms[i]
		if high != "" {
			if c := strings.Compare(term, high); c > 0 || (c == 0 && !includeHigh) {
				break
			}
		}
		if err := visit(term, fd.postings[term]); err != nil {
			return err
		}
	}
	return nil
}
