// Package searcher executes filter trees against a term dictionary.
//
// The executor resolves each leaf to a roaring posting set — exact lookups
// for terms, bounded dictionary scans for ranges, prefixes and patterns —
// and combines children with fast multi-way bitmap operations. Siblings of
// a boolean node are evaluated concurrently.
package searcher

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/RoaringBitmap/roaring/v2"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/hashsplit"
	"github.com/hupe1980/hashsplit/filter"
	"github.com/hupe1980/hashsplit/termdict"
)

// Options configure a Searcher.
type Options struct {
	// Logger used for debug traces. Defaults to a noop logger.
	Logger *hashsplit.Logger
	// Parallelism caps concurrent sibling evaluations. Defaults to
	// runtime.GOMAXPROCS(0).
	Parallelism int
}

// Searcher evaluates filter trees against a Dictionary. Safe for concurrent
// use as long as the dictionary is.
type Searcher struct {
	dict   termdict.Dictionary
	logger *hashsplit.Logger
	limit  int
}

// New creates a Searcher over the given dictionary.
func New(dict termdict.Dictionary, optFns ...func(o *Options)) *Searcher {
	opts := Options{
		Logger:      hashsplit.NoopLogger(),
		Parallelism: runtime.GOMAXPROCS(0),
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Parallelism < 1 {
		opts.Parallelism = 1
	}
	return &Searcher{
		dict:   dict,
		logger: opts.Logger,
		limit:  opts.Parallelism,
	}
}

// Search evaluates the filter tree and returns the matching document set.
// The returned bitmap is owned by the caller.
func (s *Searcher) Search(ctx context.Context, n filter.Node) (*roaring.Bitmap, error) {
	bm, err := s.eval(ctx, n)
	if err != nil {
		return nil, err
	}
	s.logger.DebugContext(ctx, "filter evaluated",
		"filter", n.String(),
		"matches", bm.GetCardinality(),
	)
	return bm, nil
}

func (s *Searcher) eval(ctx context.Context, n filter.Node) (*roaring.Bitmap, error) {
	switch n := n.(type) {
	case filter.None:
		return roaring.New(), nil
	case filter.Term:
		return s.evalTerm(ctx, n.Field, n.Term)
	case filter.And:
		return s.evalBool(ctx, n.Children, roaring.FastAnd)
	case filter.Or:
		return s.evalBool(ctx, n.Children, roaring.FastOr)
	case filter.Range:
		return s.evalRange(ctx, n)
	case filter.Prefix:
		return s.evalPrefix(ctx, n)
	case filter.Pattern:
		return s.evalPattern(ctx, n)
	default:
		return nil, fmt.Errorf("searcher: unsupported filter node %T", n)
	}
}

func (s *Searcher) evalTerm(ctx context.Context, field, term string) (*roaring.Bitmap, error) {
	bm, err := s.dict.Postings(ctx, field, term)
	if err != nil {
		return nil, fmt.Errorf("postings %s:%s: %w", field, term, err)
	}
	if bm == nil {
		return roaring.New(), nil
	}
	return bm, nil
}

// evalBool evaluates the children concurrently and combines the results
// with a multi-way bitmap operation.
func (s *Searcher) evalBool(ctx context.Context, children []filter.Node, combine func(...*roaring.Bitmap) *roaring.Bitmap) (*roaring.Bitmap, error) {
	results := make([]*roaring.Bitmap, len(children))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.limit)
	for i, child := range children {
		g.Go(func() error {
			bm, err := s.eval(gctx, child)
			if err != nil {
				return err
			}
			results[i] = bm
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return combine(results...), nil
}

// errStopScan aborts a dictionary enumeration early without failing it.
var errStopScan = errors.New("stop scan")

func (s *Searcher) evalRange(ctx context.Context, n filter.Range) (*roaring.Bitmap, error) {
	agg := roaring.New()
	err := s.dict.AscendRange(ctx, n.Field, n.Low, n.High, n.IncludeLow, n.IncludeHigh,
		func(term string, postings *roaring.Bitmap) error {
			if lengthInWindow(len(term), n.MinLen, n.MaxLen) {
				agg.Or(postings)
			}
			return nil
		})
	if err != nil {
		return nil, fmt.Errorf("range scan %s: %w", n.String(), err)
	}
	return agg, nil
}

// evalPrefix scans [prefix, incremented-prefix). When the increment carries
// all the way out the scan is unbounded above and stops at the first
// non-matching term instead.
func (s *Searcher) evalPrefix(ctx context.Context, n filter.Prefix) (*roaring.Bitmap, error) {
	agg := roaring.New()
	high := incrementBytes(n.Prefix)
	err := s.dict.AscendRange(ctx, n.Field, n.Prefix, high, true, false,
		func(term string, postings *roaring.Bitmap) error {
			if !strings.HasPrefix(term, n.Prefix) {
				return errStopScan
			}
			if lengthInWindow(len(term), n.MinLen, n.MaxLen) {
				agg.Or(postings)
			}
			return nil
		})
	if err != nil && !errors.Is(err, errStopScan) {
		return nil, fmt.Errorf("prefix scan %s: %w", n.String(), err)
	}
	return agg, nil
}

// evalPattern scans terms sharing the pattern's constant prefix and keeps
// those of equal length matching it byte for byte.
func (s *Searcher) evalPattern(ctx context.Context, n filter.Pattern) (*roaring.Bitmap, error) {
	wc := strings.IndexByte(n.Term, n.WildcardOne)
	if wc < 0 {
		return s.evalTerm(ctx, n.Field, n.Term)
	}

	prefix := n.Term[:wc]
	agg := roaring.New()
	high := incrementBytes(prefix)
	err := s.dict.AscendRange(ctx, n.Field, prefix, high, true, false,
		func(term string, postings *roaring.Bitmap) error {
			if !strings.HasPrefix(term, prefix) {
				return errStopScan
			}
			if matchPattern(term, n.Term, n.WildcardOne) {
				agg.Or(postings)
			}
			return nil
		})
	if err != nil && !errors.Is(err, errStopScan) {
		return nil, fmt.Errorf("pattern scan %s: %w", n.String(), err)
	}
	return agg, nil
}

func lengthInWindow(l, minLen, maxLen int) bool {
	if l < minLen {
		return false
	}
	if maxLen > 0 && l > maxLen {
		return false
	}
	return true
}

func matchPattern(term, pattern string, wildcardOne byte) bool {
	if len(term) != len(pattern) {
		return false
	}
	for i := 0; i < len(pattern); i++ {
		if pattern[i] != wildcardOne && pattern[i] != term[i] {
			return false
		}
	}
	return true
}

// incrementBytes returns the smallest string greater than every string
// prefixed by s, by incrementing the last non-0xFF byte. An empty result
// means no upper bound exists.
func incrementBytes(s string) string {
	b := []byte(s)
	for i := len(b) - 1; i >= 0; i-- {
		if b[i] < 0xFF {
			b[i]++
			return string(b[:i+1])
		}
	}
	return ""
}
