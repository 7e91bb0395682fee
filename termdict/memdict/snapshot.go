package memdict

import (
	"context"
	"encoding/binary"
	"fmt"
	"sort"

	"github.com/RoaringBitmap/roaring/v2"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/hashsplit/blobstore"
	"github.com/hupe1980/hashsplit/codec"
	"github.com/hupe1980/hashsplit/internal/compress"
)

const snapshotVersion = 1

// manifest is the snapshot root document. It is the commit point: field
// blobs are written first, the manifest last, so a crashed Save never leaves
// a loadable half-snapshot behind.
type manifest struct {
	Version     int             `json:"version"`
	Codec       string          `json:"codec"`
	Compression string          `json:"compression"`
	Fields      []manifestField `json:"fields"`
}

type manifestField struct {
	Name  string `json:"name"`
	Blob  string `json:"blob"`
	Terms int    `json:"terms"`
}

// manifestHeader is the self-describing prefix read before the full decode.
type manifestHeader struct {
	Version int    `json:"version"`
	Codec   string `json:"codec"`
}

// SnapshotOptions configure Save.
type SnapshotOptions struct {
	// Codec encodes the manifest. Defaults to codec.Default.
	Codec codec.Codec
	// Compression applies to the field blobs. Defaults to compress.ZSTD.
	Compression compress.Type
}

func manifestBlob(name string) string { return name + "/manifest" }

// Save persists the dictionary under the given snapshot name. Field blobs
// are written concurrently; the manifest is written last.
func (d *Dict) Save(ctx context.Context, store blobstore.BlobStore, name string, optFns ...func(o *SnapshotOptions)) error {
	opts := SnapshotOptions{
		Codec:       codec.Default,
		Compression: compress.ZSTD,
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	fields := d.Fields()

	m := manifest{
		Version:     snapshotVersion,
		Codec:       opts.Codec.Name(),
		Compression: opts.Compression.String(),
		Fields:      make([]manifestField, len(fields)),
	}

	g, gctx := errgroup.WithContext(ctx)
	for i, field := range fields {
		terms := d.Terms(field)
		m.Fields[i] = manifestField{
			Name:  field,
			Blob:  fmt.Sprintf("%s/field-%04d", name, i),
			Terms: len(terms),
		}

		blob := m.Fields[i].Blob
		g.Go(func() error {
			payload, err := d.encodeField(field, terms)
			if err != nil {
				return fmt.Errorf("encode field %q: %w", field, err)
			}
			compressed, err := compress.Compress(payload, opts.Compression)
			if err != nil {
				return fmt.Errorf("compress field %q: %w", field, err)
			}
			if err := store.Put(gctx, blob, compressed); err != nil {
				return fmt.Errorf("put field %q: %w", field, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	data, err := opts.Codec.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	if err := store.Put(ctx, manifestBlob(name), data); err != nil {
		return fmt.Errorf("put manifest: %w", err)
	}
	return nil
}

// Load restores a dictionary from a snapshot written by Save. The manifest
// names the codec and compression used, so Load takes no options.
func Load(ctx context.Context, store blobstore.BlobStore, name string) (*Dict, error) {
	data, err := store.Get(ctx, manifestBlob(name))
	if err != nil {
		return nil, fmt.Errorf("get manifest: %w", err)
	}

	var hdr manifestHeader
	if err := codec.Default.Unmarshal(data, &hdr); err != nil {
		return nil, fmt.Errorf("read manifest header: %w", err)
	}
	if hdr.Version != snapshotVersion {
		return nil, fmt.Errorf("unsupported snapshot version %d", hdr.Version)
	}
	c, ok := codec.ByName(hdr.Codec)
	if !ok {
		return nil, fmt.Errorf("unknown manifest codec %q", hdr.Codec)
	}

	var m manifest
	if err := c.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("unmarshal manifest: %w", err)
	}
	compression, err := compress.ParseType(m.Compression)
	if err != nil {
		return nil, err
	}

	d := New()
	g, gctx := errgroup.WithContext(ctx)
	for _, mf := range m.Fields {
		g.Go(func() error {
			compressed, err := store.Get(gctx, mf.Blob)
			if err != nil {
				return fmt.Errorf("get field %q: %w", mf.Name, err)
			}
			payload, err := compress.Decompress(compressed, compression)
			if err != nil {
				return fmt.Errorf("decompress field %q: %w", mf.Name, err)
			}
			fd, err := decodeField(payload, mf.Terms)
			if err != nil {
				return fmt.Errorf("decode field %q: %w", mf.Name, err)
			}
			d.mu.Lock()
			d.fields[mf.Name] = fd
			d.mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return d, nil
}

// encodeField serializes a field as a uvarint term count followed by
// length-prefixed term/posting pairs, postings in roaring wire format.
func (d *Dict) encodeField(field string, terms []string) ([]byte, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	fd := d.fields[field]
	if fd == nil {
		return binary.AppendUvarint(nil, 0), nil
	}

	buf := binary.AppendUvarint(nil, uint64(len(terms)))
	for _, term := range terms {
		bm := fd.postings[term]
		if bm == nil {
			return nil, fmt.Errorf("term %q has no postings", term)
		}
		pb, err := bm.ToBytes()
		if err != nil {
			return nil, fmt.Errorf("serialize postings of %q: %w", term, err)
		}
		buf = binary.AppendUvarint(buf, uint64(len(term)))
		buf = append(buf, term...)
		buf = binary.AppendUvarint(buf, uint64(len(pb)))
		buf = append(buf, pb...)
	}
	return buf, nil
}

func decodeField(payload []byte, wantTerms int) (*fieldDict, error) {
	count, n := binary.Uvarint(payload)
	if n <= 0 {
		return nil, fmt.Errorf("corrupt term count")
	}
	if int(count) != wantTerms {
		return nil, fmt.Errorf("term count mismatch: manifest %d, blob %d", wantTerms, count)
	}
	payload = payload[n:]

	fd := &fieldDict{
		terms:    make([]string, 0, count),
		postings: make(map[string]*roaring.Bitmap, count),
	}
	for i := uint64(0); i < count; i++ {
		term, rest, err := readChunk(payload)
		if err != nil {
			return nil, fmt.Errorf("term %d: %w", i, err)
		}
		pb, rest, err := readChunk(rest)
		if err != nil {
			return nil, fmt.Errorf("postings of %q: %w", term, err)
		}
		payload = rest

		bm := roaring.New()
		if err := bm.UnmarshalBinary(pb); err != nil {
			return nil, fmt.Errorf("postings of %q: %w", term, err)
		}
		fd.terms = append(fd.terms, string(term))
		fd.postings[string(term)] = bm
	}
	if !sort.StringsAreSorted(fd.terms) {
		return nil, fmt.Errorf("terms not sorted")
	}
	return fd, nil
}

func readChunk(payload []byte) (chunk, rest []byte, err error) {
	size, n := binary.Uvarint(payload)
	if n <= 0 {
		return nil, nil, fmt.Errorf("corrupt length prefix")
	}
	payload = payload[n:]
	if uint64(len(payload)) < size {
		return nil, nil, fmt.Errorf("truncated payload")
	}
	return payload[:size], payload[size:], nil
}
