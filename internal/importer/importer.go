// Package importer bulk-loads products from gzipped NDJSON dumps.
//
// Every file is read by its own goroutine. Rows are normalized with the wire
// codec, validated and handed to a single writer that drops products a vendor
// already sells (same name, ignoring case) and inserts the rest in batches.
package importer

import (
	"bufio"
	"bytes"
	"context"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	pgzip "github.com/klauspost/pgzip"
	"golang.org/x/sync/errgroup"

	"github.com/etalasekita/etalase/internal/domain/catalog"
	"github.com/etalasekita/etalase/internal/wire"
)

const (
	defaultBatchSize = 1000
	defaultCapacity  = 1_000_000
	bloomFPR         = 0.001
	progressEvery    = 100_000
	maxLineSize      = 1 << 20
)

// Store is the product storage used by the importer.
type Store interface {
	// Keys calls fn for every stored product with its vendor id and
	// lowercased name.
	Keys(ctx context.Context, fn func(vendorID int64, name string)) error
	Exists(ctx context.Context, vendorID int64, name string) (bool, error)
	CopyFrom(ctx context.Context, products []catalog.NewProduct) (int64, error)
}

// Stats summarizes an import run.
type Stats struct {
	Read      int64
	Invalid   int64
	Duplicate int64
	Inserted  int64
}

// Option configures an Importer.
type Option func(*Importer)

// WithBatchSize sets how many rows are sent to the store per COPY.
func WithBatchSize(n int) Option {
	return func(im *Importer) {
		if n > 0 {
			im.batchSize = n
		}
	}
}

// WithCapacity sets the expected number of distinct products, which sizes
// the duplicate filter.
func WithCapacity(n uint) Option {
	return func(im *Importer) {
		if n > 0 {
			im.capacity = n
		}
	}
}

// WithLogger sets the progress logger.
func WithLogger(lg *slog.Logger) Option {
	return func(im *Importer) {
		if lg != nil {
			im.lg = lg
		}
	}
}

// Importer loads product dumps into a Store.
type Importer struct {
	store     Store
	batchSize int
	capacity  uint
	lg        *slog.Logger
}

func New(store Store, opts ...Option) *Importer {
	im := &Importer{
		store:     store,
		batchSize: defaultBatchSize,
		capacity:  defaultCapacity,
		lg:        slog.Default(),
	}
	for _, o := range opts {
		o(im)
	}
	return im
}

// Run imports every file and returns what happened to the rows. Stats are
// valid up to the point of failure when an error is returned.
func (im *Importer) Run(ctx context.Context, files []string) (Stats, error) {
	seen := bloom.NewWithEstimates(im.capacity, bloomFPR)
	var existing int
	if err := im.store.Keys(ctx, func(vendorID int64, name string) {
		seen.AddString(productKey(vendorID, name))
		existing++
	}); err != nil {
		return Stats{}, errors.Wrap(err, "load existing products")
	}
	im.lg.Info("duplicate filter ready", slog.Int("existing", existing))

	var (
		read, invalid atomic.Int64
		w             = &writer{im: im, seen: seen, pending: map[string]struct{}{}}
		rows          = make(chan catalog.NewProduct, im.batchSize)
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(rows)

		rg, rctx := errgroup.WithContext(gctx)
		for _, path := range files {
			rg.Go(func() error {
				return im.readFile(rctx, path, rows, &read, &invalid)
			})
		}
		return rg.Wait()
	})
	g.Go(func() error {
		return w.run(gctx, rows)
	})

	err := g.Wait()
	stats := Stats{
		Read:      read.Load(),
		Invalid:   invalid.Load(),
		Duplicate: w.duplicate,
		Inserted:  w.inserted,
	}
	return stats, err
}

func (im *Importer) readFile(
	ctx context.Context,
	path string,
	rows chan<- catalog.NewProduct,
	read, invalid *atomic.Int64,
) error {
	var n int64
	err := streamGzFile(ctx, path, func(line int, data []byte) error {
		read.Add(1)
		n++
		if n%progressEvery == 0 {
			im.lg.Info("read progress", slog.String("file", path), slog.Int64("rows", n))
		}

		p, err := parseRow(data)
		if err != nil {
			invalid.Add(1)
			im.lg.Warn("skip row",
				slog.String("file", path),
				slog.Int("line", line),
				slog.String("error", err.Error()),
			)
			return nil
		}

		select {
		case rows <- p:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	})
	if err != nil {
		return errors.Wrapf(err, "read %s", path)
	}

	im.lg.Info("file complete", slog.String("file", path), slog.Int64("rows", n))
	return nil
}

// parseRow decodes and validates one product row.
func parseRow(data []byte) (catalog.NewProduct, error) {
	row, err := wire.DecodeProduct(jx.DecodeBytes(data))
	if err != nil {
		return catalog.NewProduct{}, errors.Wrap(err, "decode")
	}
	p := catalog.NewProduct{
		Name:            row.Name,
		Description:     row.Description,
		LongDescription: row.LongDescription,
		Price:           row.Price,
		Image:           row.Image,
		CategorySlug:    row.CategorySlug,
		VendorID:        row.VendorID,
		Featured:        row.Featured,
	}
	if err := p.Validate(); err != nil {
		return catalog.NewProduct{}, err
	}
	return p, nil
}

func productKey(vendorID int64, name string) string {
	return strconv.FormatInt(vendorID, 10) + "/" + strings.ToLower(name)
}

// writer owns the duplicate filter and the current batch.
type writer struct {
	im      *Importer
	seen    *bloom.BloomFilter
	pending map[string]struct{}
	batch   []catalog.NewProduct

	duplicate int64
	inserted  int64
}

func (w *writer) run(ctx context.Context, rows <-chan catalog.NewProduct) error {
	for p := range rows {
		dup, err := w.isDuplicate(ctx, p)
		if err != nil {
			return err
		}
		if dup {
			w.duplicate++
			continue
		}

		key := productKey(p.VendorID, p.Name)
		w.seen.AddString(key)
		w.pending[key] = struct{}{}
		w.batch = append(w.batch, p)

		if len(w.batch) >= w.im.batchSize {
			if err := w.flush(ctx); err != nil {
				return err
			}
		}
	}
	return w.flush(ctx)
}

// isDuplicate consults the bloom filter first; only possible hits are
// confirmed against the current batch and the store.
func (w *writer) isDuplicate(ctx context.Context, p catalog.NewProduct) (bool, error) {
	key := productKey(p.VendorID, p.Name)
	if !w.seen.TestString(key) {
		return false, nil
	}
	if _, ok := w.pending[key]; ok {
		return true, nil
	}
	ok, err := w.im.store.Exists(ctx, p.VendorID, p.Name)
	if err != nil {
		return false, errors.Wrap(err, "check duplicate")
	}
	return ok, nil
}

func (w *writer) flush(ctx context.Context) error {
	if len(w.batch) == 0 {
		return nil
	}
	n, err := w.im.store.CopyFrom(ctx, w.batch)
	if err != nil {
		return errors.Wrapf(err, "insert batch of %d", len(w.batch))
	}
	w.inserted += n
	w.im.lg.Info("write progress", slog.Int64("inserted", w.inserted))

	w.batch = w.batch[:0]
	clear(w.pending)
	return nil
}

// streamGzFile opens a gzip-compressed file and calls fn for each non-empty
// line with its 1-based line number.
func streamGzFile(ctx context.Context, path string, fn func(line int, data []byte) error) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "open %s", path)
	}
	defer func() { _ = f.Close() }()

	gz, err := pgzip.NewReader(f)
	if err != nil {
		return errors.Wrapf(err, "create gzip reader for %s", path)
	}
	defer func() { _ = gz.Close() }()

	scanner := bufio.NewScanner(gz)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	line := 0
	for scanner.Scan() {
		line++
		if err := ctx.Err(); err != nil {
			return err
		}
		data := scanner.Bytes()
		if len(bytes.TrimSpace(data)) == 0 {
			continue
		}
		if err := fn(line, data); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return errors.Wrapf(err, "scan %s", path)
	}

	return nil
}
