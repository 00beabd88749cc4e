package importer

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/go-faster/errors"
	pgzip "github.com/klauspost/pgzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/etalasekita/etalase/internal/domain/catalog"
)

type mockStore struct {
	mu       sync.Mutex
	existing []catalog.NewProduct
	inserted []catalog.NewProduct
	batches  []int
	exists   int

	keysErr error
	copyErr error
}

func (m *mockStore) Keys(_ context.Context, fn func(vendorID int64, name string)) error {
	if m.keysErr != nil {
		return m.keysErr
	}
	for _, p := range m.existing {
		fn(p.VendorID, strings.ToLower(p.Name))
	}
	return nil
}

func (m *mockStore) Exists(_ context.Context, vendorID int64, name string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.exists++
	for _, p := range append(m.existing, m.inserted...) {
		if p.VendorID == vendorID && strings.EqualFold(p.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockStore) CopyFrom(_ context.Context, products []catalog.NewProduct) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.copyErr != nil {
		return 0, m.copyErr
	}
	m.inserted = append(m.inserted, products...)
	m.batches = append(m.batches, len(products))
	return int64(len(products)), nil
}

func (m *mockStore) names() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.inserted))
	for i, p := range m.inserted {
		out[i] = p.Name
	}
	sort.Strings(out)
	return out
}

func writeDump(t *testing.T, name string, lines ...string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer func() { require.NoError(t, f.Close()) }()

	gz := pgzip.NewWriter(f)
	_, err = io.WriteString(gz, strings.Join(lines, "\n")+"\n")
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	return path
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestImporter_Run(t *testing.T) {
	store := &mockStore{
		existing: []catalog.NewProduct{{Name: "Kopi Aceh", VendorID: 2}},
	}
	a := writeDump(t, "a.ndjson.gz",
		`{"name":"Tas Batik","price":100000,"category_slug":"kerajinan","sme_id":1}`,
		`{"name":"tas batik","price":90000,"category_slug":"kerajinan","sme_id":1}`,
		``,
		`{"name":"KOPI ACEH","price":"50000","category_slug":"kuliner","sme_id":"2"}`,
		`not json`,
	)
	b := writeDump(t, "b.ndjson.gz",
		`{"name":"Syal Batik","price":75000,"category_slug":"kerajinan","sme_id":1,"featured":true}`,
		`{"name":"Tas Batik","price":100000,"category_slug":"kerajinan","sme_id":3}`,
		`{"name":"","price":1,"category_slug":"kuliner","sme_id":2}`,
		`{"name":"Negatif","price":-1,"category_slug":"kuliner","sme_id":2}`,
	)

	im := New(store, WithBatchSize(2), WithCapacity(100), WithLogger(quietLogger()))
	stats, err := im.Run(context.Background(), []string{a, b})
	require.NoError(t, err)

	assert.Equal(t, Stats{Read: 8, Invalid: 3, Duplicate: 2, Inserted: 3}, stats)
	assert.Equal(t, []string{"Syal Batik", "Tas Batik", "Tas Batik"}, store.names())
	for _, n := range store.batches {
		assert.LessOrEqual(t, n, 2)
	}
}

func TestImporter_DuplicateAcrossBatches(t *testing.T) {
	store := &mockStore{}
	path := writeDump(t, "dump.ndjson.gz",
		`{"name":"Rendang","price":80000,"category_slug":"kuliner","sme_id":2}`,
		`{"name":"Sambal","price":20000,"category_slug":"kuliner","sme_id":2}`,
		`{"name":"rendang","price":80000,"category_slug":"kuliner","sme_id":2}`,
	)

	stats, err := New(store, WithBatchSize(1), WithLogger(quietLogger())).Run(context.Background(), []string{path})
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.Inserted)
	assert.Equal(t, int64(1), stats.Duplicate)
	assert.Equal(t, []int{1, 1}, store.batches)
	assert.Equal(t, 1, store.exists, "only the bloom hit reaches the store")
}

func TestImporter_Errors(t *testing.T) {
	good := `{"name":"Rendang","price":80000,"category_slug":"kuliner","sme_id":2}`

	t.Run("keys", func(t *testing.T) {
		store := &mockStore{keysErr: errors.New("connection refused")}
		_, err := New(store, WithLogger(quietLogger())).Run(context.Background(), nil)
		require.ErrorContains(t, err, "load existing products")
	})

	t.Run("copy", func(t *testing.T) {
		store := &mockStore{copyErr: errors.New("disk full")}
		path := writeDump(t, "dump.ndjson.gz", good)
		stats, err := New(store, WithLogger(quietLogger())).Run(context.Background(), []string{path})
		require.ErrorContains(t, err, "disk full")
		assert.Zero(t, stats.Inserted)
	})

	t.Run("missing file", func(t *testing.T) {
		store := &mockStore{}
		_, err := New(store, WithLogger(quietLogger())).Run(context.Background(), []string{filepath.Join(t.TempDir(), "nope.gz")})
		require.ErrorContains(t, err, "open")
	})

	t.Run("not gzip", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "plain.ndjson.gz")
		require.NoError(t, os.WriteFile(path, []byte(good), 0o600))
		_, err := New(&mockStore{}, WithLogger(quietLogger())).Run(context.Background(), []string{path})
		require.ErrorContains(t, err, "gzip")
	})

	t.Run("canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		path := writeDump(t, "dump.ndjson.gz", good)
		_, err := New(&mockStore{}, WithLogger(quietLogger())).Run(ctx, []string{path})
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestParseRow(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    catalog.NewProduct
		wantErr string
	}{
		{
			name: "trims",
			in:   `{"name":"  Lulur ","price":55000,"category_slug":" kecantikan ","sme_id":5,"unknown":[1,2]}`,
			want: catalog.NewProduct{Name: "Lulur", Price: 55000, CategorySlug: "kecantikan", VendorID: 5},
		},
		{name: "missing vendor", in: `{"name":"Lulur","price":1,"category_slug":"kecantikan"}`, wantErr: "sme_id"},
		{name: "bad price", in: `{"name":"Lulur","price":"murah","category_slug":"x","sme_id":1}`, wantErr: "price"},
		{name: "array", in: `[]`, wantErr: "decode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseRow([]byte(tt.in))
			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
