//go:build integration

package app

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"

	"github.com/etalasekita/etalase/db"
	"github.com/etalasekita/etalase/internal/client"
	"github.com/etalasekita/etalase/internal/domain/auth"
	"github.com/etalasekita/etalase/internal/domain/catalog"
	"github.com/etalasekita/etalase/internal/storage/postgres"
	"github.com/etalasekita/etalase/internal/storefront"
	"github.com/etalasekita/etalase/internal/wire"
)

const (
	adminEmail    = "admin@etalasekita.id"
	adminPassword = "rahasia-integrasi"
)

var (
	baseURL string
	api     *client.Client
)

type noopTelemetry struct{}

func (noopTelemetry) TracerProvider() trace.TracerProvider { return tracenoop.NewTracerProvider() }
func (noopTelemetry) MeterProvider() metric.MeterProvider  { return metricnoop.NewMeterProvider() }

func TestMain(m *testing.M) {
	os.Exit(testMain(m))
}

func testMain(m *testing.M) int {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "etalase",
				"POSTGRES_PASSWORD": "etalase",
				"POSTGRES_DB":       "etalase",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	if err != nil {
		log.Fatalf("start postgres: %v", err)
	}
	defer func() {
		if err := c.Terminate(context.Background()); err != nil {
			log.Printf("terminate postgres: %v", err)
		}
	}()

	host, err := c.Host(ctx)
	if err != nil {
		log.Fatalf("host: %v", err)
	}
	port, err := c.MappedPort(ctx, "5432/tcp")
	if err != nil {
		log.Fatalf("mapped port: %v", err)
	}

	pool, err := postgres.NewPool(ctx, fmt.Sprintf("postgres://etalase:etalase@%s:%s/etalase?sslmode=disable", host, port.Port()))
	if err != nil {
		log.Fatalf("pool: %v", err)
	}
	defer pool.Close()

	if err := seed(ctx, pool); err != nil {
		log.Fatalf("seed: %v", err)
	}

	// The media base URL needs the server address, so the handler is
	// installed after the server starts.
	var svc *service
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		svc.handler.ServeHTTP(w, r)
	}))
	defer srv.Close()
	baseURL = srv.URL

	mediaDir, err := os.MkdirTemp("", "etalase-media-*")
	if err != nil {
		log.Fatalf("media dir: %v", err)
	}
	defer func() { _ = os.RemoveAll(mediaDir) }()

	svc, err = newService(ctx, zap.NewNop(), noopTelemetry{}, &Config{
		Auth: AuthConfig{
			Secret:     "integration-secret-0123456789abcdef",
			TTL:        time.Hour,
			LoginEvery: time.Second,
			LoginBurst: 10,
		},
		Media:     MediaConfig{Backend: "local", Dir: mediaDir, BaseURL: baseURL + "/media"},
		Upload:    UploadConfig{MaxSize: 1 << 20},
		RateLimit: RateLimitConfig{Max: 1000, Window: time.Minute},
		CORS:      CORSConfig{Origins: []string{"*"}},
	}, pool)
	if err != nil {
		log.Fatalf("service: %v", err)
	}
	defer svc.health.Stop()

	api, err = client.New(baseURL)
	if err != nil {
		log.Fatalf("client: %v", err)
	}

	return m.Run()
}

func seed(ctx context.Context, pool *pgxpool.Pool) error {
	if err := postgres.RunMigrations(ctx, pool); err != nil {
		return errors.Wrap(err, "migrations")
	}
	data, err := wire.DecodeCatalog(jx.DecodeBytes(db.SeedCatalog))
	if err != nil {
		return errors.Wrap(err, "decode catalog")
	}
	if err := postgres.Seed(ctx, pool, postgres.SeedData(data)); err != nil {
		return errors.Wrap(err, "seed catalog")
	}
	hash, err := auth.HashPassword(adminPassword)
	if err != nil {
		return err
	}
	if _, err := postgres.NewUserRepository(pool).Upsert(ctx, adminEmail, hash); err != nil {
		return errors.Wrap(err, "seed admin")
	}
	return nil
}

func get(t *testing.T, path string, header http.Header) (*http.Response, []byte) {
	t.Helper()

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, baseURL+path, nil)
	require.NoError(t, err)
	for k, v := range header {
		req.Header[k] = v
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

func productIDs(products []catalog.Product) []int64 {
	ids := make([]int64, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}
	return ids
}

func TestHealth(t *testing.T) {
	resp, body := get(t, "/livez", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))

	resp, body = get(t, "/readyz", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))
}

func TestMiddleware(t *testing.T) {
	resp, _ := get(t, "/livez", nil)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	resp, _ = get(t, "/livez", http.Header{"X-Request-Id": {"custom-request-id-12345"}})
	assert.Equal(t, "custom-request-id-12345", resp.Header.Get("X-Request-ID"))

	req, err := http.NewRequestWithContext(context.Background(), http.MethodOptions, baseURL+"/api/products", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")
	pre, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	_ = pre.Body.Close()

	assert.Equal(t, http.StatusNoContent, pre.StatusCode)
	assert.Equal(t, "*", pre.Header.Get("Access-Control-Allow-Origin"))
	assert.Contains(t, pre.Header.Get("Access-Control-Allow-Headers"), "Authorization")
}

func TestProducts_Filters(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		params storefront.FetchParams
		want   []int64
	}{
		{name: "categories and vendor", params: storefront.FetchParams{Categories: []string{"kerajinan", "fashion"}, Vendors: []int64{1}}, want: []int64{1, 2, 3}},
		{name: "empty vendor set", params: storefront.FetchParams{Categories: []string{"kuliner"}, Vendors: []int64{}}, want: []int64{4, 5, 8, 9}},
		{name: "vendors only", params: storefront.FetchParams{Vendors: []int64{3, 5}}, want: []int64{6, 7, 10, 11}},
		{name: "unknown category", params: storefront.FetchParams{Categories: []string{"otomotif"}}, want: []int64{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products, err := api.Products(ctx, tt.params)
			require.NoError(t, err)
			assert.Equal(t, tt.want, productIDs(products))
		})
	}
}

func TestProductDetail(t *testing.T) {
	ctx := context.Background()

	d, err := api.Detail(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, "Kopi Arabika Gayo 250g", d.Product.Name)
	require.NotNil(t, d.Vendor)
	assert.Equal(t, "Kopi Gayo Lestari", d.Vendor.Name)
	require.NotNil(t, d.Category)
	assert.Equal(t, "Kuliner", d.Category.Name)
	assert.ElementsMatch(t, []int64{5, 8, 9}, productIDs(d.Related))

	_, err = api.Product(ctx, 999)
	require.ErrorIs(t, err, catalog.ErrNotFound)
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Produk tidak ditemukan", apiErr.Message)
}

func TestVendors(t *testing.T) {
	ctx := context.Background()

	vendors, err := api.Vendors(ctx)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(vendors), 5)

	v, err := api.Vendor(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Takengon", v.City)
	assert.Equal(t, 2, v.ProductCount)

	_, err = api.Vendor(ctx, 999)
	require.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestStorefront(t *testing.T) {
	resp, body := get(t, "/api/storefront/products?category=kuliner&q=kopi&sort=price-asc", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	products, err := wire.DecodeProducts(jx.DecodeBytes(body))
	require.NoError(t, err)
	assert.Equal(t, []int64{4, 5}, productIDs(products))

	resp, body = get(t, "/api/map/markers", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	approximate, err := decodeApproximate(jx.DecodeBytes(body))
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(approximate), 5)

	for id := range approximate {
		if id > 5 {
			delete(approximate, id)
		}
	}
	assert.Equal(t, map[int64]bool{1: false, 2: false, 3: true, 4: true, 5: false}, approximate)
}

// decodeApproximate reads the approximate flag of every marker by SME id.
func decodeApproximate(d *jx.Decoder) (map[int64]bool, error) {
	out := map[int64]bool{}
	err := d.Arr(func(d *jx.Decoder) error {
		var (
			id     int64
			approx bool
		)
		if err := d.Obj(func(d *jx.Decoder, key string) (err error) {
			switch key {
			case "sme_id":
				id, err = d.Int64()
			case "approximate":
				approx, err = d.Bool()
			default:
				err = d.Skip()
			}
			return err
		}); err != nil {
			return err
		}
		out[id] = approx
		return nil
	})
	return out, err
}

func TestAdmin(t *testing.T) {
	ctx := context.Background()
	p := catalog.NewProduct{Name: "Sabun Sereh", Price: 25000, CategorySlug: "kecantikan", VendorID: 5}
	image := func() *client.Upload {
		return &client.Upload{Filename: "sabun sereh.png", ContentType: "image/png", Body: strings.NewReader("png-bytes")}
	}

	_, err := api.CreateProduct(ctx, p, image())
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "Unauthorized: No token", apiErr.Message)

	_, err = api.Login(ctx, adminEmail, "salah")
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Invalid login credentials", apiErr.Message)

	s, err := api.Login(ctx, adminEmail, adminPassword)
	require.NoError(t, err)
	authed := client.WithToken(ctx, s.AccessToken)

	created, err := api.CreateProduct(authed, p, image())
	require.NoError(t, err)
	assert.Equal(t, "Sabun Sereh", created.Name)
	require.True(t, strings.HasPrefix(created.Image, baseURL+"/media/etalasekita/products/"), created.Image)

	resp, body := get(t, strings.TrimPrefix(created.Image, baseURL), nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "png-bytes", string(body))

	got, err := api.Products(ctx, storefront.FetchParams{Categories: []string{"kecantikan"}})
	require.NoError(t, err)
	assert.Contains(t, productIDs(got), created.ID)

	p.VendorID = 999
	_, err = api.CreateProduct(authed, p, nil)
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	assert.Contains(t, apiErr.Message, "foreign key")

	v, err := api.CreateVendor(authed, catalog.NewVendor{
		Name:     "Anyaman Lombok",
		City:     "Mataram",
		Location: &catalog.Location{Lat: -8.58, Lng: 116.1},
	}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, &catalog.Location{Lat: -8.58, Lng: 116.1}, v.Location)
}
