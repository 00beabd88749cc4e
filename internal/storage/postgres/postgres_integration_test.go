//go:build integration

package postgres

import (
	"context"
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/etalasekita/etalase/internal/domain/auth"
	"github.com/etalasekita/etalase/internal/domain/catalog"
)

var testPool *pgxpool.Pool

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

	testPool, err = NewPool(ctx, fmt.Sprintf("postgres://etalase:etalase@%s:%s/etalase?sslmode=disable", host, port.Port()))
	if err != nil {
		log.Fatalf("pool: %v", err)
	}
	defer testPool.Close()

	if err := RunMigrations(ctx, testPool); err != nil {
		log.Fatalf("migrations: %v", err)
	}
	// Migrations must be repeatable.
	if err := RunMigrations(ctx, testPool); err != nil {
		log.Fatalf("migrations again: %v", err)
	}

	return m.Run()
}

var fixture = SeedData{
	Categories: []catalog.Category{
		{ID: 1, Name: "Kerajinan", Slug: "kerajinan"},
		{ID: 2, Name: "Kuliner", Slug: "kuliner"},
	},
	Vendors: []catalog.Vendor{
		{ID: 1, Name: "Batik Sekar Jagad", City: "Yogyakarta", EstablishedDate: time.Date(2010, 4, 1, 0, 0, 0, 0, time.UTC)},
		{ID: 2, Name: "Kopi Gayo Lestari", City: "Takengon", Location: &catalog.Location{Lat: 4.62, Lng: 96.85}},
	},
	Products: []catalog.Product{
		{ID: 1, Name: "Tas Batik", Price: 100000, CategorySlug: "kerajinan", VendorID: 1},
		{ID: 2, Name: "Kopi Aceh", Price: 50000, CategorySlug: "kuliner", VendorID: 2, Featured: true},
		{ID: 3, Name: "Syal Batik", Price: 75000, CategorySlug: "kerajinan", VendorID: 1},
		{ID: 4, Name: "Kopi Luwak", Price: 250000, CategorySlug: "kuliner", VendorID: 2},
	},
}

func reset(t *testing.T) context.Context {
	t.Helper()

	ctx := context.Background()
	_, err := testPool.Exec(ctx, `TRUNCATE products, smes, categories, admin_users RESTART IDENTITY CASCADE`)
	require.NoError(t, err)
	require.NoError(t, Seed(ctx, testPool, fixture))
	return ctx
}

func productIDs(products []catalog.Product) []int64 {
	ids := make([]int64, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}
	return ids
}

func TestProductRepository_List(t *testing.T) {
	ctx := reset(t)
	repo := NewProductRepository(testPool)

	tests := []struct {
		name string
		q    catalog.ProductQuery
		want []int64
	}{
		{name: "no constraint", want: []int64{1, 2, 3, 4}},
		{name: "category", q: catalog.ProductQuery{Categories: []string{"kerajinan"}}, want: []int64{1, 3}},
		{name: "category with empty vendor set", q: catalog.ProductQuery{Categories: []string{"kerajinan"}, Vendors: []int64{}}, want: []int64{1, 3}},
		{name: "categories are or-ed", q: catalog.ProductQuery{Categories: []string{"kerajinan", "kuliner"}}, want: []int64{1, 2, 3, 4}},
		{name: "dimensions are and-ed", q: catalog.ProductQuery{Categories: []string{"kuliner"}, Vendors: []int64{1}}, want: []int64{}},
		{name: "vendor", q: catalog.ProductQuery{Vendors: []int64{2}}, want: []int64{2, 4}},
		{name: "featured", q: catalog.ProductQuery{FeaturedOnly: true}, want: []int64{2}},
		{name: "unknown category", q: catalog.ProductQuery{Categories: []string{"fashion"}}, want: []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products, err := repo.List(ctx, tt.q)
			require.NoError(t, err)
			assert.Equal(t, tt.want, productIDs(products))
		})
	}
}

func TestProductRepository_GetAndRelated(t *testing.T) {
	ctx := reset(t)
	repo := NewProductRepository(testPool)

	p, err := repo.GetByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Kopi Aceh", p.Name)
	assert.Equal(t, int64(50000), p.Price)
	assert.False(t, p.CreatedAt.IsZero())

	_, err = repo.GetByID(ctx, 404)
	require.ErrorIs(t, err, catalog.ErrNotFound)

	related, err := repo.Related(ctx, 1, 4)
	require.NoError(t, err)
	assert.Equal(t, []int64{3}, productIDs(related))

	related, err = repo.Related(ctx, 404, 4)
	require.NoError(t, err)
	assert.Empty(t, related)
}

func TestProductRepository_Create(t *testing.T) {
	ctx := reset(t)
	repo := NewProductRepository(testPool)

	created, err := repo.Create(ctx, catalog.NewProduct{
		Name: "Keripik Tempe", Price: 15000, CategorySlug: "kuliner", VendorID: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), created.ID, "sequence continues after seeded ids")
	assert.Equal(t, "", created.Image)

	_, err = repo.Create(ctx, catalog.NewProduct{Name: "Gelang", Price: 1, CategorySlug: "fashion", VendorID: 2})
	require.Error(t, err)
	msg, ok := StoreError(err)
	require.True(t, ok)
	assert.Contains(t, msg, "foreign key")

	_, err = repo.Create(ctx, catalog.NewProduct{Name: "Gelang", Price: 1, CategorySlug: "kuliner", VendorID: 99})
	require.Error(t, err)
}

func TestProductRepository_Bulk(t *testing.T) {
	ctx := reset(t)
	repo := NewProductRepository(testPool)

	n, err := repo.CopyFrom(ctx, []catalog.NewProduct{
		{Name: "Rendang", Price: 80000, CategorySlug: "kuliner", VendorID: 2},
		{Name: "Sambal", Price: 20000, CategorySlug: "kuliner", VendorID: 2},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	ok, err := repo.Exists(ctx, 2, "RENDANG")
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = repo.Exists(ctx, 1, "rendang")
	require.NoError(t, err)
	assert.False(t, ok)

	keys := map[string]bool{}
	require.NoError(t, repo.Keys(ctx, func(vendorID int64, name string) {
		keys[fmt.Sprintf("%d/%s", vendorID, name)] = true
	}))
	assert.Len(t, keys, 6)
	assert.True(t, keys["1/tas batik"])
}

func TestVendorRepository(t *testing.T) {
	ctx := reset(t)
	repo := NewVendorRepository(testPool)

	created, err := repo.Create(ctx, catalog.NewVendor{Name: "Anyaman Lombok", City: "Mataram"})
	require.NoError(t, err)
	assert.Nil(t, created.Location)
	assert.True(t, created.EstablishedDate.IsZero())
	assert.Zero(t, created.ProductCount)

	vendors, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, vendors, 3)
	assert.Equal(t, "Anyaman Lombok", vendors[0].Name, "newest first")

	byID := map[int64]catalog.Vendor{}
	for _, v := range vendors {
		byID[v.ID] = v
	}
	assert.Equal(t, 2, byID[1].ProductCount)
	assert.Equal(t, time.Date(2010, 4, 1, 0, 0, 0, 0, time.UTC), byID[1].EstablishedDate.UTC())
	require.NotNil(t, byID[2].Location)
	assert.Equal(t, 96.85, byID[2].Location.Lng)

	_, err = repo.GetByID(ctx, 404)
	require.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestCategoryRepository(t *testing.T) {
	ctx := reset(t)
	repo := NewCategoryRepository(testPool)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, fixture.Categories, all)

	c, err := repo.GetBySlug(ctx, "kuliner")
	require.NoError(t, err)
	assert.Equal(t, int64(2), c.ID)

	c, err = repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "kerajinan", c.Slug)

	_, err = repo.GetBySlug(ctx, "fashion")
	require.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestUserRepository(t *testing.T) {
	ctx := reset(t)
	repo := NewUserRepository(testPool)

	u, err := repo.Upsert(ctx, "Admin@EtalaseKita.id", "hash-1")
	require.NoError(t, err)
	assert.Equal(t, "admin@etalasekita.id", u.Email)

	again, err := repo.Upsert(ctx, "admin@etalasekita.id", "hash-2")
	require.NoError(t, err)
	assert.Equal(t, u.ID, again.ID)

	found, err := repo.FindByEmail(ctx, "ADMIN@etalasekita.id")
	require.NoError(t, err)
	assert.Equal(t, "hash-2", found.PasswordHash)

	_, err = repo.FindByID(ctx, u.ID+1)
	require.ErrorIs(t, err, auth.ErrUserNotFound)
}
