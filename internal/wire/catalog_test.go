package wire

import (
	"testing"
	"time"

	"github.com/go-faster/jx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/etalasekita/etalase/internal/domain/catalog"
)

func TestDecodeProducts_Empty(t *testing.T) {
	products, err := DecodeProducts(jx.DecodeStr(`[]`))
	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestDecodeProducts_Lenient(t *testing.T) {
	const input = `[
		{"id": "3", "name": "Tas Batik", "description": null, "price": "100000",
		 "category_slug": "kerajinan", "sme_id": 1, "featured": null,
		 "created_at": "2025-03-01 09:00:00.123456+07", "extra": {"nested": [1, 2]}},
		{"id": 4, "name": "Keripik", "price": 15000}
	]`

	products, err := DecodeProducts(jx.DecodeStr(input))
	require.NoError(t, err)
	require.Len(t, products, 2)

	p := products[0]
	assert.Equal(t, int64(3), p.ID)
	assert.Equal(t, "Tas Batik", p.Name)
	assert.Empty(t, p.Description)
	assert.Equal(t, int64(100000), p.Price)
	assert.Equal(t, int64(1), p.VendorID)
	assert.False(t, p.Featured)
	assert.Equal(t, time.Date(2025, 3, 1, 2, 0, 0, 123456000, time.UTC), p.CreatedAt.UTC())

	assert.Equal(t, "Keripik", products[1].Name)
	assert.True(t, products[1].CreatedAt.IsZero())
}

func TestDecodeProduct_ValidRow(t *testing.T) {
	p, err := DecodeProduct(jx.DecodeStr(`{"id":1,"name":"Tas Batik","price":100000}`))
	require.NoError(t, err)
	assert.Equal(t, catalog.Product{ID: 1, Name: "Tas Batik", Price: 100000}, p)

	_, err = DecodeProduct(jx.DecodeStr(`{"id":1,"price":"mahal"}`))
	require.ErrorContains(t, err, "price")
}

func TestDecodeProduct_BadID(t *testing.T) {
	_, err := DecodeProduct(jx.DecodeStr(`{"id": "abc"}`))
	require.Error(t, err)
}

func TestDecodeVendor(t *testing.T) {
	v, err := DecodeVendor(jx.DecodeStr(`{
		"id": 5, "name": "Anyaman Lombok", "city": "Mataram", "province": "NTB",
		"established_date": "2019-06-01", "latitude": -8.58, "longitude": 116.1,
		"product_count": 12, "created_at": "2025-01-02T03:04:05Z"
	}`))
	require.NoError(t, err)
	assert.Equal(t, catalog.Vendor{
		ID:              5,
		Name:            "Anyaman Lombok",
		City:            "Mataram",
		Province:        "NTB",
		EstablishedDate: time.Date(2019, 6, 1, 0, 0, 0, 0, time.UTC),
		Location:        &catalog.Location{Lat: -8.58, Lng: 116.1},
		ProductCount:    12,
		CreatedAt:       time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
	}, v)
}

func TestDecodeVendor_PartialLocation(t *testing.T) {
	v, err := DecodeVendor(jx.DecodeStr(`{"id": 1, "name": "Kopi", "latitude": 4.6, "longitude": null, "established_date": null}`))
	require.NoError(t, err)
	assert.Nil(t, v.Location)
	assert.True(t, v.EstablishedDate.IsZero())
	assert.Zero(t, v.ProductCount)
}

func TestDecodeCategories(t *testing.T) {
	got, err := DecodeCategories(jx.DecodeStr(`[{"id":"1","name":"Kuliner","slug":"kuliner","icon":null}]`))
	require.NoError(t, err)
	assert.Equal(t, []catalog.Category{{ID: 1, Name: "Kuliner", Slug: "kuliner"}}, got)
}

func TestDecodeError(t *testing.T) {
	msg, err := DecodeError(jx.DecodeStr(`{"error": "Unauthorized"}`))
	require.NoError(t, err)
	assert.Equal(t, "Unauthorized", msg)

	msg, err = DecodeError(jx.DecodeStr(`{"message": "nope"}`))
	require.NoError(t, err)
	assert.Empty(t, msg)
}
