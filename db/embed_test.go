package db

import (
	"testing"

	"github.com/go-faster/jx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/etalasekita/etalase/internal/wire"
)

func TestSeedCatalog(t *testing.T) {
	c, err := wire.DecodeCatalog(jx.DecodeBytes(SeedCatalog))
	require.NoError(t, err)
	require.NotEmpty(t, c.Categories)
	require.NotEmpty(t, c.Vendors)
	require.NotEmpty(t, c.Products)

	slugs := map[string]bool{}
	for _, cat := range c.Categories {
		assert.NotZero(t, cat.ID)
		assert.False(t, slugs[cat.Slug], "duplicate slug %q", cat.Slug)
		slugs[cat.Slug] = true
	}
	vendors := map[int64]bool{}
	for _, v := range c.Vendors {
		assert.NotZero(t, v.ID)
		assert.NotEmpty(t, v.Name)
		vendors[v.ID] = true
	}
	for _, p := range c.Products {
		assert.NotZero(t, p.ID)
		assert.GreaterOrEqual(t, p.Price, int64(0), p.Name)
		assert.True(t, slugs[p.CategorySlug], "product %d references unknown category %q", p.ID, p.CategorySlug)
		assert.True(t, vendors[p.VendorID], "product %d references unknown vendor %d", p.ID, p.VendorID)
	}
}

func TestSchema(t *testing.T) {
	for _, table := range []string{"categories", "smes", "products", "admin_users"} {
		assert.Contains(t, Schema, "CREATE TABLE IF NOT EXISTS "+table)
	}
}
