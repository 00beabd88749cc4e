package storefront

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/etalasekita/etalase/internal/domain/catalog"
)

func vendorNames(vendors []catalog.Vendor) []string {
	out := make([]string, len(vendors))
	for i, v := range vendors {
		out[i] = v.Name
	}
	return out
}

func directory() []catalog.Vendor {
	return []catalog.Vendor{
		{ID: 1, Name: "Kopi Gayo Lestari", ShortDescription: "Kopi arabika", City: "Takengon", Province: "Aceh",
			EstablishedDate: time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC)},
		{ID: 2, Name: "batik Sekar Jagad", ShortDescription: "Batik tulis", City: "Yogyakarta", Province: "DI Yogyakarta"},
		{ID: 3, Name: "Anyaman Lombok", ShortDescription: "Kerajinan ketak", City: "Mataram", Province: "NTB",
			EstablishedDate: time.Date(2019, 6, 1, 0, 0, 0, 0, time.UTC)},
	}
}

func TestVendorList_DefaultsToNameOrder(t *testing.T) {
	l := NewVendorList()
	l.SetVendors(directory())

	assert.Equal(t, SortNameAsc, l.SortKey())
	assert.Equal(t, []string{"Anyaman Lombok", "batik Sekar Jagad", "Kopi Gayo Lestari"}, vendorNames(l.Visible()))
}

func TestVendorList_Search(t *testing.T) {
	tests := []struct {
		query string
		want  []string
	}{
		{query: "", want: []string{"Anyaman Lombok", "batik Sekar Jagad", "Kopi Gayo Lestari"}},
		{query: "ACEH", want: []string{"Kopi Gayo Lestari"}},
		{query: "mataram", want: []string{"Anyaman Lombok"}},
		{query: "tulis", want: []string{"batik Sekar Jagad"}},
		{query: "papua", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			l := NewVendorList()
			l.SetVendors(directory())
			l.SetSearchQuery(tt.query)
			assert.Equal(t, tt.want, vendorNames(l.Visible()))
		})
	}
}

func TestVendorList_EstablishedOrderPutsUndatedLast(t *testing.T) {
	l := NewVendorList()
	l.SetVendors(directory())

	l.SetSortKey(SortNewest)
	assert.Equal(t, []string{"Anyaman Lombok", "Kopi Gayo Lestari", "batik Sekar Jagad"}, vendorNames(l.Visible()))

	l.SetSortKey(SortOldest)
	assert.Equal(t, []string{"Kopi Gayo Lestari", "Anyaman Lombok", "batik Sekar Jagad"}, vendorNames(l.Visible()))
}

func TestVendorList_PriceKeysFallBackToName(t *testing.T) {
	l := NewVendorList()
	l.SetSortKey(SortNameDesc)
	l.SetSortKey(SortPriceAsc)
	assert.Equal(t, SortNameAsc, l.SortKey())
}

func TestVendorList_MissingProductCountIsZero(t *testing.T) {
	l := NewVendorList()
	l.SetVendors(directory())

	first := l.Visible()
	second := l.Visible()
	require.Equal(t, first, second)
	for _, v := range first {
		assert.Zero(t, v.ProductCount)
	}
}

func TestMarkers(t *testing.T) {
	vendors := []catalog.Vendor{
		{ID: 1, Name: "Kopi Gayo Lestari", Location: &catalog.Location{Lat: 4.62, Lng: 96.85}},
		{ID: 2, Name: "Batik Sekar Jagad"},
		{ID: 99, Name: "Anyaman Lombok"},
	}

	markers := Markers(vendors)
	require.Len(t, markers, 3)

	assert.False(t, markers[0].Approximate)
	assert.Equal(t, 4.62, markers[0].Lat)
	assert.Equal(t, 96.85, markers[0].Lng)

	for _, m := range markers[1:] {
		assert.True(t, m.Approximate)
		assert.InDelta(t, placeholderLat, m.Lat, placeholderSpread)
		assert.InDelta(t, placeholderLng, m.Lng, placeholderSpread)
	}
	assert.NotEqual(t, markers[1].Lat, markers[2].Lat)

	assert.Equal(t, markers, Markers(vendors), "placement must not change between renders")
}
