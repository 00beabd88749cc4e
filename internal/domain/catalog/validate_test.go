package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct_Validate(t *testing.T) {
	valid := func() NewProduct {
		return NewProduct{Name: "Tas Batik", Price: 100000, CategorySlug: "kerajinan", VendorID: 1}
	}

	tests := []struct {
		name      string
		mutate    func(p *NewProduct)
		wantField string
	}{
		{name: "valid", mutate: func(*NewProduct) {}},
		{name: "zero price is allowed", mutate: func(p *NewProduct) { p.Price = 0 }},
		{name: "blank name", mutate: func(p *NewProduct) { p.Name = "   " }, wantField: "name"},
		{name: "negative price", mutate: func(p *NewProduct) { p.Price = -1 }, wantField: "price"},
		{name: "missing category", mutate: func(p *NewProduct) { p.CategorySlug = "" }, wantField: "category_slug"},
		{name: "missing vendor", mutate: func(p *NewProduct) { p.VendorID = 0 }, wantField: "sme_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid()
			tt.mutate(&p)

			err := p.Validate()
			if tt.wantField == "" {
				require.NoError(t, err)
				return
			}

			var fe *FieldError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, tt.wantField, fe.Field)
		})
	}
}

func TestNewProduct_ValidateTrims(t *testing.T) {
	p := NewProduct{Name: "  Kopi Aceh ", Price: 50000, CategorySlug: " kuliner ", VendorID: 2}
	require.NoError(t, p.Validate())
	assert.Equal(t, "Kopi Aceh", p.Name)
	assert.Equal(t, "kuliner", p.CategorySlug)
}

func TestNewVendor_Validate(t *testing.T) {
	v := NewVendor{Name: "Batik Sekar"}
	require.NoError(t, v.Validate())

	v.Location = &Location{Lat: -7.8, Lng: 110.4}
	require.NoError(t, v.Validate())

	v.Location = &Location{Lat: 91, Lng: 110.4}
	var fe *FieldError
	require.ErrorAs(t, v.Validate(), &fe)
	assert.Equal(t, "latitude", fe.Field)

	empty := NewVendor{}
	require.ErrorAs(t, empty.Validate(), &fe)
	assert.Equal(t, "name", fe.Field)
}
