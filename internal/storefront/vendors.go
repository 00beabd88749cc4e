package storefront

import (
	"slices"
	"strings"

	"github.com/etalasekita/etalase/internal/domain/catalog"
)

// VendorList is the vendor directory view model. Vendors are fetched once
// when the view is entered; search and ordering are local.
type VendorList struct {
	records []catalog.Vendor
	query   string
	sort    SortKey
	names   nameCollator
}

// NewVendorList returns a directory ordered by name.
func NewVendorList() *VendorList {
	return &VendorList{
		sort:  SortNameAsc,
		names: newNameCollator(DefaultLanguage),
	}
}

// SetVendors installs the fetched vendors. Callers pass nil after a failed
// fetch.
func (l *VendorList) SetVendors(vendors []catalog.Vendor) {
	l.records = slices.Clone(vendors)
}

// SetSearchQuery sets the free-text query, matched against name, short
// description, city and province.
func (l *VendorList) SetSearchQuery(q string) {
	l.query = q
}

// SetSortKey selects the ordering. Vendors have no price, so price keys and
// unknown keys select SortNameAsc. Newest and oldest order by established
// date.
func (l *VendorList) SetSortKey(k SortKey) {
	switch k {
	case SortNameAsc, SortNameDesc, SortNewest, SortOldest:
		l.sort = k
	default:
		l.sort = SortNameAsc
	}
}

// SortKey returns the effective ordering.
func (l *VendorList) SortKey() SortKey {
	return l.sort
}

// Visible derives the displayed directory.
func (l *VendorList) Visible() []catalog.Vendor {
	q := strings.ToLower(l.query)

	out := make([]catalog.Vendor, 0, len(l.records))
	for _, v := range l.records {
		if matchesVendor(v, q) {
			out = append(out, v)
		}
	}

	slices.SortStableFunc(out, l.compare())
	return out
}

func matchesVendor(v catalog.Vendor, q string) bool {
	if q == "" {
		return true
	}
	for _, field := range [...]string{v.Name, v.ShortDescription, v.City, v.Province} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

func (l *VendorList) compare() func(a, b catalog.Vendor) int {
	switch l.sort {
	case SortNameDesc:
		return func(a, b catalog.Vendor) int { return l.names.compare(b.Name, a.Name) }
	case SortNewest:
		return func(a, b catalog.Vendor) int { return compareEstablished(a, b, true) }
	case SortOldest:
		return func(a, b catalog.Vendor) int { return compareEstablished(a, b, false) }
	default:
		return func(a, b catalog.Vendor) int { return l.names.compare(a.Name, b.Name) }
	}
}

// compareEstablished orders by established date. Vendors without a date go
// last in both directions.
func compareEstablished(a, b catalog.Vendor, newestFirst bool) int {
	az, bz := a.EstablishedDate.IsZero(), b.EstablishedDate.IsZero()
	switch {
	case az && bz:
		return 0
	case az:
		return 1
	case bz:
		return -1
	}
	if newestFirst {
		return b.EstablishedDate.Compare(a.EstablishedDate)
	}
	return a.EstablishedDate.Compare(b.EstablishedDate)
}
