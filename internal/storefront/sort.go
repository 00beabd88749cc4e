// Package storefront holds the view models behind the storefront pages: the
// product list with its filter and sort state, the vendor directory and the
// vendor map.
//
// A view model is owned by a single view instance and is not safe for
// concurrent use. Every visible list is recomputed from the raw records and
// the current state; nothing is mutated in place.
package storefront

import (
	"github.com/go-faster/errors"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey selects the ordering of a visible list.
type SortKey string

// Admissible sort keys.
const (
	SortNewest    SortKey = "newest"
	SortOldest    SortKey = "oldest"
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	SortNameAsc   SortKey = "name-asc"
	SortNameDesc  SortKey = "name-desc"
)

// ErrUnknownSortKey is returned by ParseSortKey for keys outside the
// admissible set.
var ErrUnknownSortKey = errors.New("unknown sort key")

// SortKeys lists every admissible key in display order.
func SortKeys() []SortKey {
	return []SortKey{SortNewest, SortOldest, SortPriceAsc, SortPriceDesc, SortNameAsc, SortNameDesc}
}

// Valid reports whether k is one of the admissible keys.
func (k SortKey) Valid() bool {
	switch k {
	case SortNewest, SortOldest, SortPriceAsc, SortPriceDesc, SortNameAsc, SortNameDesc:
		return true
	}
	return false
}

// ParseSortKey converts user input into a SortKey. The empty string yields
// def.
func ParseSortKey(s string, def SortKey) (SortKey, error) {
	if s == "" {
		return def, nil
	}
	k := SortKey(s)
	if !k.Valid() {
		return def, errors.Wrapf(ErrUnknownSortKey, "%q", s)
	}
	return k, nil
}

// DefaultLanguage is the locale used for name ordering.
var DefaultLanguage = language.Indonesian

// nameCollator compares names the way a reader of the storefront locale
// expects ("apel" before "Bakso"). A collator keeps scratch buffers, so each
// view model owns its own.
type nameCollator struct {
	c *collate.Collator
}

func newNameCollator(tag language.Tag) nameCollator {
	return nameCollator{c: collate.New(tag)}
}

func (n nameCollator) compare(a, b string) int {
	return n.c.CompareString(a, b)
}
