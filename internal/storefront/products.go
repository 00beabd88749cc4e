package storefront

import (
	"slices"
	"strings"

	"github.com/go-faster/errors"
	"golang.org/x/text/language"

	"github.com/etalasekita/etalase/internal/domain/catalog"
)

// MaxPrice is the upper bound of the default price range, in rupiah.
const MaxPrice int64 = 5_000_000

// ErrStaleResult is returned by Apply for a fetch result that was requested
// with fetch parameters that have since changed. Such a result is dropped.
var ErrStaleResult = errors.New("stale fetch result")

// PriceRange is an inclusive price interval.
type PriceRange struct {
	Min int64
	Max int64
}

// FullPriceRange is the default range.
func FullPriceRange() PriceRange {
	return PriceRange{Min: 0, Max: MaxPrice}
}

// Contains reports whether price lies within the range, bounds included.
func (r PriceRange) Contains(price int64) bool {
	return r.Min <= price && price <= r.Max
}

// FetchParams are the filter dimensions that are answered by the store
// rather than in memory. Generation identifies the parameter set so late
// results can be told apart from current ones.
type FetchParams struct {
	Categories   []string
	Vendors      []int64
	FeaturedOnly bool
	Generation   uint64
}

// Query converts the parameters into a repository query. Empty sets stay
// empty, which means "no constraint", never "match nothing".
func (p FetchParams) Query() catalog.ProductQuery {
	return catalog.ProductQuery{
		Categories:   slices.Clone(p.Categories),
		Vendors:      slices.Clone(p.Vendors),
		FeaturedOnly: p.FeaturedOnly,
	}
}

// FetchResult is the outcome of a fetch issued for Generation.
type FetchResult struct {
	Generation uint64
	Products   []catalog.Product
	Err        error
}

// Filter is a snapshot of the local filter state.
type Filter struct {
	Query string
	Price PriceRange
	Sort  SortKey
}

// Option configures a ProductList.
type Option func(*ProductList)

// WithCategory preselects a category, typically from an incoming navigation
// parameter. Empty slugs are ignored.
func WithCategory(slug string) Option {
	return func(l *ProductList) {
		l.categories = normalizeSlugs(append(l.categories, slug))
	}
}

// WithStaleOnError keeps the previously fetched records when a fetch fails.
// By default a failed fetch leaves the list empty.
func WithStaleOnError() Option {
	return func(l *ProductList) {
		l.staleOnError = true
	}
}

// WithLanguage sets the locale used for name ordering.
func WithLanguage(tag language.Tag) Option {
	return func(l *ProductList) {
		l.names = newNameCollator(tag)
	}
}

// ProductList is the product catalog view model.
type ProductList struct {
	records []catalog.Product

	query string
	price PriceRange
	sort  SortKey

	categories   []string
	vendors      []int64
	featuredOnly bool
	generation   uint64

	staleOnError bool
	err          error
	names        nameCollator
}

// NewProductList returns a list with default state: empty query, full price
// range, newest first and no vendor selection.
func NewProductList(opts ...Option) *ProductList {
	l := &ProductList{
		price: FullPriceRange(),
		sort:  SortNewest,
		names: newNameCollator(DefaultLanguage),
	}
	for _, o := range opts {
		o(l)
	}
	return l
}

// SetSearchQuery sets the free-text query.
func (l *ProductList) SetSearchQuery(q string) {
	l.query = q
}

// SetPriceRange sets the price bounds. A negative minimum is raised to zero
// and a maximum below the minimum is raised to the minimum.
func (l *ProductList) SetPriceRange(lo, hi int64) {
	lo = max(lo, 0)
	hi = max(hi, lo)
	l.price = PriceRange{Min: lo, Max: hi}
}

// SetSortKey selects the ordering. Keys outside the admissible set select
// SortNewest.
func (l *ProductList) SetSortKey(k SortKey) {
	if !k.Valid() {
		k = SortNewest
	}
	l.sort = k
}

// Filter returns the local filter state.
func (l *ProductList) Filter() Filter {
	return Filter{Query: l.query, Price: l.price, Sort: l.sort}
}

// SetSelectedCategories replaces the category selection. It reports whether
// the selection changed, in which case the owner must fetch again.
func (l *ProductList) SetSelectedCategories(slugs []string) bool {
	next := normalizeSlugs(slugs)
	if slices.Equal(next, l.categories) {
		return false
	}
	l.categories = next
	l.generation++
	return true
}

// SetSelectedVendors replaces the vendor selection. It reports whether the
// selection changed, in which case the owner must fetch again.
func (l *ProductList) SetSelectedVendors(ids []int64) bool {
	next := normalizeIDs(ids)
	if slices.Equal(next, l.vendors) {
		return false
	}
	l.vendors = next
	l.generation++
	return true
}

// SetFeaturedOnly restricts the fetch to featured products. It reports
// whether the flag changed.
func (l *ProductList) SetFeaturedOnly(on bool) bool {
	if on == l.featuredOnly {
		return false
	}
	l.featuredOnly = on
	l.generation++
	return true
}

// ToggleCategory adds the slug to the selection or removes it.
func (l *ProductList) ToggleCategory(slug string) bool {
	if i := slices.Index(l.categories, slug); i >= 0 {
		return l.SetSelectedCategories(slices.Delete(slices.Clone(l.categories), i, i+1))
	}
	return l.SetSelectedCategories(append(slices.Clone(l.categories), slug))
}

// ToggleVendor adds the vendor to the selection or removes it.
func (l *ProductList) ToggleVendor(id int64) bool {
	if i := slices.Index(l.vendors, id); i >= 0 {
		return l.SetSelectedVendors(slices.Delete(slices.Clone(l.vendors), i, i+1))
	}
	return l.SetSelectedVendors(append(slices.Clone(l.vendors), id))
}

// FetchParams returns the parameters the owner should fetch records with.
func (l *ProductList) FetchParams() FetchParams {
	return FetchParams{
		Categories:   slices.Clone(l.categories),
		Vendors:      slices.Clone(l.vendors),
		FeaturedOnly: l.featuredOnly,
		Generation:   l.generation,
	}
}

// Apply installs the records of a completed fetch. Results for an older
// generation are dropped with ErrStaleResult. A failed fetch empties the
// list (or keeps it, WithStaleOnError) and its error is returned.
func (l *ProductList) Apply(res FetchResult) error {
	if res.Generation != l.generation {
		return ErrStaleResult
	}
	if res.Err != nil {
		l.err = res.Err
		if !l.staleOnError {
			l.records = nil
		}
		return res.Err
	}
	l.err = nil
	l.records = slices.Clone(res.Products)
	return nil
}

// Err returns the error of the last applied fetch, if it failed.
func (l *ProductList) Err() error {
	return l.err
}

// Records returns the raw records of the last successful fetch.
func (l *ProductList) Records() []catalog.Product {
	return slices.Clone(l.records)
}

// VisibleProducts derives the displayed list: records matching the text query
// on name or description and lying within the price range, stably ordered by
// the sort key. Equal elements keep their fetch order.
func (l *ProductList) VisibleProducts() []catalog.Product {
	q := strings.ToLower(l.query)

	out := make([]catalog.Product, 0, len(l.records))
	for _, p := range l.records {
		if !matchesProduct(p, q) || !l.price.Contains(p.Price) {
			continue
		}
		out = append(out, p)
	}

	slices.SortStableFunc(out, l.compare())
	return out
}

func matchesProduct(p catalog.Product, q string) bool {
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Description), q)
}

func (l *ProductList) compare() func(a, b catalog.Product) int {
	switch l.sort {
	case SortOldest:
		return func(a, b catalog.Product) int { return a.CreatedAt.Compare(b.CreatedAt) }
	case SortPriceAsc:
		return func(a, b catalog.Product) int { return cmpInt64(a.Price, b.Price) }
	case SortPriceDesc:
		return func(a, b catalog.Product) int { return cmpInt64(b.Price, a.Price) }
	case SortNameAsc:
		return func(a, b catalog.Product) int { return l.names.compare(a.Name, b.Name) }
	case SortNameDesc:
		return func(a, b catalog.Product) int { return l.names.compare(b.Name, a.Name) }
	default:
		return func(a, b catalog.Product) int { return b.CreatedAt.Compare(a.CreatedAt) }
	}
}

func cmpInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// normalizeSlugs trims, drops empty entries, de-duplicates and sorts so that
// equal selections compare equal regardless of toggle order.
func normalizeSlugs(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}

func normalizeIDs(in []int64) []int64 {
	out := slices.Clone(in)
	if out == nil {
		out = []int64{}
	}
	slices.Sort(out)
	return slices.Compact(out)
}
