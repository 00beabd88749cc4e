package handler

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/go-faster/sdk/zctx"
	ht "github.com/ogen-go/ogen/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/etalasekita/etalase/internal/domain/auth"
	"github.com/etalasekita/etalase/internal/domain/catalog"
	"github.com/etalasekita/etalase/internal/oas"
	"github.com/etalasekita/etalase/internal/wire"
)

// --- Mock implementations ---

type mockProducts struct {
	products  []catalog.Product
	lastQuery catalog.ProductQuery
	lastLimit int
	created   *catalog.NewProduct
	listErr   error
	createErr error
}

func (m *mockProducts) List(_ context.Context, q catalog.ProductQuery) ([]catalog.Product, error) {
	m.lastQuery = q
	return m.products, m.listErr
}

func (m *mockProducts) GetByID(_ context.Context, id int64) (*catalog.Product, error) {
	for _, p := range m.products {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, catalog.ErrNotFound
}

func (m *mockProducts) Related(_ context.Context, id int64, limit int) ([]catalog.Product, error) {
	m.lastLimit = limit
	var out []catalog.Product
	for _, p := range m.products {
		if p.ID != id && len(out) < limit {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *mockProducts) Create(_ context.Context, p catalog.NewProduct) (*catalog.Product, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	m.created = &p
	return &catalog.Product{
		ID: 99, Name: p.Name, Price: p.Price, Image: p.Image,
		CategorySlug: p.CategorySlug, VendorID: p.VendorID, Featured: p.Featured,
	}, nil
}

type mockVendors struct {
	vendors   []catalog.Vendor
	created   *catalog.NewVendor
	listErr   error
	createErr error
}

func (m *mockVendors) List(context.Context) ([]catalog.Vendor, error) {
	return m.vendors, m.listErr
}

func (m *mockVendors) GetByID(_ context.Context, id int64) (*catalog.Vendor, error) {
	for _, v := range m.vendors {
		if v.ID == id {
			return &v, nil
		}
	}
	return nil, catalog.ErrNotFound
}

func (m *mockVendors) Create(_ context.Context, v catalog.NewVendor) (*catalog.Vendor, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	m.created = &v
	return &catalog.Vendor{ID: 7, Name: v.Name, City: v.City, Logo: v.Logo, CoverImage: v.CoverImage, Location: v.Location}, nil
}

type mockCategories struct {
	categories []catalog.Category
}

func (m *mockCategories) List(context.Context) ([]catalog.Category, error) {
	return m.categories, nil
}

func (m *mockCategories) GetByID(_ context.Context, id int64) (*catalog.Category, error) {
	for _, c := range m.categories {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, catalog.ErrNotFound
}

func (m *mockCategories) GetBySlug(_ context.Context, slug string) (*catalog.Category, error) {
	for _, c := range m.categories {
		if c.Slug == slug {
			return &c, nil
		}
	}
	return nil, catalog.ErrNotFound
}

type mockAuth struct {
	loginErr  error
	verifyErr error
}

const validToken = "valid-token"

func (m *mockAuth) Login(_ context.Context, email, password string) (*auth.Session, error) {
	if m.loginErr != nil {
		return nil, m.loginErr
	}
	if email != "admin@etalasekita.id" || password != "rahasia" {
		return nil, auth.ErrInvalidCredentials
	}
	return &auth.Session{
		AccessToken: validToken,
		TokenType:   "bearer",
		ExpiresAt:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}, nil
}

func (m *mockAuth) Verify(_ context.Context, token string) (*auth.Identity, error) {
	if m.verifyErr != nil {
		return nil, m.verifyErr
	}
	if token != validToken {
		return nil, errors.Wrap(auth.ErrInvalidToken, "signature")
	}
	return &auth.Identity{UserID: 1, Email: "admin@etalasekita.id"}, nil
}

type upload struct {
	key         string
	body        string
	contentType string
}

type mockMedia struct {
	mu      sync.Mutex
	uploads []upload
	deleted []string
	// failOn fails puts of keys containing it; empty fails every put.
	failOn    string
	err       error
	deleteErr error
}

func (m *mockMedia) Put(_ context.Context, key string, body io.Reader, contentType string) (string, error) {
	if m.err != nil && strings.Contains(key, m.failOn) {
		return "", m.err
	}
	b, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.uploads = append(m.uploads, upload{key: key, body: string(b), contentType: contentType})
	return "https://cdn.example/" + key, nil
}

func (m *mockMedia) Delete(_ context.Context, key string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deleted = append(m.deleted, key)
	return nil
}

// --- Helpers ---

var testNow = time.UnixMilli(1700000000000)

type deps struct {
	products   *mockProducts
	vendors    *mockVendors
	categories *mockCategories
	auth       *mockAuth
	media      *mockMedia
}

func newDeps() *deps {
	return &deps{
		products: &mockProducts{products: []catalog.Product{
			{ID: 1, Name: "Tas Batik", Description: "tas jinjing", Price: 100000, CategorySlug: "kerajinan", VendorID: 1, CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
			{ID: 2, Name: "Kopi Aceh", Price: 50000, CategorySlug: "kuliner", VendorID: 2, CreatedAt: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)},
			{ID: 3, Name: "Syal Batik", Price: 75000, CategorySlug: "kerajinan", VendorID: 1, CreatedAt: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)},
		}},
		vendors: &mockVendors{vendors: []catalog.Vendor{
			{ID: 1, Name: "Batik Sekar", City: "Yogyakarta", Location: &catalog.Location{Lat: -7.8, Lng: 110.4}},
			{ID: 2, Name: "Kopi Gayo", City: "Takengon"},
		}},
		categories: &mockCategories{categories: []catalog.Category{
			{ID: 1, Name: "Kerajinan", Slug: "kerajinan"},
			{ID: 2, Name: "Kuliner", Slug: "kuliner"},
		}},
		auth:  &mockAuth{},
		media: &mockMedia{},
	}
}

func (d *deps) handler(t *testing.T) *Handler {
	t.Helper()

	h, err := New(Config{
		StoreError: func(err error) (string, bool) {
			var s storeErr
			if errors.As(err, &s) {
				return string(s), true
			}
			return "", false
		},
		Now: func() time.Time { return testNow },
	}, d.products, d.vendors, d.categories, d.auth, d.media)
	require.NoError(t, err)
	return h
}

// server mounts the handler the way the application does, with a 1 MiB body
// limit.
func (d *deps) server(t *testing.T) http.Handler {
	t.Helper()

	h := d.handler(t)
	api, err := oas.NewServer(h, h,
		oas.WithPathPrefix("/api"),
		oas.WithErrorHandler(h.HandleError),
		oas.WithNotFound(h.NotFound),
	)
	require.NoError(t, err)
	return http.MaxBytesHandler(api, 1<<20)
}

type storeErr string

func (e storeErr) Error() string { return string(e) }

func do(t *testing.T, srv http.Handler, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func get(t *testing.T, srv http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	return do(t, srv, httptest.NewRequest(http.MethodGet, target, nil))
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	msg, err := wire.DecodeError(jx.DecodeBytes(rec.Body.Bytes()))
	require.NoError(t, err, rec.Body.String())
	return msg
}

// statusOf returns the status and message the error is answered with.
func statusOf(t *testing.T, h *Handler, err error) (int, string) {
	t.Helper()
	require.Error(t, err)
	s := h.NewError(context.Background(), err)
	return s.StatusCode, s.Response.Error
}

func ids(products []oas.Product) []int64 {
	out := make([]int64, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func file(name, contentType, body string) oas.OptMultipartFile {
	return oas.NewOptMultipartFile(ht.MultipartFile{
		Name:   name,
		File:   strings.NewReader(body),
		Size:   int64(len(body)),
		Header: textproto.MIMEHeader{"Content-Type": {contentType}},
	})
}

func productForm() *oas.ProductFormMultipart {
	return &oas.ProductFormMultipart{Name: "Gelang", Price: 1000, CategorySlug: "kerajinan", SmeID: 1}
}

type formFile struct {
	field, name, contentType, body string
}

func multipartRequest(t *testing.T, target, token string, fields url.Values, files ...formFile) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, vs := range fields {
		for _, v := range vs {
			require.NoError(t, mw.WriteField(k, v))
		}
	}
	for _, f := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="`+f.field+`"; filename="`+f.name+`"`)
		h.Set("Content-Type", f.contentType)
		part, err := mw.CreatePart(h)
		require.NoError(t, err)
		_, err = io.WriteString(part, f.body)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

// --- Catalog reads ---

func TestListProducts_Filters(t *testing.T) {
	d := newDeps()
	h := d.handler(t)
	ctx := context.Background()

	products, err := h.ListProducts(ctx, oas.ListProductsParams{Category: []string{"kerajinan", " "}})
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, ids(products))
	assert.Equal(t, []string{"kerajinan"}, d.products.lastQuery.Categories)
	assert.Empty(t, d.products.lastQuery.Vendors, "no vendor selected means no vendor constraint")

	_, err = h.ListProducts(ctx, oas.ListProductsParams{
		Category: []string{"kerajinan", "kuliner"},
		SmeId:    []int64{1, 2},
		Featured: oas.NewOptBool(true),
	})
	require.NoError(t, err)
	assert.Equal(t, catalog.ProductQuery{
		Categories:   []string{"kerajinan", "kuliner"},
		Vendors:      []int64{1, 2},
		FeaturedOnly: true,
	}, d.products.lastQuery)
}

func TestListProducts_Query(t *testing.T) {
	d := newDeps()
	srv := d.server(t)

	rec := get(t, srv, "/api/products?category=kerajinan&category=kuliner&smeId=1&smeId=2&featured=true")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, catalog.ProductQuery{
		Categories:   []string{"kerajinan", "kuliner"},
		Vendors:      []int64{1, 2},
		FeaturedOnly: true,
	}, d.products.lastQuery)

	products, err := wire.DecodeProducts(jx.DecodeBytes(rec.Body.Bytes()))
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, d.products.products[0], products[0])

	rec = get(t, srv, "/api/products?smeId=satu")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, errorMessage(t, rec), "smeId")
}

func TestListProducts_StoreError(t *testing.T) {
	d := newDeps()
	d.products.listErr = errors.Wrap(storeErr(`relation "products" does not exist`), "query")
	h := d.handler(t)

	_, err := h.ListProducts(context.Background(), oas.ListProductsParams{})
	code, msg := statusOf(t, h, err)
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, `relation "products" does not exist`, msg)

	d.products.listErr = errors.New("connection reset")
	_, err = h.ListProducts(context.Background(), oas.ListProductsParams{})
	_, msg = statusOf(t, h, err)
	assert.Equal(t, "internal server error", msg)
}

func TestGetEntities(t *testing.T) {
	tests := []struct {
		target string
		status int
		errMsg string
	}{
		{target: "/api/products/2", status: http.StatusOK},
		{target: "/api/products/404", status: http.StatusNotFound, errMsg: "Produk tidak ditemukan"},
		{target: "/api/products/abc", status: http.StatusBadRequest},
		{target: "/api/products/0", status: http.StatusBadRequest},
		{target: "/api/smes/1", status: http.StatusOK},
		{target: "/api/smes/404", status: http.StatusNotFound, errMsg: "UMKM tidak ditemukan"},
		{target: "/api/categories/2", status: http.StatusOK},
		{target: "/api/categories/404", status: http.StatusNotFound, errMsg: "Kategori tidak ditemukan"},
		{target: "/api/nope", status: http.StatusNotFound, errMsg: "not found"},
	}

	srv := newDeps().server(t)
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rec := get(t, srv, tt.target)
			assert.Equal(t, tt.status, rec.Code, rec.Body.String())
			if tt.status != http.StatusOK {
				msg := errorMessage(t, rec)
				assert.NotEmpty(t, msg)
				if tt.errMsg != "" {
					assert.Equal(t, tt.errMsg, msg)
				}
			}
		})
	}
}

func TestGetSme(t *testing.T) {
	h := newDeps().handler(t)

	s, err := h.GetSme(context.Background(), oas.GetSmeParams{ID: 1})
	require.NoError(t, err)
	assert.Equal(t, "Batik Sekar", s.Name)
	assert.Equal(t, oas.NewNilFloat64(110.4), s.Longitude)
	assert.True(t, s.EstablishedDate.IsNull())
	assert.True(t, s.CreatedAt.IsNull())

	s, err = h.GetSme(context.Background(), oas.GetSmeParams{ID: 2})
	require.NoError(t, err)
	assert.True(t, s.Latitude.IsNull())
	assert.True(t, s.Longitude.IsNull())
}

func TestGetSme_Body(t *testing.T) {
	rec := get(t, newDeps().server(t), "/api/smes/1")
	require.Equal(t, http.StatusOK, rec.Code)

	v, err := wire.DecodeVendor(jx.DecodeBytes(rec.Body.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, "Batik Sekar", v.Name)
	require.NotNil(t, v.Location)
	assert.Equal(t, 110.4, v.Location.Lng)
}

func TestListRelatedProducts_Limit(t *testing.T) {
	d := newDeps()
	h := d.handler(t)
	ctx := context.Background()

	products, err := h.ListRelatedProducts(ctx, oas.ListRelatedProductsParams{ID: 1})
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 3}, ids(products))
	assert.Equal(t, defaultRelatedLimit, d.products.lastLimit)

	_, err = h.ListRelatedProducts(ctx, oas.ListRelatedProductsParams{ID: 1, Limit: oas.NewOptInt(500)})
	require.NoError(t, err)
	assert.Equal(t, maxRelatedLimit, d.products.lastLimit)

	_, err = h.ListRelatedProducts(ctx, oas.ListRelatedProductsParams{ID: 1, Limit: oas.NewOptInt(0)})
	require.NoError(t, err)
	assert.Equal(t, 1, d.products.lastLimit)
}

func TestListCategories(t *testing.T) {
	h := newDeps().handler(t)
	ctx := context.Background()

	all, err := h.ListCategories(ctx, oas.ListCategoriesParams{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	one, err := h.ListCategories(ctx, oas.ListCategoriesParams{Slug: oas.NewOptString("kuliner")})
	require.NoError(t, err)
	assert.Equal(t, []oas.Category{{ID: 2, Name: "Kuliner", Slug: "kuliner"}}, one)

	none, err := h.ListCategories(ctx, oas.ListCategoriesParams{Slug: oas.NewOptString("fashion")})
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

// --- Auth ---

func TestLogin(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		loginErr error
		status   int
		errMsg   string
	}{
		{name: "ok", body: `{"email":"admin@etalasekita.id","password":"rahasia"}`, status: http.StatusOK},
		{name: "wrong password", body: `{"email":"admin@etalasekita.id","password":"salah"}`, status: http.StatusUnauthorized, errMsg: "Invalid login credentials"},
		{name: "throttled", body: `{"email":"a","password":"b"}`, loginErr: auth.ErrTooManyAttempts, status: http.StatusTooManyRequests, errMsg: "Too many login attempts"},
		{name: "bad json", body: `{"email":`, status: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDeps()
			d.auth.loginErr = tt.loginErr
			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			rec := do(t, d.server(t), req)
			require.Equal(t, tt.status, rec.Code, rec.Body.String())
			if tt.status != http.StatusOK {
				msg := errorMessage(t, rec)
				assert.NotEmpty(t, msg)
				if tt.errMsg != "" {
					assert.Equal(t, tt.errMsg, msg)
				}
				return
			}
			s, err := wire.DecodeSession(jx.DecodeBytes(rec.Body.Bytes()))
			require.NoError(t, err)
			assert.Equal(t, validToken, s.AccessToken)
			assert.Equal(t, "bearer", s.TokenType)
		})
	}
}

func TestHandleBearerAuth(t *testing.T) {
	h := newDeps().handler(t)

	ctx, err := h.HandleBearerAuth(context.Background(), oas.CreateProductOperation, oas.BearerAuth{Token: validToken})
	require.NoError(t, err)
	id, ok := auth.IdentityFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, int64(1), id.UserID)

	_, err = h.HandleBearerAuth(context.Background(), oas.CreateProductOperation, oas.BearerAuth{Token: "forged"})
	require.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestRequireAuth(t *testing.T) {
	fields := url.Values{"name": {"Gelang"}, "price": {"1000"}, "category_slug": {"kerajinan"}, "sme_id": {"1"}}

	tests := []struct {
		name      string
		header    string
		verifyErr error
		status    int
		errMsg    string
	}{
		{name: "missing", status: http.StatusUnauthorized, errMsg: "Unauthorized: No token"},
		{name: "wrong scheme", header: "Basic YWRtaW46cmFoYXNpYQ==", status: http.StatusUnauthorized, errMsg: "Unauthorized: No token"},
		{name: "empty token", header: "Bearer ", status: http.StatusUnauthorized, errMsg: "Unauthorized: No token"},
		{name: "invalid", header: "Bearer forged", status: http.StatusUnauthorized, errMsg: "Invalid token"},
		{name: "provider down", header: "Bearer " + validToken, verifyErr: errors.New("connection refused"), status: http.StatusInternalServerError, errMsg: "internal server error"},
		{name: "valid", header: "Bearer " + validToken, status: http.StatusCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDeps()
			d.auth.verifyErr = tt.verifyErr
			req := multipartRequest(t, "/api/products", "", fields)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := do(t, d.server(t), req)
			require.Equal(t, tt.status, rec.Code, rec.Body.String())
			if tt.errMsg != "" {
				assert.Equal(t, tt.errMsg, errorMessage(t, rec))
			}
			if tt.status != http.StatusCreated {
				assert.Nil(t, d.products.created, "nothing is written without a verified identity")
			}
		})
	}
}

// --- Admin writes ---

func TestCreateProduct(t *testing.T) {
	d := newDeps()
	h := d.handler(t)

	form := productForm()
	form.Name = "  Gelang Perak "
	form.Price = 125000
	form.Description = oas.NewOptString("Perak Kotagede")
	form.Featured = oas.NewOptBool(true)
	form.Image = file("gelang perak.jpg", "image/jpeg", "jpeg-bytes")

	p, err := h.CreateProduct(context.Background(), form)
	require.NoError(t, err)
	assert.Equal(t, int64(99), p.ID)

	require.Len(t, d.media.uploads, 1)
	up := d.media.uploads[0]
	assert.Equal(t, "products/1700000000000-gelang-perak.jpg", up.key)
	assert.Equal(t, "jpeg-bytes", up.body)
	assert.Equal(t, "image/jpeg", up.contentType)
	assert.Empty(t, d.media.deleted)

	require.NotNil(t, d.products.created)
	assert.Equal(t, catalog.NewProduct{
		Name:         "Gelang Perak",
		Description:  "Perak Kotagede",
		Price:        125000,
		Image:        "https://cdn.example/products/1700000000000-gelang-perak.jpg",
		CategorySlug: "kerajinan",
		VendorID:     1,
		Featured:     true,
	}, *d.products.created)
}

func TestCreateProduct_Multipart(t *testing.T) {
	d := newDeps()
	req := multipartRequest(t, "/api/products", validToken, url.Values{
		"name":          {"Gelang Perak"},
		"price":         {"125000"},
		"category_slug": {"kerajinan"},
		"sme_id":        {"1"},
		"featured":      {"true"},
	}, formFile{field: "image", name: "gelang.jpg", contentType: "image/jpeg", body: "jpeg-bytes"})

	rec := do(t, d.server(t), req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	p, err := wire.DecodeProduct(jx.DecodeBytes(rec.Body.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, int64(99), p.ID)
	assert.Equal(t, "https://cdn.example/products/1700000000000-gelang.jpg", p.Image)
	assert.True(t, p.Featured)

	require.Len(t, d.media.uploads, 1)
	assert.Equal(t, "jpeg-bytes", d.media.uploads[0].body)
}

func TestCreateProduct_Rejected(t *testing.T) {
	tests := []struct {
		name   string
		form   func(f *oas.ProductFormMultipart)
		errMsg string
	}{
		{name: "blank name", form: func(f *oas.ProductFormMultipart) { f.Name = "  " }, errMsg: "name: required"},
		{name: "blank category", form: func(f *oas.ProductFormMultipart) { f.CategorySlug = "" }, errMsg: "category_slug: required"},
		{name: "no sme", form: func(f *oas.ProductFormMultipart) { f.SmeID = 0 }, errMsg: "sme_id: required"},
		{name: "negative price", form: func(f *oas.ProductFormMultipart) { f.Price = -5 }, errMsg: "price: must not be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDeps()
			h := d.handler(t)
			form := productForm()
			form.Image = file("a.jpg", "image/jpeg", "x")
			tt.form(form)

			_, err := h.CreateProduct(context.Background(), form)
			code, msg := statusOf(t, h, err)
			assert.Equal(t, http.StatusBadRequest, code)
			assert.Equal(t, tt.errMsg, msg)
			assert.Empty(t, d.media.uploads, "invalid input uploads nothing")
			assert.Nil(t, d.products.created)
		})
	}
}

func TestCreateProduct_MalformedForm(t *testing.T) {
	base := url.Values{"name": {"Gelang"}, "price": {"1000"}, "category_slug": {"kerajinan"}, "sme_id": {"1"}}
	with := func(key, value string) url.Values {
		v := url.Values{}
		for k, vs := range base {
			v[k] = vs
		}
		if value == "" {
			v.Del(key)
		} else {
			v.Set(key, value)
		}
		return v
	}

	tests := []struct {
		name   string
		fields url.Values
		field  string
	}{
		{name: "no price", fields: with("price", ""), field: "price"},
		{name: "price text", fields: with("price", "murah"), field: "price"},
		{name: "sme text", fields: with("sme_id", "satu"), field: "sme_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDeps()
			rec := do(t, d.server(t), multipartRequest(t, "/api/products", validToken, tt.fields))
			require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
			assert.Contains(t, errorMessage(t, rec), tt.field)
			assert.Empty(t, d.media.uploads)
			assert.Nil(t, d.products.created)
		})
	}
}

func TestCreateProduct_Failures(t *testing.T) {
	t.Run("store", func(t *testing.T) {
		d := newDeps()
		d.products.createErr = errors.Wrap(storeErr(`insert or update on table "products" violates foreign key constraint`), "insert product")
		h := d.handler(t)
		form := productForm()
		form.Image = file("a.jpg", "image/jpeg", "x")

		_, err := h.CreateProduct(context.Background(), form)
		code, msg := statusOf(t, h, err)
		assert.Equal(t, http.StatusInternalServerError, code)
		assert.Contains(t, msg, "violates foreign key constraint")
		assert.Equal(t, []string{"products/1700000000000-a.jpg"}, d.media.deleted, "stored image is discarded")
	})

	t.Run("upload", func(t *testing.T) {
		d := newDeps()
		d.media.err = errors.New("bucket unavailable")
		h := d.handler(t)
		form := productForm()
		form.Image = file("a.jpg", "image/jpeg", "x")

		_, err := h.CreateProduct(context.Background(), form)
		code, msg := statusOf(t, h, err)
		assert.Equal(t, http.StatusInternalServerError, code)
		assert.Equal(t, "internal server error", msg)
		assert.Nil(t, d.products.created)
		assert.Empty(t, d.media.deleted)
	})

	t.Run("too large", func(t *testing.T) {
		d := newDeps()
		rec := do(t, d.server(t), multipartRequest(t, "/api/products", validToken,
			url.Values{"name": {"Gelang"}, "price": {"0"}, "category_slug": {"kerajinan"}, "sme_id": {"1"}},
			formFile{field: "image", name: "big.jpg", contentType: "image/jpeg", body: strings.Repeat("x", 2<<20)}))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.NotEmpty(t, errorMessage(t, rec))
		assert.Nil(t, d.products.created)
	})
}

func TestCreateProduct_OrphanedUploadIsLogged(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	ctx := zctx.Base(context.Background(), zap.New(core))

	d := newDeps()
	d.products.createErr = errors.New("connection reset")
	d.media.deleteErr = errors.New("bucket unavailable")
	form := productForm()
	form.Image = file("a.jpg", "image/jpeg", "x")

	_, err := d.handler(t).CreateProduct(ctx, form)
	require.Error(t, err)

	orphans := logs.FilterMessage("Orphaned upload").All()
	require.Len(t, orphans, 1)
	assert.Equal(t, "products/1700000000000-a.jpg", orphans[0].ContextMap()["key"])
}

func smeForm() *oas.SmeFormMultipart {
	return &oas.SmeFormMultipart{
		Name:            "Anyaman Lombok",
		City:            oas.NewOptString("Mataram"),
		EstablishedDate: oas.NewOptDate(time.Date(2012, 6, 1, 0, 0, 0, 0, time.UTC)),
		Latitude:        oas.NewOptFloat64(-8.58),
		Longitude:       oas.NewOptFloat64(116.1),
		Logo:            file("logo.png", "image/png", "png"),
		CoverImage:      file("cover.png", "image/png", "png"),
	}
}

func TestCreateSme(t *testing.T) {
	d := newDeps()
	h := d.handler(t)

	s, err := h.CreateSme(context.Background(), smeForm())
	require.NoError(t, err)
	assert.Equal(t, int64(7), s.ID)
	assert.Equal(t, oas.NewNilFloat64(-8.58), s.Latitude)

	require.NotNil(t, d.vendors.created)
	created := d.vendors.created
	assert.Equal(t, "Mataram", created.City)
	assert.Equal(t, "https://cdn.example/smes/1700000000000-logo-logo.png", created.Logo)
	assert.Equal(t, "https://cdn.example/smes/1700000000000-cover-cover.png", created.CoverImage)
	assert.Equal(t, time.Date(2012, 6, 1, 0, 0, 0, 0, time.UTC), created.EstablishedDate)
	assert.Equal(t, &catalog.Location{Lat: -8.58, Lng: 116.1}, created.Location)
}

func TestCreateSme_Multipart(t *testing.T) {
	d := newDeps()
	req := multipartRequest(t, "/api/smes", validToken, url.Values{
		"name":             {"Anyaman Lombok"},
		"established_date": {"2012-06-01"},
		"latitude":         {"-8.58"},
		"longitude":        {"116.1"},
	}, formFile{field: "logo", name: "logo.png", contentType: "image/png", body: "png"})

	rec := do(t, d.server(t), req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	v, err := wire.DecodeVendor(jx.DecodeBytes(rec.Body.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, int64(7), v.ID)
	assert.Equal(t, "https://cdn.example/smes/1700000000000-logo-logo.png", v.Logo)
	assert.Empty(t, v.CoverImage)
	require.NotNil(t, d.vendors.created)
	assert.Equal(t, time.Date(2012, 6, 1, 0, 0, 0, 0, time.UTC), d.vendors.created.EstablishedDate.UTC())
}

func TestCreateSme_Rejected(t *testing.T) {
	tests := []struct {
		name   string
		form   func(f *oas.SmeFormMultipart)
		errMsg string
	}{
		{name: "blank name", form: func(f *oas.SmeFormMultipart) { f.Name = " " }, errMsg: "name: required"},
		{name: "half location", form: func(f *oas.SmeFormMultipart) { f.Longitude = oas.OptFloat64{} }, errMsg: "location: latitude and longitude must be set together"},
		{name: "out of range", form: func(f *oas.SmeFormMultipart) { f.Latitude = oas.NewOptFloat64(91) }, errMsg: "latitude: out of range"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDeps()
			h := d.handler(t)
			form := smeForm()
			tt.form(form)

			_, err := h.CreateSme(context.Background(), form)
			code, msg := statusOf(t, h, err)
			assert.Equal(t, http.StatusBadRequest, code)
			assert.Equal(t, tt.errMsg, msg)
			assert.Empty(t, d.media.uploads)
			assert.Nil(t, d.vendors.created)
		})
	}
}

func TestCreateSme_MalformedForm(t *testing.T) {
	tests := []struct {
		name   string
		fields url.Values
		field  string
	}{
		{name: "no name", fields: url.Values{"city": {"Mataram"}}, field: "name"},
		{name: "bad latitude", fields: url.Values{"name": {"A"}, "latitude": {"x"}, "longitude": {"1"}}, field: "latitude"},
		{name: "bad date", fields: url.Values{"name": {"A"}, "established_date": {"kemarin"}}, field: "established_date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDeps()
			rec := do(t, d.server(t), multipartRequest(t, "/api/smes", validToken, tt.fields))
			require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
			assert.Contains(t, errorMessage(t, rec), tt.field)
			assert.Nil(t, d.vendors.created)
		})
	}
}

func TestCreateSme_DiscardsUploads(t *testing.T) {
	t.Run("cover upload fails", func(t *testing.T) {
		d := newDeps()
		d.media.err = errors.New("bucket unavailable")
		d.media.failOn = "cover-"

		_, err := d.handler(t).CreateSme(context.Background(), smeForm())
		require.Error(t, err)
		assert.Equal(t, []string{"smes/1700000000000-logo-logo.png"}, d.media.deleted)
		assert.Nil(t, d.vendors.created)
	})

	t.Run("insert fails", func(t *testing.T) {
		d := newDeps()
		d.vendors.createErr = errors.New("connection reset")

		_, err := d.handler(t).CreateSme(context.Background(), smeForm())
		require.Error(t, err)
		assert.ElementsMatch(t, []string{
			"smes/1700000000000-logo-logo.png",
			"smes/1700000000000-cover-cover.png",
		}, d.media.deleted)
	})
}

// --- Storefront ---

func TestListStorefrontProducts(t *testing.T) {
	tests := []struct {
		name   string
		params oas.ListStorefrontProductsParams
		want   []int64
	}{
		{name: "default newest", want: []int64{2, 3, 1}},
		{name: "price ascending", params: oas.ListStorefrontProductsParams{Sort: oas.NewOptString("price-asc")}, want: []int64{2, 3, 1}},
		{name: "price descending", params: oas.ListStorefrontProductsParams{Sort: oas.NewOptString("price-desc")}, want: []int64{1, 3, 2}},
		{name: "search", params: oas.ListStorefrontProductsParams{Q: oas.NewOptString("BATIK"), Sort: oas.NewOptString("name-asc")}, want: []int64{3, 1}},
		{name: "search description", params: oas.ListStorefrontProductsParams{Q: oas.NewOptString("jinjing")}, want: []int64{1}},
		{
			name:   "price range",
			params: oas.ListStorefrontProductsParams{Min: oas.NewOptInt64(60000), Max: oas.NewOptInt64(200000), Sort: oas.NewOptString("oldest")},
			want:   []int64{1, 3},
		},
		{name: "exact price", params: oas.ListStorefrontProductsParams{Min: oas.NewOptInt64(75000), Max: oas.NewOptInt64(75000)}, want: []int64{3}},
		{name: "unknown sort falls back to newest", params: oas.ListStorefrontProductsParams{Sort: oas.NewOptString("popular")}, want: []int64{2, 3, 1}},
	}

	h := newDeps().handler(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products, err := h.ListStorefrontProducts(context.Background(), tt.params)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(products))
		})
	}
}

func TestListStorefrontProducts_Selection(t *testing.T) {
	d := newDeps()
	h := d.handler(t)

	_, err := h.ListStorefrontProducts(context.Background(), oas.ListStorefrontProductsParams{
		Category: []string{"kerajinan", "kerajinan"},
		SmeId:    []int64{2},
		Featured: oas.NewOptBool(true),
	})
	require.NoError(t, err)
	assert.Equal(t, catalog.ProductQuery{
		Categories:   []string{"kerajinan"},
		Vendors:      []int64{2},
		FeaturedOnly: true,
	}, d.products.lastQuery)

	d.products.listErr = errors.New("timeout")
	_, err = h.ListStorefrontProducts(context.Background(), oas.ListStorefrontProductsParams{})
	code, _ := statusOf(t, h, err)
	assert.Equal(t, http.StatusInternalServerError, code)
}

func TestListStorefrontProducts_Query(t *testing.T) {
	d := newDeps()
	srv := d.server(t)

	rec := get(t, srv, "/api/storefront/products?featured=true&smeId=1&sort=price-asc")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.True(t, d.products.lastQuery.FeaturedOnly)
	assert.Equal(t, []int64{1}, d.products.lastQuery.Vendors)

	rec = get(t, srv, "/api/storefront/products?min=murah")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListStorefrontSmes(t *testing.T) {
	h := newDeps().handler(t)

	smes, err := h.ListStorefrontSmes(context.Background(), oas.ListStorefrontSmesParams{Sort: oas.NewOptString("name-desc")})
	require.NoError(t, err)
	require.Len(t, smes, 2)
	assert.Equal(t, "Kopi Gayo", smes[0].Name)

	smes, err = h.ListStorefrontSmes(context.Background(), oas.ListStorefrontSmesParams{Q: oas.NewOptString("yogya")})
	require.NoError(t, err)
	require.Len(t, smes, 1)
	assert.Equal(t, int64(1), smes[0].ID)
}

func TestListMapMarkers(t *testing.T) {
	h := newDeps().handler(t)

	markers := func() []float64 {
		out, err := h.ListMapMarkers(context.Background(), oas.ListMapMarkersParams{})
		require.NoError(t, err)
		require.Len(t, out, 2)

		assert.False(t, out[0].Approximate)
		assert.Equal(t, -7.8, out[0].Latitude)
		assert.True(t, out[1].Approximate)
		return []float64{out[1].Latitude, out[1].Longitude}
	}

	assert.Equal(t, markers(), markers(), "placeholder positions are stable")
}
