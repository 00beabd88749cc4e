package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const productsJSON = `[
	{"id":1,"name":"Tas Batik","description":"Batik tulis","price":250000,"category_slug":"kerajinan","sme_id":1,"created_at":"2025-01-01T00:00:00Z"},
	{"id":2,"name":"Dompet Batik","price":75000,"category_slug":"kerajinan","sme_id":1,"featured":true,"created_at":"2025-02-01T00:00:00Z"},
	{"id":3,"name":"Kopi Gayo","price":90000,"category_slug":"kerajinan","sme_id":2,"created_at":"2025-03-01T00:00:00Z"}
]`

const vendorsJSON = `[
	{"id":1,"name":"Batik Sekar","city":"Yogyakarta","province":"DI Yogyakarta","established_date":"2010-04-01","latitude":-7.8,"longitude":110.36,"product_count":2},
	{"id":2,"name":"Anyaman Lombok","city":"Mataram","province":"NTB"}
]`

type result struct {
	out, errOut string
	err         error
}

func execute(t *testing.T, h http.Handler, args ...string) result {
	t.Helper()
	t.Setenv(envToken, "")
	t.Setenv(envAPIURL, "")

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs(append(args, "--api-url", srv.URL))
	err := cmd.Execute()
	return result{out: out.String(), errOut: errOut.String(), err: err}
}

func respond(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "Rp 0", formatPrice(0))
	assert.Equal(t, "Rp 75.000", formatPrice(75000))
	assert.Equal(t, "Rp 1.234.567", formatPrice(1234567))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "Kopi", truncate("Kopi", 10))
	assert.Equal(t, "Kerajin...", truncate("Kerajinan Tangan", 10))
}

func TestProducts(t *testing.T) {
	var query string
	res := execute(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.RawQuery
		respond(http.StatusOK, productsJSON)(w, r)
	}), "products", "--category", "kerajinan", "--q", "batik", "--sort", "price-asc")

	require.NoError(t, res.err)
	assert.Equal(t, "category=kerajinan", query)

	lines := strings.Split(strings.TrimSpace(res.out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "* Dompet Batik")
	assert.Contains(t, lines[1], "Rp 75.000")
	assert.Contains(t, lines[2], "Tas Batik")
	assert.NotContains(t, res.out, "Kopi Gayo")
}

func TestProducts_PriceRangeAndUnknownSort(t *testing.T) {
	res := execute(t, respond(http.StatusOK, productsJSON),
		"products", "--min", "80000", "--max", "100000", "--sort", "cheapest")

	require.NoError(t, res.err)
	assert.Contains(t, res.out, "Kopi Gayo")
	assert.NotContains(t, res.out, "Tas Batik")
	assert.Contains(t, res.errOut, "Unknown sort key")
}

func TestProducts_FetchFailure(t *testing.T) {
	res := execute(t, respond(http.StatusInternalServerError, `{"error":"connection refused"}`), "products")

	require.NoError(t, res.err)
	assert.Equal(t, "No products found.\n", res.out)
	assert.Contains(t, res.errOut, "Could not load products")
	assert.Contains(t, res.errOut, "connection refused")
}

func TestProduct(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/products/1", respond(http.StatusOK, `{"id":1,"name":"Tas Batik","price":250000,"category_slug":"kerajinan","sme_id":1}`))
	mux.HandleFunc("GET /api/products/1/related", respond(http.StatusOK, `[{"id":2,"name":"Dompet Batik","price":75000,"category_slug":"kerajinan","sme_id":1}]`))
	mux.HandleFunc("GET /api/smes/1", respond(http.StatusOK, `{"id":1,"name":"Batik Sekar","city":"Yogyakarta"}`))
	mux.HandleFunc("GET /api/categories", respond(http.StatusOK, `[{"id":1,"name":"Kerajinan","slug":"kerajinan"}]`))
	mux.HandleFunc("GET /api/products/9", respond(http.StatusNotFound, `{"error":"Produk tidak ditemukan"}`))

	res := execute(t, mux, "product", "1")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "Tas Batik")
	assert.Contains(t, res.out, "Rp 250.000")
	assert.Contains(t, res.out, "Category: Kerajinan")
	assert.Contains(t, res.out, "SME:      Batik Sekar (Yogyakarta)")
	assert.Contains(t, res.out, "Dompet Batik")

	res = execute(t, mux, "product", "9")
	require.EqualError(t, res.err, "product 9 not found")

	res = execute(t, mux, "product", "abc")
	require.Error(t, res.err)
}

func TestSmes(t *testing.T) {
	res := execute(t, respond(http.StatusOK, vendorsJSON), "smes", "--sort", "name-desc")
	require.NoError(t, res.err)

	lines := strings.Split(strings.TrimSpace(res.out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "Batik Sekar")
	assert.Contains(t, lines[1], "2010")
	assert.Contains(t, lines[2], "Anyaman Lombok")

	res = execute(t, respond(http.StatusOK, vendorsJSON), "smes", "--q", "mataram")
	require.NoError(t, res.err)
	assert.NotContains(t, res.out, "Batik Sekar")
	assert.Contains(t, res.out, "Anyaman Lombok")
}

func TestMap(t *testing.T) {
	res := execute(t, respond(http.StatusOK, vendorsJSON), "map")
	require.NoError(t, res.err)

	lines := strings.Split(strings.TrimSpace(res.out), "\n")
	require.Len(t, lines, 3)
	// Ordered by name.
	assert.Contains(t, lines[1], "Anyaman Lombok")
	assert.Contains(t, lines[1], "~")
	assert.Contains(t, lines[2], "Batik Sekar")
	assert.Contains(t, lines[2], "-7.8000")
	assert.NotContains(t, lines[2], "~")
}

func TestLogin(t *testing.T) {
	res := execute(t, respond(http.StatusOK, `{"access_token":"tok","token_type":"bearer","expires_at":"2026-01-01T00:00:00Z"}`),
		"login", "--email", "admin@etalasekita.id", "--password", "rahasia")
	require.NoError(t, res.err)
	assert.Equal(t, "export ETALASE_TOKEN=tok\n", res.out)

	res = execute(t, respond(http.StatusUnauthorized, `{"error":"Invalid login credentials"}`),
		"login", "--email", "admin@etalasekita.id", "--password", "salah")
	require.Error(t, res.err)
	assert.Equal(t, "Invalid login credentials\n", res.errOut)
}

func TestAdminAddProduct(t *testing.T) {
	img := filepath.Join(t.TempDir(), "gelang.jpg")
	require.NoError(t, os.WriteFile(img, []byte("jpeg"), 0o600))

	var auth, filename string
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		if !assert.NoError(t, r.ParseMultipartForm(1<<20)) {
			return
		}
		if _, hdr, err := r.FormFile("image"); err == nil {
			filename = hdr.Filename
		}
		respond(http.StatusCreated, `{"id":12,"name":"Gelang","price":150000,"category_slug":"kerajinan","sme_id":3}`)(w, r)
	})

	res := execute(t, h, "admin", "add-product", "--token", "tok",
		"--name", "Gelang", "--price", "150000", "--category", "kerajinan", "--sme", "3", "--image", img)
	require.NoError(t, res.err)
	assert.Equal(t, "Bearer tok", auth)
	assert.Equal(t, "gelang.jpg", filename)
	assert.Equal(t, "Created product 12: Gelang (Rp 150.000)\n", res.out)
}

func TestAdminAddProduct_Failures(t *testing.T) {
	fkErr := "insert or update on table products violates foreign key constraint products_sme_id_fkey"

	tests := []struct {
		name    string
		handler http.Handler
		args    []string
		errOut  string
		wantErr string
	}{
		{
			name:    "no token",
			handler: respond(http.StatusCreated, `{}`),
			args:    []string{"--name", "Gelang", "--category", "kerajinan", "--sme", "3"},
			wantErr: "not logged in",
		},
		{
			name:    "missing name",
			handler: respond(http.StatusCreated, `{}`),
			args:    []string{"--token", "tok", "--category", "kerajinan", "--sme", "3"},
			wantErr: "name",
		},
		{
			name:    "store error",
			handler: respond(http.StatusInternalServerError, `{"error":"`+fkErr+`"}`),
			args:    []string{"--token", "tok", "--name", "Gelang", "--category", "kerajinan", "--sme", "99"},
			errOut:  fkErr + "\n",
			wantErr: "status 500",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := execute(t, tt.handler, append([]string{"admin", "add-product"}, tt.args...)...)
			require.ErrorContains(t, res.err, tt.wantErr)
			if tt.errOut != "" {
				assert.Equal(t, tt.errOut, res.errOut)
			}
		})
	}
}

func TestAdminAddSME(t *testing.T) {
	var lat, established string
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !assert.NoError(t, r.ParseMultipartForm(1<<20)) {
			return
		}
		lat = r.FormValue("latitude")
		established = r.FormValue("established_date")
		respond(http.StatusCreated, `{"id":7,"name":"Anyaman"}`)(w, r)
	})

	res := execute(t, h, "admin", "add-sme", "--token", "tok", "--name", "Anyaman",
		"--established", "2012-06-01", "--lat", "-8.58", "--lng", "116.1")
	require.NoError(t, res.err)
	assert.Equal(t, "-8.58", lat)
	assert.Equal(t, "2012-06-01", established)
	assert.Equal(t, "Created SME 7: Anyaman\n", res.out)

	res = execute(t, h, "admin", "add-sme", "--token", "tok", "--name", "Anyaman", "--lat", "-8.58")
	require.EqualError(t, res.err, "--lat and --lng must be set together")
}
