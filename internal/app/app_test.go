package app

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMediaStore_Local(t *testing.T) {
	store, local, err := newMediaStore(MediaConfig{
		Backend: "local",
		Dir:     t.TempDir(),
		BaseURL: "http://localhost:8080/media/",
	})
	require.NoError(t, err)
	require.NotNil(t, local)

	u, err := store.Put(context.Background(), "products/1-kopi.jpg", strings.NewReader("beans"), "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/media/etalasekita/products/1-kopi.jpg", u)

	mux := http.NewServeMux()
	mux.Handle("GET /media/", http.StripPrefix("/media", local.Handler()))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/media/etalasekita/products/1-kopi.jpg", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body, _ := io.ReadAll(rec.Body)
	assert.Equal(t, "beans", string(body))
}

func TestNewMediaStore_Cloudinary(t *testing.T) {
	store, local, err := newMediaStore(MediaConfig{
		Backend: "cloudinary",
		Cloudinary: CloudinaryConfig{
			CloudName: "etalase",
			APIKey:    "key",
			APISecret: "secret",
		},
	})
	require.NoError(t, err)
	assert.NotNil(t, store)
	assert.Nil(t, local)
}

func TestNewMediaStore_Unknown(t *testing.T) {
	_, _, err := newMediaStore(MediaConfig{Backend: "ftp"})
	require.Error(t, err)
}
