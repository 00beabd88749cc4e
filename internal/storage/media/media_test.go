package media

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilesystem_Put(t *testing.T) {
	root := t.TempDir()
	s, err := NewFilesystem(root, "http://localhost:8080/media/")
	require.NoError(t, err)
	ctx := context.Background()

	url, err := s.Put(ctx, "products/1735700000123-kopi.jpg", strings.NewReader("jpeg bytes"), "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/media/etalasekita/products/1735700000123-kopi.jpg", url)

	data, err := os.ReadFile(filepath.Join(root, "etalasekita", "products", "1735700000123-kopi.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "jpeg bytes", string(data))

	_, err = s.Put(ctx, "products/1735700000123-kopi.jpg", strings.NewReader("replaced"), "image/jpeg")
	require.NoError(t, err)
	data, err = os.ReadFile(filepath.Join(root, "etalasekita", "products", "1735700000123-kopi.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "replaced", string(data))

	entries, err := os.ReadDir(filepath.Join(root, "etalasekita", "products"))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")
}

func TestFilesystem_RejectsBadKeys(t *testing.T) {
	s, err := NewFilesystem(t.TempDir(), "http://localhost/media")
	require.NoError(t, err)

	for _, key := range []string{"", "../escape.jpg", "products/../../x", "/abs.jpg", "products//x.jpg"} {
		_, err := s.Put(context.Background(), key, strings.NewReader("x"), "")
		assert.Error(t, err, key)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("client went away") }

func TestFilesystem_ReadError(t *testing.T) {
	root := t.TempDir()
	s, err := NewFilesystem(root, "http://localhost/media")
	require.NoError(t, err)

	_, err = s.Put(context.Background(), "smes/1-logo-a.png", failingReader{}, "image/png")
	require.ErrorContains(t, err, "client went away")

	_, err = os.Stat(filepath.Join(root, "etalasekita", "smes", "1-logo-a.png"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFilesystem_Handler(t *testing.T) {
	s, err := NewFilesystem(t.TempDir(), "http://localhost/media")
	require.NoError(t, err)
	_, err = s.Put(context.Background(), "smes/1-cover-b.jpg", strings.NewReader("cover"), "image/jpeg")
	require.NoError(t, err)

	srv := httptest.NewServer(http.StripPrefix("/media", s.Handler()))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/media/etalasekita/smes/1-cover-b.jpg")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "cover", string(body))
}

func TestFilesystem_HandlerHidesListingsAndTempFiles(t *testing.T) {
	root := t.TempDir()
	s, err := NewFilesystem(root, "http://localhost/media")
	require.NoError(t, err)
	_, err = s.Put(context.Background(), "smes/1-cover-b.jpg", strings.NewReader("cover"), "image/jpeg")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(root, "etalasekita", "smes", ".upload-123"), []byte("partial"), 0o600))

	srv := httptest.NewServer(http.StripPrefix("/media", s.Handler()))
	defer srv.Close()

	for _, p := range []string{
		"/media/",
		"/media/etalasekita/",
		"/media/etalasekita/smes",
		"/media/etalasekita/smes/",
		"/media/etalasekita/smes/.upload-123",
	} {
		t.Run(p, func(t *testing.T) {
			resp, err := http.Get(srv.URL + p)
			require.NoError(t, err)
			defer func() { _ = resp.Body.Close() }()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			assert.Equal(t, http.StatusNotFound, resp.StatusCode)
			assert.NotContains(t, string(body), "1-cover-b.jpg")
			assert.NotContains(t, string(body), "partial")
		})
	}
}

func TestFilesystem_Delete(t *testing.T) {
	root := t.TempDir()
	s, err := NewFilesystem(root, "http://localhost/media")
	require.NoError(t, err)
	ctx := context.Background()

	_, err = s.Put(ctx, "products/1-kopi.jpg", strings.NewReader("x"), "image/jpeg")
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, "products/1-kopi.jpg"))
	_, err = os.Stat(filepath.Join(root, "etalasekita", "products", "1-kopi.jpg"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	require.NoError(t, s.Delete(ctx, "products/1-kopi.jpg"), "missing key")
	assert.Error(t, s.Delete(ctx, "../escape.jpg"))
}

type mockUploader struct {
	params  uploader.UploadParams
	result  *uploader.UploadResult
	err     error
	destroy uploader.DestroyParams
	removed *uploader.DestroyResult
}

func (m *mockUploader) Upload(_ context.Context, _ interface{}, params uploader.UploadParams) (*uploader.UploadResult, error) {
	m.params = params
	return m.result, m.err
}

func (m *mockUploader) Destroy(_ context.Context, params uploader.DestroyParams) (*uploader.DestroyResult, error) {
	m.destroy = params
	return m.removed, m.err
}

func TestCloudinary_Put(t *testing.T) {
	m := &mockUploader{result: &uploader.UploadResult{SecureURL: "https://res.cloudinary.com/demo/image/upload/etalasekita/products/1-kopi.jpg"}}
	s := &Cloudinary{upload: m}

	url, err := s.Put(context.Background(), "products/1-kopi.jpg", strings.NewReader("x"), "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, m.result.SecureURL, url)
	assert.Equal(t, "products/1-kopi", m.params.PublicID)
	assert.Equal(t, "etalasekita", m.params.Folder)
	require.NotNil(t, m.params.Overwrite)
	assert.True(t, *m.params.Overwrite)
}

func TestCloudinary_Errors(t *testing.T) {
	tests := []struct {
		name string
		m    *mockUploader
		msg  string
	}{
		{name: "transport", m: &mockUploader{err: errors.New("dial tcp: timeout")}, msg: "dial tcp: timeout"},
		{name: "api error", m: &mockUploader{result: &uploader.UploadResult{Error: api.ErrorResp{Message: "Invalid image file"}}}, msg: "Invalid image file"},
		{name: "no url", m: &mockUploader{result: &uploader.UploadResult{}}, msg: "no url"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := (&Cloudinary{upload: tt.m}).Put(context.Background(), "products/1-a.jpg", strings.NewReader("x"), "")
			require.ErrorContains(t, err, tt.msg)
		})
	}
}

func TestCloudinary_Delete(t *testing.T) {
	tests := []struct {
		name string
		m    *mockUploader
		msg  string
	}{
		{name: "ok", m: &mockUploader{removed: &uploader.DestroyResult{Result: "ok"}}},
		{name: "already gone", m: &mockUploader{removed: &uploader.DestroyResult{Result: "not found"}}},
		{name: "transport", m: &mockUploader{err: errors.New("dial tcp: timeout")}, msg: "dial tcp: timeout"},
		{name: "api error", m: &mockUploader{removed: &uploader.DestroyResult{Error: api.ErrorResp{Message: "Invalid signature"}}}, msg: "Invalid signature"},
		{name: "unexpected result", m: &mockUploader{removed: &uploader.DestroyResult{Result: "error"}}, msg: "destroy: error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := (&Cloudinary{upload: tt.m}).Delete(context.Background(), "products/1-kopi.jpg")
			if tt.msg != "" {
				require.ErrorContains(t, err, tt.msg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "etalasekita/products/1-kopi", tt.m.destroy.PublicID)
		})
	}
}
