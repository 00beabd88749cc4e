// Package media implements media.Store on a local directory and on
// Cloudinary.
package media

import (
	"context"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/go-faster/errors"

	"github.com/etalasekita/etalase/internal/domain/media"
)

var _ media.Store = (*Filesystem)(nil)

// Filesystem stores objects under Root/<bucket>/<key> and serves them from
// BaseURL.
type Filesystem struct {
	root    string
	baseURL string
}

// NewFilesystem creates the root directory if needed.
func NewFilesystem(root, baseURL string) (*Filesystem, error) {
	if err := os.MkdirAll(filepath.Join(root, media.Bucket), 0o755); err != nil {
		return nil, errors.Wrap(err, "create media root")
	}
	return &Filesystem{
		root:    root,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}, nil
}

// Root is the directory objects are written to.
func (s *Filesystem) Root() string { return s.root }

func cleanKey(key string) (string, error) {
	clean := path.Clean("/" + key)[1:]
	if clean == "" || clean != key {
		return "", errors.Errorf("invalid object key %q", key)
	}
	return clean, nil
}

// Put writes body to a temporary file and renames it into place.
func (s *Filesystem) Put(ctx context.Context, key string, body io.Reader, _ string) (string, error) {
	key, err := cleanKey(key)
	if err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	dst := filepath.Join(s.root, media.Bucket, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", errors.Wrap(err, "create dir")
	}

	tmp, err := os.CreateTemp(filepath.Dir(dst), ".upload-*")
	if err != nil {
		return "", errors.Wrap(err, "create temp")
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := io.Copy(tmp, body); err != nil {
		_ = tmp.Close()
		return "", errors.Wrap(err, "write")
	}
	if err := tmp.Close(); err != nil {
		return "", errors.Wrap(err, "close")
	}
	if err := os.Rename(tmp.Name(), dst); err != nil {
		return "", errors.Wrap(err, "rename")
	}

	return s.baseURL + "/" + media.Bucket + "/" + key, nil
}

// Delete removes the object stored under key.
func (s *Filesystem) Delete(ctx context.Context, key string) error {
	key, err := cleanKey(key)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	err = os.Remove(filepath.Join(s.root, media.Bucket, filepath.FromSlash(key)))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return errors.Wrap(err, "remove")
	}
	return nil
}

// Handler serves stored objects; mount it with the prefix of BaseURL
// stripped. Directories and dot-files, including in-flight uploads, are
// answered with 404.
func (s *Filesystem) Handler() http.Handler {
	return http.FileServer(objectsOnly{http.Dir(s.root)})
}

type objectsOnly struct {
	fs http.FileSystem
}

func (o objectsOnly) Open(name string) (http.File, error) {
	for _, part := range strings.Split(name, "/") {
		if strings.HasPrefix(part, ".") {
			return nil, fs.ErrNotExist
		}
	}
	f, err := o.fs.Open(name)
	if err != nil {
		return nil, err
	}
	st, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	if st.IsDir() {
		_ = f.Close()
		return nil, fs.ErrNotExist
	}
	return f, nil
}
