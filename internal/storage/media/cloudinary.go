package media

import (
	"context"
	"io"
	"path"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/go-faster/errors"

	"github.com/etalasekita/etalase/internal/domain/media"
)

var _ media.Store = (*Cloudinary)(nil)

// assetUploader is implemented by *uploader.API.
type assetUploader interface {
	Upload(ctx context.Context, file interface{}, params uploader.UploadParams) (*uploader.UploadResult, error)
	Destroy(ctx context.Context, params uploader.DestroyParams) (*uploader.DestroyResult, error)
}

// Cloudinary uploads objects into the media.Bucket folder of a Cloudinary
// account. The object key without its extension becomes the public id.
type Cloudinary struct {
	upload assetUploader
}

// NewCloudinary connects with account credentials.
func NewCloudinary(cloudName, apiKey, apiSecret string) (*Cloudinary, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, errors.Wrap(err, "cloudinary")
	}
	return &Cloudinary{upload: &cld.Upload}, nil
}

func (s *Cloudinary) Put(ctx context.Context, key string, body io.Reader, _ string) (string, error) {
	overwrite := true
	res, err := s.upload.Upload(ctx, body, uploader.UploadParams{
		PublicID:     publicID(key),
		Folder:       media.Bucket,
		ResourceType: "auto",
		Overwrite:    &overwrite,
	})
	if err != nil {
		return "", errors.Wrap(err, "upload")
	}
	if res.Error.Message != "" {
		return "", errors.New(res.Error.Message)
	}
	if res.SecureURL == "" {
		return "", errors.New("upload returned no url")
	}
	return res.SecureURL, nil
}

// Delete destroys the asset uploaded under key.
func (s *Cloudinary) Delete(ctx context.Context, key string) error {
	res, err := s.upload.Destroy(ctx, uploader.DestroyParams{
		PublicID: media.Bucket + "/" + publicID(key),
	})
	if err != nil {
		return errors.Wrap(err, "destroy")
	}
	if res.Error.Message != "" {
		return errors.New(res.Error.Message)
	}
	switch res.Result {
	case "ok", "not found":
		return nil
	default:
		return errors.Errorf("destroy: %s", res.Result)
	}
}

func publicID(key string) string {
	return strings.TrimSuffix(key, path.Ext(key))
}
