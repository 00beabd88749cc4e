// Package media defines where uploaded catalog images go and how their
// object keys are named.
package media

import (
	"context"
	"io"
	"path"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// Bucket is the folder every catalog object lives under.
const Bucket = "etalasekita"

// Store persists uploaded files and returns their public URL. Putting an
// existing key overwrites it. Deleting a missing key is not an error.
type Store interface {
	Put(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}

// ProductImageKey names a product image upload.
func ProductImageKey(now time.Time, filename string) string {
	return objectKey("products", now, "", filename)
}

// VendorLogoKey names a vendor logo upload.
func VendorLogoKey(now time.Time, filename string) string {
	return objectKey("smes", now, "logo-", filename)
}

// VendorCoverKey names a vendor cover image upload.
func VendorCoverKey(now time.Time, filename string) string {
	return objectKey("smes", now, "cover-", filename)
}

func objectKey(dir string, now time.Time, prefix, filename string) string {
	return dir + "/" + strconv.FormatInt(now.UnixMilli(), 10) + "-" + prefix + SanitizeFilename(filename)
}

// SanitizeFilename keeps the base name of an uploaded file with every rune
// outside [A-Za-z0-9._-] replaced by '-'.
func SanitizeFilename(name string) string {
	name = path.Base(strings.ReplaceAll(name, `\`, "/"))
	clean := strings.Map(func(r rune) rune {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			return r
		case r == '.' || r == '-' || r == '_':
			return r
		default:
			return '-'
		}
	}, name)
	clean = strings.Trim(clean, ".-")
	if clean == "" {
		return "file"
	}
	return clean
}
