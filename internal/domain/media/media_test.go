package media

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestObjectKeys(t *testing.T) {
	now := time.UnixMilli(1735700000123)

	assert.Equal(t, "products/1735700000123-tas-batik.jpg", ProductImageKey(now, "tas batik.jpg"))
	assert.Equal(t, "smes/1735700000123-logo-logo.png", VendorLogoKey(now, "logo.png"))
	assert.Equal(t, "smes/1735700000123-cover-sampul_1.webp", VendorCoverKey(now, "sampul_1.webp"))
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{in: "kopi.jpg", want: "kopi.jpg"},
		{in: "../../etc/passwd", want: "passwd"},
		{in: `C:\Users\ani\foto produk.png`, want: "foto-produk.png"},
		{in: "kerupuk_ü.jpeg", want: "kerupuk_-.jpeg"},
		{in: ".env", want: "env"},
		{in: "", want: "file"},
		{in: "///", want: "file"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeFilename(tt.in))
		})
	}
}
