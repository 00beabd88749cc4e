package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigyaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func testLoader(files ...string) aconfig.Config {
	return aconfig.Config{
		EnvPrefix:        "ETALASE",
		AllowUnknownEnvs: true,
		SkipFlags:        true,
		SkipFiles:        len(files) == 0,
		Files:            files,
		FileDecoders: map[string]aconfig.FileDecoder{
			".yaml": aconfigyaml.New(),
		},
	}
}

func clearPlatformEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "")
	t.Setenv("PORT", "")
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearPlatformEnv(t)
	t.Setenv("ETALASE_DATABASE_URL", "postgres://localhost/etalase")
	t.Setenv("ETALASE_AUTH_SECRET", testSecret)

	cfg, err := loadConfig(testLoader())
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.Addr)
	assert.Equal(t, 12*time.Hour, cfg.Auth.TTL)
	assert.Equal(t, 5, cfg.Auth.LoginBurst)
	assert.Equal(t, "local", cfg.Media.Backend)
	assert.Equal(t, int64(10<<20), cfg.Upload.MaxSize)
	assert.Equal(t, 100, cfg.RateLimit.Max)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
	assert.Equal(t, 15*time.Second, cfg.Graceful.ShutdownTimeout)
}

func TestLoadConfig_PlatformDefaults(t *testing.T) {
	clearPlatformEnv(t)
	t.Setenv("ETALASE_DATABASE_URL", "")
	t.Setenv("ETALASE_AUTH_SECRET", testSecret)
	t.Setenv("DATABASE_URL", "postgres://railway/etalase")
	t.Setenv("PORT", "9000")

	cfg, err := loadConfig(testLoader())
	require.NoError(t, err)
	assert.Equal(t, "postgres://railway/etalase", cfg.DatabaseURL)
	assert.Equal(t, "0.0.0.0:9000", cfg.Addr)
}

func TestLoadConfig_File(t *testing.T) {
	clearPlatformEnv(t)
	t.Setenv("ETALASE_AUTH_SECRET", testSecret)
	t.Setenv("ETALASE_DATABASE_URL", "postgres://env/etalase")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
addr: 127.0.0.1:7000
media:
  backend: local
  dir: /srv/media
rate_limit:
  max: 20
`), 0o600))

	cfg, err := loadConfig(testLoader(path))
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:7000", cfg.Addr)
	assert.Equal(t, "postgres://env/etalase", cfg.DatabaseURL)
	assert.Equal(t, "/srv/media", cfg.Media.Dir)
	assert.Equal(t, 20, cfg.RateLimit.Max)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{
			name: "no database",
			env:  map[string]string{"ETALASE_DATABASE_URL": "", "ETALASE_AUTH_SECRET": testSecret},
			want: "database URL is required",
		},
		{
			name: "short secret",
			env:  map[string]string{"ETALASE_DATABASE_URL": "postgres://x", "ETALASE_AUTH_SECRET": "short"},
			want: "auth secret",
		},
		{
			name: "unknown media backend",
			env: map[string]string{
				"ETALASE_DATABASE_URL":  "postgres://x",
				"ETALASE_AUTH_SECRET":   testSecret,
				"ETALASE_MEDIA_BACKEND": "s3",
			},
			want: `unknown media backend "s3"`,
		},
		{
			name: "cloudinary without credentials",
			env: map[string]string{
				"ETALASE_DATABASE_URL":  "postgres://x",
				"ETALASE_AUTH_SECRET":   testSecret,
				"ETALASE_MEDIA_BACKEND": "cloudinary",
			},
			want: "cloudinary backend needs",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearPlatformEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := loadConfig(testLoader())
			require.ErrorContains(t, err, tt.want)
		})
	}
}
