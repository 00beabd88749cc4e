package app

import (
	"io/fs"
	"os"
	"time"

	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigyaml"
	"github.com/go-faster/errors"
	"github.com/joho/godotenv"
)

const defaultAddr = "0.0.0.0:8080"

// Config holds the complete application configuration, loadable from
// environment variables (ETALASE_ prefix), a .env file, or YAML config files.
type Config struct {
	Addr        string `default:"0.0.0.0:8080" usage:"API server listen address"`
	DatabaseURL string `usage:"PostgreSQL connection URL (ETALASE_DATABASE_URL or DATABASE_URL)" flag:"database-url"`
	Auth        AuthConfig
	Media       MediaConfig
	Upload      UploadConfig
	RateLimit   RateLimitConfig
	CORS        CORSConfig
	Graceful    GracefulConfig
}

// AuthConfig controls admin session tokens and login throttling.
type AuthConfig struct {
	Secret     string        `usage:"HMAC secret for session tokens (ETALASE_AUTH_SECRET)"`
	TTL        time.Duration `default:"12h" usage:"Session token lifetime"`
	LoginEvery time.Duration `default:"12s" usage:"Refill interval for login attempts per email" flag:"login-every"`
	LoginBurst int           `default:"5"   usage:"Login attempts allowed in a burst per email" flag:"login-burst"`
}

// MediaConfig selects where uploaded images are stored.
type MediaConfig struct {
	Backend    string `default:"local" usage:"Media backend: local or cloudinary"`
	Dir        string `default:"./media" usage:"Directory for the local backend"`
	BaseURL    string `default:"http://localhost:8080/media" usage:"Public URL prefix for the local backend" flag:"media-base-url"`
	Cloudinary CloudinaryConfig
}

// CloudinaryConfig holds hosted media credentials.
type CloudinaryConfig struct {
	CloudName string `usage:"Cloudinary cloud name"`
	APIKey    string `usage:"Cloudinary API key"`
	APISecret string `usage:"Cloudinary API secret"`
}

type UploadConfig struct {
	MaxSize int64 `default:"10485760" usage:"Maximum admin form size in bytes" flag:"upload-max-size"`
}

// RateLimitConfig controls the per-client sliding window rate limiter.
type RateLimitConfig struct {
	Max    int           `default:"100" usage:"Max requests per window"`
	Window time.Duration `default:"1m"  usage:"Rate limit window duration"`
}

// CORSConfig controls Cross-Origin Resource Sharing headers.
type CORSConfig struct {
	Origins          []string `default:"*" usage:"Allowed CORS origins"`
	AllowCredentials bool     `default:"false" usage:"Allow credentials (cookies, auth headers)" flag:"cors-credentials"`
}

// GracefulConfig controls graceful shutdown timing.
type GracefulConfig struct {
	ReadinessDelay  time.Duration `default:"3s"  usage:"Delay after readiness=false before shutdown" flag:"readiness-delay"`
	ShutdownTimeout time.Duration `default:"15s" usage:"Maximum shutdown duration" flag:"shutdown-timeout"`
}

// LoadConfig loads .env, then environment variables and YAML config files,
// and applies platform-specific defaults.
func LoadConfig() (*Config, error) {
	return loadConfig(aconfig.Config{
		EnvPrefix: "ETALASE",
		// seed-db reads ETALASE_SEED_* from the same environment.
		AllowUnknownEnvs: true,
		Files:            []string{"config.yaml", "/etc/etalase/config.yaml"},
		FileDecoders: map[string]aconfig.FileDecoder{
			".yaml": aconfigyaml.New(),
		},
	})
}

func loadConfig(ac aconfig.Config) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrap(err, "load .env")
	}

	var cfg Config
	if err := aconfig.LoaderFor(&cfg, ac).Load(); err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	cfg.applyPlatformDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyPlatformDefaults maps platform-provided environment variables (Railway,
// Render, etc.) that use standard names like DATABASE_URL and PORT to the
// application's ETALASE_-prefixed configuration.
func (c *Config) applyPlatformDefaults() {
	if c.DatabaseURL == "" {
		if v := os.Getenv("DATABASE_URL"); v != "" {
			c.DatabaseURL = v
		}
	}
	if port := os.Getenv("PORT"); port != "" && c.Addr == defaultAddr {
		c.Addr = "0.0.0.0:" + port
	}
}

func (c *Config) validate() error {
	if c.DatabaseURL == "" {
		return errors.New("database URL is required: set ETALASE_DATABASE_URL or DATABASE_URL")
	}
	if len(c.Auth.Secret) < 32 {
		return errors.New("auth secret must be at least 32 bytes: set ETALASE_AUTH_SECRET")
	}
	switch c.Media.Backend {
	case "local":
		if c.Media.Dir == "" {
			return errors.New("media dir is required for the local backend")
		}
	case "cloudinary":
		cl := c.Media.Cloudinary
		if cl.CloudName == "" || cl.APIKey == "" || cl.APISecret == "" {
			return errors.New("cloudinary backend needs cloud name, api key and api secret")
		}
	default:
		return errors.Errorf("unknown media backend %q", c.Media.Backend)
	}
	if c.Upload.MaxSize <= 0 {
		return errors.New("upload max size must be positive")
	}
	return nil
}
