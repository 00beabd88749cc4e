package app

import (
	"context"
	"net/http"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/app"
	"github.com/go-faster/sdk/zctx"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/etalasekita/etalase/internal/domain/auth"
	"github.com/etalasekita/etalase/internal/domain/media"
	"github.com/etalasekita/etalase/internal/handler"
	"github.com/etalasekita/etalase/internal/oas"
	mediastore "github.com/etalasekita/etalase/internal/storage/media"
	"github.com/etalasekita/etalase/internal/storage/postgres"
	"github.com/etalasekita/etalase/pkg/health"
	"github.com/etalasekita/etalase/pkg/httpmiddleware"
)

// Run creates all dependencies, starts the HTTP server, and handles graceful
// shutdown. It is the single wiring point for the application.
func Run(ctx context.Context, lg *zap.Logger, m *app.Telemetry, cfg *Config) error {
	lg.Info("Initializing",
		zap.String("addr", cfg.Addr),
		zap.String("media", cfg.Media.Backend),
	)

	// PostgreSQL pool + migrations.
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return errors.Wrap(err, "create db pool")
	}
	defer pool.Close()

	if err := postgres.RunMigrations(ctx, pool); err != nil {
		return errors.Wrap(err, "run migrations")
	}

	svc, err := newService(ctx, lg, m, cfg, pool)
	if err != nil {
		return err
	}
	healthSvc := svc.health

	server := &http.Server{
		ReadHeaderTimeout: time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20,
		Addr:              cfg.Addr,
		Handler:           svc.handler,
	}

	// Graceful shutdown: wait for context cancellation, drain, then stop.
	shutdownDone := make(chan struct{})
	go func() {
		<-ctx.Done()
		healthSvc.SetReady(false)
		lg.Info("Readiness set to false, draining", zap.Duration("delay", cfg.Graceful.ReadinessDelay))
		time.Sleep(cfg.Graceful.ReadinessDelay)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Graceful.ShutdownTimeout)
		defer cancel()

		lg.Info("Shutting down server", zap.Duration("timeout", cfg.Graceful.ShutdownTimeout))
		if err := server.Shutdown(shutdownCtx); err != nil {
			lg.Error("Server shutdown error", zap.Error(err))
		}
		healthSvc.Stop()
		close(shutdownDone)
	}()

	lg.Info("Server listening", zap.String("addr", cfg.Addr))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "server")
	}
	<-shutdownDone
	return nil
}

// service is the assembled HTTP stack.
type service struct {
	handler http.Handler
	health  *health.Health
}

// newService wires repositories, domain services and handlers onto pool and
// wraps them in the middleware chain. Health checks are started on ctx.
func newService(ctx context.Context, lg *zap.Logger, tel httpmiddleware.Telemetry, cfg *Config, pool *pgxpool.Pool) (*service, error) {
	store, local, err := newMediaStore(cfg.Media)
	if err != nil {
		return nil, errors.Wrap(err, "create media store")
	}

	// Health check service.
	healthSvc := health.New(lg.Named("health"))
	healthSvc.Register(health.Readiness, "postgres", health.PingCheck(pool),
		health.WithTimeout(5*time.Second),
	)
	if local != nil {
		healthSvc.Register(health.Readiness, "media", health.WritableDirCheck(local.Root()))
	}
	healthSvc.Register(health.Liveness, "goroutines", health.GoroutineCountCheck(10000))
	healthSvc.Start(ctx, 10*time.Second)
	healthSvc.SetReady(true)

	// Repositories.
	tp := postgres.WithTracerProvider(tel.TracerProvider())
	productRepo := postgres.NewProductRepository(pool, tp)
	vendorRepo := postgres.NewVendorRepository(pool, tp)
	categoryRepo := postgres.NewCategoryRepository(pool, tp)
	userRepo := postgres.NewUserRepository(pool, tp)

	// Domain services.
	authService := auth.NewService(userRepo, []byte(cfg.Auth.Secret),
		auth.WithTTL(cfg.Auth.TTL),
		auth.WithLoginRate(cfg.Auth.LoginEvery, cfg.Auth.LoginBurst),
	)

	// HTTP handlers.
	h, err := handler.New(
		handler.Config{
			StoreError:    postgres.StoreError,
			MeterProvider: tel.MeterProvider(),
		},
		productRepo,
		vendorRepo,
		categoryRepo,
		authService,
		store,
	)
	if err != nil {
		return nil, errors.Wrap(err, "create handler")
	}

	api, err := oas.NewServer(h, h,
		oas.WithPathPrefix("/api"),
		oas.WithTracerProvider(tel.TracerProvider()),
		oas.WithMeterProvider(tel.MeterProvider()),
		oas.WithErrorHandler(h.HandleError),
		oas.WithNotFound(h.NotFound),
	)
	if err != nil {
		return nil, errors.Wrap(err, "create oas server")
	}

	// Mux: health endpoints, ogen API routes and local media on one server.
	mux := http.NewServeMux()
	mux.HandleFunc("GET /livez", healthSvc.LiveEndpoint)
	mux.HandleFunc("GET /readyz", healthSvc.ReadyEndpoint)
	mux.Handle("/api/", http.MaxBytesHandler(api, cfg.Upload.MaxSize))
	if local != nil {
		mux.Handle("GET /media/", http.StripPrefix("/media", local.Handler()))
	}
	routeFinder := httpmiddleware.FirstRoute(
		httpmiddleware.MakeOASRouteFinder[oas.Route]("/api", api),
		httpmiddleware.MakeRouteFinder(mux),
	)

	wrapped := httpmiddleware.Wrap(mux,
		httpmiddleware.Recovery(),
		httpmiddleware.CORS(httpmiddleware.CORSConfig{
			AllowOrigins:     cfg.CORS.Origins,
			AllowHeaders:     []string{"Content-Type", "Authorization"},
			AllowCredentials: cfg.CORS.AllowCredentials,
			MaxAge:           86400,
		}),
		httpmiddleware.RateLimitWithCleanup(ctx, httpmiddleware.RateLimitConfig{
			Max:    cfg.RateLimit.Max,
			Window: cfg.RateLimit.Window,
		}),
		httpmiddleware.RequestID(),
		httpmiddleware.InjectLogger(zctx.From(ctx)),
		httpmiddleware.Instrument("etalase-api", routeFinder, tel),
		httpmiddleware.LogRequests(routeFinder),
		httpmiddleware.Labeler(routeFinder),
	)
	return &service{handler: wrapped, health: healthSvc}, nil
}

// newMediaStore returns the configured store. The filesystem store is also
// returned when it backs the store, so that it can be served and probed.
func newMediaStore(cfg MediaConfig) (media.Store, *mediastore.Filesystem, error) {
	switch cfg.Backend {
	case "cloudinary":
		cl := cfg.Cloudinary
		s, err := mediastore.NewCloudinary(cl.CloudName, cl.APIKey, cl.APISecret)
		if err != nil {
			return nil, nil, err
		}
		return s, nil, nil
	case "local":
		fs, err := mediastore.NewFilesystem(cfg.Dir, cfg.BaseURL)
		if err != nil {
			return nil, nil, err
		}
		return fs, fs, nil
	default:
		return nil, nil, errors.Errorf("unknown media backend %q", cfg.Backend)
	}
}
