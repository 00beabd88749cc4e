package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"

	"github.com/etalasekita/etalase/db"
	"github.com/etalasekita/etalase/internal/domain/auth"
	"github.com/etalasekita/etalase/internal/storage/postgres"
	"github.com/etalasekita/etalase/internal/wire"
)

func main() {
	var (
		databaseURL   string
		catalogFile   string
		adminEmail    string
		adminPassword string
	)

	flag.StringVar(&databaseURL, "database-url", "", "PostgreSQL connection URL (or DATABASE_URL env)")
	flag.StringVar(&catalogFile, "catalog-file", "", "path to a catalog JSON file (default: embedded demo catalog)")
	flag.StringVar(&adminEmail, "admin-email", "", "admin account email (or ETALASE_SEED_ADMIN_EMAIL env)")
	flag.StringVar(&adminPassword, "admin-password", "", "admin account password (or ETALASE_SEED_ADMIN_PASSWORD env)")
	flag.Parse()

	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		slog.Error("database URL is required: set --database-url or DATABASE_URL")
		os.Exit(1)
	}
	if adminEmail == "" {
		adminEmail = os.Getenv("ETALASE_SEED_ADMIN_EMAIL")
	}
	if adminPassword == "" {
		adminPassword = os.Getenv("ETALASE_SEED_ADMIN_PASSWORD")
	}
	if (adminEmail == "") != (adminPassword == "") {
		slog.Error("admin email and password must be set together")
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx, databaseURL, catalogFile, adminEmail, adminPassword); err != nil {
		slog.Error("seed failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("seed completed successfully")
}

func run(ctx context.Context, databaseURL, catalogFile, adminEmail, adminPassword string) error {
	data, err := readCatalog(catalogFile)
	if err != nil {
		return errors.Wrap(err, "read catalog")
	}

	slog.Info("connecting to database")

	pool, err := postgres.NewPool(ctx, databaseURL)
	if err != nil {
		return errors.Wrap(err, "connect to database")
	}
	defer pool.Close()

	slog.Info("running migrations")

	if err := postgres.RunMigrations(ctx, pool); err != nil {
		return errors.Wrap(err, "run migrations")
	}

	slog.Info("upserting catalog",
		slog.Int("categories", len(data.Categories)),
		slog.Int("smes", len(data.Vendors)),
		slog.Int("products", len(data.Products)),
	)

	if err := postgres.Seed(ctx, pool, postgres.SeedData(data)); err != nil {
		return errors.Wrap(err, "seed catalog")
	}

	if adminEmail == "" {
		slog.Info("no admin account requested")
		return nil
	}

	if err := seedAdmin(ctx, postgres.NewUserRepository(pool), adminEmail, adminPassword); err != nil {
		return errors.Wrap(err, "seed admin")
	}

	return nil
}

func readCatalog(path string) (wire.Catalog, error) {
	raw := db.SeedCatalog
	if path != "" {
		slog.Info("reading catalog file", slog.String("path", path))

		b, err := os.ReadFile(path)
		if err != nil {
			return wire.Catalog{}, errors.Wrap(err, "read catalog file")
		}
		raw = b
	}

	c, err := wire.DecodeCatalog(jx.DecodeBytes(raw))
	if err != nil {
		return wire.Catalog{}, errors.Wrap(err, "parse catalog JSON")
	}
	return c, nil
}

func seedAdmin(ctx context.Context, users *postgres.UserRepository, email, password string) error {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return errors.Wrap(err, "hash password")
	}

	u, err := users.Upsert(ctx, email, hash)
	if err != nil {
		return errors.Wrap(err, "upsert admin user")
	}

	slog.Info("upserted admin user", slog.Int64("id", u.ID), slog.String("email", u.Email))

	return nil
}
