package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/go-faster/errors"

	"github.com/etalasekita/etalase/internal/importer"
	"github.com/etalasekita/etalase/internal/storage/postgres"
)

func main() {
	var (
		dataDir     string
		databaseURL string
		batchSize   int
		capacity    uint
	)

	flag.StringVar(&dataDir, "data-dir", "data", "directory containing *.ndjson.gz product dumps")
	flag.StringVar(&databaseURL, "database-url", "", "PostgreSQL connection URL (or DATABASE_URL env)")
	flag.IntVar(&batchSize, "batch-size", 1000, "rows per COPY batch")
	flag.UintVar(&capacity, "capacity", 1_000_000, "expected number of distinct products")
	flag.Parse()

	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		slog.Error("database URL is required: set --database-url or DATABASE_URL")
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	files := flag.Args()
	if err := run(ctx, dataDir, files, databaseURL, batchSize, capacity); err != nil {
		slog.Error("catalog import failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("catalog import completed successfully")
}

func run(ctx context.Context, dataDir string, files []string, databaseURL string, batchSize int, capacity uint) error {
	if len(files) == 0 {
		matches, err := filepath.Glob(filepath.Join(dataDir, "*.ndjson.gz"))
		if err != nil {
			return errors.Wrap(err, "list dumps")
		}
		files = matches
	}
	if len(files) == 0 {
		return errors.Errorf("no *.ndjson.gz files in %s", dataDir)
	}
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			return errors.Wrapf(err, "check file %s", f)
		}
	}

	slog.Info("connecting to database")

	pool, err := postgres.NewPool(ctx, databaseURL)
	if err != nil {
		return errors.Wrap(err, "connect to database")
	}
	defer pool.Close()

	if err := postgres.RunMigrations(ctx, pool); err != nil {
		return errors.Wrap(err, "run migrations")
	}

	slog.Info("importing products", slog.Int("files", len(files)))

	im := importer.New(postgres.NewProductRepository(pool),
		importer.WithBatchSize(batchSize),
		importer.WithCapacity(capacity),
		importer.WithLogger(slog.Default()),
	)
	stats, err := im.Run(ctx, files)
	slog.Info("import summary",
		slog.Int64("read", stats.Read),
		slog.Int64("invalid", stats.Invalid),
		slog.Int64("duplicate", stats.Duplicate),
		slog.Int64("inserted", stats.Inserted),
	)
	if err != nil {
		return errors.Wrap(err, "import")
	}

	return nil
}
