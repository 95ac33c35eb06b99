package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"

	"github.com/maisonglass/perfume-api/internal/storage/mongo"
)

func main() {
	var (
		mongoURL string
		database string
		force    bool
	)

	flag.StringVar(&mongoURL, "mongo-url", "", "MongoDB connection URL (or DATABASE_URL env)")
	flag.StringVar(&database, "database", "perfume", "MongoDB database name")
	flag.BoolVar(&force, "force", false, "insert seed products even when the collection is not empty")
	flag.Parse()

	if mongoURL == "" {
		mongoURL = os.Getenv("DATABASE_URL")
	}
	if mongoURL == "" {
		slog.Error("mongo URL is required: set --mongo-url or DATABASE_URL")
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx, mongoURL, database, force); err != nil {
		slog.Error("seed failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, mongoURL, database string, force bool) error {
	slog.Info("connecting to document store")

	store, err := mongo.Connect(ctx, mongoURL, database)
	if err != nil {
		return err
	}
	defer func() {
		_ = store.Disconnect(context.Background())
	}()

	n, err := mongo.SeedCatalog(ctx, store, force)
	if err != nil {
		return err
	}

	if n == 0 {
		slog.Info("catalog already seeded, nothing to do")
	} else {
		slog.Info("seed completed", slog.Int("products", n))
	}
	return nil
}
