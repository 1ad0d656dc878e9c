// Command ingest runs a one-shot ingestion for a single artist, for example:
//
//	ingest -artist Q5582 -limit 200
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"helianthus/internal/adapters/secondary/postgres"
	"helianthus/internal/adapters/secondary/sqlite"
	"helianthus/internal/adapters/secondary/wikidata"
	"helianthus/internal/config"
	output "helianthus/internal/core/ports/output"
	"helianthus/internal/core/services"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

func main() {
	artist := flag.String("artist", "", "Wikidata QID of the artist (e.g. Q5582)")
	limit := flag.Int("limit", services.DefaultIngestLimit, "maximum number of paintings to fetch")
	flag.Parse()

	if *artist == "" {
		fmt.Fprintln(os.Stderr, "usage: ingest -artist <QID> [-limit <n>]")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	level, err := log.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	ctx := context.Background()

	var (
		artistRepo   output.ArtistRepository
		paintingRepo output.PaintingRepository
		locationRepo output.LocationRepository
		closeStore   func()
	)

	switch cfg.Database.Driver {
	case "sqlite":
		store, err := sqlite.Open(cfg.Database.Path)
		if err != nil {
			log.Fatalf("open sqlite store: %v", err)
		}
		artistRepo = sqlite.NewArtistRepository(store)
		paintingRepo = sqlite.NewPaintingRepository(store)
		locationRepo = sqlite.NewLocationRepository(store)
		closeStore = func() { _ = store.Close() }

	default:
		pool, err := pgxpool.New(ctx, cfg.Database.DSN())
		if err != nil {
			log.Fatalf("create db pool: %v", err)
		}
		if err := pool.Ping(ctx); err != nil {
			log.Fatalf("ping db: %v", err)
		}
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			log.Fatalf("ensure schema: %v", err)
		}
		artistRepo = postgres.NewArtistRepository(pool)
		paintingRepo = postgres.NewPaintingRepository(pool)
		locationRepo = postgres.NewLocationRepository(pool)
		closeStore = pool.Close
	}
	defer closeStore()

	wikidataClient := wikidata.NewClient(&cfg.Wikidata)
	ingestSvc := services.NewIngestService(artistRepo, paintingRepo, locationRepo, wikidataClient, nil)

	result, err := ingestSvc.Run(ctx, *artist, *limit)
	if err != nil {
		log.Fatalf("ingest failed: %v", err)
	}

	fmt.Printf("ingest complete for %s: %d new, %d updated (%d fetched, limit=%d)\n",
		result.ArtistQID, result.Inserted, result.Updated, result.Fetched, *limit)
}
