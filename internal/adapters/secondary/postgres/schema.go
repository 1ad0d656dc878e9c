package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EnsureSchema creates the catalog tables when they do not exist yet.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS artists (
			id UUID PRIMARY KEY,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL,
			wikidata_id TEXT NOT NULL UNIQUE,
			name TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS locations (
			id UUID PRIMARY KEY,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL,
			wikidata_id TEXT NOT NULL UNIQUE,
			name TEXT,
			latitude DOUBLE PRECISION,
			longitude DOUBLE PRECISION
		)`,
		`CREATE TABLE IF NOT EXISTS paintings (
			id UUID PRIMARY KEY,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL,
			wikidata_id TEXT NOT NULL UNIQUE,
			title TEXT,
			year INTEGER,
			artist_id UUID NOT NULL REFERENCES artists(id),
			location_id UUID REFERENCES locations(id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_paintings_artist ON paintings(artist_id)`,
		`CREATE INDEX IF NOT EXISTS idx_paintings_location ON paintings(location_id)`,
		`CREATE INDEX IF NOT EXISTS idx_paintings_year ON paintings(year)`,
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
