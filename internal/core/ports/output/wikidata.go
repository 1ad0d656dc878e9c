package ports

import "context"

// PaintingRecord is one row from the Wikidata paintings query, already
// reduced to plain values. Optional bindings stay nil when absent or
// unparsable, matching the tolerant row handling of the ingestion flow.
type PaintingRecord struct {
	QID           string
	Title         *string
	CreatorLabel  *string
	LocationQID   *string
	LocationLabel *string
	Latitude      *float64
	Longitude     *float64
	Year          *int
}

type WikidataClient interface {
	// IsPainter checks that the QID has occupation painter.
	IsPainter(ctx context.Context, qid string) (bool, error)
	// PaintingsByArtist returns paintings created by the artist, up to limit.
	PaintingsByArtist(ctx context.Context, qid string, limit int) ([]PaintingRecord, error)
}
