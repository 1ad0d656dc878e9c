package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"helianthus/internal/core/domain"
	"helianthus/internal/core/ports/output"
)

var paintingSortColumns = map[string]string{
	"title":      "title",
	"year":       "year",
	"created_at": "created_at",
	"updated_at": "updated_at",
}

type paintingRepo struct {
	store *Store
}

func NewPaintingRepository(store *Store) ports.PaintingRepository {
	return &paintingRepo{store: store}
}

func (r *paintingRepo) Create(ctx context.Context, painting *domain.Painting) error {
	var locationID interface{}
	if painting.LocationID != nil {
		locationID = painting.LocationID.String()
	}

	query := `
		INSERT INTO paintings
			(id, created_at, updated_at, wikidata_id, title, year, artist_id, location_id)
		VALUES (?,?,?,?,?,?,?,?)
	`
	_, err := r.store.db.ExecContext(ctx, query,
		painting.ID.String(), encodeTime(painting.CreatedAt), encodeTime(painting.UpdatedAt),
		painting.WikidataID, painting.Title, painting.Year,
		painting.ArtistID.String(), locationID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrPaintingQIDConflict
		}
		return fmt.Errorf("create painting: %w", err)
	}
	return nil
}

func (r *paintingRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Painting, error) {
	query := `
		SELECT id, created_at, updated_at, wikidata_id, title, year, artist_id, location_id
		FROM paintings WHERE id = ?
	`
	p, err := scanPaintingRow(r.store.db.QueryRowContext(ctx, query, id.String()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPaintingNotFound
		}
		return nil, fmt.Errorf("get painting by id: %w", err)
	}
	return p, nil
}

func (r *paintingRepo) GetByWikidataID(ctx context.Context, qid string) (*domain.Painting, error) {
	query := `
		SELECT id, created_at, updated_at, wikidata_id, title, year, artist_id, location_id
		FROM paintings WHERE wikidata_id = ?
	`
	p, err := scanPaintingRow(r.store.db.QueryRowContext(ctx, query, qid))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPaintingNotFound
		}
		return nil, fmt.Errorf("get painting by wikidata id: %w", err)
	}
	return p, nil
}

func (r *paintingRepo) Update(ctx context.Context, painting *domain.Painting) error {
	var locationID interface{}
	if painting.LocationID != nil {
		locationID = painting.LocationID.String()
	}

	query := `
		UPDATE paintings
		SET title=?, year=?, artist_id=?, location_id=?, updated_at=?
		WHERE id=?
	`
	result, err := r.store.db.ExecContext(ctx, query,
		painting.Title, painting.Year, painting.ArtistID.String(),
		locationID, encodeTime(time.Now()), painting.ID.String(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrPaintingQIDConflict
		}
		return fmt.Errorf("update painting: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update painting: %w", err)
	}
	if affected == 0 {
		return domain.ErrPaintingNotFound
	}
	return nil
}

func (r *paintingRepo) List(ctx context.Context, filter ports.PaintingListFilter) ([]*domain.Painting, int, error) {
	conditions := []string{}
	args := []interface{}{}

	if filter.ArtistID != uuid.Nil {
		conditions = append(conditions, "artist_id = ?")
		args = append(args, filter.ArtistID.String())
	}
	if filter.LocationID != uuid.Nil {
		conditions = append(conditions, "location_id = ?")
		args = append(args, filter.LocationID.String())
	}
	if filter.YearFrom != nil {
		conditions = append(conditions, "year >= ?")
		args = append(args, *filter.YearFrom)
	}
	if filter.YearTo != nil {
		conditions = append(conditions, "year <= ?")
		args = append(args, *filter.YearTo)
	}
	if filter.Search != "" {
		conditions = append(conditions, "title LIKE ?")
		args = append(args, "%"+filter.Search+"%")
	}

	whereClause := "1=1"
	if len(conditions) > 0 {
		whereClause = strings.Join(conditions, " AND ")
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM paintings WHERE %s", whereClause)
	var total int
	if err := r.store.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count paintings: %w", err)
	}

	orderBy := "created_at DESC"
	if col, ok := paintingSortColumns[filter.SortBy]; ok {
		dir := "DESC"
		if filter.Order == "asc" {
			dir = "ASC"
		}
		orderBy = fmt.Sprintf("%s %s", col, dir)
	}

	query := fmt.Sprintf(`
		SELECT id, created_at, updated_at, wikidata_id, title, year, artist_id, location_id
		FROM paintings
		WHERE %s
		ORDER BY %s
		LIMIT ? OFFSET ?
	`, whereClause, orderBy)

	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list paintings: %w", err)
	}
	defer rows.Close()

	var paintings []*domain.Painting
	for rows.Next() {
		p, err := scanPaintingRow(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan painting row: %w", err)
		}
		paintings = append(paintings, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate painting rows: %w", err)
	}

	return paintings, total, nil
}

func scanPaintingRow(row rowScanner) (*domain.Painting, error) {
	var (
		id, createdAt, updatedAt, wikidataID, artistID string
		title, locationID                              sql.NullString
		year                                           sql.NullInt64
	)
	if err := row.Scan(&id, &createdAt, &updatedAt, &wikidataID, &title, &year, &artistID, &locationID); err != nil {
		return nil, err
	}

	parsedID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("parse painting id: %w", err)
	}
	parsedArtistID, err := uuid.Parse(artistID)
	if err != nil {
		return nil, fmt.Errorf("parse artist id: %w", err)
	}

	p := &domain.Painting{
		ID:         parsedID,
		CreatedAt:  decodeTime(createdAt),
		UpdatedAt:  decodeTime(updatedAt),
		WikidataID: wikidataID,
		ArtistID:   parsedArtistID,
	}
	if title.Valid {
		p.Title = &title.String
	}
	if year.Valid {
		y := int(year.Int64)
		p.Year = &y
	}
	if locationID.Valid {
		parsedLoc, err := uuid.Parse(locationID.String)
		if err != nil {
			return nil, fmt.Errorf("parse location id: %w", err)
		}
		p.LocationID = &parsedLoc
	}
	return p, nil
}
