package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

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
	pool *pgxpool.Pool
}

func NewPaintingRepository(pool *pgxpool.Pool) ports.PaintingRepository {
	return &paintingRepo{pool: pool}
}

func (r *paintingRepo) Create(ctx context.Context, painting *domain.Painting) error {
	query := `
		INSERT INTO paintings
			(id, created_at, updated_at, wikidata_id, title, year, artist_id, location_id)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`
	_, err := r.pool.Exec(ctx, query,
		painting.ID, painting.CreatedAt, painting.UpdatedAt,
		painting.WikidataID, painting.Title, painting.Year,
		painting.ArtistID, painting.LocationID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrPaintingQIDConflict
		}
		return fmt.Errorf("create painting: %w", err)
	}
	return nil
}

func (r *paintingRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Painting, error) {
	query := `
		SELECT id, created_at, updated_at, wikidata_id, title, year, artist_id, location_id
		FROM paintings WHERE id = $1
	`
	p, err := scanPainting(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPaintingNotFound
		}
		return nil, fmt.Errorf("get painting by id: %w", err)
	}
	return p, nil
}

func (r *paintingRepo) GetByWikidataID(ctx context.Context, qid string) (*domain.Painting, error) {
	query := `
		SELECT id, created_at, updated_at, wikidata_id, title, year, artist_id, location_id
		FROM paintings WHERE wikidata_id = $1
	`
	p, err := scanPainting(r.pool.QueryRow(ctx, query, qid))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPaintingNotFound
		}
		return nil, fmt.Errorf("get painting by wikidata id: %w", err)
	}
	return p, nil
}

func (r *paintingRepo) Update(ctx context.Context, painting *domain.Painting) error {
	query := `
		UPDATE paintings
		SET title=$1, year=$2, artist_id=$3, location_id=$4, updated_at=NOW()
		WHERE id=$5
	`
	result, err := r.pool.Exec(ctx, query,
		painting.Title, painting.Year, painting.ArtistID,
		painting.LocationID, painting.ID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrPaintingQIDConflict
		}
		return fmt.Errorf("update painting: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrPaintingNotFound
	}
	return nil
}

func (r *paintingRepo) List(ctx context.Context, filter ports.PaintingListFilter) ([]*domain.Painting, int, error) {
	conditions := []string{}
	args := []interface{}{}
	argPos := 1

	if filter.ArtistID != uuid.Nil {
		conditions = append(conditions, fmt.Sprintf("artist_id = $%d", argPos))
		args = append(args, filter.ArtistID)
		argPos++
	}
	if filter.LocationID != uuid.Nil {
		conditions = append(conditions, fmt.Sprintf("location_id = $%d", argPos))
		args = append(args, filter.LocationID)
		argPos++
	}
	if filter.YearFrom != nil {
		conditions = append(conditions, fmt.Sprintf("year >= $%d", argPos))
		args = append(args, *filter.YearFrom)
		argPos++
	}
	if filter.YearTo != nil {
		conditions = append(conditions, fmt.Sprintf("year <= $%d", argPos))
		args = append(args, *filter.YearTo)
		argPos++
	}
	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("title ILIKE $%d", argPos))
		args = append(args, "%"+filter.Search+"%")
		argPos++
	}

	whereClause := "1=1"
	if len(conditions) > 0 {
		whereClause = strings.Join(conditions, " AND ")
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM paintings WHERE %s", whereClause)
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
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
		LIMIT $%d OFFSET $%d
	`, whereClause, orderBy, argPos, argPos+1)

	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list paintings: %w", err)
	}
	defer rows.Close()

	var paintings []*domain.Painting
	for rows.Next() {
		p, err := scanPainting(rows)
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

func scanPainting(row pgx.Row) (*domain.Painting, error) {
	p := &domain.Painting{}
	err := row.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt, &p.WikidataID,
		&p.Title, &p.Year, &p.ArtistID, &p.LocationID)
	if err != nil {
		return nil, err
	}
	return p, nil
}
