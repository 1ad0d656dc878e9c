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

var locationSortColumns = map[string]string{
	"name":       "name",
	"created_at": "created_at",
	"updated_at": "updated_at",
}

type locationRepo struct {
	pool *pgxpool.Pool
}

func NewLocationRepository(pool *pgxpool.Pool) ports.LocationRepository {
	return &locationRepo{pool: pool}
}

func (r *locationRepo) Create(ctx context.Context, location *domain.Location) error {
	query := `
		INSERT INTO locations (id, created_at, updated_at, wikidata_id, name, latitude, longitude)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
	`
	_, err := r.pool.Exec(ctx, query,
		location.ID, location.CreatedAt, location.UpdatedAt,
		location.WikidataID, location.Name, location.Latitude, location.Longitude,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrLocationQIDConflict
		}
		return fmt.Errorf("create location: %w", err)
	}
	return nil
}

func (r *locationRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Location, error) {
	query := `
		SELECT id, created_at, updated_at, wikidata_id, name, latitude, longitude
		FROM locations WHERE id = $1
	`
	l, err := scanLocation(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrLocationNotFound
		}
		return nil, fmt.Errorf("get location by id: %w", err)
	}
	return l, nil
}

func (r *locationRepo) GetByWikidataID(ctx context.Context, qid string) (*domain.Location, error) {
	query := `
		SELECT id, created_at, updated_at, wikidata_id, name, latitude, longitude
		FROM locations WHERE wikidata_id = $1
	`
	l, err := scanLocation(r.pool.QueryRow(ctx, query, qid))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrLocationNotFound
		}
		return nil, fmt.Errorf("get location by wikidata id: %w", err)
	}
	return l, nil
}

func (r *locationRepo) Update(ctx context.Context, location *domain.Location) error {
	query := `
		UPDATE locations SET name=$1, latitude=$2, longitude=$3, updated_at=NOW()
		WHERE id=$4
	`
	result, err := r.pool.Exec(ctx, query,
		location.Name, location.Latitude, location.Longitude, location.ID,
	)
	if err != nil {
		return fmt.Errorf("update location: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrLocationNotFound
	}
	return nil
}

func (r *locationRepo) List(ctx context.Context, filter ports.LocationListFilter) ([]*domain.Location, int, error) {
	conditions := []string{}
	args := []interface{}{}
	argPos := 1

	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("name ILIKE $%d", argPos))
		args = append(args, "%"+filter.Search+"%")
		argPos++
	}

	whereClause := "1=1"
	if len(conditions) > 0 {
		whereClause = strings.Join(conditions, " AND ")
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM locations WHERE %s", whereClause)
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count locations: %w", err)
	}

	orderBy := "created_at DESC"
	if col, ok := locationSortColumns[filter.SortBy]; ok {
		dir := "DESC"
		if filter.Order == "asc" {
			dir = "ASC"
		}
		orderBy = fmt.Sprintf("%s %s", col, dir)
	}

	query := fmt.Sprintf(`
		SELECT id, created_at, updated_at, wikidata_id, name, latitude, longitude
		FROM locations
		WHERE %s
		ORDER BY %s
		LIMIT $%d OFFSET $%d
	`, whereClause, orderBy, argPos, argPos+1)

	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list locations: %w", err)
	}
	defer rows.Close()

	var locations []*domain.Location
	for rows.Next() {
		l, err := scanLocation(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan location row: %w", err)
		}
		locations = append(locations, l)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate location rows: %w", err)
	}

	return locations, total, nil
}

func scanLocation(row pgx.Row) (*domain.Location, error) {
	l := &domain.Location{}
	err := row.Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt, &l.WikidataID,
		&l.Name, &l.Latitude, &l.Longitude)
	if err != nil {
		return nil, err
	}
	return l, nil
}
