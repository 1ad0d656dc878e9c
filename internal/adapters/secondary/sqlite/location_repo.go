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

var locationSortColumns = map[string]string{
	"name":       "name",
	"created_at": "created_at",
	"updated_at": "updated_at",
}

type locationRepo struct {
	store *Store
}

func NewLocationRepository(store *Store) ports.LocationRepository {
	return &locationRepo{store: store}
}

func (r *locationRepo) Create(ctx context.Context, location *domain.Location) error {
	query := `
		INSERT INTO locations (id, created_at, updated_at, wikidata_id, name, latitude, longitude)
		VALUES (?,?,?,?,?,?,?)
	`
	_, err := r.store.db.ExecContext(ctx, query,
		location.ID.String(), encodeTime(location.CreatedAt), encodeTime(location.UpdatedAt),
		location.WikidataID, location.Name, location.Latitude, location.Longitude,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrLocationQIDConflict
		}
		return fmt.Errorf("create location: %w", err)
	}
	return nil
}

func (r *locationRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Location, error) {
	query := `
		SELECT id, created_at, updated_at, wikidata_id, name, latitude, longitude
		FROM locations WHERE id = ?
	`
	l, err := scanLocationRow(r.store.db.QueryRowContext(ctx, query, id.String()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrLocationNotFound
		}
		return nil, fmt.Errorf("get location by id: %w", err)
	}
	return l, nil
}

func (r *locationRepo) GetByWikidataID(ctx context.Context, qid string) (*domain.Location, error) {
	query := `
		SELECT id, created_at, updated_at, wikidata_id, name, latitude, longitude
		FROM locations WHERE wikidata_id = ?
	`
	l, err := scanLocationRow(r.store.db.QueryRowContext(ctx, query, qid))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrLocationNotFound
		}
		return nil, fmt.Errorf("get location by wikidata id: %w", err)
	}
	return l, nil
}

func (r *locationRepo) Update(ctx context.Context, location *domain.Location) error {
	query := `
		UPDATE locations SET name=?, latitude=?, longitude=?, updated_at=? WHERE id=?
	`
	result, err := r.store.db.ExecContext(ctx, query,
		location.Name, location.Latitude, location.Longitude,
		encodeTime(time.Now()), location.ID.String(),
	)
	if err != nil {
		return fmt.Errorf("update location: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update location: %w", err)
	}
	if affected == 0 {
		return domain.ErrLocationNotFound
	}
	return nil
}

func (r *locationRepo) List(ctx context.Context, filter ports.LocationListFilter) ([]*domain.Location, int, error) {
	conditions := []string{}
	args := []interface{}{}

	if filter.Search != "" {
		conditions = append(conditions, "name LIKE ?")
		args = append(args, "%"+filter.Search+"%")
	}

	whereClause := "1=1"
	if len(conditions) > 0 {
		whereClause = strings.Join(conditions, " AND ")
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM locations WHERE %s", whereClause)
	var total int
	if err := r.store.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
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
		LIMIT ? OFFSET ?
	`, whereClause, orderBy)

	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list locations: %w", err)
	}
	defer rows.Close()

	var locations []*domain.Location
	for rows.Next() {
		l, err := scanLocationRow(rows)
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

func scanLocationRow(row rowScanner) (*domain.Location, error) {
	var (
		id, createdAt, updatedAt, wikidataID string
		name                                 sql.NullString
		latitude, longitude                  sql.NullFloat64
	)
	if err := row.Scan(&id, &createdAt, &updatedAt, &wikidataID, &name, &latitude, &longitude); err != nil {
		return nil, err
	}

	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("parse location id: %w", err)
	}

	l := &domain.Location{
		ID:         parsed,
		CreatedAt:  decodeTime(createdAt),
		UpdatedAt:  decodeTime(updatedAt),
		WikidataID: wikidataID,
	}
	if name.Valid {
		l.Name = &name.String
	}
	if latitude.Valid {
		l.Latitude = &latitude.Float64
	}
	if longitude.Valid {
		l.Longitude = &longitude.Float64
	}
	return l, nil
}
