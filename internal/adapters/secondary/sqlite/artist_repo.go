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

var artistSortColumns = map[string]string{
	"name":       "name",
	"created_at": "created_at",
	"updated_at": "updated_at",
}

type artistRepo struct {
	store *Store
}

func NewArtistRepository(store *Store) ports.ArtistRepository {
	return &artistRepo{store: store}
}

func (r *artistRepo) Create(ctx context.Context, artist *domain.Artist) error {
	query := `
		INSERT INTO artists (id, created_at, updated_at, wikidata_id, name)
		VALUES (?,?,?,?,?)
	`
	_, err := r.store.db.ExecContext(ctx, query,
		artist.ID.String(), encodeTime(artist.CreatedAt), encodeTime(artist.UpdatedAt),
		artist.WikidataID, artist.Name,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrArtistQIDConflict
		}
		return fmt.Errorf("create artist: %w", err)
	}
	return nil
}

func (r *artistRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Artist, error) {
	query := `
		SELECT id, created_at, updated_at, wikidata_id, name
		FROM artists WHERE id = ?
	`
	a, err := scanArtist(r.store.db.QueryRowContext(ctx, query, id.String()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrArtistNotFound
		}
		return nil, fmt.Errorf("get artist by id: %w", err)
	}
	return a, nil
}

func (r *artistRepo) GetByWikidataID(ctx context.Context, qid string) (*domain.Artist, error) {
	query := `
		SELECT id, created_at, updated_at, wikidata_id, name
		FROM artists WHERE wikidata_id = ?
	`
	a, err := scanArtist(r.store.db.QueryRowContext(ctx, query, qid))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrArtistNotFound
		}
		return nil, fmt.Errorf("get artist by wikidata id: %w", err)
	}
	return a, nil
}

func (r *artistRepo) Update(ctx context.Context, artist *domain.Artist) error {
	query := `UPDATE artists SET name=?, updated_at=? WHERE id=?`
	result, err := r.store.db.ExecContext(ctx, query,
		artist.Name, encodeTime(time.Now()), artist.ID.String(),
	)
	if err != nil {
		return fmt.Errorf("update artist: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update artist: %w", err)
	}
	if affected == 0 {
		return domain.ErrArtistNotFound
	}
	return nil
}

func (r *artistRepo) List(ctx context.Context, filter ports.ArtistListFilter) ([]*domain.Artist, int, error) {
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

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM artists WHERE %s", whereClause)
	var total int
	if err := r.store.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count artists: %w", err)
	}

	orderBy := "created_at DESC"
	if col, ok := artistSortColumns[filter.SortBy]; ok {
		dir := "DESC"
		if filter.Order == "asc" {
			dir = "ASC"
		}
		orderBy = fmt.Sprintf("%s %s", col, dir)
	}

	query := fmt.Sprintf(`
		SELECT id, created_at, updated_at, wikidata_id, name
		FROM artists
		WHERE %s
		ORDER BY %s
		LIMIT ? OFFSET ?
	`, whereClause, orderBy)

	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list artists: %w", err)
	}
	defer rows.Close()

	var artists []*domain.Artist
	for rows.Next() {
		a, err := scanArtist(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan artist row: %w", err)
		}
		artists = append(artists, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate artist rows: %w", err)
	}

	return artists, total, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanArtist(row rowScanner) (*domain.Artist, error) {
	var (
		id, createdAt, updatedAt, wikidataID string
		name                                 sql.NullString
	)
	if err := row.Scan(&id, &createdAt, &updatedAt, &wikidataID, &name); err != nil {
		return nil, err
	}

	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("parse artist id: %w", err)
	}

	a := &domain.Artist{
		ID:         parsed,
		CreatedAt:  decodeTime(createdAt),
		UpdatedAt:  decodeTime(updatedAt),
		WikidataID: wikidataID,
	}
	if name.Valid {
		a.Name = &name.String
	}
	return a, nil
}
