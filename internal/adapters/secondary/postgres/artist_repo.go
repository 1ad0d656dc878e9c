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

// artistSortColumns whitelists sortable columns for list queries.
var artistSortColumns = map[string]string{
	"name":       "name",
	"created_at": "created_at",
	"updated_at": "updated_at",
}

type artistRepo struct {
	pool *pgxpool.Pool
}

func NewArtistRepository(pool *pgxpool.Pool) ports.ArtistRepository {
	return &artistRepo{pool: pool}
}

func (r *artistRepo) Create(ctx context.Context, artist *domain.Artist) error {
	query := `
		INSERT INTO artists (id, created_at, updated_at, wikidata_id, name)
		VALUES ($1,$2,$3,$4,$5)
	`
	_, err := r.pool.Exec(ctx, query,
		artist.ID, artist.CreatedAt, artist.UpdatedAt,
		artist.WikidataID, artist.Name,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrArtistQIDConflict
		}
		return fmt.Errorf("create artist: %w", err)
	}
	return nil
}

func (r *artistRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Artist, error) {
	query := `
		SELECT id, created_at, updated_at, wikidata_id, name
		FROM artists WHERE id = $1
	`
	a, err := scanArtist(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrArtistNotFound
		}
		return nil, fmt.Errorf("get artist by id: %w", err)
	}
	return a, nil
}

func (r *artistRepo) GetByWikidataID(ctx context.Context, qid string) (*domain.Artist, error) {
	query := `
		SELECT id, created_at, updated_at, wikidata_id, name
		FROM artists WHERE wikidata_id = $1
	`
	a, err := scanArtist(r.pool.QueryRow(ctx, query, qid))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrArtistNotFound
		}
		return nil, fmt.Errorf("get artist by wikidata id: %w", err)
	}
	return a, nil
}

func (r *artistRepo) Update(ctx context.Context, artist *domain.Artist) error {
	query := `
		UPDATE artists SET name=$1, updated_at=NOW() WHERE id=$2
	`
	result, err := r.pool.Exec(ctx, query, artist.Name, artist.ID)
	if err != nil {
		return fmt.Errorf("update artist: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrArtistNotFound
	}
	return nil
}

func (r *artistRepo) List(ctx context.Context, filter ports.ArtistListFilter) ([]*domain.Artist, int, error) {
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

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM artists WHERE %s", whereClause)
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
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
		LIMIT $%d OFFSET $%d
	`, whereClause, orderBy, argPos, argPos+1)

	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
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

func scanArtist(row pgx.Row) (*domain.Artist, error) {
	a := &domain.Artist{}
	err := row.Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt, &a.WikidataID, &a.Name)
	if err != nil {
		return nil, err
	}
	return a, nil
}
