package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sharely/sharely/internal/domain/entity"
	"github.com/sharely/sharely/internal/domain/repository"
)

// Optional share columns are stored as NULL when empty and read back as
// empty strings (NULLIF on write, COALESCE on read).
type ShareRepository struct {
	pool *pgxpool.Pool
}

func NewShareRepository(pool *pgxpool.Pool) *ShareRepository {
	return &ShareRepository{pool: pool}
}

const shareColumns = `
	id, user_id, title, COALESCE(description, ''), content_type,
	COALESCE(content, ''), COALESCE(file_url, ''), COALESCE(short_code, ''),
	created_at, updated_at`

// Save inserts when the share has no id yet and updates otherwise.
func (r *ShareRepository) Save(ctx context.Context, s *entity.Share) error {
	if !s.IsSaved() {
		row := r.pool.QueryRow(ctx, `
			INSERT INTO shares (user_id, title, description, content_type, content, file_url, short_code, created_at, updated_at)
			VALUES ($1, $2, NULLIF($3, ''), $4, NULLIF($5, ''), NULLIF($6, ''), NULLIF($7, ''), $8, $9)
			RETURNING id
		`, s.UserID, s.Title, s.Description, string(s.ContentType), s.Content, s.FileURL, s.ShortCode, s.CreatedAt, s.UpdatedAt)
		return row.Scan(&s.ID)
	}

	res, err := r.pool.Exec(ctx, `
		UPDATE shares
		SET title = $1, description = NULLIF($2, ''), content_type = $3,
		    content = NULLIF($4, ''), file_url = NULLIF($5, ''), short_code = NULLIF($6, ''),
		    updated_at = $7
		WHERE id = $8
	`, s.Title, s.Description, string(s.ContentType), s.Content, s.FileURL, s.ShortCode, s.UpdatedAt, s.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *ShareRepository) FindByID(ctx context.Context, id int64) (*entity.Share, error) {
	row := r.pool.QueryRow(ctx, `SELECT`+shareColumns+` FROM shares WHERE id = $1`, id)
	s := &entity.Share{}
	if err := scanShare(row, s); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *ShareRepository) GetAll(ctx context.Context) ([]*entity.Share, error) {
	rows, err := r.pool.Query(ctx, `SELECT`+shareColumns+` FROM shares ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*entity.Share
	for rows.Next() {
		s := &entity.Share{}
		if err := scanShare(rows, s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *ShareRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM shares WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func scanShare(row pgx.Row, s *entity.Share) error {
	var contentType string
	if err := row.Scan(&s.ID, &s.UserID, &s.Title, &s.Description, &contentType,
		&s.Content, &s.FileURL, &s.ShortCode, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return err
	}
	s.ContentType = entity.ContentType(contentType)
	return nil
}

var _ repository.ShareRepository = (*ShareRepository)(nil)
