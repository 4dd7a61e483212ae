package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sharely/sharely/internal/domain/entity"
	"github.com/sharely/sharely/internal/domain/repository"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// Save inserts when the user has no id yet and updates otherwise.
func (r *UserRepository) Save(ctx context.Context, u *entity.User) error {
	if !u.IsSaved() {
		row := r.pool.QueryRow(ctx, `
			INSERT INTO users (name, email, password, email_verified_at, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id
		`, u.Name, u.Email, u.Password, u.EmailVerifiedAt, u.CreatedAt, u.UpdatedAt)
		return row.Scan(&u.ID)
	}

	res, err := r.pool.Exec(ctx, `
		UPDATE users
		SET name = $1, email = $2, password = $3, email_verified_at = $4, updated_at = $5
		WHERE id = $6
	`, u.Name, u.Email, u.Password, u.EmailVerifiedAt, u.UpdatedAt, u.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	return r.scanOne(r.pool.QueryRow(ctx, `
		SELECT id, name, email, password, email_verified_at, created_at, updated_at
		FROM users
		WHERE id = $1
	`, id))
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.scanOne(r.pool.QueryRow(ctx, `
		SELECT id, name, email, password, email_verified_at, created_at, updated_at
		FROM users
		WHERE email = $1
	`, email))
}

func (r *UserRepository) SetEmailVerified(ctx context.Context, id int64, at time.Time) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE users
		SET email_verified_at = $1, updated_at = $1
		WHERE id = $2 AND email_verified_at IS NULL
	`, at, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		// Either absent or already verified; only the former is an error.
		var exists bool
		if err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, id).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return repository.ErrNotFound
		}
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *UserRepository) scanOne(row pgx.Row) (*entity.User, error) {
	u := &entity.User{}
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.EmailVerifiedAt,
		&u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
