package repository

import (
	"context"
	"errors"
	"time"

	"github.com/sharely/sharely/internal/domain/entity"
)

// ErrNotFound is returned by repositories when no entity exists for the
// given identity. Application services translate it into their own
// aggregate-specific sentinels.
var ErrNotFound = errors.New("not found")

// UserRepository is the storage-agnostic contract for user persistence.
// Save inserts when the entity is unsaved (assigning its ID) and updates
// otherwise.
type UserRepository interface {
	Save(ctx context.Context, u *entity.User) error
	FindByID(ctx context.Context, id int64) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	SetEmailVerified(ctx context.Context, id int64, at time.Time) error
	Delete(ctx context.Context, id int64) error
}
