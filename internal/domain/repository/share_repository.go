package repository

import (
	"context"

	"github.com/sharely/sharely/internal/domain/entity"
)

// ShareRepository is the storage-agnostic contract for share persistence.
// Save inserts when the entity is unsaved (assigning its ID) and updates
// otherwise.
type ShareRepository interface {
	Save(ctx context.Context, s *entity.Share) error
	FindByID(ctx context.Context, id int64) (*entity.Share, error)
	GetAll(ctx context.Context) ([]*entity.Share, error)
	Delete(ctx context.Context, id int64) error
}
