package contract

import (
	"context"

	"cornell-notepad-be/internal/entity"
	"cornell-notepad-be/internal/repository/specification"

	"github.com/google/uuid"
)

type NoteRepository interface {
	CreateAll(ctx context.Context, notes []*entity.Note) error
	Update(ctx context.Context, note *entity.Note) error
	// DeleteAllByIds removes the given notes, additionally scoped by owner.
	DeleteAllByIds(ctx context.Context, ids []uuid.UUID, userId uuid.UUID) error
	DeleteAllByUserId(ctx context.Context, userId uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
