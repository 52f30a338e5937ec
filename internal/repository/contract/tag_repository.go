package contract

import (
	"context"

	"github.com/google/uuid"

	"github.com/taranjotsinghW28/Note-Nest/internal/entity"
	"github.com/taranjotsinghW28/Note-Nest/internal/repository/specification"
)

type TagRepository interface {
	// GetOrCreate resolves a tag by exact name, creating it when absent. The
	// insert is durable before the caller proceeds so the tag has a stable
	// identity even if a later link step fails.
	GetOrCreate(ctx context.Context, name string) (*entity.Tag, error)
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Tag, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Tag, error)
	FindAllForNote(ctx context.Context, noteId uuid.UUID) ([]*entity.Tag, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// Link associates a tag with a note. Returns false when the pair was
	// already linked; re-linking is a no-op, never an error.
	Link(ctx context.Context, noteId, tagId uuid.UUID) (bool, error)
	// Unlink removes one association. Returns false when the pair was not
	// linked.
	Unlink(ctx context.Context, noteId, tagId uuid.UUID) (bool, error)
	UnlinkAllForNote(ctx context.Context, noteId uuid.UUID) error
}
