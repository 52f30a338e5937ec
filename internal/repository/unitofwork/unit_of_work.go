package unitofwork

import (
	"context"

	"github.com/taranjotsinghW28/Note-Nest/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	NoteRepository() contract.NoteRepository
	TagRepository() contract.TagRepository
}
