package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/taranjotsinghW28/Note-Nest/internal/apperror"
	"github.com/taranjotsinghW28/Note-Nest/internal/dto"
	"github.com/taranjotsinghW28/Note-Nest/internal/repository/specification"
	"github.com/taranjotsinghW28/Note-Nest/internal/repository/unitofwork"
)

type ITagService interface {
	List(ctx context.Context) ([]dto.TagDTO, error)
	AddToNote(ctx context.Context, userId uuid.UUID, req *dto.AddTagRequest) (*dto.AddTagResponse, error)
	RemoveFromNote(ctx context.Context, userId uuid.UUID, noteId, tagId uuid.UUID) (*dto.RemoveTagResponse, error)
}

type tagService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewTagService(uowFactory unitofwork.RepositoryFactory) ITagService {
	return &tagService{
		uowFactory: uowFactory,
	}
}

// List returns every tag in storage. Tags are shared across users, so there
// is no owner filter here.
func (s *tagService) List(ctx context.Context) ([]dto.TagDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	tags, err := uow.TagRepository().FindAll(ctx, specification.OrderBy{Field: "name"})
	if err != nil {
		return nil, err
	}

	response := make([]dto.TagDTO, 0, len(tags))
	for _, t := range tags {
		response = append(response, dto.TagDTO{Id: t.Id, Name: t.Name})
	}
	return response, nil
}

// AddToNote resolves the tag by name, creating it if needed, then links it to
// the note. The tag row is committed before the link, so a failure between
// the two steps can leave an orphaned tag but never a link to a missing tag.
// Re-adding an already-present tag succeeds without a second row.
func (s *tagService) AddToNote(ctx context.Context, userId uuid.UUID, req *dto.AddTagRequest) (*dto.AddTagResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := findOwned(ctx, uow, userId, req.NoteId); err != nil {
		return nil, err
	}

	tag, err := uow.TagRepository().GetOrCreate(ctx, req.TagName)
	if err != nil {
		return nil, err
	}

	linked, err := uow.TagRepository().Link(ctx, req.NoteId, tag.Id)
	if err != nil {
		return nil, err
	}

	return &dto.AddTagResponse{
		Tag:    dto.TagDTO{Id: tag.Id, Name: tag.Name},
		Linked: linked,
	}, nil
}

func (s *tagService) RemoveFromNote(ctx context.Context, userId uuid.UUID, noteId, tagId uuid.UUID) (*dto.RemoveTagResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := findOwned(ctx, uow, userId, noteId); err != nil {
		return nil, err
	}

	tag, err := uow.TagRepository().FindOne(ctx, specification.ByID{ID: tagId})
	if err != nil {
		return nil, err
	}
	if tag == nil {
		return nil, apperror.ErrTagNotFound
	}

	removed, err := uow.TagRepository().Unlink(ctx, noteId, tagId)
	if err != nil {
		return nil, err
	}

	// removed == false is the soft "not associated" outcome: nothing changed
	// and nothing failed.
	return &dto.RemoveTagResponse{Removed: removed}, nil
}
