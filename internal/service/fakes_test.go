package service

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/taranjotsinghW28/Note-Nest/internal/entity"
	"github.com/taranjotsinghW28/Note-Nest/internal/repository/contract"
	"github.com/taranjotsinghW28/Note-Nest/internal/repository/specification"
	"github.com/taranjotsinghW28/Note-Nest/internal/repository/unitofwork"
)

// In-memory fakes of the repository contracts. They interpret the
// specification values the services actually use, so service tests exercise
// the real invariants without a database.

type fakeStore struct {
	users  map[uuid.UUID]*entity.User
	tokens map[uuid.UUID]*entity.UserRefreshToken
	notes  map[uuid.UUID]*entity.Note
	tags   map[uuid.UUID]*entity.Tag
	links  map[[2]uuid.UUID]bool // [noteId, tagId]
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:  make(map[uuid.UUID]*entity.User),
		tokens: make(map[uuid.UUID]*entity.UserRefreshToken),
		notes:  make(map[uuid.UUID]*entity.Note),
		tags:   make(map[uuid.UUID]*entity.Tag),
		links:  make(map[[2]uuid.UUID]bool),
	}
}

type fakeUnitOfWork struct {
	store *fakeStore
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) error { return nil }
func (u *fakeUnitOfWork) Commit() error                   { return nil }
func (u *fakeUnitOfWork) Rollback() error                 { return nil }

func (u *fakeUnitOfWork) UserRepository() contract.UserRepository {
	return &fakeUserRepository{store: u.store}
}

func (u *fakeUnitOfWork) NoteRepository() contract.NoteRepository {
	return &fakeNoteRepository{store: u.store}
}

func (u *fakeUnitOfWork) TagRepository() contract.TagRepository {
	return &fakeTagRepository{store: u.store}
}

type fakeFactory struct {
	store *fakeStore
}

func newFakeFactory() *fakeFactory {
	return &fakeFactory{store: newFakeStore()}
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &fakeUnitOfWork{store: f.store}
}

// --- users ---

type fakeUserRepository struct {
	store *fakeStore
}

func userMatches(u *entity.User, specs []specification.Specification) bool {
	for _, s := range specs {
		switch sp := s.(type) {
		case specification.ByID:
			if u.Id != sp.ID {
				return false
			}
		case specification.ByEmail:
			if u.Email != sp.Email {
				return false
			}
		}
	}
	return true
}

func (r *fakeUserRepository) Create(ctx context.Context, user *entity.User) error {
	r.store.users[user.Id] = user
	return nil
}

func (r *fakeUserRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	for _, u := range r.store.users {
		if userMatches(u, specs) {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	for _, u := range r.store.users {
		if userMatches(u, specs) {
			count++
		}
	}
	return count, nil
}

func (r *fakeUserRepository) CreateRefreshToken(ctx context.Context, token *entity.UserRefreshToken) error {
	r.store.tokens[token.Id] = token
	return nil
}

func (r *fakeUserRepository) FindRefreshToken(ctx context.Context, specs ...specification.Specification) (*entity.UserRefreshToken, error) {
	for _, t := range r.store.tokens {
		match := true
		for _, s := range specs {
			if sp, ok := s.(specification.ByTokenHash); ok && t.TokenHash != sp.Hash {
				match = false
			}
		}
		if match {
			copied := *t
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepository) RevokeRefreshToken(ctx context.Context, tokenHash string) error {
	for _, t := range r.store.tokens {
		if t.TokenHash == tokenHash {
			t.Revoked = true
		}
	}
	return nil
}

// --- notes ---

type fakeNoteRepository struct {
	store *fakeStore
}

func noteMatches(n *entity.Note, specs []specification.Specification) bool {
	for _, s := range specs {
		switch sp := s.(type) {
		case specification.ByID:
			if n.Id != sp.ID {
				return false
			}
		case specification.UserOwnedBy:
			if n.UserId != sp.UserID {
				return false
			}
		}
	}
	return true
}

func (r *fakeNoteRepository) Create(ctx context.Context, note *entity.Note) error {
	copied := *note
	r.store.notes[note.Id] = &copied
	return nil
}

func (r *fakeNoteRepository) Update(ctx context.Context, note *entity.Note) error {
	copied := *note
	r.store.notes[note.Id] = &copied
	return nil
}

func (r *fakeNoteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.store.notes, id)
	return nil
}

func (r *fakeNoteRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error) {
	for _, n := range r.store.notes {
		if noteMatches(n, specs) {
			copied := *n
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeNoteRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error) {
	var result []*entity.Note
	for _, n := range r.store.notes {
		if noteMatches(n, specs) {
			copied := *n
			result = append(result, &copied)
		}
	}
	for _, s := range specs {
		if sp, ok := s.(specification.OrderBy); ok && sp.Field == "created_at" {
			sort.Slice(result, func(i, j int) bool {
				if sp.Desc {
					return result[i].CreatedAt.After(result[j].CreatedAt)
				}
				return result[i].CreatedAt.Before(result[j].CreatedAt)
			})
		}
	}
	return result, nil
}

func (r *fakeNoteRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	for _, n := range r.store.notes {
		if noteMatches(n, specs) {
			count++
		}
	}
	return count, nil
}

// --- tags ---

type fakeTagRepository struct {
	store *fakeStore
}

func (r *fakeTagRepository) GetOrCreate(ctx context.Context, name string) (*entity.Tag, error) {
	for _, t := range r.store.tags {
		if t.Name == name {
			copied := *t
			return &copied, nil
		}
	}
	tag := &entity.Tag{Id: uuid.New(), Name: name}
	r.store.tags[tag.Id] = tag
	copied := *tag
	return &copied, nil
}

func (r *fakeTagRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Tag, error) {
	for _, t := range r.store.tags {
		match := true
		for _, s := range specs {
			switch sp := s.(type) {
			case specification.ByID:
				if t.Id != sp.ID {
					match = false
				}
			case specification.ByName:
				if t.Name != sp.Name {
					match = false
				}
			}
		}
		if match {
			copied := *t
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeTagRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Tag, error) {
	var result []*entity.Tag
	for _, t := range r.store.tags {
		copied := *t
		result = append(result, &copied)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (r *fakeTagRepository) FindAllForNote(ctx context.Context, noteId uuid.UUID) ([]*entity.Tag, error) {
	var result []*entity.Tag
	for key := range r.store.links {
		if key[0] == noteId {
			if t, ok := r.store.tags[key[1]]; ok {
				copied := *t
				result = append(result, &copied)
			}
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (r *fakeTagRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.store.tags)), nil
}

func (r *fakeTagRepository) Link(ctx context.Context, noteId, tagId uuid.UUID) (bool, error) {
	key := [2]uuid.UUID{noteId, tagId}
	if r.store.links[key] {
		return false, nil
	}
	r.store.links[key] = true
	return true, nil
}

func (r *fakeTagRepository) Unlink(ctx context.Context, noteId, tagId uuid.UUID) (bool, error) {
	key := [2]uuid.UUID{noteId, tagId}
	if !r.store.links[key] {
		return false, nil
	}
	delete(r.store.links, key)
	return true, nil
}

func (r *fakeTagRepository) UnlinkAllForNote(ctx context.Context, noteId uuid.UUID) error {
	for key := range r.store.links {
		if key[0] == noteId {
			delete(r.store.links, key)
		}
	}
	return nil
}
