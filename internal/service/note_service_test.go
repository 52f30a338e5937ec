package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taranjotsinghW28/Note-Nest/internal/apperror"
	"github.com/taranjotsinghW28/Note-Nest/internal/dto"
	"github.com/taranjotsinghW28/Note-Nest/internal/entity"
)

func seedUser(factory *fakeFactory, username string) uuid.UUID {
	id := uuid.New()
	factory.store.users[id] = &entity.User{
		Id:       id,
		Username: username,
		Email:    username + "@x.com",
	}
	return id
}

func TestCreateAndShowNote(t *testing.T) {
	factory := newFakeFactory()
	svc := NewNoteService(factory)
	ctx := context.Background()
	alice := seedUser(factory, "alice")

	created, err := svc.Create(ctx, alice, &dto.CreateNoteRequest{
		Title:   "Groceries",
		Content: "milk, eggs",
	})
	require.NoError(t, err)

	shown, err := svc.Show(ctx, alice, created.Id)
	require.NoError(t, err)
	assert.Equal(t, "Groceries", shown.Title)
	assert.Equal(t, "milk, eggs", shown.Content)
	assert.Empty(t, shown.Tags)
	assert.False(t, shown.CreatedAt.IsZero())
}

func TestCreateNoteAcceptsEmptyTitle(t *testing.T) {
	factory := newFakeFactory()
	svc := NewNoteService(factory)
	ctx := context.Background()
	alice := seedUser(factory, "alice")

	created, err := svc.Create(ctx, alice, &dto.CreateNoteRequest{Title: "", Content: "untitled thought"})
	require.NoError(t, err)

	shown, err := svc.Show(ctx, alice, created.Id)
	require.NoError(t, err)
	assert.Equal(t, "", shown.Title)
}

func TestListNotesOnlyOwnNewestFirst(t *testing.T) {
	factory := newFakeFactory()
	svc := NewNoteService(factory)
	ctx := context.Background()
	alice := seedUser(factory, "alice")
	bob := seedUser(factory, "bob")

	now := time.Now()
	for i, title := range []string{"first", "second", "third"} {
		factory.store.notes[uuid.New()] = &entity.Note{
			Id:        uuid.New(),
			Title:     title,
			UserId:    alice,
			CreatedAt: now.Add(time.Duration(i) * time.Minute),
		}
	}
	factory.store.notes[uuid.New()] = &entity.Note{
		Id:        uuid.New(),
		Title:     "bobs note",
		UserId:    bob,
		CreatedAt: now,
	}

	notes, err := svc.List(ctx, alice)
	require.NoError(t, err)
	require.Len(t, notes, 3)
	assert.Equal(t, "third", notes[0].Title)
	assert.Equal(t, "first", notes[2].Title)
	for _, n := range notes {
		assert.NotEqual(t, "bobs note", n.Title)
	}
}

func TestShowNoteNotFound(t *testing.T) {
	factory := newFakeFactory()
	svc := NewNoteService(factory)
	alice := seedUser(factory, "alice")

	_, err := svc.Show(context.Background(), alice, uuid.New())
	assert.ErrorIs(t, err, apperror.ErrNoteNotFound)
}

func TestUpdateForeignNoteForbiddenAndUntouched(t *testing.T) {
	factory := newFakeFactory()
	svc := NewNoteService(factory)
	ctx := context.Background()
	alice := seedUser(factory, "alice")
	bob := seedUser(factory, "bob")

	created, err := svc.Create(ctx, alice, &dto.CreateNoteRequest{Title: "Groceries", Content: "milk, eggs"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, bob, &dto.UpdateNoteRequest{Id: created.Id, Title: "hacked", Content: "gone"})
	assert.ErrorIs(t, err, apperror.ErrForbidden)

	shown, err := svc.Show(ctx, alice, created.Id)
	require.NoError(t, err)
	assert.Equal(t, "Groceries", shown.Title)
	assert.Equal(t, "milk, eggs", shown.Content)
}

func TestUpdateOwnNoteKeepsOwnerAndCreatedAt(t *testing.T) {
	factory := newFakeFactory()
	svc := NewNoteService(factory)
	ctx := context.Background()
	alice := seedUser(factory, "alice")

	created, err := svc.Create(ctx, alice, &dto.CreateNoteRequest{Title: "v1", Content: "old"})
	require.NoError(t, err)

	before, err := svc.Show(ctx, alice, created.Id)
	require.NoError(t, err)

	_, err = svc.Update(ctx, alice, &dto.UpdateNoteRequest{Id: created.Id, Title: "v2", Content: "new"})
	require.NoError(t, err)

	after, err := svc.Show(ctx, alice, created.Id)
	require.NoError(t, err)
	assert.Equal(t, "v2", after.Title)
	assert.Equal(t, "new", after.Content)
	assert.Equal(t, before.CreatedAt, after.CreatedAt)

	stored := factory.store.notes[created.Id]
	assert.Equal(t, alice, stored.UserId)
}

func TestDeleteForeignNoteForbidden(t *testing.T) {
	factory := newFakeFactory()
	svc := NewNoteService(factory)
	ctx := context.Background()
	alice := seedUser(factory, "alice")
	bob := seedUser(factory, "bob")

	created, err := svc.Create(ctx, alice, &dto.CreateNoteRequest{Title: "mine"})
	require.NoError(t, err)

	err = svc.Delete(ctx, bob, created.Id)
	assert.ErrorIs(t, err, apperror.ErrForbidden)
	assert.Contains(t, factory.store.notes, created.Id)
}

func TestDeleteNoteRemovesLinksButKeepsTags(t *testing.T) {
	factory := newFakeFactory()
	noteSvc := NewNoteService(factory)
	tagSvc := NewTagService(factory)
	ctx := context.Background()
	alice := seedUser(factory, "alice")

	created, err := noteSvc.Create(ctx, alice, &dto.CreateNoteRequest{Title: "Groceries"})
	require.NoError(t, err)

	added, err := tagSvc.AddToNote(ctx, alice, &dto.AddTagRequest{NoteId: created.Id, TagName: "home"})
	require.NoError(t, err)

	require.NoError(t, noteSvc.Delete(ctx, alice, created.Id))

	assert.NotContains(t, factory.store.notes, created.Id)
	assert.Empty(t, factory.store.links)
	// The tag row itself survives, now unassociated.
	assert.Contains(t, factory.store.tags, added.Tag.Id)
}
