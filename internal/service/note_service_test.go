package service

import (
	"context"
	"testing"
	"time"

	"cornell-notepad-be/internal/apperror"
	"cornell-notepad-be/internal/dto"
	"cornell-notepad-be/internal/entity"
	"cornell-notepad-be/internal/repository/memory"
	"cornell-notepad-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedNotes creates count notes owned by userId with strictly increasing
// creation times and returns their ids in creation order.
func seedNotes(t *testing.T, factory *memory.RepositoryFactory, userId uuid.UUID, count int) []uuid.UUID {
	t.Helper()
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	notes := make([]*entity.Note, count)
	ids := make([]uuid.UUID, count)
	for i := 0; i < count; i++ {
		ids[i] = uuid.New()
		created := base.Add(time.Duration(i) * time.Minute)
		notes[i] = &entity.Note{
			Id:        ids[i],
			UserId:    userId,
			Topic:     "topic",
			Version:   1,
			CreatedAt: created,
			UpdatedAt: created,
		}
	}
	require.NoError(t, factory.Notes().CreateAll(context.Background(), notes))
	return ids
}

func listQuery(sortBy, order string, skip, limit int) *dto.ListNotesQuery {
	return &dto.ListNotesQuery{SortBy: sortBy, Order: order, Skip: skip, Limit: limit}
}

func pageIds(res *dto.ListNotesResponse) []uuid.UUID {
	ids := make([]uuid.UUID, len(res.Notes))
	for i, n := range res.Notes {
		ids[i] = n.Id
	}
	return ids
}

func TestListPagination(t *testing.T) {
	ctx := context.Background()
	factory := memory.NewRepositoryFactory()
	svc := NewNoteService(factory)

	owner := uuid.New()
	ids := seedNotes(t, factory, owner, 5)
	seedNotes(t, factory, uuid.New(), 3) // other owner's notes stay invisible

	t.Run("first page ascending", func(t *testing.T) {
		res, err := svc.List(ctx, owner, listQuery(dto.SortByCreatedAt, dto.OrderAsc, 0, 2))
		require.NoError(t, err)
		assert.Equal(t, 0, res.Skipped)
		assert.Equal(t, int64(5), res.Total)
		assert.Equal(t, ids[:2], pageIds(res))
	})

	t.Run("middle page", func(t *testing.T) {
		res, err := svc.List(ctx, owner, listQuery(dto.SortByCreatedAt, dto.OrderAsc, 2, 2))
		require.NoError(t, err)
		assert.Equal(t, 2, res.Skipped)
		assert.Equal(t, int64(5), res.Total)
		assert.Equal(t, ids[2:4], pageIds(res))
	})

	t.Run("descending is the exact reverse", func(t *testing.T) {
		res, err := svc.List(ctx, owner, listQuery(dto.SortByCreatedAt, dto.OrderDesc, 0, 5))
		require.NoError(t, err)
		got := pageIds(res)
		require.Len(t, got, 5)
		for i := range ids {
			assert.Equal(t, ids[len(ids)-1-i], got[i])
		}
	})

	t.Run("skip past the end keeps total", func(t *testing.T) {
		res, err := svc.List(ctx, owner, listQuery(dto.SortByCreatedAt, dto.OrderAsc, 10, 2))
		require.NoError(t, err)
		assert.Equal(t, 10, res.Skipped)
		assert.Equal(t, int64(5), res.Total)
		assert.Empty(t, res.Notes)
	})
}

func TestListSortsByUpdatedAt(t *testing.T) {
	ctx := context.Background()
	factory := memory.NewRepositoryFactory()
	svc := NewNoteService(factory)

	owner := uuid.New()
	ids := seedNotes(t, factory, owner, 3)

	// Touch the oldest note so it becomes the most recently updated.
	require.NoError(t, svc.Update(ctx, owner, ids[0], &dto.NoteNew{Topic: "touched"}))

	res, err := svc.List(ctx, owner, listQuery(dto.SortByUpdatedAt, dto.OrderDesc, 0, 3))
	require.NoError(t, err)
	require.Len(t, res.Notes, 3)
	assert.Equal(t, ids[0], res.Notes[0].Id)
}

func TestListSortsByUpdatedAtMixed(t *testing.T) {
	ctx := context.Background()
	factory := memory.NewRepositoryFactory()
	svc := NewNoteService(factory)

	owner := uuid.New()
	ids := seedNotes(t, factory, owner, 3)

	// Untouched notes keep updated_at = created_at, so an edit to the
	// oldest note moves it behind the untouched ones ascending.
	require.NoError(t, svc.Update(ctx, owner, ids[0], &dto.NoteNew{Topic: "touched"}))

	res, err := svc.List(ctx, owner, listQuery(dto.SortByUpdatedAt, dto.OrderAsc, 0, 3))
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{ids[1], ids[2], ids[0]}, pageIds(res))
}

func TestShow(t *testing.T) {
	ctx := context.Background()
	factory := memory.NewRepositoryFactory()
	svc := NewNoteService(factory)

	owner := uuid.New()
	stranger := uuid.New()
	ids := seedNotes(t, factory, owner, 1)

	t.Run("owner sees the note", func(t *testing.T) {
		res, err := svc.Show(ctx, owner, ids[0])
		require.NoError(t, err)
		assert.Equal(t, ids[0], res.Id)
		assert.Equal(t, owner, res.UserId)
	})

	t.Run("stranger is forbidden", func(t *testing.T) {
		res, err := svc.Show(ctx, stranger, ids[0])
		assert.Nil(t, res)
		appErr := apperror.As(err)
		require.NotNil(t, appErr)
		assert.Equal(t, apperror.KindForbidden, appErr.Kind)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		res, err := svc.Show(ctx, owner, uuid.New())
		assert.Nil(t, res)
		appErr := apperror.As(err)
		require.NotNil(t, appErr)
		assert.Equal(t, apperror.KindNotFound, appErr.Kind)
	})
}

func TestCreateAll(t *testing.T) {
	ctx := context.Background()
	factory := memory.NewRepositoryFactory()
	svc := NewNoteService(factory)

	owner := uuid.New()
	created, err := svc.CreateAll(ctx, owner, []dto.NoteNew{
		{Topic: "first", Notes: "body"},
		{Topic: "second", Summary: "tl;dr"},
	})
	require.NoError(t, err)
	require.Len(t, created, 2)

	for _, n := range created {
		assert.Equal(t, owner, n.UserId)
		assert.Equal(t, int64(1), n.Version)
		assert.NotEqual(t, uuid.Nil, n.Id)
		// A fresh note is never unsorted under updated_at ordering.
		assert.Equal(t, n.CreatedAt, n.UpdatedAt)
	}

	total, err := factory.Notes().Count(ctx, specification.OwnedBy{UserID: owner})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}

func TestUpdateReplacesContent(t *testing.T) {
	ctx := context.Background()
	factory := memory.NewRepositoryFactory()
	svc := NewNoteService(factory)

	owner := uuid.New()
	ids := seedNotes(t, factory, owner, 1)

	err := svc.Update(ctx, owner, ids[0], &dto.NoteNew{Topic: "replaced"})
	require.NoError(t, err)

	stored, err := factory.Notes().FindOne(ctx, specification.ByID{ID: ids[0]})
	require.NoError(t, err)
	assert.Equal(t, "replaced", stored.Topic)
	assert.Empty(t, stored.Notes)
	assert.Equal(t, int64(2), stored.Version)
	assert.True(t, stored.UpdatedAt.After(stored.CreatedAt))
}

func TestUpdateForeignNote(t *testing.T) {
	ctx := context.Background()
	factory := memory.NewRepositoryFactory()
	svc := NewNoteService(factory)

	owner := uuid.New()
	ids := seedNotes(t, factory, owner, 1)

	err := svc.Update(ctx, uuid.New(), ids[0], &dto.NoteNew{Topic: "hijack"})
	appErr := apperror.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperror.KindForbidden, appErr.Kind)

	stored, err := factory.Notes().FindOne(ctx, specification.ByID{ID: ids[0]})
	require.NoError(t, err)
	assert.Equal(t, "topic", stored.Topic)
}

func TestDeleteAll(t *testing.T) {
	ctx := context.Background()
	factory := memory.NewRepositoryFactory()
	svc := NewNoteService(factory)

	owner := uuid.New()
	stranger := uuid.New()
	mine := seedNotes(t, factory, owner, 3)
	theirs := seedNotes(t, factory, stranger, 1)

	t.Run("missing id fails the whole batch", func(t *testing.T) {
		ghost := uuid.New()
		err := svc.DeleteAll(ctx, owner, []uuid.UUID{mine[0], ghost})
		appErr := apperror.As(err)
		require.NotNil(t, appErr)
		assert.Equal(t, apperror.KindNotFound, appErr.Kind)
		assert.Equal(t, []uuid.UUID{ghost}, appErr.Ids)

		// No partial deletion.
		total, err := factory.Notes().Count(ctx, specification.OwnedBy{UserID: owner})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
	})

	t.Run("missing wins over unowned", func(t *testing.T) {
		ghost := uuid.New()
		err := svc.DeleteAll(ctx, owner, []uuid.UUID{theirs[0], ghost})
		appErr := apperror.As(err)
		require.NotNil(t, appErr)
		assert.Equal(t, apperror.KindNotFound, appErr.Kind)
		assert.Equal(t, []uuid.UUID{ghost}, appErr.Ids)
	})

	t.Run("unowned id fails the whole batch", func(t *testing.T) {
		err := svc.DeleteAll(ctx, owner, []uuid.UUID{mine[0], theirs[0]})
		appErr := apperror.As(err)
		require.NotNil(t, appErr)
		assert.Equal(t, apperror.KindForbidden, appErr.Kind)
		assert.Equal(t, []uuid.UUID{theirs[0]}, appErr.Ids)

		total, err := factory.Notes().Count(ctx, specification.OwnedBy{UserID: owner})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
	})

	t.Run("owned batch is removed", func(t *testing.T) {
		require.NoError(t, svc.DeleteAll(ctx, owner, []uuid.UUID{mine[0], mine[2]}))

		remaining, err := factory.Notes().FindAll(ctx, specification.OwnedBy{UserID: owner})
		require.NoError(t, err)
		require.Len(t, remaining, 1)
		assert.Equal(t, mine[1], remaining[0].Id)

		// The stranger's note is untouched.
		other, err := factory.Notes().Count(ctx, specification.OwnedBy{UserID: stranger})
		require.NoError(t, err)
		assert.Equal(t, int64(1), other)
	})
}
