// FILE: internal/service/note_service.go
package service

import (
	"context"
	"time"

	"cornell-notepad-be/internal/apperror"
	"cornell-notepad-be/internal/dto"
	"cornell-notepad-be/internal/entity"
	"cornell-notepad-be/internal/repository/specification"
	"cornell-notepad-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type INoteService interface {
	List(ctx context.Context, userId uuid.UUID, query *dto.ListNotesQuery) (*dto.ListNotesResponse, error)
	Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.NoteResponse, error)
	CreateAll(ctx context.Context, userId uuid.UUID, notes []dto.NoteNew) ([]*dto.NoteResponse, error)
	Update(ctx context.Context, userId uuid.UUID, id uuid.UUID, req *dto.NoteNew) error
	DeleteAll(ctx context.Context, userId uuid.UUID, ids []uuid.UUID) error
}

type noteService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewNoteService(uowFactory unitofwork.RepositoryFactory) INoteService {
	return &noteService{
		uowFactory: uowFactory,
	}
}

func toNoteResponse(n *entity.Note) *dto.NoteResponse {
	return &dto.NoteResponse{
		Id:                n.Id,
		UserId:            n.UserId,
		Topic:             n.Topic,
		KeywordsQuestions: n.KeywordsQuestions,
		Notes:             n.Notes,
		Summary:           n.Summary,
		Version:           n.Version,
		CreatedAt:         n.CreatedAt,
		UpdatedAt:         n.UpdatedAt,
	}
}

func sortColumn(sortBy string) string {
	if sortBy == dto.SortByUpdatedAt {
		return "updated_at"
	}
	return "created_at"
}

// List pages through the caller's notes. Total is counted before skip and
// limit apply, so a skip past the end still reports the real total.
func (s *noteService) List(ctx context.Context, userId uuid.UUID, query *dto.ListNotesQuery) (*dto.ListNotesResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.NoteRepository()

	owned := specification.OwnedBy{UserID: userId}

	total, err := repo.Count(ctx, owned)
	if err != nil {
		return nil, err
	}

	notes, err := repo.FindAll(ctx,
		owned,
		specification.OrderBy{Field: sortColumn(query.SortBy), Desc: query.Order == dto.OrderDesc},
		specification.Pagination{Limit: query.Limit, Offset: query.Skip},
	)
	if err != nil {
		return nil, err
	}

	page := make([]*dto.NoteResponse, len(notes))
	for i, n := range notes {
		page[i] = toNoteResponse(n)
	}

	return &dto.ListNotesResponse{
		Skipped: query.Skip,
		Total:   total,
		Notes:   page,
	}, nil
}

func (s *noteService) Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, apperror.NewNotFound("Note is not found")
	}
	if note.UserId != userId {
		return nil, apperror.NewForbidden("user does not have access to requested note")
	}
	return toNoteResponse(note), nil
}

func (s *noteService) CreateAll(ctx context.Context, userId uuid.UUID, notes []dto.NoteNew) ([]*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	now := time.Now()
	entities := make([]*entity.Note, len(notes))
	for i, n := range notes {
		entities[i] = &entity.Note{
			Id:                uuid.New(),
			UserId:            userId,
			Topic:             n.Topic,
			KeywordsQuestions: n.KeywordsQuestions,
			Notes:             n.Notes,
			Summary:           n.Summary,
			Version:           1,
			CreatedAt:         now,
			UpdatedAt:         now,
		}
	}

	if err := uow.NoteRepository().CreateAll(ctx, entities); err != nil {
		return nil, err
	}

	created := make([]*dto.NoteResponse, len(entities))
	for i, n := range entities {
		created[i] = toNoteResponse(n)
	}
	return created, nil
}

// Update is a full replacement of the note content; ownership is checked
// against the stored record, never the payload.
func (s *noteService) Update(ctx context.Context, userId uuid.UUID, id uuid.UUID, req *dto.NoteNew) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.NoteRepository()

	note, err := repo.FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if note == nil {
		return apperror.NewNotFound("Note is not found")
	}
	if note.UserId != userId {
		return apperror.NewForbidden("user does not have access to requested note")
	}

	note.Topic = req.Topic
	note.KeywordsQuestions = req.KeywordsQuestions
	note.Notes = req.Notes
	note.Summary = req.Summary
	note.Version++
	note.UpdatedAt = time.Now()

	return repo.Update(ctx, note)
}

// DeleteAll removes a batch of notes or none at all. Existence of every
// id is settled before any ownership screening, so a missing id is always
// reported as NotFound even when other ids are unowned.
func (s *noteService) DeleteAll(ctx context.Context, userId uuid.UUID, ids []uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.NoteRepository()

	found, err := repo.FindAll(ctx, specification.ByIDs{IDs: ids})
	if err != nil {
		return err
	}

	if len(found) < len(ids) {
		foundIds := make(map[uuid.UUID]bool, len(found))
		for _, n := range found {
			foundIds[n.Id] = true
		}
		var missing []uuid.UUID
		for _, id := range ids {
			if !foundIds[id] {
				missing = append(missing, id)
			}
		}
		return apperror.NewNotFound("Note is not found", missing...)
	}

	var unowned []uuid.UUID
	for _, n := range found {
		if n.UserId != userId {
			unowned = append(unowned, n.Id)
		}
	}
	if len(unowned) > 0 {
		return apperror.NewForbidden("Note does not belong to user", unowned...)
	}

	// Owner scoping again at the store level, in case of concurrent
	// ownership-relevant changes between the screen and the delete.
	return repo.DeleteAllByIds(ctx, ids, userId)
}
