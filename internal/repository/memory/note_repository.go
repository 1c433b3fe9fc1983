package memory

import (
	"context"
	"sort"
	"sync"

	"cornell-notepad-be/internal/entity"
	"cornell-notepad-be/internal/repository/contract"
	"cornell-notepad-be/internal/repository/specification"

	"github.com/google/uuid"
)

// NoteRepository is an in-memory double for contract.NoteRepository.
type NoteRepository struct {
	mu    sync.RWMutex
	notes map[uuid.UUID]entity.Note
}

func NewNoteRepository() *NoteRepository {
	return &NoteRepository{
		notes: make(map[uuid.UUID]entity.Note),
	}
}

var _ contract.NoteRepository = (*NoteRepository)(nil)

func matchNote(n *entity.Note, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if n.Id != s.ID {
				return false
			}
		case specification.ByIDs:
			found := false
			for _, id := range s.IDs {
				if n.Id == id {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		case specification.OwnedBy:
			if n.UserId != s.UserID {
				return false
			}
		}
	}
	return true
}

func sortNotes(notes []*entity.Note, order specification.OrderBy) {
	timestamp := func(n *entity.Note) int64 {
		if order.Field == "updated_at" {
			return n.UpdatedAt.UnixNano()
		}
		return n.CreatedAt.UnixNano()
	}
	sort.SliceStable(notes, func(i, j int) bool {
		if order.Desc {
			return timestamp(notes[i]) > timestamp(notes[j])
		}
		return timestamp(notes[i]) < timestamp(notes[j])
	})
}

func (r *NoteRepository) CreateAll(ctx context.Context, notes []*entity.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range notes {
		r.notes[n.Id] = *n
	}
	return nil
}

func (r *NoteRepository) Update(ctx context.Context, note *entity.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notes[note.Id] = *note
	return nil
}

func (r *NoteRepository) DeleteAllByIds(ctx context.Context, ids []uuid.UUID, userId uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range ids {
		if n, ok := r.notes[id]; ok && n.UserId == userId {
			delete(r.notes, id)
		}
	}
	return nil
}

func (r *NoteRepository) DeleteAllByUserId(ctx context.Context, userId uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, n := range r.notes {
		if n.UserId == userId {
			delete(r.notes, id)
		}
	}
	return nil
}

func (r *NoteRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, n := range r.notes {
		if matchNote(&n, specs) {
			found := n
			return &found, nil
		}
	}
	return nil, nil
}

func (r *NoteRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var filters []specification.Specification
	var order *specification.OrderBy
	var page *specification.Pagination
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.OrderBy:
			o := s
			order = &o
		case specification.Pagination:
			p := s
			page = &p
		default:
			filters = append(filters, spec)
		}
	}

	var result []*entity.Note
	for _, n := range r.notes {
		if matchNote(&n, filters) {
			found := n
			result = append(result, &found)
		}
	}

	if order != nil {
		sortNotes(result, *order)
	}

	if page != nil {
		if page.Offset >= len(result) {
			return nil, nil
		}
		result = result[page.Offset:]
		if page.Limit > 0 && page.Limit < len(result) {
			result = result[:page.Limit]
		}
	}

	return result, nil
}

func (r *NoteRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var count int64
	for _, n := range r.notes {
		if matchNote(&n, specs) {
			count++
		}
	}
	return count, nil
}
