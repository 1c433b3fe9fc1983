package mapper

import (
	"cornell-notepad-be/internal/entity"
	"cornell-notepad-be/internal/model"
)

type NoteMapper struct{}

func NewNoteMapper() *NoteMapper {
	return &NoteMapper{}
}

func (m *NoteMapper) ToEntity(n *model.Note) *entity.Note {
	if n == nil {
		return nil
	}

	return &entity.Note{
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

func (m *NoteMapper) ToModel(n *entity.Note) *model.Note {
	if n == nil {
		return nil
	}

	return &model.Note{
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

func (m *NoteMapper) ToEntities(notes []*model.Note) []*entity.Note {
	entities := make([]*entity.Note, len(notes))
	for i, n := range notes {
		entities[i] = m.ToEntity(n)
	}
	return entities
}

func (m *NoteMapper) ToModels(notes []*entity.Note) []*model.Note {
	models := make([]*model.Note, len(notes))
	for i, n := range notes {
		models[i] = m.ToModel(n)
	}
	return models
}
