package dto

import (
	"time"

	"github.com/google/uuid"
)

// NoteNew is the caller-supplied note content, used for batch creation and
// full-replacement updates alike.
type NoteNew struct {
	Topic             string `json:"topic" validate:"required"`
	KeywordsQuestions string `json:"keywordsQuestions"`
	Notes             string `json:"notes"`
	Summary           string `json:"summary"`
}

type NoteResponse struct {
	Id                uuid.UUID `json:"id"`
	UserId            uuid.UUID `json:"user"`
	Topic             string    `json:"topic"`
	KeywordsQuestions string    `json:"keywordsQuestions"`
	Notes             string    `json:"notes"`
	Summary           string    `json:"summary"`
	Version           int64     `json:"version"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

const (
	SortByCreatedAt = "createdAt"
	SortByUpdatedAt = "updatedAt"

	OrderAsc  = "asc"
	OrderDesc = "desc"
)

type ListNotesQuery struct {
	SortBy string `query:"sortBy" validate:"required,oneof=createdAt updatedAt"`
	Order  string `query:"order" validate:"required,oneof=asc desc"`
	Skip   int    `query:"skip" validate:"min=0"`
	Limit  int    `query:"limit" validate:"required,min=1,max=100"`
}

type ListNotesResponse struct {
	Skipped int             `json:"skipped"`
	Total   int64           `json:"total"`
	Notes   []*NoteResponse `json:"notes"`
}

type DeleteNotesQuery struct {
	Ids []string `query:"_ids" validate:"required,min=1,dive,uuid"`
}
