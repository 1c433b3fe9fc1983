package entity

import (
	"time"

	"github.com/google/uuid"
)

type Note struct {
	Id                uuid.UUID
	UserId            uuid.UUID
	Topic             string
	KeywordsQuestions string
	Notes             string
	Summary           string
	Version           int64
	CreatedAt         time.Time
	// UpdatedAt equals CreatedAt until the first content update.
	UpdatedAt time.Time
}
