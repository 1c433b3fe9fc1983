package model

import (
	"time"

	"github.com/google/uuid"
)

type Note struct {
	Id                uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId            uuid.UUID `gorm:"type:uuid;not null;index"`
	Topic             string    `gorm:"type:varchar(255);not null"`
	KeywordsQuestions string    `gorm:"type:text"`
	Notes             string    `gorm:"type:text"`
	Summary           string    `gorm:"type:text"`
	Version           int64     `gorm:"not null;default:1"`
	CreatedAt         time.Time `gorm:"not null;index"`
	// UpdatedAt equals CreatedAt at insert; the service layer owns the
	// stamp on every content update.
	UpdatedAt time.Time `gorm:"not null;index;autoUpdateTime:false"`
}

func (Note) TableName() string {
	return "notes"
}
