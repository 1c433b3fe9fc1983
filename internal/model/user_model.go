package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username     string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	FirstName    string    `gorm:"type:varchar(255);not null"`
	LastName     string    `gorm:"type:varchar(255);not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Version      int64     `gorm:"not null;default:1"`
	CreatedAt    time.Time `gorm:"not null"`
	// UpdatedAt equals CreatedAt at insert; the service layer owns the
	// stamp on every profile or password update.
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime:false"`
}

func (User) TableName() string {
	return "users"
}
