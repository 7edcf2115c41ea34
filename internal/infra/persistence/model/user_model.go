// Package model defines the GORM persistence models. They mirror tables and
// are mapped to and from pure domain entities at the repository boundary.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. The session token list is serialized
// into a jsonb column so the whole account, registry included, is written
// back in one row save.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	Name         string    `gorm:"type:varchar(100);not null"`
	Surname      string    `gorm:"type:varchar(100);not null"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string    `gorm:"type:varchar(100);not null"`
	Tokens       []string  `gorm:"type:jsonb;serializer:json"`
	Avatar       []byte    `gorm:"type:bytea"`
	AvatarKey    string    `gorm:"type:varchar(255)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
