package model

import (
	"time"

	"github.com/google/uuid"
)

// ApartmentModel mirrors the 'apartments' table.
type ApartmentModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Address   string    `gorm:"type:varchar(255);not null"`
	Rent      float64   `gorm:"not null"`
	Bedrooms  int       `gorm:"not null"`
	Bathrooms float64   `gorm:"not null"`
	Contact   string    `gorm:"type:varchar(100)"`
	Available string    `gorm:"type:varchar(255)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ApartmentModel) TableName() string {
	return "apartments"
}
