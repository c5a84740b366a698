package model

import (
	"time"

	"github.com/google/uuid"
)

// AccountModel mirrors the 'accounts' table. PostgreSQL generates UUIDs via gen_random_uuid().
type AccountModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	FullName     string    `gorm:"type:varchar(100);not null"`
	Username     string    `gorm:"type:varchar(100);not null"`
	PasswordHash string    `gorm:"type:varchar(72);not null"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}
