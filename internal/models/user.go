package models

import (
	"time"

	"github.com/google/uuid"
)

// internal/models/user.go
type User struct {
	ID    uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name  string    `gorm:"not null" json:"name"`
	Email string    `gorm:"uniqueIndex;not null" json:"email"`

	Password string `gorm:"not null" json:"-"`
	IsActive bool   `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// HAS ONE worker_profile (worker_profiles.user_id -> users.id)
	WorkerProfile *WorkerProfile `gorm:"foreignKey:UserID;references:ID" json:"worker_profile,omitempty"`
}
