package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"

	StatusActive    = "active"
	StatusSuspended = "suspended"
)

type User struct {
	ID             uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	Name           string            `gorm:"not null" json:"name"`
	Email          string            `gorm:"unique;not null" json:"email"`
	PasswordHash   string            `gorm:"not null" json:"-"`
	Role           string            `gorm:"not null;default:'user'" json:"role"`
	Status         string            `gorm:"not null;default:'active'" json:"status"`
	Preferences    datatypes.JSONMap `json:"preferences"`
	BookingSummary datatypes.JSONMap `json:"booking_summary"`
	CreatedAt      time.Time         `json:"created_at"`
}

func (user *User) BeforeCreate(tx *gorm.DB) (err error) {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	return
}

func ValidRole(role string) bool {
	return role == RoleUser || role == RoleAdmin
}
