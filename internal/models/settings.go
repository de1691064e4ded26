package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SMTPSettings is a single-row collection: the active mail relay configuration.
type SMTPSettings struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	MailerName string    `gorm:"not null" json:"mailer_name"`
	Host       string    `gorm:"not null" json:"host"`
	Port       int       `gorm:"not null" json:"port"`
	Username   string    `gorm:"not null" json:"username"`
	Email      string    `gorm:"not null" json:"email"`
	Encryption string    `gorm:"not null;default:'SSL'" json:"encryption"`
	Password   string    `gorm:"not null" json:"password"`
}

func (settings *SMTPSettings) BeforeCreate(tx *gorm.DB) (err error) {
	if settings.ID == uuid.Nil {
		settings.ID = uuid.New()
	}
	return
}
