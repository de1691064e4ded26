package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	BookingPending  = "pending"
	BookingApproved = "approved"
	BookingRejected = "rejected"
)

type Booking struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID             uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	EventID            uuid.UUID  `gorm:"type:uuid;not null;index" json:"event_id"`
	BookingType        string     `gorm:"not null" json:"booking_type"`
	Amount             float64    `gorm:"not null" json:"amount"`
	PaymentProofBase64 string     `json:"payment_proof_base64,omitempty"`
	UTRNumber          string     `json:"utr_number,omitempty"`
	Status             string     `gorm:"not null;default:'pending'" json:"status"`
	AdminNotes         string     `json:"admin_notes,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	ApprovedAt         *time.Time `json:"approved_at,omitempty"`
}

func (booking *Booking) BeforeCreate(tx *gorm.DB) (err error) {
	if booking.ID == uuid.Nil {
		booking.ID = uuid.New()
	}
	return
}

func ValidBookingStatus(status string) bool {
	switch status {
	case BookingPending, BookingApproved, BookingRejected:
		return true
	}
	return false
}
