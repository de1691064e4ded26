package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TierDaily   = "daily"
	TierWeekly  = "weekly"
	TierMonthly = "monthly"

	DeliveryOnline  = "online"
	DeliveryOffline = "offline"
	DeliveryHybrid  = "hybrid"
)

// PricingTable maps a booking tier to its price in rupees.
type PricingTable map[string]float64

type Event struct {
	ID              uuid.UUID    `gorm:"type:uuid;primary_key" json:"id"`
	Title           string       `gorm:"not null" json:"title"`
	Description     string       `gorm:"not null" json:"description"`
	Date            string       `gorm:"not null" json:"date"` // YYYY-MM-DD
	Time            string       `gorm:"not null" json:"time"` // HH:MM
	Pricing         PricingTable `gorm:"serializer:json;not null" json:"pricing"`
	QRCodeBase64    string       `json:"qr_code_base64,omitempty"`
	UPIID           string       `json:"upi_id,omitempty"`
	IsOnline        bool         `gorm:"not null;default:true" json:"is_online"`
	SessionLink     string       `json:"session_link,omitempty"`
	Capacity        int          `gorm:"not null;default:50" json:"capacity"`
	WaitlistEnabled bool         `gorm:"not null;default:true" json:"waitlist_enabled"`
	DeliveryMode    string       `gorm:"not null;default:'online'" json:"delivery_mode"`
	CreatedBy       uuid.UUID    `gorm:"type:uuid;not null" json:"created_by"`
	CreatedAt       time.Time    `json:"created_at"`
}

func (event *Event) BeforeCreate(tx *gorm.DB) (err error) {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	return
}

func ValidDeliveryMode(mode string) bool {
	return mode == DeliveryOnline || mode == DeliveryOffline || mode == DeliveryHybrid
}
