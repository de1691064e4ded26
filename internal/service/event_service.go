package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"
	"gorm.io/gorm"

	"github.com/vibrantyoga/api/internal/helpers"
	"github.com/vibrantyoga/api/internal/models"
	"github.com/vibrantyoga/api/internal/repository"
)

var (
	ErrEventNotFound       = errors.New("event not found")
	ErrInvalidPricing      = errors.New("tier prices must be non-negative")
	ErrInvalidDeliveryMode = errors.New("invalid delivery mode")
	ErrInvalidImage        = errors.New("file is not a valid image")
)

type CreateEventInput struct {
	Title        string
	Description  string
	Date         string
	Time         string
	DailyPrice   float64
	WeeklyPrice  float64
	MonthlyPrice float64
	UPIID        string
	IsOnline     bool
	SessionLink  string
	Capacity     int
	DeliveryMode string
}

type EventService interface {
	CreateEvent(ctx context.Context, createdBy uuid.UUID, input CreateEventInput) (*models.Event, error)
	GetEvent(ctx context.Context, id uuid.UUID) (*models.Event, error)
	ListEvents(ctx context.Context) ([]models.Event, error)
	AttachQRCode(ctx context.Context, eventID uuid.UUID, imageBytes []byte) error
}

type eventService struct {
	events repository.EventRepository
}

func NewEventService(events repository.EventRepository) EventService {
	return &eventService{events: events}
}

func (s *eventService) CreateEvent(ctx context.Context, createdBy uuid.UUID, input CreateEventInput) (*models.Event, error) {
	if input.DailyPrice < 0 || input.WeeklyPrice < 0 || input.MonthlyPrice < 0 {
		return nil, ErrInvalidPricing
	}
	if !models.ValidDeliveryMode(input.DeliveryMode) {
		return nil, ErrInvalidDeliveryMode
	}

	event := &models.Event{
		Title:       input.Title,
		Description: input.Description,
		Date:        input.Date,
		Time:        input.Time,
		Pricing: models.PricingTable{
			models.TierDaily:   input.DailyPrice,
			models.TierWeekly:  input.WeeklyPrice,
			models.TierMonthly: input.MonthlyPrice,
		},
		UPIID:           input.UPIID,
		IsOnline:        input.IsOnline,
		SessionLink:     input.SessionLink,
		Capacity:        input.Capacity,
		WaitlistEnabled: true,
		DeliveryMode:    input.DeliveryMode,
		CreatedBy:       createdBy,
	}

	// A payment QR can be uploaded later; until then, derive one from the UPI
	// id so the event is payable from the moment it is published.
	if input.UPIID != "" {
		if png, err := qrcode.Encode(fmt.Sprintf("upi://pay?pa=%s", input.UPIID), qrcode.Medium, 256); err == nil {
			event.QRCodeBase64 = helpers.PNGToDataURI(png)
		}
	}

	if err := s.events.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *eventService) GetEvent(ctx context.Context, id uuid.UUID) (*models.Event, error) {
	event, err := s.events.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return event, nil
}

func (s *eventService) ListEvents(ctx context.Context) ([]models.Event, error) {
	return s.events.FindAll(ctx)
}

func (s *eventService) AttachQRCode(ctx context.Context, eventID uuid.UUID, imageBytes []byte) error {
	dataURI, err := helpers.ImageToDataURI(imageBytes)
	if err != nil {
		return ErrInvalidImage
	}

	affected, err := s.events.UpdateQRCode(ctx, eventID, dataURI)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrEventNotFound
	}
	return nil
}
