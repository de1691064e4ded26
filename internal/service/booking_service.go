package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/vibrantyoga/api/internal/helpers"
	"github.com/vibrantyoga/api/internal/models"
	"github.com/vibrantyoga/api/internal/notifier"
	"github.com/vibrantyoga/api/internal/repository"
)

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrUnknownTier     = errors.New("unknown booking type for this event")
	ErrInvalidStatus   = errors.New("invalid booking status")
)

type BookingService interface {
	CreateBooking(ctx context.Context, user *models.User, eventID uuid.UUID, bookingType string) (*models.Booking, error)
	AttachPaymentProof(ctx context.Context, userID, bookingID uuid.UUID, imageBytes []byte, utrNumber string) error
	ListBookings(ctx context.Context, user *models.User) ([]models.Booking, error)
	Decide(ctx context.Context, bookingID uuid.UUID, status, adminNotes string) error
}

type bookingService struct {
	bookings repository.BookingRepository
	events   repository.EventRepository
	users    repository.UserRepository
	mail     notifier.Notifier
	log      *logrus.Logger
}

func NewBookingService(
	bookings repository.BookingRepository,
	events repository.EventRepository,
	users repository.UserRepository,
	mail notifier.Notifier,
	log *logrus.Logger,
) BookingService {
	return &bookingService{bookings: bookings, events: events, users: users, mail: mail, log: log}
}

func (s *bookingService) CreateBooking(ctx context.Context, user *models.User, eventID uuid.UUID, bookingType string) (*models.Booking, error) {
	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	// Snapshot the price now. Later edits to the event's pricing table must
	// never change what this booking owes.
	amount, ok := event.Pricing[bookingType]
	if !ok {
		return nil, ErrUnknownTier
	}

	booking := &models.Booking{
		UserID:      user.ID,
		EventID:     event.ID,
		BookingType: bookingType,
		Amount:      amount,
		Status:      models.BookingPending,
	}
	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, err
	}

	s.mail.Dispatch(user.Email,
		"Booking Confirmation - Vibrant Yoga",
		confirmationBody(user, event, bookingType, amount))

	return booking, nil
}

func (s *bookingService) AttachPaymentProof(ctx context.Context, userID, bookingID uuid.UUID, imageBytes []byte, utrNumber string) error {
	dataURI, err := helpers.ImageToDataURI(imageBytes)
	if err != nil {
		return ErrInvalidImage
	}

	affected, err := s.bookings.AttachProof(ctx, bookingID, userID, dataURI, utrNumber)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrBookingNotFound
	}
	return nil
}

func (s *bookingService) ListBookings(ctx context.Context, user *models.User) ([]models.Booking, error) {
	if user.Role == models.RoleAdmin {
		return s.bookings.FindAll(ctx)
	}
	return s.bookings.FindByUser(ctx, user.ID)
}

func (s *bookingService) Decide(ctx context.Context, bookingID uuid.UUID, status, adminNotes string) error {
	if !models.ValidBookingStatus(status) {
		return ErrInvalidStatus
	}

	booking, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBookingNotFound
		}
		return err
	}

	var approvedAt *time.Time
	if status == models.BookingApproved {
		now := time.Now().UTC()
		approvedAt = &now
	}

	if err := s.bookings.UpdateDecision(ctx, bookingID, status, adminNotes, approvedAt); err != nil {
		return err
	}

	s.notifyDecision(ctx, booking, status, adminNotes)
	return nil
}

// notifyDecision emails the booking owner about the outcome. The decision is
// already committed; anything that goes wrong here is logged and dropped.
func (s *bookingService) notifyDecision(ctx context.Context, booking *models.Booking, status, adminNotes string) {
	user, err := s.users.FindByID(ctx, booking.UserID)
	if err != nil {
		s.log.WithField("booking_id", booking.ID).WithError(err).Warn("skipping decision email: owner lookup failed")
		return
	}
	event, err := s.events.FindByID(ctx, booking.EventID)
	if err != nil {
		s.log.WithField("booking_id", booking.ID).WithError(err).Warn("skipping decision email: event lookup failed")
		return
	}

	switch status {
	case models.BookingApproved:
		s.mail.Dispatch(user.Email, "Booking Approved - Vibrant Yoga", approvalBody(user, event))
	case models.BookingRejected:
		s.mail.Dispatch(user.Email, "Booking Update - Vibrant Yoga", rejectionBody(user, event, adminNotes))
	}
}

func confirmationBody(user *models.User, event *models.Event, bookingType string, amount float64) string {
	return fmt.Sprintf(`
		<h2>Booking Submitted Successfully!</h2>
		<p>Dear %s,</p>
		<p>Your booking for "%s" has been submitted and is pending approval.</p>
		<p><strong>Event Details:</strong></p>
		<ul>
			<li>Date: %s</li>
			<li>Time: %s</li>
			<li>Plan: %s</li>
			<li>Price: ₹%.0f</li>
		</ul>
		<p>You will receive another email once your booking is approved.</p>
		<p>Thank you for choosing Vibrant Yoga!</p>`,
		user.Name, event.Title, event.Date, event.Time, bookingType, amount)
}

func approvalBody(user *models.User, event *models.Event) string {
	body := fmt.Sprintf(`
		<h2>Booking Approved!</h2>
		<p>Dear %s,</p>
		<p>Your booking for "%s" has been approved.</p>
		<p><strong>Event Details:</strong></p>
		<ul>
			<li>Date: %s</li>
			<li>Time: %s</li>
		</ul>`,
		user.Name, event.Title, event.Date, event.Time)

	if event.IsOnline && event.SessionLink != "" {
		body += fmt.Sprintf(`<p><strong>Join Link:</strong> <a href='%s'>%s</a></p>`, event.SessionLink, event.SessionLink)
	}

	return body + "<p>See you in class!</p>"
}

func rejectionBody(user *models.User, event *models.Event, adminNotes string) string {
	body := fmt.Sprintf(`
		<h2>Booking Update</h2>
		<p>Dear %s,</p>
		<p>Your booking for "%s" requires attention.</p>`,
		user.Name, event.Title)

	if adminNotes != "" {
		body += fmt.Sprintf(`<p><strong>Note:</strong> %s</p>`, adminNotes)
	}

	return body + "<p>Please contact us if you have any questions.</p>"
}
