package service

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/vibrantyoga/api/internal/models"
)

func silentLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	img.Set(2, 2, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func yogaEvent() *models.Event {
	return &models.Event{
		ID:    uuid.New(),
		Title: "Morning Vinyasa",
		Date:  "2026-09-15",
		Time:  "07:00",
		Pricing: models.PricingTable{
			models.TierDaily:   500,
			models.TierWeekly:  2000,
			models.TierMonthly: 6000,
		},
		IsOnline:    true,
		SessionLink: "https://meet.example.com/vinyasa",
	}
}

func member() *models.User {
	return &models.User{
		ID:    uuid.New(),
		Name:  "Alice",
		Email: "alice@example.com",
		Role:  models.RoleUser,
	}
}

func TestCreateBooking_AmountSnapshot(t *testing.T) {
	event := yogaEvent()
	events := &mockEventRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*models.Event, error) {
			return event, nil
		},
	}
	bookings := &mockBookingRepo{
		createFn: func(ctx context.Context, booking *models.Booking) error {
			booking.ID = uuid.New()
			return nil
		},
	}
	mail := &mockNotifier{}

	svc := NewBookingService(bookings, events, &mockUserRepo{}, mail, silentLogger())
	booking, err := svc.CreateBooking(context.Background(), member(), event.ID, models.TierWeekly)

	require.NoError(t, err)
	assert.Equal(t, float64(2000), booking.Amount)
	assert.Equal(t, models.BookingPending, booking.Status)
	assert.Equal(t, models.TierWeekly, booking.BookingType)

	// Later pricing edits must not touch the snapshot.
	event.Pricing[models.TierWeekly] = 9999
	assert.Equal(t, float64(2000), booking.Amount)
}

func TestCreateBooking_ConfirmationEmail(t *testing.T) {
	event := yogaEvent()
	events := &mockEventRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*models.Event, error) {
			return event, nil
		},
	}
	bookings := &mockBookingRepo{
		createFn: func(ctx context.Context, booking *models.Booking) error { return nil },
	}
	mail := &mockNotifier{}

	svc := NewBookingService(bookings, events, &mockUserRepo{}, mail, silentLogger())
	_, err := svc.CreateBooking(context.Background(), member(), event.ID, models.TierDaily)

	require.NoError(t, err)
	require.Len(t, mail.sent, 1)
	assert.Equal(t, "alice@example.com", mail.sent[0].to)
	assert.Contains(t, mail.sent[0].subject, "Booking Confirmation")
	assert.Contains(t, mail.sent[0].body, "Morning Vinyasa")
	assert.Contains(t, mail.sent[0].body, "₹500")
}

func TestCreateBooking_UnknownTier(t *testing.T) {
	event := yogaEvent()
	events := &mockEventRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*models.Event, error) {
			return event, nil
		},
	}
	createCalled := false
	bookings := &mockBookingRepo{
		createFn: func(ctx context.Context, booking *models.Booking) error {
			createCalled = true
			return nil
		},
	}
	mail := &mockNotifier{}

	svc := NewBookingService(bookings, events, &mockUserRepo{}, mail, silentLogger())
	_, err := svc.CreateBooking(context.Background(), member(), event.ID, "yearly")

	assert.ErrorIs(t, err, ErrUnknownTier)
	assert.False(t, createCalled, "no record may be persisted for an unknown tier")
	assert.Empty(t, mail.sent)
}

func TestCreateBooking_EventMissing(t *testing.T) {
	events := &mockEventRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*models.Event, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	svc := NewBookingService(&mockBookingRepo{}, events, &mockUserRepo{}, &mockNotifier{}, silentLogger())
	_, err := svc.CreateBooking(context.Background(), member(), uuid.New(), models.TierDaily)

	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestAttachPaymentProof_Success(t *testing.T) {
	var gotProof, gotUTR string
	bookings := &mockBookingRepo{
		attachProofFn: func(ctx context.Context, id, userID uuid.UUID, proofBase64, utrNumber string) (int64, error) {
			gotProof = proofBase64
			gotUTR = utrNumber
			return 1, nil
		},
	}

	svc := NewBookingService(bookings, &mockEventRepo{}, &mockUserRepo{}, &mockNotifier{}, silentLogger())
	err := svc.AttachPaymentProof(context.Background(), uuid.New(), uuid.New(), pngBytes(t), "UTR123456")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(gotProof, "data:image/png;base64,"))
	assert.Equal(t, "UTR123456", gotUTR)
}

func TestAttachPaymentProof_NotOwner(t *testing.T) {
	bookings := &mockBookingRepo{
		attachProofFn: func(ctx context.Context, id, userID uuid.UUID, proofBase64, utrNumber string) (int64, error) {
			return 0, nil // someone else's booking matches nothing
		},
	}

	svc := NewBookingService(bookings, &mockEventRepo{}, &mockUserRepo{}, &mockNotifier{}, silentLogger())
	err := svc.AttachPaymentProof(context.Background(), uuid.New(), uuid.New(), pngBytes(t), "UTR123456")

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestAttachPaymentProof_BadImage(t *testing.T) {
	attachCalled := false
	bookings := &mockBookingRepo{
		attachProofFn: func(ctx context.Context, id, userID uuid.UUID, proofBase64, utrNumber string) (int64, error) {
			attachCalled = true
			return 1, nil
		},
	}

	svc := NewBookingService(bookings, &mockEventRepo{}, &mockUserRepo{}, &mockNotifier{}, silentLogger())
	err := svc.AttachPaymentProof(context.Background(), uuid.New(), uuid.New(), []byte("not an image"), "UTR123456")

	assert.ErrorIs(t, err, ErrInvalidImage)
	assert.False(t, attachCalled)
}

func TestListBookings_RoleScoped(t *testing.T) {
	all := []models.Booking{{ID: uuid.New()}, {ID: uuid.New()}, {ID: uuid.New()}}
	alice := member()
	mine := []models.Booking{{ID: uuid.New(), UserID: alice.ID}}

	bookings := &mockBookingRepo{
		findAllFn: func(ctx context.Context) ([]models.Booking, error) { return all, nil },
		findByUserFn: func(ctx context.Context, userID uuid.UUID) ([]models.Booking, error) {
			assert.Equal(t, alice.ID, userID)
			return mine, nil
		},
	}

	svc := NewBookingService(bookings, &mockEventRepo{}, &mockUserRepo{}, &mockNotifier{}, silentLogger())

	got, err := svc.ListBookings(context.Background(), alice)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	admin := &models.User{ID: uuid.New(), Role: models.RoleAdmin}
	got, err = svc.ListBookings(context.Background(), admin)
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func decisionFixture(event *models.Event, owner *models.User, booking *models.Booking) (*mockBookingRepo, *mockEventRepo, *mockUserRepo) {
	bookings := &mockBookingRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
			return booking, nil
		},
	}
	events := &mockEventRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*models.Event, error) {
			return event, nil
		},
	}
	users := &mockUserRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*models.User, error) {
			return owner, nil
		},
	}
	return bookings, events, users
}

func TestDecide_ApprovedSetsTimestamp(t *testing.T) {
	event := yogaEvent()
	owner := member()
	booking := &models.Booking{ID: uuid.New(), UserID: owner.ID, EventID: event.ID, Status: models.BookingPending}

	bookings, events, users := decisionFixture(event, owner, booking)
	var gotApprovedAt *time.Time
	bookings.updateDecisionFn = func(ctx context.Context, id uuid.UUID, status, adminNotes string, approvedAt *time.Time) error {
		gotApprovedAt = approvedAt
		return nil
	}
	mail := &mockNotifier{}

	svc := NewBookingService(bookings, events, users, mail, silentLogger())
	err := svc.Decide(context.Background(), booking.ID, models.BookingApproved, "ok")

	require.NoError(t, err)
	require.NotNil(t, gotApprovedAt)
	assert.WithinDuration(t, time.Now().UTC(), *gotApprovedAt, time.Minute)

	require.Len(t, mail.sent, 1)
	assert.Contains(t, mail.sent[0].subject, "Booking Approved")
	assert.Contains(t, mail.sent[0].body, event.SessionLink)
}

func TestDecide_RejectedLeavesTimestampNil(t *testing.T) {
	event := yogaEvent()
	owner := member()
	booking := &models.Booking{ID: uuid.New(), UserID: owner.ID, EventID: event.ID, Status: models.BookingPending}

	bookings, events, users := decisionFixture(event, owner, booking)
	gotApprovedAt := &time.Time{}
	bookings.updateDecisionFn = func(ctx context.Context, id uuid.UUID, status, adminNotes string, approvedAt *time.Time) error {
		gotApprovedAt = approvedAt
		return nil
	}
	mail := &mockNotifier{}

	svc := NewBookingService(bookings, events, users, mail, silentLogger())
	err := svc.Decide(context.Background(), booking.ID, models.BookingRejected, "payment proof unreadable")

	require.NoError(t, err)
	assert.Nil(t, gotApprovedAt)

	require.Len(t, mail.sent, 1)
	assert.Contains(t, mail.sent[0].subject, "Booking Update")
	assert.Contains(t, mail.sent[0].body, "payment proof unreadable")
}

func TestDecide_InvalidStatus(t *testing.T) {
	svc := NewBookingService(&mockBookingRepo{}, &mockEventRepo{}, &mockUserRepo{}, &mockNotifier{}, silentLogger())
	err := svc.Decide(context.Background(), uuid.New(), "cancelled", "")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestDecide_BookingMissing(t *testing.T) {
	bookings := &mockBookingRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	svc := NewBookingService(bookings, &mockEventRepo{}, &mockUserRepo{}, &mockNotifier{}, silentLogger())
	err := svc.Decide(context.Background(), uuid.New(), models.BookingApproved, "")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestDecide_EmailFailureDoesNotSurface(t *testing.T) {
	booking := &models.Booking{ID: uuid.New(), UserID: uuid.New(), EventID: uuid.New(), Status: models.BookingPending}
	bookings := &mockBookingRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
			return booking, nil
		},
		updateDecisionFn: func(ctx context.Context, id uuid.UUID, status, adminNotes string, approvedAt *time.Time) error {
			return nil
		},
	}
	// Owner row is gone; the email step must be skipped, not fail the decision.
	users := &mockUserRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*models.User, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	svc := NewBookingService(bookings, &mockEventRepo{}, users, &mockNotifier{}, silentLogger())
	err := svc.Decide(context.Background(), booking.ID, models.BookingApproved, "")

	assert.NoError(t, err)
}
