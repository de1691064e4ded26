package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/vibrantyoga/api/internal/models"
)

// --- Mock UserRepository ---

type mockUserRepo struct {
	createFn      func(ctx context.Context, user *models.User) error
	findByEmailFn func(ctx context.Context, email string) (*models.User, error)
	findByIDFn    func(ctx context.Context, id uuid.UUID) (*models.User, error)
	findAllFn     func(ctx context.Context) ([]models.User, error)
	updateRoleFn  func(ctx context.Context, id uuid.UUID, role string) (int64, error)
}

func (m *mockUserRepo) Create(ctx context.Context, user *models.User) error {
	return m.createFn(ctx, user)
}
func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return m.findByEmailFn(ctx, email)
}
func (m *mockUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockUserRepo) FindAll(ctx context.Context) ([]models.User, error) {
	return m.findAllFn(ctx)
}
func (m *mockUserRepo) UpdateRole(ctx context.Context, id uuid.UUID, role string) (int64, error) {
	return m.updateRoleFn(ctx, id, role)
}
func (m *mockUserRepo) Count(ctx context.Context) (int64, error) { return 0, nil }

// --- Mock EventRepository ---

type mockEventRepo struct {
	createFn       func(ctx context.Context, event *models.Event) error
	findByIDFn     func(ctx context.Context, id uuid.UUID) (*models.Event, error)
	findAllFn      func(ctx context.Context) ([]models.Event, error)
	updateQRCodeFn func(ctx context.Context, id uuid.UUID, qrCodeBase64 string) (int64, error)
}

func (m *mockEventRepo) Create(ctx context.Context, event *models.Event) error {
	return m.createFn(ctx, event)
}
func (m *mockEventRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Event, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockEventRepo) FindAll(ctx context.Context) ([]models.Event, error) {
	return m.findAllFn(ctx)
}
func (m *mockEventRepo) UpdateQRCode(ctx context.Context, id uuid.UUID, qrCodeBase64 string) (int64, error) {
	return m.updateQRCodeFn(ctx, id, qrCodeBase64)
}
func (m *mockEventRepo) Count(ctx context.Context) (int64, error) { return 0, nil }

// --- Mock BookingRepository ---

type mockBookingRepo struct {
	createFn         func(ctx context.Context, booking *models.Booking) error
	findByIDFn       func(ctx context.Context, id uuid.UUID) (*models.Booking, error)
	findAllFn        func(ctx context.Context) ([]models.Booking, error)
	findByUserFn     func(ctx context.Context, userID uuid.UUID) ([]models.Booking, error)
	attachProofFn    func(ctx context.Context, id, userID uuid.UUID, proofBase64, utrNumber string) (int64, error)
	updateDecisionFn func(ctx context.Context, id uuid.UUID, status, adminNotes string, approvedAt *time.Time) error
}

func (m *mockBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	return m.createFn(ctx, booking)
}
func (m *mockBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockBookingRepo) FindAll(ctx context.Context) ([]models.Booking, error) {
	return m.findAllFn(ctx)
}
func (m *mockBookingRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]models.Booking, error) {
	return m.findByUserFn(ctx, userID)
}
func (m *mockBookingRepo) AttachProof(ctx context.Context, id, userID uuid.UUID, proofBase64, utrNumber string) (int64, error) {
	return m.attachProofFn(ctx, id, userID, proofBase64, utrNumber)
}
func (m *mockBookingRepo) UpdateDecision(ctx context.Context, id uuid.UUID, status, adminNotes string, approvedAt *time.Time) error {
	return m.updateDecisionFn(ctx, id, status, adminNotes, approvedAt)
}
func (m *mockBookingRepo) Count(ctx context.Context) (int64, error) { return 0, nil }
func (m *mockBookingRepo) CountByStatus(ctx context.Context, status string) (int64, error) {
	return 0, nil
}
func (m *mockBookingRepo) SumAmountByStatus(ctx context.Context, status string) (float64, error) {
	return 0, nil
}
func (m *mockBookingRepo) FindRecent(ctx context.Context, limit int) ([]models.Booking, error) {
	return nil, nil
}

// --- Mock Notifier ---

type sentMail struct {
	to      string
	subject string
	body    string
}

type mockNotifier struct {
	sent []sentMail
}

func (m *mockNotifier) Dispatch(to, subject, htmlBody string) {
	m.sent = append(m.sent, sentMail{to: to, subject: subject, body: htmlBody})
}
