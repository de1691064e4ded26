package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vibrantyoga/api/internal/models"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Booking, error)
	FindAll(ctx context.Context) ([]models.Booking, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]models.Booking, error)
	AttachProof(ctx context.Context, id, userID uuid.UUID, proofBase64, utrNumber string) (int64, error)
	UpdateDecision(ctx context.Context, id uuid.UUID, status, adminNotes string, approvedAt *time.Time) error
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
	SumAmountByStatus(ctx context.Context, status string) (float64, error)
	FindRecent(ctx context.Context, limit int) ([]models.Booking, error)
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&booking).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindAll(ctx context.Context) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := r.db.WithContext(ctx).Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// AttachProof matches on id AND owner, so a stranger's booking id behaves
// exactly like a missing one.
func (r *bookingRepository) AttachProof(ctx context.Context, id, userID uuid.UUID, proofBase64, utrNumber string) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]interface{}{
			"payment_proof_base64": proofBase64,
			"utr_number":           utrNumber,
		})
	return result.RowsAffected, result.Error
}

func (r *bookingRepository) UpdateDecision(ctx context.Context, id uuid.UUID, status, adminNotes string, approvedAt *time.Time) error {
	updates := map[string]interface{}{"status": status}
	if adminNotes != "" {
		updates["admin_notes"] = adminNotes
	}
	if approvedAt != nil {
		updates["approved_at"] = approvedAt
	}

	return r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *bookingRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Booking{}).Count(&count).Error
	return count, err
}

func (r *bookingRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}

func (r *bookingRepository) SumAmountByStatus(ctx context.Context, status string) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("status = ?", status).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}

func (r *bookingRepository) FindRecent(ctx context.Context, limit int) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}
