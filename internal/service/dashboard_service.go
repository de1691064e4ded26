package service

import (
	"context"

	"github.com/vibrantyoga/api/internal/models"
	"github.com/vibrantyoga/api/internal/repository"
)

const recentBookingsLimit = 10

type Dashboard struct {
	TotalUsers       int64            `json:"total_users"`
	TotalEvents      int64            `json:"total_events"`
	TotalBookings    int64            `json:"total_bookings"`
	PendingBookings  int64            `json:"pending_bookings"`
	ApprovedBookings int64            `json:"approved_bookings"`
	ApprovedRevenue  float64          `json:"approved_revenue"`
	RecentBookings   []models.Booking `json:"recent_bookings"`
}

type DashboardService interface {
	Aggregates(ctx context.Context) (*Dashboard, error)
}

type dashboardService struct {
	users    repository.UserRepository
	events   repository.EventRepository
	bookings repository.BookingRepository
}

func NewDashboardService(users repository.UserRepository, events repository.EventRepository, bookings repository.BookingRepository) DashboardService {
	return &dashboardService{users: users, events: events, bookings: bookings}
}

func (s *dashboardService) Aggregates(ctx context.Context) (*Dashboard, error) {
	dashboard := &Dashboard{}

	var err error
	if dashboard.TotalUsers, err = s.users.Count(ctx); err != nil {
		return nil, err
	}
	if dashboard.TotalEvents, err = s.events.Count(ctx); err != nil {
		return nil, err
	}
	if dashboard.TotalBookings, err = s.bookings.Count(ctx); err != nil {
		return nil, err
	}
	if dashboard.PendingBookings, err = s.bookings.CountByStatus(ctx, models.BookingPending); err != nil {
		return nil, err
	}
	if dashboard.ApprovedBookings, err = s.bookings.CountByStatus(ctx, models.BookingApproved); err != nil {
		return nil, err
	}
	if dashboard.ApprovedRevenue, err = s.bookings.SumAmountByStatus(ctx, models.BookingApproved); err != nil {
		return nil, err
	}
	if dashboard.RecentBookings, err = s.bookings.FindRecent(ctx, recentBookingsLimit); err != nil {
		return nil, err
	}

	return dashboard, nil
}
