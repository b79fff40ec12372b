package service

import (
	"errors"
	"strings"
	"time"

	"github.com/renzmar06/socialgolf-server/internal/domain/booking/model"
	"github.com/renzmar06/socialgolf-server/internal/domain/booking/repository"
	"github.com/renzmar06/socialgolf-server/pkg/errs"

	"gorm.io/gorm"
)

type BookingService interface {
	CreateService(businessID, name, description string, price float64, durationMinutes int) (*model.Service, error)
	ListServices(page, limit int) ([]model.Service, int64, error)
	UpdateService(id string, fields map[string]interface{}) (*model.Service, error)
	DeleteService(id string) error

	CreateBooking(serviceID, customerName, customerEmail, notes string, scheduledAt *time.Time, now time.Time) (*model.Booking, error)
	ListBookings(serviceID, status string, page, limit int) ([]model.Booking, int64, error)
	SetBookingStatus(id, status string) error
}

type bookingService struct {
	repo repository.BookingRepository
}

func NewBookingService(repo repository.BookingRepository) BookingService {
	return &bookingService{repo: repo}
}

func (s *bookingService) CreateService(businessID, name, description string, price float64, durationMinutes int) (*model.Service, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errs.Validationf("name is required")
	}
	if price < 0 {
		return nil, errs.Validationf("price must be non-negative")
	}
	if durationMinutes <= 0 {
		return nil, errs.Validationf("durationMinutes must be positive")
	}

	service := &model.Service{
		BusinessID:      businessID,
		Name:            strings.TrimSpace(name),
		Description:     description,
		Price:           price,
		DurationMinutes: durationMinutes,
	}
	if err := s.repo.CreateService(service); err != nil {
		return nil, errs.Storagef("create service: %v", err)
	}
	return service, nil
}

func (s *bookingService) ListServices(page, limit int) ([]model.Service, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}
	services, total, err := s.repo.GetServices((page-1)*limit, limit)
	if err != nil {
		return nil, 0, errs.Storagef("list services: %v", err)
	}
	return services, total, nil
}

func (s *bookingService) UpdateService(id string, fields map[string]interface{}) (*model.Service, error) {
	fields["updated_at"] = time.Now()
	service, err := s.repo.UpdateService(id, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFoundf("service %s", id)
		}
		return nil, errs.Storagef("update service: %v", err)
	}
	return service, nil
}

func (s *bookingService) DeleteService(id string) error {
	if err := s.repo.DeleteService(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NotFoundf("service %s", id)
		}
		return errs.Storagef("delete service: %v", err)
	}
	return nil
}

func (s *bookingService) CreateBooking(serviceID, customerName, customerEmail, notes string, scheduledAt *time.Time, now time.Time) (*model.Booking, error) {
	if strings.TrimSpace(customerName) == "" || strings.TrimSpace(customerEmail) == "" {
		return nil, errs.Validationf("customerName and customerEmail are required")
	}
	if scheduledAt == nil {
		return nil, errs.Validationf("scheduledAt is required")
	}
	if !scheduledAt.After(now) {
		return nil, errs.Validationf("scheduledAt must be in the future")
	}

	// The booked service must exist.
	if _, err := s.repo.GetServiceByID(serviceID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFoundf("service %s", serviceID)
		}
		return nil, errs.Storagef("get service: %v", err)
	}

	booking := &model.Booking{
		ServiceID:     serviceID,
		CustomerName:  strings.TrimSpace(customerName),
		CustomerEmail: strings.ToLower(strings.TrimSpace(customerEmail)),
		ScheduledAt:   *scheduledAt,
		Status:        model.BookingPending,
		Notes:         notes,
	}
	if err := s.repo.CreateBooking(booking); err != nil {
		return nil, errs.Storagef("create booking: %v", err)
	}
	return booking, nil
}

func (s *bookingService) ListBookings(serviceID, status string, page, limit int) ([]model.Booking, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}
	bookings, total, err := s.repo.GetBookings(serviceID, status, (page-1)*limit, limit)
	if err != nil {
		return nil, 0, errs.Storagef("list bookings: %v", err)
	}
	return bookings, total, nil
}

func (s *bookingService) SetBookingStatus(id, status string) error {
	switch status {
	case model.BookingPending, model.BookingConfirmed, model.BookingCancelled:
	default:
		return errs.Validationf("unknown booking status %q", status)
	}

	if err := s.repo.UpdateBookingStatus(id, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NotFoundf("booking %s", id)
		}
		return errs.Storagef("update booking: %v", err)
	}
	return nil
}
