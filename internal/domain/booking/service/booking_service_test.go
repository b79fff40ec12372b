package service

import (
	"errors"
	"testing"
	"time"

	"github.com/renzmar06/socialgolf-server/internal/domain/booking/model"
	"github.com/renzmar06/socialgolf-server/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) CreateService(service *model.Service) error {
	args := m.Called(service)
	return args.Error(0)
}

func (m *MockBookingRepository) GetServiceByID(id string) (*model.Service, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Service), args.Error(1)
}

func (m *MockBookingRepository) GetServices(offset, limit int) ([]model.Service, int64, error) {
	args := m.Called(offset, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]model.Service), args.Get(1).(int64), args.Error(2)
}

func (m *MockBookingRepository) UpdateService(id string, fields map[string]interface{}) (*model.Service, error) {
	args := m.Called(id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Service), args.Error(1)
}

func (m *MockBookingRepository) DeleteService(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockBookingRepository) CreateBooking(booking *model.Booking) error {
	args := m.Called(booking)
	return args.Error(0)
}

func (m *MockBookingRepository) GetBookingByID(id string) (*model.Booking, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetBookings(serviceID, status string, offset, limit int) ([]model.Booking, int64, error) {
	args := m.Called(serviceID, status, offset, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]model.Booking), args.Get(1).(int64), args.Error(2)
}

func (m *MockBookingRepository) UpdateBookingStatus(id string, status string) error {
	args := m.Called(id, status)
	return args.Error(0)
}

func TestCreateBooking(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	future := now.Add(48 * time.Hour)
	past := now.Add(-time.Hour)

	t.Run("creates a pending booking for an existing service", func(t *testing.T) {
		repo := new(MockBookingRepository)
		svc := NewBookingService(repo)

		repo.On("GetServiceByID", "svc-1").Return(&model.Service{Name: "Swing Lesson"}, nil)
		repo.On("CreateBooking", mock.MatchedBy(func(b *model.Booking) bool {
			return b.ServiceID == "svc-1" &&
				b.CustomerName == "Jordan Lee" &&
				b.CustomerEmail == "jordan@example.com" &&
				b.Status == model.BookingPending
		})).Return(nil)

		booking, err := svc.CreateBooking("svc-1", "Jordan Lee", "Jordan@Example.com ", "", &future, now)

		assert.NoError(t, err)
		assert.Equal(t, model.BookingPending, booking.Status)
		repo.AssertExpectations(t)
	})

	t.Run("rejects a booking in the past", func(t *testing.T) {
		repo := new(MockBookingRepository)
		svc := NewBookingService(repo)

		_, err := svc.CreateBooking("svc-1", "Jordan Lee", "jordan@example.com", "", &past, now)

		assert.ErrorIs(t, err, errs.ErrValidation)
		repo.AssertNotCalled(t, "CreateBooking", mock.Anything)
	})

	t.Run("rejects a missing scheduledAt", func(t *testing.T) {
		repo := new(MockBookingRepository)
		svc := NewBookingService(repo)

		_, err := svc.CreateBooking("svc-1", "Jordan Lee", "jordan@example.com", "", nil, now)

		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("returns not found when the service does not exist", func(t *testing.T) {
		repo := new(MockBookingRepository)
		svc := NewBookingService(repo)

		repo.On("GetServiceByID", "svc-missing").Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.CreateBooking("svc-missing", "Jordan Lee", "jordan@example.com", "", &future, now)

		assert.ErrorIs(t, err, errs.ErrNotFound)
	})
}

func TestSetBookingStatus(t *testing.T) {
	t.Run("accepts known statuses", func(t *testing.T) {
		repo := new(MockBookingRepository)
		svc := NewBookingService(repo)

		repo.On("UpdateBookingStatus", "bk-1", model.BookingConfirmed).Return(nil)

		err := svc.SetBookingStatus("bk-1", model.BookingConfirmed)

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("rejects unknown statuses", func(t *testing.T) {
		repo := new(MockBookingRepository)
		svc := NewBookingService(repo)

		err := svc.SetBookingStatus("bk-1", "archived")

		assert.ErrorIs(t, err, errs.ErrValidation)
		repo.AssertNotCalled(t, "UpdateBookingStatus", mock.Anything, mock.Anything)
	})

	t.Run("maps a missing booking to not found", func(t *testing.T) {
		repo := new(MockBookingRepository)
		svc := NewBookingService(repo)

		repo.On("UpdateBookingStatus", "bk-missing", model.BookingCancelled).Return(gorm.ErrRecordNotFound)

		err := svc.SetBookingStatus("bk-missing", model.BookingCancelled)

		assert.ErrorIs(t, err, errs.ErrNotFound)
	})
}

func TestCreateService(t *testing.T) {
	t.Run("rejects non-positive duration", func(t *testing.T) {
		repo := new(MockBookingRepository)
		svc := NewBookingService(repo)

		_, err := svc.CreateService("biz-1", "Club Fitting", "", 80, 0)

		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("propagates storage failures", func(t *testing.T) {
		repo := new(MockBookingRepository)
		svc := NewBookingService(repo)

		repo.On("CreateService", mock.Anything).Return(errors.New("connection refused"))

		_, err := svc.CreateService("biz-1", "Club Fitting", "", 80, 60)

		assert.ErrorIs(t, err, errs.ErrStorage)
	})
}
