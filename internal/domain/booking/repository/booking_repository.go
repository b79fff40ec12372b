package repository

import (
	"github.com/renzmar06/socialgolf-server/internal/domain/booking/model"

	"gorm.io/gorm"
)

type BookingRepository interface {
	CreateService(service *model.Service) error
	GetServiceByID(id string) (*model.Service, error)
	GetServices(offset, limit int) ([]model.Service, int64, error)
	UpdateService(id string, fields map[string]interface{}) (*model.Service, error)
	DeleteService(id string) error

	CreateBooking(booking *model.Booking) error
	GetBookingByID(id string) (*model.Booking, error)
	GetBookings(serviceID, status string, offset, limit int) ([]model.Booking, int64, error)
	UpdateBookingStatus(id string, status string) error
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

// --- Service ---

func (r *bookingRepository) CreateService(service *model.Service) error {
	return r.db.Create(service).Error
}

func (r *bookingRepository) GetServiceByID(id string) (*model.Service, error) {
	var service model.Service
	if err := r.db.Where("id = ?", id).First(&service).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *bookingRepository) GetServices(offset, limit int) ([]model.Service, int64, error) {
	var services []model.Service
	var total int64

	query := r.db.Model(&model.Service{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&services).Error; err != nil {
		return nil, 0, err
	}
	return services, total, nil
}

func (r *bookingRepository) UpdateService(id string, fields map[string]interface{}) (*model.Service, error) {
	result := r.db.Model(&model.Service{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetServiceByID(id)
}

func (r *bookingRepository) DeleteService(id string) error {
	result := r.db.Where("id = ?", id).Delete(&model.Service{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// --- Booking ---

func (r *bookingRepository) CreateBooking(booking *model.Booking) error {
	return r.db.Create(booking).Error
}

func (r *bookingRepository) GetBookingByID(id string) (*model.Booking, error) {
	var booking model.Booking
	if err := r.db.Where("id = ?", id).First(&booking).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) GetBookings(serviceID, status string, offset, limit int) ([]model.Booking, int64, error) {
	var bookings []model.Booking
	var total int64

	query := r.db.Model(&model.Booking{})
	if serviceID != "" {
		query = query.Where("service_id = ?", serviceID)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&bookings).Error; err != nil {
		return nil, 0, err
	}
	return bookings, total, nil
}

func (r *bookingRepository) UpdateBookingStatus(id string, status string) error {
	result := r.db.Model(&model.Booking{}).Where("id = ?", id).Updates(map[string]interface{}{"status": status})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
