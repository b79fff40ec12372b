package repository

import (
	"github.com/renzmar06/socialgolf-server/internal/domain/event/model"

	"gorm.io/gorm"
)

type EventRepository interface {
	Create(event *model.Event) error
	GetByID(id string) (*model.Event, error)
	GetList(keyword string, offset, limit int) ([]model.Event, int64, error)
	Update(id string, fields map[string]interface{}) (*model.Event, error)
	Delete(id string) error
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(event *model.Event) error {
	return r.db.Create(event).Error
}

func (r *eventRepository) GetByID(id string) (*model.Event, error) {
	var event model.Event
	if err := r.db.Where("id = ?", id).First(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) GetList(keyword string, offset, limit int) ([]model.Event, int64, error) {
	var events []model.Event
	var total int64

	query := r.db.Model(&model.Event{})
	if keyword != "" {
		pattern := "%" + keyword + "%"
		query = query.Where("title ILIKE ? OR location ILIKE ?", pattern, pattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&events).Error; err != nil {
		return nil, 0, err
	}
	return events, total, nil
}

func (r *eventRepository) Update(id string, fields map[string]interface{}) (*model.Event, error) {
	result := r.db.Model(&model.Event{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(id)
}

func (r *eventRepository) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&model.Event{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
