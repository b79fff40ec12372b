package service

import (
	"errors"
	"strings"
	"time"

	"github.com/renzmar06/socialgolf-server/internal/domain/event/model"
	"github.com/renzmar06/socialgolf-server/internal/domain/event/repository"
	"github.com/renzmar06/socialgolf-server/pkg/errs"

	"gorm.io/gorm"
)

// CreateParams carries the event creation payload.
type CreateParams struct {
	BusinessID  string
	Title       string
	Description string
	Location    string
	StartsAt    *time.Time
	Capacity    int
	CoverImage  string
}

// UpdateParams is a partial patch: nil leaves a field untouched.
type UpdateParams struct {
	Title       *string
	Description *string
	Location    *string
	StartsAt    *time.Time
	Capacity    *int
	CoverImage  *string
}

type EventService interface {
	CreateEvent(params CreateParams) (*model.Event, error)
	GetEvent(id string) (*model.Event, error)
	ListEvents(keyword string, page, limit int) ([]model.Event, int64, error)
	UpdateEvent(id string, params UpdateParams) (*model.Event, error)
	DeleteEvent(id string) error
}

type eventService struct {
	repo repository.EventRepository
}

func NewEventService(repo repository.EventRepository) EventService {
	return &eventService{repo: repo}
}

func (s *eventService) CreateEvent(params CreateParams) (*model.Event, error) {
	if strings.TrimSpace(params.Title) == "" {
		return nil, errs.Validationf("title is required")
	}
	if params.StartsAt == nil {
		return nil, errs.Validationf("startsAt is required")
	}
	if params.Capacity < 0 {
		return nil, errs.Validationf("capacity must not be negative")
	}

	event := &model.Event{
		BusinessID:  params.BusinessID,
		Title:       strings.TrimSpace(params.Title),
		Description: params.Description,
		Location:    params.Location,
		StartsAt:    *params.StartsAt,
		Capacity:    params.Capacity,
		CoverImage:  params.CoverImage,
	}
	if err := s.repo.Create(event); err != nil {
		return nil, errs.Storagef("create event: %v", err)
	}
	return event, nil
}

func (s *eventService) GetEvent(id string) (*model.Event, error) {
	event, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFoundf("event %s", id)
		}
		return nil, errs.Storagef("get event: %v", err)
	}
	return event, nil
}

func (s *eventService) ListEvents(keyword string, page, limit int) ([]model.Event, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}
	events, total, err := s.repo.GetList(keyword, (page-1)*limit, limit)
	if err != nil {
		return nil, 0, errs.Storagef("list events: %v", err)
	}
	return events, total, nil
}

func (s *eventService) UpdateEvent(id string, params UpdateParams) (*model.Event, error) {
	fields := map[string]interface{}{}

	if params.Title != nil {
		if strings.TrimSpace(*params.Title) == "" {
			return nil, errs.Validationf("title must not be empty")
		}
		fields["title"] = strings.TrimSpace(*params.Title)
	}
	if params.Description != nil {
		fields["description"] = *params.Description
	}
	if params.Location != nil {
		fields["location"] = *params.Location
	}
	if params.StartsAt != nil {
		fields["starts_at"] = *params.StartsAt
	}
	if params.Capacity != nil {
		if *params.Capacity < 0 {
			return nil, errs.Validationf("capacity must not be negative")
		}
		fields["capacity"] = *params.Capacity
	}
	if params.CoverImage != nil {
		fields["cover_image"] = *params.CoverImage
	}
	fields["updated_at"] = time.Now()

	event, err := s.repo.Update(id, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFoundf("event %s", id)
		}
		return nil, errs.Storagef("update event: %v", err)
	}
	return event, nil
}

func (s *eventService) DeleteEvent(id string) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NotFoundf("event %s", id)
		}
		return errs.Storagef("delete event: %v", err)
	}
	return nil
}
