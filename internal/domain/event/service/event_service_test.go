package service

import (
	"testing"
	"time"

	"github.com/renzmar06/socialgolf-server/internal/domain/event/model"
	"github.com/renzmar06/socialgolf-server/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) Create(event *model.Event) error {
	args := m.Called(event)
	return args.Error(0)
}

func (m *MockEventRepository) GetByID(id string) (*model.Event, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

func (m *MockEventRepository) GetList(keyword string, offset, limit int) ([]model.Event, int64, error) {
	args := m.Called(keyword, offset, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]model.Event), args.Get(1).(int64), args.Error(2)
}

func (m *MockEventRepository) Update(id string, fields map[string]interface{}) (*model.Event, error) {
	args := m.Called(id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

func (m *MockEventRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func TestCreateEvent(t *testing.T) {
	startsAt := time.Date(2026, 6, 20, 9, 0, 0, 0, time.UTC)

	t.Run("creates with trimmed title", func(t *testing.T) {
		repo := new(MockEventRepository)
		svc := NewEventService(repo)

		repo.On("Create", mock.MatchedBy(func(e *model.Event) bool {
			return e.Title == "Summer Scramble" && e.StartsAt.Equal(startsAt)
		})).Return(nil)

		event, err := svc.CreateEvent(CreateParams{
			BusinessID: "biz-1",
			Title:      "  Summer Scramble  ",
			StartsAt:   &startsAt,
			Capacity:   72,
		})

		assert.NoError(t, err)
		assert.Equal(t, 72, event.Capacity)
		repo.AssertExpectations(t)
	})

	t.Run("requires startsAt", func(t *testing.T) {
		repo := new(MockEventRepository)
		svc := NewEventService(repo)

		_, err := svc.CreateEvent(CreateParams{Title: "Summer Scramble"})

		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("rejects negative capacity", func(t *testing.T) {
		repo := new(MockEventRepository)
		svc := NewEventService(repo)

		_, err := svc.CreateEvent(CreateParams{
			Title:    "Summer Scramble",
			StartsAt: &startsAt,
			Capacity: -1,
		})

		assert.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestUpdateEvent(t *testing.T) {
	t.Run("patches only provided fields", func(t *testing.T) {
		repo := new(MockEventRepository)
		svc := NewEventService(repo)

		location := "Back nine"
		repo.On("Update", "evt-1", mock.MatchedBy(func(fields map[string]interface{}) bool {
			_, hasLocation := fields["location"]
			_, hasTitle := fields["title"]
			return hasLocation && !hasTitle
		})).Return(&model.Event{Location: location}, nil)

		event, err := svc.UpdateEvent("evt-1", UpdateParams{Location: &location})

		assert.NoError(t, err)
		assert.Equal(t, location, event.Location)
		repo.AssertExpectations(t)
	})

	t.Run("rejects blanking the title", func(t *testing.T) {
		repo := new(MockEventRepository)
		svc := NewEventService(repo)

		empty := " "
		_, err := svc.UpdateEvent("evt-1", UpdateParams{Title: &empty})

		assert.ErrorIs(t, err, errs.ErrValidation)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestDeleteEvent(t *testing.T) {
	t.Run("maps a missing event to not found", func(t *testing.T) {
		repo := new(MockEventRepository)
		svc := NewEventService(repo)

		repo.On("Delete", "evt-missing").Return(gorm.ErrRecordNotFound)

		assert.ErrorIs(t, svc.DeleteEvent("evt-missing"), errs.ErrNotFound)
	})
}
