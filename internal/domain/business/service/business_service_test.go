package service

import (
	"testing"

	"github.com/renzmar06/socialgolf-server/internal/domain/business/model"
	"github.com/renzmar06/socialgolf-server/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// MockBusinessRepository is a mock of BusinessRepository
type MockBusinessRepository struct {
	mock.Mock
}

func (m *MockBusinessRepository) Create(business *model.Business) error {
	args := m.Called(business)
	return args.Error(0)
}

func (m *MockBusinessRepository) GetByID(id string) (*model.Business, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Business), args.Error(1)
}

func (m *MockBusinessRepository) GetByEmail(email string) (*model.Business, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Business), args.Error(1)
}

func (m *MockBusinessRepository) Update(business *model.Business) error {
	args := m.Called(business)
	return args.Error(0)
}

func createTestBusiness(id, email, password string) *model.Business {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	b := &model.Business{
		Name:     "Fairway Nine Golf Club",
		Email:    email,
		Password: string(hash),
	}
	b.ID = id
	return b
}

func TestRegister(t *testing.T) {
	t.Run("New account registration success", func(t *testing.T) {
		mockRepo := new(MockBusinessRepository)
		service := NewBusinessService(mockRepo)

		mockRepo.On("GetByEmail", "pro@fairwaynine.com").Return(nil, gorm.ErrRecordNotFound)
		mockRepo.On("Create", mock.AnythingOfType("*model.Business")).Return(nil)

		business, token, err := service.Register("Fairway Nine Golf Club", "Pro@FairwayNine.com", "longenough")

		assert.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, "pro@fairwaynine.com", business.Email)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Duplicate email rejected", func(t *testing.T) {
		mockRepo := new(MockBusinessRepository)
		service := NewBusinessService(mockRepo)

		existing := createTestBusiness("b1", "pro@fairwaynine.com", "longenough")
		mockRepo.On("GetByEmail", "pro@fairwaynine.com").Return(existing, nil)

		_, _, err := service.Register("Another Club", "pro@fairwaynine.com", "longenough")

		assert.ErrorIs(t, err, ErrEmailTaken)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Short password fails validation", func(t *testing.T) {
		mockRepo := new(MockBusinessRepository)
		service := NewBusinessService(mockRepo)

		_, _, err := service.Register("Club", "pro@fairwaynine.com", "short")

		assert.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestLogin(t *testing.T) {
	t.Run("Valid credentials issue a token", func(t *testing.T) {
		mockRepo := new(MockBusinessRepository)
		service := NewBusinessService(mockRepo)

		existing := createTestBusiness("b1", "pro@fairwaynine.com", "longenough")
		mockRepo.On("GetByEmail", "pro@fairwaynine.com").Return(existing, nil)

		business, token, err := service.Login("pro@fairwaynine.com", "longenough")

		assert.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, "b1", business.ID)
	})

	t.Run("Wrong password is rejected", func(t *testing.T) {
		mockRepo := new(MockBusinessRepository)
		service := NewBusinessService(mockRepo)

		existing := createTestBusiness("b1", "pro@fairwaynine.com", "longenough")
		mockRepo.On("GetByEmail", "pro@fairwaynine.com").Return(existing, nil)

		_, _, err := service.Login("pro@fairwaynine.com", "wrongpass")

		assert.ErrorIs(t, err, ErrBadCredentials)
	})

	t.Run("Unknown email gets the same error as a wrong password", func(t *testing.T) {
		mockRepo := new(MockBusinessRepository)
		service := NewBusinessService(mockRepo)

		mockRepo.On("GetByEmail", "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)

		_, _, err := service.Login("nobody@example.com", "whatever")

		assert.ErrorIs(t, err, ErrBadCredentials)
	})
}

func TestUpdateProfile(t *testing.T) {
	t.Run("Only provided fields change", func(t *testing.T) {
		mockRepo := new(MockBusinessRepository)
		service := NewBusinessService(mockRepo)

		existing := createTestBusiness("b1", "pro@fairwaynine.com", "longenough")
		existing.Phone = "555-0100"

		mockRepo.On("GetByID", "b1").Return(existing, nil)
		mockRepo.On("Update", mock.AnythingOfType("*model.Business")).Return(nil)

		business, err := service.UpdateProfile("b1", "Fairway Eighteen", "", "", "")

		assert.NoError(t, err)
		assert.Equal(t, "Fairway Eighteen", business.Name)
		assert.Equal(t, "555-0100", business.Phone)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Unknown account is NotFound", func(t *testing.T) {
		mockRepo := new(MockBusinessRepository)
		service := NewBusinessService(mockRepo)

		mockRepo.On("GetByID", "missing").Return(nil, gorm.ErrRecordNotFound)

		_, err := service.GetProfile("missing")

		assert.ErrorIs(t, err, errs.ErrNotFound)
	})
}
