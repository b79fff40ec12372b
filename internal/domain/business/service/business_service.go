package service

import (
	"errors"
	"strings"

	"github.com/renzmar06/socialgolf-server/internal/domain/business/model"
	"github.com/renzmar06/socialgolf-server/internal/domain/business/repository"
	"github.com/renzmar06/socialgolf-server/pkg/errs"
	"github.com/renzmar06/socialgolf-server/pkg/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ErrEmailTaken surfaces a duplicate registration.
var ErrEmailTaken = errors.New("email already registered")

// ErrBadCredentials covers both unknown email and wrong password so the
// login endpoint cannot be used to probe accounts.
var ErrBadCredentials = errors.New("invalid email or password")

type BusinessService interface {
	Register(name, email, password string) (*model.Business, string, error)
	Login(email, password string) (*model.Business, string, error)
	GetProfile(id string) (*model.Business, error)
	UpdateProfile(id, name, phone, address, logo string) (*model.Business, error)
}

type businessService struct {
	repo repository.BusinessRepository
}

func NewBusinessService(repo repository.BusinessRepository) BusinessService {
	return &businessService{repo: repo}
}

func (s *businessService) Register(name, email, password string) (*model.Business, string, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	if name == "" || email == "" {
		return nil, "", errs.Validationf("name and email are required")
	}
	if len(password) < 8 {
		return nil, "", errs.Validationf("password must be at least 8 characters")
	}

	if _, err := s.repo.GetByEmail(email); err == nil {
		return nil, "", ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", errs.Storagef("lookup email: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	business := &model.Business{
		Name:     name,
		Email:    email,
		Password: string(hash),
	}
	if err := s.repo.Create(business); err != nil {
		return nil, "", errs.Storagef("create business: %v", err)
	}

	token, _, err := utils.GenerateToken(business.ID, business.Email, business.Name)
	if err != nil {
		return nil, "", err
	}
	return business, token, nil
}

func (s *businessService) Login(email, password string) (*model.Business, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	business, err := s.repo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrBadCredentials
		}
		return nil, "", errs.Storagef("lookup email: %v", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(business.Password), []byte(password)) != nil {
		return nil, "", ErrBadCredentials
	}

	token, _, err := utils.GenerateToken(business.ID, business.Email, business.Name)
	if err != nil {
		return nil, "", err
	}
	return business, token, nil
}

func (s *businessService) GetProfile(id string) (*model.Business, error) {
	business, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFoundf("business %s", id)
		}
		return nil, errs.Storagef("get business: %v", err)
	}
	return business, nil
}

func (s *businessService) UpdateProfile(id, name, phone, address, logo string) (*model.Business, error) {
	business, err := s.GetProfile(id)
	if err != nil {
		return nil, err
	}

	if name != "" {
		business.Name = strings.TrimSpace(name)
	}
	if phone != "" {
		business.Phone = phone
	}
	if address != "" {
		business.Address = address
	}
	if logo != "" {
		business.Logo = logo
	}

	if err := s.repo.Update(business); err != nil {
		return nil, errs.Storagef("update business: %v", err)
	}
	return business, nil
}
