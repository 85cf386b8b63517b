package services

import (
	"errors"

	"geopost-api/models"
	"geopost-api/repositories"

	"gorm.io/gorm"
)

type UserService interface {
	GetUsers() ([]models.User, error)
	GetUser(id uint) (*models.User, error)
	UpdateUser(id uint, req models.UserUpdateRequest) (*models.User, error)
	DeleteUser(id uint) error
	SetVIP(id uint, vip bool) (*models.User, error)
}

type userService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetUsers() ([]models.User, error) {
	return s.userRepo.GetAll()
}

func (s *userService) GetUser(id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, notFoundOr(err)
	}
	return user, nil
}

// UpdateUser applies only the fields present in the request; absent
// fields keep their prior values.
func (s *userService) UpdateUser(id uint, req models.UserUpdateRequest) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, notFoundOr(err)
	}

	if req.FirstName != nil {
		user.FirstName = req.FirstName
	}
	if req.LastName != nil {
		user.LastName = req.LastName
	}
	if req.Email != nil {
		user.Email = *req.Email
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) DeleteUser(id uint) error {
	if _, err := s.userRepo.GetByID(id); err != nil {
		return notFoundOr(err)
	}
	return s.userRepo.Delete(id)
}

func (s *userService) SetVIP(id uint, vip bool) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, notFoundOr(err)
	}

	user.IsVIP = vip
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func notFoundOr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.ErrNotFound
	}
	return err
}
