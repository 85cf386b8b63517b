package services

import (
	"errors"
	"fmt"

	"geopost-api/models"
	"geopost-api/repositories"

	"gorm.io/gorm"
)

type CategoryService interface {
	CreateCategory(req models.CategoryRequest) (*models.Category, error)
	GetCategories() ([]models.Category, error)
	UpdateCategory(id uint, req models.CategoryRequest) (*models.Category, error)
	DeleteCategory(id uint) error
}

type categoryService struct {
	categoryRepo repositories.CategoryRepository
}

func NewCategoryService(categoryRepo repositories.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

func (s *categoryService) CreateCategory(req models.CategoryRequest) (*models.Category, error) {
	_, err := s.categoryRepo.GetByName(req.Name)
	if err == nil {
		return nil, fmt.Errorf("category name taken: %w", models.ErrConflict)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	category := &models.Category{Name: req.Name}
	if err := s.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) GetCategories() ([]models.Category, error) {
	return s.categoryRepo.GetAll()
}

func (s *categoryService) UpdateCategory(id uint, req models.CategoryRequest) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return nil, notFoundOr(err)
	}

	category.Name = req.Name
	if err := s.categoryRepo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory detaches referencing posts (category_id goes NULL at the
// store level) rather than refusing or cascading into post deletion.
func (s *categoryService) DeleteCategory(id uint) error {
	if _, err := s.categoryRepo.GetByID(id); err != nil {
		return notFoundOr(err)
	}
	return s.categoryRepo.Delete(id)
}
