package service

import (
	"errors"

	"github.com/granitdvor/monument-backend/internal/app/model"
	"github.com/granitdvor/monument-backend/internal/app/repository"
	"github.com/granitdvor/monument-backend/pkg/logger"
	"gorm.io/gorm"
)

type CategoryService interface {
	ListCategories() ([]model.Category, error)
	GetAllCategories() ([]model.Category, error)
	GetCategoryByID(id uint) (*model.Category, error)
	CreateCategory(category *model.Category) (map[string]string, error)
	UpdateCategory(category *model.Category) (map[string]string, error)
	DeleteCategory(id uint) error
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryService(categoryRepo repository.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

// ListCategories returns categories visible on the public storefront
func (s *categoryService) ListCategories() ([]model.Category, error) {
	categories, err := s.categoryRepo.FindActive()
	if err != nil {
		logger.Error("Failed to list categories", err)
		return nil, err
	}
	return categories, nil
}

// GetAllCategories includes deactivated categories, for the admin back office
func (s *categoryService) GetAllCategories() ([]model.Category, error) {
	categories, err := s.categoryRepo.FindAll()
	if err != nil {
		logger.Error("Failed to list all categories", err)
		return nil, err
	}
	return categories, nil
}

func (s *categoryService) GetCategoryByID(id uint) (*model.Category, error) {
	category, err := s.categoryRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Category not found", map[string]interface{}{
				"category_id": id,
			})
			return nil, ErrCategoryNotFound
		}
		logger.Error("Failed to fetch category", err, map[string]interface{}{
			"category_id": id,
		})
		return nil, err
	}
	return category, nil
}

func (s *categoryService) CreateCategory(category *model.Category) (map[string]string, error) {
	if problems := category.Validate(); len(problems) > 0 {
		logger.Warn("Category failed validation", map[string]interface{}{
			"name":   category.Name,
			"fields": problems,
		})
		return problems, ErrCategoryInvalid
	}

	category.IsActive = true

	logger.Info("Creating new category", map[string]interface{}{
		"name": category.Name,
	})

	if err := s.categoryRepo.Create(category); err != nil {
		logger.Error("Failed to create category", err, map[string]interface{}{
			"name": category.Name,
		})
		return nil, err
	}

	logger.Info("Category created successfully", map[string]interface{}{
		"category_id": category.ID,
		"name":        category.Name,
	})
	return nil, nil
}

func (s *categoryService) UpdateCategory(category *model.Category) (map[string]string, error) {
	existing, err := s.categoryRepo.FindByID(category.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Cannot update: category not found", map[string]interface{}{
				"category_id": category.ID,
			})
			return nil, ErrCategoryNotFound
		}
		logger.Error("Failed to check category existence", err, map[string]interface{}{
			"category_id": category.ID,
		})
		return nil, err
	}

	if category.Name == "" {
		category.Name = existing.Name
	}
	if category.Photo == "" {
		category.Photo = existing.Photo
	}
	if category.PriceFrom == 0 {
		category.PriceFrom = existing.PriceFrom
	}
	category.IsActive = existing.IsActive
	category.CreatedAt = existing.CreatedAt

	if problems := category.Validate(); len(problems) > 0 {
		return problems, ErrCategoryInvalid
	}

	if err := s.categoryRepo.Update(category); err != nil {
		logger.Error("Failed to update category", err, map[string]interface{}{
			"category_id": category.ID,
		})
		return nil, err
	}

	logger.Info("Category updated successfully", map[string]interface{}{
		"category_id": category.ID,
		"name":        category.Name,
	})
	return nil, nil
}

// DeleteCategory soft-deletes the category without touching its products;
// orphaned products render as "Без категории"
func (s *categoryService) DeleteCategory(id uint) error {
	logger.Info("Deactivating category", map[string]interface{}{
		"category_id": id,
	})

	if err := s.categoryRepo.Deactivate(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Cannot delete: category not found", map[string]interface{}{
				"category_id": id,
			})
			return ErrCategoryNotFound
		}
		logger.Error("Failed to deactivate category", err, map[string]interface{}{
			"category_id": id,
		})
		return err
	}

	logger.Info("Category deactivated successfully", map[string]interface{}{
		"category_id": id,
	})
	return nil
}
