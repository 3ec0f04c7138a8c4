package service

import (
	"errors"

	"github.com/granitdvor/monument-backend/internal/app/model"
	"github.com/granitdvor/monument-backend/internal/app/repository"
	"github.com/granitdvor/monument-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrExampleNotFound = errors.New("example of work not found")
	ErrExampleInvalid  = errors.New("example of work failed validation")
)

type ExampleService interface {
	ListExamples() ([]model.ExampleOfWork, error)
	GetAllExamples() ([]model.ExampleOfWork, error)
	GetExampleByID(id uint) (*model.ExampleOfWork, error)
	CreateExample(example *model.ExampleOfWork) (map[string]string, error)
	UpdateExample(example *model.ExampleOfWork) (map[string]string, error)
	DeleteExample(id uint) error
}

type exampleService struct {
	exampleRepo repository.ExampleRepository
}

func NewExampleService(exampleRepo repository.ExampleRepository) ExampleService {
	return &exampleService{exampleRepo: exampleRepo}
}

func (s *exampleService) ListExamples() ([]model.ExampleOfWork, error) {
	examples, err := s.exampleRepo.FindActive()
	if err != nil {
		logger.Error("Failed to list examples of work", err)
		return nil, err
	}
	return examples, nil
}

func (s *exampleService) GetAllExamples() ([]model.ExampleOfWork, error) {
	examples, err := s.exampleRepo.FindAll()
	if err != nil {
		logger.Error("Failed to list all examples of work", err)
		return nil, err
	}
	return examples, nil
}

func (s *exampleService) GetExampleByID(id uint) (*model.ExampleOfWork, error) {
	example, err := s.exampleRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExampleNotFound
		}
		logger.Error("Failed to fetch example of work", err, map[string]interface{}{
			"example_id": id,
		})
		return nil, err
	}
	return example, nil
}

func (s *exampleService) CreateExample(example *model.ExampleOfWork) (map[string]string, error) {
	if problems := example.Validate(); len(problems) > 0 {
		logger.Warn("Example of work failed validation", map[string]interface{}{
			"title":  example.Title,
			"fields": problems,
		})
		return problems, ErrExampleInvalid
	}

	example.IsActive = true

	if err := s.exampleRepo.Create(example); err != nil {
		logger.Error("Failed to create example of work", err, map[string]interface{}{
			"title": example.Title,
		})
		return nil, err
	}

	logger.Info("Example of work created successfully", map[string]interface{}{
		"example_id": example.ID,
		"title":      example.Title,
	})
	return nil, nil
}

func (s *exampleService) UpdateExample(example *model.ExampleOfWork) (map[string]string, error) {
	existing, err := s.exampleRepo.FindByID(example.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExampleNotFound
		}
		return nil, err
	}

	if example.Title == "" {
		example.Title = existing.Title
	}
	if example.Image == "" {
		example.Image = existing.Image
	}
	example.IsActive = existing.IsActive
	example.CreatedAt = existing.CreatedAt

	if problems := example.Validate(); len(problems) > 0 {
		return problems, ErrExampleInvalid
	}

	if err := s.exampleRepo.Update(example); err != nil {
		logger.Error("Failed to update example of work", err, map[string]interface{}{
			"example_id": example.ID,
		})
		return nil, err
	}

	logger.Info("Example of work updated successfully", map[string]interface{}{
		"example_id": example.ID,
	})
	return nil, nil
}

func (s *exampleService) DeleteExample(id uint) error {
	if err := s.exampleRepo.Deactivate(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrExampleNotFound
		}
		logger.Error("Failed to deactivate example of work", err, map[string]interface{}{
			"example_id": id,
		})
		return err
	}

	logger.Info("Example of work deactivated successfully", map[string]interface{}{
		"example_id": id,
	})
	return nil
}
