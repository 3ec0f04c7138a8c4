package repository

import (
	"github.com/granitdvor/monument-backend/internal/app/model"
	"github.com/granitdvor/monument-backend/pkg/logger"
	"gorm.io/gorm"
)

type ExampleRepository interface {
	Create(example *model.ExampleOfWork) error
	FindAll() ([]model.ExampleOfWork, error)
	FindActive() ([]model.ExampleOfWork, error)
	FindByID(id uint) (*model.ExampleOfWork, error)
	Update(example *model.ExampleOfWork) error
	Deactivate(id uint) error
}

type exampleRepository struct {
	db *gorm.DB
}

func NewExampleRepository(db *gorm.DB) ExampleRepository {
	return &exampleRepository{db: db}
}

func (r *exampleRepository) Create(example *model.ExampleOfWork) error {
	if err := r.db.Create(example).Error; err != nil {
		logger.Error("Failed to create example of work", err, map[string]interface{}{
			"title": example.Title,
		})
		return err
	}
	return nil
}

func (r *exampleRepository) FindAll() ([]model.ExampleOfWork, error) {
	var examples []model.ExampleOfWork
	if err := r.db.Order("id ASC").Find(&examples).Error; err != nil {
		logger.Error("Failed to find examples of work", err, nil)
		return nil, err
	}
	return examples, nil
}

func (r *exampleRepository) FindActive() ([]model.ExampleOfWork, error) {
	var examples []model.ExampleOfWork
	if err := r.db.Where("is_active = ?", true).Order("id ASC").Find(&examples).Error; err != nil {
		logger.Error("Failed to find active examples of work", err, nil)
		return nil, err
	}
	return examples, nil
}

func (r *exampleRepository) FindByID(id uint) (*model.ExampleOfWork, error) {
	var example model.ExampleOfWork
	if err := r.db.First(&example, id).Error; err != nil {
		logger.Error("Failed to find example of work by ID", err, map[string]interface{}{
			"example_id": id,
		})
		return nil, err
	}
	return &example, nil
}

func (r *exampleRepository) Update(example *model.ExampleOfWork) error {
	if err := r.db.Save(example).Error; err != nil {
		logger.Error("Failed to update example of work", err, map[string]interface{}{
			"example_id": example.ID,
		})
		return err
	}
	return nil
}

func (r *exampleRepository) Deactivate(id uint) error {
	result := r.db.Model(&model.ExampleOfWork{}).Where("id = ?", id).Update("is_active", false)
	if result.Error != nil {
		logger.Error("Failed to deactivate example of work", result.Error, map[string]interface{}{
			"example_id": id,
		})
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
