package repository

import (
	"errors"

	"github.com/granitdvor/monument-backend/internal/app/model"
	"github.com/granitdvor/monument-backend/pkg/logger"
	"gorm.io/gorm"
)

type ContentRepository interface {
	FindAll() ([]model.ContentSection, error)
	FindByKey(key string) (*model.ContentSection, error)
	Upsert(section *model.ContentSection) error
}

type contentRepository struct {
	db *gorm.DB
}

func NewContentRepository(db *gorm.DB) ContentRepository {
	return &contentRepository{db: db}
}

func (r *contentRepository) FindAll() ([]model.ContentSection, error) {
	var sections []model.ContentSection
	if err := r.db.Order("key ASC").Find(&sections).Error; err != nil {
		logger.Error("Failed to find content sections", err, nil)
		return nil, err
	}
	return sections, nil
}

func (r *contentRepository) FindByKey(key string) (*model.ContentSection, error) {
	var section model.ContentSection
	if err := r.db.Where("key = ?", key).First(&section).Error; err != nil {
		logger.Error("Failed to find content section", err, map[string]interface{}{
			"key": key,
		})
		return nil, err
	}
	return &section, nil
}

func (r *contentRepository) Upsert(section *model.ContentSection) error {
	var existing model.ContentSection
	err := r.db.Where("key = ?", section.Key).First(&existing).Error
	if err == nil {
		section.ID = existing.ID
		section.CreatedAt = existing.CreatedAt
		return r.db.Save(section).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	logger.Debug("Creating content section", map[string]interface{}{
		"key": section.Key,
	})
	return r.db.Create(section).Error
}
