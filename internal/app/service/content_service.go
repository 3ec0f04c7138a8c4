package service

import (
	"encoding/json"
	"errors"

	"github.com/granitdvor/monument-backend/internal/app/model"
	"github.com/granitdvor/monument-backend/internal/app/repository"
	"github.com/granitdvor/monument-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrSectionNotFound = errors.New("content section not found")
	ErrSectionUnknown  = errors.New("unknown content section")
)

type ContentService interface {
	GetSection(key string) (*model.ContentSection, error)
	GetDocument() (map[string]json.RawMessage, error)
	UpdateSection(key string, body json.RawMessage) (*model.ContentSection, error)
}

type contentService struct {
	contentRepo repository.ContentRepository
}

func NewContentService(contentRepo repository.ContentRepository) ContentService {
	return &contentService{contentRepo: contentRepo}
}

func (s *contentService) GetSection(key string) (*model.ContentSection, error) {
	if !model.KnownSection(key) {
		return nil, ErrSectionUnknown
	}

	section, err := s.contentRepo.FindByKey(key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSectionNotFound
		}
		logger.Error("Failed to fetch content section", err, map[string]interface{}{
			"key": key,
		})
		return nil, err
	}
	return section, nil
}

// GetDocument bundles every section into the shared content document shape
// used by the static export
func (s *contentService) GetDocument() (map[string]json.RawMessage, error) {
	sections, err := s.contentRepo.FindAll()
	if err != nil {
		logger.Error("Failed to fetch content document", err)
		return nil, err
	}

	document := make(map[string]json.RawMessage, len(sections))
	for _, section := range sections {
		document[section.Key] = section.Body
	}
	return document, nil
}

func (s *contentService) UpdateSection(key string, body json.RawMessage) (*model.ContentSection, error) {
	if !model.KnownSection(key) {
		logger.Warn("Attempt to update unknown content section", map[string]interface{}{
			"key": key,
		})
		return nil, ErrSectionUnknown
	}

	section := &model.ContentSection{
		Key:  key,
		Body: body,
	}
	if err := s.contentRepo.Upsert(section); err != nil {
		logger.Error("Failed to update content section", err, map[string]interface{}{
			"key": key,
		})
		return nil, err
	}

	logger.Info("Content section updated successfully", map[string]interface{}{
		"key": key,
	})
	return section, nil
}
