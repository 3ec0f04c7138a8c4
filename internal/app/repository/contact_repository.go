package repository

import (
	"errors"

	"github.com/granitdvor/monument-backend/internal/app/model"
	"github.com/granitdvor/monument-backend/pkg/logger"
	"gorm.io/gorm"
)

// ContactRepository treats contact info as an explicit singleton: Get reads
// the one record, Replace upserts it. The table has no uniqueness
// constraint; singularity is this repository's job.
type ContactRepository interface {
	Get() (*model.ContactInfo, error)
	Replace(contact *model.ContactInfo) error
}

type contactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) Get() (*model.ContactInfo, error) {
	var contact model.ContactInfo
	if err := r.db.Order("id ASC").First(&contact).Error; err != nil {
		// an unseeded deployment legitimately has no record yet
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Error("Failed to read contact info", err, nil)
		}
		return nil, err
	}
	return &contact, nil
}

func (r *contactRepository) Replace(contact *model.ContactInfo) error {
	existing, err := r.Get()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Debug("No contact record yet, creating one", nil)
			return r.db.Create(contact).Error
		}
		return err
	}

	contact.ID = existing.ID
	if err := r.db.Save(contact).Error; err != nil {
		logger.Error("Failed to replace contact info", err, nil)
		return err
	}

	logger.Debug("Contact info replaced", map[string]interface{}{
		"contact_id": contact.ID,
	})
	return nil
}
