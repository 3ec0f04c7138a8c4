package service

import (
	"errors"

	"github.com/granitdvor/monument-backend/internal/app/model"
	"github.com/granitdvor/monument-backend/internal/app/repository"
	"github.com/granitdvor/monument-backend/pkg/logger"
	"gorm.io/gorm"
)

var ErrContactNotFound = errors.New("contact info not found")

// ContactService exposes the one contact record (get/replace), never a
// collection
type ContactService interface {
	GetContact() (*model.ContactInfo, error)
	ReplaceContact(contact *model.ContactInfo) error
}

type contactService struct {
	contactRepo repository.ContactRepository
}

func NewContactService(contactRepo repository.ContactRepository) ContactService {
	return &contactService{contactRepo: contactRepo}
}

func (s *contactService) GetContact() (*model.ContactInfo, error) {
	contact, err := s.contactRepo.Get()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Contact info not seeded yet", nil)
			return nil, ErrContactNotFound
		}
		logger.Error("Failed to fetch contact info", err)
		return nil, err
	}
	return contact, nil
}

func (s *contactService) ReplaceContact(contact *model.ContactInfo) error {
	logger.Info("Replacing contact info", map[string]interface{}{
		"phone": contact.Phone,
		"email": contact.Email,
	})

	if err := s.contactRepo.Replace(contact); err != nil {
		logger.Error("Failed to replace contact info", err)
		return err
	}

	logger.Info("Contact info replaced successfully", nil)
	return nil
}
