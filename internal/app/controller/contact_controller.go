package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/granitdvor/monument-backend/internal/app/model"
	"github.com/granitdvor/monument-backend/internal/app/service"
	apperrors "github.com/granitdvor/monument-backend/internal/errors"
	"github.com/granitdvor/monument-backend/internal/middleware"
)

type ContactController struct {
	contactService service.ContactService
}

func NewContactController(contactService service.ContactService) *ContactController {
	return &ContactController{
		contactService: contactService,
	}
}

// ContactRequest accepts either the structured working hours or the legacy
// single-string form; structured wins when both are present.
type ContactRequest struct {
	Address      string              `json:"address"`
	Phone        string              `json:"phone"`
	Email        string              `json:"email"`
	Instagram    string              `json:"instagram"`
	WorkingHours *model.WorkingHours `json:"working_hours"`
	HoursDisplay string              `json:"hours"`
}

// GetContact returns the single contact record
// GET /api/v1/contact
func (ctrl *ContactController) GetContact(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	contact, err := ctrl.contactService.GetContact()
	if err != nil {
		if errors.Is(err, service.ErrContactNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Контактная информация не заполнена")
			return
		}
		log.Error("Failed to fetch contact info", err, nil)
		apperrors.InternalError(c, "Не удалось загрузить контакты")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"contact": contact,
		"hours":   contact.Hours.DisplayString(),
	})
}

// ReplaceContact overwrites the contact record wholesale (admin only)
// PUT /api/v1/admin/contact
func (ctrl *ContactController) ReplaceContact(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid contact update request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Неверный формат данных")
		return
	}

	problems := make(map[string]string)
	if strings.TrimSpace(req.Address) == "" {
		problems["address"] = "адрес не может быть пустым"
	}
	if strings.TrimSpace(req.Phone) == "" {
		problems["phone"] = "телефон не может быть пустым"
	}
	if len(problems) > 0 {
		apperrors.RespondWithValidationError(c, problems)
		return
	}

	contact := &model.ContactInfo{
		Address:   req.Address,
		Phone:     req.Phone,
		Email:     req.Email,
		Instagram: req.Instagram,
	}
	if req.WorkingHours != nil {
		contact.Hours = *req.WorkingHours
	} else if req.HoursDisplay != "" {
		contact.Hours = model.ParseWorkingHours(req.HoursDisplay)
	}

	if err := ctrl.contactService.ReplaceContact(contact); err != nil {
		log.Error("Failed to replace contact info", err, nil)
		apperrors.InternalError(c, "Не удалось сохранить контакты")
		return
	}

	log.Info("Contact info replaced", map[string]interface{}{
		"address": contact.Address,
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "Контакты обновлены",
		"contact": contact,
	})
}
