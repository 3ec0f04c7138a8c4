package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/granitdvor/monument-backend/internal/app/service"
	apperrors "github.com/granitdvor/monument-backend/internal/errors"
	"github.com/granitdvor/monument-backend/internal/middleware"
)

type ContentController struct {
	contentService service.ContentService
}

func NewContentController(contentService service.ContentService) *ContentController {
	return &ContentController{
		contentService: contentService,
	}
}

// GetDocument returns every content section keyed by section name
// GET /api/v1/content
func (ctrl *ContentController) GetDocument(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	document, err := ctrl.contentService.GetDocument()
	if err != nil {
		log.Error("Failed to fetch content document", err, nil)
		apperrors.InternalError(c, "Не удалось загрузить контент")
		return
	}

	c.JSON(http.StatusOK, document)
}

// GetSection returns one content section by key
// GET /api/v1/content/:key
func (ctrl *ContentController) GetSection(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	key := c.Param("key")

	section, err := ctrl.contentService.GetSection(key)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSectionUnknown):
			apperrors.BadRequest(c, apperrors.SectionUnknown, "Неизвестный раздел контента")
		case errors.Is(err, service.ErrSectionNotFound):
			apperrors.NotFound(c, apperrors.SectionNotFound, "Раздел контента не найден")
		default:
			log.Error("Failed to fetch content section", err, map[string]interface{}{
				"key": key,
			})
			apperrors.InternalError(c, "Не удалось загрузить раздел")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"key":  section.Key,
		"body": section.Body,
	})
}

// UpdateSection replaces the body of a content section (admin only)
// PUT /api/v1/admin/content/:key
func (ctrl *ContentController) UpdateSection(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	key := c.Param("key")

	var body json.RawMessage
	if err := c.ShouldBindJSON(&body); err != nil {
		log.Warn("Invalid content section body", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Тело раздела должно быть корректным JSON")
		return
	}

	section, err := ctrl.contentService.UpdateSection(key, body)
	if err != nil {
		if errors.Is(err, service.ErrSectionUnknown) {
			apperrors.BadRequest(c, apperrors.SectionUnknown, "Неизвестный раздел контента")
			return
		}
		log.Error("Failed to update content section", err, map[string]interface{}{
			"key": key,
		})
		apperrors.InternalError(c, "Не удалось сохранить раздел")
		return
	}

	log.Info("Content section updated", map[string]interface{}{
		"key": key,
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "Раздел обновлён",
		"key":     section.Key,
		"body":    section.Body,
	})
}
