package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/granitdvor/monument-backend/internal/app/model"
	"github.com/granitdvor/monument-backend/internal/app/service"
	apperrors "github.com/granitdvor/monument-backend/internal/errors"
	"github.com/granitdvor/monument-backend/internal/middleware"
)

type ExampleController struct {
	exampleService service.ExampleService
}

func NewExampleController(exampleService service.ExampleService) *ExampleController {
	return &ExampleController{
		exampleService: exampleService,
	}
}

type ExampleRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Dimensions  string `json:"dimensions"`
	Date        string `json:"date"`
}

// ListExamples returns portfolio entries visible on the storefront
// GET /api/v1/examples-of-work
func (ctrl *ExampleController) ListExamples(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	examples, err := ctrl.exampleService.ListExamples()
	if err != nil {
		log.Error("Failed to list examples of work", err, nil)
		apperrors.InternalError(c, "Не удалось загрузить примеры работ")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"examples": examples,
		"count":    len(examples),
	})
}

// GetAllExamples includes deactivated entries (admin)
// GET /api/v1/admin/examples-of-work
func (ctrl *ExampleController) GetAllExamples(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	examples, err := ctrl.exampleService.GetAllExamples()
	if err != nil {
		log.Error("Failed to list all examples of work", err, nil)
		apperrors.InternalError(c, "Не удалось загрузить примеры работ")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"examples": examples,
		"count":    len(examples),
	})
}

// CreateExample adds a portfolio entry (admin only)
// POST /api/v1/admin/examples-of-work
func (ctrl *ExampleController) CreateExample(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req ExampleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid example creation request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Неверный формат данных")
		return
	}

	example := &model.ExampleOfWork{
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
		Dimensions:  req.Dimensions,
		Date:        req.Date,
	}

	problems, err := ctrl.exampleService.CreateExample(example)
	if err != nil {
		if errors.Is(err, service.ErrExampleInvalid) {
			apperrors.RespondWithValidationError(c, problems)
			return
		}
		log.Error("Failed to create example of work", err, map[string]interface{}{
			"title": req.Title,
		})
		apperrors.InternalError(c, "Не удалось создать пример работы")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Пример работы создан",
		"example": example,
	})
}

// UpdateExample updates a portfolio entry (admin only)
// PUT /api/v1/admin/examples-of-work/:id
func (ctrl *ExampleController) UpdateExample(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req ExampleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid example update request", map[string]interface{}{
			"example_id": id,
			"error":      err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Неверный формат данных")
		return
	}

	example := &model.ExampleOfWork{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
		Dimensions:  req.Dimensions,
		Date:        req.Date,
	}

	problems, err := ctrl.exampleService.UpdateExample(example)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrExampleNotFound):
			apperrors.NotFound(c, apperrors.ExampleNotFound, "Пример работы не найден")
		case errors.Is(err, service.ErrExampleInvalid):
			apperrors.RespondWithValidationError(c, problems)
		default:
			log.Error("Failed to update example of work", err, map[string]interface{}{
				"example_id": id,
			})
			apperrors.InternalError(c, "Не удалось обновить пример работы")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Пример работы обновлён",
		"example": example,
	})
}

// DeleteExample deactivates a portfolio entry (admin only)
// DELETE /api/v1/admin/examples-of-work/:id
func (ctrl *ExampleController) DeleteExample(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := ctrl.exampleService.DeleteExample(id); err != nil {
		if errors.Is(err, service.ErrExampleNotFound) {
			apperrors.NotFound(c, apperrors.ExampleNotFound, "Пример работы не найден")
			return
		}
		log.Error("Failed to delete example of work", err, map[string]interface{}{
			"example_id": id,
		})
		apperrors.InternalError(c, "Не удалось удалить пример работы")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Пример работы снят с публикации",
	})
}
