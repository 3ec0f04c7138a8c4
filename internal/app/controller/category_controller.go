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

type CategoryController struct {
	categoryService service.CategoryService
}

func NewCategoryController(categoryService service.CategoryService) *CategoryController {
	return &CategoryController{
		categoryService: categoryService,
	}
}

type CategoryRequest struct {
	Name      string  `json:"name"`
	PriceFrom float64 `json:"price_from"`
	Photo     string  `json:"photo"`
	Discount  *int    `json:"discount"`
}

// ListCategories returns categories visible on the storefront
// GET /api/v1/categories
func (ctrl *CategoryController) ListCategories(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	categories, err := ctrl.categoryService.ListCategories()
	if err != nil {
		log.Error("Failed to list categories", err, nil)
		apperrors.InternalError(c, "Не удалось загрузить категории")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"categories": categories,
		"count":      len(categories),
	})
}

// GetAllCategories includes deactivated categories (admin)
// GET /api/v1/admin/categories
func (ctrl *CategoryController) GetAllCategories(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	categories, err := ctrl.categoryService.GetAllCategories()
	if err != nil {
		log.Error("Failed to list all categories", err, nil)
		apperrors.InternalError(c, "Не удалось загрузить категории")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"categories": categories,
		"count":      len(categories),
	})
}

// GetCategoryByID returns a single category
// GET /api/v1/categories/:id
func (ctrl *CategoryController) GetCategoryByID(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	category, err := ctrl.categoryService.GetCategoryByID(id)
	if err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			apperrors.NotFound(c, apperrors.CategoryNotFound, "Категория не найдена")
			return
		}
		log.Error("Failed to fetch category", err, map[string]interface{}{
			"category_id": id,
		})
		apperrors.InternalError(c, "Не удалось загрузить категорию")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"category": category,
	})
}

// CreateCategory creates a new category (admin only)
// POST /api/v1/admin/categories
func (ctrl *CategoryController) CreateCategory(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid category creation request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Неверный формат данных")
		return
	}

	category := &model.Category{
		Name:      req.Name,
		PriceFrom: req.PriceFrom,
		Photo:     req.Photo,
		Discount:  req.Discount,
	}

	problems, err := ctrl.categoryService.CreateCategory(category)
	if err != nil {
		if errors.Is(err, service.ErrCategoryInvalid) {
			apperrors.RespondWithValidationError(c, problems)
			return
		}
		log.Error("Failed to create category", err, map[string]interface{}{
			"name": req.Name,
		})
		apperrors.InternalError(c, "Не удалось создать категорию")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Категория создана",
		"category": category,
	})
}

// UpdateCategory updates an existing category (admin only)
// PUT /api/v1/admin/categories/:id
func (ctrl *CategoryController) UpdateCategory(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid category update request", map[string]interface{}{
			"category_id": id,
			"error":       err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Неверный формат данных")
		return
	}

	category := &model.Category{
		Name:      req.Name,
		PriceFrom: req.PriceFrom,
		Photo:     req.Photo,
		Discount:  req.Discount,
	}
	category.ID = id

	problems, err := ctrl.categoryService.UpdateCategory(category)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCategoryNotFound):
			apperrors.NotFound(c, apperrors.CategoryNotFound, "Категория не найдена")
		case errors.Is(err, service.ErrCategoryInvalid):
			apperrors.RespondWithValidationError(c, problems)
		default:
			log.Error("Failed to update category", err, map[string]interface{}{
				"category_id": id,
			})
			apperrors.InternalError(c, "Не удалось обновить категорию")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Категория обновлена",
		"category": category,
	})
}

// DeleteCategory deactivates a category; its products stay published and
// fall back to the implicit "Без категории" grouping
// DELETE /api/v1/admin/categories/:id
func (ctrl *CategoryController) DeleteCategory(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := ctrl.categoryService.DeleteCategory(id); err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			apperrors.NotFound(c, apperrors.CategoryNotFound, "Категория не найдена")
			return
		}
		log.Error("Failed to delete category", err, map[string]interface{}{
			"category_id": id,
		})
		apperrors.InternalError(c, "Не удалось удалить категорию")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Категория снята с публикации",
	})
}
