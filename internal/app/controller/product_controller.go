package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	apperrors "github.com/granitdvor/monument-backend/internal/errors"
	"github.com/granitdvor/monument-backend/internal/app/model"
	"github.com/granitdvor/monument-backend/internal/app/service"
	"github.com/granitdvor/monument-backend/internal/catalog"
	"github.com/granitdvor/monument-backend/internal/middleware"
)

type ProductController struct {
	productService service.ProductService
}

func NewProductController(productService service.ProductService) *ProductController {
	return &ProductController{
		productService: productService,
	}
}

type ProductRequest struct {
	Name             string   `json:"name"`
	ShortDescription string   `json:"short_description"`
	Description      string   `json:"description"`
	Materials        string   `json:"materials"`
	ProductionTime   string   `json:"production_time"`
	Price            float64  `json:"price"`
	Discount         *int     `json:"discount"`
	DiscountedPrice  *float64 `json:"discounted_price"`
	CategoryID       *uint    `json:"category_id"`
	Image            string   `json:"image"`
	Images           []string `json:"images"`
	IsNew            bool     `json:"is_new"`
	IsPopular        bool     `json:"is_popular"`
}

// ListCatalog returns the filtered, sorted, paginated public catalog.
// GET /api/v1/products?search=&sortBy=&categories=&materials=&priceMin=&priceMax=&page=&mode=&visible=
func (ctrl *ProductController) ListCatalog(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	query := c.Request.URL.Query()

	// a "view category" link passes category_id outside the filter contract
	var preset *uint
	if raw := c.Query("category_id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
			presetID := uint(id)
			preset = &presetID
		}
	}

	state := catalog.ParseFilterState(query, preset)

	visible, err := ctrl.productService.ListCatalog(state)
	if err != nil {
		log.Error("Failed to list catalog", err, nil)
		apperrors.InternalError(c, "Не удалось загрузить каталог")
		return
	}

	mode := catalog.ModeWide
	if c.Query("mode") == string(catalog.ModeCompact) {
		mode = catalog.ModeCompact
	}

	paginator := catalog.NewPaginator(mode, catalog.PageSize)
	paginator.SetTotal(len(visible))
	switch mode {
	case catalog.ModeWide:
		if page, err := strconv.Atoi(c.Query("page")); err == nil {
			paginator.GoToPage(page)
		}
	case catalog.ModeCompact:
		// visible is the client's current reveal count; the reveal only
		// grows in whole pages, so overshooting requests stay aligned
		if want, err := strconv.Atoi(c.Query("visible")); err == nil {
			for paginator.VisibleCount() < want && paginator.HasMore() {
				paginator.ShowMore()
			}
		}
	}
	items := paginator.Slice(visible)

	log.Info("Catalog listed successfully", map[string]interface{}{
		"total":   len(visible),
		"visible": len(items),
		"page":    paginator.Page(),
	})

	c.JSON(http.StatusOK, gin.H{
		"products":    items,
		"count":       len(visible),
		"page":        paginator.Page(),
		"total_pages": paginator.TotalPages(),
		"has_more":    paginator.HasMore(),
		"query":       state.Values().Encode(),
	})
}

// GetAllProducts returns every product including deactivated ones (admin)
// GET /api/v1/admin/products
func (ctrl *ProductController) GetAllProducts(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	products, err := ctrl.productService.GetAllProducts()
	if err != nil {
		log.Error("Failed to fetch products", err, nil)
		apperrors.InternalError(c, "Не удалось загрузить товары")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"count":    len(products),
	})
}

// GetProductByID returns a product by ID, including deactivated ones so
// that a product already in a visitor's cart stays resolvable
// GET /api/v1/products/:id
func (ctrl *ProductController) GetProductByID(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	product, err := ctrl.productService.GetProductByID(id)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			apperrors.NotFound(c, apperrors.ProductNotFound, "Товар не найден")
			return
		}
		log.Error("Failed to fetch product", err, map[string]interface{}{
			"product_id": id,
		})
		apperrors.InternalError(c, "Не удалось загрузить товар")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"product": product,
	})
}

// GetFilterMetadata returns the derived filter aggregate
// GET /api/v1/products/filters
func (ctrl *ProductController) GetFilterMetadata(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	meta, err := ctrl.productService.GetFilterMetadata(c.Request.Context())
	if err != nil {
		log.Error("Failed to fetch filter metadata", err, nil)
		apperrors.InternalError(c, "Не удалось загрузить фильтры")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"categories": meta.Categories,
		"materials":  meta.Materials,
		"priceRange": meta.PriceRange,
	})
}

// CreateProduct creates a new product (admin only)
// POST /api/v1/admin/products
func (ctrl *ProductController) CreateProduct(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid product creation request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Неверный формат данных")
		return
	}

	product := productFromRequest(&req)

	problems, err := ctrl.productService.CreateProduct(product)
	if err != nil {
		if errors.Is(err, service.ErrProductInvalid) {
			apperrors.RespondWithValidationError(c, problems)
			return
		}
		log.Error("Failed to create product", err, map[string]interface{}{
			"name": req.Name,
		})
		apperrors.InternalError(c, "Не удалось создать товар")
		return
	}

	log.Info("Product created successfully", map[string]interface{}{
		"product_id": product.ID,
		"name":       product.Name,
	})

	c.JSON(http.StatusCreated, gin.H{
		"message": "Товар создан",
		"product": product,
	})
}

// UpdateProduct updates an existing product (admin only, partial update)
// PUT /api/v1/admin/products/:id
func (ctrl *ProductController) UpdateProduct(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid product update request", map[string]interface{}{
			"product_id": id,
			"error":      err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Неверный формат данных")
		return
	}

	product := productFromRequest(&req)
	product.ID = id

	problems, err := ctrl.productService.UpdateProduct(product)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProductNotFound):
			apperrors.NotFound(c, apperrors.ProductNotFound, "Товар не найден")
		case errors.Is(err, service.ErrProductInvalid):
			apperrors.RespondWithValidationError(c, problems)
		default:
			log.Error("Failed to update product", err, map[string]interface{}{
				"product_id": id,
			})
			apperrors.InternalError(c, "Не удалось обновить товар")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Товар обновлён",
		"product": product,
	})
}

// DeleteProduct deactivates a product (admin only, soft delete)
// DELETE /api/v1/admin/products/:id
func (ctrl *ProductController) DeleteProduct(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := ctrl.productService.DeleteProduct(id); err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			apperrors.NotFound(c, apperrors.ProductNotFound, "Товар не найден")
			return
		}
		log.Error("Failed to delete product", err, map[string]interface{}{
			"product_id": id,
		})
		apperrors.InternalError(c, "Не удалось удалить товар")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Товар снят с публикации",
	})
}

func productFromRequest(req *ProductRequest) *model.Product {
	return &model.Product{
		Name:             req.Name,
		ShortDescription: req.ShortDescription,
		Description:      req.Description,
		Materials:        req.Materials,
		ProductionTime:   req.ProductionTime,
		Price:            req.Price,
		Discount:         req.Discount,
		DiscountedPrice:  req.DiscountedPrice,
		CategoryID:       req.CategoryID,
		Image:            req.Image,
		Images:           req.Images,
		IsNew:            req.IsNew,
		IsPopular:        req.IsPopular,
	}
}

// parseIDParam reads the :id route parameter, responding with a 400 on
// malformed input
func parseIDParam(c *gin.Context) (uint, bool) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Неверный идентификатор")
		return 0, false
	}
	return uint(id), true
}
