// Package mirror serves the public read API out of the deployment-mode
// resolver instead of the database. In static mode every response comes
// from the exported JSON snapshot, falling back to the live backend per
// resource; in dynamic mode it proxies the live backend directly. Admin
// and auth routes intentionally do not exist here: mutations always talk
// to the live backend.
package mirror

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/granitdvor/monument-backend/internal/app/model"
	"github.com/granitdvor/monument-backend/internal/catalog"
	apperrors "github.com/granitdvor/monument-backend/internal/errors"
	"github.com/granitdvor/monument-backend/internal/middleware"
	"github.com/granitdvor/monument-backend/internal/provider"
)

type Router struct {
	resolver *provider.Resolver
}

func NewRouter(resolver *provider.Resolver) *Router {
	return &Router{resolver: resolver}
}

// Setup builds the gin engine with the public read routes
func (r *Router) Setup() *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.LoggingMiddleware())

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "GranitDvor mirror is running",
			"mode":    string(r.resolver.Mode()),
		})
	})

	v1 := engine.Group("/api/v1")
	{
		products := v1.Group("/products")
		{
			products.GET("", r.listCatalog)
			products.GET("/filters", r.passthrough(provider.ResourceFilters))
			products.GET("/:id", r.getProduct)
		}

		v1.GET("/categories", r.passthrough(provider.ResourceCategories))
		v1.GET("/examples-of-work", r.passthrough(provider.ResourceExamples))
		v1.GET("/contact", r.passthrough(provider.ResourceContact))

		content := v1.Group("/content")
		{
			content.GET("", r.passthrough(provider.ResourceContent))
			content.GET("/:key", r.getContentSection)
		}
	}

	return engine
}

// passthrough serves one resolver resource as-is
func (r *Router) passthrough(resource string) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, err := r.resolver.Fetch(c.Request.Context(), resource, c.Request.URL.Query())
		if err != nil {
			respondResolverError(c, err)
			return
		}
		c.Data(http.StatusOK, "application/json", data)
	}
}

// listCatalog runs the full filter, sort and pagination pipeline over the
// resolved products document, mirroring the live catalog contract.
func (r *Router) listCatalog(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	products, err := r.fetchProducts(c)
	if err != nil {
		respondResolverError(c, err)
		return
	}

	query := c.Request.URL.Query()

	var preset *uint
	if raw := c.Query("category_id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
			presetID := uint(id)
			preset = &presetID
		}
	}

	state := catalog.ParseFilterState(query, preset)
	visible := catalog.Apply(products, state)

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
		if want, err := strconv.Atoi(c.Query("visible")); err == nil {
			for paginator.VisibleCount() < want && paginator.HasMore() {
				paginator.ShowMore()
			}
		}
	}
	items := paginator.Slice(visible)

	log.Info("Mirror catalog listed", map[string]interface{}{
		"total":   len(visible),
		"visible": len(items),
		"mode":    string(r.resolver.Mode()),
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

func (r *Router) getProduct(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Неверный идентификатор")
		return
	}

	products, err := r.fetchProducts(c)
	if err != nil {
		respondResolverError(c, err)
		return
	}

	for i := range products {
		if products[i].ID == uint(id) {
			c.JSON(http.StatusOK, gin.H{"product": products[i]})
			return
		}
	}
	apperrors.NotFound(c, apperrors.ProductNotFound, "Товар не найден")
}

func (r *Router) getContentSection(c *gin.Context) {
	key := c.Param("key")
	if !model.KnownSection(key) {
		apperrors.BadRequest(c, apperrors.SectionUnknown, "Неизвестный раздел")
		return
	}

	data, err := r.resolver.Fetch(c.Request.Context(), "content:"+key, nil)
	if err != nil {
		apperrors.NotFound(c, apperrors.SectionNotFound, "Раздел не найден")
		return
	}
	c.Data(http.StatusOK, "application/json", data)
}

func (r *Router) fetchProducts(c *gin.Context) ([]model.Product, error) {
	data, err := r.resolver.Fetch(c.Request.Context(), provider.ResourceProducts, nil)
	if err != nil {
		return nil, err
	}
	var products []model.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func respondResolverError(c *gin.Context, err error) {
	log := middleware.GetLoggerFromContext(c)

	if errors.Is(err, provider.ErrUnknownResource) {
		apperrors.NotFound(c, apperrors.ResourceNotFound, "Ресурс не найден")
		return
	}
	log.Error("Mirror failed to resolve resource", err, nil)
	apperrors.RespondWithError(c, http.StatusServiceUnavailable, apperrors.ResourceUnavailable, "Данные временно недоступны")
}
