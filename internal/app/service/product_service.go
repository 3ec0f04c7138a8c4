package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/granitdvor/monument-backend/internal/app/model"
	"github.com/granitdvor/monument-backend/internal/app/repository"
	"github.com/granitdvor/monument-backend/internal/catalog"
	"github.com/granitdvor/monument-backend/pkg/logger"
	"github.com/granitdvor/monument-backend/pkg/redis"
	"gorm.io/gorm"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrProductInvalid   = errors.New("product failed validation")
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryInvalid  = errors.New("category failed validation")
)

const filterMetadataCacheKey = "catalog:filters"
const filterMetadataCacheTTL = 5 * time.Minute

// FilterMetadata is the derived aggregate behind the storefront's filter
// sidebar: active categories, the union of normalized material names and
// the observed base price range
type FilterMetadata struct {
	Categories []model.Category   `json:"categories"`
	Materials  []string           `json:"materials"`
	PriceRange catalog.PriceRange `json:"priceRange"`
}

type ProductService interface {
	ListCatalog(state catalog.FilterState) ([]model.Product, error)
	GetAllProducts() ([]model.Product, error)
	GetProductByID(id uint) (*model.Product, error)
	GetProductsByCategory(categoryID uint) ([]model.Product, error)
	GetFilterMetadata(ctx context.Context) (FilterMetadata, error)
	CreateProduct(product *model.Product) (map[string]string, error)
	UpdateProduct(product *model.Product) (map[string]string, error)
	DeleteProduct(id uint) error
}

type productService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

func NewProductService(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository) ProductService {
	return &productService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

// ListCatalog returns the public catalog view for a filter state: active
// products narrowed and ordered by the pure engine. Empty output is a
// normal result, not an error.
func (s *productService) ListCatalog(state catalog.FilterState) ([]model.Product, error) {
	logger.Debug("Listing catalog", map[string]interface{}{
		"search":     state.Search,
		"sort":       string(state.SortBy),
		"categories": len(state.SelectedCategories),
		"materials":  len(state.SelectedMaterials),
	})

	products, err := s.productRepo.FindActive()
	if err != nil {
		logger.Error("Failed to list catalog", err)
		return nil, err
	}

	visible := catalog.Apply(products, state)

	logger.Info("Catalog listed", map[string]interface{}{
		"total":   len(products),
		"visible": len(visible),
	})
	return visible, nil
}

// GetAllProducts returns every product including deactivated ones, for the
// admin back office
func (s *productService) GetAllProducts() ([]model.Product, error) {
	products, err := s.productRepo.FindAll()
	if err != nil {
		logger.Error("Failed to list all products", err)
		return nil, err
	}
	return products, nil
}

func (s *productService) GetProductByID(id uint) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Product not found", map[string]interface{}{
				"product_id": id,
			})
			return nil, ErrProductNotFound
		}
		logger.Error("Failed to fetch product", err, map[string]interface{}{
			"product_id": id,
		})
		return nil, err
	}
	return product, nil
}

func (s *productService) GetProductsByCategory(categoryID uint) ([]model.Product, error) {
	products, err := s.productRepo.FindActiveByCategory(categoryID)
	if err != nil {
		logger.Error("Failed to fetch products by category", err, map[string]interface{}{
			"category_id": categoryID,
		})
		return nil, err
	}
	return products, nil
}

// GetFilterMetadata computes the derived filters aggregate, with a short
// redis-backed cache. Cache failures degrade to recomputation; a
// synthesis problem degrades to an empty-but-well-formed result.
func (s *productService) GetFilterMetadata(ctx context.Context) (FilterMetadata, error) {
	if data := redis.GetCachedJSON(ctx, filterMetadataCacheKey); data != nil {
		var cached FilterMetadata
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	meta := FilterMetadata{
		Categories: []model.Category{},
		Materials:  []string{},
	}

	if categories, err := s.categoryRepo.FindActive(); err == nil {
		meta.Categories = categories
	} else {
		logger.Warn("Filter metadata: categories unavailable", map[string]interface{}{
			"error": err.Error(),
		})
	}

	products, err := s.productRepo.FindActive()
	if err != nil {
		logger.Warn("Filter metadata: products unavailable", map[string]interface{}{
			"error": err.Error(),
		})
		return meta, nil
	}

	meta.Materials = catalog.CollectMaterials(products)
	meta.PriceRange = catalog.ObservedPriceRange(products)

	if data, err := json.Marshal(meta); err == nil {
		redis.SetCachedJSON(ctx, filterMetadataCacheKey, data, filterMetadataCacheTTL)
	}

	return meta, nil
}

// CreateProduct validates and persists a new product. Validation problems
// come back as a field map so the admin form can show all of them at once.
func (s *productService) CreateProduct(product *model.Product) (map[string]string, error) {
	if problems := product.Validate(); len(problems) > 0 {
		logger.Warn("Product failed validation", map[string]interface{}{
			"name":   product.Name,
			"fields": problems,
		})
		return problems, ErrProductInvalid
	}

	product.IsActive = true

	logger.Info("Creating new product", map[string]interface{}{
		"name":        product.Name,
		"category_id": product.CategoryID,
		"price":       product.Price,
	})

	if err := s.productRepo.Create(product); err != nil {
		logger.Error("Failed to create product", err, map[string]interface{}{
			"name": product.Name,
		})
		return nil, err
	}

	logger.Info("Product created successfully", map[string]interface{}{
		"product_id": product.ID,
		"name":       product.Name,
	})
	return nil, nil
}

// UpdateProduct applies a partial update: zero-valued descriptive fields
// keep their existing values
func (s *productService) UpdateProduct(product *model.Product) (map[string]string, error) {
	existing, err := s.productRepo.FindByID(product.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Cannot update: product not found", map[string]interface{}{
				"product_id": product.ID,
			})
			return nil, ErrProductNotFound
		}
		logger.Error("Failed to check product existence", err, map[string]interface{}{
			"product_id": product.ID,
		})
		return nil, err
	}

	if product.Name == "" {
		product.Name = existing.Name
	}
	if product.Price == 0 {
		product.Price = existing.Price
	}
	if product.Image == "" {
		product.Image = existing.Image
	}
	if product.CategoryID == nil {
		product.CategoryID = existing.CategoryID
	}
	product.IsActive = existing.IsActive
	product.CreatedAt = existing.CreatedAt

	if problems := product.Validate(); len(problems) > 0 {
		return problems, ErrProductInvalid
	}

	if err := s.productRepo.Update(product); err != nil {
		logger.Error("Failed to update product", err, map[string]interface{}{
			"product_id": product.ID,
		})
		return nil, err
	}

	logger.Info("Product updated successfully", map[string]interface{}{
		"product_id": product.ID,
		"name":       product.Name,
	})
	return nil, nil
}

// DeleteProduct soft-deletes only: the product disappears from public
// listings but stays reachable by id
func (s *productService) DeleteProduct(id uint) error {
	logger.Info("Deactivating product", map[string]interface{}{
		"product_id": id,
	})

	if err := s.productRepo.Deactivate(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Cannot delete: product not found", map[string]interface{}{
				"product_id": id,
			})
			return ErrProductNotFound
		}
		logger.Error("Failed to deactivate product", err, map[string]interface{}{
			"product_id": id,
		})
		return err
	}

	logger.Info("Product deactivated successfully", map[string]interface{}{
		"product_id": id,
	})
	return nil
}
