package repository

import (
	"github.com/granitdvor/monument-backend/internal/app/model"
	"github.com/granitdvor/monument-backend/pkg/logger"
	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(product *model.Product) error
	FindAll() ([]model.Product, error)
	FindActive() ([]model.Product, error)
	FindByID(id uint) (*model.Product, error)
	FindActiveByCategory(categoryID uint) ([]model.Product, error)
	Update(product *model.Product) error
	Deactivate(id uint) error
	BulkCreate(products []model.Product, batchSize int) error
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(product *model.Product) error {
	logger.Debug("Creating product in database", map[string]interface{}{
		"name":        product.Name,
		"category_id": product.CategoryID,
		"price":       product.Price,
	})

	if err := r.db.Create(product).Error; err != nil {
		logger.Error("Failed to create product in database", err, map[string]interface{}{
			"name": product.Name,
		})
		return err
	}

	logger.Debug("Product created in database", map[string]interface{}{
		"product_id": product.ID,
		"name":       product.Name,
	})
	return nil
}

func (r *productRepository) baseQuery() *gorm.DB {
	return r.db.Model(&model.Product{}).
		Preload("Category").
		Order("products.id ASC")
}

// FindAll returns every product including deactivated ones (admin listings)
func (r *productRepository) FindAll() ([]model.Product, error) {
	var products []model.Product
	if err := r.baseQuery().Find(&products).Error; err != nil {
		logger.Error("Failed to find products", err, nil)
		return nil, err
	}
	return products, nil
}

// FindActive returns products visible on the public storefront
func (r *productRepository) FindActive() ([]model.Product, error) {
	var products []model.Product
	if err := r.baseQuery().Where("products.is_active = ?", true).Find(&products).Error; err != nil {
		logger.Error("Failed to find active products", err, nil)
		return nil, err
	}

	logger.Debug("Active products found", map[string]interface{}{
		"count": len(products),
	})
	return products, nil
}

// FindByID returns a product regardless of its active flag; deactivated
// products stay reachable by id
func (r *productRepository) FindByID(id uint) (*model.Product, error) {
	var product model.Product
	if err := r.baseQuery().First(&product, id).Error; err != nil {
		logger.Error("Failed to find product by ID in database", err, map[string]interface{}{
			"product_id": id,
		})
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) FindActiveByCategory(categoryID uint) ([]model.Product, error) {
	var products []model.Product
	err := r.baseQuery().
		Where("products.is_active = ? AND products.category_id = ?", true, categoryID).
		Find(&products).Error
	if err != nil {
		logger.Error("Failed to find products by category in database", err, map[string]interface{}{
			"category_id": categoryID,
		})
		return nil, err
	}

	logger.Debug("Products found by category in database", map[string]interface{}{
		"category_id": categoryID,
		"count":       len(products),
	})
	return products, nil
}

func (r *productRepository) Update(product *model.Product) error {
	logger.Debug("Updating product in database", map[string]interface{}{
		"product_id": product.ID,
		"name":       product.Name,
	})

	if err := r.db.Save(product).Error; err != nil {
		logger.Error("Failed to update product in database", err, map[string]interface{}{
			"product_id": product.ID,
		})
		return err
	}
	return nil
}

// Deactivate soft-deletes: the record stays in storage and disappears from
// public listings only. There is no hard delete in the service layer.
func (r *productRepository) Deactivate(id uint) error {
	logger.Debug("Deactivating product in database", map[string]interface{}{
		"product_id": id,
	})

	result := r.db.Model(&model.Product{}).Where("id = ?", id).Update("is_active", false)
	if result.Error != nil {
		logger.Error("Failed to deactivate product in database", result.Error, map[string]interface{}{
			"product_id": id,
		})
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	logger.Debug("Product deactivated in database", map[string]interface{}{
		"product_id": id,
	})
	return nil
}

// BulkCreate inserts products in batches, used by the XLSX import tool
func (r *productRepository) BulkCreate(products []model.Product, batchSize int) error {
	logger.Info("Bulk creating products in database", map[string]interface{}{
		"count":      len(products),
		"batch_size": batchSize,
	})

	if err := r.db.CreateInBatches(products, batchSize).Error; err != nil {
		logger.Error("Failed to bulk create products in database", err, map[string]interface{}{
			"count": len(products),
		})
		return err
	}
	return nil
}
