package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/granitdvor/monument-backend/internal/app/model"
	"github.com/granitdvor/monument-backend/internal/app/repository"
	"github.com/granitdvor/monument-backend/internal/app/service"
	"github.com/granitdvor/monument-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupProductControllerTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	productRepo := repository.NewProductRepository(testDB)
	categoryRepo := repository.NewCategoryRepository(testDB)
	productService := service.NewProductService(productRepo, categoryRepo)
	ctrl := NewProductController(productService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/v1/products", ctrl.ListCatalog)
	router.GET("/api/v1/products/filters", ctrl.GetFilterMetadata)
	router.GET("/api/v1/products/:id", ctrl.GetProductByID)
	router.POST("/api/v1/admin/products", ctrl.CreateProduct)
	router.PUT("/api/v1/admin/products/:id", ctrl.UpdateProduct)
	router.DELETE("/api/v1/admin/products/:id", ctrl.DeleteProduct)

	return router, testDB
}

func seedControllerCatalog(t *testing.T, testDB *gorm.DB) *model.Category {
	category := &model.Category{Name: "Памятники", PriceFrom: 500, Photo: "c.jpg", IsActive: true}
	require.NoError(t, testDB.Create(category).Error)

	products := make([]model.Product, 0, 15)
	for i := 1; i <= 15; i++ {
		products = append(products, model.Product{
			Name:       fmt.Sprintf("Памятник %02d", i),
			Materials:  "Черный гранит",
			Price:      float64(500 + i*100),
			Image:      "m.jpg",
			CategoryID: &category.ID,
			IsActive:   true,
		})
	}
	products = append(products, model.Product{
		Name: "Снятый", Price: 999, Image: "x.jpg", IsActive: false,
	})
	require.NoError(t, testDB.Create(&products).Error)
	return category
}

func doRequest(router *gin.Engine, method, target string, body []byte) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestProductController_ListCatalog(t *testing.T) {
	router, testDB := setupProductControllerTest(t)
	seedControllerCatalog(t, testDB)

	w := doRequest(router, http.MethodGet, "/api/v1/products", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Products   []model.Product `json:"products"`
		Count      int             `json:"count"`
		Page       int             `json:"page"`
		TotalPages int             `json:"total_pages"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, 15, resp.Count, "deactivated products never appear")
	assert.Len(t, resp.Products, 12, "first page holds one page size of items")
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 2, resp.TotalPages)
}

func TestProductController_ListCatalogCompactReveal(t *testing.T) {
	router, testDB := setupProductControllerTest(t)
	seedControllerCatalog(t, testDB)

	var resp struct {
		Products []model.Product `json:"products"`
		Count    int             `json:"count"`
		HasMore  bool            `json:"has_more"`
	}

	// without a reveal count the compact view starts at one page
	w := doRequest(router, http.MethodGet, "/api/v1/products?mode=compact", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Products, 12)
	assert.True(t, resp.HasMore)

	// "show more" is a reload with the grown reveal count
	w = doRequest(router, http.MethodGet, "/api/v1/products?mode=compact&visible=24", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Products, 15, "reveal clamps to the total")
	assert.False(t, resp.HasMore)

	// the reveal grows in whole pages only
	w = doRequest(router, http.MethodGet, "/api/v1/products?mode=compact&visible=13", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Products, 15)
}

func TestProductController_ListCatalogSecondPage(t *testing.T) {
	router, testDB := setupProductControllerTest(t)
	seedControllerCatalog(t, testDB)

	w := doRequest(router, http.MethodGet, "/api/v1/products?page=2", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Products []model.Product `json:"products"`
		Page     int             `json:"page"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, 2, resp.Page)
	assert.Len(t, resp.Products, 3)
}

func TestProductController_ListCatalogPageBeyondEndClamps(t *testing.T) {
	router, testDB := setupProductControllerTest(t)
	seedControllerCatalog(t, testDB)

	w := doRequest(router, http.MethodGet, "/api/v1/products?page=99", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Page int `json:"page"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Page)
}

func TestProductController_ListCatalogWithQueryFilters(t *testing.T) {
	router, testDB := setupProductControllerTest(t)
	seedControllerCatalog(t, testDB)

	w := doRequest(router, http.MethodGet, "/api/v1/products?priceMin=600&priceMax=800&sortBy=price-asc", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Products []model.Product `json:"products"`
		Count    int             `json:"count"`
		Query    string          `json:"query"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	require.Equal(t, 3, resp.Count)
	assert.Equal(t, 600.0, resp.Products[0].Price)
	assert.Equal(t, 800.0, resp.Products[2].Price)
	assert.Contains(t, resp.Query, "sortBy=price-asc", "canonical query echoes the active state")
}

func TestProductController_ListCatalogMalformedParamsIgnored(t *testing.T) {
	router, testDB := setupProductControllerTest(t)
	seedControllerCatalog(t, testDB)

	w := doRequest(router, http.MethodGet, "/api/v1/products?priceMin=abc&sortBy=unknown&categories=x,y", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 15, resp.Count, "garbage narrows nothing")
}

func TestProductController_GetFilterMetadata(t *testing.T) {
	router, testDB := setupProductControllerTest(t)
	seedControllerCatalog(t, testDB)

	w := doRequest(router, http.MethodGet, "/api/v1/products/filters", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Categories []model.Category `json:"categories"`
		Materials  []string         `json:"materials"`
		PriceRange struct {
			Min float64 `json:"min"`
			Max float64 `json:"max"`
		} `json:"priceRange"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Len(t, resp.Categories, 1)
	assert.Equal(t, []string{"Черный гранит"}, resp.Materials)
	assert.Equal(t, 600.0, resp.PriceRange.Min)
	assert.Equal(t, 2000.0, resp.PriceRange.Max)
}

func TestProductController_GetProductByID(t *testing.T) {
	router, testDB := setupProductControllerTest(t)
	seedControllerCatalog(t, testDB)

	var inactive model.Product
	require.NoError(t, testDB.Where("is_active = ?", false).First(&inactive).Error)

	w := doRequest(router, http.MethodGet, fmt.Sprintf("/api/v1/products/%d", inactive.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code, "deactivated products stay reachable by id")

	w = doRequest(router, http.MethodGet, "/api/v1/products/424242", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(router, http.MethodGet, "/api/v1/products/not-a-number", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProductController_CreateProduct(t *testing.T) {
	router, _ := setupProductControllerTest(t)

	body, _ := json.Marshal(ProductRequest{
		Name:  "Новый памятник",
		Price: 1800,
		Image: "new.jpg",
	})

	w := doRequest(router, http.MethodPost, "/api/v1/admin/products", body)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Product model.Product `json:"product"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotZero(t, resp.Product.ID)
	assert.True(t, resp.Product.IsActive)
}

func TestProductController_CreateProductValidationErrors(t *testing.T) {
	router, _ := setupProductControllerTest(t)

	body, _ := json.Marshal(ProductRequest{Name: "", Price: 0})

	w := doRequest(router, http.MethodPost, "/api/v1/admin/products", body)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Fields, "name")
	assert.Contains(t, resp.Fields, "price")
	assert.Contains(t, resp.Fields, "image")
}

func TestProductController_UpdateProduct(t *testing.T) {
	router, testDB := setupProductControllerTest(t)
	seedControllerCatalog(t, testDB)

	var target model.Product
	require.NoError(t, testDB.Where("name = ?", "Памятник 01").First(&target).Error)

	body, _ := json.Marshal(ProductRequest{ShortDescription: "Обновлено"})

	w := doRequest(router, http.MethodPut, fmt.Sprintf("/api/v1/admin/products/%d", target.ID), body)
	require.Equal(t, http.StatusOK, w.Code)

	var found model.Product
	require.NoError(t, testDB.First(&found, target.ID).Error)
	assert.Equal(t, "Обновлено", found.ShortDescription)
	assert.Equal(t, target.Name, found.Name, "unsent fields keep their values")
}

func TestProductController_DeleteProduct(t *testing.T) {
	router, testDB := setupProductControllerTest(t)
	seedControllerCatalog(t, testDB)

	var target model.Product
	require.NoError(t, testDB.Where("name = ?", "Памятник 01").First(&target).Error)

	w := doRequest(router, http.MethodDelete, fmt.Sprintf("/api/v1/admin/products/%d", target.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var found model.Product
	require.NoError(t, testDB.First(&found, target.ID).Error)
	assert.False(t, found.IsActive)

	w = doRequest(router, http.MethodDelete, "/api/v1/admin/products/424242", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
