package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/granitdvor/monument-backend/config"
	"github.com/granitdvor/monument-backend/internal/app/model"
	"github.com/granitdvor/monument-backend/internal/app/repository"
	"github.com/granitdvor/monument-backend/internal/catalog"
	"github.com/granitdvor/monument-backend/internal/db"
	"github.com/xuri/excelize/v2"
)

// Imports the product catalog from an XLSX price list. Expected columns:
// name, short description, description, materials, production time, price,
// discount %, category, image URL, is_new, is_popular.
func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: go run cmd/seed/main.go <xlsx_file_path>")
	}

	filePath := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	if err := db.Initialize(&cfg.Database); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	productRepo := repository.NewProductRepository(db.GetDB())
	categoryRepo := repository.NewCategoryRepository(db.GetDB())

	fmt.Printf("Reading XLSX file: %s\n", filePath)
	products, err := readProductsFromXLSX(filePath, categoryRepo)
	if err != nil {
		log.Fatal("Failed to read XLSX:", err)
	}

	fmt.Printf("Total products to import: %d\n", len(products))

	fmt.Print("Do you want to proceed with the import? (yes/no): ")
	var confirm string
	fmt.Scanln(&confirm)
	if confirm != "yes" && confirm != "y" {
		fmt.Println("Import cancelled.")
		return
	}

	batchSize := 500
	fmt.Printf("Starting bulk import with batch size: %d\n", batchSize)
	if err := productRepo.BulkCreate(products, batchSize); err != nil {
		log.Fatal("Failed to bulk create products:", err)
	}

	fmt.Println("Import completed successfully!")
	fmt.Printf("Total products imported: %d\n", len(products))
}

func readProductsFromXLSX(filePath string, categoryRepo repository.CategoryRepository) ([]model.Product, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("no sheets found in XLSX file")
	}

	fmt.Printf("Reading sheet: %s\n", sheetName)

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("no data found in XLSX file")
	}

	categoryIDs, err := loadCategoryIndex(categoryRepo)
	if err != nil {
		return nil, err
	}

	var products []model.Product
	seen := make(map[string]bool) // dedup by name
	skippedCount := 0

	for i, row := range rows {
		if i == 0 {
			fmt.Printf("Headers: %v\n", row)
			continue
		}

		if len(row) < 6 {
			skippedCount++
			continue
		}

		name := strings.TrimSpace(cell(row, 0))
		if name == "" || seen[name] {
			skippedCount++
			continue
		}

		price, err := strconv.ParseFloat(strings.TrimSpace(cell(row, 5)), 64)
		if err != nil || price <= 0 {
			skippedCount++
			continue
		}

		product := model.Product{
			Name:             name,
			ShortDescription: strings.TrimSpace(cell(row, 1)),
			Description:      strings.TrimSpace(cell(row, 2)),
			Materials:        normalizeMaterials(cell(row, 3)),
			ProductionTime:   strings.TrimSpace(cell(row, 4)),
			Price:            price,
			Image:            strings.TrimSpace(cell(row, 8)),
			IsNew:            parseFlag(cell(row, 9)),
			IsPopular:        parseFlag(cell(row, 10)),
			IsActive:         true,
		}

		if discount, err := strconv.Atoi(strings.TrimSpace(cell(row, 6))); err == nil && discount > 0 {
			if err := product.SetDiscount(discount); err != nil {
				skippedCount++
				continue
			}
		}

		categoryName := strings.TrimSpace(cell(row, 7))
		if categoryName != "" {
			id, err := resolveCategory(categoryRepo, categoryIDs, categoryName, price)
			if err != nil {
				return nil, err
			}
			product.CategoryID = &id
		}

		seen[name] = true
		products = append(products, product)
	}

	fmt.Printf("Skipped rows: %d\n", skippedCount)
	return products, nil
}

func loadCategoryIndex(categoryRepo repository.CategoryRepository) (map[string]uint, error) {
	categories, err := categoryRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	index := make(map[string]uint, len(categories))
	for _, c := range categories {
		index[c.Name] = c.ID
	}
	return index, nil
}

// resolveCategory finds a category by name, creating it on first sight
func resolveCategory(categoryRepo repository.CategoryRepository, index map[string]uint, name string, price float64) (uint, error) {
	if id, ok := index[name]; ok {
		return id, nil
	}

	category := &model.Category{
		Name:      name,
		PriceFrom: price,
		IsActive:  true,
	}
	if err := categoryRepo.Create(category); err != nil {
		return 0, fmt.Errorf("failed to create category %q: %w", name, err)
	}

	fmt.Printf("Created category: %s\n", name)
	index[name] = category.ID
	return category.ID, nil
}

// normalizeMaterials canonicalizes each comma-separated material token
func normalizeMaterials(raw string) string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if normalized := catalog.NormalizeMaterial(p); normalized != "" {
			out = append(out, normalized)
		}
	}
	return strings.Join(out, ", ")
}

func parseFlag(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "да", "+":
		return true
	}
	return false
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
