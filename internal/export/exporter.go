package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/granitdvor/monument-backend/internal/app/service"
	"github.com/granitdvor/monument-backend/internal/catalog"
	"github.com/granitdvor/monument-backend/internal/provider"
	"github.com/granitdvor/monument-backend/pkg/logger"
)

// Exporter writes the static JSON snapshot the storefront serves when it
// runs without a live backend. File names follow the same mapping the
// provider uses to read them back.
type Exporter struct {
	productService  service.ProductService
	categoryService service.CategoryService
	exampleService  service.ExampleService
	contactService  service.ContactService
	contentService  service.ContentService
	outDir          string
}

func NewExporter(
	productService service.ProductService,
	categoryService service.CategoryService,
	exampleService service.ExampleService,
	contactService service.ContactService,
	contentService service.ContentService,
	outDir string,
) *Exporter {
	return &Exporter{
		productService:  productService,
		categoryService: categoryService,
		exampleService:  exampleService,
		contactService:  contactService,
		contentService:  contentService,
		outDir:          outDir,
	}
}

// Run exports every document. A failure on one document aborts the run so
// a partially updated snapshot is never left behind as the final state.
func (e *Exporter) Run() error {
	if err := os.MkdirAll(e.outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	products, err := e.productService.ListCatalog(catalog.NewFilterState())
	if err != nil {
		return fmt.Errorf("failed to load products for export: %w", err)
	}
	if err := e.writeDocument(provider.ResourceProducts, products); err != nil {
		return err
	}

	categories, err := e.categoryService.ListCategories()
	if err != nil {
		return fmt.Errorf("failed to load categories for export: %w", err)
	}
	if err := e.writeDocument(provider.ResourceCategories, categories); err != nil {
		return err
	}

	examples, err := e.exampleService.ListExamples()
	if err != nil {
		return fmt.Errorf("failed to load examples for export: %w", err)
	}
	if err := e.writeDocument(provider.ResourceExamples, examples); err != nil {
		return err
	}

	contact, err := e.contactService.GetContact()
	if err != nil && !errors.Is(err, service.ErrContactNotFound) {
		return fmt.Errorf("failed to load contact info for export: %w", err)
	}
	if contact != nil {
		if err := e.writeDocument(provider.ResourceContact, contact); err != nil {
			return err
		}
	}

	document, err := e.contentService.GetDocument()
	if err != nil {
		return fmt.Errorf("failed to load content for export: %w", err)
	}
	if err := e.writeDocument(provider.ResourceContent, document); err != nil {
		return err
	}

	logger.Info("Static export completed", map[string]interface{}{
		"out_dir":    e.outDir,
		"products":   len(products),
		"categories": len(categories),
		"examples":   len(examples),
	})

	return nil
}

// writeDocument marshals a document and replaces the target file
// atomically via rename, so concurrent readers never see a torn write
func (e *Exporter) writeDocument(resource string, doc interface{}) error {
	name, err := provider.DocumentPath(resource)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", name, err)
	}

	target := filepath.Join(e.outDir, name)
	tmp := target + ".tmp"

	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := os.Rename(tmp, target); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace %s: %w", name, err)
	}

	logger.Debug("Exported document", map[string]interface{}{
		"file": target,
		"size": len(data),
	})

	return nil
}
