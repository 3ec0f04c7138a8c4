package main

import (
	"flag"

	"github.com/granitdvor/monument-backend/config"
	"github.com/granitdvor/monument-backend/internal/app/repository"
	"github.com/granitdvor/monument-backend/internal/app/service"
	"github.com/granitdvor/monument-backend/internal/db"
	"github.com/granitdvor/monument-backend/internal/export"
	"github.com/granitdvor/monument-backend/pkg/logger"
)

// One-shot static export: writes the JSON snapshot the storefront serves
// in static mode, then exits. CI runs this before publishing the site.
func main() {
	outDir := flag.String("out", "", "output directory (defaults to STATIC_EXPORT_DIR)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	logger.Initialize(logger.Config{
		Level:  "info",
		Format: "console",
	})

	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer db.Close()

	dir := *outDir
	if dir == "" {
		dir = cfg.Export.OutDir
	}

	productRepo := repository.NewProductRepository(db.GetDB())
	categoryRepo := repository.NewCategoryRepository(db.GetDB())
	contactRepo := repository.NewContactRepository(db.GetDB())
	exampleRepo := repository.NewExampleRepository(db.GetDB())
	contentRepo := repository.NewContentRepository(db.GetDB())

	exporter := export.NewExporter(
		service.NewProductService(productRepo, categoryRepo),
		service.NewCategoryService(categoryRepo),
		service.NewExampleService(exampleRepo),
		service.NewContactService(contactRepo),
		service.NewContentService(contentRepo),
		dir,
	)

	if err := exporter.Run(); err != nil {
		logger.Fatal("Static export failed", err)
	}

	logger.Info("Static export written", map[string]interface{}{
		"out_dir": dir,
	})
}
