package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/granitdvor/monument-backend/config"
	"github.com/granitdvor/monument-backend/internal/app/controller"
	"github.com/granitdvor/monument-backend/internal/app/repository"
	"github.com/granitdvor/monument-backend/internal/app/service"
	"github.com/granitdvor/monument-backend/internal/db"
	"github.com/granitdvor/monument-backend/internal/export"
	"github.com/granitdvor/monument-backend/internal/middleware"
	"github.com/granitdvor/monument-backend/internal/router"
	"github.com/granitdvor/monument-backend/internal/scheduler"
	"github.com/granitdvor/monument-backend/internal/storage"
	"github.com/granitdvor/monument-backend/pkg/logger"
	"github.com/granitdvor/monument-backend/pkg/redis"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console", // Use "json" for production
		EnableColor: true,
	})

	logger.Info("Starting GranitDvor Backend Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	if err := db.Seed(); err != nil {
		logger.Warn("Failed to seed database", map[string]interface{}{
			"error": err.Error(),
		})
	}

	// Redis is optional: token revocation and filter caching degrade
	// gracefully without it
	if err := redis.Init(&cfg.Redis); err != nil {
		logger.Warn("Redis unavailable, continuing without it", map[string]interface{}{
			"error": err.Error(),
		})
	}
	defer func() {
		if err := redis.Close(); err != nil {
			logger.Error("Failed to close redis connection", err)
		}
	}()

	userRepo := repository.NewUserRepository(db.GetDB())
	productRepo := repository.NewProductRepository(db.GetDB())
	categoryRepo := repository.NewCategoryRepository(db.GetDB())
	contactRepo := repository.NewContactRepository(db.GetDB())
	exampleRepo := repository.NewExampleRepository(db.GetDB())
	contentRepo := repository.NewContentRepository(db.GetDB())

	authService := service.NewAuthService(
		userRepo,
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)
	productService := service.NewProductService(productRepo, categoryRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	contactService := service.NewContactService(contactRepo)
	exampleService := service.NewExampleService(exampleRepo)
	contentService := service.NewContentService(contentRepo)

	s3Storage := storage.NewS3Storage(
		cfg.S3.Region,
		cfg.S3.Bucket,
		cfg.S3.AccessKeyID,
		cfg.S3.SecretAccessKey,
		cfg.S3.BaseURL,
	)

	authController := controller.NewAuthController(authService, cfg.JWT.Secret)
	productController := controller.NewProductController(productService)
	categoryController := controller.NewCategoryController(categoryService)
	contactController := controller.NewContactController(contactService)
	exampleController := controller.NewExampleController(exampleService)
	contentController := controller.NewContentController(contentService)
	uploadController := controller.NewUploadController(s3Storage)

	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT.Secret)

	r := router.NewRouter(
		authController,
		productController,
		categoryController,
		contactController,
		exampleController,
		contentController,
		uploadController,
		authMiddleware,
		cfg,
	)
	engine := r.Setup()

	var exportScheduler *scheduler.ExportScheduler
	if cfg.Export.Enabled {
		exporter := export.NewExporter(
			productService,
			categoryService,
			exampleService,
			contactService,
			contentService,
			cfg.Export.OutDir,
		)
		exportScheduler = scheduler.NewExportScheduler(exporter, cfg.Export.Schedule)
		if err := exportScheduler.Start(); err != nil {
			logger.Warn("Static export scheduler not running", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	if exportScheduler != nil {
		exportScheduler.Stop()
	}
	logger.Info("Server stopped successfully")
}
