package db

import (
	"encoding/json"

	"github.com/granitdvor/monument-backend/internal/app/model"
	"github.com/granitdvor/monument-backend/pkg/logger"
)

// Migrate runs database migrations
func Migrate() error {
	logger.Info("Running database migrations...")

	models := []interface{}{
		&model.User{},
		&model.Category{},
		&model.Product{},
		&model.ContactInfo{},
		&model.ExampleOfWork{},
		&model.ContentSection{},
	}

	if err := DB.AutoMigrate(models...); err != nil {
		logger.Error("Failed to run migrations", err)
		return err
	}

	if err := seedInitialData(); err != nil {
		logger.Error("Failed to seed initial data during migration", err)
		return err
	}

	logger.Info("Database migrations completed successfully", map[string]interface{}{
		"models_count": len(models),
	})
	return nil
}

// Seed adds initial data to the database
func Seed() error {
	return seedInitialData()
}

func seedInitialData() error {
	logger.Info("Seeding initial data...")

	if err := seedContact(); err != nil {
		logger.Error("Failed to seed contact info", err)
		return err
	}
	if err := seedContentSections(); err != nil {
		logger.Error("Failed to seed content sections", err)
		return err
	}

	logger.Info("Initial data seeded successfully")
	return nil
}

// seedContact creates the one contact record if none exists yet
func seedContact() error {
	var count int64
	if err := DB.Model(&model.ContactInfo{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		logger.Info("Contact info already seeded, skipping...", map[string]interface{}{
			"existing_count": count,
		})
		return nil
	}

	contact := model.ContactInfo{
		Address: "г. Минск, ул. Кижеватова, 8",
		Phone:   "+375 (29) 123-45-67",
		Email:   "info@granitdvor.by",
		Hours: model.WorkingHours{
			Weekdays: "Пн-Пт 9:00-18:00",
			Weekend:  "Сб-Вс 10:00-16:00",
		},
	}
	return DB.Create(&contact).Error
}

// seedContentSections creates empty placeholders for every known section
// so the storefront never renders a missing block
func seedContentSections() error {
	sections := []string{
		model.SectionAboutCompany,
		model.SectionFooter,
		model.SectionOurServices,
	}

	for _, key := range sections {
		var count int64
		if err := DB.Model(&model.ContentSection{}).Where("key = ?", key).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		section := model.ContentSection{
			Key:  key,
			Body: json.RawMessage(`{}`),
		}
		if err := DB.Create(&section).Error; err != nil {
			logger.Error("Failed to create content section", err, map[string]interface{}{
				"key": key,
			})
			return err
		}
	}

	logger.Info("Content sections seeded", map[string]interface{}{
		"sections": len(sections),
	})
	return nil
}
