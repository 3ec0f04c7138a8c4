package model

import (
	"strings"
	"time"
)

// ExampleOfWork is a portfolio entry shown on the storefront. Dimensions
// and Date are free text, matching what admins actually enter.
type ExampleOfWork struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	Image       string    `gorm:"not null" json:"image"`
	Dimensions  string    `json:"dimensions"`
	Date        string    `json:"date"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (ExampleOfWork) TableName() string {
	return "examples_of_work"
}

// Validate collects every field problem at once; empty map means valid
func (e *ExampleOfWork) Validate() map[string]string {
	problems := make(map[string]string)

	if strings.TrimSpace(e.Title) == "" {
		problems["title"] = "название не может быть пустым"
	}
	if strings.TrimSpace(e.Image) == "" {
		problems["image"] = "изображение обязательно"
	}

	return problems
}
