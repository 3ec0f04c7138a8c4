package model

import (
	"encoding/json"
	"time"
)

// Known content section keys. The static export bundles all sections into
// one shared content document keyed by section name.
const (
	SectionAboutCompany = "about-company"
	SectionFooter       = "footer"
	SectionOurServices  = "our-services"
)

// ContentSection is one named block of page content stored as raw JSON
type ContentSection struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Key       string         `gorm:"uniqueIndex;not null" json:"key"`
	Body      json.RawMessage `gorm:"type:jsonb" json:"body"`
	UpdatedAt time.Time      `json:"updated_at"`
	CreatedAt time.Time      `json:"created_at"`
}

func (ContentSection) TableName() string {
	return "content_sections"
}

// KnownSection reports whether key names a section the storefront renders
func KnownSection(key string) bool {
	switch key {
	case SectionAboutCompany, SectionFooter, SectionOurServices:
		return true
	}
	return false
}
