package model

import (
	"strings"
	"time"
)

// Category groups products. Deactivating a category does not cascade to its
// products; an orphaned category_id is tolerated and rendered as
// "Без категории" on the storefront.
type Category struct {
	ID              uint      `gorm:"primarykey" json:"id"`
	Name            string    `gorm:"not null" json:"name"`
	PriceFrom       float64   `gorm:"not null" json:"price_from"`
	Photo           string    `gorm:"not null" json:"photo"`
	Discount        *int      `json:"discount,omitempty"`
	DiscountedPrice *float64  `json:"discounted_price,omitempty"`
	IsActive        bool      `gorm:"default:true" json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	Products []Product `gorm:"foreignKey:CategoryID" json:"-"`
}

func (Category) TableName() string {
	return "categories"
}

// Validate collects every field problem at once; empty map means valid
func (c *Category) Validate() map[string]string {
	problems := make(map[string]string)

	if strings.TrimSpace(c.Name) == "" {
		problems["name"] = "название не может быть пустым"
	}
	if c.PriceFrom < 0 {
		problems["price_from"] = "начальная цена не может быть отрицательной"
	}
	if strings.TrimSpace(c.Photo) == "" {
		problems["photo"] = "фотография обязательна"
	}
	if c.Discount != nil && (*c.Discount < 0 || *c.Discount > 100) {
		problems["discount"] = "скидка должна быть от 0 до 100"
	}

	return problems
}

// SetDiscount applies a discount percent to the starting price
func (c *Category) SetDiscount(percent int) error {
	if percent < 0 || percent > 100 {
		return ErrInvalidDiscount
	}
	c.Discount = &percent
	discounted := applyDiscount(c.PriceFrom, percent)
	c.DiscountedPrice = &discounted
	return nil
}

// FinalPriceFrom is the starting price to display
func (c *Category) FinalPriceFrom() float64 {
	if c.DiscountedPrice != nil {
		return *c.DiscountedPrice
	}
	return c.PriceFrom
}
