package model

import (
	"strings"
	"time"

	"github.com/lib/pq"
)

// Product is a catalog item. Materials is a free-text comma-delimited list
// ("Черный гранит, Золотая фольга"); the catalog engine normalizes tokens
// before matching. Deactivated products stay in storage and are excluded
// from public listings only.
type Product struct {
	ID               uint           `gorm:"primarykey" json:"id"`
	Name             string         `gorm:"not null" json:"name"`
	ShortDescription string         `json:"short_description"`
	Description      string         `gorm:"type:text" json:"description"`
	Materials        string         `json:"materials"`
	ProductionTime   string         `json:"production_time"`
	Price            float64        `gorm:"not null" json:"price"`
	Discount         *int           `json:"discount,omitempty"`
	DiscountedPrice  *float64       `json:"discounted_price,omitempty"`
	CategoryID       *uint          `gorm:"index" json:"category_id,omitempty"`
	Image            string         `json:"image"`
	Images           pq.StringArray `gorm:"type:text[]" json:"images,omitempty"`
	IsNew            bool           `gorm:"default:false" json:"is_new"`
	IsPopular        bool           `gorm:"default:false" json:"is_popular"`
	IsActive         bool           `gorm:"default:true" json:"is_active"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`

	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

func (Product) TableName() string {
	return "products"
}

// IsOnSale reports whether the product carries a discount
func (p *Product) IsOnSale() bool {
	return p.Discount != nil && *p.Discount > 0
}

// FinalPrice is the canonical price to display or charge: the stored
// discounted price when present, the base price otherwise.
func (p *Product) FinalPrice() float64 {
	if p.DiscountedPrice != nil {
		return *p.DiscountedPrice
	}
	return p.Price
}

// SetDiscount applies a discount percent and recomputes the discounted
// price. This is the only code path that keeps price, discount and
// discounted_price consistent; direct field writes can drift.
func (p *Product) SetDiscount(percent int) error {
	if percent < 0 || percent > 100 {
		return ErrInvalidDiscount
	}
	p.Discount = &percent
	discounted := applyDiscount(p.Price, percent)
	p.DiscountedPrice = &discounted
	return nil
}

// PricingModel classifies the raw record into the explicit pricing variants
func (p *Product) PricingModel() Pricing {
	return classifyPricing(p.Price, p.Discount, p.DiscountedPrice)
}

// Validate collects every field problem at once instead of failing on the
// first. An empty map means the product is valid.
func (p *Product) Validate() map[string]string {
	problems := make(map[string]string)

	if strings.TrimSpace(p.Name) == "" {
		problems["name"] = "название не может быть пустым"
	}
	if p.Price <= 0 {
		problems["price"] = "цена должна быть больше нуля"
	}
	if strings.TrimSpace(p.Image) == "" {
		problems["image"] = "изображение обязательно"
	}
	if p.Discount != nil && (*p.Discount < 0 || *p.Discount > 100) {
		problems["discount"] = "скидка должна быть от 0 до 100"
	}

	return problems
}

// MaterialList splits the comma-delimited materials string into trimmed tokens
func (p *Product) MaterialList() []string {
	if strings.TrimSpace(p.Materials) == "" {
		return nil
	}
	parts := strings.Split(p.Materials, ",")
	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		if token := strings.TrimSpace(part); token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}
