package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProduct_SetDiscount(t *testing.T) {
	tests := []struct {
		name           string
		price          float64
		percent        int
		wantErr        error
		wantDiscounted float64
	}{
		{
			name:           "Valid discount",
			price:          1500,
			percent:        20,
			wantDiscounted: 1200,
		},
		{
			name:           "Discount rounds to 2 decimal places",
			price:          999.99,
			percent:        33,
			wantDiscounted: 669.99,
		},
		{
			name:           "Zero percent keeps the base price",
			price:          800,
			percent:        0,
			wantDiscounted: 800,
		},
		{
			name:           "Full discount",
			price:          800,
			percent:        100,
			wantDiscounted: 0,
		},
		{
			name:    "Negative percent rejected",
			price:   800,
			percent: -5,
			wantErr: ErrInvalidDiscount,
		},
		{
			name:    "Percent above 100 rejected",
			price:   800,
			percent: 150,
			wantErr: ErrInvalidDiscount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Product{Price: tt.price}

			err := p.SetDiscount(tt.percent)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, p.Discount)
				assert.Nil(t, p.DiscountedPrice)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, p.DiscountedPrice)
			assert.Equal(t, tt.wantDiscounted, *p.DiscountedPrice)
			assert.Equal(t, tt.wantDiscounted, p.FinalPrice())
		})
	}
}

func TestProduct_FinalPrice(t *testing.T) {
	p := &Product{Price: 1000}
	assert.Equal(t, 1000.0, p.FinalPrice())

	manual := 850.0
	p.DiscountedPrice = &manual
	assert.Equal(t, 850.0, p.FinalPrice(), "stored discounted price wins")
}

func TestProduct_IsOnSale(t *testing.T) {
	p := &Product{Price: 1000}
	assert.False(t, p.IsOnSale())

	zero := 0
	p.Discount = &zero
	assert.False(t, p.IsOnSale(), "zero discount is not a sale")

	ten := 10
	p.Discount = &ten
	assert.True(t, p.IsOnSale())
}

func TestPricingModel_Classification(t *testing.T) {
	t.Run("No discount, no override: computed at base", func(t *testing.T) {
		p := &Product{Price: 1000}
		pricing := p.PricingModel()

		assert.Equal(t, PricingComputed, pricing.Kind)
		assert.Equal(t, 1000.0, pricing.Final())
		assert.False(t, pricing.Drifted())
	})

	t.Run("Discount with matching stored price: computed", func(t *testing.T) {
		p := &Product{Price: 1000}
		require.NoError(t, p.SetDiscount(25))

		pricing := p.PricingModel()

		assert.Equal(t, PricingComputed, pricing.Kind)
		assert.Equal(t, 750.0, pricing.Final())
		assert.False(t, pricing.Drifted())
	})

	t.Run("Stored price without discount: manual override", func(t *testing.T) {
		override := 899.0
		p := &Product{Price: 1000, DiscountedPrice: &override}

		pricing := p.PricingModel()

		assert.Equal(t, PricingManual, pricing.Kind)
		assert.Equal(t, 899.0, pricing.Final())
	})

	t.Run("Discount and disagreeing stored price: manual", func(t *testing.T) {
		discount := 25
		stored := 700.0 // 25% of 1000 would be 750
		p := &Product{Price: 1000, Discount: &discount, DiscountedPrice: &stored}

		pricing := p.PricingModel()

		assert.Equal(t, PricingManual, pricing.Kind)
		assert.Equal(t, 700.0, pricing.Final(), "the stored price is what the storefront showed")
	})
}

func TestPricing_Drifted(t *testing.T) {
	stale := 700.0
	drifted := Pricing{Kind: PricingComputed, Base: 1000, Discount: 25, Override: &stale}
	assert.True(t, drifted.Drifted())

	fresh := 750.0
	consistent := Pricing{Kind: PricingComputed, Base: 1000, Discount: 25, Override: &fresh}
	assert.False(t, consistent.Drifted())

	manual := Pricing{Kind: PricingManual, Base: 1000, Override: &stale}
	assert.False(t, manual.Drifted(), "manual pricing has nothing to drift from")
}

func TestCategory_SetDiscount(t *testing.T) {
	c := &Category{PriceFrom: 2000}

	require.NoError(t, c.SetDiscount(15))
	require.NotNil(t, c.DiscountedPrice)
	assert.Equal(t, 1700.0, *c.DiscountedPrice)
	assert.Equal(t, 1700.0, c.FinalPriceFrom())

	assert.ErrorIs(t, c.SetDiscount(101), ErrInvalidDiscount)
}

func TestProduct_Validate(t *testing.T) {
	t.Run("Valid product", func(t *testing.T) {
		p := &Product{Name: "Памятник", Price: 1000, Image: "img.jpg"}
		assert.Empty(t, p.Validate())
	})

	t.Run("All problems collected at once", func(t *testing.T) {
		bad := 150
		p := &Product{Name: "  ", Price: 0, Discount: &bad}

		problems := p.Validate()

		assert.Len(t, problems, 4)
		assert.Contains(t, problems, "name")
		assert.Contains(t, problems, "price")
		assert.Contains(t, problems, "image")
		assert.Contains(t, problems, "discount")
	})
}

func TestProduct_MaterialList(t *testing.T) {
	p := &Product{Materials: " Черный гранит , Золотая фольга,,  "}
	assert.Equal(t, []string{"Черный гранит", "Золотая фольга"}, p.MaterialList())

	empty := &Product{Materials: "   "}
	assert.Nil(t, empty.MaterialList())
}

func TestWorkingHours_DisplayString(t *testing.T) {
	tests := []struct {
		name  string
		hours WorkingHours
		want  string
	}{
		{
			name:  "Both schedules",
			hours: WorkingHours{Weekdays: "Пн-Пт 9:00-18:00", Weekend: "Сб-Вс 10:00-16:00"},
			want:  "Пн-Пт 9:00-18:00, Сб-Вс 10:00-16:00",
		},
		{
			name:  "Weekdays only",
			hours: WorkingHours{Weekdays: "Пн-Пт 9:00-18:00"},
			want:  "Пн-Пт 9:00-18:00",
		},
		{
			name:  "Weekend only",
			hours: WorkingHours{Weekend: "Сб-Вс 10:00-16:00"},
			want:  "Сб-Вс 10:00-16:00",
		},
		{
			name: "Empty",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.hours.DisplayString())
		})
	}
}

func TestParseWorkingHours_RoundTrip(t *testing.T) {
	original := WorkingHours{Weekdays: "Пн-Пт 9:00-18:00", Weekend: "Сб-Вс 10:00-16:00"}

	parsed := ParseWorkingHours(original.DisplayString())

	assert.Equal(t, original, parsed)
}

func TestParseWorkingHours_SingleSegment(t *testing.T) {
	parsed := ParseWorkingHours("Ежедневно 9:00-20:00")

	assert.Equal(t, "Ежедневно 9:00-20:00", parsed.Weekdays)
	assert.Empty(t, parsed.Weekend)
}
