package catalog

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/granitdvor/monument-backend/internal/app/model"
)

// Apply computes the visible, ordered product subset for a filter state.
// It is a pure function: the same inputs always yield the same list in the
// same order, and the input slice is never mutated. The pipeline steps run
// in a fixed order because each narrows or reorders what the next one sees.
func Apply(products []model.Product, state FilterState) []model.Product {
	result := make([]model.Product, 0, len(products))
	result = append(result, products...)

	result = filterBySearch(result, state.Search)
	result = filterByCategories(result, state.SelectedCategories)
	result = filterByMaterials(result, state.SelectedMaterials)
	result = filterByPriceRange(result, state.PriceMin, state.PriceMax)
	result = applySort(result, state.SortBy)

	return result
}

// filterBySearch keeps products whose name or short description contains
// the query, case-insensitively. An empty query filters nothing.
func filterBySearch(products []model.Product, search string) []model.Product {
	query := strings.ToLower(strings.TrimSpace(search))
	if query == "" {
		return products
	}

	filtered := products[:0]
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), query) ||
			strings.Contains(strings.ToLower(p.ShortDescription), query) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// filterByCategories keeps products whose category is selected. While a
// category filter is active, products without a category are excluded.
func filterByCategories(products []model.Product, selected map[uint]bool) []model.Product {
	if len(selected) == 0 {
		return products
	}

	filtered := products[:0]
	for _, p := range products {
		if p.CategoryID != nil && selected[*p.CategoryID] {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// filterByMaterials keeps products whose normalized material set intersects
// the selection (OR semantics across selected materials)
func filterByMaterials(products []model.Product, selected map[string]bool) []model.Product {
	if len(selected) == 0 {
		return products
	}

	filtered := products[:0]
	for _, p := range products {
		for _, token := range p.MaterialList() {
			if selected[NormalizeMaterial(token)] {
				filtered = append(filtered, p)
				break
			}
		}
	}
	return filtered
}

// filterByPriceRange applies inclusive bounds against the base price, not
// the discounted one; either bound may be absent
func filterByPriceRange(products []model.Product, min, max *float64) []model.Product {
	if min == nil && max == nil {
		return products
	}

	filtered := products[:0]
	for _, p := range products {
		if min != nil && p.Price < *min {
			continue
		}
		if max != nil && p.Price > *max {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

// applySort is the final, mutually exclusive step: the price modes reorder,
// "new" and "discount" narrow without reordering, and "popular" (the
// default, also the fallback for unknown values) is a stable partition.
func applySort(products []model.Product, mode SortMode) []model.Product {
	switch mode {
	case SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].FinalPrice() < products[j].FinalPrice()
		})
	case SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].FinalPrice() > products[j].FinalPrice()
		})
	case SortNew:
		filtered := products[:0]
		for _, p := range products {
			if p.IsNew {
				filtered = append(filtered, p)
			}
		}
		return filtered
	case SortDiscount:
		filtered := products[:0]
		for _, p := range products {
			if p.IsOnSale() {
				filtered = append(filtered, p)
			}
		}
		return filtered
	default: // SortPopular
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].IsPopular && !products[j].IsPopular
		})
	}
	return products
}

// NormalizeMaterial trims whitespace and Title-Cases a material token
// ("ЗОЛОТАЯ фольга" → "Золотая фольга") so that comparisons ignore the
// casing admins happened to type
func NormalizeMaterial(token string) string {
	trimmed := strings.TrimSpace(token)
	if trimmed == "" {
		return ""
	}

	lower := strings.ToLower(trimmed)
	first, size := utf8.DecodeRuneInString(lower)
	if first == utf8.RuneError {
		return lower
	}
	return string(unicode.ToUpper(first)) + lower[size:]
}

// CollectMaterials returns the deduplicated, sorted union of normalized
// material names across all products
func CollectMaterials(products []model.Product) []string {
	seen := make(map[string]bool)
	for _, p := range products {
		for _, token := range p.MaterialList() {
			if normalized := NormalizeMaterial(token); normalized != "" {
				seen[normalized] = true
			}
		}
	}

	materials := make([]string, 0, len(seen))
	for name := range seen {
		materials = append(materials, name)
	}
	sort.Strings(materials)
	return materials
}

// PriceRange holds the observed min/max base prices
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// ObservedPriceRange computes the min/max base price across products.
// An empty product list yields a zero-width range.
func ObservedPriceRange(products []model.Product) PriceRange {
	if len(products) == 0 {
		return PriceRange{}
	}

	r := PriceRange{Min: products[0].Price, Max: products[0].Price}
	for _, p := range products[1:] {
		if p.Price < r.Min {
			r.Min = p.Price
		}
		if p.Price > r.Max {
			r.Max = p.Price
		}
	}
	return r
}
