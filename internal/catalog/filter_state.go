package catalog

import (
	"net/url"
	"sort"
	"strconv"
	"strings"
)

type SortMode string

const (
	SortPriceAsc  SortMode = "price-asc"
	SortPriceDesc SortMode = "price-desc"
	SortNew       SortMode = "new"
	SortDiscount  SortMode = "discount"
	SortPopular   SortMode = "popular" // default
)

// Query parameter names of the shareable catalog URL contract
const (
	paramSearch     = "search"
	paramSortBy     = "sortBy"
	paramCategories = "categories"
	paramMaterials  = "materials"
	paramPriceMin   = "priceMin"
	paramPriceMax   = "priceMax"
)

// FilterState is the complete, URL-serializable description of the catalog
// view: any state it holds must be reproducible from a fresh parse of the
// query string, otherwise links stop being shareable.
type FilterState struct {
	Search             string
	SortBy             SortMode
	SelectedCategories map[uint]bool
	SelectedMaterials  map[string]bool
	PriceMin           *float64
	PriceMax           *float64
}

// NewFilterState returns the default state (everything off, popular sort)
func NewFilterState() FilterState {
	return FilterState{
		SortBy:             SortPopular,
		SelectedCategories: make(map[uint]bool),
		SelectedMaterials:  make(map[string]bool),
	}
}

// ParseFilterState derives a state from URL query values. Malformed or
// unrecognized parameters are treated as absent rather than rejected.
// A preset category (a "view category" link) seeds the selection only when
// the URL carries no category filter of its own.
func ParseFilterState(query url.Values, presetCategoryID *uint) FilterState {
	state := NewFilterState()

	if search := strings.TrimSpace(query.Get(paramSearch)); search != "" {
		state.Search = search
	}

	switch SortMode(query.Get(paramSortBy)) {
	case SortPriceAsc:
		state.SortBy = SortPriceAsc
	case SortPriceDesc:
		state.SortBy = SortPriceDesc
	case SortNew:
		state.SortBy = SortNew
	case SortDiscount:
		state.SortBy = SortDiscount
	default:
		state.SortBy = SortPopular
	}

	for _, token := range splitCSV(query.Get(paramCategories)) {
		if id, err := strconv.ParseUint(token, 10, 32); err == nil {
			state.SelectedCategories[uint(id)] = true
		}
	}
	if len(state.SelectedCategories) == 0 && presetCategoryID != nil {
		state.SelectedCategories[*presetCategoryID] = true
	}

	for _, token := range splitCSV(query.Get(paramMaterials)) {
		state.SelectedMaterials[NormalizeMaterial(token)] = true
	}

	if min, err := strconv.ParseFloat(query.Get(paramPriceMin), 64); err == nil {
		state.PriceMin = &min
	}
	if max, err := strconv.ParseFloat(query.Get(paramPriceMax), 64); err == nil {
		state.PriceMax = &max
	}

	return state
}

// Values serializes the state back into query values. Fields equal to their
// default are omitted so canonical links stay short, and a round-trip
// through ParseFilterState reproduces an equivalent state.
func (s FilterState) Values() url.Values {
	values := url.Values{}

	if s.Search != "" {
		values.Set(paramSearch, s.Search)
	}
	if s.SortBy != SortPopular && s.SortBy != "" {
		values.Set(paramSortBy, string(s.SortBy))
	}
	if len(s.SelectedCategories) > 0 {
		ids := make([]uint, 0, len(s.SelectedCategories))
		for id := range s.SelectedCategories {
			ids = append(ids, id)
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
		tokens := make([]string, len(ids))
		for i, id := range ids {
			tokens[i] = strconv.FormatUint(uint64(id), 10)
		}
		values.Set(paramCategories, strings.Join(tokens, ","))
	}
	if len(s.SelectedMaterials) > 0 {
		materials := make([]string, 0, len(s.SelectedMaterials))
		for name := range s.SelectedMaterials {
			materials = append(materials, name)
		}
		sort.Strings(materials)
		values.Set(paramMaterials, strings.Join(materials, ","))
	}
	if s.PriceMin != nil {
		values.Set(paramPriceMin, strconv.FormatFloat(*s.PriceMin, 'f', -1, 64))
	}
	if s.PriceMax != nil {
		values.Set(paramPriceMax, strconv.FormatFloat(*s.PriceMax, 'f', -1, 64))
	}

	return values
}

// IsDefault reports whether the state carries no active filters
func (s FilterState) IsDefault() bool {
	return len(s.Values()) == 0
}

func splitCSV(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		if token := strings.TrimSpace(part); token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}
