package catalog

import (
	"net/url"
)

// StateManager is the single source of truth for the current catalog view.
// It keeps a FilterState and the canonical query string mutually consistent:
// every mutation re-serializes the state, and Sync re-derives it when the
// query changes externally (browser back/forward in the original UI).
type StateManager struct {
	state FilterState
}

func NewStateManager(query url.Values, presetCategoryID *uint) *StateManager {
	return &StateManager{state: ParseFilterState(query, presetCategoryID)}
}

// State returns a copy of the current state
func (m *StateManager) State() FilterState {
	return m.state.clone()
}

// Query returns the canonical query string for the current state.
// Callers apply it with history-replace semantics: filter tweaks must not
// pile up browser history entries.
func (m *StateManager) Query() string {
	return m.state.Values().Encode()
}

// Sync re-derives the state from an externally changed query string
func (m *StateManager) Sync(query url.Values) {
	m.state = ParseFilterState(query, nil)
}

func (m *StateManager) SetSearch(search string) {
	m.state.Search = search
}

func (m *StateManager) SetSort(mode SortMode) {
	switch mode {
	case SortPriceAsc, SortPriceDesc, SortNew, SortDiscount:
		m.state.SortBy = mode
	default:
		m.state.SortBy = SortPopular
	}
}

func (m *StateManager) SetPriceMin(min *float64) {
	m.state.PriceMin = min
}

func (m *StateManager) SetPriceMax(max *float64) {
	m.state.PriceMax = max
}

// ToggleCategory adds the category to the selection, or removes it when
// already selected
func (m *StateManager) ToggleCategory(id uint) {
	if m.state.SelectedCategories[id] {
		delete(m.state.SelectedCategories, id)
	} else {
		m.state.SelectedCategories[id] = true
	}
}

// ToggleMaterial adds or removes a material; names are normalized so the
// selection matches regardless of the caller's casing
func (m *StateManager) ToggleMaterial(name string) {
	normalized := NormalizeMaterial(name)
	if m.state.SelectedMaterials[normalized] {
		delete(m.state.SelectedMaterials, normalized)
	} else {
		m.state.SelectedMaterials[normalized] = true
	}
}

// Reset restores every field to its default and clears the query
func (m *StateManager) Reset() {
	m.state = NewFilterState()
}

func (s FilterState) clone() FilterState {
	out := s
	out.SelectedCategories = make(map[uint]bool, len(s.SelectedCategories))
	for id := range s.SelectedCategories {
		out.SelectedCategories[id] = true
	}
	out.SelectedMaterials = make(map[string]bool, len(s.SelectedMaterials))
	for name := range s.SelectedMaterials {
		out.SelectedMaterials[name] = true
	}
	if s.PriceMin != nil {
		min := *s.PriceMin
		out.PriceMin = &min
	}
	if s.PriceMax != nil {
		max := *s.PriceMax
		out.PriceMax = &max
	}
	return out
}
