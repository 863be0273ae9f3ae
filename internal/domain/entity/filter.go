package entity

import (
	"strings"
)

// SortMode selects the catalog ordering.
type SortMode string

const (
	SortDefault   SortMode = "default"
	SortNewest    SortMode = "newest"
	SortPriceAsc  SortMode = "price_asc"
	SortPriceDesc SortMode = "price_desc"
)

// ParseSortMode maps unknown or empty values to SortDefault.
func ParseSortMode(s string) SortMode {
	switch mode := SortMode(strings.TrimSpace(s)); mode {
	case SortNewest, SortPriceAsc, SortPriceDesc:
		return mode
	default:
		return SortDefault
	}
}

// CategoryFilter narrows the catalog to a group and optionally a subcategory.
type CategoryFilter struct {
	Group       string `json:"group"`
	Subcategory string `json:"subcategory,omitempty"`
}

// FilterState is the per-session browsing state.
type FilterState struct {
	SearchQuery string          `json:"searchQuery"`
	Category    *CategoryFilter `json:"category"`
	Sort        SortMode        `json:"sort"`
}

// Label describes the active category filter.
func (s FilterState) Label() string {
	if s.Category == nil || s.Category.Group == "" {
		return "عرض: الكل"
	}
	if s.Category.Subcategory == "" {
		return "عرض: " + s.Category.Group
	}

	return "عرض: " + s.Category.Group + " / " + s.Category.Subcategory
}
