// Package catalog narrows and orders the product list for the storefront.
package catalog

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"storefront/internal/domain/entity"
)

// Result is the outcome of Apply. CatalogEmpty and NoMatches are never both true.
type Result struct {
	Products     []entity.Product `json:"products"`
	CatalogEmpty bool             `json:"catalogEmpty"` // the input list had no products at all
	NoMatches    bool             `json:"noMatches"`    // products exist but none survived the search and filter
}

// Apply runs search, category filter and sort, in that order, over products.
// The input slice is never modified.
func Apply(products []entity.Product, state entity.FilterState) Result {
	if len(products) == 0 {
		return Result{Products: []entity.Product{}, CatalogEmpty: true}
	}

	out := Search(products, state.SearchQuery)
	out = FilterCategory(out, state.Category)
	out = Sort(out, state.Sort)

	return Result{Products: out, NoMatches: len(out) == 0}
}

// Search keeps products whose title and description contain query,
// ignoring case. A blank query keeps everything.
func Search(products []entity.Product, query string) []entity.Product {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return slices.Clone(products)
	}

	out := make([]entity.Product, 0, len(products))
	for _, p := range products {
		haystack := strings.ToLower(p.Title + " " + p.Description)
		if strings.Contains(haystack, needle) {
			out = append(out, p)
		}
	}

	return out
}

// FilterCategory keeps products in filter's group and, when set, its subcategory.
// A nil filter keeps everything.
func FilterCategory(products []entity.Product, filter *entity.CategoryFilter) []entity.Product {
	if filter == nil || filter.Group == "" {
		return slices.Clone(products)
	}

	out := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if p.Group != filter.Group {
			continue
		}
		if filter.Subcategory != "" && p.Subcategory != filter.Subcategory {
			continue
		}
		out = append(out, p)
	}

	return out
}

// Sort returns a stably sorted copy of products.
// SortNewest leaves the order alone unless some product carries a creation
// time; undated products then go last.
func Sort(products []entity.Product, mode entity.SortMode) []entity.Product {
	out := slices.Clone(products)

	switch mode {
	case entity.SortPriceAsc:
		slices.SortStableFunc(out, func(a, b entity.Product) int {
			return cmp.Compare(a.Price, b.Price)
		})
	case entity.SortPriceDesc:
		slices.SortStableFunc(out, func(a, b entity.Product) int {
			return cmp.Compare(b.Price, a.Price)
		})
	case entity.SortNewest:
		if !slices.ContainsFunc(out, func(p entity.Product) bool { return p.CreatedAt != nil }) {
			break
		}
		slices.SortStableFunc(out, func(a, b entity.Product) int {
			return createdAt(b).Compare(createdAt(a))
		})
	}

	return out
}

func createdAt(p entity.Product) time.Time {
	if p.CreatedAt == nil {
		return time.Time{}
	}

	return *p.CreatedAt
}
