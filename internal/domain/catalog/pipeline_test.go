package catalog

import (
	"testing"
	"time"

	"storefront/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(day int) *time.Time {
	t := time.Date(2024, time.March, day, 0, 0, 0, 0, time.UTC)

	return &t
}

func titles(products []entity.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.Title)
	}

	return out
}

func sampleCatalog() []entity.Product {
	return []entity.Product{
		{Title: "Runner", Description: "light sneaker", Price: 3000, Group: "Shoes", Subcategory: "Men", CreatedAt: at(2)},
		{Title: "Tote", Description: "Canvas bag", Price: 1500, Group: "Bags"},
		{Title: "Heel", Description: "Evening shoe", Price: 4500, Group: "Shoes", Subcategory: "Women", CreatedAt: at(5)},
		{Title: "Watch", Description: "steel", Price: 9000, Group: "Accessories", CreatedAt: at(1)},
	}
}

func TestApply_EmptyCatalog(t *testing.T) {
	res := Apply(nil, entity.FilterState{SearchQuery: "x"})

	assert.True(t, res.CatalogEmpty)
	assert.False(t, res.NoMatches)
	assert.Empty(t, res.Products)
}

func TestApply_NoMatchesIsDistinct(t *testing.T) {
	res := Apply(sampleCatalog(), entity.FilterState{SearchQuery: "umbrella"})

	assert.False(t, res.CatalogEmpty)
	assert.True(t, res.NoMatches)
	assert.Empty(t, res.Products)
}

func TestSearch(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "blank keeps all", query: "  ", want: []string{"Runner", "Tote", "Heel", "Watch"}},
		{name: "title case-insensitive", query: "TOTE", want: []string{"Tote"}},
		{name: "description", query: "shoe", want: []string{"Heel"}},
		{name: "trimmed", query: "  steel ", want: []string{"Watch"}},
		{name: "spans title and description", query: "runner light", want: []string{"Runner"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, titles(Search(sampleCatalog(), tt.query)))
		})
	}
}

func TestFilterCategory_GroupKeepsRelativeOrder(t *testing.T) {
	products := []entity.Product{
		{Title: "s1", Group: "Shoes"},
		{Title: "b1", Group: "Bags"},
		{Title: "s2", Group: "Shoes"},
	}

	got := FilterCategory(products, &entity.CategoryFilter{Group: "Shoes"})

	assert.Equal(t, []string{"s1", "s2"}, titles(got))
}

func TestFilterCategory_Subcategory(t *testing.T) {
	got := FilterCategory(sampleCatalog(), &entity.CategoryFilter{Group: "Shoes", Subcategory: "Women"})
	assert.Equal(t, []string{"Heel"}, titles(got))

	got = FilterCategory(sampleCatalog(), nil)
	assert.Len(t, got, 4)
}

func TestSort_PriceAscThenDescIsReversed(t *testing.T) {
	asc := Sort(sampleCatalog(), entity.SortPriceAsc)
	desc := Sort(sampleCatalog(), entity.SortPriceDesc)

	assert.Equal(t, []string{"Tote", "Runner", "Heel", "Watch"}, titles(asc))
	for i := range asc {
		assert.Equal(t, asc[i].Title, desc[len(desc)-1-i].Title)
	}
}

func TestSort_PriceTiesAreStable(t *testing.T) {
	products := []entity.Product{
		{Title: "a", Price: 10},
		{Title: "b", Price: 5},
		{Title: "c", Price: 10},
	}

	assert.Equal(t, []string{"b", "a", "c"}, titles(Sort(products, entity.SortPriceAsc)))
	assert.Equal(t, []string{"a", "c", "b"}, titles(Sort(products, entity.SortPriceDesc)))
}

func TestSort_NewestUndatedLast(t *testing.T) {
	got := Sort(sampleCatalog(), entity.SortNewest)

	assert.Equal(t, []string{"Heel", "Runner", "Watch", "Tote"}, titles(got))
}

func TestSort_NewestWithoutDatesKeepsOrder(t *testing.T) {
	products := []entity.Product{{Title: "x"}, {Title: "y"}, {Title: "z"}}

	assert.Equal(t, []string{"x", "y", "z"}, titles(Sort(products, entity.SortNewest)))
	assert.Equal(t, []string{"x", "y", "z"}, titles(Sort(products, entity.SortMode("bogus"))))
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	products := sampleCatalog()
	before := titles(products)

	_ = Apply(products, entity.FilterState{Sort: entity.SortPriceDesc})

	assert.Equal(t, before, titles(products))
}

func TestApply_Idempotent(t *testing.T) {
	state := entity.FilterState{
		SearchQuery: "e",
		Category:    &entity.CategoryFilter{Group: "Shoes"},
		Sort:        entity.SortNewest,
	}

	once := Apply(sampleCatalog(), state)
	twice := Apply(once.Products, state)

	require.NotEmpty(t, once.Products)
	assert.Equal(t, titles(once.Products), titles(twice.Products))
}
