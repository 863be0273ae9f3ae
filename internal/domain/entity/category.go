package entity

// Categories maps each group to its ordered subcategories.
type Categories map[string][]string

// DefaultCategories returns the category tree seeded on first use.
func DefaultCategories() Categories {
	return Categories{
		"ملابس":     {"نسائي", "ولادي", "رجالي"},
		"احذية":     {"رجالي", "نسائي"},
		"اكسسوارات": {"ساعات", "حقائب", "اخرى"},
	}
}
