package model

import "fmt"

// Category is one of the three pricing tiers of an Item.
// Parsing is case-sensitive — "High" is not a category.
type Category string

const (
	CategoryHigh       Category = "high"
	CategoryMedium     Category = "medium"
	CategoryEconomical Category = "economical"
)

// ParseCategory validates a raw category string. It is the single gate
// between user input and column selection: a Category value that exists at
// all is guaranteed to map to a fixed column triple.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryHigh, CategoryMedium, CategoryEconomical:
		return Category(s), nil
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// Columns returns the three column names backing this category's
// packing/profit_margin/discount triple. The mapping is static — queries are
// never assembled from caller-supplied text.
func (c Category) Columns() (packing, profitMargin, discount string) {
	switch c {
	case CategoryMedium:
		return "medium_packing", "medium_profit_margin", "medium_discount"
	case CategoryEconomical:
		return "economical_packing", "economical_profit_margin", "economical_discount"
	default:
		return "high_packing", "high_profit_margin", "high_discount"
	}
}
