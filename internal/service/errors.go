package service

import "errors"

// Sentinel errors separating caller faults from storage faults. Handlers map
// these to HTTP statuses with errors.Is; anything else coming out of a service
// is a storage-level failure and surfaces as a 500.
var (
	// ErrInvalidCategory — category outside {high, medium, economical}.
	ErrInvalidCategory = errors.New("invalid category")

	// ErrPricingFieldsRequired — packing, profit_margin and discount must all
	// be present; the update has no partial path.
	ErrPricingFieldsRequired = errors.New("packing, profit_margin and discount are all required")

	// ErrQuotationNotFound — no quotation with the given number.
	ErrQuotationNotFound = errors.New("quotation not found")

	// ErrItemNotFound — no item matches (quotation_number, item_code).
	ErrItemNotFound = errors.New("item not found")
)
