package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"quotedesk/internal/dto"
	"quotedesk/internal/model"
	"quotedesk/internal/repository"
)

// PricingService applies per-category pricing adjustments to quotation items.
//
// Every call overwrites one category's packing/profit_margin/discount triple
// as a unit — the three columns change together inside one transaction, so a
// half-written tier can never be observed through this contract.
type PricingService interface {
	UpdateItemCategory(
		ctx context.Context,
		quotationNumber, itemCode, category string,
		req dto.UpdateCategoryRequest,
	) (*dto.ItemResponse, error)
}

type pricingService struct {
	items repository.ItemRepository
}

func NewPricingService(items repository.ItemRepository) PricingService {
	return &pricingService{items: items}
}

func (s *pricingService) UpdateItemCategory(
	ctx context.Context,
	quotationNumber, itemCode, category string,
	req dto.UpdateCategoryRequest,
) (*dto.ItemResponse, error) {
	// 1. Category gate — before any storage access. Case-sensitive.
	cat, err := model.ParseCategory(category)
	if err != nil {
		return nil, ErrInvalidCategory
	}

	// 2. Payload gate. The handler's validator already rejects missing fields;
	// this keeps the contract intact for callers that skip HTTP binding.
	// No range checks: negative margins and discounts are allowed.
	if req.Packing == nil || req.ProfitMargin == nil || req.Discount == nil {
		return nil, ErrPricingFieldsRequired
	}

	// 3+4. Static column resolution and the atomic conditional update both
	// live in the repository; zero matched rows surfaces as ErrRecordNotFound
	// after rollback.
	updated, err := s.items.UpdateCategoryTriple(
		ctx, quotationNumber, itemCode, cat,
		*req.Packing, *req.ProfitMargin, *req.Discount,
	)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("update %s pricing for %s/%s: %w", cat, quotationNumber, itemCode, err)
	}

	resp := dto.NewItemResponse(*updated)
	return &resp, nil
}
