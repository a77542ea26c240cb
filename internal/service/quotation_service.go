package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"quotedesk/internal/dto"
	"quotedesk/internal/repository"
)

// QuotationService defines the read-side operations over quotations and items.
type QuotationService interface {
	ListQuotations(ctx context.Context) ([]dto.QuotationResponse, error)
	GetItems(ctx context.Context, quotationNumber string) (*dto.QuotationItemsResponse, error)
}

type quotationService struct {
	quotations repository.QuotationRepository
	items      repository.ItemRepository
}

func NewQuotationService(
	quotations repository.QuotationRepository,
	items repository.ItemRepository,
) QuotationService {
	return &quotationService{quotations: quotations, items: items}
}

// ListQuotations returns every quotation, newest date first. An empty store
// yields an empty slice, never an error.
func (s *quotationService) ListQuotations(ctx context.Context) ([]dto.QuotationResponse, error) {
	list, err := s.quotations.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list quotations: %w", err)
	}
	result := make([]dto.QuotationResponse, 0, len(list))
	for _, q := range list {
		result = append(result, dto.NewQuotationResponse(q))
	}
	return result, nil
}

// GetItems returns the quotation's date and all of its items in insertion
// order. The quotation must exist — a quotation with zero items is a valid
// empty result, an unknown number is ErrQuotationNotFound.
func (s *quotationService) GetItems(ctx context.Context, quotationNumber string) (*dto.QuotationItemsResponse, error) {
	q, err := s.quotations.FindByNumber(ctx, quotationNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuotationNotFound
		}
		return nil, fmt.Errorf("find quotation %s: %w", quotationNumber, err)
	}

	items, err := s.items.ListByQuotation(ctx, quotationNumber)
	if err != nil {
		return nil, fmt.Errorf("list items for %s: %w", quotationNumber, err)
	}

	resp := &dto.QuotationItemsResponse{
		Date:  q.Date.Format(dto.DateFormat),
		Items: make([]dto.ItemResponse, 0, len(items)),
	}
	for _, it := range items {
		resp.Items = append(resp.Items, dto.NewItemResponse(it))
	}
	return resp, nil
}
