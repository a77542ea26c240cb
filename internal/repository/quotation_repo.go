package repository

import (
	"context"

	"gorm.io/gorm"

	"quotedesk/internal/model"
)

// QuotationRepository defines the data access contract for quotations.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via stubs.
type QuotationRepository interface {
	List(ctx context.Context) ([]model.Quotation, error)
	FindByNumber(ctx context.Context, number string) (*model.Quotation, error)
}

type quotationRepo struct{ db *gorm.DB }

func NewQuotationRepository(db *gorm.DB) QuotationRepository {
	return &quotationRepo{db: db}
}

// List returns all quotations newest-first. quotation_number breaks date ties
// so repeated calls see the same order.
func (r *quotationRepo) List(ctx context.Context) ([]model.Quotation, error) {
	var list []model.Quotation
	err := r.db.WithContext(ctx).
		Order("date DESC").
		Order("quotation_number ASC").
		Find(&list).Error
	return list, err
}

func (r *quotationRepo) FindByNumber(ctx context.Context, number string) (*model.Quotation, error) {
	var q model.Quotation
	err := r.db.WithContext(ctx).First(&q, "quotation_number = ?", number).Error
	if err != nil {
		return nil, err
	}
	return &q, nil
}
