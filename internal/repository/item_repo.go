package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"quotedesk/internal/model"
)

// ItemRepository defines the data access contract for quotation items.
type ItemRepository interface {
	ListByQuotation(ctx context.Context, quotationNumber string) ([]model.Item, error)

	// UpdateCategoryTriple overwrites the three columns of one pricing tier on
	// the item addressed by (quotation_number, item_code), inside a single
	// transaction, and returns the full updated row. Returns
	// gorm.ErrRecordNotFound when no row matches.
	UpdateCategoryTriple(
		ctx context.Context,
		quotationNumber, itemCode string,
		category model.Category,
		packing, profitMargin, discount decimal.Decimal,
	) (*model.Item, error)
}

type itemRepo struct{ db *gorm.DB }

func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepo{db: db}
}

// ListByQuotation returns the quotation's items in insertion (id) order.
// An existing quotation with zero items yields an empty slice, not an error.
func (r *itemRepo) ListByQuotation(ctx context.Context, quotationNumber string) ([]model.Item, error) {
	var items []model.Item
	err := r.db.WithContext(ctx).
		Where("quotation_number = ?", quotationNumber).
		Order("id ASC").
		Find(&items).Error
	return items, err
}

func (r *itemRepo) UpdateCategoryTriple(
	ctx context.Context,
	quotationNumber, itemCode string,
	category model.Category,
	packing, profitMargin, discount decimal.Decimal,
) (*model.Item, error) {
	// Column names come from the static Category mapping, never from request
	// text — category has already passed ParseCategory.
	packingCol, marginCol, discountCol := category.Columns()

	var updated model.Item
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Item{}).
			Where("quotation_number = ? AND item_code = ?", quotationNumber, itemCode).
			Updates(map[string]interface{}{
				packingCol:  packing,
				marginCol:   profitMargin,
				discountCol: discount,
			})
		if res.Error != nil {
			return res.Error
		}
		// Existence is decided by match count: the pair is unique, so zero
		// affected rows means no such item. Returning an error rolls the
		// transaction back.
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.
			Where("quotation_number = ? AND item_code = ?", quotationNumber, itemCode).
			First(&updated).Error
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
