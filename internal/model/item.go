package model

import (
	"github.com/shopspring/decimal"
)

// Item is one line entry of a Quotation: base costs plus three independently
// adjustable pricing tiers. The nine tier columns are nullable — a tier stays
// NULL until its packing/profit_margin/discount triple is set, and the triple
// is only ever written as a unit inside one transaction.
//
// (quotation_number, item_code) carries a composite unique index so the
// pricing update can address exactly one row.
type Item struct {
	ID              uint   `gorm:"primaryKey"`
	QuotationNumber string `gorm:"not null;uniqueIndex:idx_items_quotation_item_code,priority:1"`
	ItemCode        string `gorm:"not null;uniqueIndex:idx_items_quotation_item_code,priority:2"`
	Description     string `gorm:"type:text;not null"`
	Qty             int    `gorm:"not null"`
	Pcs             int    `gorm:"not null"`

	PricesHigh       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	PricesMedium     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	PricesEconomical decimal.Decimal `gorm:"type:decimal(10,2);not null"`

	Rod         decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Coating     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	PreProcess  decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	PostProcess decimal.Decimal `gorm:"type:decimal(10,2);not null"`

	HighPacking      *decimal.Decimal `gorm:"type:decimal(10,2)"`
	HighProfitMargin *decimal.Decimal `gorm:"type:decimal(10,2)"`
	HighDiscount     *decimal.Decimal `gorm:"type:decimal(10,2)"`

	MediumPacking      *decimal.Decimal `gorm:"type:decimal(10,2)"`
	MediumProfitMargin *decimal.Decimal `gorm:"type:decimal(10,2)"`
	MediumDiscount     *decimal.Decimal `gorm:"type:decimal(10,2)"`

	EconomicalPacking      *decimal.Decimal `gorm:"type:decimal(10,2)"`
	EconomicalProfitMargin *decimal.Decimal `gorm:"type:decimal(10,2)"`
	EconomicalDiscount     *decimal.Decimal `gorm:"type:decimal(10,2)"`

	Quotation Quotation `gorm:"foreignKey:QuotationNumber;references:QuotationNumber"`
}

func (Item) TableName() string { return "items" }
