package model

import "time"

// Quotation is a priced proposal identified by its quotation number.
// Rows are immutable once created — items carry all mutable pricing state.
type Quotation struct {
	QuotationNumber string    `gorm:"primaryKey"`
	Date            time.Time `gorm:"type:date;not null"`

	Items []Item `gorm:"foreignKey:QuotationNumber;references:QuotationNumber"`
}

func (Quotation) TableName() string { return "quotations" }
