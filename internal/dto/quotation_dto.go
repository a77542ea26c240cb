package dto

import (
	"github.com/shopspring/decimal"

	"quotedesk/internal/model"
)

// DateFormat is the wire format for quotation dates (DATE column, no time part).
const DateFormat = "2006-01-02"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// UpdateCategoryRequest carries the pricing triple for one category of one item.
// All three values are mandatory — there is no partial-update path; every call
// fully overwrites the addressed category's triple. Pointers distinguish
// "absent" from "zero" so the validator can reject missing fields.
type UpdateCategoryRequest struct {
	Packing      *decimal.Decimal `json:"packing"       validate:"required"`
	ProfitMargin *decimal.Decimal `json:"profit_margin" validate:"required"`
	Discount     *decimal.Decimal `json:"discount"      validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type QuotationResponse struct {
	QuotationNumber string `json:"quotation_number"`
	Date            string `json:"date"`
}

type QuotationItemsResponse struct {
	Date  string         `json:"date"`
	Items []ItemResponse `json:"items"`
}

type ItemResponse struct {
	ID              uint   `json:"id"`
	QuotationNumber string `json:"quotation_number"`
	ItemCode        string `json:"item_code"`
	Description     string `json:"description"`
	Qty             int    `json:"qty"`
	Pcs             int    `json:"pcs"`

	PricesHigh       decimal.Decimal `json:"prices_high"`
	PricesMedium     decimal.Decimal `json:"prices_medium"`
	PricesEconomical decimal.Decimal `json:"prices_economical"`

	Rod         decimal.Decimal `json:"rod"`
	Coating     decimal.Decimal `json:"coating"`
	PreProcess  decimal.Decimal `json:"pre_process"`
	PostProcess decimal.Decimal `json:"post_process"`

	HighPacking      *decimal.Decimal `json:"high_packing"`
	HighProfitMargin *decimal.Decimal `json:"high_profit_margin"`
	HighDiscount     *decimal.Decimal `json:"high_discount"`

	MediumPacking      *decimal.Decimal `json:"medium_packing"`
	MediumProfitMargin *decimal.Decimal `json:"medium_profit_margin"`
	MediumDiscount     *decimal.Decimal `json:"medium_discount"`

	EconomicalPacking      *decimal.Decimal `json:"economical_packing"`
	EconomicalProfitMargin *decimal.Decimal `json:"economical_profit_margin"`
	EconomicalDiscount     *decimal.Decimal `json:"economical_discount"`
}

// ─── Model → DTO mapping ─────────────────────────────────────────────────────

func NewQuotationResponse(q model.Quotation) QuotationResponse {
	return QuotationResponse{
		QuotationNumber: q.QuotationNumber,
		Date:            q.Date.Format(DateFormat),
	}
}

func NewItemResponse(it model.Item) ItemResponse {
	return ItemResponse{
		ID:              it.ID,
		QuotationNumber: it.QuotationNumber,
		ItemCode:        it.ItemCode,
		Description:     it.Description,
		Qty:             it.Qty,
		Pcs:             it.Pcs,

		PricesHigh:       it.PricesHigh,
		PricesMedium:     it.PricesMedium,
		PricesEconomical: it.PricesEconomical,

		Rod:         it.Rod,
		Coating:     it.Coating,
		PreProcess:  it.PreProcess,
		PostProcess: it.PostProcess,

		HighPacking:      it.HighPacking,
		HighProfitMargin: it.HighProfitMargin,
		HighDiscount:     it.HighDiscount,

		MediumPacking:      it.MediumPacking,
		MediumProfitMargin: it.MediumProfitMargin,
		MediumDiscount:     it.MediumDiscount,

		EconomicalPacking:      it.EconomicalPacking,
		EconomicalProfitMargin: it.EconomicalProfitMargin,
		EconomicalDiscount:     it.EconomicalDiscount,
	}
}
