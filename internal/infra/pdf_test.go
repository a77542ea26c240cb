package infra

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quotedesk/internal/model"
)

func TestGenerateQuotationPDF(t *testing.T) {
	q := &model.Quotation{
		QuotationNumber: "QTN-23-12-2023-0001",
		Date:            time.Date(2023, time.December, 23, 0, 0, 0, 0, time.UTC),
	}
	items := []model.Item{{
		QuotationNumber:  q.QuotationNumber,
		ItemCode:         "X72-02-00",
		Description:      "SC End mill Φ10 x 15 FL x 10 SH x 64 OAL",
		Qty:              5,
		Pcs:              21,
		PricesHigh:       decimal.RequireFromString("3664.18"),
		PricesMedium:     decimal.RequireFromString("2559.39"),
		PricesEconomical: decimal.RequireFromString("1858.97"),
		Rod:              decimal.RequireFromString("1000.00"),
		Coating:          decimal.RequireFromString("800.00"),
		PreProcess:       decimal.RequireFromString("600.00"),
		PostProcess:      decimal.RequireFromString("400.00"),
	}}

	b, err := GenerateQuotationPDF(q, items)
	require.NoError(t, err)
	require.NotEmpty(t, b)
	assert.Equal(t, "%PDF", string(b[:4]))
}

func TestGenerateQuotationPDFNoItems(t *testing.T) {
	q := &model.Quotation{
		QuotationNumber: "QTN-23-12-2023-0002",
		Date:            time.Date(2023, time.December, 23, 0, 0, 0, 0, time.UTC),
	}

	b, err := GenerateQuotationPDF(q, nil)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(b[:4]))
}
