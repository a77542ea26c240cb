package infra

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"quotedesk/internal/model"
)

// Seed inserts the baseline demo quotations and items. Fully idempotent:
// existing rows are left untouched (ON CONFLICT DO NOTHING on the quotation
// primary key and on the items composite unique index), so re-running on a
// populated store is a no-op. Startup calls this after migration and before
// the listener accepts traffic; failure is fatal to startup.
func Seed(db *gorm.DB) error {
	baselineDate := time.Date(2023, time.December, 23, 0, 0, 0, 0, time.UTC)

	quotations := []model.Quotation{
		{QuotationNumber: "QTN-23-12-2023-0001", Date: baselineDate},
		{QuotationNumber: "QTN-23-12-2023-0002", Date: baselineDate},
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&quotations).Error; err != nil {
		return fmt.Errorf("seed quotations: %w", err)
	}

	items := []model.Item{
		{
			QuotationNumber:  "QTN-23-12-2023-0001",
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
		},
		{
			QuotationNumber:  "QTN-23-12-2023-0002",
			ItemCode:         "X72-03-00",
			Description:      "SC End mill Φ12 x 20 FL x 12 SH x 75 OAL",
			Qty:              3,
			Pcs:              15,
			PricesHigh:       decimal.RequireFromString("4200.00"),
			PricesMedium:     decimal.RequireFromString("3100.00"),
			PricesEconomical: decimal.RequireFromString("2200.00"),
			Rod:              decimal.RequireFromString("1200.00"),
			Coating:          decimal.RequireFromString("900.00"),
			PreProcess:       decimal.RequireFromString("700.00"),
			PostProcess:      decimal.RequireFromString("500.00"),
		},
	}
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "quotation_number"}, {Name: "item_code"}},
		DoNothing: true,
	}).Create(&items).Error; err != nil {
		return fmt.Errorf("seed items: %w", err)
	}

	return nil
}
