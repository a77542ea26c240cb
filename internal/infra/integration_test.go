//go:build integration

package infra

// integration_test.go
// Storage-layer integration tests against real Postgres via testcontainers.
// Run with: go test -tags integration ./internal/infra/... -v
//
// Covered:
//   - migration + double seed is idempotent
//   - quotation listing order (date DESC, quotation_number ASC)
//   - category triple update touches exactly three columns and is
//     NotFound on a missing (quotation_number, item_code) pair

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"

	"quotedesk/internal/model"
	"quotedesk/internal/repository"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	pgC, err := tcPostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcPostgres.WithDatabase("quotedesk_test"),
		tcPostgres.WithUsername("quotedesk"),
		tcPostgres.WithPassword("quotedesk"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(context.Background()) })

	dsn, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := NewDatabase(dsn)
	require.NoError(t, err)
	return db
}

func TestSeedIsIdempotent(t *testing.T) {
	db := setupDB(t)

	require.NoError(t, Seed(db))
	require.NoError(t, Seed(db))

	var quotations, items int64
	require.NoError(t, db.Model(&model.Quotation{}).Count(&quotations).Error)
	require.NoError(t, db.Model(&model.Item{}).Count(&items).Error)
	assert.EqualValues(t, 2, quotations)
	assert.EqualValues(t, 2, items)
}

func TestQuotationListOrder(t *testing.T) {
	db := setupDB(t)
	require.NoError(t, Seed(db))
	repo := repository.NewQuotationRepository(db)

	for run := 0; run < 3; run++ {
		list, err := repo.List(context.Background())
		require.NoError(t, err)
		require.Len(t, list, 2)
		// Same date — the quotation number keeps the order stable.
		assert.Equal(t, "QTN-23-12-2023-0001", list[0].QuotationNumber)
		assert.Equal(t, "QTN-23-12-2023-0002", list[1].QuotationNumber)
	}
}

func TestUpdateCategoryTripleAgainstPostgres(t *testing.T) {
	db := setupDB(t)
	require.NoError(t, Seed(db))
	items := repository.NewItemRepository(db)
	ctx := context.Background()

	packing := decimal.RequireFromString("50.0")
	margin := decimal.RequireFromString("0.2")
	discount := decimal.RequireFromString("0.1")

	updated, err := items.UpdateCategoryTriple(ctx,
		"QTN-23-12-2023-0001", "X72-02-00", model.CategoryHigh, packing, margin, discount)
	require.NoError(t, err)

	require.NotNil(t, updated.HighPacking)
	assert.True(t, updated.HighPacking.Equal(packing))
	require.NotNil(t, updated.HighProfitMargin)
	assert.True(t, updated.HighProfitMargin.Equal(margin))
	require.NotNil(t, updated.HighDiscount)
	assert.True(t, updated.HighDiscount.Equal(discount))

	// Other tiers and base prices untouched.
	assert.Nil(t, updated.MediumPacking)
	assert.Nil(t, updated.EconomicalPacking)
	assert.Equal(t, "3664.18", updated.PricesHigh.StringFixed(2))

	// Unknown pair rolls back with ErrRecordNotFound.
	_, err = items.UpdateCategoryTriple(ctx,
		"QTN-23-12-2023-0001", "NO-SUCH", model.CategoryHigh, packing, margin, discount)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// Same arguments twice — same final state.
	again, err := items.UpdateCategoryTriple(ctx,
		"QTN-23-12-2023-0001", "X72-02-00", model.CategoryHigh, packing, margin, discount)
	require.NoError(t, err)
	assert.True(t, again.HighPacking.Equal(*updated.HighPacking))
}
