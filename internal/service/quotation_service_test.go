package service

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"quotedesk/internal/model"
)

// ── In-memory QuotationRepository stub ───────────────────────────────────────

type stubQuotationRepo struct {
	quotations map[string]*model.Quotation
}

func newStubQuotationRepo() *stubQuotationRepo {
	return &stubQuotationRepo{quotations: make(map[string]*model.Quotation)}
}

func (r *stubQuotationRepo) add(q model.Quotation) {
	r.quotations[q.QuotationNumber] = &q
}

// List mirrors the SQL contract: date DESC, quotation_number ASC tiebreak.
func (r *stubQuotationRepo) List(_ context.Context) ([]model.Quotation, error) {
	var result []model.Quotation
	for _, q := range r.quotations {
		result = append(result, *q)
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].Date.Equal(result[j].Date) {
			return result[i].Date.After(result[j].Date)
		}
		return result[i].QuotationNumber < result[j].QuotationNumber
	})
	return result, nil
}

func (r *stubQuotationRepo) FindByNumber(_ context.Context, number string) (*model.Quotation, error) {
	q, ok := r.quotations[number]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return q, nil
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestListQuotationsNewestFirstStableTiebreak(t *testing.T) {
	quotations := newStubQuotationRepo()
	quotations.add(model.Quotation{QuotationNumber: "QTN-23-12-2023-0002", Date: date(2023, time.December, 23)})
	quotations.add(model.Quotation{QuotationNumber: "QTN-23-12-2023-0001", Date: date(2023, time.December, 23)})
	quotations.add(model.Quotation{QuotationNumber: "QTN-05-01-2024-0001", Date: date(2024, time.January, 5)})
	svc := NewQuotationService(quotations, newStubItemRepo())

	for run := 0; run < 3; run++ {
		resp, err := svc.ListQuotations(context.Background())
		require.NoError(t, err)
		require.Len(t, resp, 3)
		assert.Equal(t, "QTN-05-01-2024-0001", resp[0].QuotationNumber)
		assert.Equal(t, "2024-01-05", resp[0].Date)
		// Equal dates keep a stable order across calls.
		assert.Equal(t, "QTN-23-12-2023-0001", resp[1].QuotationNumber)
		assert.Equal(t, "QTN-23-12-2023-0002", resp[2].QuotationNumber)
	}
}

func TestListQuotationsEmptyStore(t *testing.T) {
	svc := NewQuotationService(newStubQuotationRepo(), newStubItemRepo())

	resp, err := svc.ListQuotations(context.Background())
	require.NoError(t, err)
	assert.Empty(t, resp)
	assert.NotNil(t, resp, "empty store yields an empty sequence, not null")
}

func TestGetItemsReturnsDateAndItems(t *testing.T) {
	quotations := newStubQuotationRepo()
	quotations.add(model.Quotation{QuotationNumber: "QTN-23-12-2023-0001", Date: date(2023, time.December, 23)})
	items := newStubItemRepo()
	items.add(baselineItem())
	svc := NewQuotationService(quotations, items)

	resp, err := svc.GetItems(context.Background(), "QTN-23-12-2023-0001")
	require.NoError(t, err)
	assert.Equal(t, "2023-12-23", resp.Date)
	require.Len(t, resp.Items, 1)
	it := resp.Items[0]
	assert.Equal(t, "X72-02-00", it.ItemCode)
	assert.Equal(t, 5, it.Qty)
	assert.Equal(t, 21, it.Pcs)
	assert.Equal(t, "3664.18", it.PricesHigh.StringFixed(2))
}

func TestGetItemsUnknownQuotationIsNotFound(t *testing.T) {
	svc := NewQuotationService(newStubQuotationRepo(), newStubItemRepo())

	_, err := svc.GetItems(context.Background(), "NONEXISTENT")
	assert.ErrorIs(t, err, ErrQuotationNotFound)
}

func TestGetItemsQuotationWithoutItemsIsEmptyNotError(t *testing.T) {
	quotations := newStubQuotationRepo()
	quotations.add(model.Quotation{QuotationNumber: "QTN-23-12-2023-0009", Date: date(2023, time.December, 23)})
	svc := NewQuotationService(quotations, newStubItemRepo())

	resp, err := svc.GetItems(context.Background(), "QTN-23-12-2023-0009")
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
	assert.NotNil(t, resp.Items)
}
