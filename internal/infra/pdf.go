package infra

// pdf.go — printable quotation sheet using go-pdf/fpdf.
// Layout:
//   - Quotation number and date header
//   - One table row per item: code, description, qty, pcs, tier base prices
//   - Cost components line under each item (rod, coating, pre/post process)
// The PDF is rendered in memory and streamed to the client; nothing is
// written to disk.

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"

	"quotedesk/internal/model"
)

// GenerateQuotationPDF renders one quotation and its items as an A4 sheet.
func GenerateQuotationPDF(q *model.Quotation, items []model.Item) ([]byte, error) {
	pdf := fpdf.New("L", "mm", "A4", "")
	// Descriptions contain non-ASCII symbols (Φ etc.); the core fonts are
	// cp1252, so translate what we can instead of emitting mojibake.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 20

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(contentW, 8, "Quotation "+q.QuotationNumber, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, q.Date.Format("02/01/2006"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// ── Item table ───────────────────────────────────────────────────────────
	type col struct {
		title string
		width float64
	}
	cols := []col{
		{"Item Code", 30},
		{"Description", 95},
		{"Qty", 14},
		{"Pcs", 14},
		{"High", 26},
		{"Medium", 26},
		{"Economical", 26},
	}

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(230, 230, 230)
	for _, c := range cols {
		pdf.CellFormat(c.width, 6, c.title, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	money := func(d decimal.Decimal) string { return d.StringFixed(2) }

	for _, it := range items {
		pdf.SetFont("Helvetica", "", 8)
		pdf.CellFormat(cols[0].width, 6, it.ItemCode, "1", 0, "L", false, 0, "")
		pdf.CellFormat(cols[1].width, 6, tr(it.Description), "1", 0, "L", false, 0, "")
		pdf.CellFormat(cols[2].width, 6, fmt.Sprintf("%d", it.Qty), "1", 0, "R", false, 0, "")
		pdf.CellFormat(cols[3].width, 6, fmt.Sprintf("%d", it.Pcs), "1", 0, "R", false, 0, "")
		pdf.CellFormat(cols[4].width, 6, money(it.PricesHigh), "1", 0, "R", false, 0, "")
		pdf.CellFormat(cols[5].width, 6, money(it.PricesMedium), "1", 0, "R", false, 0, "")
		pdf.CellFormat(cols[6].width, 6, money(it.PricesEconomical), "1", 1, "R", false, 0, "")

		pdf.SetFont("Helvetica", "I", 7)
		costs := fmt.Sprintf("rod %s   coating %s   pre-process %s   post-process %s",
			money(it.Rod), money(it.Coating), money(it.PreProcess), money(it.PostProcess))
		pdf.CellFormat(contentW, 5, costs, "1", 1, "L", false, 0, "")
	}

	if len(items) == 0 {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.CellFormat(contentW, 8, "No items", "1", 1, "C", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: render quotation %s: %w", q.QuotationNumber, err)
	}
	return buf.Bytes(), nil
}
