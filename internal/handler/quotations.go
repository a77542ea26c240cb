package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"quotedesk/internal/apierror"
	"quotedesk/internal/infra"
	"quotedesk/internal/repository"
	"quotedesk/internal/service"

	"gorm.io/gorm"
)

type QuotationsHandler struct {
	svc        service.QuotationService
	quotations repository.QuotationRepository
	items      repository.ItemRepository
}

func NewQuotationsHandler(
	svc service.QuotationService,
	quotations repository.QuotationRepository,
	items repository.ItemRepository,
) *QuotationsHandler {
	return &QuotationsHandler{svc: svc, quotations: quotations, items: items}
}

// List godoc
// @Summary List all quotations, most recent date first
// @Tags quotations
// @Produce json
// @Success 200 {array} dto.QuotationResponse
// @Router /quotations [get]
func (h *QuotationsHandler) List(c *gin.Context) {
	resp, err := h.svc.ListQuotations(c.Request.Context())
	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to list quotations"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DownloadPDF godoc
// @Summary Printable quotation sheet
// @Tags quotations
// @Produce application/pdf
// @Param quotation_number path string true "Quotation number"
// @Success 200 {file} binary
// @Failure 404 {object} apierror.APIError
// @Router /quotations/{quotation_number}/pdf [get]
func (h *QuotationsHandler) DownloadPDF(c *gin.Context) {
	number := c.Param("quotation_number")
	ctx := c.Request.Context()

	q, err := h.quotations.FindByNumber(ctx, number)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, apierror.New("Quotation not found"))
			return
		}
		c.Error(err)
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to load quotation"))
		return
	}

	items, err := h.items.ListByQuotation(ctx, number)
	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to load items"))
		return
	}

	pdfBytes, err := infra.GenerateQuotationPDF(q, items)
	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to render PDF"))
		return
	}

	c.Header("Content-Disposition", `inline; filename="`+number+`.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
