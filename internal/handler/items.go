package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"quotedesk/internal/apierror"
	"quotedesk/internal/dto"
	"quotedesk/internal/service"
)

const itemsCacheTTL = time.Hour

// itemsCacheKey is shared with PricingHandler, which must invalidate the
// cached payload whenever a category triple changes.
func itemsCacheKey(quotationNumber string) string {
	return "items:" + quotationNumber
}

// ItemsHandler serves the item listing for one quotation, with a best-effort
// Redis read-through cache in front of the database.
type ItemsHandler struct {
	svc service.QuotationService
	rdb *redis.Client
}

func NewItemsHandler(svc service.QuotationService, rdb *redis.Client) *ItemsHandler {
	return &ItemsHandler{svc: svc, rdb: rdb}
}

// GetItems godoc
// @Summary Quotation date plus all of its items
// @Tags items
// @Produce json
// @Param quotation_number path string true "Quotation number"
// @Success 200 {object} dto.QuotationItemsResponse
// @Failure 404 {object} apierror.APIError
// @Router /items/{quotation_number} [get]
func (h *ItemsHandler) GetItems(c *gin.Context) {
	number := c.Param("quotation_number")
	ctx := c.Request.Context()
	cacheKey := itemsCacheKey(number)

	// 1. Try Redis cache
	if cached, err := h.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
		var resp dto.QuotationItemsResponse
		if jsonErr := json.Unmarshal(cached, &resp); jsonErr == nil {
			c.JSON(http.StatusOK, resp)
			return
		}
	}

	// 2. Cache miss — query DB
	resp, err := h.svc.GetItems(ctx, number)
	if err != nil {
		if errors.Is(err, service.ErrQuotationNotFound) {
			c.JSON(http.StatusNotFound, apierror.New("Quotation not found"))
			return
		}
		c.Error(err)
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to load items"))
		return
	}

	// 3. Populate cache — best effort, ignore errors
	if b, jsonErr := json.Marshal(resp); jsonErr == nil {
		_ = h.rdb.Set(context.Background(), cacheKey, b, itemsCacheTTL).Err()
	}

	c.JSON(http.StatusOK, resp)
}
