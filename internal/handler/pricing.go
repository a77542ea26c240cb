package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"quotedesk/internal/apierror"
	"quotedesk/internal/dto"
	"quotedesk/internal/service"
)

// PricingHandler applies category pricing updates to quotation items.
type PricingHandler struct {
	svc service.PricingService
	rdb *redis.Client
}

func NewPricingHandler(svc service.PricingService, rdb *redis.Client) *PricingHandler {
	return &PricingHandler{svc: svc, rdb: rdb}
}

// UpdateCategory godoc
// @Summary Overwrite one category's packing/profit_margin/discount triple
// @Tags items
// @Accept json
// @Produce json
// @Param quotation_number path string true "Quotation number"
// @Param item_code path string true "Item code"
// @Param category path string true "high | medium | economical"
// @Param payload body dto.UpdateCategoryRequest true "Pricing triple"
// @Success 200 {object} dto.ItemResponse
// @Failure 400 {object} apierror.APIError
// @Failure 404 {object} apierror.APIError
// @Failure 422 {object} apierror.ValidationError
// @Router /items/{quotation_number}/{item_code}/{category} [put]
func (h *PricingHandler) UpdateCategory(c *gin.Context) {
	number := c.Param("quotation_number")
	itemCode := c.Param("item_code")
	category := c.Param("category")

	var req dto.UpdateCategoryRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.UpdateItemCategory(c.Request.Context(), number, itemCode, category, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCategory):
			c.JSON(http.StatusBadRequest, apierror.New("Invalid category"))
		case errors.Is(err, service.ErrPricingFieldsRequired):
			c.JSON(http.StatusUnprocessableEntity,
				apierror.NewValidation(service.ErrPricingFieldsRequired.Error(), nil))
		case errors.Is(err, service.ErrItemNotFound):
			c.JSON(http.StatusNotFound, apierror.New("Item not found"))
		default:
			c.Error(err)
			c.JSON(http.StatusInternalServerError, apierror.New("Failed to update item pricing"))
		}
		return
	}

	// Drop the cached item listing so the next read sees the new triple.
	// Best effort: a failed DEL only means the cache expires by TTL instead.
	_ = h.rdb.Del(context.Background(), itemsCacheKey(number)).Err()

	c.JSON(http.StatusOK, resp)
}
