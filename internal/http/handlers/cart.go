package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yungbote/bewear-backend/internal/http/response"
	"github.com/yungbote/bewear-backend/internal/services"
)

type CartHandler struct {
	cartService services.CartService
}

func NewCartHandler(cartService services.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

func (ch *CartHandler) GetCart(c *gin.Context) {
	cart, err := ch.cartService.GetCart(c.Request.Context())
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"cart": cart})
}

func (ch *CartHandler) UpdateShippingAddress(c *gin.Context) {
	var req struct {
		ShippingAddressID string `json:"shipping_address_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	cart, err := ch.cartService.UpdateCartShippingAddress(c.Request.Context(), req.ShippingAddressID)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"cart": cart})
}

func (ch *CartHandler) RemoveItem(c *gin.Context) {
	if err := ch.cartService.RemoveCartItem(c.Request.Context(), c.Param("id")); err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}
