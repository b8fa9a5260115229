package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yungbote/bewear-backend/internal/http/response"
	"github.com/yungbote/bewear-backend/internal/services"
	"github.com/yungbote/bewear-backend/internal/validation"
)

type AddressHandler struct {
	addressService services.AddressService
}

func NewAddressHandler(addressService services.AddressService) *AddressHandler {
	return &AddressHandler{addressService: addressService}
}

func (ah *AddressHandler) CreateShippingAddress(c *gin.Context) {
	var req validation.CreateShippingAddressInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	address, err := ah.addressService.CreateShippingAddress(c.Request.Context(), &req)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"shipping_address": address})
}

func (ah *AddressHandler) ListShippingAddresses(c *gin.Context) {
	addresses, err := ah.addressService.ListShippingAddresses(c.Request.Context())
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"shipping_addresses": addresses})
}
