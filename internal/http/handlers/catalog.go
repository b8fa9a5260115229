package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/yungbote/bewear-backend/internal/http/response"
	"github.com/yungbote/bewear-backend/internal/services"
)

type CatalogHandler struct {
	catalogService services.CatalogService
}

func NewCatalogHandler(catalogService services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

func (ch *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := ch.catalogService.ListCategories(c.Request.Context())
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"categories": categories})
}

func (ch *CatalogHandler) ListProducts(c *gin.Context) {
	products, err := ch.catalogService.ListProducts(c.Request.Context())
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"products": products})
}

func (ch *CatalogHandler) GetProduct(c *gin.Context) {
	product, err := ch.catalogService.GetProductBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"product": product})
}

func (ch *CatalogHandler) ListProductVariants(c *gin.Context) {
	variants, err := ch.catalogService.ListProductVariants(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"product_variants": variants})
}
