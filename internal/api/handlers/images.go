package handlers

import (
	"fmt"
	"net/http"

	"seosync/internal/logger"
	"seosync/internal/services/shopify"

	"github.com/gin-gonic/gin"
)

// Brand suffix appended to every generated alt text.
const altTextBrand = "EUPHORE"

type ImageHandler struct {
	shopify ShopifyAPI
	logger  *logger.Logger
}

func NewImageHandler(shopifyClient ShopifyAPI, logger *logger.Logger) *ImageHandler {
	return &ImageHandler{
		shopify: shopifyClient,
		logger:  logger,
	}
}

// UpdateAltText rewrites the alt text of every image on the most recently
// created product. The whole image list is replaced in one update; a product
// without images gets an empty-list overwrite.
func (h *ImageHandler) UpdateAltText(c *gin.Context) {
	product, err := h.shopify.GetLatestProduct()
	if err != nil {
		h.logger.Error("Failed to fetch latest product: %v", err)
		c.JSON(http.StatusOK, gin.H{"success": false})
		return
	}

	images := make([]shopify.ImageUpdate, 0, len(product.Images))
	for i, image := range product.Images {
		images = append(images, shopify.ImageUpdate{
			ID:  image.ID,
			Alt: fmt.Sprintf("%s - %s, Foto %d", product.Title, altTextBrand, i+1),
		})
	}

	if err := h.shopify.UpdateProductImages(product.ID, images); err != nil {
		h.logger.Error("Failed to update alt text for product %d: %v", product.ID, err)
		c.JSON(http.StatusOK, gin.H{"success": false})
		return
	}

	h.logger.Info("Alt text updated for product %d (%d images)", product.ID, len(images))
	c.JSON(http.StatusOK, gin.H{"success": true})
}
