package handlers

import (
	"seosync/internal/services/huggingface"
	"seosync/internal/services/shopify"
)

// ShopifyAPI is the slice of the Shopify Admin client the handlers consume.
// Satisfied by *shopify.Client and by test fakes.
type ShopifyAPI interface {
	GetLatestProduct() (*shopify.Product, error)
	GetProductMetafields(productID int64) ([]shopify.Metafield, error)
	UpdateProductContent(productID int64, bodyHTML string, metafields []shopify.Metafield) error
	UpdateProductImages(productID int64, images []shopify.ImageUpdate) error
	UpdateProductTags(productID int64, tags string) error
}

// Classifier is satisfied by *huggingface.Client and by test fakes.
type Classifier interface {
	Classify(input string, candidateLabels []string) (*huggingface.Classification, error)
}
