package shopify

// Product carries the fields of a Shopify product this service reads. The
// Admin API returns far more; anything not listed here is ignored on decode.
type Product struct {
	ID       int64   `json:"id"`
	Title    string  `json:"title"`
	BodyHTML string  `json:"body_html"`
	Tags     string  `json:"tags"`
	Images   []Image `json:"images"`
}

// Image represents a product image.
type Image struct {
	ID  int64   `json:"id"`
	Src string  `json:"src"`
	Alt *string `json:"alt"`
}

// ImageUpdate is the partial image payload sent when rewriting alt text.
// Shopify matches on ID and leaves the binary data untouched.
type ImageUpdate struct {
	ID  int64  `json:"id"`
	Alt string `json:"alt"`
}

// Metafield represents a namespaced key-value entry attached to a product.
type Metafield struct {
	ID        int64  `json:"id,omitempty"`
	Namespace string `json:"namespace"`
	Key       string `json:"key"`
	Value     string `json:"value"`
	Type      string `json:"type,omitempty"`
}

// WebhookPayload is the product payload delivered by the products/create
// webhook. Only the fields the handler consumes are bound.
type WebhookPayload struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	BodyHTML string `json:"body_html"`
}

// ProductsResponse represents the response from the products listing API.
type ProductsResponse struct {
	Products []Product `json:"products"`
}

// MetafieldsResponse represents the response from the product metafields API.
type MetafieldsResponse struct {
	Metafields []Metafield `json:"metafields"`
}
