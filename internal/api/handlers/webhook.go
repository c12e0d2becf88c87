package handlers

import (
	"net/http"

	"seosync/internal/logger"
	"seosync/internal/metrics"
	"seosync/internal/seo"
	"seosync/internal/services/shopify"
	"seosync/internal/store"

	"github.com/gin-gonic/gin"
)

// Metafield coordinates used for SEO text and the idempotency flag.
const (
	metafieldNamespace = "global"
	metafieldKeyDesc   = "description_tag"
	metafieldKeyTitle  = "title_tag"
	metafieldKeyDone   = "updated"
	metafieldType      = "single_line_text_field"
)

type WebhookHandler struct {
	shopify ShopifyAPI
	store   *store.Store
	logger  *logger.Logger
}

func NewWebhookHandler(shopifyClient ShopifyAPI, store *store.Store, logger *logger.Logger) *WebhookHandler {
	return &WebhookHandler{
		shopify: shopifyClient,
		store:   store,
		logger:  logger,
	}
}

// ProductCreate handles the products/create webhook: check the idempotency
// metafield, render the templates, write body and SEO metafields back in a
// single update. Each event is processed at most once, enforced only by the
// remote "updated" flag; two events racing on the same product can both pass
// the check before either writes.
func (h *WebhookHandler) ProductCreate(c *gin.Context) {
	var product shopify.WebhookPayload
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.logger.Info("Product creation event: id=%d title=%q", product.ID, product.Title)

	metafields, err := h.shopify.GetProductMetafields(product.ID)
	if err != nil {
		h.logger.Error("Failed to check metafields for product %d: %v", product.ID, err)
		metrics.WebhookEvents.WithLabelValues(metrics.OutcomeCheckFailed).Inc()
		c.String(http.StatusInternalServerError, "Erro ao verificar metafields")
		return
	}

	if alreadyUpdated(metafields) {
		h.logger.Info("Product %d already updated, skipping", product.ID)
		metrics.WebhookEvents.WithLabelValues(metrics.OutcomeAlreadyDone).Inc()
		c.String(http.StatusOK, "Produto já atualizado anteriormente")
		return
	}

	templates := h.store.Templates()
	description := seo.RenderDescription(templates.Description, product.Title)
	pageTitle := seo.Render(templates.PageTitle, product.Title)
	metaDescription := seo.Render(templates.MetaDescription, product.Title)

	// An empty rendered description keeps the product's original body.
	bodyHTML := description
	if bodyHTML == "" {
		bodyHTML = product.BodyHTML
	}

	update := []shopify.Metafield{
		{Namespace: metafieldNamespace, Key: metafieldKeyDesc, Value: metaDescription, Type: metafieldType},
		{Namespace: metafieldNamespace, Key: metafieldKeyTitle, Value: pageTitle, Type: metafieldType},
		{Namespace: metafieldNamespace, Key: metafieldKeyDone, Value: "true", Type: metafieldType},
	}

	if err := h.shopify.UpdateProductContent(product.ID, bodyHTML, update); err != nil {
		h.logger.Error("Failed to update product %d: %v", product.ID, err)
		metrics.WebhookEvents.WithLabelValues(metrics.OutcomeWriteFailed).Inc()
		c.String(http.StatusInternalServerError, "Erro ao atualizar produto")
		return
	}

	h.logger.Info("Product %d updated", product.ID)
	metrics.WebhookEvents.WithLabelValues(metrics.OutcomeDone).Inc()
	c.String(http.StatusOK, "Produto atualizado com sucesso")
}

func alreadyUpdated(metafields []shopify.Metafield) bool {
	for _, m := range metafields {
		if m.Namespace == metafieldNamespace && m.Key == metafieldKeyDone {
			return m.Value == "true"
		}
	}
	return false
}
