package handlers

import (
	"net/http"
	"strings"

	"seosync/internal/logger"
	"seosync/internal/store"

	"github.com/gin-gonic/gin"
)

// Candidate labels sent to the zero-shot classifier. Each is "Category: Value";
// only the value part ends up stored as a tag.
var candidateLabels = []string{
	"Material: Bolsa de Couro",
	"Cor: Bolsa Preta",
	"Cor: Bolsa Marrom",
	"Funcionalidade: Bolsa de Ombro",
	"Funcionalidade: Bolsa para o Dia a Dia",
	"Tamanho: Bolsa Grande",
	"Tamanho: Bolsa Compacta",
	"Marca: EUPHORE",
}

const (
	maxGeneratedTags = 5
	tagSeparator     = ", "
)

type TagHandler struct {
	shopify    ShopifyAPI
	classifier Classifier
	store      *store.Store
	logger     *logger.Logger
}

func NewTagHandler(shopifyClient ShopifyAPI, classifier Classifier, store *store.Store, logger *logger.Logger) *TagHandler {
	return &TagHandler{
		shopify:    shopifyClient,
		classifier: classifier,
		store:      store,
		logger:     logger,
	}
}

// Generate classifies the latest product's description against the fixed
// label set and stores the top values as the current tag list. The response
// echoes the classifier's full ranked labels, not the trimmed list that gets
// stored. Failures never escalate past a success=false body.
func (h *TagHandler) Generate(c *gin.Context) {
	product, err := h.shopify.GetLatestProduct()
	if err != nil {
		h.logger.Error("Failed to fetch latest product: %v", err)
		c.JSON(http.StatusOK, gin.H{"success": false})
		return
	}

	classification, err := h.classifier.Classify(product.BodyHTML, candidateLabels)
	if err != nil {
		h.logger.Error("Failed to classify product %d: %v", product.ID, err)
		c.JSON(http.StatusOK, gin.H{"success": false})
		return
	}

	tags := make([]string, 0, maxGeneratedTags)
	for _, label := range classification.Labels {
		if len(tags) == maxGeneratedTags {
			break
		}
		parts := strings.SplitN(label, ": ", 2)
		tags = append(tags, parts[len(parts)-1])
	}
	h.store.SetGeneratedTags(tags)

	h.logger.Info("Generated tags for product %d: %v", product.ID, tags)
	c.JSON(http.StatusOK, gin.H{"success": true, "tags": classification.Labels})
}

// Apply merges the stored generated tags into the latest product's tag set
// and writes the union back. With no generated tags this rewrites the
// existing tags unchanged.
func (h *TagHandler) Apply(c *gin.Context) {
	product, err := h.shopify.GetLatestProduct()
	if err != nil {
		h.logger.Error("Failed to fetch latest product: %v", err)
		c.JSON(http.StatusOK, gin.H{"success": false})
		return
	}

	var current []string
	if product.Tags != "" {
		current = strings.Split(product.Tags, tagSeparator)
	}

	merged := mergeTags(current, h.store.GeneratedTags())

	if err := h.shopify.UpdateProductTags(product.ID, strings.Join(merged, tagSeparator)); err != nil {
		h.logger.Error("Failed to apply tags to product %d: %v", product.ID, err)
		c.JSON(http.StatusOK, gin.H{"success": false})
		return
	}

	h.logger.Info("Tags applied to product %d: %v", product.ID, merged)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// mergeTags unions the two lists, keeping first-seen order and dropping
// exact-string duplicates.
func mergeTags(current, generated []string) []string {
	seen := make(map[string]bool, len(current)+len(generated))
	merged := make([]string, 0, len(current)+len(generated))
	for _, tag := range append(append([]string{}, current...), generated...) {
		if seen[tag] {
			continue
		}
		seen[tag] = true
		merged = append(merged, tag)
	}
	return merged
}
