package handlers

import (
	"net/http"

	"seosync/internal/logger"
	"seosync/internal/store"

	"github.com/gin-gonic/gin"
)

type TemplateHandler struct {
	store  *store.Store
	logger *logger.Logger
}

func NewTemplateHandler(store *store.Store, logger *logger.Logger) *TemplateHandler {
	return &TemplateHandler{
		store:  store,
		logger: logger,
	}
}

// Update replaces all three templates with the values from the operator UI.
// Empty fields are accepted and stored as-is; placeholder syntax is not
// validated.
func (h *TemplateHandler) Update(c *gin.Context) {
	var request struct {
		Description     string `json:"description"`
		PageTitle       string `json:"pageTitle"`
		MetaDescription string `json:"metadescription"`
	}

	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.store.SetTemplates(store.TemplateSet{
		Description:     request.Description,
		PageTitle:       request.PageTitle,
		MetaDescription: request.MetaDescription,
	})

	h.logger.Info("Templates updated: description=%dB pageTitle=%dB metaDescription=%dB",
		len(request.Description), len(request.PageTitle), len(request.MetaDescription))

	c.JSON(http.StatusOK, gin.H{"success": true})
}
