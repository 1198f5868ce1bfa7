package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/teefisher2k20/langchain/internal/service"
)

// APIHandler agrupa los endpoints de solo lectura: catalogo y health check.
type APIHandler struct {
	catalog service.ModelCatalog
	health  *service.HealthService
}

// NewAPIHandler crea una instancia de APIHandler con dependencias necesarias.
func NewAPIHandler(catalog service.ModelCatalog, health *service.HealthService) *APIHandler {
	return &APIHandler{
		catalog: catalog,
		health:  health,
	}
}

// ListModels maneja GET /api/models.
func (h *APIHandler) ListModels(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.List())
}

// Health maneja GET /api/health.
func (h *APIHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, h.health.Check())
}
