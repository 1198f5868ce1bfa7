package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/teefisher2k20/langchain/internal/domain"
	"github.com/teefisher2k20/langchain/internal/web"
)

const appTitle = "LangChain Studio"

// PageHandler sirve la interfaz web.
type PageHandler struct{}

func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

// Index maneja GET /.
func (h *PageHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, web.IndexTemplate, gin.H{
		"Title":   appTitle,
		"Version": domain.LangChainVersion,
	})
}
