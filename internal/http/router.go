package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/teefisher2k20/langchain/internal/config"
	"github.com/teefisher2k20/langchain/internal/web"
)

// NewRouter configura el router de Gin con middlewares, la pagina principal
// y las rutas /api.
func NewRouter(
	logger *zap.Logger,
	cfg config.Config,
	pageH *PageHandler,
	chatH *ChatHandler,
	apiH *APIHandler,
) (*gin.Engine, error) {
	corsMW, err := corsMiddleware(cfg.AllowAllOrigins(), cfg.CORSAllowedOrigins)
	if err != nil {
		return nil, fmt.Errorf("cors config: %w", err)
	}
	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	static, err := web.Static()
	if err != nil {
		return nil, fmt.Errorf("static assets: %w", err)
	}

	r := gin.New()
	if err := r.SetTrustedProxies(nil); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}

	// Middlewares basicos: request id, logging, recovery y CORS.
	r.Use(requestIDMiddleware(), zapLoggerMiddleware(logger), recoveryMiddleware(logger), corsMW)

	r.SetHTMLTemplate(tmpl)
	r.GET("/", pageH.Index)
	r.StaticFS("/static", http.FS(static))

	api := r.Group("/api", jsonContentTypeMiddleware())
	api.POST("/chat", chatH.PostChat)
	api.GET("/models", apiH.ListModels)
	api.GET("/health", apiH.Health)

	return r, nil
}
