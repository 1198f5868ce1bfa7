package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/teefisher2k20/langchain/internal/domain"
)

const defaultTimeout = 15 * time.Second

// APIError representa una respuesta de error del servidor.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: status=%d: %s", e.StatusCode, e.Message)
}

// HTTPClient consume la API del servidor de demo.
type HTTPClient struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

// NewHTTPClient construye un cliente apuntando a baseURL (ej. http://localhost:5000).
func NewHTTPClient(baseURL string, httpClient *http.Client, logger *zap.Logger) *HTTPClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  httpClient,
		logger:  logger,
	}
}

// Chat envia un mensaje a POST /api/chat.
func (c *HTTPClient) Chat(ctx context.Context, message string) (domain.ChatResponse, error) {
	var out domain.ChatResponse
	err := c.do(ctx, http.MethodPost, "/api/chat", domain.ChatRequest{Message: message}, &out)
	return out, err
}

// Models obtiene el catalogo de GET /api/models.
func (c *HTTPClient) Models(ctx context.Context) ([]domain.ModelDescriptor, error) {
	var out []domain.ModelDescriptor
	err := c.do(ctx, http.MethodGet, "/api/models", nil, &out)
	return out, err
}

// Health consulta GET /api/health.
func (c *HTTPClient) Health(ctx context.Context) (domain.HealthStatus, error) {
	var out domain.HealthStatus
	err := c.do(ctx, http.MethodGet, "/api/health", nil, &out)
	return out, err
}

func (c *HTTPClient) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		bodyBytes, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		c.logger.Debug("api error response",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", respBody),
		)
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		var er domain.ErrorResponse
		if json.Unmarshal(respBody, &er) == nil && er.Error != "" {
			apiErr.Message = er.Error
		}
		return apiErr
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	return nil
}
