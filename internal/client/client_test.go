package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/teefisher2k20/langchain/internal/config"
	apihttp "github.com/teefisher2k20/langchain/internal/http"
	"github.com/teefisher2k20/langchain/internal/service"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router, err := apihttp.NewRouter(
		zap.NewNop(),
		config.Config{},
		apihttp.NewPageHandler(),
		apihttp.NewChatHandler(zap.NewNop(), service.NewChatService(nil, nil)),
		apihttp.NewAPIHandler(service.ModelCatalog{}, service.NewHealthService(nil)),
	)
	if err != nil {
		t.Fatalf("new router: %v", err)
	}
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func TestHTTPClientChat(t *testing.T) {
	srv := newTestServer(t)
	c := NewHTTPClient(srv.URL+"/", nil, nil)

	resp, err := c.Chat(context.Background(), "hola")
	if err != nil {
		t.Fatalf("chat: %v", err)
	}
	if resp.Message != "Echo: hola" || resp.Model != "demo-mode" {
		t.Fatalf("unexpected response %+v", resp)
	}
}

func TestHTTPClientChatEmptyMessage(t *testing.T) {
	srv := newTestServer(t)
	c := NewHTTPClient(srv.URL, nil, nil)

	_, err := c.Chat(context.Background(), "")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusBadRequest || apiErr.Message != "No message provided" {
		t.Fatalf("unexpected api error %+v", apiErr)
	}
}

func TestHTTPClientModelsAndHealth(t *testing.T) {
	srv := newTestServer(t)
	c := NewHTTPClient(srv.URL, nil, nil)

	models, err := c.Models(context.Background())
	if err != nil {
		t.Fatalf("models: %v", err)
	}
	if len(models) != 4 || models[0].ID != "gpt-3.5-turbo" {
		t.Fatalf("unexpected models %+v", models)
	}

	health, err := c.Health(context.Background())
	if err != nil {
		t.Fatalf("health: %v", err)
	}
	if health.Status != "healthy" {
		t.Fatalf("unexpected health %+v", health)
	}
}

func TestHTTPClientNonJSONError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewHTTPClient(srv.URL, nil, nil).Health(context.Background())
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusBadGateway || apiErr.Message != "Bad Gateway" {
		t.Fatalf("unexpected api error %+v", apiErr)
	}
}

func TestHTTPClientInvalidJSONResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	if _, err := NewHTTPClient(srv.URL, nil, nil).Models(context.Background()); err == nil {
		t.Fatalf("expected unmarshal error")
	}
}
