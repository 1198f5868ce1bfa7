package service

import (
	"context"
	"errors"
	"time"

	"github.com/teefisher2k20/langchain/internal/domain"
)

const echoPrefix = "Echo: "

var (
	// ErrNoMessage se devuelve cuando el chat llega sin mensaje.
	ErrNoMessage = errors.New("no message provided")
	// ErrRateLimited indica que el cliente supero el limite de mensajes.
	ErrRateLimited = errors.New("too many requests")
)

// ChatService responde mensajes en modo demo: no invoca ningun modelo,
// solo devuelve el eco del mensaje con la hora actual.
type ChatService struct {
	limiter ChatRateLimiter
	now     func() time.Time
}

// NewChatService crea el servicio. limiter puede ser nil (sin limite) y now
// puede ser nil (usa time.Now).
func NewChatService(limiter ChatRateLimiter, now func() time.Time) *ChatService {
	if now == nil {
		now = time.Now
	}
	return &ChatService{limiter: limiter, now: now}
}

// Reply valida el mensaje y construye la respuesta eco.
func (s *ChatService) Reply(ctx context.Context, clientID string, req domain.ChatRequest) (domain.ChatResponse, error) {
	if req.Message == "" {
		return domain.ChatResponse{}, ErrNoMessage
	}
	if s.limiter != nil && !s.limiter.Allow(ctx, clientID) {
		return domain.ChatResponse{}, ErrRateLimited
	}

	return domain.ChatResponse{
		Message:   echoPrefix + req.Message,
		Timestamp: domain.FormatTimestamp(s.now()),
		Model:     domain.DemoModel,
	}, nil
}
