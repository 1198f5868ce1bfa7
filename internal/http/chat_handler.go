package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/teefisher2k20/langchain/internal/domain"
	"github.com/teefisher2k20/langchain/internal/service"
)

const (
	maxChatBodyBytes = 1 << 20
	chatMessageField = "message"
)

var (
	errEmptyBody        = errors.New("request body is empty")
	errNotAnObject      = errors.New("request body must be a JSON object")
	errTrailingData     = errors.New("request body must contain a single JSON object")
	errInvalidUTF8      = errors.New("request body is not valid UTF-8")
	errUnsupportedMedia = errors.New("request content type must be application/json")
	errUnknownField     = errors.New("unknown field")
)

// ChatHandler mantiene dependencias para el endpoint de chat.
type ChatHandler struct {
	logger   *zap.Logger
	chatServ *service.ChatService
}

// NewChatHandler crea una instancia de ChatHandler con dependencias necesarias.
func NewChatHandler(logger *zap.Logger, chatServ *service.ChatService) *ChatHandler {
	return &ChatHandler{
		logger:   logger,
		chatServ: chatServ,
	}
}

// PostChat maneja POST /api/chat.
func (h *ChatHandler) PostChat(c *gin.Context) {
	if !isJSONContentType(c.ContentType()) {
		h.logger.Debug("chat request rejected", zap.String("content_type", c.ContentType()))
		c.JSON(http.StatusInternalServerError, domain.ErrorResponse{Error: errUnsupportedMedia.Error()})
		return
	}

	req, err := decodeChatRequest(http.MaxBytesReader(c.Writer, c.Request.Body, maxChatBodyBytes))
	if err != nil {
		h.logger.Debug("decode chat request failed", zap.Error(err))
		var tooLarge *http.MaxBytesError
		switch {
		case errors.Is(err, errUnknownField):
			c.JSON(http.StatusBadRequest, domain.ErrorResponse{Error: err.Error()})
		case errors.As(err, &tooLarge):
			c.JSON(http.StatusRequestEntityTooLarge, domain.ErrorResponse{Error: "request body too large"})
		default:
			c.JSON(http.StatusInternalServerError, domain.ErrorResponse{Error: err.Error()})
		}
		return
	}

	resp, err := h.chatServ.Reply(c.Request.Context(), c.ClientIP(), req)
	if err != nil {
		if errors.Is(err, service.ErrNoMessage) {
			c.JSON(http.StatusBadRequest, domain.ErrorResponse{Error: domain.NoMessageError})
			return
		}
		if errors.Is(err, service.ErrRateLimited) {
			c.JSON(http.StatusTooManyRequests, domain.ErrorResponse{Error: "Too many requests"})
			return
		}
		h.logger.Debug("chat reply failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, domain.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// isJSONContentType acepta application/json y application/*+json.
func isJSONContentType(mediaType string) bool {
	mediaType = strings.ToLower(mediaType)
	return mediaType == "application/json" ||
		(strings.HasPrefix(mediaType, "application/") && strings.HasSuffix(mediaType, "+json"))
}

// decodeChatRequest exige exactamente un objeto JSON en UTF-8 valido. Las
// claves se comparan de forma exacta: "Message" es un campo desconocido.
func decodeChatRequest(body io.Reader) (domain.ChatRequest, error) {
	raw, err := io.ReadAll(body)
	if err != nil {
		return domain.ChatRequest{}, err
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return domain.ChatRequest{}, errEmptyBody
	}
	if !utf8.Valid(raw) {
		return domain.ChatRequest{}, errInvalidUTF8
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	var fields map[string]json.RawMessage
	if err := dec.Decode(&fields); err != nil {
		return domain.ChatRequest{}, err
	}
	if fields == nil {
		return domain.ChatRequest{}, errNotAnObject
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return domain.ChatRequest{}, errTrailingData
	}

	var req domain.ChatRequest
	for key, value := range fields {
		if key != chatMessageField {
			return domain.ChatRequest{}, fmt.Errorf("%w %q", errUnknownField, key)
		}
		var message *string
		if err := json.Unmarshal(value, &message); err != nil {
			return domain.ChatRequest{}, fmt.Errorf("field %q: %w", key, err)
		}
		if message != nil {
			req.Message = *message
		}
	}
	return req, nil
}
