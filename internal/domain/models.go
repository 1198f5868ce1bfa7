package domain

import "time"

// TimestampLayout es el formato ISO-8601 local (microsegundos, sin offset)
// que devuelven los endpoints.
const TimestampLayout = "2006-01-02T15:04:05.000000"

const (
	// DemoModel identifica las respuestas generadas sin backend de modelos.
	DemoModel = "demo-mode"
	// HealthyStatus es el unico estado que reporta el health check.
	HealthyStatus = "healthy"
	// LangChainVersion es la version anunciada por el health check.
	LangChainVersion = "0.3.15"
	// NoMessageError es el texto de error cuando el chat llega vacio.
	NoMessageError = "No message provided"
)

// FormatTimestamp serializa un instante con TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// ChatRequest es el cuerpo de POST /api/chat.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse es la respuesta eco del chat.
type ChatResponse struct {
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Model     string `json:"model"`
}

// ModelDescriptor describe un modelo seleccionable en la UI.
type ModelDescriptor struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Provider string `json:"provider"`
}

// HealthStatus es la respuesta de GET /api/health.
type HealthStatus struct {
	Status           string `json:"status"`
	Timestamp        string `json:"timestamp"`
	LangChainVersion string `json:"langchain_version"`
}

// ErrorResponse es el cuerpo de cualquier error de la API.
type ErrorResponse struct {
	Error string `json:"error"`
}
