package service

import "github.com/teefisher2k20/langchain/internal/domain"

// defaultModels es el catalogo fijo que ofrece la UI. El orden es parte del
// contrato de GET /api/models.
var defaultModels = [...]domain.ModelDescriptor{
	{ID: "gpt-3.5-turbo", Name: "GPT-3.5 Turbo", Provider: "OpenAI"},
	{ID: "gpt-4", Name: "GPT-4", Provider: "OpenAI"},
	{ID: "claude-3", Name: "Claude 3", Provider: "Anthropic"},
	{ID: "llama-2", Name: "Llama 2", Provider: "Meta"},
}

// ModelCatalog expone la lista inmutable de modelos.
type ModelCatalog struct{}

// List devuelve una copia del catalogo; modificarla no afecta al servicio.
func (ModelCatalog) List() []domain.ModelDescriptor {
	models := make([]domain.ModelDescriptor, len(defaultModels))
	copy(models, defaultModels[:])
	return models
}
