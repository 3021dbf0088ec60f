package ports

import (
	"context"
)

// AIProvider define la interfaz de un proveedor de completions.
type AIProvider interface {
	// Complete envía el prompt al modelo y retorna el primer texto de la respuesta.
	// maxTokens acota la cantidad de tokens generados.
	Complete(ctx context.Context, prompt string, maxTokens int) (string, error)

	// GetModelName retorna el nombre del modelo actual (ej: "gemini-1.5-flash")
	GetModelName() string

	// GetProviderName retorna el nombre del proveedor (ej: "gemini", "openrouter")
	GetProviderName() string
}
