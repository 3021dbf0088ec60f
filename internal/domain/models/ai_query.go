package models

import "strconv"

// AIQueryRequest es el cuerpo de POST /query-ai. Prompt y los valores de Filters se
// aceptan como cualquier escalar JSON y se pasan a texto con Filter/PromptText.
type AIQueryRequest struct {
	Prompt  any `json:"prompt"`
	Filters any `json:"filters,omitempty"`
}

// PromptText retorna el prompt como texto. Ausente, null, false, 0 y "" cuentan como vacío.
func (r AIQueryRequest) PromptText() string {
	switch v := r.Prompt.(type) {
	case bool:
		if !v {
			return ""
		}
	case float64:
		if v == 0 {
			return ""
		}
	}
	return scalarString(r.Prompt)
}

// Filter toma las cinco claves conocidas de Filters. Si Filters no es un objeto se
// buscan todos los issues; las claves desconocidas y los valores no escalares se ignoran.
func (r AIQueryRequest) Filter() IssueFilter {
	filters, _ := r.Filters.(map[string]any)
	get := func(key string) string {
		return scalarString(filters[key])
	}
	return IssueFilter{
		Type:          get("type"),
		Priority:      get("priority"),
		Status:        get("status"),
		CreatedAfter:  get("createdAfter"),
		CreatedBefore: get("createdBefore"),
	}
}

func scalarString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(s)
	default:
		return ""
	}
}

// AIQueryResponse es la respuesta exitosa de POST /query-ai.
type AIQueryResponse struct {
	Response string `json:"response"`
}

// ErrorResponse es el cuerpo de cualquier respuesta de error.
type ErrorResponse struct {
	Error string `json:"error"`
}

