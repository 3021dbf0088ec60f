package models

import "strings"

const (
	// DefaultPriority se usa cuando Jira no devuelve prioridad para el issue.
	DefaultPriority = "Not set"
	// DefaultDescription se usa cuando el issue no tiene descripción con texto.
	DefaultDescription = "No description"
)

// IssueFilter agrupa los filtros opcionales de búsqueda. Un campo vacío significa "sin restricción".
type IssueFilter struct {
	Type          string `json:"type,omitempty" form:"type"`
	Priority      string `json:"priority,omitempty" form:"priority"`
	Status        string `json:"status,omitempty" form:"status"`
	CreatedAfter  string `json:"createdAfter,omitempty" form:"createdAfter"`
	CreatedBefore string `json:"createdBefore,omitempty" form:"createdBefore"`
}

// IsEmpty indica si ningún filtro tiene valor.
func (f IssueFilter) IsEmpty() bool {
	return strings.TrimSpace(f.Type) == "" &&
		strings.TrimSpace(f.Priority) == "" &&
		strings.TrimSpace(f.Status) == "" &&
		strings.TrimSpace(f.CreatedAfter) == "" &&
		strings.TrimSpace(f.CreatedBefore) == ""
}

// IssueSummary es la proyección plana de un issue de Jira que se devuelve al cliente.
type IssueSummary struct {
	Key         string `json:"key"`
	Summary     string `json:"summary"`
	Type        string `json:"type"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	Created     string `json:"created,omitempty"`
	Description string `json:"description"`
}

// IssueSearchResult es el resultado de una búsqueda junto con el JQL que la produjo.
type IssueSearchResult struct {
	Issues []IssueSummary `json:"issues"`
	JQL    string         `json:"jql"`
}
