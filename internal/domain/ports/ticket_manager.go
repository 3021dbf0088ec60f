package ports

import (
	"context"

	"github.com/Tomas-vilte/MateRelay/internal/domain/models"
)

// IssueSearcher busca issues en el tracker a partir de una consulta JQL ya construida.
type IssueSearcher interface {
	SearchIssues(ctx context.Context, jql string, maxResults int) ([]models.IssueSummary, error)
}
