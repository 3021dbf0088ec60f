package ports

import (
	"context"

	"github.com/Tomas-vilte/MateRelay/internal/domain/models"
)

// RelayService es lo que expone el front door HTTP.
type RelayService interface {
	SearchIssues(ctx context.Context, filter models.IssueFilter) (*models.IssueSearchResult, error)
	QueryAI(ctx context.Context, prompt string, filter models.IssueFilter) (string, error)
}
