package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/Tomas-vilte/MateRelay/internal/config"
	domainErrors "github.com/Tomas-vilte/MateRelay/internal/domain/errors"
	"github.com/Tomas-vilte/MateRelay/internal/domain/models"
	"github.com/Tomas-vilte/MateRelay/internal/domain/ports"
	"github.com/Tomas-vilte/MateRelay/internal/jql"
	"github.com/Tomas-vilte/MateRelay/internal/logger"
)

const relatedIssuesSeparator = "\n\nRelated Jira issues:\n"

var _ ports.RelayService = (*RelayService)(nil)

// RelayService orquesta la búsqueda en Jira y la consulta al proveedor de IA.
type RelayService struct {
	issues     ports.IssueSearcher
	ai         ports.AIProvider
	maxResults int
	maxTokens  int
}

type RelayOption func(*RelayService)

// WithMaxResults fija el tope de issues por búsqueda.
func WithMaxResults(n int) RelayOption {
	return func(s *RelayService) {
		s.maxResults = n
	}
}

// WithMaxTokens fija el presupuesto de tokens de salida del proveedor.
func WithMaxTokens(n int) RelayOption {
	return func(s *RelayService) {
		s.maxTokens = n
	}
}

// NewRelayService crea el servicio con los límites de cfg; opts los pueden sobreescribir.
func NewRelayService(cfg *config.Config, issues ports.IssueSearcher, ai ports.AIProvider, opts ...RelayOption) *RelayService {
	s := &RelayService{
		issues:     issues,
		ai:         ai,
		maxResults: cfg.JiraConfig.MaxResults,
		maxTokens:  cfg.AIConfig.MaxTokens,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SearchIssues arma el JQL para el filtro y devuelve los issues normalizados junto con la consulta.
func (s *RelayService) SearchIssues(ctx context.Context, filter models.IssueFilter) (*models.IssueSearchResult, error) {
	query := jql.Build(filter)
	ctx = logger.With(ctx, "jql", query)

	issues, err := s.issues.SearchIssues(ctx, query, s.maxResults)
	if err != nil {
		logger.Error(ctx, "error fetching filtered jira issues", err)
		return nil, err
	}
	if issues == nil {
		issues = []models.IssueSummary{}
	}

	logger.Info(ctx, "jira issues fetched", "count", len(issues))
	return &models.IssueSearchResult{
		Issues: issues,
		JQL:    query,
	}, nil
}

// QueryAI busca los issues del filtro, arma el prompt y lo envía al proveedor.
// Un prompt vacío se rechaza sin ninguna llamada saliente.
func (s *RelayService) QueryAI(ctx context.Context, prompt string, filter models.IssueFilter) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", domainErrors.ErrPromptRequired
	}

	result, err := s.SearchIssues(ctx, filter)
	if err != nil {
		return "", err
	}

	fullPrompt := BuildPrompt(prompt, result.Issues)
	ctx = logger.With(ctx, "provider", s.ai.GetProviderName(), "model", s.ai.GetModelName())

	output, err := s.ai.Complete(ctx, fullPrompt, s.maxTokens)
	if err != nil {
		logger.Error(ctx, "error querying AI provider", err)
		return "", err
	}

	logger.Info(ctx, "ai response generated", "issues", len(result.Issues), "size", len(output))
	return output, nil
}

// BuildPrompt concatena la instrucción del usuario con una línea por issue:
// "- [KEY] summary (status, priority)".
func BuildPrompt(instruction string, issues []models.IssueSummary) string {
	lines := make([]string, len(issues))
	for i, issue := range issues {
		lines[i] = formatIssueLine(issue)
	}
	return instruction + relatedIssuesSeparator + strings.Join(lines, "\n")
}

func formatIssueLine(issue models.IssueSummary) string {
	return fmt.Sprintf("- [%s] %s (%s, %s)", issue.Key, issue.Summary, issue.Status, issue.Priority)
}
