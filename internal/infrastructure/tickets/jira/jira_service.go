package jira

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Tomas-vilte/MateRelay/internal/config"
	domainErrors "github.com/Tomas-vilte/MateRelay/internal/domain/errors"
	"github.com/Tomas-vilte/MateRelay/internal/domain/models"
	"github.com/Tomas-vilte/MateRelay/internal/domain/ports"
	"github.com/Tomas-vilte/MateRelay/internal/infrastructure/httpclient"
	"github.com/Tomas-vilte/MateRelay/internal/logger"
)

// SearchFields es la proyección fija que se pide al endpoint de búsqueda.
const SearchFields = "key,summary,issuetype,status,priority,description,created"

const searchPath = "/rest/api/3/search"

var _ ports.IssueSearcher = (*JiraService)(nil)

// JiraService representa el servicio para interactuar con la API de Jira.
type JiraService struct {
	baseURL    string
	authHeader string
	configured bool
	client     httpclient.HTTPClient
}

// NewJiraService crea una nueva instancia de JiraService. El header de autenticación
// se arma una sola vez acá y queda en manos del servicio.
func NewJiraService(cfg config.JiraConfig, client httpclient.HTTPClient) *JiraService {
	return &JiraService{
		baseURL:    cfg.BaseURL,
		authHeader: getBasicAuth(cfg.Email, cfg.APIKey),
		configured: cfg.IsConfigured(),
		client:     client,
	}
}

type (
	searchResponse struct {
		Issues []jiraIssue `json:"issues"`
	}

	jiraIssue struct {
		Key    string     `json:"key"`
		Fields jiraFields `json:"fields"`
	}

	jiraFields struct {
		Summary     string        `json:"summary"`
		IssueType   *namedField   `json:"issuetype"`
		Status      *namedField   `json:"status"`
		Priority    *namedField   `json:"priority"`
		Created     string        `json:"created"`
		Description *AtlassianDoc `json:"description"`
	}

	namedField struct {
		Name string `json:"name"`
	}

	AtlassianDoc struct {
		Type    string       `json:"type"`
		Version int          `json:"version"`
		Content []DocContent `json:"content"`
	}

	DocContent struct {
		Type    string       `json:"type"`
		Text    string       `json:"text,omitempty"`
		Content []DocContent `json:"content,omitempty"`
	}
)

// SearchIssues ejecuta la consulta JQL y normaliza cada issue devuelto.
func (s *JiraService) SearchIssues(ctx context.Context, jql string, maxResults int) ([]models.IssueSummary, error) {
	if !s.configured {
		return nil, domainErrors.ErrTrackerNotConfigured
	}

	params := url.Values{}
	params.Set("jql", jql)
	params.Set("fields", SearchFields)
	params.Set("maxResults", strconv.Itoa(maxResults))

	endpoint := fmt.Sprintf("%s%s?%s", s.baseURL, searchPath, params.Encode())
	resp, err := s.makeRequest(ctx, http.MethodGet, endpoint)
	if err != nil {
		return nil, domainErrors.ErrFetchIssues.WithError(err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.Debug(ctx, "error closing jira response body", "error", err)
		}
	}()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var result searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, domainErrors.ErrDecodeIssues.WithError(err)
	}

	issues := make([]models.IssueSummary, 0, len(result.Issues))
	for _, issue := range result.Issues {
		issues = append(issues, normalizeIssue(issue))
	}

	logger.Debug(ctx, "jira search completed", "count", len(issues))
	return issues, nil
}

func checkStatus(resp *http.Response) error {
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return domainErrors.ErrTrackerUnauthorized.WithContext("status", resp.StatusCode)
	case resp.StatusCode == http.StatusBadRequest:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return domainErrors.ErrTrackerRejectedQuery.
			WithContext("status", resp.StatusCode).
			WithError(fmt.Errorf("%s", string(body)))
	default:
		return domainErrors.ErrFetchIssues.
			WithContext("status", resp.StatusCode).
			WithError(fmt.Errorf("error inesperado al buscar issues: %s", resp.Status))
	}
}

// normalizeIssue aplana un issue de Jira en un IssueSummary.
func normalizeIssue(issue jiraIssue) models.IssueSummary {
	f := issue.Fields
	summary := models.IssueSummary{
		Key:         issue.Key,
		Summary:     f.Summary,
		Type:        nameOf(f.IssueType),
		Status:      nameOf(f.Status),
		Priority:    nameOf(f.Priority),
		Created:     f.Created,
		Description: firstParagraphText(f.Description),
	}
	if summary.Priority == "" {
		summary.Priority = models.DefaultPriority
	}
	return summary
}

func nameOf(f *namedField) string {
	if f == nil {
		return ""
	}
	return f.Name
}

// firstParagraphText retorna el texto del primer nodo del primer bloque del documento.
// Si falta cualquier eslabón de la cadena, retorna models.DefaultDescription.
func firstParagraphText(doc *AtlassianDoc) string {
	if doc == nil || len(doc.Content) == 0 {
		return models.DefaultDescription
	}
	first := doc.Content[0]
	if len(first.Content) == 0 || first.Content[0].Text == "" {
		return models.DefaultDescription
	}
	return first.Content[0].Text
}

// makeRequest realiza una solicitud HTTP a la API de Jira.
func (s *JiraService) makeRequest(ctx context.Context, method, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	req.Header.Set("Authorization", s.authHeader)
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error making request: %w", err)
	}

	return resp, nil
}

// getBasicAuth genera el encabezado de autenticación básica.
func getBasicAuth(username, token string) string {
	credentials := fmt.Sprintf("%s:%s", username, token)
	return fmt.Sprintf("Basic %s", base64.StdEncoding.EncodeToString([]byte(credentials)))
}
