package jira

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/Tomas-vilte/MateRelay/internal/config"
	"github.com/Tomas-vilte/MateRelay/internal/domain/models"
	"github.com/Tomas-vilte/MateRelay/internal/infrastructure/httpclient"
	"github.com/Tomas-vilte/MateRelay/internal/jql"
)

func TestJiraService_SearchIssues_Integration(t *testing.T) {
	if os.Getenv("JIRA_INTEGRATION") == "" {
		t.Skip("skipping integration test")
	}
	// Arrange
	service := NewJiraService(config.JiraConfig{
		BaseURL: os.Getenv("JIRA_BASE_URL"),
		Email:   os.Getenv("JIRA_EMAIL"),
		APIKey:  os.Getenv("JIRA_API_TOKEN"),
	}, httpclient.NewDefaultHTTPClient(30*time.Second))

	// Act
	issues, err := service.SearchIssues(context.Background(), jql.Build(models.IssueFilter{}), 5)

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	for _, issue := range issues {
		if issue.Key == "" {
			t.Error("Expected a non-empty issue key")
		}
		if issue.Priority == "" {
			t.Error("Expected priority to fall back to a default")
		}
	}
}
