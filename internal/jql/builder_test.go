package jql

import (
	"strings"
	"testing"

	"github.com/Tomas-vilte/MateRelay/internal/domain/models"
	"github.com/stretchr/testify/assert"
)

func TestBuild(t *testing.T) {
	tests := []struct {
		name     string
		filter   models.IssueFilter
		expected string
	}{
		{
			name:     "sin filtros usa la disyunción por defecto",
			filter:   models.IssueFilter{},
			expected: `assignee = currentUser() AND (issuetype = Bug OR issuetype = Story) ORDER BY created DESC`,
		},
		{
			name:     "prioridad y tipo",
			filter:   models.IssueFilter{Priority: "High", Type: "Bug"},
			expected: `assignee = currentUser() AND issuetype = "Bug" AND priority = "High" ORDER BY created DESC`,
		},
		{
			name: "todos los filtros respetan el orden",
			filter: models.IssueFilter{
				Type:          "Task",
				Priority:      "Low",
				Status:        "In Progress",
				CreatedAfter:  "2024-01-01",
				CreatedBefore: "2024-12-31",
			},
			expected: `assignee = currentUser() AND issuetype = "Task" AND priority = "Low" AND status = "In Progress"` +
				` AND created >= "2024-01-01" AND created <= "2024-12-31" ORDER BY created DESC`,
		},
		{
			name:     "rango de fechas sin tipo",
			filter:   models.IssueFilter{CreatedAfter: "-7d"},
			expected: `assignee = currentUser() AND (issuetype = Bug OR issuetype = Story) AND created >= "-7d" ORDER BY created DESC`,
		},
		{
			name:     "valores en blanco se ignoran",
			filter:   models.IssueFilter{Type: "  ", Status: "\t"},
			expected: `assignee = currentUser() AND (issuetype = Bug OR issuetype = Story) ORDER BY created DESC`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Build(tt.filter))
		})
	}
}

func TestBuild_KeepsSurroundingWhitespace(t *testing.T) {
	q := Build(models.IssueFilter{Status: " Done", Type: "Bug "})

	assert.Equal(t,
		`assignee = currentUser() AND issuetype = "Bug " AND status = " Done" ORDER BY created DESC`,
		q)
}

func TestBuild_DefaultTypesAppearsOnceWithoutType(t *testing.T) {
	filters := []models.IssueFilter{
		{},
		{Priority: "High"},
		{Status: "Done", CreatedBefore: "2024-02-01"},
	}

	for _, f := range filters {
		q := Build(f)
		assert.Equal(t, 1, strings.Count(q, DefaultTypes), q)
		assert.True(t, strings.HasSuffix(q, " ORDER BY created DESC"))
	}
}

func TestBuild_ExplicitTypeOmitsDisjunction(t *testing.T) {
	q := Build(models.IssueFilter{Type: "Epic"})

	assert.Contains(t, q, `issuetype = "Epic"`)
	assert.NotContains(t, q, DefaultTypes)
}

func TestBuild_EachFilterAddsOneClause(t *testing.T) {
	q := Build(models.IssueFilter{Priority: "High", Status: "Open"})
	body := strings.TrimSuffix(q, " "+OrderByCreated)

	clauses := strings.Split(body, " AND ")
	assert.Len(t, clauses, 4)
	assert.Equal(t, 1, strings.Count(q, "priority = "))
	assert.Equal(t, 1, strings.Count(q, "status = "))
}

func TestBuild_Deterministic(t *testing.T) {
	f := models.IssueFilter{Type: "Bug", Status: "Open", CreatedAfter: "2024-01-01"}
	assert.Equal(t, Build(f), Build(f))
}

func TestQuote(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"High", `"High"`},
		{`In "Progress"`, `"In \"Progress\""`},
		{`a\b`, `"a\\b"`},
		{"line\nbreak", `"line\nbreak"`},
		{`Bug" OR assignee != currentUser() OR "x`, `"Bug\" OR assignee != currentUser() OR \"x"`},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.expected, Quote(tt.in))
		})
	}
}

func TestBuild_InjectionStaysInsideLiteral(t *testing.T) {
	q := Build(models.IssueFilter{Status: `Done" OR project = SECRET OR status = "x`})

	assert.Equal(t,
		`assignee = currentUser() AND (issuetype = Bug OR issuetype = Story) AND status = "Done\" OR project = SECRET OR status = \"x" ORDER BY created DESC`,
		q)
}
