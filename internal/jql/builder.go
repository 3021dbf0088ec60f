// Package jql construye las consultas JQL que se envían al endpoint de búsqueda de Jira.
package jql

import (
	"strings"

	"github.com/Tomas-vilte/MateRelay/internal/domain/models"
)

const (
	AssignedToMe    = "assignee = currentUser()"
	DefaultTypes    = "(issuetype = Bug OR issuetype = Story)"
	OrderByCreated  = "ORDER BY created DESC"
	clauseSeparator = " AND "
)

// Build arma la consulta para un conjunto de filtros. El orden de las cláusulas es fijo:
// asignación, tipo, prioridad, estado, created >=, created <=.
// Un valor vacío o sólo con espacios no agrega cláusula; el resto se cita tal cual.
func Build(filter models.IssueFilter) string {
	if filter.IsEmpty() {
		return AssignedToMe + clauseSeparator + DefaultTypes + " " + OrderByCreated
	}

	clauses := []string{AssignedToMe}

	if !isBlank(filter.Type) {
		clauses = append(clauses, "issuetype = "+Quote(filter.Type))
	} else {
		clauses = append(clauses, DefaultTypes)
	}

	optional := []struct {
		field string
		op    string
		value string
	}{
		{"priority", "=", filter.Priority},
		{"status", "=", filter.Status},
		{"created", ">=", filter.CreatedAfter},
		{"created", "<=", filter.CreatedBefore},
	}

	for _, c := range optional {
		if isBlank(c.value) {
			continue
		}
		clauses = append(clauses, c.field+" "+c.op+" "+Quote(c.value))
	}

	return strings.Join(clauses, clauseSeparator) + " " + OrderByCreated
}

func isBlank(v string) bool {
	return strings.TrimSpace(v) == ""
}

// Quote devuelve v como literal de string JQL entre comillas dobles.
// Backslash y comillas se escapan para que el valor no pueda cerrar el literal.
func Quote(v string) string {
	var b strings.Builder
	b.Grow(len(v) + 2)
	b.WriteByte('"')
	for _, r := range v {
		switch r {
		case '\\', '"':
			b.WriteByte('\\')
			b.WriteRune(r)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
