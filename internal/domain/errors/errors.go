package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorType defines the category of the error
type ErrorType string

const (
	TypeInput         ErrorType = "INPUT"
	TypeTracker       ErrorType = "TRACKER"
	TypeAI            ErrorType = "AI"
	TypeConfiguration ErrorType = "CONFIGURATION"
	TypeInternal      ErrorType = "INTERNAL"
)

// AppError represents a domain-level error with a type and an underlying error
type AppError struct {
	Type       ErrorType
	Message    string
	Context    map[string]interface{}
	Err        error
	Suggestion string
}

func (e *AppError) Error() string {
	var msg string
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %s (%v)", e.Type, e.Message, e.Err)
	} else {
		msg = fmt.Sprintf("%s: %s", e.Type, e.Message)
	}

	if e.Context != nil {
		if field, ok := e.Context["field"].(string); ok && field != "" {
			msg += fmt.Sprintf(" [%s]", field)
		}
		if reason, ok := e.Context["reason"].(string); ok && reason != "" {
			msg += ": " + reason
		}
		if status, ok := e.Context["status"].(int); ok && status != 0 {
			msg += fmt.Sprintf(" - status %d", status)
		}
	}

	return msg
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is compara por tipo y mensaje, así una copia creada con WithError sigue
// matcheando contra el sentinel original.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Type == t.Type && e.Message == t.Message
}

// WithError creates a new AppError with an underlying error
func (e *AppError) WithError(err error) *AppError {
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    e.Context,
		Err:        err,
		Suggestion: e.Suggestion,
	}
}

// WithContext creates a new AppError with additional context
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	ctx := make(map[string]interface{})
	for k, v := range e.Context {
		ctx[k] = v
	}
	ctx[key] = value
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    ctx,
		Err:        e.Err,
		Suggestion: e.Suggestion,
	}
}

func (e *AppError) WithSuggestion(suggestion string) *AppError {
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    e.Context,
		Err:        e.Err,
		Suggestion: suggestion,
	}
}

// NewAppError creates a new AppError
func NewAppError(t ErrorType, msg string, err error) *AppError {
	return &AppError{
		Type:    t,
		Message: msg,
		Err:     err,
	}
}

// TypeOf retorna la categoría del primer AppError de la cadena, o TypeInternal si no hay ninguno.
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Type
	}
	return TypeInternal
}

// Input errors
var (
	ErrPromptRequired = NewAppError(TypeInput, "Prompt is required.", nil)
)

// Tracker errors
var (
	ErrFetchIssues = NewAppError(TypeTracker, "Failed to fetch filtered issues.", nil).
			WithSuggestion("Check JIRA_BASE_URL, JIRA_EMAIL and JIRA_API_TOKEN")

	ErrTrackerUnauthorized = NewAppError(TypeTracker, "jira rejected the credentials", nil).
				WithSuggestion("Generate a new API token at https://id.atlassian.com/manage-profile/security/api-tokens")

	ErrTrackerRejectedQuery = NewAppError(TypeTracker, "jira rejected the query", nil)

	ErrTrackerNotConfigured = NewAppError(TypeTracker, "jira is not configured", nil).
				WithSuggestion("Set JIRA_BASE_URL, JIRA_EMAIL and JIRA_API_TOKEN")

	ErrDecodeIssues = NewAppError(TypeTracker, "invalid jira search response", nil)
)

// AI errors
var (
	ErrAIGeneration = NewAppError(TypeAI, "Failed to query AI.", nil).
			WithSuggestion("Try again or check your API key configuration")

	ErrAIAPIKeyMissing = NewAppError(TypeAI, "AI API key is missing", nil).
				WithSuggestion("Set GEMINI_API_KEY or OPENROUTER_API_KEY")

	ErrQuotaExceeded = NewAppError(TypeAI, "AI quota exceeded or rate limited", nil).
				WithSuggestion("Wait a few minutes and try again, or check your API quota")
)

// Configuration errors
var (
	ErrProviderNotFound = NewAppError(TypeConfiguration, "AI provider not registered", nil).
				WithSuggestion("Use AI_PROVIDER=gemini or AI_PROVIDER=openrouter")

	ErrInvalidConfig = NewAppError(TypeConfiguration, "invalid configuration value", nil)
)
