package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	domainErrors "github.com/Tomas-vilte/MateRelay/internal/domain/errors"
	"github.com/joho/godotenv"
)

type (
	// Config se construye una sola vez al arrancar y no se modifica después.
	Config struct {
		Port        string
		Language    string
		LogLevel    string
		HTTPTimeout time.Duration

		JiraConfig  JiraConfig
		AIConfig    AIConfig
		AIProviders map[string]AIProviderConfig
		Cache       CacheConfig
	}

	JiraConfig struct {
		APIKey     string
		BaseURL    string
		Email      string
		MaxResults int
	}

	AIConfig struct {
		ActiveAI  AI
		MaxTokens int
	}

	AIProviderConfig struct {
		APIKey  string
		Model   string
		BaseURL string
	}

	CacheConfig struct {
		Size int
		TTL  time.Duration
	}
)

// TicketJira es el único issue tracker soportado.
const TicketJira = "jira"

const (
	defaultPort              = "3000"
	defaultLang              = LangEN
	defaultHTTPTimeout       = 20 * time.Second
	defaultMaxResults        = 20
	defaultMaxTokens         = 512
	defaultCacheTTL          = 10 * time.Minute
	defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"
)

// LoadConfig carga el archivo .env (si existe) y arma la configuración desde el entorno.
// Un envFile vacío busca ".env" en el directorio actual y lo ignora si no existe;
// un envFile explícito que no se puede leer es un error.
func LoadConfig(envFile string) (*Config, error) {
	if envFile == "" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, domainErrors.ErrInvalidConfig.WithContext("field", ".env").WithError(err)
		}
	} else if err := godotenv.Load(envFile); err != nil {
		return nil, domainErrors.ErrInvalidConfig.WithContext("field", envFile).WithError(err)
	}

	return FromLookup(os.Getenv)
}

// FromLookup arma la configuración usando getenv para resolver cada variable.
func FromLookup(getenv func(string) string) (*Config, error) {
	get := func(key string) string {
		return strings.TrimSpace(getenv(key))
	}

	cfg := &Config{
		Port:     firstNonEmpty(get("PORT"), defaultPort),
		Language: GetLocaleConfig(firstNonEmpty(get("LANGUAGE"), defaultLang)),
		LogLevel: get("LOG_LEVEL"),
		JiraConfig: JiraConfig{
			APIKey:  get("JIRA_API_TOKEN"),
			BaseURL: strings.TrimRight(get("JIRA_BASE_URL"), "/"),
			Email:   get("JIRA_EMAIL"),
		},
		AIConfig: AIConfig{
			ActiveAI: AI(strings.ToLower(firstNonEmpty(get("AI_PROVIDER"), string(AIGemini)))),
		},
		AIProviders: map[string]AIProviderConfig{
			string(AIGemini): {
				APIKey: get("GEMINI_API_KEY"),
				Model:  firstNonEmpty(get("GEMINI_MODEL_ID"), string(DefaultModelForAI(AIGemini))),
			},
			string(AIOpenRouter): {
				APIKey:  get("OPENROUTER_API_KEY"),
				Model:   NormalizeModel(AIOpenRouter, firstNonEmpty(get("OR_MODEL_ID"), string(DefaultModelForAI(AIOpenRouter)))),
				BaseURL: strings.TrimRight(firstNonEmpty(get("OPENROUTER_BASE_URL"), defaultOpenRouterBaseURL), "/"),
			},
		},
	}

	var err error
	if cfg.HTTPTimeout, err = parseDuration("HTTP_TIMEOUT", get("HTTP_TIMEOUT"), defaultHTTPTimeout); err != nil {
		return nil, err
	}
	if cfg.JiraConfig.MaxResults, err = parseInt("JIRA_MAX_RESULTS", get("JIRA_MAX_RESULTS"), defaultMaxResults); err != nil {
		return nil, err
	}
	if cfg.AIConfig.MaxTokens, err = parseInt("AI_MAX_TOKENS", firstNonEmpty(get("AI_MAX_TOKENS"), get("OR_MAX_TOKENS")), defaultMaxTokens); err != nil {
		return nil, err
	}
	if cfg.Cache.Size, err = parseInt("AI_CACHE_SIZE", get("AI_CACHE_SIZE"), 0); err != nil {
		return nil, err
	}
	if cfg.Cache.TTL, err = parseDuration("AI_CACHE_TTL", get("AI_CACHE_TTL"), defaultCacheTTL); err != nil {
		return nil, err
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// IsConfigured indica si hay credenciales y URL de Jira. Sin ellas cada búsqueda falla al ejecutarse.
func (j JiraConfig) IsConfigured() bool {
	return j.BaseURL != "" && j.Email != "" && j.APIKey != ""
}

// ActiveProvider retorna la configuración del proveedor de IA activo.
func (c *Config) ActiveProvider() AIProviderConfig {
	return c.AIProviders[string(c.AIConfig.ActiveAI)]
}

// WithPort retorna una copia con el puerto reemplazado, validado igual que PORT.
func (c *Config) WithPort(port string) (*Config, error) {
	clone := *c
	clone.Port = strings.TrimSpace(port)
	if err := validateConfig(&clone); err != nil {
		return nil, err
	}
	return &clone, nil
}

// ListenAddr retorna la dirección en formato host:port para el servidor HTTP.
func (c *Config) ListenAddr() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}

func validateConfig(cfg *Config) error {
	port, err := strconv.Atoi(strings.TrimPrefix(cfg.Port, ":"))
	if err != nil || port <= 0 || port > 65535 {
		return invalid("PORT", fmt.Sprintf("puerto inválido: %q", cfg.Port), err)
	}
	if cfg.JiraConfig.MaxResults <= 0 {
		return invalid("JIRA_MAX_RESULTS", "debe ser mayor que 0", nil)
	}
	if cfg.AIConfig.MaxTokens <= 0 {
		return invalid("AI_MAX_TOKENS", "debe ser mayor que 0", nil)
	}
	if cfg.Cache.Size < 0 {
		return invalid("AI_CACHE_SIZE", "no puede ser negativo", nil)
	}
	if !isSupportedAI(cfg.AIConfig.ActiveAI) {
		return invalid("AI_PROVIDER", fmt.Sprintf("proveedor no soportado: %s", cfg.AIConfig.ActiveAI), nil).
			WithSuggestion(domainErrors.ErrProviderNotFound.Suggestion)
	}
	return nil
}

func parseInt(field, raw string, def int) (int, error) {
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, invalid(field, fmt.Sprintf("no es un entero: %q", raw), err)
	}
	return v, nil
}

// parseDuration acepta duraciones de Go ("15s", "1m") o un número entero de segundos.
func parseDuration(field, raw string, def time.Duration) (time.Duration, error) {
	if raw == "" {
		return def, nil
	}
	if secs, err := strconv.Atoi(raw); err == nil {
		if secs <= 0 {
			return 0, invalid(field, "debe ser mayor que 0", nil)
		}
		return time.Duration(secs) * time.Second, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, invalid(field, fmt.Sprintf("duración inválida: %q", raw), err)
	}
	if d <= 0 {
		return 0, invalid(field, "debe ser mayor que 0", nil)
	}
	return d, nil
}

func invalid(field, reason string, err error) *domainErrors.AppError {
	return domainErrors.ErrInvalidConfig.
		WithContext("field", field).
		WithContext("reason", reason).
		WithError(err)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
