package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Tomas-vilte/MateRelay/internal/config"
	domainErrors "github.com/Tomas-vilte/MateRelay/internal/domain/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func geminiConfig(apiKey string) *config.Config {
	return &config.Config{
		HTTPTimeout: 5 * time.Second,
		AIProviders: map[string]config.AIProviderConfig{
			"gemini": {APIKey: apiKey, Model: "gemini-1.5-flash"},
		},
	}
}

func TestGeminiProviderFactory(t *testing.T) {
	factory := NewGeminiProviderFactory()

	t.Run("Name", func(t *testing.T) {
		assert.Equal(t, "gemini", factory.Name())
	})

	t.Run("ValidateConfig - Valid", func(t *testing.T) {
		assert.NoError(t, factory.ValidateConfig(geminiConfig("test-key")))
	})

	t.Run("ValidateConfig - Missing Provider", func(t *testing.T) {
		cfg := &config.Config{
			AIProviders: map[string]config.AIProviderConfig{},
		}
		err := factory.ValidateConfig(cfg)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "configuracion de gemini no encontrada")
	})

	t.Run("ValidateConfig - Missing API Key", func(t *testing.T) {
		err := factory.ValidateConfig(geminiConfig(""))
		assert.Error(t, err)
		assert.True(t, errors.Is(err, domainErrors.ErrAIAPIKeyMissing))
	})

	t.Run("CreateProvider - Missing API Key Errors", func(t *testing.T) {
		provider, err := factory.CreateProvider(context.Background(), geminiConfig(""))
		assert.Error(t, err)
		assert.Nil(t, provider)
	})

	t.Run("CreateProvider - Success", func(t *testing.T) {
		provider, err := factory.CreateProvider(context.Background(), geminiConfig("test-key"))
		require.NoError(t, err)
		assert.Equal(t, "gemini", provider.GetProviderName())
		assert.Equal(t, "gemini-1.5-flash", provider.GetModelName())
	})
}

func TestFirstText(t *testing.T) {
	tests := []struct {
		name     string
		resp     *genai.GenerateContentResponse
		expected string
		ok       bool
	}{
		{"nil", nil, "", false},
		{"sin candidatos", &genai.GenerateContentResponse{}, "", false},
		{"candidato sin content", &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{}}}, "", false},
		{
			"content sin parts",
			&genai.GenerateContentResponse{Candidates: []*genai.Candidate{{Content: &genai.Content{}}}},
			"", false,
		},
		{
			"primer part",
			&genai.GenerateContentResponse{Candidates: []*genai.Candidate{
				{Content: &genai.Content{Parts: []*genai.Part{{Text: "primero"}, {Text: "segundo"}}}},
				{Content: &genai.Content{Parts: []*genai.Part{{Text: "otro candidato"}}}},
			}},
			"primero", true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, ok := firstText(tt.resp)
			assert.Equal(t, tt.expected, text)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func newTestProvider(t *testing.T, handler http.HandlerFunc) *GeminiProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	factory := &GeminiProviderFactory{baseURL: server.URL + "/"}
	provider, err := factory.CreateProvider(context.Background(), geminiConfig("test-key"))
	require.NoError(t, err)
	return provider.(*GeminiProvider)
}

func TestGeminiProvider_Complete(t *testing.T) {
	t.Run("devuelve el texto del primer candidato", func(t *testing.T) {
		var body map[string]interface{}
		var path string
		provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
			path = r.URL.Path
			data, _ := io.ReadAll(r.Body)
			_ = json.Unmarshal(data, &body)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"Revisá MAT-1 primero."}]}}]}`))
		})

		out, err := provider.Complete(context.Background(), "¿Qué hago hoy?", 256)

		require.NoError(t, err)
		assert.Equal(t, "Revisá MAT-1 primero.", out)
		assert.True(t, strings.HasSuffix(path, "gemini-1.5-flash:generateContent"), path)
		genCfg, _ := body["generationConfig"].(map[string]interface{})
		assert.Equal(t, float64(256), genCfg["maxOutputTokens"])
	})

	t.Run("sin candidatos usa el fallback", func(t *testing.T) {
		provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"candidates":[]}`))
		})

		out, err := provider.Complete(context.Background(), "hola", 64)

		require.NoError(t, err)
		assert.Equal(t, NoResponse, out)
	})

	t.Run("error del API se tipa como AI", func(t *testing.T) {
		provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{"error":{"code":403,"message":"API key not valid","status":"PERMISSION_DENIED"}}`))
		})

		out, err := provider.Complete(context.Background(), "hola", 64)

		assert.Empty(t, out)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainErrors.ErrAIGeneration))
		assert.Equal(t, domainErrors.TypeAI, domainErrors.TypeOf(err))
	})
}
