package providers

import (
	"bytes"
	"context"
	"testing"

	"github.com/Tomas-vilte/MateRelay/internal/config"
	"github.com/Tomas-vilte/MateRelay/internal/i18n"
	"github.com/Tomas-vilte/MateRelay/internal/infrastructure/ai/gemini"
	"github.com/Tomas-vilte/MateRelay/internal/infrastructure/ai/openrouter"
	"github.com/Tomas-vilte/MateRelay/internal/infrastructure/ai/registry"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func TestProvidersCommand(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	translations, err := i18n.NewTranslations("en", "")
	require.NoError(t, err)

	r := registry.NewAIProviderRegistry()
	require.NoError(t, r.Register("gemini", gemini.NewGeminiProviderFactory()))
	require.NoError(t, r.Register("openrouter", openrouter.NewOpenRouterProviderFactory()))

	cfg, err := config.FromLookup(func(key string) string {
		return map[string]string{"GEMINI_API_KEY": "key"}[key]
	})
	require.NoError(t, err)

	var out bytes.Buffer
	cmd := NewProvidersCommandFactory(r).CreateCommand(translations, cfg)
	app := &cli.Command{Commands: []*cli.Command{cmd}, Writer: &out}

	require.NoError(t, app.Run(context.Background(), []string{"materelay", "providers"}))

	got := out.String()
	assert.Contains(t, got, "✅ gemini (active)\n")
	assert.Contains(t, got, "   model: gemini-1.5-flash\n")
	assert.Contains(t, got, "openrouter: AI: AI API key is missing [OPENROUTER_API_KEY]")
	assert.Less(t, bytes.Index(out.Bytes(), []byte("gemini")), bytes.Index(out.Bytes(), []byte("openrouter")))
}
