package bootstrap

import (
	"context"
	"fmt"

	"github.com/satwik073/Priscus-server/config"
	"github.com/satwik073/Priscus-server/internal/generation"
	"github.com/satwik073/Priscus-server/internal/llm"
)

// OpenLLM returns the text generator for the configured provider.
func OpenLLM(ctx context.Context, cfg config.LLMConfig) (generation.TextGenerator, error) {
	switch cfg.Provider {
	case config.ProviderGemini:
		return llm.NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, cfg.Timeout)
	case config.ProviderVertex:
		return llm.NewVertex(ctx, cfg.VertexProject, cfg.VertexLocation, cfg.GeminiModel, cfg.Timeout)
	case config.ProviderOllama:
		return llm.NewOllama(cfg.OllamaURL, cfg.OllamaModel, cfg.Timeout), nil
	default:
		return nil, fmt.Errorf("unknown LLM_PROVIDER %q", cfg.Provider)
	}
}
