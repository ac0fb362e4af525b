package factory

import (
	"fmt"
	"time"

	"student-notes-ai/pkg/llm"
	"student-notes-ai/pkg/llm/gemini"
	"student-notes-ai/pkg/llm/ollama"
	"student-notes-ai/pkg/llm/simulated"
)

func NewLLMProvider(providerType, modelName, baseURL, geminiApiKey string) (llm.LLMProvider, error) {
	switch providerType {
	case "ollama":
		if baseURL == "" {
			baseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(baseURL, modelName), nil
	case "gemini":
		if geminiApiKey == "" {
			return nil, fmt.Errorf("gemini provider requires an API key")
		}
		return gemini.NewGeminiProvider(geminiApiKey, modelName), nil
	case "simulated":
		// Demo fallback: canned completion after a fixed delay
		return simulated.NewSimulatedProvider(2 * time.Second), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
