package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"student-notes-ai/pkg/llm"
)

// GeminiProvider implements LLMProvider on top of the Gemini generateContent
// REST API.
type GeminiProvider struct {
	ApiKey    string
	ModelName string
	Client    *http.Client
}

var _ llm.LLMProvider = &GeminiProvider{}

func NewGeminiProvider(apiKey, modelName string) *GeminiProvider {
	if modelName == "" {
		modelName = "gemini-1.5-flash"
	}
	return &GeminiProvider{
		ApiKey:    apiKey,
		ModelName: modelName,
		Client: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

type geminiChatParts struct {
	Text string `json:"text"`
}

type geminiChatContent struct {
	Parts []*geminiChatParts `json:"parts"`
	Role  string             `json:"role"`
}

type geminiGenerationConfig struct {
	Temperature     float64 `json:"temperature,omitempty"`
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
}

type geminiChatRequest struct {
	Contents         []*geminiChatContent    `json:"contents"`
	GenerationConfig *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiChatCandidate struct {
	Content *geminiChatContent `json:"content"`
}

type geminiChatResponse struct {
	Candidates []*geminiChatCandidate `json:"candidates"`
}

func (g *GeminiProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	options := &llm.Options{
		Temperature: 0.3,
	}
	for _, opt := range opts {
		opt(options)
	}

	contents := make([]*geminiChatContent, 0, len(history))
	for _, msg := range history {
		role := msg.Role
		// Gemini knows only "user" and "model" roles
		if role == "assistant" {
			role = "model"
		}
		if role == "system" {
			role = "user"
		}
		contents = append(contents, &geminiChatContent{
			Parts: []*geminiChatParts{{Text: msg.Content}},
			Role:  role,
		})
	}

	model := g.ModelName
	if options.Model != "" {
		model = options.Model
	}

	payload := geminiChatRequest{
		Contents: contents,
		GenerationConfig: &geminiGenerationConfig{
			Temperature:     options.Temperature,
			MaxOutputTokens: options.MaxTokens,
		},
	}
	payloadJson, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	endpoint := fmt.Sprintf(
		"https://generativelanguage.googleapis.com/v1/models/%s:generateContent",
		model,
	)
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewBuffer(payloadJson))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("x-goog-api-key", g.ApiKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := g.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf(
			"status error, got status %d. with response body %s",
			res.StatusCode,
			string(resBody),
		)
	}

	var geminiRes geminiChatResponse
	if err := json.Unmarshal(resBody, &geminiRes); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}

	if len(geminiRes.Candidates) == 0 || geminiRes.Candidates[0].Content == nil || len(geminiRes.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	return geminiRes.Candidates[0].Content.Parts[0].Text, nil
}

func (g *GeminiProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return g.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, opts...)
}
