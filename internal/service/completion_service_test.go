package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"student-notes-ai/internal/dto"
	"student-notes-ai/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

type stubLiteratureService struct {
	docs []string
	err  error
}

func (s *stubLiteratureService) Add(ctx context.Context, req *dto.AddLiteratureRequest) (*dto.AddLiteratureResponse, error) {
	return nil, errors.New("not implemented")
}

func (s *stubLiteratureService) Search(ctx context.Context, req *dto.SearchLiteratureRequest) (*dto.SearchLiteratureResponse, error) {
	return nil, errors.New("not implemented")
}

func (s *stubLiteratureService) QueryRelevant(ctx context.Context, text string, nResults int) ([]string, error) {
	return s.docs, s.err
}

type stubLLM struct {
	lastPrompt string
	response   string
	err        error
}

func (s *stubLLM) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	return s.response, s.err
}

func (s *stubLLM) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	s.lastPrompt = prompt
	return s.response, s.err
}

func TestCompleteHappyPathWithSources(t *testing.T) {
	lit := &stubLiteratureService{docs: []string{"chunk one", "chunk two"}}
	model := &stubLLM{response: "# Organized Notes"}
	svc := NewCompletionService(lit, model, nopLogger{})

	res, err := svc.Complete(context.Background(), &dto.CompletionRequest{
		ExtractedText: "photosynthesis - plants use light",
		Subject:       "Biology",
	})
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Equal(t, "# Organized Notes", res.CompletedNotes)
	assert.Equal(t, []string{"Academic reference 1", "Academic reference 2"}, res.Sources)
	assert.Equal(t, "photosynthesis - plants use light", res.OriginalText)

	assert.Contains(t, model.lastPrompt, "photosynthesis - plants use light")
	assert.Contains(t, model.lastPrompt, "chunk one")
	assert.Contains(t, model.lastPrompt, "Subject: Biology")
}

func TestCompleteSourcesCappedAtThree(t *testing.T) {
	lit := &stubLiteratureService{docs: []string{"a", "b", "c", "d", "e"}}
	model := &stubLLM{response: "notes"}
	svc := NewCompletionService(lit, model, nopLogger{})

	res, err := svc.Complete(context.Background(), &dto.CompletionRequest{ExtractedText: "x"})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Academic reference 1",
		"Academic reference 2",
		"Academic reference 3",
	}, res.Sources)

	// Only the first three chunks enter the prompt.
	assert.Contains(t, model.lastPrompt, "c")
	assert.NotContains(t, model.lastPrompt, "\nd\n")
}

func TestCompleteDegradesWhenLiteratureQueryFails(t *testing.T) {
	lit := &stubLiteratureService{err: errors.New("vector index down")}
	model := &stubLLM{response: "notes without context"}
	svc := NewCompletionService(lit, model, nopLogger{})

	res, err := svc.Complete(context.Background(), &dto.CompletionRequest{ExtractedText: "x"})
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Equal(t, "notes without context", res.CompletedNotes)
	assert.Empty(t, res.Sources)
	assert.NotContains(t, model.lastPrompt, "Relevant academic context")
}

func TestCompletePropagatesProviderError(t *testing.T) {
	lit := &stubLiteratureService{}
	model := &stubLLM{err: errors.New("quota exceeded")}
	svc := NewCompletionService(lit, model, nopLogger{})

	_, err := svc.Complete(context.Background(), &dto.CompletionRequest{ExtractedText: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestBuildCompletionPrompt(t *testing.T) {
	prompt := buildCompletionPrompt("raw text", "", []string{"ctx1", "ctx2"})

	assert.True(t, strings.Contains(prompt, "raw text"))
	assert.Contains(t, prompt, "Relevant academic context:\nctx1\nctx2")
	assert.Contains(t, prompt, "Add section headings where appropriate")
	assert.NotContains(t, prompt, "Subject:")
}
