package service

import (
	"context"
	"fmt"
	"strings"

	"student-notes-ai/internal/dto"
	"student-notes-ai/internal/pkg/logger"
	"student-notes-ai/pkg/llm"
)

// maxContextDocs caps how many retrieved chunks make it into the prompt.
const maxContextDocs = 3

type ICompletionService interface {
	Complete(ctx context.Context, req *dto.CompletionRequest) (*dto.CompletionResponse, error)
}

type completionService struct {
	literatureService ILiteratureService
	llmProvider       llm.LLMProvider
	logger            logger.ILogger
}

func NewCompletionService(
	literatureService ILiteratureService,
	llmProvider llm.LLMProvider,
	log logger.ILogger,
) ICompletionService {
	return &completionService{
		literatureService: literatureService,
		llmProvider:       llmProvider,
		logger:            log,
	}
}

func (s *completionService) Complete(ctx context.Context, req *dto.CompletionRequest) (*dto.CompletionResponse, error) {
	// Literature retrieval is best effort. A broken vector store should not
	// block note completion, it only loses the academic context.
	contextDocs, err := s.literatureService.QueryRelevant(ctx, req.ExtractedText, 0)
	if err != nil {
		s.logger.Warn("completion", "literature query failed, continuing without context", map[string]interface{}{
			"error": err.Error(),
		})
		contextDocs = nil
	}

	prompt := buildCompletionPrompt(req.ExtractedText, req.Subject, contextDocs)

	completed, err := s.llmProvider.Generate(ctx, prompt,
		llm.WithTemperature(0.3),
		llm.WithMaxTokens(1024),
	)
	if err != nil {
		return nil, err
	}

	var sources []string
	if len(contextDocs) > 0 {
		n := len(contextDocs)
		if n > maxContextDocs {
			n = maxContextDocs
		}
		sources = make([]string, n)
		for i := 0; i < n; i++ {
			sources[i] = fmt.Sprintf("Academic reference %d", i+1)
		}
	}

	return &dto.CompletionResponse{
		Success:        true,
		CompletedNotes: completed,
		Sources:        sources,
		OriginalText:   req.ExtractedText,
	}, nil
}

func buildCompletionPrompt(extractedText, subject string, contextDocs []string) string {
	var contextBlock string
	if len(contextDocs) > 0 {
		n := len(contextDocs)
		if n > maxContextDocs {
			n = maxContextDocs
		}
		contextBlock = "\n\nRelevant academic context:\n" + strings.Join(contextDocs[:n], "\n")
	}

	var subjectLine string
	if subject != "" {
		subjectLine = fmt.Sprintf("\nSubject: %s\n", subject)
	}

	return fmt.Sprintf(`You are an AI academic assistant helping students complete their handwritten notes.
%s
Original extracted text from handwritten notes:
%s
%s

Please:
1. Clean up and organize the extracted text
2. Fill in any gaps or incomplete thoughts
3. Add relevant explanations and context
4. Suggest related concepts and topics
5. Provide a well-structured, comprehensive version of the notes
6. Add section headings where appropriate

Format the response as a complete set of study notes with clear sections and bullet points.`,
		subjectLine,
		extractedText,
		contextBlock,
	)
}
