package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/halcyon-labs/scribe-cli/internal/core/domain"
	"github.com/halcyon-labs/scribe-cli/internal/core/ports/driven"
	"github.com/halcyon-labs/scribe-cli/internal/logger"
)

// InsufficientContextAnswer is returned without calling the LLM when
// retrieval yields no chunks.
const InsufficientContextAnswer = "I cannot find the specific information in the transcript to answer that question."

const systemInstructions = `You are an expert Chat Transcript Analyst. Your task is to answer user questions based STRICTLY on the provided chat excerpts. Do not invent information. If the context does not contain the answer, state that you cannot find the specific information. Always be concise and cite the source information explicitly.`

// AnswererService generates grounded answers from retrieved chunks.
type AnswererService struct {
	llm driven.LLMService
}

// NewAnswererService creates a new answerer.
func NewAnswererService(llm driven.LLMService) *AnswererService {
	return &AnswererService{llm: llm}
}

// Answer generates a grounded answer to the question from the given
// chunks. With no chunks it returns the fixed insufficient-context
// answer and never calls the LLM. Sources always lists exactly the
// chunk IDs supplied.
func (s *AnswererService) Answer(
	ctx context.Context, question string, chunks []domain.RetrievedChunk,
) (*domain.Answer, error) {
	if len(chunks) == 0 {
		logger.Debug("Answer: no context retrieved, skipping generation")
		return &domain.Answer{
			Text:    InsufficientContextAnswer,
			Sources: []string{},
			Context: []domain.RetrievedChunk{},
		}, nil
	}

	prompt := buildPrompt(question, chunks)
	logger.Debug("Answer: prompt is %d chars over %d excerpts", len(prompt), len(chunks))

	text, err := s.llm.Generate(ctx, prompt, driven.GenerateOptions{})
	if err != nil {
		return nil, fmt.Errorf("generate answer: %w", err)
	}

	sources := make([]string, len(chunks))
	for i, c := range chunks {
		sources[i] = c.Chunk.ID
	}

	return &domain.Answer{
		Text:    strings.TrimSpace(text),
		Sources: sources,
		Context: chunks,
	}, nil
}

// buildPrompt assembles the grounded prompt: instructions, numbered
// excerpts, then the question.
func buildPrompt(question string, chunks []domain.RetrievedChunk) string {
	var b strings.Builder
	b.WriteString(systemInstructions)
	b.WriteString("\n\nContext:\n")
	for i, c := range chunks {
		fmt.Fprintf(&b, "\n[%d] %s\n", i+1, c.Chunk.Text)
	}
	b.WriteString("\nQuestion: ")
	b.WriteString(question)
	b.WriteString("\n\nAnswer:")
	return b.String()
}
