package service

import (
	"context"
	"fmt"

	"algoprep/pkg/errors"
	"algoprep/pkg/utils/logger"

	"go.uber.org/zap"
)

// Model selection per artifact kind.
const (
	explainModel  = "gemini-2.5-flash-lite"
	hintsModel    = "gemini-2.5-pro"
	solutionModel = "gemini-2.5-flash-lite"
)

// languageNames maps the accepted language codes to display names used
// in prompts. Membership in this map is the validity check.
var languageNames = map[string]string{
	"c":    "C",
	"cpp":  "C++",
	"java": "Java",
}

// TextGenerator is the upstream generative-AI call. One prompt in,
// free text out.
type TextGenerator interface {
	Generate(ctx context.Context, model, prompt string) (string, error)
}

// AssistService turns a problem reference into one of three free-text
// artifacts. It is stateless: every method is a single upstream call
// with no retry and no partial result.
type AssistService struct {
	generator TextGenerator
}

// NewAssistService creates the service. generator may be nil when no
// credential is configured; invocation then fails but Configured()
// reports it first.
func NewAssistService(generator TextGenerator) *AssistService {
	return &AssistService{generator: generator}
}

// Configured reports whether the gateway can be invoked at all.
// Clients use this to decide whether to show AI affordances.
func (s *AssistService) Configured() bool {
	return s.generator != nil
}

// Explain produces an intuition/approach/complexity walkthrough.
func (s *AssistService) Explain(ctx context.Context, title, url, details string) (string, error) {
	if title == "" {
		return "", errors.New(errors.RequiredFieldEmpty).WithMessage("title required")
	}

	prompt := fmt.Sprintf(`You are an experienced DSA mentor. Explain the problem clearly and concisely.
Problem Title: %s
Reference URL: %s
Additional Details: %s

Provide:
1) Intuition (2-4 sentences)
2) Approach (steps)
3) Time & Space complexity
`, title, orNA(url), orNA(details))

	return s.generate(ctx, explainModel, prompt)
}

// Hints produces three progressively revealing hints that withhold the
// final answer. The student's current thought is passed through as
// context, not validated.
func (s *AssistService) Hints(ctx context.Context, title, url, currentThought string) (string, error) {
	if title == "" {
		return "", errors.New(errors.RequiredFieldEmpty).WithMessage("title required")
	}

	prompt := fmt.Sprintf(`Provide 3 progressively revealing hints for this problem without giving the final answer.
Problem: %s
Reference: %s
Student's current thought: %s
`, title, orNA(url), orNA(currentThought))

	return s.generate(ctx, hintsModel, prompt)
}

// Solution produces a single fenced code block in the requested
// language with no commentary.
func (s *AssistService) Solution(ctx context.Context, title, url, language string) (string, error) {
	if title == "" || language == "" {
		return "", errors.New(errors.RequiredFieldEmpty).WithMessage("title and language required")
	}
	languageName, ok := languageNames[language]
	if !ok {
		return "", errors.New(errors.LanguageNotSupported).WithMessage("language must be c | cpp | java")
	}

	prompt := fmt.Sprintf(`Provide a clean, idiomatic %s solution for the following problem.
Problem: %s
Reference: %s

Output strictly in a single code block with only the code, no extra commentary.`, languageName, title, orNA(url))

	return s.generate(ctx, solutionModel, prompt)
}

func (s *AssistService) generate(ctx context.Context, model, prompt string) (string, error) {
	if s.generator == nil {
		return "", errors.New(errors.AssistNotConfigured)
	}

	text, err := s.generator.Generate(ctx, model, prompt)
	if err != nil {
		logger.Error(ctx, "ai generation failed", zap.String("model", model), zap.Error(err))
		return "", errors.Wrap(err, errors.AssistGenerationFailed).WithMessage("AI error")
	}
	return text, nil
}

func orNA(value string) string {
	if value == "" {
		return "N/A"
	}
	return value
}
