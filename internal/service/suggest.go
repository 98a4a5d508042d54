package service

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

const (
	maxTitleLen       = 300
	maxDescriptionLen = 1200
	maxSuggestions    = 5
	maxSuggestionLen  = 100
)

// Completer produces a single text completion for a prompt. The production
// implementation wraps the OpenAI chat API; tests substitute stubs.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type openAICompleter struct {
	llm llms.Model
}

func (c *openAICompleter) Complete(ctx context.Context, prompt string) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, c.llm, prompt,
		llms.WithTemperature(0.2),
		llms.WithMaxTokens(200),
	)
}

// SuggestionService produces short improvement suggestions for a task.
// Suggest never fails: when no provider is configured, or the provider call
// errors out or returns nothing usable, a fixed template set takes its place.
type SuggestionService struct {
	completer Completer
	timeout   time.Duration
}

// NewSuggestionService creates a SuggestionService. An empty apiKey means no
// provider is configured and the service runs in deterministic offline mode.
func NewSuggestionService(apiKey, model string, timeout time.Duration) *SuggestionService {
	svc := &SuggestionService{timeout: timeout}

	if apiKey == "" {
		slog.Info("no suggestion provider configured, using offline suggestions")
		return svc
	}

	llm, err := openai.New(openai.WithToken(apiKey), openai.WithModel(model))
	if err != nil {
		slog.Warn("suggestion provider init failed, using offline suggestions", "error", err)
		return svc
	}

	svc.completer = &openAICompleter{llm: llm}
	return svc
}

// NewSuggestionServiceWithCompleter creates a SuggestionService backed by a
// custom Completer.
func NewSuggestionServiceWithCompleter(c Completer, timeout time.Duration) *SuggestionService {
	return &SuggestionService{completer: c, timeout: timeout}
}

// Suggest returns 1-5 short suggestion lines for the given task. Inputs are
// trimmed and capped before use; every returned line is at most 100
// characters. Provider failure of any kind is absorbed into a fallback set.
func (s *SuggestionService) Suggest(ctx context.Context, title, description string) []string {
	title = capString(strings.TrimSpace(title), maxTitleLen)
	description = capString(strings.TrimSpace(description), maxDescriptionLen)

	if s.completer == nil {
		return clampSuggestions(offlineSuggestions(title))
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	raw, err := s.completer.Complete(ctx, buildPrompt(title, description))
	if err != nil {
		slog.Warn("suggestion provider call failed", "source", "fallback", "error", err)
		return clampSuggestions(errorFallbackSuggestions(title))
	}

	lines := parseSuggestionLines(raw)
	if len(lines) == 0 {
		slog.Warn("suggestion provider returned nothing usable", "source", "fallback")
		return clampSuggestions(emptyFallbackSuggestions(title))
	}

	slog.Debug("suggestions generated", "source", "provider", "count", len(lines))
	return clampSuggestions(lines)
}

func buildPrompt(title, description string) string {
	return strings.Join([]string{
		"You are a helpful task assistant.",
		"Given a task title and description, return 3 concise, actionable suggestions (one per line) to improve/clarify/expand the task. Keep each suggestion short (max 100 characters).",
		"",
		"Title: " + title,
		"Description: " + description,
		"",
		"Return only the suggestions as bullet lines or numbered lines.",
	}, "\n")
}

// bulletPrefix matches leading bullet or numbering markup on a suggestion line.
var bulletPrefix = regexp.MustCompile(`^[-*\d.)\s]+`)

// parseSuggestionLines normalizes raw provider output into clean suggestion
// strings: split on line breaks, strip bullet markers, drop blanks, keep at
// most five lines.
func parseSuggestionLines(raw string) []string {
	var lines []string
	for _, line := range strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n") {
		line = strings.TrimSpace(bulletPrefix.ReplaceAllString(line, ""))
		if line == "" {
			continue
		}
		lines = append(lines, line)
		if len(lines) == maxSuggestions {
			break
		}
	}
	return lines
}

// offlineSuggestions is the deterministic set served when no provider
// credential is configured.
func offlineSuggestions(title string) []string {
	return []string{
		fmt.Sprintf("Consider breaking %q into smaller subtasks.", title),
		fmt.Sprintf("Add a deadline for %q to improve tracking.", title),
		fmt.Sprintf("Clarify prerequisites or dependencies for %q.", title),
	}
}

// emptyFallbackSuggestions covers a provider response with no usable lines.
func emptyFallbackSuggestions(title string) []string {
	return []string{
		fmt.Sprintf("Add a deadline to %q.", title),
		"Break it into smaller subtasks.",
		"Specify acceptance criteria.",
	}
}

// errorFallbackSuggestions covers provider call failures of any kind.
func errorFallbackSuggestions(title string) []string {
	return []string{
		fmt.Sprintf("Consider breaking %q into smaller subtasks.", title),
		fmt.Sprintf("Add a deadline for %q.", title),
		fmt.Sprintf("Review dependencies before starting %q.", title),
		"To get real AI suggestions, configure an OpenAI API key.",
	}
}

// clampSuggestions enforces the output contract: at most five lines, each at
// most 100 characters.
func clampSuggestions(lines []string) []string {
	if len(lines) > maxSuggestions {
		lines = lines[:maxSuggestions]
	}
	for i, line := range lines {
		lines[i] = capString(line, maxSuggestionLen)
	}
	return lines
}

func capString(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
