package question

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"

	"github.com/avinsharma/intervu/internal/interview"
	"github.com/avinsharma/intervu/internal/llm"
)

// scriptedChance is the probability the scripted question replaces a
// generated one when its conditions are met.
const scriptedChance = 0.3

// Config tunes the LLM generator.
type Config struct {
	MaxTokens   int
	Temperature float64

	// Draw supplies the random draw deciding the scripted question.
	// Defaults to rand.Float64; tests inject fixed draws.
	Draw func() float64
}

// DefaultConfig returns generation settings suited for short questions.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   300,
		Temperature: 0.7,
		Draw:        rand.Float64,
	}
}

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	if cfg.Draw == nil {
		cfg.Draw = rand.Float64
	}
	return &LLMGenerator{provider: provider, config: cfg}
}

// questionOutput is the raw LLM response before extraction.
type questionOutput struct {
	Question string `json:"question"`
}

// Generate produces a single question for the given input.
func (g *LLMGenerator) Generate(ctx context.Context, input Input) (string, error) {
	if g.scripted(input) {
		return ScriptedQuestion, nil
	}

	ctx = llm.WithPurpose(ctx, "question_generation")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input)},
		},
		Schema:      QuestionSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("question generation failed: %w", err)
	}

	q := extractQuestion(resp.Content)
	if q == "" {
		return "", &llm.ErrInvalidResponse{
			Content: resp.Content,
			Err:     fmt.Errorf("empty question"),
		}
	}
	return q, nil
}

// scripted reports whether this input draws the scripted question
// instead of calling the provider.
func (g *LLMGenerator) scripted(input Input) bool {
	return IsResearchRole(input.Role) &&
		input.Difficulty == interview.Hard &&
		input.Slot == scriptedSlot &&
		g.config.Draw() < scriptedChance
}

// extractQuestion pulls the question text out of the response content.
// Structured {"question": ...} is the contract; a bare JSON string or
// raw text is accepted as fallback for providers without structured
// output. Reasoning markup is stripped either way.
func extractQuestion(content json.RawMessage) string {
	var out questionOutput
	if err := json.Unmarshal(content, &out); err == nil && out.Question != "" {
		return llm.StripReasoning(out.Question)
	}

	var plain string
	if err := json.Unmarshal(content, &plain); err == nil {
		return llm.StripReasoning(plain)
	}

	return llm.StripReasoning(string(content))
}
