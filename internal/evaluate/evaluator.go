// Package evaluate scores candidate answers. Evaluation is fail-soft:
// whatever goes wrong with the provider or its output, the candidate
// gets a score and an encouraging line, never an error.
package evaluate

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/avinsharma/intervu/internal/interview"
	"github.com/avinsharma/intervu/internal/llm"
	"github.com/avinsharma/intervu/internal/question"
)

// FallbackExplanation is shown when scoring fails entirely.
const FallbackExplanation = "Oops, something went wrong, but keep shining!"

// Input describes one answer to score.
type Input struct {
	Role       string
	Difficulty interview.Difficulty
	Question   string
	Answer     string
	Confidence int // 1-10 self-assessment
}

// Evaluation is the scored result for one answer.
type Evaluation struct {
	Score       int // clamped to [0, 10]
	Explanation string
}

// Evaluator scores answers using the LLM provider.
type Evaluator struct {
	provider llm.Provider
}

// New creates an Evaluator backed by the given provider.
func New(provider llm.Provider) *Evaluator {
	return &Evaluator{provider: provider}
}

// evalOutput is the raw LLM response before adjustment.
type evalOutput struct {
	Score       int    `json:"score"`
	Explanation string `json:"explanation"`
}

// Evaluate scores an answer. It never returns an error: provider or
// parse failures degrade to score 0 with the fallback explanation.
func (e *Evaluator) Evaluate(ctx context.Context, in Input) Evaluation {
	ctx = llm.WithPurpose(ctx, "answer_evaluation")

	req := llm.Request{
		System: systemPrompt(in.Role),
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(in)},
		},
		Schema:      EvaluationSchema,
		MaxTokens:   400,
		Temperature: 0.3,
	}

	resp, err := e.provider.Generate(ctx, req)
	if err != nil {
		return Evaluation{Score: 0, Explanation: FallbackExplanation}
	}

	ev, ok := extractEvaluation(resp.Content)
	if !ok {
		return Evaluation{Score: 0, Explanation: FallbackExplanation}
	}

	ev.Score = adjustScore(ev.Score, in)
	return ev
}

// extractEvaluation parses the response content. Structured output is
// the contract; `Score: X, Explanation: ...` text is accepted as
// fallback for providers without structured output.
func extractEvaluation(content json.RawMessage) (Evaluation, bool) {
	var out evalOutput
	if err := json.Unmarshal(content, &out); err == nil && out.Explanation != "" {
		return Evaluation{
			Score:       clamp(out.Score),
			Explanation: llm.StripReasoning(out.Explanation),
		}, true
	}

	text := llm.StripReasoning(string(content))
	score, explanation, err := parseTextual(text)
	if err != nil {
		return Evaluation{}, false
	}
	return Evaluation{Score: clamp(score), Explanation: explanation}, true
}

// adjustScore applies the bonus rules in order, clamping after each:
// research-role answers touching AGI or ethics get +2, the scripted
// alignment question gets +5, high confidence gets +1.
func adjustScore(score int, in Input) int {
	if question.IsResearchRole(in.Role) {
		lower := strings.ToLower(in.Answer)
		if strings.Contains(lower, "agi") || strings.Contains(lower, "ethics") {
			score = clamp(score + 2)
		}
		if strings.HasPrefix(in.Question, question.ScriptedPrefix) {
			score = clamp(score + 5)
		}
	}
	if in.Confidence >= 8 {
		score = clamp(score + 1)
	}
	return score
}

func clamp(score int) int {
	if score < 0 {
		return 0
	}
	if score > 10 {
		return 10
	}
	return score
}

func systemPrompt(role string) string {
	base := `You are an interviewer scoring a candidate's answer.

Evaluate for:
- Accuracy
- Relevance
- Clarity`
	if question.IsResearchRole(role) {
		base += "\n- Ethics (for this role, weigh ethical considerations like safety and bias)"
	}
	base += `

Assign a score from 0-10 and provide a brief, encouraging explanation (1-2 sentences).`
	return base
}

func buildUserMessage(in Input) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Job Role: %s\n", in.Role)
	fmt.Fprintf(&b, "Difficulty: %s\n", in.Difficulty)
	fmt.Fprintf(&b, "Question: %s\n", in.Question)
	fmt.Fprintf(&b, "Response: %s", in.Answer)
	return b.String()
}
