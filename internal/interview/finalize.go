package interview

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/avinsharma/intervu/internal/llm"
	"github.com/avinsharma/intervu/internal/store"
)

// Result is the finalized outcome of a session.
type Result struct {
	TotalScore int // percentage, 0-100
	Selected   bool
	Summary    string
	Answered   int
}

const summarySystemPrompt = `You are an interviewer wrapping up a mock interview.

Summarize the candidate's performance across three rounds (Easy, Medium, Hard).
If the interview was incomplete (e.g., timed out), note that only submitted answers were evaluated.
Provide a brief, motivational summary (2-3 sentences) of strengths and areas to grow.
If the total score is below 50, add: "No worries, even AGI pioneers have off days! Try again!"
Return only the summary text.`

// fallbackSummary stands in when the provider cannot produce one.
const fallbackSummary = "The interview wrapped up before a summary could be written. Your scores tell the story: review each round's feedback and keep practicing!"

// Finalize computes the total, persists the outcome and asks the
// provider for a closing summary. It never fails: persistence misses
// are logged, summary failures degrade to a canned line.
func Finalize(ctx context.Context, s *Session, provider llm.Provider, repo store.InterviewRepo, logger *zap.Logger) Result {
	if logger == nil {
		logger = zap.NewNop()
	}

	res := Result{Answered: s.Answered()}
	if res.Answered > 0 {
		res.TotalScore = int(float64(s.ScoreSum()) / MaxTotalPoints * 100)
	}
	res.Selected = res.TotalScore >= PassThreshold

	if err := repo.FinalizeResult(ctx, s.Candidate, s.Role, res.TotalScore, res.Selected); err != nil {
		if errors.Is(err, store.ErrNoPendingRow) {
			logger.Warn("no interview row to finalize",
				zap.String("candidate", s.Candidate),
				zap.String("role", s.Role))
		} else {
			logger.Error("finalize result", zap.Error(err))
		}
	}

	res.Summary = generateSummary(ctx, s, provider, res, logger)
	return res
}

func generateSummary(ctx context.Context, s *Session, provider llm.Provider, res Result, logger *zap.Logger) string {
	ctx = llm.WithPurpose(ctx, "summary")

	req := llm.Request{
		System: summarySystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildSummaryContext(s, res)},
		},
		MaxTokens:   500,
		Temperature: 0.5,
	}

	resp, err := provider.Generate(ctx, req)
	if err != nil {
		logger.Warn("summary generation failed", zap.Error(err))
		return fallbackSummary
	}

	text := llm.StripReasoning(extractText(resp.Content))
	if text == "" {
		return fallbackSummary
	}
	return text
}

// extractText unwraps a bare JSON string, otherwise returns the raw
// content.
func extractText(content json.RawMessage) string {
	var plain string
	if err := json.Unmarshal(content, &plain); err == nil {
		return plain
	}
	return string(content)
}

func buildSummaryContext(s *Session, res Result) string {
	var b strings.Builder

	for i := range s.Rounds {
		r := &s.Rounds[i]
		fmt.Fprintf(&b, "Round %d (%s):\n", i+1, r.Difficulty)
		if len(r.Transcript) == 0 {
			b.WriteString("  Not reached.\n")
			continue
		}
		for j, qa := range r.Transcript {
			fmt.Fprintf(&b, "  Q%d: %s\n  A%d: %s\n  Score: %d\n",
				j+1, qa.Question, j+1, qa.Answer, r.Scores[j])
		}
	}

	fmt.Fprintf(&b, "\nJob Role: %s\n", s.Role)
	fmt.Fprintf(&b, "Questions answered: %d of %d\n", res.Answered, NumRounds*QuestionsPerRound)
	fmt.Fprintf(&b, "Total score: %d of 100 (selection threshold %d)\n", res.TotalScore, PassThreshold)
	fmt.Fprintf(&b, "Elapsed: %d seconds of %d allowed\n",
		int(s.Elapsed(time.Now()).Seconds()), int(s.Duration.Seconds()))

	return b.String()
}
