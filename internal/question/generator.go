// Package question generates interview questions through the LLM
// provider, one per (round, slot).
package question

import (
	"context"
	"strings"

	"github.com/avinsharma/intervu/internal/interview"
)

// Input describes the question to generate.
type Input struct {
	Role       string
	Topic      interview.Topic
	Difficulty interview.Difficulty
	Slot       int
}

// Generator produces interview questions.
type Generator interface {
	// Generate produces a single question for the given input. It is
	// side-effect-free; callers cache results in the session state.
	Generate(ctx context.Context, input Input) (string, error)
}

// ResearchRole is the role name that triggers alignment-focused
// behavior: extra prompt guidance at Hard difficulty, the scripted
// question, and evaluation bonuses.
const ResearchRole = "agi researcher"

// ScriptedQuestion is asked in place of a generated one when a research
// candidate reaches the last Hard slot and the dice say so.
const ScriptedQuestion = "How would you design an AGI to ensure safe alignment with human values?"

// ScriptedPrefix identifies the scripted question in stored transcripts.
const ScriptedPrefix = "How would you design an AGI to ensure"

// scriptedSlot is the only slot eligible for the scripted question.
const scriptedSlot = QuestionsPerRound - 1

const QuestionsPerRound = interview.QuestionsPerRound

// IsResearchRole reports whether role names the alignment research role.
func IsResearchRole(role string) bool {
	return strings.EqualFold(strings.TrimSpace(role), ResearchRole)
}

// Fallback returns a canned question used when generation fails. The
// session continues; the failure is not surfaced to the candidate.
func Fallback(input Input) string {
	switch input.Topic {
	case interview.TopicProblemSolving:
		return "Walk me through how you would debug a system that works in testing but fails intermittently in production."
	case interview.TopicBehavioral:
		return "Tell me about a time you received difficult feedback. How did you respond?"
	default:
		return "Describe a technical concept from your field that you know deeply, and explain it as you would to a new team member."
	}
}
