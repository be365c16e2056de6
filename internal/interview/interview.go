// Package interview holds the session state and progression rules for a
// mock interview: three rounds of five questions, difficulty adapting to
// the candidate's last score.
package interview

import (
	"time"

	"github.com/google/uuid"
)

// Difficulty of a round or a single generated question.
type Difficulty string

const (
	Easy   Difficulty = "Easy"
	Medium Difficulty = "Medium"
	Hard   Difficulty = "Hard"
)

// Topic is the subject area of a question slot.
type Topic string

const (
	TopicTechnical      Topic = "technical_skills"
	TopicProblemSolving Topic = "problem_solving"
	TopicBehavioral     Topic = "behavioral"
)

const (
	NumRounds         = 3
	QuestionsPerRound = 5

	// MaxTotalPoints is the denominator for the percentage total:
	// 3 rounds x 5 questions x 10 points.
	MaxTotalPoints = 150

	// PassThreshold is the percentage total at or above which the
	// candidate is marked selected.
	PassThreshold = 60
)

// TopicCycle assigns a topic to each question slot within a round.
var TopicCycle = [QuestionsPerRound]Topic{
	TopicTechnical,
	TopicTechnical,
	TopicProblemSolving,
	TopicBehavioral,
	TopicTechnical,
}

// QA is one question/answer pair in a round transcript.
type QA struct {
	Question string
	Answer   string
}

// Round tracks one difficulty tier of the interview. Difficulty is the
// round's declared tier and never changes; per-question difficulty picks
// derive from it (see NextAction).
type Round struct {
	Difficulty    Difficulty
	Scores        []int
	Transcript    []QA
	QuestionIndex int

	// questions caches generated question text by slot so revisiting a
	// slot never regenerates.
	questions map[int]string
}

// Session is the full state of one interview. One session is active at a
// time; all mutation happens on the TUI goroutine.
type Session struct {
	ID           string
	Candidate    string
	Role         string
	Rounds       [NumRounds]Round
	CurrentRound int
	StartTime    time.Time
	Duration     time.Duration

	// SuggestedQuestion, when non-empty, replaces the generated question
	// once, at round 0 slot 1.
	SuggestedQuestion string
	suggestedUsed     bool
}

// NewSession creates a session starting now.
func NewSession(candidate, role string, duration time.Duration, suggested string) *Session {
	s := &Session{
		ID:                uuid.NewString(),
		Candidate:         candidate,
		Role:              role,
		StartTime:         time.Now(),
		Duration:          duration,
		SuggestedQuestion: suggested,
	}
	for i, d := range [NumRounds]Difficulty{Easy, Medium, Hard} {
		s.Rounds[i] = Round{Difficulty: d, questions: make(map[int]string)}
	}
	return s
}

// QuestionAt returns the cached question for a slot, if one was stored.
func (s *Session) QuestionAt(round, slot int) (string, bool) {
	q, ok := s.Rounds[round].questions[slot]
	return q, ok
}

// SetQuestion stores question text for a slot. The first write wins:
// revisiting a slot keeps the question the candidate already saw.
func (s *Session) SetQuestion(round, slot int, question string) string {
	r := &s.Rounds[round]
	if existing, ok := r.questions[slot]; ok {
		return existing
	}
	r.questions[slot] = question
	return question
}

// UseSuggested returns the suggested question if it applies to this slot
// and has not been used yet, marking it used.
func (s *Session) UseSuggested(round, slot int) (string, bool) {
	if s.suggestedUsed || s.SuggestedQuestion == "" {
		return "", false
	}
	if round != 0 || slot != 1 {
		return "", false
	}
	s.suggestedUsed = true
	return s.SuggestedQuestion, true
}

// RecordAnswer appends the scored answer to the current round, keeping
// scores and transcript in lockstep, and advances the question index.
// At the end of a round the session moves to the next round.
func (s *Session) RecordAnswer(question, answer string, score int) {
	r := &s.Rounds[s.CurrentRound]
	r.Transcript = append(r.Transcript, QA{Question: question, Answer: answer})
	r.Scores = append(r.Scores, score)
	r.QuestionIndex++

	if r.QuestionIndex >= QuestionsPerRound && s.CurrentRound < NumRounds {
		s.CurrentRound++
	}
}

// Answered returns the number of scored answers across all rounds.
func (s *Session) Answered() int {
	n := 0
	for i := range s.Rounds {
		n += len(s.Rounds[i].Scores)
	}
	return n
}

// ScoreSum returns the raw point total across all rounds.
func (s *Session) ScoreSum() int {
	sum := 0
	for i := range s.Rounds {
		for _, sc := range s.Rounds[i].Scores {
			sum += sc
		}
	}
	return sum
}

// Elapsed returns how long the session has been running.
func (s *Session) Elapsed(now time.Time) time.Duration {
	return now.Sub(s.StartTime)
}

// Expired reports whether the session has run past its duration limit.
// The caller checks this before each step; an expired session finalizes
// with the answers submitted so far.
func (s *Session) Expired(now time.Time) bool {
	return s.Elapsed(now) >= s.Duration
}
