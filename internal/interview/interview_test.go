package interview

import (
	"testing"
	"time"
)

func newTestSession() *Session {
	return NewSession("ada", "backend engineer", 30*time.Minute, "")
}

func TestNewSessionShape(t *testing.T) {
	s := newTestSession()

	if s.ID == "" {
		t.Error("expected non-empty session ID")
	}
	want := [NumRounds]Difficulty{Easy, Medium, Hard}
	for i, d := range want {
		if s.Rounds[i].Difficulty != d {
			t.Errorf("round %d difficulty = %s, want %s", i, s.Rounds[i].Difficulty, d)
		}
		if s.Rounds[i].QuestionIndex != 0 {
			t.Errorf("round %d index = %d, want 0", i, s.Rounds[i].QuestionIndex)
		}
	}
	if s.CurrentRound != 0 {
		t.Errorf("current round = %d, want 0", s.CurrentRound)
	}
}

func TestRecordAnswerKeepsScoresAndTranscriptInLockstep(t *testing.T) {
	s := newTestSession()

	s.RecordAnswer("q1", "a1", 7)
	s.RecordAnswer("q2", "a2", 4)

	r := s.Rounds[0]
	if len(r.Scores) != 2 || len(r.Transcript) != 2 {
		t.Fatalf("scores = %d, transcript = %d, want 2 and 2", len(r.Scores), len(r.Transcript))
	}
	if r.Transcript[1].Question != "q2" || r.Scores[1] != 4 {
		t.Errorf("second entry = %+v score %d", r.Transcript[1], r.Scores[1])
	}
	if r.QuestionIndex != 2 {
		t.Errorf("question index = %d, want 2", r.QuestionIndex)
	}
}

func TestFullProgressionCounts(t *testing.T) {
	s := newTestSession()

	asked := 0
	for {
		action := s.NextAction()
		if action.Done {
			break
		}
		asked++
		if asked > NumRounds*QuestionsPerRound {
			t.Fatalf("asked %d questions, runaway progression", asked)
		}
		if action.Topic != TopicCycle[action.Slot] {
			t.Errorf("slot %d topic = %s, want %s", action.Slot, action.Topic, TopicCycle[action.Slot])
		}
		s.RecordAnswer("q", "a", 6)
	}

	if asked != NumRounds*QuestionsPerRound {
		t.Errorf("asked = %d, want %d", asked, NumRounds*QuestionsPerRound)
	}
	if !s.Completed() {
		t.Error("expected completed session")
	}
	if s.Answered() != 15 {
		t.Errorf("answered = %d, want 15", s.Answered())
	}
}

func TestRoundAdvanceResetsToDeclaredDifficulty(t *testing.T) {
	s := newTestSession()

	// Finish round 0 with strong scores.
	for i := 0; i < QuestionsPerRound; i++ {
		s.RecordAnswer("q", "a", 9)
	}

	action := s.NextAction()
	if action.Round != 1 || action.Slot != 0 {
		t.Fatalf("action = %+v, want round 1 slot 0", action)
	}
	if action.Difficulty != Medium {
		t.Errorf("difficulty = %s, want declared Medium", action.Difficulty)
	}
	if action.Topic != TopicCycle[0] {
		t.Errorf("topic = %s, want %s", action.Topic, TopicCycle[0])
	}
}

func TestNextDifficultyPureFunction(t *testing.T) {
	tests := []struct {
		lastScore int
		declared  Difficulty
		want      Difficulty
	}{
		{4, Medium, Easy},
		{4, Hard, Easy},
		{4, Easy, Easy},
		{8, Easy, Hard},
		{9, Medium, Hard},
		{8, Hard, Hard},
		{5, Medium, Medium},
		{7, Hard, Hard},
		{6, Easy, Easy},
	}
	for _, tt := range tests {
		got := NextDifficulty(tt.lastScore, tt.declared)
		if got != tt.want {
			t.Errorf("NextDifficulty(%d, %s) = %s, want %s",
				tt.lastScore, tt.declared, got, tt.want)
		}
	}
}

func TestNextActionAdaptsWithinRound(t *testing.T) {
	s := newTestSession()
	s.CurrentRound = 1 // Medium round

	s.Rounds[1].Scores = []int{3}
	s.Rounds[1].Transcript = []QA{{"q", "a"}}
	s.Rounds[1].QuestionIndex = 1

	action := s.NextAction()
	if action.Difficulty != Easy {
		t.Errorf("difficulty after weak answer = %s, want Easy", action.Difficulty)
	}

	s.Rounds[1].Scores = []int{9}
	action = s.NextAction()
	if action.Difficulty != Hard {
		t.Errorf("difficulty after strong answer = %s, want Hard", action.Difficulty)
	}
}

func TestQuestionCacheFirstWriteWins(t *testing.T) {
	s := newTestSession()

	got := s.SetQuestion(0, 2, "first")
	if got != "first" {
		t.Errorf("set returned %q, want first", got)
	}
	got = s.SetQuestion(0, 2, "second")
	if got != "first" {
		t.Errorf("second set returned %q, want cached first", got)
	}

	q, ok := s.QuestionAt(0, 2)
	if !ok || q != "first" {
		t.Errorf("QuestionAt = %q/%t, want first/true", q, ok)
	}

	if _, ok := s.QuestionAt(0, 3); ok {
		t.Error("expected miss for unset slot")
	}
}

func TestSuggestedQuestionUsedOnce(t *testing.T) {
	s := NewSession("ada", "backend engineer", 30*time.Minute, "Ask about AGI ethics")

	if _, ok := s.UseSuggested(0, 0); ok {
		t.Error("suggested question must not apply to slot 0")
	}

	q, ok := s.UseSuggested(0, 1)
	if !ok || q != "Ask about AGI ethics" {
		t.Fatalf("UseSuggested = %q/%t", q, ok)
	}

	if _, ok := s.UseSuggested(0, 1); ok {
		t.Error("suggested question must only be used once")
	}
}

func TestSuggestedQuestionEmptyNeverApplies(t *testing.T) {
	s := newTestSession()
	if _, ok := s.UseSuggested(0, 1); ok {
		t.Error("empty suggestion must not apply")
	}
}

func TestExpired(t *testing.T) {
	s := newTestSession()
	s.StartTime = time.Now().Add(-31 * time.Minute)

	if !s.Expired(time.Now()) {
		t.Error("expected expired session")
	}

	s.StartTime = time.Now().Add(-5 * time.Minute)
	if s.Expired(time.Now()) {
		t.Error("expected live session")
	}
}
