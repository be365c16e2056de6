package interview

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/avinsharma/intervu/internal/evaluate"
	"github.com/avinsharma/intervu/internal/interview"
	"github.com/avinsharma/intervu/internal/llm"
	"github.com/avinsharma/intervu/internal/question"
	"github.com/avinsharma/intervu/internal/screen"
	"github.com/avinsharma/intervu/internal/store"
)

// stubGenerator implements question.Generator for testing.
type stubGenerator struct {
	question string
	err      error
	calls    int
}

func (g *stubGenerator) Generate(_ context.Context, _ question.Input) (string, error) {
	g.calls++
	if g.err != nil {
		return "", g.err
	}
	return g.question, nil
}

// stubRepo implements store.InterviewRepo for testing.
type stubRepo struct {
	answers   []store.AnswerRecord
	finalized bool
}

func (r *stubRepo) AppendAnswer(_ context.Context, rec store.AnswerRecord) error {
	r.answers = append(r.answers, rec)
	return nil
}
func (r *stubRepo) FinalizeResult(_ context.Context, _, _ string, _ int, _ bool) error {
	r.finalized = true
	return nil
}
func (r *stubRepo) TopScores(_ context.Context, _ string, _ int) ([]store.LeaderboardEntry, error) {
	return nil, nil
}
func (r *stubRepo) History(_ context.Context, _, _ string) ([]store.HistoryEntry, error) {
	return nil, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testScreen(gen *stubGenerator) (*Screen, *stubRepo) {
	repo := &stubRepo{}
	mock := llm.NewMockProvider()
	sess := interview.NewSession("ada", "AI Engineer", 30*time.Minute, "")
	s := New(sess, gen, evaluate.New(mock), mock, repo, "", nil)
	return s, repo
}

func answering(s *Screen) *Screen {
	action := s.session.NextAction()
	next, _ := s.Update(questionReadyMsg{Action: action, Question: "Tell me about Go."})
	return next.(*Screen)
}

func TestTitle(t *testing.T) {
	s, _ := testScreen(&stubGenerator{question: "q"})
	if s.Title() != "Interview" {
		t.Errorf("Title = %q, want Interview", s.Title())
	}
}

func TestQuestionReadyEntersAnswering(t *testing.T) {
	s, _ := testScreen(&stubGenerator{question: "q"})
	s = answering(s)

	if s.phase != phaseAnswering {
		t.Errorf("phase = %d, want answering", s.phase)
	}
	if s.currentQ != "Tell me about Go." {
		t.Errorf("currentQ = %q", s.currentQ)
	}
	if got, ok := s.session.QuestionAt(0, 0); !ok || got != "Tell me about Go." {
		t.Error("expected the question to be cached on the session")
	}
}

func TestSubmitRejectsBlankAnswer(t *testing.T) {
	s, _ := testScreen(&stubGenerator{question: "q"})
	s = answering(s)

	s.answer.Model.SetValue("   \n\t")
	s.onConfidence = true

	next, cmd := s.Update(specialKey(tea.KeyEnter))
	s = next.(*Screen)
	if s.phase != phaseAnswering {
		t.Errorf("phase = %d, want answering for a whitespace-only answer", s.phase)
	}
	if cmd != nil {
		t.Error("expected no scoring command for a whitespace-only answer")
	}

	s.answer.Model.SetValue("  Go compiles to native code.  ")
	next, cmd = s.Update(specialKey(tea.KeyEnter))
	s = next.(*Screen)
	if s.phase != phaseScoring {
		t.Errorf("phase = %d, want scoring once the answer has content", s.phase)
	}
	if cmd == nil {
		t.Error("expected a scoring command once the answer has content")
	}
}

func TestViewRendersInEveryPhase(t *testing.T) {
	s, _ := testScreen(&stubGenerator{question: "q"})

	for _, p := range []phase{phaseGenerating, phaseScoring, phaseFeedback, phaseFinalizing} {
		s.phase = p
		if s.View(80, 24) == "" {
			t.Errorf("empty view in phase %d", p)
		}
	}
	s.phase = phaseAnswering
	s.quitConfirm = true
	if s.View(80, 24) == "" {
		t.Error("empty view for quit confirmation")
	}
}

func TestQuitConfirmFlow(t *testing.T) {
	s, _ := testScreen(&stubGenerator{question: "q"})
	s = answering(s)

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	s = scr.(*Screen)
	if !s.quitConfirm {
		t.Fatal("expected quit confirmation after Esc")
	}

	scr, _ = s.Update(keyPress('n'))
	s = scr.(*Screen)
	if s.quitConfirm {
		t.Error("expected N to dismiss the confirmation")
	}

	scr, _ = s.Update(specialKey(tea.KeyEscape))
	s = scr.(*Screen)
	_, cmd := s.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected a command after confirming quit")
	}
	if _, ok := cmd().(finishMsg); !ok {
		t.Error("expected Y to finish the interview")
	}
}

func TestQuitConfirmButtonChoice(t *testing.T) {
	s, _ := testScreen(&stubGenerator{question: "q"})
	s = answering(s)

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	s = scr.(*Screen)
	if s.quitChoice != quitChoiceKeep {
		t.Fatal("expected Keep Going to be the default choice")
	}

	scr, _ = s.Update(specialKey(tea.KeyRight))
	s = scr.(*Screen)
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command after Enter on End Interview")
	}
	if _, ok := cmd().(finishMsg); !ok {
		t.Error("expected End Interview to finish")
	}
}

func TestAnswerScoredRecordsAndPersists(t *testing.T) {
	s, repo := testScreen(&stubGenerator{question: "q"})
	s = answering(s)

	next, cmd := s.Update(answerScoredMsg{
		Question:   s.currentQ,
		Answer:     "Go is a compiled language.",
		Evaluation: evaluate.Evaluation{Score: 7, Explanation: "Solid."},
	})
	s = next.(*Screen)

	if s.phase != phaseFeedback {
		t.Errorf("phase = %d, want feedback", s.phase)
	}
	if s.session.Answered() != 1 {
		t.Errorf("answered = %d, want 1", s.session.Answered())
	}
	if cmd == nil {
		t.Fatal("expected a persistence command")
	}
	cmd()
	if len(repo.answers) != 1 {
		t.Fatalf("persisted answers = %d, want 1", len(repo.answers))
	}
	if repo.answers[0].QuestionScore != 7 {
		t.Errorf("persisted score = %d, want 7", repo.answers[0].QuestionScore)
	}
}

func TestFeedbackDismissMovesOn(t *testing.T) {
	s, _ := testScreen(&stubGenerator{question: "next question"})
	s = answering(s)

	next, _ := s.Update(answerScoredMsg{
		Question:   s.currentQ,
		Answer:     "answer",
		Evaluation: evaluate.Evaluation{Score: 5, Explanation: "ok"},
	})
	s = next.(*Screen)

	scr, cmd := s.Update(keyPress(' '))
	s = scr.(*Screen)
	if cmd == nil {
		t.Fatal("expected a command after dismissing feedback")
	}
	if _, ok := cmd().(feedbackDoneMsg); !ok {
		t.Error("expected feedbackDoneMsg")
	}

	scr, cmd = s.Update(feedbackDoneMsg{})
	s = scr.(*Screen)
	if s.phase != phaseGenerating {
		t.Errorf("phase = %d, want generating", s.phase)
	}
	if cmd == nil {
		t.Fatal("expected the next-question command")
	}
}

func TestGenerationFailureFallsBack(t *testing.T) {
	gen := &stubGenerator{err: &llm.ErrProviderUnavailable{}}
	s, _ := testScreen(gen)

	cmd := s.nextQuestion()
	msg, ok := cmd().(questionReadyMsg)
	if !ok {
		t.Fatal("expected questionReadyMsg despite generation failure")
	}
	if msg.Question == "" {
		t.Error("expected a fallback question")
	}
	if gen.calls != 1 {
		t.Errorf("generator calls = %d, want 1", gen.calls)
	}
}

func TestExpiryDuringFeedbackFinishes(t *testing.T) {
	s, _ := testScreen(&stubGenerator{question: "q"})
	s.session.StartTime = time.Now().Add(-time.Hour)
	s.phase = phaseFeedback

	next, cmd := s.Update(timerTickMsg(time.Now()))
	s = next.(*Screen)
	if !s.timeExpired {
		t.Error("expected the expiry flag to be set")
	}
	if cmd == nil {
		t.Fatal("expected a command on expiry during feedback")
	}
	if _, ok := cmd().(finishMsg); !ok {
		t.Error("expected finishMsg when time runs out during feedback")
	}
}

func TestExpiryWhileAnsweringLetsCandidateFinish(t *testing.T) {
	s, _ := testScreen(&stubGenerator{question: "q"})
	s = answering(s)
	s.session.StartTime = time.Now().Add(-time.Hour)

	next, cmd := s.Update(timerTickMsg(time.Now()))
	s = next.(*Screen)
	if !s.timeExpired {
		t.Error("expected the expiry flag to be set")
	}
	if s.phase != phaseAnswering {
		t.Error("expected the candidate to keep the current question")
	}
	if cmd == nil {
		t.Fatal("expected the tick to continue")
	}

	// Dismissed feedback after expiry ends the session.
	s.phase = phaseFeedback
	_, cmd = s.Update(feedbackDoneMsg{})
	if _, ok := cmd().(finishMsg); !ok {
		t.Error("expected finishMsg after feedback once expired")
	}
}

func TestFinishFinalizesOnce(t *testing.T) {
	s, repo := testScreen(&stubGenerator{question: "q"})

	next, cmd := s.Update(finishMsg{})
	s = next.(*Screen)
	if s.phase != phaseFinalizing {
		t.Errorf("phase = %d, want finalizing", s.phase)
	}
	if cmd == nil {
		t.Fatal("expected a finalize command")
	}

	// A second finishMsg while finalizing is ignored.
	_, cmd2 := s.Update(finishMsg{})
	if cmd2 != nil {
		t.Error("expected duplicate finish to be a no-op")
	}

	msg, ok := cmd().(finalizedMsg)
	if !ok {
		t.Fatal("expected finalizedMsg")
	}
	if msg.Result.TotalScore != 0 {
		t.Errorf("total = %d, want 0 for no answers", msg.Result.TotalScore)
	}
	_ = repo
}
