// Package interview is the live interview screen: question display,
// answer entry, confidence pick, feedback overlay and the countdown.
package interview

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/avinsharma/intervu/internal/evaluate"
	"github.com/avinsharma/intervu/internal/interview"
	"github.com/avinsharma/intervu/internal/llm"
	"github.com/avinsharma/intervu/internal/question"
	"github.com/avinsharma/intervu/internal/router"
	"github.com/avinsharma/intervu/internal/screen"
	"github.com/avinsharma/intervu/internal/screens/summary"
	"github.com/avinsharma/intervu/internal/store"
	"github.com/avinsharma/intervu/internal/ui/components"
	"github.com/avinsharma/intervu/internal/ui/layout"
)

type phase int

const (
	phaseGenerating phase = iota
	phaseAnswering
	phaseScoring
	phaseFeedback
	phaseFinalizing
)

// Quit confirmation choices.
const (
	quitChoiceKeep = iota
	quitChoiceEnd
)

// Screen runs one interview session.
type Screen struct {
	session   *interview.Session
	generator question.Generator
	evaluator *evaluate.Evaluator
	provider  llm.Provider
	repo      store.InterviewRepo
	reportDir string
	logger    *zap.Logger

	phase         phase
	action        interview.Action
	currentQ      string
	answer        components.AnswerBox
	confidence    components.ConfidenceSelector
	onConfidence  bool
	feedback      evaluate.Evaluation
	elapsed       time.Duration
	questionStart time.Time
	timeExpired   bool
	quitConfirm   bool
	quitChoice    int
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)
var _ screen.StatusProvider = (*Screen)(nil)
var _ screen.EscHandler = (*Screen)(nil)

// New creates the interview screen for a fresh session.
func New(sess *interview.Session, generator question.Generator, evaluator *evaluate.Evaluator, provider llm.Provider, repo store.InterviewRepo, reportDir string, logger *zap.Logger) *Screen {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Screen{
		session:    sess,
		generator:  generator,
		evaluator:  evaluator,
		provider:   provider,
		repo:       repo,
		reportDir:  reportDir,
		logger:     logger,
		answer:     components.NewAnswerBox(70, 8),
		confidence: components.NewConfidenceSelector(),
	}
}

func (s *Screen) Init() tea.Cmd {
	return tea.Batch(s.nextQuestion(), tickCmd())
}

func (s *Screen) Title() string {
	return "Interview"
}

// HeaderStatus shows the remaining time in the header.
func (s *Screen) HeaderStatus() string {
	remaining := s.session.Duration - s.elapsed
	if remaining < 0 {
		remaining = 0
	}
	remaining = remaining.Round(time.Second)
	m := int(remaining.Minutes())
	sec := int(remaining.Seconds()) % 60
	return "⏱ " + formatClock(m, sec)
}

// HandlesEsc keeps Esc inside the screen so leaving an interview
// always goes through the quit confirmation.
func (s *Screen) HandlesEsc() bool {
	return true
}

func (s *Screen) KeyHints() []layout.KeyHint {
	switch {
	case s.quitConfirm:
		return []layout.KeyHint{
			{Key: "←→", Description: "Choose"},
			{Key: "Enter", Description: "Confirm"},
			{Key: "Y/N", Description: "Shortcut"},
		}
	case s.phase == phaseFeedback:
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	case s.phase == phaseAnswering && s.onConfidence:
		return []layout.KeyHint{
			{Key: "←→", Description: "Confidence"},
			{Key: "Enter", Description: "Submit"},
			{Key: "Tab", Description: "Edit answer"},
		}
	case s.phase == phaseAnswering:
		return []layout.KeyHint{
			{Key: "Tab", Description: "Confidence"},
			{Key: "Esc", Description: "Quit"},
		}
	default:
		return nil
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionReadyMsg:
		return s.handleQuestionReady(msg)

	case answerScoredMsg:
		return s.handleAnswerScored(msg)

	case timerTickMsg:
		return s.handleTimerTick()

	case feedbackDoneMsg:
		return s.handleFeedbackDone()

	case finishMsg:
		return s.handleFinish()

	case finalizedMsg:
		sess := s.session
		res := msg.Result
		reportDir := s.reportDir
		repo := s.repo
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{
				Screen: summary.New(sess, res, repo, reportDir),
			}
		}

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.phase == phaseAnswering && !s.onConfidence {
		var cmd tea.Cmd
		s.answer, cmd = s.answer.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *Screen) handleQuestionReady(msg questionReadyMsg) (screen.Screen, tea.Cmd) {
	s.action = msg.Action
	s.currentQ = s.session.SetQuestion(msg.Action.Round, msg.Action.Slot, msg.Question)
	s.phase = phaseAnswering
	s.questionStart = time.Now()
	s.onConfidence = false
	s.answer.Reset()
	s.confidence = components.NewConfidenceSelector()
	return s, s.answer.Focus()
}

func (s *Screen) handleAnswerScored(msg answerScoredMsg) (screen.Screen, tea.Cmd) {
	s.session.RecordAnswer(msg.Question, msg.Answer, msg.Evaluation.Score)
	s.feedback = msg.Evaluation
	s.phase = phaseFeedback

	// Persist in the background; a store failure never blocks the flow.
	repo := s.repo
	logger := s.logger
	rec := store.AnswerRecord{
		Candidate:     s.session.Candidate,
		Role:          s.session.Role,
		Question:      msg.Question,
		Answer:        msg.Answer,
		QuestionScore: msg.Evaluation.Score,
	}
	return s, func() tea.Msg {
		if err := repo.AppendAnswer(context.Background(), rec); err != nil {
			logger.Error("append answer", zap.Error(err))
		}
		return nil
	}
}

func (s *Screen) handleTimerTick() (screen.Screen, tea.Cmd) {
	if s.phase == phaseFinalizing {
		return s, nil
	}

	s.elapsed = time.Since(s.session.StartTime)

	if s.session.Expired(time.Now()) {
		s.timeExpired = true
		// Let the candidate finish the question on screen; end as soon
		// as nothing is in flight.
		if s.phase == phaseFeedback || s.phase == phaseGenerating {
			return s, func() tea.Msg { return finishMsg{} }
		}
	}

	return s, tickCmd()
}

func (s *Screen) handleFeedbackDone() (screen.Screen, tea.Cmd) {
	if s.timeExpired {
		return s, func() tea.Msg { return finishMsg{} }
	}
	s.phase = phaseGenerating
	return s, s.nextQuestion()
}

func (s *Screen) handleFinish() (screen.Screen, tea.Cmd) {
	if s.phase == phaseFinalizing {
		return s, nil
	}
	s.phase = phaseFinalizing

	sess := s.session
	provider := s.provider
	repo := s.repo
	logger := s.logger
	return s, func() tea.Msg {
		res := interview.Finalize(context.Background(), sess, provider, repo, logger)
		return finalizedMsg{Result: res}
	}
}

func (s *Screen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.quitConfirm {
		switch key {
		case "y", "Y":
			s.quitConfirm = false
			return s, func() tea.Msg { return finishMsg{} }
		case "n", "N", "esc":
			s.quitConfirm = false
			return s, nil
		case "left", "right", "tab":
			s.quitChoice = 1 - s.quitChoice
			return s, nil
		case "enter":
			s.quitConfirm = false
			if s.quitChoice == quitChoiceEnd {
				return s, func() tea.Msg { return finishMsg{} }
			}
			return s, nil
		}
		return s, nil
	}

	if s.phase == phaseFeedback {
		return s, func() tea.Msg { return feedbackDoneMsg{} }
	}

	if s.phase != phaseAnswering {
		return s, nil
	}

	switch key {
	case "esc":
		s.quitConfirm = true
		s.quitChoice = quitChoiceKeep
		return s, nil
	case "tab":
		s.onConfidence = !s.onConfidence
		if s.onConfidence {
			s.answer.Blur()
			return s, nil
		}
		return s, s.answer.Focus()
	}

	if s.onConfidence {
		if key == "enter" {
			return s.submit()
		}
		var cmd tea.Cmd
		s.confidence, cmd = s.confidence.Update(msg)
		return s, cmd
	}

	var cmd tea.Cmd
	s.answer, cmd = s.answer.Update(msg)
	return s, cmd
}

// submit sends the answer off for scoring. Blank answers stay on screen.
func (s *Screen) submit() (screen.Screen, tea.Cmd) {
	answer := s.answer.Value()
	if strings.TrimSpace(answer) == "" {
		return s, nil
	}

	s.phase = phaseScoring

	evaluator := s.evaluator
	in := evaluate.Input{
		Role:       s.session.Role,
		Difficulty: s.session.Rounds[s.action.Round].Difficulty,
		Question:   s.currentQ,
		Answer:     answer,
		Confidence: s.confidence.Value,
	}
	q := s.currentQ
	return s, func() tea.Msg {
		ev := evaluator.Evaluate(context.Background(), in)
		return answerScoredMsg{Question: q, Answer: answer, Evaluation: ev}
	}
}

// nextQuestion resolves the next question: done, cached, suggested, or
// freshly generated. Generation failures degrade to a canned question.
func (s *Screen) nextQuestion() tea.Cmd {
	action := s.session.NextAction()
	if action.Done {
		return func() tea.Msg { return finishMsg{} }
	}

	if q, ok := s.session.QuestionAt(action.Round, action.Slot); ok {
		return func() tea.Msg {
			return questionReadyMsg{Action: action, Question: q}
		}
	}

	if q, ok := s.session.UseSuggested(action.Round, action.Slot); ok {
		return func() tea.Msg {
			return questionReadyMsg{Action: action, Question: q}
		}
	}

	generator := s.generator
	logger := s.logger
	role := s.session.Role
	return func() tea.Msg {
		input := question.Input{
			Role:       role,
			Topic:      action.Topic,
			Difficulty: action.Difficulty,
			Slot:       action.Slot,
		}
		q, err := generator.Generate(context.Background(), input)
		if err != nil {
			logger.Warn("question generation failed, using fallback",
				zap.Int("round", action.Round),
				zap.Int("slot", action.Slot),
				zap.Error(err))
			q = question.Fallback(input)
		}
		return questionReadyMsg{Action: action, Question: q}
	}
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
