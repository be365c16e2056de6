// Package setup collects the interview parameters before the session
// starts: candidate, role, duration and an optional suggested question.
package setup

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/avinsharma/intervu/internal/config"
	"github.com/avinsharma/intervu/internal/evaluate"
	"github.com/avinsharma/intervu/internal/interview"
	"github.com/avinsharma/intervu/internal/llm"
	"github.com/avinsharma/intervu/internal/question"
	"github.com/avinsharma/intervu/internal/router"
	"github.com/avinsharma/intervu/internal/screen"
	interviewscreen "github.com/avinsharma/intervu/internal/screens/interview"
	"github.com/avinsharma/intervu/internal/store"
	"github.com/avinsharma/intervu/internal/ui/components"
	"github.com/avinsharma/intervu/internal/ui/layout"
	"github.com/avinsharma/intervu/internal/ui/theme"
)

const (
	fieldCandidate = iota
	fieldRole
	fieldDuration
	fieldSuggested
	fieldCount
)

// SetupScreen gathers session parameters.
type SetupScreen struct {
	generator question.Generator
	evaluator *evaluate.Evaluator
	provider  llm.Provider
	st        *store.Store
	cfg       config.Config
	logger    *zap.Logger

	inputs  [fieldCount]components.TextInput
	focused int
	errMsg  string
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)

// New creates a new SetupScreen with injected dependencies.
func New(generator question.Generator, evaluator *evaluate.Evaluator, provider llm.Provider, st *store.Store, cfg config.Config, logger *zap.Logger) *SetupScreen {
	s := &SetupScreen{
		generator: generator,
		evaluator: evaluator,
		provider:  provider,
		st:        st,
		cfg:       cfg,
		logger:    logger,
	}

	s.inputs[fieldCandidate] = components.NewTextInput("Your name", false, 40)
	s.inputs[fieldRole] = components.NewTextInput("e.g., AI Engineer, AGI Researcher", false, 60)
	s.inputs[fieldDuration] = components.NewTextInput(
		fmt.Sprintf("%d-%d", config.MinDurationMinutes, config.MaxDurationMinutes), true, 2)
	s.inputs[fieldSuggested] = components.NewTextInput("Optional: suggest one question", false, 200)

	if cfg.DefaultRole != "" {
		s.inputs[fieldRole].Model.SetValue(cfg.DefaultRole)
	}
	s.inputs[fieldDuration].Model.SetValue(fmt.Sprintf("%d", cfg.DefaultDurationMinutes))

	return s
}

func (s *SetupScreen) Init() tea.Cmd {
	return s.inputs[s.focused].Init()
}

func (s *SetupScreen) Title() string {
	return "New Interview"
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab/↓", Description: "Next field"},
		{Key: "Enter", Description: "Start"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "tab", "down":
			return s, s.focusField((s.focused + 1) % fieldCount)
		case "shift+tab", "up":
			return s, s.focusField((s.focused + fieldCount - 1) % fieldCount)
		case "enter":
			return s.start()
		}
	}

	var cmd tea.Cmd
	s.inputs[s.focused], cmd = s.inputs[s.focused].Update(msg)
	return s, cmd
}

func (s *SetupScreen) focusField(idx int) tea.Cmd {
	s.inputs[s.focused].Model.Blur()
	s.focused = idx
	return s.inputs[s.focused].Model.Focus()
}

// start validates the fields and replaces this screen with the live
// interview.
func (s *SetupScreen) start() (screen.Screen, tea.Cmd) {
	candidate := strings.TrimSpace(s.inputs[fieldCandidate].Value())
	role := strings.TrimSpace(s.inputs[fieldRole].Value())
	suggested := strings.TrimSpace(s.inputs[fieldSuggested].Value())

	if candidate == "" {
		s.errMsg = "Enter your name to start."
		return s, s.focusField(fieldCandidate)
	}
	if role == "" {
		s.errMsg = "Enter the role you are interviewing for."
		return s, s.focusField(fieldRole)
	}

	minutes, err := s.inputs[fieldDuration].NumericValue()
	if err != nil || minutes < config.MinDurationMinutes || minutes > config.MaxDurationMinutes {
		s.errMsg = fmt.Sprintf("Duration must be %d-%d minutes.",
			config.MinDurationMinutes, config.MaxDurationMinutes)
		return s, s.focusField(fieldDuration)
	}

	sess := interview.NewSession(candidate, role, time.Duration(minutes)*time.Minute, suggested)
	s.logger.Info("interview started",
		zap.String("session_id", sess.ID),
		zap.String("role", role),
		zap.Int("duration_minutes", minutes))

	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{
			Screen: interviewscreen.New(sess, s.generator, s.evaluator, s.provider,
				s.st.InterviewRepo(), s.cfg.ReportDir, s.logger),
		}
	}
}

func (s *SetupScreen) View(width, height int) string {
	labels := [fieldCount]string{"Candidate", "Job Role", "Duration (minutes)", "Suggested Question"}

	var b strings.Builder
	for i := 0; i < fieldCount; i++ {
		label := labels[i]
		if i == s.focused {
			b.WriteString(theme.Selected.Render("▸ " + label))
		} else {
			b.WriteString(theme.Body.Render("  " + label))
		}
		b.WriteString("\n  " + s.inputs[i].View() + "\n\n")
	}

	switch {
	case s.errMsg != "":
		b.WriteString(theme.Fail.Render(s.errMsg) + "\n")
	case s.focused == fieldRole && len(s.cfg.RolePresets) > 0:
		b.WriteString(theme.Hint.Render("Presets: "+strings.Join(s.cfg.RolePresets, ", ")) + "\n")
	default:
		b.WriteString(theme.Hint.Render("Three rounds, five questions each. Difficulty adapts to your answers.") + "\n")
	}

	card := theme.Card.Width(min(width-4, 72)).Render(b.String())

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(card)
}
