// Package leaderboard shows the top scores for a role and, when a
// candidate name is given, that candidate's past attempts.
package leaderboard

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/avinsharma/intervu/internal/screen"
	"github.com/avinsharma/intervu/internal/store"
	"github.com/avinsharma/intervu/internal/ui/components"
	"github.com/avinsharma/intervu/internal/ui/layout"
	"github.com/avinsharma/intervu/internal/ui/theme"
)

// TopLimit caps the number of leaderboard rows shown.
const TopLimit = 5

const (
	fieldRole = iota
	fieldCandidate
	fieldCount
)

type loadedMsg struct {
	top     []store.LeaderboardEntry
	history []store.HistoryEntry
	err     error
}

// LeaderboardScreen lists top scores and per-candidate history.
type LeaderboardScreen struct {
	repo store.InterviewRepo

	inputs  [fieldCount]components.TextInput
	focused int

	top     []store.LeaderboardEntry
	history []store.HistoryEntry
	loadErr error
	loading bool
}

var _ screen.Screen = (*LeaderboardScreen)(nil)
var _ screen.KeyHintProvider = (*LeaderboardScreen)(nil)

// New creates the leaderboard screen. Role and candidate prefill the
// filters; a non-empty role triggers an immediate load.
func New(repo store.InterviewRepo, role, candidate string) *LeaderboardScreen {
	s := &LeaderboardScreen{repo: repo}

	s.inputs[fieldRole] = components.NewTextInput("Role to rank", false, 60)
	s.inputs[fieldCandidate] = components.NewTextInput("Optional: your name for history", false, 40)

	if role != "" {
		s.inputs[fieldRole].Model.SetValue(role)
	}
	if candidate != "" {
		s.inputs[fieldCandidate].Model.SetValue(candidate)
	}

	return s
}

func (s *LeaderboardScreen) Init() tea.Cmd {
	cmds := []tea.Cmd{s.inputs[s.focused].Model.Focus()}
	if s.inputs[fieldRole].Value() != "" {
		cmds = append(cmds, s.load())
	}
	return tea.Batch(cmds...)
}

func (s *LeaderboardScreen) Title() string {
	return "Leaderboard"
}

func (s *LeaderboardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Switch field"},
		{Key: "Enter", Description: "Refresh"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *LeaderboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		s.loading = false
		s.top = msg.top
		s.history = msg.history
		s.loadErr = msg.err
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "down":
			return s, s.focusField((s.focused + 1) % fieldCount)
		case "shift+tab", "up":
			return s, s.focusField((s.focused + fieldCount - 1) % fieldCount)
		case "enter":
			return s, s.load()
		}
	}

	var cmd tea.Cmd
	s.inputs[s.focused], cmd = s.inputs[s.focused].Update(msg)
	return s, cmd
}

func (s *LeaderboardScreen) focusField(idx int) tea.Cmd {
	s.inputs[s.focused].Model.Blur()
	s.focused = idx
	return s.inputs[s.focused].Model.Focus()
}

// load fetches the top scores and, when a candidate is set, their
// history for the role.
func (s *LeaderboardScreen) load() tea.Cmd {
	role := strings.TrimSpace(s.inputs[fieldRole].Value())
	candidate := strings.TrimSpace(s.inputs[fieldCandidate].Value())
	if role == "" {
		return nil
	}

	s.loading = true
	repo := s.repo
	return func() tea.Msg {
		ctx := context.Background()
		top, err := repo.TopScores(ctx, role, TopLimit)
		if err != nil {
			return loadedMsg{err: err}
		}
		var history []store.HistoryEntry
		if candidate != "" {
			history, err = repo.History(ctx, candidate, role)
			if err != nil {
				return loadedMsg{top: top, err: err}
			}
		}
		return loadedMsg{top: top, history: history}
	}
}

func (s *LeaderboardScreen) View(width, height int) string {
	cw := min(width-6, 72)

	var b strings.Builder

	labels := [fieldCount]string{"Role", "Candidate"}
	for i := 0; i < fieldCount; i++ {
		label := labels[i]
		if i == s.focused {
			b.WriteString(theme.Selected.Render("▸ " + label))
		} else {
			b.WriteString(theme.Body.Render("  " + label))
		}
		b.WriteString("\n  " + s.inputs[i].View() + "\n")
	}
	b.WriteString("\n")

	switch {
	case s.loading:
		b.WriteString(theme.Hint.Render("Loading...") + "\n")
	case s.loadErr != nil:
		b.WriteString(theme.Fail.Render("Could not load scores: "+s.loadErr.Error()) + "\n")
	default:
		b.WriteString(s.renderTop())
		if len(s.history) > 0 {
			b.WriteString("\n" + s.renderHistory())
		}
	}

	card := theme.Card.Width(cw).Render(b.String())

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(card)
}

func (s *LeaderboardScreen) renderTop() string {
	var b strings.Builder
	b.WriteString(theme.Body.Bold(true).Render("Top Scores") + "\n")
	if len(s.top) == 0 {
		b.WriteString(theme.Hint.Render("No finished interviews for this role yet.") + "\n")
		return b.String()
	}
	for i, e := range s.top {
		style := theme.Body
		if i == 0 {
			style = theme.Pass
		}
		b.WriteString(style.Render(fmt.Sprintf("  %d. %-24s %3d/100", i+1, e.Candidate, e.TotalScore)) + "\n")
	}
	return b.String()
}

func (s *LeaderboardScreen) renderHistory() string {
	var b strings.Builder
	b.WriteString(theme.Body.Bold(true).Render("Your Attempts") + "\n")
	for _, e := range s.history {
		b.WriteString(theme.Body.Render(fmt.Sprintf("  %s  %3d/100",
			e.Timestamp.Format("2006-01-02 15:04"), e.TotalScore)) + "\n")
	}
	return b.String()
}
