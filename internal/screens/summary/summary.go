// Package summary shows the final result after an interview: total
// score, outcome and the closing summary, with report export and a
// jump to the leaderboard.
package summary

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/avinsharma/intervu/internal/interview"
	"github.com/avinsharma/intervu/internal/report"
	"github.com/avinsharma/intervu/internal/router"
	"github.com/avinsharma/intervu/internal/screen"
	"github.com/avinsharma/intervu/internal/screens/leaderboard"
	"github.com/avinsharma/intervu/internal/store"
	"github.com/avinsharma/intervu/internal/ui/layout"
	"github.com/avinsharma/intervu/internal/ui/theme"
)

type exportDoneMsg struct {
	path string
	err  error
}

// SummaryScreen displays the outcome of a finished interview.
type SummaryScreen struct {
	session   *interview.Session
	result    interview.Result
	repo      store.InterviewRepo
	reportDir string

	exportPath string
	exportErr  error
	exporting  bool
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates the summary screen for a finalized session.
func New(sess *interview.Session, res interview.Result, repo store.InterviewRepo, reportDir string) *SummaryScreen {
	return &SummaryScreen{
		session:   sess,
		result:    res,
		repo:      repo,
		reportDir: reportDir,
	}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Results"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "E", Description: "Export report"},
		{Key: "L", Description: "Leaderboard"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case exportDoneMsg:
		s.exporting = false
		s.exportPath = msg.path
		s.exportErr = msg.err
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "e", "E":
			if s.exporting {
				return s, nil
			}
			s.exporting = true
			sess := s.session
			res := s.result
			dir := s.reportDir
			return s, func() tea.Msg {
				path, err := report.Export(dir, sess, res, time.Now())
				return exportDoneMsg{path: path, err: err}
			}
		case "l", "L":
			repo := s.repo
			role := s.session.Role
			candidate := s.session.Candidate
			return s, func() tea.Msg {
				return router.PushScreenMsg{
					Screen: leaderboard.New(repo, role, candidate),
				}
			}
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	cw := min(width-6, 70)

	outcome := theme.Pass.Render("SELECTED")
	if !s.result.Selected {
		outcome = theme.Fail.Render("NOT SELECTED")
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render("Interview Complete") + "\n\n")
	fmt.Fprintf(&b, "%s  %s\n\n",
		theme.Body.Bold(true).Render(fmt.Sprintf("Total Score: %d/100", s.result.TotalScore)),
		outcome)
	fmt.Fprintf(&b, "%s\n\n",
		theme.Subtitle.Render(fmt.Sprintf("%d of %d questions answered",
			s.result.Answered, interview.NumRounds*interview.QuestionsPerRound)))
	b.WriteString(theme.Body.Render(s.result.Summary) + "\n")

	switch {
	case s.exporting:
		b.WriteString("\n" + theme.Hint.Render("Writing report..."))
	case s.exportErr != nil:
		b.WriteString("\n" + theme.Fail.Render("Report export failed: "+s.exportErr.Error()))
	case s.exportPath != "":
		b.WriteString("\n" + theme.Pass.Render("Report saved: "+s.exportPath))
	}

	card := theme.Card.Width(cw).Render(b.String())

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(card)
}
