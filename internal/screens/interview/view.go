package interview

import (
	"fmt"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/avinsharma/intervu/internal/interview"
	"github.com/avinsharma/intervu/internal/ui/components"
	"github.com/avinsharma/intervu/internal/ui/theme"
)

func (s *Screen) View(width, height int) string {
	var content string
	switch {
	case s.quitConfirm:
		content = s.renderQuitConfirm()
	case s.phase == phaseGenerating:
		content = renderWaiting("Preparing your next question...")
	case s.phase == phaseScoring:
		content = renderWaiting("Scoring your answer...")
	case s.phase == phaseFinalizing:
		content = renderWaiting("Wrapping up the interview...")
	case s.phase == phaseFeedback:
		content = s.renderFeedback(width)
	default:
		content = s.renderQuestion(width)
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (s *Screen) renderQuestion(width int) string {
	cw := min(width-6, 76)

	r := s.action.Round
	onQuestion := time.Since(s.questionStart).Round(time.Second)
	header := theme.Subtitle.Render(fmt.Sprintf(
		"Round %d of %d · %s · Question %d of %d · on this question %s",
		r+1, interview.NumRounds,
		s.session.Rounds[r].Difficulty,
		s.action.Slot+1, interview.QuestionsPerRound,
		formatClock(int(onQuestion.Minutes()), int(onQuestion.Seconds())%60)))

	progress := components.NewProgressBar("", s.progressPercent(), false, cw).View()

	questionCard := theme.Card.Width(cw).Render(
		theme.Body.Bold(true).Render(s.currentQ))

	answerLabel := "  Your answer"
	confLabel := "  Confidence"
	if s.onConfidence {
		confLabel = theme.Selected.Render("▸ Confidence")
	} else {
		answerLabel = theme.Selected.Render("▸ Your answer")
	}

	answerBox := s.answer.View()
	conf := s.confidence.View()

	hint := theme.Hint.Render("Tab to switch, Enter on confidence to submit")

	return lipgloss.JoinVertical(lipgloss.Left,
		header, "", progress, "",
		questionCard, "",
		answerLabel, answerBox, "",
		confLabel+"  "+conf, "",
		hint)
}

func (s *Screen) renderFeedback(width int) string {
	cw := min(width-6, 70)

	scoreStyle := theme.Pass
	if s.feedback.Score < 5 {
		scoreStyle = theme.Fail
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		theme.Title.Render("Feedback"),
		"",
		scoreStyle.Render(fmt.Sprintf("Score: %d/10", s.feedback.Score)),
		"",
		theme.Body.Render(s.feedback.Explanation),
		"",
		theme.Hint.Render("Press any key to continue"))

	return theme.Card.Width(cw).Render(body)
}

func (s *Screen) renderQuitConfirm() string {
	keep := components.NewButton("Keep Going", s.quitChoice == quitChoiceKeep, nil)
	end := components.NewButton("End Interview", s.quitChoice == quitChoiceEnd, nil)
	buttons := lipgloss.JoinHorizontal(lipgloss.Center, keep.View(), "   ", end.View())

	body := lipgloss.JoinVertical(lipgloss.Center,
		theme.Warning.Render("End the interview early?"),
		"",
		theme.Body.Render("Answered questions are kept and the interview is scored as-is."),
		"",
		buttons)
	return theme.Card.Render(body)
}

func renderWaiting(text string) string {
	return theme.Subtitle.Render(text)
}

// progressPercent is the share of all 15 questions answered so far.
func (s *Screen) progressPercent() float64 {
	return float64(s.session.Answered()) / float64(interview.NumRounds*interview.QuestionsPerRound)
}

func formatClock(minutes, seconds int) string {
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
