package summary

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/avinsharma/intervu/internal/interview"
	"github.com/avinsharma/intervu/internal/store"
)

type stubRepo struct{}

func (stubRepo) AppendAnswer(context.Context, store.AnswerRecord) error { return nil }
func (stubRepo) FinalizeResult(context.Context, string, string, int, bool) error {
	return nil
}
func (stubRepo) TopScores(context.Context, string, int) ([]store.LeaderboardEntry, error) {
	return nil, nil
}
func (stubRepo) History(context.Context, string, string) ([]store.HistoryEntry, error) {
	return nil, nil
}

func testSummary(t *testing.T, selected bool) *SummaryScreen {
	t.Helper()
	sess := interview.NewSession("ada", "AI Engineer", 30*time.Minute, "")
	res := interview.Result{
		TotalScore: 72,
		Selected:   selected,
		Summary:    "Strong showing across all three rounds.",
		Answered:   15,
	}
	return New(sess, res, stubRepo{}, t.TempDir())
}

func TestViewShowsOutcome(t *testing.T) {
	s := testSummary(t, true)
	view := s.View(100, 40)
	if !strings.Contains(view, "72/100") {
		t.Error("expected the total score in the view")
	}
	if !strings.Contains(view, "SELECTED") {
		t.Error("expected the outcome in the view")
	}

	s = testSummary(t, false)
	if !strings.Contains(s.View(100, 40), "NOT SELECTED") {
		t.Error("expected a failing outcome to render NOT SELECTED")
	}
}

func TestExportWritesReport(t *testing.T) {
	s := testSummary(t, true)

	next, cmd := s.Update(tea.KeyPressMsg{Code: 'e', Text: "e"})
	s = next.(*SummaryScreen)
	if cmd == nil {
		t.Fatal("expected an export command")
	}

	msg, ok := cmd().(exportDoneMsg)
	if !ok {
		t.Fatal("expected exportDoneMsg")
	}
	if msg.err != nil {
		t.Fatalf("export failed: %v", msg.err)
	}

	data, err := os.ReadFile(msg.path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	if !strings.Contains(string(data), "Total Score: 72/100") {
		t.Error("expected the total in the exported report")
	}

	next, _ = s.Update(msg)
	s = next.(*SummaryScreen)
	if s.exportPath != msg.path {
		t.Errorf("exportPath = %q, want %q", s.exportPath, msg.path)
	}
}
