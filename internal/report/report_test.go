package report

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/avinsharma/intervu/internal/interview"
)

func sessionWithAnswers(t *testing.T) *interview.Session {
	t.Helper()
	s := interview.NewSession("Ada Lovelace", "backend engineer", 30*time.Minute, "")
	s.RecordAnswer("How does Go schedule goroutines?", "Via the runtime's M:N scheduler.", 8)
	s.RecordAnswer(strings.Repeat("x", 150), strings.Repeat("y", 150), 5)
	return s
}

func TestRenderContainsCoreFields(t *testing.T) {
	s := sessionWithAnswers(t)
	res := interview.Result{TotalScore: 72, Selected: true, Summary: "Great showing overall.", Answered: 2}

	out := Render(s, res, time.Now())

	for _, want := range []string{
		"Ada Lovelace",
		"backend engineer",
		"Round 1 (Easy)",
		"How does Go schedule goroutines?",
		"Score: 8/10",
		"Total Score: 72/100",
		"Outcome:     Selected",
		"Great showing overall.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q", want)
		}
	}
	if !strings.Contains(out, "Round 3 (Hard)") || !strings.Contains(out, "Not reached.") {
		t.Error("unreached rounds should still appear")
	}
}

func TestRenderTruncatesLongText(t *testing.T) {
	s := sessionWithAnswers(t)
	out := Render(s, interview.Result{Summary: "s"}, time.Now())

	if strings.Contains(out, strings.Repeat("x", 101)) {
		t.Error("question not truncated to 100 characters")
	}
	if !strings.Contains(out, strings.Repeat("x", 100)+"...") {
		t.Error("truncated question should end with ellipsis")
	}
	if strings.Contains(out, strings.Repeat("y", 101)) {
		t.Error("answer not truncated to 100 characters")
	}
}

func TestExportWritesFile(t *testing.T) {
	s := sessionWithAnswers(t)
	dir := t.TempDir()

	path, err := Export(dir, s, interview.Result{TotalScore: 48, Summary: "Keep at it."}, time.Now())
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	if !strings.Contains(string(data), "Total Score: 48/100") {
		t.Error("exported file missing total")
	}
	if !strings.HasSuffix(path, ".txt") {
		t.Errorf("path = %q, want .txt", path)
	}
	if strings.Contains(path, " ") {
		t.Errorf("path %q should not contain spaces", path)
	}
}
