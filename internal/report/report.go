// Package report writes a plain-text summary of a finished interview.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/avinsharma/intervu/internal/interview"
)

// truncateAt caps question and answer lines in the report.
const truncateAt = 100

// Export writes the report into dir and returns the file path. An empty
// dir means the current working directory.
func Export(dir string, s *interview.Session, res interview.Result, now time.Time) (string, error) {
	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("create report dir: %w", err)
		}
	}

	name := fmt.Sprintf("interview_%s_%s.txt",
		sanitize(s.Candidate), now.Format("20060102_150405"))
	path := filepath.Join(dir, name)

	if err := os.WriteFile(path, []byte(Render(s, res, now)), 0o644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}

// Render builds the report text.
func Render(s *interview.Session, res interview.Result, now time.Time) string {
	var b strings.Builder

	b.WriteString("Mock Interview Report\n")
	b.WriteString("=====================\n\n")
	fmt.Fprintf(&b, "Candidate: %s\n", s.Candidate)
	fmt.Fprintf(&b, "Role:      %s\n", s.Role)
	fmt.Fprintf(&b, "Date:      %s\n", s.StartTime.Format("2006-01-02 15:04"))
	fmt.Fprintf(&b, "Elapsed:   %s of %s allowed\n\n",
		formatDuration(s.Elapsed(now)), formatDuration(s.Duration))

	for i := range s.Rounds {
		r := &s.Rounds[i]
		fmt.Fprintf(&b, "Round %d (%s)\n", i+1, r.Difficulty)
		b.WriteString(strings.Repeat("-", 20) + "\n")
		if len(r.Transcript) == 0 {
			b.WriteString("Not reached.\n\n")
			continue
		}
		for j, qa := range r.Transcript {
			fmt.Fprintf(&b, "Q%d: %s\n", j+1, truncate(qa.Question))
			fmt.Fprintf(&b, "A%d: %s\n", j+1, truncate(qa.Answer))
			fmt.Fprintf(&b, "Score: %d/10\n\n", r.Scores[j])
		}
	}

	fmt.Fprintf(&b, "Total Score: %d/100\n", res.TotalScore)
	fmt.Fprintf(&b, "Outcome:     %s\n\n", outcomeLabel(res.Selected))
	b.WriteString("Summary\n-------\n")
	b.WriteString(res.Summary)
	b.WriteString("\n")

	return b.String()
}

func truncate(text string) string {
	runes := []rune(text)
	if len(runes) <= truncateAt {
		return text
	}
	return string(runes[:truncateAt]) + "..."
}

func outcomeLabel(selected bool) string {
	if selected {
		return "Selected"
	}
	return "Not Selected"
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	return fmt.Sprintf("%02d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}

// sanitize makes a candidate name safe for a file name.
func sanitize(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, name)
}
