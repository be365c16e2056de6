package evaluate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// scoreRe matches the score marker in free-text evaluations like
// "Score: 7, Explanation: Nice work."
var scoreRe = regexp.MustCompile(`Score:\s*(\d+)`)

// parseTextual extracts score and explanation from a free-text
// evaluation. Both markers must be present.
func parseTextual(text string) (int, string, error) {
	m := scoreRe.FindStringSubmatch(text)
	if m == nil {
		return 0, "", fmt.Errorf("no score marker in %q", text)
	}
	score, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, "", fmt.Errorf("parse score %q: %w", m[1], err)
	}

	_, explanation, found := strings.Cut(text, "Explanation:")
	if !found {
		return 0, "", fmt.Errorf("no explanation marker in %q", text)
	}

	return score, strings.TrimSpace(explanation), nil
}
