package llm

import (
	"regexp"
	"strings"
)

// Reasoning-capable backends sometimes leak their chain of thought as
// <think>...</think> markup around the answer. Nothing downstream may see
// that text: it is stripped before parsing or display.
var thinkBlockRe = regexp.MustCompile(`(?s)<think>.*?</think>`)

// openThinkRe catches a truncated response that opened a reasoning block
// and never closed it.
var openThinkRe = regexp.MustCompile(`(?s)<think>.*$`)

// StripReasoning removes reasoning markup from generated text and trims
// surrounding whitespace.
func StripReasoning(text string) string {
	out := thinkBlockRe.ReplaceAllString(text, "")
	out = openThinkRe.ReplaceAllString(out, "")
	return strings.TrimSpace(out)
}
