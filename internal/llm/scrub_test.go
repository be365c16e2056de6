package llm

import "testing"

func TestStripReasoning_RemovesThinkBlock(t *testing.T) {
	in := "<think>the candidate mentioned ethics, bump the score</think>Score: 7, Explanation: Solid answer."
	got := StripReasoning(in)
	want := "Score: 7, Explanation: Solid answer."
	if got != want {
		t.Errorf("StripReasoning = %q, want %q", got, want)
	}
}

func TestStripReasoning_MultilineBlock(t *testing.T) {
	in := "<think>\nline one\nline two\n</think>\nWhat trade-offs shape cache eviction policy design?"
	got := StripReasoning(in)
	want := "What trade-offs shape cache eviction policy design?"
	if got != want {
		t.Errorf("StripReasoning = %q, want %q", got, want)
	}
}

func TestStripReasoning_MultipleBlocks(t *testing.T) {
	in := "<think>a</think>keep this<think>b</think> and this"
	got := StripReasoning(in)
	want := "keep this and this"
	if got != want {
		t.Errorf("StripReasoning = %q, want %q", got, want)
	}
}

func TestStripReasoning_UnclosedBlockDropped(t *testing.T) {
	in := "The answer text.<think>truncated reasoning that never clos"
	got := StripReasoning(in)
	want := "The answer text."
	if got != want {
		t.Errorf("StripReasoning = %q, want %q", got, want)
	}
}

func TestStripReasoning_NoMarkupUnchanged(t *testing.T) {
	in := "  Describe a time you disagreed with a teammate.  "
	got := StripReasoning(in)
	want := "Describe a time you disagreed with a teammate."
	if got != want {
		t.Errorf("StripReasoning = %q, want %q", got, want)
	}
}
