package question

import (
	"fmt"
	"strings"

	"github.com/avinsharma/intervu/internal/interview"
)

const systemPrompt = `You are an experienced interviewer running a mock interview.

Rules:
- Generate a single interview question for the given role, topic and difficulty.
- Easy: basic concepts or simple scenarios.
- Medium: practical applications or moderate challenges.
- Hard: advanced topics, complex problem-solving, or futuristic concepts (e.g., AGI ethics).
- The question must be specific to the role, self-contained, and answerable verbally in a few minutes.
- Return only the question. No preamble, no numbering, no answer.`

// buildUserMessage constructs the user message for a generation request.
func buildUserMessage(input Input) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Job Role: %s\n", input.Role)
	fmt.Fprintf(&b, "Topic: %s\n", topicLabel(input.Topic))
	fmt.Fprintf(&b, "Difficulty: %s\n", input.Difficulty)
	b.WriteString("Assume typical skills and responsibilities for the role.")

	if IsResearchRole(input.Role) && input.Difficulty == interview.Hard {
		b.WriteString("\nFor this role, include reasoning, ethics, or novel architectures at Hard difficulty.")
	}

	return b.String()
}

// topicLabel renders a topic for the prompt.
func topicLabel(t interview.Topic) string {
	return strings.ReplaceAll(string(t), "_", " ")
}
