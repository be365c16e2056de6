package evaluate

import "github.com/avinsharma/intervu/internal/llm"

// EvaluationSchema defines the JSON schema for answer evaluation
// responses.
var EvaluationSchema = &llm.Schema{
	Name:        "answer-evaluation",
	Description: "A score and short encouraging explanation for one interview answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"score": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"maximum":     10,
				"description": "How well the answer holds up on accuracy, relevance and clarity",
			},
			"explanation": map[string]any{
				"type":        "string",
				"minLength":   1,
				"description": "Brief, encouraging feedback, 1-2 sentences",
			},
		},
		"required":             []any{"score", "explanation"},
		"additionalProperties": false,
	},
}
