package question

import "github.com/avinsharma/intervu/internal/llm"

// QuestionSchema defines the JSON schema for question generation
// responses.
var QuestionSchema = &llm.Schema{
	Name:        "interview-question",
	Description: "A single interview question for the given role, topic and difficulty",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{
				"type":        "string",
				"minLength":   1,
				"description": "The interview question shown to the candidate. No preamble, no numbering.",
			},
		},
		"required":             []any{"question"},
		"additionalProperties": false,
	},
}
