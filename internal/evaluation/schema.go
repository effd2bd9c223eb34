package evaluation

import (
	"encoding/json"

	"github.com/skillmatch/skillmatch/internal/llm"
)

// EvaluationSchema defines the JSON schema for quiz evaluation responses.
var EvaluationSchema = &llm.Schema{
	Name:        "skill-evaluation",
	Description: "An evaluation of a candidate's skill quiz answers for a job role",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"score": map[string]any{
				"type":        "number",
				"minimum":     0,
				"maximum":     100,
				"description": "A percentage score from 0 to 100.",
			},
			"summary": map[string]any{
				"type":        "string",
				"description": "A brief summary of the candidate's performance.",
			},
			"improvementAreas": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"description": "A list of specific areas for improvement.",
			},
			"interviewProbability": map[string]any{
				"type":        "string",
				"description": `An estimated interview probability: "Low", "Medium", or "High".`,
			},
			"suggestedJobTitles": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"description": "A list of other relevant job titles.",
			},
		},
		"required":             []any{"score", "summary", "improvementAreas", "interviewProbability", "suggestedJobTitles"},
		"additionalProperties": false,
	},
	Example: json.RawMessage(`{
		"score": 68,
		"summary": "Demo evaluation: answers show working knowledge of the fundamentals with room to go deeper on trade-offs.",
		"improvementAreas": ["Explain the reasoning behind design choices", "Give concrete examples from past work"],
		"interviewProbability": "Medium",
		"suggestedJobTitles": ["Junior Engineer", "Technical Support Engineer"]
	}`),
}
