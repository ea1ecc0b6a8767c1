package quizgen

import "github.com/ravitej/prepmate/internal/llm"

// DiagnosticSchema validates per-subject diagnostic quiz responses.
// Diagnostic questions must not carry answers; the answer key never reaches
// the client.
var DiagnosticSchema = &llm.Schema{
	Name:        "diagnostic-quiz",
	Description: "A batch of diagnostic MCQs without answer keys",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"subject": map[string]any{
							"type": "string",
							"enum": []any{"Mathematics", "Physics", "Chemistry"},
						},
						"topic": map[string]any{
							"type":        "string",
							"description": "Specific chapter name from the syllabus",
						},
						"question": map[string]any{
							"type": "string",
						},
						"options": map[string]any{
							"type":     "array",
							"items":    map[string]any{"type": "string"},
							"minItems": 4,
							"maxItems": 4,
						},
					},
					"required": []any{"subject", "topic", "question", "options"},
				},
			},
		},
		"required": []any{"questions"},
	},
}

// AnalysisSchema validates quiz grading responses.
var AnalysisSchema = &llm.Schema{
	Name:        "quiz-analysis",
	Description: "Graded outcome of a diagnostic quiz",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"score": map[string]any{"type": "number"},
			"total": map[string]any{"type": "number"},
			"subjectStats": map[string]any{
				"type": "object",
				"additionalProperties": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"score":    map[string]any{"type": "number"},
						"total":    map[string]any{"type": "number"},
						"accuracy": map[string]any{"type": "string"},
					},
					"required": []any{"score", "total", "accuracy"},
				},
			},
			"weakTopics":       topicListSchema,
			"strongTopics":     topicListSchema,
			"overallReadiness": map[string]any{"type": "string"},
			"speedAnalysis":    map[string]any{"type": "string"},
			"feedback":         map[string]any{"type": "string"},
		},
		"required": []any{"score", "total", "subjectStats", "weakTopics", "strongTopics", "overallReadiness"},
	},
}

// PracticeSchema validates topic practice quiz responses, which include the
// answer key and explanations.
var PracticeSchema = &llm.Schema{
	Name:        "practice-quiz",
	Description: "Topic practice MCQs with answer key and explanations",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{"type": "string"},
						"options": map[string]any{
							"type":     "array",
							"items":    map[string]any{"type": "string"},
							"minItems": 4,
							"maxItems": 4,
						},
						"correctAnswer": map[string]any{
							"type":    "integer",
							"minimum": 0,
							"maximum": 3,
						},
						"explanation": map[string]any{"type": "string"},
					},
					"required": []any{"question", "options", "correctAnswer", "explanation"},
				},
			},
		},
		"required": []any{"questions"},
	},
}

var topicListSchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"topic":   map[string]any{"type": "string"},
			"subject": map[string]any{"type": "string"},
		},
		"required": []any{"topic", "subject"},
	},
}
