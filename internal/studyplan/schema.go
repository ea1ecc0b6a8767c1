package studyplan

import "github.com/ravitej/prepmate/internal/llm"

// ChunkSchema validates one 30-day chunk response: a "days" map whose values
// each carry a task list.
var ChunkSchema = &llm.Schema{
	Name:        "plan-chunk",
	Description: "One 30-day window of a study plan, keyed day_N",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"days": map[string]any{
				"type": "object",
				"additionalProperties": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"tasks": map[string]any{
							"type":     "array",
							"minItems": 3,
							"maxItems": 3,
							"items": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"subject": map[string]any{
										"type": "string",
										"enum": []any{"Mathematics", "Physics", "Chemistry"},
									},
									"topic":    map[string]any{"type": "string"},
									"type":     map[string]any{"type": "string"},
									"duration": map[string]any{"type": "string"},
								},
								"required": []any{"subject", "topic"},
							},
						},
					},
					"required": []any{"tasks"},
				},
			},
		},
		"required": []any{"days"},
	},
}

// OverviewSchema validates the sample-plan response.
var OverviewSchema = &llm.Schema{
	Name:        "plan-overview",
	Description: "Two-week sample study plan with performance summary",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"performance_summary": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"overall_level": map[string]any{"type": "string"},
					"focus_subjects": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
				},
				"required": []any{"overall_level", "focus_subjects"},
			},
			"priority_topics": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"sample_study_plan": map[string]any{
				"type": "object",
				"additionalProperties": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"focus": map[string]any{"type": "string"},
						"schedule": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"day":  map[string]any{"type": "string"},
									"task": map[string]any{"type": "string"},
								},
								"required": []any{"day", "task"},
							},
						},
					},
					"required": []any{"focus", "schedule"},
				},
			},
			"revision_strategy":    map[string]any{"type": "string"},
			"expected_improvement": map[string]any{"type": "string"},
		},
		"required": []any{"performance_summary", "priority_topics", "sample_study_plan"},
	},
}
