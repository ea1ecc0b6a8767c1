package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

var quizSchema = &Schema{
	Name: "quiz",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question":      map[string]any{"type": "string"},
						"correctAnswer": map[string]any{"type": "integer"},
					},
					"required": []any{"question", "correctAnswer"},
				},
			},
		},
		"required": []any{"questions"},
	},
}

func TestValidateResponse_Valid(t *testing.T) {
	raw := json.RawMessage(`{"questions":[{"question":"2+2?","correctAnswer":1}]}`)
	if err := validateResponse(quizSchema, raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{"questions": [`)
	err := validateResponse(quizSchema, raw)
	if err == nil {
		t.Fatal("expected error")
	}
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ErrInvalidResponse, got %T", err)
	}
}

func TestValidateResponse_SchemaViolation(t *testing.T) {
	// correctAnswer must be an integer.
	raw := json.RawMessage(`{"questions":[{"question":"2+2?","correctAnswer":"four"}]}`)
	err := validateResponse(quizSchema, raw)
	if err == nil {
		t.Fatal("expected error")
	}
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ErrInvalidResponse, got %T", err)
	}
}

func TestValidateResponse_MissingRequiredField(t *testing.T) {
	raw := json.RawMessage(`{"count": 3}`)
	if err := validateResponse(quizSchema, raw); err == nil {
		t.Fatal("expected error for missing required field")
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`anything, even non-JSON`)); err != nil {
		t.Fatalf("nil schema should skip validation, got: %v", err)
	}
}

func TestValidateResponse_SchemaCached(t *testing.T) {
	raw := json.RawMessage(`{"questions":[]}`)
	for range 3 {
		if err := validateResponse(quizSchema, raw); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if _, ok := schemaCache.Load(quizSchema.Name); !ok {
		t.Fatal("expected compiled schema to be cached")
	}
}
