package quizgen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/ravitej/prepmate/internal/llm"
	"github.com/ravitej/prepmate/internal/syllabus"
)

// subjectBatchJSON builds a canned per-subject response with n questions.
func subjectBatchJSON(subject string, n int) json.RawMessage {
	questions := make([]Question, n)
	for i := range questions {
		questions[i] = Question{
			Subject:  subject,
			Topic:    "Some Chapter",
			Question: fmt.Sprintf("%s question %d?", subject, i+1),
			Options:  []string{"A", "B", "C", "D"},
		}
	}
	b, _ := json.Marshal(questionsOutput{Questions: questions})
	return b
}

func TestGenerateDiagnostic_FullQuiz(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: subjectBatchJSON("Mathematics", 5)},
		llm.MockResponse{Content: subjectBatchJSON("Physics", 5)},
		llm.MockResponse{Content: subjectBatchJSON("Chemistry", 5)},
	)
	gen := New(mock, DefaultConfig(), nil)

	questions, err := gen.GenerateDiagnostic(context.Background(), syllabus.StreamMPC, syllabus.YearSecond, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 15 {
		t.Fatalf("expected 15 questions, got %d", len(questions))
	}
	for i, q := range questions {
		if q.ID != i+1 {
			t.Errorf("question %d has ID %d, want %d", i, q.ID, i+1)
		}
	}
	if mock.CallCount() != 3 {
		t.Fatalf("expected 3 subject calls, got %d", mock.CallCount())
	}
}

func TestGenerateDiagnostic_FailedSubjectContributesNothing(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: subjectBatchJSON("Mathematics", 5)},
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
		llm.MockResponse{Content: subjectBatchJSON("Chemistry", 5)},
	)
	gen := New(mock, DefaultConfig(), nil)

	questions, err := gen.GenerateDiagnostic(context.Background(), syllabus.StreamMPC, syllabus.YearSecond, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 10 {
		t.Fatalf("expected 10 questions after one subject failure, got %d", len(questions))
	}
	// IDs still contiguous from 1.
	for i, q := range questions {
		if q.ID != i+1 {
			t.Errorf("question %d has ID %d, want %d", i, q.ID, i+1)
		}
	}
}

func TestGenerateDiagnostic_AllSubjectsFail(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
	)
	gen := New(mock, DefaultConfig(), nil)

	questions, err := gen.GenerateDiagnostic(context.Background(), syllabus.StreamMPC, syllabus.YearFirst, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 0 {
		t.Fatalf("expected empty quiz, got %d questions", len(questions))
	}
}

func TestGenerateDiagnostic_CapsOversizedBatches(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: subjectBatchJSON("Mathematics", 8)},
		llm.MockResponse{Content: subjectBatchJSON("Physics", 8)},
		llm.MockResponse{Content: subjectBatchJSON("Chemistry", 8)},
	)
	gen := New(mock, DefaultConfig(), nil)

	questions, err := gen.GenerateDiagnostic(context.Background(), syllabus.StreamMPC, syllabus.YearSecond, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 15 {
		t.Fatalf("expected cap at 15 questions, got %d", len(questions))
	}
}

func TestGenerateDiagnostic_UsesSmallModel(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: subjectBatchJSON("Mathematics", 5)},
		llm.MockResponse{Content: subjectBatchJSON("Physics", 5)},
		llm.MockResponse{Content: subjectBatchJSON("Chemistry", 5)},
	)
	gen := New(mock, DefaultConfig(), nil)

	_, err := gen.GenerateDiagnostic(context.Background(), syllabus.StreamMPC, syllabus.YearSecond, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, call := range mock.Calls {
		if call.Model != llm.ModelSmall {
			t.Errorf("call %d model = %q, want %q", i, call.Model, llm.ModelSmall)
		}
		if call.Schema != DiagnosticSchema {
			t.Errorf("call %d missing diagnostic schema", i)
		}
	}
}

func TestAnalyze(t *testing.T) {
	analysisJSON := `{
		"score": 9,
		"total": 15,
		"subjectStats": {
			"Mathematics": {"score": 4, "total": 5, "accuracy": "80%"},
			"Physics": {"score": 3, "total": 5, "accuracy": "60%"},
			"Chemistry": {"score": 2, "total": 5, "accuracy": "40%"}
		},
		"weakTopics": [{"topic": "Electrochemistry and Chemical Kinetics", "subject": "Chemistry"}],
		"strongTopics": [{"topic": "Integration", "subject": "Maths"}],
		"overallReadiness": "Intermediate",
		"speedAnalysis": "Steady pace, around 30s per question",
		"feedback": "Good base, chemistry needs work"
	}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(analysisJSON)})
	gen := New(mock, DefaultConfig(), nil)

	analysis, err := gen.Analyze(context.Background(), []AnswerRecord{
		{ID: 1, Subject: "Mathematics", Topic: "Integration", Selected: "B", TimeSeconds: 25},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if analysis.Score != 9 || analysis.Total != 15 {
		t.Errorf("score = %d/%d, want 9/15", analysis.Score, analysis.Total)
	}
	if analysis.SubjectStats["Chemistry"].Accuracy != "40%" {
		t.Errorf("chemistry accuracy = %q, want 40%%", analysis.SubjectStats["Chemistry"].Accuracy)
	}
	if len(analysis.WeakTopics) != 1 || analysis.WeakTopics[0].Subject != "Chemistry" {
		t.Errorf("unexpected weak topics: %+v", analysis.WeakTopics)
	}
}

func TestAnalyze_ProviderFailure(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
	)
	gen := New(mock, DefaultConfig(), nil)

	analysis, err := gen.Analyze(context.Background(), nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if analysis != nil {
		t.Fatalf("expected nil analysis on failure, got %+v", analysis)
	}
}

func TestGenerateTopicQuiz(t *testing.T) {
	quizJSON := `{
		"questions": [
			{
				"question": "The radius of the circle x^2 + y^2 = 25 is?",
				"options": ["25", "5", "10", "625"],
				"correctAnswer": 1,
				"explanation": "x^2 + y^2 = r^2, so r^2 = 25 and r = 5."
			}
		]
	}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(quizJSON)})
	gen := New(mock, DefaultConfig(), nil)

	questions, err := gen.GenerateTopicQuiz(context.Background(), "Circle", "Mathematics", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 1 {
		t.Fatalf("expected 1 question, got %d", len(questions))
	}
	if questions[0].CorrectAnswer != 1 {
		t.Errorf("correctAnswer = %d, want 1", questions[0].CorrectAnswer)
	}

	call := mock.LastCall()
	if call.Model != llm.ModelLarge {
		t.Errorf("model = %q, want %q", call.Model, llm.ModelLarge)
	}
	if !strings.Contains(call.Messages[0].Content, "exactly 10") {
		t.Error("expected default count of 10 in prompt")
	}
}
