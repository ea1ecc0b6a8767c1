package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/ravitej/prepmate/internal/llm"
	"github.com/ravitej/prepmate/internal/quizgen"
	"github.com/ravitej/prepmate/internal/store"
	"github.com/ravitej/prepmate/internal/studyplan"
	"github.com/ravitej/prepmate/internal/tutor"
)

// fakePlanRepo is an in-memory store.PlanRepo.
type fakePlanRepo struct {
	plans []store.SavedPlan
}

func (f *fakePlanRepo) Save(_ context.Context, plan *store.SavedPlan) error {
	if plan.PlanID == uuid.Nil {
		plan.PlanID = uuid.New()
	}
	if plan.UserID == "" {
		plan.UserID = "anonymous"
	}
	if plan.Status == "" {
		plan.Status = store.PlanStatusDraft
	}
	f.plans = append(f.plans, *plan)
	return nil
}

func (f *fakePlanRepo) Get(_ context.Context, planID uuid.UUID) (*store.SavedPlan, error) {
	for i := range f.plans {
		if f.plans[i].PlanID == planID {
			return &f.plans[i], nil
		}
	}
	return nil, nil
}

func (f *fakePlanRepo) Latest(_ context.Context, userID string) (*store.SavedPlan, error) {
	for i := len(f.plans) - 1; i >= 0; i-- {
		if f.plans[i].UserID == userID {
			return &f.plans[i], nil
		}
	}
	return nil, nil
}

func (f *fakePlanRepo) History(_ context.Context, userID string, limit int) ([]store.SavedPlan, error) {
	var out []store.SavedPlan
	for i := len(f.plans) - 1; i >= 0; i-- {
		if f.plans[i].UserID == userID {
			out = append(out, f.plans[i])
		}
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakePlanRepo) Finalize(_ context.Context, planID uuid.UUID) error {
	for i := range f.plans {
		if f.plans[i].PlanID == planID {
			f.plans[i].Status = store.PlanStatusActive
			return nil
		}
	}
	return errors.New("not found")
}

func newTestServer(mock *llm.MockProvider, repo store.PlanRepo) *Server {
	quiz := quizgen.New(mock, quizgen.DefaultConfig(), nil)
	plans := studyplan.New(mock, studyplan.DefaultConfig(), nil)
	tut := tutor.New(mock, nil)
	return New(quiz, plans, tut, repo, nil)
}

func doJSON(t *testing.T, handler http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func subjectBatch(subject string, n int) json.RawMessage {
	questions := make([]quizgen.Question, n)
	for i := range questions {
		questions[i] = quizgen.Question{
			Subject:  subject,
			Topic:    "Chapter",
			Question: fmt.Sprintf("%s q%d?", subject, i+1),
			Options:  []string{"A", "B", "C", "D"},
		}
	}
	b, _ := json.Marshal(map[string]any{"questions": questions})
	return b
}

func TestHealth(t *testing.T) {
	srv := newTestServer(llm.NewMockProvider(), nil)
	rec := doJSON(t, srv.Handler(), http.MethodGet, "/", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"ok"`)
	require.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestQuizGenerate_MissingFields(t *testing.T) {
	srv := newTestServer(llm.NewMockProvider(), nil)

	rec := doJSON(t, srv.Handler(), http.MethodPost, "/api/quiz/generate",
		map[string]string{"stream": "MPC"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "Stream and Year required")
}

func TestQuizGenerate_AllSubjectsFail(t *testing.T) {
	srv := newTestServer(llm.NewMockProvider(), nil) // empty queue: every call errors

	rec := doJSON(t, srv.Handler(), http.MethodPost, "/api/quiz/generate",
		map[string]string{"stream": "MPC", "year": "2nd Year"})
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Contains(t, rec.Body.String(), "Failed to generate quiz")
}

func TestQuizGenerate_Success(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: subjectBatch("Mathematics", 5)},
		llm.MockResponse{Content: subjectBatch("Physics", 5)},
		llm.MockResponse{Content: subjectBatch("Chemistry", 5)},
	)
	srv := newTestServer(mock, nil)

	rec := doJSON(t, srv.Handler(), http.MethodPost, "/api/quiz/generate",
		map[string]string{"stream": "MPC", "year": "2nd Year"})
	require.Equal(t, http.StatusOK, rec.Code)

	var out struct {
		Questions []quizgen.Question `json:"questions"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out.Questions, 15)
	require.Equal(t, 1, out.Questions[0].ID)
}

func TestQuizAnalyze(t *testing.T) {
	t.Run("missing answers", func(t *testing.T) {
		srv := newTestServer(llm.NewMockProvider(), nil)
		rec := doJSON(t, srv.Handler(), http.MethodPost, "/api/quiz/analyze", map[string]any{})
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("provider failure", func(t *testing.T) {
		srv := newTestServer(llm.NewMockProvider(), nil)
		rec := doJSON(t, srv.Handler(), http.MethodPost, "/api/quiz/analyze",
			map[string]any{"answers": []quizgen.AnswerRecord{{ID: 1}}})
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Contains(t, rec.Body.String(), "Analysis failed")
	})

	t.Run("success", func(t *testing.T) {
		mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{
			"score": 10, "total": 15,
			"subjectStats": {"Mathematics": {"score": 4, "total": 5, "accuracy": "80%"}},
			"weakTopics": [], "strongTopics": [],
			"overallReadiness": "Advanced"
		}`)})
		srv := newTestServer(mock, nil)
		rec := doJSON(t, srv.Handler(), http.MethodPost, "/api/quiz/analyze",
			map[string]any{"answers": []quizgen.AnswerRecord{{ID: 1, Subject: "Mathematics"}}})
		require.Equal(t, http.StatusOK, rec.Code)

		var analysis quizgen.Analysis
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &analysis))
		require.Equal(t, 10, analysis.Score)
		require.Equal(t, "Advanced", analysis.OverallReadiness)
	})
}

func TestPlanGenerate_MissingProfile(t *testing.T) {
	srv := newTestServer(llm.NewMockProvider(), nil)
	rec := doJSON(t, srv.Handler(), http.MethodPost, "/api/plan/generate", map[string]any{})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "User profile required")
}

func TestPlanGenerate_FoundationAlwaysComplete(t *testing.T) {
	// Provider always fails; the plan must still be structurally complete.
	repo := &fakePlanRepo{}
	srv := newTestServer(llm.NewMockProvider(), repo)

	rec := doJSON(t, srv.Handler(), http.MethodPost, "/api/plan/generate", map[string]any{
		"userProfile": map[string]string{"year": "2nd Year", "stream": "MPC", "startType": "foundation"},
		"userId":      "ravi",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var out struct {
		Plan studyplan.StudyPlan `json:"plan"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Equal(t, "60 Days", out.Plan.PlanDuration)
	require.Len(t, out.Plan.MonthlyPlan, 2)
	for _, month := range out.Plan.MonthlyPlan {
		require.NotEmpty(t, month.Weeks)
	}

	// Persisted best-effort as a draft.
	require.Len(t, repo.plans, 1)
	require.Equal(t, "ravi", repo.plans[0].UserID)
	require.Equal(t, store.PlanStatusDraft, repo.plans[0].Status)
	require.Equal(t, map[string]any{"type": "foundation"}, repo.plans[0].TestResults)
}

func TestPlanGenerate_DefaultPathReturnsOverview(t *testing.T) {
	srv := newTestServer(llm.NewMockProvider(), nil) // fails -> deterministic overview

	rec := doJSON(t, srv.Handler(), http.MethodPost, "/api/plan/generate", map[string]any{
		"userProfile": map[string]string{"year": "2nd Year", "stream": "MPC"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var out struct {
		Plan studyplan.Overview `json:"plan"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Equal(t, "You can do this!", out.Plan.ExpectedImprovement)
}

func TestPlanFinalize(t *testing.T) {
	repo := &fakePlanRepo{}
	srv := newTestServer(llm.NewMockProvider(), repo)

	rec := doJSON(t, srv.Handler(), http.MethodPost, "/api/plan/finalize", map[string]any{
		"userProfile": map[string]string{"year": "1st Year", "stream": "MPC"},
		"quizResults": map[string]any{"score": 5, "total": 15},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var out struct {
		Plan studyplan.StudyPlan `json:"plan"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Equal(t, "90 Days", out.Plan.PlanDuration)
	require.Len(t, out.Plan.MonthlyPlan, 3)

	require.Len(t, repo.plans, 1)
	require.Equal(t, store.PlanStatusActive, repo.plans[0].Status)
}

func TestPlanLatest(t *testing.T) {
	repo := &fakePlanRepo{}
	srv := newTestServer(llm.NewMockProvider(), repo)
	handler := srv.Handler()

	rec := doJSON(t, handler, http.MethodGet, "/api/plan/latest?userId=ravi", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	doJSON(t, handler, http.MethodPost, "/api/plan/finalize", map[string]any{
		"userProfile": map[string]string{"year": "2nd Year", "stream": "MPC"},
		"userId":      "ravi",
	})

	rec = doJSON(t, handler, http.MethodGet, "/api/plan/latest?userId=ravi", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"selectedYear":"2nd Year"`)
}

func TestChat_ApologyOnFailure(t *testing.T) {
	srv := newTestServer(llm.NewMockProvider(), nil)

	rec := doJSON(t, srv.Handler(), http.MethodPost, "/api/chat",
		map[string]any{"message": "help with integration"})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "having trouble connecting")
}

func TestLearnTopic(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("Topic Overview: integration sums areas under curves."),
	})
	srv := newTestServer(mock, nil)

	rec := doJSON(t, srv.Handler(), http.MethodPost, "/api/learn/topic",
		map[string]string{"topic": "Integration"})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "areas under curves")

	// Defaults applied.
	prompt := mock.LastCall().Messages[0].Content
	require.Contains(t, prompt, "- Subject: General")
	require.Contains(t, prompt, "- Year Level: 2nd Year")
}

func TestPracticeQuestions(t *testing.T) {
	t.Run("missing fields", func(t *testing.T) {
		srv := newTestServer(llm.NewMockProvider(), nil)
		rec := doJSON(t, srv.Handler(), http.MethodPost, "/api/practice/questions",
			map[string]string{"topic": "Circle"})
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("provider failure", func(t *testing.T) {
		srv := newTestServer(llm.NewMockProvider(), nil)
		rec := doJSON(t, srv.Handler(), http.MethodPost, "/api/practice/questions",
			map[string]string{"topic": "Circle", "subject": "Mathematics"})
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("success", func(t *testing.T) {
		mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{
			"questions": [{
				"question": "Radius of x^2+y^2=49?",
				"options": ["7", "49", "14", "4"],
				"correctAnswer": 0,
				"explanation": "r^2 = 49 so r = 7."
			}]
		}`)})
		srv := newTestServer(mock, nil)
		rec := doJSON(t, srv.Handler(), http.MethodPost, "/api/practice/questions",
			map[string]any{"topic": "Circle", "subject": "Mathematics", "count": 1})
		require.Equal(t, http.StatusOK, rec.Code)

		var out struct {
			Questions []quizgen.PracticeQuestion `json:"questions"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
		require.Len(t, out.Questions, 1)
		require.Equal(t, 0, out.Questions[0].CorrectAnswer)
	})
}
