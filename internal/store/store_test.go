package store

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAppendAndQueryLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "groq", Model: "llama-3.3-70b-versatile", Purpose: "diagnostic-quiz", InputTokens: 100, OutputTokens: 400, LatencyMs: 900, Success: true},
		{Provider: "groq", Model: "llama-3.3-70b-versatile", Purpose: "study-plan", InputTokens: 300, OutputTokens: 1200, LatencyMs: 2100, Success: true},
		{Provider: "groq", Model: "llama-3.1-8b-instant", Purpose: "study-plan", InputTokens: 300, OutputTokens: 0, LatencyMs: 500, Success: false, ErrorMessage: "rate limited"},
	}
	for _, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append event: %v", err)
		}
	}

	got, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query events: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 events, got %d", len(got))
	}

	// Newest first.
	if got[0].Purpose != "study-plan" || got[0].Success {
		t.Errorf("expected newest event first, got %+v", got[0])
	}
	for i := 1; i < len(got); i++ {
		if got[i].Sequence >= got[i-1].Sequence {
			t.Errorf("events not in descending sequence order: %d then %d", got[i-1].Sequence, got[i].Sequence)
		}
	}

	// Purpose filter.
	plans, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "study-plan"})
	if err != nil {
		t.Fatalf("query by purpose: %v", err)
	}
	if len(plans) != 2 {
		t.Fatalf("expected 2 study-plan events, got %d", len(plans))
	}

	// Limit.
	limited, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("query with limit: %v", err)
	}
	if len(limited) != 1 {
		t.Fatalf("expected 1 event with limit, got %d", len(limited))
	}
}

func TestGetLLMEventNotFound(t *testing.T) {
	s := openTestStore(t)
	e, err := s.EventRepo().GetLLMEvent(context.Background(), 9999)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e != nil {
		t.Fatalf("expected nil for missing event, got %+v", e)
	}
}

func TestLLMEventBodiesRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	data := LLMRequestEventData{
		Provider:     "groq",
		Model:        "llama-3.3-70b-versatile",
		Purpose:      "tutor-chat",
		Success:      true,
		RequestBody:  `{"messages":[{"role":"user","content":"hi"}]}`,
		ResponseBody: "Hello! How can I help with your preparation?",
	}
	if err := repo.AppendLLMRequest(ctx, data); err != nil {
		t.Fatalf("append event: %v", err)
	}

	got, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("query events: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 event, got %d", len(got))
	}
	if got[0].RequestBody != data.RequestBody {
		t.Errorf("request body = %q, want %q", got[0].RequestBody, data.RequestBody)
	}
	if got[0].ResponseBody != data.ResponseBody {
		t.Errorf("response body = %q, want %q", got[0].ResponseBody, data.ResponseBody)
	}
}

func TestLLMUsageByPurpose(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for range 2 {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider: "groq", Model: "llama-3.3-70b-versatile", Purpose: "diagnostic-quiz",
			InputTokens: 100, OutputTokens: 200, LatencyMs: 1000, Success: true,
		})
		if err != nil {
			t.Fatalf("append event: %v", err)
		}
	}

	stats, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(stats) != 1 {
		t.Fatalf("expected 1 stat row, got %d", len(stats))
	}
	st := stats[0]
	if st.Purpose != "diagnostic-quiz" || st.Calls != 2 || st.InputTokens != 200 || st.OutputTokens != 400 {
		t.Errorf("unexpected stat: %+v", st)
	}
}

func TestPlanSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.PlanRepo()
	ctx := context.Background()

	// No plan yet.
	latest, err := repo.Latest(ctx, "anonymous")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if latest != nil {
		t.Fatalf("expected nil before any save, got %+v", latest)
	}

	plan := &SavedPlan{
		SelectedYear:  "2nd Year",
		GeneratedPlan: map[string]any{"examName": "EAMCET", "duration": "90 Days"},
		TestResults:   map[string]any{"score": float64(12)},
	}
	if err := repo.Save(ctx, plan); err != nil {
		t.Fatalf("save: %v", err)
	}
	if plan.PlanID == uuid.Nil {
		t.Fatal("expected Save to assign a plan ID")
	}
	if plan.Status != PlanStatusDraft {
		t.Errorf("status = %q, want %q", plan.Status, PlanStatusDraft)
	}

	latest, err = repo.Latest(ctx, "anonymous")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if latest == nil {
		t.Fatal("expected a plan")
	}
	if latest.PlanID != plan.PlanID {
		t.Errorf("latest plan ID = %s, want %s", latest.PlanID, plan.PlanID)
	}
	if latest.GeneratedPlan["examName"] != "EAMCET" {
		t.Errorf("generated plan not round-tripped: %+v", latest.GeneratedPlan)
	}
}

func TestPlanFinalize(t *testing.T) {
	s := openTestStore(t)
	repo := s.PlanRepo()
	ctx := context.Background()

	plan := &SavedPlan{
		SelectedYear:  "1st Year",
		GeneratedPlan: map[string]any{"duration": "60 Days"},
	}
	if err := repo.Save(ctx, plan); err != nil {
		t.Fatalf("save: %v", err)
	}

	if err := repo.Finalize(ctx, plan.PlanID); err != nil {
		t.Fatalf("finalize: %v", err)
	}

	got, err := repo.Get(ctx, plan.PlanID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expected plan")
	}
	if got.Status != PlanStatusActive {
		t.Errorf("status = %q, want %q", got.Status, PlanStatusActive)
	}

	// Finalizing a missing plan reports not found.
	if err := repo.Finalize(ctx, uuid.New()); err == nil {
		t.Fatal("expected error finalizing unknown plan")
	}
}

func TestPlanHistory(t *testing.T) {
	s := openTestStore(t)
	repo := s.PlanRepo()
	ctx := context.Background()

	for i := range 3 {
		plan := &SavedPlan{
			SelectedYear:  "2nd Year",
			GeneratedPlan: map[string]any{"index": float64(i)},
		}
		if err := repo.Save(ctx, plan); err != nil {
			t.Fatalf("save plan %d: %v", i, err)
		}
	}

	history, err := repo.History(ctx, "anonymous", 2)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("expected 2 plans, got %d", len(history))
	}

	all, err := repo.History(ctx, "anonymous", 0)
	if err != nil {
		t.Fatalf("history (all): %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 plans, got %d", len(all))
	}
}
