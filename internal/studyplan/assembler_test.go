package studyplan

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/ravitej/prepmate/internal/llm"
	"github.com/ravitej/prepmate/internal/quizgen"
	"github.com/ravitej/prepmate/internal/syllabus"
)

func secondYearProfile() Profile {
	return Profile{Year: "2nd Year", Stream: "MPC", Board: "TS (Telangana)"}
}

// chunkJSON builds a canned chunk response covering days [start, end], one
// distinct topic set per day.
func chunkJSON(start, end int) json.RawMessage {
	days := make(map[string]chunkDay)
	for i := start; i <= end; i++ {
		days[fmt.Sprintf("day_%d", i)] = chunkDay{Tasks: []Task{
			{Subject: "Mathematics", Topic: fmt.Sprintf("Maths Topic %d", i), Type: "Learning", Duration: "45 mins"},
			{Subject: "Physics", Topic: fmt.Sprintf("Physics Topic %d", i), Type: "Practice", Duration: "45 mins"},
			{Subject: "Chemistry", Topic: fmt.Sprintf("Chemistry Topic %d", i), Type: "Revision", Duration: "45 mins"},
		}}
	}
	b, _ := json.Marshal(map[string]any{"days": days})
	return b
}

// collectDays flattens a plan's months back into a day-indexed map.
func collectDays(t *testing.T, plan *StudyPlan) map[int]Day {
	t.Helper()
	out := make(map[int]Day)
	for _, month := range plan.MonthlyPlan {
		for _, week := range month.Weeks {
			for _, day := range week.Days {
				if _, dup := out[day.Day]; dup {
					t.Fatalf("day %d appears twice", day.Day)
				}
				out[day.Day] = day
			}
		}
	}
	return out
}

// assertDayInvariant checks exactly one task per subject.
func assertDayInvariant(t *testing.T, day Day) {
	t.Helper()
	if len(day.Tasks) != 3 {
		t.Fatalf("day %d has %d tasks, want 3", day.Day, len(day.Tasks))
	}
	seen := make(map[string]bool)
	for _, task := range day.Tasks {
		if seen[task.Subject] {
			t.Fatalf("day %d has duplicate subject %s", day.Day, task.Subject)
		}
		seen[task.Subject] = true
	}
	for _, subject := range syllabus.Subjects() {
		if !seen[subject] {
			t.Fatalf("day %d missing subject %s", day.Day, subject)
		}
	}
}

func TestGenerateFull_AllChunksFail(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
	)
	asm := New(mock, DefaultConfig(), nil)

	plan := asm.GenerateFull(context.Background(), secondYearProfile(), nil)

	if plan.PlanDuration != "60 Days" {
		t.Errorf("plan_duration = %q, want 60 Days", plan.PlanDuration)
	}
	if len(plan.MonthlyPlan) != 2 {
		t.Fatalf("expected 2 months, got %d", len(plan.MonthlyPlan))
	}

	days := collectDays(t, plan)
	if len(days) != 60 {
		t.Fatalf("expected 60 days, got %d", len(days))
	}
	for i := 1; i <= 60; i++ {
		day, ok := days[i]
		if !ok {
			t.Fatalf("day %d missing", i)
		}
		assertDayInvariant(t, day)
		for _, task := range day.Tasks {
			if task.Topic != "Revision" || task.Type != "Practice" || task.Duration != "45 mins" {
				t.Fatalf("day %d fallback task = %+v", i, task)
			}
		}
	}
}

func TestGenerateFull_FirstYearGetsNinetyDays(t *testing.T) {
	mock := llm.NewMockProvider() // every call fails, structure must hold
	asm := New(mock, DefaultConfig(), nil)

	plan := asm.GenerateFull(context.Background(), Profile{Year: "1st Year", Stream: "MPC"}, nil)

	if plan.PlanDuration != "90 Days" {
		t.Errorf("plan_duration = %q, want 90 Days", plan.PlanDuration)
	}
	if _, ok := plan.MonthlyPlan["month_3"]; !ok {
		t.Fatal("expected month_3 for a 90-day plan")
	}
	days := collectDays(t, plan)
	if len(days) != 90 {
		t.Fatalf("expected 90 days, got %d", len(days))
	}
}

func TestGenerateFull_ChunksStitched(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: chunkJSON(1, 30)},
		llm.MockResponse{Content: chunkJSON(31, 60)},
	)
	asm := New(mock, DefaultConfig(), nil)

	plan := asm.GenerateFull(context.Background(), secondYearProfile(), nil)

	days := collectDays(t, plan)
	if len(days) != 60 {
		t.Fatalf("expected 60 days, got %d", len(days))
	}
	if days[1].Tasks[0].Topic != "Maths Topic 1" {
		t.Errorf("day 1 topic = %q", days[1].Tasks[0].Topic)
	}
	if days[60].Tasks[2].Topic != "Chemistry Topic 60" {
		t.Errorf("day 60 topic = %q", days[60].Tasks[2].Topic)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 sequential chunk calls, got %d", mock.CallCount())
	}
}

func TestGenerateFull_SecondChunkExcludesFirstChunkTopics(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: chunkJSON(1, 30)},
		llm.MockResponse{Content: chunkJSON(31, 60)},
	)
	asm := New(mock, DefaultConfig(), nil)

	asm.GenerateFull(context.Background(), secondYearProfile(), nil)

	first := mock.Calls[0].Messages[0].Content
	second := mock.Calls[1].Messages[0].Content

	if strings.Contains(first, "ALREADY COVERED TOPICS") {
		t.Error("chunk 1 must have no exclusion history")
	}
	if !strings.Contains(second, "ALREADY COVERED TOPICS (DO NOT REPEAT THESE)") {
		t.Error("chunk 2 must carry the exclusion clause")
	}
	if !strings.Contains(second, "Maths Topic 1 (Mathematics)") {
		t.Error("chunk 2 exclusion list missing chunk 1 topics")
	}
	if !strings.Contains(second, "GENERATE DAYS 31 TO 60 ONLY") {
		t.Error("chunk 2 missing day window")
	}
}

func TestGenerateFull_MissingDaysSynthesized(t *testing.T) {
	// Chunk 1 covers only days 1-10; chunk 2 fails entirely.
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: chunkJSON(1, 10)},
		llm.MockResponse{Err: &llm.ErrRateLimit{Err: errors.New("429")}},
	)
	asm := New(mock, DefaultConfig(), nil)

	plan := asm.GenerateFull(context.Background(), secondYearProfile(), nil)

	days := collectDays(t, plan)
	if len(days) != 60 {
		t.Fatalf("expected 60 days, got %d", len(days))
	}
	if days[5].Tasks[0].Topic != "Maths Topic 5" {
		t.Errorf("generated day 5 overwritten: %+v", days[5].Tasks[0])
	}
	for _, i := range []int{11, 30, 31, 60} {
		assertDayInvariant(t, days[i])
		if days[i].Tasks[0].Topic != "Revision" {
			t.Errorf("day %d should be a fallback day, got topic %q", i, days[i].Tasks[0].Topic)
		}
	}
}

func TestGenerateFull_PartialDaysRepaired(t *testing.T) {
	// Day 1 arrives with two tasks, one naming an unknown subject; day 2
	// arrives with a single task missing type and duration.
	chunk, _ := json.Marshal(map[string]any{"days": map[string]chunkDay{
		"day_1": {Tasks: []Task{
			{Subject: "Mathematics", Topic: "Parabola", Type: "Learning", Duration: "45 mins"},
			{Subject: "Biology", Topic: "Cell Structure", Type: "Learning", Duration: "45 mins"},
		}},
		"day_2": {Tasks: []Task{
			{Subject: "Physics", Topic: "Waves"},
		}},
	}})
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: chunk},
		llm.MockResponse{Err: &llm.ErrRateLimit{Err: errors.New("429")}},
	)
	asm := New(mock, DefaultConfig(), nil)

	plan := asm.GenerateFull(context.Background(), secondYearProfile(), nil)
	days := collectDays(t, plan)

	assertDayInvariant(t, days[1])
	if days[1].Tasks[0].Topic != "Parabola" {
		t.Errorf("day 1 maths task = %+v, want Parabola kept", days[1].Tasks[0])
	}
	for _, task := range days[1].Tasks {
		if task.Topic == "Cell Structure" {
			t.Fatalf("unknown-subject task survived: %+v", task)
		}
	}
	if days[1].Tasks[1].Topic != "Revision" || days[1].Tasks[2].Topic != "Revision" {
		t.Errorf("day 1 missing subjects not synthesized: %+v", days[1].Tasks)
	}

	assertDayInvariant(t, days[2])
	physics := days[2].Tasks[1]
	if physics.Topic != "Waves" {
		t.Errorf("day 2 physics task = %+v, want Waves kept", physics)
	}
	if physics.Type != "Practice" || physics.Duration != "45 mins" {
		t.Errorf("day 2 physics defaults not filled: %+v", physics)
	}
}

func TestGenerateFull_WeekShape(t *testing.T) {
	mock := llm.NewMockProvider()
	asm := New(mock, DefaultConfig(), nil)

	plan := asm.GenerateFull(context.Background(), secondYearProfile(), nil)

	month := plan.MonthlyPlan["month_1"]
	if month.Theme != "Foundation & Weaknesses" {
		t.Errorf("month_1 theme = %q", month.Theme)
	}
	if len(month.Weeks) != 5 {
		t.Fatalf("expected 5 weeks in a 30-day month, got %d", len(month.Weeks))
	}
	for i, week := range month.Weeks {
		want := 7
		if i == 4 {
			want = 2 // 30 = 4*7 + 2
		}
		if len(week.Days) != want {
			t.Errorf("week %d has %d days, want %d", week.Week, len(week.Days), want)
		}
	}
	if plan.MonthlyPlan["month_2"].Theme != "Advanced & Mock Tests" {
		t.Errorf("month_2 theme = %q", plan.MonthlyPlan["month_2"].Theme)
	}
}

func TestGenerateFull_UsesAnalysis(t *testing.T) {
	mock := llm.NewMockProvider()
	asm := New(mock, DefaultConfig(), nil)

	analysis := &quizgen.Analysis{
		Score: 7,
		SubjectStats: map[string]quizgen.SubjectStat{
			"Mathematics": {Score: 3, Total: 5, Accuracy: "60%"},
		},
		WeakTopics: []quizgen.TopicRef{{Topic: "Parabola", Subject: "Mathematics"}},
	}
	plan := asm.GenerateFull(context.Background(), secondYearProfile(), analysis)

	prompt := mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "Score: 7/15") {
		t.Error("prompt missing overall score")
	}
	if !strings.Contains(prompt, "Weak Areas (Focus Required): Parabola (Mathematics)") {
		t.Error("prompt missing weak areas")
	}
	if len(plan.PriorityTopics) != 1 || plan.PriorityTopics[0].Topic != "Parabola" {
		t.Errorf("priority topics = %+v", plan.PriorityTopics)
	}
	if !strings.Contains(plan.PerformanceSummary, "score of 7") {
		t.Errorf("performance summary = %q", plan.PerformanceSummary)
	}
}

func TestGenerateFoundational(t *testing.T) {
	mock := llm.NewMockProvider()
	asm := New(mock, DefaultConfig(), nil)

	plan := asm.GenerateFoundational(context.Background(), secondYearProfile())

	prompt := mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "SYLLABUS TO COVER COMPLETELY") {
		t.Error("foundational prompt missing syllabus block")
	}
	if !strings.Contains(prompt, "Definite Integrals") {
		t.Error("foundational prompt missing 2nd year syllabus content")
	}

	days := collectDays(t, plan)
	for _, task := range days[1].Tasks {
		if task.Type != "Theory" {
			t.Errorf("foundational fallback type = %q, want Theory", task.Type)
		}
	}
	if days[1].Tasks[0].Topic != "Intro to Syllabus" {
		t.Errorf("maths fallback topic = %q", days[1].Tasks[0].Topic)
	}
	if plan.MonthlyPlan["month_1"].Theme != "Core syllabus & Foundations" {
		t.Errorf("month_1 theme = %q", plan.MonthlyPlan["month_1"].Theme)
	}
}

func TestGenerateOverview(t *testing.T) {
	overviewJSON := `{
		"performance_summary": {"overall_level": "Intermediate", "focus_subjects": ["Chemistry"]},
		"priority_topics": ["Electrochemistry", "Circle"],
		"sample_study_plan": {
			"week_1": {"focus": "Weak areas", "schedule": [{"day": "Day 1", "task": "Chemistry: Electrochemistry (Theory)"}]}
		},
		"revision_strategy": "Nightly formula review",
		"expected_improvement": "Plus 20 percent in two weeks"
	}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(overviewJSON)})
	asm := New(mock, DefaultConfig(), nil)

	overview := asm.GenerateOverview(context.Background(), secondYearProfile(), nil)
	if overview.PerformanceSummary.OverallLevel != "Intermediate" {
		t.Errorf("overall level = %q", overview.PerformanceSummary.OverallLevel)
	}
	if len(overview.SampleStudyPlan["week_1"].Schedule) != 1 {
		t.Errorf("unexpected sample plan: %+v", overview.SampleStudyPlan)
	}
}

func TestGenerateOverview_FallbackOnFailure(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
	)
	asm := New(mock, DefaultConfig(), nil)

	overview := asm.GenerateOverview(context.Background(), secondYearProfile(), nil)
	if overview == nil {
		t.Fatal("overview must never be nil")
	}
	if overview.ExpectedImprovement != "You can do this!" {
		t.Errorf("expected deterministic fallback, got %+v", overview)
	}
	if _, ok := overview.SampleStudyPlan["week_1"]; !ok {
		t.Error("fallback overview missing week_1")
	}
}

func TestSkeleton(t *testing.T) {
	plan := Skeleton("2nd Year")
	if plan.Status != "emergency_fallback" {
		t.Errorf("status = %q", plan.Status)
	}
	if plan.PlanDuration != "60 Days" {
		t.Errorf("plan_duration = %q", plan.PlanDuration)
	}
	for key, month := range plan.MonthlyPlan {
		if month.Weeks == nil || len(month.Weeks) != 0 {
			t.Errorf("%s weeks = %+v, want empty non-nil", key, month.Weeks)
		}
	}

	first := Skeleton("1st Year")
	if len(first.MonthlyPlan) != 3 {
		t.Errorf("1st year skeleton months = %d, want 3", len(first.MonthlyPlan))
	}
}
