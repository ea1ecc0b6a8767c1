package studyplan

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/ravitej/prepmate/internal/llm"
	"github.com/ravitej/prepmate/internal/quizgen"
)

// GenerateOverview produces the quick sample plan shown right after the
// diagnostic, before the student commits to a full plan. On any failure it
// returns a fixed overview so the results page always has something to
// render.
func (a *Assembler) GenerateOverview(ctx context.Context, profile Profile, analysis *quizgen.Analysis) *Overview {
	ctx = llm.WithPurpose(ctx, "plan-overview")

	prompt := buildOverviewPrompt(profile, analysis)
	req := llm.Request{
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: prompt}},
		Model:       llm.ModelLarge,
		Schema:      OverviewSchema,
		MaxTokens:   a.config.MaxTokens,
		Temperature: a.config.Temperature,
	}

	resp, err := a.provider.Generate(ctx, req)
	if err != nil {
		a.logger.Warn("overview generation failed", zap.Error(err))
		return fallbackOverview()
	}

	var overview Overview
	if err := json.Unmarshal(resp.Content, &overview); err != nil {
		a.logger.Warn("overview parse failed", zap.Error(err))
		return fallbackOverview()
	}
	return &overview
}

// fallbackOverview is the deterministic sample plan used when generation
// fails.
func fallbackOverview() *Overview {
	return &Overview{
		PerformanceSummary: OverviewSummary{
			OverallLevel:  "Intermediate",
			FocusSubjects: []string{"Physics"},
		},
		PriorityTopics: []string{"Newton's Laws", "Thermodynamics"},
		SampleStudyPlan: map[string]OverviewWeek{
			"week_1": {Focus: "Basics", Schedule: []OverviewDay{}},
		},
		RevisionStrategy:    "Review daily",
		ExpectedImprovement: "You can do this!",
	}
}
