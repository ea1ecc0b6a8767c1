package studyplan

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/ravitej/prepmate/internal/llm"
	"github.com/ravitej/prepmate/internal/quizgen"
)

// Assembler drives the chunked plan-generation pipeline: sequential 30-day
// gateway calls stitched into a month/week/day calendar. Every failure mode
// below the route layer degrades to synthesized fallback days, so the
// assembler always produces a structurally complete plan.
type Assembler struct {
	provider llm.Provider
	config   Config
	logger   *zap.Logger
}

// New creates an Assembler with the given provider and config.
func New(provider llm.Provider, cfg Config, logger *zap.Logger) *Assembler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Assembler{provider: provider, config: cfg, logger: logger}
}

var personalizedThemes = []string{"Foundation & Weaknesses", "Advanced & Mock Tests", "Final Polish"}
var foundationalThemes = []string{"Core syllabus & Foundations", "Advanced coverage & Completion", "Final Polish"}

// GenerateFull produces the full personalized plan from diagnostic results.
// The plan spans 60 or 90 days depending on the student's year, and every
// day is guaranteed exactly one task per subject even when every gateway
// call fails.
func (a *Assembler) GenerateFull(ctx context.Context, profile Profile, analysis *quizgen.Analysis) *StudyPlan {
	ctx = llm.WithPurpose(ctx, "study-plan")

	days := totalDays(profile.Year)
	base := buildPersonalizedBase(profile, analysis, days)
	merged := a.generateChunks(ctx, base, days, profile.Year)
	spec := personalizedFallback(a.config.FallbackDuration)

	actx := newAnalysisContext(analysis)
	var priority []quizgen.TopicRef
	if analysis != nil {
		priority = analysis.WeakTopics
	}

	return &StudyPlan{
		StudentType:        profile.Year,
		PlanDuration:       fmt.Sprintf("%d Days", days),
		PerformanceSummary: fmt.Sprintf("Based on your score of %d, we have prioritized %s.", actx.Score, actx.WeakTopics),
		PriorityTopics:     priority,
		MonthlyPlan:        a.assembleMonths(merged, days, personalizedThemes, spec),
	}
}

// GenerateFoundational produces a from-scratch plan covering the complete
// in-scope syllabus, with no diagnostic input.
func (a *Assembler) GenerateFoundational(ctx context.Context, profile Profile) *StudyPlan {
	ctx = llm.WithPurpose(ctx, "foundation-plan")

	days := totalDays(profile.Year)
	base := buildFoundationalBase(profile, days)
	merged := a.generateChunks(ctx, base, days, profile.Year)
	spec := foundationalFallback(a.config.FallbackDuration)

	return &StudyPlan{
		StudentType:  profile.Year,
		PlanDuration: fmt.Sprintf("%d Days", days),
		PerformanceSummary: fmt.Sprintf(
			"This is a foundational plan covering the complete %s syllabus for %s students (%s).",
			profile.Year, profile.Stream, profile.Board),
		PriorityTopics: nil,
		MonthlyPlan:    a.assembleMonths(merged, days, foundationalThemes, spec),
	}
}

// generateChunks runs the sequential chunk calls. Each chunk receives the
// flattened topic list of all prior chunks as an advisory exclusion
// constraint; the model has no hard guarantee of obeying it, so repetition
// across chunk boundaries is detected after the fact and accepted with a
// warning rather than rejected.
func (a *Assembler) generateChunks(ctx context.Context, base string, days int, year string) map[int][]Task {
	merged := make(map[int][]Task)
	var covered []string
	firstSeen := make(map[string]int) // topic label -> chunk start day

	for start := 1; start <= days; start += a.config.ChunkSize {
		end := min(start+a.config.ChunkSize-1, days)
		chunk := a.generateChunk(ctx, buildChunkPrompt(base, start, end, covered, year), start, end)

		var repeats []string
		for day := start; day <= end; day++ {
			cd, ok := chunk[fmt.Sprintf("day_%d", day)]
			if !ok {
				continue
			}
			merged[day] = cd.Tasks
			for _, t := range cd.Tasks {
				if t.Topic == "" {
					continue
				}
				label := fmt.Sprintf("%s (%s)", t.Topic, t.Subject)
				if first, dup := firstSeen[label]; dup && first != start {
					repeats = append(repeats, label)
				} else if !dup {
					firstSeen[label] = start
				}
				covered = append(covered, label)
			}
		}

		if len(repeats) > 0 {
			a.logger.Warn("topics repeated across chunk boundary",
				zap.Int("chunkStart", start),
				zap.Strings("topics", repeats))
		}
	}

	return merged
}

// generateChunk performs one gateway call. A failed chunk contributes an
// empty day map; the missing days are synthesized during reshaping.
func (a *Assembler) generateChunk(ctx context.Context, prompt string, start, end int) PlanChunk {
	req := llm.Request{
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: prompt}},
		Model:       llm.ModelLarge,
		Schema:      ChunkSchema,
		MaxTokens:   a.config.MaxTokens,
		Temperature: a.config.Temperature,
	}

	resp, err := a.provider.Generate(ctx, req)
	if err != nil {
		a.logger.Warn("plan chunk generation failed",
			zap.Int("start", start),
			zap.Int("end", end),
			zap.Error(err))
		return PlanChunk{}
	}

	var out struct {
		Days PlanChunk `json:"days"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		a.logger.Warn("plan chunk parse failed",
			zap.Int("start", start),
			zap.Int("end", end),
			zap.Error(err))
		return PlanChunk{}
	}
	if out.Days == nil {
		return PlanChunk{}
	}
	return out.Days
}

// assembleMonths partitions the merged day map into fixed 30-day months.
func (a *Assembler) assembleMonths(merged map[int][]Task, days int, themes []string, spec fallbackSpec) map[string]Month {
	months := make(map[string]Month)
	for m := 0; m*30 < days; m++ {
		start := m*30 + 1
		end := min(start+29, days)
		theme := themes[min(m, len(themes)-1)]
		months[fmt.Sprintf("month_%d", m+1)] = Month{
			Theme: theme,
			Weeks: a.reshape(merged, start, end, spec),
		}
	}
	return months
}

// reshape groups one month's days into weeks of 7, synthesizing omitted days
// and repairing partial ones so every day ends up with exactly one task per
// subject. The final week holds the remainder.
func (a *Assembler) reshape(merged map[int][]Task, start, end int, spec fallbackSpec) []Week {
	var weeks []Week
	var current []Day
	weekNum := 1

	for i := start; i <= end; i++ {
		current = append(current, repairDay(i, merged[i], spec))

		if len(current) == 7 || i == end {
			weeks = append(weeks, Week{Week: weekNum, Days: current})
			weekNum++
			current = nil
		}
	}
	return weeks
}
