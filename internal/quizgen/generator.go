package quizgen

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ravitej/prepmate/internal/llm"
	"github.com/ravitej/prepmate/internal/syllabus"
)

// Generator produces diagnostic and practice quizzes using an LLM provider.
type Generator struct {
	provider llm.Provider
	config   Config
	logger   *zap.Logger
}

// New creates a Generator with the given provider and config.
func New(provider llm.Provider, cfg Config, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{provider: provider, config: cfg, logger: logger}
}

// questionsOutput is the raw LLM response envelope.
type questionsOutput struct {
	Questions []Question `json:"questions"`
}

// practiceOutput is the raw LLM response envelope for practice quizzes.
type practiceOutput struct {
	Questions []PracticeQuestion `json:"questions"`
}

// GenerateDiagnostic builds the diagnostic quiz: three concurrent per-subject
// calls, 5 questions each. A failed subject contributes zero questions rather
// than failing the quiz; questions are re-numbered 1..N in subject order and
// the result is capped at MaxQuestions. history lists topics used in past
// quizzes to exclude.
func (g *Generator) GenerateDiagnostic(ctx context.Context, stream syllabus.Stream, year syllabus.Year, history []string) ([]Question, error) {
	ctx = llm.WithPurpose(ctx, "diagnostic-quiz")

	subjects := syllabus.Subjects()
	results := make([][]Question, len(subjects))

	grp, gctx := errgroup.WithContext(ctx)
	for i, subject := range subjects {
		grp.Go(func() error {
			questions, err := g.generateForSubject(gctx, stream, year, subject, history)
			if err != nil {
				// Empty on failure; the quiz proceeds with the other subjects.
				g.logger.Warn("subject quiz generation failed",
					zap.String("subject", subject),
					zap.Error(err))
				return nil
			}
			results[i] = questions
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}

	var final []Question
	for _, questions := range results {
		final = append(final, questions...)
	}
	for i := range final {
		final[i].ID = i + 1
	}
	if len(final) > g.config.MaxQuestions {
		final = final[:g.config.MaxQuestions]
	}

	g.logger.Info("diagnostic quiz assembled",
		zap.String("year", string(year)),
		zap.Int("questions", len(final)))
	return final, nil
}

func (g *Generator) generateForSubject(ctx context.Context, stream syllabus.Stream, year syllabus.Year, subject string, history []string) ([]Question, error) {
	prompt := buildDiagnosticPrompt(stream, year, subject, g.config.QuestionsPerSubject, history, g.config.MaxHistoryTopics)

	req := llm.Request{
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: prompt}},
		Model:       llm.ModelSmall,
		Schema:      DiagnosticSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("generate %s questions: %w", subject, err)
	}

	var out questionsOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse %s questions: %w", subject, err)
	}
	return out.Questions, nil
}

// Analyze grades submitted diagnostic answers. Unlike quiz generation there
// is no partial fallback: a grading failure is returned to the caller.
func (g *Generator) Analyze(ctx context.Context, answers []AnswerRecord) (*Analysis, error) {
	ctx = llm.WithPurpose(ctx, "quiz-analysis")

	prompt := buildAnalysisPrompt(answers, g.config.MaxQuestions)

	req := llm.Request{
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: prompt}},
		Model:       llm.ModelSmall,
		Schema:      AnalysisSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("analyze quiz: %w", err)
	}

	var analysis Analysis
	if err := json.Unmarshal(resp.Content, &analysis); err != nil {
		return nil, fmt.Errorf("parse analysis: %w", err)
	}
	return &analysis, nil
}

// GenerateTopicQuiz produces a practice quiz for one topic, answer key
// included. count <= 0 uses the configured default. Uses the large model:
// answer keys and explanations need the accuracy headroom.
func (g *Generator) GenerateTopicQuiz(ctx context.Context, topic, subject string, count int) ([]PracticeQuestion, error) {
	ctx = llm.WithPurpose(ctx, "practice-quiz")

	if count <= 0 {
		count = g.config.PracticeCount
	}
	prompt := buildPracticePrompt(topic, subject, count)

	req := llm.Request{
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: prompt}},
		Model:       llm.ModelLarge,
		Schema:      PracticeSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("generate topic quiz: %w", err)
	}

	var out practiceOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse topic quiz: %w", err)
	}
	return out.Questions, nil
}
