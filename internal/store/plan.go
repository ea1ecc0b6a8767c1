package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/ravitej/prepmate/ent"
	"github.com/ravitej/prepmate/ent/learningplan"
)

// planRepo implements PlanRepo using the ent client.
type planRepo struct {
	client *ent.Client
}

func (r *planRepo) Save(ctx context.Context, plan *SavedPlan) error {
	if plan.PlanID == uuid.Nil {
		plan.PlanID = uuid.New()
	}
	if plan.UserID == "" {
		plan.UserID = "anonymous"
	}
	if plan.Status == "" {
		plan.Status = PlanStatusDraft
	}

	create := r.client.LearningPlan.Create().
		SetPlanID(plan.PlanID).
		SetUserID(plan.UserID).
		SetSelectedYear(plan.SelectedYear).
		SetGeneratedPlan(plan.GeneratedPlan).
		SetStatus(plan.Status)

	if plan.SyllabusVersion != "" {
		create = create.SetSyllabusVersion(plan.SyllabusVersion)
	}
	if plan.TestResults != nil {
		create = create.SetTestResults(plan.TestResults)
	}

	saved, err := create.Save(ctx)
	if err != nil {
		return fmt.Errorf("save learning plan: %w", err)
	}

	plan.SyllabusVersion = saved.SyllabusVersion
	plan.CreatedAt = saved.CreatedAt
	plan.UpdatedAt = saved.UpdatedAt
	return nil
}

func (r *planRepo) Get(ctx context.Context, planID uuid.UUID) (*SavedPlan, error) {
	p, err := r.client.LearningPlan.Query().
		Where(learningplan.PlanIDEQ(planID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get learning plan %s: %w", planID, err)
	}
	plan := planFromEnt(p)
	return &plan, nil
}

func (r *planRepo) Latest(ctx context.Context, userID string) (*SavedPlan, error) {
	p, err := r.client.LearningPlan.Query().
		Where(learningplan.UserIDEQ(userID)).
		Order(ent.Desc(learningplan.FieldCreatedAt)).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query latest plan: %w", err)
	}
	plan := planFromEnt(p)
	return &plan, nil
}

func (r *planRepo) History(ctx context.Context, userID string, limit int) ([]SavedPlan, error) {
	q := r.client.LearningPlan.Query().
		Where(learningplan.UserIDEQ(userID)).
		Order(ent.Desc(learningplan.FieldCreatedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query plan history: %w", err)
	}

	plans := make([]SavedPlan, len(rows))
	for i, p := range rows {
		plans[i] = planFromEnt(p)
	}
	return plans, nil
}

func (r *planRepo) Finalize(ctx context.Context, planID uuid.UUID) error {
	n, err := r.client.LearningPlan.Update().
		Where(learningplan.PlanIDEQ(planID)).
		SetStatus(PlanStatusActive).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("finalize plan %s: %w", planID, err)
	}
	if n == 0 {
		return fmt.Errorf("finalize plan %s: not found", planID)
	}
	return nil
}

// planFromEnt converts an ent LearningPlan to a store SavedPlan.
func planFromEnt(p *ent.LearningPlan) SavedPlan {
	return SavedPlan{
		PlanID:          p.PlanID,
		UserID:          p.UserID,
		SelectedYear:    p.SelectedYear,
		SyllabusVersion: p.SyllabusVersion,
		TestResults:     p.TestResults,
		GeneratedPlan:   p.GeneratedPlan,
		Status:          p.Status,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}
