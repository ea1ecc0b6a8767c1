package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// LearningPlan persists a generated study plan so students can resume or
// review it later without regenerating.
type LearningPlan struct {
	ent.Schema
}

func (LearningPlan) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("plan_id", uuid.UUID{}).
			Default(uuid.New).
			Unique().
			Immutable().
			Comment("Stable external identifier for the plan"),
		field.String("user_id").
			Default("anonymous").
			Comment("Owner of the plan; single-user installs use 'anonymous'"),
		field.String("selected_year").
			Comment("1st Year or 2nd Year"),
		field.String("syllabus_version").
			Default("eamcet-2025").
			Comment("Syllabus the plan was generated against"),
		field.JSON("test_results", map[string]any{}).
			Optional().
			Comment("Diagnostic analysis that seeded the plan, if any"),
		field.JSON("generated_plan", map[string]any{}).
			Comment("Full plan document as served to clients"),
		field.String("status").
			Default("draft").
			Comment("draft until finalized, then active"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (LearningPlan) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("status"),
		index.Fields("created_at"),
	}
}
