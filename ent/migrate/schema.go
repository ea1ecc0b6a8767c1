// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// LearningPlansColumns holds the columns for the "learning_plans" table.
	LearningPlansColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "plan_id", Type: field.TypeUUID, Unique: true},
		{Name: "user_id", Type: field.TypeString, Default: "anonymous"},
		{Name: "selected_year", Type: field.TypeString},
		{Name: "syllabus_version", Type: field.TypeString, Default: "eamcet-2025"},
		{Name: "test_results", Type: field.TypeJSON, Nullable: true},
		{Name: "generated_plan", Type: field.TypeJSON},
		{Name: "status", Type: field.TypeString, Default: "draft"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// LearningPlansTable holds the schema information for the "learning_plans" table.
	LearningPlansTable = &schema.Table{
		Name:       "learning_plans",
		Columns:    LearningPlansColumns,
		PrimaryKey: []*schema.Column{LearningPlansColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "learningplan_user_id",
				Unique:  false,
				Columns: []*schema.Column{LearningPlansColumns[2]},
			},
			{
				Name:    "learningplan_status",
				Unique:  false,
				Columns: []*schema.Column{LearningPlansColumns[7]},
			},
			{
				Name:    "learningplan_created_at",
				Unique:  false,
				Columns: []*schema.Column{LearningPlansColumns[8]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		LlmRequestEventsTable,
		LearningPlansTable,
	}
)

func init() {
}
