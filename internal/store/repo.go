package store

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit   int       // max results (0 = unlimited)
	After   int64     // sequence > After
	Before  int64     // sequence < Before
	From    time.Time // timestamp >= From
	To      time.Time // timestamp <= To
	Purpose string    // exact purpose match ("" = all)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEventRecord is a stored LLM request event as read back from the
// database.
type LLMRequestEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsageStat aggregates token usage for one purpose label.
type LLMUsageStat struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates token usage for one model ID.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error)

	// GetLLMEvent returns a single event by ID, or nil if not found.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEventRecord, error)

	// LLMUsageByPurpose aggregates token usage grouped by purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStat, error)

	// LLMUsageByModel aggregates token usage grouped by model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}

// SavedPlan is a persisted study plan together with its provenance.
type SavedPlan struct {
	PlanID          uuid.UUID
	UserID          string
	SelectedYear    string
	SyllabusVersion string
	TestResults     map[string]any
	GeneratedPlan   map[string]any
	Status          string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Plan status values.
const (
	PlanStatusDraft  = "draft"
	PlanStatusActive = "active"
)

// PlanRepo manages persisted study plans.
type PlanRepo interface {
	// Save stores a new plan and fills in PlanID and timestamps.
	Save(ctx context.Context, plan *SavedPlan) error

	// Get returns the plan with the given external ID, or nil if not found.
	Get(ctx context.Context, planID uuid.UUID) (*SavedPlan, error)

	// Latest returns the most recent plan for a user, or nil if none exist.
	Latest(ctx context.Context, userID string) (*SavedPlan, error)

	// History returns a user's plans, newest first, up to limit (0 = all).
	History(ctx context.Context, userID string, limit int) ([]SavedPlan, error)

	// Finalize marks the plan active. Returns nil even if already active.
	Finalize(ctx context.Context, planID uuid.UUID) error
}
