// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/ravitej/prepmate/ent/learningplan"
)

// LearningPlan is the model entity for the LearningPlan schema.
type LearningPlan struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Stable external identifier for the plan
	PlanID uuid.UUID `json:"plan_id,omitempty"`
	// Owner of the plan; single-user installs use 'anonymous'
	UserID string `json:"user_id,omitempty"`
	// 1st Year or 2nd Year
	SelectedYear string `json:"selected_year,omitempty"`
	// Syllabus the plan was generated against
	SyllabusVersion string `json:"syllabus_version,omitempty"`
	// Diagnostic analysis that seeded the plan, if any
	TestResults map[string]interface{} `json:"test_results,omitempty"`
	// Full plan document as served to clients
	GeneratedPlan map[string]interface{} `json:"generated_plan,omitempty"`
	// draft until finalized, then active
	Status string `json:"status,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LearningPlan) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case learningplan.FieldTestResults, learningplan.FieldGeneratedPlan:
			values[i] = new([]byte)
		case learningplan.FieldID:
			values[i] = new(sql.NullInt64)
		case learningplan.FieldUserID, learningplan.FieldSelectedYear, learningplan.FieldSyllabusVersion, learningplan.FieldStatus:
			values[i] = new(sql.NullString)
		case learningplan.FieldCreatedAt, learningplan.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case learningplan.FieldPlanID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LearningPlan fields.
func (_m *LearningPlan) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case learningplan.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case learningplan.FieldPlanID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field plan_id", values[i])
			} else if value != nil {
				_m.PlanID = *value
			}
		case learningplan.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case learningplan.FieldSelectedYear:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field selected_year", values[i])
			} else if value.Valid {
				_m.SelectedYear = value.String
			}
		case learningplan.FieldSyllabusVersion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field syllabus_version", values[i])
			} else if value.Valid {
				_m.SyllabusVersion = value.String
			}
		case learningplan.FieldTestResults:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field test_results", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TestResults); err != nil {
					return fmt.Errorf("unmarshal field test_results: %w", err)
				}
			}
		case learningplan.FieldGeneratedPlan:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field generated_plan", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.GeneratedPlan); err != nil {
					return fmt.Errorf("unmarshal field generated_plan: %w", err)
				}
			}
		case learningplan.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case learningplan.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case learningplan.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LearningPlan.
// This includes values selected through modifiers, order, etc.
func (_m *LearningPlan) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this LearningPlan.
// Note that you need to call LearningPlan.Unwrap() before calling this method if this LearningPlan
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LearningPlan) Update() *LearningPlanUpdateOne {
	return NewLearningPlanClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LearningPlan entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LearningPlan) Unwrap() *LearningPlan {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LearningPlan is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LearningPlan) String() string {
	var builder strings.Builder
	builder.WriteString("LearningPlan(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("plan_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PlanID))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("selected_year=")
	builder.WriteString(_m.SelectedYear)
	builder.WriteString(", ")
	builder.WriteString("syllabus_version=")
	builder.WriteString(_m.SyllabusVersion)
	builder.WriteString(", ")
	builder.WriteString("test_results=")
	builder.WriteString(fmt.Sprintf("%v", _m.TestResults))
	builder.WriteString(", ")
	builder.WriteString("generated_plan=")
	builder.WriteString(fmt.Sprintf("%v", _m.GeneratedPlan))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// LearningPlans is a parsable slice of LearningPlan.
type LearningPlans []*LearningPlan
