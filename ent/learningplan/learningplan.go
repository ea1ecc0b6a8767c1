// Code generated by ent, DO NOT EDIT.

package learningplan

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the learningplan type in the database.
	Label = "learning_plan"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPlanID holds the string denoting the plan_id field in the database.
	FieldPlanID = "plan_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldSelectedYear holds the string denoting the selected_year field in the database.
	FieldSelectedYear = "selected_year"
	// FieldSyllabusVersion holds the string denoting the syllabus_version field in the database.
	FieldSyllabusVersion = "syllabus_version"
	// FieldTestResults holds the string denoting the test_results field in the database.
	FieldTestResults = "test_results"
	// FieldGeneratedPlan holds the string denoting the generated_plan field in the database.
	FieldGeneratedPlan = "generated_plan"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the learningplan in the database.
	Table = "learning_plans"
)

// Columns holds all SQL columns for learningplan fields.
var Columns = []string{
	FieldID,
	FieldPlanID,
	FieldUserID,
	FieldSelectedYear,
	FieldSyllabusVersion,
	FieldTestResults,
	FieldGeneratedPlan,
	FieldStatus,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultPlanID holds the default value on creation for the "plan_id" field.
	DefaultPlanID func() uuid.UUID
	// DefaultUserID holds the default value on creation for the "user_id" field.
	DefaultUserID string
	// DefaultSyllabusVersion holds the default value on creation for the "syllabus_version" field.
	DefaultSyllabusVersion string
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the LearningPlan queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPlanID orders the results by the plan_id field.
func ByPlanID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlanID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// BySelectedYear orders the results by the selected_year field.
func BySelectedYear(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSelectedYear, opts...).ToFunc()
}

// BySyllabusVersion orders the results by the syllabus_version field.
func BySyllabusVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSyllabusVersion, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
