// Code generated by ent, DO NOT EDIT.

package learningplan

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/ravitej/prepmate/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldLTE(FieldID, id))
}

// PlanID applies equality check predicate on the "plan_id" field. It's identical to PlanIDEQ.
func PlanID(v uuid.UUID) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldEQ(FieldPlanID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldEQ(FieldUserID, v))
}

// SelectedYear applies equality check predicate on the "selected_year" field. It's identical to SelectedYearEQ.
func SelectedYear(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldEQ(FieldSelectedYear, v))
}

// SyllabusVersion applies equality check predicate on the "syllabus_version" field. It's identical to SyllabusVersionEQ.
func SyllabusVersion(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldEQ(FieldSyllabusVersion, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldEQ(FieldStatus, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldEQ(FieldUpdatedAt, v))
}

// PlanIDEQ applies the EQ predicate on the "plan_id" field.
func PlanIDEQ(v uuid.UUID) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldEQ(FieldPlanID, v))
}

// PlanIDNEQ applies the NEQ predicate on the "plan_id" field.
func PlanIDNEQ(v uuid.UUID) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldNEQ(FieldPlanID, v))
}

// PlanIDIn applies the In predicate on the "plan_id" field.
func PlanIDIn(vs ...uuid.UUID) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldIn(FieldPlanID, vs...))
}

// PlanIDNotIn applies the NotIn predicate on the "plan_id" field.
func PlanIDNotIn(vs ...uuid.UUID) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldNotIn(FieldPlanID, vs...))
}

// PlanIDGT applies the GT predicate on the "plan_id" field.
func PlanIDGT(v uuid.UUID) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldGT(FieldPlanID, v))
}

// PlanIDGTE applies the GTE predicate on the "plan_id" field.
func PlanIDGTE(v uuid.UUID) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldGTE(FieldPlanID, v))
}

// PlanIDLT applies the LT predicate on the "plan_id" field.
func PlanIDLT(v uuid.UUID) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldLT(FieldPlanID, v))
}

// PlanIDLTE applies the LTE predicate on the "plan_id" field.
func PlanIDLTE(v uuid.UUID) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldLTE(FieldPlanID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldContainsFold(FieldUserID, v))
}

// SelectedYearEQ applies the EQ predicate on the "selected_year" field.
func SelectedYearEQ(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldEQ(FieldSelectedYear, v))
}

// SelectedYearNEQ applies the NEQ predicate on the "selected_year" field.
func SelectedYearNEQ(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldNEQ(FieldSelectedYear, v))
}

// SelectedYearIn applies the In predicate on the "selected_year" field.
func SelectedYearIn(vs ...string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldIn(FieldSelectedYear, vs...))
}

// SelectedYearNotIn applies the NotIn predicate on the "selected_year" field.
func SelectedYearNotIn(vs ...string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldNotIn(FieldSelectedYear, vs...))
}

// SelectedYearGT applies the GT predicate on the "selected_year" field.
func SelectedYearGT(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldGT(FieldSelectedYear, v))
}

// SelectedYearGTE applies the GTE predicate on the "selected_year" field.
func SelectedYearGTE(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldGTE(FieldSelectedYear, v))
}

// SelectedYearLT applies the LT predicate on the "selected_year" field.
func SelectedYearLT(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldLT(FieldSelectedYear, v))
}

// SelectedYearLTE applies the LTE predicate on the "selected_year" field.
func SelectedYearLTE(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldLTE(FieldSelectedYear, v))
}

// SelectedYearContains applies the Contains predicate on the "selected_year" field.
func SelectedYearContains(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldContains(FieldSelectedYear, v))
}

// SelectedYearHasPrefix applies the HasPrefix predicate on the "selected_year" field.
func SelectedYearHasPrefix(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldHasPrefix(FieldSelectedYear, v))
}

// SelectedYearHasSuffix applies the HasSuffix predicate on the "selected_year" field.
func SelectedYearHasSuffix(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldHasSuffix(FieldSelectedYear, v))
}

// SelectedYearEqualFold applies the EqualFold predicate on the "selected_year" field.
func SelectedYearEqualFold(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldEqualFold(FieldSelectedYear, v))
}

// SelectedYearContainsFold applies the ContainsFold predicate on the "selected_year" field.
func SelectedYearContainsFold(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldContainsFold(FieldSelectedYear, v))
}

// SyllabusVersionEQ applies the EQ predicate on the "syllabus_version" field.
func SyllabusVersionEQ(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldEQ(FieldSyllabusVersion, v))
}

// SyllabusVersionNEQ applies the NEQ predicate on the "syllabus_version" field.
func SyllabusVersionNEQ(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldNEQ(FieldSyllabusVersion, v))
}

// SyllabusVersionIn applies the In predicate on the "syllabus_version" field.
func SyllabusVersionIn(vs ...string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldIn(FieldSyllabusVersion, vs...))
}

// SyllabusVersionNotIn applies the NotIn predicate on the "syllabus_version" field.
func SyllabusVersionNotIn(vs ...string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldNotIn(FieldSyllabusVersion, vs...))
}

// SyllabusVersionGT applies the GT predicate on the "syllabus_version" field.
func SyllabusVersionGT(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldGT(FieldSyllabusVersion, v))
}

// SyllabusVersionGTE applies the GTE predicate on the "syllabus_version" field.
func SyllabusVersionGTE(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldGTE(FieldSyllabusVersion, v))
}

// SyllabusVersionLT applies the LT predicate on the "syllabus_version" field.
func SyllabusVersionLT(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldLT(FieldSyllabusVersion, v))
}

// SyllabusVersionLTE applies the LTE predicate on the "syllabus_version" field.
func SyllabusVersionLTE(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldLTE(FieldSyllabusVersion, v))
}

// SyllabusVersionContains applies the Contains predicate on the "syllabus_version" field.
func SyllabusVersionContains(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldContains(FieldSyllabusVersion, v))
}

// SyllabusVersionHasPrefix applies the HasPrefix predicate on the "syllabus_version" field.
func SyllabusVersionHasPrefix(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldHasPrefix(FieldSyllabusVersion, v))
}

// SyllabusVersionHasSuffix applies the HasSuffix predicate on the "syllabus_version" field.
func SyllabusVersionHasSuffix(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldHasSuffix(FieldSyllabusVersion, v))
}

// SyllabusVersionEqualFold applies the EqualFold predicate on the "syllabus_version" field.
func SyllabusVersionEqualFold(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldEqualFold(FieldSyllabusVersion, v))
}

// SyllabusVersionContainsFold applies the ContainsFold predicate on the "syllabus_version" field.
func SyllabusVersionContainsFold(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldContainsFold(FieldSyllabusVersion, v))
}

// TestResultsIsNil applies the IsNil predicate on the "test_results" field.
func TestResultsIsNil() predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldIsNull(FieldTestResults))
}

// TestResultsNotNil applies the NotNil predicate on the "test_results" field.
func TestResultsNotNil() predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldNotNull(FieldTestResults))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldContainsFold(FieldStatus, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LearningPlan) predicate.LearningPlan {
	return predicate.LearningPlan(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LearningPlan) predicate.LearningPlan {
	return predicate.LearningPlan(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LearningPlan) predicate.LearningPlan {
	return predicate.LearningPlan(sql.NotPredicates(p))
}
