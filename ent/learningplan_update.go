// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ravitej/prepmate/ent/learningplan"
	"github.com/ravitej/prepmate/ent/predicate"
)

// LearningPlanUpdate is the builder for updating LearningPlan entities.
type LearningPlanUpdate struct {
	config
	hooks    []Hook
	mutation *LearningPlanMutation
}

// Where appends a list predicates to the LearningPlanUpdate builder.
func (_u *LearningPlanUpdate) Where(ps ...predicate.LearningPlan) *LearningPlanUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *LearningPlanUpdate) SetUserID(v string) *LearningPlanUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *LearningPlanUpdate) SetNillableUserID(v *string) *LearningPlanUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSelectedYear sets the "selected_year" field.
func (_u *LearningPlanUpdate) SetSelectedYear(v string) *LearningPlanUpdate {
	_u.mutation.SetSelectedYear(v)
	return _u
}

// SetNillableSelectedYear sets the "selected_year" field if the given value is not nil.
func (_u *LearningPlanUpdate) SetNillableSelectedYear(v *string) *LearningPlanUpdate {
	if v != nil {
		_u.SetSelectedYear(*v)
	}
	return _u
}

// SetSyllabusVersion sets the "syllabus_version" field.
func (_u *LearningPlanUpdate) SetSyllabusVersion(v string) *LearningPlanUpdate {
	_u.mutation.SetSyllabusVersion(v)
	return _u
}

// SetNillableSyllabusVersion sets the "syllabus_version" field if the given value is not nil.
func (_u *LearningPlanUpdate) SetNillableSyllabusVersion(v *string) *LearningPlanUpdate {
	if v != nil {
		_u.SetSyllabusVersion(*v)
	}
	return _u
}

// SetTestResults sets the "test_results" field.
func (_u *LearningPlanUpdate) SetTestResults(v map[string]interface{}) *LearningPlanUpdate {
	_u.mutation.SetTestResults(v)
	return _u
}

// ClearTestResults clears the value of the "test_results" field.
func (_u *LearningPlanUpdate) ClearTestResults() *LearningPlanUpdate {
	_u.mutation.ClearTestResults()
	return _u
}

// SetGeneratedPlan sets the "generated_plan" field.
func (_u *LearningPlanUpdate) SetGeneratedPlan(v map[string]interface{}) *LearningPlanUpdate {
	_u.mutation.SetGeneratedPlan(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *LearningPlanUpdate) SetStatus(v string) *LearningPlanUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *LearningPlanUpdate) SetNillableStatus(v *string) *LearningPlanUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LearningPlanUpdate) SetUpdatedAt(v time.Time) *LearningPlanUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the LearningPlanMutation object of the builder.
func (_u *LearningPlanUpdate) Mutation() *LearningPlanMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LearningPlanUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearningPlanUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LearningPlanUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearningPlanUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LearningPlanUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := learningplan.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *LearningPlanUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(learningplan.Table, learningplan.Columns, sqlgraph.NewFieldSpec(learningplan.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(learningplan.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SelectedYear(); ok {
		_spec.SetField(learningplan.FieldSelectedYear, field.TypeString, value)
	}
	if value, ok := _u.mutation.SyllabusVersion(); ok {
		_spec.SetField(learningplan.FieldSyllabusVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.TestResults(); ok {
		_spec.SetField(learningplan.FieldTestResults, field.TypeJSON, value)
	}
	if _u.mutation.TestResultsCleared() {
		_spec.ClearField(learningplan.FieldTestResults, field.TypeJSON)
	}
	if value, ok := _u.mutation.GeneratedPlan(); ok {
		_spec.SetField(learningplan.FieldGeneratedPlan, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(learningplan.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(learningplan.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learningplan.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LearningPlanUpdateOne is the builder for updating a single LearningPlan entity.
type LearningPlanUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LearningPlanMutation
}

// SetUserID sets the "user_id" field.
func (_u *LearningPlanUpdateOne) SetUserID(v string) *LearningPlanUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *LearningPlanUpdateOne) SetNillableUserID(v *string) *LearningPlanUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSelectedYear sets the "selected_year" field.
func (_u *LearningPlanUpdateOne) SetSelectedYear(v string) *LearningPlanUpdateOne {
	_u.mutation.SetSelectedYear(v)
	return _u
}

// SetNillableSelectedYear sets the "selected_year" field if the given value is not nil.
func (_u *LearningPlanUpdateOne) SetNillableSelectedYear(v *string) *LearningPlanUpdateOne {
	if v != nil {
		_u.SetSelectedYear(*v)
	}
	return _u
}

// SetSyllabusVersion sets the "syllabus_version" field.
func (_u *LearningPlanUpdateOne) SetSyllabusVersion(v string) *LearningPlanUpdateOne {
	_u.mutation.SetSyllabusVersion(v)
	return _u
}

// SetNillableSyllabusVersion sets the "syllabus_version" field if the given value is not nil.
func (_u *LearningPlanUpdateOne) SetNillableSyllabusVersion(v *string) *LearningPlanUpdateOne {
	if v != nil {
		_u.SetSyllabusVersion(*v)
	}
	return _u
}

// SetTestResults sets the "test_results" field.
func (_u *LearningPlanUpdateOne) SetTestResults(v map[string]interface{}) *LearningPlanUpdateOne {
	_u.mutation.SetTestResults(v)
	return _u
}

// ClearTestResults clears the value of the "test_results" field.
func (_u *LearningPlanUpdateOne) ClearTestResults() *LearningPlanUpdateOne {
	_u.mutation.ClearTestResults()
	return _u
}

// SetGeneratedPlan sets the "generated_plan" field.
func (_u *LearningPlanUpdateOne) SetGeneratedPlan(v map[string]interface{}) *LearningPlanUpdateOne {
	_u.mutation.SetGeneratedPlan(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *LearningPlanUpdateOne) SetStatus(v string) *LearningPlanUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *LearningPlanUpdateOne) SetNillableStatus(v *string) *LearningPlanUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LearningPlanUpdateOne) SetUpdatedAt(v time.Time) *LearningPlanUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the LearningPlanMutation object of the builder.
func (_u *LearningPlanUpdateOne) Mutation() *LearningPlanMutation {
	return _u.mutation
}

// Where appends a list predicates to the LearningPlanUpdate builder.
func (_u *LearningPlanUpdateOne) Where(ps ...predicate.LearningPlan) *LearningPlanUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LearningPlanUpdateOne) Select(field string, fields ...string) *LearningPlanUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LearningPlan entity.
func (_u *LearningPlanUpdateOne) Save(ctx context.Context) (*LearningPlan, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearningPlanUpdateOne) SaveX(ctx context.Context) *LearningPlan {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LearningPlanUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearningPlanUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LearningPlanUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := learningplan.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *LearningPlanUpdateOne) sqlSave(ctx context.Context) (_node *LearningPlan, err error) {
	_spec := sqlgraph.NewUpdateSpec(learningplan.Table, learningplan.Columns, sqlgraph.NewFieldSpec(learningplan.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LearningPlan.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, learningplan.FieldID)
		for _, f := range fields {
			if !learningplan.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != learningplan.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(learningplan.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SelectedYear(); ok {
		_spec.SetField(learningplan.FieldSelectedYear, field.TypeString, value)
	}
	if value, ok := _u.mutation.SyllabusVersion(); ok {
		_spec.SetField(learningplan.FieldSyllabusVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.TestResults(); ok {
		_spec.SetField(learningplan.FieldTestResults, field.TypeJSON, value)
	}
	if _u.mutation.TestResultsCleared() {
		_spec.ClearField(learningplan.FieldTestResults, field.TypeJSON)
	}
	if value, ok := _u.mutation.GeneratedPlan(); ok {
		_spec.SetField(learningplan.FieldGeneratedPlan, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(learningplan.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(learningplan.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &LearningPlan{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learningplan.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
