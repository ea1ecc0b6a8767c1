// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/ravitej/prepmate/ent/learningplan"
)

// LearningPlanCreate is the builder for creating a LearningPlan entity.
type LearningPlanCreate struct {
	config
	mutation *LearningPlanMutation
	hooks    []Hook
}

// SetPlanID sets the "plan_id" field.
func (_c *LearningPlanCreate) SetPlanID(v uuid.UUID) *LearningPlanCreate {
	_c.mutation.SetPlanID(v)
	return _c
}

// SetNillablePlanID sets the "plan_id" field if the given value is not nil.
func (_c *LearningPlanCreate) SetNillablePlanID(v *uuid.UUID) *LearningPlanCreate {
	if v != nil {
		_c.SetPlanID(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *LearningPlanCreate) SetUserID(v string) *LearningPlanCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_c *LearningPlanCreate) SetNillableUserID(v *string) *LearningPlanCreate {
	if v != nil {
		_c.SetUserID(*v)
	}
	return _c
}

// SetSelectedYear sets the "selected_year" field.
func (_c *LearningPlanCreate) SetSelectedYear(v string) *LearningPlanCreate {
	_c.mutation.SetSelectedYear(v)
	return _c
}

// SetSyllabusVersion sets the "syllabus_version" field.
func (_c *LearningPlanCreate) SetSyllabusVersion(v string) *LearningPlanCreate {
	_c.mutation.SetSyllabusVersion(v)
	return _c
}

// SetNillableSyllabusVersion sets the "syllabus_version" field if the given value is not nil.
func (_c *LearningPlanCreate) SetNillableSyllabusVersion(v *string) *LearningPlanCreate {
	if v != nil {
		_c.SetSyllabusVersion(*v)
	}
	return _c
}

// SetTestResults sets the "test_results" field.
func (_c *LearningPlanCreate) SetTestResults(v map[string]interface{}) *LearningPlanCreate {
	_c.mutation.SetTestResults(v)
	return _c
}

// SetGeneratedPlan sets the "generated_plan" field.
func (_c *LearningPlanCreate) SetGeneratedPlan(v map[string]interface{}) *LearningPlanCreate {
	_c.mutation.SetGeneratedPlan(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *LearningPlanCreate) SetStatus(v string) *LearningPlanCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *LearningPlanCreate) SetNillableStatus(v *string) *LearningPlanCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LearningPlanCreate) SetCreatedAt(v time.Time) *LearningPlanCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LearningPlanCreate) SetNillableCreatedAt(v *time.Time) *LearningPlanCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *LearningPlanCreate) SetUpdatedAt(v time.Time) *LearningPlanCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *LearningPlanCreate) SetNillableUpdatedAt(v *time.Time) *LearningPlanCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the LearningPlanMutation object of the builder.
func (_c *LearningPlanCreate) Mutation() *LearningPlanMutation {
	return _c.mutation
}

// Save creates the LearningPlan in the database.
func (_c *LearningPlanCreate) Save(ctx context.Context) (*LearningPlan, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LearningPlanCreate) SaveX(ctx context.Context) *LearningPlan {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearningPlanCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearningPlanCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LearningPlanCreate) defaults() {
	if _, ok := _c.mutation.PlanID(); !ok {
		v := learningplan.DefaultPlanID()
		_c.mutation.SetPlanID(v)
	}
	if _, ok := _c.mutation.UserID(); !ok {
		v := learningplan.DefaultUserID
		_c.mutation.SetUserID(v)
	}
	if _, ok := _c.mutation.SyllabusVersion(); !ok {
		v := learningplan.DefaultSyllabusVersion
		_c.mutation.SetSyllabusVersion(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := learningplan.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := learningplan.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := learningplan.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LearningPlanCreate) check() error {
	if _, ok := _c.mutation.PlanID(); !ok {
		return &ValidationError{Name: "plan_id", err: errors.New(`ent: missing required field "LearningPlan.plan_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "LearningPlan.user_id"`)}
	}
	if _, ok := _c.mutation.SelectedYear(); !ok {
		return &ValidationError{Name: "selected_year", err: errors.New(`ent: missing required field "LearningPlan.selected_year"`)}
	}
	if _, ok := _c.mutation.SyllabusVersion(); !ok {
		return &ValidationError{Name: "syllabus_version", err: errors.New(`ent: missing required field "LearningPlan.syllabus_version"`)}
	}
	if _, ok := _c.mutation.GeneratedPlan(); !ok {
		return &ValidationError{Name: "generated_plan", err: errors.New(`ent: missing required field "LearningPlan.generated_plan"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "LearningPlan.status"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "LearningPlan.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "LearningPlan.updated_at"`)}
	}
	return nil
}

func (_c *LearningPlanCreate) sqlSave(ctx context.Context) (*LearningPlan, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LearningPlanCreate) createSpec() (*LearningPlan, *sqlgraph.CreateSpec) {
	var (
		_node = &LearningPlan{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(learningplan.Table, sqlgraph.NewFieldSpec(learningplan.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.PlanID(); ok {
		_spec.SetField(learningplan.FieldPlanID, field.TypeUUID, value)
		_node.PlanID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(learningplan.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.SelectedYear(); ok {
		_spec.SetField(learningplan.FieldSelectedYear, field.TypeString, value)
		_node.SelectedYear = value
	}
	if value, ok := _c.mutation.SyllabusVersion(); ok {
		_spec.SetField(learningplan.FieldSyllabusVersion, field.TypeString, value)
		_node.SyllabusVersion = value
	}
	if value, ok := _c.mutation.TestResults(); ok {
		_spec.SetField(learningplan.FieldTestResults, field.TypeJSON, value)
		_node.TestResults = value
	}
	if value, ok := _c.mutation.GeneratedPlan(); ok {
		_spec.SetField(learningplan.FieldGeneratedPlan, field.TypeJSON, value)
		_node.GeneratedPlan = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(learningplan.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(learningplan.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(learningplan.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// LearningPlanCreateBulk is the builder for creating many LearningPlan entities in bulk.
type LearningPlanCreateBulk struct {
	config
	err      error
	builders []*LearningPlanCreate
}

// Save creates the LearningPlan entities in the database.
func (_c *LearningPlanCreateBulk) Save(ctx context.Context) ([]*LearningPlan, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LearningPlan, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LearningPlanMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *LearningPlanCreateBulk) SaveX(ctx context.Context) []*LearningPlan {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearningPlanCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearningPlanCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
