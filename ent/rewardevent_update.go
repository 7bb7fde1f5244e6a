// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/hearo/ent/predicate"
	"github.com/abhisek/hearo/ent/rewardevent"
)

// RewardEventUpdate is the builder for updating RewardEvent entities.
type RewardEventUpdate struct {
	config
	hooks    []Hook
	mutation *RewardEventMutation
}

// Where appends a list predicates to the RewardEventUpdate builder.
func (_u *RewardEventUpdate) Where(ps ...predicate.RewardEvent) *RewardEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAwardType sets the "award_type" field.
func (_u *RewardEventUpdate) SetAwardType(v string) *RewardEventUpdate {
	_u.mutation.SetAwardType(v)
	return _u
}

// SetNillableAwardType sets the "award_type" field if the given value is not nil.
func (_u *RewardEventUpdate) SetNillableAwardType(v *string) *RewardEventUpdate {
	if v != nil {
		_u.SetAwardType(*v)
	}
	return _u
}

// SetPoints sets the "points" field.
func (_u *RewardEventUpdate) SetPoints(v int) *RewardEventUpdate {
	_u.mutation.ResetPoints()
	_u.mutation.SetPoints(v)
	return _u
}

// SetNillablePoints sets the "points" field if the given value is not nil.
func (_u *RewardEventUpdate) SetNillablePoints(v *int) *RewardEventUpdate {
	if v != nil {
		_u.SetPoints(*v)
	}
	return _u
}

// AddPoints adds value to the "points" field.
func (_u *RewardEventUpdate) AddPoints(v int) *RewardEventUpdate {
	_u.mutation.AddPoints(v)
	return _u
}

// SetReason sets the "reason" field.
func (_u *RewardEventUpdate) SetReason(v string) *RewardEventUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *RewardEventUpdate) SetNillableReason(v *string) *RewardEventUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *RewardEventUpdate) SetSessionID(v string) *RewardEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *RewardEventUpdate) SetNillableSessionID(v *string) *RewardEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetNewRank sets the "new_rank" field.
func (_u *RewardEventUpdate) SetNewRank(v int) *RewardEventUpdate {
	_u.mutation.ResetNewRank()
	_u.mutation.SetNewRank(v)
	return _u
}

// SetNillableNewRank sets the "new_rank" field if the given value is not nil.
func (_u *RewardEventUpdate) SetNillableNewRank(v *int) *RewardEventUpdate {
	if v != nil {
		_u.SetNewRank(*v)
	}
	return _u
}

// AddNewRank adds value to the "new_rank" field.
func (_u *RewardEventUpdate) AddNewRank(v int) *RewardEventUpdate {
	_u.mutation.AddNewRank(v)
	return _u
}

// ClearNewRank clears the value of the "new_rank" field.
func (_u *RewardEventUpdate) ClearNewRank() *RewardEventUpdate {
	_u.mutation.ClearNewRank()
	return _u
}

// Mutation returns the RewardEventMutation object of the builder.
func (_u *RewardEventUpdate) Mutation() *RewardEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RewardEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RewardEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RewardEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RewardEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RewardEventUpdate) check() error {
	if v, ok := _u.mutation.AwardType(); ok {
		if err := rewardevent.AwardTypeValidator(v); err != nil {
			return &ValidationError{Name: "award_type", err: fmt.Errorf(`ent: validator failed for field "RewardEvent.award_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Reason(); ok {
		if err := rewardevent.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "RewardEvent.reason": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionID(); ok {
		if err := rewardevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "RewardEvent.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *RewardEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(rewardevent.Table, rewardevent.Columns, sqlgraph.NewFieldSpec(rewardevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AwardType(); ok {
		_spec.SetField(rewardevent.FieldAwardType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Points(); ok {
		_spec.SetField(rewardevent.FieldPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPoints(); ok {
		_spec.AddField(rewardevent.FieldPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(rewardevent.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(rewardevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.NewRank(); ok {
		_spec.SetField(rewardevent.FieldNewRank, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNewRank(); ok {
		_spec.AddField(rewardevent.FieldNewRank, field.TypeInt, value)
	}
	if _u.mutation.NewRankCleared() {
		_spec.ClearField(rewardevent.FieldNewRank, field.TypeInt)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{rewardevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RewardEventUpdateOne is the builder for updating a single RewardEvent entity.
type RewardEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RewardEventMutation
}

// SetAwardType sets the "award_type" field.
func (_u *RewardEventUpdateOne) SetAwardType(v string) *RewardEventUpdateOne {
	_u.mutation.SetAwardType(v)
	return _u
}

// SetNillableAwardType sets the "award_type" field if the given value is not nil.
func (_u *RewardEventUpdateOne) SetNillableAwardType(v *string) *RewardEventUpdateOne {
	if v != nil {
		_u.SetAwardType(*v)
	}
	return _u
}

// SetPoints sets the "points" field.
func (_u *RewardEventUpdateOne) SetPoints(v int) *RewardEventUpdateOne {
	_u.mutation.ResetPoints()
	_u.mutation.SetPoints(v)
	return _u
}

// SetNillablePoints sets the "points" field if the given value is not nil.
func (_u *RewardEventUpdateOne) SetNillablePoints(v *int) *RewardEventUpdateOne {
	if v != nil {
		_u.SetPoints(*v)
	}
	return _u
}

// AddPoints adds value to the "points" field.
func (_u *RewardEventUpdateOne) AddPoints(v int) *RewardEventUpdateOne {
	_u.mutation.AddPoints(v)
	return _u
}

// SetReason sets the "reason" field.
func (_u *RewardEventUpdateOne) SetReason(v string) *RewardEventUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *RewardEventUpdateOne) SetNillableReason(v *string) *RewardEventUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *RewardEventUpdateOne) SetSessionID(v string) *RewardEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *RewardEventUpdateOne) SetNillableSessionID(v *string) *RewardEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetNewRank sets the "new_rank" field.
func (_u *RewardEventUpdateOne) SetNewRank(v int) *RewardEventUpdateOne {
	_u.mutation.ResetNewRank()
	_u.mutation.SetNewRank(v)
	return _u
}

// SetNillableNewRank sets the "new_rank" field if the given value is not nil.
func (_u *RewardEventUpdateOne) SetNillableNewRank(v *int) *RewardEventUpdateOne {
	if v != nil {
		_u.SetNewRank(*v)
	}
	return _u
}

// AddNewRank adds value to the "new_rank" field.
func (_u *RewardEventUpdateOne) AddNewRank(v int) *RewardEventUpdateOne {
	_u.mutation.AddNewRank(v)
	return _u
}

// ClearNewRank clears the value of the "new_rank" field.
func (_u *RewardEventUpdateOne) ClearNewRank() *RewardEventUpdateOne {
	_u.mutation.ClearNewRank()
	return _u
}

// Mutation returns the RewardEventMutation object of the builder.
func (_u *RewardEventUpdateOne) Mutation() *RewardEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the RewardEventUpdate builder.
func (_u *RewardEventUpdateOne) Where(ps ...predicate.RewardEvent) *RewardEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RewardEventUpdateOne) Select(field string, fields ...string) *RewardEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RewardEvent entity.
func (_u *RewardEventUpdateOne) Save(ctx context.Context) (*RewardEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RewardEventUpdateOne) SaveX(ctx context.Context) *RewardEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RewardEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RewardEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RewardEventUpdateOne) check() error {
	if v, ok := _u.mutation.AwardType(); ok {
		if err := rewardevent.AwardTypeValidator(v); err != nil {
			return &ValidationError{Name: "award_type", err: fmt.Errorf(`ent: validator failed for field "RewardEvent.award_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Reason(); ok {
		if err := rewardevent.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "RewardEvent.reason": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionID(); ok {
		if err := rewardevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "RewardEvent.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *RewardEventUpdateOne) sqlSave(ctx context.Context) (_node *RewardEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(rewardevent.Table, rewardevent.Columns, sqlgraph.NewFieldSpec(rewardevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RewardEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, rewardevent.FieldID)
		for _, f := range fields {
			if !rewardevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != rewardevent.FieldID {
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
	if value, ok := _u.mutation.AwardType(); ok {
		_spec.SetField(rewardevent.FieldAwardType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Points(); ok {
		_spec.SetField(rewardevent.FieldPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPoints(); ok {
		_spec.AddField(rewardevent.FieldPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(rewardevent.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(rewardevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.NewRank(); ok {
		_spec.SetField(rewardevent.FieldNewRank, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNewRank(); ok {
		_spec.AddField(rewardevent.FieldNewRank, field.TypeInt, value)
	}
	if _u.mutation.NewRankCleared() {
		_spec.ClearField(rewardevent.FieldNewRank, field.TypeInt)
	}
	_node = &RewardEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{rewardevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
