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
	"github.com/abhisek/hearo/ent/responseevent"
)

// ResponseEventUpdate is the builder for updating ResponseEvent entities.
type ResponseEventUpdate struct {
	config
	hooks    []Hook
	mutation *ResponseEventMutation
}

// Where appends a list predicates to the ResponseEventUpdate builder.
func (_u *ResponseEventUpdate) Where(ps ...predicate.ResponseEvent) *ResponseEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ResponseEventUpdate) SetSessionID(v string) *ResponseEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableSessionID(v *string) *ResponseEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetMode sets the "mode" field.
func (_u *ResponseEventUpdate) SetMode(v string) *ResponseEventUpdate {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableMode(v *string) *ResponseEventUpdate {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetStimulusKind sets the "stimulus_kind" field.
func (_u *ResponseEventUpdate) SetStimulusKind(v string) *ResponseEventUpdate {
	_u.mutation.SetStimulusKind(v)
	return _u
}

// SetNillableStimulusKind sets the "stimulus_kind" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableStimulusKind(v *string) *ResponseEventUpdate {
	if v != nil {
		_u.SetStimulusKind(*v)
	}
	return _u
}

// SetStimulus sets the "stimulus" field.
func (_u *ResponseEventUpdate) SetStimulus(v string) *ResponseEventUpdate {
	_u.mutation.SetStimulus(v)
	return _u
}

// SetNillableStimulus sets the "stimulus" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableStimulus(v *string) *ResponseEventUpdate {
	if v != nil {
		_u.SetStimulus(*v)
	}
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *ResponseEventUpdate) SetAnswer(v string) *ResponseEventUpdate {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableAnswer(v *string) *ResponseEventUpdate {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// SetTier sets the "tier" field.
func (_u *ResponseEventUpdate) SetTier(v string) *ResponseEventUpdate {
	_u.mutation.SetTier(v)
	return _u
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableTier(v *string) *ResponseEventUpdate {
	if v != nil {
		_u.SetTier(*v)
	}
	return _u
}

// SetElapsedMs sets the "elapsed_ms" field.
func (_u *ResponseEventUpdate) SetElapsedMs(v int) *ResponseEventUpdate {
	_u.mutation.ResetElapsedMs()
	_u.mutation.SetElapsedMs(v)
	return _u
}

// SetNillableElapsedMs sets the "elapsed_ms" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableElapsedMs(v *int) *ResponseEventUpdate {
	if v != nil {
		_u.SetElapsedMs(*v)
	}
	return _u
}

// AddElapsedMs adds value to the "elapsed_ms" field.
func (_u *ResponseEventUpdate) AddElapsedMs(v int) *ResponseEventUpdate {
	_u.mutation.AddElapsedMs(v)
	return _u
}

// SetPoints sets the "points" field.
func (_u *ResponseEventUpdate) SetPoints(v int) *ResponseEventUpdate {
	_u.mutation.ResetPoints()
	_u.mutation.SetPoints(v)
	return _u
}

// SetNillablePoints sets the "points" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillablePoints(v *int) *ResponseEventUpdate {
	if v != nil {
		_u.SetPoints(*v)
	}
	return _u
}

// AddPoints adds value to the "points" field.
func (_u *ResponseEventUpdate) AddPoints(v int) *ResponseEventUpdate {
	_u.mutation.AddPoints(v)
	return _u
}

// SetCombo sets the "combo" field.
func (_u *ResponseEventUpdate) SetCombo(v int) *ResponseEventUpdate {
	_u.mutation.ResetCombo()
	_u.mutation.SetCombo(v)
	return _u
}

// SetNillableCombo sets the "combo" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableCombo(v *int) *ResponseEventUpdate {
	if v != nil {
		_u.SetCombo(*v)
	}
	return _u
}

// AddCombo adds value to the "combo" field.
func (_u *ResponseEventUpdate) AddCombo(v int) *ResponseEventUpdate {
	_u.mutation.AddCombo(v)
	return _u
}

// Mutation returns the ResponseEventMutation object of the builder.
func (_u *ResponseEventUpdate) Mutation() *ResponseEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ResponseEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResponseEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ResponseEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResponseEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResponseEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := responseevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Mode(); ok {
		if err := responseevent.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StimulusKind(); ok {
		if err := responseevent.StimulusKindValidator(v); err != nil {
			return &ValidationError{Name: "stimulus_kind", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.stimulus_kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Tier(); ok {
		if err := responseevent.TierValidator(v); err != nil {
			return &ValidationError{Name: "tier", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.tier": %w`, err)}
		}
	}
	return nil
}

func (_u *ResponseEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(responseevent.Table, responseevent.Columns, sqlgraph.NewFieldSpec(responseevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(responseevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(responseevent.FieldMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.StimulusKind(); ok {
		_spec.SetField(responseevent.FieldStimulusKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Stimulus(); ok {
		_spec.SetField(responseevent.FieldStimulus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(responseevent.FieldAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tier(); ok {
		_spec.SetField(responseevent.FieldTier, field.TypeString, value)
	}
	if value, ok := _u.mutation.ElapsedMs(); ok {
		_spec.SetField(responseevent.FieldElapsedMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedElapsedMs(); ok {
		_spec.AddField(responseevent.FieldElapsedMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Points(); ok {
		_spec.SetField(responseevent.FieldPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPoints(); ok {
		_spec.AddField(responseevent.FieldPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Combo(); ok {
		_spec.SetField(responseevent.FieldCombo, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCombo(); ok {
		_spec.AddField(responseevent.FieldCombo, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{responseevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ResponseEventUpdateOne is the builder for updating a single ResponseEvent entity.
type ResponseEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ResponseEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *ResponseEventUpdateOne) SetSessionID(v string) *ResponseEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableSessionID(v *string) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetMode sets the "mode" field.
func (_u *ResponseEventUpdateOne) SetMode(v string) *ResponseEventUpdateOne {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableMode(v *string) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetStimulusKind sets the "stimulus_kind" field.
func (_u *ResponseEventUpdateOne) SetStimulusKind(v string) *ResponseEventUpdateOne {
	_u.mutation.SetStimulusKind(v)
	return _u
}

// SetNillableStimulusKind sets the "stimulus_kind" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableStimulusKind(v *string) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetStimulusKind(*v)
	}
	return _u
}

// SetStimulus sets the "stimulus" field.
func (_u *ResponseEventUpdateOne) SetStimulus(v string) *ResponseEventUpdateOne {
	_u.mutation.SetStimulus(v)
	return _u
}

// SetNillableStimulus sets the "stimulus" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableStimulus(v *string) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetStimulus(*v)
	}
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *ResponseEventUpdateOne) SetAnswer(v string) *ResponseEventUpdateOne {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableAnswer(v *string) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// SetTier sets the "tier" field.
func (_u *ResponseEventUpdateOne) SetTier(v string) *ResponseEventUpdateOne {
	_u.mutation.SetTier(v)
	return _u
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableTier(v *string) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetTier(*v)
	}
	return _u
}

// SetElapsedMs sets the "elapsed_ms" field.
func (_u *ResponseEventUpdateOne) SetElapsedMs(v int) *ResponseEventUpdateOne {
	_u.mutation.ResetElapsedMs()
	_u.mutation.SetElapsedMs(v)
	return _u
}

// SetNillableElapsedMs sets the "elapsed_ms" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableElapsedMs(v *int) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetElapsedMs(*v)
	}
	return _u
}

// AddElapsedMs adds value to the "elapsed_ms" field.
func (_u *ResponseEventUpdateOne) AddElapsedMs(v int) *ResponseEventUpdateOne {
	_u.mutation.AddElapsedMs(v)
	return _u
}

// SetPoints sets the "points" field.
func (_u *ResponseEventUpdateOne) SetPoints(v int) *ResponseEventUpdateOne {
	_u.mutation.ResetPoints()
	_u.mutation.SetPoints(v)
	return _u
}

// SetNillablePoints sets the "points" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillablePoints(v *int) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetPoints(*v)
	}
	return _u
}

// AddPoints adds value to the "points" field.
func (_u *ResponseEventUpdateOne) AddPoints(v int) *ResponseEventUpdateOne {
	_u.mutation.AddPoints(v)
	return _u
}

// SetCombo sets the "combo" field.
func (_u *ResponseEventUpdateOne) SetCombo(v int) *ResponseEventUpdateOne {
	_u.mutation.ResetCombo()
	_u.mutation.SetCombo(v)
	return _u
}

// SetNillableCombo sets the "combo" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableCombo(v *int) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetCombo(*v)
	}
	return _u
}

// AddCombo adds value to the "combo" field.
func (_u *ResponseEventUpdateOne) AddCombo(v int) *ResponseEventUpdateOne {
	_u.mutation.AddCombo(v)
	return _u
}

// Mutation returns the ResponseEventMutation object of the builder.
func (_u *ResponseEventUpdateOne) Mutation() *ResponseEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ResponseEventUpdate builder.
func (_u *ResponseEventUpdateOne) Where(ps ...predicate.ResponseEvent) *ResponseEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ResponseEventUpdateOne) Select(field string, fields ...string) *ResponseEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ResponseEvent entity.
func (_u *ResponseEventUpdateOne) Save(ctx context.Context) (*ResponseEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResponseEventUpdateOne) SaveX(ctx context.Context) *ResponseEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ResponseEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResponseEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResponseEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := responseevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Mode(); ok {
		if err := responseevent.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StimulusKind(); ok {
		if err := responseevent.StimulusKindValidator(v); err != nil {
			return &ValidationError{Name: "stimulus_kind", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.stimulus_kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Tier(); ok {
		if err := responseevent.TierValidator(v); err != nil {
			return &ValidationError{Name: "tier", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.tier": %w`, err)}
		}
	}
	return nil
}

func (_u *ResponseEventUpdateOne) sqlSave(ctx context.Context) (_node *ResponseEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(responseevent.Table, responseevent.Columns, sqlgraph.NewFieldSpec(responseevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ResponseEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, responseevent.FieldID)
		for _, f := range fields {
			if !responseevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != responseevent.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(responseevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(responseevent.FieldMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.StimulusKind(); ok {
		_spec.SetField(responseevent.FieldStimulusKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Stimulus(); ok {
		_spec.SetField(responseevent.FieldStimulus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(responseevent.FieldAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tier(); ok {
		_spec.SetField(responseevent.FieldTier, field.TypeString, value)
	}
	if value, ok := _u.mutation.ElapsedMs(); ok {
		_spec.SetField(responseevent.FieldElapsedMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedElapsedMs(); ok {
		_spec.AddField(responseevent.FieldElapsedMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Points(); ok {
		_spec.SetField(responseevent.FieldPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPoints(); ok {
		_spec.AddField(responseevent.FieldPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Combo(); ok {
		_spec.SetField(responseevent.FieldCombo, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCombo(); ok {
		_spec.AddField(responseevent.FieldCombo, field.TypeInt, value)
	}
	_node = &ResponseEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{responseevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
