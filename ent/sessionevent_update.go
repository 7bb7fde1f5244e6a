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
	"github.com/abhisek/hearo/ent/sessionevent"
)

// SessionEventUpdate is the builder for updating SessionEvent entities.
type SessionEventUpdate struct {
	config
	hooks    []Hook
	mutation *SessionEventMutation
}

// Where appends a list predicates to the SessionEventUpdate builder.
func (_u *SessionEventUpdate) Where(ps ...predicate.SessionEvent) *SessionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *SessionEventUpdate) SetSessionID(v string) *SessionEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableSessionID(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *SessionEventUpdate) SetAction(v string) *SessionEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableAction(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetMode sets the "mode" field.
func (_u *SessionEventUpdate) SetMode(v string) *SessionEventUpdate {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableMode(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *SessionEventUpdate) SetDifficulty(v string) *SessionEventUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableDifficulty(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetSpeed sets the "speed" field.
func (_u *SessionEventUpdate) SetSpeed(v string) *SessionEventUpdate {
	_u.mutation.SetSpeed(v)
	return _u
}

// SetNillableSpeed sets the "speed" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableSpeed(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetSpeed(*v)
	}
	return _u
}

// SetSetNumber sets the "set_number" field.
func (_u *SessionEventUpdate) SetSetNumber(v int) *SessionEventUpdate {
	_u.mutation.ResetSetNumber()
	_u.mutation.SetSetNumber(v)
	return _u
}

// SetNillableSetNumber sets the "set_number" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableSetNumber(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetSetNumber(*v)
	}
	return _u
}

// AddSetNumber adds value to the "set_number" field.
func (_u *SessionEventUpdate) AddSetNumber(v int) *SessionEventUpdate {
	_u.mutation.AddSetNumber(v)
	return _u
}

// SetQuestions sets the "questions" field.
func (_u *SessionEventUpdate) SetQuestions(v int) *SessionEventUpdate {
	_u.mutation.ResetQuestions()
	_u.mutation.SetQuestions(v)
	return _u
}

// SetNillableQuestions sets the "questions" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableQuestions(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetQuestions(*v)
	}
	return _u
}

// AddQuestions adds value to the "questions" field.
func (_u *SessionEventUpdate) AddQuestions(v int) *SessionEventUpdate {
	_u.mutation.AddQuestions(v)
	return _u
}

// SetPerfects sets the "perfects" field.
func (_u *SessionEventUpdate) SetPerfects(v int) *SessionEventUpdate {
	_u.mutation.ResetPerfects()
	_u.mutation.SetPerfects(v)
	return _u
}

// SetNillablePerfects sets the "perfects" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillablePerfects(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetPerfects(*v)
	}
	return _u
}

// AddPerfects adds value to the "perfects" field.
func (_u *SessionEventUpdate) AddPerfects(v int) *SessionEventUpdate {
	_u.mutation.AddPerfects(v)
	return _u
}

// SetTotalScore sets the "total_score" field.
func (_u *SessionEventUpdate) SetTotalScore(v int) *SessionEventUpdate {
	_u.mutation.ResetTotalScore()
	_u.mutation.SetTotalScore(v)
	return _u
}

// SetNillableTotalScore sets the "total_score" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableTotalScore(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetTotalScore(*v)
	}
	return _u
}

// AddTotalScore adds value to the "total_score" field.
func (_u *SessionEventUpdate) AddTotalScore(v int) *SessionEventUpdate {
	_u.mutation.AddTotalScore(v)
	return _u
}

// SetMaxCombo sets the "max_combo" field.
func (_u *SessionEventUpdate) SetMaxCombo(v int) *SessionEventUpdate {
	_u.mutation.ResetMaxCombo()
	_u.mutation.SetMaxCombo(v)
	return _u
}

// SetNillableMaxCombo sets the "max_combo" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableMaxCombo(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetMaxCombo(*v)
	}
	return _u
}

// AddMaxCombo adds value to the "max_combo" field.
func (_u *SessionEventUpdate) AddMaxCombo(v int) *SessionEventUpdate {
	_u.mutation.AddMaxCombo(v)
	return _u
}

// SetAvgReactionMs sets the "avg_reaction_ms" field.
func (_u *SessionEventUpdate) SetAvgReactionMs(v int) *SessionEventUpdate {
	_u.mutation.ResetAvgReactionMs()
	_u.mutation.SetAvgReactionMs(v)
	return _u
}

// SetNillableAvgReactionMs sets the "avg_reaction_ms" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableAvgReactionMs(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetAvgReactionMs(*v)
	}
	return _u
}

// AddAvgReactionMs adds value to the "avg_reaction_ms" field.
func (_u *SessionEventUpdate) AddAvgReactionMs(v int) *SessionEventUpdate {
	_u.mutation.AddAvgReactionMs(v)
	return _u
}

// SetAccuracy sets the "accuracy" field.
func (_u *SessionEventUpdate) SetAccuracy(v float64) *SessionEventUpdate {
	_u.mutation.ResetAccuracy()
	_u.mutation.SetAccuracy(v)
	return _u
}

// SetNillableAccuracy sets the "accuracy" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableAccuracy(v *float64) *SessionEventUpdate {
	if v != nil {
		_u.SetAccuracy(*v)
	}
	return _u
}

// AddAccuracy adds value to the "accuracy" field.
func (_u *SessionEventUpdate) AddAccuracy(v float64) *SessionEventUpdate {
	_u.mutation.AddAccuracy(v)
	return _u
}

// Mutation returns the SessionEventMutation object of the builder.
func (_u *SessionEventUpdate) Mutation() *SessionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := sessionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := sessionevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.action": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Mode(); ok {
		if err := sessionevent.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := sessionevent.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.difficulty": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Speed(); ok {
		if err := sessionevent.SpeedValidator(v); err != nil {
			return &ValidationError{Name: "speed", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.speed": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionevent.Table, sessionevent.Columns, sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(sessionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(sessionevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(sessionevent.FieldMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(sessionevent.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Speed(); ok {
		_spec.SetField(sessionevent.FieldSpeed, field.TypeString, value)
	}
	if value, ok := _u.mutation.SetNumber(); ok {
		_spec.SetField(sessionevent.FieldSetNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSetNumber(); ok {
		_spec.AddField(sessionevent.FieldSetNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Questions(); ok {
		_spec.SetField(sessionevent.FieldQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestions(); ok {
		_spec.AddField(sessionevent.FieldQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Perfects(); ok {
		_spec.SetField(sessionevent.FieldPerfects, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPerfects(); ok {
		_spec.AddField(sessionevent.FieldPerfects, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalScore(); ok {
		_spec.SetField(sessionevent.FieldTotalScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalScore(); ok {
		_spec.AddField(sessionevent.FieldTotalScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxCombo(); ok {
		_spec.SetField(sessionevent.FieldMaxCombo, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxCombo(); ok {
		_spec.AddField(sessionevent.FieldMaxCombo, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AvgReactionMs(); ok {
		_spec.SetField(sessionevent.FieldAvgReactionMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAvgReactionMs(); ok {
		_spec.AddField(sessionevent.FieldAvgReactionMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Accuracy(); ok {
		_spec.SetField(sessionevent.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAccuracy(); ok {
		_spec.AddField(sessionevent.FieldAccuracy, field.TypeFloat64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionEventUpdateOne is the builder for updating a single SessionEvent entity.
type SessionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *SessionEventUpdateOne) SetSessionID(v string) *SessionEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableSessionID(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *SessionEventUpdateOne) SetAction(v string) *SessionEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableAction(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetMode sets the "mode" field.
func (_u *SessionEventUpdateOne) SetMode(v string) *SessionEventUpdateOne {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableMode(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *SessionEventUpdateOne) SetDifficulty(v string) *SessionEventUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableDifficulty(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetSpeed sets the "speed" field.
func (_u *SessionEventUpdateOne) SetSpeed(v string) *SessionEventUpdateOne {
	_u.mutation.SetSpeed(v)
	return _u
}

// SetNillableSpeed sets the "speed" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableSpeed(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetSpeed(*v)
	}
	return _u
}

// SetSetNumber sets the "set_number" field.
func (_u *SessionEventUpdateOne) SetSetNumber(v int) *SessionEventUpdateOne {
	_u.mutation.ResetSetNumber()
	_u.mutation.SetSetNumber(v)
	return _u
}

// SetNillableSetNumber sets the "set_number" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableSetNumber(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetSetNumber(*v)
	}
	return _u
}

// AddSetNumber adds value to the "set_number" field.
func (_u *SessionEventUpdateOne) AddSetNumber(v int) *SessionEventUpdateOne {
	_u.mutation.AddSetNumber(v)
	return _u
}

// SetQuestions sets the "questions" field.
func (_u *SessionEventUpdateOne) SetQuestions(v int) *SessionEventUpdateOne {
	_u.mutation.ResetQuestions()
	_u.mutation.SetQuestions(v)
	return _u
}

// SetNillableQuestions sets the "questions" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableQuestions(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetQuestions(*v)
	}
	return _u
}

// AddQuestions adds value to the "questions" field.
func (_u *SessionEventUpdateOne) AddQuestions(v int) *SessionEventUpdateOne {
	_u.mutation.AddQuestions(v)
	return _u
}

// SetPerfects sets the "perfects" field.
func (_u *SessionEventUpdateOne) SetPerfects(v int) *SessionEventUpdateOne {
	_u.mutation.ResetPerfects()
	_u.mutation.SetPerfects(v)
	return _u
}

// SetNillablePerfects sets the "perfects" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillablePerfects(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetPerfects(*v)
	}
	return _u
}

// AddPerfects adds value to the "perfects" field.
func (_u *SessionEventUpdateOne) AddPerfects(v int) *SessionEventUpdateOne {
	_u.mutation.AddPerfects(v)
	return _u
}

// SetTotalScore sets the "total_score" field.
func (_u *SessionEventUpdateOne) SetTotalScore(v int) *SessionEventUpdateOne {
	_u.mutation.ResetTotalScore()
	_u.mutation.SetTotalScore(v)
	return _u
}

// SetNillableTotalScore sets the "total_score" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableTotalScore(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetTotalScore(*v)
	}
	return _u
}

// AddTotalScore adds value to the "total_score" field.
func (_u *SessionEventUpdateOne) AddTotalScore(v int) *SessionEventUpdateOne {
	_u.mutation.AddTotalScore(v)
	return _u
}

// SetMaxCombo sets the "max_combo" field.
func (_u *SessionEventUpdateOne) SetMaxCombo(v int) *SessionEventUpdateOne {
	_u.mutation.ResetMaxCombo()
	_u.mutation.SetMaxCombo(v)
	return _u
}

// SetNillableMaxCombo sets the "max_combo" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableMaxCombo(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetMaxCombo(*v)
	}
	return _u
}

// AddMaxCombo adds value to the "max_combo" field.
func (_u *SessionEventUpdateOne) AddMaxCombo(v int) *SessionEventUpdateOne {
	_u.mutation.AddMaxCombo(v)
	return _u
}

// SetAvgReactionMs sets the "avg_reaction_ms" field.
func (_u *SessionEventUpdateOne) SetAvgReactionMs(v int) *SessionEventUpdateOne {
	_u.mutation.ResetAvgReactionMs()
	_u.mutation.SetAvgReactionMs(v)
	return _u
}

// SetNillableAvgReactionMs sets the "avg_reaction_ms" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableAvgReactionMs(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetAvgReactionMs(*v)
	}
	return _u
}

// AddAvgReactionMs adds value to the "avg_reaction_ms" field.
func (_u *SessionEventUpdateOne) AddAvgReactionMs(v int) *SessionEventUpdateOne {
	_u.mutation.AddAvgReactionMs(v)
	return _u
}

// SetAccuracy sets the "accuracy" field.
func (_u *SessionEventUpdateOne) SetAccuracy(v float64) *SessionEventUpdateOne {
	_u.mutation.ResetAccuracy()
	_u.mutation.SetAccuracy(v)
	return _u
}

// SetNillableAccuracy sets the "accuracy" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableAccuracy(v *float64) *SessionEventUpdateOne {
	if v != nil {
		_u.SetAccuracy(*v)
	}
	return _u
}

// AddAccuracy adds value to the "accuracy" field.
func (_u *SessionEventUpdateOne) AddAccuracy(v float64) *SessionEventUpdateOne {
	_u.mutation.AddAccuracy(v)
	return _u
}

// Mutation returns the SessionEventMutation object of the builder.
func (_u *SessionEventUpdateOne) Mutation() *SessionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the SessionEventUpdate builder.
func (_u *SessionEventUpdateOne) Where(ps ...predicate.SessionEvent) *SessionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionEventUpdateOne) Select(field string, fields ...string) *SessionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SessionEvent entity.
func (_u *SessionEventUpdateOne) Save(ctx context.Context) (*SessionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionEventUpdateOne) SaveX(ctx context.Context) *SessionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := sessionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := sessionevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.action": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Mode(); ok {
		if err := sessionevent.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := sessionevent.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.difficulty": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Speed(); ok {
		if err := sessionevent.SpeedValidator(v); err != nil {
			return &ValidationError{Name: "speed", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.speed": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionEventUpdateOne) sqlSave(ctx context.Context) (_node *SessionEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionevent.Table, sessionevent.Columns, sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SessionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sessionevent.FieldID)
		for _, f := range fields {
			if !sessionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sessionevent.FieldID {
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
		_spec.SetField(sessionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(sessionevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(sessionevent.FieldMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(sessionevent.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Speed(); ok {
		_spec.SetField(sessionevent.FieldSpeed, field.TypeString, value)
	}
	if value, ok := _u.mutation.SetNumber(); ok {
		_spec.SetField(sessionevent.FieldSetNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSetNumber(); ok {
		_spec.AddField(sessionevent.FieldSetNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Questions(); ok {
		_spec.SetField(sessionevent.FieldQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestions(); ok {
		_spec.AddField(sessionevent.FieldQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Perfects(); ok {
		_spec.SetField(sessionevent.FieldPerfects, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPerfects(); ok {
		_spec.AddField(sessionevent.FieldPerfects, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalScore(); ok {
		_spec.SetField(sessionevent.FieldTotalScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalScore(); ok {
		_spec.AddField(sessionevent.FieldTotalScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxCombo(); ok {
		_spec.SetField(sessionevent.FieldMaxCombo, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxCombo(); ok {
		_spec.AddField(sessionevent.FieldMaxCombo, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AvgReactionMs(); ok {
		_spec.SetField(sessionevent.FieldAvgReactionMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAvgReactionMs(); ok {
		_spec.AddField(sessionevent.FieldAvgReactionMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Accuracy(); ok {
		_spec.SetField(sessionevent.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAccuracy(); ok {
		_spec.AddField(sessionevent.FieldAccuracy, field.TypeFloat64, value)
	}
	_node = &SessionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
