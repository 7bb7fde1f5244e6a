// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/hearo/ent/responseevent"
	"github.com/abhisek/hearo/ent/rewardevent"
	"github.com/abhisek/hearo/ent/schema"
	"github.com/abhisek/hearo/ent/sessionevent"
	"github.com/abhisek/hearo/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	responseeventMixin := schema.ResponseEvent{}.Mixin()
	responseeventMixinFields0 := responseeventMixin[0].Fields()
	_ = responseeventMixinFields0
	responseeventFields := schema.ResponseEvent{}.Fields()
	_ = responseeventFields
	// responseeventDescTimestamp is the schema descriptor for timestamp field.
	responseeventDescTimestamp := responseeventMixinFields0[1].Descriptor()
	// responseevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	responseevent.DefaultTimestamp = responseeventDescTimestamp.Default.(func() time.Time)
	// responseeventDescSessionID is the schema descriptor for session_id field.
	responseeventDescSessionID := responseeventFields[0].Descriptor()
	// responseevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	responseevent.SessionIDValidator = responseeventDescSessionID.Validators[0].(func(string) error)
	// responseeventDescMode is the schema descriptor for mode field.
	responseeventDescMode := responseeventFields[1].Descriptor()
	// responseevent.ModeValidator is a validator for the "mode" field. It is called by the builders before save.
	responseevent.ModeValidator = responseeventDescMode.Validators[0].(func(string) error)
	// responseeventDescStimulusKind is the schema descriptor for stimulus_kind field.
	responseeventDescStimulusKind := responseeventFields[2].Descriptor()
	// responseevent.StimulusKindValidator is a validator for the "stimulus_kind" field. It is called by the builders before save.
	responseevent.StimulusKindValidator = responseeventDescStimulusKind.Validators[0].(func(string) error)
	// responseeventDescTier is the schema descriptor for tier field.
	responseeventDescTier := responseeventFields[5].Descriptor()
	// responseevent.TierValidator is a validator for the "tier" field. It is called by the builders before save.
	responseevent.TierValidator = responseeventDescTier.Validators[0].(func(string) error)
	// responseeventDescElapsedMs is the schema descriptor for elapsed_ms field.
	responseeventDescElapsedMs := responseeventFields[6].Descriptor()
	// responseevent.DefaultElapsedMs holds the default value on creation for the elapsed_ms field.
	responseevent.DefaultElapsedMs = responseeventDescElapsedMs.Default.(int)
	// responseeventDescPoints is the schema descriptor for points field.
	responseeventDescPoints := responseeventFields[7].Descriptor()
	// responseevent.DefaultPoints holds the default value on creation for the points field.
	responseevent.DefaultPoints = responseeventDescPoints.Default.(int)
	// responseeventDescCombo is the schema descriptor for combo field.
	responseeventDescCombo := responseeventFields[8].Descriptor()
	// responseevent.DefaultCombo holds the default value on creation for the combo field.
	responseevent.DefaultCombo = responseeventDescCombo.Default.(int)
	rewardeventMixin := schema.RewardEvent{}.Mixin()
	rewardeventMixinFields0 := rewardeventMixin[0].Fields()
	_ = rewardeventMixinFields0
	rewardeventFields := schema.RewardEvent{}.Fields()
	_ = rewardeventFields
	// rewardeventDescTimestamp is the schema descriptor for timestamp field.
	rewardeventDescTimestamp := rewardeventMixinFields0[1].Descriptor()
	// rewardevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	rewardevent.DefaultTimestamp = rewardeventDescTimestamp.Default.(func() time.Time)
	// rewardeventDescAwardType is the schema descriptor for award_type field.
	rewardeventDescAwardType := rewardeventFields[0].Descriptor()
	// rewardevent.AwardTypeValidator is a validator for the "award_type" field. It is called by the builders before save.
	rewardevent.AwardTypeValidator = rewardeventDescAwardType.Validators[0].(func(string) error)
	// rewardeventDescPoints is the schema descriptor for points field.
	rewardeventDescPoints := rewardeventFields[1].Descriptor()
	// rewardevent.DefaultPoints holds the default value on creation for the points field.
	rewardevent.DefaultPoints = rewardeventDescPoints.Default.(int)
	// rewardeventDescReason is the schema descriptor for reason field.
	rewardeventDescReason := rewardeventFields[2].Descriptor()
	// rewardevent.ReasonValidator is a validator for the "reason" field. It is called by the builders before save.
	rewardevent.ReasonValidator = rewardeventDescReason.Validators[0].(func(string) error)
	// rewardeventDescSessionID is the schema descriptor for session_id field.
	rewardeventDescSessionID := rewardeventFields[3].Descriptor()
	// rewardevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	rewardevent.SessionIDValidator = rewardeventDescSessionID.Validators[0].(func(string) error)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[1].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescMode is the schema descriptor for mode field.
	sessioneventDescMode := sessioneventFields[2].Descriptor()
	// sessionevent.ModeValidator is a validator for the "mode" field. It is called by the builders before save.
	sessionevent.ModeValidator = sessioneventDescMode.Validators[0].(func(string) error)
	// sessioneventDescDifficulty is the schema descriptor for difficulty field.
	sessioneventDescDifficulty := sessioneventFields[3].Descriptor()
	// sessionevent.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	sessionevent.DifficultyValidator = sessioneventDescDifficulty.Validators[0].(func(string) error)
	// sessioneventDescSpeed is the schema descriptor for speed field.
	sessioneventDescSpeed := sessioneventFields[4].Descriptor()
	// sessionevent.SpeedValidator is a validator for the "speed" field. It is called by the builders before save.
	sessionevent.SpeedValidator = sessioneventDescSpeed.Validators[0].(func(string) error)
	// sessioneventDescSetNumber is the schema descriptor for set_number field.
	sessioneventDescSetNumber := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultSetNumber holds the default value on creation for the set_number field.
	sessionevent.DefaultSetNumber = sessioneventDescSetNumber.Default.(int)
	// sessioneventDescQuestions is the schema descriptor for questions field.
	sessioneventDescQuestions := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultQuestions holds the default value on creation for the questions field.
	sessionevent.DefaultQuestions = sessioneventDescQuestions.Default.(int)
	// sessioneventDescPerfects is the schema descriptor for perfects field.
	sessioneventDescPerfects := sessioneventFields[7].Descriptor()
	// sessionevent.DefaultPerfects holds the default value on creation for the perfects field.
	sessionevent.DefaultPerfects = sessioneventDescPerfects.Default.(int)
	// sessioneventDescTotalScore is the schema descriptor for total_score field.
	sessioneventDescTotalScore := sessioneventFields[8].Descriptor()
	// sessionevent.DefaultTotalScore holds the default value on creation for the total_score field.
	sessionevent.DefaultTotalScore = sessioneventDescTotalScore.Default.(int)
	// sessioneventDescMaxCombo is the schema descriptor for max_combo field.
	sessioneventDescMaxCombo := sessioneventFields[9].Descriptor()
	// sessionevent.DefaultMaxCombo holds the default value on creation for the max_combo field.
	sessionevent.DefaultMaxCombo = sessioneventDescMaxCombo.Default.(int)
	// sessioneventDescAvgReactionMs is the schema descriptor for avg_reaction_ms field.
	sessioneventDescAvgReactionMs := sessioneventFields[10].Descriptor()
	// sessionevent.DefaultAvgReactionMs holds the default value on creation for the avg_reaction_ms field.
	sessionevent.DefaultAvgReactionMs = sessioneventDescAvgReactionMs.Default.(int)
	// sessioneventDescAccuracy is the schema descriptor for accuracy field.
	sessioneventDescAccuracy := sessioneventFields[11].Descriptor()
	// sessionevent.DefaultAccuracy holds the default value on creation for the accuracy field.
	sessionevent.DefaultAccuracy = sessioneventDescAccuracy.Default.(float64)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
