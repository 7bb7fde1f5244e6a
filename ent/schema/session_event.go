package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records training set lifecycle events (start/end/abort).
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.String("action").
			NotEmpty().
			Comment("start, end or abort"),
		field.String("mode").
			NotEmpty().
			Comment("catch, discrimination or identification"),
		field.String("difficulty").NotEmpty(),
		field.String("speed").NotEmpty(),
		field.Int("set_number").Default(1),
		field.Int("questions").
			Default(0).
			Comment("Questions answered (on end/abort only)"),
		field.Int("perfects").Default(0),
		field.Int("total_score").Default(0),
		field.Int("max_combo").Default(0),
		field.Int("avg_reaction_ms").
			Default(0).
			Comment("Mean reaction time, catch mode only"),
		field.Float("accuracy").
			Default(0).
			Comment("Perfects over answered questions, [0, 1]"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("action"),
		index.Fields("mode"),
	}
}
