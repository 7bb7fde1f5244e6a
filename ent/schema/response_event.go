package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ResponseEvent records one judged learner response.
type ResponseEvent struct {
	ent.Schema
}

func (ResponseEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ResponseEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.String("mode").NotEmpty(),
		field.String("stimulus_kind").
			NotEmpty().
			Comment("sound, pair or word"),
		field.String("stimulus").
			Comment("Symbol, pair notation or word"),
		field.String("answer").
			Comment("Raw learner input, empty for a tap"),
		field.String("tier").
			NotEmpty().
			Comment("perfect, good, miss or ignored"),
		field.Int("elapsed_ms").Default(0),
		field.Int("points").Default(0),
		field.Int("combo").Default(0),
	}
}

func (ResponseEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("tier"),
	}
}
