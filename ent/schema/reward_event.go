package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RewardEvent records a reward point, combo bonus or artifact award.
type RewardEvent struct {
	ent.Schema
}

func (RewardEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (RewardEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("award_type").
			NotEmpty().
			Comment("perfect, combo, piece or artifact"),
		field.Int("points").Default(0),
		field.String("reason").NotEmpty(),
		field.String("session_id").NotEmpty(),
		field.Int("new_rank").
			Optional().
			Nillable().
			Comment("Set when the award crossed a rank threshold"),
	}
}

func (RewardEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("award_type"),
		index.Fields("session_id"),
	}
}
