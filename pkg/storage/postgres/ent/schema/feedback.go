package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

type Feedback struct {
	ent.Schema
}

func (Feedback) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").Unique(),
		field.String("post_id").Optional(),
		field.String("topic_id").Optional(),
		field.String("rating"),
		field.Text("comment").Optional(),
		field.Time("created_at"),
	}
}

func (Feedback) Edges() []ent.Edge {
	return nil
}
