package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

type Post struct {
	ent.Schema
}

func (Post) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").Unique(),
		field.String("external_id").Unique(),
		field.String("author"),
		field.String("author_handle"),
		field.Int("followers").Default(0),
		field.Text("text"),
		field.String("url"),
		field.String("time"),
		field.Bool("has_media").Default(false),
		field.Bool("is_bookmark").Default(false),
		field.String("topic_id").Optional(),
		field.Time("fetched_at"),
	}
}

func (Post) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("topic_id"),
		index.Fields("author_handle"),
		index.Fields("time"),
	}
}

func (Post) Edges() []ent.Edge {
	return nil
}
