package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

type Topic struct {
	ent.Schema
}

func (Topic) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").Unique(),
		field.String("name"),
		field.Text("summary"),
		field.JSON("keywords", []string{}),
		field.Int("post_count").Default(0),
		field.Int("importance").Default(0),
		field.String("source_post_id").Optional(),
		field.String("source_url").Optional(),
		field.Time("created_at"),
		field.Time("updated_at"),
	}
}

func (Topic) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("importance"),
	}
}

func (Topic) Edges() []ent.Edge {
	return nil
}
