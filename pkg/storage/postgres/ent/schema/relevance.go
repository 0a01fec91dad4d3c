package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

type Relevance struct {
	ent.Schema
}

func (Relevance) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").Unique(),
		field.String("topic_id"),
		field.String("project_id"),
		field.Float("score"),
		field.Text("reasoning"),
		field.Text("content_opportunity").Optional(),
		field.Time("created_at"),
	}
}

func (Relevance) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("topic_id"),
		index.Fields("project_id"),
		index.Fields("score"),
	}
}

func (Relevance) Edges() []ent.Edge {
	return nil
}
