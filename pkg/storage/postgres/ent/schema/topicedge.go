package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

type TopicEdge struct {
	ent.Schema
}

func (TopicEdge) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").Unique(),
		field.String("from_topic_id"),
		field.String("to_topic_id"),
		field.String("relationship"),
		field.Float("strength").Default(0),
	}
}

func (TopicEdge) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("from_topic_id"),
		index.Fields("to_topic_id"),
	}
}

func (TopicEdge) Edges() []ent.Edge {
	return nil
}
