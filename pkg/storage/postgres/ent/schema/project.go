package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

type Project struct {
	ent.Schema
}

func (Project) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").Unique(),
		field.String("name"),
		field.Text("description"),
		field.JSON("keywords", []string{}),
		field.Bool("active").Default(true),
	}
}

func (Project) Edges() []ent.Edge {
	return nil
}
