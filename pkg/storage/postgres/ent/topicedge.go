// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/feedradar/radar/pkg/storage/postgres/ent/topicedge"
)

// TopicEdge is the model entity for the TopicEdge schema.
type TopicEdge struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// FromTopicID holds the value of the "from_topic_id" field.
	FromTopicID string `json:"from_topic_id,omitempty"`
	// ToTopicID holds the value of the "to_topic_id" field.
	ToTopicID string `json:"to_topic_id,omitempty"`
	// Relationship holds the value of the "relationship" field.
	Relationship string `json:"relationship,omitempty"`
	// Strength holds the value of the "strength" field.
	Strength     float64 `json:"strength,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TopicEdge) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case topicedge.FieldStrength:
			values[i] = new(sql.NullFloat64)
		case topicedge.FieldID, topicedge.FieldFromTopicID, topicedge.FieldToTopicID, topicedge.FieldRelationship:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TopicEdge fields.
func (te *TopicEdge) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case topicedge.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				te.ID = value.String
			}
		case topicedge.FieldFromTopicID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field from_topic_id", values[i])
			} else if value.Valid {
				te.FromTopicID = value.String
			}
		case topicedge.FieldToTopicID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field to_topic_id", values[i])
			} else if value.Valid {
				te.ToTopicID = value.String
			}
		case topicedge.FieldRelationship:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field relationship", values[i])
			} else if value.Valid {
				te.Relationship = value.String
			}
		case topicedge.FieldStrength:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field strength", values[i])
			} else if value.Valid {
				te.Strength = value.Float64
			}
		default:
			te.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TopicEdge.
// This includes values selected through modifiers, order, etc.
func (te *TopicEdge) Value(name string) (ent.Value, error) {
	return te.selectValues.Get(name)
}

// Update returns a builder for updating this TopicEdge.
// Note that you need to call TopicEdge.Unwrap() before calling this method if this TopicEdge
// was returned from a transaction, and the transaction was committed or rolled back.
func (te *TopicEdge) Update() *TopicEdgeUpdateOne {
	return NewTopicEdgeClient(te.config).UpdateOne(te)
}

// Unwrap unwraps the TopicEdge entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (te *TopicEdge) Unwrap() *TopicEdge {
	_tx, ok := te.config.driver.(*txDriver)
	if !ok {
		panic("ent: TopicEdge is not a transactional entity")
	}
	te.config.driver = _tx.drv
	return te
}

// String implements the fmt.Stringer.
func (te *TopicEdge) String() string {
	var builder strings.Builder
	builder.WriteString("TopicEdge(")
	builder.WriteString(fmt.Sprintf("id=%v, ", te.ID))
	builder.WriteString("from_topic_id=")
	builder.WriteString(te.FromTopicID)
	builder.WriteString(", ")
	builder.WriteString("to_topic_id=")
	builder.WriteString(te.ToTopicID)
	builder.WriteString(", ")
	builder.WriteString("relationship=")
	builder.WriteString(te.Relationship)
	builder.WriteString(", ")
	builder.WriteString("strength=")
	builder.WriteString(fmt.Sprintf("%v", te.Strength))
	builder.WriteByte(')')
	return builder.String()
}

// TopicEdges is a parsable slice of TopicEdge.
type TopicEdges []*TopicEdge
