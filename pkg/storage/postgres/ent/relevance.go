// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/feedradar/radar/pkg/storage/postgres/ent/relevance"
)

// Relevance is the model entity for the Relevance schema.
type Relevance struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TopicID holds the value of the "topic_id" field.
	TopicID string `json:"topic_id,omitempty"`
	// ProjectID holds the value of the "project_id" field.
	ProjectID string `json:"project_id,omitempty"`
	// Score holds the value of the "score" field.
	Score float64 `json:"score,omitempty"`
	// Reasoning holds the value of the "reasoning" field.
	Reasoning string `json:"reasoning,omitempty"`
	// ContentOpportunity holds the value of the "content_opportunity" field.
	ContentOpportunity string `json:"content_opportunity,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Relevance) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case relevance.FieldScore:
			values[i] = new(sql.NullFloat64)
		case relevance.FieldID, relevance.FieldTopicID, relevance.FieldProjectID, relevance.FieldReasoning, relevance.FieldContentOpportunity:
			values[i] = new(sql.NullString)
		case relevance.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Relevance fields.
func (r *Relevance) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case relevance.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				r.ID = value.String
			}
		case relevance.FieldTopicID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic_id", values[i])
			} else if value.Valid {
				r.TopicID = value.String
			}
		case relevance.FieldProjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value.Valid {
				r.ProjectID = value.String
			}
		case relevance.FieldScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				r.Score = value.Float64
			}
		case relevance.FieldReasoning:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reasoning", values[i])
			} else if value.Valid {
				r.Reasoning = value.String
			}
		case relevance.FieldContentOpportunity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content_opportunity", values[i])
			} else if value.Valid {
				r.ContentOpportunity = value.String
			}
		case relevance.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				r.CreatedAt = value.Time
			}
		default:
			r.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Relevance.
// This includes values selected through modifiers, order, etc.
func (r *Relevance) Value(name string) (ent.Value, error) {
	return r.selectValues.Get(name)
}

// Update returns a builder for updating this Relevance.
// Note that you need to call Relevance.Unwrap() before calling this method if this Relevance
// was returned from a transaction, and the transaction was committed or rolled back.
func (r *Relevance) Update() *RelevanceUpdateOne {
	return NewRelevanceClient(r.config).UpdateOne(r)
}

// Unwrap unwraps the Relevance entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (r *Relevance) Unwrap() *Relevance {
	_tx, ok := r.config.driver.(*txDriver)
	if !ok {
		panic("ent: Relevance is not a transactional entity")
	}
	r.config.driver = _tx.drv
	return r
}

// String implements the fmt.Stringer.
func (r *Relevance) String() string {
	var builder strings.Builder
	builder.WriteString("Relevance(")
	builder.WriteString(fmt.Sprintf("id=%v, ", r.ID))
	builder.WriteString("topic_id=")
	builder.WriteString(r.TopicID)
	builder.WriteString(", ")
	builder.WriteString("project_id=")
	builder.WriteString(r.ProjectID)
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", r.Score))
	builder.WriteString(", ")
	builder.WriteString("reasoning=")
	builder.WriteString(r.Reasoning)
	builder.WriteString(", ")
	builder.WriteString("content_opportunity=")
	builder.WriteString(r.ContentOpportunity)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(r.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Relevances is a parsable slice of Relevance.
type Relevances []*Relevance
