// Code generated by ent, DO NOT EDIT.

package topicedge

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the topicedge type in the database.
	Label = "topic_edge"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldFromTopicID holds the string denoting the from_topic_id field in the database.
	FieldFromTopicID = "from_topic_id"
	// FieldToTopicID holds the string denoting the to_topic_id field in the database.
	FieldToTopicID = "to_topic_id"
	// FieldRelationship holds the string denoting the relationship field in the database.
	FieldRelationship = "relationship"
	// FieldStrength holds the string denoting the strength field in the database.
	FieldStrength = "strength"
	// Table holds the table name of the topicedge in the database.
	Table = "topic_edges"
)

// Columns holds all SQL columns for topicedge fields.
var Columns = []string{
	FieldID,
	FieldFromTopicID,
	FieldToTopicID,
	FieldRelationship,
	FieldStrength,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultStrength holds the default value on creation for the "strength" field.
	DefaultStrength float64
)

// OrderOption defines the ordering options for the TopicEdge queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByFromTopicID orders the results by the from_topic_id field.
func ByFromTopicID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFromTopicID, opts...).ToFunc()
}

// ByToTopicID orders the results by the to_topic_id field.
func ByToTopicID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToTopicID, opts...).ToFunc()
}

// ByRelationship orders the results by the relationship field.
func ByRelationship(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRelationship, opts...).ToFunc()
}

// ByStrength orders the results by the strength field.
func ByStrength(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStrength, opts...).ToFunc()
}
