// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Feedback is the predicate function for feedback builders.
type Feedback func(*sql.Selector)

// Post is the predicate function for post builders.
type Post func(*sql.Selector)

// Project is the predicate function for project builders.
type Project func(*sql.Selector)

// Relevance is the predicate function for relevance builders.
type Relevance func(*sql.Selector)

// Topic is the predicate function for topic builders.
type Topic func(*sql.Selector)

// TopicEdge is the predicate function for topicedge builders.
type TopicEdge func(*sql.Selector)
