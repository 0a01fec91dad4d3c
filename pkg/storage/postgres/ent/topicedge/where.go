// Code generated by ent, DO NOT EDIT.

package topicedge

import (
	"entgo.io/ent/dialect/sql"
	"github.com/feedradar/radar/pkg/storage/postgres/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.TopicEdge {
	return predicate.TopicEdge(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.TopicEdge {
	return predicate.TopicEdge(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.TopicEdge {
	return predicate.TopicEdge(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.TopicEdge {
	return predicate.TopicEdge(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.TopicEdge {
	return predicate.TopicEdge(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.TopicEdge {
	return predicate.TopicEdge(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.TopicEdge {
	return predicate.TopicEdge(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.TopicEdge {
	return predicate.TopicEdge(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.TopicEdge {
	return predicate.TopicEdge(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.TopicEdge {
	return predicate.TopicEdge(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.TopicEdge {
	return predicate.TopicEdge(sql.FieldContainsFold(FieldID, id))
}

// FromTopicID applies equality check predicate on the "from_topic_id" field. It's identical to FromTopicIDEQ.
func FromTopicID(v string) predicate.TopicEdge {
	return predicate.TopicEdge(sql.FieldEQ(FieldFromTopicID, v))
}

// ToTopicID applies equality check predicate on the "to_topic_id" field. It's identical to ToTopicIDEQ.
func ToTopicID(v string) predicate.TopicEdge {
	return predicate.TopicEdge(sql.FieldEQ(FieldToTopicID, v))
}

// Relationship applies equality check predicate on the "relationship" field. It's identical to RelationshipEQ.
func Relationship(v string) predicate.TopicEdge {
	return predicate.TopicEdge(sql.FieldEQ(FieldRelationship, v))
}

// Strength applies equality check predicate on the "strength" field. It's identical to StrengthEQ.
func Strength(v float64) predicate.TopicEdge {
	return predicate.TopicEdge(sql.FieldEQ(FieldStrength, v))
}

// FromTopicIDEQ applies the EQ predicate on the "from_topic_id" field.
func FromTopicIDEQ(v string) predicate.TopicEdge {
	return predicate.TopicEdge(sql.FieldEQ(FieldFromTopicID, v))
}

// FromTopicIDNEQ applies the NEQ predicate on the "from_topic_id" field.
func FromTopicIDNEQ(v string) predicate.TopicEdge {
	return predicate.TopicEdge(sql.FieldNEQ(FieldFromTopicID, v))
}

// FromTopicIDIn applies the In predicate on the "from_topic_id" field.
func FromTopicIDIn(vs ...string) predicate.TopicEdge {
	return predicate.TopicEdge(sql.FieldIn(FieldFromTopicID, vs...))
}

// FromTopicIDNotIn applies the NotIn predicate on the "from_topic_id" field.
func FromTopicIDNotIn(vs ...string) predicate.TopicEdge {
	return predicate.TopicEdge(sql.FieldNotIn(FieldFromTopicID, vs...))
}

// FromTopicIDGT applies the GT predicate on the "from_topic_id" field.
func FromTopicIDGT(v string) predicate.TopicEdge {
	return predicate.TopicEdge(sql.FieldGT(FieldFromTopicID, v))
}

// FromTopicIDGTE applies the GTE predicate on the "from_topic_id" field.
func FromTopicIDGTE(v string) predicate.TopicEdge {
	return predicate.TopicEdge(sql.FieldGTE(FieldFromTopicID, v))
}

// FromTopicIDLT applies the LT predicate on the "from_topic_id" field.
func FromTopicIDLT(v string) predicate.TopicEdge {
	return predicate.TopicEdge(sql.FieldLT(FieldFromTopicID, v))
}

// FromTopicIDLTE applies the LTE predicate on the "from_topic_id" field.
func FromTopicIDLTE(v string) predicate.TopicEdge {
	return predicate.TopicEdge(sql.FieldLTE(FieldFromTopicID, v))
}

// FromTopicIDContains applies the Contains predicate on the "from_topic_id" field.
func FromTopicIDContains(v string) predicate.TopicEdge {
	return predicate.TopicEdge(sql.FieldContains(FieldFromTopicID, v))
}

// FromTopicIDHasPrefix applies the HasPrefix predicate on the "from_topic_id" field.
func FromTopicIDHasPrefix(v string) predicate.TopicEdge {
	return predicate.TopicEdge(sql.FieldHasPrefix(FieldFromTopicID, v))
}

// FromTopicIDHasSuffix applies the HasSuffix predicate on the "from_topic_id" field.
func FromTopicIDHasSuffix(v string) predicate.TopicEdge {
	return predicate.TopicEdge(sql.FieldHasSuffix(FieldFromTopicID, v))
}

// FromTopicIDEqualFold applies the EqualFold predicate on the "from_topic_id" field.
func FromTopicIDEqualFold(v string) predicate.TopicEdge {
	return predicate.TopicEdge(sql.FieldEqualFold(FieldFromTopicID, v))
}

// FromTopicIDContainsFold applies the ContainsFold predicate on the "from_topic_id" field.
func FromTopicIDContainsFold(v string) predicate.TopicEdge {
	return predicate.TopicEdge(sql.FieldContainsFold(FieldFromTopicID, v))
}

// ToTopicIDEQ applies the EQ predicate on the "to_topic_id" field.
func ToTopicIDEQ(v string) predicate.TopicEdge {
	return predicate.TopicEdge(sql.FieldEQ(FieldToTopicID, v))
}

// ToTopicIDNEQ applies the NEQ predicate on the "to_topic_id" field.
func ToTopicIDNEQ(v string) predicate.TopicEdge {
	return predicate.TopicEdge(sql.FieldNEQ(FieldToTopicID, v))
}

// ToTopicIDIn applies the In predicate on the "to_topic_id" field.
func ToTopicIDIn(vs ...string) predicate.TopicEdge {
	return predicate.TopicEdge(sql.FieldIn(FieldToTopicID, vs...))
}

// ToTopicIDNotIn applies the NotIn predicate on the "to_topic_id" field.
func ToTopicIDNotIn(vs ...string) predicate.TopicEdge {
	return predicate.TopicEdge(sql.FieldNotIn(FieldToTopicID, vs...))
}

// ToTopicIDGT applies the GT predicate on the "to_topic_id" field.
func ToTopicIDGT(v string) predicate.TopicEdge {
	return predicate.TopicEdge(sql.FieldGT(FieldToTopicID, v))
}

// ToTopicIDGTE applies the GTE predicate on the "to_topic_id" field.
func ToTopicIDGTE(v string) predicate.TopicEdge {
	return predicate.TopicEdge(sql.FieldGTE(FieldToTopicID, v))
}

// ToTopicIDLT applies the LT predicate on the "to_topic_id" field.
func ToTopicIDLT(v string) predicate.TopicEdge {
	return predicate.TopicEdge(sql.FieldLT(FieldToTopicID, v))
}

// ToTopicIDLTE applies the LTE predicate on the "to_topic_id" field.
func ToTopicIDLTE(v string) predicate.TopicEdge {
	return predicate.TopicEdge(sql.FieldLTE(FieldToTopicID, v))
}

// ToTopicIDContains applies the Contains predicate on the "to_topic_id" field.
func ToTopicIDContains(v string) predicate.TopicEdge {
	return predicate.TopicEdge(sql.FieldContains(FieldToTopicID, v))
}

// ToTopicIDHasPrefix applies the HasPrefix predicate on the "to_topic_id" field.
func ToTopicIDHasPrefix(v string) predicate.TopicEdge {
	return predicate.TopicEdge(sql.FieldHasPrefix(FieldToTopicID, v))
}

// ToTopicIDHasSuffix applies the HasSuffix predicate on the "to_topic_id" field.
func ToTopicIDHasSuffix(v string) predicate.TopicEdge {
	return predicate.TopicEdge(sql.FieldHasSuffix(FieldToTopicID, v))
}

// ToTopicIDEqualFold applies the EqualFold predicate on the "to_topic_id" field.
func ToTopicIDEqualFold(v string) predicate.TopicEdge {
	return predicate.TopicEdge(sql.FieldEqualFold(FieldToTopicID, v))
}

// ToTopicIDContainsFold applies the ContainsFold predicate on the "to_topic_id" field.
func ToTopicIDContainsFold(v string) predicate.TopicEdge {
	return predicate.TopicEdge(sql.FieldContainsFold(FieldToTopicID, v))
}

// RelationshipEQ applies the EQ predicate on the "relationship" field.
func RelationshipEQ(v string) predicate.TopicEdge {
	return predicate.TopicEdge(sql.FieldEQ(FieldRelationship, v))
}

// RelationshipNEQ applies the NEQ predicate on the "relationship" field.
func RelationshipNEQ(v string) predicate.TopicEdge {
	return predicate.TopicEdge(sql.FieldNEQ(FieldRelationship, v))
}

// RelationshipIn applies the In predicate on the "relationship" field.
func RelationshipIn(vs ...string) predicate.TopicEdge {
	return predicate.TopicEdge(sql.FieldIn(FieldRelationship, vs...))
}

// RelationshipNotIn applies the NotIn predicate on the "relationship" field.
func RelationshipNotIn(vs ...string) predicate.TopicEdge {
	return predicate.TopicEdge(sql.FieldNotIn(FieldRelationship, vs...))
}

// RelationshipGT applies the GT predicate on the "relationship" field.
func RelationshipGT(v string) predicate.TopicEdge {
	return predicate.TopicEdge(sql.FieldGT(FieldRelationship, v))
}

// RelationshipGTE applies the GTE predicate on the "relationship" field.
func RelationshipGTE(v string) predicate.TopicEdge {
	return predicate.TopicEdge(sql.FieldGTE(FieldRelationship, v))
}

// RelationshipLT applies the LT predicate on the "relationship" field.
func RelationshipLT(v string) predicate.TopicEdge {
	return predicate.TopicEdge(sql.FieldLT(FieldRelationship, v))
}

// RelationshipLTE applies the LTE predicate on the "relationship" field.
func RelationshipLTE(v string) predicate.TopicEdge {
	return predicate.TopicEdge(sql.FieldLTE(FieldRelationship, v))
}

// RelationshipContains applies the Contains predicate on the "relationship" field.
func RelationshipContains(v string) predicate.TopicEdge {
	return predicate.TopicEdge(sql.FieldContains(FieldRelationship, v))
}

// RelationshipHasPrefix applies the HasPrefix predicate on the "relationship" field.
func RelationshipHasPrefix(v string) predicate.TopicEdge {
	return predicate.TopicEdge(sql.FieldHasPrefix(FieldRelationship, v))
}

// RelationshipHasSuffix applies the HasSuffix predicate on the "relationship" field.
func RelationshipHasSuffix(v string) predicate.TopicEdge {
	return predicate.TopicEdge(sql.FieldHasSuffix(FieldRelationship, v))
}

// RelationshipEqualFold applies the EqualFold predicate on the "relationship" field.
func RelationshipEqualFold(v string) predicate.TopicEdge {
	return predicate.TopicEdge(sql.FieldEqualFold(FieldRelationship, v))
}

// RelationshipContainsFold applies the ContainsFold predicate on the "relationship" field.
func RelationshipContainsFold(v string) predicate.TopicEdge {
	return predicate.TopicEdge(sql.FieldContainsFold(FieldRelationship, v))
}

// StrengthEQ applies the EQ predicate on the "strength" field.
func StrengthEQ(v float64) predicate.TopicEdge {
	return predicate.TopicEdge(sql.FieldEQ(FieldStrength, v))
}

// StrengthNEQ applies the NEQ predicate on the "strength" field.
func StrengthNEQ(v float64) predicate.TopicEdge {
	return predicate.TopicEdge(sql.FieldNEQ(FieldStrength, v))
}

// StrengthIn applies the In predicate on the "strength" field.
func StrengthIn(vs ...float64) predicate.TopicEdge {
	return predicate.TopicEdge(sql.FieldIn(FieldStrength, vs...))
}

// StrengthNotIn applies the NotIn predicate on the "strength" field.
func StrengthNotIn(vs ...float64) predicate.TopicEdge {
	return predicate.TopicEdge(sql.FieldNotIn(FieldStrength, vs...))
}

// StrengthGT applies the GT predicate on the "strength" field.
func StrengthGT(v float64) predicate.TopicEdge {
	return predicate.TopicEdge(sql.FieldGT(FieldStrength, v))
}

// StrengthGTE applies the GTE predicate on the "strength" field.
func StrengthGTE(v float64) predicate.TopicEdge {
	return predicate.TopicEdge(sql.FieldGTE(FieldStrength, v))
}

// StrengthLT applies the LT predicate on the "strength" field.
func StrengthLT(v float64) predicate.TopicEdge {
	return predicate.TopicEdge(sql.FieldLT(FieldStrength, v))
}

// StrengthLTE applies the LTE predicate on the "strength" field.
func StrengthLTE(v float64) predicate.TopicEdge {
	return predicate.TopicEdge(sql.FieldLTE(FieldStrength, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TopicEdge) predicate.TopicEdge {
	return predicate.TopicEdge(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TopicEdge) predicate.TopicEdge {
	return predicate.TopicEdge(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TopicEdge) predicate.TopicEdge {
	return predicate.TopicEdge(sql.NotPredicates(p))
}
