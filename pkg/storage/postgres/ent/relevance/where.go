// Code generated by ent, DO NOT EDIT.

package relevance

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/feedradar/radar/pkg/storage/postgres/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Relevance {
	return predicate.Relevance(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Relevance {
	return predicate.Relevance(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Relevance {
	return predicate.Relevance(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Relevance {
	return predicate.Relevance(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Relevance {
	return predicate.Relevance(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Relevance {
	return predicate.Relevance(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Relevance {
	return predicate.Relevance(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Relevance {
	return predicate.Relevance(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Relevance {
	return predicate.Relevance(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Relevance {
	return predicate.Relevance(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Relevance {
	return predicate.Relevance(sql.FieldContainsFold(FieldID, id))
}

// TopicID applies equality check predicate on the "topic_id" field. It's identical to TopicIDEQ.
func TopicID(v string) predicate.Relevance {
	return predicate.Relevance(sql.FieldEQ(FieldTopicID, v))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v string) predicate.Relevance {
	return predicate.Relevance(sql.FieldEQ(FieldProjectID, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v float64) predicate.Relevance {
	return predicate.Relevance(sql.FieldEQ(FieldScore, v))
}

// Reasoning applies equality check predicate on the "reasoning" field. It's identical to ReasoningEQ.
func Reasoning(v string) predicate.Relevance {
	return predicate.Relevance(sql.FieldEQ(FieldReasoning, v))
}

// ContentOpportunity applies equality check predicate on the "content_opportunity" field. It's identical to ContentOpportunityEQ.
func ContentOpportunity(v string) predicate.Relevance {
	return predicate.Relevance(sql.FieldEQ(FieldContentOpportunity, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Relevance {
	return predicate.Relevance(sql.FieldEQ(FieldCreatedAt, v))
}

// TopicIDEQ applies the EQ predicate on the "topic_id" field.
func TopicIDEQ(v string) predicate.Relevance {
	return predicate.Relevance(sql.FieldEQ(FieldTopicID, v))
}

// TopicIDNEQ applies the NEQ predicate on the "topic_id" field.
func TopicIDNEQ(v string) predicate.Relevance {
	return predicate.Relevance(sql.FieldNEQ(FieldTopicID, v))
}

// TopicIDIn applies the In predicate on the "topic_id" field.
func TopicIDIn(vs ...string) predicate.Relevance {
	return predicate.Relevance(sql.FieldIn(FieldTopicID, vs...))
}

// TopicIDNotIn applies the NotIn predicate on the "topic_id" field.
func TopicIDNotIn(vs ...string) predicate.Relevance {
	return predicate.Relevance(sql.FieldNotIn(FieldTopicID, vs...))
}

// TopicIDGT applies the GT predicate on the "topic_id" field.
func TopicIDGT(v string) predicate.Relevance {
	return predicate.Relevance(sql.FieldGT(FieldTopicID, v))
}

// TopicIDGTE applies the GTE predicate on the "topic_id" field.
func TopicIDGTE(v string) predicate.Relevance {
	return predicate.Relevance(sql.FieldGTE(FieldTopicID, v))
}

// TopicIDLT applies the LT predicate on the "topic_id" field.
func TopicIDLT(v string) predicate.Relevance {
	return predicate.Relevance(sql.FieldLT(FieldTopicID, v))
}

// TopicIDLTE applies the LTE predicate on the "topic_id" field.
func TopicIDLTE(v string) predicate.Relevance {
	return predicate.Relevance(sql.FieldLTE(FieldTopicID, v))
}

// TopicIDContains applies the Contains predicate on the "topic_id" field.
func TopicIDContains(v string) predicate.Relevance {
	return predicate.Relevance(sql.FieldContains(FieldTopicID, v))
}

// TopicIDHasPrefix applies the HasPrefix predicate on the "topic_id" field.
func TopicIDHasPrefix(v string) predicate.Relevance {
	return predicate.Relevance(sql.FieldHasPrefix(FieldTopicID, v))
}

// TopicIDHasSuffix applies the HasSuffix predicate on the "topic_id" field.
func TopicIDHasSuffix(v string) predicate.Relevance {
	return predicate.Relevance(sql.FieldHasSuffix(FieldTopicID, v))
}

// TopicIDEqualFold applies the EqualFold predicate on the "topic_id" field.
func TopicIDEqualFold(v string) predicate.Relevance {
	return predicate.Relevance(sql.FieldEqualFold(FieldTopicID, v))
}

// TopicIDContainsFold applies the ContainsFold predicate on the "topic_id" field.
func TopicIDContainsFold(v string) predicate.Relevance {
	return predicate.Relevance(sql.FieldContainsFold(FieldTopicID, v))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v string) predicate.Relevance {
	return predicate.Relevance(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v string) predicate.Relevance {
	return predicate.Relevance(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...string) predicate.Relevance {
	return predicate.Relevance(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...string) predicate.Relevance {
	return predicate.Relevance(sql.FieldNotIn(FieldProjectID, vs...))
}

// ProjectIDGT applies the GT predicate on the "project_id" field.
func ProjectIDGT(v string) predicate.Relevance {
	return predicate.Relevance(sql.FieldGT(FieldProjectID, v))
}

// ProjectIDGTE applies the GTE predicate on the "project_id" field.
func ProjectIDGTE(v string) predicate.Relevance {
	return predicate.Relevance(sql.FieldGTE(FieldProjectID, v))
}

// ProjectIDLT applies the LT predicate on the "project_id" field.
func ProjectIDLT(v string) predicate.Relevance {
	return predicate.Relevance(sql.FieldLT(FieldProjectID, v))
}

// ProjectIDLTE applies the LTE predicate on the "project_id" field.
func ProjectIDLTE(v string) predicate.Relevance {
	return predicate.Relevance(sql.FieldLTE(FieldProjectID, v))
}

// ProjectIDContains applies the Contains predicate on the "project_id" field.
func ProjectIDContains(v string) predicate.Relevance {
	return predicate.Relevance(sql.FieldContains(FieldProjectID, v))
}

// ProjectIDHasPrefix applies the HasPrefix predicate on the "project_id" field.
func ProjectIDHasPrefix(v string) predicate.Relevance {
	return predicate.Relevance(sql.FieldHasPrefix(FieldProjectID, v))
}

// ProjectIDHasSuffix applies the HasSuffix predicate on the "project_id" field.
func ProjectIDHasSuffix(v string) predicate.Relevance {
	return predicate.Relevance(sql.FieldHasSuffix(FieldProjectID, v))
}

// ProjectIDEqualFold applies the EqualFold predicate on the "project_id" field.
func ProjectIDEqualFold(v string) predicate.Relevance {
	return predicate.Relevance(sql.FieldEqualFold(FieldProjectID, v))
}

// ProjectIDContainsFold applies the ContainsFold predicate on the "project_id" field.
func ProjectIDContainsFold(v string) predicate.Relevance {
	return predicate.Relevance(sql.FieldContainsFold(FieldProjectID, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v float64) predicate.Relevance {
	return predicate.Relevance(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v float64) predicate.Relevance {
	return predicate.Relevance(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...float64) predicate.Relevance {
	return predicate.Relevance(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...float64) predicate.Relevance {
	return predicate.Relevance(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v float64) predicate.Relevance {
	return predicate.Relevance(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v float64) predicate.Relevance {
	return predicate.Relevance(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v float64) predicate.Relevance {
	return predicate.Relevance(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v float64) predicate.Relevance {
	return predicate.Relevance(sql.FieldLTE(FieldScore, v))
}

// ReasoningEQ applies the EQ predicate on the "reasoning" field.
func ReasoningEQ(v string) predicate.Relevance {
	return predicate.Relevance(sql.FieldEQ(FieldReasoning, v))
}

// ReasoningNEQ applies the NEQ predicate on the "reasoning" field.
func ReasoningNEQ(v string) predicate.Relevance {
	return predicate.Relevance(sql.FieldNEQ(FieldReasoning, v))
}

// ReasoningIn applies the In predicate on the "reasoning" field.
func ReasoningIn(vs ...string) predicate.Relevance {
	return predicate.Relevance(sql.FieldIn(FieldReasoning, vs...))
}

// ReasoningNotIn applies the NotIn predicate on the "reasoning" field.
func ReasoningNotIn(vs ...string) predicate.Relevance {
	return predicate.Relevance(sql.FieldNotIn(FieldReasoning, vs...))
}

// ReasoningGT applies the GT predicate on the "reasoning" field.
func ReasoningGT(v string) predicate.Relevance {
	return predicate.Relevance(sql.FieldGT(FieldReasoning, v))
}

// ReasoningGTE applies the GTE predicate on the "reasoning" field.
func ReasoningGTE(v string) predicate.Relevance {
	return predicate.Relevance(sql.FieldGTE(FieldReasoning, v))
}

// ReasoningLT applies the LT predicate on the "reasoning" field.
func ReasoningLT(v string) predicate.Relevance {
	return predicate.Relevance(sql.FieldLT(FieldReasoning, v))
}

// ReasoningLTE applies the LTE predicate on the "reasoning" field.
func ReasoningLTE(v string) predicate.Relevance {
	return predicate.Relevance(sql.FieldLTE(FieldReasoning, v))
}

// ReasoningContains applies the Contains predicate on the "reasoning" field.
func ReasoningContains(v string) predicate.Relevance {
	return predicate.Relevance(sql.FieldContains(FieldReasoning, v))
}

// ReasoningHasPrefix applies the HasPrefix predicate on the "reasoning" field.
func ReasoningHasPrefix(v string) predicate.Relevance {
	return predicate.Relevance(sql.FieldHasPrefix(FieldReasoning, v))
}

// ReasoningHasSuffix applies the HasSuffix predicate on the "reasoning" field.
func ReasoningHasSuffix(v string) predicate.Relevance {
	return predicate.Relevance(sql.FieldHasSuffix(FieldReasoning, v))
}

// ReasoningEqualFold applies the EqualFold predicate on the "reasoning" field.
func ReasoningEqualFold(v string) predicate.Relevance {
	return predicate.Relevance(sql.FieldEqualFold(FieldReasoning, v))
}

// ReasoningContainsFold applies the ContainsFold predicate on the "reasoning" field.
func ReasoningContainsFold(v string) predicate.Relevance {
	return predicate.Relevance(sql.FieldContainsFold(FieldReasoning, v))
}

// ContentOpportunityEQ applies the EQ predicate on the "content_opportunity" field.
func ContentOpportunityEQ(v string) predicate.Relevance {
	return predicate.Relevance(sql.FieldEQ(FieldContentOpportunity, v))
}

// ContentOpportunityNEQ applies the NEQ predicate on the "content_opportunity" field.
func ContentOpportunityNEQ(v string) predicate.Relevance {
	return predicate.Relevance(sql.FieldNEQ(FieldContentOpportunity, v))
}

// ContentOpportunityIn applies the In predicate on the "content_opportunity" field.
func ContentOpportunityIn(vs ...string) predicate.Relevance {
	return predicate.Relevance(sql.FieldIn(FieldContentOpportunity, vs...))
}

// ContentOpportunityNotIn applies the NotIn predicate on the "content_opportunity" field.
func ContentOpportunityNotIn(vs ...string) predicate.Relevance {
	return predicate.Relevance(sql.FieldNotIn(FieldContentOpportunity, vs...))
}

// ContentOpportunityGT applies the GT predicate on the "content_opportunity" field.
func ContentOpportunityGT(v string) predicate.Relevance {
	return predicate.Relevance(sql.FieldGT(FieldContentOpportunity, v))
}

// ContentOpportunityGTE applies the GTE predicate on the "content_opportunity" field.
func ContentOpportunityGTE(v string) predicate.Relevance {
	return predicate.Relevance(sql.FieldGTE(FieldContentOpportunity, v))
}

// ContentOpportunityLT applies the LT predicate on the "content_opportunity" field.
func ContentOpportunityLT(v string) predicate.Relevance {
	return predicate.Relevance(sql.FieldLT(FieldContentOpportunity, v))
}

// ContentOpportunityLTE applies the LTE predicate on the "content_opportunity" field.
func ContentOpportunityLTE(v string) predicate.Relevance {
	return predicate.Relevance(sql.FieldLTE(FieldContentOpportunity, v))
}

// ContentOpportunityContains applies the Contains predicate on the "content_opportunity" field.
func ContentOpportunityContains(v string) predicate.Relevance {
	return predicate.Relevance(sql.FieldContains(FieldContentOpportunity, v))
}

// ContentOpportunityHasPrefix applies the HasPrefix predicate on the "content_opportunity" field.
func ContentOpportunityHasPrefix(v string) predicate.Relevance {
	return predicate.Relevance(sql.FieldHasPrefix(FieldContentOpportunity, v))
}

// ContentOpportunityHasSuffix applies the HasSuffix predicate on the "content_opportunity" field.
func ContentOpportunityHasSuffix(v string) predicate.Relevance {
	return predicate.Relevance(sql.FieldHasSuffix(FieldContentOpportunity, v))
}

// ContentOpportunityIsNil applies the IsNil predicate on the "content_opportunity" field.
func ContentOpportunityIsNil() predicate.Relevance {
	return predicate.Relevance(sql.FieldIsNull(FieldContentOpportunity))
}

// ContentOpportunityNotNil applies the NotNil predicate on the "content_opportunity" field.
func ContentOpportunityNotNil() predicate.Relevance {
	return predicate.Relevance(sql.FieldNotNull(FieldContentOpportunity))
}

// ContentOpportunityEqualFold applies the EqualFold predicate on the "content_opportunity" field.
func ContentOpportunityEqualFold(v string) predicate.Relevance {
	return predicate.Relevance(sql.FieldEqualFold(FieldContentOpportunity, v))
}

// ContentOpportunityContainsFold applies the ContainsFold predicate on the "content_opportunity" field.
func ContentOpportunityContainsFold(v string) predicate.Relevance {
	return predicate.Relevance(sql.FieldContainsFold(FieldContentOpportunity, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Relevance {
	return predicate.Relevance(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Relevance {
	return predicate.Relevance(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Relevance {
	return predicate.Relevance(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Relevance {
	return predicate.Relevance(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Relevance {
	return predicate.Relevance(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Relevance {
	return predicate.Relevance(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Relevance {
	return predicate.Relevance(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Relevance {
	return predicate.Relevance(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Relevance) predicate.Relevance {
	return predicate.Relevance(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Relevance) predicate.Relevance {
	return predicate.Relevance(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Relevance) predicate.Relevance {
	return predicate.Relevance(sql.NotPredicates(p))
}
