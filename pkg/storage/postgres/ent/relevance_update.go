// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/feedradar/radar/pkg/storage/postgres/ent/predicate"
	"github.com/feedradar/radar/pkg/storage/postgres/ent/relevance"
)

// RelevanceUpdate is the builder for updating Relevance entities.
type RelevanceUpdate struct {
	config
	hooks    []Hook
	mutation *RelevanceMutation
}

// Where appends a list predicates to the RelevanceUpdate builder.
func (ru *RelevanceUpdate) Where(ps ...predicate.Relevance) *RelevanceUpdate {
	ru.mutation.Where(ps...)
	return ru
}

// SetTopicID sets the "topic_id" field.
func (ru *RelevanceUpdate) SetTopicID(s string) *RelevanceUpdate {
	ru.mutation.SetTopicID(s)
	return ru
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (ru *RelevanceUpdate) SetNillableTopicID(s *string) *RelevanceUpdate {
	if s != nil {
		ru.SetTopicID(*s)
	}
	return ru
}

// SetProjectID sets the "project_id" field.
func (ru *RelevanceUpdate) SetProjectID(s string) *RelevanceUpdate {
	ru.mutation.SetProjectID(s)
	return ru
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (ru *RelevanceUpdate) SetNillableProjectID(s *string) *RelevanceUpdate {
	if s != nil {
		ru.SetProjectID(*s)
	}
	return ru
}

// SetScore sets the "score" field.
func (ru *RelevanceUpdate) SetScore(f float64) *RelevanceUpdate {
	ru.mutation.ResetScore()
	ru.mutation.SetScore(f)
	return ru
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (ru *RelevanceUpdate) SetNillableScore(f *float64) *RelevanceUpdate {
	if f != nil {
		ru.SetScore(*f)
	}
	return ru
}

// AddScore adds f to the "score" field.
func (ru *RelevanceUpdate) AddScore(f float64) *RelevanceUpdate {
	ru.mutation.AddScore(f)
	return ru
}

// SetReasoning sets the "reasoning" field.
func (ru *RelevanceUpdate) SetReasoning(s string) *RelevanceUpdate {
	ru.mutation.SetReasoning(s)
	return ru
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (ru *RelevanceUpdate) SetNillableReasoning(s *string) *RelevanceUpdate {
	if s != nil {
		ru.SetReasoning(*s)
	}
	return ru
}

// SetContentOpportunity sets the "content_opportunity" field.
func (ru *RelevanceUpdate) SetContentOpportunity(s string) *RelevanceUpdate {
	ru.mutation.SetContentOpportunity(s)
	return ru
}

// SetNillableContentOpportunity sets the "content_opportunity" field if the given value is not nil.
func (ru *RelevanceUpdate) SetNillableContentOpportunity(s *string) *RelevanceUpdate {
	if s != nil {
		ru.SetContentOpportunity(*s)
	}
	return ru
}

// ClearContentOpportunity clears the value of the "content_opportunity" field.
func (ru *RelevanceUpdate) ClearContentOpportunity() *RelevanceUpdate {
	ru.mutation.ClearContentOpportunity()
	return ru
}

// SetCreatedAt sets the "created_at" field.
func (ru *RelevanceUpdate) SetCreatedAt(t time.Time) *RelevanceUpdate {
	ru.mutation.SetCreatedAt(t)
	return ru
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (ru *RelevanceUpdate) SetNillableCreatedAt(t *time.Time) *RelevanceUpdate {
	if t != nil {
		ru.SetCreatedAt(*t)
	}
	return ru
}

// Mutation returns the RelevanceMutation object of the builder.
func (ru *RelevanceUpdate) Mutation() *RelevanceMutation {
	return ru.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (ru *RelevanceUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, ru.sqlSave, ru.mutation, ru.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ru *RelevanceUpdate) SaveX(ctx context.Context) int {
	affected, err := ru.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (ru *RelevanceUpdate) Exec(ctx context.Context) error {
	_, err := ru.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ru *RelevanceUpdate) ExecX(ctx context.Context) {
	if err := ru.Exec(ctx); err != nil {
		panic(err)
	}
}

func (ru *RelevanceUpdate) sqlSave(ctx context.Context) (n int, err error) {
	_spec := sqlgraph.NewUpdateSpec(relevance.Table, relevance.Columns, sqlgraph.NewFieldSpec(relevance.FieldID, field.TypeString))
	if ps := ru.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := ru.mutation.TopicID(); ok {
		_spec.SetField(relevance.FieldTopicID, field.TypeString, value)
	}
	if value, ok := ru.mutation.ProjectID(); ok {
		_spec.SetField(relevance.FieldProjectID, field.TypeString, value)
	}
	if value, ok := ru.mutation.Score(); ok {
		_spec.SetField(relevance.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := ru.mutation.AddedScore(); ok {
		_spec.AddField(relevance.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := ru.mutation.Reasoning(); ok {
		_spec.SetField(relevance.FieldReasoning, field.TypeString, value)
	}
	if value, ok := ru.mutation.ContentOpportunity(); ok {
		_spec.SetField(relevance.FieldContentOpportunity, field.TypeString, value)
	}
	if ru.mutation.ContentOpportunityCleared() {
		_spec.ClearField(relevance.FieldContentOpportunity, field.TypeString)
	}
	if value, ok := ru.mutation.CreatedAt(); ok {
		_spec.SetField(relevance.FieldCreatedAt, field.TypeTime, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, ru.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{relevance.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	ru.mutation.done = true
	return n, nil
}

// RelevanceUpdateOne is the builder for updating a single Relevance entity.
type RelevanceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RelevanceMutation
}

// SetTopicID sets the "topic_id" field.
func (ruo *RelevanceUpdateOne) SetTopicID(s string) *RelevanceUpdateOne {
	ruo.mutation.SetTopicID(s)
	return ruo
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (ruo *RelevanceUpdateOne) SetNillableTopicID(s *string) *RelevanceUpdateOne {
	if s != nil {
		ruo.SetTopicID(*s)
	}
	return ruo
}

// SetProjectID sets the "project_id" field.
func (ruo *RelevanceUpdateOne) SetProjectID(s string) *RelevanceUpdateOne {
	ruo.mutation.SetProjectID(s)
	return ruo
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (ruo *RelevanceUpdateOne) SetNillableProjectID(s *string) *RelevanceUpdateOne {
	if s != nil {
		ruo.SetProjectID(*s)
	}
	return ruo
}

// SetScore sets the "score" field.
func (ruo *RelevanceUpdateOne) SetScore(f float64) *RelevanceUpdateOne {
	ruo.mutation.ResetScore()
	ruo.mutation.SetScore(f)
	return ruo
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (ruo *RelevanceUpdateOne) SetNillableScore(f *float64) *RelevanceUpdateOne {
	if f != nil {
		ruo.SetScore(*f)
	}
	return ruo
}

// AddScore adds f to the "score" field.
func (ruo *RelevanceUpdateOne) AddScore(f float64) *RelevanceUpdateOne {
	ruo.mutation.AddScore(f)
	return ruo
}

// SetReasoning sets the "reasoning" field.
func (ruo *RelevanceUpdateOne) SetReasoning(s string) *RelevanceUpdateOne {
	ruo.mutation.SetReasoning(s)
	return ruo
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (ruo *RelevanceUpdateOne) SetNillableReasoning(s *string) *RelevanceUpdateOne {
	if s != nil {
		ruo.SetReasoning(*s)
	}
	return ruo
}

// SetContentOpportunity sets the "content_opportunity" field.
func (ruo *RelevanceUpdateOne) SetContentOpportunity(s string) *RelevanceUpdateOne {
	ruo.mutation.SetContentOpportunity(s)
	return ruo
}

// SetNillableContentOpportunity sets the "content_opportunity" field if the given value is not nil.
func (ruo *RelevanceUpdateOne) SetNillableContentOpportunity(s *string) *RelevanceUpdateOne {
	if s != nil {
		ruo.SetContentOpportunity(*s)
	}
	return ruo
}

// ClearContentOpportunity clears the value of the "content_opportunity" field.
func (ruo *RelevanceUpdateOne) ClearContentOpportunity() *RelevanceUpdateOne {
	ruo.mutation.ClearContentOpportunity()
	return ruo
}

// SetCreatedAt sets the "created_at" field.
func (ruo *RelevanceUpdateOne) SetCreatedAt(t time.Time) *RelevanceUpdateOne {
	ruo.mutation.SetCreatedAt(t)
	return ruo
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (ruo *RelevanceUpdateOne) SetNillableCreatedAt(t *time.Time) *RelevanceUpdateOne {
	if t != nil {
		ruo.SetCreatedAt(*t)
	}
	return ruo
}

// Mutation returns the RelevanceMutation object of the builder.
func (ruo *RelevanceUpdateOne) Mutation() *RelevanceMutation {
	return ruo.mutation
}

// Where appends a list predicates to the RelevanceUpdate builder.
func (ruo *RelevanceUpdateOne) Where(ps ...predicate.Relevance) *RelevanceUpdateOne {
	ruo.mutation.Where(ps...)
	return ruo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (ruo *RelevanceUpdateOne) Select(field string, fields ...string) *RelevanceUpdateOne {
	ruo.fields = append([]string{field}, fields...)
	return ruo
}

// Save executes the query and returns the updated Relevance entity.
func (ruo *RelevanceUpdateOne) Save(ctx context.Context) (*Relevance, error) {
	return withHooks(ctx, ruo.sqlSave, ruo.mutation, ruo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ruo *RelevanceUpdateOne) SaveX(ctx context.Context) *Relevance {
	node, err := ruo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (ruo *RelevanceUpdateOne) Exec(ctx context.Context) error {
	_, err := ruo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ruo *RelevanceUpdateOne) ExecX(ctx context.Context) {
	if err := ruo.Exec(ctx); err != nil {
		panic(err)
	}
}

func (ruo *RelevanceUpdateOne) sqlSave(ctx context.Context) (_node *Relevance, err error) {
	_spec := sqlgraph.NewUpdateSpec(relevance.Table, relevance.Columns, sqlgraph.NewFieldSpec(relevance.FieldID, field.TypeString))
	id, ok := ruo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Relevance.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := ruo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, relevance.FieldID)
		for _, f := range fields {
			if !relevance.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != relevance.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := ruo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := ruo.mutation.TopicID(); ok {
		_spec.SetField(relevance.FieldTopicID, field.TypeString, value)
	}
	if value, ok := ruo.mutation.ProjectID(); ok {
		_spec.SetField(relevance.FieldProjectID, field.TypeString, value)
	}
	if value, ok := ruo.mutation.Score(); ok {
		_spec.SetField(relevance.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := ruo.mutation.AddedScore(); ok {
		_spec.AddField(relevance.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := ruo.mutation.Reasoning(); ok {
		_spec.SetField(relevance.FieldReasoning, field.TypeString, value)
	}
	if value, ok := ruo.mutation.ContentOpportunity(); ok {
		_spec.SetField(relevance.FieldContentOpportunity, field.TypeString, value)
	}
	if ruo.mutation.ContentOpportunityCleared() {
		_spec.ClearField(relevance.FieldContentOpportunity, field.TypeString)
	}
	if value, ok := ruo.mutation.CreatedAt(); ok {
		_spec.SetField(relevance.FieldCreatedAt, field.TypeTime, value)
	}
	_node = &Relevance{config: ruo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, ruo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{relevance.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	ruo.mutation.done = true
	return _node, nil
}
