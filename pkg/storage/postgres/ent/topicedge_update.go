// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/feedradar/radar/pkg/storage/postgres/ent/predicate"
	"github.com/feedradar/radar/pkg/storage/postgres/ent/topicedge"
)

// TopicEdgeUpdate is the builder for updating TopicEdge entities.
type TopicEdgeUpdate struct {
	config
	hooks    []Hook
	mutation *TopicEdgeMutation
}

// Where appends a list predicates to the TopicEdgeUpdate builder.
func (teu *TopicEdgeUpdate) Where(ps ...predicate.TopicEdge) *TopicEdgeUpdate {
	teu.mutation.Where(ps...)
	return teu
}

// SetFromTopicID sets the "from_topic_id" field.
func (teu *TopicEdgeUpdate) SetFromTopicID(s string) *TopicEdgeUpdate {
	teu.mutation.SetFromTopicID(s)
	return teu
}

// SetNillableFromTopicID sets the "from_topic_id" field if the given value is not nil.
func (teu *TopicEdgeUpdate) SetNillableFromTopicID(s *string) *TopicEdgeUpdate {
	if s != nil {
		teu.SetFromTopicID(*s)
	}
	return teu
}

// SetToTopicID sets the "to_topic_id" field.
func (teu *TopicEdgeUpdate) SetToTopicID(s string) *TopicEdgeUpdate {
	teu.mutation.SetToTopicID(s)
	return teu
}

// SetNillableToTopicID sets the "to_topic_id" field if the given value is not nil.
func (teu *TopicEdgeUpdate) SetNillableToTopicID(s *string) *TopicEdgeUpdate {
	if s != nil {
		teu.SetToTopicID(*s)
	}
	return teu
}

// SetRelationship sets the "relationship" field.
func (teu *TopicEdgeUpdate) SetRelationship(s string) *TopicEdgeUpdate {
	teu.mutation.SetRelationship(s)
	return teu
}

// SetNillableRelationship sets the "relationship" field if the given value is not nil.
func (teu *TopicEdgeUpdate) SetNillableRelationship(s *string) *TopicEdgeUpdate {
	if s != nil {
		teu.SetRelationship(*s)
	}
	return teu
}

// SetStrength sets the "strength" field.
func (teu *TopicEdgeUpdate) SetStrength(f float64) *TopicEdgeUpdate {
	teu.mutation.ResetStrength()
	teu.mutation.SetStrength(f)
	return teu
}

// SetNillableStrength sets the "strength" field if the given value is not nil.
func (teu *TopicEdgeUpdate) SetNillableStrength(f *float64) *TopicEdgeUpdate {
	if f != nil {
		teu.SetStrength(*f)
	}
	return teu
}

// AddStrength adds f to the "strength" field.
func (teu *TopicEdgeUpdate) AddStrength(f float64) *TopicEdgeUpdate {
	teu.mutation.AddStrength(f)
	return teu
}

// Mutation returns the TopicEdgeMutation object of the builder.
func (teu *TopicEdgeUpdate) Mutation() *TopicEdgeMutation {
	return teu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (teu *TopicEdgeUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, teu.sqlSave, teu.mutation, teu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (teu *TopicEdgeUpdate) SaveX(ctx context.Context) int {
	affected, err := teu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (teu *TopicEdgeUpdate) Exec(ctx context.Context) error {
	_, err := teu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (teu *TopicEdgeUpdate) ExecX(ctx context.Context) {
	if err := teu.Exec(ctx); err != nil {
		panic(err)
	}
}

func (teu *TopicEdgeUpdate) sqlSave(ctx context.Context) (n int, err error) {
	_spec := sqlgraph.NewUpdateSpec(topicedge.Table, topicedge.Columns, sqlgraph.NewFieldSpec(topicedge.FieldID, field.TypeString))
	if ps := teu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := teu.mutation.FromTopicID(); ok {
		_spec.SetField(topicedge.FieldFromTopicID, field.TypeString, value)
	}
	if value, ok := teu.mutation.ToTopicID(); ok {
		_spec.SetField(topicedge.FieldToTopicID, field.TypeString, value)
	}
	if value, ok := teu.mutation.Relationship(); ok {
		_spec.SetField(topicedge.FieldRelationship, field.TypeString, value)
	}
	if value, ok := teu.mutation.Strength(); ok {
		_spec.SetField(topicedge.FieldStrength, field.TypeFloat64, value)
	}
	if value, ok := teu.mutation.AddedStrength(); ok {
		_spec.AddField(topicedge.FieldStrength, field.TypeFloat64, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, teu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{topicedge.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	teu.mutation.done = true
	return n, nil
}

// TopicEdgeUpdateOne is the builder for updating a single TopicEdge entity.
type TopicEdgeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TopicEdgeMutation
}

// SetFromTopicID sets the "from_topic_id" field.
func (teuo *TopicEdgeUpdateOne) SetFromTopicID(s string) *TopicEdgeUpdateOne {
	teuo.mutation.SetFromTopicID(s)
	return teuo
}

// SetNillableFromTopicID sets the "from_topic_id" field if the given value is not nil.
func (teuo *TopicEdgeUpdateOne) SetNillableFromTopicID(s *string) *TopicEdgeUpdateOne {
	if s != nil {
		teuo.SetFromTopicID(*s)
	}
	return teuo
}

// SetToTopicID sets the "to_topic_id" field.
func (teuo *TopicEdgeUpdateOne) SetToTopicID(s string) *TopicEdgeUpdateOne {
	teuo.mutation.SetToTopicID(s)
	return teuo
}

// SetNillableToTopicID sets the "to_topic_id" field if the given value is not nil.
func (teuo *TopicEdgeUpdateOne) SetNillableToTopicID(s *string) *TopicEdgeUpdateOne {
	if s != nil {
		teuo.SetToTopicID(*s)
	}
	return teuo
}

// SetRelationship sets the "relationship" field.
func (teuo *TopicEdgeUpdateOne) SetRelationship(s string) *TopicEdgeUpdateOne {
	teuo.mutation.SetRelationship(s)
	return teuo
}

// SetNillableRelationship sets the "relationship" field if the given value is not nil.
func (teuo *TopicEdgeUpdateOne) SetNillableRelationship(s *string) *TopicEdgeUpdateOne {
	if s != nil {
		teuo.SetRelationship(*s)
	}
	return teuo
}

// SetStrength sets the "strength" field.
func (teuo *TopicEdgeUpdateOne) SetStrength(f float64) *TopicEdgeUpdateOne {
	teuo.mutation.ResetStrength()
	teuo.mutation.SetStrength(f)
	return teuo
}

// SetNillableStrength sets the "strength" field if the given value is not nil.
func (teuo *TopicEdgeUpdateOne) SetNillableStrength(f *float64) *TopicEdgeUpdateOne {
	if f != nil {
		teuo.SetStrength(*f)
	}
	return teuo
}

// AddStrength adds f to the "strength" field.
func (teuo *TopicEdgeUpdateOne) AddStrength(f float64) *TopicEdgeUpdateOne {
	teuo.mutation.AddStrength(f)
	return teuo
}

// Mutation returns the TopicEdgeMutation object of the builder.
func (teuo *TopicEdgeUpdateOne) Mutation() *TopicEdgeMutation {
	return teuo.mutation
}

// Where appends a list predicates to the TopicEdgeUpdate builder.
func (teuo *TopicEdgeUpdateOne) Where(ps ...predicate.TopicEdge) *TopicEdgeUpdateOne {
	teuo.mutation.Where(ps...)
	return teuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (teuo *TopicEdgeUpdateOne) Select(field string, fields ...string) *TopicEdgeUpdateOne {
	teuo.fields = append([]string{field}, fields...)
	return teuo
}

// Save executes the query and returns the updated TopicEdge entity.
func (teuo *TopicEdgeUpdateOne) Save(ctx context.Context) (*TopicEdge, error) {
	return withHooks(ctx, teuo.sqlSave, teuo.mutation, teuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (teuo *TopicEdgeUpdateOne) SaveX(ctx context.Context) *TopicEdge {
	node, err := teuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (teuo *TopicEdgeUpdateOne) Exec(ctx context.Context) error {
	_, err := teuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (teuo *TopicEdgeUpdateOne) ExecX(ctx context.Context) {
	if err := teuo.Exec(ctx); err != nil {
		panic(err)
	}
}

func (teuo *TopicEdgeUpdateOne) sqlSave(ctx context.Context) (_node *TopicEdge, err error) {
	_spec := sqlgraph.NewUpdateSpec(topicedge.Table, topicedge.Columns, sqlgraph.NewFieldSpec(topicedge.FieldID, field.TypeString))
	id, ok := teuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TopicEdge.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := teuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, topicedge.FieldID)
		for _, f := range fields {
			if !topicedge.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != topicedge.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := teuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := teuo.mutation.FromTopicID(); ok {
		_spec.SetField(topicedge.FieldFromTopicID, field.TypeString, value)
	}
	if value, ok := teuo.mutation.ToTopicID(); ok {
		_spec.SetField(topicedge.FieldToTopicID, field.TypeString, value)
	}
	if value, ok := teuo.mutation.Relationship(); ok {
		_spec.SetField(topicedge.FieldRelationship, field.TypeString, value)
	}
	if value, ok := teuo.mutation.Strength(); ok {
		_spec.SetField(topicedge.FieldStrength, field.TypeFloat64, value)
	}
	if value, ok := teuo.mutation.AddedStrength(); ok {
		_spec.AddField(topicedge.FieldStrength, field.TypeFloat64, value)
	}
	_node = &TopicEdge{config: teuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, teuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{topicedge.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	teuo.mutation.done = true
	return _node, nil
}
