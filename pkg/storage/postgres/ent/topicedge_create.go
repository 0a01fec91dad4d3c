// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/feedradar/radar/pkg/storage/postgres/ent/topicedge"
)

// TopicEdgeCreate is the builder for creating a TopicEdge entity.
type TopicEdgeCreate struct {
	config
	mutation *TopicEdgeMutation
	hooks    []Hook
}

// SetFromTopicID sets the "from_topic_id" field.
func (tec *TopicEdgeCreate) SetFromTopicID(s string) *TopicEdgeCreate {
	tec.mutation.SetFromTopicID(s)
	return tec
}

// SetToTopicID sets the "to_topic_id" field.
func (tec *TopicEdgeCreate) SetToTopicID(s string) *TopicEdgeCreate {
	tec.mutation.SetToTopicID(s)
	return tec
}

// SetRelationship sets the "relationship" field.
func (tec *TopicEdgeCreate) SetRelationship(s string) *TopicEdgeCreate {
	tec.mutation.SetRelationship(s)
	return tec
}

// SetStrength sets the "strength" field.
func (tec *TopicEdgeCreate) SetStrength(f float64) *TopicEdgeCreate {
	tec.mutation.SetStrength(f)
	return tec
}

// SetNillableStrength sets the "strength" field if the given value is not nil.
func (tec *TopicEdgeCreate) SetNillableStrength(f *float64) *TopicEdgeCreate {
	if f != nil {
		tec.SetStrength(*f)
	}
	return tec
}

// SetID sets the "id" field.
func (tec *TopicEdgeCreate) SetID(s string) *TopicEdgeCreate {
	tec.mutation.SetID(s)
	return tec
}

// Mutation returns the TopicEdgeMutation object of the builder.
func (tec *TopicEdgeCreate) Mutation() *TopicEdgeMutation {
	return tec.mutation
}

// Save creates the TopicEdge in the database.
func (tec *TopicEdgeCreate) Save(ctx context.Context) (*TopicEdge, error) {
	tec.defaults()
	return withHooks(ctx, tec.sqlSave, tec.mutation, tec.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (tec *TopicEdgeCreate) SaveX(ctx context.Context) *TopicEdge {
	v, err := tec.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (tec *TopicEdgeCreate) Exec(ctx context.Context) error {
	_, err := tec.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tec *TopicEdgeCreate) ExecX(ctx context.Context) {
	if err := tec.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (tec *TopicEdgeCreate) defaults() {
	if _, ok := tec.mutation.Strength(); !ok {
		v := topicedge.DefaultStrength
		tec.mutation.SetStrength(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (tec *TopicEdgeCreate) check() error {
	if _, ok := tec.mutation.FromTopicID(); !ok {
		return &ValidationError{Name: "from_topic_id", err: errors.New(`ent: missing required field "TopicEdge.from_topic_id"`)}
	}
	if _, ok := tec.mutation.ToTopicID(); !ok {
		return &ValidationError{Name: "to_topic_id", err: errors.New(`ent: missing required field "TopicEdge.to_topic_id"`)}
	}
	if _, ok := tec.mutation.Relationship(); !ok {
		return &ValidationError{Name: "relationship", err: errors.New(`ent: missing required field "TopicEdge.relationship"`)}
	}
	if _, ok := tec.mutation.Strength(); !ok {
		return &ValidationError{Name: "strength", err: errors.New(`ent: missing required field "TopicEdge.strength"`)}
	}
	return nil
}

func (tec *TopicEdgeCreate) sqlSave(ctx context.Context) (*TopicEdge, error) {
	if err := tec.check(); err != nil {
		return nil, err
	}
	_node, _spec := tec.createSpec()
	if err := sqlgraph.CreateNode(ctx, tec.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected TopicEdge.ID type: %T", _spec.ID.Value)
		}
	}
	tec.mutation.id = &_node.ID
	tec.mutation.done = true
	return _node, nil
}

func (tec *TopicEdgeCreate) createSpec() (*TopicEdge, *sqlgraph.CreateSpec) {
	var (
		_node = &TopicEdge{config: tec.config}
		_spec = sqlgraph.NewCreateSpec(topicedge.Table, sqlgraph.NewFieldSpec(topicedge.FieldID, field.TypeString))
	)
	if id, ok := tec.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := tec.mutation.FromTopicID(); ok {
		_spec.SetField(topicedge.FieldFromTopicID, field.TypeString, value)
		_node.FromTopicID = value
	}
	if value, ok := tec.mutation.ToTopicID(); ok {
		_spec.SetField(topicedge.FieldToTopicID, field.TypeString, value)
		_node.ToTopicID = value
	}
	if value, ok := tec.mutation.Relationship(); ok {
		_spec.SetField(topicedge.FieldRelationship, field.TypeString, value)
		_node.Relationship = value
	}
	if value, ok := tec.mutation.Strength(); ok {
		_spec.SetField(topicedge.FieldStrength, field.TypeFloat64, value)
		_node.Strength = value
	}
	return _node, _spec
}

// TopicEdgeCreateBulk is the builder for creating many TopicEdge entities in bulk.
type TopicEdgeCreateBulk struct {
	config
	err      error
	builders []*TopicEdgeCreate
}

// Save creates the TopicEdge entities in the database.
func (tecb *TopicEdgeCreateBulk) Save(ctx context.Context) ([]*TopicEdge, error) {
	if tecb.err != nil {
		return nil, tecb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(tecb.builders))
	nodes := make([]*TopicEdge, len(tecb.builders))
	mutators := make([]Mutator, len(tecb.builders))
	for i := range tecb.builders {
		func(i int, root context.Context) {
			builder := tecb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TopicEdgeMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, tecb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, tecb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, tecb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (tecb *TopicEdgeCreateBulk) SaveX(ctx context.Context) []*TopicEdge {
	v, err := tecb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (tecb *TopicEdgeCreateBulk) Exec(ctx context.Context) error {
	_, err := tecb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tecb *TopicEdgeCreateBulk) ExecX(ctx context.Context) {
	if err := tecb.Exec(ctx); err != nil {
		panic(err)
	}
}
