// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/feedradar/radar/pkg/storage/postgres/ent/relevance"
)

// RelevanceCreate is the builder for creating a Relevance entity.
type RelevanceCreate struct {
	config
	mutation *RelevanceMutation
	hooks    []Hook
}

// SetTopicID sets the "topic_id" field.
func (rc *RelevanceCreate) SetTopicID(s string) *RelevanceCreate {
	rc.mutation.SetTopicID(s)
	return rc
}

// SetProjectID sets the "project_id" field.
func (rc *RelevanceCreate) SetProjectID(s string) *RelevanceCreate {
	rc.mutation.SetProjectID(s)
	return rc
}

// SetScore sets the "score" field.
func (rc *RelevanceCreate) SetScore(f float64) *RelevanceCreate {
	rc.mutation.SetScore(f)
	return rc
}

// SetReasoning sets the "reasoning" field.
func (rc *RelevanceCreate) SetReasoning(s string) *RelevanceCreate {
	rc.mutation.SetReasoning(s)
	return rc
}

// SetContentOpportunity sets the "content_opportunity" field.
func (rc *RelevanceCreate) SetContentOpportunity(s string) *RelevanceCreate {
	rc.mutation.SetContentOpportunity(s)
	return rc
}

// SetNillableContentOpportunity sets the "content_opportunity" field if the given value is not nil.
func (rc *RelevanceCreate) SetNillableContentOpportunity(s *string) *RelevanceCreate {
	if s != nil {
		rc.SetContentOpportunity(*s)
	}
	return rc
}

// SetCreatedAt sets the "created_at" field.
func (rc *RelevanceCreate) SetCreatedAt(t time.Time) *RelevanceCreate {
	rc.mutation.SetCreatedAt(t)
	return rc
}

// SetID sets the "id" field.
func (rc *RelevanceCreate) SetID(s string) *RelevanceCreate {
	rc.mutation.SetID(s)
	return rc
}

// Mutation returns the RelevanceMutation object of the builder.
func (rc *RelevanceCreate) Mutation() *RelevanceMutation {
	return rc.mutation
}

// Save creates the Relevance in the database.
func (rc *RelevanceCreate) Save(ctx context.Context) (*Relevance, error) {
	return withHooks(ctx, rc.sqlSave, rc.mutation, rc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (rc *RelevanceCreate) SaveX(ctx context.Context) *Relevance {
	v, err := rc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (rc *RelevanceCreate) Exec(ctx context.Context) error {
	_, err := rc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (rc *RelevanceCreate) ExecX(ctx context.Context) {
	if err := rc.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (rc *RelevanceCreate) check() error {
	if _, ok := rc.mutation.TopicID(); !ok {
		return &ValidationError{Name: "topic_id", err: errors.New(`ent: missing required field "Relevance.topic_id"`)}
	}
	if _, ok := rc.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "Relevance.project_id"`)}
	}
	if _, ok := rc.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "Relevance.score"`)}
	}
	if _, ok := rc.mutation.Reasoning(); !ok {
		return &ValidationError{Name: "reasoning", err: errors.New(`ent: missing required field "Relevance.reasoning"`)}
	}
	if _, ok := rc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Relevance.created_at"`)}
	}
	return nil
}

func (rc *RelevanceCreate) sqlSave(ctx context.Context) (*Relevance, error) {
	if err := rc.check(); err != nil {
		return nil, err
	}
	_node, _spec := rc.createSpec()
	if err := sqlgraph.CreateNode(ctx, rc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Relevance.ID type: %T", _spec.ID.Value)
		}
	}
	rc.mutation.id = &_node.ID
	rc.mutation.done = true
	return _node, nil
}

func (rc *RelevanceCreate) createSpec() (*Relevance, *sqlgraph.CreateSpec) {
	var (
		_node = &Relevance{config: rc.config}
		_spec = sqlgraph.NewCreateSpec(relevance.Table, sqlgraph.NewFieldSpec(relevance.FieldID, field.TypeString))
	)
	if id, ok := rc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := rc.mutation.TopicID(); ok {
		_spec.SetField(relevance.FieldTopicID, field.TypeString, value)
		_node.TopicID = value
	}
	if value, ok := rc.mutation.ProjectID(); ok {
		_spec.SetField(relevance.FieldProjectID, field.TypeString, value)
		_node.ProjectID = value
	}
	if value, ok := rc.mutation.Score(); ok {
		_spec.SetField(relevance.FieldScore, field.TypeFloat64, value)
		_node.Score = value
	}
	if value, ok := rc.mutation.Reasoning(); ok {
		_spec.SetField(relevance.FieldReasoning, field.TypeString, value)
		_node.Reasoning = value
	}
	if value, ok := rc.mutation.ContentOpportunity(); ok {
		_spec.SetField(relevance.FieldContentOpportunity, field.TypeString, value)
		_node.ContentOpportunity = value
	}
	if value, ok := rc.mutation.CreatedAt(); ok {
		_spec.SetField(relevance.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// RelevanceCreateBulk is the builder for creating many Relevance entities in bulk.
type RelevanceCreateBulk struct {
	config
	err      error
	builders []*RelevanceCreate
}

// Save creates the Relevance entities in the database.
func (rcb *RelevanceCreateBulk) Save(ctx context.Context) ([]*Relevance, error) {
	if rcb.err != nil {
		return nil, rcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(rcb.builders))
	nodes := make([]*Relevance, len(rcb.builders))
	mutators := make([]Mutator, len(rcb.builders))
	for i := range rcb.builders {
		func(i int, root context.Context) {
			builder := rcb.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RelevanceMutation)
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
					_, err = mutators[i+1].Mutate(root, rcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, rcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, rcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (rcb *RelevanceCreateBulk) SaveX(ctx context.Context) []*Relevance {
	v, err := rcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (rcb *RelevanceCreateBulk) Exec(ctx context.Context) error {
	_, err := rcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (rcb *RelevanceCreateBulk) ExecX(ctx context.Context) {
	if err := rcb.Exec(ctx); err != nil {
		panic(err)
	}
}
