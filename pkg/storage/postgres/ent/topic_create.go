// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/feedradar/radar/pkg/storage/postgres/ent/topic"
)

// TopicCreate is the builder for creating a Topic entity.
type TopicCreate struct {
	config
	mutation *TopicMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (tc *TopicCreate) SetName(s string) *TopicCreate {
	tc.mutation.SetName(s)
	return tc
}

// SetSummary sets the "summary" field.
func (tc *TopicCreate) SetSummary(s string) *TopicCreate {
	tc.mutation.SetSummary(s)
	return tc
}

// SetKeywords sets the "keywords" field.
func (tc *TopicCreate) SetKeywords(s []string) *TopicCreate {
	tc.mutation.SetKeywords(s)
	return tc
}

// SetPostCount sets the "post_count" field.
func (tc *TopicCreate) SetPostCount(i int) *TopicCreate {
	tc.mutation.SetPostCount(i)
	return tc
}

// SetNillablePostCount sets the "post_count" field if the given value is not nil.
func (tc *TopicCreate) SetNillablePostCount(i *int) *TopicCreate {
	if i != nil {
		tc.SetPostCount(*i)
	}
	return tc
}

// SetImportance sets the "importance" field.
func (tc *TopicCreate) SetImportance(i int) *TopicCreate {
	tc.mutation.SetImportance(i)
	return tc
}

// SetNillableImportance sets the "importance" field if the given value is not nil.
func (tc *TopicCreate) SetNillableImportance(i *int) *TopicCreate {
	if i != nil {
		tc.SetImportance(*i)
	}
	return tc
}

// SetSourcePostID sets the "source_post_id" field.
func (tc *TopicCreate) SetSourcePostID(s string) *TopicCreate {
	tc.mutation.SetSourcePostID(s)
	return tc
}

// SetNillableSourcePostID sets the "source_post_id" field if the given value is not nil.
func (tc *TopicCreate) SetNillableSourcePostID(s *string) *TopicCreate {
	if s != nil {
		tc.SetSourcePostID(*s)
	}
	return tc
}

// SetSourceURL sets the "source_url" field.
func (tc *TopicCreate) SetSourceURL(s string) *TopicCreate {
	tc.mutation.SetSourceURL(s)
	return tc
}

// SetNillableSourceURL sets the "source_url" field if the given value is not nil.
func (tc *TopicCreate) SetNillableSourceURL(s *string) *TopicCreate {
	if s != nil {
		tc.SetSourceURL(*s)
	}
	return tc
}

// SetCreatedAt sets the "created_at" field.
func (tc *TopicCreate) SetCreatedAt(t time.Time) *TopicCreate {
	tc.mutation.SetCreatedAt(t)
	return tc
}

// SetUpdatedAt sets the "updated_at" field.
func (tc *TopicCreate) SetUpdatedAt(t time.Time) *TopicCreate {
	tc.mutation.SetUpdatedAt(t)
	return tc
}

// SetID sets the "id" field.
func (tc *TopicCreate) SetID(s string) *TopicCreate {
	tc.mutation.SetID(s)
	return tc
}

// Mutation returns the TopicMutation object of the builder.
func (tc *TopicCreate) Mutation() *TopicMutation {
	return tc.mutation
}

// Save creates the Topic in the database.
func (tc *TopicCreate) Save(ctx context.Context) (*Topic, error) {
	tc.defaults()
	return withHooks(ctx, tc.sqlSave, tc.mutation, tc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (tc *TopicCreate) SaveX(ctx context.Context) *Topic {
	v, err := tc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (tc *TopicCreate) Exec(ctx context.Context) error {
	_, err := tc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tc *TopicCreate) ExecX(ctx context.Context) {
	if err := tc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (tc *TopicCreate) defaults() {
	if _, ok := tc.mutation.PostCount(); !ok {
		v := topic.DefaultPostCount
		tc.mutation.SetPostCount(v)
	}
	if _, ok := tc.mutation.Importance(); !ok {
		v := topic.DefaultImportance
		tc.mutation.SetImportance(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (tc *TopicCreate) check() error {
	if _, ok := tc.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Topic.name"`)}
	}
	if _, ok := tc.mutation.Summary(); !ok {
		return &ValidationError{Name: "summary", err: errors.New(`ent: missing required field "Topic.summary"`)}
	}
	if _, ok := tc.mutation.Keywords(); !ok {
		return &ValidationError{Name: "keywords", err: errors.New(`ent: missing required field "Topic.keywords"`)}
	}
	if _, ok := tc.mutation.PostCount(); !ok {
		return &ValidationError{Name: "post_count", err: errors.New(`ent: missing required field "Topic.post_count"`)}
	}
	if _, ok := tc.mutation.Importance(); !ok {
		return &ValidationError{Name: "importance", err: errors.New(`ent: missing required field "Topic.importance"`)}
	}
	if _, ok := tc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Topic.created_at"`)}
	}
	if _, ok := tc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Topic.updated_at"`)}
	}
	return nil
}

func (tc *TopicCreate) sqlSave(ctx context.Context) (*Topic, error) {
	if err := tc.check(); err != nil {
		return nil, err
	}
	_node, _spec := tc.createSpec()
	if err := sqlgraph.CreateNode(ctx, tc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Topic.ID type: %T", _spec.ID.Value)
		}
	}
	tc.mutation.id = &_node.ID
	tc.mutation.done = true
	return _node, nil
}

func (tc *TopicCreate) createSpec() (*Topic, *sqlgraph.CreateSpec) {
	var (
		_node = &Topic{config: tc.config}
		_spec = sqlgraph.NewCreateSpec(topic.Table, sqlgraph.NewFieldSpec(topic.FieldID, field.TypeString))
	)
	if id, ok := tc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := tc.mutation.Name(); ok {
		_spec.SetField(topic.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := tc.mutation.Summary(); ok {
		_spec.SetField(topic.FieldSummary, field.TypeString, value)
		_node.Summary = value
	}
	if value, ok := tc.mutation.Keywords(); ok {
		_spec.SetField(topic.FieldKeywords, field.TypeJSON, value)
		_node.Keywords = value
	}
	if value, ok := tc.mutation.PostCount(); ok {
		_spec.SetField(topic.FieldPostCount, field.TypeInt, value)
		_node.PostCount = value
	}
	if value, ok := tc.mutation.Importance(); ok {
		_spec.SetField(topic.FieldImportance, field.TypeInt, value)
		_node.Importance = value
	}
	if value, ok := tc.mutation.SourcePostID(); ok {
		_spec.SetField(topic.FieldSourcePostID, field.TypeString, value)
		_node.SourcePostID = value
	}
	if value, ok := tc.mutation.SourceURL(); ok {
		_spec.SetField(topic.FieldSourceURL, field.TypeString, value)
		_node.SourceURL = value
	}
	if value, ok := tc.mutation.CreatedAt(); ok {
		_spec.SetField(topic.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := tc.mutation.UpdatedAt(); ok {
		_spec.SetField(topic.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// TopicCreateBulk is the builder for creating many Topic entities in bulk.
type TopicCreateBulk struct {
	config
	err      error
	builders []*TopicCreate
}

// Save creates the Topic entities in the database.
func (tcb *TopicCreateBulk) Save(ctx context.Context) ([]*Topic, error) {
	if tcb.err != nil {
		return nil, tcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(tcb.builders))
	nodes := make([]*Topic, len(tcb.builders))
	mutators := make([]Mutator, len(tcb.builders))
	for i := range tcb.builders {
		func(i int, root context.Context) {
			builder := tcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TopicMutation)
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
					_, err = mutators[i+1].Mutate(root, tcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, tcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, tcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (tcb *TopicCreateBulk) SaveX(ctx context.Context) []*Topic {
	v, err := tcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (tcb *TopicCreateBulk) Exec(ctx context.Context) error {
	_, err := tcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tcb *TopicCreateBulk) ExecX(ctx context.Context) {
	if err := tcb.Exec(ctx); err != nil {
		panic(err)
	}
}
