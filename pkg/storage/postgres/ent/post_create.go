// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/feedradar/radar/pkg/storage/postgres/ent/post"
)

// PostCreate is the builder for creating a Post entity.
type PostCreate struct {
	config
	mutation *PostMutation
	hooks    []Hook
}

// SetExternalID sets the "external_id" field.
func (pc *PostCreate) SetExternalID(s string) *PostCreate {
	pc.mutation.SetExternalID(s)
	return pc
}

// SetAuthor sets the "author" field.
func (pc *PostCreate) SetAuthor(s string) *PostCreate {
	pc.mutation.SetAuthor(s)
	return pc
}

// SetAuthorHandle sets the "author_handle" field.
func (pc *PostCreate) SetAuthorHandle(s string) *PostCreate {
	pc.mutation.SetAuthorHandle(s)
	return pc
}

// SetFollowers sets the "followers" field.
func (pc *PostCreate) SetFollowers(i int) *PostCreate {
	pc.mutation.SetFollowers(i)
	return pc
}

// SetNillableFollowers sets the "followers" field if the given value is not nil.
func (pc *PostCreate) SetNillableFollowers(i *int) *PostCreate {
	if i != nil {
		pc.SetFollowers(*i)
	}
	return pc
}

// SetText sets the "text" field.
func (pc *PostCreate) SetText(s string) *PostCreate {
	pc.mutation.SetText(s)
	return pc
}

// SetURL sets the "url" field.
func (pc *PostCreate) SetURL(s string) *PostCreate {
	pc.mutation.SetURL(s)
	return pc
}

// SetTime sets the "time" field.
func (pc *PostCreate) SetTime(s string) *PostCreate {
	pc.mutation.SetTime(s)
	return pc
}

// SetHasMedia sets the "has_media" field.
func (pc *PostCreate) SetHasMedia(b bool) *PostCreate {
	pc.mutation.SetHasMedia(b)
	return pc
}

// SetNillableHasMedia sets the "has_media" field if the given value is not nil.
func (pc *PostCreate) SetNillableHasMedia(b *bool) *PostCreate {
	if b != nil {
		pc.SetHasMedia(*b)
	}
	return pc
}

// SetIsBookmark sets the "is_bookmark" field.
func (pc *PostCreate) SetIsBookmark(b bool) *PostCreate {
	pc.mutation.SetIsBookmark(b)
	return pc
}

// SetNillableIsBookmark sets the "is_bookmark" field if the given value is not nil.
func (pc *PostCreate) SetNillableIsBookmark(b *bool) *PostCreate {
	if b != nil {
		pc.SetIsBookmark(*b)
	}
	return pc
}

// SetTopicID sets the "topic_id" field.
func (pc *PostCreate) SetTopicID(s string) *PostCreate {
	pc.mutation.SetTopicID(s)
	return pc
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (pc *PostCreate) SetNillableTopicID(s *string) *PostCreate {
	if s != nil {
		pc.SetTopicID(*s)
	}
	return pc
}

// SetFetchedAt sets the "fetched_at" field.
func (pc *PostCreate) SetFetchedAt(t time.Time) *PostCreate {
	pc.mutation.SetFetchedAt(t)
	return pc
}

// SetID sets the "id" field.
func (pc *PostCreate) SetID(s string) *PostCreate {
	pc.mutation.SetID(s)
	return pc
}

// Mutation returns the PostMutation object of the builder.
func (pc *PostCreate) Mutation() *PostMutation {
	return pc.mutation
}

// Save creates the Post in the database.
func (pc *PostCreate) Save(ctx context.Context) (*Post, error) {
	pc.defaults()
	return withHooks(ctx, pc.sqlSave, pc.mutation, pc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (pc *PostCreate) SaveX(ctx context.Context) *Post {
	v, err := pc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (pc *PostCreate) Exec(ctx context.Context) error {
	_, err := pc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (pc *PostCreate) ExecX(ctx context.Context) {
	if err := pc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (pc *PostCreate) defaults() {
	if _, ok := pc.mutation.Followers(); !ok {
		v := post.DefaultFollowers
		pc.mutation.SetFollowers(v)
	}
	if _, ok := pc.mutation.HasMedia(); !ok {
		v := post.DefaultHasMedia
		pc.mutation.SetHasMedia(v)
	}
	if _, ok := pc.mutation.IsBookmark(); !ok {
		v := post.DefaultIsBookmark
		pc.mutation.SetIsBookmark(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (pc *PostCreate) check() error {
	if _, ok := pc.mutation.ExternalID(); !ok {
		return &ValidationError{Name: "external_id", err: errors.New(`ent: missing required field "Post.external_id"`)}
	}
	if _, ok := pc.mutation.Author(); !ok {
		return &ValidationError{Name: "author", err: errors.New(`ent: missing required field "Post.author"`)}
	}
	if _, ok := pc.mutation.AuthorHandle(); !ok {
		return &ValidationError{Name: "author_handle", err: errors.New(`ent: missing required field "Post.author_handle"`)}
	}
	if _, ok := pc.mutation.Followers(); !ok {
		return &ValidationError{Name: "followers", err: errors.New(`ent: missing required field "Post.followers"`)}
	}
	if _, ok := pc.mutation.Text(); !ok {
		return &ValidationError{Name: "text", err: errors.New(`ent: missing required field "Post.text"`)}
	}
	if _, ok := pc.mutation.URL(); !ok {
		return &ValidationError{Name: "url", err: errors.New(`ent: missing required field "Post.url"`)}
	}
	if _, ok := pc.mutation.Time(); !ok {
		return &ValidationError{Name: "time", err: errors.New(`ent: missing required field "Post.time"`)}
	}
	if _, ok := pc.mutation.HasMedia(); !ok {
		return &ValidationError{Name: "has_media", err: errors.New(`ent: missing required field "Post.has_media"`)}
	}
	if _, ok := pc.mutation.IsBookmark(); !ok {
		return &ValidationError{Name: "is_bookmark", err: errors.New(`ent: missing required field "Post.is_bookmark"`)}
	}
	if _, ok := pc.mutation.FetchedAt(); !ok {
		return &ValidationError{Name: "fetched_at", err: errors.New(`ent: missing required field "Post.fetched_at"`)}
	}
	return nil
}

func (pc *PostCreate) sqlSave(ctx context.Context) (*Post, error) {
	if err := pc.check(); err != nil {
		return nil, err
	}
	_node, _spec := pc.createSpec()
	if err := sqlgraph.CreateNode(ctx, pc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Post.ID type: %T", _spec.ID.Value)
		}
	}
	pc.mutation.id = &_node.ID
	pc.mutation.done = true
	return _node, nil
}

func (pc *PostCreate) createSpec() (*Post, *sqlgraph.CreateSpec) {
	var (
		_node = &Post{config: pc.config}
		_spec = sqlgraph.NewCreateSpec(post.Table, sqlgraph.NewFieldSpec(post.FieldID, field.TypeString))
	)
	if id, ok := pc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := pc.mutation.ExternalID(); ok {
		_spec.SetField(post.FieldExternalID, field.TypeString, value)
		_node.ExternalID = value
	}
	if value, ok := pc.mutation.Author(); ok {
		_spec.SetField(post.FieldAuthor, field.TypeString, value)
		_node.Author = value
	}
	if value, ok := pc.mutation.AuthorHandle(); ok {
		_spec.SetField(post.FieldAuthorHandle, field.TypeString, value)
		_node.AuthorHandle = value
	}
	if value, ok := pc.mutation.Followers(); ok {
		_spec.SetField(post.FieldFollowers, field.TypeInt, value)
		_node.Followers = value
	}
	if value, ok := pc.mutation.Text(); ok {
		_spec.SetField(post.FieldText, field.TypeString, value)
		_node.Text = value
	}
	if value, ok := pc.mutation.URL(); ok {
		_spec.SetField(post.FieldURL, field.TypeString, value)
		_node.URL = value
	}
	if value, ok := pc.mutation.Time(); ok {
		_spec.SetField(post.FieldTime, field.TypeString, value)
		_node.Time = value
	}
	if value, ok := pc.mutation.HasMedia(); ok {
		_spec.SetField(post.FieldHasMedia, field.TypeBool, value)
		_node.HasMedia = value
	}
	if value, ok := pc.mutation.IsBookmark(); ok {
		_spec.SetField(post.FieldIsBookmark, field.TypeBool, value)
		_node.IsBookmark = value
	}
	if value, ok := pc.mutation.TopicID(); ok {
		_spec.SetField(post.FieldTopicID, field.TypeString, value)
		_node.TopicID = value
	}
	if value, ok := pc.mutation.FetchedAt(); ok {
		_spec.SetField(post.FieldFetchedAt, field.TypeTime, value)
		_node.FetchedAt = value
	}
	return _node, _spec
}

// PostCreateBulk is the builder for creating many Post entities in bulk.
type PostCreateBulk struct {
	config
	err      error
	builders []*PostCreate
}

// Save creates the Post entities in the database.
func (pcb *PostCreateBulk) Save(ctx context.Context) ([]*Post, error) {
	if pcb.err != nil {
		return nil, pcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(pcb.builders))
	nodes := make([]*Post, len(pcb.builders))
	mutators := make([]Mutator, len(pcb.builders))
	for i := range pcb.builders {
		func(i int, root context.Context) {
			builder := pcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PostMutation)
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
					_, err = mutators[i+1].Mutate(root, pcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, pcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, pcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (pcb *PostCreateBulk) SaveX(ctx context.Context) []*Post {
	v, err := pcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (pcb *PostCreateBulk) Exec(ctx context.Context) error {
	_, err := pcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (pcb *PostCreateBulk) ExecX(ctx context.Context) {
	if err := pcb.Exec(ctx); err != nil {
		panic(err)
	}
}
