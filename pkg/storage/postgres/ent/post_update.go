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
	"github.com/feedradar/radar/pkg/storage/postgres/ent/post"
	"github.com/feedradar/radar/pkg/storage/postgres/ent/predicate"
)

// PostUpdate is the builder for updating Post entities.
type PostUpdate struct {
	config
	hooks    []Hook
	mutation *PostMutation
}

// Where appends a list predicates to the PostUpdate builder.
func (pu *PostUpdate) Where(ps ...predicate.Post) *PostUpdate {
	pu.mutation.Where(ps...)
	return pu
}

// SetExternalID sets the "external_id" field.
func (pu *PostUpdate) SetExternalID(s string) *PostUpdate {
	pu.mutation.SetExternalID(s)
	return pu
}

// SetNillableExternalID sets the "external_id" field if the given value is not nil.
func (pu *PostUpdate) SetNillableExternalID(s *string) *PostUpdate {
	if s != nil {
		pu.SetExternalID(*s)
	}
	return pu
}

// SetAuthor sets the "author" field.
func (pu *PostUpdate) SetAuthor(s string) *PostUpdate {
	pu.mutation.SetAuthor(s)
	return pu
}

// SetNillableAuthor sets the "author" field if the given value is not nil.
func (pu *PostUpdate) SetNillableAuthor(s *string) *PostUpdate {
	if s != nil {
		pu.SetAuthor(*s)
	}
	return pu
}

// SetAuthorHandle sets the "author_handle" field.
func (pu *PostUpdate) SetAuthorHandle(s string) *PostUpdate {
	pu.mutation.SetAuthorHandle(s)
	return pu
}

// SetNillableAuthorHandle sets the "author_handle" field if the given value is not nil.
func (pu *PostUpdate) SetNillableAuthorHandle(s *string) *PostUpdate {
	if s != nil {
		pu.SetAuthorHandle(*s)
	}
	return pu
}

// SetFollowers sets the "followers" field.
func (pu *PostUpdate) SetFollowers(i int) *PostUpdate {
	pu.mutation.ResetFollowers()
	pu.mutation.SetFollowers(i)
	return pu
}

// SetNillableFollowers sets the "followers" field if the given value is not nil.
func (pu *PostUpdate) SetNillableFollowers(i *int) *PostUpdate {
	if i != nil {
		pu.SetFollowers(*i)
	}
	return pu
}

// AddFollowers adds i to the "followers" field.
func (pu *PostUpdate) AddFollowers(i int) *PostUpdate {
	pu.mutation.AddFollowers(i)
	return pu
}

// SetText sets the "text" field.
func (pu *PostUpdate) SetText(s string) *PostUpdate {
	pu.mutation.SetText(s)
	return pu
}

// SetNillableText sets the "text" field if the given value is not nil.
func (pu *PostUpdate) SetNillableText(s *string) *PostUpdate {
	if s != nil {
		pu.SetText(*s)
	}
	return pu
}

// SetURL sets the "url" field.
func (pu *PostUpdate) SetURL(s string) *PostUpdate {
	pu.mutation.SetURL(s)
	return pu
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (pu *PostUpdate) SetNillableURL(s *string) *PostUpdate {
	if s != nil {
		pu.SetURL(*s)
	}
	return pu
}

// SetTime sets the "time" field.
func (pu *PostUpdate) SetTime(s string) *PostUpdate {
	pu.mutation.SetTime(s)
	return pu
}

// SetNillableTime sets the "time" field if the given value is not nil.
func (pu *PostUpdate) SetNillableTime(s *string) *PostUpdate {
	if s != nil {
		pu.SetTime(*s)
	}
	return pu
}

// SetHasMedia sets the "has_media" field.
func (pu *PostUpdate) SetHasMedia(b bool) *PostUpdate {
	pu.mutation.SetHasMedia(b)
	return pu
}

// SetNillableHasMedia sets the "has_media" field if the given value is not nil.
func (pu *PostUpdate) SetNillableHasMedia(b *bool) *PostUpdate {
	if b != nil {
		pu.SetHasMedia(*b)
	}
	return pu
}

// SetIsBookmark sets the "is_bookmark" field.
func (pu *PostUpdate) SetIsBookmark(b bool) *PostUpdate {
	pu.mutation.SetIsBookmark(b)
	return pu
}

// SetNillableIsBookmark sets the "is_bookmark" field if the given value is not nil.
func (pu *PostUpdate) SetNillableIsBookmark(b *bool) *PostUpdate {
	if b != nil {
		pu.SetIsBookmark(*b)
	}
	return pu
}

// SetTopicID sets the "topic_id" field.
func (pu *PostUpdate) SetTopicID(s string) *PostUpdate {
	pu.mutation.SetTopicID(s)
	return pu
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (pu *PostUpdate) SetNillableTopicID(s *string) *PostUpdate {
	if s != nil {
		pu.SetTopicID(*s)
	}
	return pu
}

// ClearTopicID clears the value of the "topic_id" field.
func (pu *PostUpdate) ClearTopicID() *PostUpdate {
	pu.mutation.ClearTopicID()
	return pu
}

// SetFetchedAt sets the "fetched_at" field.
func (pu *PostUpdate) SetFetchedAt(t time.Time) *PostUpdate {
	pu.mutation.SetFetchedAt(t)
	return pu
}

// SetNillableFetchedAt sets the "fetched_at" field if the given value is not nil.
func (pu *PostUpdate) SetNillableFetchedAt(t *time.Time) *PostUpdate {
	if t != nil {
		pu.SetFetchedAt(*t)
	}
	return pu
}

// Mutation returns the PostMutation object of the builder.
func (pu *PostUpdate) Mutation() *PostMutation {
	return pu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (pu *PostUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, pu.sqlSave, pu.mutation, pu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (pu *PostUpdate) SaveX(ctx context.Context) int {
	affected, err := pu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (pu *PostUpdate) Exec(ctx context.Context) error {
	_, err := pu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (pu *PostUpdate) ExecX(ctx context.Context) {
	if err := pu.Exec(ctx); err != nil {
		panic(err)
	}
}

func (pu *PostUpdate) sqlSave(ctx context.Context) (n int, err error) {
	_spec := sqlgraph.NewUpdateSpec(post.Table, post.Columns, sqlgraph.NewFieldSpec(post.FieldID, field.TypeString))
	if ps := pu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := pu.mutation.ExternalID(); ok {
		_spec.SetField(post.FieldExternalID, field.TypeString, value)
	}
	if value, ok := pu.mutation.Author(); ok {
		_spec.SetField(post.FieldAuthor, field.TypeString, value)
	}
	if value, ok := pu.mutation.AuthorHandle(); ok {
		_spec.SetField(post.FieldAuthorHandle, field.TypeString, value)
	}
	if value, ok := pu.mutation.Followers(); ok {
		_spec.SetField(post.FieldFollowers, field.TypeInt, value)
	}
	if value, ok := pu.mutation.AddedFollowers(); ok {
		_spec.AddField(post.FieldFollowers, field.TypeInt, value)
	}
	if value, ok := pu.mutation.Text(); ok {
		_spec.SetField(post.FieldText, field.TypeString, value)
	}
	if value, ok := pu.mutation.URL(); ok {
		_spec.SetField(post.FieldURL, field.TypeString, value)
	}
	if value, ok := pu.mutation.Time(); ok {
		_spec.SetField(post.FieldTime, field.TypeString, value)
	}
	if value, ok := pu.mutation.HasMedia(); ok {
		_spec.SetField(post.FieldHasMedia, field.TypeBool, value)
	}
	if value, ok := pu.mutation.IsBookmark(); ok {
		_spec.SetField(post.FieldIsBookmark, field.TypeBool, value)
	}
	if value, ok := pu.mutation.TopicID(); ok {
		_spec.SetField(post.FieldTopicID, field.TypeString, value)
	}
	if pu.mutation.TopicIDCleared() {
		_spec.ClearField(post.FieldTopicID, field.TypeString)
	}
	if value, ok := pu.mutation.FetchedAt(); ok {
		_spec.SetField(post.FieldFetchedAt, field.TypeTime, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, pu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{post.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	pu.mutation.done = true
	return n, nil
}

// PostUpdateOne is the builder for updating a single Post entity.
type PostUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PostMutation
}

// SetExternalID sets the "external_id" field.
func (puo *PostUpdateOne) SetExternalID(s string) *PostUpdateOne {
	puo.mutation.SetExternalID(s)
	return puo
}

// SetNillableExternalID sets the "external_id" field if the given value is not nil.
func (puo *PostUpdateOne) SetNillableExternalID(s *string) *PostUpdateOne {
	if s != nil {
		puo.SetExternalID(*s)
	}
	return puo
}

// SetAuthor sets the "author" field.
func (puo *PostUpdateOne) SetAuthor(s string) *PostUpdateOne {
	puo.mutation.SetAuthor(s)
	return puo
}

// SetNillableAuthor sets the "author" field if the given value is not nil.
func (puo *PostUpdateOne) SetNillableAuthor(s *string) *PostUpdateOne {
	if s != nil {
		puo.SetAuthor(*s)
	}
	return puo
}

// SetAuthorHandle sets the "author_handle" field.
func (puo *PostUpdateOne) SetAuthorHandle(s string) *PostUpdateOne {
	puo.mutation.SetAuthorHandle(s)
	return puo
}

// SetNillableAuthorHandle sets the "author_handle" field if the given value is not nil.
func (puo *PostUpdateOne) SetNillableAuthorHandle(s *string) *PostUpdateOne {
	if s != nil {
		puo.SetAuthorHandle(*s)
	}
	return puo
}

// SetFollowers sets the "followers" field.
func (puo *PostUpdateOne) SetFollowers(i int) *PostUpdateOne {
	puo.mutation.ResetFollowers()
	puo.mutation.SetFollowers(i)
	return puo
}

// SetNillableFollowers sets the "followers" field if the given value is not nil.
func (puo *PostUpdateOne) SetNillableFollowers(i *int) *PostUpdateOne {
	if i != nil {
		puo.SetFollowers(*i)
	}
	return puo
}

// AddFollowers adds i to the "followers" field.
func (puo *PostUpdateOne) AddFollowers(i int) *PostUpdateOne {
	puo.mutation.AddFollowers(i)
	return puo
}

// SetText sets the "text" field.
func (puo *PostUpdateOne) SetText(s string) *PostUpdateOne {
	puo.mutation.SetText(s)
	return puo
}

// SetNillableText sets the "text" field if the given value is not nil.
func (puo *PostUpdateOne) SetNillableText(s *string) *PostUpdateOne {
	if s != nil {
		puo.SetText(*s)
	}
	return puo
}

// SetURL sets the "url" field.
func (puo *PostUpdateOne) SetURL(s string) *PostUpdateOne {
	puo.mutation.SetURL(s)
	return puo
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (puo *PostUpdateOne) SetNillableURL(s *string) *PostUpdateOne {
	if s != nil {
		puo.SetURL(*s)
	}
	return puo
}

// SetTime sets the "time" field.
func (puo *PostUpdateOne) SetTime(s string) *PostUpdateOne {
	puo.mutation.SetTime(s)
	return puo
}

// SetNillableTime sets the "time" field if the given value is not nil.
func (puo *PostUpdateOne) SetNillableTime(s *string) *PostUpdateOne {
	if s != nil {
		puo.SetTime(*s)
	}
	return puo
}

// SetHasMedia sets the "has_media" field.
func (puo *PostUpdateOne) SetHasMedia(b bool) *PostUpdateOne {
	puo.mutation.SetHasMedia(b)
	return puo
}

// SetNillableHasMedia sets the "has_media" field if the given value is not nil.
func (puo *PostUpdateOne) SetNillableHasMedia(b *bool) *PostUpdateOne {
	if b != nil {
		puo.SetHasMedia(*b)
	}
	return puo
}

// SetIsBookmark sets the "is_bookmark" field.
func (puo *PostUpdateOne) SetIsBookmark(b bool) *PostUpdateOne {
	puo.mutation.SetIsBookmark(b)
	return puo
}

// SetNillableIsBookmark sets the "is_bookmark" field if the given value is not nil.
func (puo *PostUpdateOne) SetNillableIsBookmark(b *bool) *PostUpdateOne {
	if b != nil {
		puo.SetIsBookmark(*b)
	}
	return puo
}

// SetTopicID sets the "topic_id" field.
func (puo *PostUpdateOne) SetTopicID(s string) *PostUpdateOne {
	puo.mutation.SetTopicID(s)
	return puo
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (puo *PostUpdateOne) SetNillableTopicID(s *string) *PostUpdateOne {
	if s != nil {
		puo.SetTopicID(*s)
	}
	return puo
}

// ClearTopicID clears the value of the "topic_id" field.
func (puo *PostUpdateOne) ClearTopicID() *PostUpdateOne {
	puo.mutation.ClearTopicID()
	return puo
}

// SetFetchedAt sets the "fetched_at" field.
func (puo *PostUpdateOne) SetFetchedAt(t time.Time) *PostUpdateOne {
	puo.mutation.SetFetchedAt(t)
	return puo
}

// SetNillableFetchedAt sets the "fetched_at" field if the given value is not nil.
func (puo *PostUpdateOne) SetNillableFetchedAt(t *time.Time) *PostUpdateOne {
	if t != nil {
		puo.SetFetchedAt(*t)
	}
	return puo
}

// Mutation returns the PostMutation object of the builder.
func (puo *PostUpdateOne) Mutation() *PostMutation {
	return puo.mutation
}

// Where appends a list predicates to the PostUpdate builder.
func (puo *PostUpdateOne) Where(ps ...predicate.Post) *PostUpdateOne {
	puo.mutation.Where(ps...)
	return puo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (puo *PostUpdateOne) Select(field string, fields ...string) *PostUpdateOne {
	puo.fields = append([]string{field}, fields...)
	return puo
}

// Save executes the query and returns the updated Post entity.
func (puo *PostUpdateOne) Save(ctx context.Context) (*Post, error) {
	return withHooks(ctx, puo.sqlSave, puo.mutation, puo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (puo *PostUpdateOne) SaveX(ctx context.Context) *Post {
	node, err := puo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (puo *PostUpdateOne) Exec(ctx context.Context) error {
	_, err := puo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (puo *PostUpdateOne) ExecX(ctx context.Context) {
	if err := puo.Exec(ctx); err != nil {
		panic(err)
	}
}

func (puo *PostUpdateOne) sqlSave(ctx context.Context) (_node *Post, err error) {
	_spec := sqlgraph.NewUpdateSpec(post.Table, post.Columns, sqlgraph.NewFieldSpec(post.FieldID, field.TypeString))
	id, ok := puo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Post.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := puo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, post.FieldID)
		for _, f := range fields {
			if !post.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != post.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := puo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := puo.mutation.ExternalID(); ok {
		_spec.SetField(post.FieldExternalID, field.TypeString, value)
	}
	if value, ok := puo.mutation.Author(); ok {
		_spec.SetField(post.FieldAuthor, field.TypeString, value)
	}
	if value, ok := puo.mutation.AuthorHandle(); ok {
		_spec.SetField(post.FieldAuthorHandle, field.TypeString, value)
	}
	if value, ok := puo.mutation.Followers(); ok {
		_spec.SetField(post.FieldFollowers, field.TypeInt, value)
	}
	if value, ok := puo.mutation.AddedFollowers(); ok {
		_spec.AddField(post.FieldFollowers, field.TypeInt, value)
	}
	if value, ok := puo.mutation.Text(); ok {
		_spec.SetField(post.FieldText, field.TypeString, value)
	}
	if value, ok := puo.mutation.URL(); ok {
		_spec.SetField(post.FieldURL, field.TypeString, value)
	}
	if value, ok := puo.mutation.Time(); ok {
		_spec.SetField(post.FieldTime, field.TypeString, value)
	}
	if value, ok := puo.mutation.HasMedia(); ok {
		_spec.SetField(post.FieldHasMedia, field.TypeBool, value)
	}
	if value, ok := puo.mutation.IsBookmark(); ok {
		_spec.SetField(post.FieldIsBookmark, field.TypeBool, value)
	}
	if value, ok := puo.mutation.TopicID(); ok {
		_spec.SetField(post.FieldTopicID, field.TypeString, value)
	}
	if puo.mutation.TopicIDCleared() {
		_spec.ClearField(post.FieldTopicID, field.TypeString)
	}
	if value, ok := puo.mutation.FetchedAt(); ok {
		_spec.SetField(post.FieldFetchedAt, field.TypeTime, value)
	}
	_node = &Post{config: puo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, puo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{post.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	puo.mutation.done = true
	return _node, nil
}
