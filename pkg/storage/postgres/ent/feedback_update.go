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
	"github.com/feedradar/radar/pkg/storage/postgres/ent/feedback"
	"github.com/feedradar/radar/pkg/storage/postgres/ent/predicate"
)

// FeedbackUpdate is the builder for updating Feedback entities.
type FeedbackUpdate struct {
	config
	hooks    []Hook
	mutation *FeedbackMutation
}

// Where appends a list predicates to the FeedbackUpdate builder.
func (fu *FeedbackUpdate) Where(ps ...predicate.Feedback) *FeedbackUpdate {
	fu.mutation.Where(ps...)
	return fu
}

// SetPostID sets the "post_id" field.
func (fu *FeedbackUpdate) SetPostID(s string) *FeedbackUpdate {
	fu.mutation.SetPostID(s)
	return fu
}

// SetNillablePostID sets the "post_id" field if the given value is not nil.
func (fu *FeedbackUpdate) SetNillablePostID(s *string) *FeedbackUpdate {
	if s != nil {
		fu.SetPostID(*s)
	}
	return fu
}

// ClearPostID clears the value of the "post_id" field.
func (fu *FeedbackUpdate) ClearPostID() *FeedbackUpdate {
	fu.mutation.ClearPostID()
	return fu
}

// SetTopicID sets the "topic_id" field.
func (fu *FeedbackUpdate) SetTopicID(s string) *FeedbackUpdate {
	fu.mutation.SetTopicID(s)
	return fu
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (fu *FeedbackUpdate) SetNillableTopicID(s *string) *FeedbackUpdate {
	if s != nil {
		fu.SetTopicID(*s)
	}
	return fu
}

// ClearTopicID clears the value of the "topic_id" field.
func (fu *FeedbackUpdate) ClearTopicID() *FeedbackUpdate {
	fu.mutation.ClearTopicID()
	return fu
}

// SetRating sets the "rating" field.
func (fu *FeedbackUpdate) SetRating(s string) *FeedbackUpdate {
	fu.mutation.SetRating(s)
	return fu
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (fu *FeedbackUpdate) SetNillableRating(s *string) *FeedbackUpdate {
	if s != nil {
		fu.SetRating(*s)
	}
	return fu
}

// SetComment sets the "comment" field.
func (fu *FeedbackUpdate) SetComment(s string) *FeedbackUpdate {
	fu.mutation.SetComment(s)
	return fu
}

// SetNillableComment sets the "comment" field if the given value is not nil.
func (fu *FeedbackUpdate) SetNillableComment(s *string) *FeedbackUpdate {
	if s != nil {
		fu.SetComment(*s)
	}
	return fu
}

// ClearComment clears the value of the "comment" field.
func (fu *FeedbackUpdate) ClearComment() *FeedbackUpdate {
	fu.mutation.ClearComment()
	return fu
}

// SetCreatedAt sets the "created_at" field.
func (fu *FeedbackUpdate) SetCreatedAt(t time.Time) *FeedbackUpdate {
	fu.mutation.SetCreatedAt(t)
	return fu
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (fu *FeedbackUpdate) SetNillableCreatedAt(t *time.Time) *FeedbackUpdate {
	if t != nil {
		fu.SetCreatedAt(*t)
	}
	return fu
}

// Mutation returns the FeedbackMutation object of the builder.
func (fu *FeedbackUpdate) Mutation() *FeedbackMutation {
	return fu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (fu *FeedbackUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, fu.sqlSave, fu.mutation, fu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (fu *FeedbackUpdate) SaveX(ctx context.Context) int {
	affected, err := fu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (fu *FeedbackUpdate) Exec(ctx context.Context) error {
	_, err := fu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (fu *FeedbackUpdate) ExecX(ctx context.Context) {
	if err := fu.Exec(ctx); err != nil {
		panic(err)
	}
}

func (fu *FeedbackUpdate) sqlSave(ctx context.Context) (n int, err error) {
	_spec := sqlgraph.NewUpdateSpec(feedback.Table, feedback.Columns, sqlgraph.NewFieldSpec(feedback.FieldID, field.TypeString))
	if ps := fu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := fu.mutation.PostID(); ok {
		_spec.SetField(feedback.FieldPostID, field.TypeString, value)
	}
	if fu.mutation.PostIDCleared() {
		_spec.ClearField(feedback.FieldPostID, field.TypeString)
	}
	if value, ok := fu.mutation.TopicID(); ok {
		_spec.SetField(feedback.FieldTopicID, field.TypeString, value)
	}
	if fu.mutation.TopicIDCleared() {
		_spec.ClearField(feedback.FieldTopicID, field.TypeString)
	}
	if value, ok := fu.mutation.Rating(); ok {
		_spec.SetField(feedback.FieldRating, field.TypeString, value)
	}
	if value, ok := fu.mutation.Comment(); ok {
		_spec.SetField(feedback.FieldComment, field.TypeString, value)
	}
	if fu.mutation.CommentCleared() {
		_spec.ClearField(feedback.FieldComment, field.TypeString)
	}
	if value, ok := fu.mutation.CreatedAt(); ok {
		_spec.SetField(feedback.FieldCreatedAt, field.TypeTime, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, fu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{feedback.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	fu.mutation.done = true
	return n, nil
}

// FeedbackUpdateOne is the builder for updating a single Feedback entity.
type FeedbackUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FeedbackMutation
}

// SetPostID sets the "post_id" field.
func (fuo *FeedbackUpdateOne) SetPostID(s string) *FeedbackUpdateOne {
	fuo.mutation.SetPostID(s)
	return fuo
}

// SetNillablePostID sets the "post_id" field if the given value is not nil.
func (fuo *FeedbackUpdateOne) SetNillablePostID(s *string) *FeedbackUpdateOne {
	if s != nil {
		fuo.SetPostID(*s)
	}
	return fuo
}

// ClearPostID clears the value of the "post_id" field.
func (fuo *FeedbackUpdateOne) ClearPostID() *FeedbackUpdateOne {
	fuo.mutation.ClearPostID()
	return fuo
}

// SetTopicID sets the "topic_id" field.
func (fuo *FeedbackUpdateOne) SetTopicID(s string) *FeedbackUpdateOne {
	fuo.mutation.SetTopicID(s)
	return fuo
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (fuo *FeedbackUpdateOne) SetNillableTopicID(s *string) *FeedbackUpdateOne {
	if s != nil {
		fuo.SetTopicID(*s)
	}
	return fuo
}

// ClearTopicID clears the value of the "topic_id" field.
func (fuo *FeedbackUpdateOne) ClearTopicID() *FeedbackUpdateOne {
	fuo.mutation.ClearTopicID()
	return fuo
}

// SetRating sets the "rating" field.
func (fuo *FeedbackUpdateOne) SetRating(s string) *FeedbackUpdateOne {
	fuo.mutation.SetRating(s)
	return fuo
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (fuo *FeedbackUpdateOne) SetNillableRating(s *string) *FeedbackUpdateOne {
	if s != nil {
		fuo.SetRating(*s)
	}
	return fuo
}

// SetComment sets the "comment" field.
func (fuo *FeedbackUpdateOne) SetComment(s string) *FeedbackUpdateOne {
	fuo.mutation.SetComment(s)
	return fuo
}

// SetNillableComment sets the "comment" field if the given value is not nil.
func (fuo *FeedbackUpdateOne) SetNillableComment(s *string) *FeedbackUpdateOne {
	if s != nil {
		fuo.SetComment(*s)
	}
	return fuo
}

// ClearComment clears the value of the "comment" field.
func (fuo *FeedbackUpdateOne) ClearComment() *FeedbackUpdateOne {
	fuo.mutation.ClearComment()
	return fuo
}

// SetCreatedAt sets the "created_at" field.
func (fuo *FeedbackUpdateOne) SetCreatedAt(t time.Time) *FeedbackUpdateOne {
	fuo.mutation.SetCreatedAt(t)
	return fuo
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (fuo *FeedbackUpdateOne) SetNillableCreatedAt(t *time.Time) *FeedbackUpdateOne {
	if t != nil {
		fuo.SetCreatedAt(*t)
	}
	return fuo
}

// Mutation returns the FeedbackMutation object of the builder.
func (fuo *FeedbackUpdateOne) Mutation() *FeedbackMutation {
	return fuo.mutation
}

// Where appends a list predicates to the FeedbackUpdate builder.
func (fuo *FeedbackUpdateOne) Where(ps ...predicate.Feedback) *FeedbackUpdateOne {
	fuo.mutation.Where(ps...)
	return fuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (fuo *FeedbackUpdateOne) Select(field string, fields ...string) *FeedbackUpdateOne {
	fuo.fields = append([]string{field}, fields...)
	return fuo
}

// Save executes the query and returns the updated Feedback entity.
func (fuo *FeedbackUpdateOne) Save(ctx context.Context) (*Feedback, error) {
	return withHooks(ctx, fuo.sqlSave, fuo.mutation, fuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (fuo *FeedbackUpdateOne) SaveX(ctx context.Context) *Feedback {
	node, err := fuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (fuo *FeedbackUpdateOne) Exec(ctx context.Context) error {
	_, err := fuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (fuo *FeedbackUpdateOne) ExecX(ctx context.Context) {
	if err := fuo.Exec(ctx); err != nil {
		panic(err)
	}
}

func (fuo *FeedbackUpdateOne) sqlSave(ctx context.Context) (_node *Feedback, err error) {
	_spec := sqlgraph.NewUpdateSpec(feedback.Table, feedback.Columns, sqlgraph.NewFieldSpec(feedback.FieldID, field.TypeString))
	id, ok := fuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Feedback.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := fuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, feedback.FieldID)
		for _, f := range fields {
			if !feedback.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != feedback.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := fuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := fuo.mutation.PostID(); ok {
		_spec.SetField(feedback.FieldPostID, field.TypeString, value)
	}
	if fuo.mutation.PostIDCleared() {
		_spec.ClearField(feedback.FieldPostID, field.TypeString)
	}
	if value, ok := fuo.mutation.TopicID(); ok {
		_spec.SetField(feedback.FieldTopicID, field.TypeString, value)
	}
	if fuo.mutation.TopicIDCleared() {
		_spec.ClearField(feedback.FieldTopicID, field.TypeString)
	}
	if value, ok := fuo.mutation.Rating(); ok {
		_spec.SetField(feedback.FieldRating, field.TypeString, value)
	}
	if value, ok := fuo.mutation.Comment(); ok {
		_spec.SetField(feedback.FieldComment, field.TypeString, value)
	}
	if fuo.mutation.CommentCleared() {
		_spec.ClearField(feedback.FieldComment, field.TypeString)
	}
	if value, ok := fuo.mutation.CreatedAt(); ok {
		_spec.SetField(feedback.FieldCreatedAt, field.TypeTime, value)
	}
	_node = &Feedback{config: fuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, fuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{feedback.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	fuo.mutation.done = true
	return _node, nil
}
