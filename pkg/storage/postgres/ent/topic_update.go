// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/feedradar/radar/pkg/storage/postgres/ent/predicate"
	"github.com/feedradar/radar/pkg/storage/postgres/ent/topic"
)

// TopicUpdate is the builder for updating Topic entities.
type TopicUpdate struct {
	config
	hooks    []Hook
	mutation *TopicMutation
}

// Where appends a list predicates to the TopicUpdate builder.
func (tu *TopicUpdate) Where(ps ...predicate.Topic) *TopicUpdate {
	tu.mutation.Where(ps...)
	return tu
}

// SetName sets the "name" field.
func (tu *TopicUpdate) SetName(s string) *TopicUpdate {
	tu.mutation.SetName(s)
	return tu
}

// SetNillableName sets the "name" field if the given value is not nil.
func (tu *TopicUpdate) SetNillableName(s *string) *TopicUpdate {
	if s != nil {
		tu.SetName(*s)
	}
	return tu
}

// SetSummary sets the "summary" field.
func (tu *TopicUpdate) SetSummary(s string) *TopicUpdate {
	tu.mutation.SetSummary(s)
	return tu
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (tu *TopicUpdate) SetNillableSummary(s *string) *TopicUpdate {
	if s != nil {
		tu.SetSummary(*s)
	}
	return tu
}

// SetKeywords sets the "keywords" field.
func (tu *TopicUpdate) SetKeywords(s []string) *TopicUpdate {
	tu.mutation.SetKeywords(s)
	return tu
}

// AppendKeywords appends s to the "keywords" field.
func (tu *TopicUpdate) AppendKeywords(s []string) *TopicUpdate {
	tu.mutation.AppendKeywords(s)
	return tu
}

// SetPostCount sets the "post_count" field.
func (tu *TopicUpdate) SetPostCount(i int) *TopicUpdate {
	tu.mutation.ResetPostCount()
	tu.mutation.SetPostCount(i)
	return tu
}

// SetNillablePostCount sets the "post_count" field if the given value is not nil.
func (tu *TopicUpdate) SetNillablePostCount(i *int) *TopicUpdate {
	if i != nil {
		tu.SetPostCount(*i)
	}
	return tu
}

// AddPostCount adds i to the "post_count" field.
func (tu *TopicUpdate) AddPostCount(i int) *TopicUpdate {
	tu.mutation.AddPostCount(i)
	return tu
}

// SetImportance sets the "importance" field.
func (tu *TopicUpdate) SetImportance(i int) *TopicUpdate {
	tu.mutation.ResetImportance()
	tu.mutation.SetImportance(i)
	return tu
}

// SetNillableImportance sets the "importance" field if the given value is not nil.
func (tu *TopicUpdate) SetNillableImportance(i *int) *TopicUpdate {
	if i != nil {
		tu.SetImportance(*i)
	}
	return tu
}

// AddImportance adds i to the "importance" field.
func (tu *TopicUpdate) AddImportance(i int) *TopicUpdate {
	tu.mutation.AddImportance(i)
	return tu
}

// SetSourcePostID sets the "source_post_id" field.
func (tu *TopicUpdate) SetSourcePostID(s string) *TopicUpdate {
	tu.mutation.SetSourcePostID(s)
	return tu
}

// SetNillableSourcePostID sets the "source_post_id" field if the given value is not nil.
func (tu *TopicUpdate) SetNillableSourcePostID(s *string) *TopicUpdate {
	if s != nil {
		tu.SetSourcePostID(*s)
	}
	return tu
}

// ClearSourcePostID clears the value of the "source_post_id" field.
func (tu *TopicUpdate) ClearSourcePostID() *TopicUpdate {
	tu.mutation.ClearSourcePostID()
	return tu
}

// SetSourceURL sets the "source_url" field.
func (tu *TopicUpdate) SetSourceURL(s string) *TopicUpdate {
	tu.mutation.SetSourceURL(s)
	return tu
}

// SetNillableSourceURL sets the "source_url" field if the given value is not nil.
func (tu *TopicUpdate) SetNillableSourceURL(s *string) *TopicUpdate {
	if s != nil {
		tu.SetSourceURL(*s)
	}
	return tu
}

// ClearSourceURL clears the value of the "source_url" field.
func (tu *TopicUpdate) ClearSourceURL() *TopicUpdate {
	tu.mutation.ClearSourceURL()
	return tu
}

// SetCreatedAt sets the "created_at" field.
func (tu *TopicUpdate) SetCreatedAt(t time.Time) *TopicUpdate {
	tu.mutation.SetCreatedAt(t)
	return tu
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (tu *TopicUpdate) SetNillableCreatedAt(t *time.Time) *TopicUpdate {
	if t != nil {
		tu.SetCreatedAt(*t)
	}
	return tu
}

// SetUpdatedAt sets the "updated_at" field.
func (tu *TopicUpdate) SetUpdatedAt(t time.Time) *TopicUpdate {
	tu.mutation.SetUpdatedAt(t)
	return tu
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (tu *TopicUpdate) SetNillableUpdatedAt(t *time.Time) *TopicUpdate {
	if t != nil {
		tu.SetUpdatedAt(*t)
	}
	return tu
}

// Mutation returns the TopicMutation object of the builder.
func (tu *TopicUpdate) Mutation() *TopicMutation {
	return tu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (tu *TopicUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, tu.sqlSave, tu.mutation, tu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (tu *TopicUpdate) SaveX(ctx context.Context) int {
	affected, err := tu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (tu *TopicUpdate) Exec(ctx context.Context) error {
	_, err := tu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tu *TopicUpdate) ExecX(ctx context.Context) {
	if err := tu.Exec(ctx); err != nil {
		panic(err)
	}
}

func (tu *TopicUpdate) sqlSave(ctx context.Context) (n int, err error) {
	_spec := sqlgraph.NewUpdateSpec(topic.Table, topic.Columns, sqlgraph.NewFieldSpec(topic.FieldID, field.TypeString))
	if ps := tu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := tu.mutation.Name(); ok {
		_spec.SetField(topic.FieldName, field.TypeString, value)
	}
	if value, ok := tu.mutation.Summary(); ok {
		_spec.SetField(topic.FieldSummary, field.TypeString, value)
	}
	if value, ok := tu.mutation.Keywords(); ok {
		_spec.SetField(topic.FieldKeywords, field.TypeJSON, value)
	}
	if value, ok := tu.mutation.AppendedKeywords(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, topic.FieldKeywords, value)
		})
	}
	if value, ok := tu.mutation.PostCount(); ok {
		_spec.SetField(topic.FieldPostCount, field.TypeInt, value)
	}
	if value, ok := tu.mutation.AddedPostCount(); ok {
		_spec.AddField(topic.FieldPostCount, field.TypeInt, value)
	}
	if value, ok := tu.mutation.Importance(); ok {
		_spec.SetField(topic.FieldImportance, field.TypeInt, value)
	}
	if value, ok := tu.mutation.AddedImportance(); ok {
		_spec.AddField(topic.FieldImportance, field.TypeInt, value)
	}
	if value, ok := tu.mutation.SourcePostID(); ok {
		_spec.SetField(topic.FieldSourcePostID, field.TypeString, value)
	}
	if tu.mutation.SourcePostIDCleared() {
		_spec.ClearField(topic.FieldSourcePostID, field.TypeString)
	}
	if value, ok := tu.mutation.SourceURL(); ok {
		_spec.SetField(topic.FieldSourceURL, field.TypeString, value)
	}
	if tu.mutation.SourceURLCleared() {
		_spec.ClearField(topic.FieldSourceURL, field.TypeString)
	}
	if value, ok := tu.mutation.CreatedAt(); ok {
		_spec.SetField(topic.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := tu.mutation.UpdatedAt(); ok {
		_spec.SetField(topic.FieldUpdatedAt, field.TypeTime, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, tu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{topic.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	tu.mutation.done = true
	return n, nil
}

// TopicUpdateOne is the builder for updating a single Topic entity.
type TopicUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TopicMutation
}

// SetName sets the "name" field.
func (tuo *TopicUpdateOne) SetName(s string) *TopicUpdateOne {
	tuo.mutation.SetName(s)
	return tuo
}

// SetNillableName sets the "name" field if the given value is not nil.
func (tuo *TopicUpdateOne) SetNillableName(s *string) *TopicUpdateOne {
	if s != nil {
		tuo.SetName(*s)
	}
	return tuo
}

// SetSummary sets the "summary" field.
func (tuo *TopicUpdateOne) SetSummary(s string) *TopicUpdateOne {
	tuo.mutation.SetSummary(s)
	return tuo
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (tuo *TopicUpdateOne) SetNillableSummary(s *string) *TopicUpdateOne {
	if s != nil {
		tuo.SetSummary(*s)
	}
	return tuo
}

// SetKeywords sets the "keywords" field.
func (tuo *TopicUpdateOne) SetKeywords(s []string) *TopicUpdateOne {
	tuo.mutation.SetKeywords(s)
	return tuo
}

// AppendKeywords appends s to the "keywords" field.
func (tuo *TopicUpdateOne) AppendKeywords(s []string) *TopicUpdateOne {
	tuo.mutation.AppendKeywords(s)
	return tuo
}

// SetPostCount sets the "post_count" field.
func (tuo *TopicUpdateOne) SetPostCount(i int) *TopicUpdateOne {
	tuo.mutation.ResetPostCount()
	tuo.mutation.SetPostCount(i)
	return tuo
}

// SetNillablePostCount sets the "post_count" field if the given value is not nil.
func (tuo *TopicUpdateOne) SetNillablePostCount(i *int) *TopicUpdateOne {
	if i != nil {
		tuo.SetPostCount(*i)
	}
	return tuo
}

// AddPostCount adds i to the "post_count" field.
func (tuo *TopicUpdateOne) AddPostCount(i int) *TopicUpdateOne {
	tuo.mutation.AddPostCount(i)
	return tuo
}

// SetImportance sets the "importance" field.
func (tuo *TopicUpdateOne) SetImportance(i int) *TopicUpdateOne {
	tuo.mutation.ResetImportance()
	tuo.mutation.SetImportance(i)
	return tuo
}

// SetNillableImportance sets the "importance" field if the given value is not nil.
func (tuo *TopicUpdateOne) SetNillableImportance(i *int) *TopicUpdateOne {
	if i != nil {
		tuo.SetImportance(*i)
	}
	return tuo
}

// AddImportance adds i to the "importance" field.
func (tuo *TopicUpdateOne) AddImportance(i int) *TopicUpdateOne {
	tuo.mutation.AddImportance(i)
	return tuo
}

// SetSourcePostID sets the "source_post_id" field.
func (tuo *TopicUpdateOne) SetSourcePostID(s string) *TopicUpdateOne {
	tuo.mutation.SetSourcePostID(s)
	return tuo
}

// SetNillableSourcePostID sets the "source_post_id" field if the given value is not nil.
func (tuo *TopicUpdateOne) SetNillableSourcePostID(s *string) *TopicUpdateOne {
	if s != nil {
		tuo.SetSourcePostID(*s)
	}
	return tuo
}

// ClearSourcePostID clears the value of the "source_post_id" field.
func (tuo *TopicUpdateOne) ClearSourcePostID() *TopicUpdateOne {
	tuo.mutation.ClearSourcePostID()
	return tuo
}

// SetSourceURL sets the "source_url" field.
func (tuo *TopicUpdateOne) SetSourceURL(s string) *TopicUpdateOne {
	tuo.mutation.SetSourceURL(s)
	return tuo
}

// SetNillableSourceURL sets the "source_url" field if the given value is not nil.
func (tuo *TopicUpdateOne) SetNillableSourceURL(s *string) *TopicUpdateOne {
	if s != nil {
		tuo.SetSourceURL(*s)
	}
	return tuo
}

// ClearSourceURL clears the value of the "source_url" field.
func (tuo *TopicUpdateOne) ClearSourceURL() *TopicUpdateOne {
	tuo.mutation.ClearSourceURL()
	return tuo
}

// SetCreatedAt sets the "created_at" field.
func (tuo *TopicUpdateOne) SetCreatedAt(t time.Time) *TopicUpdateOne {
	tuo.mutation.SetCreatedAt(t)
	return tuo
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (tuo *TopicUpdateOne) SetNillableCreatedAt(t *time.Time) *TopicUpdateOne {
	if t != nil {
		tuo.SetCreatedAt(*t)
	}
	return tuo
}

// SetUpdatedAt sets the "updated_at" field.
func (tuo *TopicUpdateOne) SetUpdatedAt(t time.Time) *TopicUpdateOne {
	tuo.mutation.SetUpdatedAt(t)
	return tuo
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (tuo *TopicUpdateOne) SetNillableUpdatedAt(t *time.Time) *TopicUpdateOne {
	if t != nil {
		tuo.SetUpdatedAt(*t)
	}
	return tuo
}

// Mutation returns the TopicMutation object of the builder.
func (tuo *TopicUpdateOne) Mutation() *TopicMutation {
	return tuo.mutation
}

// Where appends a list predicates to the TopicUpdate builder.
func (tuo *TopicUpdateOne) Where(ps ...predicate.Topic) *TopicUpdateOne {
	tuo.mutation.Where(ps...)
	return tuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (tuo *TopicUpdateOne) Select(field string, fields ...string) *TopicUpdateOne {
	tuo.fields = append([]string{field}, fields...)
	return tuo
}

// Save executes the query and returns the updated Topic entity.
func (tuo *TopicUpdateOne) Save(ctx context.Context) (*Topic, error) {
	return withHooks(ctx, tuo.sqlSave, tuo.mutation, tuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (tuo *TopicUpdateOne) SaveX(ctx context.Context) *Topic {
	node, err := tuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (tuo *TopicUpdateOne) Exec(ctx context.Context) error {
	_, err := tuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tuo *TopicUpdateOne) ExecX(ctx context.Context) {
	if err := tuo.Exec(ctx); err != nil {
		panic(err)
	}
}

func (tuo *TopicUpdateOne) sqlSave(ctx context.Context) (_node *Topic, err error) {
	_spec := sqlgraph.NewUpdateSpec(topic.Table, topic.Columns, sqlgraph.NewFieldSpec(topic.FieldID, field.TypeString))
	id, ok := tuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Topic.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := tuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, topic.FieldID)
		for _, f := range fields {
			if !topic.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != topic.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := tuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := tuo.mutation.Name(); ok {
		_spec.SetField(topic.FieldName, field.TypeString, value)
	}
	if value, ok := tuo.mutation.Summary(); ok {
		_spec.SetField(topic.FieldSummary, field.TypeString, value)
	}
	if value, ok := tuo.mutation.Keywords(); ok {
		_spec.SetField(topic.FieldKeywords, field.TypeJSON, value)
	}
	if value, ok := tuo.mutation.AppendedKeywords(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, topic.FieldKeywords, value)
		})
	}
	if value, ok := tuo.mutation.PostCount(); ok {
		_spec.SetField(topic.FieldPostCount, field.TypeInt, value)
	}
	if value, ok := tuo.mutation.AddedPostCount(); ok {
		_spec.AddField(topic.FieldPostCount, field.TypeInt, value)
	}
	if value, ok := tuo.mutation.Importance(); ok {
		_spec.SetField(topic.FieldImportance, field.TypeInt, value)
	}
	if value, ok := tuo.mutation.AddedImportance(); ok {
		_spec.AddField(topic.FieldImportance, field.TypeInt, value)
	}
	if value, ok := tuo.mutation.SourcePostID(); ok {
		_spec.SetField(topic.FieldSourcePostID, field.TypeString, value)
	}
	if tuo.mutation.SourcePostIDCleared() {
		_spec.ClearField(topic.FieldSourcePostID, field.TypeString)
	}
	if value, ok := tuo.mutation.SourceURL(); ok {
		_spec.SetField(topic.FieldSourceURL, field.TypeString, value)
	}
	if tuo.mutation.SourceURLCleared() {
		_spec.ClearField(topic.FieldSourceURL, field.TypeString)
	}
	if value, ok := tuo.mutation.CreatedAt(); ok {
		_spec.SetField(topic.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := tuo.mutation.UpdatedAt(); ok {
		_spec.SetField(topic.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Topic{config: tuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, tuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{topic.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	tuo.mutation.done = true
	return _node, nil
}
