// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/feedradar/radar/pkg/storage/postgres/ent/post"
)

// Post is the model entity for the Post schema.
type Post struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ExternalID holds the value of the "external_id" field.
	ExternalID string `json:"external_id,omitempty"`
	// Author holds the value of the "author" field.
	Author string `json:"author,omitempty"`
	// AuthorHandle holds the value of the "author_handle" field.
	AuthorHandle string `json:"author_handle,omitempty"`
	// Followers holds the value of the "followers" field.
	Followers int `json:"followers,omitempty"`
	// Text holds the value of the "text" field.
	Text string `json:"text,omitempty"`
	// URL holds the value of the "url" field.
	URL string `json:"url,omitempty"`
	// Time holds the value of the "time" field.
	Time string `json:"time,omitempty"`
	// HasMedia holds the value of the "has_media" field.
	HasMedia bool `json:"has_media,omitempty"`
	// IsBookmark holds the value of the "is_bookmark" field.
	IsBookmark bool `json:"is_bookmark,omitempty"`
	// TopicID holds the value of the "topic_id" field.
	TopicID string `json:"topic_id,omitempty"`
	// FetchedAt holds the value of the "fetched_at" field.
	FetchedAt    time.Time `json:"fetched_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Post) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case post.FieldHasMedia, post.FieldIsBookmark:
			values[i] = new(sql.NullBool)
		case post.FieldFollowers:
			values[i] = new(sql.NullInt64)
		case post.FieldID, post.FieldExternalID, post.FieldAuthor, post.FieldAuthorHandle, post.FieldText, post.FieldURL, post.FieldTime, post.FieldTopicID:
			values[i] = new(sql.NullString)
		case post.FieldFetchedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Post fields.
func (po *Post) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case post.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				po.ID = value.String
			}
		case post.FieldExternalID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field external_id", values[i])
			} else if value.Valid {
				po.ExternalID = value.String
			}
		case post.FieldAuthor:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field author", values[i])
			} else if value.Valid {
				po.Author = value.String
			}
		case post.FieldAuthorHandle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field author_handle", values[i])
			} else if value.Valid {
				po.AuthorHandle = value.String
			}
		case post.FieldFollowers:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field followers", values[i])
			} else if value.Valid {
				po.Followers = int(value.Int64)
			}
		case post.FieldText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field text", values[i])
			} else if value.Valid {
				po.Text = value.String
			}
		case post.FieldURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field url", values[i])
			} else if value.Valid {
				po.URL = value.String
			}
		case post.FieldTime:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field time", values[i])
			} else if value.Valid {
				po.Time = value.String
			}
		case post.FieldHasMedia:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field has_media", values[i])
			} else if value.Valid {
				po.HasMedia = value.Bool
			}
		case post.FieldIsBookmark:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_bookmark", values[i])
			} else if value.Valid {
				po.IsBookmark = value.Bool
			}
		case post.FieldTopicID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic_id", values[i])
			} else if value.Valid {
				po.TopicID = value.String
			}
		case post.FieldFetchedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field fetched_at", values[i])
			} else if value.Valid {
				po.FetchedAt = value.Time
			}
		default:
			po.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Post.
// This includes values selected through modifiers, order, etc.
func (po *Post) Value(name string) (ent.Value, error) {
	return po.selectValues.Get(name)
}

// Update returns a builder for updating this Post.
// Note that you need to call Post.Unwrap() before calling this method if this Post
// was returned from a transaction, and the transaction was committed or rolled back.
func (po *Post) Update() *PostUpdateOne {
	return NewPostClient(po.config).UpdateOne(po)
}

// Unwrap unwraps the Post entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (po *Post) Unwrap() *Post {
	_tx, ok := po.config.driver.(*txDriver)
	if !ok {
		panic("ent: Post is not a transactional entity")
	}
	po.config.driver = _tx.drv
	return po
}

// String implements the fmt.Stringer.
func (po *Post) String() string {
	var builder strings.Builder
	builder.WriteString("Post(")
	builder.WriteString(fmt.Sprintf("id=%v, ", po.ID))
	builder.WriteString("external_id=")
	builder.WriteString(po.ExternalID)
	builder.WriteString(", ")
	builder.WriteString("author=")
	builder.WriteString(po.Author)
	builder.WriteString(", ")
	builder.WriteString("author_handle=")
	builder.WriteString(po.AuthorHandle)
	builder.WriteString(", ")
	builder.WriteString("followers=")
	builder.WriteString(fmt.Sprintf("%v", po.Followers))
	builder.WriteString(", ")
	builder.WriteString("text=")
	builder.WriteString(po.Text)
	builder.WriteString(", ")
	builder.WriteString("url=")
	builder.WriteString(po.URL)
	builder.WriteString(", ")
	builder.WriteString("time=")
	builder.WriteString(po.Time)
	builder.WriteString(", ")
	builder.WriteString("has_media=")
	builder.WriteString(fmt.Sprintf("%v", po.HasMedia))
	builder.WriteString(", ")
	builder.WriteString("is_bookmark=")
	builder.WriteString(fmt.Sprintf("%v", po.IsBookmark))
	builder.WriteString(", ")
	builder.WriteString("topic_id=")
	builder.WriteString(po.TopicID)
	builder.WriteString(", ")
	builder.WriteString("fetched_at=")
	builder.WriteString(po.FetchedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Posts is a parsable slice of Post.
type Posts []*Post
