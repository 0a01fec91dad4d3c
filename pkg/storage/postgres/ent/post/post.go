// Code generated by ent, DO NOT EDIT.

package post

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the post type in the database.
	Label = "post"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldExternalID holds the string denoting the external_id field in the database.
	FieldExternalID = "external_id"
	// FieldAuthor holds the string denoting the author field in the database.
	FieldAuthor = "author"
	// FieldAuthorHandle holds the string denoting the author_handle field in the database.
	FieldAuthorHandle = "author_handle"
	// FieldFollowers holds the string denoting the followers field in the database.
	FieldFollowers = "followers"
	// FieldText holds the string denoting the text field in the database.
	FieldText = "text"
	// FieldURL holds the string denoting the url field in the database.
	FieldURL = "url"
	// FieldTime holds the string denoting the time field in the database.
	FieldTime = "time"
	// FieldHasMedia holds the string denoting the has_media field in the database.
	FieldHasMedia = "has_media"
	// FieldIsBookmark holds the string denoting the is_bookmark field in the database.
	FieldIsBookmark = "is_bookmark"
	// FieldTopicID holds the string denoting the topic_id field in the database.
	FieldTopicID = "topic_id"
	// FieldFetchedAt holds the string denoting the fetched_at field in the database.
	FieldFetchedAt = "fetched_at"
	// Table holds the table name of the post in the database.
	Table = "posts"
)

// Columns holds all SQL columns for post fields.
var Columns = []string{
	FieldID,
	FieldExternalID,
	FieldAuthor,
	FieldAuthorHandle,
	FieldFollowers,
	FieldText,
	FieldURL,
	FieldTime,
	FieldHasMedia,
	FieldIsBookmark,
	FieldTopicID,
	FieldFetchedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultFollowers holds the default value on creation for the "followers" field.
	DefaultFollowers int
	// DefaultHasMedia holds the default value on creation for the "has_media" field.
	DefaultHasMedia bool
	// DefaultIsBookmark holds the default value on creation for the "is_bookmark" field.
	DefaultIsBookmark bool
)

// OrderOption defines the ordering options for the Post queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByExternalID orders the results by the external_id field.
func ByExternalID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExternalID, opts...).ToFunc()
}

// ByAuthor orders the results by the author field.
func ByAuthor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAuthor, opts...).ToFunc()
}

// ByAuthorHandle orders the results by the author_handle field.
func ByAuthorHandle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAuthorHandle, opts...).ToFunc()
}

// ByFollowers orders the results by the followers field.
func ByFollowers(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFollowers, opts...).ToFunc()
}

// ByText orders the results by the text field.
func ByText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldText, opts...).ToFunc()
}

// ByURL orders the results by the url field.
func ByURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldURL, opts...).ToFunc()
}

// ByTime orders the results by the time field.
func ByTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTime, opts...).ToFunc()
}

// ByHasMedia orders the results by the has_media field.
func ByHasMedia(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHasMedia, opts...).ToFunc()
}

// ByIsBookmark orders the results by the is_bookmark field.
func ByIsBookmark(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsBookmark, opts...).ToFunc()
}

// ByTopicID orders the results by the topic_id field.
func ByTopicID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopicID, opts...).ToFunc()
}

// ByFetchedAt orders the results by the fetched_at field.
func ByFetchedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFetchedAt, opts...).ToFunc()
}
