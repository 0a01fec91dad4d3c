// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// FeedbacksColumns holds the columns for the "feedbacks" table.
	FeedbacksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "post_id", Type: field.TypeString, Nullable: true},
		{Name: "topic_id", Type: field.TypeString, Nullable: true},
		{Name: "rating", Type: field.TypeString},
		{Name: "comment", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
	}
	// FeedbacksTable holds the schema information for the "feedbacks" table.
	FeedbacksTable = &schema.Table{
		Name:       "feedbacks",
		Columns:    FeedbacksColumns,
		PrimaryKey: []*schema.Column{FeedbacksColumns[0]},
	}
	// PostsColumns holds the columns for the "posts" table.
	PostsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "external_id", Type: field.TypeString, Unique: true},
		{Name: "author", Type: field.TypeString},
		{Name: "author_handle", Type: field.TypeString},
		{Name: "followers", Type: field.TypeInt, Default: 0},
		{Name: "text", Type: field.TypeString, Size: 2147483647},
		{Name: "url", Type: field.TypeString},
		{Name: "time", Type: field.TypeString},
		{Name: "has_media", Type: field.TypeBool, Default: false},
		{Name: "is_bookmark", Type: field.TypeBool, Default: false},
		{Name: "topic_id", Type: field.TypeString, Nullable: true},
		{Name: "fetched_at", Type: field.TypeTime},
	}
	// PostsTable holds the schema information for the "posts" table.
	PostsTable = &schema.Table{
		Name:       "posts",
		Columns:    PostsColumns,
		PrimaryKey: []*schema.Column{PostsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "post_topic_id",
				Unique:  false,
				Columns: []*schema.Column{PostsColumns[10]},
			},
			{
				Name:    "post_author_handle",
				Unique:  false,
				Columns: []*schema.Column{PostsColumns[3]},
			},
			{
				Name:    "post_time",
				Unique:  false,
				Columns: []*schema.Column{PostsColumns[7]},
			},
		},
	}
	// ProjectsColumns holds the columns for the "projects" table.
	ProjectsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "keywords", Type: field.TypeJSON},
		{Name: "active", Type: field.TypeBool, Default: true},
	}
	// ProjectsTable holds the schema information for the "projects" table.
	ProjectsTable = &schema.Table{
		Name:       "projects",
		Columns:    ProjectsColumns,
		PrimaryKey: []*schema.Column{ProjectsColumns[0]},
	}
	// RelevancesColumns holds the columns for the "relevances" table.
	RelevancesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "topic_id", Type: field.TypeString},
		{Name: "project_id", Type: field.TypeString},
		{Name: "score", Type: field.TypeFloat64},
		{Name: "reasoning", Type: field.TypeString, Size: 2147483647},
		{Name: "content_opportunity", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
	}
	// RelevancesTable holds the schema information for the "relevances" table.
	RelevancesTable = &schema.Table{
		Name:       "relevances",
		Columns:    RelevancesColumns,
		PrimaryKey: []*schema.Column{RelevancesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "relevance_topic_id",
				Unique:  false,
				Columns: []*schema.Column{RelevancesColumns[1]},
			},
			{
				Name:    "relevance_project_id",
				Unique:  false,
				Columns: []*schema.Column{RelevancesColumns[2]},
			},
			{
				Name:    "relevance_score",
				Unique:  false,
				Columns: []*schema.Column{RelevancesColumns[3]},
			},
		},
	}
	// TopicsColumns holds the columns for the "topics" table.
	TopicsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "summary", Type: field.TypeString, Size: 2147483647},
		{Name: "keywords", Type: field.TypeJSON},
		{Name: "post_count", Type: field.TypeInt, Default: 0},
		{Name: "importance", Type: field.TypeInt, Default: 0},
		{Name: "source_post_id", Type: field.TypeString, Nullable: true},
		{Name: "source_url", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// TopicsTable holds the schema information for the "topics" table.
	TopicsTable = &schema.Table{
		Name:       "topics",
		Columns:    TopicsColumns,
		PrimaryKey: []*schema.Column{TopicsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "topic_importance",
				Unique:  false,
				Columns: []*schema.Column{TopicsColumns[5]},
			},
		},
	}
	// TopicEdgesColumns holds the columns for the "topic_edges" table.
	TopicEdgesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "from_topic_id", Type: field.TypeString},
		{Name: "to_topic_id", Type: field.TypeString},
		{Name: "relationship", Type: field.TypeString},
		{Name: "strength", Type: field.TypeFloat64, Default: 0},
	}
	// TopicEdgesTable holds the schema information for the "topic_edges" table.
	TopicEdgesTable = &schema.Table{
		Name:       "topic_edges",
		Columns:    TopicEdgesColumns,
		PrimaryKey: []*schema.Column{TopicEdgesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "topicedge_from_topic_id",
				Unique:  false,
				Columns: []*schema.Column{TopicEdgesColumns[1]},
			},
			{
				Name:    "topicedge_to_topic_id",
				Unique:  false,
				Columns: []*schema.Column{TopicEdgesColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		FeedbacksTable,
		PostsTable,
		ProjectsTable,
		RelevancesTable,
		TopicsTable,
		TopicEdgesTable,
	}
)

func init() {
}
