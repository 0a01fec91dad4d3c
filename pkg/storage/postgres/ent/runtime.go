// Code generated by ent, DO NOT EDIT.

package ent

import (
	"github.com/feedradar/radar/pkg/storage/postgres/ent/post"
	"github.com/feedradar/radar/pkg/storage/postgres/ent/project"
	"github.com/feedradar/radar/pkg/storage/postgres/ent/schema"
	"github.com/feedradar/radar/pkg/storage/postgres/ent/topic"
	"github.com/feedradar/radar/pkg/storage/postgres/ent/topicedge"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	postFields := schema.Post{}.Fields()
	_ = postFields
	// postDescFollowers is the schema descriptor for followers field.
	postDescFollowers := postFields[4].Descriptor()
	// post.DefaultFollowers holds the default value on creation for the followers field.
	post.DefaultFollowers = postDescFollowers.Default.(int)
	// postDescHasMedia is the schema descriptor for has_media field.
	postDescHasMedia := postFields[8].Descriptor()
	// post.DefaultHasMedia holds the default value on creation for the has_media field.
	post.DefaultHasMedia = postDescHasMedia.Default.(bool)
	// postDescIsBookmark is the schema descriptor for is_bookmark field.
	postDescIsBookmark := postFields[9].Descriptor()
	// post.DefaultIsBookmark holds the default value on creation for the is_bookmark field.
	post.DefaultIsBookmark = postDescIsBookmark.Default.(bool)
	projectFields := schema.Project{}.Fields()
	_ = projectFields
	// projectDescActive is the schema descriptor for active field.
	projectDescActive := projectFields[4].Descriptor()
	// project.DefaultActive holds the default value on creation for the active field.
	project.DefaultActive = projectDescActive.Default.(bool)
	topicFields := schema.Topic{}.Fields()
	_ = topicFields
	// topicDescPostCount is the schema descriptor for post_count field.
	topicDescPostCount := topicFields[4].Descriptor()
	// topic.DefaultPostCount holds the default value on creation for the post_count field.
	topic.DefaultPostCount = topicDescPostCount.Default.(int)
	// topicDescImportance is the schema descriptor for importance field.
	topicDescImportance := topicFields[5].Descriptor()
	// topic.DefaultImportance holds the default value on creation for the importance field.
	topic.DefaultImportance = topicDescImportance.Default.(int)
	topicedgeFields := schema.TopicEdge{}.Fields()
	_ = topicedgeFields
	// topicedgeDescStrength is the schema descriptor for strength field.
	topicedgeDescStrength := topicedgeFields[4].Descriptor()
	// topicedge.DefaultStrength holds the default value on creation for the strength field.
	topicedge.DefaultStrength = topicedgeDescStrength.Default.(float64)
}
