package postgres

import (
	"context"
	"fmt"

	"github.com/feedradar/radar/pkg/posts"
	"github.com/feedradar/radar/pkg/storage/postgres/ent"
	entpost "github.com/feedradar/radar/pkg/storage/postgres/ent/post"
)

type PostRepository struct {
	db *DB
}

func NewPostRepository(db *DB) *PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) Insert(ctx context.Context, p *posts.Post) error {
	_, err := r.db.Client().Post.Create().
		SetID(p.ID).
		SetExternalID(p.ExternalID).
		SetAuthor(p.Author).
		SetAuthorHandle(p.AuthorHandle).
		SetFollowers(p.Followers).
		SetText(p.Text).
		SetURL(p.URL).
		SetTime(p.Time).
		SetHasMedia(p.HasMedia).
		SetIsBookmark(p.IsBookmark).
		SetTopicID(p.TopicID).
		SetFetchedAt(p.FetchedAt).
		Save(ctx)

	return err
}

func (r *PostRepository) GetByID(ctx context.Context, id string) (*posts.Post, error) {
	p, err := r.db.Client().Post.Query().Where(entpost.ID(id)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, posts.ErrNotFound
		}
		return nil, err
	}

	return postFromEnt(p), nil
}

func (r *PostRepository) GetByExternalID(ctx context.Context, externalID string) (*posts.Post, error) {
	p, err := r.db.Client().Post.Query().Where(entpost.ExternalID(externalID)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, posts.ErrNotFound
		}
		return nil, err
	}

	return postFromEnt(p), nil
}

func (r *PostRepository) List(ctx context.Context, req posts.ListRequest) ([]*posts.Post, error) {
	query := r.db.Client().Post.Query()

	if req.TopicID != "" {
		query = query.Where(entpost.TopicID(req.TopicID))
	}
	if req.AuthorHandle != "" {
		query = query.Where(entpost.AuthorHandle(req.AuthorHandle))
	}
	if req.OnlyBookmarks {
		query = query.Where(entpost.IsBookmark(true))
	}
	if req.Limit > 0 {
		query = query.Limit(req.Limit)
	}

	rows, err := query.Order(ent.Desc(entpost.FieldTime)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query posts: %w", err)
	}

	result := make([]*posts.Post, len(rows))
	for i, p := range rows {
		result[i] = postFromEnt(p)
	}

	return result, nil
}

func (r *PostRepository) SetTopic(ctx context.Context, postID, topicID string) error {
	err := r.db.Client().Post.UpdateOneID(postID).
		SetTopicID(topicID).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return posts.ErrNotFound
		}
		return err
	}
	return nil
}

func (r *PostRepository) CountByTopic(ctx context.Context, topicID string) (int, error) {
	return r.db.Client().Post.Query().
		Where(entpost.TopicID(topicID)).
		Count(ctx)
}

func postFromEnt(in *ent.Post) *posts.Post {
	return &posts.Post{
		ID:           in.ID,
		ExternalID:   in.ExternalID,
		Author:       in.Author,
		AuthorHandle: in.AuthorHandle,
		Followers:    in.Followers,
		Text:         in.Text,
		URL:          in.URL,
		Time:         in.Time,
		HasMedia:     in.HasMedia,
		IsBookmark:   in.IsBookmark,
		TopicID:      in.TopicID,
		FetchedAt:    in.FetchedAt,
	}
}
