package services

import (
	"context"

	"github.com/dmitrijs2005/postfeed/internal/client/client"
	"github.com/dmitrijs2005/postfeed/internal/client/models"
	"github.com/dmitrijs2005/postfeed/internal/logging"
)

// PostService exposes the read-only sample content to the screens.
type PostService interface {
	List(ctx context.Context) ([]models.PostSummary, error)
	Get(ctx context.Context, id int) (*models.Post, error)
}

type postService struct {
	client client.PostsClient
	log    logging.Logger
}

// NewPostService constructs a PostService reading through c.
func NewPostService(c client.PostsClient, log logging.Logger) PostService {
	return &postService{client: c, log: log}
}

func (s *postService) List(ctx context.Context) ([]models.PostSummary, error) {
	posts, err := s.client.ListPosts(ctx)
	if err != nil {
		s.log.Error(ctx, "error fetching posts", "error", err)
		return nil, err
	}
	s.log.Debug(ctx, "posts fetched", "count", len(posts))
	return posts, nil
}

func (s *postService) Get(ctx context.Context, id int) (*models.Post, error) {
	post, err := s.client.GetPost(ctx, id)
	if err != nil {
		s.log.Error(ctx, "error fetching post details", "post_id", id, "error", err)
		return nil, err
	}
	return post, nil
}
