package client

import (
	"context"

	"github.com/dmitrijs2005/postfeed/internal/client/models"
)

// PostsClient reads sample content from the remote posts endpoint.
type PostsClient interface {
	ListPosts(ctx context.Context) ([]models.PostSummary, error)
	GetPost(ctx context.Context, id int) (*models.Post, error)
}
