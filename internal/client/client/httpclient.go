package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/postfeed/internal/client/models"
	"github.com/dmitrijs2005/postfeed/internal/common"
	"github.com/dmitrijs2005/postfeed/internal/netx"
)

// HTTPClient talks to a JSONPlaceholder-compatible REST endpoint.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

// NewHTTPClient returns a client for baseURL (e.g.
// "https://jsonplaceholder.typicode.com"). timeout bounds every request.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) ListPosts(ctx context.Context) ([]models.PostSummary, error) {
	var posts []models.PostSummary
	if err := c.get(ctx, "/posts", &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (c *HTTPClient) GetPost(ctx context.Context, id int) (*models.Post, error) {
	var post models.Post
	if err := c.get(ctx, fmt.Sprintf("/posts/%d", id), &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *HTTPClient) get(ctx context.Context, path string, out any) error {
	op := "GET " + path
	err := netx.GetJSON(ctx, c.http, c.baseURL+path, out)
	if err == nil {
		return nil
	}

	var se *netx.StatusError
	switch {
	case errors.As(err, &se) && se.StatusCode == http.StatusNotFound:
		return &common.NetworkError{Op: op, Err: ErrNotFound}
	case errors.As(err, &se):
		return &common.NetworkError{Op: op, Err: err}
	case errors.Is(err, context.Canceled):
		return err
	case errors.Is(err, netx.ErrDecode):
		return &common.NetworkError{Op: op, Err: err}
	default:
		return &common.NetworkError{Op: op, Err: fmt.Errorf("%w: %v", ErrUnavailable, err)}
	}
}
