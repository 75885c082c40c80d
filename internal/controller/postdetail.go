package controller

import (
	"context"
	"log/slog"

	"github.com/PrateekLewis/blog-application/internal/api"
	"github.com/PrateekLewis/blog-application/internal/domain"
)

// PostDetailController drives the single-post reader view.
type PostDetailController struct {
	client *api.Client
	logger *slog.Logger

	Loading bool
	Err     string

	// Post is the loaded post, nil until a Load succeeds.
	Post *domain.Post

	fetchSeq int
}

func NewPostDetailController(client *api.Client, logger *slog.Logger) *PostDetailController {
	return &PostDetailController{
		client: client,
		logger: logger,
	}
}

// Load fetches the post with the given id. A 404 surfaces as Err like any
// other API failure. A result arriving for a superseded Load is dropped so
// stale responses never overwrite newer state.
func (c *PostDetailController) Load(ctx context.Context, id int) {
	seq := c.beginFetch()
	post, err := c.client.GetPost(ctx, id)
	c.completeFetch(seq, post, err)
}

func (c *PostDetailController) beginFetch() int {
	c.fetchSeq++
	c.Loading = true
	return c.fetchSeq
}

func (c *PostDetailController) completeFetch(seq int, post domain.Post, err error) {
	if seq != c.fetchSeq {
		return
	}
	c.Loading = false

	if err != nil {
		c.Err = errorMessage(err, "Failed to load post")
		return
	}
	c.Post = &post
	c.Err = ""
}
