package controller

import (
	"context"
	"log/slog"
	"strings"

	"github.com/PrateekLewis/blog-application/internal/api"
	"github.com/PrateekLewis/blog-application/internal/domain"
)

// PostForm holds the create/edit dialog fields. A zero ID means create; a
// non-zero ID edits that post.
type PostForm struct {
	ID       int
	Title    string
	Content  string
	Category domain.Category
}

func (f PostForm) validate() *ValidationError {
	if strings.TrimSpace(f.Title) == "" {
		return &ValidationError{Message: "Please enter a title"}
	}
	if strings.TrimSpace(f.Content) == "" {
		return &ValidationError{Message: "Please enter content"}
	}
	return nil
}

// DashboardController drives the post dashboard: the fetched post list,
// client-side search/category filtering, and create/edit/delete flows.
type DashboardController struct {
	client  *api.Client
	confirm Confirmer
	logger  *slog.Logger

	Loading bool
	Err     string
	Success string

	// Posts is the last fetched list, unfiltered.
	Posts []domain.Post

	SearchTerm string
	Category   domain.Category

	Form PostForm

	// fetchSeq orders fetches so that a slow response for a superseded fetch
	// never overwrites newer state.
	fetchSeq int
}

func NewDashboardController(client *api.Client, confirm Confirmer, logger *slog.Logger) *DashboardController {
	return &DashboardController{
		client:   client,
		confirm:  confirm,
		logger:   logger,
		Category: domain.CategoryAll,
		Form:     PostForm{Category: domain.CategoryTechnology},
	}
}

// Load fetches the post list from the backend.
func (c *DashboardController) Load(ctx context.Context) {
	seq := c.beginFetch()
	posts, err := c.client.GetPosts(ctx)
	c.completeFetch(seq, posts, err)
}

// beginFetch marks a new fetch as issued and returns its sequence number.
func (c *DashboardController) beginFetch() int {
	c.fetchSeq++
	c.Loading = true
	return c.fetchSeq
}

// completeFetch applies a fetch result unless a newer fetch has been issued
// since, in which case the stale result is dropped without touching state.
func (c *DashboardController) completeFetch(seq int, posts []domain.Post, err error) {
	if seq != c.fetchSeq {
		return
	}
	c.Loading = false

	if err != nil {
		c.Err = errorMessage(err, "Failed to fetch posts")
		return
	}
	c.Posts = posts
	c.Err = ""
}

// SetSearchTerm updates the search filter. Local only, no network call.
func (c *DashboardController) SetSearchTerm(term string) {
	c.SearchTerm = term
}

// SetCategory updates the category filter. Local only, no network call.
func (c *DashboardController) SetCategory(category domain.Category) {
	c.Category = category
}

// FilteredPosts applies the current search term and category to the last
// fetched list.
func (c *DashboardController) FilteredPosts() []domain.Post {
	return domain.FilterPosts(c.Posts, c.SearchTerm, c.Category)
}

// EditPost loads an existing post into the form for editing.
func (c *DashboardController) EditPost(post domain.Post) {
	c.Form = PostForm{
		ID:       post.ID,
		Title:    post.Title,
		Content:  post.Content,
		Category: post.Category,
	}
	c.Err = ""
}

// ResetForm clears the form back to create mode.
func (c *DashboardController) ResetForm() {
	c.Form = PostForm{Category: domain.CategoryTechnology}
	c.Err = ""
}

// SavePost creates or updates the post described by the form, then re-fetches
// the list. Validation failures short-circuit with no network call.
func (c *DashboardController) SavePost(ctx context.Context) {
	c.Err, c.Success = "", ""

	if verr := c.Form.validate(); verr != nil {
		c.Err = verr.Message
		return
	}

	var err error
	if c.Form.ID != 0 {
		_, err = c.client.UpdatePost(ctx, c.Form.ID, c.Form.Title, c.Form.Content, c.Form.Category)
	} else {
		_, err = c.client.CreatePost(ctx, c.Form.Title, c.Form.Content, c.Form.Category)
	}
	if err != nil {
		c.Err = errorMessage(err, "Failed to save post")
		return
	}

	c.ResetForm()
	c.Load(ctx)
}

// DeletePost removes a post after confirmation, then re-fetches the list.
// When confirmation is denied, no network call is made.
func (c *DashboardController) DeletePost(ctx context.Context, id int) {
	c.Err, c.Success = "", ""

	if !c.confirm.Confirm("Are you sure you want to delete this post?") {
		return
	}

	if err := c.client.DeletePost(ctx, id); err != nil {
		c.Err = errorMessage(err, "Failed to delete post")
		return
	}
	c.Load(ctx)
}
