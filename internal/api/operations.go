package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/PrateekLewis/blog-application/internal/domain"
)

// The operations below are thin typed wrappers over Do with a fixed method
// and path each. Errors from Do are propagated unchanged so that callers can
// inspect *Error with errors.As and show its message verbatim.

// Register creates a new account. The backend responds 201 with no useful
// body; the caller logs in separately afterwards.
func (c *Client) Register(ctx context.Context, name, email, password string) error {
	body := registerRequest{
		Name:     name,
		Email:    email,
		Password: password,
	}
	return c.Do(ctx, Request{
		Path:     "/register",
		Method:   http.MethodPost,
		Body:     body,
		SkipAuth: true,
	}, nil)
}

// Login exchanges credentials for a bearer token. The response carries only
// the token; the caller must fetch the profile to build a full session.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	body := loginRequest{
		Email:    email,
		Password: password,
	}

	var resp loginResponse
	if err := c.Do(ctx, Request{
		Path:     "/login",
		Method:   http.MethodPost,
		Body:     body,
		SkipAuth: true,
	}, &resp); err != nil {
		return "", err
	}
	return resp.AccessToken, nil
}

// GetProfile fetches the authenticated user's profile.
func (c *Client) GetProfile(ctx context.Context) (domain.Profile, error) {
	var profile domain.Profile
	err := c.Do(ctx, Request{
		Path:   "/profile",
		Method: http.MethodGet,
	}, &profile)
	return profile, err
}

// UpdateProfile changes the user's name and bio. Email is immutable and not
// part of the request. Returns the updated profile.
func (c *Client) UpdateProfile(ctx context.Context, name, bio string) (domain.Profile, error) {
	var profile domain.Profile
	err := c.Do(ctx, Request{
		Path:   "/profile",
		Method: http.MethodPut,
		Body:   profileRequest{Name: name, Bio: bio},
	}, &profile)
	return profile, err
}

// CreatePost creates a post and returns it with the server-assigned id and
// date.
func (c *Client) CreatePost(ctx context.Context, title, content string, category domain.Category) (domain.Post, error) {
	var post domain.Post
	err := c.Do(ctx, Request{
		Path:   "/posts",
		Method: http.MethodPost,
		Body:   postRequest{Title: title, Content: content, Category: category},
	}, &post)
	return post, err
}

// GetPosts fetches all posts in the order the backend returns them.
func (c *Client) GetPosts(ctx context.Context) ([]domain.Post, error) {
	var posts []domain.Post
	err := c.Do(ctx, Request{
		Path:   "/posts",
		Method: http.MethodGet,
	}, &posts)
	return posts, err
}

// GetPost fetches a single post by id. An unknown id surfaces as a *Error
// with status 404.
func (c *Client) GetPost(ctx context.Context, id int) (domain.Post, error) {
	var post domain.Post
	err := c.Do(ctx, Request{
		Path:   fmt.Sprintf("/posts/%d", id),
		Method: http.MethodGet,
	}, &post)
	return post, err
}

// UpdatePost replaces a post's title, content and category.
func (c *Client) UpdatePost(ctx context.Context, id int, title, content string, category domain.Category) (domain.Post, error) {
	var post domain.Post
	err := c.Do(ctx, Request{
		Path:   fmt.Sprintf("/posts/%d", id),
		Method: http.MethodPut,
		Body:   postRequest{Title: title, Content: content, Category: category},
	}, &post)
	return post, err
}

// DeletePost removes a post. The backend responds 204 on success.
func (c *Client) DeletePost(ctx context.Context, id int) error {
	return c.Do(ctx, Request{
		Path:   fmt.Sprintf("/posts/%d", id),
		Method: http.MethodDelete,
	}, nil)
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
}

type profileRequest struct {
	Name string `json:"name"`
	Bio  string `json:"bio"`
}

type postRequest struct {
	Title    string          `json:"title"`
	Content  string          `json:"content"`
	Category domain.Category `json:"category"`
}
