package controller

import (
	"context"
	"log/slog"

	"github.com/PrateekLewis/blog-application/internal/api"
	"github.com/PrateekLewis/blog-application/internal/session"
)

// ProfileForm holds the profile screen's input fields. Email is shown but
// never editable.
type ProfileForm struct {
	Name  string
	Email string
	Bio   string
}

// ProfileController drives the profile screen: fetch-on-mount into the form,
// and submitting name/bio changes. On a successful update the session
// store's cached name and email are refreshed from the response.
type ProfileController struct {
	client *api.Client
	store  *session.Store
	logger *slog.Logger

	Loading bool
	Err     string
	Success string

	Form ProfileForm
}

func NewProfileController(client *api.Client, store *session.Store, logger *slog.Logger) *ProfileController {
	return &ProfileController{
		client: client,
		store:  store,
		logger: logger,
	}
}

// Load fetches the profile into the form.
func (c *ProfileController) Load(ctx context.Context) {
	c.Loading = true
	defer func() { c.Loading = false }()

	profile, err := c.client.GetProfile(ctx)
	if err != nil {
		c.Err = errorMessage(err, "Failed to load profile")
		return
	}

	c.Form = ProfileForm{
		Name:  profile.Name,
		Email: profile.Email,
		Bio:   profile.Bio,
	}
	c.Err = ""
}

// Submit sends the edited name and bio. Email is immutable and not part of
// the request.
func (c *ProfileController) Submit(ctx context.Context) {
	c.Err, c.Success = "", ""

	c.Loading = true
	defer func() { c.Loading = false }()

	updated, err := c.client.UpdateProfile(ctx, c.Form.Name, c.Form.Bio)
	if err != nil {
		c.Err = errorMessage(err, "Failed to update profile")
		return
	}

	merge := session.ProfileUpdate{
		ID:    &updated.ID,
		Name:  &updated.Name,
		Email: &updated.Email,
	}
	if err := c.store.UpdateProfile(ctx, merge); err != nil {
		// The backend accepted the change; only the local cache is stale.
		c.logger.Warn("failed to refresh cached session", "error", err)
	}

	c.Form.Name = updated.Name
	c.Form.Email = updated.Email
	c.Form.Bio = updated.Bio
	c.Success = "Profile updated successfully!"
}
