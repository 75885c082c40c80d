package controller

import (
	"context"
	"log/slog"

	"github.com/PrateekLewis/blog-application/internal/api"
	"github.com/PrateekLewis/blog-application/internal/session"
)

// minPasswordLength is enforced client-side at registration.
const minPasswordLength = 6

// LoginForm holds the login screen's input fields.
type LoginForm struct {
	Email    string
	Password string
}

func (f LoginForm) validate() *ValidationError {
	if f.Email == "" || f.Password == "" {
		return &ValidationError{Message: "Please fill in all fields"}
	}
	return nil
}

// RegisterForm holds the registration screen's input fields.
type RegisterForm struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

func (f RegisterForm) validate() *ValidationError {
	if f.Name == "" || f.Email == "" || f.Password == "" || f.ConfirmPassword == "" {
		return &ValidationError{Message: "Please fill in all fields"}
	}
	if f.Password != f.ConfirmPassword {
		return &ValidationError{Message: "Passwords do not match"}
	}
	if len(f.Password) < minPasswordLength {
		return &ValidationError{Message: "Password must be at least 6 characters"}
	}
	return nil
}

// AuthController drives the login and registration flows. It is the only
// controller that mutates the session store.
type AuthController struct {
	client *api.Client
	store  *session.Store
	logger *slog.Logger

	Loading bool
	Err     string
	Success string

	LoginForm    LoginForm
	RegisterForm RegisterForm
}

func NewAuthController(client *api.Client, store *session.Store, logger *slog.Logger) *AuthController {
	return &AuthController{
		client: client,
		store:  store,
		logger: logger,
	}
}

// SubmitLogin runs the two-step login flow: exchange credentials for a
// token, then fetch the profile to assemble the full session. The login
// response alone carries no identity, so the ordering is a correctness
// requirement, not an optimization.
func (c *AuthController) SubmitLogin(ctx context.Context) {
	c.Err, c.Success = "", ""

	if verr := c.LoginForm.validate(); verr != nil {
		c.Err = verr.Message
		return
	}

	c.Loading = true
	defer func() { c.Loading = false }()

	const fallback = "Login failed. Please check your credentials."

	token, err := c.client.Login(ctx, c.LoginForm.Email, c.LoginForm.Password)
	if err != nil {
		c.Err = errorMessage(err, fallback)
		return
	}

	// Store a provisional session so the profile fetch is authenticated.
	provisional := session.Session{Email: c.LoginForm.Email, Token: token}
	if err := c.store.Login(ctx, provisional); err != nil {
		c.Err = fallback
		c.logger.Error("failed to store provisional session", "error", err)
		return
	}

	profile, err := c.client.GetProfile(ctx)
	if err != nil {
		if lerr := c.store.Logout(ctx); lerr != nil {
			c.logger.Error("failed to roll back provisional session", "error", lerr)
		}
		c.Err = errorMessage(err, fallback)
		return
	}

	full := session.Session{
		ID:    profile.ID,
		Name:  profile.Name,
		Email: profile.Email,
		Token: token,
	}
	if err := c.store.Login(ctx, full); err != nil {
		c.Err = fallback
		c.logger.Error("failed to store session", "error", err)
		return
	}

	c.Success = "Logged in as " + profile.Name
}

// SubmitRegister creates an account. Validation failures short-circuit with
// no network call; the user logs in separately afterwards.
func (c *AuthController) SubmitRegister(ctx context.Context) {
	c.Err, c.Success = "", ""

	if verr := c.RegisterForm.validate(); verr != nil {
		c.Err = verr.Message
		return
	}

	c.Loading = true
	defer func() { c.Loading = false }()

	err := c.client.Register(ctx, c.RegisterForm.Name, c.RegisterForm.Email, c.RegisterForm.Password)
	if err != nil {
		c.Err = errorMessage(err, "Registration failed. Please try again.")
		return
	}

	c.Success = "Account created! Switching to login..."
}

// Logout clears the current session.
func (c *AuthController) Logout(ctx context.Context) {
	c.Err, c.Success = "", ""

	if err := c.store.Logout(ctx); err != nil {
		c.Err = "Failed to log out"
		c.logger.Error("logout failed", "error", err)
	}
}
