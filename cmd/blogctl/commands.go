package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/PrateekLewis/blog-application/internal/api"
	"github.com/PrateekLewis/blog-application/internal/controller"
	"github.com/PrateekLewis/blog-application/internal/domain"
	"github.com/PrateekLewis/blog-application/internal/session"
)

// app carries the shared dependencies into every command.
type app struct {
	logger *slog.Logger
	store  *session.Store
	client *api.Client
}

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "blogctl",
		Short:         "Command-line client for the blog platform",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newLoginCommand(a),
		newRegisterCommand(a),
		newLogoutCommand(a),
		newWhoamiCommand(a),
		newPostsCommand(a),
		newProfileCommand(a),
	)

	return root
}

// ctrlErr converts a controller's failure state into a command error.
func ctrlErr(message string) error {
	return errors.New(message)
}

func newLoginCommand(a *app) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl := controller.NewAuthController(a.client, a.store, a.logger)
			ctrl.LoginForm = controller.LoginForm{Email: email, Password: password}
			ctrl.SubmitLogin(cmd.Context())
			if ctrl.Err != "" {
				return ctrlErr(ctrl.Err)
			}
			fmt.Println(ctrl.Success)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	return cmd
}

func newRegisterCommand(a *app) *cobra.Command {
	var name, email, password, confirm string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new account",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl := controller.NewAuthController(a.client, a.store, a.logger)
			ctrl.RegisterForm = controller.RegisterForm{
				Name:            name,
				Email:           email,
				Password:        password,
				ConfirmPassword: confirm,
			}
			ctrl.SubmitRegister(cmd.Context())
			if ctrl.Err != "" {
				return ctrlErr(ctrl.Err)
			}
			fmt.Println(ctrl.Success)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	cmd.Flags().StringVar(&confirm, "confirm", "", "password confirmation")
	return cmd
}

func newLogoutCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl := controller.NewAuthController(a.client, a.store, a.logger)
			ctrl.Logout(cmd.Context())
			if ctrl.Err != "" {
				return ctrlErr(ctrl.Err)
			}
			fmt.Println("Logged out")
			return nil
		},
	}
}

func newWhoamiCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess := a.store.Current(cmd.Context())
			if sess == nil {
				fmt.Println("Not logged in")
				return nil
			}
			fmt.Printf("%s <%s> (id %d)\n", sess.Name, sess.Email, sess.ID)
			return nil
		},
	}
}

func newPostsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "posts",
		Short: "Manage blog posts",
	}
	cmd.AddCommand(
		newPostsListCommand(a),
		newPostsReadCommand(a),
		newPostsCreateCommand(a),
		newPostsEditCommand(a),
		newPostsDeleteCommand(a),
	)
	return cmd
}

func newPostsListCommand(a *app) *cobra.Command {
	var search, category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List posts, optionally filtered",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl := controller.NewDashboardController(a.client, terminalConfirmer{}, a.logger)
			ctrl.SetSearchTerm(search)
			if category != "" {
				ctrl.SetCategory(domain.Category(category))
			}
			ctrl.Load(cmd.Context())
			if ctrl.Err != "" {
				return ctrlErr(ctrl.Err)
			}

			posts := ctrl.FilteredPosts()
			if len(posts) == 0 {
				fmt.Println("No posts found")
				return nil
			}
			for _, p := range posts {
				fmt.Printf("%d\t[%s]\t%s\tby %s on %s\n",
					p.ID, p.Category, p.Title, p.AuthorName, p.Date.Format("2006-01-02"))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "case-insensitive match on title or content")
	cmd.Flags().StringVar(&category, "category", "", "exact category match (default All)")
	return cmd
}

func newPostsReadCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "read <id>",
		Short: "Read a single post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid post id %q", args[0])
			}

			ctrl := controller.NewPostDetailController(a.client, a.logger)
			ctrl.Load(cmd.Context(), id)
			if ctrl.Err != "" {
				return ctrlErr(ctrl.Err)
			}

			p := ctrl.Post
			fmt.Printf("%s\n[%s] by %s on %s\n\n%s\n",
				p.Title, p.Category, p.AuthorName, p.Date.Format("January 2, 2006"), p.Content)
			return nil
		},
	}
}

func newPostsCreateCommand(a *app) *cobra.Command {
	var title, content, category string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a post",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl := controller.NewDashboardController(a.client, terminalConfirmer{}, a.logger)
			ctrl.Form = controller.PostForm{
				Title:    title,
				Content:  content,
				Category: domain.Category(category),
			}
			ctrl.SavePost(cmd.Context())
			if ctrl.Err != "" {
				return ctrlErr(ctrl.Err)
			}
			fmt.Println("Post created")
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "post title")
	cmd.Flags().StringVar(&content, "content", "", "post content")
	cmd.Flags().StringVar(&category, "category", string(domain.CategoryTechnology), "post category")
	return cmd
}

func newPostsEditCommand(a *app) *cobra.Command {
	var title, content, category string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Update a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid post id %q", args[0])
			}

			ctrl := controller.NewDashboardController(a.client, terminalConfirmer{}, a.logger)

			// Start from the current post so unspecified flags keep their
			// values.
			detail := controller.NewPostDetailController(a.client, a.logger)
			detail.Load(cmd.Context(), id)
			if detail.Err != "" {
				return ctrlErr(detail.Err)
			}
			ctrl.EditPost(*detail.Post)

			if cmd.Flags().Changed("title") {
				ctrl.Form.Title = title
			}
			if cmd.Flags().Changed("content") {
				ctrl.Form.Content = content
			}
			if cmd.Flags().Changed("category") {
				ctrl.Form.Category = domain.Category(category)
			}

			ctrl.SavePost(cmd.Context())
			if ctrl.Err != "" {
				return ctrlErr(ctrl.Err)
			}
			fmt.Println("Post updated")
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "post title")
	cmd.Flags().StringVar(&content, "content", "", "post content")
	cmd.Flags().StringVar(&category, "category", "", "post category")
	return cmd
}

func newPostsDeleteCommand(a *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid post id %q", args[0])
			}

			var confirm controller.Confirmer = terminalConfirmer{}
			if yes {
				confirm = autoConfirmer{}
			}

			ctrl := controller.NewDashboardController(a.client, confirm, a.logger)
			ctrl.DeletePost(cmd.Context(), id)
			if ctrl.Err != "" {
				return ctrlErr(ctrl.Err)
			}
			fmt.Println("Post deleted")
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "skip the confirmation prompt")
	return cmd
}

func newProfileCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or edit your profile",
	}
	cmd.AddCommand(
		newProfileShowCommand(a),
		newProfileEditCommand(a),
	)
	return cmd
}

func newProfileShowCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show your profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl := controller.NewProfileController(a.client, a.store, a.logger)
			ctrl.Load(cmd.Context())
			if ctrl.Err != "" {
				return ctrlErr(ctrl.Err)
			}
			fmt.Printf("Name:  %s\nEmail: %s\nBio:   %s\n",
				ctrl.Form.Name, ctrl.Form.Email, ctrl.Form.Bio)
			return nil
		},
	}
}

func newProfileEditCommand(a *app) *cobra.Command {
	var name, bio string

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Update your name and bio",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl := controller.NewProfileController(a.client, a.store, a.logger)
			ctrl.Load(cmd.Context())
			if ctrl.Err != "" {
				return ctrlErr(ctrl.Err)
			}

			if cmd.Flags().Changed("name") {
				ctrl.Form.Name = name
			}
			if cmd.Flags().Changed("bio") {
				ctrl.Form.Bio = bio
			}

			ctrl.Submit(cmd.Context())
			if ctrl.Err != "" {
				return ctrlErr(ctrl.Err)
			}
			fmt.Println(ctrl.Success)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&bio, "bio", "", "profile bio")
	return cmd
}
