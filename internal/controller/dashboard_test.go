package controller_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PrateekLewis/blog-application/internal/api"
	"github.com/PrateekLewis/blog-application/internal/controller"
	"github.com/PrateekLewis/blog-application/internal/domain"
)

const postsJSON = `[
	{"id":1,"title":"Go generics","content":"type parameters","category":"Programming","author_name":"A","date":"2026-01-01T00:00:00Z"},
	{"id":2,"title":"Slow travel","content":"a month in Lisbon","category":"Travel","author_name":"A","date":"2026-02-01T00:00:00Z"}
]`

func postsMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /posts", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(postsJSON))
	})
	return mux
}

func newDashboard(t *testing.T, mux *http.ServeMux, confirm *scriptedConfirmer) (*controller.DashboardController, *backendRecorder) {
	t.Helper()
	backend := newBackend(mux)
	t.Cleanup(backend.Close)

	store := testStore()
	client := api.NewClient(backend.URL, store)
	return controller.NewDashboardController(client, confirm, testLogger()), backend
}

func TestDashboardLoad_PopulatesPosts(t *testing.T) {
	ctrl, _ := newDashboard(t, postsMux(), &scriptedConfirmer{})

	ctrl.Load(context.Background())

	assert.Empty(t, ctrl.Err)
	assert.False(t, ctrl.Loading)
	require.Len(t, ctrl.Posts, 2)
	assert.Equal(t, "Go generics", ctrl.Posts[0].Title)
}

func TestDashboardLoad_ErrorFromBackend(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /posts", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"Not authenticated"}`))
	})
	ctrl, _ := newDashboard(t, mux, &scriptedConfirmer{})

	ctrl.Load(context.Background())

	assert.Equal(t, "Not authenticated", ctrl.Err)
	assert.Empty(t, ctrl.Posts)
}

func TestDashboardFilter_LocalOnly(t *testing.T) {
	ctrl, backend := newDashboard(t, postsMux(), &scriptedConfirmer{})
	ctrl.Load(context.Background())
	callsAfterLoad := len(backend.Calls())

	ctrl.SetSearchTerm("lisbon")
	ctrl.SetCategory(domain.CategoryAll)
	filtered := ctrl.FilteredPosts()

	require.Len(t, filtered, 1)
	assert.Equal(t, 2, filtered[0].ID)
	assert.Len(t, backend.Calls(), callsAfterLoad, "filtering must not hit the network")

	ctrl.SetCategory(domain.CategoryProgramming)
	assert.Empty(t, ctrl.FilteredPosts())
}

func TestSavePost_ValidationShortCircuits(t *testing.T) {
	tests := []struct {
		name    string
		form    controller.PostForm
		wantErr string
	}{
		{
			name:    "empty title",
			form:    controller.PostForm{Content: "c", Category: domain.CategoryTravel},
			wantErr: "Please enter a title",
		},
		{
			name:    "whitespace title",
			form:    controller.PostForm{Title: "   ", Content: "c", Category: domain.CategoryTravel},
			wantErr: "Please enter a title",
		},
		{
			name:    "empty content",
			form:    controller.PostForm{Title: "t", Content: " \n", Category: domain.CategoryTravel},
			wantErr: "Please enter content",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl, backend := newDashboard(t, http.NewServeMux(), &scriptedConfirmer{})
			ctrl.Form = tt.form

			ctrl.SavePost(context.Background())

			assert.Equal(t, tt.wantErr, ctrl.Err)
			assert.Empty(t, backend.Calls())
		})
	}
}

func TestSavePost_CreateThenRefetch(t *testing.T) {
	mux := postsMux()
	var created map[string]string
	mux.HandleFunc("POST /posts", func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&created))
		w.Write([]byte(`{"id":3,"title":"New","content":"body","category":"Technology"}`))
	})
	ctrl, backend := newDashboard(t, mux, &scriptedConfirmer{})
	ctrl.Form = controller.PostForm{Title: "New", Content: "body", Category: domain.CategoryTechnology}

	ctrl.SavePost(context.Background())

	assert.Empty(t, ctrl.Err)
	assert.Equal(t, []string{"POST /posts", "GET /posts"}, backend.Calls())
	assert.Equal(t, "New", created["title"])
	assert.Zero(t, ctrl.Form.ID, "form resets to create mode")
	assert.Empty(t, ctrl.Form.Title)
}

func TestSavePost_EditUsesUpdate(t *testing.T) {
	mux := postsMux()
	mux.HandleFunc("PUT /posts/1", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":1,"title":"Edited","content":"c","category":"Programming"}`))
	})
	ctrl, backend := newDashboard(t, mux, &scriptedConfirmer{})
	ctrl.EditPost(domain.Post{ID: 1, Title: "Go generics", Content: "c", Category: domain.CategoryProgramming})
	ctrl.Form.Title = "Edited"

	ctrl.SavePost(context.Background())

	assert.Empty(t, ctrl.Err)
	assert.Equal(t, []string{"PUT /posts/1", "GET /posts"}, backend.Calls())
}

func TestDeletePost_ConfirmationDenied(t *testing.T) {
	confirm := &scriptedConfirmer{granted: false}
	ctrl, backend := newDashboard(t, http.NewServeMux(), confirm)

	ctrl.DeletePost(context.Background(), 1)

	assert.Empty(t, ctrl.Err)
	assert.Empty(t, backend.Calls(), "denied confirmation must not hit the network")
	assert.Equal(t, []string{"Are you sure you want to delete this post?"}, confirm.messages)
}

func TestDeletePost_ConfirmationGranted(t *testing.T) {
	mux := postsMux()
	mux.HandleFunc("DELETE /posts/1", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	confirm := &scriptedConfirmer{granted: true}
	ctrl, backend := newDashboard(t, mux, confirm)

	ctrl.DeletePost(context.Background(), 1)

	assert.Empty(t, ctrl.Err)
	assert.Equal(t, []string{"DELETE /posts/1", "GET /posts"}, backend.Calls())
}

func TestDeletePost_BackendError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("DELETE /posts/1", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"detail":"Not your post"}`))
	})
	ctrl, backend := newDashboard(t, mux, &scriptedConfirmer{granted: true})

	ctrl.DeletePost(context.Background(), 1)

	assert.Equal(t, "Not your post", ctrl.Err)
	assert.Equal(t, []string{"DELETE /posts/1"}, backend.Calls(), "no refetch after a failed delete")
}
