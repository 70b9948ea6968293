package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dmitrijs2005/projectboard/internal/client/client"
	"github.com/dmitrijs2005/projectboard/internal/client/credentials"
	"github.com/dmitrijs2005/projectboard/internal/client/models"
	"github.com/dmitrijs2005/projectboard/internal/client/session"
	"github.com/dmitrijs2005/projectboard/internal/logging"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newBoardServer answers like the real API: a token is issued for password
// "pw" and every project route demands it.
func newBoardServer(t *testing.T) *httptest.Server {
	t.Helper()
	const token = "tok-123"

	authed := func(h http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") != "Bearer "+token {
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]any{"message": "Unauthorized"})
				return
			}
			h(w, r)
		}
	}

	r := mux.NewRouter()
	r.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body struct{ Email, Password string }
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body.Password != "pw" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]any{"message": "invalid credentials"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"accessToken": token})
	}).Methods(http.MethodPost)
	r.HandleFunc("/projects", authed(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]models.Project{{ID: 1, Name: "alpha"}})
	})).Methods(http.MethodGet)
	r.HandleFunc("/projects/{id}/memberships/me", authed(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(models.Membership{Role: models.RoleGuest})
	})).Methods(http.MethodGet)
	r.HandleFunc("/projects/{id}/posts", authed(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]models.Post{{ID: 5, Content: "hello"}})
	})).Methods(http.MethodGet)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func TestFlow_LoginListLogout(t *testing.T) {
	ctx := context.Background()
	srv := newBoardServer(t)

	store := credentials.NewMemoryStore()
	sess := session.New(store, logging.NewDiscard())
	require.NoError(t, sess.Initialize(ctx))

	api, err := client.New(srv.URL, sess)
	require.NoError(t, err)
	auth := NewAuthService(api, sess)
	projects := NewProjectService(api, logging.NewDiscard())

	_, err = projects.List(ctx)
	require.ErrorIs(t, err, client.ErrUnauthorized, "no token before login")

	err = auth.Login(ctx, "a@x.io", []byte("wrong"))
	require.ErrorIs(t, err, client.ErrUnauthorized)
	assert.False(t, sess.State().IsAuthenticated)

	require.NoError(t, auth.Login(ctx, "a@x.io", []byte("pw")))
	assert.True(t, sess.State().IsAuthenticated)
	stored, ok, err := store.Load(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "tok-123", stored)

	list, err := projects.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	view, err := projects.Open(ctx, list[0])
	require.NoError(t, err)
	assert.Equal(t, models.RoleGuest, view.Role)
	assert.False(t, view.Affordances.CanInvite)
	require.Len(t, view.Posts, 1)

	require.NoError(t, auth.Logout(ctx))
	_, ok, err = store.Load(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = projects.List(ctx)
	require.ErrorIs(t, err, client.ErrUnauthorized, "token gone after logout")
}

func TestFlow_RestoredTokenIsUsed(t *testing.T) {
	ctx := context.Background()
	srv := newBoardServer(t)

	sess := session.New(credentials.NewMemoryStoreWith("tok-123"), logging.NewDiscard())
	require.NoError(t, sess.Initialize(ctx))

	api, err := client.New(srv.URL, sess)
	require.NoError(t, err)

	list, err := NewProjectService(api, logging.NewDiscard()).List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "alpha", list[0].Name)
}
