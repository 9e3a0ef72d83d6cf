package rest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	busmem "myforum/internal/adapter/out/pubsub/inmemory"
	sessionmem "myforum/internal/adapter/out/session/inmemory"
	memstore "myforum/internal/adapter/out/storage/inmemory"
	"myforum/internal/service"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type testAPI struct {
	t   *testing.T
	h   *Handler
	srv *httptest.Server
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	h := newTestHandler(t, WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	srv := httptest.NewServer(h.Routes())
	t.Cleanup(srv.Close)
	return &testAPI{t: t, h: h, srv: srv}
}

// newTestHandler wires the handler over fresh in-memory adapters.
func newTestHandler(t *testing.T, opts ...Option) *Handler {
	t.Helper()

	posts := memstore.NewPostStorage()
	replies := memstore.NewReplyStorage()
	tags := memstore.NewTagStorage()
	users := memstore.NewUserStorage(memstore.WithCascade(posts, replies, tags))
	tx := memstore.TxManager{}

	opts = append([]Option{WithKeepAlive(50 * time.Millisecond)}, opts...)
	return NewHandler(
		service.NewPostService(posts, replies, tags, tx),
		service.NewReplyService(replies, posts, busmem.New(8)),
		service.NewTagService(tags, tx),
		service.NewUserService(users, sessionmem.NewSessionStore(), service.WithBcryptCost(bcrypt.MinCost)),
		opts...,
	)
}

func (a *testAPI) do(method, path, token string, body any) *http.Response {
	a.t.Helper()

	var rd io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(a.t, err)
		rd = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, a.srv.URL+path, rd)
	require.NoError(a.t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := a.srv.Client().Do(req)
	require.NoError(a.t, err)
	a.t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

// expect performs the request, checks the status and decodes the body into out when given.
func (a *testAPI) expect(status int, method, path, token string, body, out any) {
	a.t.Helper()

	resp := a.do(method, path, token, body)
	data, err := io.ReadAll(resp.Body)
	require.NoError(a.t, err)
	require.Equal(a.t, status, resp.StatusCode, "%s %s: %s", method, path, data)

	if out != nil {
		require.NoError(a.t, json.Unmarshal(data, out))
	}
}

// login registers a user and returns its token and id.
func (a *testAPI) login(username string) (string, int64) {
	a.t.Helper()

	creds := map[string]string{"username": username, "password": "password1"}
	a.expect(http.StatusCreated, http.MethodPost, "/api/v1/users", "", creds, nil)

	var session sessionResponse
	a.expect(http.StatusOK, http.MethodPost, "/api/v1/users/authenticate", "", creds, &session)
	require.NotEmpty(a.t, session.Token)
	return session.Token, session.User.ID
}

func (a *testAPI) createPost(token, title string) postResponse {
	a.t.Helper()

	var out postResponse
	a.expect(http.StatusCreated, http.MethodPost, "/api/v1/posts", token,
		map[string]any{"title": title, "text": "body of " + title}, &out)
	return out
}

func repliesPath(postID int64) string {
	return fmt.Sprintf("/api/v1/posts/%d/replies", postID)
}
