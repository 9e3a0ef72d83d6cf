package rest

import (
	"context"
	"log/slog"
	"myforum/internal/model"
	"myforum/internal/service"
	"myforum/pkg/pagination"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const defaultKeepAlive = 15 * time.Second

type PostService interface {
	CreatePost(ctx context.Context, req service.CreatePostRequest) (model.Post, error)
	GetPostByID(ctx context.Context, postID int64) (model.Post, error)
	GetPosts(ctx context.Context, in pagination.PageRequest) (pagination.Page[model.Post], error)
	EditPost(ctx context.Context, req service.EditPostRequest) (model.Post, error)
	DeletePost(ctx context.Context, postID, userID int64) error
}

type ReplyService interface {
	GetAllReplies(ctx context.Context, postID int64) ([]model.Reply, error)
	GetReply(ctx context.Context, postID, replyID int64) (model.Reply, error)
	CreateReply(ctx context.Context, req service.CreateReplyRequest) (model.Reply, error)
	EditReply(ctx context.Context, req service.EditReplyRequest) (model.Reply, error)
	DeleteReply(ctx context.Context, postID, replyID, userID int64) error
	Listen(ctx context.Context, postID int64) (<-chan model.ReplyEvent, error)
}

type TagService interface {
	GetAllTags(ctx context.Context) ([]model.Tag, error)
	GetTag(ctx context.Context, tagID int64) (model.Tag, error)
	AddTag(ctx context.Context, req service.AddTagRequest) (model.Tag, error)
	DeleteTag(ctx context.Context, tagID int64) error
}

type UserService interface {
	CreateUser(ctx context.Context, req service.CreateUserRequest) (model.User, error)
	Authenticate(ctx context.Context, req service.AuthenticateRequest) (model.Session, model.User, error)
	Authorize(ctx context.Context, token string) (model.User, error)
	Logout(ctx context.Context, token string) error
	GetAll(ctx context.Context) ([]model.User, error)
	GetByID(ctx context.Context, userID int64) (model.User, error)
	DeleteUser(ctx context.Context, userID, callerID int64) error
}

type Handler struct {
	posts   PostService
	replies ReplyService
	tags    TagService
	users   UserService

	log       *slog.Logger
	keepAlive time.Duration

	streamsDone chan struct{}
	closeOnce   sync.Once
}

type Option func(*Handler)

func WithLogger(log *slog.Logger) Option {
	return func(h *Handler) {
		if log != nil {
			h.log = log
		}
	}
}

// WithKeepAlive sets how often an idle reply stream sends a comment line.
func WithKeepAlive(d time.Duration) Option {
	return func(h *Handler) {
		if d > 0 {
			h.keepAlive = d
		}
	}
}

func NewHandler(posts PostService, replies ReplyService, tags TagService, users UserService, opts ...Option) *Handler {
	h := &Handler{
		posts:     posts,
		replies:   replies,
		tags:      tags,
		users:     users,
		log:       slog.Default(),
		keepAlive: defaultKeepAlive,

		streamsDone: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// CloseStreams ends every open reply stream and makes new ones return at
// once. Safe to call more than once.
func (h *Handler) CloseStreams() {
	h.closeOnce.Do(func() { close(h.streamsDone) })
}

// Routes builds the router. Ids in paths must be digits; anything else is a 404.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.requestLogger)
	r.Use(middleware.Recoverer)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "resource not found"})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
	})

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(h.authenticate)

		r.Route("/posts", func(r chi.Router) {
			r.Get("/", h.getPosts)
			r.With(requireAuth).Post("/", h.createPost)

			r.Route("/{postId:[0-9]+}", func(r chi.Router) {
				r.Get("/", h.getPost)
				r.With(requireAuth).Put("/", h.editPost)
				r.With(requireAuth).Delete("/", h.deletePost)

				r.Route("/replies", func(r chi.Router) {
					r.Get("/", h.getReplies)
					r.With(requireAuth).Post("/", h.createReply)
					r.Get("/stream", h.streamReplies)
					r.Get("/{replyId:[0-9]+}", h.getReply)
					r.With(requireAuth).Put("/{replyId:[0-9]+}", h.editReply)
					r.With(requireAuth).Delete("/{replyId:[0-9]+}", h.deleteReply)
				})
			})
		})

		r.Route("/tags", func(r chi.Router) {
			r.Get("/", h.getTags)
			r.Get("/{tagId:[0-9]+}", h.getTag)
			r.With(requireAuth).Post("/", h.addTag)
			r.With(requireAuth).Delete("/{tagId:[0-9]+}", h.deleteTag)
		})

		r.Route("/users", func(r chi.Router) {
			r.Post("/", h.register)
			r.Post("/authenticate", h.authenticateUser)

			r.Group(func(r chi.Router) {
				r.Use(requireAuth)
				r.Post("/logout", h.logout)
				r.Get("/", h.getUsers)
				r.Get("/me", h.me)
				r.Get("/{userId:[0-9]+}", h.getUser)
				r.Delete("/{userId:[0-9]+}", h.deleteUser)
			})
		})
	})

	return r
}
