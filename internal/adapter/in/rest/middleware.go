package rest

import (
	"context"
	"errors"
	"fmt"
	"myforum/internal/model"
	"myforum/internal/service"
	"myforum/pkg/logger"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

type callerKey struct{}

type caller struct {
	user    model.User
	token   string
	authErr error
}

func callerFrom(ctx context.Context) (caller, bool) {
	c, ok := ctx.Value(callerKey{}).(caller)
	return c, ok && c.authErr == nil
}

// requestLogger puts a request-scoped logger into the context and logs one line per request.
func (h *Handler) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log := h.log.With(
			"request_id", middleware.GetReqID(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
		)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r.WithContext(logger.WithLogger(r.Context(), log)))

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		log.Info("request served",
			"status", status,
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
		)
	})
}

// authenticate resolves an optional bearer token. Failures are remembered and
// only reported by requireAuth, so anonymous routes ignore bad tokens.
func (h *Handler) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, present := bearerToken(r)
		if !present {
			next.ServeHTTP(w, r)
			return
		}

		user, err := h.users.Authorize(r.Context(), token)
		if err != nil && !errors.Is(err, service.ErrUnauthorized) {
			writeError(w, r, err)
			return
		}

		ctx := context.WithValue(r.Context(), callerKey{}, caller{user: user, token: token, authErr: err})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, ok := r.Context().Value(callerKey{}).(caller)
		switch {
		case !ok:
			writeError(w, r, fmt.Errorf("%w: missing authentication token", service.ErrUnauthorized))
		case c.authErr != nil:
			writeError(w, r, c.authErr)
		default:
			next.ServeHTTP(w, r)
		}
	})
}

// bearerToken reports whether an Authorization header was sent at all.
func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", true
	}
	return strings.TrimSpace(token), true
}
