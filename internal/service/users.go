package service

import (
	"context"
	"errors"
	"fmt"
	"myforum/internal/model"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const DefaultSessionTTL = 24 * time.Hour

var errBadCredentials = fmt.Errorf("%w: invalid username or password", ErrUnauthorized)

//go:generate mockgen -source=users.go -destination=./users_mock.go -package=service
type UserStorage interface {
	CreateUser(ctx context.Context, user model.User) (model.User, error)
	GetUserByID(ctx context.Context, userID int64) (model.User, error)
	GetUserByUsername(ctx context.Context, username string) (model.User, error)
	GetUsers(ctx context.Context) ([]model.User, error)
	DeleteUser(ctx context.Context, userID int64) error
}

// SessionStore keeps issued bearer tokens. Get returns ErrNotFound for unknown or expired tokens.
type SessionStore interface {
	Save(ctx context.Context, session model.Session) error
	Get(ctx context.Context, token string) (model.Session, error)
	Delete(ctx context.Context, token string) error
}

type UserService struct {
	userStorage  UserStorage
	sessionStore SessionStore
	sessionTTL   time.Duration
	bcryptCost   int
	now          func() time.Time
	newToken     func() string
}

type UserOption func(*UserService)

func WithSessionTTL(ttl time.Duration) UserOption {
	return func(s *UserService) {
		if ttl > 0 {
			s.sessionTTL = ttl
		}
	}
}

// WithBcryptCost overrides bcrypt.DefaultCost; tests use bcrypt.MinCost.
func WithBcryptCost(cost int) UserOption {
	return func(s *UserService) {
		s.bcryptCost = cost
	}
}

func NewUserService(userStorage UserStorage, sessionStore SessionStore, opts ...UserOption) *UserService {
	s := &UserService{
		userStorage:  userStorage,
		sessionStore: sessionStore,
		sessionTTL:   DefaultSessionTTL,
		bcryptCost:   bcrypt.DefaultCost,
		now:          time.Now,
		newToken:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *UserService) CreateUser(ctx context.Context, req CreateUserRequest) (model.User, error) {
	if err := validateRequest(req); err != nil {
		return model.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return model.User{}, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.userStorage.CreateUser(ctx, model.User{
		Username:     req.Username,
		PasswordHash: hash,
	})
	if errors.Is(err, ErrConflict) {
		return model.User{}, fmt.Errorf("%w: username %q is taken", ErrConflict, req.Username)
	}
	return user, err
}

// Authenticate checks credentials and issues a new session token.
func (s *UserService) Authenticate(ctx context.Context, req AuthenticateRequest) (model.Session, model.User, error) {
	if err := validateRequest(req); err != nil {
		return model.Session{}, model.User{}, err
	}

	user, err := s.userStorage.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return model.Session{}, model.User{}, errBadCredentials
		}
		return model.Session{}, model.User{}, err
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(req.Password)); err != nil {
		return model.Session{}, model.User{}, errBadCredentials
	}

	session := model.Session{
		Token:     s.newToken(),
		UserID:    user.ID,
		ExpiresAt: s.now().Add(s.sessionTTL),
	}
	if err := s.sessionStore.Save(ctx, session); err != nil {
		return model.Session{}, model.User{}, fmt.Errorf("save session: %w", err)
	}
	return session, user, nil
}

// Authorize resolves a bearer token to its user.
func (s *UserService) Authorize(ctx context.Context, token string) (model.User, error) {
	if token == "" {
		return model.User{}, fmt.Errorf("%w: missing authentication token", ErrUnauthorized)
	}

	session, err := s.sessionStore.Get(ctx, token)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return model.User{}, fmt.Errorf("%w: invalid or expired token", ErrUnauthorized)
		}
		return model.User{}, err
	}
	if !session.ExpiresAt.IsZero() && !s.now().Before(session.ExpiresAt) {
		return model.User{}, fmt.Errorf("%w: invalid or expired token", ErrUnauthorized)
	}

	user, err := s.userStorage.GetUserByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return model.User{}, fmt.Errorf("%w: user no longer exists", ErrUnauthorized)
		}
		return model.User{}, err
	}
	return user, nil
}

func (s *UserService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return fmt.Errorf("%w: missing authentication token", ErrUnauthorized)
	}
	return s.sessionStore.Delete(ctx, token)
}

func (s *UserService) GetAll(ctx context.Context) ([]model.User, error) {
	return s.userStorage.GetUsers(ctx)
}

func (s *UserService) GetByID(ctx context.Context, userID int64) (model.User, error) {
	if userID <= 0 {
		return model.User{}, fmt.Errorf("%w: userId must be > 0", ErrInvalidRequest)
	}
	user, err := s.userStorage.GetUserByID(ctx, userID)
	if err != nil {
		return model.User{}, notFound(err, "user")
	}
	return user, nil
}

// DeleteUser only lets callers remove their own account.
func (s *UserService) DeleteUser(ctx context.Context, userID, callerID int64) error {
	if userID != callerID {
		return fmt.Errorf("%w: you can only delete your own account", ErrForbidden)
	}
	if _, err := s.userStorage.GetUserByID(ctx, userID); err != nil {
		return notFound(err, "user")
	}
	return notFound(s.userStorage.DeleteUser(ctx, userID), "user")
}
