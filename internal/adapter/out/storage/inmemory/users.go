package inmemory

import (
	"context"
	"myforum/internal/model"
	"myforum/internal/service"
	"strings"
	"sync"
	"time"
)

type UserStorage struct {
	mu sync.RWMutex

	users  []model.User
	byName map[string]int64

	posts   *PostStorage
	replies *ReplyStorage
	tags    *TagStorage
}

type UserOption func(*UserStorage)

// WithCascade makes DeleteUser also remove the user's posts (with their
// replies and tag links) and replies, the way the database foreign keys do.
func WithCascade(posts *PostStorage, replies *ReplyStorage, tags *TagStorage) UserOption {
	return func(s *UserStorage) {
		s.posts = posts
		s.replies = replies
		s.tags = tags
	}
}

func NewUserStorage(opts ...UserOption) *UserStorage {
	s := &UserStorage{
		users:  []model.User{{}},
		byName: make(map[string]int64),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateUser rejects usernames that differ from an existing one only by case.
func (s *UserStorage) CreateUser(_ context.Context, in model.User) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.ToLower(in.Username)
	if _, ok := s.byName[key]; ok {
		return model.User{}, service.ErrConflict
	}

	in.ID = int64(len(s.users))
	if in.CreatedAt.IsZero() {
		in.CreatedAt = time.Now()
	}
	s.users = append(s.users, in)
	s.byName[key] = in.ID
	return in, nil
}

func (s *UserStorage) GetUserByID(_ context.Context, userID int64) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if userID <= 0 || int(userID) >= len(s.users) || s.users[userID].ID == 0 {
		return model.User{}, service.ErrNotFound
	}
	return s.users[userID], nil
}

func (s *UserStorage) GetUserByUsername(_ context.Context, username string) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byName[strings.ToLower(username)]
	if !ok {
		return model.User{}, service.ErrNotFound
	}
	return s.users[id], nil
}

func (s *UserStorage) GetUsers(_ context.Context) ([]model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.User, 0, len(s.users)-1)
	for _, u := range s.users[1:] {
		if u.ID != 0 {
			out = append(out, u)
		}
	}
	return out, nil
}

func (s *UserStorage) DeleteUser(ctx context.Context, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if userID <= 0 || int(userID) >= len(s.users) || s.users[userID].ID == 0 {
		return service.ErrNotFound
	}
	delete(s.byName, strings.ToLower(s.users[userID].Username))
	s.users[userID] = model.User{}

	return s.cascade(ctx, userID)
}

func (s *UserStorage) cascade(ctx context.Context, userID int64) error {
	if s.posts != nil {
		for _, postID := range s.posts.deleteByAuthor(userID) {
			if s.replies != nil {
				if err := s.replies.DeleteRepliesByPost(ctx, postID); err != nil {
					return err
				}
			}
			if s.tags != nil {
				if err := s.tags.SetPostTags(ctx, postID, nil); err != nil {
					return err
				}
			}
		}
	}
	if s.replies != nil {
		s.replies.deleteByAuthor(userID)
	}
	return nil
}
