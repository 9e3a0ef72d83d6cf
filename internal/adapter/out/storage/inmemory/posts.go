package inmemory

import (
	"context"
	"myforum/internal/adapter/out/storage"
	"myforum/internal/model"
	"myforum/internal/service"
	"slices"
	"sync"
	"time"
)

// PostStorage keeps posts in a slice indexed by id; slot 0 is reserved and
// deleted posts leave a zero-value slot behind so ids are never reused.
type PostStorage struct {
	mu    sync.RWMutex
	posts []model.Post
}

func NewPostStorage() *PostStorage {
	return &PostStorage{
		posts: []model.Post{{}},
	}
}

func (s *PostStorage) CreatePost(_ context.Context, in model.Post) (model.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	in.ID = int64(len(s.posts))
	if in.CreatedAt.IsZero() {
		in.CreatedAt = time.Now()
	}
	in.Tags = nil
	s.posts = append(s.posts, in)
	return in, nil
}

func (s *PostStorage) GetPostByID(_ context.Context, postID int64) (model.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.lookup(postID)
	if !ok {
		return model.Post{}, service.ErrNotFound
	}
	return p, nil
}

func (s *PostStorage) PostExists(_ context.Context, postID int64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.lookup(postID)
	return ok, nil
}

func (s *PostStorage) GetPosts(_ context.Context, limit int) ([]model.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := len(s.posts) - 1
	if n <= 0 {
		return nil, nil
	}

	out := make([]model.Post, 0, min(limit, n))
	for id := n; id >= 1 && len(out) < limit; id-- {
		p := s.posts[id]
		if p.ID != 0 {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *PostStorage) GetPostsWithCursor(_ context.Context, params storage.GetPostsParams) ([]model.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	limit := params.Limit
	if limit <= 0 {
		limit = service.DefaultPostsLimit
	}

	out := make([]model.Post, 0, limit)

	switch params.Direction {
	case storage.DirectionAfter:
		for id := min(int(params.Cursor.ID)-1, len(s.posts)-1); id >= 1 && len(out) < limit; id-- {
			p := s.posts[id]
			if p.ID != 0 {
				out = append(out, p)
			}
		}
		return out, nil

	case storage.DirectionBefore:
		for id := max(int(params.Cursor.ID)+1, 1); id <= len(s.posts)-1 && len(out) < limit; id++ {
			p := s.posts[id]
			if p.ID != 0 {
				out = append(out, p)
			}
		}
		slices.Reverse(out)
		return out, nil

	default:
		return nil, storage.ErrDirectionUnset
	}
}

// UpdatePost overwrites the editable fields; id, author and creation time stay.
func (s *PostStorage) UpdatePost(_ context.Context, in model.Post) (model.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.lookup(in.ID)
	if !ok {
		return model.Post{}, service.ErrNotFound
	}
	p.Title = in.Title
	p.Text = in.Text
	p.RepliesEnabled = in.RepliesEnabled
	p.EditedAt = in.EditedAt
	s.posts[p.ID] = p
	return p, nil
}

func (s *PostStorage) DeletePost(_ context.Context, postID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.lookup(postID); !ok {
		return service.ErrNotFound
	}
	s.posts[postID] = model.Post{}
	return nil
}

// deleteByAuthor removes every post of authorID and returns their ids.
func (s *PostStorage) deleteByAuthor(authorID int64) []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var ids []int64
	for id, p := range s.posts {
		if p.ID != 0 && p.AuthorID == authorID {
			s.posts[id] = model.Post{}
			ids = append(ids, p.ID)
		}
	}
	return ids
}

func (s *PostStorage) lookup(postID int64) (model.Post, bool) {
	if postID <= 0 || int(postID) >= len(s.posts) {
		return model.Post{}, false
	}
	p := s.posts[postID]
	return p, p.ID != 0
}
