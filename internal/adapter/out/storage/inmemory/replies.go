package inmemory

import (
	"context"
	"myforum/internal/model"
	"myforum/internal/service"
	"slices"
	"sync"
	"time"
)

type ReplyStorage struct {
	mu sync.RWMutex

	replies []model.Reply
	byPost  map[int64][]int64
}

func NewReplyStorage() *ReplyStorage {
	return &ReplyStorage{
		replies: []model.Reply{{}},
		byPost:  make(map[int64][]int64),
	}
}

func (s *ReplyStorage) CreateReply(_ context.Context, in model.Reply) (model.Reply, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	in.ID = int64(len(s.replies))
	if in.CreatedAt.IsZero() {
		in.CreatedAt = time.Now()
	}
	s.replies = append(s.replies, in)
	s.byPost[in.PostID] = append(s.byPost[in.PostID], in.ID)
	return in, nil
}

func (s *ReplyStorage) GetReply(_ context.Context, replyID int64) (model.Reply, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.lookup(replyID)
	if !ok {
		return model.Reply{}, service.ErrNotFound
	}
	return r, nil
}

// GetRepliesByPost returns the replies of a post oldest first.
func (s *ReplyStorage) GetRepliesByPost(_ context.Context, postID int64) ([]model.Reply, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.byPost[postID]
	if len(ids) == 0 {
		return nil, nil
	}

	out := make([]model.Reply, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.replies[id])
	}
	return out, nil
}

func (s *ReplyStorage) UpdateReply(_ context.Context, in model.Reply) (model.Reply, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.lookup(in.ID)
	if !ok {
		return model.Reply{}, service.ErrNotFound
	}
	r.Text = in.Text
	r.EditedAt = in.EditedAt
	s.replies[r.ID] = r
	return r, nil
}

func (s *ReplyStorage) DeleteReply(_ context.Context, replyID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.lookup(replyID)
	if !ok {
		return service.ErrNotFound
	}
	s.byPost[r.PostID] = slices.DeleteFunc(s.byPost[r.PostID], func(id int64) bool { return id == replyID })
	s.replies[replyID] = model.Reply{}
	return nil
}

func (s *ReplyStorage) DeleteRepliesByPost(_ context.Context, postID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.byPost[postID] {
		s.replies[id] = model.Reply{}
	}
	delete(s.byPost, postID)
	return nil
}

func (s *ReplyStorage) deleteByAuthor(authorID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, r := range s.replies {
		if r.ID == 0 || r.AuthorID != authorID {
			continue
		}
		s.byPost[r.PostID] = slices.DeleteFunc(s.byPost[r.PostID], func(x int64) bool { return x == r.ID })
		s.replies[id] = model.Reply{}
	}
}

func (s *ReplyStorage) lookup(replyID int64) (model.Reply, bool) {
	if replyID <= 0 || int(replyID) >= len(s.replies) {
		return model.Reply{}, false
	}
	r := s.replies[replyID]
	return r, r.ID != 0
}
