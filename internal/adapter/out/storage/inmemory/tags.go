package inmemory

import (
	"cmp"
	"context"
	"myforum/internal/model"
	"myforum/internal/service"
	"slices"
	"strings"
	"sync"
)

type TagStorage struct {
	mu sync.RWMutex

	nextID   int64
	tags     map[int64]model.Tag
	byName   map[string]int64
	postTags map[int64][]int64
}

func NewTagStorage() *TagStorage {
	return &TagStorage{
		nextID:   1,
		tags:     make(map[int64]model.Tag),
		byName:   make(map[string]int64),
		postTags: make(map[int64][]int64),
	}
}

func (s *TagStorage) CreateTag(_ context.Context, in model.Tag) (model.Tag, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.ToLower(in.Name)
	if _, ok := s.byName[key]; ok {
		return model.Tag{}, service.ErrConflict
	}

	in.ID = s.nextID
	s.nextID++
	s.tags[in.ID] = in
	s.byName[key] = in.ID
	return in, nil
}

func (s *TagStorage) GetTag(_ context.Context, tagID int64) (model.Tag, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tags[tagID]
	if !ok {
		return model.Tag{}, service.ErrNotFound
	}
	return t, nil
}

func (s *TagStorage) GetAllTags(_ context.Context) ([]model.Tag, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Tag, 0, len(s.tags))
	for _, t := range s.tags {
		out = append(out, t)
	}
	sortTags(out)
	return out, nil
}

// GetTagsByIDs skips unknown ids.
func (s *TagStorage) GetTagsByIDs(_ context.Context, tagIDs []int64) ([]model.Tag, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.collect(tagIDs), nil
}

func (s *TagStorage) DeleteTag(_ context.Context, tagID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tags[tagID]
	if !ok {
		return service.ErrNotFound
	}
	delete(s.tags, tagID)
	delete(s.byName, strings.ToLower(t.Name))
	for postID, ids := range s.postTags {
		s.postTags[postID] = slices.DeleteFunc(ids, func(id int64) bool { return id == tagID })
	}
	return nil
}

// SetPostTags replaces the tag links of a post; an empty list clears them.
func (s *TagStorage) SetPostTags(_ context.Context, postID int64, tagIDs []int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(tagIDs) == 0 {
		delete(s.postTags, postID)
		return nil
	}
	for _, id := range tagIDs {
		if _, ok := s.tags[id]; !ok {
			return service.ErrNotFound
		}
	}
	s.postTags[postID] = slices.Clone(tagIDs)
	return nil
}

func (s *TagStorage) GetPostTags(_ context.Context, postID int64) ([]model.Tag, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.collect(s.postTags[postID]), nil
}

func (s *TagStorage) collect(ids []int64) []model.Tag {
	out := make([]model.Tag, 0, len(ids))
	for _, id := range ids {
		if t, ok := s.tags[id]; ok {
			out = append(out, t)
		}
	}
	sortTags(out)
	return out
}

// sortTags orders by name ignoring case, then by id.
func sortTags(tags []model.Tag) {
	slices.SortFunc(tags, func(a, b model.Tag) int {
		if c := strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
}
