package service

import (
	"context"
	"errors"
	"fmt"
	"myforum/internal/model"
	"myforum/pkg/sanitizer"
)

//go:generate mockgen -source=tags.go -destination=./tags_mock.go -package=service
type TagStorage interface {
	CreateTag(ctx context.Context, tag model.Tag) (model.Tag, error)
	GetTag(ctx context.Context, tagID int64) (model.Tag, error)
	GetAllTags(ctx context.Context) ([]model.Tag, error)
	GetTagsByIDs(ctx context.Context, tagIDs []int64) ([]model.Tag, error)
	DeleteTag(ctx context.Context, tagID int64) error
	SetPostTags(ctx context.Context, postID int64, tagIDs []int64) error
	GetPostTags(ctx context.Context, postID int64) ([]model.Tag, error)
}

type TagService struct {
	tagStorage TagStorage
	trManager  TxManager
}

func NewTagService(tagStorage TagStorage, trManager TxManager) *TagService {
	return &TagService{
		tagStorage: tagStorage,
		trManager:  trManager,
	}
}

func (s *TagService) GetAllTags(ctx context.Context) ([]model.Tag, error) {
	return s.tagStorage.GetAllTags(ctx)
}

func (s *TagService) GetTag(ctx context.Context, tagID int64) (model.Tag, error) {
	if tagID <= 0 {
		return model.Tag{}, fmt.Errorf("%w: tagId must be > 0", ErrInvalidRequest)
	}
	tag, err := s.tagStorage.GetTag(ctx, tagID)
	if err != nil {
		return model.Tag{}, notFound(err, "tag")
	}
	return tag, nil
}

// AddTag fails with ErrConflict when a tag with the same name (ignoring case) exists.
func (s *TagService) AddTag(ctx context.Context, req AddTagRequest) (model.Tag, error) {
	req.Name = sanitizer.PlainText(req.Name)
	if err := validateRequest(req); err != nil {
		return model.Tag{}, err
	}
	tag, err := s.tagStorage.CreateTag(ctx, model.Tag{Name: req.Name})
	if errors.Is(err, ErrConflict) {
		return model.Tag{}, fmt.Errorf("%w: tag %q already exists", ErrConflict, req.Name)
	}
	return tag, err
}

func (s *TagService) DeleteTag(ctx context.Context, tagID int64) error {
	if tagID <= 0 {
		return fmt.Errorf("%w: tagId must be > 0", ErrInvalidRequest)
	}
	return s.trManager.Do(ctx, func(ctx context.Context) error {
		if _, err := s.tagStorage.GetTag(ctx, tagID); err != nil {
			return notFound(err, "tag")
		}
		return notFound(s.tagStorage.DeleteTag(ctx, tagID), "tag")
	})
}
