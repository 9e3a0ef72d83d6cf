package service

import (
	"context"
	"fmt"
	"myforum/internal/adapter/out/storage"
	"myforum/internal/model"
	"myforum/pkg/pagination"
	"myforum/pkg/sanitizer"
	"time"
)

const (
	DefaultPostsLimit = 50
	MaxPostsLimit     = 250
)

//go:generate mockgen -source=posts.go -destination=./posts_mock.go -package=service
type PostStorage interface {
	CreatePost(ctx context.Context, post model.Post) (model.Post, error)
	GetPostByID(ctx context.Context, postID int64) (model.Post, error)
	PostExists(ctx context.Context, postID int64) (bool, error)
	GetPosts(ctx context.Context, limit int) ([]model.Post, error)
	GetPostsWithCursor(ctx context.Context, params storage.GetPostsParams) ([]model.Post, error)
	UpdatePost(ctx context.Context, post model.Post) (model.Post, error)
	DeletePost(ctx context.Context, postID int64) error
}

type PostService struct {
	postStorage  PostStorage
	replyStorage ReplyStorage
	tagStorage   TagStorage
	trManager    TxManager
	now          func() time.Time
}

func NewPostService(postStorage PostStorage, replyStorage ReplyStorage, tagStorage TagStorage, trManager TxManager) *PostService {
	return &PostService{
		postStorage:  postStorage,
		replyStorage: replyStorage,
		tagStorage:   tagStorage,
		trManager:    trManager,
		now:          time.Now,
	}
}

func (s *PostService) CreatePost(ctx context.Context, req CreatePostRequest) (model.Post, error) {
	req.Title = sanitizer.PlainText(req.Title)
	req.Text = sanitizer.PlainText(req.Text)
	if err := validateRequest(req); err != nil {
		return model.Post{}, err
	}
	tagIDs := uniqueIDs(req.TagIDs)

	var out model.Post
	err := s.trManager.Do(ctx, func(ctx context.Context) error {
		tags, err := s.resolveTags(ctx, tagIDs)
		if err != nil {
			return err
		}

		out, err = s.postStorage.CreatePost(ctx, model.Post{
			Title:          req.Title,
			Text:           req.Text,
			AuthorID:       req.AuthorID,
			RepliesEnabled: req.RepliesEnabled,
		})
		if err != nil {
			return err
		}

		if len(tagIDs) > 0 {
			if err := s.tagStorage.SetPostTags(ctx, out.ID, tagIDs); err != nil {
				return err
			}
		}
		out.Tags = tags
		return nil
	})
	if err != nil {
		return model.Post{}, err
	}
	return out, nil
}

func (s *PostService) GetPostByID(ctx context.Context, postID int64) (model.Post, error) {
	if postID <= 0 {
		return model.Post{}, fmt.Errorf("%w: postId must be > 0", ErrInvalidRequest)
	}
	p, err := s.postStorage.GetPostByID(ctx, postID)
	if err != nil {
		return model.Post{}, notFound(err, "post")
	}

	p.Tags, err = s.tagStorage.GetPostTags(ctx, postID)
	if err != nil {
		return model.Post{}, err
	}
	return p, nil
}

func (s *PostService) GetPosts(ctx context.Context, in pagination.PageRequest) (pagination.Page[model.Post], error) {
	var (
		posts []model.Post
		err   error
		page  pagination.Page[model.Post]
	)

	if err := validatePagination(in); err != nil {
		return page, err
	}

	limit := in.Limit
	if limit <= 0 {
		limit = DefaultPostsLimit
	}
	if limit > MaxPostsLimit {
		limit = MaxPostsLimit
	}
	peek := limit + 1

	afterProvided := in.AfterCursor != nil && *in.AfterCursor != ""
	beforeProvided := in.BeforeCursor != nil && *in.BeforeCursor != ""

	switch {
	case !afterProvided && !beforeProvided:
		posts, err = s.postStorage.GetPosts(ctx, peek)
		if err != nil {
			return page, err
		}

	default:
		params, err := toGetPostsParams(in)
		if err != nil {
			return page, err
		}
		params.Limit = peek
		posts, err = s.postStorage.GetPostsWithCursor(ctx, params)
		if err != nil {
			return page, err
		}
	}

	if len(posts) == 0 {
		page.Items = nil
		page.Count = 0
		page.HasNextPage = false
		page.StartCursor = nil
		page.EndCursor = nil
		return page, nil
	}

	// Storages return every page newest first, so the peeked row of a
	// before-page sits at the front.
	more := len(posts) > limit
	if more {
		if beforeProvided {
			posts = posts[len(posts)-limit:]
		} else {
			posts = posts[:limit]
		}
	}

	switch {
	case beforeProvided:
		page.HasPreviousPage = more
		page.HasNextPage = true
	case afterProvided:
		page.HasPreviousPage = true
		page.HasNextPage = more
	default:
		page.HasNextPage = more
	}

	page.Items = posts
	page.Count = len(posts)

	startCursor := pagination.Cursor{
		CreatedAt: posts[0].CreatedAt,
		ID:        posts[0].ID,
	}
	endCursor := pagination.Cursor{
		CreatedAt: posts[len(posts)-1].CreatedAt,
		ID:        posts[len(posts)-1].ID,
	}

	page.StartCursor, page.EndCursor = startCursor.Encode(), endCursor.Encode()
	return page, nil
}

func (s *PostService) EditPost(ctx context.Context, req EditPostRequest) (model.Post, error) {
	req.Title = sanitizer.PlainText(req.Title)
	req.Text = sanitizer.PlainText(req.Text)
	if err := validateRequest(req); err != nil {
		return model.Post{}, err
	}
	tagIDs := uniqueIDs(req.TagIDs)

	var out model.Post
	err := s.trManager.Do(ctx, func(ctx context.Context) error {
		post, err := s.postStorage.GetPostByID(ctx, req.PostID)
		if err != nil {
			return notFound(err, "post")
		}
		if post.AuthorID != req.UserID {
			return fmt.Errorf("%w: you are not author of post", ErrForbidden)
		}

		tags, err := s.resolveTags(ctx, tagIDs)
		if err != nil {
			return err
		}

		editedAt := s.now()
		post.Title = req.Title
		post.Text = req.Text
		post.RepliesEnabled = req.RepliesEnabled
		post.EditedAt = &editedAt

		out, err = s.postStorage.UpdatePost(ctx, post)
		if err != nil {
			return notFound(err, "post")
		}
		if err := s.tagStorage.SetPostTags(ctx, post.ID, tagIDs); err != nil {
			return err
		}
		out.Tags = tags
		return nil
	})
	if err != nil {
		return model.Post{}, err
	}
	return out, nil
}

// DeletePost removes the post together with its replies and tag links.
func (s *PostService) DeletePost(ctx context.Context, postID, userID int64) error {
	if postID <= 0 || userID <= 0 {
		return ErrInvalidRequest
	}

	return s.trManager.Do(ctx, func(ctx context.Context) error {
		post, err := s.postStorage.GetPostByID(ctx, postID)
		if err != nil {
			return notFound(err, "post")
		}
		if post.AuthorID != userID {
			return fmt.Errorf("%w: you are not author of post", ErrForbidden)
		}

		if err := s.replyStorage.DeleteRepliesByPost(ctx, postID); err != nil {
			return err
		}
		if err := s.tagStorage.SetPostTags(ctx, postID, nil); err != nil {
			return err
		}
		return notFound(s.postStorage.DeletePost(ctx, postID), "post")
	})
}

// resolveTags loads the tags behind ids and fails when any of them is unknown.
func (s *PostService) resolveTags(ctx context.Context, ids []int64) ([]model.Tag, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	tags, err := s.tagStorage.GetTagsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(tags) != len(ids) {
		return nil, fmt.Errorf("%w: unknown tag id", ErrInvalidRequest)
	}
	return tags, nil
}
