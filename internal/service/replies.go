package service

import (
	"context"
	"errors"
	"fmt"
	"myforum/internal/model"
	"myforum/pkg/logger"
	"myforum/pkg/sanitizer"
	"time"
)

var errRoutePostMismatch = fmt.Errorf("%w: post id in route doesn't match request post id", ErrInvalidRequest)

//go:generate mockgen -source=replies.go -destination=./replies_mock.go -package=service
type ReplyStorage interface {
	CreateReply(ctx context.Context, reply model.Reply) (model.Reply, error)
	GetReply(ctx context.Context, replyID int64) (model.Reply, error)
	GetRepliesByPost(ctx context.Context, postID int64) ([]model.Reply, error)
	UpdateReply(ctx context.Context, reply model.Reply) (model.Reply, error)
	DeleteReply(ctx context.Context, replyID int64) error
	DeleteRepliesByPost(ctx context.Context, postID int64) error
}

type ReplyBus interface {
	Subscribe(ctx context.Context, postID int64) (<-chan model.ReplyEvent, error)
	Publish(ctx context.Context, postID int64, ev model.ReplyEvent) error
}

type ReplyService struct {
	replyStorage ReplyStorage
	postStorage  PostStorage
	replyBus     ReplyBus
	now          func() time.Time
}

func NewReplyService(replyStorage ReplyStorage, postStorage PostStorage, replyBus ReplyBus) *ReplyService {
	return &ReplyService{
		replyStorage: replyStorage,
		postStorage:  postStorage,
		replyBus:     replyBus,
		now:          time.Now,
	}
}

func (s *ReplyService) GetAllReplies(ctx context.Context, postID int64) ([]model.Reply, error) {
	if err := s.ensurePost(ctx, postID); err != nil {
		return nil, err
	}
	return s.replyStorage.GetRepliesByPost(ctx, postID)
}

func (s *ReplyService) GetReply(ctx context.Context, postID, replyID int64) (model.Reply, error) {
	if err := s.ensurePost(ctx, postID); err != nil {
		return model.Reply{}, err
	}
	return s.replyOfPost(ctx, postID, replyID)
}

func (s *ReplyService) CreateReply(ctx context.Context, req CreateReplyRequest) (model.Reply, error) {
	if req.RoutePostID != req.PostID {
		return model.Reply{}, errRoutePostMismatch
	}
	req.Text = sanitizer.PlainText(req.Text)
	if err := validateRequest(req); err != nil {
		return model.Reply{}, err
	}

	post, err := s.postStorage.GetPostByID(ctx, req.PostID)
	if err != nil {
		return model.Reply{}, notFound(err, "post")
	}
	if !post.RepliesEnabled {
		return model.Reply{}, fmt.Errorf("%w: replies are disabled for this post", ErrForbidden)
	}

	reply, err := s.replyStorage.CreateReply(ctx, model.Reply{
		PostID:   req.PostID,
		AuthorID: req.AuthorID,
		Text:     req.Text,
	})
	if err != nil {
		return model.Reply{}, err
	}

	s.publish(ctx, model.ReplyCreated, reply)
	return reply, nil
}

func (s *ReplyService) EditReply(ctx context.Context, req EditReplyRequest) (model.Reply, error) {
	if req.RoutePostID != req.PostID {
		return model.Reply{}, errRoutePostMismatch
	}
	req.Text = sanitizer.PlainText(req.Text)
	if err := validateRequest(req); err != nil {
		return model.Reply{}, err
	}

	if err := s.ensurePost(ctx, req.PostID); err != nil {
		return model.Reply{}, err
	}

	reply, err := s.replyOfPost(ctx, req.PostID, req.ReplyID)
	if err != nil {
		return model.Reply{}, err
	}
	if reply.AuthorID != req.UserID {
		return model.Reply{}, fmt.Errorf("%w: you are not author of reply", ErrForbidden)
	}

	editedAt := s.now()
	reply.Text = req.Text
	reply.EditedAt = &editedAt

	updated, err := s.replyStorage.UpdateReply(ctx, reply)
	if err != nil {
		return model.Reply{}, notFound(err, "reply")
	}

	s.publish(ctx, model.ReplyEdited, updated)
	return updated, nil
}

func (s *ReplyService) DeleteReply(ctx context.Context, postID, replyID, userID int64) error {
	reply, err := s.replyStorage.GetReply(ctx, replyID)
	if err != nil {
		return notFound(err, "reply")
	}
	if reply.PostID != postID {
		return errRoutePostMismatch
	}
	if reply.AuthorID != userID {
		return fmt.Errorf("%w: you are not author of reply", ErrForbidden)
	}

	if err := s.replyStorage.DeleteReply(ctx, replyID); err != nil {
		return notFound(err, "reply")
	}

	s.publish(ctx, model.ReplyDeleted, reply)
	return nil
}

// Listen streams reply events of a post until ctx is done.
func (s *ReplyService) Listen(ctx context.Context, postID int64) (<-chan model.ReplyEvent, error) {
	if s.replyBus == nil {
		return nil, errors.New("no reply bus configured")
	}
	if err := s.ensurePost(ctx, postID); err != nil {
		return nil, err
	}
	return s.replyBus.Subscribe(ctx, postID)
}

func (s *ReplyService) ensurePost(ctx context.Context, postID int64) error {
	ok, err := s.postStorage.PostExists(ctx, postID)
	if err != nil {
		return err
	}
	if !ok {
		return notFound(ErrNotFound, "post")
	}
	return nil
}

// replyOfPost treats a reply attached to another post as missing.
func (s *ReplyService) replyOfPost(ctx context.Context, postID, replyID int64) (model.Reply, error) {
	reply, err := s.replyStorage.GetReply(ctx, replyID)
	if err != nil {
		return model.Reply{}, notFound(err, "reply")
	}
	if reply.PostID != postID {
		return model.Reply{}, notFound(ErrNotFound, "reply")
	}
	return reply, nil
}

func (s *ReplyService) publish(ctx context.Context, kind model.ReplyEventKind, r model.Reply) {
	if s.replyBus == nil {
		return
	}
	if err := s.replyBus.Publish(ctx, r.PostID, model.ReplyEvent{Kind: kind, Reply: r}); err != nil {
		logger.FromContext(ctx).Warn("publish reply event", "kind", kind, "reply_id", r.ID, "error", err)
	}
}
