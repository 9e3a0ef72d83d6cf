package model

import "time"

type Reply struct {
	ID        int64
	PostID    int64
	AuthorID  int64
	Text      string
	CreatedAt time.Time
	EditedAt  *time.Time
}

type ReplyEventKind string

const (
	ReplyCreated ReplyEventKind = "created"
	ReplyEdited  ReplyEventKind = "edited"
	ReplyDeleted ReplyEventKind = "deleted"
)

// ReplyEvent is published to subscribers of a post whenever one of its replies changes.
type ReplyEvent struct {
	Kind  ReplyEventKind
	Reply Reply
}
