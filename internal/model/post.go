package model

import "time"

type Post struct {
	ID             int64
	Title          string
	Text           string
	AuthorID       int64
	RepliesEnabled bool
	Tags           []Tag
	CreatedAt      time.Time
	EditedAt       *time.Time
}
