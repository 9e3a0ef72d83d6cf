package rest

import "time"

type postRequest struct {
	Title          string  `json:"title"`
	Text           string  `json:"text"`
	RepliesEnabled *bool   `json:"repliesEnabled"`
	TagIDs         []int64 `json:"tagIds"`
}

type replyRequest struct {
	PostID int64  `json:"postId"`
	Text   string `json:"text"`
}

type tagRequest struct {
	Name string `json:"name"`
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type postResponse struct {
	ID             int64         `json:"id"`
	Title          string        `json:"title"`
	Text           string        `json:"text"`
	AuthorID       int64         `json:"authorId"`
	RepliesEnabled bool          `json:"repliesEnabled"`
	Tags           []tagResponse `json:"tags"`
	DateCreated    time.Time     `json:"dateCreated"`
	DateEdited     *time.Time    `json:"dateEdited"`
}

type postsPageResponse struct {
	Items           []postResponse `json:"items"`
	Count           int            `json:"count"`
	StartCursor     *string        `json:"startCursor"`
	EndCursor       *string        `json:"endCursor"`
	HasNextPage     bool           `json:"hasNextPage"`
	HasPreviousPage bool           `json:"hasPreviousPage"`
}

type replyResponse struct {
	ID          int64      `json:"id"`
	PostID      int64      `json:"postId"`
	AuthorID    int64      `json:"authorId"`
	Text        string     `json:"text"`
	DateCreated time.Time  `json:"dateCreated"`
	DateEdited  *time.Time `json:"dateEdited"`
}

type replyEventResponse struct {
	Kind  string        `json:"kind"`
	Reply replyResponse `json:"reply"`
}

type tagResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type userResponse struct {
	ID          int64     `json:"id"`
	Username    string    `json:"username"`
	DateCreated time.Time `json:"dateCreated"`
}

type sessionResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      userResponse `json:"user"`
}
