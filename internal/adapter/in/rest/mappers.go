package rest

import (
	"fmt"
	"myforum/internal/model"
	"myforum/internal/service"
	"myforum/pkg/pagination"
	"net/url"
	"strconv"
)

func toPostResponse(p model.Post) postResponse {
	tags := make([]tagResponse, 0, len(p.Tags))
	for _, t := range p.Tags {
		tags = append(tags, toTagResponse(t))
	}
	return postResponse{
		ID:             p.ID,
		Title:          p.Title,
		Text:           p.Text,
		AuthorID:       p.AuthorID,
		RepliesEnabled: p.RepliesEnabled,
		Tags:           tags,
		DateCreated:    p.CreatedAt,
		DateEdited:     p.EditedAt,
	}
}

func toPostsPageResponse(page pagination.Page[model.Post]) postsPageResponse {
	items := make([]postResponse, 0, len(page.Items))
	for _, p := range page.Items {
		items = append(items, toPostResponse(p))
	}
	return postsPageResponse{
		Items:           items,
		Count:           page.Count,
		StartCursor:     page.StartCursor,
		EndCursor:       page.EndCursor,
		HasNextPage:     page.HasNextPage,
		HasPreviousPage: page.HasPreviousPage,
	}
}

func toReplyResponse(r model.Reply) replyResponse {
	return replyResponse{
		ID:          r.ID,
		PostID:      r.PostID,
		AuthorID:    r.AuthorID,
		Text:        r.Text,
		DateCreated: r.CreatedAt,
		DateEdited:  r.EditedAt,
	}
}

func toRepliesResponse(replies []model.Reply) []replyResponse {
	out := make([]replyResponse, 0, len(replies))
	for _, r := range replies {
		out = append(out, toReplyResponse(r))
	}
	return out
}

func toTagResponse(t model.Tag) tagResponse {
	return tagResponse{ID: t.ID, Name: t.Name}
}

func toUserResponse(u model.User) userResponse {
	return userResponse{ID: u.ID, Username: u.Username, DateCreated: u.CreatedAt}
}

// toPageRequest reads limit, after and before from the query string.
func toPageRequest(q url.Values) (pagination.PageRequest, error) {
	var req pagination.PageRequest
	if s := q.Get("limit"); s != "" {
		limit, err := strconv.Atoi(s)
		if err != nil || limit < 0 {
			return req, fmt.Errorf("%w: limit must be a non-negative integer", service.ErrInvalidRequest)
		}
		req.Limit = limit
	}
	if s := q.Get("after"); s != "" {
		req.AfterCursor = &s
	}
	if s := q.Get("before"); s != "" {
		req.BeforeCursor = &s
	}
	return req, nil
}
