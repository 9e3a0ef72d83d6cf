package rest

import (
	"myforum/internal/service"
	"net/http"
)

func (h *Handler) getPosts(w http.ResponseWriter, r *http.Request) {
	req, err := toPageRequest(r.URL.Query())
	if err != nil {
		writeError(w, r, err)
		return
	}

	page, err := h.posts.GetPosts(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPostsPageResponse(page))
}

func (h *Handler) getPost(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "postId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	post, err := h.posts.GetPostByID(r.Context(), postID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPostResponse(post))
}

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	c, _ := callerFrom(r.Context())

	var body postRequest
	if err := decodeJSON(w, r, &body); err != nil {
		writeError(w, r, err)
		return
	}

	post, err := h.posts.CreatePost(r.Context(), service.CreatePostRequest{
		AuthorID:       c.user.ID,
		Title:          body.Title,
		Text:           body.Text,
		RepliesEnabled: repliesEnabled(body),
		TagIDs:         body.TagIDs,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toPostResponse(post))
}

func (h *Handler) editPost(w http.ResponseWriter, r *http.Request) {
	c, _ := callerFrom(r.Context())

	postID, err := pathID(r, "postId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var body postRequest
	if err := decodeJSON(w, r, &body); err != nil {
		writeError(w, r, err)
		return
	}

	post, err := h.posts.EditPost(r.Context(), service.EditPostRequest{
		PostID:         postID,
		UserID:         c.user.ID,
		Title:          body.Title,
		Text:           body.Text,
		RepliesEnabled: repliesEnabled(body),
		TagIDs:         body.TagIDs,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPostResponse(post))
}

func (h *Handler) deletePost(w http.ResponseWriter, r *http.Request) {
	c, _ := callerFrom(r.Context())

	postID, err := pathID(r, "postId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.posts.DeletePost(r.Context(), postID, c.user.ID); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// repliesEnabled defaults to true when the field is omitted.
func repliesEnabled(body postRequest) bool {
	return body.RepliesEnabled == nil || *body.RepliesEnabled
}
