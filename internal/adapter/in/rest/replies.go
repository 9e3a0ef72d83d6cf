package rest

import (
	"encoding/json"
	"fmt"
	"myforum/internal/service"
	"myforum/pkg/logger"
	"net/http"
	"time"
)

func (h *Handler) getReplies(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "postId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	replies, err := h.replies.GetAllReplies(r.Context(), postID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toRepliesResponse(replies))
}

func (h *Handler) getReply(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "postId")
	if err != nil {
		writeError(w, r, err)
		return
	}
	replyID, err := pathID(r, "replyId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	reply, err := h.replies.GetReply(r.Context(), postID, replyID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toReplyResponse(reply))
}

func (h *Handler) createReply(w http.ResponseWriter, r *http.Request) {
	c, _ := callerFrom(r.Context())

	postID, err := pathID(r, "postId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var body replyRequest
	if err := decodeJSON(w, r, &body); err != nil {
		writeError(w, r, err)
		return
	}

	reply, err := h.replies.CreateReply(r.Context(), service.CreateReplyRequest{
		RoutePostID: postID,
		PostID:      body.PostID,
		AuthorID:    c.user.ID,
		Text:        body.Text,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toReplyResponse(reply))
}

func (h *Handler) editReply(w http.ResponseWriter, r *http.Request) {
	c, _ := callerFrom(r.Context())

	postID, err := pathID(r, "postId")
	if err != nil {
		writeError(w, r, err)
		return
	}
	replyID, err := pathID(r, "replyId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var body replyRequest
	if err := decodeJSON(w, r, &body); err != nil {
		writeError(w, r, err)
		return
	}

	reply, err := h.replies.EditReply(r.Context(), service.EditReplyRequest{
		RoutePostID: postID,
		ReplyID:     replyID,
		PostID:      body.PostID,
		UserID:      c.user.ID,
		Text:        body.Text,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toReplyResponse(reply))
}

func (h *Handler) deleteReply(w http.ResponseWriter, r *http.Request) {
	c, _ := callerFrom(r.Context())

	postID, err := pathID(r, "postId")
	if err != nil {
		writeError(w, r, err)
		return
	}
	replyID, err := pathID(r, "replyId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.replies.DeleteReply(r.Context(), postID, replyID, c.user.ID); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// streamReplies sends reply events of a post as Server-Sent Events until the client goes away.
func (h *Handler) streamReplies(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "postId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	events, err := h.replies.Listen(r.Context(), postID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log := logger.FromContext(r.Context())

	rc := http.NewResponseController(w)
	// streams outlive the server's write timeout
	if err := rc.SetWriteDeadline(time.Time{}); err != nil {
		log.Debug("reply stream: clear write deadline", "error", err)
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	if err := rc.Flush(); err != nil {
		log.Error("reply stream: flush unsupported", "error", err)
		return
	}

	ticker := time.NewTicker(h.keepAlive)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			return

		case <-h.streamsDone:
			return

		case ev, ok := <-events:
			if !ok {
				return
			}
			data, err := json.Marshal(replyEventResponse{Kind: string(ev.Kind), Reply: toReplyResponse(ev.Reply)})
			if err != nil {
				log.Error("reply stream: marshal event", "error", err)
				continue
			}
			if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", ev.Kind, data); err != nil {
				return
			}
			_ = rc.Flush()

		case <-ticker.C:
			if _, err := fmt.Fprint(w, ": keep-alive\n\n"); err != nil {
				return
			}
			_ = rc.Flush()
		}
	}
}
