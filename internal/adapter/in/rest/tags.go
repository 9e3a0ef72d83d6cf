package rest

import (
	"myforum/internal/service"
	"net/http"
)

func (h *Handler) getTags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.tags.GetAllTags(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	out := make([]tagResponse, 0, len(tags))
	for _, t := range tags {
		out = append(out, toTagResponse(t))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) getTag(w http.ResponseWriter, r *http.Request) {
	tagID, err := pathID(r, "tagId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	tag, err := h.tags.GetTag(r.Context(), tagID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTagResponse(tag))
}

func (h *Handler) addTag(w http.ResponseWriter, r *http.Request) {
	var body tagRequest
	if err := decodeJSON(w, r, &body); err != nil {
		writeError(w, r, err)
		return
	}

	tag, err := h.tags.AddTag(r.Context(), service.AddTagRequest{Name: body.Name})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTagResponse(tag))
}

func (h *Handler) deleteTag(w http.ResponseWriter, r *http.Request) {
	tagID, err := pathID(r, "tagId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.tags.DeleteTag(r.Context(), tagID); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}
