package http

import (
	"net/http"

	"github.com/vinay461as/recipi-api/internal/store"
	"github.com/vinay461as/recipi-api/internal/utils"
	"github.com/vinay461as/recipi-api/models"
)

func (h *Handler) listTags(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := h.callerID(w, r)
	if !ok {
		return
	}

	tags, err := h.services.CatalogService.ListTags(ctx, userID, assignedOnlyParam(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, tags, http.StatusOK)
}

func (h *Handler) createTag(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := h.callerID(w, r)
	if !ok {
		return
	}

	var request models.NameRequest
	if !h.decodeJSON(w, r, &request) {
		return
	}

	tag, err := h.services.CatalogService.CreateTag(ctx, userID, request)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, tag, http.StatusCreated)
}

func (h *Handler) updateTag(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := h.callerID(w, r)
	if !ok {
		return
	}

	tagID, ok := idParam(r, "tagID")
	if !ok {
		h.writeError(w, r, store.ErrTagNotFound)
		return
	}

	var update models.NameUpdate
	if !h.decodeJSON(w, r, &update) {
		return
	}

	tag, err := h.services.CatalogService.UpdateTag(ctx, userID, tagID, update)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, tag, http.StatusOK)
}

func (h *Handler) deleteTag(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := h.callerID(w, r)
	if !ok {
		return
	}

	tagID, ok := idParam(r, "tagID")
	if !ok {
		h.writeError(w, r, store.ErrTagNotFound)
		return
	}

	if err := h.services.CatalogService.DeleteTag(ctx, userID, tagID); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
