package http

import (
	"net/http"

	"github.com/vinay461as/recipi-api/internal/store"
	"github.com/vinay461as/recipi-api/internal/utils"
	"github.com/vinay461as/recipi-api/models"
)

func (h *Handler) listIngredients(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := h.callerID(w, r)
	if !ok {
		return
	}

	ingredients, err := h.services.CatalogService.ListIngredients(ctx, userID, assignedOnlyParam(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, ingredients, http.StatusOK)
}

func (h *Handler) createIngredient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := h.callerID(w, r)
	if !ok {
		return
	}

	var request models.NameRequest
	if !h.decodeJSON(w, r, &request) {
		return
	}

	ingredient, err := h.services.CatalogService.CreateIngredient(ctx, userID, request)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, ingredient, http.StatusCreated)
}

func (h *Handler) updateIngredient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := h.callerID(w, r)
	if !ok {
		return
	}

	ingredientID, ok := idParam(r, "ingredientID")
	if !ok {
		h.writeError(w, r, store.ErrIngredientNotFound)
		return
	}

	var update models.NameUpdate
	if !h.decodeJSON(w, r, &update) {
		return
	}

	ingredient, err := h.services.CatalogService.UpdateIngredient(ctx, userID, ingredientID, update)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, ingredient, http.StatusOK)
}

func (h *Handler) deleteIngredient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := h.callerID(w, r)
	if !ok {
		return
	}

	ingredientID, ok := idParam(r, "ingredientID")
	if !ok {
		h.writeError(w, r, store.ErrIngredientNotFound)
		return
	}

	if err := h.services.CatalogService.DeleteIngredient(ctx, userID, ingredientID); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
