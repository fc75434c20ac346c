package http

import (
	"net/http"

	"github.com/vinay461as/recipi-api/internal/utils"
	"github.com/vinay461as/recipi-api/models"
)

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := h.callerID(w, r)
	if !ok {
		return
	}

	user, err := h.services.AuthService.GetUser(ctx, userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

// updateProfile applies a partial update to the caller's own account.
// Decoding is strict: the account flags (is_staff, is_active) are not part of
// the payload shape, so attempts to set them fail instead of being ignored.
func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := h.callerID(w, r)
	if !ok {
		return
	}

	var update models.ProfileUpdate
	if !h.decodeStrictJSON(w, r, &update) {
		return
	}

	user, err := h.services.AuthService.UpdateProfile(ctx, userID, update)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}
