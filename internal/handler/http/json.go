package http

import (
	"encoding/json"
	"net/http"

	"github.com/vinay461as/recipi-api/internal/logger"
	"github.com/vinay461as/recipi-api/internal/service"
	"github.com/vinay461as/recipi-api/internal/utils"
	"github.com/vinay461as/recipi-api/models"
)

// decodeJSON decodes the request body into dst. On failure it writes a 400
// response and returns false; the caller must return immediately.
func (h *Handler) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.FromRequest(r).Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.APIError{Error: "invalid JSON payload"}, http.StatusBadRequest)
		return false
	}
	return true
}

// decodeStrictJSON is decodeJSON with unknown-field rejection, used where a
// payload must not smuggle in fields outside the declared shape.
func (h *Handler) decodeStrictJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		logger.FromRequest(r).Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.APIError{Error: "invalid JSON payload"}, http.StatusBadRequest)
		return false
	}
	return true
}

// callerID extracts the authenticated user's ID stored by the auth
// middleware. A missing ID means the route was wired outside the auth group;
// the request is rejected as unauthenticated.
func (h *Handler) callerID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Error().Msg("no authenticated user in request context")
		h.writeError(w, r, service.ErrTokenIsExpiredOrInvalid)
		return 0, false
	}
	return userID, true
}
