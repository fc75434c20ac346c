package http

import (
	"net/http"

	"github.com/vinay461as/recipi-api/internal/logger"
	"github.com/vinay461as/recipi-api/internal/utils"
	"github.com/vinay461as/recipi-api/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RegisterRequest
	if !h.decodeJSON(w, r, &request) {
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, request)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().Int64("id", registeredUser.UserID).Msg("user registered")

	utils.WriteJSON(w, registeredUser, http.StatusCreated)
}

func (h *Handler) token(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.TokenRequest
	if !h.decodeJSON(w, r, &request) {
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, request)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("token issued")

	utils.WriteJSON(w, models.TokenResponse{Token: token.SignedString}, http.StatusOK)
}
