package http

import (
	"errors"
	"net/http"

	"github.com/vinay461as/recipi-api/internal/logger"
	"github.com/vinay461as/recipi-api/internal/service"
	"github.com/vinay461as/recipi-api/internal/store"
	"github.com/vinay461as/recipi-api/internal/utils"
	"github.com/vinay461as/recipi-api/internal/validators"
	"github.com/vinay461as/recipi-api/models"
)

var errorStatusMap = map[error]int{
	service.ErrValidation:              http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusBadRequest,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,

	store.ErrEmailAlreadyExists: http.StatusBadRequest,
	store.ErrUserNotFound:       http.StatusNotFound,
	store.ErrTagNotFound:        http.StatusNotFound,
	store.ErrIngredientNotFound: http.StatusNotFound,
	store.ErrRecipeNotFound:     http.StatusNotFound,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError renders err as a JSON error body with the status resolved via
// errorStatusMap. Validation failures carry per-field problem descriptions;
// a duplicate email is reported as a field problem too so that registration
// failures share one response shape.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	body := models.APIError{Error: http.StatusText(status)}

	var validationErr *service.ValidationError
	switch {
	case errors.As(err, &validationErr):
		body.Error = "validation failed"
		body.Fields = validationErr.Fields
	case errors.Is(err, store.ErrEmailAlreadyExists):
		body.Error = "validation failed"
		body.Fields = validators.FieldErrors{validators.FieldEmail: "user with this email already exists"}
	case errors.Is(err, service.ErrInvalidCredentials):
		body.Error = service.ErrInvalidCredentials.Error()
	case errors.Is(err, service.ErrTokenIsExpiredOrInvalid):
		body.Error = service.ErrTokenIsExpiredOrInvalid.Error()
	}

	if status == http.StatusInternalServerError {
		log.Err(err).Msg("request ended with an unexpected error")
	}

	utils.WriteJSON(w, body, status)
}
