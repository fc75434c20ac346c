package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vinay461as/recipi-api/internal/service"
	"github.com/vinay461as/recipi-api/internal/store"
	"github.com/vinay461as/recipi-api/internal/validators"
	"github.com/vinay461as/recipi-api/models"
)

func TestRegister_Success(t *testing.T) {
	var gotRequest models.RegisterRequest
	services := defaultServices()
	services.AuthService = &stubAuthService{
		registerFn: func(_ context.Context, request models.RegisterRequest) (models.User, error) {
			gotRequest = request
			return models.User{UserID: 7, Email: request.Email, Name: request.Name}, nil
		},
	}
	router := newTestRouter(services)

	body := `{"email":"new@example.com","password":"supersecret","name":"New User"}`
	req := httptest.NewRequest(http.MethodPost, "/api/user/register", strings.NewReader(body))

	resp := doRequest(router, req)

	require.Equal(t, http.StatusCreated, resp.Code)
	assert.Equal(t, "new@example.com", gotRequest.Email)

	var user struct {
		ID    int64  `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &user))
	assert.Equal(t, int64(7), user.ID)
	assert.Equal(t, "new@example.com", user.Email)
	assert.NotContains(t, resp.Body.String(), "password")
}

func TestRegister_InvalidJSON(t *testing.T) {
	router := newTestRouter(defaultServices())

	req := httptest.NewRequest(http.MethodPost, "/api/user/register", strings.NewReader("{not json"))

	resp := doRequest(router, req)

	require.Equal(t, http.StatusBadRequest, resp.Code)

	var apiErr models.APIError
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &apiErr))
	assert.Equal(t, "invalid JSON payload", apiErr.Error)
}

func TestRegister_ValidationFailureCarriesFields(t *testing.T) {
	services := defaultServices()
	services.AuthService = &stubAuthService{
		registerFn: func(_ context.Context, _ models.RegisterRequest) (models.User, error) {
			return models.User{}, &service.ValidationError{Fields: validators.FieldErrors{
				validators.FieldPassword: "ensure this field has at least 8 characters",
			}}
		},
	}
	router := newTestRouter(services)

	req := httptest.NewRequest(http.MethodPost, "/api/user/register", strings.NewReader(`{"email":"a@b.c","password":"short"}`))

	resp := doRequest(router, req)

	require.Equal(t, http.StatusBadRequest, resp.Code)

	var apiErr models.APIError
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &apiErr))
	assert.Equal(t, "validation failed", apiErr.Error)
	assert.Equal(t, "ensure this field has at least 8 characters", apiErr.Fields["password"])
}

func TestRegister_DuplicateEmail(t *testing.T) {
	services := defaultServices()
	services.AuthService = &stubAuthService{
		registerFn: func(_ context.Context, _ models.RegisterRequest) (models.User, error) {
			return models.User{}, store.ErrEmailAlreadyExists
		},
	}
	router := newTestRouter(services)

	req := httptest.NewRequest(http.MethodPost, "/api/user/register", strings.NewReader(`{"email":"taken@example.com","password":"supersecret"}`))

	resp := doRequest(router, req)

	require.Equal(t, http.StatusBadRequest, resp.Code)

	var apiErr models.APIError
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &apiErr))
	assert.Equal(t, "user with this email already exists", apiErr.Fields["email"])
}

func TestToken_Success(t *testing.T) {
	router := newTestRouter(defaultServices())

	req := httptest.NewRequest(http.MethodPost, "/api/user/token", strings.NewReader(`{"email":"user@example.com","password":"supersecret"}`))

	resp := doRequest(router, req)

	require.Equal(t, http.StatusOK, resp.Code)

	var tokenResp models.TokenResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &tokenResp))
	assert.Equal(t, "signed-token", tokenResp.Token)
}

func TestToken_BadCredentials(t *testing.T) {
	services := defaultServices()
	services.AuthService = &stubAuthService{
		loginFn: func(_ context.Context, _ models.TokenRequest) (models.User, error) {
			return models.User{}, service.ErrInvalidCredentials
		},
	}
	router := newTestRouter(services)

	req := httptest.NewRequest(http.MethodPost, "/api/user/token", strings.NewReader(`{"email":"user@example.com","password":"wrong"}`))

	resp := doRequest(router, req)

	require.Equal(t, http.StatusBadRequest, resp.Code)

	var apiErr models.APIError
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &apiErr))
	assert.Equal(t, "unable to authenticate with provided credentials", apiErr.Error)
	assert.Empty(t, apiErr.Fields)
}

func TestToken_TokenCreationFailure(t *testing.T) {
	services := defaultServices()
	services.AuthService = &stubAuthService{
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return models.Token{}, service.ErrTokenCreationFailed
		},
	}
	router := newTestRouter(services)

	req := httptest.NewRequest(http.MethodPost, "/api/user/token", strings.NewReader(`{"email":"user@example.com","password":"supersecret"}`))

	resp := doRequest(router, req)

	require.Equal(t, http.StatusInternalServerError, resp.Code)
}
