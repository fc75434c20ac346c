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

func TestListTags_Success(t *testing.T) {
	services := defaultServices()
	services.CatalogService = &stubCatalogService{
		listTagsFn: func(_ context.Context, userID int64, assignedOnly bool) ([]models.Tag, error) {
			assert.Equal(t, testUserID, userID)
			assert.False(t, assignedOnly)
			return []models.Tag{
				{TagID: 2, UserID: userID, Name: "Vegan"},
				{TagID: 1, UserID: userID, Name: "Dessert"},
			}, nil
		},
	}
	router := newTestRouter(services)

	req := authorize(httptest.NewRequest(http.MethodGet, "/api/tags", nil))

	resp := doRequest(router, req)

	require.Equal(t, http.StatusOK, resp.Code)

	var tags []models.Tag
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &tags))
	require.Len(t, tags, 2)
	assert.Equal(t, "Vegan", tags[0].Name)
}

func TestListTags_AssignedOnlyParam(t *testing.T) {
	tests := []struct {
		query string
		want  bool
	}{
		{query: "", want: false},
		{query: "?assigned_only=1", want: true},
		{query: "?assigned_only=true", want: true},
		{query: "?assigned_only=0", want: false},
		{query: "?assigned_only=yes", want: false},
	}

	for _, tt := range tests {
		t.Run("query "+tt.query, func(t *testing.T) {
			var gotAssignedOnly bool
			services := defaultServices()
			services.CatalogService = &stubCatalogService{
				listTagsFn: func(_ context.Context, _ int64, assignedOnly bool) ([]models.Tag, error) {
					gotAssignedOnly = assignedOnly
					return []models.Tag{}, nil
				},
			}
			router := newTestRouter(services)

			req := authorize(httptest.NewRequest(http.MethodGet, "/api/tags"+tt.query, nil))

			resp := doRequest(router, req)

			require.Equal(t, http.StatusOK, resp.Code)
			assert.Equal(t, tt.want, gotAssignedOnly)
		})
	}
}

func TestCreateTag_Success(t *testing.T) {
	router := newTestRouter(defaultServices())

	req := authorize(httptest.NewRequest(http.MethodPost, "/api/tags", strings.NewReader(`{"name":"Dessert"}`)))

	resp := doRequest(router, req)

	require.Equal(t, http.StatusCreated, resp.Code)

	var tag models.Tag
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &tag))
	assert.Equal(t, "Dessert", tag.Name)
}

func TestCreateTag_BlankName(t *testing.T) {
	services := defaultServices()
	services.CatalogService = &stubCatalogService{
		createTagFn: func(_ context.Context, _ int64, _ models.NameRequest) (models.Tag, error) {
			return models.Tag{}, &service.ValidationError{Fields: validators.FieldErrors{
				validators.FieldName: "must not be blank",
			}}
		},
	}
	router := newTestRouter(services)

	req := authorize(httptest.NewRequest(http.MethodPost, "/api/tags", strings.NewReader(`{"name":""}`)))

	resp := doRequest(router, req)

	require.Equal(t, http.StatusBadRequest, resp.Code)

	var apiErr models.APIError
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &apiErr))
	assert.Equal(t, "must not be blank", apiErr.Fields["name"])
}

func TestUpdateTag_Success(t *testing.T) {
	var gotTagID int64
	services := defaultServices()
	services.CatalogService = &stubCatalogService{
		updateTagFn: func(_ context.Context, userID, tagID int64, update models.NameUpdate) (models.Tag, error) {
			gotTagID = tagID
			return models.Tag{TagID: tagID, UserID: userID, Name: *update.Name}, nil
		},
	}
	router := newTestRouter(services)

	req := authorize(httptest.NewRequest(http.MethodPatch, "/api/tags/5", strings.NewReader(`{"name":"Renamed"}`)))

	resp := doRequest(router, req)

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, int64(5), gotTagID)
}

func TestUpdateTag_InvalidID(t *testing.T) {
	router := newTestRouter(defaultServices())

	req := authorize(httptest.NewRequest(http.MethodPatch, "/api/tags/abc", strings.NewReader(`{"name":"x"}`)))

	resp := doRequest(router, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestUpdateTag_NotFound(t *testing.T) {
	services := defaultServices()
	services.CatalogService = &stubCatalogService{
		updateTagFn: func(_ context.Context, _, _ int64, _ models.NameUpdate) (models.Tag, error) {
			return models.Tag{}, store.ErrTagNotFound
		},
	}
	router := newTestRouter(services)

	req := authorize(httptest.NewRequest(http.MethodPatch, "/api/tags/404", strings.NewReader(`{"name":"x"}`)))

	resp := doRequest(router, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestDeleteTag_Success(t *testing.T) {
	var deletedID int64
	services := defaultServices()
	services.CatalogService = &stubCatalogService{
		deleteTagFn: func(_ context.Context, _, tagID int64) error {
			deletedID = tagID
			return nil
		},
	}
	router := newTestRouter(services)

	req := authorize(httptest.NewRequest(http.MethodDelete, "/api/tags/3", nil))

	resp := doRequest(router, req)

	require.Equal(t, http.StatusNoContent, resp.Code)
	assert.Equal(t, int64(3), deletedID)
	assert.Empty(t, resp.Body.String())
}
