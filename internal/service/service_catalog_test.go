package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vinay461as/recipi-api/internal/logger"
	"github.com/vinay461as/recipi-api/internal/store"
	"github.com/vinay461as/recipi-api/internal/validators"
	"github.com/vinay461as/recipi-api/models"
)

func newTestCatalogService(tags *mockTagRepository, ingredients *mockIngredientRepository) *catalogService {
	return &catalogService{
		tagRepository:        tags,
		ingredientRepository: ingredients,
		logger:               logger.Nop(),
	}
}

func TestCatalogService_ListTags_PassesAssignedOnly(t *testing.T) {
	var gotAssignedOnly bool
	tags := &mockTagRepository{
		listFn: func(_ context.Context, userID int64, assignedOnly bool) ([]models.Tag, error) {
			assert.Equal(t, int64(1), userID)
			gotAssignedOnly = assignedOnly
			return []models.Tag{{TagID: 1, UserID: 1, Name: "Vegan"}}, nil
		},
	}
	svc := newTestCatalogService(tags, &mockIngredientRepository{})

	result, err := svc.ListTags(context.Background(), 1, true)

	require.NoError(t, err)
	assert.True(t, gotAssignedOnly)
	assert.Len(t, result, 1)
}

func TestCatalogService_CreateTag_TrimsName(t *testing.T) {
	var persisted models.Tag
	tags := &mockTagRepository{
		createFn: func(_ context.Context, tag models.Tag) (models.Tag, error) {
			persisted = tag
			tag.TagID = 7
			return tag, nil
		},
	}
	svc := newTestCatalogService(tags, &mockIngredientRepository{})

	created, err := svc.CreateTag(context.Background(), 1, models.NameRequest{Name: "  Dessert  "})

	require.NoError(t, err)
	assert.Equal(t, "Dessert", persisted.Name)
	assert.Equal(t, int64(1), persisted.UserID)
	assert.Equal(t, int64(7), created.TagID)
}

func TestCatalogService_CreateTag_BlankNameRejected(t *testing.T) {
	created := false
	tags := &mockTagRepository{
		createFn: func(_ context.Context, tag models.Tag) (models.Tag, error) {
			created = true
			return tag, nil
		},
	}
	svc := newTestCatalogService(tags, &mockIngredientRepository{})

	_, err := svc.CreateTag(context.Background(), 1, models.NameRequest{Name: "   "})

	require.ErrorIs(t, err, ErrValidation)
	assert.False(t, created)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, validators.FieldName)
}

func TestCatalogService_UpdateTag_MissingNameRejected(t *testing.T) {
	svc := newTestCatalogService(&mockTagRepository{}, &mockIngredientRepository{})

	_, err := svc.UpdateTag(context.Background(), 1, 5, models.NameUpdate{})

	require.ErrorIs(t, err, ErrValidation)
}

func TestCatalogService_UpdateTag_NotFoundPropagates(t *testing.T) {
	tags := &mockTagRepository{
		updateFn: func(_ context.Context, _, _ int64, _ string) (models.Tag, error) {
			return models.Tag{}, store.ErrTagNotFound
		},
	}
	svc := newTestCatalogService(tags, &mockIngredientRepository{})

	name := "Renamed"
	_, err := svc.UpdateTag(context.Background(), 1, 5, models.NameUpdate{Name: &name})

	require.ErrorIs(t, err, store.ErrTagNotFound)
}

func TestCatalogService_DeleteTag_Delegates(t *testing.T) {
	var deletedID int64
	tags := &mockTagRepository{
		deleteFn: func(_ context.Context, userID, tagID int64) error {
			assert.Equal(t, int64(1), userID)
			deletedID = tagID
			return nil
		},
	}
	svc := newTestCatalogService(tags, &mockIngredientRepository{})

	require.NoError(t, svc.DeleteTag(context.Background(), 1, 5))
	assert.Equal(t, int64(5), deletedID)
}

func TestCatalogService_CreateIngredient_TrimsName(t *testing.T) {
	var persisted models.Ingredient
	ingredients := &mockIngredientRepository{
		createFn: func(_ context.Context, ingredient models.Ingredient) (models.Ingredient, error) {
			persisted = ingredient
			ingredient.IngredientID = 3
			return ingredient, nil
		},
	}
	svc := newTestCatalogService(&mockTagRepository{}, ingredients)

	created, err := svc.CreateIngredient(context.Background(), 2, models.NameRequest{Name: " Salt "})

	require.NoError(t, err)
	assert.Equal(t, "Salt", persisted.Name)
	assert.Equal(t, int64(2), persisted.UserID)
	assert.Equal(t, int64(3), created.IngredientID)
}

func TestCatalogService_UpdateIngredient_BlankNameRejected(t *testing.T) {
	svc := newTestCatalogService(&mockTagRepository{}, &mockIngredientRepository{})

	name := ""
	_, err := svc.UpdateIngredient(context.Background(), 1, 4, models.NameUpdate{Name: &name})

	require.ErrorIs(t, err, ErrValidation)
}

func TestCatalogService_ListIngredients_RepositoryError(t *testing.T) {
	ingredients := &mockIngredientRepository{
		listFn: func(_ context.Context, _ int64, _ bool) ([]models.Ingredient, error) {
			return nil, errStorage
		},
	}
	svc := newTestCatalogService(&mockTagRepository{}, ingredients)

	_, err := svc.ListIngredients(context.Background(), 1, false)

	require.ErrorIs(t, err, errStorage)
}
