package service

import (
	"context"
	"io"

	"github.com/vinay461as/recipi-api/models"
)

// AuthService covers the account lifecycle: registration, credential checks,
// JWT issuance and verification, and profile reads/updates.
type AuthService interface {
	RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, request models.TokenRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	GetUser(ctx context.Context, userID int64) (models.User, error)
	UpdateProfile(ctx context.Context, userID int64, update models.ProfileUpdate) (models.User, error)
}

// CatalogService manages the two flat recipe attribute kinds — tags and
// ingredients. Both share the same shape (an owner-scoped named row), so they
// live behind one service.
type CatalogService interface {
	ListTags(ctx context.Context, userID int64, assignedOnly bool) ([]models.Tag, error)
	CreateTag(ctx context.Context, userID int64, request models.NameRequest) (models.Tag, error)
	UpdateTag(ctx context.Context, userID, tagID int64, update models.NameUpdate) (models.Tag, error)
	DeleteTag(ctx context.Context, userID, tagID int64) error

	ListIngredients(ctx context.Context, userID int64, assignedOnly bool) ([]models.Ingredient, error)
	CreateIngredient(ctx context.Context, userID int64, request models.NameRequest) (models.Ingredient, error)
	UpdateIngredient(ctx context.Context, userID, ingredientID int64, update models.NameUpdate) (models.Ingredient, error)
	DeleteIngredient(ctx context.Context, userID, ingredientID int64) error
}

// RecipeService manages recipes and their tag/ingredient membership sets,
// including image attachment.
type RecipeService interface {
	ListRecipes(ctx context.Context, userID int64, filter models.RecipeFilter) ([]models.Recipe, error)
	GetRecipe(ctx context.Context, userID, recipeID int64) (models.Recipe, error)
	// GetRecipeDetail returns the recipe with its tag and ingredient IDs
	// expanded into full objects, the single-resource response shape.
	GetRecipeDetail(ctx context.Context, userID, recipeID int64) (models.RecipeDetail, error)
	CreateRecipe(ctx context.Context, userID int64, input models.RecipeUpdate) (models.Recipe, error)
	// UpdateRecipe applies input to an existing recipe. With partial set,
	// absent fields keep their stored values; otherwise absent optional
	// fields reset to their zero values and the required fields must be
	// present.
	UpdateRecipe(ctx context.Context, input models.RecipeUpdate, partial bool) (models.Recipe, error)
	DeleteRecipe(ctx context.Context, userID, recipeID int64) error
	AttachImage(ctx context.Context, userID, recipeID int64, fileName string, content io.Reader) (models.Recipe, error)
}

// AppInfoService exposes build metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
