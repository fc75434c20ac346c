package store

import (
	"context"
	"io"

	"github.com/vinay461as/recipi-api/models"
)

// UserRepository persists account records. Lookups by credential key (email)
// are used during authentication; lookups by ID resolve bearer tokens to
// accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	UpdateUser(ctx context.Context, user models.User) (models.User, error)
}

// TagRepository persists tags. Every operation is owner-scoped: the SQL
// carries a user_id predicate, so rows of other users behave exactly like
// missing rows.
type TagRepository interface {
	// ListTags returns the user's tags ordered by name descending.
	// With assignedOnly set, only tags referenced by at least one of the
	// user's recipes are returned, deduplicated.
	ListTags(ctx context.Context, userID int64, assignedOnly bool) ([]models.Tag, error)
	CreateTag(ctx context.Context, tag models.Tag) (models.Tag, error)
	UpdateTag(ctx context.Context, userID, tagID int64, name string) (models.Tag, error)
	DeleteTag(ctx context.Context, userID, tagID int64) error
	// FindTagsByIDs returns the subset of ids that exist and belong to the
	// user. Callers compare lengths to detect foreign or missing IDs.
	FindTagsByIDs(ctx context.Context, userID int64, ids []int64) ([]models.Tag, error)
}

// IngredientRepository is the ingredient counterpart of [TagRepository],
// with the identical owner-scoping contract.
type IngredientRepository interface {
	ListIngredients(ctx context.Context, userID int64, assignedOnly bool) ([]models.Ingredient, error)
	CreateIngredient(ctx context.Context, ingredient models.Ingredient) (models.Ingredient, error)
	UpdateIngredient(ctx context.Context, userID, ingredientID int64, name string) (models.Ingredient, error)
	DeleteIngredient(ctx context.Context, userID, ingredientID int64) error
	FindIngredientsByIDs(ctx context.Context, userID int64, ids []int64) ([]models.Ingredient, error)
}

// RecipeRepository persists recipes together with their tag and ingredient
// membership sets. Owner scoping follows the same contract as the other
// repositories.
type RecipeRepository interface {
	// ListRecipes returns the user's recipes ordered by ID descending,
	// optionally narrowed by the filter. Results are deduplicated even when
	// a recipe matches several filter IDs.
	ListRecipes(ctx context.Context, userID int64, filter models.RecipeFilter) ([]models.Recipe, error)
	GetRecipe(ctx context.Context, userID, recipeID int64) (models.Recipe, error)
	CreateRecipe(ctx context.Context, recipe models.Recipe) (models.Recipe, error)
	UpdateRecipe(ctx context.Context, update models.RecipeUpdate) (models.Recipe, error)
	DeleteRecipe(ctx context.Context, userID, recipeID int64) error
	SetRecipeImage(ctx context.Context, userID, recipeID int64, imagePath string) (models.Recipe, error)
}

// ImageStorage persists uploaded recipe images outside the relational
// database. The database row keeps only the storage path.
type ImageStorage interface {
	// SaveImage writes the image content under a storage-unique name derived
	// from fileName and returns the path to store on the recipe row.
	SaveImage(ctx context.Context, fileName string, content io.Reader) (string, error)

	// RemoveImage deletes a previously saved image. Removing a path that no
	// longer exists is not an error.
	RemoveImage(ctx context.Context, imagePath string) error
}
