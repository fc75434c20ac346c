package service

import (
	"context"
	"errors"
	"io"

	"github.com/vinay461as/recipi-api/models"
)

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createFn      func(ctx context.Context, user models.User) (models.User, error)
	findByEmailFn func(ctx context.Context, email string) (models.User, error)
	findByIDFn    func(ctx context.Context, userID int64) (models.User, error)
	updateFn      func(ctx context.Context, user models.User) (models.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	if m.findByEmailFn != nil {
		return m.findByEmailFn(ctx, email)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, userID)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, user)
	}
	return user, nil
}

// ─────────────────────────────────────────────
// Mock: store.TagRepository
// ─────────────────────────────────────────────

type mockTagRepository struct {
	listFn      func(ctx context.Context, userID int64, assignedOnly bool) ([]models.Tag, error)
	createFn    func(ctx context.Context, tag models.Tag) (models.Tag, error)
	updateFn    func(ctx context.Context, userID, tagID int64, name string) (models.Tag, error)
	deleteFn    func(ctx context.Context, userID, tagID int64) error
	findByIDsFn func(ctx context.Context, userID int64, ids []int64) ([]models.Tag, error)
}

func (m *mockTagRepository) ListTags(ctx context.Context, userID int64, assignedOnly bool) ([]models.Tag, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID, assignedOnly)
	}
	return nil, nil
}

func (m *mockTagRepository) CreateTag(ctx context.Context, tag models.Tag) (models.Tag, error) {
	if m.createFn != nil {
		return m.createFn(ctx, tag)
	}
	return tag, nil
}

func (m *mockTagRepository) UpdateTag(ctx context.Context, userID, tagID int64, name string) (models.Tag, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, userID, tagID, name)
	}
	return models.Tag{}, nil
}

func (m *mockTagRepository) DeleteTag(ctx context.Context, userID, tagID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, userID, tagID)
	}
	return nil
}

func (m *mockTagRepository) FindTagsByIDs(ctx context.Context, userID int64, ids []int64) ([]models.Tag, error) {
	if m.findByIDsFn != nil {
		return m.findByIDsFn(ctx, userID, ids)
	}
	tags := make([]models.Tag, 0, len(ids))
	for _, id := range ids {
		tags = append(tags, models.Tag{TagID: id, UserID: userID})
	}
	return tags, nil
}

// ─────────────────────────────────────────────
// Mock: store.IngredientRepository
// ─────────────────────────────────────────────

type mockIngredientRepository struct {
	listFn      func(ctx context.Context, userID int64, assignedOnly bool) ([]models.Ingredient, error)
	createFn    func(ctx context.Context, ingredient models.Ingredient) (models.Ingredient, error)
	updateFn    func(ctx context.Context, userID, ingredientID int64, name string) (models.Ingredient, error)
	deleteFn    func(ctx context.Context, userID, ingredientID int64) error
	findByIDsFn func(ctx context.Context, userID int64, ids []int64) ([]models.Ingredient, error)
}

func (m *mockIngredientRepository) ListIngredients(ctx context.Context, userID int64, assignedOnly bool) ([]models.Ingredient, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID, assignedOnly)
	}
	return nil, nil
}

func (m *mockIngredientRepository) CreateIngredient(ctx context.Context, ingredient models.Ingredient) (models.Ingredient, error) {
	if m.createFn != nil {
		return m.createFn(ctx, ingredient)
	}
	return ingredient, nil
}

func (m *mockIngredientRepository) UpdateIngredient(ctx context.Context, userID, ingredientID int64, name string) (models.Ingredient, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, userID, ingredientID, name)
	}
	return models.Ingredient{}, nil
}

func (m *mockIngredientRepository) DeleteIngredient(ctx context.Context, userID, ingredientID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, userID, ingredientID)
	}
	return nil
}

func (m *mockIngredientRepository) FindIngredientsByIDs(ctx context.Context, userID int64, ids []int64) ([]models.Ingredient, error) {
	if m.findByIDsFn != nil {
		return m.findByIDsFn(ctx, userID, ids)
	}
	ingredients := make([]models.Ingredient, 0, len(ids))
	for _, id := range ids {
		ingredients = append(ingredients, models.Ingredient{IngredientID: id, UserID: userID})
	}
	return ingredients, nil
}

// ─────────────────────────────────────────────
// Mock: store.RecipeRepository
// ─────────────────────────────────────────────

type mockRecipeRepository struct {
	listFn     func(ctx context.Context, userID int64, filter models.RecipeFilter) ([]models.Recipe, error)
	getFn      func(ctx context.Context, userID, recipeID int64) (models.Recipe, error)
	createFn   func(ctx context.Context, recipe models.Recipe) (models.Recipe, error)
	updateFn   func(ctx context.Context, update models.RecipeUpdate) (models.Recipe, error)
	deleteFn   func(ctx context.Context, userID, recipeID int64) error
	setImageFn func(ctx context.Context, userID, recipeID int64, imagePath string) (models.Recipe, error)
}

func (m *mockRecipeRepository) ListRecipes(ctx context.Context, userID int64, filter models.RecipeFilter) ([]models.Recipe, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID, filter)
	}
	return nil, nil
}

func (m *mockRecipeRepository) GetRecipe(ctx context.Context, userID, recipeID int64) (models.Recipe, error) {
	if m.getFn != nil {
		return m.getFn(ctx, userID, recipeID)
	}
	return models.Recipe{}, nil
}

func (m *mockRecipeRepository) CreateRecipe(ctx context.Context, recipe models.Recipe) (models.Recipe, error) {
	if m.createFn != nil {
		return m.createFn(ctx, recipe)
	}
	return recipe, nil
}

func (m *mockRecipeRepository) UpdateRecipe(ctx context.Context, update models.RecipeUpdate) (models.Recipe, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, update)
	}
	return models.Recipe{}, nil
}

func (m *mockRecipeRepository) DeleteRecipe(ctx context.Context, userID, recipeID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, userID, recipeID)
	}
	return nil
}

func (m *mockRecipeRepository) SetRecipeImage(ctx context.Context, userID, recipeID int64, imagePath string) (models.Recipe, error) {
	if m.setImageFn != nil {
		return m.setImageFn(ctx, userID, recipeID, imagePath)
	}
	return models.Recipe{}, nil
}

// ─────────────────────────────────────────────
// Mock: store.ImageStorage
// ─────────────────────────────────────────────

type mockImageStorage struct {
	saveFn   func(ctx context.Context, fileName string, content io.Reader) (string, error)
	removeFn func(ctx context.Context, imagePath string) error
}

func (m *mockImageStorage) SaveImage(ctx context.Context, fileName string, content io.Reader) (string, error) {
	if m.saveFn != nil {
		return m.saveFn(ctx, fileName, content)
	}
	return "uploads/mock.jpg", nil
}

func (m *mockImageStorage) RemoveImage(ctx context.Context, imagePath string) error {
	if m.removeFn != nil {
		return m.removeFn(ctx, imagePath)
	}
	return nil
}

var errStorage = errors.New("storage error")
