package service

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/vinay461as/recipi-api/internal/logger"
	"github.com/vinay461as/recipi-api/internal/store"
	"github.com/vinay461as/recipi-api/internal/validators"
	"github.com/vinay461as/recipi-api/models"
)

// recipeService is the concrete implementation of RecipeService.
// Beyond plain CRUD it enforces the one cross-entity rule of the domain:
// a recipe may only reference tags and ingredients of its own owner.
type recipeService struct {
	recipeRepository     store.RecipeRepository
	tagRepository        store.TagRepository
	ingredientRepository store.IngredientRepository
	imageStorage         store.ImageStorage

	logger *logger.Logger
}

// NewRecipeService constructs a RecipeService over the given repositories and
// image storage.
func NewRecipeService(
	recipeRepository store.RecipeRepository,
	tagRepository store.TagRepository,
	ingredientRepository store.IngredientRepository,
	imageStorage store.ImageStorage,
	logger *logger.Logger,
) RecipeService {
	return &recipeService{
		recipeRepository:     recipeRepository,
		tagRepository:        tagRepository,
		ingredientRepository: ingredientRepository,
		imageStorage:         imageStorage,
		logger:               logger,
	}
}

// dedupIDs returns a sorted copy of ids with duplicates removed.
// Membership sets are unordered, so sorting costs nothing and makes
// persistence deterministic.
func dedupIDs(ids []int64) []int64 {
	out := slices.Clone(ids)
	slices.Sort(out)
	return slices.Compact(out)
}

// ListRecipes returns the caller's recipes ordered by ID descending,
// optionally narrowed by tag and ingredient ID filters.
func (r *recipeService) ListRecipes(ctx context.Context, userID int64, filter models.RecipeFilter) ([]models.Recipe, error) {
	log := logger.FromContext(ctx)

	filter.TagIDs = dedupIDs(filter.TagIDs)
	filter.IngredientIDs = dedupIDs(filter.IngredientIDs)

	recipes, err := r.recipeRepository.ListRecipes(ctx, userID, filter)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("recipe listing failed")
		return nil, fmt.Errorf("recipe listing failed: %w", err)
	}

	return recipes, nil
}

// GetRecipe returns one of the caller's recipes with its membership sets.
// Recipes of other users behave like missing recipes.
func (r *recipeService) GetRecipe(ctx context.Context, userID, recipeID int64) (models.Recipe, error) {
	log := logger.FromContext(ctx)

	recipe, err := r.recipeRepository.GetRecipe(ctx, userID, recipeID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Int64("recipe_id", recipeID).Msg("recipe lookup failed")
		return models.Recipe{}, fmt.Errorf("recipe lookup failed: %w", err)
	}

	return recipe, nil
}

// GetRecipeDetail returns one of the caller's recipes with its membership ID
// sets expanded into full tag and ingredient objects.
func (r *recipeService) GetRecipeDetail(ctx context.Context, userID, recipeID int64) (models.RecipeDetail, error) {
	log := logger.FromContext(ctx)

	recipe, err := r.recipeRepository.GetRecipe(ctx, userID, recipeID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Int64("recipe_id", recipeID).Msg("recipe lookup failed")
		return models.RecipeDetail{}, fmt.Errorf("recipe lookup failed: %w", err)
	}

	detail := models.RecipeDetail{
		RecipeID:    recipe.RecipeID,
		Title:       recipe.Title,
		TimeMinutes: recipe.TimeMinutes,
		Price:       recipe.Price,
		Link:        recipe.Link,
		Tags:        []models.Tag{},
		Ingredients: []models.Ingredient{},
	}

	if len(recipe.TagIDs) > 0 {
		tags, err := r.tagRepository.FindTagsByIDs(ctx, userID, recipe.TagIDs)
		if err != nil {
			log.Err(err).Int64("recipe_id", recipeID).Msg("tag expansion failed")
			return models.RecipeDetail{}, fmt.Errorf("tag expansion failed: %w", err)
		}
		detail.Tags = tags
	}
	if len(recipe.IngredientIDs) > 0 {
		ingredients, err := r.ingredientRepository.FindIngredientsByIDs(ctx, userID, recipe.IngredientIDs)
		if err != nil {
			log.Err(err).Int64("recipe_id", recipeID).Msg("ingredient expansion failed")
			return models.RecipeDetail{}, fmt.Errorf("ingredient expansion failed: %w", err)
		}
		detail.Ingredients = ingredients
	}

	return detail, nil
}

// CreateRecipe creates a recipe owned by the caller. Title, time_minutes and
// price are required; omitted membership sets default to empty. Referenced
// tag and ingredient IDs must belong to the caller.
func (r *recipeService) CreateRecipe(ctx context.Context, userID int64, input models.RecipeUpdate) (models.Recipe, error) {
	log := logger.FromContext(ctx)

	normalizeRecipeInput(&input)
	if errs := validators.RecipeSchema.Validate(recipeInputFields(input)); errs != nil {
		log.Error().Int64("user_id", userID).Msg("recipe payload rejected")
		return models.Recipe{}, &ValidationError{Fields: errs}
	}

	recipe := models.Recipe{
		UserID:        userID,
		Title:         *input.Title,
		TimeMinutes:   *input.TimeMinutes,
		Price:         *input.Price,
		TagIDs:        []int64{},
		IngredientIDs: []int64{},
	}
	if input.Link != nil {
		recipe.Link = strings.TrimSpace(*input.Link)
	}
	if input.Tags != nil {
		recipe.TagIDs = dedupIDs(*input.Tags)
	}
	if input.Ingredients != nil {
		recipe.IngredientIDs = dedupIDs(*input.Ingredients)
	}

	if err := r.checkMembershipOwnership(ctx, userID, recipe.TagIDs, recipe.IngredientIDs); err != nil {
		log.Error().Int64("user_id", userID).Err(err).Msg("recipe references foreign attributes")
		return models.Recipe{}, err
	}

	created, err := r.recipeRepository.CreateRecipe(ctx, recipe)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("recipe creation ended with error")
		return models.Recipe{}, fmt.Errorf("recipe creation ended with error: %w", err)
	}

	return created, nil
}

// UpdateRecipe applies input to one of the caller's recipes.
//
// With partial set, absent fields keep their stored values and only provided
// fields are validated. Without it the update is a full replace: the required
// fields must be present, an absent link resets to empty, and absent
// membership sets reset to empty sets.
func (r *recipeService) UpdateRecipe(ctx context.Context, input models.RecipeUpdate, partial bool) (models.Recipe, error) {
	log := logger.FromContext(ctx)

	normalizeRecipeInput(&input)

	schema := validators.RecipeSchema
	if partial {
		schema = schema.Partial()
	}
	if errs := schema.Validate(recipeInputFields(input)); errs != nil {
		log.Error().Int64("user_id", input.UserID).Int64("recipe_id", input.RecipeID).Msg("recipe payload rejected")
		return models.Recipe{}, &ValidationError{Fields: errs}
	}

	if !partial {
		if input.Link == nil {
			input.Link = new(string)
		}
		if input.Tags == nil {
			input.Tags = &[]int64{}
		}
		if input.Ingredients == nil {
			input.Ingredients = &[]int64{}
		}
	}

	var tagIDs, ingredientIDs []int64
	if input.Tags != nil {
		*input.Tags = dedupIDs(*input.Tags)
		tagIDs = *input.Tags
	}
	if input.Ingredients != nil {
		*input.Ingredients = dedupIDs(*input.Ingredients)
		ingredientIDs = *input.Ingredients
	}
	if err := r.checkMembershipOwnership(ctx, input.UserID, tagIDs, ingredientIDs); err != nil {
		log.Error().Int64("user_id", input.UserID).Int64("recipe_id", input.RecipeID).Err(err).Msg("recipe references foreign attributes")
		return models.Recipe{}, err
	}

	updated, err := r.recipeRepository.UpdateRecipe(ctx, input)
	if err != nil {
		log.Err(err).Int64("user_id", input.UserID).Int64("recipe_id", input.RecipeID).Msg("recipe update ended with error")
		return models.Recipe{}, fmt.Errorf("recipe update ended with error: %w", err)
	}

	return updated, nil
}

// DeleteRecipe removes one of the caller's recipes together with its
// membership rows. The referenced tags and ingredients survive.
func (r *recipeService) DeleteRecipe(ctx context.Context, userID, recipeID int64) error {
	log := logger.FromContext(ctx)

	if err := r.recipeRepository.DeleteRecipe(ctx, userID, recipeID); err != nil {
		log.Err(err).Int64("user_id", userID).Int64("recipe_id", recipeID).Msg("recipe deletion ended with error")
		return fmt.Errorf("recipe deletion ended with error: %w", err)
	}

	return nil
}

// AttachImage stores an uploaded image for one of the caller's recipes and
// records its path on the recipe row. A previously attached image is removed
// from storage after the new path is committed.
func (r *recipeService) AttachImage(ctx context.Context, userID, recipeID int64, fileName string, content io.Reader) (models.Recipe, error) {
	log := logger.FromContext(ctx)

	recipe, err := r.recipeRepository.GetRecipe(ctx, userID, recipeID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Int64("recipe_id", recipeID).Msg("recipe lookup failed")
		return models.Recipe{}, fmt.Errorf("recipe lookup failed: %w", err)
	}

	imagePath, err := r.imageStorage.SaveImage(ctx, fileName, content)
	if err != nil {
		log.Err(err).Int64("recipe_id", recipeID).Msg("image saving failed")
		return models.Recipe{}, fmt.Errorf("image saving failed: %w", err)
	}

	updated, err := r.recipeRepository.SetRecipeImage(ctx, userID, recipeID, imagePath)
	if err != nil {
		// the row update failed, so the freshly written file is orphaned
		if removeErr := r.imageStorage.RemoveImage(ctx, imagePath); removeErr != nil {
			log.Err(removeErr).Str("image_path", imagePath).Msg("orphaned image cleanup failed")
		}
		log.Err(err).Int64("recipe_id", recipeID).Msg("image path update ended with error")
		return models.Recipe{}, fmt.Errorf("image path update ended with error: %w", err)
	}

	if recipe.ImagePath != "" && recipe.ImagePath != imagePath {
		if removeErr := r.imageStorage.RemoveImage(ctx, recipe.ImagePath); removeErr != nil {
			log.Err(removeErr).Str("image_path", recipe.ImagePath).Msg("replaced image cleanup failed")
		}
	}

	return updated, nil
}

// normalizeRecipeInput trims the string fields in place.
func normalizeRecipeInput(input *models.RecipeUpdate) {
	if input.Title != nil {
		*input.Title = strings.TrimSpace(*input.Title)
	}
	if input.Link != nil {
		*input.Link = strings.TrimSpace(*input.Link)
	}
}

// recipeInputFields projects the provided (non-nil) input fields into the
// value map the recipe schema validates.
func recipeInputFields(input models.RecipeUpdate) map[string]any {
	fields := map[string]any{}
	if input.Title != nil {
		fields[validators.FieldTitle] = *input.Title
	}
	if input.TimeMinutes != nil {
		fields[validators.FieldTimeMinutes] = *input.TimeMinutes
	}
	if input.Price != nil {
		fields[validators.FieldPrice] = *input.Price
	}
	if input.Tags != nil {
		fields[validators.FieldTags] = *input.Tags
	}
	if input.Ingredients != nil {
		fields[validators.FieldIngredients] = *input.Ingredients
	}
	return fields
}

// checkMembershipOwnership verifies that every referenced tag and ingredient
// ID exists and belongs to userID. Foreign and missing IDs are reported as
// field-level validation problems, not as lookups of other users' data.
func (r *recipeService) checkMembershipOwnership(ctx context.Context, userID int64, tagIDs, ingredientIDs []int64) error {
	errs := validators.FieldErrors{}

	if len(tagIDs) > 0 {
		owned, err := r.tagRepository.FindTagsByIDs(ctx, userID, tagIDs)
		if err != nil {
			return fmt.Errorf("tag ownership check failed: %w", err)
		}
		if len(owned) != len(tagIDs) {
			errs[validators.FieldTags] = "tags must exist and belong to the authenticated user"
		}
	}

	if len(ingredientIDs) > 0 {
		owned, err := r.ingredientRepository.FindIngredientsByIDs(ctx, userID, ingredientIDs)
		if err != nil {
			return fmt.Errorf("ingredient ownership check failed: %w", err)
		}
		if len(owned) != len(ingredientIDs) {
			errs[validators.FieldIngredients] = "ingredients must exist and belong to the authenticated user"
		}
	}

	if len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	return nil
}
