package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/vinay461as/recipi-api/internal/logger"
	"github.com/vinay461as/recipi-api/internal/store"
	"github.com/vinay461as/recipi-api/internal/validators"
	"github.com/vinay461as/recipi-api/models"
)

// catalogService is the concrete implementation of CatalogService.
// Tags and ingredients share one validation schema and one set of rules, so a
// single service fronts both repositories.
type catalogService struct {
	tagRepository        store.TagRepository
	ingredientRepository store.IngredientRepository

	logger *logger.Logger
}

// NewCatalogService constructs a CatalogService over the given tag and
// ingredient repositories.
func NewCatalogService(tagRepository store.TagRepository, ingredientRepository store.IngredientRepository, logger *logger.Logger) CatalogService {
	return &catalogService{
		tagRepository:        tagRepository,
		ingredientRepository: ingredientRepository,
		logger:               logger,
	}
}

// validateName trims the candidate name and checks it against the shared
// name schema. Returns the trimmed name or a *ValidationError.
func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)

	fields := map[string]any{}
	if name != "" {
		fields[validators.FieldName] = name
	}
	if errs := validators.NameSchema.Validate(fields); errs != nil {
		return "", &ValidationError{Fields: errs}
	}

	return name, nil
}

// ListTags returns the caller's tags ordered by name descending. With
// assignedOnly set, only tags referenced by at least one of the caller's
// recipes are returned.
func (c *catalogService) ListTags(ctx context.Context, userID int64, assignedOnly bool) ([]models.Tag, error) {
	log := logger.FromContext(ctx)

	tags, err := c.tagRepository.ListTags(ctx, userID, assignedOnly)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("tag listing failed")
		return nil, fmt.Errorf("tag listing failed: %w", err)
	}

	return tags, nil
}

// CreateTag creates a tag owned by the caller. The name is trimmed and must
// be non-empty.
func (c *catalogService) CreateTag(ctx context.Context, userID int64, request models.NameRequest) (models.Tag, error) {
	log := logger.FromContext(ctx)

	name, err := validateName(request.Name)
	if err != nil {
		log.Error().Int64("user_id", userID).Msg("tag payload rejected")
		return models.Tag{}, err
	}

	tag, err := c.tagRepository.CreateTag(ctx, models.Tag{UserID: userID, Name: name})
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("tag creation ended with error")
		return models.Tag{}, fmt.Errorf("tag creation ended with error: %w", err)
	}

	return tag, nil
}

// UpdateTag renames one of the caller's tags. The name field must be present
// and non-empty; tags of other users behave like missing tags.
func (c *catalogService) UpdateTag(ctx context.Context, userID, tagID int64, update models.NameUpdate) (models.Tag, error) {
	log := logger.FromContext(ctx)

	if update.Name == nil {
		return models.Tag{}, newFieldError(validators.FieldName, "this field is required")
	}
	name, err := validateName(*update.Name)
	if err != nil {
		log.Error().Int64("user_id", userID).Int64("tag_id", tagID).Msg("tag payload rejected")
		return models.Tag{}, err
	}

	tag, err := c.tagRepository.UpdateTag(ctx, userID, tagID, name)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Int64("tag_id", tagID).Msg("tag update ended with error")
		return models.Tag{}, fmt.Errorf("tag update ended with error: %w", err)
	}

	return tag, nil
}

// DeleteTag removes one of the caller's tags. Memberships referencing the tag
// are removed by the schema's cascade rules; recipes themselves survive.
func (c *catalogService) DeleteTag(ctx context.Context, userID, tagID int64) error {
	log := logger.FromContext(ctx)

	if err := c.tagRepository.DeleteTag(ctx, userID, tagID); err != nil {
		log.Err(err).Int64("user_id", userID).Int64("tag_id", tagID).Msg("tag deletion ended with error")
		return fmt.Errorf("tag deletion ended with error: %w", err)
	}

	return nil
}

// ListIngredients returns the caller's ingredients ordered by name
// descending, optionally narrowed to those assigned to at least one recipe.
func (c *catalogService) ListIngredients(ctx context.Context, userID int64, assignedOnly bool) ([]models.Ingredient, error) {
	log := logger.FromContext(ctx)

	ingredients, err := c.ingredientRepository.ListIngredients(ctx, userID, assignedOnly)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("ingredient listing failed")
		return nil, fmt.Errorf("ingredient listing failed: %w", err)
	}

	return ingredients, nil
}

// CreateIngredient creates an ingredient owned by the caller.
func (c *catalogService) CreateIngredient(ctx context.Context, userID int64, request models.NameRequest) (models.Ingredient, error) {
	log := logger.FromContext(ctx)

	name, err := validateName(request.Name)
	if err != nil {
		log.Error().Int64("user_id", userID).Msg("ingredient payload rejected")
		return models.Ingredient{}, err
	}

	ingredient, err := c.ingredientRepository.CreateIngredient(ctx, models.Ingredient{UserID: userID, Name: name})
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("ingredient creation ended with error")
		return models.Ingredient{}, fmt.Errorf("ingredient creation ended with error: %w", err)
	}

	return ingredient, nil
}

// UpdateIngredient renames one of the caller's ingredients.
func (c *catalogService) UpdateIngredient(ctx context.Context, userID, ingredientID int64, update models.NameUpdate) (models.Ingredient, error) {
	log := logger.FromContext(ctx)

	if update.Name == nil {
		return models.Ingredient{}, newFieldError(validators.FieldName, "this field is required")
	}
	name, err := validateName(*update.Name)
	if err != nil {
		log.Error().Int64("user_id", userID).Int64("ingredient_id", ingredientID).Msg("ingredient payload rejected")
		return models.Ingredient{}, err
	}

	ingredient, err := c.ingredientRepository.UpdateIngredient(ctx, userID, ingredientID, name)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Int64("ingredient_id", ingredientID).Msg("ingredient update ended with error")
		return models.Ingredient{}, fmt.Errorf("ingredient update ended with error: %w", err)
	}

	return ingredient, nil
}

// DeleteIngredient removes one of the caller's ingredients.
func (c *catalogService) DeleteIngredient(ctx context.Context, userID, ingredientID int64) error {
	log := logger.FromContext(ctx)

	if err := c.ingredientRepository.DeleteIngredient(ctx, userID, ingredientID); err != nil {
		log.Err(err).Int64("user_id", userID).Int64("ingredient_id", ingredientID).Msg("ingredient deletion ended with error")
		return fmt.Errorf("ingredient deletion ended with error: %w", err)
	}

	return nil
}
