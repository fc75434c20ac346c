package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vinay461as/recipi-api/internal/logger"
	"github.com/vinay461as/recipi-api/models"
)

// recipeRepository is the PostgreSQL-backed implementation of
// [RecipeRepository]. Recipes and their membership join tables are written
// inside one transaction so a recipe is never visible with a half-replaced
// tag or ingredient set.
type recipeRepository struct {
	logger *logger.Logger
	db     *DB
}

// lockRecipe pins the target row for the duration of an update transaction
// and doubles as the owner-scoped existence check.
const lockRecipe = `SELECT id FROM recipes WHERE id = $1 AND user_id = $2 FOR UPDATE;`

// NewRecipeRepository constructs a [RecipeRepository] backed by the provided
// database connection and logger.
func NewRecipeRepository(db *DB, logger *logger.Logger) RecipeRepository {
	logger.Debug().Msg("creating recipe repository")
	return &recipeRepository{
		db:     db,
		logger: logger,
	}
}

// ListRecipes returns the user's recipes ordered by ID descending, narrowed
// by the optional filter, with membership ID sets attached.
func (r *recipeRepository) ListRecipes(ctx context.Context, userID int64, filter models.RecipeFilter) ([]models.Recipe, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListRecipesQuery(userID, filter)
	if err != nil {
		log.Err(err).Str("func", "*recipeRepository.ListRecipes").Int64("user_id", userID).Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*recipeRepository.ListRecipes").Int64("user_id", userID).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	recipes := make([]models.Recipe, 0, 16)
	for rows.Next() {
		var recipe models.Recipe
		if err := rows.Scan(&recipe.RecipeID, &recipe.UserID, &recipe.Title, &recipe.TimeMinutes, &recipe.Price, &recipe.Link, &recipe.ImagePath, &recipe.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		recipes = append(recipes, recipe)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	if err := r.attachMemberships(ctx, recipes); err != nil {
		return nil, err
	}

	return recipes, nil
}

// GetRecipe retrieves one recipe owned by the user, with membership ID sets
// attached. Returns [ErrRecipeNotFound] when the recipe is absent or owned
// by someone else.
func (r *recipeRepository) GetRecipe(ctx context.Context, userID, recipeID int64) (models.Recipe, error) {
	log := logger.FromContext(ctx)

	var recipe models.Recipe
	row := r.db.QueryRowContext(ctx, getRecipe, recipeID, userID)
	if err := row.Scan(&recipe.RecipeID, &recipe.UserID, &recipe.Title, &recipe.TimeMinutes, &recipe.Price, &recipe.Link, &recipe.ImagePath, &recipe.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Recipe{}, ErrRecipeNotFound
		}

		log.Err(err).Str("func", "*recipeRepository.GetRecipe").Int64("user_id", userID).Int64("recipe_id", recipeID).Msg("error scanning recipe row")
		return models.Recipe{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	recipes := []models.Recipe{recipe}
	if err := r.attachMemberships(ctx, recipes); err != nil {
		return models.Recipe{}, err
	}

	return recipes[0], nil
}

// CreateRecipe persists a new recipe and its membership sets in one
// transaction. The owner and the referenced ID sets are taken from the
// model; referenced IDs are assumed to be validated by the caller.
func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe models.Recipe) (models.Recipe, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*recipeRepository.CreateRecipe").Int64("user_id", recipe.UserID).Msg("failed to begin transaction")
		return models.Recipe{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	var created models.Recipe
	row := tx.QueryRowContext(ctx, createRecipe, recipe.UserID, recipe.Title, recipe.TimeMinutes, recipe.Price, recipe.Link)
	if err := row.Scan(&created.RecipeID, &created.UserID, &created.Title, &created.TimeMinutes, &created.Price, &created.Link, &created.ImagePath, &created.CreatedAt); err != nil {
		log.Err(err).Str("func", "*recipeRepository.CreateRecipe").Int64("user_id", recipe.UserID).Msg("error creating recipe")
		return models.Recipe{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := insertMemberships(ctx, tx, "recipe_tags", "tag_id", created.RecipeID, recipe.TagIDs); err != nil {
		return models.Recipe{}, err
	}
	if err := insertMemberships(ctx, tx, "recipe_ingredients", "ingredient_id", created.RecipeID, recipe.IngredientIDs); err != nil {
		return models.Recipe{}, err
	}

	if err := tx.Commit(); err != nil {
		return models.Recipe{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	created.TagIDs = append([]int64{}, recipe.TagIDs...)
	created.IngredientIDs = append([]int64{}, recipe.IngredientIDs...)

	return created, nil
}

// UpdateRecipe applies a partial update in one transaction: nil fields keep
// their stored values, non-nil membership sets fully replace the stored
// sets. Returns the updated recipe with memberships attached, or
// [ErrRecipeNotFound] when the recipe is absent or owned by someone else.
func (r *recipeRepository) UpdateRecipe(ctx context.Context, update models.RecipeUpdate) (models.Recipe, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*recipeRepository.UpdateRecipe").Int64("user_id", update.UserID).Msg("failed to begin transaction")
		return models.Recipe{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	var lockedID int64
	if err := tx.QueryRowContext(ctx, lockRecipe, update.RecipeID, update.UserID).Scan(&lockedID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Recipe{}, ErrRecipeNotFound
		}

		log.Err(err).Str("func", "*recipeRepository.UpdateRecipe").Int64("user_id", update.UserID).Int64("recipe_id", update.RecipeID).Msg("error locking recipe row")
		return models.Recipe{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	query, args, hasScalarChanges, err := buildUpdateRecipeQuery(update)
	if err != nil {
		return models.Recipe{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if hasScalarChanges {
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).Str("func", "*recipeRepository.UpdateRecipe").Int64("recipe_id", update.RecipeID).Msg("error updating recipe")
			return models.Recipe{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if update.Tags != nil {
		if _, err := tx.ExecContext(ctx, deleteRecipeTags, update.RecipeID); err != nil {
			return models.Recipe{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if err := insertMemberships(ctx, tx, "recipe_tags", "tag_id", update.RecipeID, *update.Tags); err != nil {
			return models.Recipe{}, err
		}
	}
	if update.Ingredients != nil {
		if _, err := tx.ExecContext(ctx, deleteRecipeIngredients, update.RecipeID); err != nil {
			return models.Recipe{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if err := insertMemberships(ctx, tx, "recipe_ingredients", "ingredient_id", update.RecipeID, *update.Ingredients); err != nil {
			return models.Recipe{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return models.Recipe{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return r.GetRecipe(ctx, update.UserID, update.RecipeID)
}

// DeleteRecipe removes a recipe owned by the user; membership rows go with
// it via the foreign-key cascade. Returns [ErrRecipeNotFound] when the
// recipe is absent or owned by someone else.
func (r *recipeRepository) DeleteRecipe(ctx context.Context, userID, recipeID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteRecipe, recipeID, userID)
	if err != nil {
		log.Err(err).Str("func", "*recipeRepository.DeleteRecipe").Int64("user_id", userID).Int64("recipe_id", recipeID).Msg("error deleting recipe")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrRecipeNotFound
	}

	return nil
}

// SetRecipeImage stores the image path on a recipe owned by the user.
// Returns [ErrRecipeNotFound] when the recipe is absent or owned by someone
// else.
func (r *recipeRepository) SetRecipeImage(ctx context.Context, userID, recipeID int64, imagePath string) (models.Recipe, error) {
	log := logger.FromContext(ctx)

	var recipe models.Recipe
	row := r.db.QueryRowContext(ctx, setRecipeImage, imagePath, recipeID, userID)
	if err := row.Scan(&recipe.RecipeID, &recipe.UserID, &recipe.Title, &recipe.TimeMinutes, &recipe.Price, &recipe.Link, &recipe.ImagePath, &recipe.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Recipe{}, ErrRecipeNotFound
		}

		log.Err(err).Str("func", "*recipeRepository.SetRecipeImage").Int64("user_id", userID).Int64("recipe_id", recipeID).Msg("error setting recipe image")
		return models.Recipe{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	recipes := []models.Recipe{recipe}
	if err := r.attachMemberships(ctx, recipes); err != nil {
		return models.Recipe{}, err
	}

	return recipes[0], nil
}

// attachMemberships loads the tag and ingredient ID sets for the given
// recipes in two queries and fills the corresponding slices in place.
// Slices are always initialised so empty memberships serialize as [].
func (r *recipeRepository) attachMemberships(ctx context.Context, recipes []models.Recipe) error {
	byID := make(map[int64]*models.Recipe, len(recipes))
	recipeIDs := make([]int64, 0, len(recipes))
	for i := range recipes {
		recipes[i].TagIDs = []int64{}
		recipes[i].IngredientIDs = []int64{}
		byID[recipes[i].RecipeID] = &recipes[i]
		recipeIDs = append(recipeIDs, recipes[i].RecipeID)
	}

	if len(recipeIDs) == 0 {
		return nil
	}

	if err := r.loadMembership(ctx, recipeTagIDs, recipeIDs, func(recipeID, tagID int64) {
		if recipe, ok := byID[recipeID]; ok {
			recipe.TagIDs = append(recipe.TagIDs, tagID)
		}
	}); err != nil {
		return err
	}

	return r.loadMembership(ctx, recipeIngredientIDs, recipeIDs, func(recipeID, ingredientID int64) {
		if recipe, ok := byID[recipeID]; ok {
			recipe.IngredientIDs = append(recipe.IngredientIDs, ingredientID)
		}
	})
}

func (r *recipeRepository) loadMembership(ctx context.Context, query string, recipeIDs []int64, add func(recipeID, memberID int64)) error {
	rows, err := r.db.QueryContext(ctx, query, recipeIDs)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var recipeID, memberID int64
		if err := rows.Scan(&recipeID, &memberID); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		add(recipeID, memberID)
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return nil
}

func insertMemberships(ctx context.Context, tx *sql.Tx, table, column string, recipeID int64, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	query, args, err := buildInsertMembershipQuery(table, column, recipeID, ids)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
