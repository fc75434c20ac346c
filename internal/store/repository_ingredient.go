package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vinay461as/recipi-api/internal/logger"
	"github.com/vinay461as/recipi-api/models"
)

// ingredientRepository is the PostgreSQL-backed implementation of
// [IngredientRepository]. It mirrors the tag repository: same owner-scoping,
// same ordering, same assigned-only join.
type ingredientRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewIngredientRepository constructs an [IngredientRepository] backed by the
// provided database connection and logger.
func NewIngredientRepository(db *DB, logger *logger.Logger) IngredientRepository {
	logger.Debug().Msg("creating ingredient repository")
	return &ingredientRepository{
		db:     db,
		logger: logger,
	}
}

// ListIngredients returns the user's ingredients ordered by name descending.
// With assignedOnly set, only ingredients referenced by at least one of the
// user's own recipes are returned, each exactly once.
func (r *ingredientRepository) ListIngredients(ctx context.Context, userID int64, assignedOnly bool) ([]models.Ingredient, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListNamedQuery("ingredients", "recipe_ingredients", "ingredient_id", userID, assignedOnly)
	if err != nil {
		log.Err(err).Str("func", "*ingredientRepository.ListIngredients").Int64("user_id", userID).Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*ingredientRepository.ListIngredients").Int64("user_id", userID).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return scanIngredients(rows)
}

// CreateIngredient persists a new ingredient for the owner set on the model.
func (r *ingredientRepository) CreateIngredient(ctx context.Context, ingredient models.Ingredient) (models.Ingredient, error) {
	log := logger.FromContext(ctx)

	var created models.Ingredient
	row := r.db.QueryRowContext(ctx, createIngredient, ingredient.UserID, ingredient.Name)
	if err := row.Scan(&created.IngredientID, &created.UserID, &created.Name); err != nil {
		log.Err(err).Str("func", "*ingredientRepository.CreateIngredient").Int64("user_id", ingredient.UserID).Msg("error creating ingredient")
		return models.Ingredient{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// UpdateIngredient renames an ingredient owned by the user.
// Returns [ErrIngredientNotFound] when absent or owned by someone else.
func (r *ingredientRepository) UpdateIngredient(ctx context.Context, userID, ingredientID int64, name string) (models.Ingredient, error) {
	log := logger.FromContext(ctx)

	var updated models.Ingredient
	row := r.db.QueryRowContext(ctx, updateIngredient, name, ingredientID, userID)
	if err := row.Scan(&updated.IngredientID, &updated.UserID, &updated.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Ingredient{}, ErrIngredientNotFound
		}

		log.Err(err).Str("func", "*ingredientRepository.UpdateIngredient").Int64("user_id", userID).Int64("ingredient_id", ingredientID).Msg("error updating ingredient")
		return models.Ingredient{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

// DeleteIngredient removes an ingredient owned by the user.
// Returns [ErrIngredientNotFound] when absent or owned by someone else.
func (r *ingredientRepository) DeleteIngredient(ctx context.Context, userID, ingredientID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteIngredient, ingredientID, userID)
	if err != nil {
		log.Err(err).Str("func", "*ingredientRepository.DeleteIngredient").Int64("user_id", userID).Int64("ingredient_id", ingredientID).Msg("error deleting ingredient")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrIngredientNotFound
	}

	return nil
}

// FindIngredientsByIDs returns the subset of ids that exist and belong to
// the user, ordered by ID.
func (r *ingredientRepository) FindIngredientsByIDs(ctx context.Context, userID int64, ids []int64) ([]models.Ingredient, error) {
	log := logger.FromContext(ctx)

	if len(ids) == 0 {
		return []models.Ingredient{}, nil
	}

	rows, err := r.db.QueryContext(ctx, findIngredientsByIDs, userID, ids)
	if err != nil {
		log.Err(err).Str("func", "*ingredientRepository.FindIngredientsByIDs").Int64("user_id", userID).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return scanIngredients(rows)
}

func scanIngredients(rows *sql.Rows) ([]models.Ingredient, error) {
	ingredients := make([]models.Ingredient, 0, 16)

	for rows.Next() {
		var ingredient models.Ingredient
		if err := rows.Scan(&ingredient.IngredientID, &ingredient.UserID, &ingredient.Name); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		ingredients = append(ingredients, ingredient)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return ingredients, nil
}
