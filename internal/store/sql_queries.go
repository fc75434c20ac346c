package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/vinay461as/recipi-api/models"
)

// psql is the shared squirrel statement builder configured for PostgreSQL
// dollar placeholders. Dynamic queries (filtered listings, partial updates)
// are built with it; fixed-shape statements stay as plain constants below.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	createUser = `INSERT INTO users (email, name, password_hash)
    VALUES ($1, $2, $3)
    RETURNING id, email, name, password_hash, is_active, is_staff, created_at;`

	findUserByEmail = `SELECT id, email, name, password_hash, is_active, is_staff, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT id, email, name, password_hash, is_active, is_staff, created_at
    FROM users
    WHERE id = $1;`

	updateUser = `UPDATE users
    SET name = $1, password_hash = $2
    WHERE id = $3
    RETURNING id, email, name, password_hash, is_active, is_staff, created_at;`

	createTag = `INSERT INTO tags (user_id, name)
    VALUES ($1, $2)
    RETURNING id, user_id, name;`

	updateTag = `UPDATE tags
    SET name = $1
    WHERE id = $2 AND user_id = $3
    RETURNING id, user_id, name;`

	deleteTag = `DELETE FROM tags
    WHERE id = $1 AND user_id = $2;`

	findTagsByIDs = `SELECT id, user_id, name
    FROM tags
    WHERE user_id = $1 AND id = ANY($2)
    ORDER BY id;`

	createIngredient = `INSERT INTO ingredients (user_id, name)
    VALUES ($1, $2)
    RETURNING id, user_id, name;`

	updateIngredient = `UPDATE ingredients
    SET name = $1
    WHERE id = $2 AND user_id = $3
    RETURNING id, user_id, name;`

	deleteIngredient = `DELETE FROM ingredients
    WHERE id = $1 AND user_id = $2;`

	findIngredientsByIDs = `SELECT id, user_id, name
    FROM ingredients
    WHERE user_id = $1 AND id = ANY($2)
    ORDER BY id;`

	createRecipe = `INSERT INTO recipes (user_id, title, time_minutes, price, link)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING id, user_id, title, time_minutes, price, link, image_path, created_at;`

	getRecipe = `SELECT id, user_id, title, time_minutes, price, link, image_path, created_at
    FROM recipes
    WHERE id = $1 AND user_id = $2;`

	deleteRecipe = `DELETE FROM recipes
    WHERE id = $1 AND user_id = $2;`

	setRecipeImage = `UPDATE recipes
    SET image_path = $1
    WHERE id = $2 AND user_id = $3
    RETURNING id, user_id, title, time_minutes, price, link, image_path, created_at;`

	recipeTagIDs = `SELECT recipe_id, tag_id
    FROM recipe_tags
    WHERE recipe_id = ANY($1)
    ORDER BY tag_id;`

	recipeIngredientIDs = `SELECT recipe_id, ingredient_id
    FROM recipe_ingredients
    WHERE recipe_id = ANY($1)
    ORDER BY ingredient_id;`

	deleteRecipeTags        = `DELETE FROM recipe_tags WHERE recipe_id = $1;`
	deleteRecipeIngredients = `DELETE FROM recipe_ingredients WHERE recipe_id = $1;`
)

// buildListNamedQuery builds the listing query shared by tags and
// ingredients: the user's rows ordered by name descending, optionally
// restricted to rows referenced by at least one of the user's own recipes.
//
// The assigned-only variant joins through the user's recipes (an inner join,
// not a bare existence check) and deduplicates with DISTINCT, so an entity
// referenced by two recipes of the same owner still appears exactly once.
func buildListNamedQuery(table, joinTable, joinColumn string, userID int64, assignedOnly bool) (string, []any, error) {
	builder := psql.
		Select("t.id", "t.user_id", "t.name").
		From(table + " t").
		Where(sq.Eq{"t.user_id": userID}).
		OrderBy("t.name DESC", "t.id DESC")

	if assignedOnly {
		builder = builder.
			Distinct().
			Join(joinTable + " m ON m." + joinColumn + " = t.id").
			Join("recipes r ON r.id = m.recipe_id AND r.user_id = t.user_id")
	}

	return builder.ToSql()
}

// buildListRecipesQuery builds the recipe listing query: the user's recipes
// ordered by ID descending, narrowed by the optional tag and ingredient ID
// sets. Each set matches recipes referencing ANY of its IDs; when both sets
// are present a recipe must match both. IN-subqueries keep the result free
// of join duplicates.
func buildListRecipesQuery(userID int64, filter models.RecipeFilter) (string, []any, error) {
	builder := psql.
		Select("r.id", "r.user_id", "r.title", "r.time_minutes", "r.price", "r.link", "r.image_path", "r.created_at").
		From("recipes r").
		Where(sq.Eq{"r.user_id": userID}).
		OrderBy("r.id DESC")

	if len(filter.TagIDs) > 0 {
		builder = builder.Where("r.id IN (SELECT recipe_id FROM recipe_tags WHERE tag_id = ANY(?))", filter.TagIDs)
	}
	if len(filter.IngredientIDs) > 0 {
		builder = builder.Where("r.id IN (SELECT recipe_id FROM recipe_ingredients WHERE ingredient_id = ANY(?))", filter.IngredientIDs)
	}

	return builder.ToSql()
}

// buildUpdateRecipeQuery builds the dynamic UPDATE for a partial recipe
// update. Only non-nil scalar fields become SET clauses; membership
// replacement is handled separately inside the repository transaction.
// Returns ok=false when the update carries no scalar changes.
func buildUpdateRecipeQuery(update models.RecipeUpdate) (query string, args []any, ok bool, err error) {
	builder := psql.Update("recipes")

	changed := false
	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
		changed = true
	}
	if update.TimeMinutes != nil {
		builder = builder.Set("time_minutes", *update.TimeMinutes)
		changed = true
	}
	if update.Price != nil {
		builder = builder.Set("price", *update.Price)
		changed = true
	}
	if update.Link != nil {
		builder = builder.Set("link", *update.Link)
		changed = true
	}

	if !changed {
		return "", nil, false, nil
	}

	query, args, err = builder.
		Where(sq.Eq{"id": update.RecipeID, "user_id": update.UserID}).
		ToSql()

	return query, args, true, err
}

// buildInsertMembershipQuery builds a multi-row INSERT into one of the
// membership join tables.
func buildInsertMembershipQuery(table, column string, recipeID int64, ids []int64) (string, []any, error) {
	builder := psql.Insert(table).Columns("recipe_id", column)
	for _, id := range ids {
		builder = builder.Values(recipeID, id)
	}

	return builder.ToSql()
}
