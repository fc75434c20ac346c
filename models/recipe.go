package models

import "time"

// Recipe is the central domain entity: a dish description owned by exactly
// one user, referencing sets of the owner's tags and ingredients.
//
// TagIDs and IngredientIDs carry the many-to-many membership. Membership is
// deduplicated and unordered. Both referenced sets must belong to the same
// owner as the recipe itself; cross-owner references are rejected at the
// service layer.
type Recipe struct {
	// RecipeID is the server-assigned identifier. Identifiers are
	// monotonically increasing, so "id descending" doubles as
	// "most recently created first".
	RecipeID int64 `json:"id"`

	// UserID is the owning user. Forced to the authenticated caller on
	// creation regardless of any owner value in the input payload.
	UserID int64 `json:"-"`

	// Title is the display title. Required, non-empty after trimming.
	Title string `json:"title"`

	// TimeMinutes is the preparation time. Must be >= 0.
	TimeMinutes int `json:"time_minutes"`

	// Price is the cost of the dish with two-decimal precision. Must be >= 0.
	Price float64 `json:"price"`

	// Link is an optional reference to an external resource.
	Link string `json:"link"`

	// ImagePath is the storage path of the uploaded recipe image,
	// empty when no image has been uploaded yet.
	ImagePath string `json:"-"`

	CreatedAt time.Time `json:"-"`

	TagIDs        []int64 `json:"tags"`
	IngredientIDs []int64 `json:"ingredients"`
}

// TableName returns the name of the database table
// associated with the Recipe model.
func (r Recipe) TableName() string {
	return "recipes"
}

// RecipeFilter narrows a recipe listing. Zero value means "no filtering".
//
// Within each field the match is an OR (a recipe qualifies when it references
// any of the listed IDs); across fields the match is an AND (when both sets
// are provided the recipe must satisfy both).
type RecipeFilter struct {
	TagIDs        []int64
	IngredientIDs []int64
}

// Empty reports whether the filter applies no narrowing at all.
func (f RecipeFilter) Empty() bool {
	return len(f.TagIDs) == 0 && len(f.IngredientIDs) == 0
}

// RecipeUpdate describes a partial (merge) update of a recipe.
// Nil fields retain the stored value. Non-nil Tags/Ingredients fully replace
// the corresponding membership set.
type RecipeUpdate struct {
	RecipeID int64 `json:"-"`
	UserID   int64 `json:"-"`

	Title       *string  `json:"title"`
	TimeMinutes *int     `json:"time_minutes"`
	Price       *float64 `json:"price"`
	Link        *string  `json:"link"`

	Tags        *[]int64 `json:"tags"`
	Ingredients *[]int64 `json:"ingredients"`
}
