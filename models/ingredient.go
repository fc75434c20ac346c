package models

// Ingredient is a user-defined ingredient that recipes reference.
// Ownership rules are the same as for [Tag]: exactly one owner, set at
// creation, immutable afterwards.
type Ingredient struct {
	IngredientID int64  `json:"id"`
	UserID       int64  `json:"-"`
	Name         string `json:"name"`
}

// TableName returns the name of the database table
// associated with the Ingredient model.
func (i Ingredient) TableName() string {
	return "ingredients"
}
