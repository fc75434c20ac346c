package models

// Tag is a user-defined label attached to recipes.
// A tag belongs to exactly one user; the owner is set at creation time and is
// never changed by update payloads.
type Tag struct {
	TagID  int64  `json:"id"`
	UserID int64  `json:"-"`
	Name   string `json:"name"`
}

// TableName returns the name of the database table
// associated with the Tag model.
func (t Tag) TableName() string {
	return "tags"
}
