package models

// RegisterRequest is the wire payload of POST /api/user/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// TokenRequest is the wire payload of POST /api/user/token.
type TokenRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ProfileUpdate is the wire payload of PATCH /api/user/me.
// Nil fields retain the stored value. The account flags are deliberately not
// representable here; payloads that attempt to set them are rejected during
// decoding.
type ProfileUpdate struct {
	Name     *string `json:"name"`
	Password *string `json:"password"`
}

// NameRequest is the create payload shared by tags and ingredients.
type NameRequest struct {
	Name string `json:"name"`
}

// NameUpdate is the partial-update payload shared by tags and ingredients.
type NameUpdate struct {
	Name *string `json:"name"`
}
