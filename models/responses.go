package models

// TokenResponse is the body of a successful POST /api/user/token call.
type TokenResponse struct {
	Token string `json:"token"`
}

// RecipeDetail is the single-resource shape of a recipe: the referenced tags
// and ingredients are expanded into full objects instead of bare IDs.
// Collection listings use the [Recipe] shape with ID arrays.
type RecipeDetail struct {
	RecipeID    int64        `json:"id"`
	Title       string       `json:"title"`
	TimeMinutes int          `json:"time_minutes"`
	Price       float64      `json:"price"`
	Link        string       `json:"link"`
	Tags        []Tag        `json:"tags"`
	Ingredients []Ingredient `json:"ingredients"`
}

// RecipeImageResponse is the body returned after a recipe image upload.
type RecipeImageResponse struct {
	RecipeID int64  `json:"id"`
	Image    string `json:"image"`
}

// APIError is the uniform error body of every 4xx/5xx response.
// Fields carries field-level validation messages when applicable.
type APIError struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}
