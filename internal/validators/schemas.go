package validators

// Field name constants shared by the entity schemas and their callers.
const (
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldName        = "name"
	FieldTitle       = "title"
	FieldTimeMinutes = "time_minutes"
	FieldPrice       = "price"
	FieldTags        = "tags"
	FieldIngredients = "ingredients"
)

// UserSchema validates registration payloads.
// Name is optional: accounts may be registered without a display name.
var UserSchema = Schema{
	FieldEmail:    {Required: true, Check: NonEmptyString},
	FieldPassword: {Required: true, Check: MinLenString(8)},
	FieldName:     {},
}

// CredentialsSchema validates token-issuance payloads.
var CredentialsSchema = Schema{
	FieldEmail:    {Required: true, Check: NonEmptyString},
	FieldPassword: {Required: true, Check: NonEmptyString},
}

// NameSchema validates tag and ingredient payloads, which share a single
// non-empty name field.
var NameSchema = Schema{
	FieldName: {Required: true, Check: NonEmptyString},
}

// RecipeSchema validates recipe create/replace payloads.
// The tag and ingredient ID sets have no intrinsic constraints here;
// ownership of the referenced IDs is enforced by the service layer.
var RecipeSchema = Schema{
	FieldTitle:       {Required: true, Check: NonEmptyString},
	FieldTimeMinutes: {Required: true, Check: NonNegativeInt},
	FieldPrice:       {Required: true, Check: NonNegativePrice},
	FieldTags:        {},
	FieldIngredients: {},
}
