package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
	"github.com/vinay461as/recipi-api/internal/logger"
	"github.com/vinay461as/recipi-api/internal/service"
	"github.com/vinay461as/recipi-api/models"
)

// testUserID is the caller the stub auth service authenticates by default.
const testUserID int64 = 1

// testAuthHeader passes the default stub token check.
const testAuthHeader = "Bearer test-token"

// ─────────────────────────────────────────────
// Stub: service.AuthService
// ─────────────────────────────────────────────

type stubAuthService struct {
	registerFn      func(ctx context.Context, request models.RegisterRequest) (models.User, error)
	loginFn         func(ctx context.Context, request models.TokenRequest) (models.User, error)
	createTokenFn   func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn    func(ctx context.Context, tokenString string) (models.Token, error)
	getUserFn       func(ctx context.Context, userID int64) (models.User, error)
	updateProfileFn func(ctx context.Context, userID int64, update models.ProfileUpdate) (models.User, error)
}

func (s *stubAuthService) RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	if s.registerFn != nil {
		return s.registerFn(ctx, request)
	}
	return models.User{UserID: testUserID, Email: request.Email, Name: request.Name}, nil
}

func (s *stubAuthService) Login(ctx context.Context, request models.TokenRequest) (models.User, error) {
	if s.loginFn != nil {
		return s.loginFn(ctx, request)
	}
	return models.User{UserID: testUserID, Email: request.Email}, nil
}

func (s *stubAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if s.createTokenFn != nil {
		return s.createTokenFn(ctx, user)
	}
	return models.Token{SignedString: "signed-token", UserID: user.UserID}, nil
}

func (s *stubAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if s.parseTokenFn != nil {
		return s.parseTokenFn(ctx, tokenString)
	}
	if tokenString != "test-token" {
		return models.Token{}, service.ErrTokenIsExpiredOrInvalid
	}
	return models.Token{SignedString: tokenString, UserID: testUserID}, nil
}

func (s *stubAuthService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	if s.getUserFn != nil {
		return s.getUserFn(ctx, userID)
	}
	return models.User{UserID: userID, Email: "user@example.com", Name: "User"}, nil
}

func (s *stubAuthService) UpdateProfile(ctx context.Context, userID int64, update models.ProfileUpdate) (models.User, error) {
	if s.updateProfileFn != nil {
		return s.updateProfileFn(ctx, userID, update)
	}
	return models.User{UserID: userID}, nil
}

// ─────────────────────────────────────────────
// Stub: service.CatalogService
// ─────────────────────────────────────────────

type stubCatalogService struct {
	listTagsFn   func(ctx context.Context, userID int64, assignedOnly bool) ([]models.Tag, error)
	createTagFn  func(ctx context.Context, userID int64, request models.NameRequest) (models.Tag, error)
	updateTagFn  func(ctx context.Context, userID, tagID int64, update models.NameUpdate) (models.Tag, error)
	deleteTagFn  func(ctx context.Context, userID, tagID int64) error
	listIngrFn   func(ctx context.Context, userID int64, assignedOnly bool) ([]models.Ingredient, error)
	createIngrFn func(ctx context.Context, userID int64, request models.NameRequest) (models.Ingredient, error)
	updateIngrFn func(ctx context.Context, userID, ingredientID int64, update models.NameUpdate) (models.Ingredient, error)
	deleteIngrFn func(ctx context.Context, userID, ingredientID int64) error
}

func (s *stubCatalogService) ListTags(ctx context.Context, userID int64, assignedOnly bool) ([]models.Tag, error) {
	if s.listTagsFn != nil {
		return s.listTagsFn(ctx, userID, assignedOnly)
	}
	return []models.Tag{}, nil
}

func (s *stubCatalogService) CreateTag(ctx context.Context, userID int64, request models.NameRequest) (models.Tag, error) {
	if s.createTagFn != nil {
		return s.createTagFn(ctx, userID, request)
	}
	return models.Tag{TagID: 1, UserID: userID, Name: request.Name}, nil
}

func (s *stubCatalogService) UpdateTag(ctx context.Context, userID, tagID int64, update models.NameUpdate) (models.Tag, error) {
	if s.updateTagFn != nil {
		return s.updateTagFn(ctx, userID, tagID, update)
	}
	return models.Tag{TagID: tagID, UserID: userID}, nil
}

func (s *stubCatalogService) DeleteTag(ctx context.Context, userID, tagID int64) error {
	if s.deleteTagFn != nil {
		return s.deleteTagFn(ctx, userID, tagID)
	}
	return nil
}

func (s *stubCatalogService) ListIngredients(ctx context.Context, userID int64, assignedOnly bool) ([]models.Ingredient, error) {
	if s.listIngrFn != nil {
		return s.listIngrFn(ctx, userID, assignedOnly)
	}
	return []models.Ingredient{}, nil
}

func (s *stubCatalogService) CreateIngredient(ctx context.Context, userID int64, request models.NameRequest) (models.Ingredient, error) {
	if s.createIngrFn != nil {
		return s.createIngrFn(ctx, userID, request)
	}
	return models.Ingredient{IngredientID: 1, UserID: userID, Name: request.Name}, nil
}

func (s *stubCatalogService) UpdateIngredient(ctx context.Context, userID, ingredientID int64, update models.NameUpdate) (models.Ingredient, error) {
	if s.updateIngrFn != nil {
		return s.updateIngrFn(ctx, userID, ingredientID, update)
	}
	return models.Ingredient{IngredientID: ingredientID, UserID: userID}, nil
}

func (s *stubCatalogService) DeleteIngredient(ctx context.Context, userID, ingredientID int64) error {
	if s.deleteIngrFn != nil {
		return s.deleteIngrFn(ctx, userID, ingredientID)
	}
	return nil
}

// ─────────────────────────────────────────────
// Stub: service.RecipeService
// ─────────────────────────────────────────────

type stubRecipeService struct {
	listFn        func(ctx context.Context, userID int64, filter models.RecipeFilter) ([]models.Recipe, error)
	getFn         func(ctx context.Context, userID, recipeID int64) (models.Recipe, error)
	getDetailFn   func(ctx context.Context, userID, recipeID int64) (models.RecipeDetail, error)
	createFn      func(ctx context.Context, userID int64, input models.RecipeUpdate) (models.Recipe, error)
	updateFn      func(ctx context.Context, input models.RecipeUpdate, partial bool) (models.Recipe, error)
	deleteFn      func(ctx context.Context, userID, recipeID int64) error
	attachImageFn func(ctx context.Context, userID, recipeID int64, fileName string, content io.Reader) (models.Recipe, error)
}

func (s *stubRecipeService) ListRecipes(ctx context.Context, userID int64, filter models.RecipeFilter) ([]models.Recipe, error) {
	if s.listFn != nil {
		return s.listFn(ctx, userID, filter)
	}
	return []models.Recipe{}, nil
}

func (s *stubRecipeService) GetRecipe(ctx context.Context, userID, recipeID int64) (models.Recipe, error) {
	if s.getFn != nil {
		return s.getFn(ctx, userID, recipeID)
	}
	return models.Recipe{RecipeID: recipeID, UserID: userID}, nil
}

func (s *stubRecipeService) GetRecipeDetail(ctx context.Context, userID, recipeID int64) (models.RecipeDetail, error) {
	if s.getDetailFn != nil {
		return s.getDetailFn(ctx, userID, recipeID)
	}
	return models.RecipeDetail{RecipeID: recipeID, Tags: []models.Tag{}, Ingredients: []models.Ingredient{}}, nil
}

func (s *stubRecipeService) CreateRecipe(ctx context.Context, userID int64, input models.RecipeUpdate) (models.Recipe, error) {
	if s.createFn != nil {
		return s.createFn(ctx, userID, input)
	}
	return models.Recipe{RecipeID: 1, UserID: userID}, nil
}

func (s *stubRecipeService) UpdateRecipe(ctx context.Context, input models.RecipeUpdate, partial bool) (models.Recipe, error) {
	if s.updateFn != nil {
		return s.updateFn(ctx, input, partial)
	}
	return models.Recipe{RecipeID: input.RecipeID, UserID: input.UserID}, nil
}

func (s *stubRecipeService) DeleteRecipe(ctx context.Context, userID, recipeID int64) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, userID, recipeID)
	}
	return nil
}

func (s *stubRecipeService) AttachImage(ctx context.Context, userID, recipeID int64, fileName string, content io.Reader) (models.Recipe, error) {
	if s.attachImageFn != nil {
		return s.attachImageFn(ctx, userID, recipeID, fileName, content)
	}
	return models.Recipe{RecipeID: recipeID, UserID: userID, ImagePath: "uploads/stub.jpg"}, nil
}

// ─────────────────────────────────────────────
// Stub: service.AppInfoService
// ─────────────────────────────────────────────

type stubAppInfoService struct {
	versionFn func(ctx context.Context) string
}

func (s *stubAppInfoService) GetAppVersion(ctx context.Context) string {
	if s.versionFn != nil {
		return s.versionFn(ctx)
	}
	return "test"
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func defaultServices() *service.Services {
	return &service.Services{
		AuthService:    &stubAuthService{},
		CatalogService: &stubCatalogService{},
		RecipeService:  &stubRecipeService{},
		AppInfoService: &stubAppInfoService{},
	}
}

func newTestRouter(services *service.Services) *chi.Mux {
	return NewHandler(services, logger.Nop()).Init()
}

// doRequest runs req through a freshly initialized router and returns the
// recorded response.
func doRequest(router *chi.Mux, req *http.Request) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

// authorize attaches the default test bearer token.
func authorize(req *http.Request) *http.Request {
	req.Header.Set("Authorization", testAuthHeader)
	return req
}

var errService = errors.New("service error")
