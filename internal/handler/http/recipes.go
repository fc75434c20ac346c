package http

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/vinay461as/recipi-api/internal/logger"
	"github.com/vinay461as/recipi-api/internal/service"
	"github.com/vinay461as/recipi-api/internal/store"
	"github.com/vinay461as/recipi-api/internal/utils"
	"github.com/vinay461as/recipi-api/internal/validators"
	"github.com/vinay461as/recipi-api/models"
)

// maxImageUploadSize bounds the multipart form memory of an image upload.
const maxImageUploadSize = 10 << 20

func (h *Handler) listRecipes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := h.callerID(w, r)
	if !ok {
		return
	}

	tagIDs, ok := idListParam(r, "tags")
	if !ok {
		h.writeError(w, r, &service.ValidationError{
			Fields: validators.FieldErrors{validators.FieldTags: "filter values must be positive integers"},
		})
		return
	}
	ingredientIDs, ok := idListParam(r, "ingredients")
	if !ok {
		h.writeError(w, r, &service.ValidationError{
			Fields: validators.FieldErrors{validators.FieldIngredients: "filter values must be positive integers"},
		})
		return
	}

	recipes, err := h.services.RecipeService.ListRecipes(ctx, userID, models.RecipeFilter{
		TagIDs:        tagIDs,
		IngredientIDs: ingredientIDs,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, recipes, http.StatusOK)
}

func (h *Handler) createRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := h.callerID(w, r)
	if !ok {
		return
	}

	var input models.RecipeUpdate
	if !h.decodeJSON(w, r, &input) {
		return
	}

	recipe, err := h.services.RecipeService.CreateRecipe(ctx, userID, input)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, recipe, http.StatusCreated)
}

func (h *Handler) getRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := h.callerID(w, r)
	if !ok {
		return
	}

	recipeID, ok := idParam(r, "recipeID")
	if !ok {
		h.writeError(w, r, store.ErrRecipeNotFound)
		return
	}

	detail, err := h.services.RecipeService.GetRecipeDetail(ctx, userID, recipeID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, detail, http.StatusOK)
}

func (h *Handler) patchRecipe(w http.ResponseWriter, r *http.Request) {
	h.updateRecipe(w, r, true)
}

func (h *Handler) replaceRecipe(w http.ResponseWriter, r *http.Request) {
	h.updateRecipe(w, r, false)
}

func (h *Handler) updateRecipe(w http.ResponseWriter, r *http.Request, partial bool) {
	ctx := r.Context()

	userID, ok := h.callerID(w, r)
	if !ok {
		return
	}

	recipeID, ok := idParam(r, "recipeID")
	if !ok {
		h.writeError(w, r, store.ErrRecipeNotFound)
		return
	}

	var input models.RecipeUpdate
	if !h.decodeJSON(w, r, &input) {
		return
	}
	input.RecipeID = recipeID
	input.UserID = userID

	recipe, err := h.services.RecipeService.UpdateRecipe(ctx, input, partial)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, recipe, http.StatusOK)
}

func (h *Handler) deleteRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := h.callerID(w, r)
	if !ok {
		return
	}

	recipeID, ok := idParam(r, "recipeID")
	if !ok {
		h.writeError(w, r, store.ErrRecipeNotFound)
		return
	}

	if err := h.services.RecipeService.DeleteRecipe(ctx, userID, recipeID); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// uploadRecipeImage accepts a multipart form with an "image" part, stores the
// file, and records its path on the recipe.
func (h *Handler) uploadRecipeImage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := h.callerID(w, r)
	if !ok {
		return
	}

	recipeID, ok := idParam(r, "recipeID")
	if !ok {
		h.writeError(w, r, store.ErrRecipeNotFound)
		return
	}

	if err := r.ParseMultipartForm(maxImageUploadSize); err != nil {
		log.Err(err).Msg("invalid multipart form")
		utils.WriteJSON(w, models.APIError{Error: "invalid multipart form"}, http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		log.Err(err).Msg("image part is missing")
		h.writeError(w, r, &service.ValidationError{
			Fields: validators.FieldErrors{"image": "this field is required"},
		})
		return
	}
	defer file.Close()

	if !isImageFileName(header.Filename) {
		h.writeError(w, r, &service.ValidationError{
			Fields: validators.FieldErrors{"image": "upload a valid image file"},
		})
		return
	}

	recipe, err := h.services.RecipeService.AttachImage(ctx, userID, recipeID, header.Filename, file)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.RecipeImageResponse{
		RecipeID: recipe.RecipeID,
		Image:    recipe.ImagePath,
	}, http.StatusOK)
}

// isImageFileName reports whether the uploaded file name carries a supported
// image extension.
func isImageFileName(fileName string) bool {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp":
		return true
	}
	return false
}
