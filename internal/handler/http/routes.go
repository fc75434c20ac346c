package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/token", h.token)
	})

	// routes behind bearer-token authentication
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/api/user/me", func(r chi.Router) {
			r.Get("/", h.getProfile)
			r.Patch("/", h.updateProfile)
		})

		r.Route("/api/tags", func(r chi.Router) {
			r.Get("/", h.listTags)
			r.Post("/", h.createTag)
			r.Patch("/{tagID}", h.updateTag)
			r.Delete("/{tagID}", h.deleteTag)
		})

		r.Route("/api/ingredients", func(r chi.Router) {
			r.Get("/", h.listIngredients)
			r.Post("/", h.createIngredient)
			r.Patch("/{ingredientID}", h.updateIngredient)
			r.Delete("/{ingredientID}", h.deleteIngredient)
		})

		r.Route("/api/recipes", func(r chi.Router) {
			r.Get("/", h.listRecipes)
			r.Post("/", h.createRecipe)
			r.Get("/{recipeID}", h.getRecipe)
			r.Patch("/{recipeID}", h.patchRecipe)
			r.Put("/{recipeID}", h.replaceRecipe)
			r.Delete("/{recipeID}", h.deleteRecipe)
			r.Post("/{recipeID}/image", h.uploadRecipeImage)
		})
	})

	router.Get("/api/version", h.getServerVersion)
	router.Method(http.MethodGet, "/metrics", promhttp.Handler())

	return router
}
