package service

import (
	"github.com/vinay461as/recipi-api/internal/config"
	"github.com/vinay461as/recipi-api/internal/logger"
	"github.com/vinay461as/recipi-api/internal/store"
)

type Services struct {
	AuthService    AuthService
	CatalogService CatalogService
	RecipeService  RecipeService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.App, logger),
		CatalogService: NewCatalogService(storages.TagRepository, storages.IngredientRepository, logger),
		RecipeService: NewRecipeService(
			storages.RecipeRepository,
			storages.TagRepository,
			storages.IngredientRepository,
			storages.ImageStorage,
			logger,
		),
		AppInfoService: appInfoService,
	}, nil
}
