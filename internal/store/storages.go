package store

import (
	"context"
	"fmt"

	"github.com/vinay461as/recipi-api/internal/config"
	"github.com/vinay461as/recipi-api/internal/logger"
	"github.com/vinay461as/recipi-api/migrations"
)

// Storages aggregates every persistence backend the services depend on.
type Storages struct {
	UserRepository       UserRepository
	TagRepository        TagRepository
	IngredientRepository IngredientRepository
	RecipeRepository     RecipeRepository
	ImageStorage         ImageStorage
}

// NewStorages connects to PostgreSQL, applies pending migrations, and wires
// all repositories plus the image file store.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to postgres: %w", err)
	}

	if err := migrations.Migrate(db.DB); err != nil {
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	imageStorage, err := NewImageFileStorage(cfg.Files, log)
	if err != nil {
		return nil, fmt.Errorf("error creating image storage: %w", err)
	}

	return &Storages{
		UserRepository:       NewUserRepository(db, log),
		TagRepository:        NewTagRepository(db, log),
		IngredientRepository: NewIngredientRepository(db, log),
		RecipeRepository:     NewRecipeRepository(db, log),
		ImageStorage:         imageStorage,
	}, nil
}
