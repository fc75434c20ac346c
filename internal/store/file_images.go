package store

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/vinay461as/recipi-api/internal/config"
	"github.com/vinay461as/recipi-api/internal/logger"
)

// imageFileStorage keeps uploaded recipe images on the local filesystem
// under a configured directory. Only the relative path is stored on the
// recipe row, so the directory can be relocated without touching the
// database.
type imageFileStorage struct {
	dir    string
	logger *logger.Logger
}

// NewImageFileStorage constructs an [ImageStorage] rooted at the configured
// image directory, creating the directory if needed.
func NewImageFileStorage(cfg config.Files, logger *logger.Logger) (ImageStorage, error) {
	if err := os.MkdirAll(cfg.ImageDir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating image directory: %w", err)
	}

	logger.Debug().Str("dir", cfg.ImageDir).Msg("creating image file storage")
	return &imageFileStorage{
		dir:    cfg.ImageDir,
		logger: logger,
	}, nil
}

// SaveImage writes the content to a new file named by a fresh UUID with the
// original file's extension, and returns the path relative to the storage
// directory. A UUID name prevents collisions and path traversal through
// attacker-controlled file names.
func (s *imageFileStorage) SaveImage(ctx context.Context, fileName string, content io.Reader) (string, error) {
	log := logger.FromContext(ctx)

	name := uuid.NewString() + filepath.Ext(fileName)
	fullPath := filepath.Join(s.dir, name)

	file, err := os.Create(fullPath)
	if err != nil {
		log.Err(err).Str("func", "*imageFileStorage.SaveImage").Str("path", fullPath).Msg("error creating image file")
		return "", fmt.Errorf("error creating image file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, content); err != nil {
		os.Remove(fullPath)
		log.Err(err).Str("func", "*imageFileStorage.SaveImage").Str("path", fullPath).Msg("error writing image file")
		return "", fmt.Errorf("error writing image file: %w", err)
	}

	return name, nil
}

// RemoveImage deletes a previously saved image file. A missing file is not
// an error: the goal state (no file) is already reached.
func (s *imageFileStorage) RemoveImage(ctx context.Context, imagePath string) error {
	if imagePath == "" {
		return nil
	}

	err := os.Remove(filepath.Join(s.dir, filepath.Base(imagePath)))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("error removing image file: %w", err)
	}

	return nil
}
