package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vinay461as/recipi-api/internal/logger"
	"github.com/vinay461as/recipi-api/models"
)

// tagRepository is the PostgreSQL-backed implementation of [TagRepository].
//
// Every statement carries the owner's user_id, so rows of other users are
// indistinguishable from missing rows at this layer already.
type tagRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTagRepository constructs a [TagRepository] backed by the provided
// database connection and logger.
func NewTagRepository(db *DB, logger *logger.Logger) TagRepository {
	logger.Debug().Msg("creating tag repository")
	return &tagRepository{
		db:     db,
		logger: logger,
	}
}

// ListTags returns the user's tags ordered by name descending. With
// assignedOnly set, only tags referenced by at least one of the user's own
// recipes are returned, each exactly once.
func (r *tagRepository) ListTags(ctx context.Context, userID int64, assignedOnly bool) ([]models.Tag, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListNamedQuery("tags", "recipe_tags", "tag_id", userID, assignedOnly)
	if err != nil {
		log.Err(err).Str("func", "*tagRepository.ListTags").Int64("user_id", userID).Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*tagRepository.ListTags").Int64("user_id", userID).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return scanTags(rows)
}

// CreateTag persists a new tag for the owner set on the model and returns
// the stored row with its server-assigned ID.
func (r *tagRepository) CreateTag(ctx context.Context, tag models.Tag) (models.Tag, error) {
	log := logger.FromContext(ctx)

	var created models.Tag
	row := r.db.QueryRowContext(ctx, createTag, tag.UserID, tag.Name)
	if err := row.Scan(&created.TagID, &created.UserID, &created.Name); err != nil {
		log.Err(err).Str("func", "*tagRepository.CreateTag").Int64("user_id", tag.UserID).Msg("error creating tag")
		return models.Tag{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// UpdateTag renames a tag owned by the user.
// Returns [ErrTagNotFound] when the tag is absent or owned by someone else.
func (r *tagRepository) UpdateTag(ctx context.Context, userID, tagID int64, name string) (models.Tag, error) {
	log := logger.FromContext(ctx)

	var updated models.Tag
	row := r.db.QueryRowContext(ctx, updateTag, name, tagID, userID)
	if err := row.Scan(&updated.TagID, &updated.UserID, &updated.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Tag{}, ErrTagNotFound
		}

		log.Err(err).Str("func", "*tagRepository.UpdateTag").Int64("user_id", userID).Int64("tag_id", tagID).Msg("error updating tag")
		return models.Tag{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

// DeleteTag removes a tag owned by the user. Membership rows referencing the
// tag are removed by the foreign-key cascade.
// Returns [ErrTagNotFound] when the tag is absent or owned by someone else.
func (r *tagRepository) DeleteTag(ctx context.Context, userID, tagID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteTag, tagID, userID)
	if err != nil {
		log.Err(err).Str("func", "*tagRepository.DeleteTag").Int64("user_id", userID).Int64("tag_id", tagID).Msg("error deleting tag")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrTagNotFound
	}

	return nil
}

// FindTagsByIDs returns the subset of ids that exist and belong to the user,
// ordered by ID.
func (r *tagRepository) FindTagsByIDs(ctx context.Context, userID int64, ids []int64) ([]models.Tag, error) {
	log := logger.FromContext(ctx)

	if len(ids) == 0 {
		return []models.Tag{}, nil
	}

	rows, err := r.db.QueryContext(ctx, findTagsByIDs, userID, ids)
	if err != nil {
		log.Err(err).Str("func", "*tagRepository.FindTagsByIDs").Int64("user_id", userID).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return scanTags(rows)
}

func scanTags(rows *sql.Rows) ([]models.Tag, error) {
	tags := make([]models.Tag, 0, 16)

	for rows.Next() {
		var tag models.Tag
		if err := rows.Scan(&tag.TagID, &tag.UserID, &tag.Name); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		tags = append(tags, tag)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return tags, nil
}
