package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/aulaflow/academy-backend/internal/logger"
	"github.com/aulaflow/academy-backend/internal/types"
)

type ExerciseRepo interface {
	Create(ctx context.Context, tx *gorm.DB, exercise *types.Exercise) (*types.Exercise, error)
	GetByID(ctx context.Context, tx *gorm.DB, exerciseID uint) (*types.Exercise, error)
	// GetByName resolves a catalog entry by case-insensitive exact name match.
	GetByName(ctx context.Context, tx *gorm.DB, name string) (*types.Exercise, error)
	List(ctx context.Context, tx *gorm.DB) ([]*types.Exercise, error)
	// ListAll returns the whole catalog including soft-deleted entries.
	// Deletion is checked when a generation request is validated, not again
	// while model output is being resolved against the catalog.
	ListAll(ctx context.Context, tx *gorm.DB) ([]*types.Exercise, error)
	Update(ctx context.Context, tx *gorm.DB, exerciseID uint, update types.ExerciseUpdate) error
	SoftDeleteByID(ctx context.Context, tx *gorm.DB, exerciseID uint) error
}

type exerciseRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewExerciseRepo(db *gorm.DB, baseLog *logger.Logger) ExerciseRepo {
	return &exerciseRepo{db: db, log: baseLog.With("repo", "ExerciseRepo")}
}

func (r *exerciseRepo) Create(ctx context.Context, tx *gorm.DB, exercise *types.Exercise) (*types.Exercise, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Create(exercise).Error; err != nil {
		return nil, err
	}
	return exercise, nil
}

func (r *exerciseRepo) GetByID(ctx context.Context, tx *gorm.DB, exerciseID uint) (*types.Exercise, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var result types.Exercise
	if err := transaction.WithContext(ctx).
		First(&result, exerciseID).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *exerciseRepo) GetByName(ctx context.Context, tx *gorm.DB, name string) (*types.Exercise, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var result types.Exercise
	if err := transaction.WithContext(ctx).
		Where("LOWER(name) = LOWER(?)", name).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *exerciseRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Exercise, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.Exercise
	if err := transaction.WithContext(ctx).
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *exerciseRepo) ListAll(ctx context.Context, tx *gorm.DB) ([]*types.Exercise, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.Exercise
	if err := transaction.WithContext(ctx).
		Unscoped().
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *exerciseRepo) Update(ctx context.Context, tx *gorm.DB, exerciseID uint, update types.ExerciseUpdate) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	fields := map[string]any{}
	if update.Name != nil {
		fields["name"] = *update.Name
	}
	if update.ContentDescription != nil {
		fields["content_description"] = *update.ContentDescription
	}
	if len(fields) == 0 {
		return nil
	}
	return transaction.WithContext(ctx).
		Model(&types.Exercise{}).
		Where("id = ?", exerciseID).
		Updates(fields).Error
}

func (r *exerciseRepo) SoftDeleteByID(ctx context.Context, tx *gorm.DB, exerciseID uint) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Delete(&types.Exercise{}, exerciseID).Error
}
