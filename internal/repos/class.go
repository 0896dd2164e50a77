package repos

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/aulaflow/academy-backend/internal/logger"
	"github.com/aulaflow/academy-backend/internal/types"
)

type ClassRepo interface {
	Create(ctx context.Context, tx *gorm.DB, class *types.Class) (*types.Class, error)
	GetByID(ctx context.Context, tx *gorm.DB, classID uint) (*types.Class, error)
	// GetByCode looks a class up by its code, ignoring surrounding whitespace
	// and letter case on both sides.
	GetByCode(ctx context.Context, tx *gorm.DB, classCode string) (*types.Class, error)
	List(ctx context.Context, tx *gorm.DB) ([]*types.Class, error)
	Update(ctx context.Context, tx *gorm.DB, classID uint, update types.ClassUpdate) error
	SoftDeleteByID(ctx context.Context, tx *gorm.DB, classID uint) error
}

type classRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewClassRepo(db *gorm.DB, baseLog *logger.Logger) ClassRepo {
	return &classRepo{db: db, log: baseLog.With("repo", "ClassRepo")}
}

func (r *classRepo) Create(ctx context.Context, tx *gorm.DB, class *types.Class) (*types.Class, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Create(class).Error; err != nil {
		return nil, err
	}
	return class, nil
}

func (r *classRepo) GetByID(ctx context.Context, tx *gorm.DB, classID uint) (*types.Class, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var result types.Class
	if err := transaction.WithContext(ctx).
		First(&result, classID).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *classRepo) GetByCode(ctx context.Context, tx *gorm.DB, classCode string) (*types.Class, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	normalized := strings.ToUpper(strings.TrimSpace(classCode))
	var result types.Class
	if err := transaction.WithContext(ctx).
		Where("UPPER(TRIM(class_code)) = ?", normalized).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *classRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Class, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.Class
	if err := transaction.WithContext(ctx).
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *classRepo) Update(ctx context.Context, tx *gorm.DB, classID uint, update types.ClassUpdate) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	fields := map[string]any{}
	if update.Description != nil {
		fields["description"] = *update.Description
	}
	if update.SuggestedLevel != nil {
		fields["suggested_level"] = *update.SuggestedLevel
	}
	if update.MaxCapacity != nil {
		fields["max_capacity"] = *update.MaxCapacity
	}
	if len(fields) == 0 {
		return nil
	}
	return transaction.WithContext(ctx).
		Model(&types.Class{}).
		Where("id = ?", classID).
		Updates(fields).Error
}

func (r *classRepo) SoftDeleteByID(ctx context.Context, tx *gorm.DB, classID uint) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Delete(&types.Class{}, classID).Error
}
