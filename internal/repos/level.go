package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/aulaflow/academy-backend/internal/logger"
	"github.com/aulaflow/academy-backend/internal/types"
)

type LevelRepo interface {
	Create(ctx context.Context, tx *gorm.DB, level *types.Level) (*types.Level, error)
	GetByID(ctx context.Context, tx *gorm.DB, levelID uint) (*types.Level, error)
	List(ctx context.Context, tx *gorm.DB) ([]*types.Level, error)
	Update(ctx context.Context, tx *gorm.DB, levelID uint, update types.LevelUpdate) error
	SoftDeleteByID(ctx context.Context, tx *gorm.DB, levelID uint) error
}

type levelRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewLevelRepo(db *gorm.DB, baseLog *logger.Logger) LevelRepo {
	return &levelRepo{db: db, log: baseLog.With("repo", "LevelRepo")}
}

func (r *levelRepo) Create(ctx context.Context, tx *gorm.DB, level *types.Level) (*types.Level, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Create(level).Error; err != nil {
		return nil, err
	}
	return level, nil
}

func (r *levelRepo) GetByID(ctx context.Context, tx *gorm.DB, levelID uint) (*types.Level, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var result types.Level
	if err := transaction.WithContext(ctx).
		First(&result, levelID).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *levelRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Level, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.Level
	if err := transaction.WithContext(ctx).
		Order("min_xp ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *levelRepo) Update(ctx context.Context, tx *gorm.DB, levelID uint, update types.LevelUpdate) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	fields := map[string]any{}
	if update.MinXP != nil {
		fields["min_xp"] = *update.MinXP
	}
	if update.Description != nil {
		fields["description"] = *update.Description
	}
	if update.Cosmetic != nil {
		fields["cosmetic"] = *update.Cosmetic
	}
	if len(fields) == 0 {
		return nil
	}
	return transaction.WithContext(ctx).
		Model(&types.Level{}).
		Where("id = ?", levelID).
		Updates(fields).Error
}

func (r *levelRepo) SoftDeleteByID(ctx context.Context, tx *gorm.DB, levelID uint) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Delete(&types.Level{}, levelID).Error
}
