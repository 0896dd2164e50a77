package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/aulaflow/academy-backend/internal/logger"
	"github.com/aulaflow/academy-backend/internal/types"
)

type ExamExerciseInstanceRepo interface {
	Create(ctx context.Context, tx *gorm.DB, instances []*types.ExamExerciseInstance) ([]*types.ExamExerciseInstance, error)
	GetByExamID(ctx context.Context, tx *gorm.DB, examID uint) ([]*types.ExamExerciseInstance, error)
}

type examExerciseInstanceRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewExamExerciseInstanceRepo(db *gorm.DB, baseLog *logger.Logger) ExamExerciseInstanceRepo {
	return &examExerciseInstanceRepo{db: db, log: baseLog.With("repo", "ExamExerciseInstanceRepo")}
}

func (r *examExerciseInstanceRepo) Create(ctx context.Context, tx *gorm.DB, instances []*types.ExamExerciseInstance) ([]*types.ExamExerciseInstance, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(instances) == 0 {
		return []*types.ExamExerciseInstance{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&instances).Error; err != nil {
		return nil, err
	}
	return instances, nil
}

func (r *examExerciseInstanceRepo) GetByExamID(ctx context.Context, tx *gorm.DB, examID uint) ([]*types.ExamExerciseInstance, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.ExamExerciseInstance
	if err := transaction.WithContext(ctx).
		Where("exam_id = ?", examID).
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
