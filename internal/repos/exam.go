package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/aulaflow/academy-backend/internal/logger"
	"github.com/aulaflow/academy-backend/internal/types"
)

type ExamRepo interface {
	Create(ctx context.Context, tx *gorm.DB, exam *types.Exam) (*types.Exam, error)
	GetByID(ctx context.Context, tx *gorm.DB, examID uint) (*types.Exam, error)
	// GetWithInstances loads the exam plus its instances in persisted order,
	// with each instance's catalog entry preloaded.
	GetWithInstances(ctx context.Context, tx *gorm.DB, examID uint) (*types.Exam, error)
	List(ctx context.Context, tx *gorm.DB) ([]*types.Exam, error)
	Update(ctx context.Context, tx *gorm.DB, examID uint, update types.ExamUpdate) error
	UpdateStatusAndSnapshot(ctx context.Context, tx *gorm.DB, examID uint, status string, snapshot string) error
	SoftDeleteByID(ctx context.Context, tx *gorm.DB, examID uint) error
}

type examRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewExamRepo(db *gorm.DB, baseLog *logger.Logger) ExamRepo {
	return &examRepo{db: db, log: baseLog.With("repo", "ExamRepo")}
}

func (r *examRepo) Create(ctx context.Context, tx *gorm.DB, exam *types.Exam) (*types.Exam, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Create(exam).Error; err != nil {
		return nil, err
	}
	return exam, nil
}

func (r *examRepo) GetByID(ctx context.Context, tx *gorm.DB, examID uint) (*types.Exam, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var result types.Exam
	if err := transaction.WithContext(ctx).
		First(&result, examID).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *examRepo) GetWithInstances(ctx context.Context, tx *gorm.DB, examID uint) (*types.Exam, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var result types.Exam
	if err := transaction.WithContext(ctx).
		Preload("GeneratedExercises", func(db *gorm.DB) *gorm.DB {
			return db.Order("exam_exercise_instance.id ASC")
		}).
		Preload("GeneratedExercises.ExerciseType", func(db *gorm.DB) *gorm.DB {
			// A retired catalog entry still names its instances.
			return db.Unscoped()
		}).
		First(&result, examID).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *examRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Exam, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.Exam
	if err := transaction.WithContext(ctx).
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *examRepo) Update(ctx context.Context, tx *gorm.DB, examID uint, update types.ExamUpdate) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	fields := map[string]any{}
	if update.Status != nil {
		fields["status"] = *update.Status
	}
	if update.Notes != nil {
		fields["notes"] = *update.Notes
	}
	if len(fields) == 0 {
		return nil
	}
	return transaction.WithContext(ctx).
		Model(&types.Exam{}).
		Where("id = ?", examID).
		Updates(fields).Error
}

func (r *examRepo) UpdateStatusAndSnapshot(ctx context.Context, tx *gorm.DB, examID uint, status string, snapshot string) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Model(&types.Exam{}).
		Where("id = ?", examID).
		Updates(map[string]any{
			"status":             status,
			"generated_snapshot": snapshot,
		}).Error
}

func (r *examRepo) SoftDeleteByID(ctx context.Context, tx *gorm.DB, examID uint) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Delete(&types.Exam{}, examID).Error
}
