package services

import (
	"context"
	"errors"
	"net/http"

	"gorm.io/gorm"

	"github.com/aulaflow/academy-backend/internal/apierr"
	"github.com/aulaflow/academy-backend/internal/logger"
	"github.com/aulaflow/academy-backend/internal/repos"
	"github.com/aulaflow/academy-backend/internal/types"
)

// ExamService covers the basic exam reads, the review update and soft
// deletion. Exams are only ever created through the generation pipeline;
// Update is how a reviewer finalizes one (status GENERATED) or attaches
// notes.
type ExamService interface {
	GetByID(ctx context.Context, examID uint) (*types.Exam, error)
	List(ctx context.Context) ([]*types.Exam, error)
	Update(ctx context.Context, examID uint, update types.ExamUpdate) error
	Delete(ctx context.Context, examID uint) error
}

type examService struct {
	log      *logger.Logger
	examRepo repos.ExamRepo
}

func NewExamService(log *logger.Logger, examRepo repos.ExamRepo) ExamService {
	return &examService{
		log:      log.With("service", "ExamService"),
		examRepo: examRepo,
	}
}

func (s *examService) GetByID(ctx context.Context, examID uint) (*types.Exam, error) {
	exam, err := s.examRepo.GetByID(ctx, nil, examID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.Newf(http.StatusNotFound, "exam_not_found", "Exam not found")
		}
		return nil, dbError(err)
	}
	return exam, nil
}

func (s *examService) List(ctx context.Context) ([]*types.Exam, error) {
	exams, err := s.examRepo.List(ctx, nil)
	if err != nil {
		return nil, dbError(err)
	}
	return exams, nil
}

func (s *examService) Update(ctx context.Context, examID uint, update types.ExamUpdate) error {
	if update.Status != nil {
		switch *update.Status {
		case types.ExamStatusPendingReview, types.ExamStatusGenerated:
		default:
			// GENERATING belongs to the pipeline's transaction and is not
			// settable from outside.
			return apierr.Newf(http.StatusBadRequest, "invalid_status", "Invalid status value '%s'", *update.Status)
		}
	}
	if _, err := s.GetByID(ctx, examID); err != nil {
		return err
	}
	if err := s.examRepo.Update(ctx, nil, examID, update); err != nil {
		return dbError(err)
	}
	return nil
}

func (s *examService) Delete(ctx context.Context, examID uint) error {
	if _, err := s.GetByID(ctx, examID); err != nil {
		return err
	}
	if err := s.examRepo.SoftDeleteByID(ctx, nil, examID); err != nil {
		return dbError(err)
	}
	return nil
}
