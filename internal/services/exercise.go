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

type ExerciseService interface {
	Create(ctx context.Context, exercise *types.Exercise) (*types.Exercise, error)
	GetByID(ctx context.Context, exerciseID uint) (*types.Exercise, error)
	List(ctx context.Context) ([]*types.Exercise, error)
	Update(ctx context.Context, exerciseID uint, update types.ExerciseUpdate) error
	Delete(ctx context.Context, exerciseID uint) error
}

type exerciseService struct {
	log          *logger.Logger
	exerciseRepo repos.ExerciseRepo
}

func NewExerciseService(log *logger.Logger, exerciseRepo repos.ExerciseRepo) ExerciseService {
	return &exerciseService{
		log:          log.With("service", "ExerciseService"),
		exerciseRepo: exerciseRepo,
	}
}

func (s *exerciseService) Create(ctx context.Context, exercise *types.Exercise) (*types.Exercise, error) {
	if exercise.Name == "" || exercise.ContentDescription == "" {
		return nil, apierr.Newf(http.StatusBadRequest, "missing_fields", "Missing required fields")
	}
	created, err := s.exerciseRepo.Create(ctx, nil, exercise)
	if err != nil {
		return nil, dbError(err)
	}
	return created, nil
}

func (s *exerciseService) GetByID(ctx context.Context, exerciseID uint) (*types.Exercise, error) {
	exercise, err := s.exerciseRepo.GetByID(ctx, nil, exerciseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.Newf(http.StatusNotFound, "exercise_not_found", "Exercise not found")
		}
		return nil, dbError(err)
	}
	return exercise, nil
}

func (s *exerciseService) List(ctx context.Context) ([]*types.Exercise, error) {
	exercises, err := s.exerciseRepo.List(ctx, nil)
	if err != nil {
		return nil, dbError(err)
	}
	return exercises, nil
}

func (s *exerciseService) Update(ctx context.Context, exerciseID uint, update types.ExerciseUpdate) error {
	if _, err := s.GetByID(ctx, exerciseID); err != nil {
		return err
	}
	if err := s.exerciseRepo.Update(ctx, nil, exerciseID, update); err != nil {
		return dbError(err)
	}
	return nil
}

func (s *exerciseService) Delete(ctx context.Context, exerciseID uint) error {
	if _, err := s.GetByID(ctx, exerciseID); err != nil {
		return err
	}
	if err := s.exerciseRepo.SoftDeleteByID(ctx, nil, exerciseID); err != nil {
		return dbError(err)
	}
	return nil
}
