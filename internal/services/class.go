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

type ClassService interface {
	Create(ctx context.Context, class *types.Class) (*types.Class, error)
	GetByID(ctx context.Context, classID uint) (*types.Class, error)
	GetByCode(ctx context.Context, classCode string) (*types.Class, error)
	List(ctx context.Context) ([]*types.Class, error)
	Update(ctx context.Context, classID uint, update types.ClassUpdate) error
	Delete(ctx context.Context, classID uint) error
}

type classService struct {
	log       *logger.Logger
	classRepo repos.ClassRepo
}

func NewClassService(log *logger.Logger, classRepo repos.ClassRepo) ClassService {
	return &classService{
		log:       log.With("service", "ClassService"),
		classRepo: classRepo,
	}
}

func (s *classService) Create(ctx context.Context, class *types.Class) (*types.Class, error) {
	if class.ClassCode == "" || class.Description == "" || class.SuggestedLevel == "" {
		return nil, apierr.Newf(http.StatusBadRequest, "missing_fields", "Missing required fields")
	}
	if class.MaxCapacity <= 0 {
		return nil, apierr.Newf(http.StatusBadRequest, "invalid_capacity", "max_capacity must be positive")
	}
	created, err := s.classRepo.Create(ctx, nil, class)
	if err != nil {
		return nil, dbError(err)
	}
	return created, nil
}

func (s *classService) GetByID(ctx context.Context, classID uint) (*types.Class, error) {
	class, err := s.classRepo.GetByID(ctx, nil, classID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.Newf(http.StatusNotFound, "class_not_found", "Class not found")
		}
		return nil, dbError(err)
	}
	return class, nil
}

func (s *classService) GetByCode(ctx context.Context, classCode string) (*types.Class, error) {
	class, err := s.classRepo.GetByCode(ctx, nil, classCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.Newf(http.StatusNotFound, "class_not_found", "Class not found")
		}
		return nil, dbError(err)
	}
	return class, nil
}

func (s *classService) List(ctx context.Context) ([]*types.Class, error) {
	classes, err := s.classRepo.List(ctx, nil)
	if err != nil {
		return nil, dbError(err)
	}
	return classes, nil
}

func (s *classService) Update(ctx context.Context, classID uint, update types.ClassUpdate) error {
	if _, err := s.GetByID(ctx, classID); err != nil {
		return err
	}
	if err := s.classRepo.Update(ctx, nil, classID, update); err != nil {
		return dbError(err)
	}
	return nil
}

func (s *classService) Delete(ctx context.Context, classID uint) error {
	if _, err := s.GetByID(ctx, classID); err != nil {
		return err
	}
	if err := s.classRepo.SoftDeleteByID(ctx, nil, classID); err != nil {
		return dbError(err)
	}
	return nil
}
