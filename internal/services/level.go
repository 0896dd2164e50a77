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

type LevelService interface {
	Create(ctx context.Context, level *types.Level) (*types.Level, error)
	GetByID(ctx context.Context, levelID uint) (*types.Level, error)
	List(ctx context.Context) ([]*types.Level, error)
	Update(ctx context.Context, levelID uint, update types.LevelUpdate) error
	Delete(ctx context.Context, levelID uint) error
}

type levelService struct {
	log       *logger.Logger
	levelRepo repos.LevelRepo
}

func NewLevelService(log *logger.Logger, levelRepo repos.LevelRepo) LevelService {
	return &levelService{
		log:       log.With("service", "LevelService"),
		levelRepo: levelRepo,
	}
}

func (s *levelService) Create(ctx context.Context, level *types.Level) (*types.Level, error) {
	if level.Description == "" {
		return nil, apierr.Newf(http.StatusBadRequest, "missing_fields", "Missing required fields")
	}
	if level.MinXP < 0 {
		return nil, apierr.Newf(http.StatusBadRequest, "invalid_min_xp", "min_xp must not be negative")
	}
	created, err := s.levelRepo.Create(ctx, nil, level)
	if err != nil {
		return nil, dbError(err)
	}
	return created, nil
}

func (s *levelService) GetByID(ctx context.Context, levelID uint) (*types.Level, error) {
	level, err := s.levelRepo.GetByID(ctx, nil, levelID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.Newf(http.StatusNotFound, "level_not_found", "Level not found")
		}
		return nil, dbError(err)
	}
	return level, nil
}

func (s *levelService) List(ctx context.Context) ([]*types.Level, error) {
	levels, err := s.levelRepo.List(ctx, nil)
	if err != nil {
		return nil, dbError(err)
	}
	return levels, nil
}

func (s *levelService) Update(ctx context.Context, levelID uint, update types.LevelUpdate) error {
	if update.MinXP != nil && *update.MinXP < 0 {
		return apierr.Newf(http.StatusBadRequest, "invalid_min_xp", "min_xp must not be negative")
	}
	if _, err := s.GetByID(ctx, levelID); err != nil {
		return err
	}
	if err := s.levelRepo.Update(ctx, nil, levelID, update); err != nil {
		return dbError(err)
	}
	return nil
}

func (s *levelService) Delete(ctx context.Context, levelID uint) error {
	if _, err := s.GetByID(ctx, levelID); err != nil {
		return err
	}
	if err := s.levelRepo.SoftDeleteByID(ctx, nil, levelID); err != nil {
		return dbError(err)
	}
	return nil
}
