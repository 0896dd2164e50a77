package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"gorm.io/gorm"

	"github.com/aulaflow/academy-backend/internal/apierr"
	"github.com/aulaflow/academy-backend/internal/clients/ollama"
	"github.com/aulaflow/academy-backend/internal/logger"
	"github.com/aulaflow/academy-backend/internal/repos"
	"github.com/aulaflow/academy-backend/internal/types"
)

// ExamGenerationService owns the exam aggregate's generation lifecycle:
// request validation, the retrieve -> prompt -> generate -> parse pipeline,
// and the atomic persistence of the resulting instances. The whole pipeline
// runs inside one database transaction, so a failure at any stage leaves no
// exam behind; GENERATING exists only inside an uncommitted transaction.
type ExamGenerationService interface {
	Generate(ctx context.Context, classID uint, contextText string, exerciseTypeIDs []uint) (uint, error)
	GetFullExam(ctx context.Context, examID uint) (*FullExamView, error)
}

// FullExamView is the structured exam reconstruction served to the frontend,
// independent of export rendering.
type FullExamView struct {
	ID        uint               `json:"id"`
	Status    string             `json:"status"`
	ClassID   uint               `json:"class_id"`
	Context   string             `json:"context"`
	Exercises []FullExamExercise `json:"exercises"`
}

type FullExamExercise struct {
	ExerciseType string              `json:"exercise_type"`
	Instructions string              `json:"instructions"`
	Items        []types.ContentItem `json:"items"`
}

type examGenerationService struct {
	log          *logger.Logger
	db           *gorm.DB
	classRepo    repos.ClassRepo
	exerciseRepo repos.ExerciseRepo
	examRepo     repos.ExamRepo
	instanceRepo repos.ExamExerciseInstanceRepo
	retrieval    RetrievalService
	generator    ollama.Client
}

func NewExamGenerationService(
	log *logger.Logger,
	db *gorm.DB,
	classRepo repos.ClassRepo,
	exerciseRepo repos.ExerciseRepo,
	examRepo repos.ExamRepo,
	instanceRepo repos.ExamExerciseInstanceRepo,
	retrieval RetrievalService,
	generator ollama.Client,
) ExamGenerationService {
	return &examGenerationService{
		log:          log.With("service", "ExamGenerationService"),
		db:           db,
		classRepo:    classRepo,
		exerciseRepo: exerciseRepo,
		examRepo:     examRepo,
		instanceRepo: instanceRepo,
		retrieval:    retrieval,
		generator:    generator,
	}
}

func (s *examGenerationService) Generate(ctx context.Context, classID uint, contextText string, exerciseTypeIDs []uint) (uint, error) {
	if len(exerciseTypeIDs) == 0 {
		return 0, apierr.Newf(http.StatusBadRequest, "empty_exercise_types", "exercise_type_ids must be a non-empty list")
	}

	class, err := s.classRepo.GetByID(ctx, nil, classID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, apierr.Newf(http.StatusNotFound, "class_not_found", "Class not found or deleted")
		}
		return 0, dbError(err)
	}

	exerciseTypes := make([]*types.Exercise, 0, len(exerciseTypeIDs))
	for _, id := range exerciseTypeIDs {
		ex, err := s.exerciseRepo.GetByID(ctx, nil, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return 0, apierr.Newf(http.StatusBadRequest, "invalid_exercise_type", "Invalid exercise type id %d", id)
			}
			return 0, dbError(err)
		}
		exerciseTypes = append(exerciseTypes, ex)
	}

	exerciseListText := buildExerciseListText(exerciseTypes)

	var examID uint
	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// RequestedExercises keeps the audit trail of what was asked for;
		// the instances record what the model actually produced.
		exam, err := s.examRepo.Create(ctx, tx, &types.Exam{
			Status:             types.ExamStatusGenerating,
			ClassID:            classID,
			Context:            contextText,
			RequestedExercises: exerciseTypes,
		})
		if err != nil {
			return dbError(err)
		}

		contexts, err := s.retrieval.RetrieveCourseContext(ctx, class.ClassCode, class.SuggestedLevel, exerciseListText)
		if err != nil {
			return apierr.New(http.StatusInternalServerError, "retrieval_failed", err)
		}
		retrievedContext := strings.Join(contexts, "\n\n---\n\n")

		prompt := BuildExamPrompt(class.SuggestedLevel, contextText, exerciseListText, retrievedContext)

		rawOutput, err := s.generator.Generate(ctx, prompt)
		if err != nil {
			return apierr.New(http.StatusInternalServerError, "generation_failed", err)
		}

		catalog, err := s.exerciseRepo.ListAll(ctx, tx)
		if err != nil {
			return dbError(err)
		}

		parsed, err := ParseGeneratedExam(rawOutput, catalog)
		if err != nil {
			return err
		}

		instances := make([]*types.ExamExerciseInstance, 0, len(parsed))
		for _, block := range parsed {
			contentJSON, err := json.Marshal(block.Content)
			if err != nil {
				return dbError(err)
			}
			answerKeyJSON, err := json.Marshal(types.AnswerKey{Answers: block.Answers})
			if err != nil {
				return dbError(err)
			}
			instances = append(instances, &types.ExamExerciseInstance{
				ExamID:         exam.ID,
				ExerciseTypeID: block.ExerciseTypeID,
				Instructions:   block.Instructions,
				Content:        contentJSON,
				AnswerKey:      answerKeyJSON,
			})
		}
		if _, err := s.instanceRepo.Create(ctx, tx, instances); err != nil {
			return dbError(err)
		}

		if err := s.examRepo.UpdateStatusAndSnapshot(ctx, tx, exam.ID, types.ExamStatusPendingReview, rawOutput); err != nil {
			return dbError(err)
		}

		examID = exam.ID
		return nil
	})
	if txErr != nil {
		s.log.Error("Exam generation failed", "class_id", classID, "error", txErr)
		var apiErr *apierr.Error
		if errors.As(txErr, &apiErr) {
			return 0, apiErr
		}
		return 0, apierr.New(http.StatusInternalServerError, "generation_failed", txErr)
	}

	s.log.Info("Exam generated", "exam_id", examID, "class_id", classID, "exercise_types", len(exerciseTypeIDs))
	return examID, nil
}

func (s *examGenerationService) GetFullExam(ctx context.Context, examID uint) (*FullExamView, error) {
	exam, err := s.examRepo.GetWithInstances(ctx, nil, examID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.Newf(http.StatusNotFound, "exam_not_found", "Exam not found")
		}
		return nil, dbError(err)
	}

	view := &FullExamView{
		ID:        exam.ID,
		Status:    exam.Status,
		ClassID:   exam.ClassID,
		Context:   exam.Context,
		Exercises: make([]FullExamExercise, 0, len(exam.GeneratedExercises)),
	}
	for _, instance := range exam.GeneratedExercises {
		var items []types.ContentItem
		if err := json.Unmarshal(instance.Content, &items); err != nil {
			return nil, apierr.New(http.StatusInternalServerError, "corrupt_content", fmt.Errorf("decode instance %d content: %w", instance.ID, err))
		}
		typeName := ""
		if instance.ExerciseType != nil {
			typeName = instance.ExerciseType.Name
		}
		view.Exercises = append(view.Exercises, FullExamExercise{
			ExerciseType: typeName,
			Instructions: instance.Instructions,
			Items:        items,
		})
	}
	return view, nil
}

func buildExerciseListText(exerciseTypes []*types.Exercise) string {
	lines := make([]string, 0, len(exerciseTypes))
	for _, ex := range exerciseTypes {
		lines = append(lines, fmt.Sprintf("- %s: %s", ex.Name, ex.ContentDescription))
	}
	return strings.Join(lines, "\n")
}

func dbError(err error) *apierr.Error {
	return apierr.New(http.StatusInternalServerError, "database_error", fmt.Errorf("Database error: %w", err))
}
