package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/aulaflow/academy-backend/internal/clients/ollama"
	"github.com/aulaflow/academy-backend/internal/clients/qdrant"
	"github.com/aulaflow/academy-backend/internal/logger"
)

const defaultRetrievalLimit = 15

// RetrievalService fetches historical exam excerpts for a course. The course
// filter is a hard Qdrant filter, not a similarity boost: excerpts from other
// courses never leak into a generation run.
type RetrievalService interface {
	RetrieveCourseContext(ctx context.Context, courseID, level, exercisesDescription string) ([]string, error)
}

type retrievalService struct {
	log      *logger.Logger
	embedder ollama.Client
	search   qdrant.Client
	limit    int
}

func NewRetrievalService(log *logger.Logger, embedder ollama.Client, search qdrant.Client, limit int) RetrievalService {
	if limit <= 0 {
		limit = defaultRetrievalLimit
	}
	return &retrievalService{
		log:      log.With("service", "RetrievalService"),
		embedder: embedder,
		search:   search,
		limit:    limit,
	}
}

func (s *retrievalService) RetrieveCourseContext(ctx context.Context, courseID, level, exercisesDescription string) ([]string, error) {
	queryText := fmt.Sprintf("Level: %s\nExercises requested:\n%s", level, exercisesDescription)

	vector, err := s.embedder.Embed(ctx, queryText)
	if err != nil {
		return nil, fmt.Errorf("embed retrieval query: %w", err)
	}

	points, err := s.search.SearchPoints(ctx, qdrant.SearchRequest{
		Vector:      vector,
		Limit:       s.limit,
		WithPayload: true,
		Filter: &qdrant.Filter{
			Must: []qdrant.Condition{
				{Key: "course_id", Match: qdrant.Match{Value: courseID}},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("search course context: %w", err)
	}

	contexts := make([]string, 0, len(points))
	for _, p := range points {
		text, ok := p.Payload["text"].(string)
		if !ok || strings.TrimSpace(text) == "" {
			continue
		}
		contexts = append(contexts, text)
	}
	s.log.Debug("Course context retrieved", "course_id", courseID, "hits", len(points), "kept", len(contexts))
	return contexts, nil
}
