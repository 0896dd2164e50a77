package services

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/aulaflow/academy-backend/internal/apierr"
	"github.com/aulaflow/academy-backend/internal/types"
)

// ParsedExercise is one validated exercise block ready for persistence.
// Answers[i] corresponds to Content[i]; this alignment is established here
// and never re-checked downstream.
type ParsedExercise struct {
	ExerciseTypeID uint
	Instructions   string
	Content        []types.ContentItem
	Answers        []string
}

// ParseGeneratedExam extracts the JSON object from raw model output, validates
// it against the generation contract and resolves each declared exercise type
// against the catalog by case-insensitive name. Any failure discards the whole
// batch. Error bodies stay generic so raw model text never reaches clients.
func ParseGeneratedExam(raw string, catalog []*types.Exercise) ([]ParsedExercise, error) {
	candidate, ok := extractJSONObject(raw)
	if !ok {
		return nil, apierr.Newf(http.StatusInternalServerError, "model_invalid_json", "Model did not return valid JSON")
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal([]byte(candidate), &top); err != nil {
		return nil, apierr.Newf(http.StatusInternalServerError, "model_invalid_json", "Model did not return valid JSON")
	}

	exercisesRaw, ok := top["exercises"]
	if !ok {
		return nil, apierr.Newf(http.StatusInternalServerError, "model_invalid_structure", "Invalid exam structure returned by model")
	}
	var blocks []json.RawMessage
	if err := json.Unmarshal(exercisesRaw, &blocks); err != nil {
		return nil, apierr.Newf(http.StatusInternalServerError, "model_invalid_structure", "Invalid exam structure returned by model")
	}

	parsed := make([]ParsedExercise, 0, len(blocks))
	for _, blockRaw := range blocks {
		block, err := decodeExerciseBlock(blockRaw)
		if err != nil {
			return nil, err
		}

		exerciseType := resolveExerciseType(catalog, block.ExerciseType)
		if exerciseType == nil {
			return nil, apierr.Newf(http.StatusBadRequest, "unknown_exercise_type",
				"Exercise type '%s' not found in catalog", block.ExerciseType)
		}

		content := make([]types.ContentItem, 0, len(block.Items))
		answers := make([]string, 0, len(block.Items))
		for _, item := range block.Items {
			content = append(content, types.ContentItem{
				Question: item.Question,
				Options:  item.Options,
			})
			answers = append(answers, item.Answer)
		}

		parsed = append(parsed, ParsedExercise{
			ExerciseTypeID: exerciseType.ID,
			Instructions:   block.Instructions,
			Content:        content,
			Answers:        answers,
		})
	}
	return parsed, nil
}

// decodeExerciseBlock validates key presence, not just zero values: a block
// missing "answer" must fail even though an empty string would decode fine.
func decodeExerciseBlock(raw json.RawMessage) (*types.GeneratedExercise, error) {
	structureErr := apierr.Newf(http.StatusInternalServerError, "model_invalid_structure", "Invalid exam structure returned by model")

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, structureErr
	}
	for _, required := range []string{"exercise_type", "instructions", "items"} {
		if _, ok := fields[required]; !ok {
			return nil, structureErr
		}
	}

	var block types.GeneratedExercise
	if err := json.Unmarshal(raw, &block); err != nil {
		return nil, structureErr
	}

	var itemsRaw []json.RawMessage
	if err := json.Unmarshal(fields["items"], &itemsRaw); err != nil {
		return nil, structureErr
	}
	for _, itemRaw := range itemsRaw {
		var itemFields map[string]json.RawMessage
		if err := json.Unmarshal(itemRaw, &itemFields); err != nil {
			return nil, structureErr
		}
		if _, ok := itemFields["question"]; !ok {
			return nil, structureErr
		}
		if _, ok := itemFields["answer"]; !ok {
			return nil, structureErr
		}
	}
	return &block, nil
}

func resolveExerciseType(catalog []*types.Exercise, name string) *types.Exercise {
	for _, e := range catalog {
		if strings.EqualFold(e.Name, name) {
			return e
		}
	}
	return nil
}

// extractJSONObject isolates the exam object from whatever prose the model
// wrapped around it. Strict parse of the full text wins when the model obeyed
// the prompt; otherwise a string-aware balanced-brace scan from the first '{'
// finds the object even when questions contain brace characters. The naive
// first-'{' to last-'}' slice remains the last resort for unbalanced output.
func extractJSONObject(raw string) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	if json.Valid([]byte(trimmed)) && strings.HasPrefix(trimmed, "{") {
		return trimmed, true
	}

	start := strings.Index(raw, "{")
	if start < 0 {
		return "", false
	}

	inString := false
	escaped := false
	depth := 0
	for i := start; i < len(raw); i++ {
		ch := raw[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return raw[start : i+1], true
			}
		}
	}

	end := strings.LastIndex(raw, "}")
	if end <= start {
		return "", false
	}
	return raw[start : end+1], true
}
