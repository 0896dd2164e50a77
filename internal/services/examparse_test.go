package services

import (
	"errors"
	"net/http"
	"testing"

	"github.com/aulaflow/academy-backend/internal/apierr"
	"github.com/aulaflow/academy-backend/internal/types"
)

func testCatalog() []*types.Exercise {
	return []*types.Exercise{
		{ID: 1, Name: "Reading Comprehension"},
		{ID: 2, Name: "Cloze"},
	}
}

func TestParseGeneratedExamExtractionBoundary(t *testing.T) {
	raw := `preamble {"exercises": []} trailing`
	parsed, err := ParseGeneratedExam(raw, testCatalog())
	if err != nil {
		t.Fatalf("ParseGeneratedExam: %v", err)
	}
	if len(parsed) != 0 {
		t.Fatalf("expected zero exercises, got %d", len(parsed))
	}
}

func TestParseGeneratedExamProseWrappedOutput(t *testing.T) {
	raw := `Sure! Here's your exam: {"exercises":[{"exercise_type":"Cloze","instructions":"Fill the gaps","items":[{"question":"I ___ tired","answer":"am"}]}]} Hope this helps!`

	parsed, err := ParseGeneratedExam(raw, testCatalog())
	if err != nil {
		t.Fatalf("ParseGeneratedExam: %v", err)
	}
	if len(parsed) != 1 {
		t.Fatalf("expected 1 exercise, got %d", len(parsed))
	}
	block := parsed[0]
	if block.ExerciseTypeID != 2 {
		t.Fatalf("exercise type id: want=2 got=%d", block.ExerciseTypeID)
	}
	if block.Instructions != "Fill the gaps" {
		t.Fatalf("instructions: got %q", block.Instructions)
	}
	if len(block.Content) != 1 || len(block.Answers) != 1 {
		t.Fatalf("content/answers: got %d/%d", len(block.Content), len(block.Answers))
	}
	if block.Content[0].Question != "I ___ tired" {
		t.Fatalf("question: got %q", block.Content[0].Question)
	}
	if block.Answers[0] != "am" {
		t.Fatalf("answer: got %q", block.Answers[0])
	}
}

func TestParseGeneratedExamCaseInsensitiveCatalogMatch(t *testing.T) {
	raw := `{"exercises":[{"exercise_type":"reading comprehension","instructions":"Read","items":[{"question":"Q","answer":"A"}]}]}`
	parsed, err := ParseGeneratedExam(raw, testCatalog())
	if err != nil {
		t.Fatalf("ParseGeneratedExam: %v", err)
	}
	if parsed[0].ExerciseTypeID != 1 {
		t.Fatalf("exercise type id: want=1 got=%d", parsed[0].ExerciseTypeID)
	}
}

func TestParseGeneratedExamUnknownTypeNamesOffender(t *testing.T) {
	raw := `{"exercises":[{"exercise_type":"Cloze","instructions":"ok","items":[{"question":"Q","answer":"A"}]},{"exercise_type":"Dictation","instructions":"x","items":[{"question":"Q","answer":"A"}]}]}`
	_, err := ParseGeneratedExam(raw, testCatalog())
	if err == nil {
		t.Fatal("expected error for unknown exercise type")
	}
	var apiErr *apierr.Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *apierr.Error, got %T", err)
	}
	if apiErr.Status != http.StatusBadRequest {
		t.Fatalf("status: want=400 got=%d", apiErr.Status)
	}
	if got := apiErr.Error(); got != "Exercise type 'Dictation' not found in catalog" {
		t.Fatalf("message: got %q", got)
	}
}

func TestParseGeneratedExamBracesInsideStrings(t *testing.T) {
	// A question containing brace characters must not confuse extraction.
	raw := `noise {"exercises":[{"exercise_type":"Cloze","instructions":"ok","items":[{"question":"Expand {x} fully","answer":"x"}]}]} more noise}`
	parsed, err := ParseGeneratedExam(raw, testCatalog())
	if err != nil {
		t.Fatalf("ParseGeneratedExam: %v", err)
	}
	if parsed[0].Content[0].Question != "Expand {x} fully" {
		t.Fatalf("question: got %q", parsed[0].Content[0].Question)
	}
}

func TestParseGeneratedExamStructuralFailures(t *testing.T) {
	cases := []struct {
		name       string
		raw        string
		wantStatus int
	}{
		{
			name:       "no_braces_at_all",
			raw:        "the model refused to answer",
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "unparseable_json",
			raw:        `{"exercises": [}`,
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "missing_exercises_key",
			raw:        `{"tasks": []}`,
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "exercises_not_a_list",
			raw:        `{"exercises": "nope"}`,
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "block_missing_instructions",
			raw:        `{"exercises":[{"exercise_type":"Cloze","items":[{"question":"Q","answer":"A"}]}]}`,
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "item_missing_answer",
			raw:        `{"exercises":[{"exercise_type":"Cloze","instructions":"ok","items":[{"question":"Q"}]}]}`,
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseGeneratedExam(tc.raw, testCatalog())
			if err == nil {
				t.Fatal("expected error")
			}
			var apiErr *apierr.Error
			if !errors.As(err, &apiErr) {
				t.Fatalf("expected *apierr.Error, got %T", err)
			}
			if apiErr.Status != tc.wantStatus {
				t.Fatalf("status: want=%d got=%d", tc.wantStatus, apiErr.Status)
			}
		})
	}
}

func TestParseGeneratedExamAlignment(t *testing.T) {
	raw := `{"exercises":[{"exercise_type":"Cloze","instructions":"ok","items":[
		{"question":"Q1","answer":"A1","options":["a","b"]},
		{"question":"Q2","answer":"A2"},
		{"question":"Q3","answer":"A3"}
	]}]}`
	parsed, err := ParseGeneratedExam(raw, testCatalog())
	if err != nil {
		t.Fatalf("ParseGeneratedExam: %v", err)
	}
	block := parsed[0]
	if len(block.Content) != len(block.Answers) {
		t.Fatalf("alignment broken: %d items vs %d answers", len(block.Content), len(block.Answers))
	}
	for i, want := range []string{"A1", "A2", "A3"} {
		if block.Answers[i] != want {
			t.Fatalf("answer %d: want=%q got=%q", i, want, block.Answers[i])
		}
	}
	if len(block.Content[0].Options) != 2 {
		t.Fatalf("options: got %d", len(block.Content[0].Options))
	}
	if block.Content[1].Options != nil {
		t.Fatalf("options on item 1 should be absent")
	}
}
