package repos

import (
	"context"
	"testing"

	"github.com/aulaflow/academy-backend/internal/types"
)

func TestExerciseRepoGetByNameCaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	repo := NewExerciseRepo(db, testLogger(t))
	ctx := context.Background()

	if _, err := repo.Create(ctx, nil, &types.Exercise{
		Name:               "Reading Comprehension",
		ContentDescription: "Passage with questions",
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	for _, name := range []string{"Reading Comprehension", "reading comprehension", "READING COMPREHENSION"} {
		got, err := repo.GetByName(ctx, nil, name)
		if err != nil {
			t.Fatalf("GetByName(%q): %v", name, err)
		}
		if got.Name != "Reading Comprehension" {
			t.Fatalf("GetByName(%q): got %q", name, got.Name)
		}
	}
}

func TestExerciseRepoListAllIncludesSoftDeleted(t *testing.T) {
	db := newTestDB(t)
	repo := NewExerciseRepo(db, testLogger(t))
	ctx := context.Background()

	active, err := repo.Create(ctx, nil, &types.Exercise{Name: "Cloze", ContentDescription: "Gap-fill"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	retired, err := repo.Create(ctx, nil, &types.Exercise{Name: "Dictation", ContentDescription: "Audio transcription"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.SoftDeleteByID(ctx, nil, retired.ID); err != nil {
		t.Fatalf("SoftDeleteByID: %v", err)
	}

	list, err := repo.List(ctx, nil)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 1 || list[0].ID != active.ID {
		t.Fatalf("List: expected only the active entry, got %d", len(list))
	}

	all, err := repo.ListAll(ctx, nil)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("ListAll: want=2 got=%d", len(all))
	}
}

func TestExerciseRepoUpdateAllowList(t *testing.T) {
	db := newTestDB(t)
	repo := NewExerciseRepo(db, testLogger(t))
	ctx := context.Background()

	exercise, err := repo.Create(ctx, nil, &types.Exercise{Name: "Essay", ContentDescription: "Free writing"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	newDesc := "Structured free writing"
	if err := repo.Update(ctx, nil, exercise.ID, types.ExerciseUpdate{ContentDescription: &newDesc}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := repo.GetByID(ctx, nil, exercise.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Name != "Essay" {
		t.Fatalf("name should be untouched, got %q", got.Name)
	}
	if got.ContentDescription != newDesc {
		t.Fatalf("description: got %q", got.ContentDescription)
	}

	// Empty update is a no-op, not an error.
	if err := repo.Update(ctx, nil, exercise.ID, types.ExerciseUpdate{}); err != nil {
		t.Fatalf("empty Update: %v", err)
	}
}
