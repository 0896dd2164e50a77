package repos

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"github.com/aulaflow/academy-backend/internal/types"
)

func TestClassRepoGetByCodeNormalization(t *testing.T) {
	db := newTestDB(t)
	repo := NewClassRepo(db, testLogger(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, nil, &types.Class{
		ClassCode:      "ENG-101",
		Description:    "English B2",
		SuggestedLevel: "B2",
		MaxCapacity:    20,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Lookup ignores case and surrounding whitespace.
	for _, code := range []string{"ENG-101", "eng-101", "  ENG-101  "} {
		got, err := repo.GetByCode(ctx, nil, code)
		if err != nil {
			t.Fatalf("GetByCode(%q): %v", code, err)
		}
		if got.ID != created.ID {
			t.Fatalf("GetByCode(%q): got class %d", code, got.ID)
		}
	}

	if _, err := repo.GetByCode(ctx, nil, "MATH-200"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("unknown code: want ErrRecordNotFound, got %v", err)
	}
}

func TestClassRepoGetByCodeExcludesSoftDeleted(t *testing.T) {
	db := newTestDB(t)
	repo := NewClassRepo(db, testLogger(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, nil, &types.Class{
		ClassCode:      "ENG-102",
		Description:    "English C1",
		SuggestedLevel: "C1",
		MaxCapacity:    15,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.SoftDeleteByID(ctx, nil, created.ID); err != nil {
		t.Fatalf("SoftDeleteByID: %v", err)
	}

	if _, err := repo.GetByCode(ctx, nil, "ENG-102"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("deleted class: want ErrRecordNotFound, got %v", err)
	}
}
