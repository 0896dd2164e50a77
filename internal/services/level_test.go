package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/aulaflow/academy-backend/internal/repos"
	"github.com/aulaflow/academy-backend/internal/types"
)

func intPtr(v int) *int { return &v }

func TestLevelUpdateAllowList(t *testing.T) {
	db := newTestDB(t)
	log := testLogger(t)
	svc := NewLevelService(log, repos.NewLevelRepo(db, log))
	ctx := context.Background()

	level, err := svc.Create(ctx, &types.Level{
		MinXP:       100,
		Description: "Bronze",
		Cosmetic:    "bronze-badge",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.Update(ctx, level.ID, types.LevelUpdate{
		MinXP:       intPtr(150),
		Description: strPtr("Bronze II"),
	}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	loaded, err := svc.GetByID(ctx, level.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if loaded.MinXP != 150 || loaded.Description != "Bronze II" {
		t.Fatalf("update not applied: %+v", loaded)
	}
	if loaded.Cosmetic != "bronze-badge" {
		t.Fatalf("cosmetic should be untouched, got %q", loaded.Cosmetic)
	}
}

func TestLevelUpdateNegativeMinXP(t *testing.T) {
	db := newTestDB(t)
	log := testLogger(t)
	svc := NewLevelService(log, repos.NewLevelRepo(db, log))
	ctx := context.Background()

	level, err := svc.Create(ctx, &types.Level{MinXP: 0, Description: "Starter"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	err = svc.Update(ctx, level.ID, types.LevelUpdate{MinXP: intPtr(-5)})
	apiErr := asAPIError(t, err)
	if apiErr.Status != http.StatusBadRequest {
		t.Fatalf("status: want=400 got=%d", apiErr.Status)
	}
}

func TestLevelUpdateNotFound(t *testing.T) {
	db := newTestDB(t)
	log := testLogger(t)
	svc := NewLevelService(log, repos.NewLevelRepo(db, log))

	err := svc.Update(context.Background(), 77, types.LevelUpdate{Description: strPtr("x")})
	apiErr := asAPIError(t, err)
	if apiErr.Status != http.StatusNotFound {
		t.Fatalf("status: want=404 got=%d", apiErr.Status)
	}
}
